package source

// FileID identifies a source file registered with a FileSet. The translator
// never reads file content through this package — it only needs enough of a
// file's identity to classify declarations (ambient, in-module, external)
// and to hand a stable path to the Name Mangler.
type FileID uint32

// NoFileID marks the absence of a file reference.
const NoFileID FileID = 0

// IsValid reports whether id refers to a registered file.
func (id FileID) IsValid() bool { return id != NoFileID }

// FileFlags encodes metadata about a registered source file.
type FileFlags uint8

const (
	// FileVirtual marks a file that did not come from disk (a test fixture
	// or a scenario loaded by the CLI demo harness).
	FileVirtual FileFlags = 1 << iota
	// FileDeclaration marks a ".d"-style declaration file: one that only
	// describes ambient types and is never itself executed.
	FileDeclaration
)

// File is the minimal file identity the translator's data model needs: a
// path (fed to the Name Mangler) and whether it is a declaration file.
type File struct {
	ID    FileID
	Path  string
	Flags FileFlags
}

// IsDeclarationFile reports whether f only carries ambient declarations.
func (f File) IsDeclarationFile() bool { return f.Flags&FileDeclaration != 0 }

// IsVirtual reports whether f was registered without a backing disk file.
func (f File) IsVirtual() bool { return f.Flags&FileVirtual != 0 }
