package source

import "fmt"

// Span is a half-open byte range inside a single file. The translator
// carries one per reference AST node purely to attach a location to
// diagnostics; it never inspects the range's content.
type Span struct {
	File  FileID
	Start uint32 // inclusive
	End   uint32 // exclusive
}

func (s Span) Empty() bool {
	return s.Start == s.End
}

func (s Span) Len() uint32 {
	return s.End - s.Start
}

func (s Span) String() string {
	return fmt.Sprintf("%d:%d-%d", s.File, s.Start, s.End)
}
