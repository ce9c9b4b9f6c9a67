package diag

// Severity ranks how much a diagnostic should shape a caller's trust in the
// translated string next to it. A Warning means the translator accepted an
// approximation and still produced a usable expression (see
// Code.IsRecoverable); an Error means the caller should treat the
// accompanying string as unreliable. Info never gates anything — it is for
// observations a host may want to surface but that never changed what
// Translate returned.
type Severity uint8

const (
	SevInfo Severity = iota
	SevWarning
	SevError
)

// AtLeast reports whether s is at least as severe as min. Bag.HasErrors and
// Bag.HasWarnings are both just this comparison against a fixed floor.
func (s Severity) AtLeast(min Severity) bool {
	return s >= min
}

func (s Severity) String() string {
	switch s {
	case SevInfo:
		return "INFO"
	case SevWarning:
		return "WARNING"
	case SevError:
		return "ERROR"
	}
	return "UNKNOWN"
}
