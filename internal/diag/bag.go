package diag

import (
	"fmt"
	"sort"
)

// Bag accumulates diagnostics up to a fixed capacity — one per file
// translated, in the CLI's usage, so a pathological scenario can never
// produce unbounded output.
type Bag struct {
	items []Diagnostic
	max   uint16
}

// NewBag creates a Bag that holds at most max diagnostics.
func NewBag(max int) *Bag {
	return &Bag{
		items: make([]Diagnostic, 0, max),
		max:   uint16(max),
	}
}

// Add appends d, returning false if the bag is already at capacity.
func (b *Bag) Add(d Diagnostic) bool {
	if len(b.items) >= int(b.max) {
		return false
	}
	b.items = append(b.items, d)
	return true
}

// Cap returns the bag's capacity.
func (b *Bag) Cap() uint16 {
	return b.max
}

// HasErrors reports whether any diagnostic has at least SevError severity.
func (b *Bag) HasErrors() bool {
	for i := range b.items {
		if b.items[i].Severity.AtLeast(SevError) {
			return true
		}
	}
	return false
}

// HasWarnings reports whether any diagnostic has at least SevWarning severity.
func (b *Bag) HasWarnings() bool {
	for i := range b.items {
		if b.items[i].Severity.AtLeast(SevWarning) {
			return true
		}
	}
	return false
}

// ApproximationCount returns the number of accumulated diagnostics whose
// Code is recoverable, via CountApproximations.
func (b *Bag) ApproximationCount() int {
	return CountApproximations(b.items)
}

// CountApproximations counts the diagnostics in diags whose Code is
// recoverable — a count of how many places a translated string leans on
// `?` or a shape-preserving stand-in rather than an exact name, useful for
// a CLI summary line. Takes a plain slice so callers holding a
// batch.FileResult's Diagnostics (not a live *Bag) can use it too.
func CountApproximations(diags []Diagnostic) int {
	n := 0
	for i := range diags {
		if diags[i].IsApproximation() {
			n++
		}
	}
	return n
}

// Len returns the number of accumulated diagnostics.
func (b *Bag) Len() int {
	return len(b.items)
}

// Items returns the accumulated diagnostics. The returned slice aliases the
// bag's internal storage and must not be mutated by the caller.
func (b *Bag) Items() []Diagnostic {
	return b.items
}

// Merge appends other's diagnostics, growing capacity if needed to hold them
// all.
func (b *Bag) Merge(other *Bag) {
	newTotal := len(b.items) + len(other.items)
	if uint16(newTotal) > b.max {
		b.max = uint16(newTotal)
	}
	b.items = append(b.items, other.items...)
}

// Sort orders diagnostics by file, start, end, severity (descending), then
// code name (ascending, by Code.String()), giving a stable and
// deterministic output order.
func (b *Bag) Sort() {
	sort.SliceStable(b.items, func(i, j int) bool {
		di, dj := b.items[i], b.items[j]
		if di.Primary.File != dj.Primary.File {
			return di.Primary.File < dj.Primary.File
		}
		if di.Primary.Start != dj.Primary.Start {
			return di.Primary.Start < dj.Primary.Start
		}
		if di.Primary.End != dj.Primary.End {
			return di.Primary.End < dj.Primary.End
		}
		if di.Severity != dj.Severity {
			return di.Severity > dj.Severity
		}
		return di.Code.String() < dj.Code.String()
	})
}

// Dedup removes diagnostics that share both Code and Primary span, keeping
// the first occurrence.
func (b *Bag) Dedup() {
	seen := make(map[string]bool, len(b.items))
	kept := make([]Diagnostic, 0, len(b.items))
	for _, d := range b.items {
		key := fmt.Sprintf("%s:%s", d.Code.String(), d.Primary.String())
		if seen[key] {
			continue
		}
		seen[key] = true
		kept = append(kept, d)
	}
	b.items = kept
}
