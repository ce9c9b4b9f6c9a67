package diag_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tstranslate/internal/diag"
	"tstranslate/internal/source"
)

func span(file source.FileID, start, end uint32) source.Span {
	return source.Span{File: file, Start: start, End: end}
}

func TestBagAddRespectsCapacity(t *testing.T) {
	b := diag.NewBag(2)
	sp := span(1, 0, 3)

	require.True(t, b.Add(diag.NewError(diag.TransNeverType, sp, "a")))
	require.True(t, b.Add(diag.NewError(diag.TransNeverType, sp, "b")))
	require.False(t, b.Add(diag.NewError(diag.TransNeverType, sp, "c")))
	assert.Equal(t, 2, b.Len())
}

func TestBagHasErrorsAndWarnings(t *testing.T) {
	b := diag.NewBag(4)
	sp := span(1, 0, 1)

	b.Add(diag.New(diag.SevInfo, diag.TransNeverType, sp, "info"))
	assert.False(t, b.HasErrors())
	assert.False(t, b.HasWarnings())

	b.Add(diag.New(diag.SevWarning, diag.TransNeverType, sp, "warn"))
	assert.False(t, b.HasErrors())
	assert.True(t, b.HasWarnings())

	b.Add(diag.New(diag.SevError, diag.TransNeverType, sp, "err"))
	assert.True(t, b.HasErrors())
}

func TestBagMergeGrowsCapacity(t *testing.T) {
	a := diag.NewBag(1)
	b := diag.NewBag(2)
	sp := span(1, 0, 1)

	a.Add(diag.NewError(diag.TransNeverType, sp, "a"))
	b.Add(diag.NewError(diag.TransNeverType, sp, "b"))
	b.Add(diag.NewError(diag.TransNeverType, sp, "c"))

	a.Merge(b)
	assert.Equal(t, 3, a.Len())
	assert.True(t, a.Cap() >= 3)
}

func TestBagSortOrdersByFileThenSpanThenSeverity(t *testing.T) {
	b := diag.NewBag(4)
	b.Add(diag.New(diag.SevWarning, diag.TransNeverType, span(2, 0, 1), "z"))
	b.Add(diag.New(diag.SevError, diag.TransNeverType, span(1, 5, 6), "y"))
	b.Add(diag.New(diag.SevInfo, diag.TransNeverType, span(1, 0, 1), "x"))

	b.Sort()
	items := b.Items()
	require.Len(t, items, 3)
	assert.Equal(t, "x", items[0].Message)
	assert.Equal(t, "y", items[1].Message)
	assert.Equal(t, "z", items[2].Message)
}

func TestBagDedupKeepsFirstOccurrence(t *testing.T) {
	b := diag.NewBag(4)
	sp := span(1, 0, 1)
	b.Add(diag.NewError(diag.TransNeverType, sp, "first"))
	b.Add(diag.NewError(diag.TransNeverType, sp, "second"))
	b.Add(diag.NewError(diag.TransConditionalType, sp, "different code"))

	b.Dedup()
	items := b.Items()
	require.Len(t, items, 2)
	assert.Equal(t, "first", items[0].Message)
}

func TestReportBuilderEmitsOnce(t *testing.T) {
	bag := diag.NewBag(4)
	reporter := diag.BagReporter{Bag: bag}
	sp := span(1, 0, 1)

	b := diag.ReportWarning(reporter, diag.TransAnonymousClass, sp, "anonymous class reference")
	b.WithNote(span(1, 2, 3), "declared here")
	b.Emit()
	b.Emit()

	require.Equal(t, 1, bag.Len())
	d := bag.Items()[0]
	assert.Equal(t, diag.SevWarning, d.Severity)
	assert.Len(t, d.Notes, 1)
}

func TestReportBuilderNilReceiverIsSafe(t *testing.T) {
	var b *diag.ReportBuilder
	assert.Nil(t, b.WithNote(span(1, 0, 1), "x"))
	assert.NotPanics(t, func() { b.Emit() })
	assert.Equal(t, diag.Diagnostic{}, b.Diagnostic())
}

func TestDedupReporterSuppressesDuplicates(t *testing.T) {
	bag := diag.NewBag(4)
	dedup := diag.NewDedupReporter(diag.BagReporter{Bag: bag})
	sp := span(1, 0, 1)

	dedup.Report(diag.TransNeverType, diag.SevWarning, sp, "dup", nil, nil)
	dedup.Report(diag.TransNeverType, diag.SevWarning, sp, "dup", nil, nil)
	dedup.Report(diag.TransConditionalType, diag.SevWarning, sp, "dup", nil, nil)

	assert.Equal(t, 2, bag.Len())
}

func TestCodeStringRoundTrips(t *testing.T) {
	assert.Equal(t, "TRANS_NEVER_TYPE", diag.TransNeverType.String())
	assert.Equal(t, "UNKNOWN", diag.UnknownCode.String())
	assert.Contains(t, diag.Code(9999).String(), "Code(9999)")
}
