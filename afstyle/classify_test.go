package afstyle

import (
	"testing"

	"github.com/go-text/typesetting/language"
	"github.com/npillmayer/autofit/afscript"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func iv(first, last rune) afscript.Interval {
	return afscript.Interval{First: first, Last: last}
}

func build(t *testing.T, x Expander, defs ...afscript.Definition) *Table {
	t.Helper()
	table, err := Generate(defs, x)
	require.NoError(t, err)
	return table
}

// S1 comes first and owns 10…20, with 15…16 marked non-base. S2 declares
// 15…25 but only gets what S1 left over.
func TestFirstWriterWinsWithLocalNonBase(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "autofit.gen")
	defer teardown()
	//
	table := build(t, Expander{},
		afscript.Definition{Name: "S1", Tag: "SONE",
			BaseRanges:    []afscript.Interval{iv(10, 20)},
			NonBaseRanges: []afscript.Interval{iv(15, 16)},
		},
		afscript.Definition{Name: "S2", Tag: "STWO",
			BaseRanges: []afscript.Interval{iv(15, 25)},
		},
	)
	expected := Ranges{
		{First: 10, Last: 14, Style: 0},
		{First: 15, Last: 16, Style: 0, NonBase: true},
		{First: 17, Last: 20, Style: 0},
		{First: 21, Last: 25, Style: 1},
	}
	assert.Equal(t, expected, table.Ranges)
	assert.Equal(t, ScriptStats{Declared: 11, Claimed: 11, NonBase: 2}, table.Stats[0])
	assert.Equal(t, ScriptStats{Declared: 11, Claimed: 5, Shadowed: 6}, table.Stats[1])
}

func TestNonBaseOfOtherScriptIsIgnored(t *testing.T) {
	table := build(t, Expander{},
		afscript.Definition{Name: "A", Tag: "AAAA",
			BaseRanges: []afscript.Interval{iv(0x300, 0x36F)},
		},
		afscript.Definition{Name: "B", Tag: "BBBB",
			BaseRanges:    []afscript.Interval{iv(0x300, 0x310)},
			NonBaseRanges: []afscript.Interval{iv(0x300, 0x36F)},
		},
	)
	require.Len(t, table.Ranges, 1)
	assert.Equal(t, Range{First: 0x300, Last: 0x36F, Style: 0}, table.Ranges[0])
}

func TestNonBaseOnlyScriptContributesNothing(t *testing.T) {
	table := build(t, Expander{},
		afscript.Definition{Name: "Marks", Tag: "MRKS",
			NonBaseRanges: []afscript.Interval{iv(0x300, 0x36F)},
		},
		afscript.Definition{Name: "Other", Tag: "OTHR",
			BaseRanges: []afscript.Interval{iv(0x41, 0x5A)},
		},
	)
	assert.Equal(t, Ranges{{First: 0x41, Last: 0x5A, Style: 1}}, table.Ranges)
	assert.Equal(t, ScriptStats{}, table.Stats[0])
}

func TestFeatureStylesGetNoCoverage(t *testing.T) {
	x := Expander{
		Features: Features[:3],
		Scripts:  FeatureScripts,
	}
	table := build(t, x,
		afscript.Definition{Name: "Latin", Tag: "LATN",
			BaseRanges: []afscript.Interval{iv(0x41, 0x5A), iv(0x61, 0x7A)},
		},
	)
	require.Equal(t, 4, table.Styles.Len())
	for i, s := range table.Styles.All() {
		assert.Equal(t, i, s.Index)
		assert.Equal(t, 0, s.Script)
	}
	assert.Equal(t, 3, table.Styles.Base(0))
	assert.Equal(t, []int{3}, table.Ranges.Styles())
}

func TestOverlappingRangesWithinScript(t *testing.T) {
	table := build(t, Expander{},
		afscript.Definition{Name: "A", Tag: "AAAA",
			BaseRanges:    []afscript.Interval{iv(30, 40), iv(10, 20), iv(15, 35)},
			NonBaseRanges: []afscript.Interval{iv(38, 45), iv(5, 10)},
		},
	)
	expected := Ranges{
		{First: 10, Last: 10, Style: 0, NonBase: true},
		{First: 11, Last: 37, Style: 0},
		{First: 38, Last: 40, Style: 0, NonBase: true},
	}
	assert.Equal(t, expected, table.Ranges)
	assert.Equal(t, 31, table.Stats[0].Declared)
}

func TestMergeAcrossScriptsNeverHappens(t *testing.T) {
	table := build(t, Expander{},
		afscript.Definition{Name: "A", Tag: "AAAA", BaseRanges: []afscript.Interval{iv(0, 9)}},
		afscript.Definition{Name: "B", Tag: "BBBB", BaseRanges: []afscript.Interval{iv(10, 19)}},
		afscript.Definition{Name: "C", Tag: "CCCC", BaseRanges: []afscript.Interval{iv(20, 29)}},
	)
	assert.Len(t, table.Ranges, 3)
	assert.NoError(t, table.Ranges.Validate())
}

func TestDenseAndIntervalAgree(t *testing.T) {
	defs := []afscript.Definition{
		{Name: "A", Tag: "AAAA",
			BaseRanges:    []afscript.Interval{iv(100, 200), iv(150, 300), iv(1000, 1000)},
			NonBaseRanges: []afscript.Interval{iv(120, 130), iv(290, 310), iv(999, 1001)},
		},
		{Name: "B", Tag: "BBBB",
			BaseRanges:    []afscript.Interval{iv(50, 120), iv(250, 400)},
			NonBaseRanges: []afscript.Interval{iv(60, 70), iv(110, 115), iv(301, 305)},
		},
		{Name: "C", Tag: "CCCC",
			NonBaseRanges: []afscript.Interval{iv(0, 500)},
		},
		{Name: "D", Tag: "DDDD",
			BaseRanges:    []afscript.Interval{iv(0, 1100)},
			NonBaseRanges: []afscript.Interval{iv(0, 10), iv(1050, 1050)},
		},
	}
	cat, err := afscript.Build(defs)
	require.NoError(t, err)
	styles, err := Expander{}.Expand(cat)
	require.NoError(t, err)
	cov := Classify(cat, styles)
	dense := ClassifyDense(cat, styles)
	assert.Equal(t, CompileDense(dense), Compile(cov))
	for r, c := range dense {
		got, ok := cov.Lookup(r)
		if assert.True(t, ok, "code point %d", r) {
			assert.Equal(t, c, got, "code point %d", r)
		}
	}
	_, ok := cov.Lookup(1101)
	assert.False(t, ok)
}

func TestCompileDense(t *testing.T) {
	m := map[rune]Class{
		5: {Style: 1}, 6: {Style: 1}, 7: {Style: 1, NonBase: true},
		9: {Style: 1}, 10: {Style: 2},
	}
	expected := Ranges{
		{First: 5, Last: 6, Style: 1},
		{First: 7, Last: 7, Style: 1, NonBase: true},
		{First: 9, Last: 9, Style: 1},
		{First: 10, Last: 10, Style: 2},
	}
	assert.Equal(t, expected, CompileDense(m))
	assert.Nil(t, CompileDense(nil))
}

func TestIntervalSets(t *testing.T) {
	s := normalize([]afscript.Interval{iv(10, 20), iv(21, 25), iv(40, 50), iv(1, 3)})
	assert.Equal(t, ivset{iv(1, 3), iv(10, 25), iv(40, 50)}, s)
	assert.Equal(t, 3+16+11, s.size())
	//
	d := s.minus(ivset{iv(2, 2), iv(12, 14), iv(20, 45)})
	assert.Equal(t, ivset{iv(1, 1), iv(3, 3), iv(10, 11), iv(15, 19), iv(46, 50)}, d)
	assert.Equal(t, s, s.minus(nil))
	assert.Nil(t, s.minus(ivset{iv(0, 100)}))
	//
	x := s.intersect(ivset{iv(2, 12), iv(24, 41)})
	assert.Equal(t, ivset{iv(2, 3), iv(10, 12), iv(24, 25), iv(40, 41)}, x)
	assert.Nil(t, s.intersect(nil))
}

func TestAuditUnregisteredScript(t *testing.T) {
	table := build(t, Expander{},
		afscript.Definition{Name: "Latin", Tag: "LATN",
			BaseRanges: []afscript.Interval{iv(0x41, 0x5A), iv(0x3B1, 0x3C9)},
		},
		afscript.Definition{Name: "Private", Tag: "XYZW",
			BaseRanges: []afscript.Interval{iv(0x30, 0x39), iv(0x61, 0x7A)},
		},
	)
	require.True(t, table.Catalog.Script(0).Registered)
	require.False(t, table.Catalog.Script(1).Registered)
	reports := Audit(table)
	require.Len(t, reports, 2)
	assert.Equal(t, 0x3C9-0x3B1+1, reports[0].Foreign)
	assert.Equal(t, []language.Script{language.Greek}, reports[0].Others)
	assert.Equal(t, 26, reports[1].Foreign, "digits are Common and never foreign")
	assert.Equal(t, []language.Script{language.Latin}, reports[1].Others)
}
