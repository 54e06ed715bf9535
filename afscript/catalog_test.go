package afscript

import (
	"errors"
	"strings"
	"testing"

	"github.com/npillmayer/autofit/aftag"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultCatalog(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "autofit.gen")
	defer teardown()
	//
	cat, err := Build(Default())
	require.NoError(t, err)
	require.Equal(t, 60, cat.Len())
	assert.Equal(t, aftag.T("ADLM"), cat.Tag(0), "first script of bundled catalog")
	assert.Equal(t, aftag.T("HANI"), cat.Tag(cat.Len()-1), "last script of bundled catalog")
	//
	latn, ok := cat.Lookup(aftag.T("LATN"))
	require.True(t, ok)
	script := cat.Script(latn)
	assert.Equal(t, "Latin", script.Name)
	assert.Equal(t, aftag.T("Latn"), script.UnicodeTag)
	assert.True(t, script.Registered)
	khms, _ := cat.Lookup(aftag.T("KHMS"))
	assert.Equal(t, aftag.T("Khms"), cat.Script(khms).UnicodeTag)
	assert.False(t, cat.Script(khms).Registered, "FreeType's Khmer symbols are no ISO 15924 script")
	assert.Equal(t, GroupDefault, script.Group)
	assert.Equal(t, "o O 0", script.StdChars)
	require.Len(t, script.Blues, 6)
	assert.Equal(t, BlueTop, script.Blues[0].Flags)
	//
	hani, _ := cat.Lookup(aftag.T("HANI"))
	assert.Equal(t, GroupCJK, cat.Script(hani).Group)
	tibt, _ := cat.Lookup(aftag.T("TIBT"))
	assert.Equal(t, GroupIndic, cat.Script(tibt).Group)
	deva, _ := cat.Lookup(aftag.T("DEVA"))
	assert.True(t, cat.Script(deva).HintTopToBottom)
	assert.Equal(t, GroupDefault, cat.Script(deva).Group)
}

func TestBuildPreservesOrder(t *testing.T) {
	defs := []Definition{
		{Name: "Zeta", Tag: "ZZZZ"},
		{Name: "Alpha", Tag: "AAAA"},
		{Name: "Mu", Tag: "MMMM"},
	}
	cat, err := Build(defs)
	require.NoError(t, err)
	for i, def := range defs {
		assert.Equal(t, def.Name, cat.Name(i))
		assert.Equal(t, i, cat.Script(i).Index)
		j, ok := cat.Lookup(aftag.T(def.Tag))
		assert.True(t, ok)
		assert.Equal(t, i, j)
	}
}

func TestBuildCollectsErrors(t *testing.T) {
	defs := []Definition{
		{Name: "Good", Tag: "GOOD", BaseRanges: []Interval{{0x41, 0x5A}}},
		{Name: "Short", Tag: "SHO"},
		{Name: "Dup", Tag: "GOOD"},
		{Name: "Inverted", Tag: "INVR", BaseRanges: []Interval{{0x100, 0x50}}},
		{Name: "Huge", Tag: "HUGE", NonBaseRanges: []Interval{{0x10FFFF, 0x110000}}},
		{Name: "Flags", Tag: "FLAG", Blues: []BlueDefinition{{Chars: "x", Flags: "TOP | UPSIDE_DOWN"}}},
		{Tag: "NONM"},
	}
	cat, err := Build(defs)
	require.Error(t, err)
	assert.Nil(t, cat, "no catalog may be returned on configuration errors")
	var cerrs ConfigErrors
	require.True(t, errors.As(err, &cerrs))
	require.Len(t, cerrs, 6)
	fields := make([]string, len(cerrs))
	for i, e := range cerrs {
		fields[i] = e.Script + "/" + e.Field
	}
	assert.Equal(t, []string{
		"SHO/tag",
		"GOOD/tag",
		"INVR/base_ranges[0]",
		"HUGE/non_base_ranges[0]",
		"FLAG/blues[0]",
		"NONM/name",
	}, fields)
	assert.True(t, strings.HasPrefix(err.Error(), "6 configuration errors:"))
}

func TestConfigErrorFormat(t *testing.T) {
	e := ConfigError{Script: "LATN", Field: "tag", Issue: "broken"}
	assert.Equal(t, "[CONFIG] LATN/tag: broken", e.Error())
	e = ConfigError{Script: "LATN", Issue: "broken"}
	assert.Equal(t, "[CONFIG] LATN: broken", e.Error())
	assert.Equal(t, e.Error(), ConfigErrors{e}.Error())
}

func TestScriptIsACopy(t *testing.T) {
	cat, err := Build([]Definition{
		{Name: "Test", Tag: "TEST", BaseRanges: []Interval{{10, 20}}},
	})
	require.NoError(t, err)
	s := cat.Script(0)
	s.BaseRanges[0].First = 0
	assert.Equal(t, rune(10), cat.Script(0).BaseRanges[0].First)
}
