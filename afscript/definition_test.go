package afscript

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const smallCatalog = `
scripts:
  - name: Second
    tag: SCND
    std_chars: "b"
    base_ranges:
      - 0041..005A
      - U+00C0
    non_base_ranges: []
    blues:
      - chars: "B D"
        flags: TOP | LATIN_X_HEIGHT
  - name: First
    tag: FRST
    hint_top_to_bottom: true
    std_chars: "a"
    base_ranges:
      - 0300..036F
    non_base_ranges:
      - 0300..036F
    blues: []
`

func TestLoad(t *testing.T) {
	defs, err := Load(strings.NewReader(smallCatalog))
	require.NoError(t, err)
	require.Len(t, defs, 2)
	assert.Equal(t, "SCND", defs[0].Tag)
	assert.Equal(t, "FRST", defs[1].Tag)
	assert.Equal(t, []Interval{{0x41, 0x5A}, {0xC0, 0xC0}}, defs[0].BaseRanges)
	assert.True(t, defs[1].HintTopToBottom)
	assert.Equal(t, "TOP | LATIN_X_HEIGHT", defs[0].Blues[0].Flags)
}

func TestLoadRejectsGarbage(t *testing.T) {
	_, err := Load(strings.NewReader(""))
	assert.Error(t, err)
	_, err = Load(strings.NewReader("scripts:\n  - name: X\n    tag: XXXX\n    base_ranges:\n      - 00ZZ\n"))
	assert.Error(t, err)
	_, err = Load(strings.NewReader("scripts:\n  - name: X\n    colour: blue\n"))
	assert.Error(t, err, "unknown fields are rejected")
}

func TestLoadRejectsEmptyOrSplitCatalogs(t *testing.T) {
	_, err := Load(strings.NewReader("scripts: []\n"))
	assert.EqualError(t, err, "script catalog lists no scripts")
	_, err = Load(strings.NewReader("scripts:\n"))
	assert.Error(t, err)
	//
	split := smallCatalog + "---\nscripts:\n  - name: Third\n    tag: THRD\n"
	_, err = Load(strings.NewReader(split))
	assert.EqualError(t, err, "script catalog must be a single YAML document")
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	require.NoError(t, os.WriteFile(path, []byte(smallCatalog), 0o644))
	defs, err := LoadFile(path)
	require.NoError(t, err)
	assert.Len(t, defs, 2)
	_, err = LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestDefaultReturnsFreshCopies(t *testing.T) {
	a := Default()
	a[0].Tag = "XXXX"
	b := Default()
	assert.Equal(t, "ADLM", b[0].Tag)
}

func TestParseInterval(t *testing.T) {
	tests := []struct {
		in       string
		expected Interval
	}{
		{"0600..06FF", Interval{0x600, 0x6FF}},
		{"1E900..1E95F", Interval{0x1E900, 0x1E95F}},
		{"20B9", Interval{0x20B9, 0x20B9}},
		{"U+0041..U+005A", Interval{0x41, 0x5A}},
		{" 0041 .. 005A ", Interval{0x41, 0x5A}},
	}
	for _, tt := range tests {
		iv, err := ParseInterval(tt.in)
		if assert.NoError(t, err, tt.in) {
			assert.Equal(t, tt.expected, iv, tt.in)
		}
	}
	for _, s := range []string{"", "..", "0041..", "XYZ", "0041...005A"} {
		_, err := ParseInterval(s)
		assert.Error(t, err, s)
	}
}

func TestIntervalValidate(t *testing.T) {
	assert.NoError(t, Interval{0, 0x10FFFF}.Validate())
	assert.NoError(t, Interval{5, 5}.Validate())
	assert.Error(t, Interval{6, 5}.Validate())
	assert.Error(t, Interval{-1, 5}.Validate())
	assert.Error(t, Interval{0x10FFFF, 0x110000}.Validate())
	assert.Equal(t, 0, Interval{6, 5}.Len())
	assert.Equal(t, 16, Interval{0x10, 0x1F}.Len())
	assert.Equal(t, "0600..06FF", Interval{0x600, 0x6FF}.String())
}

func TestBlueFlags(t *testing.T) {
	f, err := ParseBlueFlags("TOP | LATIN_NEUTRAL | LATIN_X_HEIGHT")
	require.NoError(t, err)
	assert.Equal(t, BlueTop|BlueLatinNeutral|BlueLatinXHeight, f)
	assert.Equal(t, "TOP | LATIN_NEUTRAL | LATIN_X_HEIGHT", f.String())
	//
	f, err = ParseBlueFlags("0")
	require.NoError(t, err)
	assert.Equal(t, BlueFlags(0), f)
	assert.Equal(t, "0", f.String())
	//
	f, err = ParseBlueFlags("CJK_HORIZ | CJK_RIGHT")
	require.NoError(t, err)
	assert.Equal(t, BlueLatinSubTop|BlueTop, f, "CJK flags alias Latin bits")
	//
	_, err = ParseBlueFlags("TOP | BOTTOM")
	assert.Error(t, err)
	assert.Equal(t, "TOP | 0x100", (BlueTop | 0x100).String())
}
