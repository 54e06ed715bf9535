package afstyle

import (
	"fmt"
	"sort"
	"unicode"

	"golang.org/x/text/unicode/rangetable"
)

// Range maps an inclusive range of code points to a style.
type Range struct {
	First   rune
	Last    rune
	Style   int
	NonBase bool
}

// Class returns the classification shared by all code points of r.
func (r Range) Class() Class {
	return Class{Style: r.Style, NonBase: r.NonBase}
}

func (r Range) String() string {
	kind := "base"
	if r.NonBase {
		kind = "non-base"
	}
	return fmt.Sprintf("[%04X..%04X] → style %d (%s)", r.First, r.Last, r.Style, kind)
}

// Ranges is a list of code point ranges. Compiled ranges are sorted by code
// point, pairwise disjoint and maximal: no two adjacent ranges share the same
// style and flag.
type Ranges []Range

// Compile condenses a classification into ranges. Adjacent spans with the same
// class are merged.
func Compile(cov *Coverage) Ranges {
	var ranges Ranges
	for _, sp := range cov.spans {
		if n := len(ranges); n > 0 {
			last := &ranges[n-1]
			if sp.First == last.Last+1 && sp.Class == last.Class() {
				last.Last = sp.Last
				continue
			}
		}
		ranges = append(ranges, Range{First: sp.First, Last: sp.Last, Style: sp.Style, NonBase: sp.NonBase})
	}
	tracer().Infof("%d style ranges", len(ranges))
	return ranges
}

// CompileDense condenses a per-code point classification into ranges: code
// points are sorted, then a single pass extends the current range as long as
// the next code point directly follows it and has the same class.
func CompileDense(m map[rune]Class) Ranges {
	cps := make([]rune, 0, len(m))
	for r := range m {
		cps = append(cps, r)
	}
	sort.Slice(cps, func(i, j int) bool { return cps[i] < cps[j] })
	var ranges Ranges
	for _, r := range cps {
		c := m[r]
		if n := len(ranges); n > 0 {
			last := &ranges[n-1]
			if r == last.Last+1 && c == last.Class() {
				last.Last = r
				continue
			}
		}
		ranges = append(ranges, Range{First: r, Last: r, Style: c.Style, NonBase: c.NonBase})
	}
	return ranges
}

// Validate checks that ranges are sorted, disjoint and maximal.
func (rs Ranges) Validate() error {
	for i, r := range rs {
		if r.First > r.Last {
			return fmt.Errorf("range #%d %v is inverted", i, r)
		}
		if r.First < 0 || r.Last > unicode.MaxRune {
			return fmt.Errorf("range #%d %v exceeds code point space", i, r)
		}
		if i == 0 {
			continue
		}
		prev := rs[i-1]
		if prev.Last >= r.First {
			return fmt.Errorf("range #%d %v overlaps or precedes %v", i, r, prev)
		}
		if prev.Last+1 == r.First && prev.Class() == r.Class() {
			return fmt.Errorf("range #%d %v should be merged with %v", i, r, prev)
		}
	}
	return nil
}

// Find returns the range containing code point c, using binary search.
func (rs Ranges) Find(c rune) (Range, bool) {
	i := sort.Search(len(rs), func(i int) bool {
		return rs[i].Last >= c
	})
	if i < len(rs) && rs[i].First <= c {
		return rs[i], true
	}
	return Range{}, false
}

// Size returns the number of code points covered by rs.
func (rs Ranges) Size() int {
	n := 0
	for _, r := range rs {
		n += int(r.Last-r.First) + 1
	}
	return n
}

// Styles returns the distinct style indices referenced by rs, ascending.
func (rs Ranges) Styles() []int {
	seen := make(map[int]bool)
	var styles []int
	for _, r := range rs {
		if !seen[r.Style] {
			seen[r.Style] = true
			styles = append(styles, r.Style)
		}
	}
	sort.Ints(styles)
	return styles
}

// RangeTable returns the code points of a style as a Unicode range table,
// base and non-base characters alike.
func (rs Ranges) RangeTable(style int) *unicode.RangeTable {
	var tables []*unicode.RangeTable
	for _, r := range rs {
		if r.Style == style {
			tables = append(tables, rangeTableOf(r.First, r.Last))
		}
	}
	return rangetable.Merge(tables...)
}

// rangeTableOf creates a range table for a single interval, split at the
// 16-bit boundary if necessary.
func rangeTableOf(first, last rune) *unicode.RangeTable {
	rt := &unicode.RangeTable{}
	if first <= 0xFFFF {
		hi := min(last, 0xFFFF)
		rt.R16 = append(rt.R16, unicode.Range16{Lo: uint16(first), Hi: uint16(hi), Stride: 1})
		if hi <= unicode.MaxLatin1 {
			rt.LatinOffset = 1
		}
		first = hi + 1
	}
	if first <= last {
		rt.R32 = append(rt.R32, unicode.Range32{Lo: uint32(first), Hi: uint32(last), Stride: 1})
	}
	return rt
}
