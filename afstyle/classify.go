package afstyle

import (
	"sort"

	"github.com/npillmayer/autofit/afscript"
)

// Class is the classification of a single code point: the style governing
// it and whether it is a non-base (combining) character.
type Class struct {
	Style   int
	NonBase bool
}

// Span is a range of code points sharing the same Class.
type Span struct {
	First, Last rune
	Class
}

// ScriptStats counts what a script contributed to a classification.
type ScriptStats struct {
	Declared int // distinct code points declared as base characters
	Claimed  int // code points owned by the script
	NonBase  int // owned code points flagged as non-base
	Shadowed int // declared code points owned by an earlier script
}

// Coverage is the classification of code points. It is a partial function
// from code points to classes, stored as sorted, disjoint spans. Code points
// not covered by any span are unclassified.
type Coverage struct {
	spans []Span
	stats []ScriptStats
}

// Classify assigns code points of the catalog's scripts to the scripts' base
// styles. Scripts are visited in catalog order:
//
//  1. Every code point in a base range of the script which is still
//     unclassified is claimed as a base character of the script's base style.
//     Code points claimed by an earlier script stay untouched.
//  2. Every code point in a non-base range of the script which has been
//     claimed by the script in step 1 is flagged as non-base. Non-base ranges
//     never claim code points and never affect those of other scripts.
//
// Classify works on intervals and never materializes single code points.
func Classify(cat *afscript.Catalog, styles *Styles) *Coverage {
	cov := &Coverage{stats: make([]ScriptStats, cat.Len())}
	var claimed ivset // all code points claimed so far
	for i := 0; i < cat.Len(); i++ {
		script := cat.Script(i)
		style := styles.Base(i)
		base := normalize(script.BaseRanges)
		own := base.minus(claimed)
		nonBase := own.intersect(normalize(script.NonBaseRanges))
		for _, iv := range own.minus(nonBase) {
			cov.spans = append(cov.spans, Span{iv.First, iv.Last, Class{Style: style}})
		}
		for _, iv := range nonBase {
			cov.spans = append(cov.spans, Span{iv.First, iv.Last, Class{Style: style, NonBase: true}})
		}
		claimed = normalize(append(claimed, own...))
		st := ScriptStats{
			Declared: base.size(),
			Claimed:  own.size(),
			NonBase:  nonBase.size(),
		}
		st.Shadowed = st.Declared - st.Claimed
		cov.stats[i] = st
		tracer().Debugf("script %s: %d declared, %d claimed, %d non-base, %d shadowed",
			script.Tag, st.Declared, st.Claimed, st.NonBase, st.Shadowed)
	}
	sort.Slice(cov.spans, func(i, j int) bool {
		return cov.spans[i].First < cov.spans[j].First
	})
	tracer().Infof("%d code points classified", claimed.size())
	return cov
}

// Spans returns the classification as sorted, disjoint spans. Adjacent spans
// may share the same class.
func (cov *Coverage) Spans() []Span {
	return append([]Span(nil), cov.spans...)
}

// Stats returns the statistics of script i.
func (cov *Coverage) Stats(i int) ScriptStats {
	return cov.stats[i]
}

// Lookup returns the class of code point r, if r is classified.
func (cov *Coverage) Lookup(r rune) (Class, bool) {
	i := sort.Search(len(cov.spans), func(i int) bool {
		return cov.spans[i].Last >= r
	})
	if i < len(cov.spans) && cov.spans[i].First <= r {
		return cov.spans[i].Class, true
	}
	return Class{}, false
}

// ClassifyDense performs the same classification as Classify, but one code
// point at a time, recording every classified code point in a map. Its result
// is identical to Classify's. It serves as a reference for the interval
// algorithm.
func ClassifyDense(cat *afscript.Catalog, styles *Styles) map[rune]Class {
	m := make(map[rune]Class)
	for i := 0; i < cat.Len(); i++ {
		script := cat.Script(i)
		style := styles.Base(i)
		bases := make(map[rune]bool)
		for _, iv := range script.BaseRanges {
			for r := iv.First; r <= iv.Last; r++ {
				if _, taken := m[r]; !taken {
					m[r] = Class{Style: style}
					bases[r] = true
				}
			}
		}
		for _, iv := range script.NonBaseRanges {
			for r := iv.First; r <= iv.Last; r++ {
				if bases[r] {
					m[r] = Class{Style: style, NonBase: true}
				}
			}
		}
	}
	return m
}
