package afstyle

import (
	"fmt"

	"github.com/npillmayer/autofit/afscript"
)

// Table holds the compiled style tables: scripts, styles and code point
// ranges, together with per-script statistics of the classification.
type Table struct {
	Catalog *afscript.Catalog
	Styles  *Styles
	Ranges  Ranges
	Stats   []ScriptStats // indexed by script
}

// Generate runs the complete pipeline on an ordered list of script
// definitions: the catalog is built, styles are expanded, code points are
// classified and condensed into ranges.
//
// Configuration errors abort generation; no table is returned in this case.
func Generate(defs []afscript.Definition, x Expander) (*Table, error) {
	cat, err := afscript.Build(defs)
	if err != nil {
		return nil, err
	}
	styles, err := x.Expand(cat)
	if err != nil {
		return nil, err
	}
	cov := Classify(cat, styles)
	t := &Table{
		Catalog: cat,
		Styles:  styles,
		Ranges:  Compile(cov),
		Stats:   cov.stats,
	}
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return t, nil
}

// Validate checks the invariants of a table: style indices are consecutive
// and refer to existing scripts, every range refers to a base style, and the
// ranges are sorted, disjoint and maximal.
func (t *Table) Validate() error {
	if t == nil || t.Catalog == nil || t.Styles == nil {
		return fmt.Errorf("style table is incomplete")
	}
	for i := 0; i < t.Styles.Len(); i++ {
		s := t.Styles.Style(i)
		if s.Index != i {
			return fmt.Errorf("style %s has index %d at position %d", s.Symbol, s.Index, i)
		}
		if s.Script < 0 || s.Script >= t.Catalog.Len() {
			return fmt.Errorf("style %s refers to unknown script %d", s.Symbol, s.Script)
		}
	}
	for _, r := range t.Ranges {
		if r.Style < 0 || r.Style >= t.Styles.Len() {
			return fmt.Errorf("range %v refers to unknown style", r)
		}
		if !t.Styles.Style(r.Style).IsBase() {
			return fmt.Errorf("range %v refers to feature style %s", r, t.Styles.Style(r.Style).Symbol)
		}
	}
	return t.Ranges.Validate()
}
