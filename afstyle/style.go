package afstyle

import (
	"fmt"

	"github.com/npillmayer/autofit/afscript"
	"github.com/npillmayer/autofit/aftag"
)

// Feature is an OpenType feature which gives rise to a style of its own.
type Feature struct {
	Name string    // e.g. "small capitals"
	Tag  aftag.Tag // e.g. "smcp"
}

// Features is the fixed list of features creating styles, following
// FreeType's autofit coverage. Order of the list determines the order of
// styles.
var Features = []Feature{
	{"petite capitals from capitals", aftag.T("c2cp")},
	{"small capitals from capitals", aftag.T("c2sc")},
	{"ordinals", aftag.T("ordn")},
	{"petite capitals", aftag.T("pcap")},
	{"ruby", aftag.T("ruby")},
	{"scientific inferiors", aftag.T("sinf")},
	{"small capitals", aftag.T("smcp")},
	{"subscript", aftag.T("subs")},
	{"superscript", aftag.T("sups")},
	{"titling", aftag.T("titl")},
}

// FeatureScripts lists the scripts which get a style per feature.
// FreeType calls these "meta latin".
var FeatureScripts = []aftag.Tag{aftag.T("CYRL"), aftag.T("GREK"), aftag.T("LATN")}

// MaxStyles is the maximum number of styles. The autohinter packs a style
// index into 8 bits and reserves 0xFF for "unassigned".
const MaxStyles = 0xFF

// Expander derives styles from scripts. The zero value creates exactly one
// style per script.
type Expander struct {
	Features []Feature   // features to create styles for, in order
	Scripts  []aftag.Tag // scripts receiving feature styles
}

// DefaultExpander uses the fixed lists Features and FeatureScripts.
var DefaultExpander = Expander{Features: Features, Scripts: FeatureScripts}

func (x Expander) hasFeatures(tag aftag.Tag) bool {
	for _, t := range x.Scripts {
		if t == tag {
			return true
		}
	}
	return false
}

// Style is a script, optionally refined by a typographic feature.
type Style struct {
	Index   int       // global index, 0…n-1, in order of creation
	Name    string    // e.g. "Latin small capitals"
	Symbol  string    // symbolic name, e.g. "LATN_SMCP"; "LATN" for base styles
	Script  int       // index of the owning script in the catalog
	Feature aftag.Tag // zero for base styles
}

// IsBase is true for the one style of a script which is not tied to a feature.
func (s Style) IsBase() bool {
	return s.Feature.IsZero()
}

// Styles is the list of styles derived from a catalog. Styles are immutable.
type Styles struct {
	styles   []Style
	bySymbol map[string]int
	base     []int // script index → base style index
}

// Expand creates styles for every script of a catalog, in catalog order. A
// script on the expander's script list first creates one style per feature,
// in feature order, then its base style. Other scripts create their base
// style only. Style indices are consecutive, starting at 0.
//
// Colliding symbolic names and exceeding MaxStyles are configuration errors.
func (x Expander) Expand(cat *afscript.Catalog) (*Styles, error) {
	var errs afscript.ConfigErrors
	for i, f := range x.Features {
		if _, err := aftag.Parse(f.Tag.String()); err != nil {
			errs = appendError(errs, "expander", fmt.Sprintf("features[%d]", i), err.Error())
		}
	}
	if len(errs) > 0 {
		return nil, errs
	}
	st := &Styles{
		bySymbol: make(map[string]int),
		base:     make([]int, cat.Len()),
	}
	add := func(s Style) {
		s.Index = len(st.styles)
		if prev, dup := st.bySymbol[s.Symbol]; dup {
			errs = appendError(errs, cat.Tag(s.Script).String(), "style",
				fmt.Sprintf("symbolic name %s already used by style #%d", s.Symbol, prev))
		} else {
			st.bySymbol[s.Symbol] = s.Index
		}
		st.styles = append(st.styles, s)
	}
	for i := 0; i < cat.Len(); i++ {
		tag, name := cat.Tag(i), cat.Name(i)
		if x.hasFeatures(tag) {
			for _, f := range x.Features {
				add(Style{
					Name:    name + " " + f.Name,
					Symbol:  tag.String() + "_" + f.Tag.Upper().String(),
					Script:  i,
					Feature: f.Tag,
				})
			}
		}
		st.base[i] = len(st.styles)
		add(Style{Name: name, Symbol: tag.String(), Script: i})
	}
	if len(st.styles) > MaxStyles {
		errs = appendError(errs, "catalog", "", fmt.Sprintf("%d styles exceed the maximum of %d", len(st.styles), MaxStyles))
	}
	if len(errs) > 0 {
		return nil, errs
	}
	tracer().Infof("%d styles for %d scripts", len(st.styles), cat.Len())
	return st, nil
}

// Len returns the number of styles.
func (st *Styles) Len() int {
	if st == nil {
		return 0
	}
	return len(st.styles)
}

// Style returns style i.
func (st *Styles) Style(i int) Style {
	return st.styles[i]
}

// All returns all styles in index order.
func (st *Styles) All() []Style {
	return append([]Style(nil), st.styles...)
}

// Lookup finds a style by its symbolic name.
func (st *Styles) Lookup(symbol string) (int, bool) {
	i, ok := st.bySymbol[symbol]
	return i, ok
}

// Base returns the index of the base style of script i. Only base styles
// receive code point coverage.
func (st *Styles) Base(script int) int {
	return st.base[script]
}

func appendError(errs afscript.ConfigErrors, script, field, issue string) afscript.ConfigErrors {
	tracer().Errorf("styles: %s/%s: %s", script, field, issue)
	return append(errs, afscript.ConfigError{Script: script, Field: field, Issue: issue})
}
