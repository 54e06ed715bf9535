package afscript

import (
	"fmt"

	"github.com/npillmayer/autofit/aftag"
)

// Group is a coarse classification of scripts. It selects which family of
// autohinting algorithms applies to a script. Within this module the group is
// carried through as metadata only.
type Group int

// Script groups.
const (
	GroupDefault Group = iota // all scripts that are neither CJK nor Indic ("Latin" in FreeType)
	GroupCJK
	GroupIndic
)

func (g Group) String() string {
	switch g {
	case GroupDefault:
		return "Default"
	case GroupCJK:
		return "Cjk"
	case GroupIndic:
		return "Indic"
	}
	return fmt.Sprintf("Group(%d)", int(g))
}

// Fixed group membership by script tag. Scripts not listed belong to GroupDefault.
var (
	CJKGroup   = []aftag.Tag{aftag.T("HANI")}
	IndicGroup = []aftag.Tag{aftag.T("LIMB"), aftag.T("ORYA"), aftag.T("SYLO"), aftag.T("TIBT")}
)

// GroupOf returns the group for a script tag.
func GroupOf(tag aftag.Tag) Group {
	for _, t := range CJKGroup {
		if t == tag {
			return GroupCJK
		}
	}
	for _, t := range IndicGroup {
		if t == tag {
			return GroupIndic
		}
	}
	return GroupDefault
}

// Script is a validated script record of a catalog.
type Script struct {
	Index           int       // position in the catalog
	Name            string    // human readable name, e.g. "Latin"
	Tag             aftag.Tag // catalog tag, e.g. "LATN"; doubles as symbolic name
	UnicodeTag      aftag.Tag // ISO 15924 spelling, e.g. "Latn"
	Registered      bool      // UnicodeTag is a registered ISO 15924 script
	Group           Group
	HintTopToBottom bool // true if outline edges are processed top to bottom
	StdChars        string
	BaseRanges      []Interval
	NonBaseRanges   []Interval
	Blues           []Blue
}

// Catalog is the ordered list of scripts. A catalog is immutable once built.
type Catalog struct {
	scripts []Script
	byTag   map[aftag.Tag]int
}

// Build validates script definitions and creates a catalog from them.
// Input order is preserved; the i-th definition becomes script i.
//
// All problems of the input are reported at once as ConfigErrors. If any
// problem is found, no catalog is returned.
func Build(defs []Definition) (*Catalog, error) {
	ec := &errorCollector{}
	cat := &Catalog{
		scripts: make([]Script, 0, len(defs)),
		byTag:   make(map[aftag.Tag]int, len(defs)),
	}
	for i, def := range defs {
		id := def.Tag
		if id == "" {
			id = fmt.Sprintf("#%d", i)
		}
		tag, err := aftag.Parse(def.Tag)
		if err != nil {
			ec.addError(id, "tag", err.Error())
		} else if prev, dup := cat.byTag[tag]; dup {
			ec.addError(id, "tag", fmt.Sprintf("duplicate tag, already used by script #%d", prev))
		} else {
			cat.byTag[tag] = i
		}
		if def.Name == "" {
			ec.addError(id, "name", "script name is missing")
		}
		script := Script{
			Index:           i,
			Name:            def.Name,
			Tag:             tag,
			Group:           GroupOf(tag),
			HintTopToBottom: def.HintTopToBottom,
			StdChars:        def.StdChars,
			BaseRanges:      checkIntervals(ec, id, "base_ranges", def.BaseRanges),
			NonBaseRanges:   checkIntervals(ec, id, "non_base_ranges", def.NonBaseRanges),
		}
		if err == nil {
			script.UnicodeTag, script.Registered = aftag.UnicodeScriptTag(tag)
			if !script.Registered {
				tracer().Infof("script %s is not a registered ISO 15924 script", tag)
			}
		}
		for j, b := range def.Blues {
			flags, err := ParseBlueFlags(b.Flags)
			if err != nil {
				ec.addError(id, fmt.Sprintf("blues[%d]", j), err.Error())
				continue
			}
			script.Blues = append(script.Blues, Blue{Chars: b.Chars, Flags: flags})
		}
		cat.scripts = append(cat.scripts, script)
	}
	if ec.hasErrors() {
		return nil, ec.err()
	}
	tracer().Infof("script catalog with %d scripts", len(cat.scripts))
	return cat, nil
}

func checkIntervals(ec *errorCollector, id, field string, ivs []Interval) []Interval {
	out := make([]Interval, len(ivs))
	for i, iv := range ivs {
		if err := iv.Validate(); err != nil {
			ec.addError(id, fmt.Sprintf("%s[%d]", field, i), err.Error())
		}
		out[i] = iv
	}
	return out
}

// Len returns the number of scripts in the catalog.
func (cat *Catalog) Len() int {
	if cat == nil {
		return 0
	}
	return len(cat.scripts)
}

// Script returns the script at catalog position i.
// The returned record shares no memory with the catalog.
func (cat *Catalog) Script(i int) Script {
	s := cat.scripts[i]
	s.BaseRanges = append([]Interval(nil), s.BaseRanges...)
	s.NonBaseRanges = append([]Interval(nil), s.NonBaseRanges...)
	s.Blues = append([]Blue(nil), s.Blues...)
	return s
}

// Scripts returns all scripts in catalog order.
func (cat *Catalog) Scripts() []Script {
	scripts := make([]Script, cat.Len())
	for i := range scripts {
		scripts[i] = cat.Script(i)
	}
	return scripts
}

// Lookup returns the catalog index of the script with the given tag.
func (cat *Catalog) Lookup(tag aftag.Tag) (int, bool) {
	if cat == nil {
		return 0, false
	}
	i, ok := cat.byTag[tag]
	return i, ok
}

// Tag returns the tag of script i, without copying the full script record.
func (cat *Catalog) Tag(i int) aftag.Tag {
	return cat.scripts[i].Tag
}

// Name returns the name of script i.
func (cat *Catalog) Name(i int) string {
	return cat.scripts[i].Name
}
