package afstyle

import (
	"sort"

	"github.com/go-text/typesetting/language"
	"github.com/npillmayer/autofit/aftag"
)

// ScriptReport is the audit result for a single script.
type ScriptReport struct {
	Script int
	Tag    aftag.Tag
	ScriptStats
	// Foreign counts owned code points which the Unicode Character Database
	// assigns to some other specific script. Code points of scripts Common,
	// Inherited and Unknown never count as foreign.
	Foreign int
	// Others lists the scripts of foreign code points, most frequent first.
	Others []language.Script
}

// Audit checks the coverage of every script of a table against the Unicode
// Script property. It is a diagnostic aid for catalog maintenance and does
// not influence generation.
//
// A script is compared against the Unicode script of its ISO 15924 tag. For
// scripts without a registered tag (e.g. FreeType's "KHMS") every code point
// with a specific Unicode script counts as foreign.
func Audit(t *Table) []ScriptReport {
	reports := make([]ScriptReport, t.Catalog.Len())
	others := make([]map[language.Script]int, t.Catalog.Len())
	owners := make([]language.Script, t.Catalog.Len())
	for i := range reports {
		script := t.Catalog.Script(i)
		reports[i] = ScriptReport{Script: i, Tag: script.Tag}
		owners[i] = language.Unknown
		if script.Registered {
			if s, err := language.ParseScript(script.UnicodeTag.String()); err == nil {
				owners[i] = s
			}
		}
		if i < len(t.Stats) {
			reports[i].ScriptStats = t.Stats[i]
		}
		others[i] = make(map[language.Script]int)
	}
	for _, r := range t.Ranges {
		i := t.Styles.Style(r.Style).Script
		own := owners[i]
		for c := r.First; c <= r.Last; c++ {
			switch s := language.LookupScript(c); s {
			case own, language.Common, language.Inherited, language.Unknown:
			default:
				reports[i].Foreign++
				others[i][s]++
			}
		}
	}
	for i := range reports {
		for s := range others[i] {
			reports[i].Others = append(reports[i].Others, s)
		}
		cnt := others[i]
		sort.Slice(reports[i].Others, func(a, b int) bool {
			sa, sb := reports[i].Others[a], reports[i].Others[b]
			if cnt[sa] != cnt[sb] {
				return cnt[sa] > cnt[sb]
			}
			return sa < sb
		})
		if reports[i].Foreign > 0 {
			tracer().Debugf("audit: script %s owns %d foreign code points", reports[i].Tag, reports[i].Foreign)
		}
	}
	return reports
}
