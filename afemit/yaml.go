package afemit

import (
	"fmt"
	"io"

	"github.com/npillmayer/autofit/afstyle"
	"gopkg.in/yaml.v3"
)

// YAML emits a style table as a single YAML document with the collections
// scripts, styles and ranges.
type YAML struct{}

type yamlTable struct {
	Scripts []yamlScript `yaml:"scripts"`
	Styles  []yamlStyle  `yaml:"styles"`
	Ranges  []yamlRange  `yaml:"ranges"`
}

type yamlScript struct {
	Index           int        `yaml:"index"`
	Name            string     `yaml:"name"`
	Tag             string     `yaml:"tag"`
	UnicodeTag      string     `yaml:"unicode_tag"`
	Group           string     `yaml:"group"`
	HintTopToBottom bool       `yaml:"hint_top_to_bottom,omitempty"`
	StdChars        string     `yaml:"std_chars"`
	Blues           []yamlBlue `yaml:"blues,omitempty"`
}

type yamlBlue struct {
	Chars string `yaml:"chars"`
	Flags string `yaml:"flags"`
}

type yamlStyle struct {
	Index   int    `yaml:"index"`
	Symbol  string `yaml:"symbol"`
	Name    string `yaml:"name"`
	Script  string `yaml:"script"`
	Feature string `yaml:"feature,omitempty"`
}

type yamlRange struct {
	Range   string `yaml:"range"`
	Style   string `yaml:"style"`
	Word    string `yaml:"word"`
	NonBase bool   `yaml:"non_base,omitempty"`
}

// Emit writes t as YAML.
func (YAML) Emit(w io.Writer, t *afstyle.Table) error {
	doc := yamlTable{}
	for _, s := range t.Catalog.Scripts() {
		ys := yamlScript{
			Index:           s.Index,
			Name:            s.Name,
			Tag:             s.Tag.String(),
			UnicodeTag:      s.UnicodeTag.String(),
			Group:           s.Group.String(),
			HintTopToBottom: s.HintTopToBottom,
			StdChars:        s.StdChars,
		}
		for _, b := range s.Blues {
			ys.Blues = append(ys.Blues, yamlBlue{Chars: b.Chars, Flags: b.Flags.String()})
		}
		doc.Scripts = append(doc.Scripts, ys)
	}
	for _, s := range t.Styles.All() {
		ys := yamlStyle{
			Index:  s.Index,
			Symbol: s.Symbol,
			Name:   s.Name,
			Script: t.Catalog.Tag(s.Script).String(),
		}
		if !s.IsBase() {
			ys.Feature = s.Feature.String()
		}
		doc.Styles = append(doc.Styles, ys)
	}
	for _, r := range t.Ranges {
		doc.Ranges = append(doc.Ranges, yamlRange{
			Range:   fmt.Sprintf("%04X..%04X", r.First, r.Last),
			Style:   t.Styles.Style(r.Style).Symbol,
			Word:    fmt.Sprintf("0x%03x", PackedStyle(r)),
			NonBase: r.NonBase,
		})
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("cannot encode style table: %w", err)
	}
	return enc.Close()
}
