package afemit

import (
	"bytes"
	"fmt"
	"go/format"
	"io"
	"strings"

	"github.com/npillmayer/autofit/afscript"
	"github.com/npillmayer/autofit/afstyle"
)

// NonBaseFlag is or'ed into the packed style word of a range whose code
// points are non-base characters.
const NonBaseFlag = 0x100

// GoSource emits a Go source file with static tables. The file declares
// its own types and does not import this module.
type GoSource struct {
	Package string // package clause of the generated file; defaults to "afstyles"
}

// Emit writes gofmt-formatted Go source for t.
func (g GoSource) Emit(w io.Writer, t *afstyle.Table) error {
	pkg := g.Package
	if pkg == "" {
		pkg = "afstyles"
	}
	var b bytes.Buffer
	fmt.Fprintf(&b, "// Code generated by af-tools. DO NOT EDIT.\n\n")
	fmt.Fprintf(&b, "package %s\n\n", pkg)
	b.WriteString(goPreamble)
	emitScriptIDs(&b, t.Catalog)
	emitStyleIDs(&b, t.Styles)
	emitScriptClasses(&b, t.Catalog)
	emitStyleClasses(&b, t)
	emitStyleRanges(&b, t)
	src, err := format.Source(b.Bytes())
	if err != nil {
		return fmt.Errorf("generated Go source does not format: %w", err)
	}
	tracer().Debugf("Go source: %d bytes", len(src))
	_, err = w.Write(src)
	return err
}

const goPreamble = `// ScriptGroup selects the family of hinting algorithms for a script.
type ScriptGroup uint8

// Script groups.
const (
	GroupDefault ScriptGroup = iota
	GroupCJK
	GroupIndic
)

// Blue zone flags.
const (
	BlueActive              = 1 << 0
	BlueTop                 = 1 << 1
	BlueLatinSubTop         = 1 << 2
	BlueLatinNeutral        = 1 << 3
	BlueLatinBlueAdjustment = 1 << 4
	BlueLatinXHeight        = 1 << 5
	BlueLatinLong           = 1 << 6
	BlueCJKHoriz            = 1 << 2
	BlueCJKRight            = BlueTop
)

// Blue is a blue zone: characters to measure and flags qualifying the zone.
type Blue struct {
	Chars string
	Flags uint32
}

// ScriptClass describes a script.
type ScriptClass struct {
	Name            string
	Tag             string // ISO 15924
	Group           ScriptGroup
	HintTopToBottom bool
	StdChars        string
	Blues           []Blue
}

// StyleClass describes a style: a script, optionally refined by an
// OpenType feature.
type StyleClass struct {
	Name    string
	Script  ScriptID
	Feature string // empty for the base style of a script
}

// StyleRange maps code points First…Last to a packed style word: the style
// index in the lower byte, NonBase set for non-base characters.
type StyleRange struct {
	First, Last rune
	Style       uint16
}

// Packed style words.
const (
	NonBase    = 0x100
	StyleMask  = 0xff
	Unassigned = 0xff
)

`

func emitScriptIDs(b *bytes.Buffer, cat *afscript.Catalog) {
	b.WriteString("// ScriptID enumerates scripts in catalog order.\ntype ScriptID int\n\n")
	b.WriteString("// Scripts.\nconst (\n")
	for i, s := range cat.Scripts() {
		if i == 0 {
			fmt.Fprintf(b, "\tScript%s ScriptID = iota // %s\n", s.Tag, s.Name)
		} else {
			fmt.Fprintf(b, "\tScript%s // %s\n", s.Tag, s.Name)
		}
	}
	b.WriteString(")\n\n")
	b.WriteString("// ScriptIndex maps script tags to script IDs.\nvar ScriptIndex = map[string]ScriptID{\n")
	for _, s := range cat.Scripts() {
		fmt.Fprintf(b, "\t%q: Script%s,\n", s.Tag.String(), s.Tag)
	}
	b.WriteString("}\n\n")
}

func emitStyleIDs(b *bytes.Buffer, styles *afstyle.Styles) {
	b.WriteString("// StyleID enumerates styles in order of creation.\ntype StyleID int\n\n")
	b.WriteString("// Styles.\nconst (\n")
	for i, s := range styles.All() {
		if i == 0 {
			fmt.Fprintf(b, "\tStyle%s StyleID = iota\n", s.Symbol)
		} else {
			fmt.Fprintf(b, "\tStyle%s\n", s.Symbol)
		}
	}
	b.WriteString(")\n\n")
	b.WriteString("// StyleIndex maps style symbols to style IDs.\nvar StyleIndex = map[string]StyleID{\n")
	for _, s := range styles.All() {
		fmt.Fprintf(b, "\t%q: Style%s,\n", s.Symbol, s.Symbol)
	}
	b.WriteString("}\n\n")
}

func emitScriptClasses(b *bytes.Buffer, cat *afscript.Catalog) {
	b.WriteString("// ScriptClasses is indexed by ScriptID.\nvar ScriptClasses = [...]ScriptClass{\n")
	for _, s := range cat.Scripts() {
		fmt.Fprintf(b, "\tScript%s: {\n", s.Tag)
		fmt.Fprintf(b, "\t\tName: %q,\n", s.Name)
		fmt.Fprintf(b, "\t\tTag: %q,\n", s.UnicodeTag.String())
		fmt.Fprintf(b, "\t\tGroup: Group%s,\n", groupName(s.Group))
		if s.HintTopToBottom {
			b.WriteString("\t\tHintTopToBottom: true,\n")
		}
		fmt.Fprintf(b, "\t\tStdChars: %q,\n", s.StdChars)
		if len(s.Blues) > 0 {
			b.WriteString("\t\tBlues: []Blue{\n")
			for _, blue := range s.Blues {
				fmt.Fprintf(b, "\t\t\t{%q, %s},\n", blue.Chars, flagsExpr(blue.Flags, s.Group))
			}
			b.WriteString("\t\t},\n")
		}
		b.WriteString("\t},\n")
	}
	b.WriteString("}\n\n")
}

func emitStyleClasses(b *bytes.Buffer, t *afstyle.Table) {
	b.WriteString("// StyleClasses is indexed by StyleID.\nvar StyleClasses = [...]StyleClass{\n")
	for _, s := range t.Styles.All() {
		script := t.Catalog.Tag(s.Script)
		if s.IsBase() {
			fmt.Fprintf(b, "\tStyle%s: {Name: %q, Script: Script%s},\n", s.Symbol, s.Name, script)
		} else {
			fmt.Fprintf(b, "\tStyle%s: {Name: %q, Script: Script%s, Feature: %q},\n",
				s.Symbol, s.Name, script, s.Feature.String())
		}
	}
	b.WriteString("}\n\n")
}

func emitStyleRanges(b *bytes.Buffer, t *afstyle.Table) {
	b.WriteString("// StyleRanges is sorted by code point. Ranges are disjoint.\n")
	b.WriteString("var StyleRanges = [...]StyleRange{\n")
	for _, r := range t.Ranges {
		style := "Style" + t.Styles.Style(r.Style).Symbol
		if r.NonBase {
			style += " | NonBase"
		}
		fmt.Fprintf(b, "\t{0x%04X, 0x%04X, uint16(%s)},\n", r.First, r.Last, style)
	}
	b.WriteString("}\n")
}

// PackedStyle returns the style word of a range as written by GoSource.
func PackedStyle(r afstyle.Range) uint16 {
	w := uint16(r.Style)
	if r.NonBase {
		w |= NonBaseFlag
	}
	return w
}

func groupName(g afscript.Group) string {
	switch g {
	case afscript.GroupCJK:
		return "CJK"
	case afscript.GroupIndic:
		return "Indic"
	}
	return "Default"
}

type flagName struct {
	name string
	flag afscript.BlueFlags
}

var (
	commonFlagNames = []flagName{
		{"BlueActive", afscript.BlueActive},
		{"BlueTop", afscript.BlueTop},
	}
	latinFlagNames = []flagName{
		{"BlueLatinSubTop", afscript.BlueLatinSubTop},
		{"BlueLatinNeutral", afscript.BlueLatinNeutral},
		{"BlueLatinBlueAdjustment", afscript.BlueLatinBlueAdjustment},
		{"BlueLatinXHeight", afscript.BlueLatinXHeight},
		{"BlueLatinLong", afscript.BlueLatinLong},
	}
	cjkFlagNames = []flagName{
		{"BlueCJKHoriz", afscript.BlueCJKHoriz},
	}
)

// flagsExpr renders blue flags as an expression of the generated constants.
// CJK scripts use the CJK names for aliased bits.
func flagsExpr(f afscript.BlueFlags, g afscript.Group) string {
	if f == 0 {
		return "0"
	}
	names := append([]flagName{}, commonFlagNames...)
	if g == afscript.GroupCJK {
		names = append(names, cjkFlagNames...)
	} else {
		names = append(names, latinFlagNames...)
	}
	var parts []string
	rest := f
	for _, n := range names {
		if rest&n.flag != 0 {
			parts = append(parts, n.name)
			rest &^= n.flag
		}
	}
	if rest != 0 {
		parts = append(parts, fmt.Sprintf("0x%x", uint32(rest)))
	}
	return strings.Join(parts, " | ")
}
