package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/go-text/typesetting/language"
	"github.com/npillmayer/autofit/afemit"
	"github.com/npillmayer/autofit/afstyle"
	"github.com/npillmayer/autofit/aftag"
	"github.com/pterm/pterm"
	"github.com/thatisuday/commando"
	"golang.org/x/text/unicode/runenames"
)

func runGenerateCommand(args map[string]commando.ArgValue, flags map[string]commando.FlagValue) {
	t := mustTable(flags)
	format := optionalString(flags["format"], "format")
	e, err := afemit.ByName(format, optionalString(flags["package"], "package"))
	if err != nil {
		fatalf("%v", err)
	}
	out := optionalString(flags["output"], "output")
	if out == "" {
		if err := writeTable(os.Stdout, e, t); err != nil {
			fatalf("%v", err)
		}
		return
	}
	if err := afemit.WriteFile(out, e, t); err != nil {
		fatalf("%v", err)
	}
	pterm.Info.Printf("wrote %s: %d scripts, %d styles, %d ranges\n",
		out, t.Catalog.Len(), t.Styles.Len(), len(t.Ranges))
}

// writeTable renders t completely before writing it to w.
func writeTable(w io.Writer, e afemit.Emitter, t *afstyle.Table) error {
	data, err := afemit.Render(e, t)
	if err != nil {
		return err
	}
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("cannot write output: %w", err)
	}
	return nil
}

func runScriptsCommand(args map[string]commando.ArgValue, flags map[string]commando.FlagValue) {
	t := mustTable(flags)
	pterm.DefaultTable.WithHasHeader().WithData(scriptRows(t)).Render()
}

func runStylesCommand(args map[string]commando.ArgValue, flags map[string]commando.FlagValue) {
	t := mustTable(flags)
	script := -1
	if s := optionalString(flags["script"], "script"); s != "" {
		script = mustScript(t, s)
	}
	pterm.DefaultTable.WithHasHeader().WithData(styleRows(t, script)).Render()
}

func runRangesCommand(args map[string]commando.ArgValue, flags map[string]commando.FlagValue) {
	t := mustTable(flags)
	style := -1
	if s := optionalString(flags["style"], "style"); s != "" {
		var ok bool
		if style, ok = t.Styles.Lookup(strings.ToUpper(s)); !ok {
			fatalf("unknown style %q", s)
		}
	}
	pterm.DefaultTable.WithHasHeader().WithData(rangeRows(t, style)).Render()
}

func runAuditCommand(args map[string]commando.ArgValue, flags map[string]commando.FlagValue) {
	t := mustTable(flags)
	foreignOnly := mustFlagBool(flags["foreign"], "foreign")
	pterm.DefaultTable.WithHasHeader().WithData(auditRows(t, foreignOnly)).Render()
}

func runLookupCommand(args map[string]commando.ArgValue, flags map[string]commando.FlagValue) {
	t := mustTable(flags)
	runes, err := parseCodepoints(args["codepoints"].Value)
	if err != nil {
		fatalf("%v", err)
	}
	if len(runes) == 0 {
		fatalf("no code points given")
	}
	pterm.DefaultTable.WithHasHeader().WithData(lookupRows(t, runes)).Render()
}

// --- Table rows ------------------------------------------------------------

func scriptRows(t *afstyle.Table) [][]string {
	data := [][]string{
		{"#", "Tag", "ISO", "Name", "Group", "Blues", "Declared", "Claimed", "Non-base", "Shadowed"},
	}
	for _, s := range t.Catalog.Scripts() {
		st := t.Stats[s.Index]
		data = append(data, []string{
			strconv.Itoa(s.Index),
			s.Tag.String(),
			s.UnicodeTag.String(),
			s.Name,
			s.Group.String(),
			strconv.Itoa(len(s.Blues)),
			strconv.Itoa(st.Declared),
			strconv.Itoa(st.Claimed),
			strconv.Itoa(st.NonBase),
			strconv.Itoa(st.Shadowed),
		})
	}
	return data
}

// styleRows lists styles of a script, or all styles if script < 0.
func styleRows(t *afstyle.Table, script int) [][]string {
	ranges, size := make(map[int]int), make(map[int]int)
	for _, r := range t.Ranges {
		ranges[r.Style]++
		size[r.Style] += int(r.Last-r.First) + 1
	}
	data := [][]string{{"#", "Symbol", "Name", "Script", "Feature", "Ranges", "Code points"}}
	for _, s := range t.Styles.All() {
		if script >= 0 && s.Script != script {
			continue
		}
		feature := "-"
		if !s.IsBase() {
			feature = s.Feature.String()
		}
		data = append(data, []string{
			strconv.Itoa(s.Index),
			s.Symbol,
			s.Name,
			t.Catalog.Tag(s.Script).String(),
			feature,
			strconv.Itoa(ranges[s.Index]),
			strconv.Itoa(size[s.Index]),
		})
	}
	return data
}

// rangeRows lists ranges of a style, or all ranges if style < 0.
func rangeRows(t *afstyle.Table, style int) [][]string {
	data := [][]string{{"First", "Last", "Style", "Class", "Word"}}
	for _, r := range t.Ranges {
		if style >= 0 && r.Style != style {
			continue
		}
		data = append(data, []string{
			fmt.Sprintf("U+%04X", r.First),
			fmt.Sprintf("U+%04X", r.Last),
			t.Styles.Style(r.Style).Symbol,
			className(r.NonBase),
			fmt.Sprintf("0x%03x", afemit.PackedStyle(r)),
		})
	}
	return data
}

func auditRows(t *afstyle.Table, foreignOnly bool) [][]string {
	data := [][]string{{"Tag", "Claimed", "Foreign", "Other scripts"}}
	for _, rep := range afstyle.Audit(t) {
		if foreignOnly && rep.Foreign == 0 {
			continue
		}
		others := make([]string, 0, 3)
		for i, s := range rep.Others {
			if i == 3 {
				others = append(others, "…")
				break
			}
			others = append(others, s.String())
		}
		data = append(data, []string{
			rep.Tag.String(),
			strconv.Itoa(rep.Claimed),
			strconv.Itoa(rep.Foreign),
			strings.Join(others, ", "),
		})
	}
	return data
}

func lookupRows(t *afstyle.Table, runes []rune) [][]string {
	data := [][]string{{"Code point", "Name", "Unicode script", "Style", "Class"}}
	for _, c := range runes {
		style, class := "-", "-"
		if r, ok := t.Ranges.Find(c); ok {
			style = t.Styles.Style(r.Style).Symbol
			class = className(r.NonBase)
		}
		data = append(data, []string{
			fmt.Sprintf("U+%04X", c),
			runenames.Name(c),
			language.LookupScript(c).String(),
			style,
			class,
		})
	}
	return data
}

func className(nonBase bool) string {
	if nonBase {
		return "non-base"
	}
	return "base"
}

// --- Argument parsing ------------------------------------------------------

func mustScript(t *afstyle.Table, s string) int {
	tag, err := aftag.Parse(strings.ToUpper(s))
	if err != nil {
		fatalf("%v", err)
	}
	i, ok := t.Catalog.Lookup(tag)
	if !ok {
		fatalf("unknown script %q", s)
	}
	return i
}

// parseCodepoints accepts a list of code points in hex notation (U+0041,
// 0x41, 41) or, for tokens which do not parse as hex, the characters of
// the token itself.
func parseCodepoints(spec string) ([]rune, error) {
	var out []rune
	for _, token := range splitCSVSpace(spec) {
		r, err := parseCodepointToken(token)
		if err != nil {
			if strings.HasPrefix(strings.ToUpper(token), "U+") || strings.HasPrefix(strings.ToLower(token), "0x") {
				return nil, err
			}
			out = append(out, []rune(token)...)
			continue
		}
		out = append(out, r)
	}
	return out, nil
}

func parseCodepointToken(token string) (rune, error) {
	hex := strings.TrimSpace(token)
	switch {
	case strings.HasPrefix(hex, "U+"), strings.HasPrefix(hex, "u+"):
		hex = hex[2:]
	case strings.HasPrefix(hex, "0x"), strings.HasPrefix(hex, "0X"):
		hex = hex[2:]
	case len([]rune(hex)) == 1:
		return []rune(hex)[0], nil
	}
	u, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid code point %q: %w", token, err)
	}
	if u > 0x10FFFF {
		return 0, fmt.Errorf("code point %q out of range", token)
	}
	return rune(u), nil
}

func splitCSVSpace(spec string) []string {
	return strings.FieldsFunc(spec, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\n'
	})
}
