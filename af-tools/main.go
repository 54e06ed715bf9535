package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/npillmayer/autofit"
	"github.com/npillmayer/autofit/afscript"
	"github.com/npillmayer/autofit/afstyle"
	"github.com/npillmayer/schuko/schukonf/testconfig"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/schuko/tracing/trace2go"
	"github.com/pterm/pterm"
	"github.com/thatisuday/commando"
)

// tracer traces with key 'autofit.tools'
func tracer() tracing.Trace {
	return tracing.Select("autofit.tools")
}

func main() {
	initDisplay()
	initTracing()

	commando.
		SetExecutableName("af-tools").
		SetVersion("v0.1.0").
		SetDescription("Generate and inspect autohinter style tables.")

	register("generate").
		SetDescription("Generate style tables from a script catalog and write them to a file.").
		SetShortDescription("generate tables").
		AddFlag("output,o", "output file ('-' for stdout)", commando.String, "-").
		AddFlag("format,f", "output format: go|yaml", commando.String, "go").
		AddFlag("package,p", "package name for Go output", commando.String, "afstyles").
		SetAction(runGenerateCommand)

	register("scripts").
		SetDescription("List the scripts of a catalog together with coverage statistics.").
		SetShortDescription("list scripts").
		SetAction(runScriptsCommand)

	register("styles").
		SetDescription("List the styles derived from a catalog.").
		SetShortDescription("list styles").
		AddFlag("script,s", "restrict to styles of a script (e.g. LATN)", commando.String, "-").
		SetAction(runStylesCommand)

	register("ranges").
		SetDescription("List the compiled code point ranges.").
		SetShortDescription("list ranges").
		AddFlag("style,s", "restrict to ranges of a style (e.g. LATN)", commando.String, "-").
		SetAction(runRangesCommand)

	register("audit").
		SetDescription("Compare script coverage against the Unicode Script property.").
		SetShortDescription("audit coverage").
		AddFlag("foreign,F", "show only scripts claiming foreign code points", commando.Bool, nil).
		SetAction(runAuditCommand)

	register("lookup").
		SetDescription("Show the style assigned to code points.").
		SetShortDescription("look up code points").
		AddArgument("codepoints...", "code points, e.g. U+0041 0x301 or literal characters", "").
		SetAction(runLookupCommand)

	commando.Parse(nil)
}

// register creates a sub-command with the flags every command shares.
func register(name string) *commando.Command {
	return commando.
		Register(name).
		AddFlag("catalog,c", "script catalog file ('-' for the bundled catalog)", commando.String, "-").
		AddFlag("trace,t", "trace level [Debug|Info|Error]", commando.String, "Error")
}

// We use pterm for moderately fancy output.
func initDisplay() {
	pterm.Info.Prefix = pterm.Prefix{
		Text:  " !  ",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  " Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}

func initTracing() {
	tracing.RegisterTraceAdapter("go", gologadapter.GetAdapter(), false)
	conf := testconfig.Conf{
		"tracing.adapter":     "go",
		"trace.autofit.tools": "Info",
		"trace.autofit.gen":   "Error",
	}
	if err := trace2go.ConfigureRoot(conf, "trace", trace2go.ReplaceTracers(true)); err != nil {
		fmt.Fprintln(os.Stderr, "af-tools: error configuring tracing")
		os.Exit(1)
	}
	tracing.SetTraceSelector(trace2go.Selector())
}

// setTraceLevel applies the --trace flag to all tracers of this module.
func setTraceLevel(flags map[string]commando.FlagValue) {
	name, err := flags["trace"].GetString()
	if err != nil {
		fatalf("invalid --trace flag: %v", err)
	}
	level := tracing.LevelError
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "debug":
		level = tracing.LevelDebug
	case "info":
		level = tracing.LevelInfo
	case "error", "":
	default:
		fatalf("invalid trace level: %s", name)
	}
	tracing.Select("autofit.gen").SetTraceLevel(level)
	tracer().SetTraceLevel(level)
}

// mustTable loads the catalog selected by --catalog and generates tables
// from it. Configuration errors are listed one by one before exiting.
func mustTable(flags map[string]commando.FlagValue) *afstyle.Table {
	setTraceLevel(flags)
	defs := mustCatalog(flags)
	t, err := autofit.Generate(defs)
	if err != nil {
		var cerrs afscript.ConfigErrors
		if errors.As(err, &cerrs) {
			for _, e := range cerrs {
				pterm.Error.Println(e.Error())
			}
			fatalf("catalog has %d error(s)", len(cerrs))
		}
		fatalf("%v", err)
	}
	return t
}

func mustCatalog(flags map[string]commando.FlagValue) []afscript.Definition {
	path, err := flags["catalog"].GetString()
	if err != nil {
		fatalf("invalid --catalog flag: %v", err)
	}
	if path = strings.TrimSpace(path); path == "-" || path == "" {
		return afscript.Default()
	}
	defs, err := afscript.LoadFile(path)
	if err != nil {
		fatalf("%v", err)
	}
	tracer().Infof("loaded %d script definitions from %s", len(defs), path)
	return defs
}

// optionalString returns the value of a string flag, or "" if the flag has
// been left at its default of "-".
func optionalString(flag commando.FlagValue, name string) string {
	s, err := flag.GetString()
	if err != nil {
		fatalf("invalid --%s flag: %v", name, err)
	}
	if s = strings.TrimSpace(s); s == "-" {
		return ""
	}
	return s
}

func mustFlagBool(flag commando.FlagValue, name string) bool {
	b, err := flag.GetBool()
	if err != nil {
		fatalf("invalid --%s flag: %v", name, err)
	}
	return b
}

func fatalf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(os.Stderr, "af-tools: "+format+"\n", args...)
	os.Exit(1)
}
