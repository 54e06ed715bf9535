/*
Package autofit generates the static style tables of an autohinter.

An autohinter needs to know, for every Unicode code point, which writing
system (script) it belongs to, and which hinting style applies to it. This
module derives these tables from a catalog of script definitions:

  - afscript holds the script catalog, its file format and validation
  - afstyle expands scripts into styles, classifies code points and compiles
    them into sorted, disjoint ranges
  - afemit writes the resulting tables as Go source or YAML

This package ties the steps together. A bundled catalog, modelled after the
scripts supported by FreeType's autofit module, is available as
afscript.Default().

# Status

Blue zone sample strings are missing for a number of bundled scripts; see
package afscript.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>
*/
package autofit

import (
	"github.com/npillmayer/autofit/afemit"
	"github.com/npillmayer/autofit/afscript"
	"github.com/npillmayer/autofit/afstyle"
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'autofit.gen'
func tracer() tracing.Trace {
	return tracing.Select("autofit.gen")
}

// Generate creates the style tables for a list of script definitions, using
// the default set of feature styles.
func Generate(defs []afscript.Definition) (*afstyle.Table, error) {
	t, err := afstyle.Generate(defs, afstyle.DefaultExpander)
	if err != nil {
		return nil, err
	}
	tracer().Infof("generated %d scripts, %d styles, %d ranges covering %d code points",
		t.Catalog.Len(), t.Styles.Len(), len(t.Ranges), t.Ranges.Size())
	return t, nil
}

// GenerateFile creates the style tables for a list of script definitions and
// writes them to path. Nothing is written if generation fails.
func GenerateFile(defs []afscript.Definition, path string, e afemit.Emitter) error {
	t, err := Generate(defs)
	if err != nil {
		return err
	}
	return afemit.WriteFile(path, e, t)
}
