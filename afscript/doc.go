/*
Package afscript builds the catalog of scripts known to the autohinter.

Input is an ordered sequence of script definitions, either bundled with this
package (see Default) or loaded from a YAML catalog file. Every definition
holds the script's tag, coverage ranges of Unicode code points and reference
characters for the computation of blue zones.

Order of definitions is significant. It determines the index of each script
and, further down the pipeline, which script wins a code point declared by
more than one script. Build therefore never re-orders its input.

# Status

The bundled catalog follows FreeType's autofit coverage. Sample characters of
a number of scripts are still missing from it.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>
*/
package afscript

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'autofit.gen'
func tracer() tracing.Trace {
	return tracing.Select("autofit.gen")
}
