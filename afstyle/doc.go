/*
Package afstyle compiles a script catalog into the style tables of the
autohinter.

Compilation happens in three steps, each consuming the output of the
previous one:

▪︎ Expand derives the styles from the scripts of a catalog. A style is a
script, optionally refined by an OpenType feature such as small capitals.

▪︎ Classify assigns every code point covered by some script to exactly one
style, flagged as either a base or a non-base (combining) character.

▪︎ Compile condenses the classification into a minimal, sorted list of
disjoint code point ranges, suitable for binary search.

Generate runs all steps on a list of script definitions and returns the
resulting Table.

# Precedence

Coverage of scripts overlaps. A code point is owned by the first script in
catalog order which declares it as a base character. Non-base declarations
of a script only ever affect code points owned by that very script. This
makes the result depend on catalog order and on nothing else.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>
*/
package afstyle

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'autofit.gen'
func tracer() tracing.Trace {
	return tracing.Select("autofit.gen")
}
