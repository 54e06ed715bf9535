/*
Package afemit writes compiled style tables to files.

An Emitter serializes a table into the format expected by a consumer. Two
emitters are provided: GoSource creates a Go source file with static tables
for the autohinter, YAML creates a human readable dump, convenient for
reviewing changes to a catalog.

WriteFile is the only operation of this module which touches the file system.
It never leaves a partially written output file behind.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>
*/
package afemit

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'autofit.gen'
func tracer() tracing.Trace {
	return tracing.Select("autofit.gen")
}
