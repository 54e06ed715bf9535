package afscript

import (
	"fmt"
	"strings"
)

// BlueFlags qualify a blue zone. The flags are carried through to the
// generated tables without interpretation; their values match what the
// autohinter's Latin and CJK modules expect.
type BlueFlags uint32

// Blue zone flags. CJK flags re-use bits of the Latin flags, as the two sets
// are never used by the same script.
const (
	BlueActive              BlueFlags = 1 << 0
	BlueTop                 BlueFlags = 1 << 1
	BlueLatinSubTop         BlueFlags = 1 << 2
	BlueLatinNeutral        BlueFlags = 1 << 3
	BlueLatinBlueAdjustment BlueFlags = 1 << 4
	BlueLatinXHeight        BlueFlags = 1 << 5
	BlueLatinLong           BlueFlags = 1 << 6
	BlueCJKHoriz            BlueFlags = 1 << 2
	BlueCJKRight            BlueFlags = BlueTop
)

// blueFlagNames lists flag names as used in catalog files, in output order.
// Aliased bits appear with their Latin name first.
var blueFlagNames = []struct {
	name string
	flag BlueFlags
}{
	{"ACTIVE", BlueActive},
	{"TOP", BlueTop},
	{"LATIN_SUB_TOP", BlueLatinSubTop},
	{"LATIN_NEUTRAL", BlueLatinNeutral},
	{"LATIN_BLUE_ADJUSTMENT", BlueLatinBlueAdjustment},
	{"LATIN_X_HEIGHT", BlueLatinXHeight},
	{"LATIN_LONG", BlueLatinLong},
	{"CJK_HORIZ", BlueCJKHoriz},
	{"CJK_RIGHT", BlueCJKRight},
}

// ParseBlueFlags parses a flag expression like "TOP | LATIN_X_HEIGHT".
// "0" and the empty string denote no flags.
func ParseBlueFlags(expr string) (BlueFlags, error) {
	var flags BlueFlags
	for _, part := range strings.Split(expr, "|") {
		name := strings.TrimSpace(part)
		if name == "" || name == "0" {
			continue
		}
		found := false
		for _, f := range blueFlagNames {
			if f.name == name {
				flags |= f.flag
				found = true
				break
			}
		}
		if !found {
			return 0, fmt.Errorf("unknown blue zone flag %q", name)
		}
	}
	return flags, nil
}

// String returns a flag expression for f. As CJK flags alias Latin flags,
// aliased bits are printed with their Latin names.
func (f BlueFlags) String() string {
	if f == 0 {
		return "0"
	}
	var names []string
	var seen BlueFlags
	for _, fl := range blueFlagNames {
		if f&fl.flag != 0 && seen&fl.flag == 0 {
			names = append(names, fl.name)
			seen |= fl.flag
		}
	}
	if rest := f &^ seen; rest != 0 {
		names = append(names, fmt.Sprintf("%#x", uint32(rest)))
	}
	return strings.Join(names, " | ")
}

// Blue is a blue zone: a string of reference characters together with
// flags qualifying the zone.
type Blue struct {
	Chars string
	Flags BlueFlags
}
