/*
Package aftag provides 4-letter tags as used by the autohinter tables for
scripts and typographic features.

Tags are stored the same way OpenType stores them, as four bytes packed into
a uint32. Tags handled by this package are restricted to ASCII letters and
digits, starting with a letter, because tags double as symbolic names in
generated source code.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>
*/
package aftag

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"
)

// Tag is an array of four uint8s (length = 32 bits) used to identify a
// script or a feature.
type Tag uint32

// MakeTag creates a Tag from 4 bytes.
// If b is shorter or longer, it will be silently extended or cut as appropriate
//
//	MakeTag([]byte("LATN"))
func MakeTag(b []byte) Tag {
	if b == nil {
		b = []byte{0, 0, 0, 0}
	} else if len(b) > 4 {
		b = b[:4]
	} else if len(b) < 4 {
		b = append([]byte{0, 0, 0, 0}[:4-len(b)], b...)
	}
	return Tag(uint32(b[0])<<24 | uint32(b[1])<<16 | uint32(b[2])<<8 | uint32(b[3]))
}

// T returns a Tag from a (4-letter) string.
// If t is shorter or longer, it will be silently extended or cut as appropriate.
// T does not validate; use Parse for untrusted input.
func T(t string) Tag {
	t = (t + "    ")[:4]
	return MakeTag([]byte(t))
}

func (t Tag) String() string {
	bytes := []byte{
		byte(t >> 24 & 0xff),
		byte(t >> 16 & 0xff),
		byte(t >> 8 & 0xff),
		byte(t & 0xff),
	}
	return string(bytes)
}

// IsZero is true for the zero tag, which denotes "no tag".
func (t Tag) IsZero() bool {
	return t == 0
}

// Upper returns the tag with all letters in upper case.
func (t Tag) Upper() Tag {
	return T(strings.ToUpper(t.String()))
}

// Parse validates s and returns it as a Tag. s has to consist of exactly four
// ASCII letters or digits, with the first one being a letter.
func Parse(s string) (Tag, error) {
	if len(s) != 4 {
		return 0, fmt.Errorf("tag %q: must have exactly 4 characters, has %d", s, len(s))
	}
	for i := 0; i < 4; i++ {
		c := s[i]
		switch {
		case isLetter(c):
		case isDigit(c) && i > 0:
		case isDigit(c):
			return 0, fmt.Errorf("tag %q: must start with a letter", s)
		default:
			return 0, fmt.Errorf("tag %q: invalid character %q at position %d", s, c, i)
		}
	}
	return T(s), nil
}

// MustParse is like Parse, but panics on invalid input.
// Intended for fixed tables only.
func MustParse(s string) Tag {
	t, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return t
}

// UnicodeScriptTag derives the ISO 15924 spelling of a script tag,
// e.g. "LATN" ⇒ "Latn". Tags which are known to x/text's script registry are
// canonicalized by it, all others get an initial capital followed by lower
// case letters. The second return value reports whether the script is
// a registered one.
func UnicodeScriptTag(t Tag) (Tag, bool) {
	s := strings.ToLower(t.String())
	if script, err := language.ParseScript(s); err == nil {
		return T(script.String()), true
	}
	return T(strings.ToUpper(s[:1]) + s[1:]), false
}

func isLetter(c byte) bool {
	return ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z')
}

func isDigit(c byte) bool {
	return '0' <= c && c <= '9'
}
