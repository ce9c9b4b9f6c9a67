// Package mangle provides the concrete Name Mangler (C1): a deterministic,
// pure, injective transform from a filename to a legal leading identifier
// in the target dialect, grounded on the prefix-and-escape scheme
// thiremani-pluto's compiler uses for its own name mangling, generalized
// from "function name + argument types" to "arbitrary filename string".
package mangle

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Prefix marks every mangled identifier as file-scoped, mirroring
// thiremani-pluto's PREFIX convention of tagging mangled names so they
// cannot collide with ordinary source identifiers.
const Prefix = "module$"

const hexDigits = "0123456789abcdef"

// Mangle returns a target-dialect identifier unique to path. The filename
// is first normalized to NFC so that two byte-distinct but canonically
// equivalent paths never diverge, then every byte outside [A-Za-z0-9] is
// escaped to a fixed-width `_XX_` hex run — including the underscore
// itself, so the escape marker can never appear unescaped in the input and
// the transform stays injective.
func Mangle(path string) string {
	normalized := norm.NFC.String(path)

	var b strings.Builder
	b.Grow(len(Prefix) + len(normalized)*2)
	b.WriteString(Prefix)

	for i := 0; i < len(normalized); i++ {
		c := normalized[i]
		if isPlainByte(c) {
			b.WriteByte(c)
			continue
		}
		b.WriteByte('_')
		b.WriteByte(hexDigits[c>>4])
		b.WriteByte(hexDigits[c&0x0f])
		b.WriteByte('_')
	}
	return b.String()
}

func isPlainByte(c byte) bool {
	switch {
	case c >= 'a' && c <= 'z':
		return true
	case c >= 'A' && c <= 'Z':
		return true
	case c >= '0' && c <= '9':
		return true
	default:
		return false
	}
}
