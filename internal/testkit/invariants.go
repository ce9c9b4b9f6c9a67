// Package testkit provides reusable checks for the Type Translator's
// quantified invariants, so every package that exercises translate.Translator
// can assert the same properties instead of re-deriving them ad hoc.
package testkit

import (
	"regexp"
	"strings"
)

// unknownParameterized matches the forbidden `?<...>` substring — an
// unknown sentinel must never be parameterized.
var unknownParameterized = regexp.MustCompile(`\?<`)

// NeverParameterizesUnknown reports whether s is free of the forbidden
// `?<...>` substring.
func NeverParameterizesUnknown(s string) bool {
	return !unknownParameterized.MatchString(s)
}

// balancedAngles is a crude but effective syntactic sanity check: every `<`
// a translated expression emits must be closed, and vice versa. A real
// grammar recognizer belongs in the annotator host; this is the shape of
// check a translator's own test suite can run without one.
func balancedAngles(s string) bool {
	depth := 0
	for _, r := range s {
		switch r {
		case '<':
			depth++
		case '>':
			depth--
			if depth < 0 {
				return false
			}
		}
	}
	return depth == 0
}

var balancedParensAndBraces = func(s string) bool {
	var stack []rune
	pairs := map[rune]rune{')': '(', '}': '{'}
	for _, r := range s {
		switch r {
		case '(', '{':
			stack = append(stack, r)
		case ')', '}':
			if len(stack) == 0 || stack[len(stack)-1] != pairs[r] {
				return false
			}
			stack = stack[:len(stack)-1]
		}
	}
	return len(stack) == 0
}

// IsWellFormedTypeExpression is a lightweight stand-in for "parses in the
// target grammar" (spec invariant 1): it checks bracket balance and the
// no-parameterized-unknown rule, which together catch the overwhelming
// majority of malformed output a translator bug would produce.
func IsWellFormedTypeExpression(s string) bool {
	if s == "" {
		return false
	}
	return NeverParameterizesUnknown(s) && balancedAngles(s) && balancedParensAndBraces(s)
}

// HasNoDuplicateUnionMembers reports whether a union expression of the form
// "(a|b|c)" contains no repeated member string — spec invariant 4 (union
// dedup by exact string equality).
func HasNoDuplicateUnionMembers(union string) bool {
	trimmed := strings.TrimPrefix(strings.TrimSuffix(union, ")"), "(")
	if trimmed == union {
		// not a parenthesized union; a bare single member trivially
		// has no duplicates.
		return true
	}
	members := strings.Split(trimmed, "|")
	seen := make(map[string]bool, len(members))
	for _, m := range members {
		if seen[m] {
			return false
		}
		seen[m] = true
	}
	return true
}
