package testkit_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"tstranslate/internal/testkit"
)

func TestNeverParameterizesUnknown(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want bool
	}{
		{"plain unknown", "?", true},
		{"parameterized unknown", "?<string>", false},
		{"unknown inside union", "(?|string)", true},
		{"nested parameterized unknown", "!Array<?<string>>", false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, testkit.NeverParameterizesUnknown(tc.in))
		})
	}
}

func TestIsWellFormedTypeExpression(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want bool
	}{
		{"simple primitive", "string", true},
		{"generic reference", "!Array<string>", true},
		{"unbalanced angle", "!Array<string", false},
		{"balanced parens", "function(string): void", true},
		{"bad paren", "function(string: void", false},
		{"empty string", "", false},
		{"parameterized unknown", "!Array<?<string>>", false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, testkit.IsWellFormedTypeExpression(tc.in))
		})
	}
}

func TestHasNoDuplicateUnionMembers(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want bool
	}{
		{"no duplicates", "(string|number)", true},
		{"duplicate member", "(string|string)", false},
		{"single member not parenthesized", "string", true},
		{"three way distinct", "(string|number|boolean)", true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, testkit.HasNoDuplicateUnionMembers(tc.in))
		})
	}
}
