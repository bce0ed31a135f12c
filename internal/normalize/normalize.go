// Package normalize implements the common normalizer (component C7):
// character-level rewrites applied to both sides after their side-specific
// cleaning (internal/lower, internal/textclean), gated on asymmetry so a
// rewrite never erases a distinction the two sides actually disagree about.
package normalize

import "strings"

// pair is one (fancy, plain) rewrite spec.md §4.6 enumerates.
type pair struct {
	fancy string
	plain string
}

// pairs is checked in order; order does not affect the result since every
// fancy form is disjoint, but keeping it matches the order spec.md §4.6
// lists them in.
var pairs = []pair{
	{"‘", "'"}, {"’", "'"}, // curly single quotes
	{"“", "\""}, {"”", "\""}, // curly double quotes
	{"º", "o"}, {"ª", "a"}, // ordinal letters
	{"–", "-"},   // en-dash
	{"—", "--"},  // em-dash
	{"⁄", "/"},   // fraction slash
	{"′", "'"},   // prime
	{"″", "''"},  // double prime
	{"‴", "'''"}, // triple prime
	{"₀", "0"}, {"₁", "1"}, {"₂", "2"}, {"₃", "3"}, {"₄", "4"},
	{"₅", "5"}, {"₆", "6"}, {"₇", "7"}, {"₈", "8"}, {"₉", "9"}, // subscript digits
	{"⁰", "0"}, {"¹", "1"}, {"²", "2"}, {"³", "3"}, {"⁴", "4"},
	{"⁵", "5"}, {"⁶", "6"}, {"⁷", "7"}, {"⁸", "8"}, {"⁹", "9"}, // superscript digits
}

// Apply runs the C7 normalizer over the two sides' already-lowered/cleaned
// text. It returns the rewritten (left, right) pair; ignoreCase folds
// both to lowercase after the asymmetry-gated rewrites.
//
// Ligatures (œ, [oe], oe) are intentionally absent from pairs: spec.md §4.6
// treats them as ordinary letters, not a normalization target.
func Apply(left, right string, ignoreCase bool) (string, string) {
	for _, p := range pairs {
		leftHas := strings.Contains(left, p.fancy)
		rightHas := strings.Contains(right, p.fancy)
		if !leftHas && !rightHas {
			continue
		}
		// Rewrite only the side(s) where the other side has zero
		// occurrences of the fancy form -- a rewrite is never applied
		// to a side when both sides agree on using the fancy form.
		if !rightHas {
			left = strings.ReplaceAll(left, p.fancy, p.plain)
		}
		if !leftHas {
			right = strings.ReplaceAll(right, p.fancy, p.plain)
		}
	}

	if ignoreCase {
		left = strings.ToLower(left)
		right = strings.ToLower(right)
	}

	return left, right
}
