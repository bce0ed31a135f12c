package style

import (
	"regexp"
	"strings"

	"github.com/andybalholm/cascadia"
	"golang.org/x/net/html"
)

// pseudoElementRE recognizes a single trailing :before/::before/:after/::after
// on a compound selector. spec.md §3: "at most one, at the end".
var pseudoElementRE = regexp.MustCompile(`(?i)::?(before|after)\s*$`)

// compileCompoundSelector splits off a trailing pseudo-element and compiles
// the remainder with cascadia, which natively implements every other
// simple-selector and combinator spec.md §4.2 enumerates (tag, .class, #id,
// the four [attr] operators, and descendant/child/adjacent/general-sibling
// combinators). cascadia has no notion of ::before/::after -- they are
// pseudo-*elements*, not matched states -- so stripping them before
// compiling and tracking them separately is what lets a real CSS selector
// matching library serve a selector dialect CSS itself doesn't define.
func compileCompoundSelector(raw string) (*CompoundSelector, error) {
	pseudo := PseudoNone
	sel := strings.TrimSpace(raw)

	if m := pseudoElementRE.FindStringSubmatchIndex(sel); m != nil {
		word := strings.ToLower(sel[m[2]:m[3]])
		if word == "before" {
			pseudo = PseudoBefore
		} else {
			pseudo = PseudoAfter
		}
		sel = strings.TrimSpace(sel[:m[0]])
	}

	if sel == "" {
		sel = "*"
	}

	compiled, err := cascadia.Compile(sel)
	if err != nil {
		return nil, err
	}

	return &CompoundSelector{Raw: sel, Pseudo: pseudo, compiled: compiled}, nil
}

// Matches reports whether n satisfies the compound selector. The
// pseudo-element never participates in matching (spec.md §4.2).
func (c *CompoundSelector) Matches(n *html.Node) bool {
	return c.compiled.Match(n)
}

// MatchAll returns every descendant of root (root included) matching the
// compound selector, in document order -- used by the transform engine to
// take its pre-mutation snapshot (spec.md §4.3).
func (c *CompoundSelector) MatchAll(root *html.Node) []*html.Node {
	return c.compiled.MatchAll(root)
}
