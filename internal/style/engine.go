package style

import (
	"strings"
	"unicode"

	"golang.org/x/net/html"

	"github.com/dproofers/ppcomp/internal/dom"
)

// Apply walks sheet's rules strictly in document order and mutates tree
// accordingly (spec.md §4.3, component C4). For every rule it first
// snapshots each comma-joined selector's own match set, independently,
// before applying any declaration -- so a rule that re-parents or prunes
// still sees the tree as it stood when the rule started (spec.md: "a rule
// sees a consistent view even if it re-parents"), while keeping each
// selector's pseudo-element and element set paired with only that
// selector's matches. A rule like `i:before, b:after { content: "X" }`
// must prepend to `<i>` and append to `<b>` -- never both to both -- so
// declarations are applied per selector against that selector's own
// snapshot, not a union across the whole rule. Declarations run in source
// order within each selector's pass. Rule application is not
// transactional: a declaration that fails on one element does not roll
// back earlier successful declarations on that or any other element.
func Apply(tree *dom.Tree, sheet *Stylesheet) []Warning {
	var warnings []Warning

	for _, rule := range sheet.Rules {
		snapshots := make([][]*html.Node, len(rule.Selectors))
		for i, sel := range rule.Selectors {
			snapshots[i] = sel.MatchAll(tree.Root)
		}

		for i, sel := range rule.Selectors {
			for _, decl := range rule.Declarations {
				for _, el := range snapshots[i] {
					if !dom.IsElement(el) {
						continue
					}
					if err := applyDeclaration(tree, el, sel.Pseudo, decl); err != "" {
						warnings = append(warnings, Warning{
							SourceOrder: rule.SourceOrder,
							Selector:    sel.Raw,
							Property:    decl.Property,
							Message:     err,
						})
					}
				}
			}
		}
	}

	return warnings
}

// applyDeclaration applies one declaration to one matched element, per the
// table in spec.md §4.3. It returns a non-empty message on failure (graft
// step resolution failure being the only case where the element is
// genuinely left unmodified); all other declarations either succeed or are
// no-ops.
func applyDeclaration(tree *dom.Tree, el *html.Node, pseudo PseudoElement, decl Declaration) string {
	switch decl.Property {
	case "content", "_replace_with_attr":
		applyContent(el, pseudo, resolveValues(el, decl.Values))
		return ""

	case "text-transform":
		transform := decl.Values[0].Literal
		for _, d := range dom.Descendants(el) {
			if dom.IsText(d) {
				d.Data = applyCaseTransform(d.Data, transform)
			}
		}
		return ""

	case "text-replace":
		needle, replacement := decl.Values[0].Literal, decl.Values[1].Literal
		for _, d := range dom.Descendants(el) {
			if dom.IsText(d) {
				d.Data = strings.ReplaceAll(d.Data, needle, replacement)
			}
		}
		return ""

	case "display":
		tree.Suppress(el)
		return ""

	case "_graft":
		if ok := graft(el, decl.Steps); !ok {
			return "graft path could not be resolved, element left in place"
		}
		return ""
	}

	return "unhandled declaration"
}

// applyContent implements the content/:before/:after table in spec.md §4.3.
func applyContent(el *html.Node, pseudo PseudoElement, text string) {
	switch pseudo {
	case PseudoBefore:
		dom.PrependChild(el, dom.NewText(text))
	case PseudoAfter:
		el.AppendChild(dom.NewText(text))
	default:
		if run := dom.LeadingTextRun(el); run != nil {
			run.Data = text
		} else {
			dom.PrependChild(el, dom.NewText(text))
		}
	}
}

// resolveValues concatenates a declaration's value list in order. attr(X)
// resolves to the matched element's X attribute (empty string if absent);
// the bare content keyword resolves to the element's current leading text
// run, evaluated at the moment this declaration runs.
func resolveValues(el *html.Node, values []Value) string {
	var b strings.Builder
	for _, v := range values {
		switch v.Kind {
		case ValueLiteral:
			b.WriteString(v.Literal)
		case ValueAttr:
			val, _ := dom.Attr(el, v.AttrName)
			b.WriteString(val)
		case ValueContent:
			if run := dom.LeadingTextRun(el); run != nil {
				b.WriteString(run.Data)
			}
		}
	}
	return b.String()
}

// applyCaseTransform rewrites s per the named text-transform value.
// capitalize uppercases the first alphabetic code point of each
// whitespace-delimited word and lowercases the rest (spec.md §4.3).
func applyCaseTransform(s, transform string) string {
	switch transform {
	case "uppercase":
		return strings.ToUpper(s)
	case "lowercase":
		return strings.ToLower(s)
	case "capitalize":
		return capitalize(s)
	default:
		return s
	}
}

func capitalize(s string) string {
	var b strings.Builder
	atWordStart := true
	firstLetterDone := false

	for _, r := range s {
		if unicode.IsSpace(r) {
			b.WriteRune(r)
			atWordStart = true
			firstLetterDone = false
			continue
		}
		if atWordStart && !firstLetterDone && unicode.IsLetter(r) {
			b.WriteRune(unicode.ToUpper(r))
			firstLetterDone = true
			continue
		}
		if atWordStart && !firstLetterDone {
			// leading non-letters (digits, punctuation) before the word's
			// first alphabetic code point: copy verbatim, keep waiting.
			b.WriteRune(r)
			continue
		}
		b.WriteRune(unicode.ToLower(r))
	}

	return b.String()
}

// graft resolves decl.Steps starting from el itself, then -- only if every
// step succeeds -- detaches el and appends it as the last child of the
// resolved node (spec.md §4.3 _graft). Steps are resolved against the
// original tree shape; nothing is mutated until the full path succeeds.
func graft(el *html.Node, steps []string) bool {
	cur := el
	for _, step := range steps {
		switch step {
		case "parent":
			if cur.Parent == nil {
				return false
			}
			cur = cur.Parent
		case "prev-sib":
			if cur.PrevSibling == nil {
				return false
			}
			cur = cur.PrevSibling
		case "next-sib":
			if cur.NextSibling == nil {
				return false
			}
			cur = cur.NextSibling
		default:
			return false
		}
	}

	dom.Graft(el, cur)
	return true
}
