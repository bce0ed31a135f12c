// Package lower implements the HTML-to-flat-text lowering pipeline
// (component C5): it parses an HTML rendition into a dom.Tree, runs the
// default stylesheet plus any caller-supplied rules through the transform
// engine (internal/style), applies the fixed pre-serialize steps spec.md
// §4.4 step 5 names, and serializes the mutated tree to flat text.
package lower

import (
	"strings"

	"github.com/dproofers/ppcomp/internal/config"
	"github.com/dproofers/ppcomp/internal/dom"
	"github.com/dproofers/ppcomp/internal/style"
)

// Result is the product of lowering one HTML rendition.
type Result struct {
	Text     string
	Warnings []style.Warning
}

// Lower runs the full C5 pipeline over htmlText.
func Lower(htmlText string, opts config.Options) (Result, error) {
	tree, err := dom.ParseString(htmlText)
	if err != nil {
		return Result{}, err
	}
	return LowerTree(tree, opts)
}

// LowerTree runs the C5 pipeline over an already-parsed tree: stylesheet
// application, pre-serialize steps, and serialization. Callers that need
// to mutate the tree before C5 sees it (C8's HTML footnote extraction,
// which suppresses footnote subtrees and inserts anchor text) parse it
// themselves and call this instead of Lower.
func LowerTree(tree *dom.Tree, opts config.Options) (Result, error) {
	parser := style.NewParser()
	var sheet style.Stylesheet
	var warnings []style.Warning

	addSource := func(src string) {
		s, w := parser.Parse(src)
		sheet.Rules = append(sheet.Rules, reorder(s.Rules, len(sheet.Rules))...)
		warnings = append(warnings, w...)
	}

	if !opts.NoDefaultCSS {
		addSource(DefaultStylesheetSource(opts))
	}
	for _, css := range opts.ExtraCSS {
		addSource(css)
	}
	addSource(synthesizeCSS(opts))

	warnings = append(warnings, style.Apply(tree, &sheet)...)

	applyPreSerializeSteps(tree, opts)

	text := Serialize(tree, opts)

	return Result{Text: text, Warnings: warnings}, nil
}

// reorder re-numbers a freshly parsed batch of rules to continue the
// running SourceOrder counter, so rule order stays "default stylesheet,
// then --css in the order given, then synthesized options" across
// multiple independent Parse calls (spec.md §4.4 steps 2-3).
func reorder(rules []style.Rule, base int) []style.Rule {
	out := make([]style.Rule, len(rules))
	for i, r := range rules {
		r.SourceOrder = base + i
		out[i] = r
	}
	return out
}

// applyPreSerializeSteps implements spec.md §4.4 step 5: structural inline
// tags are converted to text sentinels, and soft hyphen / zero-width space
// / flanked NBSP are stripped, independent of any CSS.
func applyPreSerializeSteps(tree *dom.Tree, opts config.Options) {
	type sentinelTag struct {
		tag    string
		before string
		after  string
	}
	sentinels := []sentinelTag{
		{"i", "_", "_"},
		{"em", "_", "_"},
		{"cite", "_", "_"},
		{"b", "=", "="},
		{"sup", "^{", "}"},
		{"sub", "_{", "}"},
	}
	if opts.BoldSentinel != "" {
		for i := range sentinels {
			if sentinels[i].tag == "b" {
				sentinels[i].before, sentinels[i].after = opts.BoldSentinel, opts.BoldSentinel
			}
		}
	}

	for _, st := range sentinels {
		for _, n := range dom.Descendants(tree.Root) {
			if dom.IsElement(n) && dom.TagName(n) == st.tag {
				if st.before != "" {
					dom.PrependChild(n, dom.NewText(st.before))
				}
				if st.after != "" {
					n.AppendChild(dom.NewText(st.after))
				}
			}
		}
	}

	for _, n := range dom.Descendants(tree.Root) {
		if !dom.IsText(n) {
			continue
		}
		n.Data = strings.ReplaceAll(n.Data, "­", "")
		if opts.IgnoreZeroSpace {
			n.Data = strings.ReplaceAll(n.Data, "​", "")
		}
		if opts.SuppressNBSPNum {
			n.Data = stripFlankedNBSP(n.Data)
		}
	}
}

// stripFlankedNBSP removes U+00A0 only when flanked on both sides by
// decimal digits (spec.md §4.4 step 5).
func stripFlankedNBSP(s string) string {
	runes := []rune(s)
	var b strings.Builder
	for i, r := range runes {
		if r == ' ' && i > 0 && i+1 < len(runes) &&
			isDigit(runes[i-1]) && isDigit(runes[i+1]) {
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

func isDigit(r rune) bool { return r >= '0' && r <= '9' }
