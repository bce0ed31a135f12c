package lower

import (
	"github.com/dproofers/ppcomp/internal/config"
)

// defaultStylesheet is the page-furniture-stripping half of the default
// mini-CSS spec.md §6 enumerates. It is parsed once (internal/style.Parser)
// whenever defaults are enabled, mirroring the teacher's config-driven
// default-behavior toggles (internal/config.Default()).
//
// The other half of §6's listed defaults -- italics/emphasis/bold
// sentinels and superscript/subscript bracketing for i/em/cite/b/sup/sub --
// is deliberately NOT duplicated here as parsed rules. §4.4 step 5 already
// describes those exact conversions as pre-serialize steps applied "always,
// independent of CSS" (see applyPreSerializeSteps in lower.go); parsing
// them a second time as content:before/:after rules here would apply them
// twice whenever defaults are enabled, contradicting scenario 1
// (`<i>hello</i>` -> `_hello_`, not `__hello__`). Implementing the sentinel
// behavior once, unconditionally, in step 5 is what makes it survive
// --css-no-default too, which is the whole point of calling it
// CSS-independent.
const defaultStylesheet = `
span[class^="pagenum"], p[class^="pagenum"], div[class^="pagenum"],
span[class^="pageno"], p[class^="pageno"], div[class^="pageno"],
p[class^="page"],
span[class^="pgnum"],
div[id^="Page_"] {
	display: none;
}
`

// simpleStylesheet is the reduced default stylesheet --simple-html selects:
// page-number stripping is skipped on the assumption the input has already
// had page furniture removed upstream (SPEC_FULL.md §10).
const simpleStylesheet = ``

// greekTitlePlusStylesheet implements the deprecated but retained
// --css-greek-title-plus option (spec.md §6).
const greekTitlePlusStylesheet = `*[lang="grc"] { content: "+" attr(title) "+"; }`

// DefaultStylesheetSource returns the default stylesheet text for the given
// options. When opts.SimpleHTML is set, the reduced dialect is used.
func DefaultStylesheetSource(opts config.Options) string {
	if opts.SimpleHTML {
		return simpleStylesheet
	}
	return defaultStylesheet
}

// synthesizeCSS turns the enumerated --css-* CLI options into mini-CSS rule
// text, per spec.md §4.4 step 3. Options not set synthesize nothing.
func synthesizeCSS(opts config.Options) string {
	var out string

	// --css-bold overrides the "b" sentinel applyPreSerializeSteps uses
	// (lower.go), rather than adding a second, CSS-driven content:before/
	// :after rule -- see the comment on defaultStylesheet above.

	switch opts.SmallCapsTransform {
	case "U":
		out += ".smcap { text-transform: uppercase; }\n"
	case "L":
		out += ".smcap { text-transform: lowercase; }\n"
	case "T":
		out += ".smcap { text-transform: capitalize; }\n"
	}

	if opts.AddIllustration {
		out += `.figcenter:before { content: "[Illustration: "; }` + "\n"
		out += `.figcenter:after { content: "]"; }` + "\n"
	}

	if opts.AddSidenote {
		out += `.sidenote:before { content: "[Sidenote: "; }` + "\n"
		out += `.sidenote:after { content: "]"; }` + "\n"
	}

	if opts.SuppressFootnoteTags {
		out += `*[class*="footnote"], *[id^="Footnote_"] { display: none; }` + "\n"
	}
	if opts.SuppressIllustrationTags {
		out += `.figcenter, .illustration { display: none; }` + "\n"
	}
	if opts.SuppressSidenoteTags {
		out += `.sidenote { display: none; }` + "\n"
	}

	if opts.GreekTitlePlus {
		out += greekTitlePlusStylesheet + "\n"
	}

	return out
}
