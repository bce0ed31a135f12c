// Command ppcomp prepares two renditions of a proofed text for an
// external word-diff: it lowers HTML to flat text or cleans raw text per
// spec.md §4.4-4.5, normalizes both sides (§4.6), and optionally splits
// out footnotes (§4.7). The flag surface mirrors the teacher's
// cmd/inliner layout -- one flat var block, a validate-then-dispatch
// main, small single-purpose run* functions.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/dproofers/ppcomp/internal/config"
	"github.com/dproofers/ppcomp/pkg/ppcomp"
)

var (
	leftFile  = flag.String("left", "", "First input file (required)")
	rightFile = flag.String("right", "", "Second input file (required)")
	outDir    = flag.String("out-dir", "", "Directory to write the four output streams (default: stdout)")

	ignoreCase       = flag.Bool("ignore-case", false, "Fold both streams to lowercase after normalization")
	extractFootnotes = flag.Bool("extract-footnotes", false, "Split recognized footnote blocks into a separate stream")

	suppressFootnoteTags     = flag.Bool("suppress-footnote-tags", false, "display:none footnote elements instead of lowering them")
	suppressIllustrationTags = flag.Bool("suppress-illustration-tags", false, "display:none illustration elements")
	suppressSidenoteTags     = flag.Bool("suppress-sidenote-tags", false, "display:none sidenote elements")

	ignoreFormat          = flag.Bool("ignore-format", false, "Drop <i>/<b> markup instead of converting to sentinels (rounds text)")
	suppressProofersNotes = flag.Bool("suppress-proofers-notes", false, "Strip [**proofer note] annotations (rounds text)")
	regroupSplitWords     = flag.Bool("regroup-split-words", false, "Rejoin words split across a line break (rounds text)")
	txtCleanupType        = flag.String("txt-cleanup-type", "b", "Rounds-text cleanup depth: b(est), p(roofers), n(one)")

	cssAddIllustration = flag.Bool("css-add-illustration", false, "Synthesize [Illustration: ...] bracketing for .figcenter")
	cssAddSidenote     = flag.Bool("css-add-sidenote", false, "Synthesize [Sidenote: ...] bracketing for .sidenote")
	suppressNBSPNum    = flag.Bool("suppress-nbsp-num", false, "Strip NBSP flanked by digits")
	ignoreZeroSpace    = flag.Bool("ignore-0-space", false, "Strip zero-width spaces")
	cssSmcap           = flag.String("css-smcap", "", "Small-caps transform for .smcap: U(pper), L(ower), T(itle)")
	cssBold            = flag.String("css-bold", "", "Override the default \"=\" bold sentinel")
	cssNoDefault       = flag.Bool("css-no-default", false, "Disable the built-in default stylesheet")
	simpleHTML         = flag.Bool("simple-html", false, "Use the reduced default stylesheet (no page-number stripping)")
	cssGreekTitlePlus  = flag.Bool("css-greek-title-plus", false, "Deprecated: wrap *[lang=grc] title attributes in +...+")

	verbose = flag.Bool("verbose", false, "Report warnings from the transform engine")
)

// cssFlags collects repeatable --css CSS values (spec.md §6: "--css CSS
// (repeatable)"), in the teacher's style of a flag.Value implementation
// for an accumulating slice flag.
type cssFlags []string

func (c *cssFlags) String() string { return fmt.Sprint([]string(*c)) }
func (c *cssFlags) Set(v string) error {
	*c = append(*c, v)
	return nil
}

var extraCSS cssFlags

func main() {
	flag.Var(&extraCSS, "css", "Extra mini-CSS rule text (repeatable)")
	flag.Parse()

	if err := validateArgs(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		flag.Usage()
		os.Exit(1)
	}

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func validateArgs() error {
	if *leftFile == "" || *rightFile == "" {
		return fmt.Errorf("both -left and -right are required")
	}
	switch *txtCleanupType {
	case "b", "p", "n":
	default:
		return fmt.Errorf("invalid -txt-cleanup-type: %s (valid: b, p, n)", *txtCleanupType)
	}
	switch *cssSmcap {
	case "", "U", "L", "T":
	default:
		return fmt.Errorf("invalid -css-smcap: %s (valid: U, L, T)", *cssSmcap)
	}
	return nil
}

func buildOptions() config.Options {
	return config.Options{
		IgnoreCase:               *ignoreCase,
		ExtractFootnotes:         *extractFootnotes,
		SuppressFootnoteTags:     *suppressFootnoteTags,
		SuppressIllustrationTags: *suppressIllustrationTags,
		SuppressSidenoteTags:     *suppressSidenoteTags,

		IgnoreFormat:          *ignoreFormat,
		SuppressProofersNotes: *suppressProofersNotes,
		RegroupSplitWords:     *regroupSplitWords,
		TxtCleanupType:        config.ParseCleanupType(*txtCleanupType),

		AddIllustration:    *cssAddIllustration,
		AddSidenote:        *cssAddSidenote,
		SuppressNBSPNum:    *suppressNBSPNum,
		IgnoreZeroSpace:    *ignoreZeroSpace,
		SmallCapsTransform: *cssSmcap,
		BoldSentinel:       *cssBold,
		ExtraCSS:           append([]string(nil), extraCSS...),
		NoDefaultCSS:       *cssNoDefault,
		SimpleHTML:         *simpleHTML,
		GreekTitlePlus:      *cssGreekTitlePlus,
	}
}

func run() error {
	leftText, err := os.ReadFile(*leftFile)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", *leftFile, err)
	}
	rightText, err := os.ReadFile(*rightFile)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", *rightFile, err)
	}

	opts := buildOptions()
	result, err := ppcomp.Compare(
		ppcomp.Input{Name: *leftFile, Text: string(leftText)},
		ppcomp.Input{Name: *rightFile, Text: string(rightText)},
		opts,
	)
	if err != nil {
		return err
	}

	if *verbose {
		for _, w := range result.Left.Warnings {
			fmt.Fprintf(os.Stderr, "left: %s\n", w.String())
		}
		for _, w := range result.Right.Warnings {
			fmt.Fprintf(os.Stderr, "right: %s\n", w.String())
		}
	}

	if *outDir == "" {
		fmt.Println(result.Left.Main)
		fmt.Println("---")
		fmt.Println(result.Right.Main)
		if opts.ExtractFootnotes {
			fmt.Println("--- left footnotes ---")
			fmt.Println(result.Left.Footnotes)
			fmt.Println("--- right footnotes ---")
			fmt.Println(result.Right.Footnotes)
		}
		return nil
	}

	if err := os.MkdirAll(*outDir, 0o755); err != nil {
		return fmt.Errorf("failed to create output directory %s: %w", *outDir, err)
	}
	writes := map[string]string{
		"left.txt":           result.Left.Main,
		"right.txt":          result.Right.Main,
		"left.footnotes.txt":  result.Left.Footnotes,
		"right.footnotes.txt": result.Right.Footnotes,
	}
	for name, content := range writes {
		path := filepath.Join(*outDir, name)
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			return fmt.Errorf("failed to write %s: %w", path, err)
		}
	}
	return nil
}
