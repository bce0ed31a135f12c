// Package ppcomp is the public entry point: it wires components C1-C9
// together into the pipeline driver spec.md §4.8 describes -- classify
// each side's input, lower or clean it, normalize across both sides, and
// optionally split out footnotes -- mirroring the layering of the
// teacher's pkg/inliner (a thin façade over internal/{html,css,resolver})
// generalized from "inline CSS into one HTML document" to "prepare two
// renditions of the same text for a word-diff".
package ppcomp

import (
	"fmt"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/dproofers/ppcomp/internal/config"
	"github.com/dproofers/ppcomp/internal/dom"
	"github.com/dproofers/ppcomp/internal/footnote"
	"github.com/dproofers/ppcomp/internal/lower"
	"github.com/dproofers/ppcomp/internal/normalize"
	"github.com/dproofers/ppcomp/internal/style"
	"github.com/dproofers/ppcomp/internal/textclean"
)

// Kind identifies which per-side pipeline an input takes, per spec.md
// §4.8's classification by extension and name prefix.
type Kind int

const (
	// KindHTML covers .htm, .html, .xhtml inputs, lowered via C5.
	KindHTML Kind = iota
	// KindRounds covers projectID*.txt inputs, cleaned via C6's rounds path.
	KindRounds
	// KindPostProcessed covers other .txt inputs, cleaned via C6's
	// post-processed path.
	KindPostProcessed
)

// ClassifyInput implements spec.md §4.8's input classification: extension
// and name-prefix based, case-sensitive on the "projectID" prefix.
func ClassifyInput(name string) (Kind, error) {
	lowerName := strings.ToLower(name)
	base := name
	if i := strings.LastIndexByte(name, '/'); i != -1 {
		base = name[i+1:]
	}
	switch {
	case strings.HasSuffix(lowerName, ".htm"), strings.HasSuffix(lowerName, ".html"), strings.HasSuffix(lowerName, ".xhtml"):
		return KindHTML, nil
	case strings.HasPrefix(base, "projectID") && strings.HasSuffix(lowerName, ".txt"):
		return KindRounds, nil
	case strings.HasSuffix(lowerName, ".txt"):
		return KindPostProcessed, nil
	default:
		return 0, fmt.Errorf("ppcomp: unrecognized input type for %q", name)
	}
}

// Input is one side's source document.
type Input struct {
	Name string // filename, used only for classification
	Text string // file content, UTF-8
}

// Side is the fully processed output for one input: the main text stream
// ready for word-diffing, the footnote stream (empty unless
// opts.ExtractFootnotes found any), and any non-fatal warnings the
// transform engine raised.
type Side struct {
	Main      string
	Footnotes string
	Warnings  []style.Warning
}

// Result is the complete output of comparing two renditions: spec.md
// §4.8's "four streams" (left main, right main, left footnotes, right
// footnotes), carried as two Side values.
type Result struct {
	Left  Side
	Right Side
}

// processSide runs C5 or C6 (by input kind) and C8's per-side footnote
// extraction on one input: for HTML, footnotes are extracted from the
// parsed tree before lowering; for text, from the cleaned text. Cross-side C7 normalization happens afterward
// in Compare, once both sides are available.
func processSide(in Input, opts config.Options) (Side, error) {
	kind, err := ClassifyInput(in.Name)
	if err != nil {
		return Side{}, err
	}

	var main string
	var warnings []style.Warning
	var footnoteText string

	switch kind {
	case KindHTML:
		tree, perr := dom.ParseString(in.Text)
		if perr != nil {
			return Side{}, perr
		}
		if opts.ExtractFootnotes {
			footnoteText = footnote.ExtractFromTree(tree)
		}
		res, lerr := lower.LowerTree(tree, opts)
		if lerr != nil {
			return Side{}, lerr
		}
		main = res.Text
		warnings = res.Warnings
	case KindRounds:
		main = textclean.CleanRounds(in.Text, opts)
		if opts.ExtractFootnotes {
			main, footnoteText = footnote.ExtractRoundsText(main)
		}
	case KindPostProcessed:
		main = textclean.CleanPostProcessed(in.Text, opts)
		if opts.ExtractFootnotes {
			main, footnoteText = footnote.ExtractPostProcessedText(main)
		}
	}

	return Side{Main: main, Footnotes: footnoteText, Warnings: warnings}, nil
}

// Compare runs the full C9 pipeline over both sides: classify, lower or
// clean, extract footnotes, then the cross-side C7 normalizer. The two
// sides share no mutable state, so per spec.md §5 they are processed
// concurrently via errgroup; CompareSequential is the conformant
// single-threaded fallback.
func Compare(left, right Input, opts config.Options) (Result, error) {
	var leftSide, rightSide Side
	g := new(errgroup.Group)
	g.Go(func() error {
		s, err := processSide(left, opts)
		leftSide = s
		return err
	})
	g.Go(func() error {
		s, err := processSide(right, opts)
		rightSide = s
		return err
	})
	if err := g.Wait(); err != nil {
		return Result{}, err
	}

	leftSide.Main, rightSide.Main = normalize.Apply(leftSide.Main, rightSide.Main, opts.IgnoreCase)
	leftSide.Footnotes, rightSide.Footnotes = normalize.Apply(leftSide.Footnotes, rightSide.Footnotes, opts.IgnoreCase)

	return Result{Left: leftSide, Right: rightSide}, nil
}

// CompareSequential is the non-concurrent fallback spec.md §5 permits:
// functionally identical to Compare, useful for debugging or when the
// caller wants deterministic single-threaded execution.
func CompareSequential(left, right Input, opts config.Options) (Result, error) {
	leftSide, err := processSide(left, opts)
	if err != nil {
		return Result{}, err
	}
	rightSide, err := processSide(right, opts)
	if err != nil {
		return Result{}, err
	}

	leftSide.Main, rightSide.Main = normalize.Apply(leftSide.Main, rightSide.Main, opts.IgnoreCase)
	leftSide.Footnotes, rightSide.Footnotes = normalize.Apply(leftSide.Footnotes, rightSide.Footnotes, opts.IgnoreCase)

	return Result{Left: leftSide, Right: rightSide}, nil
}
