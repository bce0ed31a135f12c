// Package footnote implements the footnote extractor (component C8):
// active only under --extract-footnotes, it finds footnote blocks under
// one of five recognized conventions, removes each from its main stream,
// concatenates them in source order into a side's footnote stream, and
// leaves a canonical "[N]" anchor in the main stream marking where the
// footnote used to be.
//
// Recognition is best-effort and per-side (spec.md §4.7): a convention
// that finds nothing simply contributes no footnotes, it never errors the
// pipeline.
package footnote

import (
	"regexp"
	"strconv"
	"strings"

	"golang.org/x/net/html"

	"github.com/dproofers/ppcomp/internal/dom"
)

// ExtractFromTree implements the HTML class-based convention: an element
// whose class attribute contains the whitespace token "footnote", or whose
// id begins with "Footnote_", is a footnote; its entire subtree is the
// footnote body. Matched elements are suppressed from the tree (so the
// later Serialize pass skips them) and replaced in place with a "[N]" text
// anchor. It returns the footnote stream, blocks separated by a blank
// line, numbered in document order.
func ExtractFromTree(tree *dom.Tree) string {
	var blocks []string
	n := 1
	for _, el := range dom.Descendants(tree.Root) {
		if !dom.IsElement(el) || tree.Suppressed(el) {
			continue
		}
		if !isFootnoteElement(el) {
			continue
		}
		text := strings.TrimSpace(collectText(tree, el))
		label := "[" + strconv.Itoa(n) + "]"
		blocks = append(blocks, label+" "+text)
		if el.Parent != nil {
			el.Parent.InsertBefore(dom.NewText(label), el)
		}
		tree.Suppress(el)
		n++
	}
	return strings.Join(blocks, "\n\n")
}

func isFootnoteElement(el *html.Node) bool {
	if dom.HasClass(el, "footnote") {
		return true
	}
	if id, ok := dom.Attr(el, "id"); ok && strings.HasPrefix(id, "Footnote_") {
		return true
	}
	return false
}

func collectText(tree *dom.Tree, n *html.Node) string {
	var b strings.Builder
	dom.Walk(n, func(x *html.Node) bool {
		if tree.Suppressed(x) && x != n {
			return false
		}
		if dom.IsText(x) {
			b.WriteString(x.Data)
		}
		return true
	})
	return b.String()
}

var roundsStartRE = regexp.MustCompile(`(?m)^\[Footnote(?:\s+(\d+))?:`)
var roundsContinuationRE = regexp.MustCompile(`(?m)^\*\[Footnote:`)

// ExtractRoundsText implements the rounds-text convention (spec.md §4.7):
// a line beginning "[Footnote N:" or "[Footnote:" extends to its matching
// close bracket; a following "*[Footnote:" block is a continuation of the
// previous footnote rather than a new one.
func ExtractRoundsText(s string) (main, footnotes string) {
	var out strings.Builder
	var blocks []string
	n := 1
	pos := 0
	for {
		loc := roundsStartRE.FindStringIndex(s[pos:])
		if loc == nil {
			out.WriteString(s[pos:])
			break
		}
		start := pos + loc[0]
		out.WriteString(s[pos:start])

		openBracket := start
		end := matchingBracket(s, openBracket)
		if end == -1 {
			// Unterminated -- best effort, take the rest of the string.
			end = len(s) - 1
		}
		body := s[start : end+1]
		pos = end + 1

		for {
			rest := strings.TrimLeft(s[pos:], "\n\r \t")
			skipped := len(s[pos:]) - len(rest)
			if !roundsContinuationRE.MatchString(rest) {
				break
			}
			cloc := roundsContinuationRE.FindStringIndex(rest)
			contStart := pos + skipped + cloc[0]
			contOpen := contStart + 1
			contEnd := matchingBracket(s, contOpen)
			if contEnd == -1 {
				contEnd = len(s) - 1
			}
			body += "\n" + s[contStart:contEnd+1]
			pos = contEnd + 1
		}

		label := "[" + strconv.Itoa(n) + "]"
		blocks = append(blocks, label+" "+stripFootnoteLabel(body))
		out.WriteString(label)
		n++
	}
	return out.String(), strings.Join(blocks, "\n\n")
}

// matchingBracket returns the index of the "]" matching the "[" at open,
// accounting for nested brackets within the footnote body.
func matchingBracket(s string, open int) int {
	depth := 0
	for i := open; i < len(s); i++ {
		switch s[i] {
		case '[':
			depth++
		case ']':
			depth--
			if depth == 0 {
				return i
			}
		}
	}
	return -1
}

var footnoteLabelRE = regexp.MustCompile(`^\[\*?\[?Footnote(?:\s+\d+)?:\s*`)

func stripFootnoteLabel(s string) string {
	s = footnoteLabelRE.ReplaceAllString(s, "")
	s = strings.TrimSuffix(strings.TrimSpace(s), "]")
	return strings.TrimSpace(s)
}

var (
	blankLineRE      = regexp.MustCompile(`\n[ \t]*\n`)
	style1HeaderRE   = regexp.MustCompile(`(?m)^\[(\d+)\]\s*$`)
	style2HeaderRE   = regexp.MustCompile(`(?m)^Footnote\s+(\d+):`)
	style3HeaderRE   = regexp.MustCompile(`(?m)^([¹²³⁴⁵⁶⁷⁸⁹]+)\s+`)
	indentedLineRE   = regexp.MustCompile(`(?m)^(\s{2,}|\s*$)`)
)

// ExtractPostProcessedText tries the three post-processed
// conventions spec.md §4.7 names, in priority order: style 1 ("[N]" header
// following a blank line), style 2 ("Footnote N:" with indented
// continuation), and style 3 (superscript-digit-led block). The first
// convention that finds any block is used for the whole stream; a side
// with no recognizable footnotes leaves the footnote stream empty.
func ExtractPostProcessedText(s string) (main, footnotes string) {
	if m, f, ok := extractHeaderStyle(s, style1HeaderRE, true); ok {
		return m, f
	}
	if m, f, ok := extractHeaderStyle(s, style2HeaderRE, false); ok {
		return m, f
	}
	if m, f, ok := extractHeaderStyle(s, style3HeaderRE, false); ok {
		return m, f
	}
	return s, ""
}

// extractHeaderStyle finds every line matching header, and for each,
// extends the block forward while subsequent lines are indented (style
// 2/3) or, for requireBlankLine (style 1), until the next header or two
// consecutive blank lines.
func extractHeaderStyle(s string, header *regexp.Regexp, requireBlankLine bool) (main, footnotes string, ok bool) {
	lines := strings.Split(s, "\n")
	var mainLines []string
	var blocks []string
	n := 1
	i := 0
	found := false
	for i < len(lines) {
		loc := header.FindStringSubmatchIndex(lines[i])
		precededByBlank := i == 0 || strings.TrimSpace(lines[i-1]) == ""
		if loc == nil || (requireBlankLine && !precededByBlank) {
			mainLines = append(mainLines, lines[i])
			i++
			continue
		}
		found = true
		var body []string
		body = append(body, lines[i])
		i++
		blankStreak := 0
		for i < len(lines) {
			trimmed := strings.TrimSpace(lines[i])
			if header.MatchString(lines[i]) && !indentedLineRE.MatchString(lines[i]) {
				break
			}
			if trimmed == "" {
				blankStreak++
				if requireBlankLine && blankStreak >= 2 {
					i++
					break
				}
				body = append(body, lines[i])
				i++
				continue
			}
			blankStreak = 0
			if !requireBlankLine && !strings.HasPrefix(lines[i], "  ") && !strings.HasPrefix(lines[i], "\t") {
				break
			}
			body = append(body, lines[i])
			i++
		}
		label := "[" + strconv.Itoa(n) + "]"
		blocks = append(blocks, label+" "+strings.TrimSpace(strings.Join(trimStripHeader(body, header), "\n")))
		mainLines = append(mainLines, label)
		n++
	}
	if !found {
		return "", "", false
	}
	return strings.Join(mainLines, "\n"), strings.Join(blocks, "\n\n"), true
}

// trimStripHeader removes the header token from the block's first line,
// keeping only the footnote's own text.
func trimStripHeader(body []string, header *regexp.Regexp) []string {
	if len(body) == 0 {
		return body
	}
	out := make([]string, len(body))
	copy(out, body)
	out[0] = header.ReplaceAllString(out[0], "")
	return out
}
