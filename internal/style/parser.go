package style

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf16"
)

// Parser parses the mini-CSS dialect spec.md §4.1 describes: rules of the
// form "selector-list { property: value-list; ... }", comma-joined selector
// lists, /* ... */ comments, and a handful of function-call value forms
// (attr(NAME), the bare content keyword) alongside quoted strings and bare
// identifiers. Unlike the teacher's internal/css/parser.go, which parses a
// single regex-shaped declaration per property, this parser hand-scans
// character by character (grounded on the teacher's own quote-aware
// smartSplit/findUnquotedChar helpers) because values here are lists, not
// single strings, and because two properties (_graft, _replace_with_attr)
// don't exist in ordinary CSS at all.
type Parser struct{}

// NewParser returns a ready-to-use stylesheet parser. Parser holds no
// state between calls to Parse.
func NewParser() *Parser { return &Parser{} }

// Parse parses cssText into a Stylesheet. A syntactically broken rule is
// dropped and recorded as a Warning; parsing continues with the next rule
// (spec.md §4.1, §7: "On syntax error in a rule, the rule is dropped... and
// parsing continues").
func (p *Parser) Parse(cssText string) (*Stylesheet, []Warning) {
	cssText = stripComments(cssText)

	var sheet Stylesheet
	var warnings []Warning

	order := 0
	rest := cssText
	for {
		rest = strings.TrimSpace(rest)
		if rest == "" {
			break
		}

		if strings.HasPrefix(rest, "@") {
			// At-rules (@media, @import, ...) are outside the mini-CSS
			// dialect spec.md defines; skip the whole block/statement.
			next, ok := skipAtRule(rest)
			if !ok {
				warnings = append(warnings, Warning{SourceOrder: order, Message: "unterminated at-rule, stopping parse"})
				break
			}
			rest = next
			continue
		}

		openIdx := indexUnquoted(rest, '{')
		if openIdx == -1 {
			if strings.TrimSpace(rest) != "" {
				warnings = append(warnings, Warning{SourceOrder: order, Message: "trailing text with no rule block"})
			}
			break
		}

		selectorText := rest[:openIdx]
		closeIdx := indexUnquoted(rest[openIdx+1:], '}')
		if closeIdx == -1 {
			warnings = append(warnings, Warning{SourceOrder: order, Selector: strings.TrimSpace(selectorText), Message: "unterminated rule block"})
			break
		}
		declText := rest[openIdx+1 : openIdx+1+closeIdx]
		rest = rest[openIdx+1+closeIdx+1:]

		rule, ruleWarnings := p.parseRule(selectorText, declText, order)
		warnings = append(warnings, ruleWarnings...)
		if rule != nil {
			sheet.Rules = append(sheet.Rules, *rule)
		}
		order++
	}

	return &sheet, warnings
}

func (p *Parser) parseRule(selectorText, declText string, order int) (*Rule, []Warning) {
	var warnings []Warning

	selectorParts := splitUnquoted(selectorText, ',')
	var selectors []*CompoundSelector
	for _, s := range selectorParts {
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}
		cs, err := compileCompoundSelector(s)
		if err != nil {
			warnings = append(warnings, Warning{SourceOrder: order, Selector: s, Message: "selector parse error: " + err.Error()})
			continue
		}
		selectors = append(selectors, cs)
	}
	if len(selectors) == 0 {
		warnings = append(warnings, Warning{SourceOrder: order, Message: "rule has no valid selectors, dropped"})
		return nil, warnings
	}

	declarations, declWarnings := p.parseDeclarations(declText, order, selectorText)
	warnings = append(warnings, declWarnings...)
	if len(declarations) == 0 {
		warnings = append(warnings, Warning{SourceOrder: order, Selector: strings.TrimSpace(selectorText), Message: "rule has no valid declarations, dropped"})
		return nil, warnings
	}

	return &Rule{Selectors: selectors, Declarations: declarations, SourceOrder: order}, warnings
}

func (p *Parser) parseDeclarations(declText string, order int, selectorText string) ([]Declaration, []Warning) {
	var out []Declaration
	var warnings []Warning

	for _, part := range splitUnquoted(declText, ';') {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		colon := indexUnquoted(part, ':')
		if colon == -1 {
			warnings = append(warnings, Warning{SourceOrder: order, Selector: strings.TrimSpace(selectorText), Message: "declaration missing ':': " + part})
			continue
		}

		property := strings.ToLower(strings.TrimSpace(part[:colon]))
		valueText := strings.TrimSpace(part[colon+1:])

		decl, err := buildDeclaration(property, valueText)
		if err != nil {
			warnings = append(warnings, Warning{SourceOrder: order, Selector: strings.TrimSpace(selectorText), Property: property, Message: err.Error()})
			continue
		}
		out = append(out, decl)
	}

	return out, warnings
}

// knownProperties is the closed, enumerated vocabulary spec.md §3 lists.
// Anything else is dropped with a warning ("unknown properties are ignored
// with a warning").
var knownProperties = map[string]bool{
	"content":            true,
	"text-transform":     true,
	"text-replace":       true,
	"display":            true,
	"_replace_with_attr": true,
	"_graft":             true,
}

func buildDeclaration(property, valueText string) (Declaration, error) {
	if !knownProperties[property] {
		return Declaration{}, fmt.Errorf("unknown property %q", property)
	}

	switch property {
	case "_graft":
		steps := strings.Fields(valueText)
		for _, s := range steps {
			s = strings.Trim(s, ",")
			switch s {
			case "parent", "prev-sib", "next-sib":
			default:
				return Declaration{}, fmt.Errorf("_graft: invalid step %q", s)
			}
		}
		if len(steps) == 0 {
			return Declaration{}, fmt.Errorf("_graft: empty path")
		}
		cleaned := make([]string, 0, len(steps))
		for _, s := range steps {
			cleaned = append(cleaned, strings.Trim(s, ","))
		}
		return Declaration{Property: property, Steps: cleaned}, nil

	case "_replace_with_attr":
		name := strings.TrimSpace(valueText)
		if name == "" {
			return Declaration{}, fmt.Errorf("_replace_with_attr: missing attribute name")
		}
		return Declaration{Property: property, Values: []Value{{Kind: ValueAttr, AttrName: name}}}, nil

	case "display":
		v := strings.ToLower(strings.TrimSpace(valueText))
		if v != "none" {
			return Declaration{}, fmt.Errorf("display: only 'none' is honored, got %q", v)
		}
		return Declaration{Property: property, Values: []Value{{Kind: ValueLiteral, Literal: "none"}}}, nil

	case "text-transform":
		v := strings.ToLower(strings.TrimSpace(valueText))
		switch v {
		case "uppercase", "lowercase", "capitalize":
		default:
			return Declaration{}, fmt.Errorf("text-transform: unsupported value %q", v)
		}
		return Declaration{Property: property, Values: []Value{{Kind: ValueLiteral, Literal: v}}}, nil

	case "text-replace":
		values, err := tokenizeValues(valueText)
		if err != nil {
			return Declaration{}, err
		}
		if len(values) != 2 || values[0].Kind != ValueLiteral || values[1].Kind != ValueLiteral {
			return Declaration{}, fmt.Errorf("text-replace: requires exactly two string values")
		}
		return Declaration{Property: property, Values: values}, nil

	case "content":
		values, err := tokenizeValues(valueText)
		if err != nil {
			return Declaration{}, err
		}
		if len(values) == 0 {
			return Declaration{}, fmt.Errorf("content: empty value list")
		}
		return Declaration{Property: property, Values: values}, nil
	}

	return Declaration{}, fmt.Errorf("unhandled property %q", property)
}

// tokenizeValues scans a declaration's value text into Value tokens:
// quoted strings (single or double, with \uXXXX escapes), the bare
// "content" keyword, and attr(NAME) function calls. Tokens may be
// whitespace-separated for concatenation (spec.md §4.3 "value concatenation").
func tokenizeValues(s string) ([]Value, error) {
	var out []Value
	i := 0
	n := len(s)

	for i < n {
		for i < n && isSpace(s[i]) {
			i++
		}
		if i >= n {
			break
		}

		switch {
		case s[i] == '"' || s[i] == '\'':
			lit, next, err := scanQuoted(s, i)
			if err != nil {
				return nil, err
			}
			out = append(out, Value{Kind: ValueLiteral, Literal: lit})
			i = next

		case strings.HasPrefix(strings.ToLower(s[i:]), "attr("):
			close := strings.IndexByte(s[i:], ')')
			if close == -1 {
				return nil, fmt.Errorf("attr(): missing closing ')'")
			}
			name := strings.TrimSpace(s[i+len("attr(") : i+close])
			if name == "" {
				return nil, fmt.Errorf("attr(): missing attribute name")
			}
			out = append(out, Value{Kind: ValueAttr, AttrName: name})
			i += close + 1

		default:
			j := i
			for j < n && !isSpace(s[j]) {
				j++
			}
			word := s[i:j]
			switch strings.ToLower(word) {
			case "content":
				out = append(out, Value{Kind: ValueContent})
			default:
				out = append(out, Value{Kind: ValueLiteral, Literal: word})
			}
			i = j
		}
	}

	return out, nil
}

func isSpace(b byte) bool { return b == ' ' || b == '\t' || b == '\n' || b == '\r' }

// scanQuoted reads a quoted string starting at s[start] (which must be a
// quote character), decoding \uXXXX unicode escapes (spec.md §4.1), and
// returns the decoded literal plus the index just past the closing quote.
func scanQuoted(s string, start int) (string, int, error) {
	quote := s[start]
	var b strings.Builder
	i := start + 1
	for i < len(s) {
		c := s[i]
		if c == quote {
			return b.String(), i + 1, nil
		}
		if c == '\\' && i+1 < len(s) {
			if s[i+1] == 'u' && i+6 <= len(s) {
				if r, ok := decodeUnicodeEscape(s[i+2 : i+6]); ok {
					b.WriteRune(r)
					i += 6
					continue
				}
			}
			b.WriteByte(s[i+1])
			i += 2
			continue
		}
		b.WriteByte(c)
		i++
	}
	return "", 0, fmt.Errorf("unterminated quoted string")
}

func decodeUnicodeEscape(hex string) (rune, bool) {
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return 0, false
	}
	r := rune(v)
	if utf16.IsSurrogate(r) {
		return r, true
	}
	return r, true
}

// stripComments removes /* ... */ comments, including across newlines.
func stripComments(s string) string {
	var b strings.Builder
	i := 0
	for i < len(s) {
		if i+1 < len(s) && s[i] == '/' && s[i+1] == '*' {
			end := strings.Index(s[i+2:], "*/")
			if end == -1 {
				break
			}
			i = i + 2 + end + 2
			continue
		}
		b.WriteByte(s[i])
		i++
	}
	return b.String()
}

// skipAtRule skips a single @-rule: either a `@foo ... ;` statement or a
// `@foo ... { ... }` block, whose nested braces (e.g. the rules inside
// @media) are balanced by depth counting.
func skipAtRule(s string) (string, bool) {
	semi := indexUnquoted(s, ';')
	brace := indexUnquoted(s, '{')
	if brace == -1 || (semi != -1 && semi < brace) {
		if semi == -1 {
			return "", false
		}
		return s[semi+1:], true
	}
	depth := 0
	for i := brace; i < len(s); i++ {
		switch s[i] {
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return s[i+1:], true
			}
		}
	}
	return "", false
}

// indexUnquoted finds the first occurrence of c outside any quoted string.
func indexUnquoted(s string, c byte) int {
	var inQuotes bool
	var quote byte
	for i := 0; i < len(s); i++ {
		ch := s[i]
		switch {
		case !inQuotes && (ch == '"' || ch == '\''):
			inQuotes = true
			quote = ch
		case inQuotes && ch == quote:
			inQuotes = false
		case !inQuotes && ch == c:
			return i
		}
	}
	return -1
}

// splitUnquoted splits s on every unquoted occurrence of sep.
func splitUnquoted(s string, sep byte) []string {
	var parts []string
	var inQuotes bool
	var quote byte
	start := 0
	for i := 0; i < len(s); i++ {
		ch := s[i]
		switch {
		case !inQuotes && (ch == '"' || ch == '\''):
			inQuotes = true
			quote = ch
		case inQuotes && ch == quote:
			inQuotes = false
		case !inQuotes && ch == sep:
			parts = append(parts, s[start:i])
			start = i + 1
		}
	}
	parts = append(parts, s[start:])
	return parts
}
