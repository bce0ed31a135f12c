// Package style implements the mini-CSS-style transformation engine: a
// stylesheet parser (C2), a selector matcher built on cascadia (C3), and a
// transform engine that mutates a dom.Tree according to the parsed rules
// (C4). Only the enumerated subset of selectors, combinators, and
// declaration properties spec.md names is supported -- this is a closed,
// tagged vocabulary, not a pluggable CSS engine.
package style

import (
	"fmt"

	"github.com/andybalholm/cascadia"
)

// PseudoElement identifies the insertion slot a compound selector targets.
// At most one is allowed, trailing the selector.
type PseudoElement int

const (
	PseudoNone PseudoElement = iota
	PseudoBefore
	PseudoAfter
)

func (p PseudoElement) String() string {
	switch p {
	case PseudoBefore:
		return "before"
	case PseudoAfter:
		return "after"
	default:
		return ""
	}
}

// CompoundSelector is a single selector string (with any trailing
// ::before/::after stripped) plus its compiled cascadia matcher. Compiling
// once at parse time means the transform engine pays selector-parse cost
// once per rule, not once per candidate element.
type CompoundSelector struct {
	Raw      string // selector text, pseudo-element suffix removed
	Pseudo   PseudoElement
	compiled cascadia.Selector
}

// ValueKind distinguishes the three declaration-value forms spec.md §3
// enumerates: literal text, attr(NAME), and the bare content keyword.
type ValueKind int

const (
	ValueLiteral ValueKind = iota
	ValueAttr
	ValueContent
)

// Value is one element of a declaration's value list.
type Value struct {
	Kind     ValueKind
	Literal  string // ValueLiteral: the text itself
	AttrName string // ValueAttr: the attribute to resolve
}

// Declaration is one property: value-list pair inside a rule's block.
type Declaration struct {
	Property string
	Values   []Value  // content, text-transform, text-replace, display, _replace_with_attr
	Steps    []string // _graft only: path tokens from {parent, prev-sib, next-sib}
}

// Rule is a selector-list sharing one declaration block, in source order.
type Rule struct {
	Selectors    []*CompoundSelector
	Declarations []Declaration
	SourceOrder  int
}

// Stylesheet is the ordered, immutable result of parsing one or more
// concatenated mini-CSS texts.
type Stylesheet struct {
	Rules []Rule
}

// Warning records a non-fatal problem: a dropped rule, an unknown property,
// a type-incorrect value, or a failed _graft step. The engine and parser
// never abort on these -- spec.md §7.
type Warning struct {
	SourceOrder int
	Selector    string
	Property    string
	Message     string
}

func (w Warning) String() string {
	if w.Property != "" {
		return fmt.Sprintf("rule %d (%s): %s: %s", w.SourceOrder, w.Selector, w.Property, w.Message)
	}
	return fmt.Sprintf("rule %d (%s): %s", w.SourceOrder, w.Selector, w.Message)
}
