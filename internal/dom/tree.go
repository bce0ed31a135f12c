// Package dom implements the in-memory document tree model (component C1):
// a rooted ordered tree of element and text nodes, with the navigation and
// mutation primitives the stylesheet transform engine (internal/style) needs
// -- insertion, re-parenting, pruning, and a "suppressed" flag used by
// display:none.
//
// The tree is backed directly by golang.org/x/net/html.Node: that type is
// already a parent-pointer, doubly-linked sibling structure, so no extra
// indirection (arena + NodeId) is needed to get re-parenting (_graft) or
// stable sibling navigation.
package dom

import (
	"fmt"
	"io"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Tree owns a parsed document and the side-table of suppressed elements.
// Suppression is tracked out of band (rather than as a field on html.Node,
// which has none to spare) so that a suppressed subtree remains
// structurally present -- invariant (d) -- until the lowerer's serializer
// chooses to skip it.
type Tree struct {
	Root       *html.Node
	suppressed map[*html.Node]bool
}

// Parse parses r as an HTML document and returns the document tree.
// Parsing is delegated to goquery (which in turn delegates to
// golang.org/x/net/html.Parse) so that the tree this package manages is
// built by the same external parser the teacher's HTML layer used --
// C1 never implements its own HTML tokenizer.
func Parse(r io.Reader) (*Tree, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("dom: parse html: %w", err)
	}
	if doc.Selection == nil || len(doc.Nodes) == 0 {
		return nil, fmt.Errorf("dom: parse html: empty document")
	}
	return &Tree{Root: doc.Nodes[0], suppressed: make(map[*html.Node]bool)}, nil
}

// ParseString is a convenience wrapper around Parse for in-memory HTML.
func ParseString(s string) (*Tree, error) {
	return Parse(strings.NewReader(s))
}

// Suppress marks n (and, transitively, its entire subtree once the
// serializer walks it) as not contributing to the flattened text output.
// It is invoked by the display:none declaration (C4).
func (t *Tree) Suppress(n *html.Node) {
	t.suppressed[n] = true
}

// Suppressed reports whether n was suppressed by a display:none rule.
func (t *Tree) Suppressed(n *html.Node) bool {
	return t.suppressed[n]
}

// IsElement reports whether n is an Element node.
func IsElement(n *html.Node) bool {
	return n != nil && n.Type == html.ElementNode
}

// IsText reports whether n is a Text node.
func IsText(n *html.Node) bool {
	return n != nil && n.Type == html.TextNode
}

// Attr looks up an attribute by name, case-insensitively on the name, per
// the data model's "attribute lookup is case-insensitive on names".
func Attr(n *html.Node, name string) (string, bool) {
	if n == nil {
		return "", false
	}
	for _, a := range n.Attr {
		if strings.EqualFold(a.Key, name) {
			return a.Val, true
		}
	}
	return "", false
}

// SetAttr sets (or replaces) an attribute value, preserving the existing
// key's case if already present, matching case-insensitively.
func SetAttr(n *html.Node, name, value string) {
	for i, a := range n.Attr {
		if strings.EqualFold(a.Key, name) {
			n.Attr[i].Val = value
			return
		}
	}
	n.Attr = append(n.Attr, html.Attribute{Key: name, Val: value})
}

// ClassList returns the whitespace-split tokens of the class attribute.
func ClassList(n *html.Node) []string {
	class, ok := Attr(n, "class")
	if !ok {
		return nil
	}
	return strings.Fields(class)
}

// HasClass reports whether the class attribute contains the given token.
func HasClass(n *html.Node, class string) bool {
	for _, c := range ClassList(n) {
		if c == class {
			return true
		}
	}
	return false
}

// LeadingTextRun returns the first Text child of n that precedes any
// element child, or nil if there is none -- the "leading text run" the
// content declaration replaces (glossary, §3).
func LeadingTextRun(n *html.Node) *html.Node {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		switch c.Type {
		case html.TextNode:
			return c
		case html.ElementNode:
			return nil
		}
	}
	return nil
}

// NewText creates a detached text node with the given value.
func NewText(value string) *html.Node {
	return &html.Node{Type: html.TextNode, Data: value}
}

// PrependChild inserts n as the first child of parent.
func PrependChild(parent, n *html.Node) {
	if parent.FirstChild == nil {
		parent.AppendChild(n)
		return
	}
	parent.InsertBefore(n, parent.FirstChild)
}

// Detach removes n from its current parent, if any, without touching its
// own children.
func Detach(n *html.Node) {
	if n.Parent != nil {
		n.Parent.RemoveChild(n)
	}
}

// Graft detaches n and appends it as the last child of newParent -- the
// primitive _graft (C4) builds on.
func Graft(n, newParent *html.Node) {
	Detach(n)
	newParent.AppendChild(n)
}

// TagName returns the lowercase element name, or "" for non-elements.
func TagName(n *html.Node) string {
	if !IsElement(n) {
		return ""
	}
	if n.DataAtom != atom.Atom(0) {
		return n.DataAtom.String()
	}
	return strings.ToLower(n.Data)
}

// Walk performs a pre-order depth-first traversal of n's subtree, calling
// visit for every node (n included). Returning false from visit skips n's
// children but continues the traversal at n's next sibling.
func Walk(n *html.Node, visit func(*html.Node) bool) {
	if n == nil {
		return
	}
	if !visit(n) {
		return
	}
	for c := n.FirstChild; c != nil; {
		next := c.NextSibling
		Walk(c, visit)
		c = next
	}
}

// Descendants returns every descendant of n (n excluded) as a flat, ordered
// slice, for transforms (text-transform, text-replace) that rewrite every
// descendant text node.
func Descendants(n *html.Node) []*html.Node {
	var out []*html.Node
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		Walk(c, func(d *html.Node) bool {
			out = append(out, d)
			return true
		})
	}
	return out
}
