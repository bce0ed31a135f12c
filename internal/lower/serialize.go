package lower

import (
	"strings"

	"golang.org/x/net/html"

	"github.com/dproofers/ppcomp/internal/config"
	"github.com/dproofers/ppcomp/internal/dom"
)

// blockElements emit a newline after their content during serialization
// (spec.md §4.4 step 6).
var blockElements = map[string]bool{
	"p": true, "div": true, "br": true,
	"h1": true, "h2": true, "h3": true, "h4": true, "h5": true, "h6": true,
	"li": true, "tr": true, "blockquote": true,
}

// Serialize performs the depth-first in-order traversal spec.md §4.4 step 6
// describes: suppressed subtrees are skipped, text nodes are emitted
// verbatim, and block-level elements emit a single trailing newline.
func Serialize(tree *dom.Tree, _ config.Options) string {
	var b strings.Builder
	serializeNode(&b, tree, tree.Root)
	return b.String()
}

func serializeNode(b *strings.Builder, tree *dom.Tree, n *html.Node) {
	if n == nil || tree.Suppressed(n) {
		return
	}

	switch n.Type {
	case html.TextNode:
		b.WriteString(n.Data)
		return
	case html.ElementNode:
		switch dom.TagName(n) {
		case "script", "style", "head":
			return
		}
	}

	for c := n.FirstChild; c != nil; c = c.NextSibling {
		serializeNode(b, tree, c)
	}

	if n.Type == html.ElementNode && blockElements[dom.TagName(n)] {
		b.WriteByte('\n')
	}
}
