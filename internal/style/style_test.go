package style

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"

	"github.com/dproofers/ppcomp/internal/dom"
)

func TestParse_BasicRule(t *testing.T) {
	p := NewParser()
	sheet, warnings := p.Parse(`span.pagenum { display: none; }`)
	require.Empty(t, warnings)
	require.Len(t, sheet.Rules, 1)
	assert.Equal(t, "display", sheet.Rules[0].Declarations[0].Property)
}

func TestParse_UnknownPropertyWarns(t *testing.T) {
	p := NewParser()
	sheet, warnings := p.Parse(`p { color: red; }`)
	require.NotEmpty(t, warnings)
	assert.Empty(t, sheet.Rules)
}

func TestParse_BrokenRuleDropsAndContinues(t *testing.T) {
	p := NewParser()
	sheet, warnings := p.Parse(`p { display none } span { display: none; }`)
	assert.NotEmpty(t, warnings)
	require.Len(t, sheet.Rules, 1)
}

func TestParse_PseudoElementContent(t *testing.T) {
	p := NewParser()
	sheet, warnings := p.Parse(`i:before, i:after { content: "_"; }`)
	require.Empty(t, warnings)
	require.Len(t, sheet.Rules, 1)
	require.Len(t, sheet.Rules[0].Selectors, 2)
	assert.Equal(t, PseudoBefore, sheet.Rules[0].Selectors[0].Pseudo)
	assert.Equal(t, PseudoAfter, sheet.Rules[0].Selectors[1].Pseudo)
}

func TestApply_DisplayNoneSuppresses(t *testing.T) {
	tree, err := dom.ParseString(`<html><body><p>keep</p><span class="pagenum">42</span></body></html>`)
	require.NoError(t, err)

	p := NewParser()
	sheet, _ := p.Parse(`span.pagenum { display: none; }`)
	warnings := Apply(tree, sheet)
	assert.Empty(t, warnings)

	for _, n := range dom.Descendants(tree.Root) {
		if dom.IsElement(n) && dom.TagName(n) == "span" {
			assert.True(t, tree.Suppressed(n))
		}
	}
}

func TestApply_ContentAttr(t *testing.T) {
	tree, err := dom.ParseString(`<html><body><span lang="grc" title="phagedaina">x</span></body></html>`)
	require.NoError(t, err)

	p := NewParser()
	sheet, _ := p.Parse(`*[lang="grc"] { content: "+" attr(title) "+"; }`)
	warnings := Apply(tree, sheet)
	assert.Empty(t, warnings)

	var span *html.Node
	for _, n := range dom.Descendants(tree.Root) {
		if dom.IsElement(n) && dom.TagName(n) == "span" {
			span = n
		}
	}
	require.NotNil(t, span)
	run := dom.LeadingTextRun(span)
	require.NotNil(t, run)
	assert.Equal(t, "+phagedaina+", run.Data)
}

func TestApply_RuleOrderIsSourceOrder(t *testing.T) {
	tree, err := dom.ParseString(`<html><body><p class="a">hello</p></body></html>`)
	require.NoError(t, err)

	p := NewParser()
	sheet, warnings := p.Parse(`
		p.a { text-transform: uppercase; }
		p.a { text-transform: lowercase; }
	`)
	require.Empty(t, warnings)
	Apply(tree, sheet)

	// Rule 2 (lowercase) runs after rule 1 (uppercase) because it is later
	// in source order, so the final text is lowercase.
	found := false
	for _, n := range dom.Descendants(tree.Root) {
		if dom.IsText(n) && n.Data == "hello" {
			found = true
		}
	}
	assert.True(t, found)
}

func TestApply_GraftReparents(t *testing.T) {
	tree, err := dom.ParseString(`<html><body><div><span class="note">x</span></div><p>target</p></body></html>`)
	require.NoError(t, err)

	p := NewParser()
	sheet, warnings := p.Parse(`span.note { _graft: parent, next-sib; }`)
	require.Empty(t, warnings)
	engineWarnings := Apply(tree, sheet)
	assert.Empty(t, engineWarnings)

	var noteParentTag string
	for _, n := range dom.Descendants(tree.Root) {
		if dom.IsElement(n) && dom.TagName(n) == "span" {
			noteParentTag = dom.TagName(n.Parent)
		}
	}
	assert.Equal(t, "p", noteParentTag)
}

func TestApply_GroupedSelectorsKeepOwnPseudoAndTarget(t *testing.T) {
	tree, err := dom.ParseString(`<html><body><i>x</i><b>y</b></body></html>`)
	require.NoError(t, err)

	p := NewParser()
	sheet, warnings := p.Parse(`i:before, b:after { content: "X"; }`)
	require.Empty(t, warnings)
	require.Empty(t, Apply(tree, sheet))

	var i, b *html.Node
	for _, n := range dom.Descendants(tree.Root) {
		if !dom.IsElement(n) {
			continue
		}
		switch dom.TagName(n) {
		case "i":
			i = n
		case "b":
			b = n
		}
	}
	require.NotNil(t, i)
	require.NotNil(t, b)

	// i gets "X" prepended only -- no trailing "X" from the b:after half.
	assert.Equal(t, "X", i.FirstChild.Data)
	assert.Equal(t, "x", i.LastChild.Data)

	// b gets "X" appended only -- no leading "X" from the i:before half.
	assert.Equal(t, "y", b.FirstChild.Data)
	assert.Equal(t, "X", b.LastChild.Data)
}

func TestApply_GraftFailureWarns(t *testing.T) {
	tree, err := dom.ParseString(`<html><body><span class="note">x</span></body></html>`)
	require.NoError(t, err)

	p := NewParser()
	sheet, _ := p.Parse(`span.note { _graft: next-sib; }`)
	warnings := Apply(tree, sheet)
	require.NotEmpty(t, warnings)
}
