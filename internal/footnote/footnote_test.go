package footnote

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dproofers/ppcomp/internal/dom"
)

func TestExtractFromTree_ClassBased(t *testing.T) {
	tree, err := dom.ParseString(`<html><body><p>see note<span class="footnote">a note</span> here</p></body></html>`)
	require.NoError(t, err)

	notes := ExtractFromTree(tree)
	assert.Equal(t, "[1] a note", notes)
}

func TestExtractFromTree_IDBased(t *testing.T) {
	tree, err := dom.ParseString(`<html><body><div id="Footnote_3">third note</div></body></html>`)
	require.NoError(t, err)

	notes := ExtractFromTree(tree)
	assert.Equal(t, "[1] third note", notes)
}

func TestExtractRoundsText_SimpleBlock(t *testing.T) {
	main, notes := ExtractRoundsText("before\n[Footnote 1: the note text]\nafter")
	assert.Equal(t, "before\n[1]\nafter", main)
	assert.Equal(t, "[1] the note text", notes)
}

func TestExtractRoundsText_Continuation(t *testing.T) {
	src := "start\n[Footnote 1: first part]\n*[Footnote: second part]\nend"
	main, notes := ExtractRoundsText(src)
	assert.Equal(t, "start\n[1]\nend", main)
	assert.Contains(t, notes, "first part")
	assert.Contains(t, notes, "second part")
}

func TestExtractRoundsText_NoFootnotes(t *testing.T) {
	main, notes := ExtractRoundsText("plain text, nothing here")
	assert.Equal(t, "plain text, nothing here", main)
	assert.Empty(t, notes)
}

func TestExtractPostProcessedText_Style1(t *testing.T) {
	src := "body text here.\n\n[1]\nThe footnote body.\n\nmore body text."
	main, notes := ExtractPostProcessedText(src)
	assert.Contains(t, main, "[1]")
	assert.Contains(t, notes, "The footnote body.")
}

func TestExtractPostProcessedText_Style2(t *testing.T) {
	src := "body text.\nFootnote 1:\n  indented note body\n  more note body\nunindented next paragraph."
	main, notes := ExtractPostProcessedText(src)
	assert.Contains(t, main, "[1]")
	assert.Contains(t, notes, "indented note body")
	assert.Contains(t, main, "unindented next paragraph.")
}

func TestExtractPostProcessedText_NoneFound(t *testing.T) {
	main, notes := ExtractPostProcessedText("just ordinary prose without any footnote markers.")
	assert.Equal(t, "just ordinary prose without any footnote markers.", main)
	assert.Empty(t, notes)
}
