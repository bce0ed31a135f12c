package ppcomp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dproofers/ppcomp/internal/config"
)

func TestClassifyInput(t *testing.T) {
	cases := []struct {
		name string
		want Kind
	}{
		{"book.html", KindHTML},
		{"book.htm", KindHTML},
		{"book.xhtml", KindHTML},
		{"projectID1234.txt", KindRounds},
		{"dir/projectID1234.txt", KindRounds},
		{"chapter1.txt", KindPostProcessed},
	}
	for _, c := range cases {
		got, err := ClassifyInput(c.name)
		require.NoError(t, err)
		assert.Equal(t, c.want, got, c.name)
	}
}

func TestClassifyInput_Unrecognized(t *testing.T) {
	_, err := ClassifyInput("notes.pdf")
	assert.Error(t, err)
}

func TestCompare_HTMLSides(t *testing.T) {
	left := Input{Name: "a.html", Text: `<html><body><p>The <i>quick</i> fox.</p></body></html>`}
	right := Input{Name: "b.html", Text: `<html><body><p>The _quick_ fox.</p></body></html>`}

	res, err := Compare(left, right, config.Default())
	require.NoError(t, err)
	assert.Contains(t, res.Left.Main, "_quick_")
	assert.Contains(t, res.Right.Main, "_quick_")
}

func TestCompare_TxtSides(t *testing.T) {
	left := Input{Name: "projectID1.txt", Text: "This is the first round.\n"}
	right := Input{Name: "final.txt", Text: "This is the first round.\n"}

	res, err := CompareSequential(left, right, config.Default())
	require.NoError(t, err)
	assert.Equal(t, res.Left.Main, res.Right.Main)
}

func TestCompare_UnrecognizedInputErrors(t *testing.T) {
	left := Input{Name: "a.pdf", Text: "whatever"}
	right := Input{Name: "b.txt", Text: "whatever"}

	_, err := Compare(left, right, config.Default())
	assert.Error(t, err)
}

func TestCompare_FootnoteExtraction(t *testing.T) {
	left := Input{
		Name: "a.html",
		Text: `<html><body><p>See note<span class="footnote">a note</span> here.</p></body></html>`,
	}
	right := Input{
		Name: "b.html",
		Text: `<html><body><p>See note<span class="footnote">a note</span> here.</p></body></html>`,
	}

	opts := config.Default()
	opts.ExtractFootnotes = true
	res, err := Compare(left, right, opts)
	require.NoError(t, err)
	assert.Contains(t, res.Left.Main, "[1]")
	assert.Contains(t, res.Left.Footnotes, "a note")
}
