package textclean

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dproofers/ppcomp/internal/config"
)

func TestCleanRounds_StripsBoilerplate(t *testing.T) {
	s := "*** START OF THE PROJECT GUTENBERG EBOOK FOO ***\nreal content\n*** END OF THE PROJECT GUTENBERG EBOOK FOO ***\ntrailer"
	out := CleanRounds(s, config.Default())
	assert.Contains(t, out, "real content")
	assert.NotContains(t, out, "PROJECT GUTENBERG")
	assert.NotContains(t, out, "trailer")
}

func TestCleanRounds_PageMarkersStripped(t *testing.T) {
	opts := config.Default()
	opts.TxtCleanupType = config.ParseCleanupType("p")
	s := "line one\n[Page 42]\nline two\n[Blank page]\nline three"
	out := CleanRounds(s, opts)
	assert.NotContains(t, out, "[Page 42]")
	assert.NotContains(t, out, "[Blank page]")
	assert.Contains(t, out, "line one")
	assert.Contains(t, out, "line three")
}

func TestCleanRounds_NoneOnlyStripsBoilerplate(t *testing.T) {
	opts := config.Default()
	opts.TxtCleanupType = config.ParseCleanupType("n")
	s := "line one\n[Page 42]\nline two"
	out := CleanRounds(s, opts)
	assert.Contains(t, out, "[Page 42]")
}

func TestCleanRounds_SplitWordRegroup(t *testing.T) {
	opts := config.Default()
	opts.RegroupSplitWords = true
	out := CleanRounds("these wo-* *rds split", opts)
	assert.Contains(t, out, "words")
	assert.NotContains(t, out, "wo-*")
}

func TestCleanRounds_ProofersNotesSuppressed(t *testing.T) {
	opts := config.Default()
	opts.SuppressProofersNotes = true
	out := CleanRounds("the cat sat[**sic] on the mat", opts)
	assert.NotContains(t, out, "[**sic]")
	assert.Contains(t, out, "the cat sat")
}

func TestCleanRounds_ItalicBoldSentinels(t *testing.T) {
	out := CleanRounds("the <i>quick</i> <b>fox</b>", config.Default())
	assert.Contains(t, out, "_quick_")
	assert.Contains(t, out, "=fox=")
}

func TestCleanRounds_IgnoreFormatDropsMarkup(t *testing.T) {
	opts := config.Default()
	opts.IgnoreFormat = true
	out := CleanRounds("the <i>quick</i> <b>fox</b>", opts)
	assert.Contains(t, out, "quick")
	assert.NotContains(t, out, "_quick_")
	assert.NotContains(t, out, "<i>")
}

func TestCleanRounds_BlockMarkupStripped(t *testing.T) {
	s := "before\n/*\nillustration caption\n*/\nafter"
	out := CleanRounds(s, config.Default())
	assert.NotContains(t, out, "/*")
	assert.NotContains(t, out, "*/")
	assert.Contains(t, out, "illustration caption")
}

func TestCleanPostProcessed_ThoughtBreakRemoved(t *testing.T) {
	s := "before\n\n*  *  *  *  *\n\nafter"
	out := CleanPostProcessed(s, config.Default())
	assert.NotContains(t, out, "*  *  *  *  *")
	assert.Contains(t, out, "before")
	assert.Contains(t, out, "after")
}

func TestCleanPostProcessed_StandaloneSentinelsRemovedUnderIgnoreFormat(t *testing.T) {
	opts := config.Default()
	opts.IgnoreFormat = true
	out := CleanPostProcessed("a _ b = c", opts)
	assert.NotContains(t, out, "_")
	assert.NotContains(t, out, "=")
}
