package lower

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dproofers/ppcomp/internal/config"
)

func TestLower_ItalicSentinel(t *testing.T) {
	res, err := Lower(`<html><body><p>The <i>quick</i> fox.</p></body></html>`, config.Default())
	require.NoError(t, err)
	assert.Contains(t, res.Text, "_quick_")
}

func TestLower_BoldSentinel(t *testing.T) {
	res, err := Lower(`<html><body><p><b>Warning</b></p></body></html>`, config.Default())
	require.NoError(t, err)
	assert.Contains(t, res.Text, "=Warning=")
}

func TestLower_CustomBoldSentinel(t *testing.T) {
	opts := config.Default()
	opts.BoldSentinel = "**"
	res, err := Lower(`<html><body><p><b>Warning</b></p></body></html>`, opts)
	require.NoError(t, err)
	assert.Contains(t, res.Text, "**Warning**")
}

func TestLower_PageNumberStripped(t *testing.T) {
	res, err := Lower(`<html><body><p>foo</p><span class="pagenum">42</span><p>bar</p></body></html>`, config.Default())
	require.NoError(t, err)
	assert.NotContains(t, res.Text, "42")
}

func TestLower_NoDefaultCSSStillAppliesSentinels(t *testing.T) {
	opts := config.Default()
	opts.NoDefaultCSS = true
	res, err := Lower(`<html><body><p>foo</p><span class="pagenum">42</span><i>hi</i></body></html>`, opts)
	require.NoError(t, err)
	// --css-no-default disables the parsed default stylesheet (page-number
	// stripping), but the sentinel conversion is a fixed pre-serialize step
	// independent of CSS, so it still fires.
	assert.Contains(t, res.Text, "42")
	assert.Contains(t, res.Text, "_hi_")
}

func TestLower_SuperscriptSubscriptBracketing(t *testing.T) {
	res, err := Lower(`<html><body><p>x<sup>2</sup> and y<sub>3</sub></p></body></html>`, config.Default())
	require.NoError(t, err)
	assert.Contains(t, res.Text, "x^{2}")
	assert.Contains(t, res.Text, "y_{3}")
}

func TestLower_GreekTitlePlus(t *testing.T) {
	opts := config.Default()
	opts.GreekTitlePlus = true
	res, err := Lower(`<html><body><p><span lang="grc" title="phagedaina">x</span></p></body></html>`, opts)
	require.NoError(t, err)
	assert.Contains(t, res.Text, "+phagedaina+")
}

func TestLower_SoftHyphenStripped(t *testing.T) {
	res, err := Lower("<html><body><p>hy­phen</p></body></html>", config.Default())
	require.NoError(t, err)
	assert.NotContains(t, res.Text, "­")
	assert.Contains(t, res.Text, "hyphen")
}

func TestStripFlankedNBSP(t *testing.T) {
	s := "12 34"
	assert.Equal(t, "1234", stripFlankedNBSP(s))

	notFlanked := "foo bar"
	assert.Equal(t, notFlanked, stripFlankedNBSP(notFlanked))
}
