package community

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/twkim02/todoc-chat-ai/pkg"
)

func TestPreviewStripsMarkup(t *testing.T) {
	got, err := Preview("<p>A sweet <b>pumpkin</b> puree for 6-month-olds.</p>", 0)
	require.NoError(t, err)
	assert.Equal(t, "A sweet pumpkin puree for 6-month-olds.", got)
}

func TestPreviewCollapsesWhitespace(t *testing.T) {
	got, err := Preview("line one\n\n   line\ttwo", 0)
	require.NoError(t, err)
	assert.Equal(t, "line one line two", got)
}

func TestPreviewDropsScriptAndStyle(t *testing.T) {
	got, err := Preview(`<style>.a{color:red}</style><p>hello</p><script>alert(1)</script>`, 0)
	require.NoError(t, err)
	assert.Equal(t, "hello", got)
}

func TestPreviewTruncatesOnRuneBoundary(t *testing.T) {
	content := strings.Repeat("아기 ", 100)
	got, err := Preview(content, 10)
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(got, "…"))
	assert.LessOrEqual(t, len([]rune(got)), 11)
}

func TestPreviewPlainTextUntouched(t *testing.T) {
	got, err := Preview("My baby finally sleeps through the night!", 0)
	require.NoError(t, err)
	assert.Equal(t, "My baby finally sleeps through the night!", got)
}

func TestNormalizeTags(t *testing.T) {
	got := NormalizeTags([]string{"Baby Food", "baby-food", "  ", "Night Sleep!"}, pkg.Slugify)
	assert.Equal(t, []string{"baby-food", "night-sleep"}, got)
}
