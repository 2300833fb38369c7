package ingestion

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCleanText_PreserveMarkdownHeadings(t *testing.T) {
	input := "# Title\n## Subtitle\nContent here"
	result := CleanText(input)

	assert.Contains(t, result, "# Title")
	assert.Contains(t, result, "## Subtitle")
	assert.Contains(t, result, "Content here")
}

func TestCleanText_PreserveBulletLists(t *testing.T) {
	input := "- Item 1\n- Item 2\n* Item 3"
	result := CleanText(input)

	assert.Contains(t, result, "- Item 1")
	assert.Contains(t, result, "- Item 2")
	assert.Contains(t, result, "* Item 3")
}

func TestCleanText_NormalizeWhitespace(t *testing.T) {
	input := "Line    with    multiple    spaces"
	result := CleanText(input)

	assert.Contains(t, result, "Line with multiple spaces")
	assert.NotContains(t, result, "    ") // Should not have 4 spaces
}

func TestCleanText_RemoveExcessiveBlankLines(t *testing.T) {
	input := "Line 1\n\n\n\n\nLine 2"
	result := CleanText(input)

	// Should have max 2 consecutive newlines
	assert.NotContains(t, result, "\n\n\n\n")
	// But should preserve up to 2
	assert.Contains(t, result, "\n\n")
}

func TestCleanText_NormalizeLineEndings(t *testing.T) {
	input := "Line 1\r\nLine 2\rLine 3\nLine 4"
	result := CleanText(input)

	// All should be normalized to LF
	assert.NotContains(t, result, "\r\n")
	assert.NotContains(t, result, "\r")
	assert.Contains(t, result, "\n")
}

func TestCleanText_DeterministicOutput(t *testing.T) {
	input := "Test content   with   spaces\n\n\nMultiple   blank   lines"
	result1 := CleanText(input)
	result2 := CleanText(input)

	// Same input should produce identical output
	assert.Equal(t, result1, result2)
}

func TestCleanText_EmptyInput(t *testing.T) {
	result := CleanText("")
	assert.Empty(t, result)
}

func TestCleanText_OnlyWhitespace(t *testing.T) {
	result := CleanText("   \n  \n  ")
	assert.Empty(t, result)
}

func TestCleanText_SpecialCharacters(t *testing.T) {
	input := "Test with émojis 🚀 and spéciàl chàracters"
	result := CleanText(input)

	assert.Contains(t, result, "émojis")
	assert.Contains(t, result, "🚀")
	assert.Contains(t, result, "spéciàl chàracters")
}

func TestCleanText_PreserveIndentation(t *testing.T) {
	input := "    Indented line\n  Less indented"
	result := CleanText(input)

	// Should preserve relative indentation
	assert.Contains(t, result, "Indented")
	assert.Contains(t, result, "Less indented")
}

func TestCleanText_ComplexFormatting(t *testing.T) {
	testFile := filepath.Join("testdata", "resume.md")
	content, err := os.ReadFile(testFile)
	require.NoError(t, err)

	result := CleanText(string(content))

	// Should preserve headings
	assert.Contains(t, result, "# Jane Doe")
	assert.Contains(t, result, "## Skills")

	// Should preserve bullets
	assert.Contains(t, result, "- Built a billing pipeline in Go")
	assert.Contains(t, result, "* Kubernetes")

	// Should normalize whitespace but preserve structure
	assert.NotEmpty(t, result)
}

func TestCleanText_StripsExporterArtifacts(t *testing.T) {
	input := "\ufeffJane Doe\x00\fSoftware Engineer\u00a0\u00a0\n\u2022 Go"
	result := CleanText(input)

	assert.Equal(t, "Jane Doe\nSoftware Engineer\n\u2022 Go", result)
}

func TestWriteOutput(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "out")
	meta := NewMetadata("resume text", FormatText)

	require.NoError(t, WriteOutput(dir, "resume text", meta))

	text, err := os.ReadFile(filepath.Join(dir, "resume.cleaned.txt"))
	require.NoError(t, err)
	assert.Equal(t, "resume text", string(text))

	metaJSON, err := os.ReadFile(filepath.Join(dir, "resume.meta.json"))
	require.NoError(t, err)
	assert.Contains(t, string(metaJSON), `"format": "text"`)
	assert.Contains(t, string(metaJSON), meta.Hash)
}
