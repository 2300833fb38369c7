package skills

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMatch_Disambiguation(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		want    []string
		notWant []string
	}{
		{
			name:    "C family and the word go",
			text:    "C++, C#, CSS, and Go fishing",
			want:    []string{"C++", "C#", "CSS"},
			notWant: []string{"C", "Go"},
		},
		{
			name: "Go next to a delimiter",
			text: "Built with Go, React",
			want: []string{"Go", "React"},
		},
		{
			name: "Go at the end of a line",
			text: "Languages: Python, Go\nTools: Docker",
			want: []string{"Python", "Go", "Docker"},
		},
		{
			name: "bare C in a list",
			text: "C, Java, Rust",
			want: []string{"Java", "C", "Rust"},
		},
		{
			name:    "R as a language",
			text:    "Statistics with R programming and RStudio",
			want:    []string{"R"},
			notWant: []string{"C"},
		},
		{
			name:    "R inside prose is ignored",
			text:    "Led R&D meetings",
			notWant: []string{"R"},
		},
		{
			name:    "JavaScript is not inferred from Node.js",
			text:    "Node.js and Next.js services",
			want:    []string{"Next.js", "Node.js"},
			notWant: []string{"JavaScript"},
		},
		{
			name:    "SQL is not matched inside MySQL",
			text:    "MySQL, PostgreSQL",
			want:    []string{"PostgreSQL", "MySQL"},
			notWant: []string{"SQL"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Match(tt.text)
			for _, w := range tt.want {
				assert.Contains(t, got, w)
			}
			for _, nw := range tt.notWant {
				assert.NotContains(t, got, nw)
			}
		})
	}
}

func TestMatch_ExactSetForCFamily(t *testing.T) {
	assert.Equal(t, []string{"C++", "C#", "CSS"}, Match("C++, C#, CSS, and Go fishing"))
}

func TestMatch_VocabularyOrderAndDedup(t *testing.T) {
	got := Match("React, Python, react.js, PYTHON")
	assert.Equal(t, []string{"Python", "React"}, got)
}

func TestMatch_EmptyInput(t *testing.T) {
	got := Match("   ")
	require.NotNil(t, got)
	assert.Empty(t, got)
}

func TestVocabulary_LabelsUnique(t *testing.T) {
	seen := make(map[string]bool)
	for _, r := range Vocabulary() {
		assert.False(t, seen[r.Label], "duplicate label %s", r.Label)
		seen[r.Label] = true
		require.NotNil(t, r.Detector)
	}
}

func TestFallbackTokens(t *testing.T) {
	text := "Leadership, Public Speaking\n• Negotiation; 2020 / Mentoring: x\nleadership"

	got := FallbackTokens(text)
	assert.Equal(t, []string{"Leadership", "Public Speaking", "Negotiation", "Mentoring"}, got)
}

func TestFallbackTokens_CapsAtTwenty(t *testing.T) {
	var parts []string
	for i := 0; i < 30; i++ {
		parts = append(parts, "skill"+string(rune('a'+i%26))+string(rune('a'+i/26)))
	}

	got := FallbackTokens(strings.Join(parts, ", "))
	assert.Len(t, got, MaxFallbackTokens)
}

func TestFallbackTokens_LengthBounds(t *testing.T) {
	long := strings.Repeat("x", 35)
	got := FallbackTokens("a, ok, " + long)
	assert.Equal(t, []string{"ok"}, got)
}
