package main

import (
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/jonathan/portfolio-generator/internal/rendering"
	"github.com/jonathan/portfolio-generator/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeProfile(t *testing.T) string {
	t.Helper()
	profile := types.NewProfileRecord()
	profile.Name = "Ada Lovelace"
	profile.Role = "Software Engineer"
	profile.Email = "ada@example.com"
	profile.Skills = []string{"Go", "Python"}
	data, err := json.Marshal(profile)
	require.NoError(t, err)
	return writeFile(t, profileFile, string(data))
}

func TestRenderCommand_Theme(t *testing.T) {
	outDir := filepath.Join(t.TempDir(), "site")

	output, err := execute(t, "render", "--profile", writeProfile(t), "--template", rendering.DefaultTheme, "--out", outDir)
	require.NoError(t, err)
	assert.Contains(t, output, "Done! Site written to")

	page := readFile(t, filepath.Join(outDir, rendering.IndexFile))
	assert.Contains(t, page, "<h1>Ada Lovelace</h1>")
	assert.NotContains(t, page, "{{")
	assert.FileExists(t, filepath.Join(outDir, rendering.StyleFile))
}

func TestRenderCommand_TemplateDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "clone-ada")
	require.NoError(t, rendering.WriteTemplateDir(dir, "<h1>{{name}}</h1><p>{{role}}</p>", "h1{}"))
	outDir := filepath.Join(t.TempDir(), "site")

	_, err := execute(t, "render", "-p", writeProfile(t), "--template-dir", dir, "-o", outDir)
	require.NoError(t, err)

	assert.Equal(t, "<h1>Ada Lovelace</h1><p>Software Engineer</p>", readFile(t, filepath.Join(outDir, rendering.IndexFile)))
	assert.Equal(t, "h1{}", readFile(t, filepath.Join(outDir, rendering.StyleFile)))
}

func TestRenderCommand_Errors(t *testing.T) {
	profile := writeProfile(t)
	tests := []struct {
		name    string
		args    []string
		wantErr string
	}{
		{
			name:    "no template",
			args:    []string{"render", "--profile", profile, "--out", t.TempDir()},
			wantErr: "template-dir",
		},
		{
			name:    "both templates",
			args:    []string{"render", "--profile", profile, "--out", t.TempDir(), "--template", "minimal", "--template-dir", t.TempDir()},
			wantErr: "template-dir",
		},
		{
			name:    "unknown template without database",
			args:    []string{"render", "--profile", profile, "--out", t.TempDir(), "--template", "does-not-exist"},
			wantErr: "not a built-in theme",
		},
		{
			name:    "missing profile",
			args:    []string{"render", "--profile", filepath.Join(t.TempDir(), "nope.json"), "--out", t.TempDir(), "--template", "minimal"},
			wantErr: "failed to read profile",
		},
		{
			name:    "malformed profile",
			args:    []string{"render", "--profile", writeFile(t, "bad.json", "{"), "--out", t.TempDir(), "--template", "minimal"},
			wantErr: "failed to parse profile JSON",
		},
		{
			name:    "profile over limits",
			args:    []string{"render", "--profile", writeFile(t, "url.json", `{"github": "https://github.com/ada"}`), "--out", t.TempDir(), "--template", "minimal"},
			wantErr: "invalid profile",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("DATABASE_URL", "")
			_, err := execute(t, tt.args...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
