package main

import (
	"path/filepath"
	"testing"

	"github.com/jonathan/portfolio-generator/internal/schemas"
	rootschemas "github.com/jonathan/portfolio-generator/schemas"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractResumeCommand(t *testing.T) {
	resume := writeFile(t, "resume.txt", resumeText)
	outDir := filepath.Join(t.TempDir(), "out")

	output, err := execute(t, "extract-resume", "--file", resume, "--out", outDir)
	require.NoError(t, err)
	assert.Contains(t, output, "Successfully extracted profile")

	assert.FileExists(t, filepath.Join(outDir, "resume.cleaned.txt"))
	assert.FileExists(t, filepath.Join(outDir, "resume.meta.json"))

	profile, err := readProfile(filepath.Join(outDir, profileFile))
	require.NoError(t, err)
	assert.Equal(t, "Jane Doe", profile.Name)
	assert.Equal(t, "jane@example.com", profile.Email)
	assert.Equal(t, "janedoe", profile.GitHub)
	assert.Contains(t, profile.Skills, "Go")
	assert.NoError(t, schemas.ValidateDocument(rootschemas.Profile, profile))
}

func TestExtractResumeCommand_Verbose(t *testing.T) {
	resume := writeFile(t, "resume.txt", resumeText)

	output, err := execute(t, "extract-resume", "-f", resume, "-o", t.TempDir(), "-v")
	require.NoError(t, err)
	assert.Contains(t, output, "EXTRACTED PROFILE")
}

func TestExtractResumeCommand_Errors(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		wantErr string
	}{
		{
			name:    "missing flags",
			args:    []string{"extract-resume"},
			wantErr: "required flag",
		},
		{
			name:    "file not found",
			args:    []string{"extract-resume", "--file", filepath.Join(t.TempDir(), "nope.pdf"), "--out", t.TempDir()},
			wantErr: "file not found",
		},
		{
			name:    "too large",
			args:    []string{"extract-resume", "--file", writeFile(t, "big.txt", resumeText), "--out", t.TempDir(), "--max-bytes", "10"},
			wantErr: "failed to ingest resume",
		},
		{
			name:    "save without database",
			args:    []string{"extract-resume", "--file", writeFile(t, "r.txt", resumeText), "--out", t.TempDir(), "--save"},
			wantErr: "DATABASE_URL is required",
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
