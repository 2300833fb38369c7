package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jonathan/portfolio-generator/internal/db"
	"github.com/jonathan/portfolio-generator/internal/schemas"
	"github.com/jonathan/portfolio-generator/internal/types"
)

// Artifact file names written by the commands.
const (
	profileFile  = "profile.json"
	templateJSON = "template.json"
)

// databaseURL returns the flag value, falling back to DATABASE_URL.
func databaseURL(flag string) string {
	if flag != "" {
		return flag
	}
	return os.Getenv("DATABASE_URL")
}

// connect opens the database and makes sure the tables exist.
func connect(ctx context.Context, url string) (*db.DB, error) {
	if url == "" {
		return nil, fmt.Errorf("--db-url or DATABASE_URL is required to use the database")
	}
	database, err := db.Connect(ctx, url)
	if err != nil {
		return nil, err
	}
	if err := database.EnsureSchema(ctx); err != nil {
		database.Close()
		return nil, err
	}
	return database, nil
}

// writeArtifact validates v against an embedded schema and writes it as
// indented JSON.
func writeArtifact(path, schemaName string, v any) error {
	if err := schemas.ValidateDocument(schemaName, v); err != nil {
		return fmt.Errorf("%s does not match %s: %w", filepath.Base(path), schemaName, err)
	}
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal %s: %w", filepath.Base(path), err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

// readProfile loads a profile written by extract-resume.
func readProfile(path string) (*types.ProfileRecord, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read profile: %w", err)
	}
	profile := types.NewProfileRecord()
	if err := json.Unmarshal(data, profile); err != nil {
		return nil, fmt.Errorf("failed to parse profile JSON: %w", err)
	}
	profile.Normalize()
	if err := profile.Validate(); err != nil {
		return nil, fmt.Errorf("invalid profile %s: %w", path, err)
	}
	return profile, nil
}
