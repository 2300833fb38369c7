package db

import (
	"testing"

	"github.com/jonathan/portfolio-generator/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSchema(t *testing.T) {
	schema := Schema()
	assert.Contains(t, schema, "CREATE TABLE IF NOT EXISTS portfolio_templates")
	assert.Contains(t, schema, "name        TEXT NOT NULL UNIQUE")
	assert.Contains(t, schema, "CREATE TABLE IF NOT EXISTS profiles")
	assert.Contains(t, schema, "-- +goose Up")
	assert.Contains(t, schema, "-- +goose Down")
}

func TestBuildListTemplatesQuery(t *testing.T) {
	tests := []struct {
		name      string
		filters   TemplateFilters
		wantWhere []string
		wantArgs  []any
	}{
		{
			name:     "no filters uses default limit",
			filters:  TemplateFilters{},
			wantArgs: []any{DefaultListLimit},
		},
		{
			name:      "name prefix",
			filters:   TemplateFilters{NamePrefix: "clone-", Limit: 5},
			wantWhere: []string{"AND name LIKE $1", "LIMIT $2"},
			wantArgs:  []any{`clone-%`, 5},
		},
		{
			name:      "prefix wildcards are escaped",
			filters:   TemplateFilters{NamePrefix: "50%_off"},
			wantWhere: []string{"AND name LIKE $1"},
			wantArgs:  []any{`50\%\_off%`, DefaultListLimit},
		},
		{
			name:      "all filters",
			filters:   TemplateFilters{NamePrefix: "clone", SourceURL: "https://jane.dev/", Limit: 10},
			wantWhere: []string{"AND name LIKE $1", "AND source_url = $2", "LIMIT $3"},
			wantArgs:  []any{"clone%", "https://jane.dev/", 10},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query, args := buildListTemplatesQuery(tt.filters)
			assert.Contains(t, query, "FROM portfolio_templates")
			assert.Contains(t, query, "ORDER BY created_at DESC")
			for _, want := range tt.wantWhere {
				assert.Contains(t, query, want)
			}
			assert.Equal(t, tt.wantArgs, args)
		})
	}
}

func TestDecodeDetected(t *testing.T) {
	detected, err := decodeDetected([]byte(`{"name":true,"skills":true}`))
	require.NoError(t, err)
	assert.True(t, detected[types.SectionName])
	assert.True(t, detected[types.SectionSkills])
	assert.False(t, detected[types.SectionProjects])
	assert.Len(t, detected, len(types.AllSections))

	detected, err = decodeDetected(nil)
	require.NoError(t, err)
	assert.Equal(t, types.NewDetectedSections(), detected)

	_, err = decodeDetected([]byte(`not json`))
	assert.Error(t, err)
}

func TestDecodeProfile(t *testing.T) {
	profile, err := decodeProfile([]byte(`{"name":"Jane Doe","skills":null}`))
	require.NoError(t, err)
	assert.Equal(t, "Jane Doe", profile.Name)
	assert.NotNil(t, profile.Skills)
	assert.NotNil(t, profile.Projects)
	assert.Empty(t, profile.Email)

	_, err = decodeProfile([]byte(`[1,2]`))
	assert.Error(t, err)
}
