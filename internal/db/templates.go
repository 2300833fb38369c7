package db

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jonathan/portfolio-generator/internal/types"
)

// ErrTemplateNotFound is returned when deleting a template that does not exist.
var ErrTemplateNotFound = errors.New("template not found")

// DefaultListLimit caps list queries without an explicit limit.
const DefaultListLimit = 50

// TemplateSummary is a lightweight view of a stored template for listing
type TemplateSummary struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	SourceURL string    `json:"source_url"`
	CreatedAt time.Time `json:"created_at"`
}

// TemplateFilters holds optional filters for listing templates
type TemplateFilters struct {
	NamePrefix string
	SourceURL  string
	Limit      int
}

// SaveTemplate stores a cloned template, replacing any template with the same
// name. A nil ID is assigned a new UUID; the stored row keeps the ID it was
// first saved with.
func (db *DB) SaveTemplate(ctx context.Context, tpl *types.ClonedTemplate) (uuid.UUID, error) {
	if tpl == nil || tpl.Name == "" {
		return uuid.Nil, errors.New("template name is required")
	}
	if tpl.ID == uuid.Nil {
		tpl.ID = uuid.New()
	}
	if tpl.CreatedAt.IsZero() {
		tpl.CreatedAt = time.Now().UTC()
	}

	detected, err := json.Marshal(tpl.DetectedSections)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to marshal detected sections: %w", err)
	}

	var id uuid.UUID
	err = db.pool.QueryRow(ctx,
		`INSERT INTO portfolio_templates (id, name, source_url, markup, css, detected, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 ON CONFLICT (name) DO UPDATE SET
		   source_url = EXCLUDED.source_url,
		   markup = EXCLUDED.markup,
		   css = EXCLUDED.css,
		   detected = EXCLUDED.detected,
		   updated_at = NOW()
		 RETURNING id`,
		tpl.ID, tpl.Name, tpl.SourceURL, tpl.Markup, tpl.CSS, detected, tpl.CreatedAt,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to save template %s: %w", tpl.Name, err)
	}
	tpl.ID = id
	return id, nil
}

// GetTemplateByName retrieves a template by its unique name. It returns nil
// without an error when no template has that name.
func (db *DB) GetTemplateByName(ctx context.Context, name string) (*types.ClonedTemplate, error) {
	var tpl types.ClonedTemplate
	var detected []byte
	err := db.pool.QueryRow(ctx,
		`SELECT id, name, source_url, markup, css, detected, created_at
		 FROM portfolio_templates WHERE name = $1`,
		name,
	).Scan(&tpl.ID, &tpl.Name, &tpl.SourceURL, &tpl.Markup, &tpl.CSS, &detected, &tpl.CreatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get template %s: %w", name, err)
	}

	tpl.DetectedSections, err = decodeDetected(detected)
	if err != nil {
		return nil, fmt.Errorf("failed to decode template %s: %w", name, err)
	}
	return &tpl, nil
}

// ListTemplates retrieves template summaries, newest first
func (db *DB) ListTemplates(ctx context.Context, filters TemplateFilters) ([]TemplateSummary, error) {
	query, args := buildListTemplatesQuery(filters)

	rows, err := db.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list templates: %w", err)
	}
	defer rows.Close()

	var templates []TemplateSummary
	for rows.Next() {
		var s TemplateSummary
		if err := rows.Scan(&s.ID, &s.Name, &s.SourceURL, &s.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan template: %w", err)
		}
		templates = append(templates, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list templates: %w", err)
	}
	return templates, nil
}

// DeleteTemplate removes a template by name
func (db *DB) DeleteTemplate(ctx context.Context, name string) error {
	result, err := db.pool.Exec(ctx, `DELETE FROM portfolio_templates WHERE name = $1`, name)
	if err != nil {
		return fmt.Errorf("failed to delete template: %w", err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("%w: %s", ErrTemplateNotFound, name)
	}
	return nil
}

func buildListTemplatesQuery(filters TemplateFilters) (string, []any) {
	if filters.Limit <= 0 {
		filters.Limit = DefaultListLimit
	}

	query := `SELECT id, name, source_url, created_at
		FROM portfolio_templates WHERE 1=1`
	args := []any{}
	argNum := 1

	if filters.NamePrefix != "" {
		query += fmt.Sprintf(" AND name LIKE $%d", argNum)
		args = append(args, escapeLike(filters.NamePrefix)+"%")
		argNum++
	}
	if filters.SourceURL != "" {
		query += fmt.Sprintf(" AND source_url = $%d", argNum)
		args = append(args, filters.SourceURL)
		argNum++
	}

	query += fmt.Sprintf(" ORDER BY created_at DESC LIMIT $%d", argNum)
	args = append(args, filters.Limit)
	return query, args
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}

// decodeDetected restores a detected-sections map, filling sections the row
// does not mention with false.
func decodeDetected(raw []byte) (types.DetectedSections, error) {
	detected := types.NewDetectedSections()
	if len(raw) == 0 {
		return detected, nil
	}
	var stored map[string]bool
	if err := json.Unmarshal(raw, &stored); err != nil {
		return nil, err
	}
	for k, v := range stored {
		detected[k] = v
	}
	return detected, nil
}
