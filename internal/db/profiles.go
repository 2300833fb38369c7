package db

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jonathan/portfolio-generator/internal/types"
)

// ProfileSummary is a lightweight view of a stored profile for listing
type ProfileSummary struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Source    string    `json:"source"`
	CreatedAt time.Time `json:"created_at"`
}

// SaveProfile stores an extracted profile and returns its ID. Source records
// the resume file or URL it came from.
func (db *DB) SaveProfile(ctx context.Context, profile *types.ProfileRecord, source string) (uuid.UUID, error) {
	if profile == nil {
		return uuid.Nil, errors.New("profile is required")
	}
	content, err := json.Marshal(profile)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to marshal profile: %w", err)
	}

	id := uuid.New()
	_, err = db.pool.Exec(ctx,
		`INSERT INTO profiles (id, name, source, content)
		 VALUES ($1, $2, $3, $4)`,
		id, profile.Name, source, content,
	)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to save profile: %w", err)
	}
	return id, nil
}

// GetProfile retrieves a profile by ID. It returns nil without an error when
// the profile does not exist.
func (db *DB) GetProfile(ctx context.Context, id uuid.UUID) (*types.ProfileRecord, error) {
	var content []byte
	err := db.pool.QueryRow(ctx,
		`SELECT content FROM profiles WHERE id = $1`,
		id,
	).Scan(&content)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}
	return decodeProfile(content)
}

// ListProfiles retrieves recent profiles
func (db *DB) ListProfiles(ctx context.Context, limit int) ([]ProfileSummary, error) {
	if limit <= 0 {
		limit = DefaultListLimit
	}
	rows, err := db.pool.Query(ctx,
		`SELECT id, name, source, created_at
		 FROM profiles ORDER BY created_at DESC LIMIT $1`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list profiles: %w", err)
	}
	defer rows.Close()

	var profiles []ProfileSummary
	for rows.Next() {
		var p ProfileSummary
		if err := rows.Scan(&p.ID, &p.Name, &p.Source, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan profile: %w", err)
		}
		profiles = append(profiles, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list profiles: %w", err)
	}
	return profiles, nil
}

// decodeProfile unmarshals stored JSON and restores the empty-not-null
// guarantee for fields older rows may lack.
func decodeProfile(content []byte) (*types.ProfileRecord, error) {
	profile := types.NewProfileRecord()
	if err := json.Unmarshal(content, profile); err != nil {
		return nil, fmt.Errorf("failed to decode profile: %w", err)
	}
	profile.Normalize()
	return profile, nil
}
