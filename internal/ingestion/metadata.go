package ingestion

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"time"
)

// Metadata records where an ingested resume came from
type Metadata struct {
	Source    string `json:"source,omitempty"`   // File path, when read from disk
	URL       string `json:"url,omitempty"`      // Page URL, when fetched
	Format    Format `json:"format"`             // Detected document format
	Bytes     int    `json:"bytes"`              // Size of the raw document
	Timestamp string `json:"timestamp"`          // RFC3339 format
	Hash      string `json:"hash"`               // SHA256 hex digest of the cleaned text
	Platform  string `json:"platform,omitempty"` // Hosting platform for fetched pages
}

// NewMetadata creates a new Metadata instance with current timestamp
func NewMetadata(content string, format Format) *Metadata {
	return &Metadata{
		Format:    format,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Hash:      computeHash(content),
	}
}

// computeHash computes SHA256 hash of content and returns hex string
func computeHash(content string) string {
	hash := sha256.Sum256([]byte(content))
	return hex.EncodeToString(hash[:])
}

// ToJSON marshals Metadata to pretty-printed JSON
func (m *Metadata) ToJSON() ([]byte, error) {
	jsonBytes, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal metadata to JSON: %w", err)
	}
	return jsonBytes, nil
}
