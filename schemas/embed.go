// Package schemas holds the JSON Schemas for the artifacts the CLI writes.
package schemas

import "embed"

// Schema file names within FS.
const (
	Profile        = "profile.schema.json"
	ClonedTemplate = "cloned_template.schema.json"
)

// FS contains every *.schema.json file in this directory.
//
//go:embed *.schema.json
var FS embed.FS
