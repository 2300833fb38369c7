package ingestion

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/h2non/filetype"
	"github.com/jonathan/portfolio-generator/internal/fetch"
)

// Format is a supported resume document format.
type Format string

const (
	FormatPDF     Format = "pdf"
	FormatDOCX    Format = "docx"
	FormatHTML    Format = "html"
	FormatText    Format = "text"
	FormatUnknown Format = "unknown"
)

// DefaultMaxBytes caps a resume document.
const DefaultMaxBytes int64 = 512 * 1024

// sniffBytes is how much of a document the magic-number matchers inspect.
const sniffBytes = 8192

// DetectFormat picks a format from the file extension, falling back to the
// content itself for files without a known extension. Images, media and
// other recognized binaries are FormatUnknown even when their header happens
// to be valid UTF-8.
func DetectFormat(fileName string, data []byte) Format {
	switch strings.ToLower(filepath.Ext(fileName)) {
	case ".pdf":
		return FormatPDF
	case ".docx":
		return FormatDOCX
	case ".html", ".htm", ".xhtml":
		return FormatHTML
	case ".txt", ".text", ".md", ".markdown":
		return FormatText
	}

	head := data[:min(len(data), sniffBytes)]
	kind, _ := filetype.Match(head)
	switch kind.Extension {
	case "pdf":
		return FormatPDF
	case "docx":
		return FormatDOCX
	}
	if kind != filetype.Unknown {
		// Word documents saved without [Content_Types].xml first look like
		// plain zips to the matcher.
		if kind.Extension == "zip" && isDOCX(data) {
			return FormatDOCX
		}
		return FormatUnknown
	}

	switch {
	case looksLikeHTML(data):
		return FormatHTML
	case utf8.Valid(data):
		return FormatText
	}
	return FormatUnknown
}

// ExtractTextFromBytes converts an in-memory document to plain text. The
// result is not yet cleaned; see CleanText.
func ExtractTextFromBytes(data []byte, fileName string) (string, Format, error) {
	format := DetectFormat(fileName, data)

	var (
		text string
		err  error
	)
	switch format {
	case FormatPDF:
		text, err = extractPDF(data)
	case FormatDOCX:
		text, err = extractDOCX(data)
	case FormatHTML:
		text, err = fetch.ExtractMainText(string(data), fetch.ResumeSelectors())
	case FormatText:
		if !utf8.Valid(data) {
			err = fmt.Errorf("text is not valid UTF-8")
		}
		text = string(data)
	default:
		return "", format, &DocumentError{Source: fileName, Message: "unsupported file type"}
	}
	if err != nil {
		return "", format, &DocumentError{Source: fileName, Message: fmt.Sprintf("failed to extract %s text", format), Cause: err}
	}
	return text, format, nil
}

// ReadDocument reads a resume file of at most maxBytes (DefaultMaxBytes when
// zero or less) and returns its cleaned text with metadata.
func ReadDocument(path string, maxBytes int64) (string, *Metadata, error) {
	if maxBytes <= 0 {
		maxBytes = DefaultMaxBytes
	}

	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", nil, &DocumentError{Source: path, Message: "file not found", Cause: err}
		}
		return "", nil, &DocumentError{Source: path, Message: "failed to open file", Cause: err}
	}
	defer func() { _ = f.Close() }()

	data, err := io.ReadAll(io.LimitReader(f, maxBytes+1))
	if err != nil {
		return "", nil, &DocumentError{Source: path, Message: "failed to read file", Cause: err}
	}
	if int64(len(data)) > maxBytes {
		size := int64(len(data))
		if info, statErr := f.Stat(); statErr == nil {
			size = info.Size()
		}
		return "", nil, &InputTooLargeError{Source: path, Size: size, Limit: maxBytes}
	}

	raw, format, err := ExtractTextFromBytes(data, path)
	if err != nil {
		return "", nil, err
	}

	cleaned := CleanText(raw)
	metadata := NewMetadata(cleaned, format)
	metadata.Source = path
	metadata.Bytes = len(data)
	return cleaned, metadata, nil
}

func looksLikeHTML(data []byte) bool {
	head := strings.ToLower(strings.TrimSpace(string(data[:min(len(data), 512)])))
	return strings.HasPrefix(head, "<!doctype html") || strings.HasPrefix(head, "<html")
}
