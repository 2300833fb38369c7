package ingestion

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/jonathan/portfolio-generator/internal/fetch"
)

var (
	// ErrHTTPRequestFailed is returned when the resume page could not be fetched
	ErrHTTPRequestFailed = fmt.Errorf("HTTP request failed")
	// ErrContentExtractionFailed is returned when no text could be pulled from the page
	ErrContentExtractionFailed = fmt.Errorf("content extraction failed")
)

// URLOptions configures IngestFromURL.
type URLOptions struct {
	HTTP           *fetch.Options
	UseBrowser     bool
	BrowserTimeout time.Duration
	Verbose        bool
	// Browser renders client-side pages; nil means fetch.WithBrowser.
	Browser fetch.BrowserFunc
}

// IngestFromURL fetches a resume published as a web page and returns its
// cleaned text with metadata. Platform badges and banners are stripped before
// extraction. When UseBrowser is set and the plain fetch yields too little
// text, the page is rendered in a headless browser and extracted again.
func IngestFromURL(ctx context.Context, urlStr string, opts *URLOptions) (string, *Metadata, error) {
	if opts == nil {
		opts = &URLOptions{}
	}
	browser := opts.Browser
	if browser == nil {
		browser = fetch.WithBrowser
	}

	platform := fetch.DetectPlatform(urlStr)
	if opts.Verbose {
		log.Printf("[INGEST] URL: %s", urlStr)
		log.Printf("[INGEST] Detected platform: %s", platform)
	}

	result, err := fetch.URL(ctx, urlStr, opts.HTTP)
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrHTTPRequestFailed, err)
	}
	if opts.Verbose {
		log.Printf("[INGEST] Fetched HTML: %d bytes", len(result.HTML))
	}

	noise := fetch.PlatformNoiseSelectors(platform)
	textContent, err := fetch.ExtractMainText(result.HTML, fetch.ResumeSelectors(), noise...)
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrContentExtractionFailed, err)
	}
	if opts.Verbose {
		log.Printf("[INGEST] Extracted text: %d chars", len(textContent))
	}

	if opts.UseBrowser && fetch.ShouldUseBrowser(textContent) {
		if opts.Verbose {
			log.Printf("[INGEST] Content too short (%d chars < %d), falling back to browser rendering...",
				len(textContent), fetch.MinContentLength)
		}
		rendered, browserErr := browser(ctx, result.URL, opts.BrowserTimeout, opts.Verbose)
		if browserErr != nil {
			if opts.Verbose {
				log.Printf("[INGEST] Browser rendering failed: %v, using HTTP content", browserErr)
			}
		} else if text, extractErr := fetch.ExtractMainText(rendered, fetch.ResumeSelectors(), noise...); extractErr == nil {
			textContent = text
			if opts.Verbose {
				log.Printf("[INGEST] Browser extracted text: %d chars", len(textContent))
			}
		}
	}

	cleanedText := CleanText(textContent)
	if cleanedText == "" {
		return "", nil, fmt.Errorf("%w: page %s has no readable text", ErrContentExtractionFailed, urlStr)
	}

	metadata := NewMetadata(cleanedText, FormatHTML)
	metadata.URL = result.URL
	metadata.Bytes = len(result.HTML)
	metadata.Platform = string(platform)
	return cleanedText, metadata, nil
}
