package fetch

import (
	"context"
	"log"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/sync/errgroup"
)

// DefaultStylesheetConcurrency bounds parallel stylesheet requests for a page.
const DefaultStylesheetConcurrency = 4

// MaxStylesheets caps how many external stylesheets are fetched for one page.
const MaxStylesheets = 20

// Stylesheet is one CSS source referenced by a page, either an external
// sheet (URL) or the text of an inline <style> element.
type Stylesheet struct {
	URL    string
	Inline string
}

// ExtractStylesheets lists a page's stylesheets in document order. Relative
// hrefs are resolved against baseURL.
func ExtractStylesheets(htmlContent string, baseURL string) ([]Stylesheet, error) {
	base, err := url.Parse(baseURL)
	if err != nil {
		return nil, &Error{URL: baseURL, Message: "failed to parse base URL", Cause: err}
	}
	if base.Scheme == "" || base.Host == "" {
		return nil, &Error{URL: baseURL, Message: "invalid base URL (must have scheme and host)"}
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(htmlContent))
	if err != nil {
		return nil, &Error{URL: baseURL, Message: "failed to parse HTML", Cause: err}
	}

	seen := make(map[string]bool)
	var sheets []Stylesheet
	external := 0
	doc.Find("link[rel], style").Each(func(_ int, s *goquery.Selection) {
		if goquery.NodeName(s) == "style" {
			if text := strings.TrimSpace(s.Text()); text != "" {
				sheets = append(sheets, Stylesheet{Inline: text})
			}
			return
		}

		rel, _ := s.Attr("rel")
		if !strings.Contains(strings.ToLower(rel), "stylesheet") {
			return
		}
		href, exists := s.Attr("href")
		if !exists || strings.TrimSpace(href) == "" {
			return
		}
		ref, err := url.Parse(strings.TrimSpace(href))
		if err != nil {
			return
		}
		abs := base.ResolveReference(ref)
		if abs.Scheme != "http" && abs.Scheme != "https" {
			return
		}
		abs.Fragment = ""
		key := abs.String()
		if seen[key] || external >= MaxStylesheets {
			return
		}
		seen[key] = true
		external++
		sheets = append(sheets, Stylesheet{URL: key})
	})

	return sheets, nil
}

// FetchStylesheets downloads the external sheets concurrently and returns
// all CSS concatenated in document order. Sheets that fail to download are
// skipped; the error is non-nil only when ctx is cancelled.
func FetchStylesheets(ctx context.Context, sheets []Stylesheet, opts *Options, verbose bool) (string, error) {
	if opts == nil {
		opts = DefaultOptions()
	}

	parts := make([]string, len(sheets))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(DefaultStylesheetConcurrency)

	for i, sheet := range sheets {
		if sheet.URL == "" {
			parts[i] = sheet.Inline
			continue
		}
		g.Go(func() error {
			res, err := URL(gctx, sheet.URL, opts)
			if err != nil {
				if verbose {
					log.Printf("[FETCH] Skipping stylesheet %s: %v", sheet.URL, err)
				}
				return nil
			}
			parts[i] = res.HTML
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return "", err
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}

	var b strings.Builder
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		if b.Len() > 0 {
			b.WriteString("\n\n")
		}
		b.WriteString(part)
	}
	return b.String(), nil
}
