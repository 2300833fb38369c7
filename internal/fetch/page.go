package fetch

import (
	"context"
	"log"
	"net/url"
	"time"
)

// Page is a fetched portfolio page ready for cloning.
type Page struct {
	URL      string
	Origin   string
	HTML     string
	CSS      string
	Platform Platform
	Rendered bool // HTML came from the headless browser
}

// PageOptions configures FetchPage.
type PageOptions struct {
	HTTP           *Options
	UseBrowser     bool
	BrowserTimeout time.Duration
	Verbose        bool
	// Browser renders pages that need it; nil means WithBrowser.
	Browser BrowserFunc
}

// FetchPage retrieves a page and all of its CSS. The markup comes from a
// plain GET unless the browser is forced, the host is a known client-rendered
// builder, or the HTTP response carries too little visible text. A failed
// browser render falls back to the HTTP markup.
func FetchPage(ctx context.Context, pageURL string, opts *PageOptions) (*Page, error) {
	if opts == nil {
		opts = &PageOptions{}
	}
	httpOpts := opts.HTTP
	if httpOpts == nil {
		httpOpts = DefaultOptions()
	}
	browser := opts.Browser
	if browser == nil {
		browser = WithBrowser
	}

	res, err := URL(ctx, pageURL, httpOpts)
	if err != nil {
		return nil, err
	}
	if opts.Verbose {
		log.Printf("[FETCH] Fetched %s: %d bytes", res.URL, len(res.HTML))
	}

	platform := DetectPlatform(res.URL)
	page := &Page{
		URL:      res.URL,
		Origin:   origin(res.URL),
		HTML:     res.HTML,
		Platform: platform,
	}

	text := VisibleText(res.HTML)
	if opts.UseBrowser || platform.NeedsBrowser() || ShouldUseBrowser(text) {
		if opts.Verbose {
			log.Printf("[FETCH] Rendering in browser (forced=%v, platform=%s, text=%d chars)",
				opts.UseBrowser, platform, len(text))
		}
		rendered, err := browser(ctx, res.URL, opts.BrowserTimeout, opts.Verbose)
		switch {
		case err != nil:
			if opts.Verbose {
				log.Printf("[FETCH] Browser rendering failed: %v, using HTTP content", err)
			}
		case int64(len(rendered)) > httpOpts.maxBytes():
			if opts.Verbose {
				log.Printf("[FETCH] Rendered page exceeds %d bytes, using HTTP content", httpOpts.maxBytes())
			}
		default:
			page.HTML = rendered
			page.Rendered = true
		}
	}

	page.HTML = StripPlatformNoise(page.HTML, platform)

	sheets, err := ExtractStylesheets(page.HTML, page.URL)
	if err != nil {
		return nil, err
	}
	page.CSS, err = FetchStylesheets(ctx, sheets, httpOpts, opts.Verbose)
	if err != nil {
		return nil, &Error{URL: pageURL, Message: "stylesheet fetch interrupted", Cause: err}
	}
	if opts.Verbose {
		log.Printf("[FETCH] Collected %d stylesheets, %d bytes of CSS", len(sheets), len(page.CSS))
	}

	return page, nil
}

// origin returns scheme://host/ of an absolute URL.
func origin(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil || u.Host == "" {
		return ""
	}
	return u.Scheme + "://" + u.Host + "/"
}
