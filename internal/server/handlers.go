package server

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"mime"
	"net/http"
	"slices"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/jonathan/portfolio-generator/internal/cloning"
	"github.com/jonathan/portfolio-generator/internal/db"
	"github.com/jonathan/portfolio-generator/internal/extraction"
	"github.com/jonathan/portfolio-generator/internal/fetch"
	"github.com/jonathan/portfolio-generator/internal/ingestion"
	"github.com/jonathan/portfolio-generator/internal/rendering"
	"github.com/jonathan/portfolio-generator/internal/types"
)

// multipartOverhead is the allowance for multipart headers on top of the
// document size cap.
const multipartOverhead = 64 * 1024

// ExtractResponse is the body of a successful POST /extract.
type ExtractResponse struct {
	Profile   *types.ProfileRecord `json:"profile"`
	Metadata  *ingestion.Metadata  `json:"metadata"`
	ProfileID *uuid.UUID           `json:"profile_id,omitempty"`
}

// CloneRequest is the body of POST /clone.
type CloneRequest struct {
	types.CloneRequest
	Save bool `json:"save,omitempty"`
}

// CloneResponse is the body of a successful POST /clone.
type CloneResponse struct {
	Template *types.ClonedTemplate `json:"template"`
	Injected []string              `json:"injected_sections"`
	Saved    bool                  `json:"saved"`
}

// RenderRequest is the body of POST /render. Markup, when set, is rendered
// instead of a named template. ProfileID renders a stored profile.
type RenderRequest struct {
	Profile   *types.ProfileRecord `json:"profile"`
	ProfileID string               `json:"profile_id,omitempty"`
	Template string               `json:"template,omitempty"`
	Markup   string               `json:"markup,omitempty"`
	CSS      string               `json:"css,omitempty"`
}

// RenderResponse is the body of a successful POST /render.
type RenderResponse struct {
	Template string `json:"template"`
	HTML     string `json:"html"`
	CSS      string `json:"css"`
}

// handleHealth returns server health status
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]any{
		"status":   "ok",
		"database": s.store != nil,
	})
}

func (s *Server) handleListThemes(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]any{
		"themes":  rendering.ThemeNames(),
		"default": rendering.DefaultTheme,
	})
}

func (s *Server) handleListTemplates(w http.ResponseWriter, r *http.Request) {
	if s.store == nil {
		s.failure(w, ErrNoDatabase)
		return
	}

	filters := db.TemplateFilters{
		NamePrefix: r.URL.Query().Get("prefix"),
		SourceURL:  r.URL.Query().Get("source_url"),
	}
	if v := r.URL.Query().Get("limit"); v != "" {
		limit, err := strconv.Atoi(v)
		if err != nil || limit <= 0 {
			s.failure(w, &ErrValidation{Field: "limit", Message: "must be a positive integer"})
			return
		}
		filters.Limit = limit
	}

	templates, err := s.store.ListTemplates(r.Context(), filters)
	if err != nil {
		s.failure(w, err)
		return
	}
	if templates == nil {
		templates = []db.TemplateSummary{}
	}
	s.jsonResponse(w, http.StatusOK, map[string]any{
		"templates": templates,
		"count":     len(templates),
	})
}

func (s *Server) handleGetTemplate(w http.ResponseWriter, r *http.Request) {
	tpl, err := s.storedTemplate(r.Context(), r.PathValue("name"))
	if err != nil {
		s.failure(w, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, tpl)
}

func (s *Server) handleListProfiles(w http.ResponseWriter, r *http.Request) {
	if s.store == nil {
		s.failure(w, ErrNoDatabase)
		return
	}
	limit := 0
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			s.failure(w, &ErrValidation{Field: "limit", Message: "must be a positive integer"})
			return
		}
		limit = n
	}

	profiles, err := s.store.ListProfiles(r.Context(), limit)
	if err != nil {
		s.failure(w, err)
		return
	}
	if profiles == nil {
		profiles = []db.ProfileSummary{}
	}
	s.jsonResponse(w, http.StatusOK, map[string]any{
		"profiles": profiles,
		"count":    len(profiles),
	})
}

func (s *Server) handleGetProfile(w http.ResponseWriter, r *http.Request) {
	profile, err := s.storedProfile(r.Context(), r.PathValue("id"))
	if err != nil {
		s.failure(w, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, profile)
}

func (s *Server) handleDeleteTemplate(w http.ResponseWriter, r *http.Request) {
	if s.store == nil {
		s.failure(w, ErrNoDatabase)
		return
	}
	if err := s.store.DeleteTemplate(r.Context(), r.PathValue("name")); err != nil {
		s.failure(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// handleExtract infers a profile from an uploaded resume (multipart field
// "file") or from a resume page ({"url": ...}). ?save=true stores it.
func (s *Server) handleExtract(w http.ResponseWriter, r *http.Request) {
	save := r.URL.Query().Get("save") == "true"
	if save && s.store == nil {
		s.failure(w, ErrNoDatabase)
		return
	}

	var (
		text string
		meta *ingestion.Metadata
		err  error
	)
	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if strings.HasPrefix(mediaType, "multipart/") {
		text, meta, err = s.readUpload(w, r)
	} else {
		var req struct {
			URL string `json:"url"`
		}
		if err = s.decodeJSON(w, r, &req); err == nil {
			if err = requireHTTPURL("url", req.URL); err == nil {
				text, meta, err = ingestion.IngestFromURL(r.Context(), req.URL, &ingestion.URLOptions{
					HTTP:           s.httpOptions(),
					UseBrowser:     s.cfg.UseBrowser,
					BrowserTimeout: s.cfg.FetchTimeout,
					Verbose:        s.cfg.Verbose,
					Browser:        s.cfg.Browser,
				})
			}
		}
	}
	if err != nil {
		s.failure(w, err)
		return
	}

	resp := ExtractResponse{Profile: extraction.ExtractResumeData(text), Metadata: meta}
	if save {
		source := meta.Source
		if source == "" {
			source = meta.URL
		}
		id, err := s.store.SaveProfile(r.Context(), resp.Profile, source)
		if err != nil {
			s.failure(w, err)
			return
		}
		resp.ProfileID = &id
	}
	s.jsonResponse(w, http.StatusOK, resp)
}

// readUpload reads the multipart "file" field within the size cap and
// returns its cleaned text.
func (s *Server) readUpload(w http.ResponseWriter, r *http.Request) (string, *ingestion.Metadata, error) {
	limit := s.cfg.MaxInputBytes
	r.Body = http.MaxBytesReader(w, r.Body, limit+multipartOverhead)

	file, header, err := r.FormFile("file")
	if err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			return "", nil, &ingestion.InputTooLargeError{Source: "upload", Size: maxErr.Limit + 1, Limit: limit}
		}
		return "", nil, &ErrValidation{Field: "file", Message: "multipart field \"file\" is required"}
	}
	defer func() { _ = file.Close() }()

	data, err := io.ReadAll(io.LimitReader(file, limit+1))
	if err != nil {
		return "", nil, &ingestion.DocumentError{Source: header.Filename, Message: "failed to read upload", Cause: err}
	}
	if int64(len(data)) > limit {
		return "", nil, &ingestion.InputTooLargeError{Source: header.Filename, Size: header.Size, Limit: limit}
	}

	raw, format, err := ingestion.ExtractTextFromBytes(data, header.Filename)
	if err != nil {
		return "", nil, err
	}
	text := ingestion.CleanText(raw)
	meta := ingestion.NewMetadata(text, format)
	meta.Source = header.Filename
	meta.Bytes = len(data)
	return text, meta, nil
}

// handleClone fetches a portfolio page and returns it as a cloned template.
func (s *Server) handleClone(w http.ResponseWriter, r *http.Request) {
	var req CloneRequest
	if err := s.decodeJSON(w, r, &req); err != nil {
		s.failure(w, err)
		return
	}
	if err := requireHTTPURL("url", req.URL); err != nil {
		s.failure(w, err)
		return
	}
	if err := req.Validate(); err != nil {
		s.failure(w, &ErrValidation{Field: "request", Message: err.Error()})
		return
	}
	if req.Save && s.store == nil {
		s.failure(w, ErrNoDatabase)
		return
	}

	page, err := fetch.FetchPage(r.Context(), req.URL, &fetch.PageOptions{
		HTTP:           s.httpOptions(),
		UseBrowser:     s.cfg.UseBrowser,
		BrowserTimeout: s.cfg.FetchTimeout,
		Verbose:        s.cfg.Verbose,
		Browser:        s.cfg.Browser,
	})
	if err != nil {
		s.failure(w, err)
		return
	}

	tpl := cloning.Clone(cloning.Source{URL: page.URL, HTML: page.HTML, CSS: page.CSS, Name: req.Name}, nil)
	resp := CloneResponse{Template: tpl, Injected: cloning.InjectedSections(tpl.Markup)}
	if resp.Injected == nil {
		resp.Injected = []string{}
	}
	if req.Save {
		id, err := s.store.SaveTemplate(r.Context(), tpl)
		if err != nil {
			s.failure(w, err)
			return
		}
		tpl.ID = id
		resp.Saved = true
	}
	s.jsonResponse(w, http.StatusCreated, resp)
}

// handleRender renders a profile with inline markup, a theme or a stored
// template. The default theme is used when none is named.
func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	var req RenderRequest
	if err := s.decodeJSON(w, r, &req); err != nil {
		s.failure(w, err)
		return
	}
	if req.Markup != "" && req.Template != "" {
		s.failure(w, &ErrValidation{Field: "template", Message: "give either markup or a template name"})
		return
	}

	if req.Profile != nil && req.ProfileID != "" {
		s.failure(w, &ErrValidation{Field: "profile", Message: "give either a profile or a profile_id"})
		return
	}

	profile := types.NewProfileRecord()
	switch {
	case req.ProfileID != "":
		stored, err := s.storedProfile(r.Context(), req.ProfileID)
		if err != nil {
			s.failure(w, err)
			return
		}
		profile = stored
	case req.Profile != nil:
		profile = req.Profile
		profile.Normalize()
		if err := profile.Validate(); err != nil {
			s.failure(w, &ErrValidation{Field: "profile", Message: err.Error()})
			return
		}
	}

	var src rendering.TemplateSource
	if req.Markup != "" {
		src = rendering.TemplateSource{Name: "inline", Markup: req.Markup, CSS: req.CSS, Cloned: true}
	} else {
		var err error
		if src, err = s.templateSource(r.Context(), req.Template); err != nil {
			s.failure(w, err)
			return
		}
	}

	html, err := rendering.NewRenderer(s.cache).Render(src, profile)
	if err != nil {
		s.failure(w, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, RenderResponse{Template: src.Name, HTML: html, CSS: src.CSS})
}

// templateSource resolves a theme or stored template by name.
func (s *Server) templateSource(ctx context.Context, name string) (rendering.TemplateSource, error) {
	if name == "" {
		name = rendering.DefaultTheme
	}
	if slices.Contains(rendering.ThemeNames(), name) {
		return rendering.Theme(name)
	}
	tpl, err := s.storedTemplate(ctx, name)
	if err != nil {
		return rendering.TemplateSource{}, err
	}
	return rendering.TemplateSource{Name: tpl.Name, Markup: tpl.Markup, CSS: tpl.CSS, Cloned: true}, nil
}

func (s *Server) storedTemplate(ctx context.Context, name string) (*types.ClonedTemplate, error) {
	if s.store == nil {
		return nil, ErrNoDatabase
	}
	tpl, err := s.store.GetTemplateByName(ctx, name)
	if err != nil {
		return nil, err
	}
	if tpl == nil {
		return nil, &ErrNotFound{Kind: "template", Name: name}
	}
	return tpl, nil
}

func (s *Server) storedProfile(ctx context.Context, rawID string) (*types.ProfileRecord, error) {
	if s.store == nil {
		return nil, ErrNoDatabase
	}
	id, err := uuid.Parse(rawID)
	if err != nil {
		return nil, &ErrValidation{Field: "profile_id", Message: "must be a UUID"}
	}
	profile, err := s.store.GetProfile(ctx, id)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, &ErrNotFound{Kind: "profile", Name: rawID}
	}
	return profile, nil
}

func (s *Server) httpOptions() *fetch.Options {
	return &fetch.Options{
		Timeout:   s.cfg.FetchTimeout,
		UserAgent: fetch.DefaultUserAgent,
		MaxBytes:  s.cfg.MaxInputBytes,
	}
}

// decodeJSON reads a JSON body of at most MaxInputBytes plus room for the
// surrounding fields.
func (s *Server) decodeJSON(w http.ResponseWriter, r *http.Request, v any) error {
	r.Body = http.MaxBytesReader(w, r.Body, s.cfg.MaxInputBytes+multipartOverhead)
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			return &ingestion.InputTooLargeError{Source: "request body", Size: maxErr.Limit + 1, Limit: maxErr.Limit}
		}
		return &ErrValidation{Field: "body", Message: "invalid JSON: " + err.Error()}
	}
	return nil
}

// requireHTTPURL rejects anything but an absolute http(s) URL, so that
// clients cannot make the server read local files.
func requireHTTPURL(field, value string) error {
	if value == "" {
		return &ErrValidation{Field: field, Message: "is required"}
	}
	if !strings.HasPrefix(value, "http://") && !strings.HasPrefix(value, "https://") {
		return &ErrValidation{Field: field, Message: "must be an http(s) URL"}
	}
	return nil
}
