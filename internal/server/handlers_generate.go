package server

import (
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"slices"

	"github.com/google/uuid"
	"github.com/jonathan/portfolio-generator/internal/pipeline"
	"github.com/jonathan/portfolio-generator/internal/rendering"
	"github.com/jonathan/portfolio-generator/internal/types"
)

// GenerateRequest is the body of POST /generate/stream. The resume is either
// a profile or the URL of a resume page; the template is either a page URL to
// clone or a theme or stored template name.
type GenerateRequest struct {
	ResumeURL string               `json:"resume_url,omitempty"`
	Profile   *types.ProfileRecord `json:"profile,omitempty"`
	URL       string               `json:"url,omitempty"`
	Template  string               `json:"template,omitempty"`
	Name      string               `json:"name,omitempty"`
	Save      bool                 `json:"save,omitempty"`
}

// GenerateResult is the payload of the final "complete" event.
type GenerateResult struct {
	Profile    *types.ProfileRecord  `json:"profile"`
	Template   string                `json:"template"`
	Cloned     *types.ClonedTemplate `json:"cloned,omitempty"`
	HTML       string                `json:"html"`
	CSS        string                `json:"css"`
	ProfileID  *uuid.UUID            `json:"profile_id,omitempty"`
	TemplateID *uuid.UUID            `json:"template_id,omitempty"`
}

func (r *GenerateRequest) validate(hasStore bool) error {
	if r.ResumeURL != "" {
		if r.Profile != nil {
			return &ErrValidation{Field: "resume_url", Message: "give either a profile or a resume URL"}
		}
		if err := requireHTTPURL("resume_url", r.ResumeURL); err != nil {
			return err
		}
	}
	if r.Profile != nil {
		r.Profile.Normalize()
		if err := r.Profile.Validate(); err != nil {
			return &ErrValidation{Field: "profile", Message: err.Error()}
		}
	}
	if r.URL != "" {
		if r.Template != "" {
			return &ErrValidation{Field: "template", Message: "give either a page URL or a template name"}
		}
		if err := requireHTTPURL("url", r.URL); err != nil {
			return err
		}
	}
	if len(r.Name) > 80 {
		return &ErrValidation{Field: "name", Message: "must be at most 80 characters"}
	}
	if r.Save && !hasStore {
		return ErrNoDatabase
	}
	return nil
}

// handleGenerateStream runs the whole pipeline and streams its progress as
// Server-Sent Events: "progress" per step, then "complete" or "error".
func (s *Server) handleGenerateStream(w http.ResponseWriter, r *http.Request) {
	var req GenerateRequest
	if err := s.decodeJSON(w, r, &req); err != nil {
		s.failure(w, err)
		return
	}
	if err := req.validate(s.store != nil); err != nil {
		s.failure(w, err)
		return
	}
	if req.URL == "" && req.Template == "" {
		req.Template = rendering.DefaultTheme
	}
	if req.Template != "" && s.store == nil && !slices.Contains(rendering.ThemeNames(), req.Template) {
		s.failure(w, ErrNoDatabase)
		return
	}

	sse, err := NewSSEWriter(w)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}

	outDir, err := os.MkdirTemp("", "portfolio-site-*")
	if err != nil {
		sse.WriteError(http.StatusInternalServerError, fmt.Sprintf("failed to create output directory: %v", err))
		return
	}
	defer func() { _ = os.RemoveAll(outDir) }()

	var out io.Writer = io.Discard
	if s.cfg.Verbose {
		out = log.Writer()
	}

	opts := pipeline.RunOptions{
		ResumePath:    req.ResumeURL,
		Profile:       req.Profile,
		CloneURL:      req.URL,
		Template:      req.Template,
		TemplateName:  req.Name,
		OutDir:        outDir,
		MaxInputBytes: s.cfg.MaxInputBytes,
		FetchTimeout:  s.cfg.FetchTimeout,
		UseBrowser:    s.cfg.UseBrowser,
		Verbose:       s.cfg.Verbose,
		Save:          req.Save,
		Store:         s.store,
		Cache:         s.cache,
		Browser:       s.cfg.Browser,
		Out:           out,
		OnProgress: func(event pipeline.ProgressEvent) {
			if err := sse.WriteEvent("progress", event); err != nil && s.cfg.Verbose {
				log.Printf("[server] dropped progress event: %v", err)
			}
		},
	}

	result, err := pipeline.RunPipeline(r.Context(), opts)
	if err != nil {
		sse.WriteError(HTTPStatus(err), err.Error())
		return
	}

	complete := GenerateResult{
		Profile:  result.Profile,
		Template: result.Template.Name,
		Cloned:   result.Cloned,
		HTML:     result.HTML,
		CSS:      result.Template.CSS,
	}
	if result.ProfileID != uuid.Nil {
		complete.ProfileID = &result.ProfileID
	}
	if result.TemplateID != uuid.Nil {
		complete.TemplateID = &result.TemplateID
	}
	sse.WriteComplete(complete)
}
