package server

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jonathan/portfolio-generator/internal/db"
	"github.com/jonathan/portfolio-generator/internal/fetch"
	"github.com/jonathan/portfolio-generator/internal/ingestion"
	"github.com/jonathan/portfolio-generator/internal/rendering"
	"github.com/jonathan/portfolio-generator/internal/server/ratelimit"
	"github.com/jonathan/portfolio-generator/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const portfolioPage = `<!DOCTYPE html>
<html>
<head><title>Sam Rivera</title><link rel="stylesheet" href="/main.css"></head>
<body>
  <header><h1>Sam Rivera</h1><h2>Data Engineer</h2></header>
  <section class="about"><p>I move data between systems reliably and quickly at scale.</p></section>
  <section class="skills"><ul><li>Spark</li><li>Airflow</li></ul></section>
  <footer><p>Built by Sam Rivera</p></footer>
</body>
</html>`

const resumePage = `<html><body><main>
<p>Jane Doe</p>
<p>Senior Backend Engineer</p>
<p>jane@example.com</p>
<p>SKILLS</p>
<p>Go, PostgreSQL, Kubernetes</p>
</main></body></html>`

const resumeText = `Jane Doe
Senior Backend Engineer
jane@example.com
github.com/janedoe

SKILLS
Go, PostgreSQL, Kubernetes, Docker
`

type fakeStore struct {
	mu         sync.Mutex
	profiles   []*types.ProfileRecord
	profileIDs []uuid.UUID
	templates  map[string]*types.ClonedTemplate
}

func newFakeStore() *fakeStore {
	return &fakeStore{templates: make(map[string]*types.ClonedTemplate)}
}

func (f *fakeStore) SaveProfile(_ context.Context, profile *types.ProfileRecord, _ string) (uuid.UUID, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	id := uuid.New()
	f.profiles = append(f.profiles, profile)
	f.profileIDs = append(f.profileIDs, id)
	return id, nil
}

func (f *fakeStore) GetProfile(_ context.Context, id uuid.UUID) (*types.ProfileRecord, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i, pid := range f.profileIDs {
		if pid == id {
			return f.profiles[i], nil
		}
	}
	return nil, nil
}

func (f *fakeStore) ListProfiles(_ context.Context, limit int) ([]db.ProfileSummary, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []db.ProfileSummary
	for i, p := range f.profiles {
		if limit > 0 && len(out) == limit {
			break
		}
		out = append(out, db.ProfileSummary{ID: f.profileIDs[i], Name: p.Name})
	}
	return out, nil
}

func (f *fakeStore) SaveTemplate(_ context.Context, tpl *types.ClonedTemplate) (uuid.UUID, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.templates[tpl.Name] = tpl
	return tpl.ID, nil
}

func (f *fakeStore) GetTemplateByName(_ context.Context, name string) (*types.ClonedTemplate, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.templates[name], nil
}

func (f *fakeStore) ListTemplates(_ context.Context, filters db.TemplateFilters) ([]db.TemplateSummary, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []db.TemplateSummary
	for _, t := range f.templates {
		if strings.HasPrefix(t.Name, filters.NamePrefix) {
			out = append(out, db.TemplateSummary{ID: t.ID, Name: t.Name, SourceURL: t.SourceURL, CreatedAt: t.CreatedAt})
		}
	}
	return out, nil
}

func (f *fakeStore) DeleteTemplate(_ context.Context, name string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.templates[name]; !ok {
		return fmt.Errorf("%w: %s", db.ErrTemplateNotFound, name)
	}
	delete(f.templates, name)
	return nil
}

func noBrowser(context.Context, string, time.Duration, bool) (string, error) {
	return "", errors.New("no browser in tests")
}

// newTestServer starts the API with rate limiting disabled. A nil store runs
// the server without a database.
func newTestServer(t *testing.T, store Store) *httptest.Server {
	t.Helper()
	cfg := Config{
		RateLimit:    &ratelimit.Config{Enabled: false},
		Browser:      noBrowser,
		FetchTimeout: 5 * time.Second,
	}
	if store != nil {
		cfg.Store = store
	}
	s, err := New(cfg)
	require.NoError(t, err)
	ts := httptest.NewServer(s.Handler())
	t.Cleanup(func() {
		ts.Close()
		s.Close()
	})
	return ts
}

func newPortfolioServer(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(portfolioPage))
	})
	mux.HandleFunc("/resume", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(resumePage))
	})
	mux.HandleFunc("/main.css", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("body { font-family: serif; }"))
	})
	ts := httptest.NewServer(mux)
	t.Cleanup(ts.Close)
	return ts
}

func postJSON(t *testing.T, url string, body any) *http.Response {
	t.Helper()
	data, err := json.Marshal(body)
	require.NoError(t, err)
	resp, err := http.Post(url, "application/json", bytes.NewReader(data))
	require.NoError(t, err)
	t.Cleanup(func() { _ = resp.Body.Close() })
	return resp
}

func decode[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	var v T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&v))
	return v
}

func sampleTemplate(name string) *types.ClonedTemplate {
	detected := types.NewDetectedSections()
	for _, s := range types.AllSections {
		detected[s] = true
	}
	return &types.ClonedTemplate{
		ID:               uuid.New(),
		Name:             name,
		SourceURL:        "https://jane.dev/",
		Markup:           "<h1>{{name}}</h1>",
		CSS:              "h1{}",
		DetectedSections: detected,
		CreatedAt:        time.Now().UTC(),
	}
}

func TestHealth(t *testing.T) {
	ts := newTestServer(t, nil)

	resp, err := http.Get(ts.URL + "/health")
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	body := decode[map[string]any](t, resp)
	assert.Equal(t, "ok", body["status"])
	assert.Equal(t, false, body["database"])
}

func TestCORSPreflight(t *testing.T) {
	ts := newTestServer(t, nil)

	req, err := http.NewRequest(http.MethodOptions, ts.URL+"/render", nil)
	require.NoError(t, err)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "*", resp.Header.Get("Access-Control-Allow-Origin"))
	assert.Contains(t, resp.Header.Get("Access-Control-Allow-Methods"), "DELETE")
}

func TestListThemes(t *testing.T) {
	ts := newTestServer(t, nil)

	resp, err := http.Get(ts.URL + "/themes")
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()

	body := decode[struct {
		Themes  []string `json:"themes"`
		Default string   `json:"default"`
	}](t, resp)
	assert.Equal(t, rendering.ThemeNames(), body.Themes)
	assert.Equal(t, rendering.DefaultTheme, body.Default)
}

func TestTemplates(t *testing.T) {
	store := newFakeStore()
	store.templates["clone-jane-dev"] = sampleTemplate("clone-jane-dev")
	store.templates["other"] = sampleTemplate("other")
	ts := newTestServer(t, store)

	t.Run("list with prefix", func(t *testing.T) {
		resp, err := http.Get(ts.URL + "/templates?prefix=clone-")
		require.NoError(t, err)
		defer func() { _ = resp.Body.Close() }()

		require.Equal(t, http.StatusOK, resp.StatusCode)
		body := decode[struct {
			Templates []db.TemplateSummary `json:"templates"`
			Count     int                  `json:"count"`
		}](t, resp)
		assert.Equal(t, 1, body.Count)
		assert.Equal(t, "clone-jane-dev", body.Templates[0].Name)
	})

	t.Run("bad limit", func(t *testing.T) {
		resp, err := http.Get(ts.URL + "/templates?limit=zero")
		require.NoError(t, err)
		defer func() { _ = resp.Body.Close() }()
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("get", func(t *testing.T) {
		resp, err := http.Get(ts.URL + "/templates/clone-jane-dev")
		require.NoError(t, err)
		defer func() { _ = resp.Body.Close() }()

		require.Equal(t, http.StatusOK, resp.StatusCode)
		tpl := decode[types.ClonedTemplate](t, resp)
		assert.Equal(t, "<h1>{{name}}</h1>", tpl.Markup)
	})

	t.Run("get missing", func(t *testing.T) {
		resp, err := http.Get(ts.URL + "/templates/nope")
		require.NoError(t, err)
		defer func() { _ = resp.Body.Close() }()
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})

	t.Run("delete", func(t *testing.T) {
		req, err := http.NewRequest(http.MethodDelete, ts.URL+"/templates/other", nil)
		require.NoError(t, err)
		resp, err := http.DefaultClient.Do(req)
		require.NoError(t, err)
		_ = resp.Body.Close()
		assert.Equal(t, http.StatusNoContent, resp.StatusCode)
		assert.NotContains(t, store.templates, "other")

		resp, err = http.DefaultClient.Do(req)
		require.NoError(t, err)
		_ = resp.Body.Close()
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})
}

func TestTemplates_WithoutDatabase(t *testing.T) {
	ts := newTestServer(t, nil)

	for _, path := range []string{"/templates", "/templates/clone-jane-dev", "/profiles", "/profiles/" + uuid.NewString()} {
		resp, err := http.Get(ts.URL + path)
		require.NoError(t, err)
		_ = resp.Body.Close()
		assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode, path)
	}
}

func TestProfiles(t *testing.T) {
	store := newFakeStore()
	ada := types.NewProfileRecord()
	ada.Name = "Ada Lovelace"
	id, err := store.SaveProfile(context.Background(), ada, "ada.txt")
	require.NoError(t, err)
	grace := types.NewProfileRecord()
	grace.Name = "Grace Hopper"
	_, err = store.SaveProfile(context.Background(), grace, "grace.txt")
	require.NoError(t, err)
	ts := newTestServer(t, store)

	t.Run("list with limit", func(t *testing.T) {
		resp, err := http.Get(ts.URL + "/profiles?limit=1")
		require.NoError(t, err)
		defer func() { _ = resp.Body.Close() }()

		require.Equal(t, http.StatusOK, resp.StatusCode)
		body := decode[struct {
			Profiles []db.ProfileSummary `json:"profiles"`
			Count    int                 `json:"count"`
		}](t, resp)
		assert.Equal(t, 1, body.Count)
		assert.Equal(t, id, body.Profiles[0].ID)
	})

	tests := []struct {
		name       string
		path       string
		wantStatus int
	}{
		{name: "get", path: "/profiles/" + id.String(), wantStatus: http.StatusOK},
		{name: "missing", path: "/profiles/" + uuid.NewString(), wantStatus: http.StatusNotFound},
		{name: "bad id", path: "/profiles/not-a-uuid", wantStatus: http.StatusBadRequest},
		{name: "bad limit", path: "/profiles?limit=-1", wantStatus: http.StatusBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := http.Get(ts.URL + tt.path)
			require.NoError(t, err)
			defer func() { _ = resp.Body.Close() }()
			assert.Equal(t, tt.wantStatus, resp.StatusCode)
		})
	}

	t.Run("render stored profile", func(t *testing.T) {
		resp := postJSON(t, ts.URL+"/render", RenderRequest{ProfileID: id.String(), Markup: "<p>{{name}}</p>"})
		require.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, "<p>Ada Lovelace</p>", decode[RenderResponse](t, resp).HTML)

		resp = postJSON(t, ts.URL+"/render", RenderRequest{ProfileID: id.String(), Profile: grace})
		defer func() { _ = resp.Body.Close() }()
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})
}

func TestExtract_Upload(t *testing.T) {
	store := newFakeStore()
	ts := newTestServer(t, store)

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	part, err := mw.CreateFormFile("file", "resume.txt")
	require.NoError(t, err)
	_, err = io.WriteString(part, resumeText)
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	resp, err := http.Post(ts.URL+"/extract?save=true", mw.FormDataContentType(), &body)
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	got := decode[ExtractResponse](t, resp)
	assert.Equal(t, "Jane Doe", got.Profile.Name)
	assert.Equal(t, "jane@example.com", got.Profile.Email)
	assert.Equal(t, ingestion.FormatText, got.Metadata.Format)
	assert.Equal(t, "resume.txt", got.Metadata.Source)
	require.NotNil(t, got.ProfileID)
	assert.Len(t, store.profiles, 1)
}

func TestExtract_URL(t *testing.T) {
	pages := newPortfolioServer(t)
	ts := newTestServer(t, nil)

	resp := postJSON(t, ts.URL+"/extract", map[string]string{"url": pages.URL + "/resume"})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	got := decode[ExtractResponse](t, resp)
	assert.Equal(t, "Jane Doe", got.Profile.Name)
	assert.Equal(t, pages.URL+"/resume", got.Metadata.URL)
	assert.Nil(t, got.ProfileID)
}

func TestExtract_Errors(t *testing.T) {
	ts := newTestServer(t, nil)

	t.Run("save without database", func(t *testing.T) {
		resp := postJSON(t, ts.URL+"/extract?save=true", map[string]string{"url": "https://jane.dev/"})
		assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
	})

	t.Run("file url", func(t *testing.T) {
		resp := postJSON(t, ts.URL+"/extract", map[string]string{"url": "file:///etc/passwd"})
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("unreachable page", func(t *testing.T) {
		resp := postJSON(t, ts.URL+"/extract", map[string]string{"url": "http://127.0.0.1:1/"})
		assert.Equal(t, http.StatusBadGateway, resp.StatusCode)
	})

	t.Run("unsupported upload", func(t *testing.T) {
		var body bytes.Buffer
		mw := multipart.NewWriter(&body)
		part, err := mw.CreateFormFile("file", "resume.bin")
		require.NoError(t, err)
		_, _ = part.Write([]byte{0xff, 0xfe, 0x00, 0x01})
		require.NoError(t, mw.Close())

		resp, err := http.Post(ts.URL+"/extract", mw.FormDataContentType(), &body)
		require.NoError(t, err)
		defer func() { _ = resp.Body.Close() }()
		assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
	})

	t.Run("missing file field", func(t *testing.T) {
		var body bytes.Buffer
		mw := multipart.NewWriter(&body)
		require.NoError(t, mw.WriteField("other", "x"))
		require.NoError(t, mw.Close())

		resp, err := http.Post(ts.URL+"/extract", mw.FormDataContentType(), &body)
		require.NoError(t, err)
		defer func() { _ = resp.Body.Close() }()
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})
}

func TestExtract_TooLarge(t *testing.T) {
	s, err := New(Config{RateLimit: &ratelimit.Config{}, MaxInputBytes: 16})
	require.NoError(t, err)
	ts := httptest.NewServer(s.Handler())
	defer ts.Close()
	defer s.Close()

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	part, err := mw.CreateFormFile("file", "resume.txt")
	require.NoError(t, err)
	_, err = io.WriteString(part, resumeText)
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	resp, err := http.Post(ts.URL+"/extract", mw.FormDataContentType(), &body)
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()
	assert.Equal(t, http.StatusRequestEntityTooLarge, resp.StatusCode)
}

func TestClone(t *testing.T) {
	pages := newPortfolioServer(t)
	store := newFakeStore()
	ts := newTestServer(t, store)

	resp := postJSON(t, ts.URL+"/clone", map[string]any{"url": pages.URL + "/", "name": "sam", "save": true})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	got := decode[CloneResponse](t, resp)
	require.NotNil(t, got.Template)
	assert.Equal(t, "sam", got.Template.Name)
	assert.Contains(t, got.Template.Markup, "{{name}}")
	assert.NotContains(t, got.Template.Markup, "Sam Rivera")
	assert.Contains(t, got.Template.CSS, "font-family: serif")
	assert.True(t, got.Template.DetectedSections.Complete())
	assert.True(t, got.Saved)
	assert.Contains(t, store.templates, "sam")
}

func TestClone_Errors(t *testing.T) {
	ts := newTestServer(t, nil)

	tests := []struct {
		name       string
		body       any
		wantStatus int
	}{
		{name: "missing url", body: map[string]any{}, wantStatus: http.StatusBadRequest},
		{name: "relative url", body: map[string]any{"url": "jane.dev"}, wantStatus: http.StatusBadRequest},
		{name: "long name", body: map[string]any{"url": "https://jane.dev/", "name": strings.Repeat("x", 81)}, wantStatus: http.StatusBadRequest},
		{name: "save without database", body: map[string]any{"url": "https://jane.dev/", "save": true}, wantStatus: http.StatusServiceUnavailable},
		{name: "unreachable", body: map[string]any{"url": "http://127.0.0.1:1/"}, wantStatus: http.StatusBadGateway},
		{name: "malformed", body: "not an object", wantStatus: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := postJSON(t, ts.URL+"/clone", tt.body)
			assert.Equal(t, tt.wantStatus, resp.StatusCode)
			body := decode[map[string]any](t, resp)
			assert.NotEmpty(t, body["error"])
		})
	}
}

func TestRender(t *testing.T) {
	store := newFakeStore()
	store.templates["clone-jane-dev"] = sampleTemplate("clone-jane-dev")
	ts := newTestServer(t, store)

	profile := types.NewProfileRecord()
	profile.Name = "Ada Lovelace"

	tests := []struct {
		name     string
		req      RenderRequest
		wantName string
		wantHTML string
	}{
		{name: "inline markup", req: RenderRequest{Profile: profile, Markup: "<p>{{name}}</p>", CSS: "p{}"}, wantName: "inline", wantHTML: "<p>Ada Lovelace</p>"},
		{name: "stored template", req: RenderRequest{Profile: profile, Template: "clone-jane-dev"}, wantName: "clone-jane-dev", wantHTML: "<h1>Ada Lovelace</h1>"},
		{name: "default theme", req: RenderRequest{Profile: profile}, wantName: rendering.DefaultTheme, wantHTML: "<h1>Ada Lovelace</h1>"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := postJSON(t, ts.URL+"/render", tt.req)
			require.Equal(t, http.StatusOK, resp.StatusCode)
			got := decode[RenderResponse](t, resp)
			assert.Equal(t, tt.wantName, got.Template)
			assert.Contains(t, got.HTML, tt.wantHTML)
		})
	}
}

func TestRender_Errors(t *testing.T) {
	ts := newTestServer(t, nil)

	tests := []struct {
		name       string
		body       any
		wantStatus int
	}{
		{name: "markup and template", body: RenderRequest{Markup: "x", Template: "minimal"}, wantStatus: http.StatusBadRequest},
		{name: "invalid profile", body: map[string]any{"profile": map[string]any{"github": "https://github.com/ada"}}, wantStatus: http.StatusBadRequest},
		{name: "stored template without database", body: RenderRequest{Template: "clone-jane-dev"}, wantStatus: http.StatusServiceUnavailable},
		{name: "broken markup", body: RenderRequest{Markup: "{{#each projects}}"}, wantStatus: http.StatusUnprocessableEntity},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := postJSON(t, ts.URL+"/render", tt.body)
			assert.Equal(t, tt.wantStatus, resp.StatusCode)
		})
	}
}

func TestRateLimit(t *testing.T) {
	s, err := New(Config{RateLimit: &ratelimit.Config{
		Enabled:       true,
		DefaultLimit:  2,
		DefaultWindow: time.Hour,
	}})
	require.NoError(t, err)
	ts := httptest.NewServer(s.Handler())
	defer ts.Close()
	defer s.Close()

	for i := 0; i < 2; i++ {
		resp, err := http.Get(ts.URL + "/themes")
		require.NoError(t, err)
		_ = resp.Body.Close()
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, "2", resp.Header.Get("X-RateLimit-Limit"))
	}

	resp, err := http.Get(ts.URL + "/themes")
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()
	assert.Equal(t, http.StatusTooManyRequests, resp.StatusCode)
	assert.NotEmpty(t, resp.Header.Get("Retry-After"))
	body := decode[map[string]any](t, resp)
	assert.Equal(t, "rate_limit_exceeded", body["error"])

	// Health checks are never limited.
	for i := 0; i < 5; i++ {
		resp, err := http.Get(ts.URL + "/health")
		require.NoError(t, err)
		_ = resp.Body.Close()
		assert.Equal(t, http.StatusOK, resp.StatusCode)
	}
}

func TestHTTPStatus(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "validation", err: &ErrValidation{Field: "url", Message: "bad"}, want: http.StatusBadRequest},
		{name: "not found", err: &ErrNotFound{Kind: "template", Name: "x"}, want: http.StatusNotFound},
		{name: "store not found", err: fmt.Errorf("%w: x", db.ErrTemplateNotFound), want: http.StatusNotFound},
		{name: "too large", err: &ingestion.InputTooLargeError{Size: 2, Limit: 1}, want: http.StatusRequestEntityTooLarge},
		{name: "document", err: &ingestion.DocumentError{Message: "unsupported file type"}, want: http.StatusUnprocessableEntity},
		{name: "fetch", err: &fetch.Error{URL: "https://jane.dev/", Message: "HTTP status 404"}, want: http.StatusBadGateway},
		{name: "wrapped fetch", err: fmt.Errorf("%w: %w", ingestion.ErrHTTPRequestFailed, errors.New("refused")), want: http.StatusBadGateway},
		{name: "template", err: &rendering.TemplateError{Name: "x", Message: "unknown theme"}, want: http.StatusUnprocessableEntity},
		{name: "no database", err: ErrNoDatabase, want: http.StatusServiceUnavailable},
		{name: "other", err: errors.New("boom"), want: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, HTTPStatus(tt.err))
		})
	}
}
