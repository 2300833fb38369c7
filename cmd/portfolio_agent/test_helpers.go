package main

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// portfolioPage carries enough visible text that fetching it never falls
// back to a headless browser.
var portfolioPage = `<!DOCTYPE html>
<html>
<head><title>Sam Rivera</title><link rel="stylesheet" href="/main.css"></head>
<body>
  <header><h1>Sam Rivera</h1><h2>Data Engineer</h2></header>
  <section class="about"><p>` + strings.Repeat("I move data between systems reliably and quickly at scale. ", 12) + `</p></section>
  <section class="skills"><ul><li>Spark</li><li>Airflow</li></ul></section>
  <a href="mailto:sam@rivera.dev">Email</a>
  <footer><p>Built by Sam Rivera</p></footer>
</body>
</html>`

const resumeText = `Jane Doe
Senior Backend Engineer
jane@example.com
github.com/janedoe

SKILLS
Go, PostgreSQL, Kubernetes, Docker
`

// execute runs the root command in process and returns its output.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func newPortfolioServer(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(portfolioPage))
	})
	mux.HandleFunc("/main.css", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("body { font-family: serif; }"))
	})
	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	return server
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(data)
}
