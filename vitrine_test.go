package vitrine

import (
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gkampitakis/go-snaps/snaps"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/3-lines-studio/vitrine/internal/core"
)

func TestMain(m *testing.M) {
	code := m.Run()
	snaps.Clean(m)
	os.Exit(code)
}

const sampleContent = `panels:
  - name: Routing
    checked: true
    content: "Declare routes in **one** place."
  - name: Rendering
    content: "Server render with hydration."
steps:
  - name: Install
    color: blue
    content: "Run the installer."
  - name: Deploy
    color: green
    content: "Ship it."
`

func writeSample(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "content.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestNewLoadsDocument(t *testing.T) {
	app, err := New(WithContent(writeSample(t, sampleContent)))
	require.NoError(t, err)

	doc := app.Document()
	require.Len(t, doc.Panels, 2)
	require.Len(t, doc.Steps, 2)
	assert.Equal(t, "Routing", doc.Panels[0].Name)
	assert.Equal(t, "Rendering", doc.Panels[1].Name)
	assert.Equal(t, []string{"Install", "Deploy"},
		[]string{doc.Steps[0].Name, doc.Steps[1].Name})
	assert.Empty(t, app.Violations())
}

func TestNewFailsOnMalformedContent(t *testing.T) {
	path := writeSample(t, "panels:\n  - content: \"no name\"\n")

	_, err := New(WithContent(path))
	require.Error(t, err)
}

func TestViolationsSurviveNew(t *testing.T) {
	path := writeSample(t, `steps:
  - name: Deploy
    color: chartreuse
    content: "ship"
`)

	app, err := New(WithContent(path))
	require.NoError(t, err, "findings are not fatal")

	violations := app.Violations()
	require.Len(t, violations, 1)
	assert.Equal(t, core.ViolationUnknownColor, violations[0].Kind)
}

func TestWithColorsOverridesSet(t *testing.T) {
	path := writeSample(t, `steps:
  - name: Deploy
    color: brand
    content: "ship"
`)

	app, err := New(WithContent(path), WithColors("brand", "accent"))
	require.NoError(t, err)
	assert.Empty(t, app.Violations())
}

func TestHandlerServesPage(t *testing.T) {
	app, err := New(
		WithContent(writeSample(t, sampleContent)),
		WithTitle("My Framework"),
	)
	require.NoError(t, err)

	srv := httptest.NewServer(app.Handler())
	defer srv.Close()

	resp, err := http.Get(srv.URL)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	body := readAll(t, resp)
	assert.Contains(t, body, "<title>My Framework</title>")
	assert.Contains(t, body, "<strong>one</strong>")
	assert.Contains(t, body, `class="step step-green"`)
}

func TestHandlerServesStylesheet(t *testing.T) {
	app, err := New(WithContent(writeSample(t, sampleContent)))
	require.NoError(t, err)

	srv := httptest.NewServer(app.Handler())
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/highlight.css")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "text/css; charset=utf-8", resp.Header.Get("Content-Type"))
	assert.Contains(t, readAll(t, resp), ".chroma")
}

func TestReloadPicksUpChanges(t *testing.T) {
	path := writeSample(t, sampleContent)
	app, err := New(WithContent(path), WithTitle("Before"))
	require.NoError(t, err)

	updated := strings.Replace(sampleContent, "Declare routes", "Rewritten routes", 1)
	require.NoError(t, os.WriteFile(path, []byte(updated), 0o644))
	require.NoError(t, app.Reload())

	html, err := app.PageHTML()
	require.NoError(t, err)
	assert.Contains(t, html, "Rewritten routes")
	assert.NotContains(t, html, "Declare routes")
}

func TestReloadKeepsErrorUntilFixed(t *testing.T) {
	path := writeSample(t, sampleContent)
	app, err := New(WithContent(path))
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(path, []byte("panels:\n  - content: \"no name\"\n"), 0o644))
	require.Error(t, app.Reload())

	_, err = app.PageHTML()
	require.Error(t, err, "failed reload must surface on the page")

	require.NoError(t, os.WriteFile(path, []byte(sampleContent), 0o644))
	require.NoError(t, app.Reload())

	html, err := app.PageHTML()
	require.NoError(t, err)
	assert.Contains(t, html, "Routing")
}

func TestPageHTMLSnapshot(t *testing.T) {
	app, err := New(
		WithContent(writeSample(t, sampleContent)),
		WithTitle("Vitrine"),
	)
	require.NoError(t, err)

	html, err := app.PageHTML()
	require.NoError(t, err)
	snaps.MatchSnapshot(t, html)
}

func readAll(t *testing.T, resp *http.Response) string {
	t.Helper()
	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return string(data)
}
