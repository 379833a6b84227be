package http

import (
	"bytes"
	"html"
	"html/template"
	"net/http"

	"go.uber.org/zap"
)

// PageSource yields the current rendered page. Implementations swap the
// underlying snapshot atomically; a returned error means the last load
// failed and the error page should be shown instead.
type PageSource interface {
	PageHTML() (string, error)
}

type PageHandler struct {
	source PageSource
	isDev  bool
	logger *zap.Logger
}

func NewPageHandler(source PageSource, isDev bool, logger *zap.Logger) *PageHandler {
	return &PageHandler{
		source: source,
		isDev:  isDev,
		logger: logger,
	}
}

func (h *PageHandler) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	if req.URL.Path != "/" {
		http.NotFound(w, req)
		return
	}

	pageHTML, err := h.source.PageHTML()
	if err != nil {
		h.logger.Error("page unavailable", zap.Error(err))
		h.serveError(w, err)
		return
	}

	if h.isDev {
		pageHTML = AppendReloadScript(pageHTML)
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(pageHTML))
}

func (h *PageHandler) serveError(w http.ResponseWriter, err error) {
	data := errorData{
		Message: err.Error(),
		IsDev:   h.isDev,
	}

	var buf bytes.Buffer
	if tmplErr := errorTemplate.Execute(&buf, data); tmplErr != nil {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte("<!doctype html><html><body><pre>" + html.EscapeString(data.Message) + "</pre></body></html>"))
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusInternalServerError)
	_, _ = w.Write(buf.Bytes())
}

type errorData struct {
	Message string
	IsDev   bool
}

var errorTemplate = template.Must(template.New("error").Parse(`<!doctype html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>Error</title>
    <style>
        body { font-family: system-ui, sans-serif; max-width: 800px; margin: 50px auto; padding: 0 20px; }
        h1 { color: #e74c3c; }
        pre { background: #f8f9fa; padding: 15px; border-radius: 5px; overflow-x: auto; }
    </style>
</head>
<body>
    <h1>Internal Server Error</h1>
    {{if .IsDev}}
    <pre>{{.Message}}</pre>
    {{else}}
    <p>An error occurred while processing your request.</p>
    {{end}}
</body>
</html>`))
