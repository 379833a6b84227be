package http

import "net/http"

type StylesheetHandler struct {
	css func() string
}

func NewStylesheetHandler(css func() string) *StylesheetHandler {
	return &StylesheetHandler{css: css}
}

func (h *StylesheetHandler) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "text/css; charset=utf-8")
	w.Header().Set("Cache-Control", "no-cache")
	_, _ = w.Write([]byte(h.css()))
}
