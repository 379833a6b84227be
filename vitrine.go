// Package vitrine loads the declarative content records behind a
// framework landing page (feature panels and "how it works" steps),
// validates them, and serves or exports the rendered result.
package vitrine

import (
	"context"
	"net/http"
	"sync"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/3-lines-studio/vitrine/internal/adapters/env"
	adapterfs "github.com/3-lines-studio/vitrine/internal/adapters/fs"
	adapterhttp "github.com/3-lines-studio/vitrine/internal/adapters/http"
	"github.com/3-lines-studio/vitrine/internal/adapters/markdown"
	"github.com/3-lines-studio/vitrine/internal/core"
	"github.com/3-lines-studio/vitrine/internal/usecase"
)

type Option func(*options)

type options struct {
	contentPath    string
	title          string
	colors         core.ColorSet
	highlightStyle string
	logger         *zap.Logger
}

// WithContent points the app at its content source: either a YAML
// document or a directory of front-matter Markdown files.
func WithContent(path string) Option {
	return func(o *options) {
		o.contentPath = path
	}
}

func WithTitle(title string) Option {
	return func(o *options) {
		o.title = title
	}
}

// WithColors replaces the accepted step color set. An empty list keeps
// the default set.
func WithColors(names ...string) Option {
	return func(o *options) {
		if len(names) == 0 {
			return
		}
		o.colors = core.NewColorSet(names...)
	}
}

func WithHighlightStyle(style string) Option {
	return func(o *options) {
		o.highlightStyle = style
	}
}

func WithLogger(logger *zap.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// App holds one immutable content snapshot at a time. Reload swaps the
// whole snapshot; readers never observe a partial load.
type App struct {
	mu         sync.RWMutex
	doc        core.Document
	violations core.Violations
	html       string
	css        string
	loadErr    error

	opts     options
	isDev    bool
	loader   *usecase.LoadService
	pages    *usecase.PageService
	renderer *markdown.Renderer
	hub      *adapterhttp.ReloadHub
	logger   *zap.Logger
}

type router interface {
	http.Handler
	Handle(pattern string, handler http.Handler)
}

func New(opts ...Option) (*App, error) {
	o := options{
		contentPath:    "content.yaml",
		title:          "Vitrine",
		colors:         core.DefaultColors(),
		highlightStyle: "github",
	}
	for _, opt := range opts {
		opt(&o)
	}
	if o.logger == nil {
		o.logger = zap.NewNop()
	}

	renderer := markdown.NewRenderer(o.highlightStyle)
	app := &App{
		opts:     o,
		isDev:    env.DetectMode() == core.ModeDev,
		loader:   usecase.NewLoadService(adapterfs.NewOSFileSystem(), renderer),
		pages:    usecase.NewPageService(renderer),
		renderer: renderer,
		hub:      adapterhttp.NewReloadHub(),
		logger:   o.logger,
	}

	if err := app.Reload(); err != nil {
		return nil, err
	}
	return app, nil
}

// Reload replaces the content snapshot. On failure the error is kept so
// the dev error page can show it; subscribers are notified either way.
func (a *App) Reload() error {
	defer a.hub.Notify()

	ctx := context.Background()

	load := a.loader.Load(ctx, usecase.LoadInput{
		Path:   a.opts.contentPath,
		Colors: a.opts.colors,
	})
	if load.Error != nil {
		a.setLoadError(load.Error)
		return load.Error
	}

	page := a.pages.RenderPage(ctx, usecase.RenderPageInput{
		Document:       load.Document,
		Title:          a.opts.title,
		StylesheetHref: "/highlight.css",
	})
	if page.Error != nil {
		a.setLoadError(page.Error)
		return page.Error
	}

	css, err := a.renderer.StylesheetCSS()
	if err != nil {
		a.setLoadError(err)
		return err
	}

	a.mu.Lock()
	a.doc = load.Document
	a.violations = load.Violations
	a.html = page.HTML
	a.css = css
	a.loadErr = nil
	a.mu.Unlock()

	for _, violation := range load.Violations {
		a.logger.Warn("content violation", zap.String("violation", violation.Error()))
	}

	return nil
}

func (a *App) setLoadError(err error) {
	a.mu.Lock()
	a.loadErr = err
	a.mu.Unlock()
}

// Document returns the validated record collections, the sole interface
// consumers of the pipeline need.
func (a *App) Document() core.Document {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return core.Document{
		Panels: append([]core.Panel(nil), a.doc.Panels...),
		Steps:  append([]core.Step(nil), a.doc.Steps...),
	}
}

func (a *App) Violations() core.Violations {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return append(core.Violations(nil), a.violations...)
}

func (a *App) PageHTML() (string, error) {
	a.mu.RLock()
	defer a.mu.RUnlock()
	if a.loadErr != nil {
		return "", a.loadErr
	}
	return a.html, nil
}

func (a *App) stylesheet() string {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.css
}

// Wrap mounts the page routes onto an existing router and returns it as
// the handler to serve.
func (a *App) Wrap(api router) http.Handler {
	if api == nil {
		panic("vitrine: nil router passed to Wrap; use app.Handler()")
	}

	api.Handle("/highlight.css", adapterhttp.NewStylesheetHandler(a.stylesheet))
	if a.isDev {
		api.Handle(adapterhttp.ReloadPath, a.hub)
	}
	api.Handle("/", adapterhttp.NewPageHandler(a, a.isDev, a.logger))

	return api
}

func (a *App) Handler() http.Handler {
	return a.Wrap(chi.NewRouter())
}

// Watch starts reloading the snapshot whenever the content source
// changes. The returned function stops the watcher.
func (a *App) Watch() (func() error, error) {
	watcher, err := adapterhttp.NewWatcher(a.opts.contentPath, a.logger, func() {
		if err := a.Reload(); err != nil {
			a.logger.Error("reload failed", zap.Error(err))
		}
	})
	if err != nil {
		return nil, err
	}
	return watcher.Close, nil
}
