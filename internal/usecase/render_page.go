package usecase

import (
	"context"
	"fmt"
	"html/template"

	"github.com/3-lines-studio/vitrine/internal/core"
)

type RenderPageInput struct {
	Document       core.Document
	Title          string
	StylesheetHref string
}

type RenderPageOutput struct {
	HTML  string
	Error error
}

// PageService turns a validated document into the final HTML page:
// every record body runs through the Markdown renderer, then the page
// shell is composed around the results.
type PageService struct {
	renderer Renderer
}

func NewPageService(renderer Renderer) *PageService {
	return &PageService{
		renderer: renderer,
	}
}

func (s *PageService) RenderPage(ctx context.Context, input RenderPageInput) RenderPageOutput {
	data := core.PageData{
		Title:          input.Title,
		StylesheetHref: input.StylesheetHref,
	}

	for _, panel := range input.Document.Panels {
		body, err := s.renderer.Render(panel.Content)
		if err != nil {
			return RenderPageOutput{Error: fmt.Errorf("render panel %q: %w", panel.Name, err)}
		}
		data.Panels = append(data.Panels, core.RenderedPanel{
			Name:    panel.Name,
			Anchor:  core.AnchorForName(panel.Name),
			Checked: panel.Checked,
			Body:    template.HTML(body),
		})
	}

	for _, step := range input.Document.Steps {
		body, err := s.renderer.Render(step.Content)
		if err != nil {
			return RenderPageOutput{Error: fmt.Errorf("render step %q: %w", step.Name, err)}
		}
		data.Steps = append(data.Steps, core.RenderedStep{
			Name:   step.Name,
			Anchor: core.AnchorForName(step.Name),
			Color:  step.Color,
			Body:   template.HTML(body),
		})
	}

	html, err := core.RenderLandingPage(data)
	return RenderPageOutput{HTML: html, Error: err}
}
