package core

import (
	"bytes"
	"html/template"
)

type RenderedPanel struct {
	Name    string
	Anchor  string
	Checked bool
	Body    template.HTML
}

type RenderedStep struct {
	Name   string
	Anchor string
	Color  string
	Body   template.HTML
}

type PageData struct {
	Title          string
	StylesheetHref string
	Panels         []RenderedPanel
	Steps          []RenderedStep
}

var pageTemplate = template.Must(template.New("landing").Parse(`<!doctype html>
<html lang="en">
  <head>
    <meta charset="UTF-8" />
    <meta name="viewport" content="width=device-width, initial-scale=1.0" />
    <title>{{.Title}}</title>
{{- if .StylesheetHref}}
    <link rel="stylesheet" href="{{.StylesheetHref}}" />
{{- end}}
  </head>
  <body>
{{- if .Panels}}
    <section class="panels">
{{- range .Panels}}
      <input type="radio" name="panel-tabs" id="tab-{{.Anchor}}"{{if .Checked}} checked{{end}} />
{{- end}}
      <nav class="tab-labels">
{{- range .Panels}}
        <label for="tab-{{.Anchor}}">{{.Name}}</label>
{{- end}}
      </nav>
{{- range .Panels}}
      <article class="panel" id="panel-{{.Anchor}}">
{{.Body}}
      </article>
{{- end}}
    </section>
{{- end}}
{{- if .Steps}}
    <section class="steps">
      <ol>
{{- range .Steps}}
        <li class="step step-{{.Color}}" id="step-{{.Anchor}}">
          <h3>{{.Name}}</h3>
{{.Body}}
        </li>
{{- end}}
      </ol>
    </section>
{{- end}}
  </body>
</html>
`))

// RenderLandingPage produces the full HTML document for the content
// model. When no panel is marked checked, the first panel becomes the
// default tab.
func RenderLandingPage(data PageData) (string, error) {
	data.Panels = withDefaultChecked(data.Panels)

	var buf bytes.Buffer
	if err := pageTemplate.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func withDefaultChecked(panels []RenderedPanel) []RenderedPanel {
	if len(panels) == 0 {
		return panels
	}
	for _, p := range panels {
		if p.Checked {
			return panels
		}
	}
	adjusted := append([]RenderedPanel(nil), panels...)
	adjusted[0].Checked = true
	return adjusted
}
