package usecase

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/3-lines-studio/vitrine/internal/adapters/cli"
	"github.com/3-lines-studio/vitrine/internal/core"
)

type ExportInput struct {
	ContentPath string
	OutDir      string
	Title       string
	Colors      core.ColorSet
	// Strict turns validation findings into a failed export.
	Strict bool
}

type ExportOutput struct {
	Files      []string
	Violations core.Violations
	Error      error
}

// ExportService runs the full pipeline to disk: load, validate, render,
// and write the static page plus its highlight stylesheet.
type ExportService struct {
	loader   *LoadService
	pages    *PageService
	renderer Renderer
	fs       FileSystem
	cli      CLIOutput
}

func NewExportService(loader *LoadService, pages *PageService, renderer Renderer, fs FileSystem, cliOut CLIOutput) *ExportService {
	return &ExportService{
		loader:   loader,
		pages:    pages,
		renderer: renderer,
		fs:       fs,
		cli:      cliOut,
	}
}

func (s *ExportService) Export(ctx context.Context, input ExportInput) ExportOutput {
	s.cli.PrintHeader("Vitrine Build")

	report := cli.NewPublishReport(s.cli, input.OutDir)

	stepLoad := report.StartStep("Loading content records")
	load := s.loader.Load(ctx, LoadInput{Path: input.ContentPath, Colors: input.Colors})
	if load.Error != nil {
		report.EndStep(stepLoad, false, load.Error.Error())
		report.AddError(input.ContentPath, "Failed to load content", []string{load.Error.Error()})
		report.Render()
		return ExportOutput{Error: load.Error}
	}
	report.EndStep(stepLoad, true, "")
	report.SetRecordCount(len(load.Document.Panels) + len(load.Document.Steps))

	stepValidate := report.StartStep("Validating records")
	for _, violation := range load.Violations {
		if input.Strict {
			report.AddError(string(violation.Collection), violation.Error(), nil)
		} else {
			report.AddWarning(string(violation.Collection), violation.Error(), nil)
		}
	}
	strictFailure := input.Strict && len(load.Violations) > 0
	report.EndStep(stepValidate, !strictFailure, "")
	if strictFailure {
		report.Render()
		return ExportOutput{
			Violations: load.Violations,
			Error:      fmt.Errorf("validation failed: %w", load.Violations),
		}
	}

	stepRender := report.StartStep("Rendering page")
	page := s.pages.RenderPage(ctx, RenderPageInput{
		Document:       load.Document,
		Title:          input.Title,
		StylesheetHref: "highlight.css",
	})
	if page.Error != nil {
		report.EndStep(stepRender, false, page.Error.Error())
		report.AddError("page", "Failed to render page", []string{page.Error.Error()})
		report.Render()
		return ExportOutput{Violations: load.Violations, Error: page.Error}
	}
	report.EndStep(stepRender, true, "")

	stepWrite := report.StartStep("Writing output")
	files, err := s.writeOutput(input.OutDir, page.HTML)
	if err != nil {
		report.EndStep(stepWrite, false, err.Error())
		report.AddError(input.OutDir, "Failed to write output", []string{err.Error()})
		report.Render()
		return ExportOutput{Violations: load.Violations, Error: err}
	}
	report.EndStep(stepWrite, true, "")

	report.Render()
	for _, file := range files {
		s.cli.PrintFile(file)
	}

	return ExportOutput{Files: files, Violations: load.Violations}
}

func (s *ExportService) writeOutput(outDir, pageHTML string) ([]string, error) {
	if err := s.fs.MkdirAll(outDir, 0755); err != nil {
		return nil, fmt.Errorf("create output dir: %w", err)
	}

	indexPath := filepath.Join(outDir, "index.html")
	if err := s.fs.WriteFile(indexPath, []byte(pageHTML), 0644); err != nil {
		return nil, fmt.Errorf("write %s: %w", indexPath, err)
	}

	css, err := s.renderer.StylesheetCSS()
	if err != nil {
		return nil, err
	}

	cssPath := filepath.Join(outDir, "highlight.css")
	if err := s.fs.WriteFile(cssPath, []byte(css), 0644); err != nil {
		return nil, fmt.Errorf("write %s: %w", cssPath, err)
	}

	return []string{indexPath, cssPath}, nil
}
