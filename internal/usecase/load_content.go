package usecase

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/3-lines-studio/vitrine/internal/core"
)

type LoadInput struct {
	// Path is either a YAML document or a content directory with
	// panels/ and steps/ subdirectories of front-matter Markdown files.
	Path   string
	Colors core.ColorSet
}

type LoadOutput struct {
	Document   core.Document
	Violations core.Violations
	Error      error
}

// LoadService is the record loader and validator in one pass: it reads
// the content source into an immutable document and collects every
// validation finding. Loader errors are fatal; findings are not.
type LoadService struct {
	fs     FileSystem
	parser EntryParser
}

func NewLoadService(fs FileSystem, parser EntryParser) *LoadService {
	return &LoadService{
		fs:     fs,
		parser: parser,
	}
}

func (s *LoadService) Load(ctx context.Context, input LoadInput) LoadOutput {
	colors := input.Colors
	if colors.Empty() {
		colors = core.DefaultColors()
	}

	var doc core.Document
	var err error
	if s.fs.IsDir(input.Path) {
		doc, err = s.loadDir(input.Path)
	} else {
		doc, err = s.loadFile(input.Path)
	}
	if err != nil {
		return LoadOutput{Error: err}
	}

	return LoadOutput{
		Document:   doc,
		Violations: core.Validate(doc, colors),
	}
}

func (s *LoadService) loadFile(path string) (core.Document, error) {
	data, err := s.fs.ReadFile(path)
	if err != nil {
		return core.Document{}, fmt.Errorf("read content %s: %w", path, err)
	}

	doc, err := core.ParseDocument(data)
	if err != nil {
		return core.Document{}, fmt.Errorf("%s: %w", path, err)
	}
	return doc, nil
}

func (s *LoadService) loadDir(dir string) (core.Document, error) {
	kinds := []struct {
		subdir string
		kind   core.EntryKind
	}{
		{"panels", core.EntryPanel},
		{"steps", core.EntryStep},
	}

	var entries []core.Entry
	for _, k := range kinds {
		subdir := filepath.Join(dir, k.subdir)
		if !s.fs.IsDir(subdir) {
			continue
		}

		dirents, err := s.fs.ReadDir(subdir)
		if err != nil {
			return core.Document{}, fmt.Errorf("read content dir %s: %w", subdir, err)
		}

		for _, dirent := range dirents {
			if dirent.IsDir() || !isMarkdownFile(dirent.Name()) {
				continue
			}

			path := filepath.Join(subdir, dirent.Name())
			data, err := s.fs.ReadFile(path)
			if err != nil {
				return core.Document{}, fmt.Errorf("read content %s: %w", path, err)
			}

			entry, err := s.parser.ParseEntry(path, data)
			if err != nil {
				return core.Document{}, err
			}
			entry.Kind = k.kind
			entries = append(entries, entry)
		}
	}

	doc, err := core.DocumentFromEntries(entries)
	if err != nil {
		return core.Document{}, fmt.Errorf("%s: %w", dir, err)
	}
	return doc, nil
}

func isMarkdownFile(name string) bool {
	lower := strings.ToLower(name)
	return strings.HasSuffix(lower, ".md") || strings.HasSuffix(lower, ".markdown")
}
