package markdown

import (
	"bytes"
	"fmt"

	meta "github.com/yuin/goldmark-meta"
	"github.com/yuin/goldmark/parser"

	"github.com/3-lines-studio/vitrine/internal/core"
)

var frontMatterDelimiter = []byte("---")

// ParseEntry reads one front-matter content file: the YAML block
// carries the record fields (name, checked, color, order) and the
// Markdown body becomes the record content. The entry kind is decided
// by the caller from the file's location.
func (r *Renderer) ParseEntry(source string, data []byte) (core.Entry, error) {
	ctx := parser.NewContext()
	var discard bytes.Buffer
	if err := r.md.Convert(data, &discard, parser.WithContext(ctx)); err != nil {
		return core.Entry{}, fmt.Errorf("parse %s: %w", source, err)
	}

	entry := core.Entry{
		Source: source,
		Body:   string(stripFrontMatter(data)),
	}

	metadata := meta.Get(ctx)
	if metadata == nil {
		return entry, nil
	}

	if name, ok := metadata["name"].(string); ok {
		entry.Name = name
	}
	if checked, ok := metadata["checked"].(bool); ok {
		entry.Checked = checked
	}
	if color, ok := metadata["color"].(string); ok {
		entry.Color = color
	}
	if order, ok := metadata["order"].(int); ok {
		entry.Order = order
	}

	return entry, nil
}

// stripFrontMatter removes the leading `---` block so record content
// holds only the Markdown body.
func stripFrontMatter(data []byte) []byte {
	trimmed := bytes.TrimLeft(data, "\n")
	if !bytes.HasPrefix(trimmed, frontMatterDelimiter) {
		return data
	}

	rest := trimmed[len(frontMatterDelimiter):]
	if len(rest) > 0 && rest[0] == '\r' {
		rest = rest[1:]
	}
	if len(rest) == 0 || rest[0] != '\n' {
		return data
	}
	rest = rest[1:]

	for offset := 0; ; {
		idx := bytes.Index(rest[offset:], frontMatterDelimiter)
		if idx < 0 {
			return data
		}
		at := offset + idx
		atLineStart := at == 0 || rest[at-1] == '\n'
		end := at + len(frontMatterDelimiter)
		if atLineStart {
			if end == len(rest) {
				return nil
			}
			if rest[end] == '\n' {
				return bytes.TrimLeft(rest[end+1:], "\n")
			}
			if rest[end] == '\r' && end+1 < len(rest) && rest[end+1] == '\n' {
				return bytes.TrimLeft(rest[end+2:], "\n")
			}
		}
		offset = end
	}
}
