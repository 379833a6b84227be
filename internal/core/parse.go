package core

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"
)

type rawPanel struct {
	Name    string `yaml:"name"`
	Checked bool   `yaml:"checked"`
	Content string `yaml:"content"`
}

type rawStep struct {
	Name    string `yaml:"name"`
	Color   string `yaml:"color"`
	Content string `yaml:"content"`
}

type rawDocument struct {
	Panels []rawPanel `yaml:"panels"`
	Steps  []rawStep  `yaml:"steps"`
}

// ParseDocument decodes a YAML document with two ordered collections,
// `panels` and `steps`, preserving declaration order. Unknown fields are
// rejected rather than silently dropped. A missing or empty required
// field yields a MalformedInputError and no document.
func ParseDocument(data []byte) (Document, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var raw rawDocument
	if err := dec.Decode(&raw); err != nil {
		if errors.Is(err, io.EOF) {
			return Document{}, nil
		}
		return Document{}, fmt.Errorf("decode content: %w", err)
	}

	var doc Document
	for i, p := range raw.Panels {
		if strings.TrimSpace(p.Name) == "" {
			return Document{}, &MalformedInputError{Collection: CollectionPanels, Index: i, Field: "name"}
		}
		if strings.TrimSpace(p.Content) == "" {
			return Document{}, &MalformedInputError{Collection: CollectionPanels, Index: i, Field: "content"}
		}
		doc.Panels = append(doc.Panels, Panel{Name: p.Name, Checked: p.Checked, Content: p.Content})
	}
	for i, s := range raw.Steps {
		if strings.TrimSpace(s.Name) == "" {
			return Document{}, &MalformedInputError{Collection: CollectionSteps, Index: i, Field: "name"}
		}
		if strings.TrimSpace(s.Content) == "" {
			return Document{}, &MalformedInputError{Collection: CollectionSteps, Index: i, Field: "content"}
		}
		doc.Steps = append(doc.Steps, Step{Name: s.Name, Color: s.Color, Content: s.Content})
	}

	return doc, nil
}
