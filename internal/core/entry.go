package core

import (
	"sort"
	"strings"
)

type EntryKind string

const (
	EntryPanel EntryKind = "panel"
	EntryStep  EntryKind = "step"
)

// Entry is one record parsed from a front-matter content file before it
// is placed into a Document. Source is the file it came from and breaks
// ordering ties.
type Entry struct {
	Kind    EntryKind
	Name    string
	Checked bool
	Color   string
	Order   int
	Body    string
	Source  string
}

// DocumentFromEntries assembles a Document from front-matter entries,
// ordered by the declared `order` key and by source path for ties.
// Required-field checks match ParseDocument: a missing name or empty
// body aborts with a MalformedInputError.
func DocumentFromEntries(entries []Entry) (Document, error) {
	sorted := append([]Entry(nil), entries...)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Order != sorted[j].Order {
			return sorted[i].Order < sorted[j].Order
		}
		return sorted[i].Source < sorted[j].Source
	})

	var doc Document
	panelIdx, stepIdx := 0, 0
	for _, e := range sorted {
		switch e.Kind {
		case EntryPanel:
			if strings.TrimSpace(e.Name) == "" {
				return Document{}, &MalformedInputError{Collection: CollectionPanels, Index: panelIdx, Field: "name"}
			}
			if strings.TrimSpace(e.Body) == "" {
				return Document{}, &MalformedInputError{Collection: CollectionPanels, Index: panelIdx, Field: "content"}
			}
			doc.Panels = append(doc.Panels, Panel{Name: e.Name, Checked: e.Checked, Content: e.Body})
			panelIdx++
		case EntryStep:
			if strings.TrimSpace(e.Name) == "" {
				return Document{}, &MalformedInputError{Collection: CollectionSteps, Index: stepIdx, Field: "name"}
			}
			if strings.TrimSpace(e.Body) == "" {
				return Document{}, &MalformedInputError{Collection: CollectionSteps, Index: stepIdx, Field: "content"}
			}
			doc.Steps = append(doc.Steps, Step{Name: e.Name, Color: e.Color, Content: e.Body})
			stepIdx++
		}
	}

	return doc, nil
}
