package core

import (
	"fmt"
	"strings"
)

type ViolationKind int

const (
	ViolationDuplicateName ViolationKind = iota
	ViolationMultipleDefaults
	ViolationUnknownColor
)

// Violation is a single validation finding. Findings never abort a load;
// the caller decides whether they block publishing.
type Violation struct {
	Kind       ViolationKind
	Collection Collection
	Name       string
	Color      string
}

func (v Violation) Error() string {
	switch v.Kind {
	case ViolationDuplicateName:
		return fmt.Sprintf("duplicate name %q in %s", v.Name, v.Collection)
	case ViolationMultipleDefaults:
		return "more than one panel is marked checked"
	case ViolationUnknownColor:
		return fmt.Sprintf("step %q uses unknown color %q", v.Name, v.Color)
	default:
		return "unknown violation"
	}
}

type Violations []Violation

func (vs Violations) Error() string {
	msgs := make([]string, 0, len(vs))
	for _, v := range vs {
		msgs = append(msgs, v.Error())
	}
	return strings.Join(msgs, "; ")
}

// Validate inspects a loaded document and collects every violation in
// one pass: duplicate names per collection, more than one checked
// panel, and step colors outside the configured set. It never mutates
// its input.
func Validate(doc Document, colors ColorSet) Violations {
	var found Violations

	found = append(found, duplicateNames(CollectionPanels, panelNames(doc.Panels))...)
	found = append(found, duplicateNames(CollectionSteps, stepNames(doc.Steps))...)

	checked := 0
	for _, p := range doc.Panels {
		if p.Checked {
			checked++
		}
	}
	if checked > 1 {
		found = append(found, Violation{Kind: ViolationMultipleDefaults, Collection: CollectionPanels})
	}

	for _, s := range doc.Steps {
		if !colors.Contains(s.Color) {
			found = append(found, Violation{
				Kind:       ViolationUnknownColor,
				Collection: CollectionSteps,
				Name:       s.Name,
				Color:      s.Color,
			})
		}
	}

	return found
}

// duplicateNames reports each repeated name once, at its first repeat.
func duplicateNames(collection Collection, names []string) Violations {
	seen := make(map[string]int, len(names))
	var found Violations
	for _, name := range names {
		seen[name]++
		if seen[name] == 2 {
			found = append(found, Violation{
				Kind:       ViolationDuplicateName,
				Collection: collection,
				Name:       name,
			})
		}
	}
	return found
}

func panelNames(panels []Panel) []string {
	names := make([]string, len(panels))
	for i, p := range panels {
		names[i] = p.Name
	}
	return names
}

func stepNames(steps []Step) []string {
	names := make([]string, len(steps))
	for i, s := range steps {
		names[i] = s.Name
	}
	return names
}
