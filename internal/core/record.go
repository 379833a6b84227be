package core

type Collection string

const (
	CollectionPanels Collection = "panels"
	CollectionSteps  Collection = "steps"
)

// Panel is one tab of the feature showcase. At most one panel in a
// document carries Checked; when none does, the first panel is the
// implicit default.
type Panel struct {
	Name    string
	Checked bool
	Content string
}

// Step is one stage of the "how it works" walkthrough, tagged with a
// color for visual grouping.
type Step struct {
	Name    string
	Color   string
	Content string
}

// Document holds the loaded record collections in declaration order.
// A Document is never mutated after load; a reload produces a new one.
type Document struct {
	Panels []Panel
	Steps  []Step
}

// DefaultPanel returns the panel marked checked, falling back to the
// first panel when none is marked. The second return is false only for
// an empty panel collection.
func (d Document) DefaultPanel() (Panel, bool) {
	for _, p := range d.Panels {
		if p.Checked {
			return p, true
		}
	}
	if len(d.Panels) > 0 {
		return d.Panels[0], true
	}
	return Panel{}, false
}
