package core

import "testing"

func TestValidateDuplicatePanelNames(t *testing.T) {
	doc := Document{Panels: []Panel{
		{Name: "A", Checked: true, Content: "x"},
		{Name: "A", Content: "y"},
	}}

	violations := Validate(doc, DefaultColors())

	if len(violations) != 1 {
		t.Fatalf("expected 1 violation, got %d: %v", len(violations), violations)
	}
	v := violations[0]
	if v.Kind != ViolationDuplicateName {
		t.Errorf("Kind = %v, want ViolationDuplicateName", v.Kind)
	}
	if v.Collection != CollectionPanels {
		t.Errorf("Collection = %q, want %q", v.Collection, CollectionPanels)
	}
	if v.Name != "A" {
		t.Errorf("Name = %q, want %q", v.Name, "A")
	}
}

func TestValidateUniqueNamesPass(t *testing.T) {
	doc := Document{
		Panels: []Panel{
			{Name: "Routing", Content: "x"},
			{Name: "Rendering", Content: "y"},
		},
		Steps: []Step{
			{Name: "Install", Color: "blue", Content: "x"},
			{Name: "Deploy", Color: "green", Content: "y"},
		},
	}

	for _, v := range Validate(doc, DefaultColors()) {
		if v.Kind == ViolationDuplicateName {
			t.Errorf("unexpected duplicate-name violation: %v", v)
		}
	}
}

func TestValidateMultipleDefaults(t *testing.T) {
	doc := Document{Panels: []Panel{
		{Name: "A", Checked: true, Content: "x"},
		{Name: "B", Checked: true, Content: "y"},
		{Name: "C", Checked: true, Content: "z"},
	}}

	violations := Validate(doc, DefaultColors())

	count := 0
	for _, v := range violations {
		if v.Kind == ViolationMultipleDefaults {
			count++
		} else {
			t.Errorf("unexpected violation: %v", v)
		}
	}
	if count != 1 {
		t.Errorf("expected exactly 1 MultipleDefaults violation, got %d", count)
	}
}

func TestValidateSingleDefaultPasses(t *testing.T) {
	doc := Document{Panels: []Panel{
		{Name: "A", Checked: true, Content: "x"},
		{Name: "B", Content: "y"},
	}}

	if violations := Validate(doc, DefaultColors()); len(violations) != 0 {
		t.Errorf("expected no violations, got %v", violations)
	}
}

func TestValidateUnknownColor(t *testing.T) {
	doc := Document{Steps: []Step{
		{Name: "Install", Color: "blue", Content: "x"},
		{Name: "Deploy", Color: "chartreuse", Content: "y"},
	}}

	violations := Validate(doc, DefaultColors())

	if len(violations) != 1 {
		t.Fatalf("expected 1 violation, got %d: %v", len(violations), violations)
	}
	v := violations[0]
	if v.Kind != ViolationUnknownColor {
		t.Errorf("Kind = %v, want ViolationUnknownColor", v.Kind)
	}
	if v.Name != "Deploy" {
		t.Errorf("Name = %q, want %q", v.Name, "Deploy")
	}
	if v.Color != "chartreuse" {
		t.Errorf("Color = %q, want %q", v.Color, "chartreuse")
	}
}

func TestValidateCustomColorSet(t *testing.T) {
	doc := Document{Steps: []Step{
		{Name: "Install", Color: "brand", Content: "x"},
	}}

	if violations := Validate(doc, NewColorSet("brand", "accent")); len(violations) != 0 {
		t.Errorf("expected no violations with custom set, got %v", violations)
	}
	if violations := Validate(doc, DefaultColors()); len(violations) != 1 {
		t.Errorf("expected 1 violation with default set, got %v", violations)
	}
}

func TestValidateCollectsAllViolations(t *testing.T) {
	doc := Document{
		Panels: []Panel{
			{Name: "A", Checked: true, Content: "x"},
			{Name: "A", Checked: true, Content: "y"},
		},
		Steps: []Step{
			{Name: "S", Color: "nope", Content: "x"},
			{Name: "S", Color: "blue", Content: "y"},
		},
	}

	violations := Validate(doc, DefaultColors())

	if len(violations) != 4 {
		t.Fatalf("expected 4 violations, got %d: %v", len(violations), violations)
	}

	// Duplicates come first, panels before steps.
	if violations[0].Kind != ViolationDuplicateName || violations[0].Collection != CollectionPanels {
		t.Errorf("violations[0] = %v, want panel duplicate", violations[0])
	}
	if violations[1].Kind != ViolationDuplicateName || violations[1].Collection != CollectionSteps {
		t.Errorf("violations[1] = %v, want step duplicate", violations[1])
	}
	if violations[2].Kind != ViolationMultipleDefaults {
		t.Errorf("violations[2] = %v, want multiple defaults", violations[2])
	}
	if violations[3].Kind != ViolationUnknownColor {
		t.Errorf("violations[3] = %v, want unknown color", violations[3])
	}
}

func TestViolationsError(t *testing.T) {
	vs := Violations{
		{Kind: ViolationDuplicateName, Collection: CollectionPanels, Name: "A"},
		{Kind: ViolationMultipleDefaults, Collection: CollectionPanels},
	}

	got := vs.Error()
	want := `duplicate name "A" in panels; more than one panel is marked checked`
	if got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}
