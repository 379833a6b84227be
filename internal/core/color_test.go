package core

import "testing"

func TestColorSetMembership(t *testing.T) {
	set := NewColorSet("blue", "green", "blue")

	if !set.Contains("blue") || !set.Contains("green") {
		t.Error("expected members to be contained")
	}
	if set.Contains("red") {
		t.Error("red should not be a member")
	}

	names := set.Names()
	if len(names) != 2 {
		t.Fatalf("expected deduplicated names, got %v", names)
	}

	// Names returns a copy; mutating it must not affect the set.
	names[0] = "mutated"
	if !set.Contains("blue") {
		t.Error("set changed through Names() result")
	}
}

func TestColorSetEmpty(t *testing.T) {
	if !NewColorSet().Empty() {
		t.Error("empty set should report Empty")
	}
	if DefaultColors().Empty() {
		t.Error("default set should not be empty")
	}
}
