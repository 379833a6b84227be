package cli

import (
	"testing"
	"time"
)

func TestPublishReportTracksFailures(t *testing.T) {
	out := NewOutput()
	out.DisableColors()
	report := NewPublishReport(out, "dist")

	step := report.StartStep("Loading content records")
	report.EndStep(step, true, "")
	if report.HasFailures() {
		t.Error("clean step should not mark failures")
	}

	step = report.StartStep("Validating records")
	report.EndStep(step, false, "duplicate name")
	if !report.HasFailures() {
		t.Error("failed step should mark failures")
	}
}

func TestPublishReportAddErrorMarksFailure(t *testing.T) {
	out := NewOutput()
	out.DisableColors()
	report := NewPublishReport(out, "")

	report.AddWarning("steps", "unknown color", nil)
	if report.HasFailures() {
		t.Error("warnings are not failures")
	}

	report.AddError("panels", "duplicate name", []string{"panel A"})
	if !report.HasFailures() {
		t.Error("errors are failures")
	}
}

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		d    time.Duration
		want string
	}{
		{250 * time.Millisecond, "250ms"},
		{time.Second, "1.0s"},
		{2500 * time.Millisecond, "2.5s"},
	}

	for _, tt := range tests {
		if got := formatDuration(tt.d); got != tt.want {
			t.Errorf("formatDuration(%v) = %q, want %q", tt.d, got, tt.want)
		}
	}
}
