package cli

import (
	"fmt"
	"os"
	"time"
)

type ReportStep struct {
	Name      string
	StartTime time.Time
	EndTime   time.Time
	Success   bool
	Error     string
}

type colorizer interface {
	Green(text string) string
	Yellow(text string) string
	Red(text string) string
	Gray(text string) string
}

type Finding struct {
	Subject string
	Message string
	Details []string
}

// PublishReport accumulates the steps, warnings, and errors of one
// check/build pass and renders them at the end, compactly when the pass
// was clean and verbosely otherwise.
type PublishReport struct {
	colors      colorizer
	steps       []ReportStep
	warnings    []Finding
	errors      []Finding
	startTime   time.Time
	recordCount int
	outputDir   string
	hasFailures bool
}

func NewPublishReport(colors colorizer, outputDir string) *PublishReport {
	return &PublishReport{
		colors:    colors,
		startTime: time.Now(),
		outputDir: outputDir,
	}
}

func (r *PublishReport) SetRecordCount(count int) {
	r.recordCount = count
}

func (r *PublishReport) StartStep(name string) *ReportStep {
	r.steps = append(r.steps, ReportStep{
		Name:      name,
		StartTime: time.Now(),
	})
	return &r.steps[len(r.steps)-1]
}

func (r *PublishReport) EndStep(step *ReportStep, success bool, errMsg string) {
	step.EndTime = time.Now()
	step.Success = success
	step.Error = errMsg
	if !success {
		r.hasFailures = true
	}
}

func (r *PublishReport) AddWarning(subject string, message string, details []string) {
	r.warnings = append(r.warnings, Finding{Subject: subject, Message: message, Details: details})
}

func (r *PublishReport) AddError(subject string, message string, details []string) {
	r.errors = append(r.errors, Finding{Subject: subject, Message: message, Details: details})
	r.hasFailures = true
}

func (r *PublishReport) HasFailures() bool {
	return r.hasFailures
}

func (r *PublishReport) Render() {
	duration := time.Since(r.startTime)

	if len(r.errors) == 0 && len(r.warnings) == 0 {
		r.renderMinimal(duration)
		return
	}
	r.renderVerbose(duration)
}

func (r *PublishReport) renderMinimal(duration time.Duration) {
	fmt.Printf("  "+r.colors.Green("✓ ")+"%d records loaded\n", r.recordCount)

	failed := false
	for _, step := range r.steps {
		if !step.Success {
			failed = true
			fmt.Println("  " + r.colors.Red("✗ ") + step.Name)
		}
	}

	if !failed {
		fmt.Printf("  "+r.colors.Green("✓ ")+"Done in %s\n", formatDuration(duration))
	}

	if r.outputDir != "" {
		fmt.Printf("\n  %s\n", r.colors.Gray("Output: "+r.outputDir))
	}
}

func (r *PublishReport) renderVerbose(duration time.Duration) {
	fmt.Printf("  %d records loaded\n", r.recordCount)

	fmt.Println()
	for _, step := range r.steps {
		status := r.colors.Green("✓")
		if !step.Success {
			status = r.colors.Red("✗")
		}
		fmt.Printf("  %s %s\n", status, step.Name)
	}

	if len(r.errors) > 0 {
		fmt.Println()
		fmt.Fprintf(os.Stderr, "  "+r.colors.Red("✗ ")+"Errors (%d):\n", len(r.errors))
		r.renderFindings(r.errors, r.colors.Red("✗"))
	}

	if len(r.warnings) > 0 {
		fmt.Println()
		fmt.Printf("  "+r.colors.Yellow("⚠ ")+"Warnings (%d):\n", len(r.warnings))
		r.renderFindings(r.warnings, r.colors.Yellow("⚠"))
	}

	fmt.Println()
	if len(r.errors) > 0 {
		fmt.Fprintf(os.Stderr, "  %s\n", r.colors.Red(fmt.Sprintf("Failed after %s", formatDuration(duration))))
	} else {
		fmt.Printf("  "+r.colors.Green("✓ ")+"Done in %s\n", formatDuration(duration))
	}

	if r.outputDir != "" {
		fmt.Printf("\n  %s\n", r.colors.Gray("Output: "+r.outputDir))
	}
}

func (r *PublishReport) renderFindings(findings []Finding, marker string) {
	for _, f := range findings {
		fmt.Printf("  %s %s\n", marker, f.Subject)
		fmt.Printf("    %s\n", f.Message)
		for _, detail := range f.Details {
			fmt.Printf("      • %s\n", detail)
		}
	}
}

func formatDuration(d time.Duration) string {
	if d < time.Second {
		return fmt.Sprintf("%.0fms", float64(d)/float64(time.Millisecond))
	}
	return fmt.Sprintf("%.1fs", float64(d)/float64(time.Second))
}
