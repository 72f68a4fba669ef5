// Package report renders operator-facing run summaries as markdown, with
// optional PDF export.
package report

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/mandolyte/mdtopdf"

	"smartbooker/internal/booking"
	"smartbooker/internal/lesson"
)

// StatusReport is the input for one rendered status summary.
type StatusReport struct {
	UserID     int64
	Level      lesson.Level
	Progress   lesson.Progress
	QueueStats map[booking.Status]int
	Generated  time.Time
}

// RenderStatus renders the status summary as markdown.
func RenderStatus(r StatusReport) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Scheduling status\n\n")
	fmt.Fprintf(&b, "Generated %s for user %d, level %s.\n\n", r.Generated.Format("2006-01-02 15:04"), r.UserID, r.Level)
	fmt.Fprintf(&b, "## Course progress\n\n")
	fmt.Fprintf(&b, "- Mandatory lessons completed: %d of %d (%.1f%%)\n\n",
		r.Progress.CompletedMandatory, r.Progress.TotalMandatory, r.Progress.Percent)
	fmt.Fprintf(&b, "## Booking queue\n\n")
	for _, status := range []booking.Status{booking.StatusPending, booking.StatusProcessing, booking.StatusProcessed, booking.StatusFailed} {
		fmt.Fprintf(&b, "- %s: %d\n", status, r.QueueStats[status])
	}
	return b.String()
}

// RenderBookingRun renders a booking run report as markdown.
func RenderBookingRun(userID int64, level lesson.Level, runReport booking.Report) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Booking run\n\n")
	fmt.Fprintf(&b, "User %d, level %s: %d booked, %d failed.\n\n", userID, level, runReport.Successful, runReport.Failed)
	if len(runReport.Failures) > 0 {
		fmt.Fprintf(&b, "## Failures\n\n")
		for _, failure := range runReport.Failures {
			state := "retry eligible"
			if failure.Terminal {
				state = "EXHAUSTED, operator attention needed"
			}
			fmt.Fprintf(&b, "- lesson %s-%d (attempt %d, %s): %s\n",
				failure.LessonLevel, failure.LessonNumber, failure.Attempts, state, failure.Error)
		}
	}
	return b.String()
}

// WriteMarkdown writes rendered markdown to path.
func WriteMarkdown(path, content string) error {
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return fmt.Errorf("os.WriteFile(%s) > %w", path, err)
	}
	return nil
}

// ExportPDF converts a rendered markdown report to a PDF next to it and
// returns the PDF path.
func ExportPDF(markdownPath string) (string, error) {
	if !strings.HasSuffix(markdownPath, ".md") {
		return "", fmt.Errorf("report file must have .md extension: %s", markdownPath)
	}

	content, err := os.ReadFile(markdownPath)
	if err != nil {
		return "", fmt.Errorf("os.ReadFile(%s) > %w", markdownPath, err)
	}

	pdfPath := strings.TrimSuffix(markdownPath, ".md") + ".pdf"
	renderer := mdtopdf.NewPdfRenderer("P", "A4", pdfPath, "", nil, mdtopdf.LIGHT)
	if err := renderer.Process(content); err != nil {
		return "", fmt.Errorf("renderer.Process() > %w", err)
	}

	absPath, err := filepath.Abs(pdfPath)
	if err != nil {
		return pdfPath, nil
	}
	return absPath, nil
}
