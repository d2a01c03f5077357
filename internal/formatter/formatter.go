// package formatter renders transfer results to various formats (CSV, Markdown, plain text)
package formatter

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"os"

	"github.com/esosaoh/playlifts/internal/models"
)

// fallbackReason substitutes for failures the backend reported without a
// reason.
const fallbackReason = "unknown error"

// ResultToCSV converts a TransferResult to CSV with columns: Title, Artist, Status, Reason
func ResultToCSV(result *models.TransferResult) ([]byte, error) {
	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	headers := []string{"Title", "Artist", "Status", "Reason"}
	if err := writer.Write(headers); err != nil {
		return nil, fmt.Errorf("failed to write CSV headers: %w", err)
	}

	for _, outcome := range result.Tracks {
		record := []string{
			outcome.Title,
			outcome.Artist,
			statusString(outcome),
			outcome.Reason,
		}
		if err := writer.Write(record); err != nil {
			return nil, fmt.Errorf("failed to write CSV record: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, fmt.Errorf("CSV writer error: %w", err)
	}

	return buf.Bytes(), nil
}

// ResultToMarkdown converts a TransferResult to a Markdown report.
func ResultToMarkdown(result *models.TransferResult, destination models.Destination) ([]byte, error) {
	var buf bytes.Buffer

	buf.WriteString(fmt.Sprintf("# Transfer to %s\n\n", destination.Label()))
	buf.WriteString(fmt.Sprintf("**Transferred**: %d/%d tracks\n\n", result.SuccessCount, len(result.Tracks)))

	if result.SuccessCount > 0 {
		buf.WriteString("## Transferred\n\n")
		for _, outcome := range result.Tracks {
			if outcome.OK {
				buf.WriteString(fmt.Sprintf("- %s - %s\n", outcome.Artist, outcome.Title))
			}
		}
		buf.WriteString("\n")
	}

	if result.FailedCount() > 0 {
		buf.WriteString("## Failed\n\n")
		for _, outcome := range result.Tracks {
			if !outcome.OK {
				buf.WriteString(fmt.Sprintf("- %s - %s (%s)\n", outcome.Artist, outcome.Title, reasonOrFallback(outcome)))
			}
		}
	}

	return buf.Bytes(), nil
}

// ResultToText converts a TransferResult to plain text.
func ResultToText(result *models.TransferResult) []byte {
	var buf bytes.Buffer

	buf.WriteString(fmt.Sprintf("Transferred: %d/%d tracks\n\n", result.SuccessCount, len(result.Tracks)))

	for i, outcome := range result.Tracks {
		if outcome.OK {
			buf.WriteString(fmt.Sprintf("%d. ✓ %s - %s\n", i+1, outcome.Artist, outcome.Title))
		} else {
			buf.WriteString(fmt.Sprintf("%d. ✗ %s - %s: %s\n", i+1, outcome.Artist, outcome.Title, reasonOrFallback(outcome)))
		}
	}

	return buf.Bytes()
}

// WriteReport renders the result in the requested format and writes it to
// the given path. Supported formats: csv, markdown, txt.
func WriteReport(result *models.TransferResult, destination models.Destination, format, path string) error {
	var data []byte
	var err error

	switch format {
	case "csv":
		data, err = ResultToCSV(result)
	case "markdown", "md":
		data, err = ResultToMarkdown(result, destination)
	case "txt", "text":
		data = ResultToText(result)
	default:
		return fmt.Errorf("unsupported format: %s", format)
	}
	if err != nil {
		return err
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	return nil
}

func statusString(outcome models.TrackOutcome) string {
	if outcome.OK {
		return "success"
	}
	return "failed"
}

func reasonOrFallback(outcome models.TrackOutcome) string {
	if outcome.Reason != "" {
		return outcome.Reason
	}
	return fallbackReason
}
