package report

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
)

// WriteReport writes the rendered report text to path.
func WriteReport(text, path string) error {
	if err := os.WriteFile(path, []byte(text), 0o644); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	return nil
}

// WriteIssuesJSON exports the issue register as JSON.
func WriteIssuesJSON(issues []Issue, path string) error {
	if issues == nil {
		issues = []Issue{}
	}
	data, err := json.MarshalIndent(issues, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal issues: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write issues json: %w", err)
	}
	return nil
}

// WriteIssuesCSV exports the issue register as CSV with a header row.
func WriteIssuesCSV(issues []Issue, path string) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create issues csv: %w", err)
	}
	defer file.Close()

	w := csv.NewWriter(file)
	if err := w.Write([]string{"clause", "status", "judge_status", "severity", "expected", "actual", "fix"}); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}
	for _, issue := range issues {
		record := []string{
			issue.Clause,
			issue.Status,
			issue.JudgeStatus,
			issue.Severity,
			issue.Expected,
			issue.Actual,
			issue.Fix,
		}
		if err := w.Write(record); err != nil {
			return fmt.Errorf("write csv row: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("flush issues csv: %w", err)
	}
	return nil
}
