package report

import (
	"encoding/csv"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"clausecheck/internal/judge"
	"clausecheck/internal/rules"
)

func sampleResults() judge.ResultMap {
	return judge.ResultMap{
		"warranty": {
			Status:      judge.StatusPass,
			JudgeStatus: judge.StatusPass,
			Expected:    "12 months",
			Actual:      "warranty of 12 months",
			Severity:    "high",
		},
		"delivery": {
			Status:      judge.StatusFail,
			JudgeStatus: judge.StatusFail,
			Expected:    "within 30 days",
			Actual:      "no schedule",
			Severity:    "high",
			Fix:         "add a delivery schedule clause",
		},
		"accessories": {
			Status:      judge.StatusPass,
			JudgeStatus: judge.StatusUncertain,
			Expected:    "cables",
			Actual:      "unrelated text",
		},
	}
}

func TestBuildIssueRegisterSortsByClause(t *testing.T) {
	issues := BuildIssueRegister(sampleResults())
	if len(issues) != 3 {
		t.Fatalf("expected 3 issues, got %d", len(issues))
	}
	wantOrder := []string{"accessories", "delivery", "warranty"}
	for i, issue := range issues {
		if issue.Clause != wantOrder[i] {
			t.Fatalf("position %d: expected %s, got %s", i, wantOrder[i], issue.Clause)
		}
	}
}

func TestIssueNeedsAttention(t *testing.T) {
	cases := []struct {
		name  string
		issue Issue
		want  bool
	}{
		{name: "clean pass", issue: Issue{Status: judge.StatusPass, JudgeStatus: judge.StatusPass}, want: false},
		{name: "fail", issue: Issue{Status: judge.StatusFail, JudgeStatus: judge.StatusFail}, want: true},
		{name: "demoted pass", issue: Issue{Status: judge.StatusPass, JudgeStatus: judge.StatusUncertain}, want: true},
		{name: "conflict", issue: Issue{Status: judge.StatusFail, JudgeStatus: judge.StatusConflict}, want: true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.issue.NeedsAttention(); got != tc.want {
				t.Fatalf("expected %v, got %v", tc.want, got)
			}
		})
	}
}

func TestRenderListsAttentionClauses(t *testing.T) {
	text := Render(sampleResults(), rules.ResultMap{
		"incoterm": {Status: rules.StatusPass, Found: []string{"CIF"}},
	})

	for _, want := range []string{
		"Purchase Order Review Report",
		"2 clause(s) require attention",
		"delivery (FAIL)",
		"accessories (UNCERTAIN)",
		"incoterm",
		"CIF",
	} {
		if !strings.Contains(text, want) {
			t.Fatalf("report missing %q:\n%s", want, text)
		}
	}
}

func TestRenderAllClean(t *testing.T) {
	results := judge.ResultMap{
		"warranty": {Status: judge.StatusPass, JudgeStatus: judge.StatusPass},
	}
	text := Render(results, nil)
	if !strings.Contains(text, "All reviewed clauses passed.") {
		t.Fatalf("expected clean summary:\n%s", text)
	}
}

func TestRenderNilChecks(t *testing.T) {
	text := Render(sampleResults(), nil)
	if !strings.Contains(text, "Deterministic Checks") {
		t.Fatalf("check section must render even without snapshots:\n%s", text)
	}
}

func TestWriteIssuesJSONEmptyRegister(t *testing.T) {
	path := filepath.Join(t.TempDir(), "issues.json")
	if err := WriteIssuesJSON(nil, path); err != nil {
		t.Fatalf("write: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	var issues []Issue
	if err := json.Unmarshal(data, &issues); err != nil {
		t.Fatalf("parse: %v", err)
	}
	if issues == nil {
		t.Fatal("empty register must serialize as an array, not null")
	}
}

func TestWriteIssuesCSVIncludesHeaderAndRows(t *testing.T) {
	path := filepath.Join(t.TempDir(), "issues.csv")
	issues := BuildIssueRegister(sampleResults())
	if err := WriteIssuesCSV(issues, path); err != nil {
		t.Fatalf("write: %v", err)
	}

	file, err := os.Open(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer file.Close()

	records, err := csv.NewReader(file).ReadAll()
	if err != nil {
		t.Fatalf("parse csv: %v", err)
	}
	if len(records) != len(issues)+1 {
		t.Fatalf("expected %d records, got %d", len(issues)+1, len(records))
	}
	if records[0][0] != "clause" || records[0][2] != "judge_status" {
		t.Fatalf("unexpected header: %v", records[0])
	}
	if records[2][0] != "delivery" || records[2][6] != "add a delivery schedule clause" {
		t.Fatalf("unexpected delivery row: %v", records[2])
	}
}
