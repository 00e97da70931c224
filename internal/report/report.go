// Package report assembles the final review report and issue register.
//
// The report combines the judged clause results with the deterministic check
// snapshots: a summary of clauses needing attention, a clause verdict matrix,
// and the deterministic check table. Alongside the rendered report the
// package exports a flat issue register as JSON and CSV for machine
// consumption.
package report

import (
	"fmt"
	"sort"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"

	"clausecheck/internal/judge"
	"clausecheck/internal/rules"
)

// Issue is one flattened clause outcome in the issue register.
type Issue struct {
	Clause      string `json:"clause"`
	Status      string `json:"status"`
	JudgeStatus string `json:"judge_status"`
	Severity    string `json:"severity"`
	Expected    string `json:"expected"`
	Actual      string `json:"actual"`
	Fix         string `json:"fix"`
}

// NeedsAttention reports whether the issue should appear in the executive
// summary.
func (i Issue) NeedsAttention() bool {
	return i.Status == judge.StatusFail ||
		i.JudgeStatus == judge.StatusUncertain ||
		i.JudgeStatus == judge.StatusConflict
}

// BuildIssueRegister flattens judged clause results into issues ordered by
// clause identifier.
func BuildIssueRegister(results judge.ResultMap) []Issue {
	issues := make([]Issue, 0, len(results))
	for clauseID, result := range results {
		issues = append(issues, Issue{
			Clause:      clauseID,
			Status:      result.Status,
			JudgeStatus: result.JudgeStatus,
			Severity:    result.Severity,
			Expected:    result.Expected,
			Actual:      result.Actual,
			Fix:         result.Fix,
		})
	}
	sort.Slice(issues, func(i, j int) bool { return issues[i].Clause < issues[j].Clause })
	return issues
}

// Render produces the full review report as text.
func Render(results judge.ResultMap, checks rules.ResultMap) string {
	issues := BuildIssueRegister(results)

	var b strings.Builder
	b.WriteString("Purchase Order Review Report\n")
	b.WriteString("============================\n\n")

	renderSummary(&b, issues)
	renderVerdictMatrix(&b, issues)
	renderCheckTable(&b, checks)

	return b.String()
}

func renderSummary(b *strings.Builder, issues []Issue) {
	b.WriteString("Executive Summary\n-----------------\n")

	var attention []Issue
	for _, issue := range issues {
		if issue.NeedsAttention() {
			attention = append(attention, issue)
		}
	}

	if len(attention) == 0 {
		b.WriteString("All reviewed clauses passed.\n\n")
		return
	}

	fmt.Fprintf(b, "%d clause(s) require attention:\n", len(attention))
	for _, issue := range attention {
		verdict := issue.JudgeStatus
		if verdict == "" {
			verdict = issue.Status
		}
		fmt.Fprintf(b, "  - %s (%s)\n", issue.Clause, verdict)
	}
	b.WriteString("\n")
}

func renderVerdictMatrix(b *strings.Builder, issues []Issue) {
	b.WriteString("Clause Verdicts\n---------------\n")

	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.AppendHeader(table.Row{"Clause", "Status", "Judge", "Severity", "Fix"})
	for _, issue := range issues {
		tw.AppendRow(table.Row{issue.Clause, issue.Status, issue.JudgeStatus, issue.Severity, issue.Fix})
	}
	b.WriteString(tw.Render())
	b.WriteString("\n\n")
}

func renderCheckTable(b *strings.Builder, checks rules.ResultMap) {
	b.WriteString("Deterministic Checks\n--------------------\n")

	names := make([]string, 0, len(checks))
	for name := range checks {
		names = append(names, name)
	}
	sort.Strings(names)

	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.AppendHeader(table.Row{"Check", "Status", "Found"})
	for _, name := range names {
		result := checks[name]
		tw.AppendRow(table.Row{name, string(result.Status), strings.Join(result.Found, ", ")})
	}
	b.WriteString(tw.Render())
	b.WriteString("\n")
}
