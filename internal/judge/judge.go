// Package judge reconciles clause verdicts against the evidence that backs
// them.
//
// Clause results arrive with a claimed status plus the expected text from the
// requirements and the actual text the verdict was based on. The judge never
// re-litigates the verdict itself; it only checks the claim against the
// evidence: a PASS whose expected text is absent from the actual text is
// downgraded to UNCERTAIN, and a FAIL whose expected text is plainly present
// is flagged as a CONFLICT for human review. Everything else passes through
// untouched.
package judge

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
)

// Verdict statuses. PASS, FAIL, and UNCERTAIN arrive from upstream;
// CONFLICT is only ever produced by the judge.
const (
	StatusPass      = "PASS"
	StatusFail      = "FAIL"
	StatusUncertain = "UNCERTAIN"
	StatusConflict  = "CONFLICT"
)

// ClauseResult is the per-clause review outcome the judge examines.
type ClauseResult struct {
	Status      string `json:"status"`
	Expected    string `json:"expected"`
	Actual      string `json:"actual"`
	Evidence    string `json:"evidence,omitempty"`
	Fix         string `json:"fix,omitempty"`
	Severity    string `json:"severity,omitempty"`
	JudgeStatus string `json:"judge_status,omitempty"`
	JudgeReason string `json:"judge_reason,omitempty"`
}

// ResultMap maps clause identifiers to their results.
type ResultMap map[string]ClauseResult

// Reconcile applies the judge pass to every clause result and returns a new
// map; the input is not mutated.
func Reconcile(results ResultMap) ResultMap {
	judged := make(ResultMap, len(results))
	for clauseID, result := range results {
		judged[clauseID] = reconcileClause(result)
	}
	return judged
}

func reconcileClause(result ClauseResult) ClauseResult {
	result.JudgeStatus = result.Status
	result.JudgeReason = ""

	expected := result.Expected
	actual := result.Actual

	switch result.Status {
	case StatusPass:
		if expected != "" && !strings.Contains(actual, expected) {
			result.JudgeStatus = StatusUncertain
			result.JudgeReason = "Expected text not found in actual text"
		}
	case StatusFail:
		if expected != "" && strings.Contains(actual, expected) {
			result.JudgeStatus = StatusConflict
			result.JudgeReason = "Expected text found despite FAIL verdict"
		}
	}
	return result
}

// Load reads a clause result map from path.
func Load(path string) (ResultMap, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read clause results: %w", err)
	}
	var results ResultMap
	if err := json.Unmarshal(data, &results); err != nil {
		return nil, fmt.Errorf("parse clause results: %w", err)
	}
	return results, nil
}

// Write marshals the result map and writes it to path. Nothing is written if
// marshalling fails.
func (m ResultMap) Write(path string) error {
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal clause results: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write clause results: %w", err)
	}
	return nil
}
