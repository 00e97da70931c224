// Package requirements loads the clause requirements document and compiles
// per-clause regex locators.
//
// The requirements JSON is the source of truth for which clauses the review
// pipeline looks for. Each clause carries an ordered list of regex locator
// strings; locators are compiled case-insensitively and grouped under their
// clause identifier. A locator that fails to compile aborts loading; a typo
// in the requirements document must surface immediately rather than silently
// weakening a clause.
package requirements

import (
	"encoding/json"
	"fmt"
	"os"
	"regexp"
)

// Clause is one reviewable contract clause definition.
type Clause struct {
	ID            string   `json:"id"`
	Title         string   `json:"title,omitempty"`
	ExpectedText  string   `json:"expected_text,omitempty"`
	Severity      string   `json:"severity,omitempty"`
	RegexLocators []string `json:"regex_locators"`
}

// Requirements is the full clause requirements document.
type Requirements struct {
	Clauses []Clause `json:"clauses"`
}

// Load reads and parses a requirements JSON document.
func Load(path string) (*Requirements, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read requirements: %w", err)
	}
	var reqs Requirements
	if err := json.Unmarshal(data, &reqs); err != nil {
		return nil, fmt.Errorf("parse requirements: %w", err)
	}
	return &reqs, nil
}

// PatternSet maps a clause identifier to its compiled locators. A clause with
// no locators has an empty slice and matches nothing.
type PatternSet map[string][]*regexp.Regexp

// CompilePatterns compiles every clause's locators case-insensitively. The
// first invalid locator aborts compilation with an error naming the clause.
func CompilePatterns(reqs *Requirements) (PatternSet, error) {
	patterns := make(PatternSet, len(reqs.Clauses))
	for _, clause := range reqs.Clauses {
		compiled := make([]*regexp.Regexp, 0, len(clause.RegexLocators))
		for _, locator := range clause.RegexLocators {
			re, err := regexp.Compile("(?i)" + locator)
			if err != nil {
				return nil, fmt.Errorf("clause %s: compile locator %q: %w", clause.ID, locator, err)
			}
			compiled = append(compiled, re)
		}
		patterns[clause.ID] = compiled
	}
	return patterns, nil
}

// ClauseIDs returns the clause identifiers in document order.
func (r *Requirements) ClauseIDs() []string {
	ids := make([]string, 0, len(r.Clauses))
	for _, clause := range r.Clauses {
		ids = append(ids, clause.ID)
	}
	return ids
}

// ClauseByID returns the clause definition for id, if present.
func (r *Requirements) ClauseByID(id string) (Clause, bool) {
	for _, clause := range r.Clauses {
		if clause.ID == id {
			return clause, true
		}
	}
	return Clause{}, false
}
