// Package retrieval selects candidate child chunks per clause.
//
// This offline variant ranks chunks by how many of a clause's distinct regex
// locators match them. The interface takes child chunks plus a compiled
// pattern set and returns ranked candidates, so a hybrid keyword/vector
// retriever can substitute without touching the chunking core.
package retrieval

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"

	"clausecheck/internal/chunking"
	"clausecheck/internal/requirements"
)

// DefaultTopK is the number of candidates kept per clause when the caller
// does not say otherwise.
const DefaultTopK = 50

// Candidate associates a child chunk with a clause. MatchCount is the number
// of distinct locators that matched the chunk's text; a locator contributes
// at most one regardless of how often it matches.
type Candidate struct {
	ChildID    string `json:"child_id"`
	Text       string `json:"text"`
	MatchCount int    `json:"match_count"`
}

// CandidateMap maps clause identifiers to their ranked candidate lists.
type CandidateMap map[string][]Candidate

// SelectCandidates scans every child chunk against every clause's locators
// and keeps the topK best matches per clause, ordered by descending match
// count. Ties preserve the original chunk order. A clause with no matching
// chunks maps to an empty list; that is a valid terminal outcome.
func SelectCandidates(children []chunking.Child, patterns requirements.PatternSet, topK int) CandidateMap {
	if topK <= 0 {
		topK = DefaultTopK
	}

	results := make(CandidateMap, len(patterns))
	for clauseID, locators := range patterns {
		candidates := []Candidate{}
		for _, chunk := range children {
			matchCount := 0
			for _, locator := range locators {
				if locator.MatchString(chunk.Text) {
					matchCount++
				}
			}
			if matchCount > 0 {
				candidates = append(candidates, Candidate{
					ChildID:    chunk.ChildID,
					Text:       chunk.Text,
					MatchCount: matchCount,
				})
			}
		}
		sort.SliceStable(candidates, func(i, j int) bool {
			return candidates[i].MatchCount > candidates[j].MatchCount
		})
		if len(candidates) > topK {
			candidates = candidates[:topK]
		}
		results[clauseID] = candidates
	}
	return results
}

// Load reads a candidate map previously produced by Write.
func Load(path string) (CandidateMap, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read candidates: %w", err)
	}
	var candidates CandidateMap
	if err := json.Unmarshal(data, &candidates); err != nil {
		return nil, fmt.Errorf("parse candidates: %w", err)
	}
	return candidates, nil
}

// Write marshals the candidate map and writes it to path. Nothing is written
// if marshalling fails.
func (m CandidateMap) Write(path string) error {
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal candidates: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write candidates: %w", err)
	}
	return nil
}
