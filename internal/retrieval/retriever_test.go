package retrieval

import (
	"path/filepath"
	"reflect"
	"testing"

	"clausecheck/internal/chunking"
	"clausecheck/internal/requirements"
)

func compile(t *testing.T, clauses ...requirements.Clause) requirements.PatternSet {
	t.Helper()
	patterns, err := requirements.CompilePatterns(&requirements.Requirements{Clauses: clauses})
	if err != nil {
		t.Fatalf("compile patterns: %v", err)
	}
	return patterns
}

func TestSelectCandidatesWordBoundaryLocator(t *testing.T) {
	patterns := compile(t, requirements.Clause{
		ID:            "shipping",
		RegexLocators: []string{`\bFOB\b`},
	})
	children := []chunking.Child{
		{ChildID: "c1", Text: "shipped FOB port"},
		{ChildID: "c2", Text: "no mention"},
	}

	candidates := SelectCandidates(children, patterns, 10)
	got := candidates["shipping"]
	if len(got) != 1 {
		t.Fatalf("expected 1 candidate, got %d", len(got))
	}
	if got[0].ChildID != "c1" || got[0].MatchCount != 1 {
		t.Fatalf("unexpected candidate: %+v", got[0])
	}
}

func TestSelectCandidatesCountsDistinctLocatorsOnce(t *testing.T) {
	patterns := compile(t, requirements.Clause{
		ID:            "payment",
		RegexLocators: []string{"pay", "invoice"},
	})
	children := []chunking.Child{
		{ChildID: "c1", Text: "pay the invoice; pay again; invoice twice"},
	}

	got := SelectCandidates(children, patterns, 10)["payment"]
	if len(got) != 1 {
		t.Fatalf("expected 1 candidate, got %d", len(got))
	}
	// Two locators matched; repeat matches of the same locator do not add up.
	if got[0].MatchCount != 2 {
		t.Fatalf("expected match count 2, got %d", got[0].MatchCount)
	}
}

func TestSelectCandidatesRanksByMatchCountWithStableTies(t *testing.T) {
	patterns := compile(t, requirements.Clause{
		ID:            "warranty",
		RegexLocators: []string{"warranty", "guarantee", "ضمانت"},
	})
	children := []chunking.Child{
		{ChildID: "c1", Text: "warranty only"},
		{ChildID: "c2", Text: "warranty and guarantee"},
		{ChildID: "c3", Text: "guarantee only"},
		{ChildID: "c4", Text: "nothing relevant"},
	}

	got := SelectCandidates(children, patterns, 10)["warranty"]
	if len(got) != 3 {
		t.Fatalf("expected 3 candidates, got %d", len(got))
	}
	if got[0].ChildID != "c2" {
		t.Fatalf("expected c2 first, got %s", got[0].ChildID)
	}
	// c1 and c3 tie at one match; input order decides.
	if got[1].ChildID != "c1" || got[2].ChildID != "c3" {
		t.Fatalf("tie order broken: %s, %s", got[1].ChildID, got[2].ChildID)
	}
}

func TestSelectCandidatesTruncatesToTopK(t *testing.T) {
	patterns := compile(t, requirements.Clause{
		ID:            "price",
		RegexLocators: []string{"price"},
	})
	children := make([]chunking.Child, 5)
	for i := range children {
		children[i] = chunking.Child{ChildID: string(rune('a' + i)), Text: "price"}
	}

	got := SelectCandidates(children, patterns, 2)["price"]
	if len(got) != 2 {
		t.Fatalf("expected 2 candidates, got %d", len(got))
	}
	if got[0].ChildID != "a" || got[1].ChildID != "b" {
		t.Fatalf("truncation must keep the earliest ties: %+v", got)
	}
}

func TestSelectCandidatesNoLocatorsYieldsEmptyList(t *testing.T) {
	patterns := compile(t, requirements.Clause{ID: "silent"})
	children := []chunking.Child{{ChildID: "c1", Text: "anything"}}

	got, ok := SelectCandidates(children, patterns, 10)["silent"]
	if !ok {
		t.Fatal("clause must appear in the result even with no matches")
	}
	if len(got) != 0 {
		t.Fatalf("expected empty candidate list, got %d", len(got))
	}
}

func TestSelectCandidatesNonPositiveTopKUsesDefault(t *testing.T) {
	patterns := compile(t, requirements.Clause{
		ID:            "price",
		RegexLocators: []string{"price"},
	})
	children := []chunking.Child{{ChildID: "c1", Text: "unit price"}}

	got := SelectCandidates(children, patterns, 0)["price"]
	if len(got) != 1 {
		t.Fatalf("expected 1 candidate, got %d", len(got))
	}
}

func TestCandidateMapWriteLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "candidates.json")
	want := CandidateMap{
		"shipping": {{ChildID: "c1", Text: "FOB origin", MatchCount: 1}},
		"silent":   {},
	}

	if err := want.Write(path); err != nil {
		t.Fatalf("write: %v", err)
	}
	got, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("round trip mismatch: %+v", got)
	}
}
