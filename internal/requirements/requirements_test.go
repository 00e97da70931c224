package requirements

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeRequirements(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "requirements.json")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write requirements: %v", err)
	}
	return path
}

func TestLoadParsesClauses(t *testing.T) {
	path := writeRequirements(t, `{
		"clauses": [
			{
				"id": "delivery",
				"title": "Delivery terms",
				"expected_text": "within 30 days",
				"severity": "high",
				"regex_locators": ["delivery", "تحویل"]
			}
		]
	}`)

	reqs, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(reqs.Clauses) != 1 {
		t.Fatalf("expected 1 clause, got %d", len(reqs.Clauses))
	}
	clause := reqs.Clauses[0]
	if clause.ID != "delivery" || clause.Severity != "high" {
		t.Fatalf("unexpected clause: %+v", clause)
	}
	if len(clause.RegexLocators) != 2 {
		t.Fatalf("expected 2 locators, got %d", len(clause.RegexLocators))
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.json")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestLoadRejectsMalformedJSON(t *testing.T) {
	path := writeRequirements(t, `{"clauses": [`)
	if _, err := Load(path); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestCompilePatternsCaseInsensitive(t *testing.T) {
	reqs := &Requirements{Clauses: []Clause{
		{ID: "shipping", RegexLocators: []string{`\bFOB\b`}},
	}}

	patterns, err := CompilePatterns(reqs)
	if err != nil {
		t.Fatalf("compile: %v", err)
	}
	locators := patterns["shipping"]
	if len(locators) != 1 {
		t.Fatalf("expected 1 compiled locator, got %d", len(locators))
	}
	if !locators[0].MatchString("goods shipped fob origin") {
		t.Fatal("locator should match regardless of case")
	}
	if locators[0].MatchString("FOBBED") {
		t.Fatal("word boundary must still apply")
	}
}

func TestCompilePatternsNamesFailingClause(t *testing.T) {
	reqs := &Requirements{Clauses: []Clause{
		{ID: "good", RegexLocators: []string{"payment"}},
		{ID: "broken", RegexLocators: []string{"("}},
	}}

	_, err := CompilePatterns(reqs)
	if err == nil {
		t.Fatal("expected compile error")
	}
	if !strings.Contains(err.Error(), "broken") {
		t.Fatalf("error should name the clause, got %v", err)
	}
}

func TestCompilePatternsEmptyLocators(t *testing.T) {
	reqs := &Requirements{Clauses: []Clause{{ID: "silent"}}}

	patterns, err := CompilePatterns(reqs)
	if err != nil {
		t.Fatalf("compile: %v", err)
	}
	locators, ok := patterns["silent"]
	if !ok {
		t.Fatal("clause without locators must still appear in the pattern set")
	}
	if len(locators) != 0 {
		t.Fatalf("expected no locators, got %d", len(locators))
	}
}

func TestClauseLookupHelpers(t *testing.T) {
	reqs := &Requirements{Clauses: []Clause{
		{ID: "first"},
		{ID: "second"},
	}}

	ids := reqs.ClauseIDs()
	if len(ids) != 2 || ids[0] != "first" || ids[1] != "second" {
		t.Fatalf("unexpected ids: %v", ids)
	}
	if _, ok := reqs.ClauseByID("second"); !ok {
		t.Fatal("expected to find clause second")
	}
	if _, ok := reqs.ClauseByID("ghost"); ok {
		t.Fatal("did not expect to find clause ghost")
	}
}
