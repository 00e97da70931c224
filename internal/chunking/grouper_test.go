package chunking

import (
	"math/rand"
	"reflect"
	"testing"
)

func TestGroupByDocSortsByPageThenElementID(t *testing.T) {
	elements := []Element{
		{Doc: "po", Page: 2, ElementID: "e1", Text: "third"},
		{Doc: "po", Page: 1, ElementID: "e2", Text: "second"},
		{Doc: "po", Page: 1, ElementID: "e1", Text: "first"},
	}

	grouped := GroupByDoc(elements)
	group := grouped["po"]
	if len(group) != 3 {
		t.Fatalf("expected 3 elements, got %d", len(group))
	}
	wantOrder := []string{"first", "second", "third"}
	for i, el := range group {
		if el.Text != wantOrder[i] {
			t.Fatalf("position %d: expected %q, got %q", i, wantOrder[i], el.Text)
		}
	}
}

func TestGroupByDocUsesUnknownSentinel(t *testing.T) {
	grouped := GroupByDoc([]Element{{Page: 1, ElementID: "e1", Text: "orphan"}})
	if _, ok := grouped[UnknownDoc]; !ok {
		t.Fatalf("expected elements without a doc under %q, got %v", UnknownDoc, grouped)
	}
}

func TestGroupByDocDeterministicUnderShuffle(t *testing.T) {
	elements := []Element{
		{Doc: "a", Page: 1, ElementID: "e1", Text: "a11"},
		{Doc: "a", Page: 1, ElementID: "e2", Text: "a12"},
		{Doc: "a", Page: 2, ElementID: "e1", Text: "a21"},
		{Doc: "b", Page: 1, ElementID: "e1", Text: "b11"},
		{Doc: "b", Page: 3, ElementID: "e9", Text: "b39"},
	}

	baseline := GroupByDoc(elements)
	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 10; i++ {
		shuffled := make([]Element, len(elements))
		copy(shuffled, elements)
		rng.Shuffle(len(shuffled), func(a, b int) {
			shuffled[a], shuffled[b] = shuffled[b], shuffled[a]
		})

		grouped := GroupByDoc(shuffled)
		if !reflect.DeepEqual(grouped, baseline) {
			t.Fatalf("shuffle %d: grouping differs from baseline", i)
		}
		if !reflect.DeepEqual(SortedDocs(grouped), SortedDocs(baseline)) {
			t.Fatalf("shuffle %d: doc order differs from baseline", i)
		}
	}
}
