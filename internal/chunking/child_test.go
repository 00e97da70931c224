package chunking

import (
	"strings"
	"testing"
)

func singleParent(text string) []Parent {
	return []Parent{{ParentID: "p1", Doc: "a", Page: 1, Text: text}}
}

func TestBuildChildrenEmptyParentProducesNone(t *testing.T) {
	children := BuildChildren(singleParent(""))
	if len(children) != 0 {
		t.Fatalf("expected no children, got %d", len(children))
	}
}

func TestBuildChildrenShortParentProducesOne(t *testing.T) {
	text := strings.Repeat("a", ChildChunkSize-1)
	children := BuildChildren(singleParent(text))
	if len(children) != 1 {
		t.Fatalf("expected 1 child, got %d", len(children))
	}
	if children[0].Text != text {
		t.Fatal("single child must equal the full parent text")
	}
	if children[0].ParentID != "p1" || children[0].Doc != "a" {
		t.Fatalf("child must reference parent and doc: %+v", children[0])
	}
}

func TestBuildChildrenStopsWhenWindowReachesEnd(t *testing.T) {
	cases := []struct {
		name   string
		length int
		want   int
	}{
		{name: "one past step", length: childStep + 1, want: 1},
		{name: "one under width", length: ChildChunkSize - 1, want: 1},
		{name: "exact width", length: ChildChunkSize, want: 1},
		{name: "one over width", length: ChildChunkSize + 1, want: 2},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			children := BuildChildren(singleParent(strings.Repeat("a", tc.length)))
			if len(children) != tc.want {
				t.Fatalf("length %d: expected %d children, got %d", tc.length, tc.want, len(children))
			}
		})
	}
}

func TestBuildChildrenWindowGeometry(t *testing.T) {
	if childStep != 510 {
		t.Fatalf("expected step 510, got %d", childStep)
	}

	text := strings.Repeat("a", 1200)
	children := BuildChildren(singleParent(text))
	// Windows start at 0, 510, 1020; the last is clipped to 180 characters.
	if len(children) != 3 {
		t.Fatalf("expected 3 children, got %d", len(children))
	}
	if len(children[0].Text) != ChildChunkSize || len(children[1].Text) != ChildChunkSize {
		t.Fatalf("full windows must be %d wide, got %d and %d",
			ChildChunkSize, len(children[0].Text), len(children[1].Text))
	}
	if len(children[2].Text) != 180 {
		t.Fatalf("final window must clip to 180, got %d", len(children[2].Text))
	}
}

func TestBuildChildrenDeOverlapRoundTrip(t *testing.T) {
	alphabet := "abcdefghijklmnopqrstuvwxyz"
	var b strings.Builder
	for b.Len() < 2000 {
		b.WriteString(alphabet)
	}
	text := b.String()[:2000]

	children := BuildChildren(singleParent(text))

	// The first child contributes its full text; every later child only the
	// portion past the overlap with its predecessor.
	var rebuilt strings.Builder
	for i, child := range children {
		runes := []rune(child.Text)
		if i == 0 {
			rebuilt.WriteString(child.Text)
			continue
		}
		overlap := ChildChunkSize - childStep
		if overlap > len(runes) {
			overlap = len(runes)
		}
		rebuilt.WriteString(string(runes[overlap:]))
	}
	if rebuilt.String() != text {
		t.Fatal("de-overlapped children must reconstruct the parent text")
	}
}

func TestBuildChildrenRuneSafeOnPersianText(t *testing.T) {
	text := strings.Repeat("ک", 700)
	children := BuildChildren(singleParent(text))
	if len(children) != 2 {
		t.Fatalf("expected 2 children, got %d", len(children))
	}
	for i, child := range children {
		for _, r := range child.Text {
			if r != 'ک' {
				t.Fatalf("child %d contains corrupted rune %q", i, r)
			}
		}
	}
}

func TestBuildChildrenDistinctIdentifiers(t *testing.T) {
	children := BuildChildren(singleParent(strings.Repeat("a", 1200)))
	seen := make(map[string]struct{}, len(children))
	for _, child := range children {
		if _, dup := seen[child.ChildID]; dup {
			t.Fatalf("duplicate child id %s", child.ChildID)
		}
		seen[child.ChildID] = struct{}{}
	}
}
