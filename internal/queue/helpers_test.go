package queue

import "testing"

func TestInferDocNameFromPath(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{name: "plain file", in: "/data/po-1234.json", want: "po-1234"},
		{name: "no extension", in: "/data/contract", want: "contract"},
		{name: "padded", in: "  /data/order.json  ", want: "order"},
		{name: "empty", in: "", want: "unknown"},
		{name: "dot", in: ".", want: "unknown"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := inferDocNameFromPath(tc.in); got != tc.want {
				t.Fatalf("expected %q, got %q", tc.want, got)
			}
		})
	}
}

func TestMakePlaceholders(t *testing.T) {
	cases := []struct {
		count int
		want  string
	}{
		{count: 0, want: ""},
		{count: 1, want: "?"},
		{count: 3, want: "?,?,?"},
	}
	for _, tc := range cases {
		if got := makePlaceholders(tc.count); got != tc.want {
			t.Fatalf("count %d: expected %q, got %q", tc.count, tc.want, got)
		}
	}
}

func TestStatusPredicates(t *testing.T) {
	if !StatusChunking.IsProcessing() || StatusPending.IsProcessing() {
		t.Fatal("processing predicate wrong")
	}
	if !StatusCompleted.IsTerminal() || !StatusFailed.IsTerminal() || !StatusReview.IsTerminal() {
		t.Fatal("terminal predicate wrong")
	}
	if StatusJudged.IsTerminal() {
		t.Fatal("judged is not terminal")
	}
	if !StatusRetrieving.IsValid() || Status("bogus").IsValid() {
		t.Fatal("validity predicate wrong")
	}
}

func TestStageRollbackCoversEveryProcessingStatus(t *testing.T) {
	covered := make(map[Status]struct{}, len(stageRollbackTransitions))
	for _, tr := range stageRollbackTransitions {
		covered[tr.from] = struct{}{}
	}
	for status := range processingStatuses {
		if _, ok := covered[status]; !ok {
			t.Fatalf("no rollback transition for %s", status)
		}
	}
}
