package services

import (
	"context"
	"errors"
	"io/fs"
	"strings"
	"testing"

	"clausecheck/internal/queue"
)

func TestWrapTagsWithMarker(t *testing.T) {
	err := Wrap(ErrValidation, "chunk", "load elements", "file unreadable", fs.ErrNotExist)
	if !errors.Is(err, ErrValidation) {
		t.Fatal("expected validation marker")
	}
	if !errors.Is(err, fs.ErrNotExist) {
		t.Fatal("expected wrapped cause to survive")
	}
	for _, want := range []string{"chunk", "load elements", "file unreadable"} {
		if !strings.Contains(err.Error(), want) {
			t.Fatalf("error missing %q: %v", want, err)
		}
	}
}

func TestWrapNilMarkerDefaultsToTransient(t *testing.T) {
	err := Wrap(nil, "retrieve", "scan", "", nil)
	if !errors.Is(err, ErrTransient) {
		t.Fatalf("expected transient marker, got %v", err)
	}
}

func TestWrapEmptyDetail(t *testing.T) {
	err := Wrap(ErrTimeout, "", "", "", nil)
	if !strings.Contains(err.Error(), "service failure") {
		t.Fatalf("expected placeholder detail, got %v", err)
	}
}

func TestFailureStatusRoutesToReviewOrFailed(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want queue.Status
	}{
		{name: "validation", err: Wrap(ErrValidation, "chunk", "", "bad input", nil), want: queue.StatusReview},
		{name: "configuration", err: Wrap(ErrConfiguration, "retrieve", "", "bad requirements", nil), want: queue.StatusReview},
		{name: "not found", err: Wrap(ErrNotFound, "chunk", "", "missing source", nil), want: queue.StatusReview},
		{name: "timeout", err: Wrap(ErrTimeout, "check", "", "", nil), want: queue.StatusFailed},
		{name: "transient", err: Wrap(ErrTransient, "judge", "", "", nil), want: queue.StatusFailed},
		{name: "untagged", err: errors.New("boom"), want: queue.StatusFailed},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := FailureStatus(tc.err); got != tc.want {
				t.Fatalf("expected %s, got %s", tc.want, got)
			}
		})
	}
}

func TestJobIDContextRoundTrip(t *testing.T) {
	ctx := WithJobID(context.Background(), 42)
	id, ok := JobIDFromContext(ctx)
	if !ok || id != 42 {
		t.Fatalf("expected job id 42, got %d (%v)", id, ok)
	}
	if _, ok := JobIDFromContext(context.Background()); ok {
		t.Fatal("empty context must not yield a job id")
	}
}

func TestStageContextRoundTrip(t *testing.T) {
	ctx := WithStage(context.Background(), "chunk")
	stage, ok := StageFromContext(ctx)
	if !ok || stage != "chunk" {
		t.Fatalf("expected stage chunk, got %q (%v)", stage, ok)
	}
}
