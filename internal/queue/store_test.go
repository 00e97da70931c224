package queue_test

import (
	"context"
	"testing"
	"time"

	"clausecheck/internal/queue"
	"clausecheck/internal/testsupport"
)

func newStore(t *testing.T) *queue.Store {
	t.Helper()
	cfg := testsupport.NewConfig(t)
	return testsupport.MustOpenStore(t, cfg)
}

func TestNewJobDefaults(t *testing.T) {
	store := newStore(t)
	ctx := context.Background()

	job, err := store.NewJob(ctx, "/data/po-2024-001.json")
	if err != nil {
		t.Fatalf("new job: %v", err)
	}
	if job.Status != queue.StatusPending {
		t.Fatalf("expected pending, got %s", job.Status)
	}
	if job.DocName != "po-2024-001" {
		t.Fatalf("expected doc name inferred from path, got %q", job.DocName)
	}
	if job.CreatedAt.IsZero() || job.UpdatedAt.IsZero() {
		t.Fatal("timestamps must be set")
	}
	if job.LastHeartbeat != nil {
		t.Fatal("new job must not carry a heartbeat")
	}
}

func TestGetByIDMissingReturnsNil(t *testing.T) {
	store := newStore(t)

	job, err := store.GetByID(context.Background(), 999)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if job != nil {
		t.Fatalf("expected nil for missing job, got %+v", job)
	}
}

func TestFindBySourcePathReturnsLatest(t *testing.T) {
	store := newStore(t)
	ctx := context.Background()

	first, err := store.NewJob(ctx, "/data/dup.json")
	if err != nil {
		t.Fatalf("new job: %v", err)
	}
	second, err := store.NewJob(ctx, "/data/dup.json")
	if err != nil {
		t.Fatalf("new job: %v", err)
	}

	found, err := store.FindBySourcePath(ctx, "/data/dup.json")
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	if found == nil || found.ID != second.ID {
		t.Fatalf("expected job %d, got %+v", second.ID, found)
	}
	if first.ID == second.ID {
		t.Fatal("jobs must have distinct ids")
	}
}

func TestUpdatePersistsMutableFields(t *testing.T) {
	store := newStore(t)
	ctx := context.Background()

	job, err := store.NewJob(ctx, "/data/doc.json")
	if err != nil {
		t.Fatalf("new job: %v", err)
	}

	now := time.Now().UTC().Truncate(time.Millisecond)
	job.Status = queue.StatusChunking
	job.ProgressStage = "Chunking"
	job.ProgressPercent = 40
	job.ProgressMessage = "chunking doc"
	job.ReportPath = "/data/job-1/report.txt"
	job.LastHeartbeat = &now

	if err := store.Update(ctx, job); err != nil {
		t.Fatalf("update: %v", err)
	}

	got, err := store.GetByID(ctx, job.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Status != queue.StatusChunking || got.ProgressPercent != 40 {
		t.Fatalf("update lost fields: %+v", got)
	}
	if got.LastHeartbeat == nil || !got.LastHeartbeat.Equal(now) {
		t.Fatalf("heartbeat mismatch: %v", got.LastHeartbeat)
	}
	if got.ReportPath != job.ReportPath {
		t.Fatalf("report path mismatch: %q", got.ReportPath)
	}
}

func TestUpdateRejectsInvalidStatus(t *testing.T) {
	store := newStore(t)
	ctx := context.Background()

	job, err := store.NewJob(ctx, "/data/doc.json")
	if err != nil {
		t.Fatalf("new job: %v", err)
	}
	job.Status = queue.Status("bogus")
	if err := store.Update(ctx, job); err == nil {
		t.Fatal("expected invalid status error")
	}
}

func TestListFiltersByStatus(t *testing.T) {
	store := newStore(t)
	ctx := context.Background()

	a, _ := store.NewJob(ctx, "/data/a.json")
	b, _ := store.NewJob(ctx, "/data/b.json")
	b.Status = queue.StatusCompleted
	if err := store.Update(ctx, b); err != nil {
		t.Fatalf("update: %v", err)
	}

	all, err := store.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(all) != 2 || all[0].ID != a.ID {
		t.Fatalf("expected insertion order, got %+v", all)
	}

	completed, err := store.List(ctx, queue.StatusCompleted)
	if err != nil {
		t.Fatalf("list filtered: %v", err)
	}
	if len(completed) != 1 || completed[0].ID != b.ID {
		t.Fatalf("expected only job %d, got %+v", b.ID, completed)
	}
}

func TestNextReadyClaimsOldestRunnable(t *testing.T) {
	store := newStore(t)
	ctx := context.Background()

	first, _ := store.NewJob(ctx, "/data/first.json")
	second, _ := store.NewJob(ctx, "/data/second.json")

	// A mid-stage job is not runnable until it reaches the next boundary.
	first.Status = queue.StatusChunking
	if err := store.Update(ctx, first); err != nil {
		t.Fatalf("update: %v", err)
	}

	job, err := store.NextReady(ctx)
	if err != nil {
		t.Fatalf("next ready: %v", err)
	}
	if job == nil || job.ID != second.ID {
		t.Fatalf("expected job %d, got %+v", second.ID, job)
	}

	// Stage boundaries are runnable again.
	first.Status = queue.StatusChunked
	if err := store.Update(ctx, first); err != nil {
		t.Fatalf("update: %v", err)
	}
	job, err = store.NextReady(ctx)
	if err != nil {
		t.Fatalf("next ready: %v", err)
	}
	if job == nil || job.ID != first.ID {
		t.Fatalf("expected oldest runnable %d, got %+v", first.ID, job)
	}
}

func TestNextReadyEmptyQueue(t *testing.T) {
	store := newStore(t)

	job, err := store.NextReady(context.Background())
	if err != nil {
		t.Fatalf("next ready: %v", err)
	}
	if job != nil {
		t.Fatalf("expected no work, got %+v", job)
	}
}

func TestHealthBuckets(t *testing.T) {
	store := newStore(t)
	ctx := context.Background()

	statuses := []queue.Status{
		queue.StatusPending,
		queue.StatusChecking,
		queue.StatusFailed,
		queue.StatusReview,
		queue.StatusCompleted,
	}
	for i, status := range statuses {
		job, err := store.NewJob(ctx, "/data/job"+string(rune('a'+i))+".json")
		if err != nil {
			t.Fatalf("new job: %v", err)
		}
		if status != queue.StatusPending {
			job.Status = status
			if err := store.Update(ctx, job); err != nil {
				t.Fatalf("update: %v", err)
			}
		}
	}

	health, err := store.Health(ctx)
	if err != nil {
		t.Fatalf("health: %v", err)
	}
	want := queue.HealthSummary{Total: 5, Pending: 1, Processing: 1, Failed: 1, Review: 1, Completed: 1}
	if health != want {
		t.Fatalf("expected %+v, got %+v", want, health)
	}
}

func TestRemoveAndClear(t *testing.T) {
	store := newStore(t)
	ctx := context.Background()

	a, _ := store.NewJob(ctx, "/data/a.json")
	_, _ = store.NewJob(ctx, "/data/b.json")

	removed, err := store.Remove(ctx, a.ID)
	if err != nil {
		t.Fatalf("remove: %v", err)
	}
	if removed != 1 {
		t.Fatalf("expected 1 removed, got %d", removed)
	}

	cleared, err := store.Clear(ctx)
	if err != nil {
		t.Fatalf("clear: %v", err)
	}
	if cleared != 1 {
		t.Fatalf("expected 1 cleared, got %d", cleared)
	}

	health, err := store.Health(ctx)
	if err != nil {
		t.Fatalf("health: %v", err)
	}
	if health.Total != 0 {
		t.Fatalf("expected empty queue, got %+v", health)
	}
}

func TestResetStuckProcessingRollsBackToStageStart(t *testing.T) {
	store := newStore(t)
	ctx := context.Background()

	job, _ := store.NewJob(ctx, "/data/stuck.json")
	job.Status = queue.StatusJudging
	if err := store.Update(ctx, job); err != nil {
		t.Fatalf("update: %v", err)
	}

	reset, err := store.ResetStuckProcessing(ctx)
	if err != nil {
		t.Fatalf("reset: %v", err)
	}
	if reset != 1 {
		t.Fatalf("expected 1 reset, got %d", reset)
	}

	got, err := store.GetByID(ctx, job.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Status != queue.StatusChecked {
		t.Fatalf("judging must roll back to checked, got %s", got.Status)
	}
	if got.LastHeartbeat != nil {
		t.Fatal("rollback must clear the heartbeat")
	}
}

func TestReclaimStaleProcessingHonorsCutoff(t *testing.T) {
	store := newStore(t)
	ctx := context.Background()

	stale, _ := store.NewJob(ctx, "/data/stale.json")
	old := time.Now().UTC().Add(-10 * time.Minute)
	stale.Status = queue.StatusRetrieving
	stale.LastHeartbeat = &old
	if err := store.Update(ctx, stale); err != nil {
		t.Fatalf("update: %v", err)
	}

	fresh, _ := store.NewJob(ctx, "/data/fresh.json")
	now := time.Now().UTC()
	fresh.Status = queue.StatusRetrieving
	fresh.LastHeartbeat = &now
	if err := store.Update(ctx, fresh); err != nil {
		t.Fatalf("update: %v", err)
	}

	reclaimed, err := store.ReclaimStaleProcessing(ctx, time.Now().UTC().Add(-5*time.Minute))
	if err != nil {
		t.Fatalf("reclaim: %v", err)
	}
	if reclaimed != 1 {
		t.Fatalf("expected 1 reclaimed, got %d", reclaimed)
	}

	got, _ := store.GetByID(ctx, stale.ID)
	if got.Status != queue.StatusChunked {
		t.Fatalf("retrieving must roll back to chunked, got %s", got.Status)
	}
	untouched, _ := store.GetByID(ctx, fresh.ID)
	if untouched.Status != queue.StatusRetrieving {
		t.Fatalf("fresh job must stay in flight, got %s", untouched.Status)
	}
}

func TestRetryFailed(t *testing.T) {
	store := newStore(t)
	ctx := context.Background()

	job, _ := store.NewJob(ctx, "/data/failed.json")
	job.Status = queue.StatusFailed
	job.ErrorMessage = "boom"
	if err := store.Update(ctx, job); err != nil {
		t.Fatalf("update: %v", err)
	}
	healthy, _ := store.NewJob(ctx, "/data/healthy.json")

	retried, err := store.RetryFailed(ctx)
	if err != nil {
		t.Fatalf("retry: %v", err)
	}
	if retried != 1 {
		t.Fatalf("expected 1 retried, got %d", retried)
	}

	got, _ := store.GetByID(ctx, job.ID)
	if got.Status != queue.StatusPending {
		t.Fatalf("expected pending after retry, got %s", got.Status)
	}
	if got.ErrorMessage != "" {
		t.Fatalf("retry must clear the error, got %q", got.ErrorMessage)
	}
	if other, _ := store.GetByID(ctx, healthy.ID); other.Status != queue.StatusPending {
		t.Fatalf("healthy job disturbed: %s", other.Status)
	}
}

func TestRetryFailedSelectedIDsOnly(t *testing.T) {
	store := newStore(t)
	ctx := context.Background()

	first, _ := store.NewJob(ctx, "/data/f1.json")
	second, _ := store.NewJob(ctx, "/data/f2.json")
	for _, job := range []*queue.Job{first, second} {
		job.Status = queue.StatusFailed
		if err := store.Update(ctx, job); err != nil {
			t.Fatalf("update: %v", err)
		}
	}

	retried, err := store.RetryFailed(ctx, first.ID)
	if err != nil {
		t.Fatalf("retry: %v", err)
	}
	if retried != 1 {
		t.Fatalf("expected 1 retried, got %d", retried)
	}
	if got, _ := store.GetByID(ctx, second.ID); got.Status != queue.StatusFailed {
		t.Fatalf("unselected job disturbed: %s", got.Status)
	}
}

func TestFailProcessingMarksInFlightJobs(t *testing.T) {
	store := newStore(t)
	ctx := context.Background()

	job, _ := store.NewJob(ctx, "/data/inflight.json")
	job.Status = queue.StatusReporting
	if err := store.Update(ctx, job); err != nil {
		t.Fatalf("update: %v", err)
	}
	idle, _ := store.NewJob(ctx, "/data/idle.json")

	failed, err := store.FailProcessing(ctx, queue.DaemonStopReason)
	if err != nil {
		t.Fatalf("fail processing: %v", err)
	}
	if failed != 1 {
		t.Fatalf("expected 1 failed, got %d", failed)
	}

	got, _ := store.GetByID(ctx, job.ID)
	if got.Status != queue.StatusFailed || got.ErrorMessage != queue.DaemonStopReason {
		t.Fatalf("unexpected job state: %+v", got)
	}
	if other, _ := store.GetByID(ctx, idle.ID); other.Status != queue.StatusPending {
		t.Fatalf("idle job disturbed: %s", other.Status)
	}
}
