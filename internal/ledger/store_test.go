package ledger_test

import (
	"context"
	"fmt"
	"testing"

	"hlsmill/internal/ledger"
	"hlsmill/internal/testsupport"
)

func TestRecordAndFetch(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	store := testsupport.MustOpenLedger(t, cfg)

	ctx := context.Background()
	job := &ledger.Job{
		ID:          "7f3f2a1e-0000-4000-8000-000000000001",
		Kind:        "movie",
		ContainerID: "m1",
		Source:      "inception.mp4",
		OutputDir:   "/var/www/hls/movies/m1",
	}
	if err := store.Record(ctx, job); err != nil {
		t.Fatalf("Record failed: %v", err)
	}
	if job.Status != ledger.StatusPending {
		t.Fatalf("expected pending status, got %s", job.Status)
	}

	fetched, err := store.GetByID(ctx, job.ID)
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	if fetched == nil || fetched.ContainerID != "m1" || fetched.Status != ledger.StatusPending {
		t.Fatalf("unexpected fetched job: %#v", fetched)
	}
	if fetched.CreatedAt.IsZero() || fetched.UpdatedAt.IsZero() {
		t.Fatal("expected timestamps to be set")
	}
}

func TestUpdateStatus(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	store := testsupport.MustOpenLedger(t, cfg)

	ctx := context.Background()
	job := testsupport.NewLedgerJob(t, store, "m1")

	for _, status := range []ledger.Status{ledger.StatusSessionOpening, ledger.StatusRunning} {
		if err := store.UpdateStatus(ctx, job.ID, status, ""); err != nil {
			t.Fatalf("UpdateStatus(%s) failed: %v", status, err)
		}
	}
	if err := store.UpdateStatus(ctx, job.ID, ledger.StatusFailed, "transcode: exit code 1"); err != nil {
		t.Fatalf("UpdateStatus(failed) failed: %v", err)
	}

	fetched, err := store.GetByID(ctx, job.ID)
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	if fetched.Status != ledger.StatusFailed {
		t.Fatalf("expected failed status, got %s", fetched.Status)
	}
	if fetched.ErrorMessage != "transcode: exit code 1" {
		t.Fatalf("unexpected error message: %q", fetched.ErrorMessage)
	}
	if !fetched.Status.Terminal() {
		t.Fatal("expected terminal status")
	}
}

func TestUpdateStatusUnknownJob(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	store := testsupport.MustOpenLedger(t, cfg)

	if err := store.UpdateStatus(context.Background(), "missing", ledger.StatusRunning, ""); err == nil {
		t.Fatal("expected error for unknown job id")
	}
}

func TestListNewestFirst(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	store := testsupport.MustOpenLedger(t, cfg)

	ctx := context.Background()
	for i := 0; i < 3; i++ {
		testsupport.NewLedgerJob(t, store, fmt.Sprintf("m%d", i))
	}

	jobs, err := store.List(ctx, 2)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(jobs) != 2 {
		t.Fatalf("expected 2 jobs, got %d", len(jobs))
	}
	// Newest first: the first row must not be older than the second.
	if jobs[0].CreatedAt.Before(jobs[1].CreatedAt) {
		t.Fatalf("unexpected ordering: %v then %v", jobs[0].CreatedAt, jobs[1].CreatedAt)
	}

	all, err := store.List(ctx, 0)
	if err != nil {
		t.Fatalf("List(all) failed: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("expected 3 jobs, got %d", len(all))
	}
}

func TestReopenKeepsSchema(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	store := testsupport.MustOpenLedger(t, cfg)
	job := testsupport.NewLedgerJob(t, store, "m1")
	if err := store.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	reopened, err := ledger.Open(cfg)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	defer reopened.Close()

	fetched, err := reopened.GetByID(context.Background(), job.ID)
	if err != nil {
		t.Fatalf("GetByID after reopen failed: %v", err)
	}
	if fetched == nil {
		t.Fatal("expected job to survive reopen")
	}
}
