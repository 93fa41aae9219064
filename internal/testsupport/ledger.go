package testsupport

import (
	"context"
	"testing"

	"github.com/google/uuid"

	"hlsmill/internal/config"
	"hlsmill/internal/ledger"
)

// MustOpenLedger opens a ledger.Store for tests and registers cleanup.
func MustOpenLedger(t testing.TB, cfg *config.Config) *ledger.Store {
	t.Helper()

	store, err := ledger.Open(cfg)
	if err != nil {
		t.Fatalf("ledger.Open: %v", err)
	}
	t.Cleanup(func() {
		store.Close()
	})
	return store
}

// NewLedgerJob records a pending movie job for tests using the provided store.
func NewLedgerJob(t testing.TB, store *ledger.Store, containerID string) *ledger.Job {
	t.Helper()

	job := &ledger.Job{
		ID:          uuid.NewString(),
		Kind:        "movie",
		ContainerID: containerID,
		Source:      containerID + ".mp4",
		OutputDir:   "/var/www/hls/movies/" + containerID,
	}
	if err := store.Record(context.Background(), job); err != nil {
		t.Fatalf("store.Record: %v", err)
	}
	return job
}
