package jobs

import (
	"context"
	"testing"

	"github.com/riverqueue/river"
	"github.com/riverqueue/river/riverdriver/riverpgxv5"
	"github.com/riverqueue/river/rivermigrate"

	"agriplot.io/agriplot/internal/testutil"
)

// TestEnqueueProfileVerify_InsertsAndCollapsesDuplicates runs the
// Enqueuer against real River tables. Re-enqueuing the same record must
// collapse into the one pending job.
func TestEnqueueProfileVerify_InsertsAndCollapsesDuplicates(t *testing.T) {
	pool := testutil.OpenPGXPool(t, "jobs_enqueue")
	ctx := context.Background()

	migrator, err := rivermigrate.New(riverpgxv5.New(pool), nil)
	if err != nil {
		t.Fatalf("create river migrator: %v", err)
	}
	if _, err := migrator.Migrate(ctx, rivermigrate.DirectionUp, nil); err != nil {
		t.Fatalf("river migrate up: %v", err)
	}

	// Insert-only client: no queues, no workers.
	client, err := river.NewClient(riverpgxv5.New(pool), &river.Config{})
	if err != nil {
		t.Fatalf("create river client: %v", err)
	}

	enq := NewEnqueuer(client)
	if err := enq.EnqueueProfileVerify(ctx, "vrec-dup"); err != nil {
		t.Fatalf("first enqueue: %v", err)
	}
	if err := enq.EnqueueProfileVerify(ctx, "vrec-dup"); err != nil {
		t.Fatalf("duplicate enqueue: %v", err)
	}

	var count int
	row := pool.QueryRow(ctx, `SELECT count(*) FROM river_job WHERE kind = $1`, (ProfileVerifyArgs{}).Kind())
	if err := row.Scan(&count); err != nil {
		t.Fatalf("count river jobs: %v", err)
	}
	if count != 1 {
		t.Fatalf("river_job rows = %d, want 1", count)
	}

	// A different record is a distinct job.
	if err := enq.EnqueueProfileVerify(ctx, "vrec-other"); err != nil {
		t.Fatalf("enqueue second record: %v", err)
	}
	if err := pool.QueryRow(ctx, `SELECT count(*) FROM river_job WHERE kind = $1`, (ProfileVerifyArgs{}).Kind()).Scan(&count); err != nil {
		t.Fatalf("recount river jobs: %v", err)
	}
	if count != 2 {
		t.Fatalf("river_job rows = %d, want 2", count)
	}
}
