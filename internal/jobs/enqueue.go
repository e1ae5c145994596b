package jobs

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/riverqueue/river"
)

// Enqueuer inserts verification jobs through a River client. It backs
// the service layer's scheduling interface.
type Enqueuer struct {
	client *river.Client[pgx.Tx]
}

// NewEnqueuer creates an Enqueuer on top of a running River client.
func NewEnqueuer(client *river.Client[pgx.Tx]) *Enqueuer {
	return &Enqueuer{client: client}
}

// EnqueueProfileVerify schedules the registry verification chain for a
// record. Duplicate enqueues for the same record collapse via the job's
// unique options.
func (e *Enqueuer) EnqueueProfileVerify(ctx context.Context, recordID string) error {
	if e == nil || e.client == nil {
		return fmt.Errorf("enqueuer is not initialized")
	}
	_, err := e.client.Insert(ctx, ProfileVerifyArgs{RecordID: recordID}, nil)
	if err != nil {
		return fmt.Errorf("insert profile_verify job for record %s: %w", recordID, err)
	}
	return nil
}
