package jobs

import (
	"context"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/riverqueue/river"
)

func TestProfileVerifyArgsKind(t *testing.T) {
	t.Parallel()

	if got := (ProfileVerifyArgs{}).Kind(); got != "profile_verify" {
		t.Fatalf("Kind() = %q, want %q", got, "profile_verify")
	}
}

func TestProfileVerifyArgsInsertOpts(t *testing.T) {
	t.Parallel()

	opts := (ProfileVerifyArgs{}).InsertOpts()
	if opts.Queue != river.QueueDefault {
		t.Fatalf("Queue = %q, want %q", opts.Queue, river.QueueDefault)
	}
	if opts.MaxAttempts != 2 {
		t.Fatalf("MaxAttempts = %d, want 2", opts.MaxAttempts)
	}
	if !opts.UniqueOpts.ByArgs {
		t.Fatal("UniqueOpts.ByArgs = false, want true")
	}
	if !opts.UniqueOpts.ByQueue {
		t.Fatal("UniqueOpts.ByQueue = false, want true")
	}
}

func TestProfileVerifyArgsCarryOnlyRecordID(t *testing.T) {
	t.Parallel()

	raw, err := json.Marshal(ProfileVerifyArgs{RecordID: "vrec-1"})
	if err != nil {
		t.Fatalf("marshal args: %v", err)
	}
	var decoded map[string]interface{}
	if err := json.Unmarshal(raw, &decoded); err != nil {
		t.Fatalf("unmarshal args: %v", err)
	}
	if len(decoded) != 1 {
		t.Fatalf("args carry %d fields, want 1 (claim-check)", len(decoded))
	}
	if decoded["record_id"] != "vrec-1" {
		t.Fatalf("record_id = %v, want vrec-1", decoded["record_id"])
	}
}

func TestProfileVerifyWorkerWork_Uninitialized(t *testing.T) {
	t.Parallel()

	t.Run("nil receiver", func(t *testing.T) {
		var w *ProfileVerifyWorker
		err := w.Work(context.Background(), nil)
		if err == nil || !strings.Contains(err.Error(), "not initialized") {
			t.Fatalf("Work() error = %v, want contains %q", err, "not initialized")
		}
	})

	t.Run("nil orchestrator", func(t *testing.T) {
		w := &ProfileVerifyWorker{}
		err := w.Work(context.Background(), nil)
		if err == nil || !strings.Contains(err.Error(), "not initialized") {
			t.Fatalf("Work() error = %v, want contains %q", err, "not initialized")
		}
	})
}

func TestEnqueuerUninitialized(t *testing.T) {
	t.Parallel()

	t.Run("nil receiver", func(t *testing.T) {
		var e *Enqueuer
		err := e.EnqueueProfileVerify(context.Background(), "vrec-1")
		if err == nil || !strings.Contains(err.Error(), "not initialized") {
			t.Fatalf("EnqueueProfileVerify() error = %v, want contains %q", err, "not initialized")
		}
	})

	t.Run("nil client", func(t *testing.T) {
		err := NewEnqueuer(nil).EnqueueProfileVerify(context.Background(), "vrec-1")
		if err == nil || !strings.Contains(err.Error(), "not initialized") {
			t.Fatalf("EnqueueProfileVerify() error = %v, want contains %q", err, "not initialized")
		}
	})
}

func TestNotificationCleanupArgsKind(t *testing.T) {
	t.Parallel()

	if got := (NotificationCleanupArgs{}).Kind(); got != "notification_cleanup" {
		t.Fatalf("Kind() = %q, want %q", got, "notification_cleanup")
	}
}

func TestNotificationCleanupArgsInsertOpts(t *testing.T) {
	t.Parallel()

	opts := (NotificationCleanupArgs{}).InsertOpts()
	if opts.Queue != river.QueueDefault {
		t.Fatalf("Queue = %q, want %q", opts.Queue, river.QueueDefault)
	}
	if opts.MaxAttempts != 1 {
		t.Fatalf("MaxAttempts = %d, want 1", opts.MaxAttempts)
	}
	if opts.UniqueOpts.ByPeriod != 24*time.Hour {
		t.Fatalf("UniqueOpts.ByPeriod = %s, want %s", opts.UniqueOpts.ByPeriod, 24*time.Hour)
	}
}

func TestNewNotificationCleanupWorkerRetention(t *testing.T) {
	t.Parallel()

	t.Run("defaults to ninety days when non-positive", func(t *testing.T) {
		w := NewNotificationCleanupWorker(nil, 0)
		if w.retention != DefaultNotificationRetention {
			t.Fatalf("retention = %s, want %s", w.retention, DefaultNotificationRetention)
		}
	})

	t.Run("uses explicit retention when provided", func(t *testing.T) {
		want := 7 * 24 * time.Hour
		w := NewNotificationCleanupWorker(nil, want)
		if w.retention != want {
			t.Fatalf("retention = %s, want %s", w.retention, want)
		}
	})
}

func TestNotificationCleanupWorkerWork_Uninitialized(t *testing.T) {
	t.Parallel()

	var w *NotificationCleanupWorker
	err := w.Work(context.Background(), nil)
	if err == nil || !strings.Contains(err.Error(), "not initialized") {
		t.Fatalf("Work() error = %v, want contains %q", err, "not initialized")
	}
}
