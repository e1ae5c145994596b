package notification

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	entemaillog "agriplot.io/agriplot/ent/emaillog"
	pkgerrors "agriplot.io/agriplot/internal/pkg/errors"
	"agriplot.io/agriplot/internal/pkg/logger"
	"agriplot.io/agriplot/internal/testutil"
)

func init() {
	_ = logger.Init("error", "json")
}

type stubEmailSender struct {
	err   error
	calls int
}

func (s *stubEmailSender) SendEmail(ctx context.Context, recipient, subject, template string, templateCtx map[string]interface{}) error {
	s.calls++
	return s.err
}

func TestEmailRecorder_DeliverRecordsSent(t *testing.T) {
	client := testutil.OpenEntPostgres(t, "email_recorder_sent")
	ctx := context.Background()

	sender := &stubEmailSender{}
	recorder := NewEmailRecorder(client, sender)

	err := recorder.Deliver(ctx, "owner@example.com", "Plot approved", "plot_approved",
		map[string]interface{}{"plot_title": "Riverside Paddock"})
	require.NoError(t, err)
	require.Equal(t, 1, sender.calls)

	entry, err := client.EmailLog.Query().
		Where(entemaillog.RecipientEQ("owner@example.com")).
		Only(ctx)
	require.NoError(t, err)
	assert.Equal(t, entemaillog.StatusSent, entry.Status)
	assert.NotNil(t, entry.SentAt)
	assert.Empty(t, entry.ErrorMessage)
}

func TestEmailRecorder_DeliverFailureKeepsFailedLog(t *testing.T) {
	client := testutil.OpenEntPostgres(t, "email_recorder_failed")
	ctx := context.Background()

	sender := &stubEmailSender{err: fmt.Errorf("smtp relay refused connection")}
	recorder := NewEmailRecorder(client, sender)

	err := recorder.Deliver(ctx, "agent@example.com", "Changes requested", "changes_requested", nil)
	require.Error(t, err)

	appErr, ok := pkgerrors.IsAppError(err)
	require.True(t, ok)
	assert.Equal(t, pkgerrors.CodeNotificationDeliveryFailed, appErr.Code)

	entry, err := client.EmailLog.Query().
		Where(entemaillog.RecipientEQ("agent@example.com")).
		Only(ctx)
	require.NoError(t, err)
	assert.Equal(t, entemaillog.StatusFailed, entry.Status)
	assert.Contains(t, entry.ErrorMessage, "smtp relay refused")
}

func TestEmailRecorder_NilSenderRecordsConfigurationFailure(t *testing.T) {
	client := testutil.OpenEntPostgres(t, "email_recorder_nil_sender")
	ctx := context.Background()

	recorder := NewEmailRecorder(client, nil)

	err := recorder.Deliver(ctx, "staff@example.com", "Task completed", "task_completed", nil)
	require.Error(t, err)

	appErr, ok := pkgerrors.IsAppError(err)
	require.True(t, ok)
	assert.Equal(t, pkgerrors.CodeNotificationDeliveryFailed, appErr.Code)

	entry, err := client.EmailLog.Query().
		Where(entemaillog.RecipientEQ("staff@example.com")).
		Only(ctx)
	require.NoError(t, err)
	assert.Equal(t, entemaillog.StatusFailed, entry.Status)
	assert.Contains(t, entry.ErrorMessage, "no email sender configured")
}
