// Package notification implements the platform notification system.
//
// Notifications are best-effort side effects of verification transitions:
// delivery failures are logged and recorded, never rolled back into the
// state change that fired them.
package notification

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"agriplot.io/agriplot/ent"
	entemaillog "agriplot.io/agriplot/ent/emaillog"
	entnotification "agriplot.io/agriplot/ent/notification"
	pkgerrors "agriplot.io/agriplot/internal/pkg/errors"
	"agriplot.io/agriplot/internal/pkg/logger"
)

// Type constants matching ent/schema/notification.go enum values.
const (
	TypeTaskAssigned        = "TASK_ASSIGNED"
	TypeTaskCompleted       = "TASK_COMPLETED"
	TypePlotApproved        = "PLOT_APPROVED"
	TypePlotRejected        = "PLOT_REJECTED"
	TypeChangesRequested    = "CHANGES_REQUESTED"
	TypeVerificationStarted = "VERIFICATION_STARTED"
	TypeVerificationDecided = "VERIFICATION_DECIDED"
)

// Params holds the required fields for creating a notification.
type Params struct {
	RecipientID string // User ID of the recipient
	Type        string // One of Type* constants above
	Title       string // Human-readable title
	Message     string // Body text
	PlotID      string // Related plot, when the event is plot-scoped
	TaskID      string // Related task, when the event is task-scoped
}

// Sender defines the interface for delivering notifications.
type Sender interface {
	// Send creates a notification for a single recipient.
	Send(ctx context.Context, params Params) error

	// SendToMany creates notifications for multiple recipients.
	// Best-effort: logs errors but does not abort on individual failures.
	SendToMany(ctx context.Context, recipientIDs []string, params Params) error
}

// InboxSender writes notifications to the database synchronously within
// the caller's context.
type InboxSender struct {
	client *ent.Client
}

// NewInboxSender creates a new inbox sender.
func NewInboxSender(client *ent.Client) *InboxSender {
	return &InboxSender{client: client}
}

// Send stores a single notification to the database.
func (s *InboxSender) Send(ctx context.Context, params Params) error {
	if err := validateParams(params); err != nil {
		return fmt.Errorf("notification params invalid: %w", err)
	}

	notifType, err := toEntType(params.Type)
	if err != nil {
		return err
	}

	create := s.client.Notification.Create().
		SetID(uuid.NewString()).
		SetType(notifType).
		SetTitle(params.Title).
		SetMessage(params.Message).
		SetRead(false).
		SetUserID(params.RecipientID)
	if params.PlotID != "" {
		create.SetPlotID(params.PlotID)
	}
	if params.TaskID != "" {
		create.SetTaskID(params.TaskID)
	}
	if _, err := create.Save(ctx); err != nil {
		return fmt.Errorf("create notification for user %s: %w", params.RecipientID, err)
	}

	logger.Debug("notification sent",
		zap.String("recipient", params.RecipientID),
		zap.String("type", params.Type),
		zap.String("title", params.Title),
	)

	return nil
}

// SendToMany creates notifications for multiple recipients (best-effort).
// Failures are logged but do not prevent delivery to other recipients.
func (s *InboxSender) SendToMany(ctx context.Context, recipientIDs []string, params Params) error {
	if len(recipientIDs) == 0 {
		return nil
	}

	var failCount int
	for _, recipientID := range recipientIDs {
		p := params
		p.RecipientID = recipientID
		if err := s.Send(ctx, p); err != nil {
			failCount++
			logger.Error("notification delivery failed",
				zap.String("recipient", recipientID),
				zap.String("type", params.Type),
				zap.Error(err),
			)
		}
	}

	if failCount > 0 {
		return fmt.Errorf("notification delivery failed for %d/%d recipients", failCount, len(recipientIDs))
	}
	return nil
}

// compile-time check
var _ Sender = (*InboxSender)(nil)

// EmailSender delivers a rendered email. Implementations wrap an SMTP
// relay or a provider API; tests use a stub.
type EmailSender interface {
	SendEmail(ctx context.Context, recipient, subject, template string, templateCtx map[string]interface{}) error
}

// EmailRecorder wraps an EmailSender and records every attempt in the
// email_logs table. A failed send keeps the row with status failed and
// the error message; the caller's state transition is never rolled back.
type EmailRecorder struct {
	client *ent.Client
	sender EmailSender
}

// NewEmailRecorder creates an EmailRecorder. sender may be nil, in which
// case every attempt is recorded as failed with a configuration error.
func NewEmailRecorder(client *ent.Client, sender EmailSender) *EmailRecorder {
	return &EmailRecorder{client: client, sender: sender}
}

// Deliver sends the email and records the outcome. The returned error is
// informational; callers treat delivery as best-effort.
func (r *EmailRecorder) Deliver(ctx context.Context, recipient, subject, template string, templateCtx map[string]interface{}) error {
	entry, err := r.client.EmailLog.Create().
		SetID(uuid.NewString()).
		SetRecipient(recipient).
		SetSubject(subject).
		SetTemplate(template).
		SetContext(templateCtx).
		Save(ctx)
	if err != nil {
		logger.Error("failed to record outbound email",
			zap.String("recipient", recipient),
			zap.String("template", template),
			zap.Error(err),
		)
		return fmt.Errorf("record outbound email: %w", err)
	}

	var sendErr error
	if r.sender == nil {
		sendErr = fmt.Errorf("no email sender configured")
	} else {
		sendErr = r.sender.SendEmail(ctx, recipient, subject, template, templateCtx)
	}

	if sendErr != nil {
		if _, uerr := entry.Update().
			SetStatus(entemaillog.StatusFailed).
			SetErrorMessage(sendErr.Error()).
			Save(ctx); uerr != nil {
			logger.Error("failed to mark email log failed", zap.String("id", entry.ID), zap.Error(uerr))
		}
		logger.Error("email delivery failed",
			zap.String("recipient", recipient),
			zap.String("template", template),
			zap.Error(sendErr),
		)
		return pkgerrors.Wrap(sendErr, pkgerrors.CodeNotificationDeliveryFailed,
			fmt.Sprintf("deliver email to %s", recipient), http.StatusBadGateway)
	}

	if _, uerr := entry.Update().
		SetStatus(entemaillog.StatusSent).
		SetSentAt(time.Now()).
		Save(ctx); uerr != nil {
		logger.Error("failed to mark email log sent", zap.String("id", entry.ID), zap.Error(uerr))
	}
	return nil
}

// --- Helpers ---

func validateParams(p Params) error {
	if p.RecipientID == "" {
		return fmt.Errorf("recipient_id is required")
	}
	if p.Title == "" {
		return fmt.Errorf("title is required")
	}
	if p.Message == "" {
		return fmt.Errorf("message is required")
	}
	return nil
}

func toEntType(t string) (entnotification.Type, error) {
	switch t {
	case TypeTaskAssigned:
		return entnotification.TypeTASK_ASSIGNED, nil
	case TypeTaskCompleted:
		return entnotification.TypeTASK_COMPLETED, nil
	case TypePlotApproved:
		return entnotification.TypePLOT_APPROVED, nil
	case TypePlotRejected:
		return entnotification.TypePLOT_REJECTED, nil
	case TypeChangesRequested:
		return entnotification.TypeCHANGES_REQUESTED, nil
	case TypeVerificationStarted:
		return entnotification.TypeVERIFICATION_STARTED, nil
	case TypeVerificationDecided:
		return entnotification.TypeVERIFICATION_DECIDED, nil
	default:
		return "", fmt.Errorf("unknown notification type: %s", t)
	}
}
