package verification

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"

	"agriplot.io/agriplot/ent"
	"agriplot.io/agriplot/internal/domain"
	"agriplot.io/agriplot/internal/governance/audit"
	"agriplot.io/agriplot/internal/notification"
	pkgerrors "agriplot.io/agriplot/internal/pkg/errors"
	"agriplot.io/agriplot/internal/pkg/logger"
	"agriplot.io/agriplot/internal/registry"
)

// Orchestrator runs the external registry verification chain against a
// record and handles staff terminal decisions.
type Orchestrator struct {
	client      *ent.Client
	records     *Records
	registry    registry.Client
	audit       *audit.Logger
	notifier    *notification.Triggers // Optional: nil-safe
	callTimeout time.Duration
}

// NewOrchestrator creates the orchestrator. callTimeout bounds each
// individual registry call.
func NewOrchestrator(client *ent.Client, records *Records, registryClient registry.Client, auditLogger *audit.Logger, callTimeout time.Duration) *Orchestrator {
	return &Orchestrator{
		client:      client,
		records:     records,
		registry:    registryClient,
		audit:       auditLogger,
		callTimeout: callTimeout,
	}
}

// SetNotifier configures the notification trigger service.
func (o *Orchestrator) SetNotifier(notifier *notification.Triggers) {
	o.notifier = notifier
}

// Outcome is the result of one orchestration run.
type Outcome struct {
	RecordID   string
	Passed     bool
	FailedStep string
	Reason     string
}

// StartVerification runs the three registry checks in order: title search,
// owner verification, encumbrance check. Each success advances the
// corresponding stage and appends the raw response. The first failure
// forces the record to rejected with the reason and skips the remaining
// checks; no retries. All three passing lands the record in admin_review.
//
// A rejected outcome is a completed run, not an error: the error return
// covers infrastructure failures only.
func (o *Orchestrator) StartVerification(ctx context.Context, recordID string) (*Outcome, error) {
	rec, err := o.records.Get(ctx, recordID)
	if err != nil {
		return nil, err
	}
	subject := subjectOf(rec)

	if _, err := o.records.AdvanceStage(ctx, recordID, domain.StageAPIVerificationStarted, nil); err != nil {
		return nil, err
	}

	info, err := o.buildSubjectInfo(ctx, rec)
	if err != nil {
		return nil, err
	}

	logger.Info("External verification started",
		zap.String("record_id", recordID),
		zap.String("subject", subject.String()),
		zap.String("platform", o.registry.Platform()),
	)

	// Step 1: title search.
	title, err := o.call(ctx, registry.StageTitleSearch, info)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", registry.StageTitleSearch, err)
	}
	if !title.Verified {
		return o.fail(ctx, recordID, subject, registry.StageTitleSearch, title)
	}
	if _, err := o.records.AppendExternalResponse(ctx, recordID, string(registry.StageTitleSearch), resultMap(title)); err != nil {
		return nil, err
	}
	if err := o.records.SetSearchResult(ctx, recordID, title.Reference, title.Fee); err != nil {
		return nil, err
	}
	if _, err := o.records.AdvanceStage(ctx, recordID, domain.StageTitleSearchCompleted, map[string]interface{}{
		"search_reference": title.Reference,
		"owner":            title.RegisteredOwner,
		"parcel":           title.ParcelDetails,
	}); err != nil {
		return nil, err
	}

	// Step 2: owner identity.
	owner, err := o.call(ctx, registry.StageOwnerCheck, info)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", registry.StageOwnerCheck, err)
	}
	if !owner.Verified {
		return o.fail(ctx, recordID, subject, registry.StageOwnerCheck, owner)
	}
	if _, err := o.records.AppendExternalResponse(ctx, recordID, string(registry.StageOwnerCheck), resultMap(owner)); err != nil {
		return nil, err
	}
	if _, err := o.records.AdvanceStage(ctx, recordID, domain.StageOwnerVerified, map[string]interface{}{
		"registered_owner": owner.RegisteredOwner,
	}); err != nil {
		return nil, err
	}

	// Step 3: encumbrances.
	enc, err := o.call(ctx, registry.StageEncumbranceCheck, info)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", registry.StageEncumbranceCheck, err)
	}
	if !enc.Verified {
		return o.fail(ctx, recordID, subject, registry.StageEncumbranceCheck, enc)
	}
	if _, err := o.records.AppendExternalResponse(ctx, recordID, string(registry.StageEncumbranceCheck), resultMap(enc)); err != nil {
		return nil, err
	}
	if _, err := o.records.AdvanceStage(ctx, recordID, domain.StageEncumbranceCheck, map[string]interface{}{
		"encumbrances": enc.Encumbrances,
	}); err != nil {
		return nil, err
	}

	// All checks passed: hand over to staff.
	if _, err := o.records.AdvanceStage(ctx, recordID, domain.StageAdminReview, map[string]interface{}{
		"title_search":       resultMap(title),
		"owner_verification": resultMap(owner),
		"encumbrance_check":  resultMap(enc),
	}); err != nil {
		return nil, err
	}

	logger.Info("External verification passed, awaiting admin review",
		zap.String("record_id", recordID),
	)
	return &Outcome{RecordID: recordID, Passed: true}, nil
}

// AdminDecide records the staff terminal decision on a record sitting in
// admin_review. Rejection requires a non-empty reason. Approval flips the
// verified flag on the underlying profile.
func (o *Orchestrator) AdminDecide(ctx context.Context, recordID, actor string, approve bool, reason, notes string) (*ent.VerificationRecord, error) {
	rec, err := o.records.Get(ctx, recordID)
	if err != nil {
		return nil, err
	}
	if domain.Stage(rec.Stage) != domain.StageAdminReview {
		return nil, pkgerrors.New(pkgerrors.CodeRecordNotReviewable,
			fmt.Sprintf("record %s is not awaiting review (current stage: %s)", recordID, rec.Stage),
			http.StatusConflict)
	}
	if !approve && reason == "" {
		return nil, pkgerrors.New(pkgerrors.CodeDecisionReasonRequired,
			"a rejection reason is required", http.StatusBadRequest)
	}

	subject := subjectOf(rec)
	stage := domain.StageApproved
	detail := map[string]interface{}{
		"decided_by": actor,
		"notes":      notes,
	}
	if !approve {
		stage = domain.StageRejected
		detail["reason"] = reason
	}

	updated, err := o.records.AdvanceStage(ctx, recordID, stage, detail)
	if err != nil {
		return nil, err
	}

	if approve {
		if err := o.markSubjectVerified(ctx, subject); err != nil {
			return nil, err
		}
	}

	if o.audit != nil {
		action := "decision.approved"
		if !approve {
			action = "decision.rejected"
		}
		_ = o.audit.LogAction(ctx, action, subject, actor, reason, map[string]interface{}{
			"record_id": recordID,
		})
	}
	o.notifyDecision(ctx, subject, approve, reason)

	logger.Info("Admin decision recorded",
		zap.String("record_id", recordID),
		zap.String("actor", actor),
		zap.Bool("approved", approve),
	)
	return updated, nil
}

// RequestChanges sends a record in admin_review back to the submitter
// with reviewer notes instead of a terminal decision.
func (o *Orchestrator) RequestChanges(ctx context.Context, recordID, actor, notes string) (*ent.VerificationRecord, error) {
	rec, err := o.records.Get(ctx, recordID)
	if err != nil {
		return nil, err
	}
	if domain.Stage(rec.Stage) != domain.StageAdminReview {
		return nil, pkgerrors.New(pkgerrors.CodeRecordNotReviewable,
			fmt.Sprintf("record %s is not awaiting review (current stage: %s)", recordID, rec.Stage),
			http.StatusConflict)
	}

	subject := subjectOf(rec)
	updated, err := o.records.AdvanceStage(ctx, recordID, domain.StageChangesRequested, map[string]interface{}{
		"requested_by": actor,
		"notes":        notes,
	})
	if err != nil {
		return nil, err
	}

	if o.audit != nil {
		_ = o.audit.LogAction(ctx, "decision.changes_requested", subject, actor, notes, map[string]interface{}{
			"record_id": recordID,
		})
	}
	if o.notifier != nil && subject.Kind == domain.SubjectPlot {
		if p, perr := o.client.Plot.Get(ctx, subject.ID.String()); perr == nil {
			if owner, oerr := resolvePlotOwner(ctx, o.client, p); oerr == nil {
				o.notifier.OnChangesRequested(ctx, p.ID, p.Title, owner.UserID, notes)
			}
		}
	}
	return updated, nil
}

// call runs one registry check with the per-call timeout.
func (o *Orchestrator) call(ctx context.Context, step registry.CheckStage, info registry.SubjectInfo) (*registry.Result, error) {
	callCtx := ctx
	if o.callTimeout > 0 {
		var cancel context.CancelFunc
		callCtx, cancel = context.WithTimeout(ctx, o.callTimeout)
		defer cancel()
	}

	switch step {
	case registry.StageTitleSearch:
		return o.registry.SearchTitle(callCtx, info)
	case registry.StageOwnerCheck:
		return o.registry.VerifyOwner(callCtx, info)
	case registry.StageEncumbranceCheck:
		return o.registry.CheckEncumbrances(callCtx, info)
	default:
		return nil, fmt.Errorf("unknown registry check %q", step)
	}
}

// fail records a rejected outcome for a check that came back negative and
// notifies the subject's owner. Fail-fast: the remaining checks never run.
// Transport and timeout errors never reach here; those propagate out of
// StartVerification so the job can retry without touching the record.
func (o *Orchestrator) fail(ctx context.Context, recordID string, subject domain.SubjectRef, step registry.CheckStage, res *registry.Result) (*Outcome, error) {
	reason := "verification failed"
	detail := map[string]interface{}{"step": string(step)}
	if res != nil && res.Message != "" {
		reason = res.Message
	}
	detail["reason"] = reason
	if res != nil {
		detail["response"] = resultMap(res)
	}

	if res != nil {
		if _, err := o.records.AppendExternalResponse(ctx, recordID, string(step), resultMap(res)); err != nil {
			return nil, err
		}
	}
	if _, err := o.records.AdvanceStage(ctx, recordID, domain.StageRejected, detail); err != nil {
		return nil, err
	}

	o.notifyDecision(ctx, subject, false, reason)

	logger.Warn("External verification failed",
		zap.String("record_id", recordID),
		zap.String("step", string(step)),
		zap.String("reason", reason),
	)
	return &Outcome{RecordID: recordID, Passed: false, FailedStep: string(step), Reason: reason}, nil
}

// markSubjectVerified flips the verified flag on profile subjects and
// lists plot subjects.
func (o *Orchestrator) markSubjectVerified(ctx context.Context, subject domain.SubjectRef) error {
	switch subject.Kind {
	case domain.SubjectLandowner:
		if _, err := o.client.LandownerProfile.UpdateOneID(subject.ID.String()).
			SetVerified(true).
			Save(ctx); err != nil {
			return fmt.Errorf("mark landowner %s verified: %w", subject.ID, err)
		}
	case domain.SubjectAgent:
		if _, err := o.client.AgentProfile.UpdateOneID(subject.ID.String()).
			SetVerified(true).
			Save(ctx); err != nil {
			return fmt.Errorf("mark agent %s verified: %w", subject.ID, err)
		}
	case domain.SubjectPlot:
		if _, err := o.client.Plot.UpdateOneID(subject.ID.String()).
			SetListed(true).
			Save(ctx); err != nil {
			return fmt.Errorf("list plot %s: %w", subject.ID, err)
		}
	}
	return nil
}

func (o *Orchestrator) notifyDecision(ctx context.Context, subject domain.SubjectRef, approved bool, reason string) {
	if o.notifier == nil {
		return
	}
	contact, err := resolveSubjectContact(ctx, o.client, subject)
	if err != nil {
		logger.Warn("Cannot notify subject of verification decision",
			zap.String("subject", subject.String()),
			zap.Error(err),
		)
		return
	}

	if subject.Kind == domain.SubjectPlot {
		p, perr := o.client.Plot.Get(ctx, subject.ID.String())
		if perr != nil {
			return
		}
		if approved {
			o.notifier.OnPlotApproved(ctx, p.ID, p.Title, contact.UserID, contact.Email)
		} else {
			o.notifier.OnPlotRejected(ctx, p.ID, p.Title, contact.UserID, contact.Email, reason)
		}
		return
	}
	o.notifier.OnVerificationDecided(ctx, contact.UserID, string(subject.Kind), approved, reason)
}

// buildSubjectInfo assembles the payload the registry platform needs.
func (o *Orchestrator) buildSubjectInfo(ctx context.Context, rec *ent.VerificationRecord) (registry.SubjectInfo, error) {
	subject := subjectOf(rec)
	info := registry.SubjectInfo{SubjectID: subject.ID}

	switch subject.Kind {
	case domain.SubjectLandowner:
		profile, err := o.client.LandownerProfile.Get(ctx, subject.ID.String())
		if err != nil {
			return info, fmt.Errorf("get landowner profile %s: %w", subject.ID, err)
		}
		info.OwnerName = profile.FullName
		info.IDNumber = profile.NationalIDNo
	case domain.SubjectAgent:
		profile, err := o.client.AgentProfile.Get(ctx, subject.ID.String())
		if err != nil {
			return info, fmt.Errorf("get agent profile %s: %w", subject.ID, err)
		}
		info.OwnerName = profile.FullName
		info.IDNumber = profile.LicenseNumber
	case domain.SubjectPlot:
		p, err := o.client.Plot.Get(ctx, subject.ID.String())
		if err != nil {
			return info, fmt.Errorf("get plot %s: %w", subject.ID, err)
		}
		info.TitleNumber = p.ParcelNumber
		if owner, oerr := resolvePlotOwner(ctx, o.client, p); oerr == nil {
			info.OwnerName = owner.FullName
		}
	}
	return info, nil
}

func resultMap(res *registry.Result) map[string]interface{} {
	if res == nil {
		return nil
	}
	return map[string]interface{}{
		"verified":         res.Verified,
		"reference":        res.Reference,
		"registered_owner": res.RegisteredOwner,
		"parcel_details":   res.ParcelDetails,
		"encumbrances":     res.Encumbrances,
		"fee":              res.Fee,
		"message":          res.Message,
	}
}
