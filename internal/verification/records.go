// Package verification implements the verification workflow engine:
// the polymorphic status record, the per-plot task registry, the
// completion aggregator and the external registry orchestrator.
package verification

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"agriplot.io/agriplot/ent"
	"agriplot.io/agriplot/ent/verificationrecord"
	"agriplot.io/agriplot/internal/domain"
	"agriplot.io/agriplot/internal/governance/audit"
	pkgerrors "agriplot.io/agriplot/internal/pkg/errors"
	"agriplot.io/agriplot/internal/pkg/logger"
)

// Records manages verification status records. Exactly one record exists
// per subject, enforced by the unique (subject_kind, subject_id) index.
type Records struct {
	client *ent.Client
	audit  *audit.Logger
}

// NewRecords creates the record service.
func NewRecords(client *ent.Client, auditLogger *audit.Logger) *Records {
	return &Records{client: client, audit: auditLogger}
}

// CreateFor returns the verification record for subject, creating it at
// document_uploaded when none exists. Idempotent: concurrent callers race
// on the unique index and the loser re-reads the winner's row.
func (r *Records) CreateFor(ctx context.Context, subject domain.SubjectRef) (*ent.VerificationRecord, error) {
	if !subject.Kind.IsValid() || subject.ID == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeSubjectInvalid,
			fmt.Sprintf("invalid verification subject %s", subject), http.StatusBadRequest)
	}

	existing, err := r.GetBySubject(ctx, subject)
	if err == nil {
		return existing, nil
	}
	if _, ok := pkgerrors.IsAppError(err); !ok {
		return nil, err
	}

	now := time.Now()
	rec, err := r.client.VerificationRecord.Create().
		SetID(generateRecordID()).
		SetSubjectKind(verificationrecord.SubjectKind(subject.Kind)).
		SetSubjectID(subject.ID.String()).
		SetStage(verificationrecord.StageDocumentUploaded).
		SetStageTimestamps(map[string]string{
			string(domain.StageDocumentUploaded): now.Format(time.RFC3339),
		}).
		Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			// Lost the get-or-create race; the winner's row is authoritative.
			return r.GetBySubject(ctx, subject)
		}
		return nil, fmt.Errorf("create verification record for %s: %w", subject, err)
	}

	if r.audit != nil {
		_ = r.audit.LogAction(ctx, "record.created", subject, audit.ActorSystem, "", map[string]interface{}{
			"record_id": rec.ID,
		})
	}

	logger.Info("Verification record created",
		zap.String("record_id", rec.ID),
		zap.String("subject", subject.String()),
	)
	return rec, nil
}

// Get loads a record by ID.
func (r *Records) Get(ctx context.Context, recordID string) (*ent.VerificationRecord, error) {
	rec, err := r.client.VerificationRecord.Get(ctx, recordID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, pkgerrors.ErrRecordNotFoundf(recordID)
		}
		return nil, fmt.Errorf("get verification record %s: %w", recordID, err)
	}
	return rec, nil
}

// GetBySubject loads the record tracking subject.
func (r *Records) GetBySubject(ctx context.Context, subject domain.SubjectRef) (*ent.VerificationRecord, error) {
	rec, err := r.client.VerificationRecord.Query().
		Where(
			verificationrecord.SubjectKindEQ(verificationrecord.SubjectKind(subject.Kind)),
			verificationrecord.SubjectID(subject.ID.String()),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, pkgerrors.ErrRecordNotFoundf(subject.String())
		}
		return nil, fmt.Errorf("get verification record for %s: %w", subject, err)
	}
	return rec, nil
}

// AdvanceStage moves a record to stage, stamping the stage timestamp once
// and merging detail under the stage name. Terminal stages additionally
// set approved_at or rejected_at.
//
// Writes are last-write-wins: there is no optimistic locking on the
// record row. Concurrent advancement of the same record is tolerated and
// the final state is whichever write lands last.
// TODO: revisit with a version column if concurrent admin consoles ship.
func (r *Records) AdvanceStage(ctx context.Context, recordID string, stage domain.Stage, detail map[string]interface{}) (*ent.VerificationRecord, error) {
	if !stage.IsValid() {
		return nil, pkgerrors.ErrStageInvalidf(string(stage))
	}

	rec, err := r.Get(ctx, recordID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	from := domain.Stage(rec.Stage)
	if from.IsTerminal() && stage != from {
		return nil, pkgerrors.New(pkgerrors.CodeStageInvalid,
			fmt.Sprintf("record %s is %s; terminal records require an explicit reset", recordID, from),
			http.StatusConflict)
	}

	timestamps := cloneStrMap(rec.StageTimestamps)
	// Stamped once per stage: re-entering a stage keeps the first timestamp.
	if _, ok := timestamps[string(stage)]; !ok {
		timestamps[string(stage)] = now.Format(time.RFC3339)
	}

	details := cloneAnyMap(rec.Detail)
	if len(detail) > 0 {
		details[string(stage)] = detail
	}

	update := rec.Update().
		SetStage(verificationrecord.Stage(stage)).
		SetStageTimestamps(timestamps).
		SetDetail(details)
	switch stage {
	case domain.StageApproved:
		update.SetApprovedAt(now)
	case domain.StageRejected:
		update.SetRejectedAt(now)
	}

	updated, err := update.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("advance record %s to %s: %w", recordID, stage, err)
	}

	if r.audit != nil {
		_ = r.audit.LogStageChange(ctx, subjectOf(rec), from, stage, audit.ActorSystem)
	}

	logger.Info("Verification stage advanced",
		zap.String("record_id", recordID),
		zap.String("from", string(from)),
		zap.String("to", string(stage)),
		zap.Int("progress", stage.ProgressPercentage()),
	)
	return updated, nil
}

// AppendExternalResponse appends a raw registry payload to the record's
// append-only response log, tagged with the pipeline step and capture time.
func (r *Records) AppendExternalResponse(ctx context.Context, recordID, step string, payload map[string]interface{}) (*ent.VerificationRecord, error) {
	rec, err := r.Get(ctx, recordID)
	if err != nil {
		return nil, err
	}

	responses := make([]map[string]interface{}, len(rec.ExternalResponses), len(rec.ExternalResponses)+1)
	copy(responses, rec.ExternalResponses)
	responses = append(responses, map[string]interface{}{
		"stage":       step,
		"captured_at": time.Now().Format(time.RFC3339),
		"response":    payload,
	})

	updated, err := rec.Update().
		SetExternalResponses(responses).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("append external response to record %s: %w", recordID, err)
	}
	return updated, nil
}

// Progress reports the record's pipeline position as 0..100.
func (r *Records) Progress(rec *ent.VerificationRecord) int {
	return domain.Stage(rec.Stage).ProgressPercentage()
}

// Reset sends a record back to document_uploaded. Prior stage timestamps
// and external responses are preserved as history; terminal markers are
// cleared so the pipeline can run again. Used by the critical-edit path.
func (r *Records) Reset(ctx context.Context, recordID, reason, actor string) (*ent.VerificationRecord, error) {
	rec, err := r.Get(ctx, recordID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	from := domain.Stage(rec.Stage)

	details := cloneAnyMap(rec.Detail)
	details["reset"] = map[string]interface{}{
		"reason":    reason,
		"actor":     actor,
		"at":        now.Format(time.RFC3339),
		"was_stage": string(from),
	}

	updated, err := rec.Update().
		SetStage(verificationrecord.StageDocumentUploaded).
		SetDetail(details).
		ClearApprovedAt().
		ClearRejectedAt().
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("reset record %s: %w", recordID, err)
	}

	if r.audit != nil {
		_ = r.audit.LogAction(ctx, "record.reset", subjectOf(rec), actor, reason, map[string]interface{}{
			"record_id": recordID,
			"was_stage": string(from),
		})
	}

	logger.Info("Verification record reset",
		zap.String("record_id", recordID),
		zap.String("was_stage", string(from)),
		zap.String("reason", reason),
	)
	return updated, nil
}

// SetSearchResult stores the registry search reference and fee captured
// from the title search step.
func (r *Records) SetSearchResult(ctx context.Context, recordID, reference string, fee float64) error {
	if _, err := r.client.VerificationRecord.UpdateOneID(recordID).
		SetSearchReference(reference).
		SetSearchFee(fee).
		Save(ctx); err != nil {
		if ent.IsNotFound(err) {
			return pkgerrors.ErrRecordNotFoundf(recordID)
		}
		return fmt.Errorf("store search result on record %s: %w", recordID, err)
	}
	return nil
}

func subjectOf(rec *ent.VerificationRecord) domain.SubjectRef {
	id, _ := uuid.Parse(rec.SubjectID)
	return domain.SubjectRef{Kind: domain.SubjectKind(rec.SubjectKind), ID: id}
}

func cloneStrMap(m map[string]string) map[string]string {
	out := make(map[string]string, len(m)+1)
	for k, v := range m {
		out[k] = v
	}
	return out
}

func cloneAnyMap(m map[string]interface{}) map[string]interface{} {
	out := make(map[string]interface{}, len(m)+1)
	for k, v := range m {
		out[k] = v
	}
	return out
}

func generateRecordID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.New().String()
	}
	return fmt.Sprintf("vrec-%s", id.String())
}
