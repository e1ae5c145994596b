package verification

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"agriplot.io/agriplot/internal/domain"
	pkgerrors "agriplot.io/agriplot/internal/pkg/errors"
)

func TestRecordsCreateFor_Idempotent(t *testing.T) {
	t.Parallel()
	client := openClient(t, "records_create_for")
	records, _, _ := newServices(t, client)
	ctx := context.Background()

	subject := domain.SubjectRef{Kind: domain.SubjectLandowner, ID: uuid.New()}

	first, err := records.CreateFor(ctx, subject)
	require.NoError(t, err)
	assert.EqualValues(t, domain.StageDocumentUploaded, first.Stage)
	assert.Contains(t, first.StageTimestamps, string(domain.StageDocumentUploaded))

	second, err := records.CreateFor(ctx, subject)
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID, "same subject must map to the same record")

	count, err := client.VerificationRecord.Query().Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestRecordsCreateFor_RejectsInvalidSubject(t *testing.T) {
	t.Parallel()
	client := openClient(t, "records_invalid_subject")
	records, _, _ := newServices(t, client)

	_, err := records.CreateFor(context.Background(), domain.SubjectRef{Kind: "tractor", ID: uuid.New()})
	appErr, ok := pkgerrors.IsAppError(err)
	require.True(t, ok)
	assert.Equal(t, pkgerrors.CodeSubjectInvalid, appErr.Code)

	_, err = records.CreateFor(context.Background(), domain.SubjectRef{Kind: domain.SubjectPlot})
	_, ok = pkgerrors.IsAppError(err)
	require.True(t, ok)
}

func TestRecordsAdvanceStage_InvalidStage(t *testing.T) {
	t.Parallel()
	client := openClient(t, "records_invalid_stage")
	records, _, _ := newServices(t, client)
	ctx := context.Background()

	rec, err := records.CreateFor(ctx, domain.SubjectRef{Kind: domain.SubjectAgent, ID: uuid.New()})
	require.NoError(t, err)

	_, err = records.AdvanceStage(ctx, rec.ID, domain.Stage("warp_drive"), nil)
	appErr, ok := pkgerrors.IsAppError(err)
	require.True(t, ok)
	assert.Equal(t, pkgerrors.CodeStageInvalid, appErr.Code)

	// Record untouched.
	reloaded, err := records.Get(ctx, rec.ID)
	require.NoError(t, err)
	assert.EqualValues(t, domain.StageDocumentUploaded, reloaded.Stage)
}

func TestRecordsAdvanceStage_StampsOnceAndMergesDetail(t *testing.T) {
	t.Parallel()
	client := openClient(t, "records_stamp_once")
	records, _, _ := newServices(t, client)
	ctx := context.Background()

	rec, err := records.CreateFor(ctx, domain.SubjectRef{Kind: domain.SubjectLandowner, ID: uuid.New()})
	require.NoError(t, err)

	advanced, err := records.AdvanceStage(ctx, rec.ID, domain.StageAdminReview, map[string]interface{}{
		"note": "first pass",
	})
	require.NoError(t, err)
	firstStamp := advanced.StageTimestamps[string(domain.StageAdminReview)]
	require.NotEmpty(t, firstStamp)

	// Re-entering the same stage keeps the original timestamp but
	// overwrites the stage detail (last write wins).
	again, err := records.AdvanceStage(ctx, rec.ID, domain.StageAdminReview, map[string]interface{}{
		"note": "second pass",
	})
	require.NoError(t, err)
	assert.Equal(t, firstStamp, again.StageTimestamps[string(domain.StageAdminReview)])

	detail, ok := again.Detail[string(domain.StageAdminReview)].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "second pass", detail["note"])
}

func TestRecordsAdvanceStage_TerminalTimestamps(t *testing.T) {
	t.Parallel()
	client := openClient(t, "records_terminal")
	records, _, _ := newServices(t, client)
	ctx := context.Background()

	rec, err := records.CreateFor(ctx, domain.SubjectRef{Kind: domain.SubjectAgent, ID: uuid.New()})
	require.NoError(t, err)

	approved, err := records.AdvanceStage(ctx, rec.ID, domain.StageApproved, nil)
	require.NoError(t, err)
	require.NotNil(t, approved.ApprovedAt)
	assert.Nil(t, approved.RejectedAt)
	assert.Equal(t, 100, records.Progress(approved))

	rec2, err := records.CreateFor(ctx, domain.SubjectRef{Kind: domain.SubjectAgent, ID: uuid.New()})
	require.NoError(t, err)
	rejected, err := records.AdvanceStage(ctx, rec2.ID, domain.StageRejected, map[string]interface{}{"reason": "forged title"})
	require.NoError(t, err)
	require.NotNil(t, rejected.RejectedAt)
	assert.Equal(t, 100, records.Progress(rejected))
}

func TestRecordsAppendExternalResponse_AppendOnly(t *testing.T) {
	t.Parallel()
	client := openClient(t, "records_append")
	records, _, _ := newServices(t, client)
	ctx := context.Background()

	rec, err := records.CreateFor(ctx, domain.SubjectRef{Kind: domain.SubjectLandowner, ID: uuid.New()})
	require.NoError(t, err)

	_, err = records.AppendExternalResponse(ctx, rec.ID, "title_search", map[string]interface{}{"verified": true})
	require.NoError(t, err)
	updated, err := records.AppendExternalResponse(ctx, rec.ID, "owner_verification", map[string]interface{}{"verified": false})
	require.NoError(t, err)

	require.Len(t, updated.ExternalResponses, 2)
	assert.Equal(t, "title_search", updated.ExternalResponses[0]["stage"])
	assert.Equal(t, "owner_verification", updated.ExternalResponses[1]["stage"])
	assert.NotEmpty(t, updated.ExternalResponses[0]["captured_at"])
}

func TestRecordsReset_PreservesHistory(t *testing.T) {
	t.Parallel()
	client := openClient(t, "records_reset")
	records, _, _ := newServices(t, client)
	ctx := context.Background()

	rec, err := records.CreateFor(ctx, domain.SubjectRef{Kind: domain.SubjectPlot, ID: uuid.New()})
	require.NoError(t, err)
	_, err = records.AppendExternalResponse(ctx, rec.ID, "title_search", map[string]interface{}{"verified": true})
	require.NoError(t, err)
	_, err = records.AdvanceStage(ctx, rec.ID, domain.StageApproved, nil)
	require.NoError(t, err)

	reset, err := records.Reset(ctx, rec.ID, "price changed", "owner-1")
	require.NoError(t, err)

	assert.EqualValues(t, domain.StageDocumentUploaded, reset.Stage)
	assert.Nil(t, reset.ApprovedAt)
	assert.Nil(t, reset.RejectedAt)
	// History survives the reset.
	assert.Contains(t, reset.StageTimestamps, string(domain.StageApproved))
	assert.Len(t, reset.ExternalResponses, 1)

	resetDetail, ok := reset.Detail["reset"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "price changed", resetDetail["reason"])
	assert.Equal(t, string(domain.StageApproved), resetDetail["was_stage"])
}

func TestRecordsGet_NotFound(t *testing.T) {
	t.Parallel()
	client := openClient(t, "records_not_found")
	records, _, _ := newServices(t, client)

	_, err := records.Get(context.Background(), "vrec-missing")
	appErr, ok := pkgerrors.IsAppError(err)
	require.True(t, ok)
	assert.Equal(t, pkgerrors.CodeRecordNotFound, appErr.Code)
}
