package verification

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"agriplot.io/agriplot/ent"
	entnotification "agriplot.io/agriplot/ent/notification"
	"agriplot.io/agriplot/internal/domain"
	"agriplot.io/agriplot/internal/governance/audit"
	"agriplot.io/agriplot/internal/notification"
	pkgerrors "agriplot.io/agriplot/internal/pkg/errors"
	"agriplot.io/agriplot/internal/registry"
)

func newOrchestrator(t *testing.T, client *ent.Client, mock registry.Client) (*Orchestrator, *Records) {
	t.Helper()
	auditLogger := audit.NewLogger(client)
	records := NewRecords(client, auditLogger)
	orch := NewOrchestrator(client, records, mock, auditLogger, 5*time.Second)
	orch.SetNotifier(notification.NewTriggers(notification.NewInboxSender(client), client))
	return orch, records
}

func TestStartVerification_AllChecksPass(t *testing.T) {
	t.Parallel()
	client := openClient(t, "orch_pass")
	mock := registry.NewMockClient()
	orch, records := newOrchestrator(t, client, mock)
	ctx := context.Background()

	owner := seedUser(t, client, "owner-orch-pass", false)
	landowner := seedLandowner(t, client, owner.ID, "Kamande Njoroge")
	subjectID := uuid.MustParse(landowner.ID)
	rec, err := records.CreateFor(ctx, domain.SubjectRef{Kind: domain.SubjectLandowner, ID: subjectID})
	require.NoError(t, err)

	outcome, err := orch.StartVerification(ctx, rec.ID)
	require.NoError(t, err)
	assert.True(t, outcome.Passed)
	assert.Empty(t, outcome.FailedStep)

	reloaded, err := records.Get(ctx, rec.ID)
	require.NoError(t, err)
	assert.EqualValues(t, domain.StageAdminReview, reloaded.Stage)
	assert.Len(t, reloaded.ExternalResponses, 3)
	assert.Contains(t, reloaded.SearchReference, "SRCH")
	assert.EqualValues(t, 500, reloaded.SearchFee)

	// Every intermediate stage got stamped on the way through.
	for _, stage := range []domain.Stage{
		domain.StageAPIVerificationStarted,
		domain.StageTitleSearchCompleted,
		domain.StageOwnerVerified,
		domain.StageEncumbranceCheck,
		domain.StageAdminReview,
	} {
		assert.Contains(t, reloaded.StageTimestamps, string(stage), "missing timestamp for %s", stage)
	}
}

func TestStartVerification_FailFastOnOwnerCheck(t *testing.T) {
	t.Parallel()
	client := openClient(t, "orch_fail_owner")
	mock := registry.NewMockClient()
	mock.FailStage(registry.StageOwnerCheck, "registered owner mismatch")
	orch, records := newOrchestrator(t, client, mock)
	ctx := context.Background()

	owner := seedUser(t, client, "owner-orch-fail", false)
	landowner := seedLandowner(t, client, owner.ID, "Wairimu Gathoni")
	rec, err := records.CreateFor(ctx, domain.SubjectRef{Kind: domain.SubjectLandowner, ID: uuid.MustParse(landowner.ID)})
	require.NoError(t, err)

	outcome, err := orch.StartVerification(ctx, rec.ID)
	require.NoError(t, err)
	assert.False(t, outcome.Passed)
	assert.Equal(t, string(registry.StageOwnerCheck), outcome.FailedStep)
	assert.Equal(t, "registered owner mismatch", outcome.Reason)

	reloaded, err := records.Get(ctx, rec.ID)
	require.NoError(t, err)
	assert.EqualValues(t, domain.StageRejected, reloaded.Stage)
	require.NotNil(t, reloaded.RejectedAt)
	// Title search succeeded, owner check captured its failing response,
	// the encumbrance check never ran.
	assert.Len(t, reloaded.ExternalResponses, 2)

	rejDetail, ok := reloaded.Detail[string(domain.StageRejected)].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "registered owner mismatch", rejDetail["reason"])
	assert.Equal(t, string(registry.StageOwnerCheck), rejDetail["step"])

	// The subject's owner was told about the rejection.
	count, err := client.Notification.Query().
		Where(entnotification.TypeEQ(entnotification.TypeVERIFICATION_DECIDED)).
		Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

// unreachableOwnerCheck delegates to the mock but fails the owner check
// at the transport level, like a registry outage or timeout would.
type unreachableOwnerCheck struct {
	*registry.MockClient
	err error
}

func (c *unreachableOwnerCheck) VerifyOwner(ctx context.Context, info registry.SubjectInfo) (*registry.Result, error) {
	if c.err != nil {
		return nil, c.err
	}
	return c.MockClient.VerifyOwner(ctx, info)
}

func TestStartVerification_RegistryOutageDoesNotReject(t *testing.T) {
	t.Parallel()
	client := openClient(t, "orch_outage")
	flaky := &unreachableOwnerCheck{
		MockClient: registry.NewMockClient(),
		err: pkgerrors.New(pkgerrors.CodeRegistryUnavailable,
			"registry unreachable", http.StatusBadGateway),
	}
	orch, records := newOrchestrator(t, client, flaky)
	ctx := context.Background()

	owner := seedUser(t, client, "owner-orch-outage", false)
	landowner := seedLandowner(t, client, owner.ID, "Jelimo Kosgei")
	rec, err := records.CreateFor(ctx, domain.SubjectRef{Kind: domain.SubjectLandowner, ID: uuid.MustParse(landowner.ID)})
	require.NoError(t, err)

	// An outage must surface as an error so the job retries, never as a
	// terminal rejection of a valid profile.
	outcome, err := orch.StartVerification(ctx, rec.ID)
	require.Error(t, err)
	assert.Nil(t, outcome)
	appErr, ok := pkgerrors.IsAppError(err)
	require.True(t, ok)
	assert.Equal(t, pkgerrors.CodeRegistryUnavailable, appErr.Code)

	reloaded, err := records.Get(ctx, rec.ID)
	require.NoError(t, err)
	assert.EqualValues(t, domain.StageTitleSearchCompleted, reloaded.Stage)
	assert.Nil(t, reloaded.RejectedAt)

	// A retry after the outage clears drives the record through.
	flaky.err = nil
	outcome, err = orch.StartVerification(ctx, rec.ID)
	require.NoError(t, err)
	assert.True(t, outcome.Passed)

	reloaded, err = records.Get(ctx, rec.ID)
	require.NoError(t, err)
	assert.EqualValues(t, domain.StageAdminReview, reloaded.Stage)
}

func TestAdminDecide_GuardedByStage(t *testing.T) {
	t.Parallel()
	client := openClient(t, "orch_decide_guard")
	mock := registry.NewMockClient()
	orch, records := newOrchestrator(t, client, mock)
	ctx := context.Background()

	owner := seedUser(t, client, "owner-decide-guard", false)
	landowner := seedLandowner(t, client, owner.ID, "Kemboi Rotich")
	rec, err := records.CreateFor(ctx, domain.SubjectRef{Kind: domain.SubjectLandowner, ID: uuid.MustParse(landowner.ID)})
	require.NoError(t, err)

	// Record is still at document_uploaded.
	_, err = orch.AdminDecide(ctx, rec.ID, "admin-1", true, "", "")
	appErr, ok := pkgerrors.IsAppError(err)
	require.True(t, ok)
	assert.Equal(t, pkgerrors.CodeRecordNotReviewable, appErr.Code)
}

func TestAdminDecide_RejectRequiresReason(t *testing.T) {
	t.Parallel()
	client := openClient(t, "orch_decide_reason")
	mock := registry.NewMockClient()
	orch, records := newOrchestrator(t, client, mock)
	ctx := context.Background()

	owner := seedUser(t, client, "owner-decide-reason", false)
	landowner := seedLandowner(t, client, owner.ID, "Auma Adhiambo")
	rec, err := records.CreateFor(ctx, domain.SubjectRef{Kind: domain.SubjectLandowner, ID: uuid.MustParse(landowner.ID)})
	require.NoError(t, err)
	_, err = orch.StartVerification(ctx, rec.ID)
	require.NoError(t, err)

	_, err = orch.AdminDecide(ctx, rec.ID, "admin-1", false, "", "sloppy paperwork")
	appErr, ok := pkgerrors.IsAppError(err)
	require.True(t, ok)
	assert.Equal(t, pkgerrors.CodeDecisionReasonRequired, appErr.Code)

	// With a reason the rejection goes through.
	rejected, err := orch.AdminDecide(ctx, rec.ID, "admin-1", false, "national ID does not match", "")
	require.NoError(t, err)
	assert.EqualValues(t, domain.StageRejected, rejected.Stage)
}

func TestAdminDecide_ApproveFlipsProfileVerified(t *testing.T) {
	t.Parallel()
	client := openClient(t, "orch_decide_approve")
	mock := registry.NewMockClient()
	orch, records := newOrchestrator(t, client, mock)
	ctx := context.Background()

	owner := seedUser(t, client, "owner-decide-approve", false)
	landowner := seedLandowner(t, client, owner.ID, "Mwende Mutiso")
	require.False(t, landowner.Verified)

	rec, err := records.CreateFor(ctx, domain.SubjectRef{Kind: domain.SubjectLandowner, ID: uuid.MustParse(landowner.ID)})
	require.NoError(t, err)
	_, err = orch.StartVerification(ctx, rec.ID)
	require.NoError(t, err)

	approved, err := orch.AdminDecide(ctx, rec.ID, "admin-1", true, "", "clean record")
	require.NoError(t, err)
	assert.EqualValues(t, domain.StageApproved, approved.Stage)
	require.NotNil(t, approved.ApprovedAt)

	profile, err := client.LandownerProfile.Get(ctx, landowner.ID)
	require.NoError(t, err)
	assert.True(t, profile.Verified)

	// Deciding twice fails the reviewability guard.
	_, err = orch.AdminDecide(ctx, rec.ID, "admin-2", false, "changed my mind", "")
	appErr, ok := pkgerrors.IsAppError(err)
	require.True(t, ok)
	assert.Equal(t, pkgerrors.CodeRecordNotReviewable, appErr.Code)
}

func TestRequestChanges_FromAdminReview(t *testing.T) {
	t.Parallel()
	client := openClient(t, "orch_request_changes")
	mock := registry.NewMockClient()
	orch, records := newOrchestrator(t, client, mock)
	ctx := context.Background()

	owner := seedUser(t, client, "owner-req-changes", false)
	landowner := seedLandowner(t, client, owner.ID, "Nafula Wanjala")
	rec, err := records.CreateFor(ctx, domain.SubjectRef{Kind: domain.SubjectLandowner, ID: uuid.MustParse(landowner.ID)})
	require.NoError(t, err)
	_, err = orch.StartVerification(ctx, rec.ID)
	require.NoError(t, err)

	updated, err := orch.RequestChanges(ctx, rec.ID, "admin-1", "please upload a clearer title deed scan")
	require.NoError(t, err)
	assert.EqualValues(t, domain.StageChangesRequested, updated.Stage)
	assert.Nil(t, updated.ApprovedAt)
	assert.Nil(t, updated.RejectedAt)
}
