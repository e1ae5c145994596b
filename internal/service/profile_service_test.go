package service

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"agriplot.io/agriplot/ent"
	"agriplot.io/agriplot/internal/domain"
	"agriplot.io/agriplot/internal/governance/audit"
	"agriplot.io/agriplot/internal/verification"
)

type fakeEnqueuer struct {
	recordIDs []string
	err       error
}

func (f *fakeEnqueuer) EnqueueProfileVerify(_ context.Context, recordID string) error {
	if f.err != nil {
		return f.err
	}
	f.recordIDs = append(f.recordIDs, recordID)
	return nil
}

func newProfileService(t *testing.T, client *ent.Client) (*ProfileService, *verification.Records, *fakeEnqueuer) {
	t.Helper()
	auditLogger := audit.NewLogger(client)
	records := verification.NewRecords(client, auditLogger)
	svc := NewProfileService(client, records, auditLogger)
	enqueuer := &fakeEnqueuer{}
	svc.SetEnqueuer(enqueuer)
	return svc, records, enqueuer
}

func TestProfileServiceCreateLandowner(t *testing.T) {
	t.Parallel()
	client := openClient(t, "svc_profile_landowner")
	svc, records, enqueuer := newProfileService(t, client)
	ctx := context.Background()

	owner := seedUser(t, client, "nyambura", false)
	profile, err := svc.CreateLandowner(ctx, LandownerInput{
		UserID:       owner.ID,
		FullName:     "Nyambura Githinji",
		NationalIDNo: "34567890",
		Phone:        "+254712000001",
	})
	require.NoError(t, err)
	assert.False(t, profile.Verified)

	subjectID, err := uuid.Parse(profile.ID)
	require.NoError(t, err)
	rec, err := records.GetBySubject(ctx, domain.SubjectRef{Kind: domain.SubjectLandowner, ID: subjectID})
	require.NoError(t, err)
	assert.EqualValues(t, domain.StageDocumentUploaded, rec.Stage)

	assert.Equal(t, []string{rec.ID}, enqueuer.recordIDs)
}

func TestProfileServiceCreateAgent(t *testing.T) {
	t.Parallel()
	client := openClient(t, "svc_profile_agent")
	svc, records, enqueuer := newProfileService(t, client)
	ctx := context.Background()

	agentUser := seedUser(t, client, "kipchoge", false)
	profile, err := svc.CreateAgent(ctx, AgentInput{
		UserID:        agentUser.ID,
		FullName:      "Kipchoge Rotich",
		LicenseNumber: "EAK/2019/0042",
	})
	require.NoError(t, err)
	assert.False(t, profile.Verified)

	subjectID, err := uuid.Parse(profile.ID)
	require.NoError(t, err)
	rec, err := records.GetBySubject(ctx, domain.SubjectRef{Kind: domain.SubjectAgent, ID: subjectID})
	require.NoError(t, err)
	assert.Equal(t, []string{rec.ID}, enqueuer.recordIDs)
}

func TestProfileServiceEnqueueFailureDoesNotFailCreation(t *testing.T) {
	t.Parallel()
	client := openClient(t, "svc_profile_enqueue_fail")
	svc, records, enqueuer := newProfileService(t, client)
	enqueuer.err = errors.New("queue down")
	ctx := context.Background()

	owner := seedUser(t, client, "mumbi", false)
	profile, err := svc.CreateLandowner(ctx, LandownerInput{
		UserID:   owner.ID,
		FullName: "Mumbi Waweru",
	})
	require.NoError(t, err)

	// The record still exists and can be driven manually later.
	subjectID, err := uuid.Parse(profile.ID)
	require.NoError(t, err)
	_, err = records.GetBySubject(ctx, domain.SubjectRef{Kind: domain.SubjectLandowner, ID: subjectID})
	require.NoError(t, err)
	assert.Empty(t, enqueuer.recordIDs)
}

func TestProfileServiceWithoutEnqueuer(t *testing.T) {
	t.Parallel()
	client := openClient(t, "svc_profile_no_queue")
	auditLogger := audit.NewLogger(client)
	records := verification.NewRecords(client, auditLogger)
	svc := NewProfileService(client, records, auditLogger)
	ctx := context.Background()

	owner := seedUser(t, client, "naliaka", false)
	profile, err := svc.CreateLandowner(ctx, LandownerInput{
		UserID:   owner.ID,
		FullName: "Naliaka Wekesa",
	})
	require.NoError(t, err)

	subjectID, err := uuid.Parse(profile.ID)
	require.NoError(t, err)
	_, err = records.GetBySubject(ctx, domain.SubjectRef{Kind: domain.SubjectLandowner, ID: subjectID})
	require.NoError(t, err)
}
