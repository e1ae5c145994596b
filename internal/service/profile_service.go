package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"agriplot.io/agriplot/ent"
	"agriplot.io/agriplot/internal/domain"
	"agriplot.io/agriplot/internal/governance/audit"
	"agriplot.io/agriplot/internal/pkg/logger"
	"agriplot.io/agriplot/internal/verification"
)

// VerificationEnqueuer schedules the background registry verification
// for a freshly created record.
type VerificationEnqueuer interface {
	EnqueueProfileVerify(ctx context.Context, recordID string) error
}

// ProfileService creates landowner and agent profiles and kicks off
// their registry verification.
type ProfileService struct {
	client   *ent.Client
	records  *verification.Records
	audit    *audit.Logger
	enqueuer VerificationEnqueuer // Optional: nil skips background verification
}

// NewProfileService creates the profile service.
func NewProfileService(client *ent.Client, records *verification.Records, auditLogger *audit.Logger) *ProfileService {
	return &ProfileService{client: client, records: records, audit: auditLogger}
}

// SetEnqueuer configures background verification scheduling.
func (s *ProfileService) SetEnqueuer(enqueuer VerificationEnqueuer) {
	s.enqueuer = enqueuer
}

// LandownerInput carries the attributes of a new landowner profile.
type LandownerInput struct {
	UserID       string
	FullName     string
	NationalIDNo string
	KraPin       string
	Phone        string
}

// AgentInput carries the attributes of a new agent profile.
type AgentInput struct {
	UserID        string
	FullName      string
	LicenseNumber string
	Phone         string
}

// CreateLandowner stores a landowner profile, opens its verification
// record and schedules the registry checks.
func (s *ProfileService) CreateLandowner(ctx context.Context, input LandownerInput) (*ent.LandownerProfile, error) {
	create := s.client.LandownerProfile.Create().
		SetID(uuid.NewString()).
		SetUserID(input.UserID).
		SetFullName(input.FullName)
	if input.NationalIDNo != "" {
		create.SetNationalIDNo(input.NationalIDNo)
	}
	if input.KraPin != "" {
		create.SetKraPin(input.KraPin)
	}
	if input.Phone != "" {
		create.SetPhone(input.Phone)
	}

	profile, err := create.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("create landowner profile: %w", err)
	}
	s.startVerification(ctx, domain.SubjectLandowner, profile.ID)

	logger.Info("Landowner profile created",
		zap.String("profile_id", profile.ID),
		zap.String("user_id", profile.UserID),
	)
	return profile, nil
}

// CreateAgent stores an agent profile, opens its verification record and
// schedules the registry checks.
func (s *ProfileService) CreateAgent(ctx context.Context, input AgentInput) (*ent.AgentProfile, error) {
	create := s.client.AgentProfile.Create().
		SetID(uuid.NewString()).
		SetUserID(input.UserID).
		SetFullName(input.FullName)
	if input.LicenseNumber != "" {
		create.SetLicenseNumber(input.LicenseNumber)
	}
	if input.Phone != "" {
		create.SetPhone(input.Phone)
	}

	profile, err := create.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("create agent profile: %w", err)
	}
	s.startVerification(ctx, domain.SubjectAgent, profile.ID)

	logger.Info("Agent profile created",
		zap.String("profile_id", profile.ID),
		zap.String("user_id", profile.UserID),
	)
	return profile, nil
}

// startVerification opens the record and enqueues the background job.
// Failures here never fail the profile creation; the record can be
// re-driven later.
func (s *ProfileService) startVerification(ctx context.Context, kind domain.SubjectKind, profileID string) {
	subjectUUID, err := uuid.Parse(profileID)
	if err != nil {
		logger.Error("Profile id is not a valid subject id",
			zap.String("profile_id", profileID), zap.Error(err))
		return
	}
	subject := domain.SubjectRef{Kind: kind, ID: subjectUUID}

	rec, err := s.records.CreateFor(ctx, subject)
	if err != nil {
		logger.Error("Failed to open verification record for profile",
			zap.String("subject", subject.String()), zap.Error(err))
		return
	}
	if s.enqueuer == nil {
		return
	}
	if err := s.enqueuer.EnqueueProfileVerify(ctx, rec.ID); err != nil {
		logger.Error("Failed to enqueue profile verification",
			zap.String("record_id", rec.ID), zap.Error(err))
	}
}
