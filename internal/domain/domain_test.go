package domain

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStage_ProgressPercentage(t *testing.T) {
	tests := []struct {
		stage Stage
		want  int
	}{
		{StageDocumentUploaded, 11},
		{StageAPIVerificationStarted, 22},
		{StageTitleSearchCompleted, 33},
		{StageOwnerVerified, 44},
		{StageEncumbranceCheck, 55},
		{StageAdminReview, 66},
		{StageChangesRequested, 77},
		{StageApproved, 100},
		{StageRejected, 100},
		{Stage("bogus"), 0},
	}
	for _, tt := range tests {
		t.Run(string(tt.stage), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.stage.ProgressPercentage())
		})
	}
}

func TestStage_ProgressMonotonic(t *testing.T) {
	prev := -1
	for _, s := range StageOrder {
		p := s.ProgressPercentage()
		assert.GreaterOrEqual(t, p, prev, "progress must not decrease at %s", s)
		assert.LessOrEqual(t, p, 100)
		prev = p
	}
}

func TestStage_Terminal(t *testing.T) {
	assert.True(t, StageApproved.IsTerminal())
	assert.True(t, StageRejected.IsTerminal())
	for _, s := range StageOrder[:len(StageOrder)-2] {
		assert.False(t, s.IsTerminal(), "stage %s must not be terminal", s)
	}
}

func TestStage_Ordinal(t *testing.T) {
	assert.Equal(t, 0, StageDocumentUploaded.Ordinal())
	assert.Equal(t, 8, StageRejected.Ordinal())
	assert.Equal(t, -1, Stage("nope").Ordinal())
}

func TestNewSubjectRef(t *testing.T) {
	id := uuid.New()

	ref, err := NewSubjectRef(SubjectPlot, id)
	require.NoError(t, err)
	assert.Equal(t, SubjectPlot, ref.Kind)
	assert.Equal(t, id, ref.ID)
	assert.Equal(t, "plot/"+id.String(), ref.String())

	_, err = NewSubjectRef(SubjectKind("tractor"), id)
	assert.Error(t, err)

	_, err = NewSubjectRef(SubjectAgent, uuid.Nil)
	assert.Error(t, err)
}

func TestApplicableTaskTypes(t *testing.T) {
	tests := []struct {
		name     string
		landType LandType
		area     float64
		want     []TaskType
	}{
		{
			name:     "small residential plot needs document review only",
			landType: LandResidential,
			area:     2.5,
			want:     []TaskType{TaskDocumentReview},
		},
		{
			name:     "agricultural adds extension review",
			landType: LandAgricultural,
			area:     10,
			want:     []TaskType{TaskDocumentReview, TaskExtensionReview},
		},
		{
			name:     "large commercial adds surveyor inspection",
			landType: LandCommercial,
			area:     120,
			want:     []TaskType{TaskDocumentReview, TaskSurveyorInspection},
		},
		{
			name:     "large agricultural needs all three",
			landType: LandAgricultural,
			area:     51,
			want:     []TaskType{TaskDocumentReview, TaskExtensionReview, TaskSurveyorInspection},
		},
		{
			name:     "area exactly at threshold does not trigger inspection",
			landType: LandMixedUse,
			area:     50,
			want:     []TaskType{TaskDocumentReview},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ApplicableTaskTypes(tt.landType, tt.area))
		})
	}
}
