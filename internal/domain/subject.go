package domain

import (
	"fmt"

	"github.com/google/uuid"
)

// SubjectKind identifies which kind of entity a verification record tracks.
type SubjectKind string

const (
	SubjectLandowner SubjectKind = "landowner"
	SubjectAgent     SubjectKind = "agent"
	SubjectPlot      SubjectKind = "plot"
)

// IsValid reports whether k is a recognized subject kind.
func (k SubjectKind) IsValid() bool {
	switch k {
	case SubjectLandowner, SubjectAgent, SubjectPlot:
		return true
	}
	return false
}

// SubjectRef points at the entity a verification record tracks.
// Exactly one record exists per (Kind, ID) pair.
type SubjectRef struct {
	Kind SubjectKind `json:"kind"`
	ID   uuid.UUID   `json:"id"`
}

// NewSubjectRef validates kind and id and builds a reference.
func NewSubjectRef(kind SubjectKind, id uuid.UUID) (SubjectRef, error) {
	if !kind.IsValid() {
		return SubjectRef{}, fmt.Errorf("unknown subject kind %q", kind)
	}
	if id == uuid.Nil {
		return SubjectRef{}, fmt.Errorf("subject id must not be nil")
	}
	return SubjectRef{Kind: kind, ID: id}, nil
}

// String renders the reference as "kind/id" for logs and audit entries.
func (r SubjectRef) String() string {
	return fmt.Sprintf("%s/%s", r.Kind, r.ID)
}

// TaskType identifies one of the verification tasks a plot may require.
type TaskType string

const (
	TaskDocumentReview     TaskType = "document_review"
	TaskExtensionReview    TaskType = "extension_review"
	TaskSurveyorInspection TaskType = "surveyor_inspection"
)

// TaskStatus tracks a verification task through its lifecycle.
type TaskStatus string

const (
	TaskPending    TaskStatus = "pending"
	TaskInProgress TaskStatus = "in_progress"
	TaskCompleted  TaskStatus = "completed"
)

// LandType classifies a plot for task applicability.
type LandType string

const (
	LandAgricultural LandType = "agricultural"
	LandResidential  LandType = "residential"
	LandCommercial   LandType = "commercial"
	LandMixedUse     LandType = "mixed_use"
)

// SurveyorAreaThreshold is the plot area in acres above which a
// surveyor inspection task is required.
const SurveyorAreaThreshold = 50.0

// ApplicableTaskTypes returns the verification tasks a plot requires,
// in deterministic order. Document review applies to every plot;
// extension review only to agricultural land; surveyor inspection only
// to plots larger than the area threshold.
func ApplicableTaskTypes(landType LandType, areaAcres float64) []TaskType {
	types := []TaskType{TaskDocumentReview}
	if landType == LandAgricultural {
		types = append(types, TaskExtensionReview)
	}
	if areaAcres > SurveyorAreaThreshold {
		types = append(types, TaskSurveyorInspection)
	}
	return types
}
