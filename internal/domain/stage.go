// Package domain provides domain models for the AgriPlot verification engine.
//
// All services return domain types, NOT persistence or registry wire types.
package domain

// Stage represents a step in the verification pipeline.
type Stage string

const (
	// Pipeline stages in order of progress.
	StageDocumentUploaded       Stage = "document_uploaded"
	StageAPIVerificationStarted Stage = "api_verification_started"
	StageTitleSearchCompleted   Stage = "title_search_completed"
	StageOwnerVerified          Stage = "owner_verified"
	StageEncumbranceCheck       Stage = "encumbrance_check"
	StageAdminReview            Stage = "admin_review"
	StageChangesRequested       Stage = "changes_requested"

	// Terminal stages.
	StageApproved Stage = "approved"
	StageRejected Stage = "rejected"
)

// StageOrder lists every stage in pipeline order. Progress reporting and
// stage validation both derive from this single ordering.
var StageOrder = []Stage{
	StageDocumentUploaded,
	StageAPIVerificationStarted,
	StageTitleSearchCompleted,
	StageOwnerVerified,
	StageEncumbranceCheck,
	StageAdminReview,
	StageChangesRequested,
	StageApproved,
	StageRejected,
}

var stageOrdinal = func() map[Stage]int {
	m := make(map[Stage]int, len(StageOrder))
	for i, s := range StageOrder {
		m[s] = i
	}
	return m
}()

// IsValid reports whether s names a known pipeline stage.
func (s Stage) IsValid() bool {
	_, ok := stageOrdinal[s]
	return ok
}

// IsTerminal reports whether s ends the pipeline. No stage transition is
// permitted out of a terminal stage except an explicit record reset.
func (s Stage) IsTerminal() bool {
	return s == StageApproved || s == StageRejected
}

// Ordinal returns the zero-based position of s in the pipeline order.
// Returns -1 for unknown stages.
func (s Stage) Ordinal() int {
	i, ok := stageOrdinal[s]
	if !ok {
		return -1
	}
	return i
}

// ProgressPercentage maps s onto 0..100 by pipeline position, truncated.
// Both terminal stages report 100: a rejected record is as "done" as an
// approved one.
func (s Stage) ProgressPercentage() int {
	i, ok := stageOrdinal[s]
	if !ok {
		return 0
	}
	if s.IsTerminal() {
		return 100
	}
	return (i + 1) * 100 / len(StageOrder)
}

// ValidStageNames returns every stage name, for error messages and
// schema enums.
func ValidStageNames() []string {
	names := make([]string, len(StageOrder))
	for i, s := range StageOrder {
		names[i] = string(s)
	}
	return names
}
