package errors

import "net/http"

// Error code constants.
// Errors carry code + params only; callers render messages.

// Verification record error codes.
const (
	CodeRecordNotFound = "RECORD_NOT_FOUND"
	CodeStageInvalid   = "STAGE_INVALID"
	CodeSubjectInvalid = "SUBJECT_INVALID"
)

// Task error codes.
const (
	CodeTaskNotFound = "TASK_NOT_FOUND"
	CodePlotNotFound = "PLOT_NOT_FOUND"
)

// External verification error codes.
const (
	CodeExternalVerificationFailed = "EXTERNAL_VERIFICATION_FAILED"
	CodeRegistryUnavailable        = "REGISTRY_UNAVAILABLE"
)

// Decision error codes.
const (
	CodeDecisionReasonRequired = "DECISION_REASON_REQUIRED"
	CodeRecordNotReviewable    = "RECORD_NOT_REVIEWABLE"
)

// Notification error codes.
const (
	CodeNotificationDeliveryFailed = "NOTIFICATION_DELIVERY_FAILED"
)

// Convenience constructors using predefined codes.

// ErrRecordNotFoundf creates a verification record not found error.
func ErrRecordNotFoundf(recordID string) *AppError {
	return &AppError{
		Code:       CodeRecordNotFound,
		Message:    "verification record not found",
		HTTPStatus: http.StatusNotFound,
		Params:     map[string]interface{}{"record_id": recordID},
	}
}

// ErrTaskNotFoundf creates a verification task not found error.
func ErrTaskNotFoundf(taskID string) *AppError {
	return &AppError{
		Code:       CodeTaskNotFound,
		Message:    "verification task not found",
		HTTPStatus: http.StatusNotFound,
		Params:     map[string]interface{}{"task_id": taskID},
	}
}

// ErrPlotNotFoundf creates a plot not found error.
func ErrPlotNotFoundf(plotID string) *AppError {
	return &AppError{
		Code:       CodePlotNotFound,
		Message:    "plot not found",
		HTTPStatus: http.StatusNotFound,
		Params:     map[string]interface{}{"plot_id": plotID},
	}
}

// ErrStageInvalidf creates an invalid stage error. This is always a caller
// bug: stage names are validated against the stage graph, never coerced.
func ErrStageInvalidf(stage string) *AppError {
	return &AppError{
		Code:       CodeStageInvalid,
		Message:    "stage is not a member of the verification stage graph",
		HTTPStatus: http.StatusBadRequest,
		Params:     map[string]interface{}{"stage": stage},
	}
}
