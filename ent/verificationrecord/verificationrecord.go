// Code generated by ent, DO NOT EDIT.

package verificationrecord

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the verificationrecord type in the database.
	Label = "verification_record"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// FieldSubjectKind holds the string denoting the subject_kind field in the database.
	FieldSubjectKind = "subject_kind"
	// FieldSubjectID holds the string denoting the subject_id field in the database.
	FieldSubjectID = "subject_id"
	// FieldStage holds the string denoting the stage field in the database.
	FieldStage = "stage"
	// FieldStageTimestamps holds the string denoting the stage_timestamps field in the database.
	FieldStageTimestamps = "stage_timestamps"
	// FieldExternalResponses holds the string denoting the external_responses field in the database.
	FieldExternalResponses = "external_responses"
	// FieldDetail holds the string denoting the detail field in the database.
	FieldDetail = "detail"
	// FieldSearchReference holds the string denoting the search_reference field in the database.
	FieldSearchReference = "search_reference"
	// FieldSearchFee holds the string denoting the search_fee field in the database.
	FieldSearchFee = "search_fee"
	// FieldApprovedAt holds the string denoting the approved_at field in the database.
	FieldApprovedAt = "approved_at"
	// FieldRejectedAt holds the string denoting the rejected_at field in the database.
	FieldRejectedAt = "rejected_at"
	// Table holds the table name of the verificationrecord in the database.
	Table = "verification_records"
)

// Columns holds all SQL columns for verificationrecord fields.
var Columns = []string{
	FieldID,
	FieldCreatedAt,
	FieldUpdatedAt,
	FieldSubjectKind,
	FieldSubjectID,
	FieldStage,
	FieldStageTimestamps,
	FieldExternalResponses,
	FieldDetail,
	FieldSearchReference,
	FieldSearchFee,
	FieldApprovedAt,
	FieldRejectedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
	// SubjectIDValidator is a validator for the "subject_id" field. It is called by the builders before save.
	SubjectIDValidator func(string) error
)

// SubjectKind defines the type for the "subject_kind" enum field.
type SubjectKind string

// SubjectKind values.
const (
	SubjectKindLandowner SubjectKind = "landowner"
	SubjectKindAgent     SubjectKind = "agent"
	SubjectKindPlot      SubjectKind = "plot"
)

func (sk SubjectKind) String() string {
	return string(sk)
}

// SubjectKindValidator is a validator for the "subject_kind" field enum values. It is called by the builders before save.
func SubjectKindValidator(sk SubjectKind) error {
	switch sk {
	case SubjectKindLandowner, SubjectKindAgent, SubjectKindPlot:
		return nil
	default:
		return fmt.Errorf("verificationrecord: invalid enum value for subject_kind field: %q", sk)
	}
}

// Stage defines the type for the "stage" enum field.
type Stage string

// StageDocumentUploaded is the default value of the Stage enum.
const DefaultStage = StageDocumentUploaded

// Stage values.
const (
	StageDocumentUploaded       Stage = "document_uploaded"
	StageAPIVerificationStarted Stage = "api_verification_started"
	StageTitleSearchCompleted   Stage = "title_search_completed"
	StageOwnerVerified          Stage = "owner_verified"
	StageEncumbranceCheck       Stage = "encumbrance_check"
	StageAdminReview            Stage = "admin_review"
	StageChangesRequested       Stage = "changes_requested"
	StageApproved               Stage = "approved"
	StageRejected               Stage = "rejected"
)

func (s Stage) String() string {
	return string(s)
}

// StageValidator is a validator for the "stage" field enum values. It is called by the builders before save.
func StageValidator(s Stage) error {
	switch s {
	case StageDocumentUploaded, StageAPIVerificationStarted, StageTitleSearchCompleted, StageOwnerVerified, StageEncumbranceCheck, StageAdminReview, StageChangesRequested, StageApproved, StageRejected:
		return nil
	default:
		return fmt.Errorf("verificationrecord: invalid enum value for stage field: %q", s)
	}
}

// OrderOption defines the ordering options for the VerificationRecord queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// BySubjectKind orders the results by the subject_kind field.
func BySubjectKind(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSubjectKind, opts...).ToFunc()
}

// BySubjectID orders the results by the subject_id field.
func BySubjectID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSubjectID, opts...).ToFunc()
}

// ByStage orders the results by the stage field.
func ByStage(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStage, opts...).ToFunc()
}

// BySearchReference orders the results by the search_reference field.
func BySearchReference(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSearchReference, opts...).ToFunc()
}

// BySearchFee orders the results by the search_fee field.
func BySearchFee(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSearchFee, opts...).ToFunc()
}

// ByApprovedAt orders the results by the approved_at field.
func ByApprovedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldApprovedAt, opts...).ToFunc()
}

// ByRejectedAt orders the results by the rejected_at field.
func ByRejectedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRejectedAt, opts...).ToFunc()
}
