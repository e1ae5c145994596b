// Code generated by ent, DO NOT EDIT.

package verificationrecord

import (
	"time"

	"agriplot.io/agriplot/ent/predicate"
	"entgo.io/ent/dialect/sql"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.VerificationRecord {
	return predicate.VerificationRecord(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.VerificationRecord {
	return predicate.VerificationRecord(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.VerificationRecord {
	return predicate.VerificationRecord(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.VerificationRecord {
	return predicate.VerificationRecord(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.VerificationRecord {
	return predicate.VerificationRecord(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.VerificationRecord {
	return predicate.VerificationRecord(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.VerificationRecord {
	return predicate.VerificationRecord(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.VerificationRecord {
	return predicate.VerificationRecord(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.VerificationRecord {
	return predicate.VerificationRecord(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.VerificationRecord {
	return predicate.VerificationRecord(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.VerificationRecord {
	return predicate.VerificationRecord(sql.FieldContainsFold(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.VerificationRecord {
	return predicate.VerificationRecord(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.VerificationRecord {
	return predicate.VerificationRecord(sql.FieldEQ(FieldUpdatedAt, v))
}

// SubjectID applies equality check predicate on the "subject_id" field. It's identical to SubjectIDEQ.
func SubjectID(v string) predicate.VerificationRecord {
	return predicate.VerificationRecord(sql.FieldEQ(FieldSubjectID, v))
}

// SearchReference applies equality check predicate on the "search_reference" field. It's identical to SearchReferenceEQ.
func SearchReference(v string) predicate.VerificationRecord {
	return predicate.VerificationRecord(sql.FieldEQ(FieldSearchReference, v))
}

// SearchFee applies equality check predicate on the "search_fee" field. It's identical to SearchFeeEQ.
func SearchFee(v float64) predicate.VerificationRecord {
	return predicate.VerificationRecord(sql.FieldEQ(FieldSearchFee, v))
}

// ApprovedAt applies equality check predicate on the "approved_at" field. It's identical to ApprovedAtEQ.
func ApprovedAt(v time.Time) predicate.VerificationRecord {
	return predicate.VerificationRecord(sql.FieldEQ(FieldApprovedAt, v))
}

// RejectedAt applies equality check predicate on the "rejected_at" field. It's identical to RejectedAtEQ.
func RejectedAt(v time.Time) predicate.VerificationRecord {
	return predicate.VerificationRecord(sql.FieldEQ(FieldRejectedAt, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.VerificationRecord {
	return predicate.VerificationRecord(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.VerificationRecord {
	return predicate.VerificationRecord(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.VerificationRecord {
	return predicate.VerificationRecord(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.VerificationRecord {
	return predicate.VerificationRecord(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.VerificationRecord {
	return predicate.VerificationRecord(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.VerificationRecord {
	return predicate.VerificationRecord(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.VerificationRecord {
	return predicate.VerificationRecord(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.VerificationRecord {
	return predicate.VerificationRecord(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.VerificationRecord {
	return predicate.VerificationRecord(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.VerificationRecord {
	return predicate.VerificationRecord(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.VerificationRecord {
	return predicate.VerificationRecord(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.VerificationRecord {
	return predicate.VerificationRecord(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.VerificationRecord {
	return predicate.VerificationRecord(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.VerificationRecord {
	return predicate.VerificationRecord(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.VerificationRecord {
	return predicate.VerificationRecord(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.VerificationRecord {
	return predicate.VerificationRecord(sql.FieldLTE(FieldUpdatedAt, v))
}

// SubjectKindEQ applies the EQ predicate on the "subject_kind" field.
func SubjectKindEQ(v SubjectKind) predicate.VerificationRecord {
	return predicate.VerificationRecord(sql.FieldEQ(FieldSubjectKind, v))
}

// SubjectKindNEQ applies the NEQ predicate on the "subject_kind" field.
func SubjectKindNEQ(v SubjectKind) predicate.VerificationRecord {
	return predicate.VerificationRecord(sql.FieldNEQ(FieldSubjectKind, v))
}

// SubjectKindIn applies the In predicate on the "subject_kind" field.
func SubjectKindIn(vs ...SubjectKind) predicate.VerificationRecord {
	return predicate.VerificationRecord(sql.FieldIn(FieldSubjectKind, vs...))
}

// SubjectKindNotIn applies the NotIn predicate on the "subject_kind" field.
func SubjectKindNotIn(vs ...SubjectKind) predicate.VerificationRecord {
	return predicate.VerificationRecord(sql.FieldNotIn(FieldSubjectKind, vs...))
}

// SubjectIDEQ applies the EQ predicate on the "subject_id" field.
func SubjectIDEQ(v string) predicate.VerificationRecord {
	return predicate.VerificationRecord(sql.FieldEQ(FieldSubjectID, v))
}

// SubjectIDNEQ applies the NEQ predicate on the "subject_id" field.
func SubjectIDNEQ(v string) predicate.VerificationRecord {
	return predicate.VerificationRecord(sql.FieldNEQ(FieldSubjectID, v))
}

// SubjectIDIn applies the In predicate on the "subject_id" field.
func SubjectIDIn(vs ...string) predicate.VerificationRecord {
	return predicate.VerificationRecord(sql.FieldIn(FieldSubjectID, vs...))
}

// SubjectIDNotIn applies the NotIn predicate on the "subject_id" field.
func SubjectIDNotIn(vs ...string) predicate.VerificationRecord {
	return predicate.VerificationRecord(sql.FieldNotIn(FieldSubjectID, vs...))
}

// SubjectIDGT applies the GT predicate on the "subject_id" field.
func SubjectIDGT(v string) predicate.VerificationRecord {
	return predicate.VerificationRecord(sql.FieldGT(FieldSubjectID, v))
}

// SubjectIDGTE applies the GTE predicate on the "subject_id" field.
func SubjectIDGTE(v string) predicate.VerificationRecord {
	return predicate.VerificationRecord(sql.FieldGTE(FieldSubjectID, v))
}

// SubjectIDLT applies the LT predicate on the "subject_id" field.
func SubjectIDLT(v string) predicate.VerificationRecord {
	return predicate.VerificationRecord(sql.FieldLT(FieldSubjectID, v))
}

// SubjectIDLTE applies the LTE predicate on the "subject_id" field.
func SubjectIDLTE(v string) predicate.VerificationRecord {
	return predicate.VerificationRecord(sql.FieldLTE(FieldSubjectID, v))
}

// SubjectIDContains applies the Contains predicate on the "subject_id" field.
func SubjectIDContains(v string) predicate.VerificationRecord {
	return predicate.VerificationRecord(sql.FieldContains(FieldSubjectID, v))
}

// SubjectIDHasPrefix applies the HasPrefix predicate on the "subject_id" field.
func SubjectIDHasPrefix(v string) predicate.VerificationRecord {
	return predicate.VerificationRecord(sql.FieldHasPrefix(FieldSubjectID, v))
}

// SubjectIDHasSuffix applies the HasSuffix predicate on the "subject_id" field.
func SubjectIDHasSuffix(v string) predicate.VerificationRecord {
	return predicate.VerificationRecord(sql.FieldHasSuffix(FieldSubjectID, v))
}

// SubjectIDEqualFold applies the EqualFold predicate on the "subject_id" field.
func SubjectIDEqualFold(v string) predicate.VerificationRecord {
	return predicate.VerificationRecord(sql.FieldEqualFold(FieldSubjectID, v))
}

// SubjectIDContainsFold applies the ContainsFold predicate on the "subject_id" field.
func SubjectIDContainsFold(v string) predicate.VerificationRecord {
	return predicate.VerificationRecord(sql.FieldContainsFold(FieldSubjectID, v))
}

// StageEQ applies the EQ predicate on the "stage" field.
func StageEQ(v Stage) predicate.VerificationRecord {
	return predicate.VerificationRecord(sql.FieldEQ(FieldStage, v))
}

// StageNEQ applies the NEQ predicate on the "stage" field.
func StageNEQ(v Stage) predicate.VerificationRecord {
	return predicate.VerificationRecord(sql.FieldNEQ(FieldStage, v))
}

// StageIn applies the In predicate on the "stage" field.
func StageIn(vs ...Stage) predicate.VerificationRecord {
	return predicate.VerificationRecord(sql.FieldIn(FieldStage, vs...))
}

// StageNotIn applies the NotIn predicate on the "stage" field.
func StageNotIn(vs ...Stage) predicate.VerificationRecord {
	return predicate.VerificationRecord(sql.FieldNotIn(FieldStage, vs...))
}

// StageTimestampsIsNil applies the IsNil predicate on the "stage_timestamps" field.
func StageTimestampsIsNil() predicate.VerificationRecord {
	return predicate.VerificationRecord(sql.FieldIsNull(FieldStageTimestamps))
}

// StageTimestampsNotNil applies the NotNil predicate on the "stage_timestamps" field.
func StageTimestampsNotNil() predicate.VerificationRecord {
	return predicate.VerificationRecord(sql.FieldNotNull(FieldStageTimestamps))
}

// ExternalResponsesIsNil applies the IsNil predicate on the "external_responses" field.
func ExternalResponsesIsNil() predicate.VerificationRecord {
	return predicate.VerificationRecord(sql.FieldIsNull(FieldExternalResponses))
}

// ExternalResponsesNotNil applies the NotNil predicate on the "external_responses" field.
func ExternalResponsesNotNil() predicate.VerificationRecord {
	return predicate.VerificationRecord(sql.FieldNotNull(FieldExternalResponses))
}

// DetailIsNil applies the IsNil predicate on the "detail" field.
func DetailIsNil() predicate.VerificationRecord {
	return predicate.VerificationRecord(sql.FieldIsNull(FieldDetail))
}

// DetailNotNil applies the NotNil predicate on the "detail" field.
func DetailNotNil() predicate.VerificationRecord {
	return predicate.VerificationRecord(sql.FieldNotNull(FieldDetail))
}

// SearchReferenceEQ applies the EQ predicate on the "search_reference" field.
func SearchReferenceEQ(v string) predicate.VerificationRecord {
	return predicate.VerificationRecord(sql.FieldEQ(FieldSearchReference, v))
}

// SearchReferenceNEQ applies the NEQ predicate on the "search_reference" field.
func SearchReferenceNEQ(v string) predicate.VerificationRecord {
	return predicate.VerificationRecord(sql.FieldNEQ(FieldSearchReference, v))
}

// SearchReferenceIn applies the In predicate on the "search_reference" field.
func SearchReferenceIn(vs ...string) predicate.VerificationRecord {
	return predicate.VerificationRecord(sql.FieldIn(FieldSearchReference, vs...))
}

// SearchReferenceNotIn applies the NotIn predicate on the "search_reference" field.
func SearchReferenceNotIn(vs ...string) predicate.VerificationRecord {
	return predicate.VerificationRecord(sql.FieldNotIn(FieldSearchReference, vs...))
}

// SearchReferenceGT applies the GT predicate on the "search_reference" field.
func SearchReferenceGT(v string) predicate.VerificationRecord {
	return predicate.VerificationRecord(sql.FieldGT(FieldSearchReference, v))
}

// SearchReferenceGTE applies the GTE predicate on the "search_reference" field.
func SearchReferenceGTE(v string) predicate.VerificationRecord {
	return predicate.VerificationRecord(sql.FieldGTE(FieldSearchReference, v))
}

// SearchReferenceLT applies the LT predicate on the "search_reference" field.
func SearchReferenceLT(v string) predicate.VerificationRecord {
	return predicate.VerificationRecord(sql.FieldLT(FieldSearchReference, v))
}

// SearchReferenceLTE applies the LTE predicate on the "search_reference" field.
func SearchReferenceLTE(v string) predicate.VerificationRecord {
	return predicate.VerificationRecord(sql.FieldLTE(FieldSearchReference, v))
}

// SearchReferenceContains applies the Contains predicate on the "search_reference" field.
func SearchReferenceContains(v string) predicate.VerificationRecord {
	return predicate.VerificationRecord(sql.FieldContains(FieldSearchReference, v))
}

// SearchReferenceHasPrefix applies the HasPrefix predicate on the "search_reference" field.
func SearchReferenceHasPrefix(v string) predicate.VerificationRecord {
	return predicate.VerificationRecord(sql.FieldHasPrefix(FieldSearchReference, v))
}

// SearchReferenceHasSuffix applies the HasSuffix predicate on the "search_reference" field.
func SearchReferenceHasSuffix(v string) predicate.VerificationRecord {
	return predicate.VerificationRecord(sql.FieldHasSuffix(FieldSearchReference, v))
}

// SearchReferenceIsNil applies the IsNil predicate on the "search_reference" field.
func SearchReferenceIsNil() predicate.VerificationRecord {
	return predicate.VerificationRecord(sql.FieldIsNull(FieldSearchReference))
}

// SearchReferenceNotNil applies the NotNil predicate on the "search_reference" field.
func SearchReferenceNotNil() predicate.VerificationRecord {
	return predicate.VerificationRecord(sql.FieldNotNull(FieldSearchReference))
}

// SearchReferenceEqualFold applies the EqualFold predicate on the "search_reference" field.
func SearchReferenceEqualFold(v string) predicate.VerificationRecord {
	return predicate.VerificationRecord(sql.FieldEqualFold(FieldSearchReference, v))
}

// SearchReferenceContainsFold applies the ContainsFold predicate on the "search_reference" field.
func SearchReferenceContainsFold(v string) predicate.VerificationRecord {
	return predicate.VerificationRecord(sql.FieldContainsFold(FieldSearchReference, v))
}

// SearchFeeEQ applies the EQ predicate on the "search_fee" field.
func SearchFeeEQ(v float64) predicate.VerificationRecord {
	return predicate.VerificationRecord(sql.FieldEQ(FieldSearchFee, v))
}

// SearchFeeNEQ applies the NEQ predicate on the "search_fee" field.
func SearchFeeNEQ(v float64) predicate.VerificationRecord {
	return predicate.VerificationRecord(sql.FieldNEQ(FieldSearchFee, v))
}

// SearchFeeIn applies the In predicate on the "search_fee" field.
func SearchFeeIn(vs ...float64) predicate.VerificationRecord {
	return predicate.VerificationRecord(sql.FieldIn(FieldSearchFee, vs...))
}

// SearchFeeNotIn applies the NotIn predicate on the "search_fee" field.
func SearchFeeNotIn(vs ...float64) predicate.VerificationRecord {
	return predicate.VerificationRecord(sql.FieldNotIn(FieldSearchFee, vs...))
}

// SearchFeeGT applies the GT predicate on the "search_fee" field.
func SearchFeeGT(v float64) predicate.VerificationRecord {
	return predicate.VerificationRecord(sql.FieldGT(FieldSearchFee, v))
}

// SearchFeeGTE applies the GTE predicate on the "search_fee" field.
func SearchFeeGTE(v float64) predicate.VerificationRecord {
	return predicate.VerificationRecord(sql.FieldGTE(FieldSearchFee, v))
}

// SearchFeeLT applies the LT predicate on the "search_fee" field.
func SearchFeeLT(v float64) predicate.VerificationRecord {
	return predicate.VerificationRecord(sql.FieldLT(FieldSearchFee, v))
}

// SearchFeeLTE applies the LTE predicate on the "search_fee" field.
func SearchFeeLTE(v float64) predicate.VerificationRecord {
	return predicate.VerificationRecord(sql.FieldLTE(FieldSearchFee, v))
}

// SearchFeeIsNil applies the IsNil predicate on the "search_fee" field.
func SearchFeeIsNil() predicate.VerificationRecord {
	return predicate.VerificationRecord(sql.FieldIsNull(FieldSearchFee))
}

// SearchFeeNotNil applies the NotNil predicate on the "search_fee" field.
func SearchFeeNotNil() predicate.VerificationRecord {
	return predicate.VerificationRecord(sql.FieldNotNull(FieldSearchFee))
}

// ApprovedAtEQ applies the EQ predicate on the "approved_at" field.
func ApprovedAtEQ(v time.Time) predicate.VerificationRecord {
	return predicate.VerificationRecord(sql.FieldEQ(FieldApprovedAt, v))
}

// ApprovedAtNEQ applies the NEQ predicate on the "approved_at" field.
func ApprovedAtNEQ(v time.Time) predicate.VerificationRecord {
	return predicate.VerificationRecord(sql.FieldNEQ(FieldApprovedAt, v))
}

// ApprovedAtIn applies the In predicate on the "approved_at" field.
func ApprovedAtIn(vs ...time.Time) predicate.VerificationRecord {
	return predicate.VerificationRecord(sql.FieldIn(FieldApprovedAt, vs...))
}

// ApprovedAtNotIn applies the NotIn predicate on the "approved_at" field.
func ApprovedAtNotIn(vs ...time.Time) predicate.VerificationRecord {
	return predicate.VerificationRecord(sql.FieldNotIn(FieldApprovedAt, vs...))
}

// ApprovedAtGT applies the GT predicate on the "approved_at" field.
func ApprovedAtGT(v time.Time) predicate.VerificationRecord {
	return predicate.VerificationRecord(sql.FieldGT(FieldApprovedAt, v))
}

// ApprovedAtGTE applies the GTE predicate on the "approved_at" field.
func ApprovedAtGTE(v time.Time) predicate.VerificationRecord {
	return predicate.VerificationRecord(sql.FieldGTE(FieldApprovedAt, v))
}

// ApprovedAtLT applies the LT predicate on the "approved_at" field.
func ApprovedAtLT(v time.Time) predicate.VerificationRecord {
	return predicate.VerificationRecord(sql.FieldLT(FieldApprovedAt, v))
}

// ApprovedAtLTE applies the LTE predicate on the "approved_at" field.
func ApprovedAtLTE(v time.Time) predicate.VerificationRecord {
	return predicate.VerificationRecord(sql.FieldLTE(FieldApprovedAt, v))
}

// ApprovedAtIsNil applies the IsNil predicate on the "approved_at" field.
func ApprovedAtIsNil() predicate.VerificationRecord {
	return predicate.VerificationRecord(sql.FieldIsNull(FieldApprovedAt))
}

// ApprovedAtNotNil applies the NotNil predicate on the "approved_at" field.
func ApprovedAtNotNil() predicate.VerificationRecord {
	return predicate.VerificationRecord(sql.FieldNotNull(FieldApprovedAt))
}

// RejectedAtEQ applies the EQ predicate on the "rejected_at" field.
func RejectedAtEQ(v time.Time) predicate.VerificationRecord {
	return predicate.VerificationRecord(sql.FieldEQ(FieldRejectedAt, v))
}

// RejectedAtNEQ applies the NEQ predicate on the "rejected_at" field.
func RejectedAtNEQ(v time.Time) predicate.VerificationRecord {
	return predicate.VerificationRecord(sql.FieldNEQ(FieldRejectedAt, v))
}

// RejectedAtIn applies the In predicate on the "rejected_at" field.
func RejectedAtIn(vs ...time.Time) predicate.VerificationRecord {
	return predicate.VerificationRecord(sql.FieldIn(FieldRejectedAt, vs...))
}

// RejectedAtNotIn applies the NotIn predicate on the "rejected_at" field.
func RejectedAtNotIn(vs ...time.Time) predicate.VerificationRecord {
	return predicate.VerificationRecord(sql.FieldNotIn(FieldRejectedAt, vs...))
}

// RejectedAtGT applies the GT predicate on the "rejected_at" field.
func RejectedAtGT(v time.Time) predicate.VerificationRecord {
	return predicate.VerificationRecord(sql.FieldGT(FieldRejectedAt, v))
}

// RejectedAtGTE applies the GTE predicate on the "rejected_at" field.
func RejectedAtGTE(v time.Time) predicate.VerificationRecord {
	return predicate.VerificationRecord(sql.FieldGTE(FieldRejectedAt, v))
}

// RejectedAtLT applies the LT predicate on the "rejected_at" field.
func RejectedAtLT(v time.Time) predicate.VerificationRecord {
	return predicate.VerificationRecord(sql.FieldLT(FieldRejectedAt, v))
}

// RejectedAtLTE applies the LTE predicate on the "rejected_at" field.
func RejectedAtLTE(v time.Time) predicate.VerificationRecord {
	return predicate.VerificationRecord(sql.FieldLTE(FieldRejectedAt, v))
}

// RejectedAtIsNil applies the IsNil predicate on the "rejected_at" field.
func RejectedAtIsNil() predicate.VerificationRecord {
	return predicate.VerificationRecord(sql.FieldIsNull(FieldRejectedAt))
}

// RejectedAtNotNil applies the NotNil predicate on the "rejected_at" field.
func RejectedAtNotNil() predicate.VerificationRecord {
	return predicate.VerificationRecord(sql.FieldNotNull(FieldRejectedAt))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.VerificationRecord) predicate.VerificationRecord {
	return predicate.VerificationRecord(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.VerificationRecord) predicate.VerificationRecord {
	return predicate.VerificationRecord(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.VerificationRecord) predicate.VerificationRecord {
	return predicate.VerificationRecord(sql.NotPredicates(p))
}
