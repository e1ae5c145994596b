// Code generated by ent, DO NOT EDIT.

package verificationlogentry

import (
	"time"

	"agriplot.io/agriplot/ent/predicate"
	"entgo.io/ent/dialect/sql"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.VerificationLogEntry {
	return predicate.VerificationLogEntry(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.VerificationLogEntry {
	return predicate.VerificationLogEntry(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.VerificationLogEntry {
	return predicate.VerificationLogEntry(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.VerificationLogEntry {
	return predicate.VerificationLogEntry(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.VerificationLogEntry {
	return predicate.VerificationLogEntry(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.VerificationLogEntry {
	return predicate.VerificationLogEntry(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.VerificationLogEntry {
	return predicate.VerificationLogEntry(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.VerificationLogEntry {
	return predicate.VerificationLogEntry(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.VerificationLogEntry {
	return predicate.VerificationLogEntry(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.VerificationLogEntry {
	return predicate.VerificationLogEntry(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.VerificationLogEntry {
	return predicate.VerificationLogEntry(sql.FieldContainsFold(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.VerificationLogEntry {
	return predicate.VerificationLogEntry(sql.FieldEQ(FieldCreatedAt, v))
}

// Action applies equality check predicate on the "action" field. It's identical to ActionEQ.
func Action(v string) predicate.VerificationLogEntry {
	return predicate.VerificationLogEntry(sql.FieldEQ(FieldAction, v))
}

// SubjectKind applies equality check predicate on the "subject_kind" field. It's identical to SubjectKindEQ.
func SubjectKind(v string) predicate.VerificationLogEntry {
	return predicate.VerificationLogEntry(sql.FieldEQ(FieldSubjectKind, v))
}

// SubjectID applies equality check predicate on the "subject_id" field. It's identical to SubjectIDEQ.
func SubjectID(v string) predicate.VerificationLogEntry {
	return predicate.VerificationLogEntry(sql.FieldEQ(FieldSubjectID, v))
}

// Actor applies equality check predicate on the "actor" field. It's identical to ActorEQ.
func Actor(v string) predicate.VerificationLogEntry {
	return predicate.VerificationLogEntry(sql.FieldEQ(FieldActor, v))
}

// Comment applies equality check predicate on the "comment" field. It's identical to CommentEQ.
func Comment(v string) predicate.VerificationLogEntry {
	return predicate.VerificationLogEntry(sql.FieldEQ(FieldComment, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.VerificationLogEntry {
	return predicate.VerificationLogEntry(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.VerificationLogEntry {
	return predicate.VerificationLogEntry(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.VerificationLogEntry {
	return predicate.VerificationLogEntry(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.VerificationLogEntry {
	return predicate.VerificationLogEntry(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.VerificationLogEntry {
	return predicate.VerificationLogEntry(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.VerificationLogEntry {
	return predicate.VerificationLogEntry(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.VerificationLogEntry {
	return predicate.VerificationLogEntry(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.VerificationLogEntry {
	return predicate.VerificationLogEntry(sql.FieldLTE(FieldCreatedAt, v))
}

// ActionEQ applies the EQ predicate on the "action" field.
func ActionEQ(v string) predicate.VerificationLogEntry {
	return predicate.VerificationLogEntry(sql.FieldEQ(FieldAction, v))
}

// ActionNEQ applies the NEQ predicate on the "action" field.
func ActionNEQ(v string) predicate.VerificationLogEntry {
	return predicate.VerificationLogEntry(sql.FieldNEQ(FieldAction, v))
}

// ActionIn applies the In predicate on the "action" field.
func ActionIn(vs ...string) predicate.VerificationLogEntry {
	return predicate.VerificationLogEntry(sql.FieldIn(FieldAction, vs...))
}

// ActionNotIn applies the NotIn predicate on the "action" field.
func ActionNotIn(vs ...string) predicate.VerificationLogEntry {
	return predicate.VerificationLogEntry(sql.FieldNotIn(FieldAction, vs...))
}

// ActionGT applies the GT predicate on the "action" field.
func ActionGT(v string) predicate.VerificationLogEntry {
	return predicate.VerificationLogEntry(sql.FieldGT(FieldAction, v))
}

// ActionGTE applies the GTE predicate on the "action" field.
func ActionGTE(v string) predicate.VerificationLogEntry {
	return predicate.VerificationLogEntry(sql.FieldGTE(FieldAction, v))
}

// ActionLT applies the LT predicate on the "action" field.
func ActionLT(v string) predicate.VerificationLogEntry {
	return predicate.VerificationLogEntry(sql.FieldLT(FieldAction, v))
}

// ActionLTE applies the LTE predicate on the "action" field.
func ActionLTE(v string) predicate.VerificationLogEntry {
	return predicate.VerificationLogEntry(sql.FieldLTE(FieldAction, v))
}

// ActionContains applies the Contains predicate on the "action" field.
func ActionContains(v string) predicate.VerificationLogEntry {
	return predicate.VerificationLogEntry(sql.FieldContains(FieldAction, v))
}

// ActionHasPrefix applies the HasPrefix predicate on the "action" field.
func ActionHasPrefix(v string) predicate.VerificationLogEntry {
	return predicate.VerificationLogEntry(sql.FieldHasPrefix(FieldAction, v))
}

// ActionHasSuffix applies the HasSuffix predicate on the "action" field.
func ActionHasSuffix(v string) predicate.VerificationLogEntry {
	return predicate.VerificationLogEntry(sql.FieldHasSuffix(FieldAction, v))
}

// ActionEqualFold applies the EqualFold predicate on the "action" field.
func ActionEqualFold(v string) predicate.VerificationLogEntry {
	return predicate.VerificationLogEntry(sql.FieldEqualFold(FieldAction, v))
}

// ActionContainsFold applies the ContainsFold predicate on the "action" field.
func ActionContainsFold(v string) predicate.VerificationLogEntry {
	return predicate.VerificationLogEntry(sql.FieldContainsFold(FieldAction, v))
}

// SubjectKindEQ applies the EQ predicate on the "subject_kind" field.
func SubjectKindEQ(v string) predicate.VerificationLogEntry {
	return predicate.VerificationLogEntry(sql.FieldEQ(FieldSubjectKind, v))
}

// SubjectKindNEQ applies the NEQ predicate on the "subject_kind" field.
func SubjectKindNEQ(v string) predicate.VerificationLogEntry {
	return predicate.VerificationLogEntry(sql.FieldNEQ(FieldSubjectKind, v))
}

// SubjectKindIn applies the In predicate on the "subject_kind" field.
func SubjectKindIn(vs ...string) predicate.VerificationLogEntry {
	return predicate.VerificationLogEntry(sql.FieldIn(FieldSubjectKind, vs...))
}

// SubjectKindNotIn applies the NotIn predicate on the "subject_kind" field.
func SubjectKindNotIn(vs ...string) predicate.VerificationLogEntry {
	return predicate.VerificationLogEntry(sql.FieldNotIn(FieldSubjectKind, vs...))
}

// SubjectKindGT applies the GT predicate on the "subject_kind" field.
func SubjectKindGT(v string) predicate.VerificationLogEntry {
	return predicate.VerificationLogEntry(sql.FieldGT(FieldSubjectKind, v))
}

// SubjectKindGTE applies the GTE predicate on the "subject_kind" field.
func SubjectKindGTE(v string) predicate.VerificationLogEntry {
	return predicate.VerificationLogEntry(sql.FieldGTE(FieldSubjectKind, v))
}

// SubjectKindLT applies the LT predicate on the "subject_kind" field.
func SubjectKindLT(v string) predicate.VerificationLogEntry {
	return predicate.VerificationLogEntry(sql.FieldLT(FieldSubjectKind, v))
}

// SubjectKindLTE applies the LTE predicate on the "subject_kind" field.
func SubjectKindLTE(v string) predicate.VerificationLogEntry {
	return predicate.VerificationLogEntry(sql.FieldLTE(FieldSubjectKind, v))
}

// SubjectKindContains applies the Contains predicate on the "subject_kind" field.
func SubjectKindContains(v string) predicate.VerificationLogEntry {
	return predicate.VerificationLogEntry(sql.FieldContains(FieldSubjectKind, v))
}

// SubjectKindHasPrefix applies the HasPrefix predicate on the "subject_kind" field.
func SubjectKindHasPrefix(v string) predicate.VerificationLogEntry {
	return predicate.VerificationLogEntry(sql.FieldHasPrefix(FieldSubjectKind, v))
}

// SubjectKindHasSuffix applies the HasSuffix predicate on the "subject_kind" field.
func SubjectKindHasSuffix(v string) predicate.VerificationLogEntry {
	return predicate.VerificationLogEntry(sql.FieldHasSuffix(FieldSubjectKind, v))
}

// SubjectKindEqualFold applies the EqualFold predicate on the "subject_kind" field.
func SubjectKindEqualFold(v string) predicate.VerificationLogEntry {
	return predicate.VerificationLogEntry(sql.FieldEqualFold(FieldSubjectKind, v))
}

// SubjectKindContainsFold applies the ContainsFold predicate on the "subject_kind" field.
func SubjectKindContainsFold(v string) predicate.VerificationLogEntry {
	return predicate.VerificationLogEntry(sql.FieldContainsFold(FieldSubjectKind, v))
}

// SubjectIDEQ applies the EQ predicate on the "subject_id" field.
func SubjectIDEQ(v string) predicate.VerificationLogEntry {
	return predicate.VerificationLogEntry(sql.FieldEQ(FieldSubjectID, v))
}

// SubjectIDNEQ applies the NEQ predicate on the "subject_id" field.
func SubjectIDNEQ(v string) predicate.VerificationLogEntry {
	return predicate.VerificationLogEntry(sql.FieldNEQ(FieldSubjectID, v))
}

// SubjectIDIn applies the In predicate on the "subject_id" field.
func SubjectIDIn(vs ...string) predicate.VerificationLogEntry {
	return predicate.VerificationLogEntry(sql.FieldIn(FieldSubjectID, vs...))
}

// SubjectIDNotIn applies the NotIn predicate on the "subject_id" field.
func SubjectIDNotIn(vs ...string) predicate.VerificationLogEntry {
	return predicate.VerificationLogEntry(sql.FieldNotIn(FieldSubjectID, vs...))
}

// SubjectIDGT applies the GT predicate on the "subject_id" field.
func SubjectIDGT(v string) predicate.VerificationLogEntry {
	return predicate.VerificationLogEntry(sql.FieldGT(FieldSubjectID, v))
}

// SubjectIDGTE applies the GTE predicate on the "subject_id" field.
func SubjectIDGTE(v string) predicate.VerificationLogEntry {
	return predicate.VerificationLogEntry(sql.FieldGTE(FieldSubjectID, v))
}

// SubjectIDLT applies the LT predicate on the "subject_id" field.
func SubjectIDLT(v string) predicate.VerificationLogEntry {
	return predicate.VerificationLogEntry(sql.FieldLT(FieldSubjectID, v))
}

// SubjectIDLTE applies the LTE predicate on the "subject_id" field.
func SubjectIDLTE(v string) predicate.VerificationLogEntry {
	return predicate.VerificationLogEntry(sql.FieldLTE(FieldSubjectID, v))
}

// SubjectIDContains applies the Contains predicate on the "subject_id" field.
func SubjectIDContains(v string) predicate.VerificationLogEntry {
	return predicate.VerificationLogEntry(sql.FieldContains(FieldSubjectID, v))
}

// SubjectIDHasPrefix applies the HasPrefix predicate on the "subject_id" field.
func SubjectIDHasPrefix(v string) predicate.VerificationLogEntry {
	return predicate.VerificationLogEntry(sql.FieldHasPrefix(FieldSubjectID, v))
}

// SubjectIDHasSuffix applies the HasSuffix predicate on the "subject_id" field.
func SubjectIDHasSuffix(v string) predicate.VerificationLogEntry {
	return predicate.VerificationLogEntry(sql.FieldHasSuffix(FieldSubjectID, v))
}

// SubjectIDEqualFold applies the EqualFold predicate on the "subject_id" field.
func SubjectIDEqualFold(v string) predicate.VerificationLogEntry {
	return predicate.VerificationLogEntry(sql.FieldEqualFold(FieldSubjectID, v))
}

// SubjectIDContainsFold applies the ContainsFold predicate on the "subject_id" field.
func SubjectIDContainsFold(v string) predicate.VerificationLogEntry {
	return predicate.VerificationLogEntry(sql.FieldContainsFold(FieldSubjectID, v))
}

// ActorEQ applies the EQ predicate on the "actor" field.
func ActorEQ(v string) predicate.VerificationLogEntry {
	return predicate.VerificationLogEntry(sql.FieldEQ(FieldActor, v))
}

// ActorNEQ applies the NEQ predicate on the "actor" field.
func ActorNEQ(v string) predicate.VerificationLogEntry {
	return predicate.VerificationLogEntry(sql.FieldNEQ(FieldActor, v))
}

// ActorIn applies the In predicate on the "actor" field.
func ActorIn(vs ...string) predicate.VerificationLogEntry {
	return predicate.VerificationLogEntry(sql.FieldIn(FieldActor, vs...))
}

// ActorNotIn applies the NotIn predicate on the "actor" field.
func ActorNotIn(vs ...string) predicate.VerificationLogEntry {
	return predicate.VerificationLogEntry(sql.FieldNotIn(FieldActor, vs...))
}

// ActorGT applies the GT predicate on the "actor" field.
func ActorGT(v string) predicate.VerificationLogEntry {
	return predicate.VerificationLogEntry(sql.FieldGT(FieldActor, v))
}

// ActorGTE applies the GTE predicate on the "actor" field.
func ActorGTE(v string) predicate.VerificationLogEntry {
	return predicate.VerificationLogEntry(sql.FieldGTE(FieldActor, v))
}

// ActorLT applies the LT predicate on the "actor" field.
func ActorLT(v string) predicate.VerificationLogEntry {
	return predicate.VerificationLogEntry(sql.FieldLT(FieldActor, v))
}

// ActorLTE applies the LTE predicate on the "actor" field.
func ActorLTE(v string) predicate.VerificationLogEntry {
	return predicate.VerificationLogEntry(sql.FieldLTE(FieldActor, v))
}

// ActorContains applies the Contains predicate on the "actor" field.
func ActorContains(v string) predicate.VerificationLogEntry {
	return predicate.VerificationLogEntry(sql.FieldContains(FieldActor, v))
}

// ActorHasPrefix applies the HasPrefix predicate on the "actor" field.
func ActorHasPrefix(v string) predicate.VerificationLogEntry {
	return predicate.VerificationLogEntry(sql.FieldHasPrefix(FieldActor, v))
}

// ActorHasSuffix applies the HasSuffix predicate on the "actor" field.
func ActorHasSuffix(v string) predicate.VerificationLogEntry {
	return predicate.VerificationLogEntry(sql.FieldHasSuffix(FieldActor, v))
}

// ActorEqualFold applies the EqualFold predicate on the "actor" field.
func ActorEqualFold(v string) predicate.VerificationLogEntry {
	return predicate.VerificationLogEntry(sql.FieldEqualFold(FieldActor, v))
}

// ActorContainsFold applies the ContainsFold predicate on the "actor" field.
func ActorContainsFold(v string) predicate.VerificationLogEntry {
	return predicate.VerificationLogEntry(sql.FieldContainsFold(FieldActor, v))
}

// CommentEQ applies the EQ predicate on the "comment" field.
func CommentEQ(v string) predicate.VerificationLogEntry {
	return predicate.VerificationLogEntry(sql.FieldEQ(FieldComment, v))
}

// CommentNEQ applies the NEQ predicate on the "comment" field.
func CommentNEQ(v string) predicate.VerificationLogEntry {
	return predicate.VerificationLogEntry(sql.FieldNEQ(FieldComment, v))
}

// CommentIn applies the In predicate on the "comment" field.
func CommentIn(vs ...string) predicate.VerificationLogEntry {
	return predicate.VerificationLogEntry(sql.FieldIn(FieldComment, vs...))
}

// CommentNotIn applies the NotIn predicate on the "comment" field.
func CommentNotIn(vs ...string) predicate.VerificationLogEntry {
	return predicate.VerificationLogEntry(sql.FieldNotIn(FieldComment, vs...))
}

// CommentGT applies the GT predicate on the "comment" field.
func CommentGT(v string) predicate.VerificationLogEntry {
	return predicate.VerificationLogEntry(sql.FieldGT(FieldComment, v))
}

// CommentGTE applies the GTE predicate on the "comment" field.
func CommentGTE(v string) predicate.VerificationLogEntry {
	return predicate.VerificationLogEntry(sql.FieldGTE(FieldComment, v))
}

// CommentLT applies the LT predicate on the "comment" field.
func CommentLT(v string) predicate.VerificationLogEntry {
	return predicate.VerificationLogEntry(sql.FieldLT(FieldComment, v))
}

// CommentLTE applies the LTE predicate on the "comment" field.
func CommentLTE(v string) predicate.VerificationLogEntry {
	return predicate.VerificationLogEntry(sql.FieldLTE(FieldComment, v))
}

// CommentContains applies the Contains predicate on the "comment" field.
func CommentContains(v string) predicate.VerificationLogEntry {
	return predicate.VerificationLogEntry(sql.FieldContains(FieldComment, v))
}

// CommentHasPrefix applies the HasPrefix predicate on the "comment" field.
func CommentHasPrefix(v string) predicate.VerificationLogEntry {
	return predicate.VerificationLogEntry(sql.FieldHasPrefix(FieldComment, v))
}

// CommentHasSuffix applies the HasSuffix predicate on the "comment" field.
func CommentHasSuffix(v string) predicate.VerificationLogEntry {
	return predicate.VerificationLogEntry(sql.FieldHasSuffix(FieldComment, v))
}

// CommentIsNil applies the IsNil predicate on the "comment" field.
func CommentIsNil() predicate.VerificationLogEntry {
	return predicate.VerificationLogEntry(sql.FieldIsNull(FieldComment))
}

// CommentNotNil applies the NotNil predicate on the "comment" field.
func CommentNotNil() predicate.VerificationLogEntry {
	return predicate.VerificationLogEntry(sql.FieldNotNull(FieldComment))
}

// CommentEqualFold applies the EqualFold predicate on the "comment" field.
func CommentEqualFold(v string) predicate.VerificationLogEntry {
	return predicate.VerificationLogEntry(sql.FieldEqualFold(FieldComment, v))
}

// CommentContainsFold applies the ContainsFold predicate on the "comment" field.
func CommentContainsFold(v string) predicate.VerificationLogEntry {
	return predicate.VerificationLogEntry(sql.FieldContainsFold(FieldComment, v))
}

// DetailsIsNil applies the IsNil predicate on the "details" field.
func DetailsIsNil() predicate.VerificationLogEntry {
	return predicate.VerificationLogEntry(sql.FieldIsNull(FieldDetails))
}

// DetailsNotNil applies the NotNil predicate on the "details" field.
func DetailsNotNil() predicate.VerificationLogEntry {
	return predicate.VerificationLogEntry(sql.FieldNotNull(FieldDetails))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.VerificationLogEntry) predicate.VerificationLogEntry {
	return predicate.VerificationLogEntry(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.VerificationLogEntry) predicate.VerificationLogEntry {
	return predicate.VerificationLogEntry(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.VerificationLogEntry) predicate.VerificationLogEntry {
	return predicate.VerificationLogEntry(sql.NotPredicates(p))
}
