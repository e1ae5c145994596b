// Code generated by ent, DO NOT EDIT.

package landownerprofile

import (
	"time"

	"agriplot.io/agriplot/ent/predicate"
	"entgo.io/ent/dialect/sql"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.LandownerProfile {
	return predicate.LandownerProfile(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.LandownerProfile {
	return predicate.LandownerProfile(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.LandownerProfile {
	return predicate.LandownerProfile(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.LandownerProfile {
	return predicate.LandownerProfile(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.LandownerProfile {
	return predicate.LandownerProfile(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.LandownerProfile {
	return predicate.LandownerProfile(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.LandownerProfile {
	return predicate.LandownerProfile(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.LandownerProfile {
	return predicate.LandownerProfile(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.LandownerProfile {
	return predicate.LandownerProfile(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.LandownerProfile {
	return predicate.LandownerProfile(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.LandownerProfile {
	return predicate.LandownerProfile(sql.FieldContainsFold(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.LandownerProfile {
	return predicate.LandownerProfile(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.LandownerProfile {
	return predicate.LandownerProfile(sql.FieldEQ(FieldUpdatedAt, v))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v string) predicate.LandownerProfile {
	return predicate.LandownerProfile(sql.FieldEQ(FieldUserID, v))
}

// FullName applies equality check predicate on the "full_name" field. It's identical to FullNameEQ.
func FullName(v string) predicate.LandownerProfile {
	return predicate.LandownerProfile(sql.FieldEQ(FieldFullName, v))
}

// NationalIDNo applies equality check predicate on the "national_id_no" field. It's identical to NationalIDNoEQ.
func NationalIDNo(v string) predicate.LandownerProfile {
	return predicate.LandownerProfile(sql.FieldEQ(FieldNationalIDNo, v))
}

// KraPin applies equality check predicate on the "kra_pin" field. It's identical to KraPinEQ.
func KraPin(v string) predicate.LandownerProfile {
	return predicate.LandownerProfile(sql.FieldEQ(FieldKraPin, v))
}

// Phone applies equality check predicate on the "phone" field. It's identical to PhoneEQ.
func Phone(v string) predicate.LandownerProfile {
	return predicate.LandownerProfile(sql.FieldEQ(FieldPhone, v))
}

// Verified applies equality check predicate on the "verified" field. It's identical to VerifiedEQ.
func Verified(v bool) predicate.LandownerProfile {
	return predicate.LandownerProfile(sql.FieldEQ(FieldVerified, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.LandownerProfile {
	return predicate.LandownerProfile(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.LandownerProfile {
	return predicate.LandownerProfile(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.LandownerProfile {
	return predicate.LandownerProfile(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.LandownerProfile {
	return predicate.LandownerProfile(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.LandownerProfile {
	return predicate.LandownerProfile(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.LandownerProfile {
	return predicate.LandownerProfile(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.LandownerProfile {
	return predicate.LandownerProfile(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.LandownerProfile {
	return predicate.LandownerProfile(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.LandownerProfile {
	return predicate.LandownerProfile(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.LandownerProfile {
	return predicate.LandownerProfile(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.LandownerProfile {
	return predicate.LandownerProfile(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.LandownerProfile {
	return predicate.LandownerProfile(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.LandownerProfile {
	return predicate.LandownerProfile(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.LandownerProfile {
	return predicate.LandownerProfile(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.LandownerProfile {
	return predicate.LandownerProfile(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.LandownerProfile {
	return predicate.LandownerProfile(sql.FieldLTE(FieldUpdatedAt, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v string) predicate.LandownerProfile {
	return predicate.LandownerProfile(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v string) predicate.LandownerProfile {
	return predicate.LandownerProfile(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...string) predicate.LandownerProfile {
	return predicate.LandownerProfile(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...string) predicate.LandownerProfile {
	return predicate.LandownerProfile(sql.FieldNotIn(FieldUserID, vs...))
}

// UserIDGT applies the GT predicate on the "user_id" field.
func UserIDGT(v string) predicate.LandownerProfile {
	return predicate.LandownerProfile(sql.FieldGT(FieldUserID, v))
}

// UserIDGTE applies the GTE predicate on the "user_id" field.
func UserIDGTE(v string) predicate.LandownerProfile {
	return predicate.LandownerProfile(sql.FieldGTE(FieldUserID, v))
}

// UserIDLT applies the LT predicate on the "user_id" field.
func UserIDLT(v string) predicate.LandownerProfile {
	return predicate.LandownerProfile(sql.FieldLT(FieldUserID, v))
}

// UserIDLTE applies the LTE predicate on the "user_id" field.
func UserIDLTE(v string) predicate.LandownerProfile {
	return predicate.LandownerProfile(sql.FieldLTE(FieldUserID, v))
}

// UserIDContains applies the Contains predicate on the "user_id" field.
func UserIDContains(v string) predicate.LandownerProfile {
	return predicate.LandownerProfile(sql.FieldContains(FieldUserID, v))
}

// UserIDHasPrefix applies the HasPrefix predicate on the "user_id" field.
func UserIDHasPrefix(v string) predicate.LandownerProfile {
	return predicate.LandownerProfile(sql.FieldHasPrefix(FieldUserID, v))
}

// UserIDHasSuffix applies the HasSuffix predicate on the "user_id" field.
func UserIDHasSuffix(v string) predicate.LandownerProfile {
	return predicate.LandownerProfile(sql.FieldHasSuffix(FieldUserID, v))
}

// UserIDEqualFold applies the EqualFold predicate on the "user_id" field.
func UserIDEqualFold(v string) predicate.LandownerProfile {
	return predicate.LandownerProfile(sql.FieldEqualFold(FieldUserID, v))
}

// UserIDContainsFold applies the ContainsFold predicate on the "user_id" field.
func UserIDContainsFold(v string) predicate.LandownerProfile {
	return predicate.LandownerProfile(sql.FieldContainsFold(FieldUserID, v))
}

// FullNameEQ applies the EQ predicate on the "full_name" field.
func FullNameEQ(v string) predicate.LandownerProfile {
	return predicate.LandownerProfile(sql.FieldEQ(FieldFullName, v))
}

// FullNameNEQ applies the NEQ predicate on the "full_name" field.
func FullNameNEQ(v string) predicate.LandownerProfile {
	return predicate.LandownerProfile(sql.FieldNEQ(FieldFullName, v))
}

// FullNameIn applies the In predicate on the "full_name" field.
func FullNameIn(vs ...string) predicate.LandownerProfile {
	return predicate.LandownerProfile(sql.FieldIn(FieldFullName, vs...))
}

// FullNameNotIn applies the NotIn predicate on the "full_name" field.
func FullNameNotIn(vs ...string) predicate.LandownerProfile {
	return predicate.LandownerProfile(sql.FieldNotIn(FieldFullName, vs...))
}

// FullNameGT applies the GT predicate on the "full_name" field.
func FullNameGT(v string) predicate.LandownerProfile {
	return predicate.LandownerProfile(sql.FieldGT(FieldFullName, v))
}

// FullNameGTE applies the GTE predicate on the "full_name" field.
func FullNameGTE(v string) predicate.LandownerProfile {
	return predicate.LandownerProfile(sql.FieldGTE(FieldFullName, v))
}

// FullNameLT applies the LT predicate on the "full_name" field.
func FullNameLT(v string) predicate.LandownerProfile {
	return predicate.LandownerProfile(sql.FieldLT(FieldFullName, v))
}

// FullNameLTE applies the LTE predicate on the "full_name" field.
func FullNameLTE(v string) predicate.LandownerProfile {
	return predicate.LandownerProfile(sql.FieldLTE(FieldFullName, v))
}

// FullNameContains applies the Contains predicate on the "full_name" field.
func FullNameContains(v string) predicate.LandownerProfile {
	return predicate.LandownerProfile(sql.FieldContains(FieldFullName, v))
}

// FullNameHasPrefix applies the HasPrefix predicate on the "full_name" field.
func FullNameHasPrefix(v string) predicate.LandownerProfile {
	return predicate.LandownerProfile(sql.FieldHasPrefix(FieldFullName, v))
}

// FullNameHasSuffix applies the HasSuffix predicate on the "full_name" field.
func FullNameHasSuffix(v string) predicate.LandownerProfile {
	return predicate.LandownerProfile(sql.FieldHasSuffix(FieldFullName, v))
}

// FullNameEqualFold applies the EqualFold predicate on the "full_name" field.
func FullNameEqualFold(v string) predicate.LandownerProfile {
	return predicate.LandownerProfile(sql.FieldEqualFold(FieldFullName, v))
}

// FullNameContainsFold applies the ContainsFold predicate on the "full_name" field.
func FullNameContainsFold(v string) predicate.LandownerProfile {
	return predicate.LandownerProfile(sql.FieldContainsFold(FieldFullName, v))
}

// NationalIDNoEQ applies the EQ predicate on the "national_id_no" field.
func NationalIDNoEQ(v string) predicate.LandownerProfile {
	return predicate.LandownerProfile(sql.FieldEQ(FieldNationalIDNo, v))
}

// NationalIDNoNEQ applies the NEQ predicate on the "national_id_no" field.
func NationalIDNoNEQ(v string) predicate.LandownerProfile {
	return predicate.LandownerProfile(sql.FieldNEQ(FieldNationalIDNo, v))
}

// NationalIDNoIn applies the In predicate on the "national_id_no" field.
func NationalIDNoIn(vs ...string) predicate.LandownerProfile {
	return predicate.LandownerProfile(sql.FieldIn(FieldNationalIDNo, vs...))
}

// NationalIDNoNotIn applies the NotIn predicate on the "national_id_no" field.
func NationalIDNoNotIn(vs ...string) predicate.LandownerProfile {
	return predicate.LandownerProfile(sql.FieldNotIn(FieldNationalIDNo, vs...))
}

// NationalIDNoGT applies the GT predicate on the "national_id_no" field.
func NationalIDNoGT(v string) predicate.LandownerProfile {
	return predicate.LandownerProfile(sql.FieldGT(FieldNationalIDNo, v))
}

// NationalIDNoGTE applies the GTE predicate on the "national_id_no" field.
func NationalIDNoGTE(v string) predicate.LandownerProfile {
	return predicate.LandownerProfile(sql.FieldGTE(FieldNationalIDNo, v))
}

// NationalIDNoLT applies the LT predicate on the "national_id_no" field.
func NationalIDNoLT(v string) predicate.LandownerProfile {
	return predicate.LandownerProfile(sql.FieldLT(FieldNationalIDNo, v))
}

// NationalIDNoLTE applies the LTE predicate on the "national_id_no" field.
func NationalIDNoLTE(v string) predicate.LandownerProfile {
	return predicate.LandownerProfile(sql.FieldLTE(FieldNationalIDNo, v))
}

// NationalIDNoContains applies the Contains predicate on the "national_id_no" field.
func NationalIDNoContains(v string) predicate.LandownerProfile {
	return predicate.LandownerProfile(sql.FieldContains(FieldNationalIDNo, v))
}

// NationalIDNoHasPrefix applies the HasPrefix predicate on the "national_id_no" field.
func NationalIDNoHasPrefix(v string) predicate.LandownerProfile {
	return predicate.LandownerProfile(sql.FieldHasPrefix(FieldNationalIDNo, v))
}

// NationalIDNoHasSuffix applies the HasSuffix predicate on the "national_id_no" field.
func NationalIDNoHasSuffix(v string) predicate.LandownerProfile {
	return predicate.LandownerProfile(sql.FieldHasSuffix(FieldNationalIDNo, v))
}

// NationalIDNoIsNil applies the IsNil predicate on the "national_id_no" field.
func NationalIDNoIsNil() predicate.LandownerProfile {
	return predicate.LandownerProfile(sql.FieldIsNull(FieldNationalIDNo))
}

// NationalIDNoNotNil applies the NotNil predicate on the "national_id_no" field.
func NationalIDNoNotNil() predicate.LandownerProfile {
	return predicate.LandownerProfile(sql.FieldNotNull(FieldNationalIDNo))
}

// NationalIDNoEqualFold applies the EqualFold predicate on the "national_id_no" field.
func NationalIDNoEqualFold(v string) predicate.LandownerProfile {
	return predicate.LandownerProfile(sql.FieldEqualFold(FieldNationalIDNo, v))
}

// NationalIDNoContainsFold applies the ContainsFold predicate on the "national_id_no" field.
func NationalIDNoContainsFold(v string) predicate.LandownerProfile {
	return predicate.LandownerProfile(sql.FieldContainsFold(FieldNationalIDNo, v))
}

// KraPinEQ applies the EQ predicate on the "kra_pin" field.
func KraPinEQ(v string) predicate.LandownerProfile {
	return predicate.LandownerProfile(sql.FieldEQ(FieldKraPin, v))
}

// KraPinNEQ applies the NEQ predicate on the "kra_pin" field.
func KraPinNEQ(v string) predicate.LandownerProfile {
	return predicate.LandownerProfile(sql.FieldNEQ(FieldKraPin, v))
}

// KraPinIn applies the In predicate on the "kra_pin" field.
func KraPinIn(vs ...string) predicate.LandownerProfile {
	return predicate.LandownerProfile(sql.FieldIn(FieldKraPin, vs...))
}

// KraPinNotIn applies the NotIn predicate on the "kra_pin" field.
func KraPinNotIn(vs ...string) predicate.LandownerProfile {
	return predicate.LandownerProfile(sql.FieldNotIn(FieldKraPin, vs...))
}

// KraPinGT applies the GT predicate on the "kra_pin" field.
func KraPinGT(v string) predicate.LandownerProfile {
	return predicate.LandownerProfile(sql.FieldGT(FieldKraPin, v))
}

// KraPinGTE applies the GTE predicate on the "kra_pin" field.
func KraPinGTE(v string) predicate.LandownerProfile {
	return predicate.LandownerProfile(sql.FieldGTE(FieldKraPin, v))
}

// KraPinLT applies the LT predicate on the "kra_pin" field.
func KraPinLT(v string) predicate.LandownerProfile {
	return predicate.LandownerProfile(sql.FieldLT(FieldKraPin, v))
}

// KraPinLTE applies the LTE predicate on the "kra_pin" field.
func KraPinLTE(v string) predicate.LandownerProfile {
	return predicate.LandownerProfile(sql.FieldLTE(FieldKraPin, v))
}

// KraPinContains applies the Contains predicate on the "kra_pin" field.
func KraPinContains(v string) predicate.LandownerProfile {
	return predicate.LandownerProfile(sql.FieldContains(FieldKraPin, v))
}

// KraPinHasPrefix applies the HasPrefix predicate on the "kra_pin" field.
func KraPinHasPrefix(v string) predicate.LandownerProfile {
	return predicate.LandownerProfile(sql.FieldHasPrefix(FieldKraPin, v))
}

// KraPinHasSuffix applies the HasSuffix predicate on the "kra_pin" field.
func KraPinHasSuffix(v string) predicate.LandownerProfile {
	return predicate.LandownerProfile(sql.FieldHasSuffix(FieldKraPin, v))
}

// KraPinIsNil applies the IsNil predicate on the "kra_pin" field.
func KraPinIsNil() predicate.LandownerProfile {
	return predicate.LandownerProfile(sql.FieldIsNull(FieldKraPin))
}

// KraPinNotNil applies the NotNil predicate on the "kra_pin" field.
func KraPinNotNil() predicate.LandownerProfile {
	return predicate.LandownerProfile(sql.FieldNotNull(FieldKraPin))
}

// KraPinEqualFold applies the EqualFold predicate on the "kra_pin" field.
func KraPinEqualFold(v string) predicate.LandownerProfile {
	return predicate.LandownerProfile(sql.FieldEqualFold(FieldKraPin, v))
}

// KraPinContainsFold applies the ContainsFold predicate on the "kra_pin" field.
func KraPinContainsFold(v string) predicate.LandownerProfile {
	return predicate.LandownerProfile(sql.FieldContainsFold(FieldKraPin, v))
}

// PhoneEQ applies the EQ predicate on the "phone" field.
func PhoneEQ(v string) predicate.LandownerProfile {
	return predicate.LandownerProfile(sql.FieldEQ(FieldPhone, v))
}

// PhoneNEQ applies the NEQ predicate on the "phone" field.
func PhoneNEQ(v string) predicate.LandownerProfile {
	return predicate.LandownerProfile(sql.FieldNEQ(FieldPhone, v))
}

// PhoneIn applies the In predicate on the "phone" field.
func PhoneIn(vs ...string) predicate.LandownerProfile {
	return predicate.LandownerProfile(sql.FieldIn(FieldPhone, vs...))
}

// PhoneNotIn applies the NotIn predicate on the "phone" field.
func PhoneNotIn(vs ...string) predicate.LandownerProfile {
	return predicate.LandownerProfile(sql.FieldNotIn(FieldPhone, vs...))
}

// PhoneGT applies the GT predicate on the "phone" field.
func PhoneGT(v string) predicate.LandownerProfile {
	return predicate.LandownerProfile(sql.FieldGT(FieldPhone, v))
}

// PhoneGTE applies the GTE predicate on the "phone" field.
func PhoneGTE(v string) predicate.LandownerProfile {
	return predicate.LandownerProfile(sql.FieldGTE(FieldPhone, v))
}

// PhoneLT applies the LT predicate on the "phone" field.
func PhoneLT(v string) predicate.LandownerProfile {
	return predicate.LandownerProfile(sql.FieldLT(FieldPhone, v))
}

// PhoneLTE applies the LTE predicate on the "phone" field.
func PhoneLTE(v string) predicate.LandownerProfile {
	return predicate.LandownerProfile(sql.FieldLTE(FieldPhone, v))
}

// PhoneContains applies the Contains predicate on the "phone" field.
func PhoneContains(v string) predicate.LandownerProfile {
	return predicate.LandownerProfile(sql.FieldContains(FieldPhone, v))
}

// PhoneHasPrefix applies the HasPrefix predicate on the "phone" field.
func PhoneHasPrefix(v string) predicate.LandownerProfile {
	return predicate.LandownerProfile(sql.FieldHasPrefix(FieldPhone, v))
}

// PhoneHasSuffix applies the HasSuffix predicate on the "phone" field.
func PhoneHasSuffix(v string) predicate.LandownerProfile {
	return predicate.LandownerProfile(sql.FieldHasSuffix(FieldPhone, v))
}

// PhoneIsNil applies the IsNil predicate on the "phone" field.
func PhoneIsNil() predicate.LandownerProfile {
	return predicate.LandownerProfile(sql.FieldIsNull(FieldPhone))
}

// PhoneNotNil applies the NotNil predicate on the "phone" field.
func PhoneNotNil() predicate.LandownerProfile {
	return predicate.LandownerProfile(sql.FieldNotNull(FieldPhone))
}

// PhoneEqualFold applies the EqualFold predicate on the "phone" field.
func PhoneEqualFold(v string) predicate.LandownerProfile {
	return predicate.LandownerProfile(sql.FieldEqualFold(FieldPhone, v))
}

// PhoneContainsFold applies the ContainsFold predicate on the "phone" field.
func PhoneContainsFold(v string) predicate.LandownerProfile {
	return predicate.LandownerProfile(sql.FieldContainsFold(FieldPhone, v))
}

// VerifiedEQ applies the EQ predicate on the "verified" field.
func VerifiedEQ(v bool) predicate.LandownerProfile {
	return predicate.LandownerProfile(sql.FieldEQ(FieldVerified, v))
}

// VerifiedNEQ applies the NEQ predicate on the "verified" field.
func VerifiedNEQ(v bool) predicate.LandownerProfile {
	return predicate.LandownerProfile(sql.FieldNEQ(FieldVerified, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.LandownerProfile) predicate.LandownerProfile {
	return predicate.LandownerProfile(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.LandownerProfile) predicate.LandownerProfile {
	return predicate.LandownerProfile(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.LandownerProfile) predicate.LandownerProfile {
	return predicate.LandownerProfile(sql.NotPredicates(p))
}
