// Code generated by ent, DO NOT EDIT.

package plot

import (
	"time"

	"agriplot.io/agriplot/ent/predicate"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.Plot {
	return predicate.Plot(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.Plot {
	return predicate.Plot(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.Plot {
	return predicate.Plot(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.Plot {
	return predicate.Plot(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.Plot {
	return predicate.Plot(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.Plot {
	return predicate.Plot(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.Plot {
	return predicate.Plot(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.Plot {
	return predicate.Plot(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.Plot {
	return predicate.Plot(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.Plot {
	return predicate.Plot(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.Plot {
	return predicate.Plot(sql.FieldContainsFold(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Plot {
	return predicate.Plot(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Plot {
	return predicate.Plot(sql.FieldEQ(FieldUpdatedAt, v))
}

// Title applies equality check predicate on the "title" field. It's identical to TitleEQ.
func Title(v string) predicate.Plot {
	return predicate.Plot(sql.FieldEQ(FieldTitle, v))
}

// Location applies equality check predicate on the "location" field. It's identical to LocationEQ.
func Location(v string) predicate.Plot {
	return predicate.Plot(sql.FieldEQ(FieldLocation, v))
}

// Area applies equality check predicate on the "area" field. It's identical to AreaEQ.
func Area(v float64) predicate.Plot {
	return predicate.Plot(sql.FieldEQ(FieldArea, v))
}

// Price applies equality check predicate on the "price" field. It's identical to PriceEQ.
func Price(v float64) predicate.Plot {
	return predicate.Plot(sql.FieldEQ(FieldPrice, v))
}

// LandownerID applies equality check predicate on the "landowner_id" field. It's identical to LandownerIDEQ.
func LandownerID(v string) predicate.Plot {
	return predicate.Plot(sql.FieldEQ(FieldLandownerID, v))
}

// AgentID applies equality check predicate on the "agent_id" field. It's identical to AgentIDEQ.
func AgentID(v string) predicate.Plot {
	return predicate.Plot(sql.FieldEQ(FieldAgentID, v))
}

// ParcelNumber applies equality check predicate on the "parcel_number" field. It's identical to ParcelNumberEQ.
func ParcelNumber(v string) predicate.Plot {
	return predicate.Plot(sql.FieldEQ(FieldParcelNumber, v))
}

// SoilType applies equality check predicate on the "soil_type" field. It's identical to SoilTypeEQ.
func SoilType(v string) predicate.Plot {
	return predicate.Plot(sql.FieldEQ(FieldSoilType, v))
}

// Listed applies equality check predicate on the "listed" field. It's identical to ListedEQ.
func Listed(v bool) predicate.Plot {
	return predicate.Plot(sql.FieldEQ(FieldListed, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Plot {
	return predicate.Plot(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Plot {
	return predicate.Plot(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Plot {
	return predicate.Plot(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Plot {
	return predicate.Plot(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Plot {
	return predicate.Plot(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Plot {
	return predicate.Plot(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Plot {
	return predicate.Plot(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Plot {
	return predicate.Plot(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Plot {
	return predicate.Plot(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Plot {
	return predicate.Plot(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Plot {
	return predicate.Plot(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Plot {
	return predicate.Plot(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Plot {
	return predicate.Plot(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Plot {
	return predicate.Plot(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Plot {
	return predicate.Plot(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Plot {
	return predicate.Plot(sql.FieldLTE(FieldUpdatedAt, v))
}

// TitleEQ applies the EQ predicate on the "title" field.
func TitleEQ(v string) predicate.Plot {
	return predicate.Plot(sql.FieldEQ(FieldTitle, v))
}

// TitleNEQ applies the NEQ predicate on the "title" field.
func TitleNEQ(v string) predicate.Plot {
	return predicate.Plot(sql.FieldNEQ(FieldTitle, v))
}

// TitleIn applies the In predicate on the "title" field.
func TitleIn(vs ...string) predicate.Plot {
	return predicate.Plot(sql.FieldIn(FieldTitle, vs...))
}

// TitleNotIn applies the NotIn predicate on the "title" field.
func TitleNotIn(vs ...string) predicate.Plot {
	return predicate.Plot(sql.FieldNotIn(FieldTitle, vs...))
}

// TitleGT applies the GT predicate on the "title" field.
func TitleGT(v string) predicate.Plot {
	return predicate.Plot(sql.FieldGT(FieldTitle, v))
}

// TitleGTE applies the GTE predicate on the "title" field.
func TitleGTE(v string) predicate.Plot {
	return predicate.Plot(sql.FieldGTE(FieldTitle, v))
}

// TitleLT applies the LT predicate on the "title" field.
func TitleLT(v string) predicate.Plot {
	return predicate.Plot(sql.FieldLT(FieldTitle, v))
}

// TitleLTE applies the LTE predicate on the "title" field.
func TitleLTE(v string) predicate.Plot {
	return predicate.Plot(sql.FieldLTE(FieldTitle, v))
}

// TitleContains applies the Contains predicate on the "title" field.
func TitleContains(v string) predicate.Plot {
	return predicate.Plot(sql.FieldContains(FieldTitle, v))
}

// TitleHasPrefix applies the HasPrefix predicate on the "title" field.
func TitleHasPrefix(v string) predicate.Plot {
	return predicate.Plot(sql.FieldHasPrefix(FieldTitle, v))
}

// TitleHasSuffix applies the HasSuffix predicate on the "title" field.
func TitleHasSuffix(v string) predicate.Plot {
	return predicate.Plot(sql.FieldHasSuffix(FieldTitle, v))
}

// TitleEqualFold applies the EqualFold predicate on the "title" field.
func TitleEqualFold(v string) predicate.Plot {
	return predicate.Plot(sql.FieldEqualFold(FieldTitle, v))
}

// TitleContainsFold applies the ContainsFold predicate on the "title" field.
func TitleContainsFold(v string) predicate.Plot {
	return predicate.Plot(sql.FieldContainsFold(FieldTitle, v))
}

// LocationEQ applies the EQ predicate on the "location" field.
func LocationEQ(v string) predicate.Plot {
	return predicate.Plot(sql.FieldEQ(FieldLocation, v))
}

// LocationNEQ applies the NEQ predicate on the "location" field.
func LocationNEQ(v string) predicate.Plot {
	return predicate.Plot(sql.FieldNEQ(FieldLocation, v))
}

// LocationIn applies the In predicate on the "location" field.
func LocationIn(vs ...string) predicate.Plot {
	return predicate.Plot(sql.FieldIn(FieldLocation, vs...))
}

// LocationNotIn applies the NotIn predicate on the "location" field.
func LocationNotIn(vs ...string) predicate.Plot {
	return predicate.Plot(sql.FieldNotIn(FieldLocation, vs...))
}

// LocationGT applies the GT predicate on the "location" field.
func LocationGT(v string) predicate.Plot {
	return predicate.Plot(sql.FieldGT(FieldLocation, v))
}

// LocationGTE applies the GTE predicate on the "location" field.
func LocationGTE(v string) predicate.Plot {
	return predicate.Plot(sql.FieldGTE(FieldLocation, v))
}

// LocationLT applies the LT predicate on the "location" field.
func LocationLT(v string) predicate.Plot {
	return predicate.Plot(sql.FieldLT(FieldLocation, v))
}

// LocationLTE applies the LTE predicate on the "location" field.
func LocationLTE(v string) predicate.Plot {
	return predicate.Plot(sql.FieldLTE(FieldLocation, v))
}

// LocationContains applies the Contains predicate on the "location" field.
func LocationContains(v string) predicate.Plot {
	return predicate.Plot(sql.FieldContains(FieldLocation, v))
}

// LocationHasPrefix applies the HasPrefix predicate on the "location" field.
func LocationHasPrefix(v string) predicate.Plot {
	return predicate.Plot(sql.FieldHasPrefix(FieldLocation, v))
}

// LocationHasSuffix applies the HasSuffix predicate on the "location" field.
func LocationHasSuffix(v string) predicate.Plot {
	return predicate.Plot(sql.FieldHasSuffix(FieldLocation, v))
}

// LocationEqualFold applies the EqualFold predicate on the "location" field.
func LocationEqualFold(v string) predicate.Plot {
	return predicate.Plot(sql.FieldEqualFold(FieldLocation, v))
}

// LocationContainsFold applies the ContainsFold predicate on the "location" field.
func LocationContainsFold(v string) predicate.Plot {
	return predicate.Plot(sql.FieldContainsFold(FieldLocation, v))
}

// AreaEQ applies the EQ predicate on the "area" field.
func AreaEQ(v float64) predicate.Plot {
	return predicate.Plot(sql.FieldEQ(FieldArea, v))
}

// AreaNEQ applies the NEQ predicate on the "area" field.
func AreaNEQ(v float64) predicate.Plot {
	return predicate.Plot(sql.FieldNEQ(FieldArea, v))
}

// AreaIn applies the In predicate on the "area" field.
func AreaIn(vs ...float64) predicate.Plot {
	return predicate.Plot(sql.FieldIn(FieldArea, vs...))
}

// AreaNotIn applies the NotIn predicate on the "area" field.
func AreaNotIn(vs ...float64) predicate.Plot {
	return predicate.Plot(sql.FieldNotIn(FieldArea, vs...))
}

// AreaGT applies the GT predicate on the "area" field.
func AreaGT(v float64) predicate.Plot {
	return predicate.Plot(sql.FieldGT(FieldArea, v))
}

// AreaGTE applies the GTE predicate on the "area" field.
func AreaGTE(v float64) predicate.Plot {
	return predicate.Plot(sql.FieldGTE(FieldArea, v))
}

// AreaLT applies the LT predicate on the "area" field.
func AreaLT(v float64) predicate.Plot {
	return predicate.Plot(sql.FieldLT(FieldArea, v))
}

// AreaLTE applies the LTE predicate on the "area" field.
func AreaLTE(v float64) predicate.Plot {
	return predicate.Plot(sql.FieldLTE(FieldArea, v))
}

// PriceEQ applies the EQ predicate on the "price" field.
func PriceEQ(v float64) predicate.Plot {
	return predicate.Plot(sql.FieldEQ(FieldPrice, v))
}

// PriceNEQ applies the NEQ predicate on the "price" field.
func PriceNEQ(v float64) predicate.Plot {
	return predicate.Plot(sql.FieldNEQ(FieldPrice, v))
}

// PriceIn applies the In predicate on the "price" field.
func PriceIn(vs ...float64) predicate.Plot {
	return predicate.Plot(sql.FieldIn(FieldPrice, vs...))
}

// PriceNotIn applies the NotIn predicate on the "price" field.
func PriceNotIn(vs ...float64) predicate.Plot {
	return predicate.Plot(sql.FieldNotIn(FieldPrice, vs...))
}

// PriceGT applies the GT predicate on the "price" field.
func PriceGT(v float64) predicate.Plot {
	return predicate.Plot(sql.FieldGT(FieldPrice, v))
}

// PriceGTE applies the GTE predicate on the "price" field.
func PriceGTE(v float64) predicate.Plot {
	return predicate.Plot(sql.FieldGTE(FieldPrice, v))
}

// PriceLT applies the LT predicate on the "price" field.
func PriceLT(v float64) predicate.Plot {
	return predicate.Plot(sql.FieldLT(FieldPrice, v))
}

// PriceLTE applies the LTE predicate on the "price" field.
func PriceLTE(v float64) predicate.Plot {
	return predicate.Plot(sql.FieldLTE(FieldPrice, v))
}

// LandTypeEQ applies the EQ predicate on the "land_type" field.
func LandTypeEQ(v LandType) predicate.Plot {
	return predicate.Plot(sql.FieldEQ(FieldLandType, v))
}

// LandTypeNEQ applies the NEQ predicate on the "land_type" field.
func LandTypeNEQ(v LandType) predicate.Plot {
	return predicate.Plot(sql.FieldNEQ(FieldLandType, v))
}

// LandTypeIn applies the In predicate on the "land_type" field.
func LandTypeIn(vs ...LandType) predicate.Plot {
	return predicate.Plot(sql.FieldIn(FieldLandType, vs...))
}

// LandTypeNotIn applies the NotIn predicate on the "land_type" field.
func LandTypeNotIn(vs ...LandType) predicate.Plot {
	return predicate.Plot(sql.FieldNotIn(FieldLandType, vs...))
}

// LandownerIDEQ applies the EQ predicate on the "landowner_id" field.
func LandownerIDEQ(v string) predicate.Plot {
	return predicate.Plot(sql.FieldEQ(FieldLandownerID, v))
}

// LandownerIDNEQ applies the NEQ predicate on the "landowner_id" field.
func LandownerIDNEQ(v string) predicate.Plot {
	return predicate.Plot(sql.FieldNEQ(FieldLandownerID, v))
}

// LandownerIDIn applies the In predicate on the "landowner_id" field.
func LandownerIDIn(vs ...string) predicate.Plot {
	return predicate.Plot(sql.FieldIn(FieldLandownerID, vs...))
}

// LandownerIDNotIn applies the NotIn predicate on the "landowner_id" field.
func LandownerIDNotIn(vs ...string) predicate.Plot {
	return predicate.Plot(sql.FieldNotIn(FieldLandownerID, vs...))
}

// LandownerIDGT applies the GT predicate on the "landowner_id" field.
func LandownerIDGT(v string) predicate.Plot {
	return predicate.Plot(sql.FieldGT(FieldLandownerID, v))
}

// LandownerIDGTE applies the GTE predicate on the "landowner_id" field.
func LandownerIDGTE(v string) predicate.Plot {
	return predicate.Plot(sql.FieldGTE(FieldLandownerID, v))
}

// LandownerIDLT applies the LT predicate on the "landowner_id" field.
func LandownerIDLT(v string) predicate.Plot {
	return predicate.Plot(sql.FieldLT(FieldLandownerID, v))
}

// LandownerIDLTE applies the LTE predicate on the "landowner_id" field.
func LandownerIDLTE(v string) predicate.Plot {
	return predicate.Plot(sql.FieldLTE(FieldLandownerID, v))
}

// LandownerIDContains applies the Contains predicate on the "landowner_id" field.
func LandownerIDContains(v string) predicate.Plot {
	return predicate.Plot(sql.FieldContains(FieldLandownerID, v))
}

// LandownerIDHasPrefix applies the HasPrefix predicate on the "landowner_id" field.
func LandownerIDHasPrefix(v string) predicate.Plot {
	return predicate.Plot(sql.FieldHasPrefix(FieldLandownerID, v))
}

// LandownerIDHasSuffix applies the HasSuffix predicate on the "landowner_id" field.
func LandownerIDHasSuffix(v string) predicate.Plot {
	return predicate.Plot(sql.FieldHasSuffix(FieldLandownerID, v))
}

// LandownerIDIsNil applies the IsNil predicate on the "landowner_id" field.
func LandownerIDIsNil() predicate.Plot {
	return predicate.Plot(sql.FieldIsNull(FieldLandownerID))
}

// LandownerIDNotNil applies the NotNil predicate on the "landowner_id" field.
func LandownerIDNotNil() predicate.Plot {
	return predicate.Plot(sql.FieldNotNull(FieldLandownerID))
}

// LandownerIDEqualFold applies the EqualFold predicate on the "landowner_id" field.
func LandownerIDEqualFold(v string) predicate.Plot {
	return predicate.Plot(sql.FieldEqualFold(FieldLandownerID, v))
}

// LandownerIDContainsFold applies the ContainsFold predicate on the "landowner_id" field.
func LandownerIDContainsFold(v string) predicate.Plot {
	return predicate.Plot(sql.FieldContainsFold(FieldLandownerID, v))
}

// AgentIDEQ applies the EQ predicate on the "agent_id" field.
func AgentIDEQ(v string) predicate.Plot {
	return predicate.Plot(sql.FieldEQ(FieldAgentID, v))
}

// AgentIDNEQ applies the NEQ predicate on the "agent_id" field.
func AgentIDNEQ(v string) predicate.Plot {
	return predicate.Plot(sql.FieldNEQ(FieldAgentID, v))
}

// AgentIDIn applies the In predicate on the "agent_id" field.
func AgentIDIn(vs ...string) predicate.Plot {
	return predicate.Plot(sql.FieldIn(FieldAgentID, vs...))
}

// AgentIDNotIn applies the NotIn predicate on the "agent_id" field.
func AgentIDNotIn(vs ...string) predicate.Plot {
	return predicate.Plot(sql.FieldNotIn(FieldAgentID, vs...))
}

// AgentIDGT applies the GT predicate on the "agent_id" field.
func AgentIDGT(v string) predicate.Plot {
	return predicate.Plot(sql.FieldGT(FieldAgentID, v))
}

// AgentIDGTE applies the GTE predicate on the "agent_id" field.
func AgentIDGTE(v string) predicate.Plot {
	return predicate.Plot(sql.FieldGTE(FieldAgentID, v))
}

// AgentIDLT applies the LT predicate on the "agent_id" field.
func AgentIDLT(v string) predicate.Plot {
	return predicate.Plot(sql.FieldLT(FieldAgentID, v))
}

// AgentIDLTE applies the LTE predicate on the "agent_id" field.
func AgentIDLTE(v string) predicate.Plot {
	return predicate.Plot(sql.FieldLTE(FieldAgentID, v))
}

// AgentIDContains applies the Contains predicate on the "agent_id" field.
func AgentIDContains(v string) predicate.Plot {
	return predicate.Plot(sql.FieldContains(FieldAgentID, v))
}

// AgentIDHasPrefix applies the HasPrefix predicate on the "agent_id" field.
func AgentIDHasPrefix(v string) predicate.Plot {
	return predicate.Plot(sql.FieldHasPrefix(FieldAgentID, v))
}

// AgentIDHasSuffix applies the HasSuffix predicate on the "agent_id" field.
func AgentIDHasSuffix(v string) predicate.Plot {
	return predicate.Plot(sql.FieldHasSuffix(FieldAgentID, v))
}

// AgentIDIsNil applies the IsNil predicate on the "agent_id" field.
func AgentIDIsNil() predicate.Plot {
	return predicate.Plot(sql.FieldIsNull(FieldAgentID))
}

// AgentIDNotNil applies the NotNil predicate on the "agent_id" field.
func AgentIDNotNil() predicate.Plot {
	return predicate.Plot(sql.FieldNotNull(FieldAgentID))
}

// AgentIDEqualFold applies the EqualFold predicate on the "agent_id" field.
func AgentIDEqualFold(v string) predicate.Plot {
	return predicate.Plot(sql.FieldEqualFold(FieldAgentID, v))
}

// AgentIDContainsFold applies the ContainsFold predicate on the "agent_id" field.
func AgentIDContainsFold(v string) predicate.Plot {
	return predicate.Plot(sql.FieldContainsFold(FieldAgentID, v))
}

// ParcelNumberEQ applies the EQ predicate on the "parcel_number" field.
func ParcelNumberEQ(v string) predicate.Plot {
	return predicate.Plot(sql.FieldEQ(FieldParcelNumber, v))
}

// ParcelNumberNEQ applies the NEQ predicate on the "parcel_number" field.
func ParcelNumberNEQ(v string) predicate.Plot {
	return predicate.Plot(sql.FieldNEQ(FieldParcelNumber, v))
}

// ParcelNumberIn applies the In predicate on the "parcel_number" field.
func ParcelNumberIn(vs ...string) predicate.Plot {
	return predicate.Plot(sql.FieldIn(FieldParcelNumber, vs...))
}

// ParcelNumberNotIn applies the NotIn predicate on the "parcel_number" field.
func ParcelNumberNotIn(vs ...string) predicate.Plot {
	return predicate.Plot(sql.FieldNotIn(FieldParcelNumber, vs...))
}

// ParcelNumberGT applies the GT predicate on the "parcel_number" field.
func ParcelNumberGT(v string) predicate.Plot {
	return predicate.Plot(sql.FieldGT(FieldParcelNumber, v))
}

// ParcelNumberGTE applies the GTE predicate on the "parcel_number" field.
func ParcelNumberGTE(v string) predicate.Plot {
	return predicate.Plot(sql.FieldGTE(FieldParcelNumber, v))
}

// ParcelNumberLT applies the LT predicate on the "parcel_number" field.
func ParcelNumberLT(v string) predicate.Plot {
	return predicate.Plot(sql.FieldLT(FieldParcelNumber, v))
}

// ParcelNumberLTE applies the LTE predicate on the "parcel_number" field.
func ParcelNumberLTE(v string) predicate.Plot {
	return predicate.Plot(sql.FieldLTE(FieldParcelNumber, v))
}

// ParcelNumberContains applies the Contains predicate on the "parcel_number" field.
func ParcelNumberContains(v string) predicate.Plot {
	return predicate.Plot(sql.FieldContains(FieldParcelNumber, v))
}

// ParcelNumberHasPrefix applies the HasPrefix predicate on the "parcel_number" field.
func ParcelNumberHasPrefix(v string) predicate.Plot {
	return predicate.Plot(sql.FieldHasPrefix(FieldParcelNumber, v))
}

// ParcelNumberHasSuffix applies the HasSuffix predicate on the "parcel_number" field.
func ParcelNumberHasSuffix(v string) predicate.Plot {
	return predicate.Plot(sql.FieldHasSuffix(FieldParcelNumber, v))
}

// ParcelNumberIsNil applies the IsNil predicate on the "parcel_number" field.
func ParcelNumberIsNil() predicate.Plot {
	return predicate.Plot(sql.FieldIsNull(FieldParcelNumber))
}

// ParcelNumberNotNil applies the NotNil predicate on the "parcel_number" field.
func ParcelNumberNotNil() predicate.Plot {
	return predicate.Plot(sql.FieldNotNull(FieldParcelNumber))
}

// ParcelNumberEqualFold applies the EqualFold predicate on the "parcel_number" field.
func ParcelNumberEqualFold(v string) predicate.Plot {
	return predicate.Plot(sql.FieldEqualFold(FieldParcelNumber, v))
}

// ParcelNumberContainsFold applies the ContainsFold predicate on the "parcel_number" field.
func ParcelNumberContainsFold(v string) predicate.Plot {
	return predicate.Plot(sql.FieldContainsFold(FieldParcelNumber, v))
}

// SoilTypeEQ applies the EQ predicate on the "soil_type" field.
func SoilTypeEQ(v string) predicate.Plot {
	return predicate.Plot(sql.FieldEQ(FieldSoilType, v))
}

// SoilTypeNEQ applies the NEQ predicate on the "soil_type" field.
func SoilTypeNEQ(v string) predicate.Plot {
	return predicate.Plot(sql.FieldNEQ(FieldSoilType, v))
}

// SoilTypeIn applies the In predicate on the "soil_type" field.
func SoilTypeIn(vs ...string) predicate.Plot {
	return predicate.Plot(sql.FieldIn(FieldSoilType, vs...))
}

// SoilTypeNotIn applies the NotIn predicate on the "soil_type" field.
func SoilTypeNotIn(vs ...string) predicate.Plot {
	return predicate.Plot(sql.FieldNotIn(FieldSoilType, vs...))
}

// SoilTypeGT applies the GT predicate on the "soil_type" field.
func SoilTypeGT(v string) predicate.Plot {
	return predicate.Plot(sql.FieldGT(FieldSoilType, v))
}

// SoilTypeGTE applies the GTE predicate on the "soil_type" field.
func SoilTypeGTE(v string) predicate.Plot {
	return predicate.Plot(sql.FieldGTE(FieldSoilType, v))
}

// SoilTypeLT applies the LT predicate on the "soil_type" field.
func SoilTypeLT(v string) predicate.Plot {
	return predicate.Plot(sql.FieldLT(FieldSoilType, v))
}

// SoilTypeLTE applies the LTE predicate on the "soil_type" field.
func SoilTypeLTE(v string) predicate.Plot {
	return predicate.Plot(sql.FieldLTE(FieldSoilType, v))
}

// SoilTypeContains applies the Contains predicate on the "soil_type" field.
func SoilTypeContains(v string) predicate.Plot {
	return predicate.Plot(sql.FieldContains(FieldSoilType, v))
}

// SoilTypeHasPrefix applies the HasPrefix predicate on the "soil_type" field.
func SoilTypeHasPrefix(v string) predicate.Plot {
	return predicate.Plot(sql.FieldHasPrefix(FieldSoilType, v))
}

// SoilTypeHasSuffix applies the HasSuffix predicate on the "soil_type" field.
func SoilTypeHasSuffix(v string) predicate.Plot {
	return predicate.Plot(sql.FieldHasSuffix(FieldSoilType, v))
}

// SoilTypeIsNil applies the IsNil predicate on the "soil_type" field.
func SoilTypeIsNil() predicate.Plot {
	return predicate.Plot(sql.FieldIsNull(FieldSoilType))
}

// SoilTypeNotNil applies the NotNil predicate on the "soil_type" field.
func SoilTypeNotNil() predicate.Plot {
	return predicate.Plot(sql.FieldNotNull(FieldSoilType))
}

// SoilTypeEqualFold applies the EqualFold predicate on the "soil_type" field.
func SoilTypeEqualFold(v string) predicate.Plot {
	return predicate.Plot(sql.FieldEqualFold(FieldSoilType, v))
}

// SoilTypeContainsFold applies the ContainsFold predicate on the "soil_type" field.
func SoilTypeContainsFold(v string) predicate.Plot {
	return predicate.Plot(sql.FieldContainsFold(FieldSoilType, v))
}

// ListedEQ applies the EQ predicate on the "listed" field.
func ListedEQ(v bool) predicate.Plot {
	return predicate.Plot(sql.FieldEQ(FieldListed, v))
}

// ListedNEQ applies the NEQ predicate on the "listed" field.
func ListedNEQ(v bool) predicate.Plot {
	return predicate.Plot(sql.FieldNEQ(FieldListed, v))
}

// HasTasks applies the HasEdge predicate on the "tasks" edge.
func HasTasks() predicate.Plot {
	return predicate.Plot(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, TasksTable, TasksColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasTasksWith applies the HasEdge predicate on the "tasks" edge with a given conditions (other predicates).
func HasTasksWith(preds ...predicate.VerificationTask) predicate.Plot {
	return predicate.Plot(func(s *sql.Selector) {
		step := newTasksStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Plot) predicate.Plot {
	return predicate.Plot(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Plot) predicate.Plot {
	return predicate.Plot(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Plot) predicate.Plot {
	return predicate.Plot(sql.NotPredicates(p))
}
