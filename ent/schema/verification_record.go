package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// VerificationRecord holds the schema definition for the polymorphic
// verification status record. Exactly one record exists per subject,
// enforced by the unique (subject_kind, subject_id) index.
//
// stage_timestamps is written once per stage the record passes through;
// external_responses is append-only; detail is last-writer-wins per key.
type VerificationRecord struct {
	ent.Schema
}

// Mixin of the VerificationRecord.
func (VerificationRecord) Mixin() []ent.Mixin {
	return []ent.Mixin{
		TimeMixin{},
	}
}

// Fields of the VerificationRecord.
func (VerificationRecord) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
			Immutable(),
		field.Enum("subject_kind").
			Values("landowner", "agent", "plot").
			Immutable(),
		field.String("subject_id").
			NotEmpty().
			Immutable(),
		field.Enum("stage").
			Values(
				"document_uploaded",
				"api_verification_started",
				"title_search_completed",
				"owner_verified",
				"encumbrance_check",
				"admin_review",
				"changes_requested",
				"approved",
				"rejected",
			).
			Default("document_uploaded"),
		field.JSON("stage_timestamps", map[string]string{}).
			Optional().
			Comment("stage name -> RFC3339 time, stamped once per stage (idempotent)"),
		field.JSON("external_responses", []map[string]interface{}{}).
			Optional().
			Comment("Append-only log of external registry payloads with capture time"),
		field.JSON("detail", map[string]interface{}{}).
			Optional().
			Comment("Stage-specific metadata, last-writer-wins per key"),
		field.String("search_reference").
			Optional().
			Comment("Registry search reference captured from the title search step"),
		field.Float("search_fee").
			Optional(),
		field.Time("approved_at").
			Optional().
			Nillable(),
		field.Time("rejected_at").
			Optional().
			Nillable(),
	}
}

// Indexes of the VerificationRecord.
func (VerificationRecord) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("subject_kind", "subject_id").Unique(),
		index.Fields("stage"),
	}
}
