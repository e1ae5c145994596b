package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// VerificationLogEntry holds the schema definition for the audit trail.
// Append-only compliance records. Hard-delete is NOT allowed.
type VerificationLogEntry struct {
	ent.Schema
}

// Mixin of the VerificationLogEntry.
func (VerificationLogEntry) Mixin() []ent.Mixin {
	return []ent.Mixin{
		AuditMixin{}, // Append-only: created_at only
	}
}

// Fields of the VerificationLogEntry.
func (VerificationLogEntry) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
			Immutable(),
		field.String("action").
			NotEmpty().
			Immutable(), // e.g. "task.assigned", "stage.advanced", "rejection"
		field.String("subject_kind").
			NotEmpty().
			Immutable(), // "landowner", "agent", "plot"
		field.String("subject_id").
			NotEmpty().
			Immutable(),
		field.String("actor").
			NotEmpty().
			Immutable(), // "system" for automated actions
		field.String("comment").
			Optional().
			Immutable(),
		field.JSON("details", map[string]interface{}{}).
			Optional().
			Immutable(),
	}
}

// Indexes of the VerificationLogEntry.
func (VerificationLogEntry) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("subject_kind", "subject_id"),
		index.Fields("action"),
		index.Fields("actor"),
		index.Fields("created_at"),
	}
}
