package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// VerificationTask holds the schema definition for a discrete unit of
// verification work scoped to one plot and one task type. At most one
// task exists per (plot, type), enforced by the unique index; the task
// registry relies on that constraint for its atomic get-or-create.
type VerificationTask struct {
	ent.Schema
}

// Mixin of the VerificationTask.
func (VerificationTask) Mixin() []ent.Mixin {
	return []ent.Mixin{
		TimeMixin{},
	}
}

// Fields of the VerificationTask.
func (VerificationTask) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
			Immutable(),
		field.Enum("type").
			Values("document_review", "extension_review", "surveyor_inspection"),
		field.Enum("status").
			Values("pending", "in_progress", "completed").
			Default("pending"),
		field.String("assignee_id").
			Optional().
			Comment("Staff user the task is assigned to; set only on assignment"),
		field.Bool("approved").
			Optional().
			Nillable().
			Comment("Tri-state outcome; meaningful only once status is completed"),
		field.String("notes").
			Optional(),
		field.Time("assigned_at").
			Optional().
			Nillable(),
		field.Time("completed_at").
			Optional().
			Nillable(),
	}
}

// Edges of the VerificationTask.
func (VerificationTask) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("plot", Plot.Type).
			Ref("tasks").
			Unique().
			Required(),
	}
}

// Indexes of the VerificationTask.
func (VerificationTask) Indexes() []ent.Index {
	return []ent.Index{
		index.Edges("plot").Fields("type").Unique(),
		index.Fields("status"),
		index.Fields("assignee_id"),
	}
}
