package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Plot holds the schema definition for a land listing.
// A plot is a verification subject: task applicability is decided from
// land_type and area, and change of a critical field (title, location,
// area, price) resets the verification pipeline.
type Plot struct {
	ent.Schema
}

// Mixin of the Plot.
func (Plot) Mixin() []ent.Mixin {
	return []ent.Mixin{
		TimeMixin{},
	}
}

// Fields of the Plot.
func (Plot) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
			Immutable(),
		field.String("title").
			NotEmpty().
			MaxLen(200),
		field.String("location").
			NotEmpty().
			MaxLen(300),
		field.Float("area").
			Positive().
			Comment("In acres; plots above 50 acres require a surveyor inspection"),
		field.Float("price"),
		field.Enum("land_type").
			Values("agricultural", "residential", "commercial", "mixed_use").
			Default("agricultural"),
		field.String("landowner_id").
			Optional().
			Comment("Owning landowner profile; exactly one of landowner_id/agent_id is expected"),
		field.String("agent_id").
			Optional().
			Comment("Listing agent profile, when the plot is listed through a broker"),
		field.String("parcel_number").
			Optional(),
		field.String("soil_type").
			Optional(),
		field.Bool("listed").
			Default(false).
			Comment("Publicly visible to buyers; flipped only when verification approves the plot"),
	}
}

// Edges of the Plot.
func (Plot) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("tasks", VerificationTask.Type),
	}
}

// Indexes of the Plot.
func (Plot) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("landowner_id"),
		index.Fields("agent_id"),
		index.Fields("listed"),
	}
}
