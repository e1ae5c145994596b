package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AgentProfile holds the schema definition for a broker/agent profile.
// Verified the same way as landowner profiles, through the external
// registry pipeline plus admin review.
type AgentProfile struct {
	ent.Schema
}

// Mixin of the AgentProfile.
func (AgentProfile) Mixin() []ent.Mixin {
	return []ent.Mixin{
		TimeMixin{},
	}
}

// Fields of the AgentProfile.
func (AgentProfile) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
			Immutable(),
		field.String("user_id").
			NotEmpty().
			Immutable(),
		field.String("full_name").
			NotEmpty(),
		field.String("license_number").
			Optional(),
		field.String("phone").
			Optional(),
		field.Bool("verified").
			Default(false),
	}
}

// Indexes of the AgentProfile.
func (AgentProfile) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id").Unique(),
	}
}
