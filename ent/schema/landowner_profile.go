package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// LandownerProfile holds the schema definition for a seller profile.
// Creation of a landowner profile triggers the external registry
// verification pipeline for the profile subject.
type LandownerProfile struct {
	ent.Schema
}

// Mixin of the LandownerProfile.
func (LandownerProfile) Mixin() []ent.Mixin {
	return []ent.Mixin{
		TimeMixin{},
	}
}

// Fields of the LandownerProfile.
func (LandownerProfile) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
			Immutable(),
		field.String("user_id").
			NotEmpty().
			Immutable(),
		field.String("full_name").
			NotEmpty(),
		field.String("national_id_no").
			Optional(),
		field.String("kra_pin").
			Optional(),
		field.String("phone").
			Optional(),
		field.Bool("verified").
			Default(false).
			Comment("Set by the terminal admin decision, never directly by user flows"),
	}
}

// Indexes of the LandownerProfile.
func (LandownerProfile) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id").Unique(),
	}
}
