package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// EmailLog holds the schema definition for outbound email delivery records.
// Every send attempt is recorded; failures keep the row with status failed
// and the error message, so operators can audit undelivered mail.
type EmailLog struct {
	ent.Schema
}

// Mixin of the EmailLog.
func (EmailLog) Mixin() []ent.Mixin {
	return []ent.Mixin{
		AuditMixin{},
	}
}

// Fields of the EmailLog.
func (EmailLog) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
			Immutable(),
		field.String("recipient").
			NotEmpty(),
		field.String("subject").
			NotEmpty(),
		field.String("template").
			NotEmpty(),
		field.JSON("context", map[string]interface{}{}).
			Optional(),
		field.Enum("status").
			Values("pending", "sent", "failed").
			Default("pending"),
		field.String("error_message").
			Optional(),
		field.Time("sent_at").
			Optional().
			Nillable(),
	}
}

// Indexes of the EmailLog.
func (EmailLog) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("recipient"),
		index.Fields("status"),
		index.Fields("created_at"),
	}
}
