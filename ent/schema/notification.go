package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Notification holds the schema definition for in-app inbox notifications.
// Notifications are best-effort side effects: delivery failures are logged
// and swallowed, never rolling back the state transition that fired them.
type Notification struct {
	ent.Schema
}

// Mixin of the Notification.
func (Notification) Mixin() []ent.Mixin {
	return []ent.Mixin{
		AuditMixin{}, // created_at only (notifications are append-only)
	}
}

// Fields of the Notification.
func (Notification) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
			Immutable(),
		field.Enum("type").
			Values(
				"TASK_ASSIGNED",
				"TASK_COMPLETED",
				"PLOT_APPROVED",
				"PLOT_REJECTED",
				"CHANGES_REQUESTED",
				"VERIFICATION_STARTED",
				"VERIFICATION_DECIDED",
			),
		field.String("title").
			NotEmpty().
			MaxLen(255),
		field.String("message").
			NotEmpty().
			MaxLen(2048),
		field.String("plot_id").
			Optional().
			Comment("Related plot for navigation, when the event is plot-scoped"),
		field.String("task_id").
			Optional(),
		field.Bool("read").
			Default(false),
		field.Time("read_at").
			Optional().
			Nillable(),
	}
}

// Edges of the Notification.
func (Notification) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("user", User.Type).
			Ref("notifications").
			Unique().
			Required(),
	}
}

// Indexes of the Notification.
func (Notification) Indexes() []ent.Index {
	return []ent.Index{
		index.Edges("user").Fields("read"),       // Fast unread count query
		index.Edges("user").Fields("created_at"), // Paginated list by user
		index.Fields("created_at"),               // Retention cleanup
	}
}
