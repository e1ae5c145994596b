// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AgentProfilesColumns holds the columns for the "agent_profiles" table.
	AgentProfilesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "user_id", Type: field.TypeString},
		{Name: "full_name", Type: field.TypeString},
		{Name: "license_number", Type: field.TypeString, Nullable: true},
		{Name: "phone", Type: field.TypeString, Nullable: true},
		{Name: "verified", Type: field.TypeBool, Default: false},
	}
	// AgentProfilesTable holds the schema information for the "agent_profiles" table.
	AgentProfilesTable = &schema.Table{
		Name:       "agent_profiles",
		Columns:    AgentProfilesColumns,
		PrimaryKey: []*schema.Column{AgentProfilesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "agentprofile_user_id",
				Unique:  true,
				Columns: []*schema.Column{AgentProfilesColumns[3]},
			},
		},
	}
	// EmailLogsColumns holds the columns for the "email_logs" table.
	EmailLogsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "recipient", Type: field.TypeString},
		{Name: "subject", Type: field.TypeString},
		{Name: "template", Type: field.TypeString},
		{Name: "context", Type: field.TypeJSON, Nullable: true},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"pending", "sent", "failed"}, Default: "pending"},
		{Name: "error_message", Type: field.TypeString, Nullable: true},
		{Name: "sent_at", Type: field.TypeTime, Nullable: true},
	}
	// EmailLogsTable holds the schema information for the "email_logs" table.
	EmailLogsTable = &schema.Table{
		Name:       "email_logs",
		Columns:    EmailLogsColumns,
		PrimaryKey: []*schema.Column{EmailLogsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "emaillog_recipient",
				Unique:  false,
				Columns: []*schema.Column{EmailLogsColumns[2]},
			},
			{
				Name:    "emaillog_status",
				Unique:  false,
				Columns: []*schema.Column{EmailLogsColumns[6]},
			},
			{
				Name:    "emaillog_created_at",
				Unique:  false,
				Columns: []*schema.Column{EmailLogsColumns[1]},
			},
		},
	}
	// LandownerProfilesColumns holds the columns for the "landowner_profiles" table.
	LandownerProfilesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "user_id", Type: field.TypeString},
		{Name: "full_name", Type: field.TypeString},
		{Name: "national_id_no", Type: field.TypeString, Nullable: true},
		{Name: "kra_pin", Type: field.TypeString, Nullable: true},
		{Name: "phone", Type: field.TypeString, Nullable: true},
		{Name: "verified", Type: field.TypeBool, Default: false},
	}
	// LandownerProfilesTable holds the schema information for the "landowner_profiles" table.
	LandownerProfilesTable = &schema.Table{
		Name:       "landowner_profiles",
		Columns:    LandownerProfilesColumns,
		PrimaryKey: []*schema.Column{LandownerProfilesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "landownerprofile_user_id",
				Unique:  true,
				Columns: []*schema.Column{LandownerProfilesColumns[3]},
			},
		},
	}
	// NotificationsColumns holds the columns for the "notifications" table.
	NotificationsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "type", Type: field.TypeEnum, Enums: []string{"TASK_ASSIGNED", "TASK_COMPLETED", "PLOT_APPROVED", "PLOT_REJECTED", "CHANGES_REQUESTED", "VERIFICATION_STARTED", "VERIFICATION_DECIDED"}},
		{Name: "title", Type: field.TypeString, Size: 255},
		{Name: "message", Type: field.TypeString, Size: 2048},
		{Name: "plot_id", Type: field.TypeString, Nullable: true},
		{Name: "task_id", Type: field.TypeString, Nullable: true},
		{Name: "read", Type: field.TypeBool, Default: false},
		{Name: "read_at", Type: field.TypeTime, Nullable: true},
		{Name: "user_notifications", Type: field.TypeString},
	}
	// NotificationsTable holds the schema information for the "notifications" table.
	NotificationsTable = &schema.Table{
		Name:       "notifications",
		Columns:    NotificationsColumns,
		PrimaryKey: []*schema.Column{NotificationsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "notifications_users_notifications",
				Columns:    []*schema.Column{NotificationsColumns[9]},
				RefColumns: []*schema.Column{UsersColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "notification_read_user_notifications",
				Unique:  false,
				Columns: []*schema.Column{NotificationsColumns[7], NotificationsColumns[9]},
			},
			{
				Name:    "notification_created_at_user_notifications",
				Unique:  false,
				Columns: []*schema.Column{NotificationsColumns[1], NotificationsColumns[9]},
			},
			{
				Name:    "notification_created_at",
				Unique:  false,
				Columns: []*schema.Column{NotificationsColumns[1]},
			},
		},
	}
	// PlotsColumns holds the columns for the "plots" table.
	PlotsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "title", Type: field.TypeString, Size: 200},
		{Name: "location", Type: field.TypeString, Size: 300},
		{Name: "area", Type: field.TypeFloat64},
		{Name: "price", Type: field.TypeFloat64},
		{Name: "land_type", Type: field.TypeEnum, Enums: []string{"agricultural", "residential", "commercial", "mixed_use"}, Default: "agricultural"},
		{Name: "landowner_id", Type: field.TypeString, Nullable: true},
		{Name: "agent_id", Type: field.TypeString, Nullable: true},
		{Name: "parcel_number", Type: field.TypeString, Nullable: true},
		{Name: "soil_type", Type: field.TypeString, Nullable: true},
		{Name: "listed", Type: field.TypeBool, Default: false},
	}
	// PlotsTable holds the schema information for the "plots" table.
	PlotsTable = &schema.Table{
		Name:       "plots",
		Columns:    PlotsColumns,
		PrimaryKey: []*schema.Column{PlotsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "plot_landowner_id",
				Unique:  false,
				Columns: []*schema.Column{PlotsColumns[8]},
			},
			{
				Name:    "plot_agent_id",
				Unique:  false,
				Columns: []*schema.Column{PlotsColumns[9]},
			},
			{
				Name:    "plot_listed",
				Unique:  false,
				Columns: []*schema.Column{PlotsColumns[12]},
			},
		},
	}
	// UsersColumns holds the columns for the "users" table.
	UsersColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "username", Type: field.TypeString, Size: 255},
		{Name: "email", Type: field.TypeString, Nullable: true, Size: 255},
		{Name: "display_name", Type: field.TypeString, Nullable: true},
		{Name: "staff", Type: field.TypeBool, Default: false},
		{Name: "enabled", Type: field.TypeBool, Default: true},
	}
	// UsersTable holds the schema information for the "users" table.
	UsersTable = &schema.Table{
		Name:       "users",
		Columns:    UsersColumns,
		PrimaryKey: []*schema.Column{UsersColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "user_username",
				Unique:  true,
				Columns: []*schema.Column{UsersColumns[3]},
			},
			{
				Name:    "user_staff",
				Unique:  false,
				Columns: []*schema.Column{UsersColumns[6]},
			},
		},
	}
	// VerificationLogEntriesColumns holds the columns for the "verification_log_entries" table.
	VerificationLogEntriesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "action", Type: field.TypeString},
		{Name: "subject_kind", Type: field.TypeString},
		{Name: "subject_id", Type: field.TypeString},
		{Name: "actor", Type: field.TypeString},
		{Name: "comment", Type: field.TypeString, Nullable: true},
		{Name: "details", Type: field.TypeJSON, Nullable: true},
	}
	// VerificationLogEntriesTable holds the schema information for the "verification_log_entries" table.
	VerificationLogEntriesTable = &schema.Table{
		Name:       "verification_log_entries",
		Columns:    VerificationLogEntriesColumns,
		PrimaryKey: []*schema.Column{VerificationLogEntriesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "verificationlogentry_subject_kind_subject_id",
				Unique:  false,
				Columns: []*schema.Column{VerificationLogEntriesColumns[3], VerificationLogEntriesColumns[4]},
			},
			{
				Name:    "verificationlogentry_action",
				Unique:  false,
				Columns: []*schema.Column{VerificationLogEntriesColumns[2]},
			},
			{
				Name:    "verificationlogentry_actor",
				Unique:  false,
				Columns: []*schema.Column{VerificationLogEntriesColumns[5]},
			},
			{
				Name:    "verificationlogentry_created_at",
				Unique:  false,
				Columns: []*schema.Column{VerificationLogEntriesColumns[1]},
			},
		},
	}
	// VerificationRecordsColumns holds the columns for the "verification_records" table.
	VerificationRecordsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "subject_kind", Type: field.TypeEnum, Enums: []string{"landowner", "agent", "plot"}},
		{Name: "subject_id", Type: field.TypeString},
		{Name: "stage", Type: field.TypeEnum, Enums: []string{"document_uploaded", "api_verification_started", "title_search_completed", "owner_verified", "encumbrance_check", "admin_review", "changes_requested", "approved", "rejected"}, Default: "document_uploaded"},
		{Name: "stage_timestamps", Type: field.TypeJSON, Nullable: true},
		{Name: "external_responses", Type: field.TypeJSON, Nullable: true},
		{Name: "detail", Type: field.TypeJSON, Nullable: true},
		{Name: "search_reference", Type: field.TypeString, Nullable: true},
		{Name: "search_fee", Type: field.TypeFloat64, Nullable: true},
		{Name: "approved_at", Type: field.TypeTime, Nullable: true},
		{Name: "rejected_at", Type: field.TypeTime, Nullable: true},
	}
	// VerificationRecordsTable holds the schema information for the "verification_records" table.
	VerificationRecordsTable = &schema.Table{
		Name:       "verification_records",
		Columns:    VerificationRecordsColumns,
		PrimaryKey: []*schema.Column{VerificationRecordsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "verificationrecord_subject_kind_subject_id",
				Unique:  true,
				Columns: []*schema.Column{VerificationRecordsColumns[3], VerificationRecordsColumns[4]},
			},
			{
				Name:    "verificationrecord_stage",
				Unique:  false,
				Columns: []*schema.Column{VerificationRecordsColumns[5]},
			},
		},
	}
	// VerificationTasksColumns holds the columns for the "verification_tasks" table.
	VerificationTasksColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "type", Type: field.TypeEnum, Enums: []string{"document_review", "extension_review", "surveyor_inspection"}},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"pending", "in_progress", "completed"}, Default: "pending"},
		{Name: "assignee_id", Type: field.TypeString, Nullable: true},
		{Name: "approved", Type: field.TypeBool, Nullable: true},
		{Name: "notes", Type: field.TypeString, Nullable: true},
		{Name: "assigned_at", Type: field.TypeTime, Nullable: true},
		{Name: "completed_at", Type: field.TypeTime, Nullable: true},
		{Name: "plot_tasks", Type: field.TypeString},
	}
	// VerificationTasksTable holds the schema information for the "verification_tasks" table.
	VerificationTasksTable = &schema.Table{
		Name:       "verification_tasks",
		Columns:    VerificationTasksColumns,
		PrimaryKey: []*schema.Column{VerificationTasksColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "verification_tasks_plots_tasks",
				Columns:    []*schema.Column{VerificationTasksColumns[10]},
				RefColumns: []*schema.Column{PlotsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "verificationtask_type_plot_tasks",
				Unique:  true,
				Columns: []*schema.Column{VerificationTasksColumns[3], VerificationTasksColumns[10]},
			},
			{
				Name:    "verificationtask_status",
				Unique:  false,
				Columns: []*schema.Column{VerificationTasksColumns[4]},
			},
			{
				Name:    "verificationtask_assignee_id",
				Unique:  false,
				Columns: []*schema.Column{VerificationTasksColumns[5]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AgentProfilesTable,
		EmailLogsTable,
		LandownerProfilesTable,
		NotificationsTable,
		PlotsTable,
		UsersTable,
		VerificationLogEntriesTable,
		VerificationRecordsTable,
		VerificationTasksTable,
	}
)

func init() {
	NotificationsTable.ForeignKeys[0].RefTable = UsersTable
	VerificationTasksTable.ForeignKeys[0].RefTable = PlotsTable
}
