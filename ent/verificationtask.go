// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"agriplot.io/agriplot/ent/plot"
	"agriplot.io/agriplot/ent/verificationtask"
	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
)

// VerificationTask is the model entity for the VerificationTask schema.
type VerificationTask struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Type holds the value of the "type" field.
	Type verificationtask.Type `json:"type,omitempty"`
	// Status holds the value of the "status" field.
	Status verificationtask.Status `json:"status,omitempty"`
	// Staff user the task is assigned to; set only on assignment
	AssigneeID string `json:"assignee_id,omitempty"`
	// Tri-state outcome; meaningful only once status is completed
	Approved *bool `json:"approved,omitempty"`
	// Notes holds the value of the "notes" field.
	Notes string `json:"notes,omitempty"`
	// AssignedAt holds the value of the "assigned_at" field.
	AssignedAt *time.Time `json:"assigned_at,omitempty"`
	// CompletedAt holds the value of the "completed_at" field.
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the VerificationTaskQuery when eager-loading is set.
	Edges        VerificationTaskEdges `json:"edges"`
	plot_tasks   *string
	selectValues sql.SelectValues
}

// VerificationTaskEdges holds the relations/edges for other nodes in the graph.
type VerificationTaskEdges struct {
	// Plot holds the value of the plot edge.
	Plot *Plot `json:"plot,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// PlotOrErr returns the Plot value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e VerificationTaskEdges) PlotOrErr() (*Plot, error) {
	if e.Plot != nil {
		return e.Plot, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: plot.Label}
	}
	return nil, &NotLoadedError{edge: "plot"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*VerificationTask) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case verificationtask.FieldApproved:
			values[i] = new(sql.NullBool)
		case verificationtask.FieldID, verificationtask.FieldType, verificationtask.FieldStatus, verificationtask.FieldAssigneeID, verificationtask.FieldNotes:
			values[i] = new(sql.NullString)
		case verificationtask.FieldCreatedAt, verificationtask.FieldUpdatedAt, verificationtask.FieldAssignedAt, verificationtask.FieldCompletedAt:
			values[i] = new(sql.NullTime)
		case verificationtask.ForeignKeys[0]: // plot_tasks
			values[i] = new(sql.NullString)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the VerificationTask fields.
func (_m *VerificationTask) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case verificationtask.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case verificationtask.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case verificationtask.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		case verificationtask.FieldType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field type", values[i])
			} else if value.Valid {
				_m.Type = verificationtask.Type(value.String)
			}
		case verificationtask.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = verificationtask.Status(value.String)
			}
		case verificationtask.FieldAssigneeID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field assignee_id", values[i])
			} else if value.Valid {
				_m.AssigneeID = value.String
			}
		case verificationtask.FieldApproved:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field approved", values[i])
			} else if value.Valid {
				_m.Approved = new(bool)
				*_m.Approved = value.Bool
			}
		case verificationtask.FieldNotes:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field notes", values[i])
			} else if value.Valid {
				_m.Notes = value.String
			}
		case verificationtask.FieldAssignedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field assigned_at", values[i])
			} else if value.Valid {
				_m.AssignedAt = new(time.Time)
				*_m.AssignedAt = value.Time
			}
		case verificationtask.FieldCompletedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field completed_at", values[i])
			} else if value.Valid {
				_m.CompletedAt = new(time.Time)
				*_m.CompletedAt = value.Time
			}
		case verificationtask.ForeignKeys[0]:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field plot_tasks", values[i])
			} else if value.Valid {
				_m.plot_tasks = new(string)
				*_m.plot_tasks = value.String
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the VerificationTask.
// This includes values selected through modifiers, order, etc.
func (_m *VerificationTask) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryPlot queries the "plot" edge of the VerificationTask entity.
func (_m *VerificationTask) QueryPlot() *PlotQuery {
	return NewVerificationTaskClient(_m.config).QueryPlot(_m)
}

// Update returns a builder for updating this VerificationTask.
// Note that you need to call VerificationTask.Unwrap() before calling this method if this VerificationTask
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *VerificationTask) Update() *VerificationTaskUpdateOne {
	return NewVerificationTaskClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the VerificationTask entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *VerificationTask) Unwrap() *VerificationTask {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: VerificationTask is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *VerificationTask) String() string {
	var builder strings.Builder
	builder.WriteString("VerificationTask(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("type=")
	builder.WriteString(fmt.Sprintf("%v", _m.Type))
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	builder.WriteString("assignee_id=")
	builder.WriteString(_m.AssigneeID)
	builder.WriteString(", ")
	if v := _m.Approved; v != nil {
		builder.WriteString("approved=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("notes=")
	builder.WriteString(_m.Notes)
	builder.WriteString(", ")
	if v := _m.AssignedAt; v != nil {
		builder.WriteString("assigned_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.CompletedAt; v != nil {
		builder.WriteString("completed_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteByte(')')
	return builder.String()
}

// VerificationTasks is a parsable slice of VerificationTask.
type VerificationTasks []*VerificationTask
