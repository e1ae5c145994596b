// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"agriplot.io/agriplot/ent/plot"
	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
)

// Plot is the model entity for the Plot schema.
type Plot struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Title holds the value of the "title" field.
	Title string `json:"title,omitempty"`
	// Location holds the value of the "location" field.
	Location string `json:"location,omitempty"`
	// In acres; plots above 50 acres require a surveyor inspection
	Area float64 `json:"area,omitempty"`
	// Price holds the value of the "price" field.
	Price float64 `json:"price,omitempty"`
	// LandType holds the value of the "land_type" field.
	LandType plot.LandType `json:"land_type,omitempty"`
	// Owning landowner profile; exactly one of landowner_id/agent_id is expected
	LandownerID string `json:"landowner_id,omitempty"`
	// Listing agent profile, when the plot is listed through a broker
	AgentID string `json:"agent_id,omitempty"`
	// ParcelNumber holds the value of the "parcel_number" field.
	ParcelNumber string `json:"parcel_number,omitempty"`
	// SoilType holds the value of the "soil_type" field.
	SoilType string `json:"soil_type,omitempty"`
	// Publicly visible to buyers; flipped only when verification approves the plot
	Listed bool `json:"listed,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the PlotQuery when eager-loading is set.
	Edges        PlotEdges `json:"edges"`
	selectValues sql.SelectValues
}

// PlotEdges holds the relations/edges for other nodes in the graph.
type PlotEdges struct {
	// Tasks holds the value of the tasks edge.
	Tasks []*VerificationTask `json:"tasks,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// TasksOrErr returns the Tasks value or an error if the edge
// was not loaded in eager-loading.
func (e PlotEdges) TasksOrErr() ([]*VerificationTask, error) {
	if e.loadedTypes[0] {
		return e.Tasks, nil
	}
	return nil, &NotLoadedError{edge: "tasks"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Plot) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case plot.FieldListed:
			values[i] = new(sql.NullBool)
		case plot.FieldArea, plot.FieldPrice:
			values[i] = new(sql.NullFloat64)
		case plot.FieldID, plot.FieldTitle, plot.FieldLocation, plot.FieldLandType, plot.FieldLandownerID, plot.FieldAgentID, plot.FieldParcelNumber, plot.FieldSoilType:
			values[i] = new(sql.NullString)
		case plot.FieldCreatedAt, plot.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Plot fields.
func (_m *Plot) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case plot.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case plot.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case plot.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		case plot.FieldTitle:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field title", values[i])
			} else if value.Valid {
				_m.Title = value.String
			}
		case plot.FieldLocation:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field location", values[i])
			} else if value.Valid {
				_m.Location = value.String
			}
		case plot.FieldArea:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field area", values[i])
			} else if value.Valid {
				_m.Area = value.Float64
			}
		case plot.FieldPrice:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field price", values[i])
			} else if value.Valid {
				_m.Price = value.Float64
			}
		case plot.FieldLandType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field land_type", values[i])
			} else if value.Valid {
				_m.LandType = plot.LandType(value.String)
			}
		case plot.FieldLandownerID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field landowner_id", values[i])
			} else if value.Valid {
				_m.LandownerID = value.String
			}
		case plot.FieldAgentID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field agent_id", values[i])
			} else if value.Valid {
				_m.AgentID = value.String
			}
		case plot.FieldParcelNumber:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field parcel_number", values[i])
			} else if value.Valid {
				_m.ParcelNumber = value.String
			}
		case plot.FieldSoilType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field soil_type", values[i])
			} else if value.Valid {
				_m.SoilType = value.String
			}
		case plot.FieldListed:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field listed", values[i])
			} else if value.Valid {
				_m.Listed = value.Bool
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Plot.
// This includes values selected through modifiers, order, etc.
func (_m *Plot) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryTasks queries the "tasks" edge of the Plot entity.
func (_m *Plot) QueryTasks() *VerificationTaskQuery {
	return NewPlotClient(_m.config).QueryTasks(_m)
}

// Update returns a builder for updating this Plot.
// Note that you need to call Plot.Unwrap() before calling this method if this Plot
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Plot) Update() *PlotUpdateOne {
	return NewPlotClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Plot entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Plot) Unwrap() *Plot {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Plot is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Plot) String() string {
	var builder strings.Builder
	builder.WriteString("Plot(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("title=")
	builder.WriteString(_m.Title)
	builder.WriteString(", ")
	builder.WriteString("location=")
	builder.WriteString(_m.Location)
	builder.WriteString(", ")
	builder.WriteString("area=")
	builder.WriteString(fmt.Sprintf("%v", _m.Area))
	builder.WriteString(", ")
	builder.WriteString("price=")
	builder.WriteString(fmt.Sprintf("%v", _m.Price))
	builder.WriteString(", ")
	builder.WriteString("land_type=")
	builder.WriteString(fmt.Sprintf("%v", _m.LandType))
	builder.WriteString(", ")
	builder.WriteString("landowner_id=")
	builder.WriteString(_m.LandownerID)
	builder.WriteString(", ")
	builder.WriteString("agent_id=")
	builder.WriteString(_m.AgentID)
	builder.WriteString(", ")
	builder.WriteString("parcel_number=")
	builder.WriteString(_m.ParcelNumber)
	builder.WriteString(", ")
	builder.WriteString("soil_type=")
	builder.WriteString(_m.SoilType)
	builder.WriteString(", ")
	builder.WriteString("listed=")
	builder.WriteString(fmt.Sprintf("%v", _m.Listed))
	builder.WriteByte(')')
	return builder.String()
}

// Plots is a parsable slice of Plot.
type Plots []*Plot
