// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"agriplot.io/agriplot/ent/verificationrecord"
	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
)

// VerificationRecord is the model entity for the VerificationRecord schema.
type VerificationRecord struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// SubjectKind holds the value of the "subject_kind" field.
	SubjectKind verificationrecord.SubjectKind `json:"subject_kind,omitempty"`
	// SubjectID holds the value of the "subject_id" field.
	SubjectID string `json:"subject_id,omitempty"`
	// Stage holds the value of the "stage" field.
	Stage verificationrecord.Stage `json:"stage,omitempty"`
	// stage name -> RFC3339 time, stamped once per stage (idempotent)
	StageTimestamps map[string]string `json:"stage_timestamps,omitempty"`
	// Append-only log of external registry payloads with capture time
	ExternalResponses []map[string]interface{} `json:"external_responses,omitempty"`
	// Stage-specific metadata, last-writer-wins per key
	Detail map[string]interface{} `json:"detail,omitempty"`
	// Registry search reference captured from the title search step
	SearchReference string `json:"search_reference,omitempty"`
	// SearchFee holds the value of the "search_fee" field.
	SearchFee float64 `json:"search_fee,omitempty"`
	// ApprovedAt holds the value of the "approved_at" field.
	ApprovedAt *time.Time `json:"approved_at,omitempty"`
	// RejectedAt holds the value of the "rejected_at" field.
	RejectedAt   *time.Time `json:"rejected_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*VerificationRecord) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case verificationrecord.FieldStageTimestamps, verificationrecord.FieldExternalResponses, verificationrecord.FieldDetail:
			values[i] = new([]byte)
		case verificationrecord.FieldSearchFee:
			values[i] = new(sql.NullFloat64)
		case verificationrecord.FieldID, verificationrecord.FieldSubjectKind, verificationrecord.FieldSubjectID, verificationrecord.FieldStage, verificationrecord.FieldSearchReference:
			values[i] = new(sql.NullString)
		case verificationrecord.FieldCreatedAt, verificationrecord.FieldUpdatedAt, verificationrecord.FieldApprovedAt, verificationrecord.FieldRejectedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the VerificationRecord fields.
func (_m *VerificationRecord) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case verificationrecord.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case verificationrecord.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case verificationrecord.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		case verificationrecord.FieldSubjectKind:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field subject_kind", values[i])
			} else if value.Valid {
				_m.SubjectKind = verificationrecord.SubjectKind(value.String)
			}
		case verificationrecord.FieldSubjectID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field subject_id", values[i])
			} else if value.Valid {
				_m.SubjectID = value.String
			}
		case verificationrecord.FieldStage:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field stage", values[i])
			} else if value.Valid {
				_m.Stage = verificationrecord.Stage(value.String)
			}
		case verificationrecord.FieldStageTimestamps:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field stage_timestamps", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.StageTimestamps); err != nil {
					return fmt.Errorf("unmarshal field stage_timestamps: %w", err)
				}
			}
		case verificationrecord.FieldExternalResponses:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field external_responses", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.ExternalResponses); err != nil {
					return fmt.Errorf("unmarshal field external_responses: %w", err)
				}
			}
		case verificationrecord.FieldDetail:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field detail", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Detail); err != nil {
					return fmt.Errorf("unmarshal field detail: %w", err)
				}
			}
		case verificationrecord.FieldSearchReference:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field search_reference", values[i])
			} else if value.Valid {
				_m.SearchReference = value.String
			}
		case verificationrecord.FieldSearchFee:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field search_fee", values[i])
			} else if value.Valid {
				_m.SearchFee = value.Float64
			}
		case verificationrecord.FieldApprovedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field approved_at", values[i])
			} else if value.Valid {
				_m.ApprovedAt = new(time.Time)
				*_m.ApprovedAt = value.Time
			}
		case verificationrecord.FieldRejectedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field rejected_at", values[i])
			} else if value.Valid {
				_m.RejectedAt = new(time.Time)
				*_m.RejectedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the VerificationRecord.
// This includes values selected through modifiers, order, etc.
func (_m *VerificationRecord) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this VerificationRecord.
// Note that you need to call VerificationRecord.Unwrap() before calling this method if this VerificationRecord
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *VerificationRecord) Update() *VerificationRecordUpdateOne {
	return NewVerificationRecordClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the VerificationRecord entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *VerificationRecord) Unwrap() *VerificationRecord {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: VerificationRecord is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *VerificationRecord) String() string {
	var builder strings.Builder
	builder.WriteString("VerificationRecord(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("subject_kind=")
	builder.WriteString(fmt.Sprintf("%v", _m.SubjectKind))
	builder.WriteString(", ")
	builder.WriteString("subject_id=")
	builder.WriteString(_m.SubjectID)
	builder.WriteString(", ")
	builder.WriteString("stage=")
	builder.WriteString(fmt.Sprintf("%v", _m.Stage))
	builder.WriteString(", ")
	builder.WriteString("stage_timestamps=")
	builder.WriteString(fmt.Sprintf("%v", _m.StageTimestamps))
	builder.WriteString(", ")
	builder.WriteString("external_responses=")
	builder.WriteString(fmt.Sprintf("%v", _m.ExternalResponses))
	builder.WriteString(", ")
	builder.WriteString("detail=")
	builder.WriteString(fmt.Sprintf("%v", _m.Detail))
	builder.WriteString(", ")
	builder.WriteString("search_reference=")
	builder.WriteString(_m.SearchReference)
	builder.WriteString(", ")
	builder.WriteString("search_fee=")
	builder.WriteString(fmt.Sprintf("%v", _m.SearchFee))
	builder.WriteString(", ")
	if v := _m.ApprovedAt; v != nil {
		builder.WriteString("approved_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.RejectedAt; v != nil {
		builder.WriteString("rejected_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteByte(')')
	return builder.String()
}

// VerificationRecords is a parsable slice of VerificationRecord.
type VerificationRecords []*VerificationRecord
