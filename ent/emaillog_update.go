// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"agriplot.io/agriplot/ent/emaillog"
	"agriplot.io/agriplot/ent/predicate"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
)

// EmailLogUpdate is the builder for updating EmailLog entities.
type EmailLogUpdate struct {
	config
	hooks    []Hook
	mutation *EmailLogMutation
}

// Where appends a list predicates to the EmailLogUpdate builder.
func (_u *EmailLogUpdate) Where(ps ...predicate.EmailLog) *EmailLogUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetRecipient sets the "recipient" field.
func (_u *EmailLogUpdate) SetRecipient(v string) *EmailLogUpdate {
	_u.mutation.SetRecipient(v)
	return _u
}

// SetNillableRecipient sets the "recipient" field if the given value is not nil.
func (_u *EmailLogUpdate) SetNillableRecipient(v *string) *EmailLogUpdate {
	if v != nil {
		_u.SetRecipient(*v)
	}
	return _u
}

// SetSubject sets the "subject" field.
func (_u *EmailLogUpdate) SetSubject(v string) *EmailLogUpdate {
	_u.mutation.SetSubject(v)
	return _u
}

// SetNillableSubject sets the "subject" field if the given value is not nil.
func (_u *EmailLogUpdate) SetNillableSubject(v *string) *EmailLogUpdate {
	if v != nil {
		_u.SetSubject(*v)
	}
	return _u
}

// SetTemplate sets the "template" field.
func (_u *EmailLogUpdate) SetTemplate(v string) *EmailLogUpdate {
	_u.mutation.SetTemplate(v)
	return _u
}

// SetNillableTemplate sets the "template" field if the given value is not nil.
func (_u *EmailLogUpdate) SetNillableTemplate(v *string) *EmailLogUpdate {
	if v != nil {
		_u.SetTemplate(*v)
	}
	return _u
}

// SetContext sets the "context" field.
func (_u *EmailLogUpdate) SetContext(v map[string]interface{}) *EmailLogUpdate {
	_u.mutation.SetContext(v)
	return _u
}

// ClearContext clears the value of the "context" field.
func (_u *EmailLogUpdate) ClearContext() *EmailLogUpdate {
	_u.mutation.ClearContext()
	return _u
}

// SetStatus sets the "status" field.
func (_u *EmailLogUpdate) SetStatus(v emaillog.Status) *EmailLogUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *EmailLogUpdate) SetNillableStatus(v *emaillog.Status) *EmailLogUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *EmailLogUpdate) SetErrorMessage(v string) *EmailLogUpdate {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *EmailLogUpdate) SetNillableErrorMessage(v *string) *EmailLogUpdate {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *EmailLogUpdate) ClearErrorMessage() *EmailLogUpdate {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetSentAt sets the "sent_at" field.
func (_u *EmailLogUpdate) SetSentAt(v time.Time) *EmailLogUpdate {
	_u.mutation.SetSentAt(v)
	return _u
}

// SetNillableSentAt sets the "sent_at" field if the given value is not nil.
func (_u *EmailLogUpdate) SetNillableSentAt(v *time.Time) *EmailLogUpdate {
	if v != nil {
		_u.SetSentAt(*v)
	}
	return _u
}

// ClearSentAt clears the value of the "sent_at" field.
func (_u *EmailLogUpdate) ClearSentAt() *EmailLogUpdate {
	_u.mutation.ClearSentAt()
	return _u
}

// Mutation returns the EmailLogMutation object of the builder.
func (_u *EmailLogUpdate) Mutation() *EmailLogMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *EmailLogUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *EmailLogUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *EmailLogUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *EmailLogUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *EmailLogUpdate) check() error {
	if v, ok := _u.mutation.Recipient(); ok {
		if err := emaillog.RecipientValidator(v); err != nil {
			return &ValidationError{Name: "recipient", err: fmt.Errorf(`ent: validator failed for field "EmailLog.recipient": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Subject(); ok {
		if err := emaillog.SubjectValidator(v); err != nil {
			return &ValidationError{Name: "subject", err: fmt.Errorf(`ent: validator failed for field "EmailLog.subject": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Template(); ok {
		if err := emaillog.TemplateValidator(v); err != nil {
			return &ValidationError{Name: "template", err: fmt.Errorf(`ent: validator failed for field "EmailLog.template": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := emaillog.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "EmailLog.status": %w`, err)}
		}
	}
	return nil
}

func (_u *EmailLogUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(emaillog.Table, emaillog.Columns, sqlgraph.NewFieldSpec(emaillog.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Recipient(); ok {
		_spec.SetField(emaillog.FieldRecipient, field.TypeString, value)
	}
	if value, ok := _u.mutation.Subject(); ok {
		_spec.SetField(emaillog.FieldSubject, field.TypeString, value)
	}
	if value, ok := _u.mutation.Template(); ok {
		_spec.SetField(emaillog.FieldTemplate, field.TypeString, value)
	}
	if value, ok := _u.mutation.Context(); ok {
		_spec.SetField(emaillog.FieldContext, field.TypeJSON, value)
	}
	if _u.mutation.ContextCleared() {
		_spec.ClearField(emaillog.FieldContext, field.TypeJSON)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(emaillog.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(emaillog.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(emaillog.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.SentAt(); ok {
		_spec.SetField(emaillog.FieldSentAt, field.TypeTime, value)
	}
	if _u.mutation.SentAtCleared() {
		_spec.ClearField(emaillog.FieldSentAt, field.TypeTime)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{emaillog.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// EmailLogUpdateOne is the builder for updating a single EmailLog entity.
type EmailLogUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *EmailLogMutation
}

// SetRecipient sets the "recipient" field.
func (_u *EmailLogUpdateOne) SetRecipient(v string) *EmailLogUpdateOne {
	_u.mutation.SetRecipient(v)
	return _u
}

// SetNillableRecipient sets the "recipient" field if the given value is not nil.
func (_u *EmailLogUpdateOne) SetNillableRecipient(v *string) *EmailLogUpdateOne {
	if v != nil {
		_u.SetRecipient(*v)
	}
	return _u
}

// SetSubject sets the "subject" field.
func (_u *EmailLogUpdateOne) SetSubject(v string) *EmailLogUpdateOne {
	_u.mutation.SetSubject(v)
	return _u
}

// SetNillableSubject sets the "subject" field if the given value is not nil.
func (_u *EmailLogUpdateOne) SetNillableSubject(v *string) *EmailLogUpdateOne {
	if v != nil {
		_u.SetSubject(*v)
	}
	return _u
}

// SetTemplate sets the "template" field.
func (_u *EmailLogUpdateOne) SetTemplate(v string) *EmailLogUpdateOne {
	_u.mutation.SetTemplate(v)
	return _u
}

// SetNillableTemplate sets the "template" field if the given value is not nil.
func (_u *EmailLogUpdateOne) SetNillableTemplate(v *string) *EmailLogUpdateOne {
	if v != nil {
		_u.SetTemplate(*v)
	}
	return _u
}

// SetContext sets the "context" field.
func (_u *EmailLogUpdateOne) SetContext(v map[string]interface{}) *EmailLogUpdateOne {
	_u.mutation.SetContext(v)
	return _u
}

// ClearContext clears the value of the "context" field.
func (_u *EmailLogUpdateOne) ClearContext() *EmailLogUpdateOne {
	_u.mutation.ClearContext()
	return _u
}

// SetStatus sets the "status" field.
func (_u *EmailLogUpdateOne) SetStatus(v emaillog.Status) *EmailLogUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *EmailLogUpdateOne) SetNillableStatus(v *emaillog.Status) *EmailLogUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *EmailLogUpdateOne) SetErrorMessage(v string) *EmailLogUpdateOne {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *EmailLogUpdateOne) SetNillableErrorMessage(v *string) *EmailLogUpdateOne {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *EmailLogUpdateOne) ClearErrorMessage() *EmailLogUpdateOne {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetSentAt sets the "sent_at" field.
func (_u *EmailLogUpdateOne) SetSentAt(v time.Time) *EmailLogUpdateOne {
	_u.mutation.SetSentAt(v)
	return _u
}

// SetNillableSentAt sets the "sent_at" field if the given value is not nil.
func (_u *EmailLogUpdateOne) SetNillableSentAt(v *time.Time) *EmailLogUpdateOne {
	if v != nil {
		_u.SetSentAt(*v)
	}
	return _u
}

// ClearSentAt clears the value of the "sent_at" field.
func (_u *EmailLogUpdateOne) ClearSentAt() *EmailLogUpdateOne {
	_u.mutation.ClearSentAt()
	return _u
}

// Mutation returns the EmailLogMutation object of the builder.
func (_u *EmailLogUpdateOne) Mutation() *EmailLogMutation {
	return _u.mutation
}

// Where appends a list predicates to the EmailLogUpdate builder.
func (_u *EmailLogUpdateOne) Where(ps ...predicate.EmailLog) *EmailLogUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *EmailLogUpdateOne) Select(field string, fields ...string) *EmailLogUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated EmailLog entity.
func (_u *EmailLogUpdateOne) Save(ctx context.Context) (*EmailLog, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *EmailLogUpdateOne) SaveX(ctx context.Context) *EmailLog {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *EmailLogUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *EmailLogUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *EmailLogUpdateOne) check() error {
	if v, ok := _u.mutation.Recipient(); ok {
		if err := emaillog.RecipientValidator(v); err != nil {
			return &ValidationError{Name: "recipient", err: fmt.Errorf(`ent: validator failed for field "EmailLog.recipient": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Subject(); ok {
		if err := emaillog.SubjectValidator(v); err != nil {
			return &ValidationError{Name: "subject", err: fmt.Errorf(`ent: validator failed for field "EmailLog.subject": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Template(); ok {
		if err := emaillog.TemplateValidator(v); err != nil {
			return &ValidationError{Name: "template", err: fmt.Errorf(`ent: validator failed for field "EmailLog.template": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := emaillog.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "EmailLog.status": %w`, err)}
		}
	}
	return nil
}

func (_u *EmailLogUpdateOne) sqlSave(ctx context.Context) (_node *EmailLog, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(emaillog.Table, emaillog.Columns, sqlgraph.NewFieldSpec(emaillog.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "EmailLog.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, emaillog.FieldID)
		for _, f := range fields {
			if !emaillog.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != emaillog.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Recipient(); ok {
		_spec.SetField(emaillog.FieldRecipient, field.TypeString, value)
	}
	if value, ok := _u.mutation.Subject(); ok {
		_spec.SetField(emaillog.FieldSubject, field.TypeString, value)
	}
	if value, ok := _u.mutation.Template(); ok {
		_spec.SetField(emaillog.FieldTemplate, field.TypeString, value)
	}
	if value, ok := _u.mutation.Context(); ok {
		_spec.SetField(emaillog.FieldContext, field.TypeJSON, value)
	}
	if _u.mutation.ContextCleared() {
		_spec.ClearField(emaillog.FieldContext, field.TypeJSON)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(emaillog.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(emaillog.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(emaillog.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.SentAt(); ok {
		_spec.SetField(emaillog.FieldSentAt, field.TypeTime, value)
	}
	if _u.mutation.SentAtCleared() {
		_spec.ClearField(emaillog.FieldSentAt, field.TypeTime)
	}
	_node = &EmailLog{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{emaillog.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
