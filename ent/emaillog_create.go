// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"agriplot.io/agriplot/ent/emaillog"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
)

// EmailLogCreate is the builder for creating a EmailLog entity.
type EmailLogCreate struct {
	config
	mutation *EmailLogMutation
	hooks    []Hook
}

// SetCreatedAt sets the "created_at" field.
func (_c *EmailLogCreate) SetCreatedAt(v time.Time) *EmailLogCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *EmailLogCreate) SetNillableCreatedAt(v *time.Time) *EmailLogCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetRecipient sets the "recipient" field.
func (_c *EmailLogCreate) SetRecipient(v string) *EmailLogCreate {
	_c.mutation.SetRecipient(v)
	return _c
}

// SetSubject sets the "subject" field.
func (_c *EmailLogCreate) SetSubject(v string) *EmailLogCreate {
	_c.mutation.SetSubject(v)
	return _c
}

// SetTemplate sets the "template" field.
func (_c *EmailLogCreate) SetTemplate(v string) *EmailLogCreate {
	_c.mutation.SetTemplate(v)
	return _c
}

// SetContext sets the "context" field.
func (_c *EmailLogCreate) SetContext(v map[string]interface{}) *EmailLogCreate {
	_c.mutation.SetContext(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *EmailLogCreate) SetStatus(v emaillog.Status) *EmailLogCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *EmailLogCreate) SetNillableStatus(v *emaillog.Status) *EmailLogCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetErrorMessage sets the "error_message" field.
func (_c *EmailLogCreate) SetErrorMessage(v string) *EmailLogCreate {
	_c.mutation.SetErrorMessage(v)
	return _c
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_c *EmailLogCreate) SetNillableErrorMessage(v *string) *EmailLogCreate {
	if v != nil {
		_c.SetErrorMessage(*v)
	}
	return _c
}

// SetSentAt sets the "sent_at" field.
func (_c *EmailLogCreate) SetSentAt(v time.Time) *EmailLogCreate {
	_c.mutation.SetSentAt(v)
	return _c
}

// SetNillableSentAt sets the "sent_at" field if the given value is not nil.
func (_c *EmailLogCreate) SetNillableSentAt(v *time.Time) *EmailLogCreate {
	if v != nil {
		_c.SetSentAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *EmailLogCreate) SetID(v string) *EmailLogCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the EmailLogMutation object of the builder.
func (_c *EmailLogCreate) Mutation() *EmailLogMutation {
	return _c.mutation
}

// Save creates the EmailLog in the database.
func (_c *EmailLogCreate) Save(ctx context.Context) (*EmailLog, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *EmailLogCreate) SaveX(ctx context.Context) *EmailLog {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *EmailLogCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *EmailLogCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *EmailLogCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := emaillog.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.Status(); !ok {
		v := emaillog.DefaultStatus
		_c.mutation.SetStatus(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *EmailLogCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "EmailLog.created_at"`)}
	}
	if _, ok := _c.mutation.Recipient(); !ok {
		return &ValidationError{Name: "recipient", err: errors.New(`ent: missing required field "EmailLog.recipient"`)}
	}
	if v, ok := _c.mutation.Recipient(); ok {
		if err := emaillog.RecipientValidator(v); err != nil {
			return &ValidationError{Name: "recipient", err: fmt.Errorf(`ent: validator failed for field "EmailLog.recipient": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Subject(); !ok {
		return &ValidationError{Name: "subject", err: errors.New(`ent: missing required field "EmailLog.subject"`)}
	}
	if v, ok := _c.mutation.Subject(); ok {
		if err := emaillog.SubjectValidator(v); err != nil {
			return &ValidationError{Name: "subject", err: fmt.Errorf(`ent: validator failed for field "EmailLog.subject": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Template(); !ok {
		return &ValidationError{Name: "template", err: errors.New(`ent: missing required field "EmailLog.template"`)}
	}
	if v, ok := _c.mutation.Template(); ok {
		if err := emaillog.TemplateValidator(v); err != nil {
			return &ValidationError{Name: "template", err: fmt.Errorf(`ent: validator failed for field "EmailLog.template": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "EmailLog.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := emaillog.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "EmailLog.status": %w`, err)}
		}
	}
	return nil
}

func (_c *EmailLogCreate) sqlSave(ctx context.Context) (*EmailLog, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected EmailLog.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *EmailLogCreate) createSpec() (*EmailLog, *sqlgraph.CreateSpec) {
	var (
		_node = &EmailLog{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(emaillog.Table, sqlgraph.NewFieldSpec(emaillog.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(emaillog.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.Recipient(); ok {
		_spec.SetField(emaillog.FieldRecipient, field.TypeString, value)
		_node.Recipient = value
	}
	if value, ok := _c.mutation.Subject(); ok {
		_spec.SetField(emaillog.FieldSubject, field.TypeString, value)
		_node.Subject = value
	}
	if value, ok := _c.mutation.Template(); ok {
		_spec.SetField(emaillog.FieldTemplate, field.TypeString, value)
		_node.Template = value
	}
	if value, ok := _c.mutation.Context(); ok {
		_spec.SetField(emaillog.FieldContext, field.TypeJSON, value)
		_node.Context = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(emaillog.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.ErrorMessage(); ok {
		_spec.SetField(emaillog.FieldErrorMessage, field.TypeString, value)
		_node.ErrorMessage = value
	}
	if value, ok := _c.mutation.SentAt(); ok {
		_spec.SetField(emaillog.FieldSentAt, field.TypeTime, value)
		_node.SentAt = &value
	}
	return _node, _spec
}

// EmailLogCreateBulk is the builder for creating many EmailLog entities in bulk.
type EmailLogCreateBulk struct {
	config
	err      error
	builders []*EmailLogCreate
}

// Save creates the EmailLog entities in the database.
func (_c *EmailLogCreateBulk) Save(ctx context.Context) ([]*EmailLog, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*EmailLog, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*EmailLogMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *EmailLogCreateBulk) SaveX(ctx context.Context) []*EmailLog {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *EmailLogCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *EmailLogCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
