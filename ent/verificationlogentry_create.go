// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"agriplot.io/agriplot/ent/verificationlogentry"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
)

// VerificationLogEntryCreate is the builder for creating a VerificationLogEntry entity.
type VerificationLogEntryCreate struct {
	config
	mutation *VerificationLogEntryMutation
	hooks    []Hook
}

// SetCreatedAt sets the "created_at" field.
func (_c *VerificationLogEntryCreate) SetCreatedAt(v time.Time) *VerificationLogEntryCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *VerificationLogEntryCreate) SetNillableCreatedAt(v *time.Time) *VerificationLogEntryCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetAction sets the "action" field.
func (_c *VerificationLogEntryCreate) SetAction(v string) *VerificationLogEntryCreate {
	_c.mutation.SetAction(v)
	return _c
}

// SetSubjectKind sets the "subject_kind" field.
func (_c *VerificationLogEntryCreate) SetSubjectKind(v string) *VerificationLogEntryCreate {
	_c.mutation.SetSubjectKind(v)
	return _c
}

// SetSubjectID sets the "subject_id" field.
func (_c *VerificationLogEntryCreate) SetSubjectID(v string) *VerificationLogEntryCreate {
	_c.mutation.SetSubjectID(v)
	return _c
}

// SetActor sets the "actor" field.
func (_c *VerificationLogEntryCreate) SetActor(v string) *VerificationLogEntryCreate {
	_c.mutation.SetActor(v)
	return _c
}

// SetComment sets the "comment" field.
func (_c *VerificationLogEntryCreate) SetComment(v string) *VerificationLogEntryCreate {
	_c.mutation.SetComment(v)
	return _c
}

// SetNillableComment sets the "comment" field if the given value is not nil.
func (_c *VerificationLogEntryCreate) SetNillableComment(v *string) *VerificationLogEntryCreate {
	if v != nil {
		_c.SetComment(*v)
	}
	return _c
}

// SetDetails sets the "details" field.
func (_c *VerificationLogEntryCreate) SetDetails(v map[string]interface{}) *VerificationLogEntryCreate {
	_c.mutation.SetDetails(v)
	return _c
}

// SetID sets the "id" field.
func (_c *VerificationLogEntryCreate) SetID(v string) *VerificationLogEntryCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the VerificationLogEntryMutation object of the builder.
func (_c *VerificationLogEntryCreate) Mutation() *VerificationLogEntryMutation {
	return _c.mutation
}

// Save creates the VerificationLogEntry in the database.
func (_c *VerificationLogEntryCreate) Save(ctx context.Context) (*VerificationLogEntry, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *VerificationLogEntryCreate) SaveX(ctx context.Context) *VerificationLogEntry {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *VerificationLogEntryCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *VerificationLogEntryCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *VerificationLogEntryCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := verificationlogentry.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *VerificationLogEntryCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "VerificationLogEntry.created_at"`)}
	}
	if _, ok := _c.mutation.Action(); !ok {
		return &ValidationError{Name: "action", err: errors.New(`ent: missing required field "VerificationLogEntry.action"`)}
	}
	if v, ok := _c.mutation.Action(); ok {
		if err := verificationlogentry.ActionValidator(v); err != nil {
			return &ValidationError{Name: "action", err: fmt.Errorf(`ent: validator failed for field "VerificationLogEntry.action": %w`, err)}
		}
	}
	if _, ok := _c.mutation.SubjectKind(); !ok {
		return &ValidationError{Name: "subject_kind", err: errors.New(`ent: missing required field "VerificationLogEntry.subject_kind"`)}
	}
	if v, ok := _c.mutation.SubjectKind(); ok {
		if err := verificationlogentry.SubjectKindValidator(v); err != nil {
			return &ValidationError{Name: "subject_kind", err: fmt.Errorf(`ent: validator failed for field "VerificationLogEntry.subject_kind": %w`, err)}
		}
	}
	if _, ok := _c.mutation.SubjectID(); !ok {
		return &ValidationError{Name: "subject_id", err: errors.New(`ent: missing required field "VerificationLogEntry.subject_id"`)}
	}
	if v, ok := _c.mutation.SubjectID(); ok {
		if err := verificationlogentry.SubjectIDValidator(v); err != nil {
			return &ValidationError{Name: "subject_id", err: fmt.Errorf(`ent: validator failed for field "VerificationLogEntry.subject_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Actor(); !ok {
		return &ValidationError{Name: "actor", err: errors.New(`ent: missing required field "VerificationLogEntry.actor"`)}
	}
	if v, ok := _c.mutation.Actor(); ok {
		if err := verificationlogentry.ActorValidator(v); err != nil {
			return &ValidationError{Name: "actor", err: fmt.Errorf(`ent: validator failed for field "VerificationLogEntry.actor": %w`, err)}
		}
	}
	return nil
}

func (_c *VerificationLogEntryCreate) sqlSave(ctx context.Context) (*VerificationLogEntry, error) {
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
			return nil, fmt.Errorf("unexpected VerificationLogEntry.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *VerificationLogEntryCreate) createSpec() (*VerificationLogEntry, *sqlgraph.CreateSpec) {
	var (
		_node = &VerificationLogEntry{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(verificationlogentry.Table, sqlgraph.NewFieldSpec(verificationlogentry.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(verificationlogentry.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.Action(); ok {
		_spec.SetField(verificationlogentry.FieldAction, field.TypeString, value)
		_node.Action = value
	}
	if value, ok := _c.mutation.SubjectKind(); ok {
		_spec.SetField(verificationlogentry.FieldSubjectKind, field.TypeString, value)
		_node.SubjectKind = value
	}
	if value, ok := _c.mutation.SubjectID(); ok {
		_spec.SetField(verificationlogentry.FieldSubjectID, field.TypeString, value)
		_node.SubjectID = value
	}
	if value, ok := _c.mutation.Actor(); ok {
		_spec.SetField(verificationlogentry.FieldActor, field.TypeString, value)
		_node.Actor = value
	}
	if value, ok := _c.mutation.Comment(); ok {
		_spec.SetField(verificationlogentry.FieldComment, field.TypeString, value)
		_node.Comment = value
	}
	if value, ok := _c.mutation.Details(); ok {
		_spec.SetField(verificationlogentry.FieldDetails, field.TypeJSON, value)
		_node.Details = value
	}
	return _node, _spec
}

// VerificationLogEntryCreateBulk is the builder for creating many VerificationLogEntry entities in bulk.
type VerificationLogEntryCreateBulk struct {
	config
	err      error
	builders []*VerificationLogEntryCreate
}

// Save creates the VerificationLogEntry entities in the database.
func (_c *VerificationLogEntryCreateBulk) Save(ctx context.Context) ([]*VerificationLogEntry, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*VerificationLogEntry, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*VerificationLogEntryMutation)
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
func (_c *VerificationLogEntryCreateBulk) SaveX(ctx context.Context) []*VerificationLogEntry {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *VerificationLogEntryCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *VerificationLogEntryCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
