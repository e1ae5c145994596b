// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"agriplot.io/agriplot/ent/predicate"
	"agriplot.io/agriplot/ent/verificationlogentry"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
)

// VerificationLogEntryUpdate is the builder for updating VerificationLogEntry entities.
type VerificationLogEntryUpdate struct {
	config
	hooks    []Hook
	mutation *VerificationLogEntryMutation
}

// Where appends a list predicates to the VerificationLogEntryUpdate builder.
func (_u *VerificationLogEntryUpdate) Where(ps ...predicate.VerificationLogEntry) *VerificationLogEntryUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// Mutation returns the VerificationLogEntryMutation object of the builder.
func (_u *VerificationLogEntryUpdate) Mutation() *VerificationLogEntryMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *VerificationLogEntryUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *VerificationLogEntryUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *VerificationLogEntryUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *VerificationLogEntryUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *VerificationLogEntryUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(verificationlogentry.Table, verificationlogentry.Columns, sqlgraph.NewFieldSpec(verificationlogentry.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if _u.mutation.CommentCleared() {
		_spec.ClearField(verificationlogentry.FieldComment, field.TypeString)
	}
	if _u.mutation.DetailsCleared() {
		_spec.ClearField(verificationlogentry.FieldDetails, field.TypeJSON)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{verificationlogentry.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// VerificationLogEntryUpdateOne is the builder for updating a single VerificationLogEntry entity.
type VerificationLogEntryUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *VerificationLogEntryMutation
}

// Mutation returns the VerificationLogEntryMutation object of the builder.
func (_u *VerificationLogEntryUpdateOne) Mutation() *VerificationLogEntryMutation {
	return _u.mutation
}

// Where appends a list predicates to the VerificationLogEntryUpdate builder.
func (_u *VerificationLogEntryUpdateOne) Where(ps ...predicate.VerificationLogEntry) *VerificationLogEntryUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *VerificationLogEntryUpdateOne) Select(field string, fields ...string) *VerificationLogEntryUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated VerificationLogEntry entity.
func (_u *VerificationLogEntryUpdateOne) Save(ctx context.Context) (*VerificationLogEntry, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *VerificationLogEntryUpdateOne) SaveX(ctx context.Context) *VerificationLogEntry {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *VerificationLogEntryUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *VerificationLogEntryUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *VerificationLogEntryUpdateOne) sqlSave(ctx context.Context) (_node *VerificationLogEntry, err error) {
	_spec := sqlgraph.NewUpdateSpec(verificationlogentry.Table, verificationlogentry.Columns, sqlgraph.NewFieldSpec(verificationlogentry.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "VerificationLogEntry.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, verificationlogentry.FieldID)
		for _, f := range fields {
			if !verificationlogentry.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != verificationlogentry.FieldID {
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
	if _u.mutation.CommentCleared() {
		_spec.ClearField(verificationlogentry.FieldComment, field.TypeString)
	}
	if _u.mutation.DetailsCleared() {
		_spec.ClearField(verificationlogentry.FieldDetails, field.TypeJSON)
	}
	_node = &VerificationLogEntry{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{verificationlogentry.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
