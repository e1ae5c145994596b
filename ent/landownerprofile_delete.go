// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"agriplot.io/agriplot/ent/landownerprofile"
	"agriplot.io/agriplot/ent/predicate"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
)

// LandownerProfileDelete is the builder for deleting a LandownerProfile entity.
type LandownerProfileDelete struct {
	config
	hooks    []Hook
	mutation *LandownerProfileMutation
}

// Where appends a list predicates to the LandownerProfileDelete builder.
func (_d *LandownerProfileDelete) Where(ps ...predicate.LandownerProfile) *LandownerProfileDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *LandownerProfileDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *LandownerProfileDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *LandownerProfileDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(landownerprofile.Table, sqlgraph.NewFieldSpec(landownerprofile.FieldID, field.TypeString))
	if ps := _d.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, _d.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	_d.mutation.done = true
	return affected, err
}

// LandownerProfileDeleteOne is the builder for deleting a single LandownerProfile entity.
type LandownerProfileDeleteOne struct {
	_d *LandownerProfileDelete
}

// Where appends a list predicates to the LandownerProfileDelete builder.
func (_d *LandownerProfileDeleteOne) Where(ps ...predicate.LandownerProfile) *LandownerProfileDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *LandownerProfileDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{landownerprofile.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *LandownerProfileDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
