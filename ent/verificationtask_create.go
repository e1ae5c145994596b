// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"agriplot.io/agriplot/ent/plot"
	"agriplot.io/agriplot/ent/verificationtask"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
)

// VerificationTaskCreate is the builder for creating a VerificationTask entity.
type VerificationTaskCreate struct {
	config
	mutation *VerificationTaskMutation
	hooks    []Hook
}

// SetCreatedAt sets the "created_at" field.
func (_c *VerificationTaskCreate) SetCreatedAt(v time.Time) *VerificationTaskCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *VerificationTaskCreate) SetNillableCreatedAt(v *time.Time) *VerificationTaskCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *VerificationTaskCreate) SetUpdatedAt(v time.Time) *VerificationTaskCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *VerificationTaskCreate) SetNillableUpdatedAt(v *time.Time) *VerificationTaskCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetType sets the "type" field.
func (_c *VerificationTaskCreate) SetType(v verificationtask.Type) *VerificationTaskCreate {
	_c.mutation.SetType(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *VerificationTaskCreate) SetStatus(v verificationtask.Status) *VerificationTaskCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *VerificationTaskCreate) SetNillableStatus(v *verificationtask.Status) *VerificationTaskCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetAssigneeID sets the "assignee_id" field.
func (_c *VerificationTaskCreate) SetAssigneeID(v string) *VerificationTaskCreate {
	_c.mutation.SetAssigneeID(v)
	return _c
}

// SetNillableAssigneeID sets the "assignee_id" field if the given value is not nil.
func (_c *VerificationTaskCreate) SetNillableAssigneeID(v *string) *VerificationTaskCreate {
	if v != nil {
		_c.SetAssigneeID(*v)
	}
	return _c
}

// SetApproved sets the "approved" field.
func (_c *VerificationTaskCreate) SetApproved(v bool) *VerificationTaskCreate {
	_c.mutation.SetApproved(v)
	return _c
}

// SetNillableApproved sets the "approved" field if the given value is not nil.
func (_c *VerificationTaskCreate) SetNillableApproved(v *bool) *VerificationTaskCreate {
	if v != nil {
		_c.SetApproved(*v)
	}
	return _c
}

// SetNotes sets the "notes" field.
func (_c *VerificationTaskCreate) SetNotes(v string) *VerificationTaskCreate {
	_c.mutation.SetNotes(v)
	return _c
}

// SetNillableNotes sets the "notes" field if the given value is not nil.
func (_c *VerificationTaskCreate) SetNillableNotes(v *string) *VerificationTaskCreate {
	if v != nil {
		_c.SetNotes(*v)
	}
	return _c
}

// SetAssignedAt sets the "assigned_at" field.
func (_c *VerificationTaskCreate) SetAssignedAt(v time.Time) *VerificationTaskCreate {
	_c.mutation.SetAssignedAt(v)
	return _c
}

// SetNillableAssignedAt sets the "assigned_at" field if the given value is not nil.
func (_c *VerificationTaskCreate) SetNillableAssignedAt(v *time.Time) *VerificationTaskCreate {
	if v != nil {
		_c.SetAssignedAt(*v)
	}
	return _c
}

// SetCompletedAt sets the "completed_at" field.
func (_c *VerificationTaskCreate) SetCompletedAt(v time.Time) *VerificationTaskCreate {
	_c.mutation.SetCompletedAt(v)
	return _c
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_c *VerificationTaskCreate) SetNillableCompletedAt(v *time.Time) *VerificationTaskCreate {
	if v != nil {
		_c.SetCompletedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *VerificationTaskCreate) SetID(v string) *VerificationTaskCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetPlotID sets the "plot" edge to the Plot entity by ID.
func (_c *VerificationTaskCreate) SetPlotID(id string) *VerificationTaskCreate {
	_c.mutation.SetPlotID(id)
	return _c
}

// SetPlot sets the "plot" edge to the Plot entity.
func (_c *VerificationTaskCreate) SetPlot(v *Plot) *VerificationTaskCreate {
	return _c.SetPlotID(v.ID)
}

// Mutation returns the VerificationTaskMutation object of the builder.
func (_c *VerificationTaskCreate) Mutation() *VerificationTaskMutation {
	return _c.mutation
}

// Save creates the VerificationTask in the database.
func (_c *VerificationTaskCreate) Save(ctx context.Context) (*VerificationTask, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *VerificationTaskCreate) SaveX(ctx context.Context) *VerificationTask {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *VerificationTaskCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *VerificationTaskCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *VerificationTaskCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := verificationtask.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := verificationtask.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.Status(); !ok {
		v := verificationtask.DefaultStatus
		_c.mutation.SetStatus(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *VerificationTaskCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "VerificationTask.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "VerificationTask.updated_at"`)}
	}
	if _, ok := _c.mutation.GetType(); !ok {
		return &ValidationError{Name: "type", err: errors.New(`ent: missing required field "VerificationTask.type"`)}
	}
	if v, ok := _c.mutation.GetType(); ok {
		if err := verificationtask.TypeValidator(v); err != nil {
			return &ValidationError{Name: "type", err: fmt.Errorf(`ent: validator failed for field "VerificationTask.type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "VerificationTask.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := verificationtask.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "VerificationTask.status": %w`, err)}
		}
	}
	if len(_c.mutation.PlotIDs()) == 0 {
		return &ValidationError{Name: "plot", err: errors.New(`ent: missing required edge "VerificationTask.plot"`)}
	}
	return nil
}

func (_c *VerificationTaskCreate) sqlSave(ctx context.Context) (*VerificationTask, error) {
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
			return nil, fmt.Errorf("unexpected VerificationTask.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *VerificationTaskCreate) createSpec() (*VerificationTask, *sqlgraph.CreateSpec) {
	var (
		_node = &VerificationTask{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(verificationtask.Table, sqlgraph.NewFieldSpec(verificationtask.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(verificationtask.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(verificationtask.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.GetType(); ok {
		_spec.SetField(verificationtask.FieldType, field.TypeEnum, value)
		_node.Type = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(verificationtask.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.AssigneeID(); ok {
		_spec.SetField(verificationtask.FieldAssigneeID, field.TypeString, value)
		_node.AssigneeID = value
	}
	if value, ok := _c.mutation.Approved(); ok {
		_spec.SetField(verificationtask.FieldApproved, field.TypeBool, value)
		_node.Approved = &value
	}
	if value, ok := _c.mutation.Notes(); ok {
		_spec.SetField(verificationtask.FieldNotes, field.TypeString, value)
		_node.Notes = value
	}
	if value, ok := _c.mutation.AssignedAt(); ok {
		_spec.SetField(verificationtask.FieldAssignedAt, field.TypeTime, value)
		_node.AssignedAt = &value
	}
	if value, ok := _c.mutation.CompletedAt(); ok {
		_spec.SetField(verificationtask.FieldCompletedAt, field.TypeTime, value)
		_node.CompletedAt = &value
	}
	if nodes := _c.mutation.PlotIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   verificationtask.PlotTable,
			Columns: []string{verificationtask.PlotColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(plot.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.plot_tasks = &nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// VerificationTaskCreateBulk is the builder for creating many VerificationTask entities in bulk.
type VerificationTaskCreateBulk struct {
	config
	err      error
	builders []*VerificationTaskCreate
}

// Save creates the VerificationTask entities in the database.
func (_c *VerificationTaskCreateBulk) Save(ctx context.Context) ([]*VerificationTask, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*VerificationTask, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*VerificationTaskMutation)
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
func (_c *VerificationTaskCreateBulk) SaveX(ctx context.Context) []*VerificationTask {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *VerificationTaskCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *VerificationTaskCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
