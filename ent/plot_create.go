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

// PlotCreate is the builder for creating a Plot entity.
type PlotCreate struct {
	config
	mutation *PlotMutation
	hooks    []Hook
}

// SetCreatedAt sets the "created_at" field.
func (_c *PlotCreate) SetCreatedAt(v time.Time) *PlotCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *PlotCreate) SetNillableCreatedAt(v *time.Time) *PlotCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *PlotCreate) SetUpdatedAt(v time.Time) *PlotCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *PlotCreate) SetNillableUpdatedAt(v *time.Time) *PlotCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetTitle sets the "title" field.
func (_c *PlotCreate) SetTitle(v string) *PlotCreate {
	_c.mutation.SetTitle(v)
	return _c
}

// SetLocation sets the "location" field.
func (_c *PlotCreate) SetLocation(v string) *PlotCreate {
	_c.mutation.SetLocation(v)
	return _c
}

// SetArea sets the "area" field.
func (_c *PlotCreate) SetArea(v float64) *PlotCreate {
	_c.mutation.SetArea(v)
	return _c
}

// SetPrice sets the "price" field.
func (_c *PlotCreate) SetPrice(v float64) *PlotCreate {
	_c.mutation.SetPrice(v)
	return _c
}

// SetLandType sets the "land_type" field.
func (_c *PlotCreate) SetLandType(v plot.LandType) *PlotCreate {
	_c.mutation.SetLandType(v)
	return _c
}

// SetNillableLandType sets the "land_type" field if the given value is not nil.
func (_c *PlotCreate) SetNillableLandType(v *plot.LandType) *PlotCreate {
	if v != nil {
		_c.SetLandType(*v)
	}
	return _c
}

// SetLandownerID sets the "landowner_id" field.
func (_c *PlotCreate) SetLandownerID(v string) *PlotCreate {
	_c.mutation.SetLandownerID(v)
	return _c
}

// SetNillableLandownerID sets the "landowner_id" field if the given value is not nil.
func (_c *PlotCreate) SetNillableLandownerID(v *string) *PlotCreate {
	if v != nil {
		_c.SetLandownerID(*v)
	}
	return _c
}

// SetAgentID sets the "agent_id" field.
func (_c *PlotCreate) SetAgentID(v string) *PlotCreate {
	_c.mutation.SetAgentID(v)
	return _c
}

// SetNillableAgentID sets the "agent_id" field if the given value is not nil.
func (_c *PlotCreate) SetNillableAgentID(v *string) *PlotCreate {
	if v != nil {
		_c.SetAgentID(*v)
	}
	return _c
}

// SetParcelNumber sets the "parcel_number" field.
func (_c *PlotCreate) SetParcelNumber(v string) *PlotCreate {
	_c.mutation.SetParcelNumber(v)
	return _c
}

// SetNillableParcelNumber sets the "parcel_number" field if the given value is not nil.
func (_c *PlotCreate) SetNillableParcelNumber(v *string) *PlotCreate {
	if v != nil {
		_c.SetParcelNumber(*v)
	}
	return _c
}

// SetSoilType sets the "soil_type" field.
func (_c *PlotCreate) SetSoilType(v string) *PlotCreate {
	_c.mutation.SetSoilType(v)
	return _c
}

// SetNillableSoilType sets the "soil_type" field if the given value is not nil.
func (_c *PlotCreate) SetNillableSoilType(v *string) *PlotCreate {
	if v != nil {
		_c.SetSoilType(*v)
	}
	return _c
}

// SetListed sets the "listed" field.
func (_c *PlotCreate) SetListed(v bool) *PlotCreate {
	_c.mutation.SetListed(v)
	return _c
}

// SetNillableListed sets the "listed" field if the given value is not nil.
func (_c *PlotCreate) SetNillableListed(v *bool) *PlotCreate {
	if v != nil {
		_c.SetListed(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *PlotCreate) SetID(v string) *PlotCreate {
	_c.mutation.SetID(v)
	return _c
}

// AddTaskIDs adds the "tasks" edge to the VerificationTask entity by IDs.
func (_c *PlotCreate) AddTaskIDs(ids ...string) *PlotCreate {
	_c.mutation.AddTaskIDs(ids...)
	return _c
}

// AddTasks adds the "tasks" edges to the VerificationTask entity.
func (_c *PlotCreate) AddTasks(v ...*VerificationTask) *PlotCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddTaskIDs(ids...)
}

// Mutation returns the PlotMutation object of the builder.
func (_c *PlotCreate) Mutation() *PlotMutation {
	return _c.mutation
}

// Save creates the Plot in the database.
func (_c *PlotCreate) Save(ctx context.Context) (*Plot, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *PlotCreate) SaveX(ctx context.Context) *Plot {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PlotCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PlotCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *PlotCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := plot.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := plot.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.LandType(); !ok {
		v := plot.DefaultLandType
		_c.mutation.SetLandType(v)
	}
	if _, ok := _c.mutation.Listed(); !ok {
		v := plot.DefaultListed
		_c.mutation.SetListed(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *PlotCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Plot.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Plot.updated_at"`)}
	}
	if _, ok := _c.mutation.Title(); !ok {
		return &ValidationError{Name: "title", err: errors.New(`ent: missing required field "Plot.title"`)}
	}
	if v, ok := _c.mutation.Title(); ok {
		if err := plot.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "Plot.title": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Location(); !ok {
		return &ValidationError{Name: "location", err: errors.New(`ent: missing required field "Plot.location"`)}
	}
	if v, ok := _c.mutation.Location(); ok {
		if err := plot.LocationValidator(v); err != nil {
			return &ValidationError{Name: "location", err: fmt.Errorf(`ent: validator failed for field "Plot.location": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Area(); !ok {
		return &ValidationError{Name: "area", err: errors.New(`ent: missing required field "Plot.area"`)}
	}
	if v, ok := _c.mutation.Area(); ok {
		if err := plot.AreaValidator(v); err != nil {
			return &ValidationError{Name: "area", err: fmt.Errorf(`ent: validator failed for field "Plot.area": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Price(); !ok {
		return &ValidationError{Name: "price", err: errors.New(`ent: missing required field "Plot.price"`)}
	}
	if _, ok := _c.mutation.LandType(); !ok {
		return &ValidationError{Name: "land_type", err: errors.New(`ent: missing required field "Plot.land_type"`)}
	}
	if v, ok := _c.mutation.LandType(); ok {
		if err := plot.LandTypeValidator(v); err != nil {
			return &ValidationError{Name: "land_type", err: fmt.Errorf(`ent: validator failed for field "Plot.land_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Listed(); !ok {
		return &ValidationError{Name: "listed", err: errors.New(`ent: missing required field "Plot.listed"`)}
	}
	return nil
}

func (_c *PlotCreate) sqlSave(ctx context.Context) (*Plot, error) {
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
			return nil, fmt.Errorf("unexpected Plot.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *PlotCreate) createSpec() (*Plot, *sqlgraph.CreateSpec) {
	var (
		_node = &Plot{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(plot.Table, sqlgraph.NewFieldSpec(plot.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(plot.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(plot.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.Title(); ok {
		_spec.SetField(plot.FieldTitle, field.TypeString, value)
		_node.Title = value
	}
	if value, ok := _c.mutation.Location(); ok {
		_spec.SetField(plot.FieldLocation, field.TypeString, value)
		_node.Location = value
	}
	if value, ok := _c.mutation.Area(); ok {
		_spec.SetField(plot.FieldArea, field.TypeFloat64, value)
		_node.Area = value
	}
	if value, ok := _c.mutation.Price(); ok {
		_spec.SetField(plot.FieldPrice, field.TypeFloat64, value)
		_node.Price = value
	}
	if value, ok := _c.mutation.LandType(); ok {
		_spec.SetField(plot.FieldLandType, field.TypeEnum, value)
		_node.LandType = value
	}
	if value, ok := _c.mutation.LandownerID(); ok {
		_spec.SetField(plot.FieldLandownerID, field.TypeString, value)
		_node.LandownerID = value
	}
	if value, ok := _c.mutation.AgentID(); ok {
		_spec.SetField(plot.FieldAgentID, field.TypeString, value)
		_node.AgentID = value
	}
	if value, ok := _c.mutation.ParcelNumber(); ok {
		_spec.SetField(plot.FieldParcelNumber, field.TypeString, value)
		_node.ParcelNumber = value
	}
	if value, ok := _c.mutation.SoilType(); ok {
		_spec.SetField(plot.FieldSoilType, field.TypeString, value)
		_node.SoilType = value
	}
	if value, ok := _c.mutation.Listed(); ok {
		_spec.SetField(plot.FieldListed, field.TypeBool, value)
		_node.Listed = value
	}
	if nodes := _c.mutation.TasksIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   plot.TasksTable,
			Columns: []string{plot.TasksColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(verificationtask.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// PlotCreateBulk is the builder for creating many Plot entities in bulk.
type PlotCreateBulk struct {
	config
	err      error
	builders []*PlotCreate
}

// Save creates the Plot entities in the database.
func (_c *PlotCreateBulk) Save(ctx context.Context) ([]*Plot, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Plot, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*PlotMutation)
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
func (_c *PlotCreateBulk) SaveX(ctx context.Context) []*Plot {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PlotCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PlotCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
