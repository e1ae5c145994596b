// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"agriplot.io/agriplot/ent/plot"
	"agriplot.io/agriplot/ent/predicate"
	"agriplot.io/agriplot/ent/verificationtask"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
)

// PlotUpdate is the builder for updating Plot entities.
type PlotUpdate struct {
	config
	hooks    []Hook
	mutation *PlotMutation
}

// Where appends a list predicates to the PlotUpdate builder.
func (_u *PlotUpdate) Where(ps ...predicate.Plot) *PlotUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *PlotUpdate) SetUpdatedAt(v time.Time) *PlotUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetTitle sets the "title" field.
func (_u *PlotUpdate) SetTitle(v string) *PlotUpdate {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *PlotUpdate) SetNillableTitle(v *string) *PlotUpdate {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetLocation sets the "location" field.
func (_u *PlotUpdate) SetLocation(v string) *PlotUpdate {
	_u.mutation.SetLocation(v)
	return _u
}

// SetNillableLocation sets the "location" field if the given value is not nil.
func (_u *PlotUpdate) SetNillableLocation(v *string) *PlotUpdate {
	if v != nil {
		_u.SetLocation(*v)
	}
	return _u
}

// SetArea sets the "area" field.
func (_u *PlotUpdate) SetArea(v float64) *PlotUpdate {
	_u.mutation.ResetArea()
	_u.mutation.SetArea(v)
	return _u
}

// SetNillableArea sets the "area" field if the given value is not nil.
func (_u *PlotUpdate) SetNillableArea(v *float64) *PlotUpdate {
	if v != nil {
		_u.SetArea(*v)
	}
	return _u
}

// AddArea adds value to the "area" field.
func (_u *PlotUpdate) AddArea(v float64) *PlotUpdate {
	_u.mutation.AddArea(v)
	return _u
}

// SetPrice sets the "price" field.
func (_u *PlotUpdate) SetPrice(v float64) *PlotUpdate {
	_u.mutation.ResetPrice()
	_u.mutation.SetPrice(v)
	return _u
}

// SetNillablePrice sets the "price" field if the given value is not nil.
func (_u *PlotUpdate) SetNillablePrice(v *float64) *PlotUpdate {
	if v != nil {
		_u.SetPrice(*v)
	}
	return _u
}

// AddPrice adds value to the "price" field.
func (_u *PlotUpdate) AddPrice(v float64) *PlotUpdate {
	_u.mutation.AddPrice(v)
	return _u
}

// SetLandType sets the "land_type" field.
func (_u *PlotUpdate) SetLandType(v plot.LandType) *PlotUpdate {
	_u.mutation.SetLandType(v)
	return _u
}

// SetNillableLandType sets the "land_type" field if the given value is not nil.
func (_u *PlotUpdate) SetNillableLandType(v *plot.LandType) *PlotUpdate {
	if v != nil {
		_u.SetLandType(*v)
	}
	return _u
}

// SetLandownerID sets the "landowner_id" field.
func (_u *PlotUpdate) SetLandownerID(v string) *PlotUpdate {
	_u.mutation.SetLandownerID(v)
	return _u
}

// SetNillableLandownerID sets the "landowner_id" field if the given value is not nil.
func (_u *PlotUpdate) SetNillableLandownerID(v *string) *PlotUpdate {
	if v != nil {
		_u.SetLandownerID(*v)
	}
	return _u
}

// ClearLandownerID clears the value of the "landowner_id" field.
func (_u *PlotUpdate) ClearLandownerID() *PlotUpdate {
	_u.mutation.ClearLandownerID()
	return _u
}

// SetAgentID sets the "agent_id" field.
func (_u *PlotUpdate) SetAgentID(v string) *PlotUpdate {
	_u.mutation.SetAgentID(v)
	return _u
}

// SetNillableAgentID sets the "agent_id" field if the given value is not nil.
func (_u *PlotUpdate) SetNillableAgentID(v *string) *PlotUpdate {
	if v != nil {
		_u.SetAgentID(*v)
	}
	return _u
}

// ClearAgentID clears the value of the "agent_id" field.
func (_u *PlotUpdate) ClearAgentID() *PlotUpdate {
	_u.mutation.ClearAgentID()
	return _u
}

// SetParcelNumber sets the "parcel_number" field.
func (_u *PlotUpdate) SetParcelNumber(v string) *PlotUpdate {
	_u.mutation.SetParcelNumber(v)
	return _u
}

// SetNillableParcelNumber sets the "parcel_number" field if the given value is not nil.
func (_u *PlotUpdate) SetNillableParcelNumber(v *string) *PlotUpdate {
	if v != nil {
		_u.SetParcelNumber(*v)
	}
	return _u
}

// ClearParcelNumber clears the value of the "parcel_number" field.
func (_u *PlotUpdate) ClearParcelNumber() *PlotUpdate {
	_u.mutation.ClearParcelNumber()
	return _u
}

// SetSoilType sets the "soil_type" field.
func (_u *PlotUpdate) SetSoilType(v string) *PlotUpdate {
	_u.mutation.SetSoilType(v)
	return _u
}

// SetNillableSoilType sets the "soil_type" field if the given value is not nil.
func (_u *PlotUpdate) SetNillableSoilType(v *string) *PlotUpdate {
	if v != nil {
		_u.SetSoilType(*v)
	}
	return _u
}

// ClearSoilType clears the value of the "soil_type" field.
func (_u *PlotUpdate) ClearSoilType() *PlotUpdate {
	_u.mutation.ClearSoilType()
	return _u
}

// SetListed sets the "listed" field.
func (_u *PlotUpdate) SetListed(v bool) *PlotUpdate {
	_u.mutation.SetListed(v)
	return _u
}

// SetNillableListed sets the "listed" field if the given value is not nil.
func (_u *PlotUpdate) SetNillableListed(v *bool) *PlotUpdate {
	if v != nil {
		_u.SetListed(*v)
	}
	return _u
}

// AddTaskIDs adds the "tasks" edge to the VerificationTask entity by IDs.
func (_u *PlotUpdate) AddTaskIDs(ids ...string) *PlotUpdate {
	_u.mutation.AddTaskIDs(ids...)
	return _u
}

// AddTasks adds the "tasks" edges to the VerificationTask entity.
func (_u *PlotUpdate) AddTasks(v ...*VerificationTask) *PlotUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddTaskIDs(ids...)
}

// Mutation returns the PlotMutation object of the builder.
func (_u *PlotUpdate) Mutation() *PlotMutation {
	return _u.mutation
}

// ClearTasks clears all "tasks" edges to the VerificationTask entity.
func (_u *PlotUpdate) ClearTasks() *PlotUpdate {
	_u.mutation.ClearTasks()
	return _u
}

// RemoveTaskIDs removes the "tasks" edge to VerificationTask entities by IDs.
func (_u *PlotUpdate) RemoveTaskIDs(ids ...string) *PlotUpdate {
	_u.mutation.RemoveTaskIDs(ids...)
	return _u
}

// RemoveTasks removes "tasks" edges to VerificationTask entities.
func (_u *PlotUpdate) RemoveTasks(v ...*VerificationTask) *PlotUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveTaskIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *PlotUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PlotUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *PlotUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PlotUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *PlotUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := plot.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PlotUpdate) check() error {
	if v, ok := _u.mutation.Title(); ok {
		if err := plot.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "Plot.title": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Location(); ok {
		if err := plot.LocationValidator(v); err != nil {
			return &ValidationError{Name: "location", err: fmt.Errorf(`ent: validator failed for field "Plot.location": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Area(); ok {
		if err := plot.AreaValidator(v); err != nil {
			return &ValidationError{Name: "area", err: fmt.Errorf(`ent: validator failed for field "Plot.area": %w`, err)}
		}
	}
	if v, ok := _u.mutation.LandType(); ok {
		if err := plot.LandTypeValidator(v); err != nil {
			return &ValidationError{Name: "land_type", err: fmt.Errorf(`ent: validator failed for field "Plot.land_type": %w`, err)}
		}
	}
	return nil
}

func (_u *PlotUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(plot.Table, plot.Columns, sqlgraph.NewFieldSpec(plot.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(plot.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(plot.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Location(); ok {
		_spec.SetField(plot.FieldLocation, field.TypeString, value)
	}
	if value, ok := _u.mutation.Area(); ok {
		_spec.SetField(plot.FieldArea, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedArea(); ok {
		_spec.AddField(plot.FieldArea, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Price(); ok {
		_spec.SetField(plot.FieldPrice, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedPrice(); ok {
		_spec.AddField(plot.FieldPrice, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.LandType(); ok {
		_spec.SetField(plot.FieldLandType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.LandownerID(); ok {
		_spec.SetField(plot.FieldLandownerID, field.TypeString, value)
	}
	if _u.mutation.LandownerIDCleared() {
		_spec.ClearField(plot.FieldLandownerID, field.TypeString)
	}
	if value, ok := _u.mutation.AgentID(); ok {
		_spec.SetField(plot.FieldAgentID, field.TypeString, value)
	}
	if _u.mutation.AgentIDCleared() {
		_spec.ClearField(plot.FieldAgentID, field.TypeString)
	}
	if value, ok := _u.mutation.ParcelNumber(); ok {
		_spec.SetField(plot.FieldParcelNumber, field.TypeString, value)
	}
	if _u.mutation.ParcelNumberCleared() {
		_spec.ClearField(plot.FieldParcelNumber, field.TypeString)
	}
	if value, ok := _u.mutation.SoilType(); ok {
		_spec.SetField(plot.FieldSoilType, field.TypeString, value)
	}
	if _u.mutation.SoilTypeCleared() {
		_spec.ClearField(plot.FieldSoilType, field.TypeString)
	}
	if value, ok := _u.mutation.Listed(); ok {
		_spec.SetField(plot.FieldListed, field.TypeBool, value)
	}
	if _u.mutation.TasksCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedTasksIDs(); len(nodes) > 0 && !_u.mutation.TasksCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.TasksIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{plot.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// PlotUpdateOne is the builder for updating a single Plot entity.
type PlotUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *PlotMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *PlotUpdateOne) SetUpdatedAt(v time.Time) *PlotUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetTitle sets the "title" field.
func (_u *PlotUpdateOne) SetTitle(v string) *PlotUpdateOne {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *PlotUpdateOne) SetNillableTitle(v *string) *PlotUpdateOne {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetLocation sets the "location" field.
func (_u *PlotUpdateOne) SetLocation(v string) *PlotUpdateOne {
	_u.mutation.SetLocation(v)
	return _u
}

// SetNillableLocation sets the "location" field if the given value is not nil.
func (_u *PlotUpdateOne) SetNillableLocation(v *string) *PlotUpdateOne {
	if v != nil {
		_u.SetLocation(*v)
	}
	return _u
}

// SetArea sets the "area" field.
func (_u *PlotUpdateOne) SetArea(v float64) *PlotUpdateOne {
	_u.mutation.ResetArea()
	_u.mutation.SetArea(v)
	return _u
}

// SetNillableArea sets the "area" field if the given value is not nil.
func (_u *PlotUpdateOne) SetNillableArea(v *float64) *PlotUpdateOne {
	if v != nil {
		_u.SetArea(*v)
	}
	return _u
}

// AddArea adds value to the "area" field.
func (_u *PlotUpdateOne) AddArea(v float64) *PlotUpdateOne {
	_u.mutation.AddArea(v)
	return _u
}

// SetPrice sets the "price" field.
func (_u *PlotUpdateOne) SetPrice(v float64) *PlotUpdateOne {
	_u.mutation.ResetPrice()
	_u.mutation.SetPrice(v)
	return _u
}

// SetNillablePrice sets the "price" field if the given value is not nil.
func (_u *PlotUpdateOne) SetNillablePrice(v *float64) *PlotUpdateOne {
	if v != nil {
		_u.SetPrice(*v)
	}
	return _u
}

// AddPrice adds value to the "price" field.
func (_u *PlotUpdateOne) AddPrice(v float64) *PlotUpdateOne {
	_u.mutation.AddPrice(v)
	return _u
}

// SetLandType sets the "land_type" field.
func (_u *PlotUpdateOne) SetLandType(v plot.LandType) *PlotUpdateOne {
	_u.mutation.SetLandType(v)
	return _u
}

// SetNillableLandType sets the "land_type" field if the given value is not nil.
func (_u *PlotUpdateOne) SetNillableLandType(v *plot.LandType) *PlotUpdateOne {
	if v != nil {
		_u.SetLandType(*v)
	}
	return _u
}

// SetLandownerID sets the "landowner_id" field.
func (_u *PlotUpdateOne) SetLandownerID(v string) *PlotUpdateOne {
	_u.mutation.SetLandownerID(v)
	return _u
}

// SetNillableLandownerID sets the "landowner_id" field if the given value is not nil.
func (_u *PlotUpdateOne) SetNillableLandownerID(v *string) *PlotUpdateOne {
	if v != nil {
		_u.SetLandownerID(*v)
	}
	return _u
}

// ClearLandownerID clears the value of the "landowner_id" field.
func (_u *PlotUpdateOne) ClearLandownerID() *PlotUpdateOne {
	_u.mutation.ClearLandownerID()
	return _u
}

// SetAgentID sets the "agent_id" field.
func (_u *PlotUpdateOne) SetAgentID(v string) *PlotUpdateOne {
	_u.mutation.SetAgentID(v)
	return _u
}

// SetNillableAgentID sets the "agent_id" field if the given value is not nil.
func (_u *PlotUpdateOne) SetNillableAgentID(v *string) *PlotUpdateOne {
	if v != nil {
		_u.SetAgentID(*v)
	}
	return _u
}

// ClearAgentID clears the value of the "agent_id" field.
func (_u *PlotUpdateOne) ClearAgentID() *PlotUpdateOne {
	_u.mutation.ClearAgentID()
	return _u
}

// SetParcelNumber sets the "parcel_number" field.
func (_u *PlotUpdateOne) SetParcelNumber(v string) *PlotUpdateOne {
	_u.mutation.SetParcelNumber(v)
	return _u
}

// SetNillableParcelNumber sets the "parcel_number" field if the given value is not nil.
func (_u *PlotUpdateOne) SetNillableParcelNumber(v *string) *PlotUpdateOne {
	if v != nil {
		_u.SetParcelNumber(*v)
	}
	return _u
}

// ClearParcelNumber clears the value of the "parcel_number" field.
func (_u *PlotUpdateOne) ClearParcelNumber() *PlotUpdateOne {
	_u.mutation.ClearParcelNumber()
	return _u
}

// SetSoilType sets the "soil_type" field.
func (_u *PlotUpdateOne) SetSoilType(v string) *PlotUpdateOne {
	_u.mutation.SetSoilType(v)
	return _u
}

// SetNillableSoilType sets the "soil_type" field if the given value is not nil.
func (_u *PlotUpdateOne) SetNillableSoilType(v *string) *PlotUpdateOne {
	if v != nil {
		_u.SetSoilType(*v)
	}
	return _u
}

// ClearSoilType clears the value of the "soil_type" field.
func (_u *PlotUpdateOne) ClearSoilType() *PlotUpdateOne {
	_u.mutation.ClearSoilType()
	return _u
}

// SetListed sets the "listed" field.
func (_u *PlotUpdateOne) SetListed(v bool) *PlotUpdateOne {
	_u.mutation.SetListed(v)
	return _u
}

// SetNillableListed sets the "listed" field if the given value is not nil.
func (_u *PlotUpdateOne) SetNillableListed(v *bool) *PlotUpdateOne {
	if v != nil {
		_u.SetListed(*v)
	}
	return _u
}

// AddTaskIDs adds the "tasks" edge to the VerificationTask entity by IDs.
func (_u *PlotUpdateOne) AddTaskIDs(ids ...string) *PlotUpdateOne {
	_u.mutation.AddTaskIDs(ids...)
	return _u
}

// AddTasks adds the "tasks" edges to the VerificationTask entity.
func (_u *PlotUpdateOne) AddTasks(v ...*VerificationTask) *PlotUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddTaskIDs(ids...)
}

// Mutation returns the PlotMutation object of the builder.
func (_u *PlotUpdateOne) Mutation() *PlotMutation {
	return _u.mutation
}

// ClearTasks clears all "tasks" edges to the VerificationTask entity.
func (_u *PlotUpdateOne) ClearTasks() *PlotUpdateOne {
	_u.mutation.ClearTasks()
	return _u
}

// RemoveTaskIDs removes the "tasks" edge to VerificationTask entities by IDs.
func (_u *PlotUpdateOne) RemoveTaskIDs(ids ...string) *PlotUpdateOne {
	_u.mutation.RemoveTaskIDs(ids...)
	return _u
}

// RemoveTasks removes "tasks" edges to VerificationTask entities.
func (_u *PlotUpdateOne) RemoveTasks(v ...*VerificationTask) *PlotUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveTaskIDs(ids...)
}

// Where appends a list predicates to the PlotUpdate builder.
func (_u *PlotUpdateOne) Where(ps ...predicate.Plot) *PlotUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *PlotUpdateOne) Select(field string, fields ...string) *PlotUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Plot entity.
func (_u *PlotUpdateOne) Save(ctx context.Context) (*Plot, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PlotUpdateOne) SaveX(ctx context.Context) *Plot {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *PlotUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PlotUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *PlotUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := plot.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PlotUpdateOne) check() error {
	if v, ok := _u.mutation.Title(); ok {
		if err := plot.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "Plot.title": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Location(); ok {
		if err := plot.LocationValidator(v); err != nil {
			return &ValidationError{Name: "location", err: fmt.Errorf(`ent: validator failed for field "Plot.location": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Area(); ok {
		if err := plot.AreaValidator(v); err != nil {
			return &ValidationError{Name: "area", err: fmt.Errorf(`ent: validator failed for field "Plot.area": %w`, err)}
		}
	}
	if v, ok := _u.mutation.LandType(); ok {
		if err := plot.LandTypeValidator(v); err != nil {
			return &ValidationError{Name: "land_type", err: fmt.Errorf(`ent: validator failed for field "Plot.land_type": %w`, err)}
		}
	}
	return nil
}

func (_u *PlotUpdateOne) sqlSave(ctx context.Context) (_node *Plot, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(plot.Table, plot.Columns, sqlgraph.NewFieldSpec(plot.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Plot.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, plot.FieldID)
		for _, f := range fields {
			if !plot.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != plot.FieldID {
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
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(plot.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(plot.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Location(); ok {
		_spec.SetField(plot.FieldLocation, field.TypeString, value)
	}
	if value, ok := _u.mutation.Area(); ok {
		_spec.SetField(plot.FieldArea, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedArea(); ok {
		_spec.AddField(plot.FieldArea, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Price(); ok {
		_spec.SetField(plot.FieldPrice, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedPrice(); ok {
		_spec.AddField(plot.FieldPrice, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.LandType(); ok {
		_spec.SetField(plot.FieldLandType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.LandownerID(); ok {
		_spec.SetField(plot.FieldLandownerID, field.TypeString, value)
	}
	if _u.mutation.LandownerIDCleared() {
		_spec.ClearField(plot.FieldLandownerID, field.TypeString)
	}
	if value, ok := _u.mutation.AgentID(); ok {
		_spec.SetField(plot.FieldAgentID, field.TypeString, value)
	}
	if _u.mutation.AgentIDCleared() {
		_spec.ClearField(plot.FieldAgentID, field.TypeString)
	}
	if value, ok := _u.mutation.ParcelNumber(); ok {
		_spec.SetField(plot.FieldParcelNumber, field.TypeString, value)
	}
	if _u.mutation.ParcelNumberCleared() {
		_spec.ClearField(plot.FieldParcelNumber, field.TypeString)
	}
	if value, ok := _u.mutation.SoilType(); ok {
		_spec.SetField(plot.FieldSoilType, field.TypeString, value)
	}
	if _u.mutation.SoilTypeCleared() {
		_spec.ClearField(plot.FieldSoilType, field.TypeString)
	}
	if value, ok := _u.mutation.Listed(); ok {
		_spec.SetField(plot.FieldListed, field.TypeBool, value)
	}
	if _u.mutation.TasksCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedTasksIDs(); len(nodes) > 0 && !_u.mutation.TasksCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.TasksIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Plot{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{plot.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
