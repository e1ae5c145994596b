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

// VerificationTaskUpdate is the builder for updating VerificationTask entities.
type VerificationTaskUpdate struct {
	config
	hooks    []Hook
	mutation *VerificationTaskMutation
}

// Where appends a list predicates to the VerificationTaskUpdate builder.
func (_u *VerificationTaskUpdate) Where(ps ...predicate.VerificationTask) *VerificationTaskUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *VerificationTaskUpdate) SetUpdatedAt(v time.Time) *VerificationTaskUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetType sets the "type" field.
func (_u *VerificationTaskUpdate) SetType(v verificationtask.Type) *VerificationTaskUpdate {
	_u.mutation.SetType(v)
	return _u
}

// SetNillableType sets the "type" field if the given value is not nil.
func (_u *VerificationTaskUpdate) SetNillableType(v *verificationtask.Type) *VerificationTaskUpdate {
	if v != nil {
		_u.SetType(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *VerificationTaskUpdate) SetStatus(v verificationtask.Status) *VerificationTaskUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *VerificationTaskUpdate) SetNillableStatus(v *verificationtask.Status) *VerificationTaskUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetAssigneeID sets the "assignee_id" field.
func (_u *VerificationTaskUpdate) SetAssigneeID(v string) *VerificationTaskUpdate {
	_u.mutation.SetAssigneeID(v)
	return _u
}

// SetNillableAssigneeID sets the "assignee_id" field if the given value is not nil.
func (_u *VerificationTaskUpdate) SetNillableAssigneeID(v *string) *VerificationTaskUpdate {
	if v != nil {
		_u.SetAssigneeID(*v)
	}
	return _u
}

// ClearAssigneeID clears the value of the "assignee_id" field.
func (_u *VerificationTaskUpdate) ClearAssigneeID() *VerificationTaskUpdate {
	_u.mutation.ClearAssigneeID()
	return _u
}

// SetApproved sets the "approved" field.
func (_u *VerificationTaskUpdate) SetApproved(v bool) *VerificationTaskUpdate {
	_u.mutation.SetApproved(v)
	return _u
}

// SetNillableApproved sets the "approved" field if the given value is not nil.
func (_u *VerificationTaskUpdate) SetNillableApproved(v *bool) *VerificationTaskUpdate {
	if v != nil {
		_u.SetApproved(*v)
	}
	return _u
}

// ClearApproved clears the value of the "approved" field.
func (_u *VerificationTaskUpdate) ClearApproved() *VerificationTaskUpdate {
	_u.mutation.ClearApproved()
	return _u
}

// SetNotes sets the "notes" field.
func (_u *VerificationTaskUpdate) SetNotes(v string) *VerificationTaskUpdate {
	_u.mutation.SetNotes(v)
	return _u
}

// SetNillableNotes sets the "notes" field if the given value is not nil.
func (_u *VerificationTaskUpdate) SetNillableNotes(v *string) *VerificationTaskUpdate {
	if v != nil {
		_u.SetNotes(*v)
	}
	return _u
}

// ClearNotes clears the value of the "notes" field.
func (_u *VerificationTaskUpdate) ClearNotes() *VerificationTaskUpdate {
	_u.mutation.ClearNotes()
	return _u
}

// SetAssignedAt sets the "assigned_at" field.
func (_u *VerificationTaskUpdate) SetAssignedAt(v time.Time) *VerificationTaskUpdate {
	_u.mutation.SetAssignedAt(v)
	return _u
}

// SetNillableAssignedAt sets the "assigned_at" field if the given value is not nil.
func (_u *VerificationTaskUpdate) SetNillableAssignedAt(v *time.Time) *VerificationTaskUpdate {
	if v != nil {
		_u.SetAssignedAt(*v)
	}
	return _u
}

// ClearAssignedAt clears the value of the "assigned_at" field.
func (_u *VerificationTaskUpdate) ClearAssignedAt() *VerificationTaskUpdate {
	_u.mutation.ClearAssignedAt()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *VerificationTaskUpdate) SetCompletedAt(v time.Time) *VerificationTaskUpdate {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *VerificationTaskUpdate) SetNillableCompletedAt(v *time.Time) *VerificationTaskUpdate {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *VerificationTaskUpdate) ClearCompletedAt() *VerificationTaskUpdate {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetPlotID sets the "plot" edge to the Plot entity by ID.
func (_u *VerificationTaskUpdate) SetPlotID(id string) *VerificationTaskUpdate {
	_u.mutation.SetPlotID(id)
	return _u
}

// SetPlot sets the "plot" edge to the Plot entity.
func (_u *VerificationTaskUpdate) SetPlot(v *Plot) *VerificationTaskUpdate {
	return _u.SetPlotID(v.ID)
}

// Mutation returns the VerificationTaskMutation object of the builder.
func (_u *VerificationTaskUpdate) Mutation() *VerificationTaskMutation {
	return _u.mutation
}

// ClearPlot clears the "plot" edge to the Plot entity.
func (_u *VerificationTaskUpdate) ClearPlot() *VerificationTaskUpdate {
	_u.mutation.ClearPlot()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *VerificationTaskUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *VerificationTaskUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *VerificationTaskUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *VerificationTaskUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *VerificationTaskUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := verificationtask.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *VerificationTaskUpdate) check() error {
	if v, ok := _u.mutation.GetType(); ok {
		if err := verificationtask.TypeValidator(v); err != nil {
			return &ValidationError{Name: "type", err: fmt.Errorf(`ent: validator failed for field "VerificationTask.type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := verificationtask.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "VerificationTask.status": %w`, err)}
		}
	}
	if _u.mutation.PlotCleared() && len(_u.mutation.PlotIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "VerificationTask.plot"`)
	}
	return nil
}

func (_u *VerificationTaskUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(verificationtask.Table, verificationtask.Columns, sqlgraph.NewFieldSpec(verificationtask.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(verificationtask.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.GetType(); ok {
		_spec.SetField(verificationtask.FieldType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(verificationtask.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.AssigneeID(); ok {
		_spec.SetField(verificationtask.FieldAssigneeID, field.TypeString, value)
	}
	if _u.mutation.AssigneeIDCleared() {
		_spec.ClearField(verificationtask.FieldAssigneeID, field.TypeString)
	}
	if value, ok := _u.mutation.Approved(); ok {
		_spec.SetField(verificationtask.FieldApproved, field.TypeBool, value)
	}
	if _u.mutation.ApprovedCleared() {
		_spec.ClearField(verificationtask.FieldApproved, field.TypeBool)
	}
	if value, ok := _u.mutation.Notes(); ok {
		_spec.SetField(verificationtask.FieldNotes, field.TypeString, value)
	}
	if _u.mutation.NotesCleared() {
		_spec.ClearField(verificationtask.FieldNotes, field.TypeString)
	}
	if value, ok := _u.mutation.AssignedAt(); ok {
		_spec.SetField(verificationtask.FieldAssignedAt, field.TypeTime, value)
	}
	if _u.mutation.AssignedAtCleared() {
		_spec.ClearField(verificationtask.FieldAssignedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(verificationtask.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(verificationtask.FieldCompletedAt, field.TypeTime)
	}
	if _u.mutation.PlotCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.PlotIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{verificationtask.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// VerificationTaskUpdateOne is the builder for updating a single VerificationTask entity.
type VerificationTaskUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *VerificationTaskMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *VerificationTaskUpdateOne) SetUpdatedAt(v time.Time) *VerificationTaskUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetType sets the "type" field.
func (_u *VerificationTaskUpdateOne) SetType(v verificationtask.Type) *VerificationTaskUpdateOne {
	_u.mutation.SetType(v)
	return _u
}

// SetNillableType sets the "type" field if the given value is not nil.
func (_u *VerificationTaskUpdateOne) SetNillableType(v *verificationtask.Type) *VerificationTaskUpdateOne {
	if v != nil {
		_u.SetType(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *VerificationTaskUpdateOne) SetStatus(v verificationtask.Status) *VerificationTaskUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *VerificationTaskUpdateOne) SetNillableStatus(v *verificationtask.Status) *VerificationTaskUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetAssigneeID sets the "assignee_id" field.
func (_u *VerificationTaskUpdateOne) SetAssigneeID(v string) *VerificationTaskUpdateOne {
	_u.mutation.SetAssigneeID(v)
	return _u
}

// SetNillableAssigneeID sets the "assignee_id" field if the given value is not nil.
func (_u *VerificationTaskUpdateOne) SetNillableAssigneeID(v *string) *VerificationTaskUpdateOne {
	if v != nil {
		_u.SetAssigneeID(*v)
	}
	return _u
}

// ClearAssigneeID clears the value of the "assignee_id" field.
func (_u *VerificationTaskUpdateOne) ClearAssigneeID() *VerificationTaskUpdateOne {
	_u.mutation.ClearAssigneeID()
	return _u
}

// SetApproved sets the "approved" field.
func (_u *VerificationTaskUpdateOne) SetApproved(v bool) *VerificationTaskUpdateOne {
	_u.mutation.SetApproved(v)
	return _u
}

// SetNillableApproved sets the "approved" field if the given value is not nil.
func (_u *VerificationTaskUpdateOne) SetNillableApproved(v *bool) *VerificationTaskUpdateOne {
	if v != nil {
		_u.SetApproved(*v)
	}
	return _u
}

// ClearApproved clears the value of the "approved" field.
func (_u *VerificationTaskUpdateOne) ClearApproved() *VerificationTaskUpdateOne {
	_u.mutation.ClearApproved()
	return _u
}

// SetNotes sets the "notes" field.
func (_u *VerificationTaskUpdateOne) SetNotes(v string) *VerificationTaskUpdateOne {
	_u.mutation.SetNotes(v)
	return _u
}

// SetNillableNotes sets the "notes" field if the given value is not nil.
func (_u *VerificationTaskUpdateOne) SetNillableNotes(v *string) *VerificationTaskUpdateOne {
	if v != nil {
		_u.SetNotes(*v)
	}
	return _u
}

// ClearNotes clears the value of the "notes" field.
func (_u *VerificationTaskUpdateOne) ClearNotes() *VerificationTaskUpdateOne {
	_u.mutation.ClearNotes()
	return _u
}

// SetAssignedAt sets the "assigned_at" field.
func (_u *VerificationTaskUpdateOne) SetAssignedAt(v time.Time) *VerificationTaskUpdateOne {
	_u.mutation.SetAssignedAt(v)
	return _u
}

// SetNillableAssignedAt sets the "assigned_at" field if the given value is not nil.
func (_u *VerificationTaskUpdateOne) SetNillableAssignedAt(v *time.Time) *VerificationTaskUpdateOne {
	if v != nil {
		_u.SetAssignedAt(*v)
	}
	return _u
}

// ClearAssignedAt clears the value of the "assigned_at" field.
func (_u *VerificationTaskUpdateOne) ClearAssignedAt() *VerificationTaskUpdateOne {
	_u.mutation.ClearAssignedAt()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *VerificationTaskUpdateOne) SetCompletedAt(v time.Time) *VerificationTaskUpdateOne {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *VerificationTaskUpdateOne) SetNillableCompletedAt(v *time.Time) *VerificationTaskUpdateOne {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *VerificationTaskUpdateOne) ClearCompletedAt() *VerificationTaskUpdateOne {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetPlotID sets the "plot" edge to the Plot entity by ID.
func (_u *VerificationTaskUpdateOne) SetPlotID(id string) *VerificationTaskUpdateOne {
	_u.mutation.SetPlotID(id)
	return _u
}

// SetPlot sets the "plot" edge to the Plot entity.
func (_u *VerificationTaskUpdateOne) SetPlot(v *Plot) *VerificationTaskUpdateOne {
	return _u.SetPlotID(v.ID)
}

// Mutation returns the VerificationTaskMutation object of the builder.
func (_u *VerificationTaskUpdateOne) Mutation() *VerificationTaskMutation {
	return _u.mutation
}

// ClearPlot clears the "plot" edge to the Plot entity.
func (_u *VerificationTaskUpdateOne) ClearPlot() *VerificationTaskUpdateOne {
	_u.mutation.ClearPlot()
	return _u
}

// Where appends a list predicates to the VerificationTaskUpdate builder.
func (_u *VerificationTaskUpdateOne) Where(ps ...predicate.VerificationTask) *VerificationTaskUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *VerificationTaskUpdateOne) Select(field string, fields ...string) *VerificationTaskUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated VerificationTask entity.
func (_u *VerificationTaskUpdateOne) Save(ctx context.Context) (*VerificationTask, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *VerificationTaskUpdateOne) SaveX(ctx context.Context) *VerificationTask {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *VerificationTaskUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *VerificationTaskUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *VerificationTaskUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := verificationtask.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *VerificationTaskUpdateOne) check() error {
	if v, ok := _u.mutation.GetType(); ok {
		if err := verificationtask.TypeValidator(v); err != nil {
			return &ValidationError{Name: "type", err: fmt.Errorf(`ent: validator failed for field "VerificationTask.type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := verificationtask.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "VerificationTask.status": %w`, err)}
		}
	}
	if _u.mutation.PlotCleared() && len(_u.mutation.PlotIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "VerificationTask.plot"`)
	}
	return nil
}

func (_u *VerificationTaskUpdateOne) sqlSave(ctx context.Context) (_node *VerificationTask, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(verificationtask.Table, verificationtask.Columns, sqlgraph.NewFieldSpec(verificationtask.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "VerificationTask.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, verificationtask.FieldID)
		for _, f := range fields {
			if !verificationtask.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != verificationtask.FieldID {
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
		_spec.SetField(verificationtask.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.GetType(); ok {
		_spec.SetField(verificationtask.FieldType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(verificationtask.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.AssigneeID(); ok {
		_spec.SetField(verificationtask.FieldAssigneeID, field.TypeString, value)
	}
	if _u.mutation.AssigneeIDCleared() {
		_spec.ClearField(verificationtask.FieldAssigneeID, field.TypeString)
	}
	if value, ok := _u.mutation.Approved(); ok {
		_spec.SetField(verificationtask.FieldApproved, field.TypeBool, value)
	}
	if _u.mutation.ApprovedCleared() {
		_spec.ClearField(verificationtask.FieldApproved, field.TypeBool)
	}
	if value, ok := _u.mutation.Notes(); ok {
		_spec.SetField(verificationtask.FieldNotes, field.TypeString, value)
	}
	if _u.mutation.NotesCleared() {
		_spec.ClearField(verificationtask.FieldNotes, field.TypeString)
	}
	if value, ok := _u.mutation.AssignedAt(); ok {
		_spec.SetField(verificationtask.FieldAssignedAt, field.TypeTime, value)
	}
	if _u.mutation.AssignedAtCleared() {
		_spec.ClearField(verificationtask.FieldAssignedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(verificationtask.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(verificationtask.FieldCompletedAt, field.TypeTime)
	}
	if _u.mutation.PlotCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.PlotIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &VerificationTask{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{verificationtask.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
