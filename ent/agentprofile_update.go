// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"agriplot.io/agriplot/ent/agentprofile"
	"agriplot.io/agriplot/ent/predicate"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
)

// AgentProfileUpdate is the builder for updating AgentProfile entities.
type AgentProfileUpdate struct {
	config
	hooks    []Hook
	mutation *AgentProfileMutation
}

// Where appends a list predicates to the AgentProfileUpdate builder.
func (_u *AgentProfileUpdate) Where(ps ...predicate.AgentProfile) *AgentProfileUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *AgentProfileUpdate) SetUpdatedAt(v time.Time) *AgentProfileUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetFullName sets the "full_name" field.
func (_u *AgentProfileUpdate) SetFullName(v string) *AgentProfileUpdate {
	_u.mutation.SetFullName(v)
	return _u
}

// SetNillableFullName sets the "full_name" field if the given value is not nil.
func (_u *AgentProfileUpdate) SetNillableFullName(v *string) *AgentProfileUpdate {
	if v != nil {
		_u.SetFullName(*v)
	}
	return _u
}

// SetLicenseNumber sets the "license_number" field.
func (_u *AgentProfileUpdate) SetLicenseNumber(v string) *AgentProfileUpdate {
	_u.mutation.SetLicenseNumber(v)
	return _u
}

// SetNillableLicenseNumber sets the "license_number" field if the given value is not nil.
func (_u *AgentProfileUpdate) SetNillableLicenseNumber(v *string) *AgentProfileUpdate {
	if v != nil {
		_u.SetLicenseNumber(*v)
	}
	return _u
}

// ClearLicenseNumber clears the value of the "license_number" field.
func (_u *AgentProfileUpdate) ClearLicenseNumber() *AgentProfileUpdate {
	_u.mutation.ClearLicenseNumber()
	return _u
}

// SetPhone sets the "phone" field.
func (_u *AgentProfileUpdate) SetPhone(v string) *AgentProfileUpdate {
	_u.mutation.SetPhone(v)
	return _u
}

// SetNillablePhone sets the "phone" field if the given value is not nil.
func (_u *AgentProfileUpdate) SetNillablePhone(v *string) *AgentProfileUpdate {
	if v != nil {
		_u.SetPhone(*v)
	}
	return _u
}

// ClearPhone clears the value of the "phone" field.
func (_u *AgentProfileUpdate) ClearPhone() *AgentProfileUpdate {
	_u.mutation.ClearPhone()
	return _u
}

// SetVerified sets the "verified" field.
func (_u *AgentProfileUpdate) SetVerified(v bool) *AgentProfileUpdate {
	_u.mutation.SetVerified(v)
	return _u
}

// SetNillableVerified sets the "verified" field if the given value is not nil.
func (_u *AgentProfileUpdate) SetNillableVerified(v *bool) *AgentProfileUpdate {
	if v != nil {
		_u.SetVerified(*v)
	}
	return _u
}

// Mutation returns the AgentProfileMutation object of the builder.
func (_u *AgentProfileUpdate) Mutation() *AgentProfileMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AgentProfileUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AgentProfileUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AgentProfileUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AgentProfileUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *AgentProfileUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := agentprofile.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AgentProfileUpdate) check() error {
	if v, ok := _u.mutation.FullName(); ok {
		if err := agentprofile.FullNameValidator(v); err != nil {
			return &ValidationError{Name: "full_name", err: fmt.Errorf(`ent: validator failed for field "AgentProfile.full_name": %w`, err)}
		}
	}
	return nil
}

func (_u *AgentProfileUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(agentprofile.Table, agentprofile.Columns, sqlgraph.NewFieldSpec(agentprofile.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(agentprofile.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.FullName(); ok {
		_spec.SetField(agentprofile.FieldFullName, field.TypeString, value)
	}
	if value, ok := _u.mutation.LicenseNumber(); ok {
		_spec.SetField(agentprofile.FieldLicenseNumber, field.TypeString, value)
	}
	if _u.mutation.LicenseNumberCleared() {
		_spec.ClearField(agentprofile.FieldLicenseNumber, field.TypeString)
	}
	if value, ok := _u.mutation.Phone(); ok {
		_spec.SetField(agentprofile.FieldPhone, field.TypeString, value)
	}
	if _u.mutation.PhoneCleared() {
		_spec.ClearField(agentprofile.FieldPhone, field.TypeString)
	}
	if value, ok := _u.mutation.Verified(); ok {
		_spec.SetField(agentprofile.FieldVerified, field.TypeBool, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{agentprofile.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AgentProfileUpdateOne is the builder for updating a single AgentProfile entity.
type AgentProfileUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AgentProfileMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *AgentProfileUpdateOne) SetUpdatedAt(v time.Time) *AgentProfileUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetFullName sets the "full_name" field.
func (_u *AgentProfileUpdateOne) SetFullName(v string) *AgentProfileUpdateOne {
	_u.mutation.SetFullName(v)
	return _u
}

// SetNillableFullName sets the "full_name" field if the given value is not nil.
func (_u *AgentProfileUpdateOne) SetNillableFullName(v *string) *AgentProfileUpdateOne {
	if v != nil {
		_u.SetFullName(*v)
	}
	return _u
}

// SetLicenseNumber sets the "license_number" field.
func (_u *AgentProfileUpdateOne) SetLicenseNumber(v string) *AgentProfileUpdateOne {
	_u.mutation.SetLicenseNumber(v)
	return _u
}

// SetNillableLicenseNumber sets the "license_number" field if the given value is not nil.
func (_u *AgentProfileUpdateOne) SetNillableLicenseNumber(v *string) *AgentProfileUpdateOne {
	if v != nil {
		_u.SetLicenseNumber(*v)
	}
	return _u
}

// ClearLicenseNumber clears the value of the "license_number" field.
func (_u *AgentProfileUpdateOne) ClearLicenseNumber() *AgentProfileUpdateOne {
	_u.mutation.ClearLicenseNumber()
	return _u
}

// SetPhone sets the "phone" field.
func (_u *AgentProfileUpdateOne) SetPhone(v string) *AgentProfileUpdateOne {
	_u.mutation.SetPhone(v)
	return _u
}

// SetNillablePhone sets the "phone" field if the given value is not nil.
func (_u *AgentProfileUpdateOne) SetNillablePhone(v *string) *AgentProfileUpdateOne {
	if v != nil {
		_u.SetPhone(*v)
	}
	return _u
}

// ClearPhone clears the value of the "phone" field.
func (_u *AgentProfileUpdateOne) ClearPhone() *AgentProfileUpdateOne {
	_u.mutation.ClearPhone()
	return _u
}

// SetVerified sets the "verified" field.
func (_u *AgentProfileUpdateOne) SetVerified(v bool) *AgentProfileUpdateOne {
	_u.mutation.SetVerified(v)
	return _u
}

// SetNillableVerified sets the "verified" field if the given value is not nil.
func (_u *AgentProfileUpdateOne) SetNillableVerified(v *bool) *AgentProfileUpdateOne {
	if v != nil {
		_u.SetVerified(*v)
	}
	return _u
}

// Mutation returns the AgentProfileMutation object of the builder.
func (_u *AgentProfileUpdateOne) Mutation() *AgentProfileMutation {
	return _u.mutation
}

// Where appends a list predicates to the AgentProfileUpdate builder.
func (_u *AgentProfileUpdateOne) Where(ps ...predicate.AgentProfile) *AgentProfileUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AgentProfileUpdateOne) Select(field string, fields ...string) *AgentProfileUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated AgentProfile entity.
func (_u *AgentProfileUpdateOne) Save(ctx context.Context) (*AgentProfile, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AgentProfileUpdateOne) SaveX(ctx context.Context) *AgentProfile {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AgentProfileUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AgentProfileUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *AgentProfileUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := agentprofile.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AgentProfileUpdateOne) check() error {
	if v, ok := _u.mutation.FullName(); ok {
		if err := agentprofile.FullNameValidator(v); err != nil {
			return &ValidationError{Name: "full_name", err: fmt.Errorf(`ent: validator failed for field "AgentProfile.full_name": %w`, err)}
		}
	}
	return nil
}

func (_u *AgentProfileUpdateOne) sqlSave(ctx context.Context) (_node *AgentProfile, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(agentprofile.Table, agentprofile.Columns, sqlgraph.NewFieldSpec(agentprofile.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "AgentProfile.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, agentprofile.FieldID)
		for _, f := range fields {
			if !agentprofile.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != agentprofile.FieldID {
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
		_spec.SetField(agentprofile.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.FullName(); ok {
		_spec.SetField(agentprofile.FieldFullName, field.TypeString, value)
	}
	if value, ok := _u.mutation.LicenseNumber(); ok {
		_spec.SetField(agentprofile.FieldLicenseNumber, field.TypeString, value)
	}
	if _u.mutation.LicenseNumberCleared() {
		_spec.ClearField(agentprofile.FieldLicenseNumber, field.TypeString)
	}
	if value, ok := _u.mutation.Phone(); ok {
		_spec.SetField(agentprofile.FieldPhone, field.TypeString, value)
	}
	if _u.mutation.PhoneCleared() {
		_spec.ClearField(agentprofile.FieldPhone, field.TypeString)
	}
	if value, ok := _u.mutation.Verified(); ok {
		_spec.SetField(agentprofile.FieldVerified, field.TypeBool, value)
	}
	_node = &AgentProfile{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{agentprofile.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
