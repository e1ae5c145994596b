// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"agriplot.io/agriplot/ent/landownerprofile"
	"agriplot.io/agriplot/ent/predicate"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
)

// LandownerProfileUpdate is the builder for updating LandownerProfile entities.
type LandownerProfileUpdate struct {
	config
	hooks    []Hook
	mutation *LandownerProfileMutation
}

// Where appends a list predicates to the LandownerProfileUpdate builder.
func (_u *LandownerProfileUpdate) Where(ps ...predicate.LandownerProfile) *LandownerProfileUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *LandownerProfileUpdate) SetUpdatedAt(v time.Time) *LandownerProfileUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetFullName sets the "full_name" field.
func (_u *LandownerProfileUpdate) SetFullName(v string) *LandownerProfileUpdate {
	_u.mutation.SetFullName(v)
	return _u
}

// SetNillableFullName sets the "full_name" field if the given value is not nil.
func (_u *LandownerProfileUpdate) SetNillableFullName(v *string) *LandownerProfileUpdate {
	if v != nil {
		_u.SetFullName(*v)
	}
	return _u
}

// SetNationalIDNo sets the "national_id_no" field.
func (_u *LandownerProfileUpdate) SetNationalIDNo(v string) *LandownerProfileUpdate {
	_u.mutation.SetNationalIDNo(v)
	return _u
}

// SetNillableNationalIDNo sets the "national_id_no" field if the given value is not nil.
func (_u *LandownerProfileUpdate) SetNillableNationalIDNo(v *string) *LandownerProfileUpdate {
	if v != nil {
		_u.SetNationalIDNo(*v)
	}
	return _u
}

// ClearNationalIDNo clears the value of the "national_id_no" field.
func (_u *LandownerProfileUpdate) ClearNationalIDNo() *LandownerProfileUpdate {
	_u.mutation.ClearNationalIDNo()
	return _u
}

// SetKraPin sets the "kra_pin" field.
func (_u *LandownerProfileUpdate) SetKraPin(v string) *LandownerProfileUpdate {
	_u.mutation.SetKraPin(v)
	return _u
}

// SetNillableKraPin sets the "kra_pin" field if the given value is not nil.
func (_u *LandownerProfileUpdate) SetNillableKraPin(v *string) *LandownerProfileUpdate {
	if v != nil {
		_u.SetKraPin(*v)
	}
	return _u
}

// ClearKraPin clears the value of the "kra_pin" field.
func (_u *LandownerProfileUpdate) ClearKraPin() *LandownerProfileUpdate {
	_u.mutation.ClearKraPin()
	return _u
}

// SetPhone sets the "phone" field.
func (_u *LandownerProfileUpdate) SetPhone(v string) *LandownerProfileUpdate {
	_u.mutation.SetPhone(v)
	return _u
}

// SetNillablePhone sets the "phone" field if the given value is not nil.
func (_u *LandownerProfileUpdate) SetNillablePhone(v *string) *LandownerProfileUpdate {
	if v != nil {
		_u.SetPhone(*v)
	}
	return _u
}

// ClearPhone clears the value of the "phone" field.
func (_u *LandownerProfileUpdate) ClearPhone() *LandownerProfileUpdate {
	_u.mutation.ClearPhone()
	return _u
}

// SetVerified sets the "verified" field.
func (_u *LandownerProfileUpdate) SetVerified(v bool) *LandownerProfileUpdate {
	_u.mutation.SetVerified(v)
	return _u
}

// SetNillableVerified sets the "verified" field if the given value is not nil.
func (_u *LandownerProfileUpdate) SetNillableVerified(v *bool) *LandownerProfileUpdate {
	if v != nil {
		_u.SetVerified(*v)
	}
	return _u
}

// Mutation returns the LandownerProfileMutation object of the builder.
func (_u *LandownerProfileUpdate) Mutation() *LandownerProfileMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *LandownerProfileUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *LandownerProfileUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *LandownerProfileUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *LandownerProfileUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *LandownerProfileUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := landownerprofile.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *LandownerProfileUpdate) check() error {
	if v, ok := _u.mutation.FullName(); ok {
		if err := landownerprofile.FullNameValidator(v); err != nil {
			return &ValidationError{Name: "full_name", err: fmt.Errorf(`ent: validator failed for field "LandownerProfile.full_name": %w`, err)}
		}
	}
	return nil
}

func (_u *LandownerProfileUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(landownerprofile.Table, landownerprofile.Columns, sqlgraph.NewFieldSpec(landownerprofile.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(landownerprofile.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.FullName(); ok {
		_spec.SetField(landownerprofile.FieldFullName, field.TypeString, value)
	}
	if value, ok := _u.mutation.NationalIDNo(); ok {
		_spec.SetField(landownerprofile.FieldNationalIDNo, field.TypeString, value)
	}
	if _u.mutation.NationalIDNoCleared() {
		_spec.ClearField(landownerprofile.FieldNationalIDNo, field.TypeString)
	}
	if value, ok := _u.mutation.KraPin(); ok {
		_spec.SetField(landownerprofile.FieldKraPin, field.TypeString, value)
	}
	if _u.mutation.KraPinCleared() {
		_spec.ClearField(landownerprofile.FieldKraPin, field.TypeString)
	}
	if value, ok := _u.mutation.Phone(); ok {
		_spec.SetField(landownerprofile.FieldPhone, field.TypeString, value)
	}
	if _u.mutation.PhoneCleared() {
		_spec.ClearField(landownerprofile.FieldPhone, field.TypeString)
	}
	if value, ok := _u.mutation.Verified(); ok {
		_spec.SetField(landownerprofile.FieldVerified, field.TypeBool, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{landownerprofile.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// LandownerProfileUpdateOne is the builder for updating a single LandownerProfile entity.
type LandownerProfileUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *LandownerProfileMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *LandownerProfileUpdateOne) SetUpdatedAt(v time.Time) *LandownerProfileUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetFullName sets the "full_name" field.
func (_u *LandownerProfileUpdateOne) SetFullName(v string) *LandownerProfileUpdateOne {
	_u.mutation.SetFullName(v)
	return _u
}

// SetNillableFullName sets the "full_name" field if the given value is not nil.
func (_u *LandownerProfileUpdateOne) SetNillableFullName(v *string) *LandownerProfileUpdateOne {
	if v != nil {
		_u.SetFullName(*v)
	}
	return _u
}

// SetNationalIDNo sets the "national_id_no" field.
func (_u *LandownerProfileUpdateOne) SetNationalIDNo(v string) *LandownerProfileUpdateOne {
	_u.mutation.SetNationalIDNo(v)
	return _u
}

// SetNillableNationalIDNo sets the "national_id_no" field if the given value is not nil.
func (_u *LandownerProfileUpdateOne) SetNillableNationalIDNo(v *string) *LandownerProfileUpdateOne {
	if v != nil {
		_u.SetNationalIDNo(*v)
	}
	return _u
}

// ClearNationalIDNo clears the value of the "national_id_no" field.
func (_u *LandownerProfileUpdateOne) ClearNationalIDNo() *LandownerProfileUpdateOne {
	_u.mutation.ClearNationalIDNo()
	return _u
}

// SetKraPin sets the "kra_pin" field.
func (_u *LandownerProfileUpdateOne) SetKraPin(v string) *LandownerProfileUpdateOne {
	_u.mutation.SetKraPin(v)
	return _u
}

// SetNillableKraPin sets the "kra_pin" field if the given value is not nil.
func (_u *LandownerProfileUpdateOne) SetNillableKraPin(v *string) *LandownerProfileUpdateOne {
	if v != nil {
		_u.SetKraPin(*v)
	}
	return _u
}

// ClearKraPin clears the value of the "kra_pin" field.
func (_u *LandownerProfileUpdateOne) ClearKraPin() *LandownerProfileUpdateOne {
	_u.mutation.ClearKraPin()
	return _u
}

// SetPhone sets the "phone" field.
func (_u *LandownerProfileUpdateOne) SetPhone(v string) *LandownerProfileUpdateOne {
	_u.mutation.SetPhone(v)
	return _u
}

// SetNillablePhone sets the "phone" field if the given value is not nil.
func (_u *LandownerProfileUpdateOne) SetNillablePhone(v *string) *LandownerProfileUpdateOne {
	if v != nil {
		_u.SetPhone(*v)
	}
	return _u
}

// ClearPhone clears the value of the "phone" field.
func (_u *LandownerProfileUpdateOne) ClearPhone() *LandownerProfileUpdateOne {
	_u.mutation.ClearPhone()
	return _u
}

// SetVerified sets the "verified" field.
func (_u *LandownerProfileUpdateOne) SetVerified(v bool) *LandownerProfileUpdateOne {
	_u.mutation.SetVerified(v)
	return _u
}

// SetNillableVerified sets the "verified" field if the given value is not nil.
func (_u *LandownerProfileUpdateOne) SetNillableVerified(v *bool) *LandownerProfileUpdateOne {
	if v != nil {
		_u.SetVerified(*v)
	}
	return _u
}

// Mutation returns the LandownerProfileMutation object of the builder.
func (_u *LandownerProfileUpdateOne) Mutation() *LandownerProfileMutation {
	return _u.mutation
}

// Where appends a list predicates to the LandownerProfileUpdate builder.
func (_u *LandownerProfileUpdateOne) Where(ps ...predicate.LandownerProfile) *LandownerProfileUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *LandownerProfileUpdateOne) Select(field string, fields ...string) *LandownerProfileUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated LandownerProfile entity.
func (_u *LandownerProfileUpdateOne) Save(ctx context.Context) (*LandownerProfile, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *LandownerProfileUpdateOne) SaveX(ctx context.Context) *LandownerProfile {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *LandownerProfileUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *LandownerProfileUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *LandownerProfileUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := landownerprofile.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *LandownerProfileUpdateOne) check() error {
	if v, ok := _u.mutation.FullName(); ok {
		if err := landownerprofile.FullNameValidator(v); err != nil {
			return &ValidationError{Name: "full_name", err: fmt.Errorf(`ent: validator failed for field "LandownerProfile.full_name": %w`, err)}
		}
	}
	return nil
}

func (_u *LandownerProfileUpdateOne) sqlSave(ctx context.Context) (_node *LandownerProfile, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(landownerprofile.Table, landownerprofile.Columns, sqlgraph.NewFieldSpec(landownerprofile.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "LandownerProfile.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, landownerprofile.FieldID)
		for _, f := range fields {
			if !landownerprofile.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != landownerprofile.FieldID {
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
		_spec.SetField(landownerprofile.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.FullName(); ok {
		_spec.SetField(landownerprofile.FieldFullName, field.TypeString, value)
	}
	if value, ok := _u.mutation.NationalIDNo(); ok {
		_spec.SetField(landownerprofile.FieldNationalIDNo, field.TypeString, value)
	}
	if _u.mutation.NationalIDNoCleared() {
		_spec.ClearField(landownerprofile.FieldNationalIDNo, field.TypeString)
	}
	if value, ok := _u.mutation.KraPin(); ok {
		_spec.SetField(landownerprofile.FieldKraPin, field.TypeString, value)
	}
	if _u.mutation.KraPinCleared() {
		_spec.ClearField(landownerprofile.FieldKraPin, field.TypeString)
	}
	if value, ok := _u.mutation.Phone(); ok {
		_spec.SetField(landownerprofile.FieldPhone, field.TypeString, value)
	}
	if _u.mutation.PhoneCleared() {
		_spec.ClearField(landownerprofile.FieldPhone, field.TypeString)
	}
	if value, ok := _u.mutation.Verified(); ok {
		_spec.SetField(landownerprofile.FieldVerified, field.TypeBool, value)
	}
	_node = &LandownerProfile{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{landownerprofile.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
