// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"agriplot.io/agriplot/ent/landownerprofile"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
)

// LandownerProfileCreate is the builder for creating a LandownerProfile entity.
type LandownerProfileCreate struct {
	config
	mutation *LandownerProfileMutation
	hooks    []Hook
}

// SetCreatedAt sets the "created_at" field.
func (_c *LandownerProfileCreate) SetCreatedAt(v time.Time) *LandownerProfileCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *LandownerProfileCreate) SetNillableCreatedAt(v *time.Time) *LandownerProfileCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *LandownerProfileCreate) SetUpdatedAt(v time.Time) *LandownerProfileCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *LandownerProfileCreate) SetNillableUpdatedAt(v *time.Time) *LandownerProfileCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetUserID sets the "user_id" field.
func (_c *LandownerProfileCreate) SetUserID(v string) *LandownerProfileCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetFullName sets the "full_name" field.
func (_c *LandownerProfileCreate) SetFullName(v string) *LandownerProfileCreate {
	_c.mutation.SetFullName(v)
	return _c
}

// SetNationalIDNo sets the "national_id_no" field.
func (_c *LandownerProfileCreate) SetNationalIDNo(v string) *LandownerProfileCreate {
	_c.mutation.SetNationalIDNo(v)
	return _c
}

// SetNillableNationalIDNo sets the "national_id_no" field if the given value is not nil.
func (_c *LandownerProfileCreate) SetNillableNationalIDNo(v *string) *LandownerProfileCreate {
	if v != nil {
		_c.SetNationalIDNo(*v)
	}
	return _c
}

// SetKraPin sets the "kra_pin" field.
func (_c *LandownerProfileCreate) SetKraPin(v string) *LandownerProfileCreate {
	_c.mutation.SetKraPin(v)
	return _c
}

// SetNillableKraPin sets the "kra_pin" field if the given value is not nil.
func (_c *LandownerProfileCreate) SetNillableKraPin(v *string) *LandownerProfileCreate {
	if v != nil {
		_c.SetKraPin(*v)
	}
	return _c
}

// SetPhone sets the "phone" field.
func (_c *LandownerProfileCreate) SetPhone(v string) *LandownerProfileCreate {
	_c.mutation.SetPhone(v)
	return _c
}

// SetNillablePhone sets the "phone" field if the given value is not nil.
func (_c *LandownerProfileCreate) SetNillablePhone(v *string) *LandownerProfileCreate {
	if v != nil {
		_c.SetPhone(*v)
	}
	return _c
}

// SetVerified sets the "verified" field.
func (_c *LandownerProfileCreate) SetVerified(v bool) *LandownerProfileCreate {
	_c.mutation.SetVerified(v)
	return _c
}

// SetNillableVerified sets the "verified" field if the given value is not nil.
func (_c *LandownerProfileCreate) SetNillableVerified(v *bool) *LandownerProfileCreate {
	if v != nil {
		_c.SetVerified(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *LandownerProfileCreate) SetID(v string) *LandownerProfileCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the LandownerProfileMutation object of the builder.
func (_c *LandownerProfileCreate) Mutation() *LandownerProfileMutation {
	return _c.mutation
}

// Save creates the LandownerProfile in the database.
func (_c *LandownerProfileCreate) Save(ctx context.Context) (*LandownerProfile, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *LandownerProfileCreate) SaveX(ctx context.Context) *LandownerProfile {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *LandownerProfileCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *LandownerProfileCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *LandownerProfileCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := landownerprofile.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := landownerprofile.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.Verified(); !ok {
		v := landownerprofile.DefaultVerified
		_c.mutation.SetVerified(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *LandownerProfileCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "LandownerProfile.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "LandownerProfile.updated_at"`)}
	}
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "LandownerProfile.user_id"`)}
	}
	if v, ok := _c.mutation.UserID(); ok {
		if err := landownerprofile.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "LandownerProfile.user_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.FullName(); !ok {
		return &ValidationError{Name: "full_name", err: errors.New(`ent: missing required field "LandownerProfile.full_name"`)}
	}
	if v, ok := _c.mutation.FullName(); ok {
		if err := landownerprofile.FullNameValidator(v); err != nil {
			return &ValidationError{Name: "full_name", err: fmt.Errorf(`ent: validator failed for field "LandownerProfile.full_name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Verified(); !ok {
		return &ValidationError{Name: "verified", err: errors.New(`ent: missing required field "LandownerProfile.verified"`)}
	}
	return nil
}

func (_c *LandownerProfileCreate) sqlSave(ctx context.Context) (*LandownerProfile, error) {
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
			return nil, fmt.Errorf("unexpected LandownerProfile.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *LandownerProfileCreate) createSpec() (*LandownerProfile, *sqlgraph.CreateSpec) {
	var (
		_node = &LandownerProfile{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(landownerprofile.Table, sqlgraph.NewFieldSpec(landownerprofile.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(landownerprofile.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(landownerprofile.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(landownerprofile.FieldUserID, field.TypeString, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.FullName(); ok {
		_spec.SetField(landownerprofile.FieldFullName, field.TypeString, value)
		_node.FullName = value
	}
	if value, ok := _c.mutation.NationalIDNo(); ok {
		_spec.SetField(landownerprofile.FieldNationalIDNo, field.TypeString, value)
		_node.NationalIDNo = value
	}
	if value, ok := _c.mutation.KraPin(); ok {
		_spec.SetField(landownerprofile.FieldKraPin, field.TypeString, value)
		_node.KraPin = value
	}
	if value, ok := _c.mutation.Phone(); ok {
		_spec.SetField(landownerprofile.FieldPhone, field.TypeString, value)
		_node.Phone = value
	}
	if value, ok := _c.mutation.Verified(); ok {
		_spec.SetField(landownerprofile.FieldVerified, field.TypeBool, value)
		_node.Verified = value
	}
	return _node, _spec
}

// LandownerProfileCreateBulk is the builder for creating many LandownerProfile entities in bulk.
type LandownerProfileCreateBulk struct {
	config
	err      error
	builders []*LandownerProfileCreate
}

// Save creates the LandownerProfile entities in the database.
func (_c *LandownerProfileCreateBulk) Save(ctx context.Context) ([]*LandownerProfile, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*LandownerProfile, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*LandownerProfileMutation)
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
func (_c *LandownerProfileCreateBulk) SaveX(ctx context.Context) []*LandownerProfile {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *LandownerProfileCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *LandownerProfileCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
