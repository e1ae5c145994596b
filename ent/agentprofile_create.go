// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"agriplot.io/agriplot/ent/agentprofile"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
)

// AgentProfileCreate is the builder for creating a AgentProfile entity.
type AgentProfileCreate struct {
	config
	mutation *AgentProfileMutation
	hooks    []Hook
}

// SetCreatedAt sets the "created_at" field.
func (_c *AgentProfileCreate) SetCreatedAt(v time.Time) *AgentProfileCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *AgentProfileCreate) SetNillableCreatedAt(v *time.Time) *AgentProfileCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *AgentProfileCreate) SetUpdatedAt(v time.Time) *AgentProfileCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *AgentProfileCreate) SetNillableUpdatedAt(v *time.Time) *AgentProfileCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetUserID sets the "user_id" field.
func (_c *AgentProfileCreate) SetUserID(v string) *AgentProfileCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetFullName sets the "full_name" field.
func (_c *AgentProfileCreate) SetFullName(v string) *AgentProfileCreate {
	_c.mutation.SetFullName(v)
	return _c
}

// SetLicenseNumber sets the "license_number" field.
func (_c *AgentProfileCreate) SetLicenseNumber(v string) *AgentProfileCreate {
	_c.mutation.SetLicenseNumber(v)
	return _c
}

// SetNillableLicenseNumber sets the "license_number" field if the given value is not nil.
func (_c *AgentProfileCreate) SetNillableLicenseNumber(v *string) *AgentProfileCreate {
	if v != nil {
		_c.SetLicenseNumber(*v)
	}
	return _c
}

// SetPhone sets the "phone" field.
func (_c *AgentProfileCreate) SetPhone(v string) *AgentProfileCreate {
	_c.mutation.SetPhone(v)
	return _c
}

// SetNillablePhone sets the "phone" field if the given value is not nil.
func (_c *AgentProfileCreate) SetNillablePhone(v *string) *AgentProfileCreate {
	if v != nil {
		_c.SetPhone(*v)
	}
	return _c
}

// SetVerified sets the "verified" field.
func (_c *AgentProfileCreate) SetVerified(v bool) *AgentProfileCreate {
	_c.mutation.SetVerified(v)
	return _c
}

// SetNillableVerified sets the "verified" field if the given value is not nil.
func (_c *AgentProfileCreate) SetNillableVerified(v *bool) *AgentProfileCreate {
	if v != nil {
		_c.SetVerified(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *AgentProfileCreate) SetID(v string) *AgentProfileCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the AgentProfileMutation object of the builder.
func (_c *AgentProfileCreate) Mutation() *AgentProfileMutation {
	return _c.mutation
}

// Save creates the AgentProfile in the database.
func (_c *AgentProfileCreate) Save(ctx context.Context) (*AgentProfile, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *AgentProfileCreate) SaveX(ctx context.Context) *AgentProfile {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AgentProfileCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AgentProfileCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *AgentProfileCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := agentprofile.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := agentprofile.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.Verified(); !ok {
		v := agentprofile.DefaultVerified
		_c.mutation.SetVerified(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *AgentProfileCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "AgentProfile.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "AgentProfile.updated_at"`)}
	}
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "AgentProfile.user_id"`)}
	}
	if v, ok := _c.mutation.UserID(); ok {
		if err := agentprofile.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "AgentProfile.user_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.FullName(); !ok {
		return &ValidationError{Name: "full_name", err: errors.New(`ent: missing required field "AgentProfile.full_name"`)}
	}
	if v, ok := _c.mutation.FullName(); ok {
		if err := agentprofile.FullNameValidator(v); err != nil {
			return &ValidationError{Name: "full_name", err: fmt.Errorf(`ent: validator failed for field "AgentProfile.full_name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Verified(); !ok {
		return &ValidationError{Name: "verified", err: errors.New(`ent: missing required field "AgentProfile.verified"`)}
	}
	return nil
}

func (_c *AgentProfileCreate) sqlSave(ctx context.Context) (*AgentProfile, error) {
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
			return nil, fmt.Errorf("unexpected AgentProfile.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *AgentProfileCreate) createSpec() (*AgentProfile, *sqlgraph.CreateSpec) {
	var (
		_node = &AgentProfile{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(agentprofile.Table, sqlgraph.NewFieldSpec(agentprofile.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(agentprofile.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(agentprofile.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(agentprofile.FieldUserID, field.TypeString, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.FullName(); ok {
		_spec.SetField(agentprofile.FieldFullName, field.TypeString, value)
		_node.FullName = value
	}
	if value, ok := _c.mutation.LicenseNumber(); ok {
		_spec.SetField(agentprofile.FieldLicenseNumber, field.TypeString, value)
		_node.LicenseNumber = value
	}
	if value, ok := _c.mutation.Phone(); ok {
		_spec.SetField(agentprofile.FieldPhone, field.TypeString, value)
		_node.Phone = value
	}
	if value, ok := _c.mutation.Verified(); ok {
		_spec.SetField(agentprofile.FieldVerified, field.TypeBool, value)
		_node.Verified = value
	}
	return _node, _spec
}

// AgentProfileCreateBulk is the builder for creating many AgentProfile entities in bulk.
type AgentProfileCreateBulk struct {
	config
	err      error
	builders []*AgentProfileCreate
}

// Save creates the AgentProfile entities in the database.
func (_c *AgentProfileCreateBulk) Save(ctx context.Context) ([]*AgentProfile, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*AgentProfile, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*AgentProfileMutation)
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
func (_c *AgentProfileCreateBulk) SaveX(ctx context.Context) []*AgentProfile {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AgentProfileCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AgentProfileCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
