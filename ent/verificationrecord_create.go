// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"agriplot.io/agriplot/ent/verificationrecord"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
)

// VerificationRecordCreate is the builder for creating a VerificationRecord entity.
type VerificationRecordCreate struct {
	config
	mutation *VerificationRecordMutation
	hooks    []Hook
}

// SetCreatedAt sets the "created_at" field.
func (_c *VerificationRecordCreate) SetCreatedAt(v time.Time) *VerificationRecordCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *VerificationRecordCreate) SetNillableCreatedAt(v *time.Time) *VerificationRecordCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *VerificationRecordCreate) SetUpdatedAt(v time.Time) *VerificationRecordCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *VerificationRecordCreate) SetNillableUpdatedAt(v *time.Time) *VerificationRecordCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetSubjectKind sets the "subject_kind" field.
func (_c *VerificationRecordCreate) SetSubjectKind(v verificationrecord.SubjectKind) *VerificationRecordCreate {
	_c.mutation.SetSubjectKind(v)
	return _c
}

// SetSubjectID sets the "subject_id" field.
func (_c *VerificationRecordCreate) SetSubjectID(v string) *VerificationRecordCreate {
	_c.mutation.SetSubjectID(v)
	return _c
}

// SetStage sets the "stage" field.
func (_c *VerificationRecordCreate) SetStage(v verificationrecord.Stage) *VerificationRecordCreate {
	_c.mutation.SetStage(v)
	return _c
}

// SetNillableStage sets the "stage" field if the given value is not nil.
func (_c *VerificationRecordCreate) SetNillableStage(v *verificationrecord.Stage) *VerificationRecordCreate {
	if v != nil {
		_c.SetStage(*v)
	}
	return _c
}

// SetStageTimestamps sets the "stage_timestamps" field.
func (_c *VerificationRecordCreate) SetStageTimestamps(v map[string]string) *VerificationRecordCreate {
	_c.mutation.SetStageTimestamps(v)
	return _c
}

// SetExternalResponses sets the "external_responses" field.
func (_c *VerificationRecordCreate) SetExternalResponses(v []map[string]interface{}) *VerificationRecordCreate {
	_c.mutation.SetExternalResponses(v)
	return _c
}

// SetDetail sets the "detail" field.
func (_c *VerificationRecordCreate) SetDetail(v map[string]interface{}) *VerificationRecordCreate {
	_c.mutation.SetDetail(v)
	return _c
}

// SetSearchReference sets the "search_reference" field.
func (_c *VerificationRecordCreate) SetSearchReference(v string) *VerificationRecordCreate {
	_c.mutation.SetSearchReference(v)
	return _c
}

// SetNillableSearchReference sets the "search_reference" field if the given value is not nil.
func (_c *VerificationRecordCreate) SetNillableSearchReference(v *string) *VerificationRecordCreate {
	if v != nil {
		_c.SetSearchReference(*v)
	}
	return _c
}

// SetSearchFee sets the "search_fee" field.
func (_c *VerificationRecordCreate) SetSearchFee(v float64) *VerificationRecordCreate {
	_c.mutation.SetSearchFee(v)
	return _c
}

// SetNillableSearchFee sets the "search_fee" field if the given value is not nil.
func (_c *VerificationRecordCreate) SetNillableSearchFee(v *float64) *VerificationRecordCreate {
	if v != nil {
		_c.SetSearchFee(*v)
	}
	return _c
}

// SetApprovedAt sets the "approved_at" field.
func (_c *VerificationRecordCreate) SetApprovedAt(v time.Time) *VerificationRecordCreate {
	_c.mutation.SetApprovedAt(v)
	return _c
}

// SetNillableApprovedAt sets the "approved_at" field if the given value is not nil.
func (_c *VerificationRecordCreate) SetNillableApprovedAt(v *time.Time) *VerificationRecordCreate {
	if v != nil {
		_c.SetApprovedAt(*v)
	}
	return _c
}

// SetRejectedAt sets the "rejected_at" field.
func (_c *VerificationRecordCreate) SetRejectedAt(v time.Time) *VerificationRecordCreate {
	_c.mutation.SetRejectedAt(v)
	return _c
}

// SetNillableRejectedAt sets the "rejected_at" field if the given value is not nil.
func (_c *VerificationRecordCreate) SetNillableRejectedAt(v *time.Time) *VerificationRecordCreate {
	if v != nil {
		_c.SetRejectedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *VerificationRecordCreate) SetID(v string) *VerificationRecordCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the VerificationRecordMutation object of the builder.
func (_c *VerificationRecordCreate) Mutation() *VerificationRecordMutation {
	return _c.mutation
}

// Save creates the VerificationRecord in the database.
func (_c *VerificationRecordCreate) Save(ctx context.Context) (*VerificationRecord, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *VerificationRecordCreate) SaveX(ctx context.Context) *VerificationRecord {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *VerificationRecordCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *VerificationRecordCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *VerificationRecordCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := verificationrecord.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := verificationrecord.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.Stage(); !ok {
		v := verificationrecord.DefaultStage
		_c.mutation.SetStage(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *VerificationRecordCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "VerificationRecord.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "VerificationRecord.updated_at"`)}
	}
	if _, ok := _c.mutation.SubjectKind(); !ok {
		return &ValidationError{Name: "subject_kind", err: errors.New(`ent: missing required field "VerificationRecord.subject_kind"`)}
	}
	if v, ok := _c.mutation.SubjectKind(); ok {
		if err := verificationrecord.SubjectKindValidator(v); err != nil {
			return &ValidationError{Name: "subject_kind", err: fmt.Errorf(`ent: validator failed for field "VerificationRecord.subject_kind": %w`, err)}
		}
	}
	if _, ok := _c.mutation.SubjectID(); !ok {
		return &ValidationError{Name: "subject_id", err: errors.New(`ent: missing required field "VerificationRecord.subject_id"`)}
	}
	if v, ok := _c.mutation.SubjectID(); ok {
		if err := verificationrecord.SubjectIDValidator(v); err != nil {
			return &ValidationError{Name: "subject_id", err: fmt.Errorf(`ent: validator failed for field "VerificationRecord.subject_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Stage(); !ok {
		return &ValidationError{Name: "stage", err: errors.New(`ent: missing required field "VerificationRecord.stage"`)}
	}
	if v, ok := _c.mutation.Stage(); ok {
		if err := verificationrecord.StageValidator(v); err != nil {
			return &ValidationError{Name: "stage", err: fmt.Errorf(`ent: validator failed for field "VerificationRecord.stage": %w`, err)}
		}
	}
	return nil
}

func (_c *VerificationRecordCreate) sqlSave(ctx context.Context) (*VerificationRecord, error) {
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
			return nil, fmt.Errorf("unexpected VerificationRecord.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *VerificationRecordCreate) createSpec() (*VerificationRecord, *sqlgraph.CreateSpec) {
	var (
		_node = &VerificationRecord{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(verificationrecord.Table, sqlgraph.NewFieldSpec(verificationrecord.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(verificationrecord.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(verificationrecord.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.SubjectKind(); ok {
		_spec.SetField(verificationrecord.FieldSubjectKind, field.TypeEnum, value)
		_node.SubjectKind = value
	}
	if value, ok := _c.mutation.SubjectID(); ok {
		_spec.SetField(verificationrecord.FieldSubjectID, field.TypeString, value)
		_node.SubjectID = value
	}
	if value, ok := _c.mutation.Stage(); ok {
		_spec.SetField(verificationrecord.FieldStage, field.TypeEnum, value)
		_node.Stage = value
	}
	if value, ok := _c.mutation.StageTimestamps(); ok {
		_spec.SetField(verificationrecord.FieldStageTimestamps, field.TypeJSON, value)
		_node.StageTimestamps = value
	}
	if value, ok := _c.mutation.ExternalResponses(); ok {
		_spec.SetField(verificationrecord.FieldExternalResponses, field.TypeJSON, value)
		_node.ExternalResponses = value
	}
	if value, ok := _c.mutation.Detail(); ok {
		_spec.SetField(verificationrecord.FieldDetail, field.TypeJSON, value)
		_node.Detail = value
	}
	if value, ok := _c.mutation.SearchReference(); ok {
		_spec.SetField(verificationrecord.FieldSearchReference, field.TypeString, value)
		_node.SearchReference = value
	}
	if value, ok := _c.mutation.SearchFee(); ok {
		_spec.SetField(verificationrecord.FieldSearchFee, field.TypeFloat64, value)
		_node.SearchFee = value
	}
	if value, ok := _c.mutation.ApprovedAt(); ok {
		_spec.SetField(verificationrecord.FieldApprovedAt, field.TypeTime, value)
		_node.ApprovedAt = &value
	}
	if value, ok := _c.mutation.RejectedAt(); ok {
		_spec.SetField(verificationrecord.FieldRejectedAt, field.TypeTime, value)
		_node.RejectedAt = &value
	}
	return _node, _spec
}

// VerificationRecordCreateBulk is the builder for creating many VerificationRecord entities in bulk.
type VerificationRecordCreateBulk struct {
	config
	err      error
	builders []*VerificationRecordCreate
}

// Save creates the VerificationRecord entities in the database.
func (_c *VerificationRecordCreateBulk) Save(ctx context.Context) ([]*VerificationRecord, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*VerificationRecord, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*VerificationRecordMutation)
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
func (_c *VerificationRecordCreateBulk) SaveX(ctx context.Context) []*VerificationRecord {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *VerificationRecordCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *VerificationRecordCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
