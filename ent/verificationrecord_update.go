// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"agriplot.io/agriplot/ent/predicate"
	"agriplot.io/agriplot/ent/verificationrecord"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
)

// VerificationRecordUpdate is the builder for updating VerificationRecord entities.
type VerificationRecordUpdate struct {
	config
	hooks    []Hook
	mutation *VerificationRecordMutation
}

// Where appends a list predicates to the VerificationRecordUpdate builder.
func (_u *VerificationRecordUpdate) Where(ps ...predicate.VerificationRecord) *VerificationRecordUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *VerificationRecordUpdate) SetUpdatedAt(v time.Time) *VerificationRecordUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetStage sets the "stage" field.
func (_u *VerificationRecordUpdate) SetStage(v verificationrecord.Stage) *VerificationRecordUpdate {
	_u.mutation.SetStage(v)
	return _u
}

// SetNillableStage sets the "stage" field if the given value is not nil.
func (_u *VerificationRecordUpdate) SetNillableStage(v *verificationrecord.Stage) *VerificationRecordUpdate {
	if v != nil {
		_u.SetStage(*v)
	}
	return _u
}

// SetStageTimestamps sets the "stage_timestamps" field.
func (_u *VerificationRecordUpdate) SetStageTimestamps(v map[string]string) *VerificationRecordUpdate {
	_u.mutation.SetStageTimestamps(v)
	return _u
}

// ClearStageTimestamps clears the value of the "stage_timestamps" field.
func (_u *VerificationRecordUpdate) ClearStageTimestamps() *VerificationRecordUpdate {
	_u.mutation.ClearStageTimestamps()
	return _u
}

// SetExternalResponses sets the "external_responses" field.
func (_u *VerificationRecordUpdate) SetExternalResponses(v []map[string]interface{}) *VerificationRecordUpdate {
	_u.mutation.SetExternalResponses(v)
	return _u
}

// AppendExternalResponses appends value to the "external_responses" field.
func (_u *VerificationRecordUpdate) AppendExternalResponses(v []map[string]interface{}) *VerificationRecordUpdate {
	_u.mutation.AppendExternalResponses(v)
	return _u
}

// ClearExternalResponses clears the value of the "external_responses" field.
func (_u *VerificationRecordUpdate) ClearExternalResponses() *VerificationRecordUpdate {
	_u.mutation.ClearExternalResponses()
	return _u
}

// SetDetail sets the "detail" field.
func (_u *VerificationRecordUpdate) SetDetail(v map[string]interface{}) *VerificationRecordUpdate {
	_u.mutation.SetDetail(v)
	return _u
}

// ClearDetail clears the value of the "detail" field.
func (_u *VerificationRecordUpdate) ClearDetail() *VerificationRecordUpdate {
	_u.mutation.ClearDetail()
	return _u
}

// SetSearchReference sets the "search_reference" field.
func (_u *VerificationRecordUpdate) SetSearchReference(v string) *VerificationRecordUpdate {
	_u.mutation.SetSearchReference(v)
	return _u
}

// SetNillableSearchReference sets the "search_reference" field if the given value is not nil.
func (_u *VerificationRecordUpdate) SetNillableSearchReference(v *string) *VerificationRecordUpdate {
	if v != nil {
		_u.SetSearchReference(*v)
	}
	return _u
}

// ClearSearchReference clears the value of the "search_reference" field.
func (_u *VerificationRecordUpdate) ClearSearchReference() *VerificationRecordUpdate {
	_u.mutation.ClearSearchReference()
	return _u
}

// SetSearchFee sets the "search_fee" field.
func (_u *VerificationRecordUpdate) SetSearchFee(v float64) *VerificationRecordUpdate {
	_u.mutation.ResetSearchFee()
	_u.mutation.SetSearchFee(v)
	return _u
}

// SetNillableSearchFee sets the "search_fee" field if the given value is not nil.
func (_u *VerificationRecordUpdate) SetNillableSearchFee(v *float64) *VerificationRecordUpdate {
	if v != nil {
		_u.SetSearchFee(*v)
	}
	return _u
}

// AddSearchFee adds value to the "search_fee" field.
func (_u *VerificationRecordUpdate) AddSearchFee(v float64) *VerificationRecordUpdate {
	_u.mutation.AddSearchFee(v)
	return _u
}

// ClearSearchFee clears the value of the "search_fee" field.
func (_u *VerificationRecordUpdate) ClearSearchFee() *VerificationRecordUpdate {
	_u.mutation.ClearSearchFee()
	return _u
}

// SetApprovedAt sets the "approved_at" field.
func (_u *VerificationRecordUpdate) SetApprovedAt(v time.Time) *VerificationRecordUpdate {
	_u.mutation.SetApprovedAt(v)
	return _u
}

// SetNillableApprovedAt sets the "approved_at" field if the given value is not nil.
func (_u *VerificationRecordUpdate) SetNillableApprovedAt(v *time.Time) *VerificationRecordUpdate {
	if v != nil {
		_u.SetApprovedAt(*v)
	}
	return _u
}

// ClearApprovedAt clears the value of the "approved_at" field.
func (_u *VerificationRecordUpdate) ClearApprovedAt() *VerificationRecordUpdate {
	_u.mutation.ClearApprovedAt()
	return _u
}

// SetRejectedAt sets the "rejected_at" field.
func (_u *VerificationRecordUpdate) SetRejectedAt(v time.Time) *VerificationRecordUpdate {
	_u.mutation.SetRejectedAt(v)
	return _u
}

// SetNillableRejectedAt sets the "rejected_at" field if the given value is not nil.
func (_u *VerificationRecordUpdate) SetNillableRejectedAt(v *time.Time) *VerificationRecordUpdate {
	if v != nil {
		_u.SetRejectedAt(*v)
	}
	return _u
}

// ClearRejectedAt clears the value of the "rejected_at" field.
func (_u *VerificationRecordUpdate) ClearRejectedAt() *VerificationRecordUpdate {
	_u.mutation.ClearRejectedAt()
	return _u
}

// Mutation returns the VerificationRecordMutation object of the builder.
func (_u *VerificationRecordUpdate) Mutation() *VerificationRecordMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *VerificationRecordUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *VerificationRecordUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *VerificationRecordUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *VerificationRecordUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *VerificationRecordUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := verificationrecord.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *VerificationRecordUpdate) check() error {
	if v, ok := _u.mutation.Stage(); ok {
		if err := verificationrecord.StageValidator(v); err != nil {
			return &ValidationError{Name: "stage", err: fmt.Errorf(`ent: validator failed for field "VerificationRecord.stage": %w`, err)}
		}
	}
	return nil
}

func (_u *VerificationRecordUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(verificationrecord.Table, verificationrecord.Columns, sqlgraph.NewFieldSpec(verificationrecord.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(verificationrecord.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Stage(); ok {
		_spec.SetField(verificationrecord.FieldStage, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.StageTimestamps(); ok {
		_spec.SetField(verificationrecord.FieldStageTimestamps, field.TypeJSON, value)
	}
	if _u.mutation.StageTimestampsCleared() {
		_spec.ClearField(verificationrecord.FieldStageTimestamps, field.TypeJSON)
	}
	if value, ok := _u.mutation.ExternalResponses(); ok {
		_spec.SetField(verificationrecord.FieldExternalResponses, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedExternalResponses(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, verificationrecord.FieldExternalResponses, value)
		})
	}
	if _u.mutation.ExternalResponsesCleared() {
		_spec.ClearField(verificationrecord.FieldExternalResponses, field.TypeJSON)
	}
	if value, ok := _u.mutation.Detail(); ok {
		_spec.SetField(verificationrecord.FieldDetail, field.TypeJSON, value)
	}
	if _u.mutation.DetailCleared() {
		_spec.ClearField(verificationrecord.FieldDetail, field.TypeJSON)
	}
	if value, ok := _u.mutation.SearchReference(); ok {
		_spec.SetField(verificationrecord.FieldSearchReference, field.TypeString, value)
	}
	if _u.mutation.SearchReferenceCleared() {
		_spec.ClearField(verificationrecord.FieldSearchReference, field.TypeString)
	}
	if value, ok := _u.mutation.SearchFee(); ok {
		_spec.SetField(verificationrecord.FieldSearchFee, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedSearchFee(); ok {
		_spec.AddField(verificationrecord.FieldSearchFee, field.TypeFloat64, value)
	}
	if _u.mutation.SearchFeeCleared() {
		_spec.ClearField(verificationrecord.FieldSearchFee, field.TypeFloat64)
	}
	if value, ok := _u.mutation.ApprovedAt(); ok {
		_spec.SetField(verificationrecord.FieldApprovedAt, field.TypeTime, value)
	}
	if _u.mutation.ApprovedAtCleared() {
		_spec.ClearField(verificationrecord.FieldApprovedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.RejectedAt(); ok {
		_spec.SetField(verificationrecord.FieldRejectedAt, field.TypeTime, value)
	}
	if _u.mutation.RejectedAtCleared() {
		_spec.ClearField(verificationrecord.FieldRejectedAt, field.TypeTime)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{verificationrecord.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// VerificationRecordUpdateOne is the builder for updating a single VerificationRecord entity.
type VerificationRecordUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *VerificationRecordMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *VerificationRecordUpdateOne) SetUpdatedAt(v time.Time) *VerificationRecordUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetStage sets the "stage" field.
func (_u *VerificationRecordUpdateOne) SetStage(v verificationrecord.Stage) *VerificationRecordUpdateOne {
	_u.mutation.SetStage(v)
	return _u
}

// SetNillableStage sets the "stage" field if the given value is not nil.
func (_u *VerificationRecordUpdateOne) SetNillableStage(v *verificationrecord.Stage) *VerificationRecordUpdateOne {
	if v != nil {
		_u.SetStage(*v)
	}
	return _u
}

// SetStageTimestamps sets the "stage_timestamps" field.
func (_u *VerificationRecordUpdateOne) SetStageTimestamps(v map[string]string) *VerificationRecordUpdateOne {
	_u.mutation.SetStageTimestamps(v)
	return _u
}

// ClearStageTimestamps clears the value of the "stage_timestamps" field.
func (_u *VerificationRecordUpdateOne) ClearStageTimestamps() *VerificationRecordUpdateOne {
	_u.mutation.ClearStageTimestamps()
	return _u
}

// SetExternalResponses sets the "external_responses" field.
func (_u *VerificationRecordUpdateOne) SetExternalResponses(v []map[string]interface{}) *VerificationRecordUpdateOne {
	_u.mutation.SetExternalResponses(v)
	return _u
}

// AppendExternalResponses appends value to the "external_responses" field.
func (_u *VerificationRecordUpdateOne) AppendExternalResponses(v []map[string]interface{}) *VerificationRecordUpdateOne {
	_u.mutation.AppendExternalResponses(v)
	return _u
}

// ClearExternalResponses clears the value of the "external_responses" field.
func (_u *VerificationRecordUpdateOne) ClearExternalResponses() *VerificationRecordUpdateOne {
	_u.mutation.ClearExternalResponses()
	return _u
}

// SetDetail sets the "detail" field.
func (_u *VerificationRecordUpdateOne) SetDetail(v map[string]interface{}) *VerificationRecordUpdateOne {
	_u.mutation.SetDetail(v)
	return _u
}

// ClearDetail clears the value of the "detail" field.
func (_u *VerificationRecordUpdateOne) ClearDetail() *VerificationRecordUpdateOne {
	_u.mutation.ClearDetail()
	return _u
}

// SetSearchReference sets the "search_reference" field.
func (_u *VerificationRecordUpdateOne) SetSearchReference(v string) *VerificationRecordUpdateOne {
	_u.mutation.SetSearchReference(v)
	return _u
}

// SetNillableSearchReference sets the "search_reference" field if the given value is not nil.
func (_u *VerificationRecordUpdateOne) SetNillableSearchReference(v *string) *VerificationRecordUpdateOne {
	if v != nil {
		_u.SetSearchReference(*v)
	}
	return _u
}

// ClearSearchReference clears the value of the "search_reference" field.
func (_u *VerificationRecordUpdateOne) ClearSearchReference() *VerificationRecordUpdateOne {
	_u.mutation.ClearSearchReference()
	return _u
}

// SetSearchFee sets the "search_fee" field.
func (_u *VerificationRecordUpdateOne) SetSearchFee(v float64) *VerificationRecordUpdateOne {
	_u.mutation.ResetSearchFee()
	_u.mutation.SetSearchFee(v)
	return _u
}

// SetNillableSearchFee sets the "search_fee" field if the given value is not nil.
func (_u *VerificationRecordUpdateOne) SetNillableSearchFee(v *float64) *VerificationRecordUpdateOne {
	if v != nil {
		_u.SetSearchFee(*v)
	}
	return _u
}

// AddSearchFee adds value to the "search_fee" field.
func (_u *VerificationRecordUpdateOne) AddSearchFee(v float64) *VerificationRecordUpdateOne {
	_u.mutation.AddSearchFee(v)
	return _u
}

// ClearSearchFee clears the value of the "search_fee" field.
func (_u *VerificationRecordUpdateOne) ClearSearchFee() *VerificationRecordUpdateOne {
	_u.mutation.ClearSearchFee()
	return _u
}

// SetApprovedAt sets the "approved_at" field.
func (_u *VerificationRecordUpdateOne) SetApprovedAt(v time.Time) *VerificationRecordUpdateOne {
	_u.mutation.SetApprovedAt(v)
	return _u
}

// SetNillableApprovedAt sets the "approved_at" field if the given value is not nil.
func (_u *VerificationRecordUpdateOne) SetNillableApprovedAt(v *time.Time) *VerificationRecordUpdateOne {
	if v != nil {
		_u.SetApprovedAt(*v)
	}
	return _u
}

// ClearApprovedAt clears the value of the "approved_at" field.
func (_u *VerificationRecordUpdateOne) ClearApprovedAt() *VerificationRecordUpdateOne {
	_u.mutation.ClearApprovedAt()
	return _u
}

// SetRejectedAt sets the "rejected_at" field.
func (_u *VerificationRecordUpdateOne) SetRejectedAt(v time.Time) *VerificationRecordUpdateOne {
	_u.mutation.SetRejectedAt(v)
	return _u
}

// SetNillableRejectedAt sets the "rejected_at" field if the given value is not nil.
func (_u *VerificationRecordUpdateOne) SetNillableRejectedAt(v *time.Time) *VerificationRecordUpdateOne {
	if v != nil {
		_u.SetRejectedAt(*v)
	}
	return _u
}

// ClearRejectedAt clears the value of the "rejected_at" field.
func (_u *VerificationRecordUpdateOne) ClearRejectedAt() *VerificationRecordUpdateOne {
	_u.mutation.ClearRejectedAt()
	return _u
}

// Mutation returns the VerificationRecordMutation object of the builder.
func (_u *VerificationRecordUpdateOne) Mutation() *VerificationRecordMutation {
	return _u.mutation
}

// Where appends a list predicates to the VerificationRecordUpdate builder.
func (_u *VerificationRecordUpdateOne) Where(ps ...predicate.VerificationRecord) *VerificationRecordUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *VerificationRecordUpdateOne) Select(field string, fields ...string) *VerificationRecordUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated VerificationRecord entity.
func (_u *VerificationRecordUpdateOne) Save(ctx context.Context) (*VerificationRecord, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *VerificationRecordUpdateOne) SaveX(ctx context.Context) *VerificationRecord {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *VerificationRecordUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *VerificationRecordUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *VerificationRecordUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := verificationrecord.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *VerificationRecordUpdateOne) check() error {
	if v, ok := _u.mutation.Stage(); ok {
		if err := verificationrecord.StageValidator(v); err != nil {
			return &ValidationError{Name: "stage", err: fmt.Errorf(`ent: validator failed for field "VerificationRecord.stage": %w`, err)}
		}
	}
	return nil
}

func (_u *VerificationRecordUpdateOne) sqlSave(ctx context.Context) (_node *VerificationRecord, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(verificationrecord.Table, verificationrecord.Columns, sqlgraph.NewFieldSpec(verificationrecord.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "VerificationRecord.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, verificationrecord.FieldID)
		for _, f := range fields {
			if !verificationrecord.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != verificationrecord.FieldID {
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
		_spec.SetField(verificationrecord.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Stage(); ok {
		_spec.SetField(verificationrecord.FieldStage, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.StageTimestamps(); ok {
		_spec.SetField(verificationrecord.FieldStageTimestamps, field.TypeJSON, value)
	}
	if _u.mutation.StageTimestampsCleared() {
		_spec.ClearField(verificationrecord.FieldStageTimestamps, field.TypeJSON)
	}
	if value, ok := _u.mutation.ExternalResponses(); ok {
		_spec.SetField(verificationrecord.FieldExternalResponses, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedExternalResponses(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, verificationrecord.FieldExternalResponses, value)
		})
	}
	if _u.mutation.ExternalResponsesCleared() {
		_spec.ClearField(verificationrecord.FieldExternalResponses, field.TypeJSON)
	}
	if value, ok := _u.mutation.Detail(); ok {
		_spec.SetField(verificationrecord.FieldDetail, field.TypeJSON, value)
	}
	if _u.mutation.DetailCleared() {
		_spec.ClearField(verificationrecord.FieldDetail, field.TypeJSON)
	}
	if value, ok := _u.mutation.SearchReference(); ok {
		_spec.SetField(verificationrecord.FieldSearchReference, field.TypeString, value)
	}
	if _u.mutation.SearchReferenceCleared() {
		_spec.ClearField(verificationrecord.FieldSearchReference, field.TypeString)
	}
	if value, ok := _u.mutation.SearchFee(); ok {
		_spec.SetField(verificationrecord.FieldSearchFee, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedSearchFee(); ok {
		_spec.AddField(verificationrecord.FieldSearchFee, field.TypeFloat64, value)
	}
	if _u.mutation.SearchFeeCleared() {
		_spec.ClearField(verificationrecord.FieldSearchFee, field.TypeFloat64)
	}
	if value, ok := _u.mutation.ApprovedAt(); ok {
		_spec.SetField(verificationrecord.FieldApprovedAt, field.TypeTime, value)
	}
	if _u.mutation.ApprovedAtCleared() {
		_spec.ClearField(verificationrecord.FieldApprovedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.RejectedAt(); ok {
		_spec.SetField(verificationrecord.FieldRejectedAt, field.TypeTime, value)
	}
	if _u.mutation.RejectedAtCleared() {
		_spec.ClearField(verificationrecord.FieldRejectedAt, field.TypeTime)
	}
	_node = &VerificationRecord{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{verificationrecord.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
