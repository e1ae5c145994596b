// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"agriplot.io/agriplot/ent/agentprofile"
	"agriplot.io/agriplot/ent/emaillog"
	"agriplot.io/agriplot/ent/landownerprofile"
	"agriplot.io/agriplot/ent/notification"
	"agriplot.io/agriplot/ent/plot"
	"agriplot.io/agriplot/ent/predicate"
	"agriplot.io/agriplot/ent/user"
	"agriplot.io/agriplot/ent/verificationlogentry"
	"agriplot.io/agriplot/ent/verificationrecord"
	"agriplot.io/agriplot/ent/verificationtask"
	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeAgentProfile         = "AgentProfile"
	TypeEmailLog             = "EmailLog"
	TypeLandownerProfile     = "LandownerProfile"
	TypeNotification         = "Notification"
	TypePlot                 = "Plot"
	TypeUser                 = "User"
	TypeVerificationLogEntry = "VerificationLogEntry"
	TypeVerificationRecord   = "VerificationRecord"
	TypeVerificationTask     = "VerificationTask"
)

// AgentProfileMutation represents an operation that mutates the AgentProfile nodes in the graph.
type AgentProfileMutation struct {
	config
	op             Op
	typ            string
	id             *string
	created_at     *time.Time
	updated_at     *time.Time
	user_id        *string
	full_name      *string
	license_number *string
	phone          *string
	verified       *bool
	clearedFields  map[string]struct{}
	done           bool
	oldValue       func(context.Context) (*AgentProfile, error)
	predicates     []predicate.AgentProfile
}

var _ ent.Mutation = (*AgentProfileMutation)(nil)

// agentprofileOption allows management of the mutation configuration using functional options.
type agentprofileOption func(*AgentProfileMutation)

// newAgentProfileMutation creates new mutation for the AgentProfile entity.
func newAgentProfileMutation(c config, op Op, opts ...agentprofileOption) *AgentProfileMutation {
	m := &AgentProfileMutation{
		config:        c,
		op:            op,
		typ:           TypeAgentProfile,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withAgentProfileID sets the ID field of the mutation.
func withAgentProfileID(id string) agentprofileOption {
	return func(m *AgentProfileMutation) {
		var (
			err   error
			once  sync.Once
			value *AgentProfile
		)
		m.oldValue = func(ctx context.Context) (*AgentProfile, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().AgentProfile.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withAgentProfile sets the old AgentProfile of the mutation.
func withAgentProfile(node *AgentProfile) agentprofileOption {
	return func(m *AgentProfileMutation) {
		m.oldValue = func(context.Context) (*AgentProfile, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m AgentProfileMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m AgentProfileMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of AgentProfile entities.
func (m *AgentProfileMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *AgentProfileMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *AgentProfileMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().AgentProfile.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *AgentProfileMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *AgentProfileMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the AgentProfile entity.
// If the AgentProfile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentProfileMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *AgentProfileMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *AgentProfileMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *AgentProfileMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the AgentProfile entity.
// If the AgentProfile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentProfileMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *AgentProfileMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetUserID sets the "user_id" field.
func (m *AgentProfileMutation) SetUserID(s string) {
	m.user_id = &s
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *AgentProfileMutation) UserID() (r string, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the AgentProfile entity.
// If the AgentProfile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentProfileMutation) OldUserID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ResetUserID resets all changes to the "user_id" field.
func (m *AgentProfileMutation) ResetUserID() {
	m.user_id = nil
}

// SetFullName sets the "full_name" field.
func (m *AgentProfileMutation) SetFullName(s string) {
	m.full_name = &s
}

// FullName returns the value of the "full_name" field in the mutation.
func (m *AgentProfileMutation) FullName() (r string, exists bool) {
	v := m.full_name
	if v == nil {
		return
	}
	return *v, true
}

// OldFullName returns the old "full_name" field's value of the AgentProfile entity.
// If the AgentProfile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentProfileMutation) OldFullName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFullName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFullName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFullName: %w", err)
	}
	return oldValue.FullName, nil
}

// ResetFullName resets all changes to the "full_name" field.
func (m *AgentProfileMutation) ResetFullName() {
	m.full_name = nil
}

// SetLicenseNumber sets the "license_number" field.
func (m *AgentProfileMutation) SetLicenseNumber(s string) {
	m.license_number = &s
}

// LicenseNumber returns the value of the "license_number" field in the mutation.
func (m *AgentProfileMutation) LicenseNumber() (r string, exists bool) {
	v := m.license_number
	if v == nil {
		return
	}
	return *v, true
}

// OldLicenseNumber returns the old "license_number" field's value of the AgentProfile entity.
// If the AgentProfile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentProfileMutation) OldLicenseNumber(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLicenseNumber is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLicenseNumber requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLicenseNumber: %w", err)
	}
	return oldValue.LicenseNumber, nil
}

// ClearLicenseNumber clears the value of the "license_number" field.
func (m *AgentProfileMutation) ClearLicenseNumber() {
	m.license_number = nil
	m.clearedFields[agentprofile.FieldLicenseNumber] = struct{}{}
}

// LicenseNumberCleared returns if the "license_number" field was cleared in this mutation.
func (m *AgentProfileMutation) LicenseNumberCleared() bool {
	_, ok := m.clearedFields[agentprofile.FieldLicenseNumber]
	return ok
}

// ResetLicenseNumber resets all changes to the "license_number" field.
func (m *AgentProfileMutation) ResetLicenseNumber() {
	m.license_number = nil
	delete(m.clearedFields, agentprofile.FieldLicenseNumber)
}

// SetPhone sets the "phone" field.
func (m *AgentProfileMutation) SetPhone(s string) {
	m.phone = &s
}

// Phone returns the value of the "phone" field in the mutation.
func (m *AgentProfileMutation) Phone() (r string, exists bool) {
	v := m.phone
	if v == nil {
		return
	}
	return *v, true
}

// OldPhone returns the old "phone" field's value of the AgentProfile entity.
// If the AgentProfile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentProfileMutation) OldPhone(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPhone is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPhone requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPhone: %w", err)
	}
	return oldValue.Phone, nil
}

// ClearPhone clears the value of the "phone" field.
func (m *AgentProfileMutation) ClearPhone() {
	m.phone = nil
	m.clearedFields[agentprofile.FieldPhone] = struct{}{}
}

// PhoneCleared returns if the "phone" field was cleared in this mutation.
func (m *AgentProfileMutation) PhoneCleared() bool {
	_, ok := m.clearedFields[agentprofile.FieldPhone]
	return ok
}

// ResetPhone resets all changes to the "phone" field.
func (m *AgentProfileMutation) ResetPhone() {
	m.phone = nil
	delete(m.clearedFields, agentprofile.FieldPhone)
}

// SetVerified sets the "verified" field.
func (m *AgentProfileMutation) SetVerified(b bool) {
	m.verified = &b
}

// Verified returns the value of the "verified" field in the mutation.
func (m *AgentProfileMutation) Verified() (r bool, exists bool) {
	v := m.verified
	if v == nil {
		return
	}
	return *v, true
}

// OldVerified returns the old "verified" field's value of the AgentProfile entity.
// If the AgentProfile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentProfileMutation) OldVerified(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldVerified is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldVerified requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldVerified: %w", err)
	}
	return oldValue.Verified, nil
}

// ResetVerified resets all changes to the "verified" field.
func (m *AgentProfileMutation) ResetVerified() {
	m.verified = nil
}

// Where appends a list predicates to the AgentProfileMutation builder.
func (m *AgentProfileMutation) Where(ps ...predicate.AgentProfile) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the AgentProfileMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *AgentProfileMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.AgentProfile, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *AgentProfileMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *AgentProfileMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (AgentProfile).
func (m *AgentProfileMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *AgentProfileMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.created_at != nil {
		fields = append(fields, agentprofile.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, agentprofile.FieldUpdatedAt)
	}
	if m.user_id != nil {
		fields = append(fields, agentprofile.FieldUserID)
	}
	if m.full_name != nil {
		fields = append(fields, agentprofile.FieldFullName)
	}
	if m.license_number != nil {
		fields = append(fields, agentprofile.FieldLicenseNumber)
	}
	if m.phone != nil {
		fields = append(fields, agentprofile.FieldPhone)
	}
	if m.verified != nil {
		fields = append(fields, agentprofile.FieldVerified)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *AgentProfileMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case agentprofile.FieldCreatedAt:
		return m.CreatedAt()
	case agentprofile.FieldUpdatedAt:
		return m.UpdatedAt()
	case agentprofile.FieldUserID:
		return m.UserID()
	case agentprofile.FieldFullName:
		return m.FullName()
	case agentprofile.FieldLicenseNumber:
		return m.LicenseNumber()
	case agentprofile.FieldPhone:
		return m.Phone()
	case agentprofile.FieldVerified:
		return m.Verified()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *AgentProfileMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case agentprofile.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case agentprofile.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case agentprofile.FieldUserID:
		return m.OldUserID(ctx)
	case agentprofile.FieldFullName:
		return m.OldFullName(ctx)
	case agentprofile.FieldLicenseNumber:
		return m.OldLicenseNumber(ctx)
	case agentprofile.FieldPhone:
		return m.OldPhone(ctx)
	case agentprofile.FieldVerified:
		return m.OldVerified(ctx)
	}
	return nil, fmt.Errorf("unknown AgentProfile field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AgentProfileMutation) SetField(name string, value ent.Value) error {
	switch name {
	case agentprofile.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case agentprofile.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case agentprofile.FieldUserID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case agentprofile.FieldFullName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFullName(v)
		return nil
	case agentprofile.FieldLicenseNumber:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLicenseNumber(v)
		return nil
	case agentprofile.FieldPhone:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPhone(v)
		return nil
	case agentprofile.FieldVerified:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetVerified(v)
		return nil
	}
	return fmt.Errorf("unknown AgentProfile field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *AgentProfileMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *AgentProfileMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AgentProfileMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown AgentProfile numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *AgentProfileMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(agentprofile.FieldLicenseNumber) {
		fields = append(fields, agentprofile.FieldLicenseNumber)
	}
	if m.FieldCleared(agentprofile.FieldPhone) {
		fields = append(fields, agentprofile.FieldPhone)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *AgentProfileMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *AgentProfileMutation) ClearField(name string) error {
	switch name {
	case agentprofile.FieldLicenseNumber:
		m.ClearLicenseNumber()
		return nil
	case agentprofile.FieldPhone:
		m.ClearPhone()
		return nil
	}
	return fmt.Errorf("unknown AgentProfile nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *AgentProfileMutation) ResetField(name string) error {
	switch name {
	case agentprofile.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case agentprofile.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case agentprofile.FieldUserID:
		m.ResetUserID()
		return nil
	case agentprofile.FieldFullName:
		m.ResetFullName()
		return nil
	case agentprofile.FieldLicenseNumber:
		m.ResetLicenseNumber()
		return nil
	case agentprofile.FieldPhone:
		m.ResetPhone()
		return nil
	case agentprofile.FieldVerified:
		m.ResetVerified()
		return nil
	}
	return fmt.Errorf("unknown AgentProfile field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *AgentProfileMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *AgentProfileMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *AgentProfileMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *AgentProfileMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *AgentProfileMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *AgentProfileMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *AgentProfileMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown AgentProfile unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *AgentProfileMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown AgentProfile edge %s", name)
}

// EmailLogMutation represents an operation that mutates the EmailLog nodes in the graph.
type EmailLogMutation struct {
	config
	op            Op
	typ           string
	id            *string
	created_at    *time.Time
	recipient     *string
	subject       *string
	template      *string
	context       *map[string]interface{}
	status        *emaillog.Status
	error_message *string
	sent_at       *time.Time
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*EmailLog, error)
	predicates    []predicate.EmailLog
}

var _ ent.Mutation = (*EmailLogMutation)(nil)

// emaillogOption allows management of the mutation configuration using functional options.
type emaillogOption func(*EmailLogMutation)

// newEmailLogMutation creates new mutation for the EmailLog entity.
func newEmailLogMutation(c config, op Op, opts ...emaillogOption) *EmailLogMutation {
	m := &EmailLogMutation{
		config:        c,
		op:            op,
		typ:           TypeEmailLog,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withEmailLogID sets the ID field of the mutation.
func withEmailLogID(id string) emaillogOption {
	return func(m *EmailLogMutation) {
		var (
			err   error
			once  sync.Once
			value *EmailLog
		)
		m.oldValue = func(ctx context.Context) (*EmailLog, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().EmailLog.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withEmailLog sets the old EmailLog of the mutation.
func withEmailLog(node *EmailLog) emaillogOption {
	return func(m *EmailLogMutation) {
		m.oldValue = func(context.Context) (*EmailLog, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m EmailLogMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m EmailLogMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of EmailLog entities.
func (m *EmailLogMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *EmailLogMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *EmailLogMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().EmailLog.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *EmailLogMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *EmailLogMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the EmailLog entity.
// If the EmailLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EmailLogMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *EmailLogMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetRecipient sets the "recipient" field.
func (m *EmailLogMutation) SetRecipient(s string) {
	m.recipient = &s
}

// Recipient returns the value of the "recipient" field in the mutation.
func (m *EmailLogMutation) Recipient() (r string, exists bool) {
	v := m.recipient
	if v == nil {
		return
	}
	return *v, true
}

// OldRecipient returns the old "recipient" field's value of the EmailLog entity.
// If the EmailLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EmailLogMutation) OldRecipient(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRecipient is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRecipient requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRecipient: %w", err)
	}
	return oldValue.Recipient, nil
}

// ResetRecipient resets all changes to the "recipient" field.
func (m *EmailLogMutation) ResetRecipient() {
	m.recipient = nil
}

// SetSubject sets the "subject" field.
func (m *EmailLogMutation) SetSubject(s string) {
	m.subject = &s
}

// Subject returns the value of the "subject" field in the mutation.
func (m *EmailLogMutation) Subject() (r string, exists bool) {
	v := m.subject
	if v == nil {
		return
	}
	return *v, true
}

// OldSubject returns the old "subject" field's value of the EmailLog entity.
// If the EmailLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EmailLogMutation) OldSubject(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSubject is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSubject requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSubject: %w", err)
	}
	return oldValue.Subject, nil
}

// ResetSubject resets all changes to the "subject" field.
func (m *EmailLogMutation) ResetSubject() {
	m.subject = nil
}

// SetTemplate sets the "template" field.
func (m *EmailLogMutation) SetTemplate(s string) {
	m.template = &s
}

// Template returns the value of the "template" field in the mutation.
func (m *EmailLogMutation) Template() (r string, exists bool) {
	v := m.template
	if v == nil {
		return
	}
	return *v, true
}

// OldTemplate returns the old "template" field's value of the EmailLog entity.
// If the EmailLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EmailLogMutation) OldTemplate(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTemplate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTemplate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTemplate: %w", err)
	}
	return oldValue.Template, nil
}

// ResetTemplate resets all changes to the "template" field.
func (m *EmailLogMutation) ResetTemplate() {
	m.template = nil
}

// SetContext sets the "context" field.
func (m *EmailLogMutation) SetContext(value map[string]interface{}) {
	m.context = &value
}

// Context returns the value of the "context" field in the mutation.
func (m *EmailLogMutation) Context() (r map[string]interface{}, exists bool) {
	v := m.context
	if v == nil {
		return
	}
	return *v, true
}

// OldContext returns the old "context" field's value of the EmailLog entity.
// If the EmailLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EmailLogMutation) OldContext(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContext is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContext requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContext: %w", err)
	}
	return oldValue.Context, nil
}

// ClearContext clears the value of the "context" field.
func (m *EmailLogMutation) ClearContext() {
	m.context = nil
	m.clearedFields[emaillog.FieldContext] = struct{}{}
}

// ContextCleared returns if the "context" field was cleared in this mutation.
func (m *EmailLogMutation) ContextCleared() bool {
	_, ok := m.clearedFields[emaillog.FieldContext]
	return ok
}

// ResetContext resets all changes to the "context" field.
func (m *EmailLogMutation) ResetContext() {
	m.context = nil
	delete(m.clearedFields, emaillog.FieldContext)
}

// SetStatus sets the "status" field.
func (m *EmailLogMutation) SetStatus(e emaillog.Status) {
	m.status = &e
}

// Status returns the value of the "status" field in the mutation.
func (m *EmailLogMutation) Status() (r emaillog.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the EmailLog entity.
// If the EmailLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EmailLogMutation) OldStatus(ctx context.Context) (v emaillog.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *EmailLogMutation) ResetStatus() {
	m.status = nil
}

// SetErrorMessage sets the "error_message" field.
func (m *EmailLogMutation) SetErrorMessage(s string) {
	m.error_message = &s
}

// ErrorMessage returns the value of the "error_message" field in the mutation.
func (m *EmailLogMutation) ErrorMessage() (r string, exists bool) {
	v := m.error_message
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorMessage returns the old "error_message" field's value of the EmailLog entity.
// If the EmailLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EmailLogMutation) OldErrorMessage(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorMessage: %w", err)
	}
	return oldValue.ErrorMessage, nil
}

// ClearErrorMessage clears the value of the "error_message" field.
func (m *EmailLogMutation) ClearErrorMessage() {
	m.error_message = nil
	m.clearedFields[emaillog.FieldErrorMessage] = struct{}{}
}

// ErrorMessageCleared returns if the "error_message" field was cleared in this mutation.
func (m *EmailLogMutation) ErrorMessageCleared() bool {
	_, ok := m.clearedFields[emaillog.FieldErrorMessage]
	return ok
}

// ResetErrorMessage resets all changes to the "error_message" field.
func (m *EmailLogMutation) ResetErrorMessage() {
	m.error_message = nil
	delete(m.clearedFields, emaillog.FieldErrorMessage)
}

// SetSentAt sets the "sent_at" field.
func (m *EmailLogMutation) SetSentAt(t time.Time) {
	m.sent_at = &t
}

// SentAt returns the value of the "sent_at" field in the mutation.
func (m *EmailLogMutation) SentAt() (r time.Time, exists bool) {
	v := m.sent_at
	if v == nil {
		return
	}
	return *v, true
}

// OldSentAt returns the old "sent_at" field's value of the EmailLog entity.
// If the EmailLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EmailLogMutation) OldSentAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSentAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSentAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSentAt: %w", err)
	}
	return oldValue.SentAt, nil
}

// ClearSentAt clears the value of the "sent_at" field.
func (m *EmailLogMutation) ClearSentAt() {
	m.sent_at = nil
	m.clearedFields[emaillog.FieldSentAt] = struct{}{}
}

// SentAtCleared returns if the "sent_at" field was cleared in this mutation.
func (m *EmailLogMutation) SentAtCleared() bool {
	_, ok := m.clearedFields[emaillog.FieldSentAt]
	return ok
}

// ResetSentAt resets all changes to the "sent_at" field.
func (m *EmailLogMutation) ResetSentAt() {
	m.sent_at = nil
	delete(m.clearedFields, emaillog.FieldSentAt)
}

// Where appends a list predicates to the EmailLogMutation builder.
func (m *EmailLogMutation) Where(ps ...predicate.EmailLog) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the EmailLogMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *EmailLogMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.EmailLog, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *EmailLogMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *EmailLogMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (EmailLog).
func (m *EmailLogMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *EmailLogMutation) Fields() []string {
	fields := make([]string, 0, 8)
	if m.created_at != nil {
		fields = append(fields, emaillog.FieldCreatedAt)
	}
	if m.recipient != nil {
		fields = append(fields, emaillog.FieldRecipient)
	}
	if m.subject != nil {
		fields = append(fields, emaillog.FieldSubject)
	}
	if m.template != nil {
		fields = append(fields, emaillog.FieldTemplate)
	}
	if m.context != nil {
		fields = append(fields, emaillog.FieldContext)
	}
	if m.status != nil {
		fields = append(fields, emaillog.FieldStatus)
	}
	if m.error_message != nil {
		fields = append(fields, emaillog.FieldErrorMessage)
	}
	if m.sent_at != nil {
		fields = append(fields, emaillog.FieldSentAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *EmailLogMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case emaillog.FieldCreatedAt:
		return m.CreatedAt()
	case emaillog.FieldRecipient:
		return m.Recipient()
	case emaillog.FieldSubject:
		return m.Subject()
	case emaillog.FieldTemplate:
		return m.Template()
	case emaillog.FieldContext:
		return m.Context()
	case emaillog.FieldStatus:
		return m.Status()
	case emaillog.FieldErrorMessage:
		return m.ErrorMessage()
	case emaillog.FieldSentAt:
		return m.SentAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *EmailLogMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case emaillog.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case emaillog.FieldRecipient:
		return m.OldRecipient(ctx)
	case emaillog.FieldSubject:
		return m.OldSubject(ctx)
	case emaillog.FieldTemplate:
		return m.OldTemplate(ctx)
	case emaillog.FieldContext:
		return m.OldContext(ctx)
	case emaillog.FieldStatus:
		return m.OldStatus(ctx)
	case emaillog.FieldErrorMessage:
		return m.OldErrorMessage(ctx)
	case emaillog.FieldSentAt:
		return m.OldSentAt(ctx)
	}
	return nil, fmt.Errorf("unknown EmailLog field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *EmailLogMutation) SetField(name string, value ent.Value) error {
	switch name {
	case emaillog.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case emaillog.FieldRecipient:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRecipient(v)
		return nil
	case emaillog.FieldSubject:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSubject(v)
		return nil
	case emaillog.FieldTemplate:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTemplate(v)
		return nil
	case emaillog.FieldContext:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContext(v)
		return nil
	case emaillog.FieldStatus:
		v, ok := value.(emaillog.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case emaillog.FieldErrorMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorMessage(v)
		return nil
	case emaillog.FieldSentAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSentAt(v)
		return nil
	}
	return fmt.Errorf("unknown EmailLog field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *EmailLogMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *EmailLogMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *EmailLogMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown EmailLog numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *EmailLogMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(emaillog.FieldContext) {
		fields = append(fields, emaillog.FieldContext)
	}
	if m.FieldCleared(emaillog.FieldErrorMessage) {
		fields = append(fields, emaillog.FieldErrorMessage)
	}
	if m.FieldCleared(emaillog.FieldSentAt) {
		fields = append(fields, emaillog.FieldSentAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *EmailLogMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *EmailLogMutation) ClearField(name string) error {
	switch name {
	case emaillog.FieldContext:
		m.ClearContext()
		return nil
	case emaillog.FieldErrorMessage:
		m.ClearErrorMessage()
		return nil
	case emaillog.FieldSentAt:
		m.ClearSentAt()
		return nil
	}
	return fmt.Errorf("unknown EmailLog nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *EmailLogMutation) ResetField(name string) error {
	switch name {
	case emaillog.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case emaillog.FieldRecipient:
		m.ResetRecipient()
		return nil
	case emaillog.FieldSubject:
		m.ResetSubject()
		return nil
	case emaillog.FieldTemplate:
		m.ResetTemplate()
		return nil
	case emaillog.FieldContext:
		m.ResetContext()
		return nil
	case emaillog.FieldStatus:
		m.ResetStatus()
		return nil
	case emaillog.FieldErrorMessage:
		m.ResetErrorMessage()
		return nil
	case emaillog.FieldSentAt:
		m.ResetSentAt()
		return nil
	}
	return fmt.Errorf("unknown EmailLog field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *EmailLogMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *EmailLogMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *EmailLogMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *EmailLogMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *EmailLogMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *EmailLogMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *EmailLogMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown EmailLog unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *EmailLogMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown EmailLog edge %s", name)
}

// LandownerProfileMutation represents an operation that mutates the LandownerProfile nodes in the graph.
type LandownerProfileMutation struct {
	config
	op             Op
	typ            string
	id             *string
	created_at     *time.Time
	updated_at     *time.Time
	user_id        *string
	full_name      *string
	national_id_no *string
	kra_pin        *string
	phone          *string
	verified       *bool
	clearedFields  map[string]struct{}
	done           bool
	oldValue       func(context.Context) (*LandownerProfile, error)
	predicates     []predicate.LandownerProfile
}

var _ ent.Mutation = (*LandownerProfileMutation)(nil)

// landownerprofileOption allows management of the mutation configuration using functional options.
type landownerprofileOption func(*LandownerProfileMutation)

// newLandownerProfileMutation creates new mutation for the LandownerProfile entity.
func newLandownerProfileMutation(c config, op Op, opts ...landownerprofileOption) *LandownerProfileMutation {
	m := &LandownerProfileMutation{
		config:        c,
		op:            op,
		typ:           TypeLandownerProfile,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withLandownerProfileID sets the ID field of the mutation.
func withLandownerProfileID(id string) landownerprofileOption {
	return func(m *LandownerProfileMutation) {
		var (
			err   error
			once  sync.Once
			value *LandownerProfile
		)
		m.oldValue = func(ctx context.Context) (*LandownerProfile, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().LandownerProfile.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withLandownerProfile sets the old LandownerProfile of the mutation.
func withLandownerProfile(node *LandownerProfile) landownerprofileOption {
	return func(m *LandownerProfileMutation) {
		m.oldValue = func(context.Context) (*LandownerProfile, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m LandownerProfileMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m LandownerProfileMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of LandownerProfile entities.
func (m *LandownerProfileMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *LandownerProfileMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *LandownerProfileMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().LandownerProfile.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *LandownerProfileMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *LandownerProfileMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the LandownerProfile entity.
// If the LandownerProfile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LandownerProfileMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *LandownerProfileMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *LandownerProfileMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *LandownerProfileMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the LandownerProfile entity.
// If the LandownerProfile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LandownerProfileMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *LandownerProfileMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetUserID sets the "user_id" field.
func (m *LandownerProfileMutation) SetUserID(s string) {
	m.user_id = &s
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *LandownerProfileMutation) UserID() (r string, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the LandownerProfile entity.
// If the LandownerProfile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LandownerProfileMutation) OldUserID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ResetUserID resets all changes to the "user_id" field.
func (m *LandownerProfileMutation) ResetUserID() {
	m.user_id = nil
}

// SetFullName sets the "full_name" field.
func (m *LandownerProfileMutation) SetFullName(s string) {
	m.full_name = &s
}

// FullName returns the value of the "full_name" field in the mutation.
func (m *LandownerProfileMutation) FullName() (r string, exists bool) {
	v := m.full_name
	if v == nil {
		return
	}
	return *v, true
}

// OldFullName returns the old "full_name" field's value of the LandownerProfile entity.
// If the LandownerProfile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LandownerProfileMutation) OldFullName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFullName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFullName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFullName: %w", err)
	}
	return oldValue.FullName, nil
}

// ResetFullName resets all changes to the "full_name" field.
func (m *LandownerProfileMutation) ResetFullName() {
	m.full_name = nil
}

// SetNationalIDNo sets the "national_id_no" field.
func (m *LandownerProfileMutation) SetNationalIDNo(s string) {
	m.national_id_no = &s
}

// NationalIDNo returns the value of the "national_id_no" field in the mutation.
func (m *LandownerProfileMutation) NationalIDNo() (r string, exists bool) {
	v := m.national_id_no
	if v == nil {
		return
	}
	return *v, true
}

// OldNationalIDNo returns the old "national_id_no" field's value of the LandownerProfile entity.
// If the LandownerProfile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LandownerProfileMutation) OldNationalIDNo(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNationalIDNo is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNationalIDNo requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNationalIDNo: %w", err)
	}
	return oldValue.NationalIDNo, nil
}

// ClearNationalIDNo clears the value of the "national_id_no" field.
func (m *LandownerProfileMutation) ClearNationalIDNo() {
	m.national_id_no = nil
	m.clearedFields[landownerprofile.FieldNationalIDNo] = struct{}{}
}

// NationalIDNoCleared returns if the "national_id_no" field was cleared in this mutation.
func (m *LandownerProfileMutation) NationalIDNoCleared() bool {
	_, ok := m.clearedFields[landownerprofile.FieldNationalIDNo]
	return ok
}

// ResetNationalIDNo resets all changes to the "national_id_no" field.
func (m *LandownerProfileMutation) ResetNationalIDNo() {
	m.national_id_no = nil
	delete(m.clearedFields, landownerprofile.FieldNationalIDNo)
}

// SetKraPin sets the "kra_pin" field.
func (m *LandownerProfileMutation) SetKraPin(s string) {
	m.kra_pin = &s
}

// KraPin returns the value of the "kra_pin" field in the mutation.
func (m *LandownerProfileMutation) KraPin() (r string, exists bool) {
	v := m.kra_pin
	if v == nil {
		return
	}
	return *v, true
}

// OldKraPin returns the old "kra_pin" field's value of the LandownerProfile entity.
// If the LandownerProfile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LandownerProfileMutation) OldKraPin(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldKraPin is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldKraPin requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldKraPin: %w", err)
	}
	return oldValue.KraPin, nil
}

// ClearKraPin clears the value of the "kra_pin" field.
func (m *LandownerProfileMutation) ClearKraPin() {
	m.kra_pin = nil
	m.clearedFields[landownerprofile.FieldKraPin] = struct{}{}
}

// KraPinCleared returns if the "kra_pin" field was cleared in this mutation.
func (m *LandownerProfileMutation) KraPinCleared() bool {
	_, ok := m.clearedFields[landownerprofile.FieldKraPin]
	return ok
}

// ResetKraPin resets all changes to the "kra_pin" field.
func (m *LandownerProfileMutation) ResetKraPin() {
	m.kra_pin = nil
	delete(m.clearedFields, landownerprofile.FieldKraPin)
}

// SetPhone sets the "phone" field.
func (m *LandownerProfileMutation) SetPhone(s string) {
	m.phone = &s
}

// Phone returns the value of the "phone" field in the mutation.
func (m *LandownerProfileMutation) Phone() (r string, exists bool) {
	v := m.phone
	if v == nil {
		return
	}
	return *v, true
}

// OldPhone returns the old "phone" field's value of the LandownerProfile entity.
// If the LandownerProfile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LandownerProfileMutation) OldPhone(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPhone is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPhone requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPhone: %w", err)
	}
	return oldValue.Phone, nil
}

// ClearPhone clears the value of the "phone" field.
func (m *LandownerProfileMutation) ClearPhone() {
	m.phone = nil
	m.clearedFields[landownerprofile.FieldPhone] = struct{}{}
}

// PhoneCleared returns if the "phone" field was cleared in this mutation.
func (m *LandownerProfileMutation) PhoneCleared() bool {
	_, ok := m.clearedFields[landownerprofile.FieldPhone]
	return ok
}

// ResetPhone resets all changes to the "phone" field.
func (m *LandownerProfileMutation) ResetPhone() {
	m.phone = nil
	delete(m.clearedFields, landownerprofile.FieldPhone)
}

// SetVerified sets the "verified" field.
func (m *LandownerProfileMutation) SetVerified(b bool) {
	m.verified = &b
}

// Verified returns the value of the "verified" field in the mutation.
func (m *LandownerProfileMutation) Verified() (r bool, exists bool) {
	v := m.verified
	if v == nil {
		return
	}
	return *v, true
}

// OldVerified returns the old "verified" field's value of the LandownerProfile entity.
// If the LandownerProfile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LandownerProfileMutation) OldVerified(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldVerified is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldVerified requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldVerified: %w", err)
	}
	return oldValue.Verified, nil
}

// ResetVerified resets all changes to the "verified" field.
func (m *LandownerProfileMutation) ResetVerified() {
	m.verified = nil
}

// Where appends a list predicates to the LandownerProfileMutation builder.
func (m *LandownerProfileMutation) Where(ps ...predicate.LandownerProfile) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the LandownerProfileMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *LandownerProfileMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.LandownerProfile, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *LandownerProfileMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *LandownerProfileMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (LandownerProfile).
func (m *LandownerProfileMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *LandownerProfileMutation) Fields() []string {
	fields := make([]string, 0, 8)
	if m.created_at != nil {
		fields = append(fields, landownerprofile.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, landownerprofile.FieldUpdatedAt)
	}
	if m.user_id != nil {
		fields = append(fields, landownerprofile.FieldUserID)
	}
	if m.full_name != nil {
		fields = append(fields, landownerprofile.FieldFullName)
	}
	if m.national_id_no != nil {
		fields = append(fields, landownerprofile.FieldNationalIDNo)
	}
	if m.kra_pin != nil {
		fields = append(fields, landownerprofile.FieldKraPin)
	}
	if m.phone != nil {
		fields = append(fields, landownerprofile.FieldPhone)
	}
	if m.verified != nil {
		fields = append(fields, landownerprofile.FieldVerified)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *LandownerProfileMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case landownerprofile.FieldCreatedAt:
		return m.CreatedAt()
	case landownerprofile.FieldUpdatedAt:
		return m.UpdatedAt()
	case landownerprofile.FieldUserID:
		return m.UserID()
	case landownerprofile.FieldFullName:
		return m.FullName()
	case landownerprofile.FieldNationalIDNo:
		return m.NationalIDNo()
	case landownerprofile.FieldKraPin:
		return m.KraPin()
	case landownerprofile.FieldPhone:
		return m.Phone()
	case landownerprofile.FieldVerified:
		return m.Verified()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *LandownerProfileMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case landownerprofile.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case landownerprofile.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case landownerprofile.FieldUserID:
		return m.OldUserID(ctx)
	case landownerprofile.FieldFullName:
		return m.OldFullName(ctx)
	case landownerprofile.FieldNationalIDNo:
		return m.OldNationalIDNo(ctx)
	case landownerprofile.FieldKraPin:
		return m.OldKraPin(ctx)
	case landownerprofile.FieldPhone:
		return m.OldPhone(ctx)
	case landownerprofile.FieldVerified:
		return m.OldVerified(ctx)
	}
	return nil, fmt.Errorf("unknown LandownerProfile field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *LandownerProfileMutation) SetField(name string, value ent.Value) error {
	switch name {
	case landownerprofile.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case landownerprofile.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case landownerprofile.FieldUserID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case landownerprofile.FieldFullName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFullName(v)
		return nil
	case landownerprofile.FieldNationalIDNo:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNationalIDNo(v)
		return nil
	case landownerprofile.FieldKraPin:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetKraPin(v)
		return nil
	case landownerprofile.FieldPhone:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPhone(v)
		return nil
	case landownerprofile.FieldVerified:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetVerified(v)
		return nil
	}
	return fmt.Errorf("unknown LandownerProfile field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *LandownerProfileMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *LandownerProfileMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *LandownerProfileMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown LandownerProfile numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *LandownerProfileMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(landownerprofile.FieldNationalIDNo) {
		fields = append(fields, landownerprofile.FieldNationalIDNo)
	}
	if m.FieldCleared(landownerprofile.FieldKraPin) {
		fields = append(fields, landownerprofile.FieldKraPin)
	}
	if m.FieldCleared(landownerprofile.FieldPhone) {
		fields = append(fields, landownerprofile.FieldPhone)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *LandownerProfileMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *LandownerProfileMutation) ClearField(name string) error {
	switch name {
	case landownerprofile.FieldNationalIDNo:
		m.ClearNationalIDNo()
		return nil
	case landownerprofile.FieldKraPin:
		m.ClearKraPin()
		return nil
	case landownerprofile.FieldPhone:
		m.ClearPhone()
		return nil
	}
	return fmt.Errorf("unknown LandownerProfile nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *LandownerProfileMutation) ResetField(name string) error {
	switch name {
	case landownerprofile.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case landownerprofile.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case landownerprofile.FieldUserID:
		m.ResetUserID()
		return nil
	case landownerprofile.FieldFullName:
		m.ResetFullName()
		return nil
	case landownerprofile.FieldNationalIDNo:
		m.ResetNationalIDNo()
		return nil
	case landownerprofile.FieldKraPin:
		m.ResetKraPin()
		return nil
	case landownerprofile.FieldPhone:
		m.ResetPhone()
		return nil
	case landownerprofile.FieldVerified:
		m.ResetVerified()
		return nil
	}
	return fmt.Errorf("unknown LandownerProfile field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *LandownerProfileMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *LandownerProfileMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *LandownerProfileMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *LandownerProfileMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *LandownerProfileMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *LandownerProfileMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *LandownerProfileMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown LandownerProfile unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *LandownerProfileMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown LandownerProfile edge %s", name)
}

// NotificationMutation represents an operation that mutates the Notification nodes in the graph.
type NotificationMutation struct {
	config
	op            Op
	typ           string
	id            *string
	created_at    *time.Time
	_type         *notification.Type
	title         *string
	message       *string
	plot_id       *string
	task_id       *string
	read          *bool
	read_at       *time.Time
	clearedFields map[string]struct{}
	user          *string
	cleareduser   bool
	done          bool
	oldValue      func(context.Context) (*Notification, error)
	predicates    []predicate.Notification
}

var _ ent.Mutation = (*NotificationMutation)(nil)

// notificationOption allows management of the mutation configuration using functional options.
type notificationOption func(*NotificationMutation)

// newNotificationMutation creates new mutation for the Notification entity.
func newNotificationMutation(c config, op Op, opts ...notificationOption) *NotificationMutation {
	m := &NotificationMutation{
		config:        c,
		op:            op,
		typ:           TypeNotification,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withNotificationID sets the ID field of the mutation.
func withNotificationID(id string) notificationOption {
	return func(m *NotificationMutation) {
		var (
			err   error
			once  sync.Once
			value *Notification
		)
		m.oldValue = func(ctx context.Context) (*Notification, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Notification.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withNotification sets the old Notification of the mutation.
func withNotification(node *Notification) notificationOption {
	return func(m *NotificationMutation) {
		m.oldValue = func(context.Context) (*Notification, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m NotificationMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m NotificationMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Notification entities.
func (m *NotificationMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *NotificationMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *NotificationMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Notification.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *NotificationMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *NotificationMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Notification entity.
// If the Notification object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NotificationMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *NotificationMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetType sets the "type" field.
func (m *NotificationMutation) SetType(n notification.Type) {
	m._type = &n
}

// GetType returns the value of the "type" field in the mutation.
func (m *NotificationMutation) GetType() (r notification.Type, exists bool) {
	v := m._type
	if v == nil {
		return
	}
	return *v, true
}

// OldType returns the old "type" field's value of the Notification entity.
// If the Notification object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NotificationMutation) OldType(ctx context.Context) (v notification.Type, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldType: %w", err)
	}
	return oldValue.Type, nil
}

// ResetType resets all changes to the "type" field.
func (m *NotificationMutation) ResetType() {
	m._type = nil
}

// SetTitle sets the "title" field.
func (m *NotificationMutation) SetTitle(s string) {
	m.title = &s
}

// Title returns the value of the "title" field in the mutation.
func (m *NotificationMutation) Title() (r string, exists bool) {
	v := m.title
	if v == nil {
		return
	}
	return *v, true
}

// OldTitle returns the old "title" field's value of the Notification entity.
// If the Notification object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NotificationMutation) OldTitle(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTitle is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTitle requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTitle: %w", err)
	}
	return oldValue.Title, nil
}

// ResetTitle resets all changes to the "title" field.
func (m *NotificationMutation) ResetTitle() {
	m.title = nil
}

// SetMessage sets the "message" field.
func (m *NotificationMutation) SetMessage(s string) {
	m.message = &s
}

// Message returns the value of the "message" field in the mutation.
func (m *NotificationMutation) Message() (r string, exists bool) {
	v := m.message
	if v == nil {
		return
	}
	return *v, true
}

// OldMessage returns the old "message" field's value of the Notification entity.
// If the Notification object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NotificationMutation) OldMessage(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMessage: %w", err)
	}
	return oldValue.Message, nil
}

// ResetMessage resets all changes to the "message" field.
func (m *NotificationMutation) ResetMessage() {
	m.message = nil
}

// SetPlotID sets the "plot_id" field.
func (m *NotificationMutation) SetPlotID(s string) {
	m.plot_id = &s
}

// PlotID returns the value of the "plot_id" field in the mutation.
func (m *NotificationMutation) PlotID() (r string, exists bool) {
	v := m.plot_id
	if v == nil {
		return
	}
	return *v, true
}

// OldPlotID returns the old "plot_id" field's value of the Notification entity.
// If the Notification object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NotificationMutation) OldPlotID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPlotID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPlotID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPlotID: %w", err)
	}
	return oldValue.PlotID, nil
}

// ClearPlotID clears the value of the "plot_id" field.
func (m *NotificationMutation) ClearPlotID() {
	m.plot_id = nil
	m.clearedFields[notification.FieldPlotID] = struct{}{}
}

// PlotIDCleared returns if the "plot_id" field was cleared in this mutation.
func (m *NotificationMutation) PlotIDCleared() bool {
	_, ok := m.clearedFields[notification.FieldPlotID]
	return ok
}

// ResetPlotID resets all changes to the "plot_id" field.
func (m *NotificationMutation) ResetPlotID() {
	m.plot_id = nil
	delete(m.clearedFields, notification.FieldPlotID)
}

// SetTaskID sets the "task_id" field.
func (m *NotificationMutation) SetTaskID(s string) {
	m.task_id = &s
}

// TaskID returns the value of the "task_id" field in the mutation.
func (m *NotificationMutation) TaskID() (r string, exists bool) {
	v := m.task_id
	if v == nil {
		return
	}
	return *v, true
}

// OldTaskID returns the old "task_id" field's value of the Notification entity.
// If the Notification object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NotificationMutation) OldTaskID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTaskID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTaskID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTaskID: %w", err)
	}
	return oldValue.TaskID, nil
}

// ClearTaskID clears the value of the "task_id" field.
func (m *NotificationMutation) ClearTaskID() {
	m.task_id = nil
	m.clearedFields[notification.FieldTaskID] = struct{}{}
}

// TaskIDCleared returns if the "task_id" field was cleared in this mutation.
func (m *NotificationMutation) TaskIDCleared() bool {
	_, ok := m.clearedFields[notification.FieldTaskID]
	return ok
}

// ResetTaskID resets all changes to the "task_id" field.
func (m *NotificationMutation) ResetTaskID() {
	m.task_id = nil
	delete(m.clearedFields, notification.FieldTaskID)
}

// SetRead sets the "read" field.
func (m *NotificationMutation) SetRead(b bool) {
	m.read = &b
}

// Read returns the value of the "read" field in the mutation.
func (m *NotificationMutation) Read() (r bool, exists bool) {
	v := m.read
	if v == nil {
		return
	}
	return *v, true
}

// OldRead returns the old "read" field's value of the Notification entity.
// If the Notification object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NotificationMutation) OldRead(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRead is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRead requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRead: %w", err)
	}
	return oldValue.Read, nil
}

// ResetRead resets all changes to the "read" field.
func (m *NotificationMutation) ResetRead() {
	m.read = nil
}

// SetReadAt sets the "read_at" field.
func (m *NotificationMutation) SetReadAt(t time.Time) {
	m.read_at = &t
}

// ReadAt returns the value of the "read_at" field in the mutation.
func (m *NotificationMutation) ReadAt() (r time.Time, exists bool) {
	v := m.read_at
	if v == nil {
		return
	}
	return *v, true
}

// OldReadAt returns the old "read_at" field's value of the Notification entity.
// If the Notification object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NotificationMutation) OldReadAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReadAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReadAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReadAt: %w", err)
	}
	return oldValue.ReadAt, nil
}

// ClearReadAt clears the value of the "read_at" field.
func (m *NotificationMutation) ClearReadAt() {
	m.read_at = nil
	m.clearedFields[notification.FieldReadAt] = struct{}{}
}

// ReadAtCleared returns if the "read_at" field was cleared in this mutation.
func (m *NotificationMutation) ReadAtCleared() bool {
	_, ok := m.clearedFields[notification.FieldReadAt]
	return ok
}

// ResetReadAt resets all changes to the "read_at" field.
func (m *NotificationMutation) ResetReadAt() {
	m.read_at = nil
	delete(m.clearedFields, notification.FieldReadAt)
}

// SetUserID sets the "user" edge to the User entity by id.
func (m *NotificationMutation) SetUserID(id string) {
	m.user = &id
}

// ClearUser clears the "user" edge to the User entity.
func (m *NotificationMutation) ClearUser() {
	m.cleareduser = true
}

// UserCleared reports if the "user" edge to the User entity was cleared.
func (m *NotificationMutation) UserCleared() bool {
	return m.cleareduser
}

// UserID returns the "user" edge ID in the mutation.
func (m *NotificationMutation) UserID() (id string, exists bool) {
	if m.user != nil {
		return *m.user, true
	}
	return
}

// UserIDs returns the "user" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// UserID instead. It exists only for internal usage by the builders.
func (m *NotificationMutation) UserIDs() (ids []string) {
	if id := m.user; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetUser resets all changes to the "user" edge.
func (m *NotificationMutation) ResetUser() {
	m.user = nil
	m.cleareduser = false
}

// Where appends a list predicates to the NotificationMutation builder.
func (m *NotificationMutation) Where(ps ...predicate.Notification) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the NotificationMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *NotificationMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Notification, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *NotificationMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *NotificationMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Notification).
func (m *NotificationMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *NotificationMutation) Fields() []string {
	fields := make([]string, 0, 8)
	if m.created_at != nil {
		fields = append(fields, notification.FieldCreatedAt)
	}
	if m._type != nil {
		fields = append(fields, notification.FieldType)
	}
	if m.title != nil {
		fields = append(fields, notification.FieldTitle)
	}
	if m.message != nil {
		fields = append(fields, notification.FieldMessage)
	}
	if m.plot_id != nil {
		fields = append(fields, notification.FieldPlotID)
	}
	if m.task_id != nil {
		fields = append(fields, notification.FieldTaskID)
	}
	if m.read != nil {
		fields = append(fields, notification.FieldRead)
	}
	if m.read_at != nil {
		fields = append(fields, notification.FieldReadAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *NotificationMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case notification.FieldCreatedAt:
		return m.CreatedAt()
	case notification.FieldType:
		return m.GetType()
	case notification.FieldTitle:
		return m.Title()
	case notification.FieldMessage:
		return m.Message()
	case notification.FieldPlotID:
		return m.PlotID()
	case notification.FieldTaskID:
		return m.TaskID()
	case notification.FieldRead:
		return m.Read()
	case notification.FieldReadAt:
		return m.ReadAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *NotificationMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case notification.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case notification.FieldType:
		return m.OldType(ctx)
	case notification.FieldTitle:
		return m.OldTitle(ctx)
	case notification.FieldMessage:
		return m.OldMessage(ctx)
	case notification.FieldPlotID:
		return m.OldPlotID(ctx)
	case notification.FieldTaskID:
		return m.OldTaskID(ctx)
	case notification.FieldRead:
		return m.OldRead(ctx)
	case notification.FieldReadAt:
		return m.OldReadAt(ctx)
	}
	return nil, fmt.Errorf("unknown Notification field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *NotificationMutation) SetField(name string, value ent.Value) error {
	switch name {
	case notification.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case notification.FieldType:
		v, ok := value.(notification.Type)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetType(v)
		return nil
	case notification.FieldTitle:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTitle(v)
		return nil
	case notification.FieldMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMessage(v)
		return nil
	case notification.FieldPlotID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPlotID(v)
		return nil
	case notification.FieldTaskID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTaskID(v)
		return nil
	case notification.FieldRead:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRead(v)
		return nil
	case notification.FieldReadAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReadAt(v)
		return nil
	}
	return fmt.Errorf("unknown Notification field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *NotificationMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *NotificationMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *NotificationMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Notification numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *NotificationMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(notification.FieldPlotID) {
		fields = append(fields, notification.FieldPlotID)
	}
	if m.FieldCleared(notification.FieldTaskID) {
		fields = append(fields, notification.FieldTaskID)
	}
	if m.FieldCleared(notification.FieldReadAt) {
		fields = append(fields, notification.FieldReadAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *NotificationMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *NotificationMutation) ClearField(name string) error {
	switch name {
	case notification.FieldPlotID:
		m.ClearPlotID()
		return nil
	case notification.FieldTaskID:
		m.ClearTaskID()
		return nil
	case notification.FieldReadAt:
		m.ClearReadAt()
		return nil
	}
	return fmt.Errorf("unknown Notification nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *NotificationMutation) ResetField(name string) error {
	switch name {
	case notification.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case notification.FieldType:
		m.ResetType()
		return nil
	case notification.FieldTitle:
		m.ResetTitle()
		return nil
	case notification.FieldMessage:
		m.ResetMessage()
		return nil
	case notification.FieldPlotID:
		m.ResetPlotID()
		return nil
	case notification.FieldTaskID:
		m.ResetTaskID()
		return nil
	case notification.FieldRead:
		m.ResetRead()
		return nil
	case notification.FieldReadAt:
		m.ResetReadAt()
		return nil
	}
	return fmt.Errorf("unknown Notification field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *NotificationMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.user != nil {
		edges = append(edges, notification.EdgeUser)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *NotificationMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case notification.EdgeUser:
		if id := m.user; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *NotificationMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *NotificationMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *NotificationMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.cleareduser {
		edges = append(edges, notification.EdgeUser)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *NotificationMutation) EdgeCleared(name string) bool {
	switch name {
	case notification.EdgeUser:
		return m.cleareduser
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *NotificationMutation) ClearEdge(name string) error {
	switch name {
	case notification.EdgeUser:
		m.ClearUser()
		return nil
	}
	return fmt.Errorf("unknown Notification unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *NotificationMutation) ResetEdge(name string) error {
	switch name {
	case notification.EdgeUser:
		m.ResetUser()
		return nil
	}
	return fmt.Errorf("unknown Notification edge %s", name)
}

// PlotMutation represents an operation that mutates the Plot nodes in the graph.
type PlotMutation struct {
	config
	op            Op
	typ           string
	id            *string
	created_at    *time.Time
	updated_at    *time.Time
	title         *string
	location      *string
	area          *float64
	addarea       *float64
	price         *float64
	addprice      *float64
	land_type     *plot.LandType
	landowner_id  *string
	agent_id      *string
	parcel_number *string
	soil_type     *string
	listed        *bool
	clearedFields map[string]struct{}
	tasks         map[string]struct{}
	removedtasks  map[string]struct{}
	clearedtasks  bool
	done          bool
	oldValue      func(context.Context) (*Plot, error)
	predicates    []predicate.Plot
}

var _ ent.Mutation = (*PlotMutation)(nil)

// plotOption allows management of the mutation configuration using functional options.
type plotOption func(*PlotMutation)

// newPlotMutation creates new mutation for the Plot entity.
func newPlotMutation(c config, op Op, opts ...plotOption) *PlotMutation {
	m := &PlotMutation{
		config:        c,
		op:            op,
		typ:           TypePlot,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withPlotID sets the ID field of the mutation.
func withPlotID(id string) plotOption {
	return func(m *PlotMutation) {
		var (
			err   error
			once  sync.Once
			value *Plot
		)
		m.oldValue = func(ctx context.Context) (*Plot, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Plot.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withPlot sets the old Plot of the mutation.
func withPlot(node *Plot) plotOption {
	return func(m *PlotMutation) {
		m.oldValue = func(context.Context) (*Plot, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m PlotMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m PlotMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Plot entities.
func (m *PlotMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *PlotMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *PlotMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Plot.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *PlotMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *PlotMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Plot entity.
// If the Plot object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PlotMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *PlotMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *PlotMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *PlotMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Plot entity.
// If the Plot object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PlotMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *PlotMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetTitle sets the "title" field.
func (m *PlotMutation) SetTitle(s string) {
	m.title = &s
}

// Title returns the value of the "title" field in the mutation.
func (m *PlotMutation) Title() (r string, exists bool) {
	v := m.title
	if v == nil {
		return
	}
	return *v, true
}

// OldTitle returns the old "title" field's value of the Plot entity.
// If the Plot object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PlotMutation) OldTitle(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTitle is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTitle requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTitle: %w", err)
	}
	return oldValue.Title, nil
}

// ResetTitle resets all changes to the "title" field.
func (m *PlotMutation) ResetTitle() {
	m.title = nil
}

// SetLocation sets the "location" field.
func (m *PlotMutation) SetLocation(s string) {
	m.location = &s
}

// Location returns the value of the "location" field in the mutation.
func (m *PlotMutation) Location() (r string, exists bool) {
	v := m.location
	if v == nil {
		return
	}
	return *v, true
}

// OldLocation returns the old "location" field's value of the Plot entity.
// If the Plot object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PlotMutation) OldLocation(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLocation is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLocation requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLocation: %w", err)
	}
	return oldValue.Location, nil
}

// ResetLocation resets all changes to the "location" field.
func (m *PlotMutation) ResetLocation() {
	m.location = nil
}

// SetArea sets the "area" field.
func (m *PlotMutation) SetArea(f float64) {
	m.area = &f
	m.addarea = nil
}

// Area returns the value of the "area" field in the mutation.
func (m *PlotMutation) Area() (r float64, exists bool) {
	v := m.area
	if v == nil {
		return
	}
	return *v, true
}

// OldArea returns the old "area" field's value of the Plot entity.
// If the Plot object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PlotMutation) OldArea(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldArea is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldArea requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldArea: %w", err)
	}
	return oldValue.Area, nil
}

// AddArea adds f to the "area" field.
func (m *PlotMutation) AddArea(f float64) {
	if m.addarea != nil {
		*m.addarea += f
	} else {
		m.addarea = &f
	}
}

// AddedArea returns the value that was added to the "area" field in this mutation.
func (m *PlotMutation) AddedArea() (r float64, exists bool) {
	v := m.addarea
	if v == nil {
		return
	}
	return *v, true
}

// ResetArea resets all changes to the "area" field.
func (m *PlotMutation) ResetArea() {
	m.area = nil
	m.addarea = nil
}

// SetPrice sets the "price" field.
func (m *PlotMutation) SetPrice(f float64) {
	m.price = &f
	m.addprice = nil
}

// Price returns the value of the "price" field in the mutation.
func (m *PlotMutation) Price() (r float64, exists bool) {
	v := m.price
	if v == nil {
		return
	}
	return *v, true
}

// OldPrice returns the old "price" field's value of the Plot entity.
// If the Plot object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PlotMutation) OldPrice(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPrice is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPrice requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPrice: %w", err)
	}
	return oldValue.Price, nil
}

// AddPrice adds f to the "price" field.
func (m *PlotMutation) AddPrice(f float64) {
	if m.addprice != nil {
		*m.addprice += f
	} else {
		m.addprice = &f
	}
}

// AddedPrice returns the value that was added to the "price" field in this mutation.
func (m *PlotMutation) AddedPrice() (r float64, exists bool) {
	v := m.addprice
	if v == nil {
		return
	}
	return *v, true
}

// ResetPrice resets all changes to the "price" field.
func (m *PlotMutation) ResetPrice() {
	m.price = nil
	m.addprice = nil
}

// SetLandType sets the "land_type" field.
func (m *PlotMutation) SetLandType(pt plot.LandType) {
	m.land_type = &pt
}

// LandType returns the value of the "land_type" field in the mutation.
func (m *PlotMutation) LandType() (r plot.LandType, exists bool) {
	v := m.land_type
	if v == nil {
		return
	}
	return *v, true
}

// OldLandType returns the old "land_type" field's value of the Plot entity.
// If the Plot object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PlotMutation) OldLandType(ctx context.Context) (v plot.LandType, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLandType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLandType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLandType: %w", err)
	}
	return oldValue.LandType, nil
}

// ResetLandType resets all changes to the "land_type" field.
func (m *PlotMutation) ResetLandType() {
	m.land_type = nil
}

// SetLandownerID sets the "landowner_id" field.
func (m *PlotMutation) SetLandownerID(s string) {
	m.landowner_id = &s
}

// LandownerID returns the value of the "landowner_id" field in the mutation.
func (m *PlotMutation) LandownerID() (r string, exists bool) {
	v := m.landowner_id
	if v == nil {
		return
	}
	return *v, true
}

// OldLandownerID returns the old "landowner_id" field's value of the Plot entity.
// If the Plot object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PlotMutation) OldLandownerID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLandownerID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLandownerID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLandownerID: %w", err)
	}
	return oldValue.LandownerID, nil
}

// ClearLandownerID clears the value of the "landowner_id" field.
func (m *PlotMutation) ClearLandownerID() {
	m.landowner_id = nil
	m.clearedFields[plot.FieldLandownerID] = struct{}{}
}

// LandownerIDCleared returns if the "landowner_id" field was cleared in this mutation.
func (m *PlotMutation) LandownerIDCleared() bool {
	_, ok := m.clearedFields[plot.FieldLandownerID]
	return ok
}

// ResetLandownerID resets all changes to the "landowner_id" field.
func (m *PlotMutation) ResetLandownerID() {
	m.landowner_id = nil
	delete(m.clearedFields, plot.FieldLandownerID)
}

// SetAgentID sets the "agent_id" field.
func (m *PlotMutation) SetAgentID(s string) {
	m.agent_id = &s
}

// AgentID returns the value of the "agent_id" field in the mutation.
func (m *PlotMutation) AgentID() (r string, exists bool) {
	v := m.agent_id
	if v == nil {
		return
	}
	return *v, true
}

// OldAgentID returns the old "agent_id" field's value of the Plot entity.
// If the Plot object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PlotMutation) OldAgentID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAgentID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAgentID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAgentID: %w", err)
	}
	return oldValue.AgentID, nil
}

// ClearAgentID clears the value of the "agent_id" field.
func (m *PlotMutation) ClearAgentID() {
	m.agent_id = nil
	m.clearedFields[plot.FieldAgentID] = struct{}{}
}

// AgentIDCleared returns if the "agent_id" field was cleared in this mutation.
func (m *PlotMutation) AgentIDCleared() bool {
	_, ok := m.clearedFields[plot.FieldAgentID]
	return ok
}

// ResetAgentID resets all changes to the "agent_id" field.
func (m *PlotMutation) ResetAgentID() {
	m.agent_id = nil
	delete(m.clearedFields, plot.FieldAgentID)
}

// SetParcelNumber sets the "parcel_number" field.
func (m *PlotMutation) SetParcelNumber(s string) {
	m.parcel_number = &s
}

// ParcelNumber returns the value of the "parcel_number" field in the mutation.
func (m *PlotMutation) ParcelNumber() (r string, exists bool) {
	v := m.parcel_number
	if v == nil {
		return
	}
	return *v, true
}

// OldParcelNumber returns the old "parcel_number" field's value of the Plot entity.
// If the Plot object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PlotMutation) OldParcelNumber(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldParcelNumber is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldParcelNumber requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldParcelNumber: %w", err)
	}
	return oldValue.ParcelNumber, nil
}

// ClearParcelNumber clears the value of the "parcel_number" field.
func (m *PlotMutation) ClearParcelNumber() {
	m.parcel_number = nil
	m.clearedFields[plot.FieldParcelNumber] = struct{}{}
}

// ParcelNumberCleared returns if the "parcel_number" field was cleared in this mutation.
func (m *PlotMutation) ParcelNumberCleared() bool {
	_, ok := m.clearedFields[plot.FieldParcelNumber]
	return ok
}

// ResetParcelNumber resets all changes to the "parcel_number" field.
func (m *PlotMutation) ResetParcelNumber() {
	m.parcel_number = nil
	delete(m.clearedFields, plot.FieldParcelNumber)
}

// SetSoilType sets the "soil_type" field.
func (m *PlotMutation) SetSoilType(s string) {
	m.soil_type = &s
}

// SoilType returns the value of the "soil_type" field in the mutation.
func (m *PlotMutation) SoilType() (r string, exists bool) {
	v := m.soil_type
	if v == nil {
		return
	}
	return *v, true
}

// OldSoilType returns the old "soil_type" field's value of the Plot entity.
// If the Plot object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PlotMutation) OldSoilType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSoilType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSoilType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSoilType: %w", err)
	}
	return oldValue.SoilType, nil
}

// ClearSoilType clears the value of the "soil_type" field.
func (m *PlotMutation) ClearSoilType() {
	m.soil_type = nil
	m.clearedFields[plot.FieldSoilType] = struct{}{}
}

// SoilTypeCleared returns if the "soil_type" field was cleared in this mutation.
func (m *PlotMutation) SoilTypeCleared() bool {
	_, ok := m.clearedFields[plot.FieldSoilType]
	return ok
}

// ResetSoilType resets all changes to the "soil_type" field.
func (m *PlotMutation) ResetSoilType() {
	m.soil_type = nil
	delete(m.clearedFields, plot.FieldSoilType)
}

// SetListed sets the "listed" field.
func (m *PlotMutation) SetListed(b bool) {
	m.listed = &b
}

// Listed returns the value of the "listed" field in the mutation.
func (m *PlotMutation) Listed() (r bool, exists bool) {
	v := m.listed
	if v == nil {
		return
	}
	return *v, true
}

// OldListed returns the old "listed" field's value of the Plot entity.
// If the Plot object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PlotMutation) OldListed(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldListed is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldListed requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldListed: %w", err)
	}
	return oldValue.Listed, nil
}

// ResetListed resets all changes to the "listed" field.
func (m *PlotMutation) ResetListed() {
	m.listed = nil
}

// AddTaskIDs adds the "tasks" edge to the VerificationTask entity by ids.
func (m *PlotMutation) AddTaskIDs(ids ...string) {
	if m.tasks == nil {
		m.tasks = make(map[string]struct{})
	}
	for i := range ids {
		m.tasks[ids[i]] = struct{}{}
	}
}

// ClearTasks clears the "tasks" edge to the VerificationTask entity.
func (m *PlotMutation) ClearTasks() {
	m.clearedtasks = true
}

// TasksCleared reports if the "tasks" edge to the VerificationTask entity was cleared.
func (m *PlotMutation) TasksCleared() bool {
	return m.clearedtasks
}

// RemoveTaskIDs removes the "tasks" edge to the VerificationTask entity by IDs.
func (m *PlotMutation) RemoveTaskIDs(ids ...string) {
	if m.removedtasks == nil {
		m.removedtasks = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.tasks, ids[i])
		m.removedtasks[ids[i]] = struct{}{}
	}
}

// RemovedTasks returns the removed IDs of the "tasks" edge to the VerificationTask entity.
func (m *PlotMutation) RemovedTasksIDs() (ids []string) {
	for id := range m.removedtasks {
		ids = append(ids, id)
	}
	return
}

// TasksIDs returns the "tasks" edge IDs in the mutation.
func (m *PlotMutation) TasksIDs() (ids []string) {
	for id := range m.tasks {
		ids = append(ids, id)
	}
	return
}

// ResetTasks resets all changes to the "tasks" edge.
func (m *PlotMutation) ResetTasks() {
	m.tasks = nil
	m.clearedtasks = false
	m.removedtasks = nil
}

// Where appends a list predicates to the PlotMutation builder.
func (m *PlotMutation) Where(ps ...predicate.Plot) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the PlotMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *PlotMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Plot, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *PlotMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *PlotMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Plot).
func (m *PlotMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *PlotMutation) Fields() []string {
	fields := make([]string, 0, 12)
	if m.created_at != nil {
		fields = append(fields, plot.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, plot.FieldUpdatedAt)
	}
	if m.title != nil {
		fields = append(fields, plot.FieldTitle)
	}
	if m.location != nil {
		fields = append(fields, plot.FieldLocation)
	}
	if m.area != nil {
		fields = append(fields, plot.FieldArea)
	}
	if m.price != nil {
		fields = append(fields, plot.FieldPrice)
	}
	if m.land_type != nil {
		fields = append(fields, plot.FieldLandType)
	}
	if m.landowner_id != nil {
		fields = append(fields, plot.FieldLandownerID)
	}
	if m.agent_id != nil {
		fields = append(fields, plot.FieldAgentID)
	}
	if m.parcel_number != nil {
		fields = append(fields, plot.FieldParcelNumber)
	}
	if m.soil_type != nil {
		fields = append(fields, plot.FieldSoilType)
	}
	if m.listed != nil {
		fields = append(fields, plot.FieldListed)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *PlotMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case plot.FieldCreatedAt:
		return m.CreatedAt()
	case plot.FieldUpdatedAt:
		return m.UpdatedAt()
	case plot.FieldTitle:
		return m.Title()
	case plot.FieldLocation:
		return m.Location()
	case plot.FieldArea:
		return m.Area()
	case plot.FieldPrice:
		return m.Price()
	case plot.FieldLandType:
		return m.LandType()
	case plot.FieldLandownerID:
		return m.LandownerID()
	case plot.FieldAgentID:
		return m.AgentID()
	case plot.FieldParcelNumber:
		return m.ParcelNumber()
	case plot.FieldSoilType:
		return m.SoilType()
	case plot.FieldListed:
		return m.Listed()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *PlotMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case plot.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case plot.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case plot.FieldTitle:
		return m.OldTitle(ctx)
	case plot.FieldLocation:
		return m.OldLocation(ctx)
	case plot.FieldArea:
		return m.OldArea(ctx)
	case plot.FieldPrice:
		return m.OldPrice(ctx)
	case plot.FieldLandType:
		return m.OldLandType(ctx)
	case plot.FieldLandownerID:
		return m.OldLandownerID(ctx)
	case plot.FieldAgentID:
		return m.OldAgentID(ctx)
	case plot.FieldParcelNumber:
		return m.OldParcelNumber(ctx)
	case plot.FieldSoilType:
		return m.OldSoilType(ctx)
	case plot.FieldListed:
		return m.OldListed(ctx)
	}
	return nil, fmt.Errorf("unknown Plot field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PlotMutation) SetField(name string, value ent.Value) error {
	switch name {
	case plot.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case plot.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case plot.FieldTitle:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTitle(v)
		return nil
	case plot.FieldLocation:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLocation(v)
		return nil
	case plot.FieldArea:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetArea(v)
		return nil
	case plot.FieldPrice:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPrice(v)
		return nil
	case plot.FieldLandType:
		v, ok := value.(plot.LandType)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLandType(v)
		return nil
	case plot.FieldLandownerID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLandownerID(v)
		return nil
	case plot.FieldAgentID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAgentID(v)
		return nil
	case plot.FieldParcelNumber:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetParcelNumber(v)
		return nil
	case plot.FieldSoilType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSoilType(v)
		return nil
	case plot.FieldListed:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetListed(v)
		return nil
	}
	return fmt.Errorf("unknown Plot field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *PlotMutation) AddedFields() []string {
	var fields []string
	if m.addarea != nil {
		fields = append(fields, plot.FieldArea)
	}
	if m.addprice != nil {
		fields = append(fields, plot.FieldPrice)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *PlotMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case plot.FieldArea:
		return m.AddedArea()
	case plot.FieldPrice:
		return m.AddedPrice()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PlotMutation) AddField(name string, value ent.Value) error {
	switch name {
	case plot.FieldArea:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddArea(v)
		return nil
	case plot.FieldPrice:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPrice(v)
		return nil
	}
	return fmt.Errorf("unknown Plot numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *PlotMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(plot.FieldLandownerID) {
		fields = append(fields, plot.FieldLandownerID)
	}
	if m.FieldCleared(plot.FieldAgentID) {
		fields = append(fields, plot.FieldAgentID)
	}
	if m.FieldCleared(plot.FieldParcelNumber) {
		fields = append(fields, plot.FieldParcelNumber)
	}
	if m.FieldCleared(plot.FieldSoilType) {
		fields = append(fields, plot.FieldSoilType)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *PlotMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *PlotMutation) ClearField(name string) error {
	switch name {
	case plot.FieldLandownerID:
		m.ClearLandownerID()
		return nil
	case plot.FieldAgentID:
		m.ClearAgentID()
		return nil
	case plot.FieldParcelNumber:
		m.ClearParcelNumber()
		return nil
	case plot.FieldSoilType:
		m.ClearSoilType()
		return nil
	}
	return fmt.Errorf("unknown Plot nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *PlotMutation) ResetField(name string) error {
	switch name {
	case plot.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case plot.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case plot.FieldTitle:
		m.ResetTitle()
		return nil
	case plot.FieldLocation:
		m.ResetLocation()
		return nil
	case plot.FieldArea:
		m.ResetArea()
		return nil
	case plot.FieldPrice:
		m.ResetPrice()
		return nil
	case plot.FieldLandType:
		m.ResetLandType()
		return nil
	case plot.FieldLandownerID:
		m.ResetLandownerID()
		return nil
	case plot.FieldAgentID:
		m.ResetAgentID()
		return nil
	case plot.FieldParcelNumber:
		m.ResetParcelNumber()
		return nil
	case plot.FieldSoilType:
		m.ResetSoilType()
		return nil
	case plot.FieldListed:
		m.ResetListed()
		return nil
	}
	return fmt.Errorf("unknown Plot field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *PlotMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.tasks != nil {
		edges = append(edges, plot.EdgeTasks)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *PlotMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case plot.EdgeTasks:
		ids := make([]ent.Value, 0, len(m.tasks))
		for id := range m.tasks {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *PlotMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	if m.removedtasks != nil {
		edges = append(edges, plot.EdgeTasks)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *PlotMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case plot.EdgeTasks:
		ids := make([]ent.Value, 0, len(m.removedtasks))
		for id := range m.removedtasks {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *PlotMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedtasks {
		edges = append(edges, plot.EdgeTasks)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *PlotMutation) EdgeCleared(name string) bool {
	switch name {
	case plot.EdgeTasks:
		return m.clearedtasks
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *PlotMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown Plot unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *PlotMutation) ResetEdge(name string) error {
	switch name {
	case plot.EdgeTasks:
		m.ResetTasks()
		return nil
	}
	return fmt.Errorf("unknown Plot edge %s", name)
}

// UserMutation represents an operation that mutates the User nodes in the graph.
type UserMutation struct {
	config
	op                   Op
	typ                  string
	id                   *string
	created_at           *time.Time
	updated_at           *time.Time
	username             *string
	email                *string
	display_name         *string
	staff                *bool
	enabled              *bool
	clearedFields        map[string]struct{}
	notifications        map[string]struct{}
	removednotifications map[string]struct{}
	clearednotifications bool
	done                 bool
	oldValue             func(context.Context) (*User, error)
	predicates           []predicate.User
}

var _ ent.Mutation = (*UserMutation)(nil)

// userOption allows management of the mutation configuration using functional options.
type userOption func(*UserMutation)

// newUserMutation creates new mutation for the User entity.
func newUserMutation(c config, op Op, opts ...userOption) *UserMutation {
	m := &UserMutation{
		config:        c,
		op:            op,
		typ:           TypeUser,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withUserID sets the ID field of the mutation.
func withUserID(id string) userOption {
	return func(m *UserMutation) {
		var (
			err   error
			once  sync.Once
			value *User
		)
		m.oldValue = func(ctx context.Context) (*User, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().User.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withUser sets the old User of the mutation.
func withUser(node *User) userOption {
	return func(m *UserMutation) {
		m.oldValue = func(context.Context) (*User, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m UserMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m UserMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of User entities.
func (m *UserMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *UserMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *UserMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().User.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *UserMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *UserMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *UserMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *UserMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *UserMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *UserMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetUsername sets the "username" field.
func (m *UserMutation) SetUsername(s string) {
	m.username = &s
}

// Username returns the value of the "username" field in the mutation.
func (m *UserMutation) Username() (r string, exists bool) {
	v := m.username
	if v == nil {
		return
	}
	return *v, true
}

// OldUsername returns the old "username" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldUsername(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUsername is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUsername requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUsername: %w", err)
	}
	return oldValue.Username, nil
}

// ResetUsername resets all changes to the "username" field.
func (m *UserMutation) ResetUsername() {
	m.username = nil
}

// SetEmail sets the "email" field.
func (m *UserMutation) SetEmail(s string) {
	m.email = &s
}

// Email returns the value of the "email" field in the mutation.
func (m *UserMutation) Email() (r string, exists bool) {
	v := m.email
	if v == nil {
		return
	}
	return *v, true
}

// OldEmail returns the old "email" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldEmail(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEmail is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEmail requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEmail: %w", err)
	}
	return oldValue.Email, nil
}

// ClearEmail clears the value of the "email" field.
func (m *UserMutation) ClearEmail() {
	m.email = nil
	m.clearedFields[user.FieldEmail] = struct{}{}
}

// EmailCleared returns if the "email" field was cleared in this mutation.
func (m *UserMutation) EmailCleared() bool {
	_, ok := m.clearedFields[user.FieldEmail]
	return ok
}

// ResetEmail resets all changes to the "email" field.
func (m *UserMutation) ResetEmail() {
	m.email = nil
	delete(m.clearedFields, user.FieldEmail)
}

// SetDisplayName sets the "display_name" field.
func (m *UserMutation) SetDisplayName(s string) {
	m.display_name = &s
}

// DisplayName returns the value of the "display_name" field in the mutation.
func (m *UserMutation) DisplayName() (r string, exists bool) {
	v := m.display_name
	if v == nil {
		return
	}
	return *v, true
}

// OldDisplayName returns the old "display_name" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldDisplayName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDisplayName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDisplayName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDisplayName: %w", err)
	}
	return oldValue.DisplayName, nil
}

// ClearDisplayName clears the value of the "display_name" field.
func (m *UserMutation) ClearDisplayName() {
	m.display_name = nil
	m.clearedFields[user.FieldDisplayName] = struct{}{}
}

// DisplayNameCleared returns if the "display_name" field was cleared in this mutation.
func (m *UserMutation) DisplayNameCleared() bool {
	_, ok := m.clearedFields[user.FieldDisplayName]
	return ok
}

// ResetDisplayName resets all changes to the "display_name" field.
func (m *UserMutation) ResetDisplayName() {
	m.display_name = nil
	delete(m.clearedFields, user.FieldDisplayName)
}

// SetStaff sets the "staff" field.
func (m *UserMutation) SetStaff(b bool) {
	m.staff = &b
}

// Staff returns the value of the "staff" field in the mutation.
func (m *UserMutation) Staff() (r bool, exists bool) {
	v := m.staff
	if v == nil {
		return
	}
	return *v, true
}

// OldStaff returns the old "staff" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldStaff(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStaff is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStaff requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStaff: %w", err)
	}
	return oldValue.Staff, nil
}

// ResetStaff resets all changes to the "staff" field.
func (m *UserMutation) ResetStaff() {
	m.staff = nil
}

// SetEnabled sets the "enabled" field.
func (m *UserMutation) SetEnabled(b bool) {
	m.enabled = &b
}

// Enabled returns the value of the "enabled" field in the mutation.
func (m *UserMutation) Enabled() (r bool, exists bool) {
	v := m.enabled
	if v == nil {
		return
	}
	return *v, true
}

// OldEnabled returns the old "enabled" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldEnabled(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEnabled is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEnabled requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEnabled: %w", err)
	}
	return oldValue.Enabled, nil
}

// ResetEnabled resets all changes to the "enabled" field.
func (m *UserMutation) ResetEnabled() {
	m.enabled = nil
}

// AddNotificationIDs adds the "notifications" edge to the Notification entity by ids.
func (m *UserMutation) AddNotificationIDs(ids ...string) {
	if m.notifications == nil {
		m.notifications = make(map[string]struct{})
	}
	for i := range ids {
		m.notifications[ids[i]] = struct{}{}
	}
}

// ClearNotifications clears the "notifications" edge to the Notification entity.
func (m *UserMutation) ClearNotifications() {
	m.clearednotifications = true
}

// NotificationsCleared reports if the "notifications" edge to the Notification entity was cleared.
func (m *UserMutation) NotificationsCleared() bool {
	return m.clearednotifications
}

// RemoveNotificationIDs removes the "notifications" edge to the Notification entity by IDs.
func (m *UserMutation) RemoveNotificationIDs(ids ...string) {
	if m.removednotifications == nil {
		m.removednotifications = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.notifications, ids[i])
		m.removednotifications[ids[i]] = struct{}{}
	}
}

// RemovedNotifications returns the removed IDs of the "notifications" edge to the Notification entity.
func (m *UserMutation) RemovedNotificationsIDs() (ids []string) {
	for id := range m.removednotifications {
		ids = append(ids, id)
	}
	return
}

// NotificationsIDs returns the "notifications" edge IDs in the mutation.
func (m *UserMutation) NotificationsIDs() (ids []string) {
	for id := range m.notifications {
		ids = append(ids, id)
	}
	return
}

// ResetNotifications resets all changes to the "notifications" edge.
func (m *UserMutation) ResetNotifications() {
	m.notifications = nil
	m.clearednotifications = false
	m.removednotifications = nil
}

// Where appends a list predicates to the UserMutation builder.
func (m *UserMutation) Where(ps ...predicate.User) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the UserMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *UserMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.User, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *UserMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *UserMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (User).
func (m *UserMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *UserMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.created_at != nil {
		fields = append(fields, user.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, user.FieldUpdatedAt)
	}
	if m.username != nil {
		fields = append(fields, user.FieldUsername)
	}
	if m.email != nil {
		fields = append(fields, user.FieldEmail)
	}
	if m.display_name != nil {
		fields = append(fields, user.FieldDisplayName)
	}
	if m.staff != nil {
		fields = append(fields, user.FieldStaff)
	}
	if m.enabled != nil {
		fields = append(fields, user.FieldEnabled)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *UserMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case user.FieldCreatedAt:
		return m.CreatedAt()
	case user.FieldUpdatedAt:
		return m.UpdatedAt()
	case user.FieldUsername:
		return m.Username()
	case user.FieldEmail:
		return m.Email()
	case user.FieldDisplayName:
		return m.DisplayName()
	case user.FieldStaff:
		return m.Staff()
	case user.FieldEnabled:
		return m.Enabled()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *UserMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case user.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case user.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case user.FieldUsername:
		return m.OldUsername(ctx)
	case user.FieldEmail:
		return m.OldEmail(ctx)
	case user.FieldDisplayName:
		return m.OldDisplayName(ctx)
	case user.FieldStaff:
		return m.OldStaff(ctx)
	case user.FieldEnabled:
		return m.OldEnabled(ctx)
	}
	return nil, fmt.Errorf("unknown User field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *UserMutation) SetField(name string, value ent.Value) error {
	switch name {
	case user.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case user.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case user.FieldUsername:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUsername(v)
		return nil
	case user.FieldEmail:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEmail(v)
		return nil
	case user.FieldDisplayName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDisplayName(v)
		return nil
	case user.FieldStaff:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStaff(v)
		return nil
	case user.FieldEnabled:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEnabled(v)
		return nil
	}
	return fmt.Errorf("unknown User field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *UserMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *UserMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *UserMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown User numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *UserMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(user.FieldEmail) {
		fields = append(fields, user.FieldEmail)
	}
	if m.FieldCleared(user.FieldDisplayName) {
		fields = append(fields, user.FieldDisplayName)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *UserMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *UserMutation) ClearField(name string) error {
	switch name {
	case user.FieldEmail:
		m.ClearEmail()
		return nil
	case user.FieldDisplayName:
		m.ClearDisplayName()
		return nil
	}
	return fmt.Errorf("unknown User nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *UserMutation) ResetField(name string) error {
	switch name {
	case user.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case user.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case user.FieldUsername:
		m.ResetUsername()
		return nil
	case user.FieldEmail:
		m.ResetEmail()
		return nil
	case user.FieldDisplayName:
		m.ResetDisplayName()
		return nil
	case user.FieldStaff:
		m.ResetStaff()
		return nil
	case user.FieldEnabled:
		m.ResetEnabled()
		return nil
	}
	return fmt.Errorf("unknown User field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *UserMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.notifications != nil {
		edges = append(edges, user.EdgeNotifications)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *UserMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case user.EdgeNotifications:
		ids := make([]ent.Value, 0, len(m.notifications))
		for id := range m.notifications {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *UserMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	if m.removednotifications != nil {
		edges = append(edges, user.EdgeNotifications)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *UserMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case user.EdgeNotifications:
		ids := make([]ent.Value, 0, len(m.removednotifications))
		for id := range m.removednotifications {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *UserMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearednotifications {
		edges = append(edges, user.EdgeNotifications)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *UserMutation) EdgeCleared(name string) bool {
	switch name {
	case user.EdgeNotifications:
		return m.clearednotifications
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *UserMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown User unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *UserMutation) ResetEdge(name string) error {
	switch name {
	case user.EdgeNotifications:
		m.ResetNotifications()
		return nil
	}
	return fmt.Errorf("unknown User edge %s", name)
}

// VerificationLogEntryMutation represents an operation that mutates the VerificationLogEntry nodes in the graph.
type VerificationLogEntryMutation struct {
	config
	op            Op
	typ           string
	id            *string
	created_at    *time.Time
	action        *string
	subject_kind  *string
	subject_id    *string
	actor         *string
	comment       *string
	details       *map[string]interface{}
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*VerificationLogEntry, error)
	predicates    []predicate.VerificationLogEntry
}

var _ ent.Mutation = (*VerificationLogEntryMutation)(nil)

// verificationlogentryOption allows management of the mutation configuration using functional options.
type verificationlogentryOption func(*VerificationLogEntryMutation)

// newVerificationLogEntryMutation creates new mutation for the VerificationLogEntry entity.
func newVerificationLogEntryMutation(c config, op Op, opts ...verificationlogentryOption) *VerificationLogEntryMutation {
	m := &VerificationLogEntryMutation{
		config:        c,
		op:            op,
		typ:           TypeVerificationLogEntry,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withVerificationLogEntryID sets the ID field of the mutation.
func withVerificationLogEntryID(id string) verificationlogentryOption {
	return func(m *VerificationLogEntryMutation) {
		var (
			err   error
			once  sync.Once
			value *VerificationLogEntry
		)
		m.oldValue = func(ctx context.Context) (*VerificationLogEntry, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().VerificationLogEntry.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withVerificationLogEntry sets the old VerificationLogEntry of the mutation.
func withVerificationLogEntry(node *VerificationLogEntry) verificationlogentryOption {
	return func(m *VerificationLogEntryMutation) {
		m.oldValue = func(context.Context) (*VerificationLogEntry, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m VerificationLogEntryMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m VerificationLogEntryMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of VerificationLogEntry entities.
func (m *VerificationLogEntryMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *VerificationLogEntryMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *VerificationLogEntryMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().VerificationLogEntry.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *VerificationLogEntryMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *VerificationLogEntryMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the VerificationLogEntry entity.
// If the VerificationLogEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VerificationLogEntryMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *VerificationLogEntryMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetAction sets the "action" field.
func (m *VerificationLogEntryMutation) SetAction(s string) {
	m.action = &s
}

// Action returns the value of the "action" field in the mutation.
func (m *VerificationLogEntryMutation) Action() (r string, exists bool) {
	v := m.action
	if v == nil {
		return
	}
	return *v, true
}

// OldAction returns the old "action" field's value of the VerificationLogEntry entity.
// If the VerificationLogEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VerificationLogEntryMutation) OldAction(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAction is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAction requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAction: %w", err)
	}
	return oldValue.Action, nil
}

// ResetAction resets all changes to the "action" field.
func (m *VerificationLogEntryMutation) ResetAction() {
	m.action = nil
}

// SetSubjectKind sets the "subject_kind" field.
func (m *VerificationLogEntryMutation) SetSubjectKind(s string) {
	m.subject_kind = &s
}

// SubjectKind returns the value of the "subject_kind" field in the mutation.
func (m *VerificationLogEntryMutation) SubjectKind() (r string, exists bool) {
	v := m.subject_kind
	if v == nil {
		return
	}
	return *v, true
}

// OldSubjectKind returns the old "subject_kind" field's value of the VerificationLogEntry entity.
// If the VerificationLogEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VerificationLogEntryMutation) OldSubjectKind(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSubjectKind is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSubjectKind requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSubjectKind: %w", err)
	}
	return oldValue.SubjectKind, nil
}

// ResetSubjectKind resets all changes to the "subject_kind" field.
func (m *VerificationLogEntryMutation) ResetSubjectKind() {
	m.subject_kind = nil
}

// SetSubjectID sets the "subject_id" field.
func (m *VerificationLogEntryMutation) SetSubjectID(s string) {
	m.subject_id = &s
}

// SubjectID returns the value of the "subject_id" field in the mutation.
func (m *VerificationLogEntryMutation) SubjectID() (r string, exists bool) {
	v := m.subject_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSubjectID returns the old "subject_id" field's value of the VerificationLogEntry entity.
// If the VerificationLogEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VerificationLogEntryMutation) OldSubjectID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSubjectID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSubjectID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSubjectID: %w", err)
	}
	return oldValue.SubjectID, nil
}

// ResetSubjectID resets all changes to the "subject_id" field.
func (m *VerificationLogEntryMutation) ResetSubjectID() {
	m.subject_id = nil
}

// SetActor sets the "actor" field.
func (m *VerificationLogEntryMutation) SetActor(s string) {
	m.actor = &s
}

// Actor returns the value of the "actor" field in the mutation.
func (m *VerificationLogEntryMutation) Actor() (r string, exists bool) {
	v := m.actor
	if v == nil {
		return
	}
	return *v, true
}

// OldActor returns the old "actor" field's value of the VerificationLogEntry entity.
// If the VerificationLogEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VerificationLogEntryMutation) OldActor(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldActor is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldActor requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldActor: %w", err)
	}
	return oldValue.Actor, nil
}

// ResetActor resets all changes to the "actor" field.
func (m *VerificationLogEntryMutation) ResetActor() {
	m.actor = nil
}

// SetComment sets the "comment" field.
func (m *VerificationLogEntryMutation) SetComment(s string) {
	m.comment = &s
}

// Comment returns the value of the "comment" field in the mutation.
func (m *VerificationLogEntryMutation) Comment() (r string, exists bool) {
	v := m.comment
	if v == nil {
		return
	}
	return *v, true
}

// OldComment returns the old "comment" field's value of the VerificationLogEntry entity.
// If the VerificationLogEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VerificationLogEntryMutation) OldComment(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldComment is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldComment requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldComment: %w", err)
	}
	return oldValue.Comment, nil
}

// ClearComment clears the value of the "comment" field.
func (m *VerificationLogEntryMutation) ClearComment() {
	m.comment = nil
	m.clearedFields[verificationlogentry.FieldComment] = struct{}{}
}

// CommentCleared returns if the "comment" field was cleared in this mutation.
func (m *VerificationLogEntryMutation) CommentCleared() bool {
	_, ok := m.clearedFields[verificationlogentry.FieldComment]
	return ok
}

// ResetComment resets all changes to the "comment" field.
func (m *VerificationLogEntryMutation) ResetComment() {
	m.comment = nil
	delete(m.clearedFields, verificationlogentry.FieldComment)
}

// SetDetails sets the "details" field.
func (m *VerificationLogEntryMutation) SetDetails(value map[string]interface{}) {
	m.details = &value
}

// Details returns the value of the "details" field in the mutation.
func (m *VerificationLogEntryMutation) Details() (r map[string]interface{}, exists bool) {
	v := m.details
	if v == nil {
		return
	}
	return *v, true
}

// OldDetails returns the old "details" field's value of the VerificationLogEntry entity.
// If the VerificationLogEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VerificationLogEntryMutation) OldDetails(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDetails is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDetails requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDetails: %w", err)
	}
	return oldValue.Details, nil
}

// ClearDetails clears the value of the "details" field.
func (m *VerificationLogEntryMutation) ClearDetails() {
	m.details = nil
	m.clearedFields[verificationlogentry.FieldDetails] = struct{}{}
}

// DetailsCleared returns if the "details" field was cleared in this mutation.
func (m *VerificationLogEntryMutation) DetailsCleared() bool {
	_, ok := m.clearedFields[verificationlogentry.FieldDetails]
	return ok
}

// ResetDetails resets all changes to the "details" field.
func (m *VerificationLogEntryMutation) ResetDetails() {
	m.details = nil
	delete(m.clearedFields, verificationlogentry.FieldDetails)
}

// Where appends a list predicates to the VerificationLogEntryMutation builder.
func (m *VerificationLogEntryMutation) Where(ps ...predicate.VerificationLogEntry) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the VerificationLogEntryMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *VerificationLogEntryMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.VerificationLogEntry, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *VerificationLogEntryMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *VerificationLogEntryMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (VerificationLogEntry).
func (m *VerificationLogEntryMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *VerificationLogEntryMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.created_at != nil {
		fields = append(fields, verificationlogentry.FieldCreatedAt)
	}
	if m.action != nil {
		fields = append(fields, verificationlogentry.FieldAction)
	}
	if m.subject_kind != nil {
		fields = append(fields, verificationlogentry.FieldSubjectKind)
	}
	if m.subject_id != nil {
		fields = append(fields, verificationlogentry.FieldSubjectID)
	}
	if m.actor != nil {
		fields = append(fields, verificationlogentry.FieldActor)
	}
	if m.comment != nil {
		fields = append(fields, verificationlogentry.FieldComment)
	}
	if m.details != nil {
		fields = append(fields, verificationlogentry.FieldDetails)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *VerificationLogEntryMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case verificationlogentry.FieldCreatedAt:
		return m.CreatedAt()
	case verificationlogentry.FieldAction:
		return m.Action()
	case verificationlogentry.FieldSubjectKind:
		return m.SubjectKind()
	case verificationlogentry.FieldSubjectID:
		return m.SubjectID()
	case verificationlogentry.FieldActor:
		return m.Actor()
	case verificationlogentry.FieldComment:
		return m.Comment()
	case verificationlogentry.FieldDetails:
		return m.Details()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *VerificationLogEntryMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case verificationlogentry.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case verificationlogentry.FieldAction:
		return m.OldAction(ctx)
	case verificationlogentry.FieldSubjectKind:
		return m.OldSubjectKind(ctx)
	case verificationlogentry.FieldSubjectID:
		return m.OldSubjectID(ctx)
	case verificationlogentry.FieldActor:
		return m.OldActor(ctx)
	case verificationlogentry.FieldComment:
		return m.OldComment(ctx)
	case verificationlogentry.FieldDetails:
		return m.OldDetails(ctx)
	}
	return nil, fmt.Errorf("unknown VerificationLogEntry field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *VerificationLogEntryMutation) SetField(name string, value ent.Value) error {
	switch name {
	case verificationlogentry.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case verificationlogentry.FieldAction:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAction(v)
		return nil
	case verificationlogentry.FieldSubjectKind:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSubjectKind(v)
		return nil
	case verificationlogentry.FieldSubjectID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSubjectID(v)
		return nil
	case verificationlogentry.FieldActor:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetActor(v)
		return nil
	case verificationlogentry.FieldComment:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetComment(v)
		return nil
	case verificationlogentry.FieldDetails:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDetails(v)
		return nil
	}
	return fmt.Errorf("unknown VerificationLogEntry field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *VerificationLogEntryMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *VerificationLogEntryMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *VerificationLogEntryMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown VerificationLogEntry numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *VerificationLogEntryMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(verificationlogentry.FieldComment) {
		fields = append(fields, verificationlogentry.FieldComment)
	}
	if m.FieldCleared(verificationlogentry.FieldDetails) {
		fields = append(fields, verificationlogentry.FieldDetails)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *VerificationLogEntryMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *VerificationLogEntryMutation) ClearField(name string) error {
	switch name {
	case verificationlogentry.FieldComment:
		m.ClearComment()
		return nil
	case verificationlogentry.FieldDetails:
		m.ClearDetails()
		return nil
	}
	return fmt.Errorf("unknown VerificationLogEntry nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *VerificationLogEntryMutation) ResetField(name string) error {
	switch name {
	case verificationlogentry.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case verificationlogentry.FieldAction:
		m.ResetAction()
		return nil
	case verificationlogentry.FieldSubjectKind:
		m.ResetSubjectKind()
		return nil
	case verificationlogentry.FieldSubjectID:
		m.ResetSubjectID()
		return nil
	case verificationlogentry.FieldActor:
		m.ResetActor()
		return nil
	case verificationlogentry.FieldComment:
		m.ResetComment()
		return nil
	case verificationlogentry.FieldDetails:
		m.ResetDetails()
		return nil
	}
	return fmt.Errorf("unknown VerificationLogEntry field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *VerificationLogEntryMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *VerificationLogEntryMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *VerificationLogEntryMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *VerificationLogEntryMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *VerificationLogEntryMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *VerificationLogEntryMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *VerificationLogEntryMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown VerificationLogEntry unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *VerificationLogEntryMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown VerificationLogEntry edge %s", name)
}

// VerificationRecordMutation represents an operation that mutates the VerificationRecord nodes in the graph.
type VerificationRecordMutation struct {
	config
	op                       Op
	typ                      string
	id                       *string
	created_at               *time.Time
	updated_at               *time.Time
	subject_kind             *verificationrecord.SubjectKind
	subject_id               *string
	stage                    *verificationrecord.Stage
	stage_timestamps         *map[string]string
	external_responses       *[]map[string]interface{}
	appendexternal_responses []map[string]interface{}
	detail                   *map[string]interface{}
	search_reference         *string
	search_fee               *float64
	addsearch_fee            *float64
	approved_at              *time.Time
	rejected_at              *time.Time
	clearedFields            map[string]struct{}
	done                     bool
	oldValue                 func(context.Context) (*VerificationRecord, error)
	predicates               []predicate.VerificationRecord
}

var _ ent.Mutation = (*VerificationRecordMutation)(nil)

// verificationrecordOption allows management of the mutation configuration using functional options.
type verificationrecordOption func(*VerificationRecordMutation)

// newVerificationRecordMutation creates new mutation for the VerificationRecord entity.
func newVerificationRecordMutation(c config, op Op, opts ...verificationrecordOption) *VerificationRecordMutation {
	m := &VerificationRecordMutation{
		config:        c,
		op:            op,
		typ:           TypeVerificationRecord,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withVerificationRecordID sets the ID field of the mutation.
func withVerificationRecordID(id string) verificationrecordOption {
	return func(m *VerificationRecordMutation) {
		var (
			err   error
			once  sync.Once
			value *VerificationRecord
		)
		m.oldValue = func(ctx context.Context) (*VerificationRecord, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().VerificationRecord.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withVerificationRecord sets the old VerificationRecord of the mutation.
func withVerificationRecord(node *VerificationRecord) verificationrecordOption {
	return func(m *VerificationRecordMutation) {
		m.oldValue = func(context.Context) (*VerificationRecord, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m VerificationRecordMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m VerificationRecordMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of VerificationRecord entities.
func (m *VerificationRecordMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *VerificationRecordMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *VerificationRecordMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().VerificationRecord.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *VerificationRecordMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *VerificationRecordMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the VerificationRecord entity.
// If the VerificationRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VerificationRecordMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *VerificationRecordMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *VerificationRecordMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *VerificationRecordMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the VerificationRecord entity.
// If the VerificationRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VerificationRecordMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *VerificationRecordMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetSubjectKind sets the "subject_kind" field.
func (m *VerificationRecordMutation) SetSubjectKind(vk verificationrecord.SubjectKind) {
	m.subject_kind = &vk
}

// SubjectKind returns the value of the "subject_kind" field in the mutation.
func (m *VerificationRecordMutation) SubjectKind() (r verificationrecord.SubjectKind, exists bool) {
	v := m.subject_kind
	if v == nil {
		return
	}
	return *v, true
}

// OldSubjectKind returns the old "subject_kind" field's value of the VerificationRecord entity.
// If the VerificationRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VerificationRecordMutation) OldSubjectKind(ctx context.Context) (v verificationrecord.SubjectKind, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSubjectKind is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSubjectKind requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSubjectKind: %w", err)
	}
	return oldValue.SubjectKind, nil
}

// ResetSubjectKind resets all changes to the "subject_kind" field.
func (m *VerificationRecordMutation) ResetSubjectKind() {
	m.subject_kind = nil
}

// SetSubjectID sets the "subject_id" field.
func (m *VerificationRecordMutation) SetSubjectID(s string) {
	m.subject_id = &s
}

// SubjectID returns the value of the "subject_id" field in the mutation.
func (m *VerificationRecordMutation) SubjectID() (r string, exists bool) {
	v := m.subject_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSubjectID returns the old "subject_id" field's value of the VerificationRecord entity.
// If the VerificationRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VerificationRecordMutation) OldSubjectID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSubjectID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSubjectID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSubjectID: %w", err)
	}
	return oldValue.SubjectID, nil
}

// ResetSubjectID resets all changes to the "subject_id" field.
func (m *VerificationRecordMutation) ResetSubjectID() {
	m.subject_id = nil
}

// SetStage sets the "stage" field.
func (m *VerificationRecordMutation) SetStage(v verificationrecord.Stage) {
	m.stage = &v
}

// Stage returns the value of the "stage" field in the mutation.
func (m *VerificationRecordMutation) Stage() (r verificationrecord.Stage, exists bool) {
	v := m.stage
	if v == nil {
		return
	}
	return *v, true
}

// OldStage returns the old "stage" field's value of the VerificationRecord entity.
// If the VerificationRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VerificationRecordMutation) OldStage(ctx context.Context) (v verificationrecord.Stage, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStage: %w", err)
	}
	return oldValue.Stage, nil
}

// ResetStage resets all changes to the "stage" field.
func (m *VerificationRecordMutation) ResetStage() {
	m.stage = nil
}

// SetStageTimestamps sets the "stage_timestamps" field.
func (m *VerificationRecordMutation) SetStageTimestamps(value map[string]string) {
	m.stage_timestamps = &value
}

// StageTimestamps returns the value of the "stage_timestamps" field in the mutation.
func (m *VerificationRecordMutation) StageTimestamps() (r map[string]string, exists bool) {
	v := m.stage_timestamps
	if v == nil {
		return
	}
	return *v, true
}

// OldStageTimestamps returns the old "stage_timestamps" field's value of the VerificationRecord entity.
// If the VerificationRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VerificationRecordMutation) OldStageTimestamps(ctx context.Context) (v map[string]string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStageTimestamps is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStageTimestamps requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStageTimestamps: %w", err)
	}
	return oldValue.StageTimestamps, nil
}

// ClearStageTimestamps clears the value of the "stage_timestamps" field.
func (m *VerificationRecordMutation) ClearStageTimestamps() {
	m.stage_timestamps = nil
	m.clearedFields[verificationrecord.FieldStageTimestamps] = struct{}{}
}

// StageTimestampsCleared returns if the "stage_timestamps" field was cleared in this mutation.
func (m *VerificationRecordMutation) StageTimestampsCleared() bool {
	_, ok := m.clearedFields[verificationrecord.FieldStageTimestamps]
	return ok
}

// ResetStageTimestamps resets all changes to the "stage_timestamps" field.
func (m *VerificationRecordMutation) ResetStageTimestamps() {
	m.stage_timestamps = nil
	delete(m.clearedFields, verificationrecord.FieldStageTimestamps)
}

// SetExternalResponses sets the "external_responses" field.
func (m *VerificationRecordMutation) SetExternalResponses(value []map[string]interface{}) {
	m.external_responses = &value
	m.appendexternal_responses = nil
}

// ExternalResponses returns the value of the "external_responses" field in the mutation.
func (m *VerificationRecordMutation) ExternalResponses() (r []map[string]interface{}, exists bool) {
	v := m.external_responses
	if v == nil {
		return
	}
	return *v, true
}

// OldExternalResponses returns the old "external_responses" field's value of the VerificationRecord entity.
// If the VerificationRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VerificationRecordMutation) OldExternalResponses(ctx context.Context) (v []map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExternalResponses is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExternalResponses requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExternalResponses: %w", err)
	}
	return oldValue.ExternalResponses, nil
}

// AppendExternalResponses adds value to the "external_responses" field.
func (m *VerificationRecordMutation) AppendExternalResponses(value []map[string]interface{}) {
	m.appendexternal_responses = append(m.appendexternal_responses, value...)
}

// AppendedExternalResponses returns the list of values that were appended to the "external_responses" field in this mutation.
func (m *VerificationRecordMutation) AppendedExternalResponses() ([]map[string]interface{}, bool) {
	if len(m.appendexternal_responses) == 0 {
		return nil, false
	}
	return m.appendexternal_responses, true
}

// ClearExternalResponses clears the value of the "external_responses" field.
func (m *VerificationRecordMutation) ClearExternalResponses() {
	m.external_responses = nil
	m.appendexternal_responses = nil
	m.clearedFields[verificationrecord.FieldExternalResponses] = struct{}{}
}

// ExternalResponsesCleared returns if the "external_responses" field was cleared in this mutation.
func (m *VerificationRecordMutation) ExternalResponsesCleared() bool {
	_, ok := m.clearedFields[verificationrecord.FieldExternalResponses]
	return ok
}

// ResetExternalResponses resets all changes to the "external_responses" field.
func (m *VerificationRecordMutation) ResetExternalResponses() {
	m.external_responses = nil
	m.appendexternal_responses = nil
	delete(m.clearedFields, verificationrecord.FieldExternalResponses)
}

// SetDetail sets the "detail" field.
func (m *VerificationRecordMutation) SetDetail(value map[string]interface{}) {
	m.detail = &value
}

// Detail returns the value of the "detail" field in the mutation.
func (m *VerificationRecordMutation) Detail() (r map[string]interface{}, exists bool) {
	v := m.detail
	if v == nil {
		return
	}
	return *v, true
}

// OldDetail returns the old "detail" field's value of the VerificationRecord entity.
// If the VerificationRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VerificationRecordMutation) OldDetail(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDetail is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDetail requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDetail: %w", err)
	}
	return oldValue.Detail, nil
}

// ClearDetail clears the value of the "detail" field.
func (m *VerificationRecordMutation) ClearDetail() {
	m.detail = nil
	m.clearedFields[verificationrecord.FieldDetail] = struct{}{}
}

// DetailCleared returns if the "detail" field was cleared in this mutation.
func (m *VerificationRecordMutation) DetailCleared() bool {
	_, ok := m.clearedFields[verificationrecord.FieldDetail]
	return ok
}

// ResetDetail resets all changes to the "detail" field.
func (m *VerificationRecordMutation) ResetDetail() {
	m.detail = nil
	delete(m.clearedFields, verificationrecord.FieldDetail)
}

// SetSearchReference sets the "search_reference" field.
func (m *VerificationRecordMutation) SetSearchReference(s string) {
	m.search_reference = &s
}

// SearchReference returns the value of the "search_reference" field in the mutation.
func (m *VerificationRecordMutation) SearchReference() (r string, exists bool) {
	v := m.search_reference
	if v == nil {
		return
	}
	return *v, true
}

// OldSearchReference returns the old "search_reference" field's value of the VerificationRecord entity.
// If the VerificationRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VerificationRecordMutation) OldSearchReference(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSearchReference is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSearchReference requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSearchReference: %w", err)
	}
	return oldValue.SearchReference, nil
}

// ClearSearchReference clears the value of the "search_reference" field.
func (m *VerificationRecordMutation) ClearSearchReference() {
	m.search_reference = nil
	m.clearedFields[verificationrecord.FieldSearchReference] = struct{}{}
}

// SearchReferenceCleared returns if the "search_reference" field was cleared in this mutation.
func (m *VerificationRecordMutation) SearchReferenceCleared() bool {
	_, ok := m.clearedFields[verificationrecord.FieldSearchReference]
	return ok
}

// ResetSearchReference resets all changes to the "search_reference" field.
func (m *VerificationRecordMutation) ResetSearchReference() {
	m.search_reference = nil
	delete(m.clearedFields, verificationrecord.FieldSearchReference)
}

// SetSearchFee sets the "search_fee" field.
func (m *VerificationRecordMutation) SetSearchFee(f float64) {
	m.search_fee = &f
	m.addsearch_fee = nil
}

// SearchFee returns the value of the "search_fee" field in the mutation.
func (m *VerificationRecordMutation) SearchFee() (r float64, exists bool) {
	v := m.search_fee
	if v == nil {
		return
	}
	return *v, true
}

// OldSearchFee returns the old "search_fee" field's value of the VerificationRecord entity.
// If the VerificationRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VerificationRecordMutation) OldSearchFee(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSearchFee is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSearchFee requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSearchFee: %w", err)
	}
	return oldValue.SearchFee, nil
}

// AddSearchFee adds f to the "search_fee" field.
func (m *VerificationRecordMutation) AddSearchFee(f float64) {
	if m.addsearch_fee != nil {
		*m.addsearch_fee += f
	} else {
		m.addsearch_fee = &f
	}
}

// AddedSearchFee returns the value that was added to the "search_fee" field in this mutation.
func (m *VerificationRecordMutation) AddedSearchFee() (r float64, exists bool) {
	v := m.addsearch_fee
	if v == nil {
		return
	}
	return *v, true
}

// ClearSearchFee clears the value of the "search_fee" field.
func (m *VerificationRecordMutation) ClearSearchFee() {
	m.search_fee = nil
	m.addsearch_fee = nil
	m.clearedFields[verificationrecord.FieldSearchFee] = struct{}{}
}

// SearchFeeCleared returns if the "search_fee" field was cleared in this mutation.
func (m *VerificationRecordMutation) SearchFeeCleared() bool {
	_, ok := m.clearedFields[verificationrecord.FieldSearchFee]
	return ok
}

// ResetSearchFee resets all changes to the "search_fee" field.
func (m *VerificationRecordMutation) ResetSearchFee() {
	m.search_fee = nil
	m.addsearch_fee = nil
	delete(m.clearedFields, verificationrecord.FieldSearchFee)
}

// SetApprovedAt sets the "approved_at" field.
func (m *VerificationRecordMutation) SetApprovedAt(t time.Time) {
	m.approved_at = &t
}

// ApprovedAt returns the value of the "approved_at" field in the mutation.
func (m *VerificationRecordMutation) ApprovedAt() (r time.Time, exists bool) {
	v := m.approved_at
	if v == nil {
		return
	}
	return *v, true
}

// OldApprovedAt returns the old "approved_at" field's value of the VerificationRecord entity.
// If the VerificationRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VerificationRecordMutation) OldApprovedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldApprovedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldApprovedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldApprovedAt: %w", err)
	}
	return oldValue.ApprovedAt, nil
}

// ClearApprovedAt clears the value of the "approved_at" field.
func (m *VerificationRecordMutation) ClearApprovedAt() {
	m.approved_at = nil
	m.clearedFields[verificationrecord.FieldApprovedAt] = struct{}{}
}

// ApprovedAtCleared returns if the "approved_at" field was cleared in this mutation.
func (m *VerificationRecordMutation) ApprovedAtCleared() bool {
	_, ok := m.clearedFields[verificationrecord.FieldApprovedAt]
	return ok
}

// ResetApprovedAt resets all changes to the "approved_at" field.
func (m *VerificationRecordMutation) ResetApprovedAt() {
	m.approved_at = nil
	delete(m.clearedFields, verificationrecord.FieldApprovedAt)
}

// SetRejectedAt sets the "rejected_at" field.
func (m *VerificationRecordMutation) SetRejectedAt(t time.Time) {
	m.rejected_at = &t
}

// RejectedAt returns the value of the "rejected_at" field in the mutation.
func (m *VerificationRecordMutation) RejectedAt() (r time.Time, exists bool) {
	v := m.rejected_at
	if v == nil {
		return
	}
	return *v, true
}

// OldRejectedAt returns the old "rejected_at" field's value of the VerificationRecord entity.
// If the VerificationRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VerificationRecordMutation) OldRejectedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRejectedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRejectedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRejectedAt: %w", err)
	}
	return oldValue.RejectedAt, nil
}

// ClearRejectedAt clears the value of the "rejected_at" field.
func (m *VerificationRecordMutation) ClearRejectedAt() {
	m.rejected_at = nil
	m.clearedFields[verificationrecord.FieldRejectedAt] = struct{}{}
}

// RejectedAtCleared returns if the "rejected_at" field was cleared in this mutation.
func (m *VerificationRecordMutation) RejectedAtCleared() bool {
	_, ok := m.clearedFields[verificationrecord.FieldRejectedAt]
	return ok
}

// ResetRejectedAt resets all changes to the "rejected_at" field.
func (m *VerificationRecordMutation) ResetRejectedAt() {
	m.rejected_at = nil
	delete(m.clearedFields, verificationrecord.FieldRejectedAt)
}

// Where appends a list predicates to the VerificationRecordMutation builder.
func (m *VerificationRecordMutation) Where(ps ...predicate.VerificationRecord) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the VerificationRecordMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *VerificationRecordMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.VerificationRecord, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *VerificationRecordMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *VerificationRecordMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (VerificationRecord).
func (m *VerificationRecordMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *VerificationRecordMutation) Fields() []string {
	fields := make([]string, 0, 12)
	if m.created_at != nil {
		fields = append(fields, verificationrecord.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, verificationrecord.FieldUpdatedAt)
	}
	if m.subject_kind != nil {
		fields = append(fields, verificationrecord.FieldSubjectKind)
	}
	if m.subject_id != nil {
		fields = append(fields, verificationrecord.FieldSubjectID)
	}
	if m.stage != nil {
		fields = append(fields, verificationrecord.FieldStage)
	}
	if m.stage_timestamps != nil {
		fields = append(fields, verificationrecord.FieldStageTimestamps)
	}
	if m.external_responses != nil {
		fields = append(fields, verificationrecord.FieldExternalResponses)
	}
	if m.detail != nil {
		fields = append(fields, verificationrecord.FieldDetail)
	}
	if m.search_reference != nil {
		fields = append(fields, verificationrecord.FieldSearchReference)
	}
	if m.search_fee != nil {
		fields = append(fields, verificationrecord.FieldSearchFee)
	}
	if m.approved_at != nil {
		fields = append(fields, verificationrecord.FieldApprovedAt)
	}
	if m.rejected_at != nil {
		fields = append(fields, verificationrecord.FieldRejectedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *VerificationRecordMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case verificationrecord.FieldCreatedAt:
		return m.CreatedAt()
	case verificationrecord.FieldUpdatedAt:
		return m.UpdatedAt()
	case verificationrecord.FieldSubjectKind:
		return m.SubjectKind()
	case verificationrecord.FieldSubjectID:
		return m.SubjectID()
	case verificationrecord.FieldStage:
		return m.Stage()
	case verificationrecord.FieldStageTimestamps:
		return m.StageTimestamps()
	case verificationrecord.FieldExternalResponses:
		return m.ExternalResponses()
	case verificationrecord.FieldDetail:
		return m.Detail()
	case verificationrecord.FieldSearchReference:
		return m.SearchReference()
	case verificationrecord.FieldSearchFee:
		return m.SearchFee()
	case verificationrecord.FieldApprovedAt:
		return m.ApprovedAt()
	case verificationrecord.FieldRejectedAt:
		return m.RejectedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *VerificationRecordMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case verificationrecord.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case verificationrecord.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case verificationrecord.FieldSubjectKind:
		return m.OldSubjectKind(ctx)
	case verificationrecord.FieldSubjectID:
		return m.OldSubjectID(ctx)
	case verificationrecord.FieldStage:
		return m.OldStage(ctx)
	case verificationrecord.FieldStageTimestamps:
		return m.OldStageTimestamps(ctx)
	case verificationrecord.FieldExternalResponses:
		return m.OldExternalResponses(ctx)
	case verificationrecord.FieldDetail:
		return m.OldDetail(ctx)
	case verificationrecord.FieldSearchReference:
		return m.OldSearchReference(ctx)
	case verificationrecord.FieldSearchFee:
		return m.OldSearchFee(ctx)
	case verificationrecord.FieldApprovedAt:
		return m.OldApprovedAt(ctx)
	case verificationrecord.FieldRejectedAt:
		return m.OldRejectedAt(ctx)
	}
	return nil, fmt.Errorf("unknown VerificationRecord field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *VerificationRecordMutation) SetField(name string, value ent.Value) error {
	switch name {
	case verificationrecord.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case verificationrecord.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case verificationrecord.FieldSubjectKind:
		v, ok := value.(verificationrecord.SubjectKind)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSubjectKind(v)
		return nil
	case verificationrecord.FieldSubjectID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSubjectID(v)
		return nil
	case verificationrecord.FieldStage:
		v, ok := value.(verificationrecord.Stage)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStage(v)
		return nil
	case verificationrecord.FieldStageTimestamps:
		v, ok := value.(map[string]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStageTimestamps(v)
		return nil
	case verificationrecord.FieldExternalResponses:
		v, ok := value.([]map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExternalResponses(v)
		return nil
	case verificationrecord.FieldDetail:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDetail(v)
		return nil
	case verificationrecord.FieldSearchReference:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSearchReference(v)
		return nil
	case verificationrecord.FieldSearchFee:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSearchFee(v)
		return nil
	case verificationrecord.FieldApprovedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetApprovedAt(v)
		return nil
	case verificationrecord.FieldRejectedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRejectedAt(v)
		return nil
	}
	return fmt.Errorf("unknown VerificationRecord field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *VerificationRecordMutation) AddedFields() []string {
	var fields []string
	if m.addsearch_fee != nil {
		fields = append(fields, verificationrecord.FieldSearchFee)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *VerificationRecordMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case verificationrecord.FieldSearchFee:
		return m.AddedSearchFee()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *VerificationRecordMutation) AddField(name string, value ent.Value) error {
	switch name {
	case verificationrecord.FieldSearchFee:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSearchFee(v)
		return nil
	}
	return fmt.Errorf("unknown VerificationRecord numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *VerificationRecordMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(verificationrecord.FieldStageTimestamps) {
		fields = append(fields, verificationrecord.FieldStageTimestamps)
	}
	if m.FieldCleared(verificationrecord.FieldExternalResponses) {
		fields = append(fields, verificationrecord.FieldExternalResponses)
	}
	if m.FieldCleared(verificationrecord.FieldDetail) {
		fields = append(fields, verificationrecord.FieldDetail)
	}
	if m.FieldCleared(verificationrecord.FieldSearchReference) {
		fields = append(fields, verificationrecord.FieldSearchReference)
	}
	if m.FieldCleared(verificationrecord.FieldSearchFee) {
		fields = append(fields, verificationrecord.FieldSearchFee)
	}
	if m.FieldCleared(verificationrecord.FieldApprovedAt) {
		fields = append(fields, verificationrecord.FieldApprovedAt)
	}
	if m.FieldCleared(verificationrecord.FieldRejectedAt) {
		fields = append(fields, verificationrecord.FieldRejectedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *VerificationRecordMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *VerificationRecordMutation) ClearField(name string) error {
	switch name {
	case verificationrecord.FieldStageTimestamps:
		m.ClearStageTimestamps()
		return nil
	case verificationrecord.FieldExternalResponses:
		m.ClearExternalResponses()
		return nil
	case verificationrecord.FieldDetail:
		m.ClearDetail()
		return nil
	case verificationrecord.FieldSearchReference:
		m.ClearSearchReference()
		return nil
	case verificationrecord.FieldSearchFee:
		m.ClearSearchFee()
		return nil
	case verificationrecord.FieldApprovedAt:
		m.ClearApprovedAt()
		return nil
	case verificationrecord.FieldRejectedAt:
		m.ClearRejectedAt()
		return nil
	}
	return fmt.Errorf("unknown VerificationRecord nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *VerificationRecordMutation) ResetField(name string) error {
	switch name {
	case verificationrecord.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case verificationrecord.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case verificationrecord.FieldSubjectKind:
		m.ResetSubjectKind()
		return nil
	case verificationrecord.FieldSubjectID:
		m.ResetSubjectID()
		return nil
	case verificationrecord.FieldStage:
		m.ResetStage()
		return nil
	case verificationrecord.FieldStageTimestamps:
		m.ResetStageTimestamps()
		return nil
	case verificationrecord.FieldExternalResponses:
		m.ResetExternalResponses()
		return nil
	case verificationrecord.FieldDetail:
		m.ResetDetail()
		return nil
	case verificationrecord.FieldSearchReference:
		m.ResetSearchReference()
		return nil
	case verificationrecord.FieldSearchFee:
		m.ResetSearchFee()
		return nil
	case verificationrecord.FieldApprovedAt:
		m.ResetApprovedAt()
		return nil
	case verificationrecord.FieldRejectedAt:
		m.ResetRejectedAt()
		return nil
	}
	return fmt.Errorf("unknown VerificationRecord field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *VerificationRecordMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *VerificationRecordMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *VerificationRecordMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *VerificationRecordMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *VerificationRecordMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *VerificationRecordMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *VerificationRecordMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown VerificationRecord unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *VerificationRecordMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown VerificationRecord edge %s", name)
}

// VerificationTaskMutation represents an operation that mutates the VerificationTask nodes in the graph.
type VerificationTaskMutation struct {
	config
	op            Op
	typ           string
	id            *string
	created_at    *time.Time
	updated_at    *time.Time
	_type         *verificationtask.Type
	status        *verificationtask.Status
	assignee_id   *string
	approved      *bool
	notes         *string
	assigned_at   *time.Time
	completed_at  *time.Time
	clearedFields map[string]struct{}
	plot          *string
	clearedplot   bool
	done          bool
	oldValue      func(context.Context) (*VerificationTask, error)
	predicates    []predicate.VerificationTask
}

var _ ent.Mutation = (*VerificationTaskMutation)(nil)

// verificationtaskOption allows management of the mutation configuration using functional options.
type verificationtaskOption func(*VerificationTaskMutation)

// newVerificationTaskMutation creates new mutation for the VerificationTask entity.
func newVerificationTaskMutation(c config, op Op, opts ...verificationtaskOption) *VerificationTaskMutation {
	m := &VerificationTaskMutation{
		config:        c,
		op:            op,
		typ:           TypeVerificationTask,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withVerificationTaskID sets the ID field of the mutation.
func withVerificationTaskID(id string) verificationtaskOption {
	return func(m *VerificationTaskMutation) {
		var (
			err   error
			once  sync.Once
			value *VerificationTask
		)
		m.oldValue = func(ctx context.Context) (*VerificationTask, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().VerificationTask.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withVerificationTask sets the old VerificationTask of the mutation.
func withVerificationTask(node *VerificationTask) verificationtaskOption {
	return func(m *VerificationTaskMutation) {
		m.oldValue = func(context.Context) (*VerificationTask, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m VerificationTaskMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m VerificationTaskMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of VerificationTask entities.
func (m *VerificationTaskMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *VerificationTaskMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *VerificationTaskMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().VerificationTask.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *VerificationTaskMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *VerificationTaskMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the VerificationTask entity.
// If the VerificationTask object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VerificationTaskMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *VerificationTaskMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *VerificationTaskMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *VerificationTaskMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the VerificationTask entity.
// If the VerificationTask object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VerificationTaskMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *VerificationTaskMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetType sets the "type" field.
func (m *VerificationTaskMutation) SetType(v verificationtask.Type) {
	m._type = &v
}

// GetType returns the value of the "type" field in the mutation.
func (m *VerificationTaskMutation) GetType() (r verificationtask.Type, exists bool) {
	v := m._type
	if v == nil {
		return
	}
	return *v, true
}

// OldType returns the old "type" field's value of the VerificationTask entity.
// If the VerificationTask object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VerificationTaskMutation) OldType(ctx context.Context) (v verificationtask.Type, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldType: %w", err)
	}
	return oldValue.Type, nil
}

// ResetType resets all changes to the "type" field.
func (m *VerificationTaskMutation) ResetType() {
	m._type = nil
}

// SetStatus sets the "status" field.
func (m *VerificationTaskMutation) SetStatus(v verificationtask.Status) {
	m.status = &v
}

// Status returns the value of the "status" field in the mutation.
func (m *VerificationTaskMutation) Status() (r verificationtask.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the VerificationTask entity.
// If the VerificationTask object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VerificationTaskMutation) OldStatus(ctx context.Context) (v verificationtask.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *VerificationTaskMutation) ResetStatus() {
	m.status = nil
}

// SetAssigneeID sets the "assignee_id" field.
func (m *VerificationTaskMutation) SetAssigneeID(s string) {
	m.assignee_id = &s
}

// AssigneeID returns the value of the "assignee_id" field in the mutation.
func (m *VerificationTaskMutation) AssigneeID() (r string, exists bool) {
	v := m.assignee_id
	if v == nil {
		return
	}
	return *v, true
}

// OldAssigneeID returns the old "assignee_id" field's value of the VerificationTask entity.
// If the VerificationTask object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VerificationTaskMutation) OldAssigneeID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAssigneeID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAssigneeID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAssigneeID: %w", err)
	}
	return oldValue.AssigneeID, nil
}

// ClearAssigneeID clears the value of the "assignee_id" field.
func (m *VerificationTaskMutation) ClearAssigneeID() {
	m.assignee_id = nil
	m.clearedFields[verificationtask.FieldAssigneeID] = struct{}{}
}

// AssigneeIDCleared returns if the "assignee_id" field was cleared in this mutation.
func (m *VerificationTaskMutation) AssigneeIDCleared() bool {
	_, ok := m.clearedFields[verificationtask.FieldAssigneeID]
	return ok
}

// ResetAssigneeID resets all changes to the "assignee_id" field.
func (m *VerificationTaskMutation) ResetAssigneeID() {
	m.assignee_id = nil
	delete(m.clearedFields, verificationtask.FieldAssigneeID)
}

// SetApproved sets the "approved" field.
func (m *VerificationTaskMutation) SetApproved(b bool) {
	m.approved = &b
}

// Approved returns the value of the "approved" field in the mutation.
func (m *VerificationTaskMutation) Approved() (r bool, exists bool) {
	v := m.approved
	if v == nil {
		return
	}
	return *v, true
}

// OldApproved returns the old "approved" field's value of the VerificationTask entity.
// If the VerificationTask object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VerificationTaskMutation) OldApproved(ctx context.Context) (v *bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldApproved is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldApproved requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldApproved: %w", err)
	}
	return oldValue.Approved, nil
}

// ClearApproved clears the value of the "approved" field.
func (m *VerificationTaskMutation) ClearApproved() {
	m.approved = nil
	m.clearedFields[verificationtask.FieldApproved] = struct{}{}
}

// ApprovedCleared returns if the "approved" field was cleared in this mutation.
func (m *VerificationTaskMutation) ApprovedCleared() bool {
	_, ok := m.clearedFields[verificationtask.FieldApproved]
	return ok
}

// ResetApproved resets all changes to the "approved" field.
func (m *VerificationTaskMutation) ResetApproved() {
	m.approved = nil
	delete(m.clearedFields, verificationtask.FieldApproved)
}

// SetNotes sets the "notes" field.
func (m *VerificationTaskMutation) SetNotes(s string) {
	m.notes = &s
}

// Notes returns the value of the "notes" field in the mutation.
func (m *VerificationTaskMutation) Notes() (r string, exists bool) {
	v := m.notes
	if v == nil {
		return
	}
	return *v, true
}

// OldNotes returns the old "notes" field's value of the VerificationTask entity.
// If the VerificationTask object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VerificationTaskMutation) OldNotes(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNotes is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNotes requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNotes: %w", err)
	}
	return oldValue.Notes, nil
}

// ClearNotes clears the value of the "notes" field.
func (m *VerificationTaskMutation) ClearNotes() {
	m.notes = nil
	m.clearedFields[verificationtask.FieldNotes] = struct{}{}
}

// NotesCleared returns if the "notes" field was cleared in this mutation.
func (m *VerificationTaskMutation) NotesCleared() bool {
	_, ok := m.clearedFields[verificationtask.FieldNotes]
	return ok
}

// ResetNotes resets all changes to the "notes" field.
func (m *VerificationTaskMutation) ResetNotes() {
	m.notes = nil
	delete(m.clearedFields, verificationtask.FieldNotes)
}

// SetAssignedAt sets the "assigned_at" field.
func (m *VerificationTaskMutation) SetAssignedAt(t time.Time) {
	m.assigned_at = &t
}

// AssignedAt returns the value of the "assigned_at" field in the mutation.
func (m *VerificationTaskMutation) AssignedAt() (r time.Time, exists bool) {
	v := m.assigned_at
	if v == nil {
		return
	}
	return *v, true
}

// OldAssignedAt returns the old "assigned_at" field's value of the VerificationTask entity.
// If the VerificationTask object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VerificationTaskMutation) OldAssignedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAssignedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAssignedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAssignedAt: %w", err)
	}
	return oldValue.AssignedAt, nil
}

// ClearAssignedAt clears the value of the "assigned_at" field.
func (m *VerificationTaskMutation) ClearAssignedAt() {
	m.assigned_at = nil
	m.clearedFields[verificationtask.FieldAssignedAt] = struct{}{}
}

// AssignedAtCleared returns if the "assigned_at" field was cleared in this mutation.
func (m *VerificationTaskMutation) AssignedAtCleared() bool {
	_, ok := m.clearedFields[verificationtask.FieldAssignedAt]
	return ok
}

// ResetAssignedAt resets all changes to the "assigned_at" field.
func (m *VerificationTaskMutation) ResetAssignedAt() {
	m.assigned_at = nil
	delete(m.clearedFields, verificationtask.FieldAssignedAt)
}

// SetCompletedAt sets the "completed_at" field.
func (m *VerificationTaskMutation) SetCompletedAt(t time.Time) {
	m.completed_at = &t
}

// CompletedAt returns the value of the "completed_at" field in the mutation.
func (m *VerificationTaskMutation) CompletedAt() (r time.Time, exists bool) {
	v := m.completed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCompletedAt returns the old "completed_at" field's value of the VerificationTask entity.
// If the VerificationTask object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VerificationTaskMutation) OldCompletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompletedAt: %w", err)
	}
	return oldValue.CompletedAt, nil
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (m *VerificationTaskMutation) ClearCompletedAt() {
	m.completed_at = nil
	m.clearedFields[verificationtask.FieldCompletedAt] = struct{}{}
}

// CompletedAtCleared returns if the "completed_at" field was cleared in this mutation.
func (m *VerificationTaskMutation) CompletedAtCleared() bool {
	_, ok := m.clearedFields[verificationtask.FieldCompletedAt]
	return ok
}

// ResetCompletedAt resets all changes to the "completed_at" field.
func (m *VerificationTaskMutation) ResetCompletedAt() {
	m.completed_at = nil
	delete(m.clearedFields, verificationtask.FieldCompletedAt)
}

// SetPlotID sets the "plot" edge to the Plot entity by id.
func (m *VerificationTaskMutation) SetPlotID(id string) {
	m.plot = &id
}

// ClearPlot clears the "plot" edge to the Plot entity.
func (m *VerificationTaskMutation) ClearPlot() {
	m.clearedplot = true
}

// PlotCleared reports if the "plot" edge to the Plot entity was cleared.
func (m *VerificationTaskMutation) PlotCleared() bool {
	return m.clearedplot
}

// PlotID returns the "plot" edge ID in the mutation.
func (m *VerificationTaskMutation) PlotID() (id string, exists bool) {
	if m.plot != nil {
		return *m.plot, true
	}
	return
}

// PlotIDs returns the "plot" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// PlotID instead. It exists only for internal usage by the builders.
func (m *VerificationTaskMutation) PlotIDs() (ids []string) {
	if id := m.plot; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetPlot resets all changes to the "plot" edge.
func (m *VerificationTaskMutation) ResetPlot() {
	m.plot = nil
	m.clearedplot = false
}

// Where appends a list predicates to the VerificationTaskMutation builder.
func (m *VerificationTaskMutation) Where(ps ...predicate.VerificationTask) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the VerificationTaskMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *VerificationTaskMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.VerificationTask, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *VerificationTaskMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *VerificationTaskMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (VerificationTask).
func (m *VerificationTaskMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *VerificationTaskMutation) Fields() []string {
	fields := make([]string, 0, 9)
	if m.created_at != nil {
		fields = append(fields, verificationtask.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, verificationtask.FieldUpdatedAt)
	}
	if m._type != nil {
		fields = append(fields, verificationtask.FieldType)
	}
	if m.status != nil {
		fields = append(fields, verificationtask.FieldStatus)
	}
	if m.assignee_id != nil {
		fields = append(fields, verificationtask.FieldAssigneeID)
	}
	if m.approved != nil {
		fields = append(fields, verificationtask.FieldApproved)
	}
	if m.notes != nil {
		fields = append(fields, verificationtask.FieldNotes)
	}
	if m.assigned_at != nil {
		fields = append(fields, verificationtask.FieldAssignedAt)
	}
	if m.completed_at != nil {
		fields = append(fields, verificationtask.FieldCompletedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *VerificationTaskMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case verificationtask.FieldCreatedAt:
		return m.CreatedAt()
	case verificationtask.FieldUpdatedAt:
		return m.UpdatedAt()
	case verificationtask.FieldType:
		return m.GetType()
	case verificationtask.FieldStatus:
		return m.Status()
	case verificationtask.FieldAssigneeID:
		return m.AssigneeID()
	case verificationtask.FieldApproved:
		return m.Approved()
	case verificationtask.FieldNotes:
		return m.Notes()
	case verificationtask.FieldAssignedAt:
		return m.AssignedAt()
	case verificationtask.FieldCompletedAt:
		return m.CompletedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *VerificationTaskMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case verificationtask.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case verificationtask.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case verificationtask.FieldType:
		return m.OldType(ctx)
	case verificationtask.FieldStatus:
		return m.OldStatus(ctx)
	case verificationtask.FieldAssigneeID:
		return m.OldAssigneeID(ctx)
	case verificationtask.FieldApproved:
		return m.OldApproved(ctx)
	case verificationtask.FieldNotes:
		return m.OldNotes(ctx)
	case verificationtask.FieldAssignedAt:
		return m.OldAssignedAt(ctx)
	case verificationtask.FieldCompletedAt:
		return m.OldCompletedAt(ctx)
	}
	return nil, fmt.Errorf("unknown VerificationTask field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *VerificationTaskMutation) SetField(name string, value ent.Value) error {
	switch name {
	case verificationtask.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case verificationtask.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case verificationtask.FieldType:
		v, ok := value.(verificationtask.Type)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetType(v)
		return nil
	case verificationtask.FieldStatus:
		v, ok := value.(verificationtask.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case verificationtask.FieldAssigneeID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAssigneeID(v)
		return nil
	case verificationtask.FieldApproved:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetApproved(v)
		return nil
	case verificationtask.FieldNotes:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNotes(v)
		return nil
	case verificationtask.FieldAssignedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAssignedAt(v)
		return nil
	case verificationtask.FieldCompletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompletedAt(v)
		return nil
	}
	return fmt.Errorf("unknown VerificationTask field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *VerificationTaskMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *VerificationTaskMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *VerificationTaskMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown VerificationTask numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *VerificationTaskMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(verificationtask.FieldAssigneeID) {
		fields = append(fields, verificationtask.FieldAssigneeID)
	}
	if m.FieldCleared(verificationtask.FieldApproved) {
		fields = append(fields, verificationtask.FieldApproved)
	}
	if m.FieldCleared(verificationtask.FieldNotes) {
		fields = append(fields, verificationtask.FieldNotes)
	}
	if m.FieldCleared(verificationtask.FieldAssignedAt) {
		fields = append(fields, verificationtask.FieldAssignedAt)
	}
	if m.FieldCleared(verificationtask.FieldCompletedAt) {
		fields = append(fields, verificationtask.FieldCompletedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *VerificationTaskMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *VerificationTaskMutation) ClearField(name string) error {
	switch name {
	case verificationtask.FieldAssigneeID:
		m.ClearAssigneeID()
		return nil
	case verificationtask.FieldApproved:
		m.ClearApproved()
		return nil
	case verificationtask.FieldNotes:
		m.ClearNotes()
		return nil
	case verificationtask.FieldAssignedAt:
		m.ClearAssignedAt()
		return nil
	case verificationtask.FieldCompletedAt:
		m.ClearCompletedAt()
		return nil
	}
	return fmt.Errorf("unknown VerificationTask nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *VerificationTaskMutation) ResetField(name string) error {
	switch name {
	case verificationtask.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case verificationtask.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case verificationtask.FieldType:
		m.ResetType()
		return nil
	case verificationtask.FieldStatus:
		m.ResetStatus()
		return nil
	case verificationtask.FieldAssigneeID:
		m.ResetAssigneeID()
		return nil
	case verificationtask.FieldApproved:
		m.ResetApproved()
		return nil
	case verificationtask.FieldNotes:
		m.ResetNotes()
		return nil
	case verificationtask.FieldAssignedAt:
		m.ResetAssignedAt()
		return nil
	case verificationtask.FieldCompletedAt:
		m.ResetCompletedAt()
		return nil
	}
	return fmt.Errorf("unknown VerificationTask field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *VerificationTaskMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.plot != nil {
		edges = append(edges, verificationtask.EdgePlot)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *VerificationTaskMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case verificationtask.EdgePlot:
		if id := m.plot; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *VerificationTaskMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *VerificationTaskMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *VerificationTaskMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedplot {
		edges = append(edges, verificationtask.EdgePlot)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *VerificationTaskMutation) EdgeCleared(name string) bool {
	switch name {
	case verificationtask.EdgePlot:
		return m.clearedplot
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *VerificationTaskMutation) ClearEdge(name string) error {
	switch name {
	case verificationtask.EdgePlot:
		m.ClearPlot()
		return nil
	}
	return fmt.Errorf("unknown VerificationTask unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *VerificationTaskMutation) ResetEdge(name string) error {
	switch name {
	case verificationtask.EdgePlot:
		m.ResetPlot()
		return nil
	}
	return fmt.Errorf("unknown VerificationTask edge %s", name)
}
