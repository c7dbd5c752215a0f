// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/itemforge/ent/oraclerequestevent"
	"github.com/abhisek/itemforge/ent/pipelinerunevent"
	"github.com/abhisek/itemforge/ent/predicate"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeOracleRequestEvent = "OracleRequestEvent"
	TypePipelineRunEvent   = "PipelineRunEvent"
)

// OracleRequestEventMutation represents an operation that mutates the OracleRequestEvent nodes in the graph.
type OracleRequestEventMutation struct {
	config
	op               Op
	typ              string
	id               *int
	sequence         *int64
	addsequence      *int64
	timestamp        *time.Time
	provider         *string
	model            *string
	purpose          *string
	input_tokens     *int
	addinput_tokens  *int
	output_tokens    *int
	addoutput_tokens *int
	latency_ms       *int64
	addlatency_ms    *int64
	success          *bool
	error_message    *string
	request_body     *string
	response_body    *string
	clearedFields    map[string]struct{}
	done             bool
	oldValue         func(context.Context) (*OracleRequestEvent, error)
	predicates       []predicate.OracleRequestEvent
}

var _ ent.Mutation = (*OracleRequestEventMutation)(nil)

// oraclerequesteventOption allows management of the mutation configuration using functional options.
type oraclerequesteventOption func(*OracleRequestEventMutation)

// newOracleRequestEventMutation creates new mutation for the OracleRequestEvent entity.
func newOracleRequestEventMutation(c config, op Op, opts ...oraclerequesteventOption) *OracleRequestEventMutation {
	m := &OracleRequestEventMutation{
		config:        c,
		op:            op,
		typ:           TypeOracleRequestEvent,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withOracleRequestEventID sets the ID field of the mutation.
func withOracleRequestEventID(id int) oraclerequesteventOption {
	return func(m *OracleRequestEventMutation) {
		var (
			err   error
			once  sync.Once
			value *OracleRequestEvent
		)
		m.oldValue = func(ctx context.Context) (*OracleRequestEvent, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().OracleRequestEvent.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withOracleRequestEvent sets the old OracleRequestEvent of the mutation.
func withOracleRequestEvent(node *OracleRequestEvent) oraclerequesteventOption {
	return func(m *OracleRequestEventMutation) {
		m.oldValue = func(context.Context) (*OracleRequestEvent, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m OracleRequestEventMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m OracleRequestEventMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *OracleRequestEventMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *OracleRequestEventMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().OracleRequestEvent.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSequence sets the "sequence" field.
func (m *OracleRequestEventMutation) SetSequence(i int64) {
	m.sequence = &i
	m.addsequence = nil
}

// Sequence returns the value of the "sequence" field in the mutation.
func (m *OracleRequestEventMutation) Sequence() (r int64, exists bool) {
	v := m.sequence
	if v == nil {
		return
	}
	return *v, true
}

// OldSequence returns the old "sequence" field's value of the OracleRequestEvent entity.
// If the OracleRequestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OracleRequestEventMutation) OldSequence(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSequence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSequence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSequence: %w", err)
	}
	return oldValue.Sequence, nil
}

// AddSequence adds i to the "sequence" field.
func (m *OracleRequestEventMutation) AddSequence(i int64) {
	if m.addsequence != nil {
		*m.addsequence += i
	} else {
		m.addsequence = &i
	}
}

// AddedSequence returns the value that was added to the "sequence" field in this mutation.
func (m *OracleRequestEventMutation) AddedSequence() (r int64, exists bool) {
	v := m.addsequence
	if v == nil {
		return
	}
	return *v, true
}

// ResetSequence resets all changes to the "sequence" field.
func (m *OracleRequestEventMutation) ResetSequence() {
	m.sequence = nil
	m.addsequence = nil
}

// SetTimestamp sets the "timestamp" field.
func (m *OracleRequestEventMutation) SetTimestamp(t time.Time) {
	m.timestamp = &t
}

// Timestamp returns the value of the "timestamp" field in the mutation.
func (m *OracleRequestEventMutation) Timestamp() (r time.Time, exists bool) {
	v := m.timestamp
	if v == nil {
		return
	}
	return *v, true
}

// OldTimestamp returns the old "timestamp" field's value of the OracleRequestEvent entity.
// If the OracleRequestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OracleRequestEventMutation) OldTimestamp(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTimestamp is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTimestamp requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTimestamp: %w", err)
	}
	return oldValue.Timestamp, nil
}

// ResetTimestamp resets all changes to the "timestamp" field.
func (m *OracleRequestEventMutation) ResetTimestamp() {
	m.timestamp = nil
}

// SetProvider sets the "provider" field.
func (m *OracleRequestEventMutation) SetProvider(s string) {
	m.provider = &s
}

// Provider returns the value of the "provider" field in the mutation.
func (m *OracleRequestEventMutation) Provider() (r string, exists bool) {
	v := m.provider
	if v == nil {
		return
	}
	return *v, true
}

// OldProvider returns the old "provider" field's value of the OracleRequestEvent entity.
// If the OracleRequestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OracleRequestEventMutation) OldProvider(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProvider is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProvider requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProvider: %w", err)
	}
	return oldValue.Provider, nil
}

// ResetProvider resets all changes to the "provider" field.
func (m *OracleRequestEventMutation) ResetProvider() {
	m.provider = nil
}

// SetModel sets the "model" field.
func (m *OracleRequestEventMutation) SetModel(s string) {
	m.model = &s
}

// Model returns the value of the "model" field in the mutation.
func (m *OracleRequestEventMutation) Model() (r string, exists bool) {
	v := m.model
	if v == nil {
		return
	}
	return *v, true
}

// OldModel returns the old "model" field's value of the OracleRequestEvent entity.
// If the OracleRequestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OracleRequestEventMutation) OldModel(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldModel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldModel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldModel: %w", err)
	}
	return oldValue.Model, nil
}

// ResetModel resets all changes to the "model" field.
func (m *OracleRequestEventMutation) ResetModel() {
	m.model = nil
}

// SetPurpose sets the "purpose" field.
func (m *OracleRequestEventMutation) SetPurpose(s string) {
	m.purpose = &s
}

// Purpose returns the value of the "purpose" field in the mutation.
func (m *OracleRequestEventMutation) Purpose() (r string, exists bool) {
	v := m.purpose
	if v == nil {
		return
	}
	return *v, true
}

// OldPurpose returns the old "purpose" field's value of the OracleRequestEvent entity.
// If the OracleRequestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OracleRequestEventMutation) OldPurpose(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPurpose is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPurpose requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPurpose: %w", err)
	}
	return oldValue.Purpose, nil
}

// ResetPurpose resets all changes to the "purpose" field.
func (m *OracleRequestEventMutation) ResetPurpose() {
	m.purpose = nil
}

// SetInputTokens sets the "input_tokens" field.
func (m *OracleRequestEventMutation) SetInputTokens(i int) {
	m.input_tokens = &i
	m.addinput_tokens = nil
}

// InputTokens returns the value of the "input_tokens" field in the mutation.
func (m *OracleRequestEventMutation) InputTokens() (r int, exists bool) {
	v := m.input_tokens
	if v == nil {
		return
	}
	return *v, true
}

// OldInputTokens returns the old "input_tokens" field's value of the OracleRequestEvent entity.
// If the OracleRequestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OracleRequestEventMutation) OldInputTokens(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldInputTokens is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldInputTokens requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldInputTokens: %w", err)
	}
	return oldValue.InputTokens, nil
}

// AddInputTokens adds i to the "input_tokens" field.
func (m *OracleRequestEventMutation) AddInputTokens(i int) {
	if m.addinput_tokens != nil {
		*m.addinput_tokens += i
	} else {
		m.addinput_tokens = &i
	}
}

// AddedInputTokens returns the value that was added to the "input_tokens" field in this mutation.
func (m *OracleRequestEventMutation) AddedInputTokens() (r int, exists bool) {
	v := m.addinput_tokens
	if v == nil {
		return
	}
	return *v, true
}

// ResetInputTokens resets all changes to the "input_tokens" field.
func (m *OracleRequestEventMutation) ResetInputTokens() {
	m.input_tokens = nil
	m.addinput_tokens = nil
}

// SetOutputTokens sets the "output_tokens" field.
func (m *OracleRequestEventMutation) SetOutputTokens(i int) {
	m.output_tokens = &i
	m.addoutput_tokens = nil
}

// OutputTokens returns the value of the "output_tokens" field in the mutation.
func (m *OracleRequestEventMutation) OutputTokens() (r int, exists bool) {
	v := m.output_tokens
	if v == nil {
		return
	}
	return *v, true
}

// OldOutputTokens returns the old "output_tokens" field's value of the OracleRequestEvent entity.
// If the OracleRequestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OracleRequestEventMutation) OldOutputTokens(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOutputTokens is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOutputTokens requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOutputTokens: %w", err)
	}
	return oldValue.OutputTokens, nil
}

// AddOutputTokens adds i to the "output_tokens" field.
func (m *OracleRequestEventMutation) AddOutputTokens(i int) {
	if m.addoutput_tokens != nil {
		*m.addoutput_tokens += i
	} else {
		m.addoutput_tokens = &i
	}
}

// AddedOutputTokens returns the value that was added to the "output_tokens" field in this mutation.
func (m *OracleRequestEventMutation) AddedOutputTokens() (r int, exists bool) {
	v := m.addoutput_tokens
	if v == nil {
		return
	}
	return *v, true
}

// ResetOutputTokens resets all changes to the "output_tokens" field.
func (m *OracleRequestEventMutation) ResetOutputTokens() {
	m.output_tokens = nil
	m.addoutput_tokens = nil
}

// SetLatencyMs sets the "latency_ms" field.
func (m *OracleRequestEventMutation) SetLatencyMs(i int64) {
	m.latency_ms = &i
	m.addlatency_ms = nil
}

// LatencyMs returns the value of the "latency_ms" field in the mutation.
func (m *OracleRequestEventMutation) LatencyMs() (r int64, exists bool) {
	v := m.latency_ms
	if v == nil {
		return
	}
	return *v, true
}

// OldLatencyMs returns the old "latency_ms" field's value of the OracleRequestEvent entity.
// If the OracleRequestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OracleRequestEventMutation) OldLatencyMs(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLatencyMs is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLatencyMs requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLatencyMs: %w", err)
	}
	return oldValue.LatencyMs, nil
}

// AddLatencyMs adds i to the "latency_ms" field.
func (m *OracleRequestEventMutation) AddLatencyMs(i int64) {
	if m.addlatency_ms != nil {
		*m.addlatency_ms += i
	} else {
		m.addlatency_ms = &i
	}
}

// AddedLatencyMs returns the value that was added to the "latency_ms" field in this mutation.
func (m *OracleRequestEventMutation) AddedLatencyMs() (r int64, exists bool) {
	v := m.addlatency_ms
	if v == nil {
		return
	}
	return *v, true
}

// ResetLatencyMs resets all changes to the "latency_ms" field.
func (m *OracleRequestEventMutation) ResetLatencyMs() {
	m.latency_ms = nil
	m.addlatency_ms = nil
}

// SetSuccess sets the "success" field.
func (m *OracleRequestEventMutation) SetSuccess(b bool) {
	m.success = &b
}

// Success returns the value of the "success" field in the mutation.
func (m *OracleRequestEventMutation) Success() (r bool, exists bool) {
	v := m.success
	if v == nil {
		return
	}
	return *v, true
}

// OldSuccess returns the old "success" field's value of the OracleRequestEvent entity.
// If the OracleRequestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OracleRequestEventMutation) OldSuccess(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSuccess is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSuccess requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSuccess: %w", err)
	}
	return oldValue.Success, nil
}

// ResetSuccess resets all changes to the "success" field.
func (m *OracleRequestEventMutation) ResetSuccess() {
	m.success = nil
}

// SetErrorMessage sets the "error_message" field.
func (m *OracleRequestEventMutation) SetErrorMessage(s string) {
	m.error_message = &s
}

// ErrorMessage returns the value of the "error_message" field in the mutation.
func (m *OracleRequestEventMutation) ErrorMessage() (r string, exists bool) {
	v := m.error_message
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorMessage returns the old "error_message" field's value of the OracleRequestEvent entity.
// If the OracleRequestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OracleRequestEventMutation) OldErrorMessage(ctx context.Context) (v string, err error) {
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

// ResetErrorMessage resets all changes to the "error_message" field.
func (m *OracleRequestEventMutation) ResetErrorMessage() {
	m.error_message = nil
}

// SetRequestBody sets the "request_body" field.
func (m *OracleRequestEventMutation) SetRequestBody(s string) {
	m.request_body = &s
}

// RequestBody returns the value of the "request_body" field in the mutation.
func (m *OracleRequestEventMutation) RequestBody() (r string, exists bool) {
	v := m.request_body
	if v == nil {
		return
	}
	return *v, true
}

// OldRequestBody returns the old "request_body" field's value of the OracleRequestEvent entity.
// If the OracleRequestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OracleRequestEventMutation) OldRequestBody(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRequestBody is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRequestBody requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRequestBody: %w", err)
	}
	return oldValue.RequestBody, nil
}

// ResetRequestBody resets all changes to the "request_body" field.
func (m *OracleRequestEventMutation) ResetRequestBody() {
	m.request_body = nil
}

// SetResponseBody sets the "response_body" field.
func (m *OracleRequestEventMutation) SetResponseBody(s string) {
	m.response_body = &s
}

// ResponseBody returns the value of the "response_body" field in the mutation.
func (m *OracleRequestEventMutation) ResponseBody() (r string, exists bool) {
	v := m.response_body
	if v == nil {
		return
	}
	return *v, true
}

// OldResponseBody returns the old "response_body" field's value of the OracleRequestEvent entity.
// If the OracleRequestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OracleRequestEventMutation) OldResponseBody(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldResponseBody is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldResponseBody requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldResponseBody: %w", err)
	}
	return oldValue.ResponseBody, nil
}

// ResetResponseBody resets all changes to the "response_body" field.
func (m *OracleRequestEventMutation) ResetResponseBody() {
	m.response_body = nil
}

// Where appends a list predicates to the OracleRequestEventMutation builder.
func (m *OracleRequestEventMutation) Where(ps ...predicate.OracleRequestEvent) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the OracleRequestEventMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *OracleRequestEventMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.OracleRequestEvent, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *OracleRequestEventMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *OracleRequestEventMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (OracleRequestEvent).
func (m *OracleRequestEventMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *OracleRequestEventMutation) Fields() []string {
	fields := make([]string, 0, 12)
	if m.sequence != nil {
		fields = append(fields, oraclerequestevent.FieldSequence)
	}
	if m.timestamp != nil {
		fields = append(fields, oraclerequestevent.FieldTimestamp)
	}
	if m.provider != nil {
		fields = append(fields, oraclerequestevent.FieldProvider)
	}
	if m.model != nil {
		fields = append(fields, oraclerequestevent.FieldModel)
	}
	if m.purpose != nil {
		fields = append(fields, oraclerequestevent.FieldPurpose)
	}
	if m.input_tokens != nil {
		fields = append(fields, oraclerequestevent.FieldInputTokens)
	}
	if m.output_tokens != nil {
		fields = append(fields, oraclerequestevent.FieldOutputTokens)
	}
	if m.latency_ms != nil {
		fields = append(fields, oraclerequestevent.FieldLatencyMs)
	}
	if m.success != nil {
		fields = append(fields, oraclerequestevent.FieldSuccess)
	}
	if m.error_message != nil {
		fields = append(fields, oraclerequestevent.FieldErrorMessage)
	}
	if m.request_body != nil {
		fields = append(fields, oraclerequestevent.FieldRequestBody)
	}
	if m.response_body != nil {
		fields = append(fields, oraclerequestevent.FieldResponseBody)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *OracleRequestEventMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case oraclerequestevent.FieldSequence:
		return m.Sequence()
	case oraclerequestevent.FieldTimestamp:
		return m.Timestamp()
	case oraclerequestevent.FieldProvider:
		return m.Provider()
	case oraclerequestevent.FieldModel:
		return m.Model()
	case oraclerequestevent.FieldPurpose:
		return m.Purpose()
	case oraclerequestevent.FieldInputTokens:
		return m.InputTokens()
	case oraclerequestevent.FieldOutputTokens:
		return m.OutputTokens()
	case oraclerequestevent.FieldLatencyMs:
		return m.LatencyMs()
	case oraclerequestevent.FieldSuccess:
		return m.Success()
	case oraclerequestevent.FieldErrorMessage:
		return m.ErrorMessage()
	case oraclerequestevent.FieldRequestBody:
		return m.RequestBody()
	case oraclerequestevent.FieldResponseBody:
		return m.ResponseBody()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *OracleRequestEventMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case oraclerequestevent.FieldSequence:
		return m.OldSequence(ctx)
	case oraclerequestevent.FieldTimestamp:
		return m.OldTimestamp(ctx)
	case oraclerequestevent.FieldProvider:
		return m.OldProvider(ctx)
	case oraclerequestevent.FieldModel:
		return m.OldModel(ctx)
	case oraclerequestevent.FieldPurpose:
		return m.OldPurpose(ctx)
	case oraclerequestevent.FieldInputTokens:
		return m.OldInputTokens(ctx)
	case oraclerequestevent.FieldOutputTokens:
		return m.OldOutputTokens(ctx)
	case oraclerequestevent.FieldLatencyMs:
		return m.OldLatencyMs(ctx)
	case oraclerequestevent.FieldSuccess:
		return m.OldSuccess(ctx)
	case oraclerequestevent.FieldErrorMessage:
		return m.OldErrorMessage(ctx)
	case oraclerequestevent.FieldRequestBody:
		return m.OldRequestBody(ctx)
	case oraclerequestevent.FieldResponseBody:
		return m.OldResponseBody(ctx)
	}
	return nil, fmt.Errorf("unknown OracleRequestEvent field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *OracleRequestEventMutation) SetField(name string, value ent.Value) error {
	switch name {
	case oraclerequestevent.FieldSequence:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSequence(v)
		return nil
	case oraclerequestevent.FieldTimestamp:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTimestamp(v)
		return nil
	case oraclerequestevent.FieldProvider:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProvider(v)
		return nil
	case oraclerequestevent.FieldModel:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetModel(v)
		return nil
	case oraclerequestevent.FieldPurpose:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPurpose(v)
		return nil
	case oraclerequestevent.FieldInputTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetInputTokens(v)
		return nil
	case oraclerequestevent.FieldOutputTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOutputTokens(v)
		return nil
	case oraclerequestevent.FieldLatencyMs:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLatencyMs(v)
		return nil
	case oraclerequestevent.FieldSuccess:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSuccess(v)
		return nil
	case oraclerequestevent.FieldErrorMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorMessage(v)
		return nil
	case oraclerequestevent.FieldRequestBody:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRequestBody(v)
		return nil
	case oraclerequestevent.FieldResponseBody:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetResponseBody(v)
		return nil
	}
	return fmt.Errorf("unknown OracleRequestEvent field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *OracleRequestEventMutation) AddedFields() []string {
	var fields []string
	if m.addsequence != nil {
		fields = append(fields, oraclerequestevent.FieldSequence)
	}
	if m.addinput_tokens != nil {
		fields = append(fields, oraclerequestevent.FieldInputTokens)
	}
	if m.addoutput_tokens != nil {
		fields = append(fields, oraclerequestevent.FieldOutputTokens)
	}
	if m.addlatency_ms != nil {
		fields = append(fields, oraclerequestevent.FieldLatencyMs)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *OracleRequestEventMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case oraclerequestevent.FieldSequence:
		return m.AddedSequence()
	case oraclerequestevent.FieldInputTokens:
		return m.AddedInputTokens()
	case oraclerequestevent.FieldOutputTokens:
		return m.AddedOutputTokens()
	case oraclerequestevent.FieldLatencyMs:
		return m.AddedLatencyMs()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *OracleRequestEventMutation) AddField(name string, value ent.Value) error {
	switch name {
	case oraclerequestevent.FieldSequence:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSequence(v)
		return nil
	case oraclerequestevent.FieldInputTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddInputTokens(v)
		return nil
	case oraclerequestevent.FieldOutputTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddOutputTokens(v)
		return nil
	case oraclerequestevent.FieldLatencyMs:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddLatencyMs(v)
		return nil
	}
	return fmt.Errorf("unknown OracleRequestEvent numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *OracleRequestEventMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *OracleRequestEventMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *OracleRequestEventMutation) ClearField(name string) error {
	return fmt.Errorf("unknown OracleRequestEvent nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *OracleRequestEventMutation) ResetField(name string) error {
	switch name {
	case oraclerequestevent.FieldSequence:
		m.ResetSequence()
		return nil
	case oraclerequestevent.FieldTimestamp:
		m.ResetTimestamp()
		return nil
	case oraclerequestevent.FieldProvider:
		m.ResetProvider()
		return nil
	case oraclerequestevent.FieldModel:
		m.ResetModel()
		return nil
	case oraclerequestevent.FieldPurpose:
		m.ResetPurpose()
		return nil
	case oraclerequestevent.FieldInputTokens:
		m.ResetInputTokens()
		return nil
	case oraclerequestevent.FieldOutputTokens:
		m.ResetOutputTokens()
		return nil
	case oraclerequestevent.FieldLatencyMs:
		m.ResetLatencyMs()
		return nil
	case oraclerequestevent.FieldSuccess:
		m.ResetSuccess()
		return nil
	case oraclerequestevent.FieldErrorMessage:
		m.ResetErrorMessage()
		return nil
	case oraclerequestevent.FieldRequestBody:
		m.ResetRequestBody()
		return nil
	case oraclerequestevent.FieldResponseBody:
		m.ResetResponseBody()
		return nil
	}
	return fmt.Errorf("unknown OracleRequestEvent field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *OracleRequestEventMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *OracleRequestEventMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *OracleRequestEventMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *OracleRequestEventMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *OracleRequestEventMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *OracleRequestEventMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *OracleRequestEventMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown OracleRequestEvent unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *OracleRequestEventMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown OracleRequestEvent edge %s", name)
}

// PipelineRunEventMutation represents an operation that mutates the PipelineRunEvent nodes in the graph.
type PipelineRunEventMutation struct {
	config
	op               Op
	typ              string
	id               *int
	sequence         *int64
	addsequence      *int64
	timestamp        *time.Time
	run_id           *string
	problem_count    *int
	addproblem_count *int
	include_answers  *bool
	iterations       *int
	additerations    *int
	final_score      *float64
	addfinal_score   *float64
	passed           *bool
	degraded         *bool
	duration_ms      *int64
	addduration_ms   *int64
	message          *string
	clearedFields    map[string]struct{}
	done             bool
	oldValue         func(context.Context) (*PipelineRunEvent, error)
	predicates       []predicate.PipelineRunEvent
}

var _ ent.Mutation = (*PipelineRunEventMutation)(nil)

// pipelineruneventOption allows management of the mutation configuration using functional options.
type pipelineruneventOption func(*PipelineRunEventMutation)

// newPipelineRunEventMutation creates new mutation for the PipelineRunEvent entity.
func newPipelineRunEventMutation(c config, op Op, opts ...pipelineruneventOption) *PipelineRunEventMutation {
	m := &PipelineRunEventMutation{
		config:        c,
		op:            op,
		typ:           TypePipelineRunEvent,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withPipelineRunEventID sets the ID field of the mutation.
func withPipelineRunEventID(id int) pipelineruneventOption {
	return func(m *PipelineRunEventMutation) {
		var (
			err   error
			once  sync.Once
			value *PipelineRunEvent
		)
		m.oldValue = func(ctx context.Context) (*PipelineRunEvent, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().PipelineRunEvent.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withPipelineRunEvent sets the old PipelineRunEvent of the mutation.
func withPipelineRunEvent(node *PipelineRunEvent) pipelineruneventOption {
	return func(m *PipelineRunEventMutation) {
		m.oldValue = func(context.Context) (*PipelineRunEvent, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m PipelineRunEventMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m PipelineRunEventMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *PipelineRunEventMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *PipelineRunEventMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().PipelineRunEvent.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSequence sets the "sequence" field.
func (m *PipelineRunEventMutation) SetSequence(i int64) {
	m.sequence = &i
	m.addsequence = nil
}

// Sequence returns the value of the "sequence" field in the mutation.
func (m *PipelineRunEventMutation) Sequence() (r int64, exists bool) {
	v := m.sequence
	if v == nil {
		return
	}
	return *v, true
}

// OldSequence returns the old "sequence" field's value of the PipelineRunEvent entity.
// If the PipelineRunEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PipelineRunEventMutation) OldSequence(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSequence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSequence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSequence: %w", err)
	}
	return oldValue.Sequence, nil
}

// AddSequence adds i to the "sequence" field.
func (m *PipelineRunEventMutation) AddSequence(i int64) {
	if m.addsequence != nil {
		*m.addsequence += i
	} else {
		m.addsequence = &i
	}
}

// AddedSequence returns the value that was added to the "sequence" field in this mutation.
func (m *PipelineRunEventMutation) AddedSequence() (r int64, exists bool) {
	v := m.addsequence
	if v == nil {
		return
	}
	return *v, true
}

// ResetSequence resets all changes to the "sequence" field.
func (m *PipelineRunEventMutation) ResetSequence() {
	m.sequence = nil
	m.addsequence = nil
}

// SetTimestamp sets the "timestamp" field.
func (m *PipelineRunEventMutation) SetTimestamp(t time.Time) {
	m.timestamp = &t
}

// Timestamp returns the value of the "timestamp" field in the mutation.
func (m *PipelineRunEventMutation) Timestamp() (r time.Time, exists bool) {
	v := m.timestamp
	if v == nil {
		return
	}
	return *v, true
}

// OldTimestamp returns the old "timestamp" field's value of the PipelineRunEvent entity.
// If the PipelineRunEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PipelineRunEventMutation) OldTimestamp(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTimestamp is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTimestamp requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTimestamp: %w", err)
	}
	return oldValue.Timestamp, nil
}

// ResetTimestamp resets all changes to the "timestamp" field.
func (m *PipelineRunEventMutation) ResetTimestamp() {
	m.timestamp = nil
}

// SetRunID sets the "run_id" field.
func (m *PipelineRunEventMutation) SetRunID(s string) {
	m.run_id = &s
}

// RunID returns the value of the "run_id" field in the mutation.
func (m *PipelineRunEventMutation) RunID() (r string, exists bool) {
	v := m.run_id
	if v == nil {
		return
	}
	return *v, true
}

// OldRunID returns the old "run_id" field's value of the PipelineRunEvent entity.
// If the PipelineRunEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PipelineRunEventMutation) OldRunID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRunID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRunID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRunID: %w", err)
	}
	return oldValue.RunID, nil
}

// ResetRunID resets all changes to the "run_id" field.
func (m *PipelineRunEventMutation) ResetRunID() {
	m.run_id = nil
}

// SetProblemCount sets the "problem_count" field.
func (m *PipelineRunEventMutation) SetProblemCount(i int) {
	m.problem_count = &i
	m.addproblem_count = nil
}

// ProblemCount returns the value of the "problem_count" field in the mutation.
func (m *PipelineRunEventMutation) ProblemCount() (r int, exists bool) {
	v := m.problem_count
	if v == nil {
		return
	}
	return *v, true
}

// OldProblemCount returns the old "problem_count" field's value of the PipelineRunEvent entity.
// If the PipelineRunEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PipelineRunEventMutation) OldProblemCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProblemCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProblemCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProblemCount: %w", err)
	}
	return oldValue.ProblemCount, nil
}

// AddProblemCount adds i to the "problem_count" field.
func (m *PipelineRunEventMutation) AddProblemCount(i int) {
	if m.addproblem_count != nil {
		*m.addproblem_count += i
	} else {
		m.addproblem_count = &i
	}
}

// AddedProblemCount returns the value that was added to the "problem_count" field in this mutation.
func (m *PipelineRunEventMutation) AddedProblemCount() (r int, exists bool) {
	v := m.addproblem_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetProblemCount resets all changes to the "problem_count" field.
func (m *PipelineRunEventMutation) ResetProblemCount() {
	m.problem_count = nil
	m.addproblem_count = nil
}

// SetIncludeAnswers sets the "include_answers" field.
func (m *PipelineRunEventMutation) SetIncludeAnswers(b bool) {
	m.include_answers = &b
}

// IncludeAnswers returns the value of the "include_answers" field in the mutation.
func (m *PipelineRunEventMutation) IncludeAnswers() (r bool, exists bool) {
	v := m.include_answers
	if v == nil {
		return
	}
	return *v, true
}

// OldIncludeAnswers returns the old "include_answers" field's value of the PipelineRunEvent entity.
// If the PipelineRunEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PipelineRunEventMutation) OldIncludeAnswers(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIncludeAnswers is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIncludeAnswers requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIncludeAnswers: %w", err)
	}
	return oldValue.IncludeAnswers, nil
}

// ResetIncludeAnswers resets all changes to the "include_answers" field.
func (m *PipelineRunEventMutation) ResetIncludeAnswers() {
	m.include_answers = nil
}

// SetIterations sets the "iterations" field.
func (m *PipelineRunEventMutation) SetIterations(i int) {
	m.iterations = &i
	m.additerations = nil
}

// Iterations returns the value of the "iterations" field in the mutation.
func (m *PipelineRunEventMutation) Iterations() (r int, exists bool) {
	v := m.iterations
	if v == nil {
		return
	}
	return *v, true
}

// OldIterations returns the old "iterations" field's value of the PipelineRunEvent entity.
// If the PipelineRunEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PipelineRunEventMutation) OldIterations(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIterations is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIterations requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIterations: %w", err)
	}
	return oldValue.Iterations, nil
}

// AddIterations adds i to the "iterations" field.
func (m *PipelineRunEventMutation) AddIterations(i int) {
	if m.additerations != nil {
		*m.additerations += i
	} else {
		m.additerations = &i
	}
}

// AddedIterations returns the value that was added to the "iterations" field in this mutation.
func (m *PipelineRunEventMutation) AddedIterations() (r int, exists bool) {
	v := m.additerations
	if v == nil {
		return
	}
	return *v, true
}

// ResetIterations resets all changes to the "iterations" field.
func (m *PipelineRunEventMutation) ResetIterations() {
	m.iterations = nil
	m.additerations = nil
}

// SetFinalScore sets the "final_score" field.
func (m *PipelineRunEventMutation) SetFinalScore(f float64) {
	m.final_score = &f
	m.addfinal_score = nil
}

// FinalScore returns the value of the "final_score" field in the mutation.
func (m *PipelineRunEventMutation) FinalScore() (r float64, exists bool) {
	v := m.final_score
	if v == nil {
		return
	}
	return *v, true
}

// OldFinalScore returns the old "final_score" field's value of the PipelineRunEvent entity.
// If the PipelineRunEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PipelineRunEventMutation) OldFinalScore(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFinalScore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFinalScore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFinalScore: %w", err)
	}
	return oldValue.FinalScore, nil
}

// AddFinalScore adds f to the "final_score" field.
func (m *PipelineRunEventMutation) AddFinalScore(f float64) {
	if m.addfinal_score != nil {
		*m.addfinal_score += f
	} else {
		m.addfinal_score = &f
	}
}

// AddedFinalScore returns the value that was added to the "final_score" field in this mutation.
func (m *PipelineRunEventMutation) AddedFinalScore() (r float64, exists bool) {
	v := m.addfinal_score
	if v == nil {
		return
	}
	return *v, true
}

// ResetFinalScore resets all changes to the "final_score" field.
func (m *PipelineRunEventMutation) ResetFinalScore() {
	m.final_score = nil
	m.addfinal_score = nil
}

// SetPassed sets the "passed" field.
func (m *PipelineRunEventMutation) SetPassed(b bool) {
	m.passed = &b
}

// Passed returns the value of the "passed" field in the mutation.
func (m *PipelineRunEventMutation) Passed() (r bool, exists bool) {
	v := m.passed
	if v == nil {
		return
	}
	return *v, true
}

// OldPassed returns the old "passed" field's value of the PipelineRunEvent entity.
// If the PipelineRunEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PipelineRunEventMutation) OldPassed(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPassed is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPassed requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPassed: %w", err)
	}
	return oldValue.Passed, nil
}

// ResetPassed resets all changes to the "passed" field.
func (m *PipelineRunEventMutation) ResetPassed() {
	m.passed = nil
}

// SetDegraded sets the "degraded" field.
func (m *PipelineRunEventMutation) SetDegraded(b bool) {
	m.degraded = &b
}

// Degraded returns the value of the "degraded" field in the mutation.
func (m *PipelineRunEventMutation) Degraded() (r bool, exists bool) {
	v := m.degraded
	if v == nil {
		return
	}
	return *v, true
}

// OldDegraded returns the old "degraded" field's value of the PipelineRunEvent entity.
// If the PipelineRunEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PipelineRunEventMutation) OldDegraded(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDegraded is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDegraded requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDegraded: %w", err)
	}
	return oldValue.Degraded, nil
}

// ResetDegraded resets all changes to the "degraded" field.
func (m *PipelineRunEventMutation) ResetDegraded() {
	m.degraded = nil
}

// SetDurationMs sets the "duration_ms" field.
func (m *PipelineRunEventMutation) SetDurationMs(i int64) {
	m.duration_ms = &i
	m.addduration_ms = nil
}

// DurationMs returns the value of the "duration_ms" field in the mutation.
func (m *PipelineRunEventMutation) DurationMs() (r int64, exists bool) {
	v := m.duration_ms
	if v == nil {
		return
	}
	return *v, true
}

// OldDurationMs returns the old "duration_ms" field's value of the PipelineRunEvent entity.
// If the PipelineRunEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PipelineRunEventMutation) OldDurationMs(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDurationMs is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDurationMs requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDurationMs: %w", err)
	}
	return oldValue.DurationMs, nil
}

// AddDurationMs adds i to the "duration_ms" field.
func (m *PipelineRunEventMutation) AddDurationMs(i int64) {
	if m.addduration_ms != nil {
		*m.addduration_ms += i
	} else {
		m.addduration_ms = &i
	}
}

// AddedDurationMs returns the value that was added to the "duration_ms" field in this mutation.
func (m *PipelineRunEventMutation) AddedDurationMs() (r int64, exists bool) {
	v := m.addduration_ms
	if v == nil {
		return
	}
	return *v, true
}

// ResetDurationMs resets all changes to the "duration_ms" field.
func (m *PipelineRunEventMutation) ResetDurationMs() {
	m.duration_ms = nil
	m.addduration_ms = nil
}

// SetMessage sets the "message" field.
func (m *PipelineRunEventMutation) SetMessage(s string) {
	m.message = &s
}

// Message returns the value of the "message" field in the mutation.
func (m *PipelineRunEventMutation) Message() (r string, exists bool) {
	v := m.message
	if v == nil {
		return
	}
	return *v, true
}

// OldMessage returns the old "message" field's value of the PipelineRunEvent entity.
// If the PipelineRunEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PipelineRunEventMutation) OldMessage(ctx context.Context) (v string, err error) {
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
func (m *PipelineRunEventMutation) ResetMessage() {
	m.message = nil
}

// Where appends a list predicates to the PipelineRunEventMutation builder.
func (m *PipelineRunEventMutation) Where(ps ...predicate.PipelineRunEvent) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the PipelineRunEventMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *PipelineRunEventMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.PipelineRunEvent, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *PipelineRunEventMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *PipelineRunEventMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (PipelineRunEvent).
func (m *PipelineRunEventMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *PipelineRunEventMutation) Fields() []string {
	fields := make([]string, 0, 11)
	if m.sequence != nil {
		fields = append(fields, pipelinerunevent.FieldSequence)
	}
	if m.timestamp != nil {
		fields = append(fields, pipelinerunevent.FieldTimestamp)
	}
	if m.run_id != nil {
		fields = append(fields, pipelinerunevent.FieldRunID)
	}
	if m.problem_count != nil {
		fields = append(fields, pipelinerunevent.FieldProblemCount)
	}
	if m.include_answers != nil {
		fields = append(fields, pipelinerunevent.FieldIncludeAnswers)
	}
	if m.iterations != nil {
		fields = append(fields, pipelinerunevent.FieldIterations)
	}
	if m.final_score != nil {
		fields = append(fields, pipelinerunevent.FieldFinalScore)
	}
	if m.passed != nil {
		fields = append(fields, pipelinerunevent.FieldPassed)
	}
	if m.degraded != nil {
		fields = append(fields, pipelinerunevent.FieldDegraded)
	}
	if m.duration_ms != nil {
		fields = append(fields, pipelinerunevent.FieldDurationMs)
	}
	if m.message != nil {
		fields = append(fields, pipelinerunevent.FieldMessage)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *PipelineRunEventMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case pipelinerunevent.FieldSequence:
		return m.Sequence()
	case pipelinerunevent.FieldTimestamp:
		return m.Timestamp()
	case pipelinerunevent.FieldRunID:
		return m.RunID()
	case pipelinerunevent.FieldProblemCount:
		return m.ProblemCount()
	case pipelinerunevent.FieldIncludeAnswers:
		return m.IncludeAnswers()
	case pipelinerunevent.FieldIterations:
		return m.Iterations()
	case pipelinerunevent.FieldFinalScore:
		return m.FinalScore()
	case pipelinerunevent.FieldPassed:
		return m.Passed()
	case pipelinerunevent.FieldDegraded:
		return m.Degraded()
	case pipelinerunevent.FieldDurationMs:
		return m.DurationMs()
	case pipelinerunevent.FieldMessage:
		return m.Message()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *PipelineRunEventMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case pipelinerunevent.FieldSequence:
		return m.OldSequence(ctx)
	case pipelinerunevent.FieldTimestamp:
		return m.OldTimestamp(ctx)
	case pipelinerunevent.FieldRunID:
		return m.OldRunID(ctx)
	case pipelinerunevent.FieldProblemCount:
		return m.OldProblemCount(ctx)
	case pipelinerunevent.FieldIncludeAnswers:
		return m.OldIncludeAnswers(ctx)
	case pipelinerunevent.FieldIterations:
		return m.OldIterations(ctx)
	case pipelinerunevent.FieldFinalScore:
		return m.OldFinalScore(ctx)
	case pipelinerunevent.FieldPassed:
		return m.OldPassed(ctx)
	case pipelinerunevent.FieldDegraded:
		return m.OldDegraded(ctx)
	case pipelinerunevent.FieldDurationMs:
		return m.OldDurationMs(ctx)
	case pipelinerunevent.FieldMessage:
		return m.OldMessage(ctx)
	}
	return nil, fmt.Errorf("unknown PipelineRunEvent field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PipelineRunEventMutation) SetField(name string, value ent.Value) error {
	switch name {
	case pipelinerunevent.FieldSequence:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSequence(v)
		return nil
	case pipelinerunevent.FieldTimestamp:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTimestamp(v)
		return nil
	case pipelinerunevent.FieldRunID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRunID(v)
		return nil
	case pipelinerunevent.FieldProblemCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProblemCount(v)
		return nil
	case pipelinerunevent.FieldIncludeAnswers:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIncludeAnswers(v)
		return nil
	case pipelinerunevent.FieldIterations:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIterations(v)
		return nil
	case pipelinerunevent.FieldFinalScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFinalScore(v)
		return nil
	case pipelinerunevent.FieldPassed:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPassed(v)
		return nil
	case pipelinerunevent.FieldDegraded:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDegraded(v)
		return nil
	case pipelinerunevent.FieldDurationMs:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDurationMs(v)
		return nil
	case pipelinerunevent.FieldMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMessage(v)
		return nil
	}
	return fmt.Errorf("unknown PipelineRunEvent field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *PipelineRunEventMutation) AddedFields() []string {
	var fields []string
	if m.addsequence != nil {
		fields = append(fields, pipelinerunevent.FieldSequence)
	}
	if m.addproblem_count != nil {
		fields = append(fields, pipelinerunevent.FieldProblemCount)
	}
	if m.additerations != nil {
		fields = append(fields, pipelinerunevent.FieldIterations)
	}
	if m.addfinal_score != nil {
		fields = append(fields, pipelinerunevent.FieldFinalScore)
	}
	if m.addduration_ms != nil {
		fields = append(fields, pipelinerunevent.FieldDurationMs)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *PipelineRunEventMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case pipelinerunevent.FieldSequence:
		return m.AddedSequence()
	case pipelinerunevent.FieldProblemCount:
		return m.AddedProblemCount()
	case pipelinerunevent.FieldIterations:
		return m.AddedIterations()
	case pipelinerunevent.FieldFinalScore:
		return m.AddedFinalScore()
	case pipelinerunevent.FieldDurationMs:
		return m.AddedDurationMs()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PipelineRunEventMutation) AddField(name string, value ent.Value) error {
	switch name {
	case pipelinerunevent.FieldSequence:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSequence(v)
		return nil
	case pipelinerunevent.FieldProblemCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddProblemCount(v)
		return nil
	case pipelinerunevent.FieldIterations:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddIterations(v)
		return nil
	case pipelinerunevent.FieldFinalScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddFinalScore(v)
		return nil
	case pipelinerunevent.FieldDurationMs:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddDurationMs(v)
		return nil
	}
	return fmt.Errorf("unknown PipelineRunEvent numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *PipelineRunEventMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *PipelineRunEventMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *PipelineRunEventMutation) ClearField(name string) error {
	return fmt.Errorf("unknown PipelineRunEvent nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *PipelineRunEventMutation) ResetField(name string) error {
	switch name {
	case pipelinerunevent.FieldSequence:
		m.ResetSequence()
		return nil
	case pipelinerunevent.FieldTimestamp:
		m.ResetTimestamp()
		return nil
	case pipelinerunevent.FieldRunID:
		m.ResetRunID()
		return nil
	case pipelinerunevent.FieldProblemCount:
		m.ResetProblemCount()
		return nil
	case pipelinerunevent.FieldIncludeAnswers:
		m.ResetIncludeAnswers()
		return nil
	case pipelinerunevent.FieldIterations:
		m.ResetIterations()
		return nil
	case pipelinerunevent.FieldFinalScore:
		m.ResetFinalScore()
		return nil
	case pipelinerunevent.FieldPassed:
		m.ResetPassed()
		return nil
	case pipelinerunevent.FieldDegraded:
		m.ResetDegraded()
		return nil
	case pipelinerunevent.FieldDurationMs:
		m.ResetDurationMs()
		return nil
	case pipelinerunevent.FieldMessage:
		m.ResetMessage()
		return nil
	}
	return fmt.Errorf("unknown PipelineRunEvent field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *PipelineRunEventMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *PipelineRunEventMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *PipelineRunEventMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *PipelineRunEventMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *PipelineRunEventMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *PipelineRunEventMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *PipelineRunEventMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown PipelineRunEvent unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *PipelineRunEventMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown PipelineRunEvent edge %s", name)
}
