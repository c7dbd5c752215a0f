package oracle

import (
	"context"
	"encoding/json"
)

// Provider is the boundary to the external text-generation oracle.
// Every pipeline stage that consults the oracle does so through this
// interface; the oracle is assumed unreliable and callers must be
// prepared for any call to fail.
type Provider interface {
	// Generate sends a prompt to the oracle and returns its output.
	// When the request carries a Schema, the provider asks for structured
	// output and validates the returned JSON against that schema before
	// handing it back.
	Generate(ctx context.Context, req Request) (*Response, error)

	// ModelID returns the model identifier this provider targets.
	ModelID() string
}

// Request describes a single oracle invocation.
type Request struct {
	// System sets the oracle's role and hard constraints.
	System string

	// Messages is the conversation. Pipeline stages are single-turn, so
	// this is almost always one user message.
	Messages []Message

	// Schema, when set, constrains the response to schema-conforming JSON.
	// When nil the response Content is the raw text.
	Schema *Schema

	// MaxTokens bounds the response size.
	MaxTokens int

	// Temperature in [0,1]. Zero means deterministic.
	Temperature float64
}

// Message is one turn of the conversation.
type Message struct {
	Role    Role
	Content string
}

// Role identifies the message sender.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Schema names and defines the JSON structure the oracle must return.
type Schema struct {
	// Name identifies the schema (tool name for Anthropic, schema name
	// for OpenAI). Kebab-case, e.g. "generation-strategy".
	Name string

	// Description tells the oracle what the schema represents.
	Description string

	// Definition is the JSON Schema definition.
	Definition map[string]any
}

// Response is the oracle's output.
type Response struct {
	// Content is the generated output. Validated JSON when the request
	// carried a Schema, otherwise raw text.
	Content json.RawMessage

	// Usage reports token consumption.
	Usage Usage

	// Model is the model that actually served the request.
	Model string

	// StopReason is normalized to "end", "max_tokens" or "error".
	StopReason string
}

// Usage tracks token consumption for one request.
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}
