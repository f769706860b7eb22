package llm

import (
	"context"
	"encoding/json"
)

// Provider is the core abstraction for LLM interaction.
// Question generation and the improvement advisor both talk to a Provider.
type Provider interface {
	// Generate sends a prompt and returns the model output. When the request
	// carries a Schema, Content is JSON that has already been validated
	// against it.
	Generate(ctx context.Context, req Request) (*Response, error)

	// ModelID returns the model identifier this provider is configured to use.
	ModelID() string
}

// Request describes what to send to the LLM.
type Request struct {
	// System is the system prompt.
	System string

	// Messages is the conversation. Every caller in careerprep sends a
	// single user message.
	Messages []Message

	// Schema constrains the output. Nil means free text, returned as a
	// JSON string in Response.Content.
	Schema *Schema

	// MaxTokens is the maximum number of tokens in the response.
	MaxTokens int

	// Temperature controls randomness. Range: 0.0 - 1.0.
	Temperature float64
}

// Message represents a single message in the conversation.
type Message struct {
	Role    Role
	Content string
}

// Role is the message sender role.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Schema defines the JSON structure expected from the LLM.
type Schema struct {
	// Name identifies the schema. Kebab-case, e.g. "interview-question-set".
	// It doubles as the compiled-schema cache key.
	Name string

	// Description is sent to the model to guide generation.
	Description string

	// Definition is the JSON Schema definition as a map.
	Definition map[string]any
}

// Normalized stop reasons.
const (
	StopEnd       = "end"
	StopMaxTokens = "max_tokens"
)

// Response holds the LLM's output.
type Response struct {
	Content    json.RawMessage
	Usage      Usage
	Model      string
	StopReason string
}

// Text decodes Content as a JSON string, falling back to the raw bytes.
func (r *Response) Text() string {
	var s string
	if err := json.Unmarshal(r.Content, &s); err == nil {
		return s
	}
	return string(r.Content)
}

// Usage tracks token consumption for a single request.
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}

// finish fills resp.Content from the model text. Truncated output is an
// error; otherwise free text is quoted as a JSON string and structured text
// must pass the schema.
func finish(resp *Response, text string, schema *Schema) (*Response, error) {
	if resp.StopReason == StopMaxTokens {
		return nil, &ErrMaxTokensExceeded{Content: json.RawMessage(text)}
	}
	if schema == nil {
		quoted, err := json.Marshal(text)
		if err != nil {
			return nil, err
		}
		resp.Content = quoted
		return resp, nil
	}
	resp.Content = json.RawMessage(text)
	if err := validateResponse(schema, resp.Content); err != nil {
		return nil, err
	}
	return resp, nil
}
