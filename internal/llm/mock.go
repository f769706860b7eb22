package llm

import (
	"context"
	"encoding/json"
	"sync"
)

// MockResponse is a canned Generate result.
type MockResponse struct {
	Content json.RawMessage
	Usage   Usage
	Err     error
}

// MockJSON marshals v into a canned response. It panics on values that
// cannot be marshaled, which only happens with broken fixtures.
func MockJSON(v any) MockResponse {
	b, err := json.Marshal(v)
	if err != nil {
		panic(err)
	}
	return MockResponse{Content: b}
}

// MockProvider answers without a network. Queued responses are consumed in
// order; once the queue is empty, a standing response registered for the
// request's purpose is returned every time. With neither, Generate fails
// with ErrProviderUnavailable.
type MockProvider struct {
	mu       sync.Mutex
	queue    []MockResponse
	standing map[string]MockResponse
	calls    []Request
}

// NewMockProvider queues responses.
func NewMockProvider(responses ...MockResponse) *MockProvider {
	return &MockProvider{queue: responses, standing: map[string]MockResponse{}}
}

// Enqueue appends a one-shot response.
func (m *MockProvider) Enqueue(resp MockResponse) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.queue = append(m.queue, resp)
}

// Always answers every request labelled with purpose with resp once the
// queue is drained.
func (m *MockProvider) Always(purpose string, resp MockResponse) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.standing[purpose] = resp
}

func (m *MockProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.calls = append(m.calls, req)
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var resp MockResponse
	if len(m.queue) > 0 {
		resp, m.queue = m.queue[0], m.queue[1:]
	} else if r, ok := m.standing[PurposeFrom(ctx)]; ok {
		resp = r
	} else {
		return nil, &ErrProviderUnavailable{}
	}

	if resp.Err != nil {
		return nil, resp.Err
	}
	return &Response{
		Content:    resp.Content,
		Usage:      resp.Usage,
		Model:      "mock",
		StopReason: StopEnd,
	}, nil
}

func (m *MockProvider) ModelID() string {
	return "mock"
}

// CallCount returns how many times Generate was called.
func (m *MockProvider) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.calls)
}

// LastRequest returns the most recent request, or false before any call.
func (m *MockProvider) LastRequest() (Request, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.calls) == 0 {
		return Request{}, false
	}
	return m.calls[len(m.calls)-1], true
}

// Requests returns a copy of every request received so far.
func (m *MockProvider) Requests() []Request {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]Request(nil), m.calls...)
}
