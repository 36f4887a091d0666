package llm

import (
	"context"
	"sync"
)

// MockClient permite tests sin llamar a un LLM real.
type MockClient struct {
	Response string
	Err      error

	mu       sync.Mutex
	requests []CompletionRequest
}

func (m *MockClient) Complete(ctx context.Context, req CompletionRequest) (string, error) {
	m.mu.Lock()
	m.requests = append(m.requests, req)
	m.mu.Unlock()
	return m.Response, m.Err
}

// Calls devuelve cuántas veces se llamó Complete.
func (m *MockClient) Calls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.requests)
}

// LastRequest devuelve el último request recibido.
func (m *MockClient) LastRequest() (CompletionRequest, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.requests) == 0 {
		return CompletionRequest{}, false
	}
	return m.requests[len(m.requests)-1], true
}
