package detect

import "context"

// MockClient is a mock implementation of Detector for testing.
type MockClient struct {
	// Functions that can be set by tests to control behavior
	HealthFn       func(ctx context.Context) error
	DetectBase64Fn func(ctx context.Context, image []byte) (*Result, error)

	// Call tracking
	HealthCalls int
	DetectCalls [][]byte
}

// NewMockClient creates a new mock detection client.
func NewMockClient() *MockClient {
	return &MockClient{DetectCalls: [][]byte{}}
}

// Health implements Detector.Health.
func (m *MockClient) Health(ctx context.Context) error {
	m.HealthCalls++
	if m.HealthFn != nil {
		return m.HealthFn(ctx)
	}
	return nil
}

// DetectBase64 implements Detector.DetectBase64.
func (m *MockClient) DetectBase64(ctx context.Context, image []byte) (*Result, error) {
	m.DetectCalls = append(m.DetectCalls, image)
	if m.DetectBase64Fn != nil {
		return m.DetectBase64Fn(ctx, image)
	}
	return &Result{Success: true}, nil
}

// Reset clears all call tracking.
func (m *MockClient) Reset() {
	m.HealthCalls = 0
	m.DetectCalls = [][]byte{}
}

// Ensure MockClient implements the Detector interface.
var _ Detector = (*MockClient)(nil)
