package mocks

import (
	"context"

	"github.com/kevin07696/fetch-gateway/internal/domain"
)

// MockFetchCaller is a mock implementation of FetchCaller for testing
type MockFetchCaller struct {
	CallFunc func(ctx context.Context, req *domain.FetchRequest) (*domain.FetchResponse, error)
	Calls    []*domain.FetchRequest
}

// NewMockFetchCaller creates a new mock fetch caller
func NewMockFetchCaller(callFunc func(ctx context.Context, req *domain.FetchRequest) (*domain.FetchResponse, error)) *MockFetchCaller {
	return &MockFetchCaller{
		CallFunc: callFunc,
		Calls:    []*domain.FetchRequest{},
	}
}

// Call executes the mock function and captures the call
func (m *MockFetchCaller) Call(ctx context.Context, req *domain.FetchRequest) (*domain.FetchResponse, error) {
	m.Calls = append(m.Calls, req)
	if m.CallFunc != nil {
		return m.CallFunc(ctx, req)
	}
	// Default success response
	return &domain.FetchResponse{
		StatusCode: 200,
		Body:       []byte("ok"),
		Headers:    []domain.Header{},
	}, nil
}

// Reset clears captured calls
func (m *MockFetchCaller) Reset() {
	m.Calls = []*domain.FetchRequest{}
}
