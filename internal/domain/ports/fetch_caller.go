package ports

import (
	"context"
	"fmt"

	"github.com/kevin07696/fetch-gateway/internal/domain"
)

// FetchCaller defines the synchronous call boundary to the external fetch
// service, which performs the actual network exchange (DNS, TLS, redirect
// following, size limits). Call blocks until the service answers.
// This allows us to mock the boundary in tests and swap implementations.
type FetchCaller interface {
	Call(ctx context.Context, req *domain.FetchRequest) (*domain.FetchResponse, error)
}

// ApplicationError is the failure a FetchCaller returns when the fetch
// service reports an application-level error code instead of a response.
type ApplicationError struct {
	Code    int32
	Message string
}

func (e *ApplicationError) Error() string {
	return fmt.Sprintf("fetch service error %d: %s", e.Code, e.Message)
}
