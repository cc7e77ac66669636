package urlfetch

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/kevin07696/fetch-gateway/internal/domain"
	"github.com/kevin07696/fetch-gateway/internal/domain/ports"
	pkgerrors "github.com/kevin07696/fetch-gateway/pkg/errors"
	"github.com/kevin07696/fetch-gateway/pkg/observability"
	"go.uber.org/zap"
)

// RequestAdapter translates caller-supplied fetch parameters into structured
// requests for the external fetch service and interprets its replies.
// It holds no state between calls; one instance is safe for concurrent use.
type RequestAdapter struct {
	caller ports.FetchCaller
	logger *zap.Logger
}

// NewRequestAdapter creates a new request adapter over the given call boundary
func NewRequestAdapter(caller ports.FetchCaller, logger *zap.Logger) *RequestAdapter {
	return &RequestAdapter{
		caller: caller,
		logger: logger,
	}
}

// Fetch performs one fetch through the external service: validate the
// parameters, build the outgoing request, issue a single synchronous call,
// interpret the reply. There are no retries and no client-side timeout beyond
// the deadline carried in the request; a failed call returns no response.
func (a *RequestAdapter) Fetch(ctx context.Context, params domain.FetchParams) (*domain.FetchResponse, error) {
	callID := uuid.New().String()

	req, err := a.buildRequest(params)
	if err != nil {
		a.logger.Error("Rejected fetch parameters",
			zap.String("call_id", callID),
			zap.String("url", params.URL),
			zap.Error(err),
		)
		field := "scheme"
		if domain.GetErrorCode(err) == domain.ErrorCodeInvalidMethod {
			field = "method"
		}
		observability.RecordValidationFailure(field)
		return nil, err
	}

	a.logger.Info("Dispatching fetch request",
		zap.String("call_id", callID),
		zap.String("url", req.URL),
		zap.String("method", req.Method.String()),
		zap.Int("header_count", len(req.Headers)),
		zap.Int("payload_bytes", len(req.Payload)),
		zap.Duration("deadline", req.Deadline),
		zap.Bool("follow_redirects", req.FollowRedirects),
		zap.Bool("validate_certificate", req.ValidateCertificate),
	)

	startTime := time.Now()
	observability.FetchStarted()
	resp, err := a.caller.Call(ctx, req)
	observability.FetchFinished()
	elapsed := time.Since(startTime)

	if err != nil {
		return nil, a.interpretCallError(callID, req, err, elapsed)
	}

	if resp.Truncated && !params.AllowTruncated {
		a.logger.Warn("Fetch response was truncated",
			zap.String("call_id", callID),
			zap.String("url", req.URL),
			zap.Int("status_code", resp.StatusCode),
			zap.Duration("elapsed", elapsed),
		)
		observability.RecordFetch(req.Method.String(), observability.OutcomeTruncated, elapsed)
		return nil, domain.WrapError(domain.ErrorCodeTruncated,
			fmt.Sprintf("response body for %s was truncated", req.URL),
			domain.ErrTruncatedResponse)
	}

	a.logger.Info("Fetch completed",
		zap.String("call_id", callID),
		zap.String("url", req.URL),
		zap.Int("status_code", resp.StatusCode),
		zap.Int("body_bytes", len(resp.Body)),
		zap.Bool("truncated", resp.Truncated),
		zap.Duration("elapsed", elapsed),
	)
	observability.RecordFetch(req.Method.String(), observability.OutcomeOK, elapsed)

	return resp, nil
}

// buildRequest validates the parameters and constructs the outgoing request
func (a *RequestAdapter) buildRequest(params domain.FetchParams) (*domain.FetchRequest, error) {
	if !strings.HasPrefix(params.URL, "http://") && !strings.HasPrefix(params.URL, "https://") {
		verr := pkgerrors.NewValidationError("scheme", "URL must start with http:// or https://")
		return nil, domain.WrapError(domain.ErrorCodeInvalidScheme, verr.Message, verr)
	}

	// Certificate validation is only meaningful over TLS
	validateCertificate := params.ValidateCertificate
	if strings.HasPrefix(params.URL, "http://") {
		validateCertificate = false
	}

	method, ok := domain.ParseMethod(params.Method)
	if !ok {
		verr := pkgerrors.NewValidationError("method", fmt.Sprintf("unsupported HTTP method %q", params.Method))
		return nil, domain.WrapError(domain.ErrorCodeInvalidMethod, verr.Message, verr)
	}

	req := &domain.FetchRequest{
		URL:                 params.URL,
		Method:              method,
		FollowRedirects:     params.FollowRedirects,
		ValidateCertificate: validateCertificate,
	}

	// Headers are copied pair by pair, preserving insertion order.
	// No deduplication and no validation of names or values.
	if len(params.Headers) > 0 {
		req.Headers = make([]domain.Header, len(params.Headers))
		copy(req.Headers, params.Headers)
	}

	// An empty payload is omitted entirely, not sent as empty
	if len(params.Payload) > 0 && method.AllowsPayload() {
		req.Payload = append([]byte(nil), params.Payload...)
	}

	// Zero or negative means "use the service default" and is omitted
	if params.Deadline > 0 {
		req.Deadline = params.Deadline
	}

	return req, nil
}

// interpretCallError maps a failed external call into a domain error
func (a *RequestAdapter) interpretCallError(callID string, req *domain.FetchRequest, err error, elapsed time.Duration) error {
	var appErr *ports.ApplicationError
	if errors.As(err, &appErr) {
		info := GetErrorCodeInfo(appErr.Code)
		fetchErr := info.ToFetchError(appErr.Message)

		a.logger.Error("Fetch service reported an error",
			zap.String("call_id", callID),
			zap.String("url", req.URL),
			zap.Int32("error_code", appErr.Code),
			zap.String("label", info.Label),
			zap.String("service_message", appErr.Message),
			zap.Duration("elapsed", elapsed),
		)
		observability.RecordFetch(req.Method.String(), observability.OutcomeServiceError, elapsed)

		return domain.WrapError(domain.ErrorCodeServiceError,
			fmt.Sprintf("fetch of %s failed: %s", req.URL, fetchErr.Error()), fetchErr)
	}

	a.logger.Error("Fetch call failed",
		zap.String("call_id", callID),
		zap.String("url", req.URL),
		zap.Error(err),
		zap.Duration("elapsed", elapsed),
	)
	observability.RecordFetch(req.Method.String(), observability.OutcomeCallError, elapsed)

	return domain.WrapError(domain.ErrorCodeServiceError,
		fmt.Sprintf("fetch of %s failed", req.URL), err)
}
