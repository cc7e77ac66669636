package urlfetch

import (
	"testing"

	pkgerrors "github.com/kevin07696/fetch-gateway/pkg/errors"
	"github.com/stretchr/testify/assert"
)

// TestErrorCodeValues pins the numeric values of the fetch service enumeration
func TestErrorCodeValues(t *testing.T) {
	assert.Equal(t, int32(0), CodeOK)
	assert.Equal(t, int32(1), CodeInvalidURL)
	assert.Equal(t, int32(2), CodeFetchError)
	assert.Equal(t, int32(3), CodeUnspecifiedError)
	assert.Equal(t, int32(4), CodeResponseTooLarge)
	assert.Equal(t, int32(5), CodeDeadlineExceeded)
	assert.Equal(t, int32(6), CodeSSLCertificateError)
	assert.Equal(t, int32(7), CodeDNSError)
	assert.Equal(t, int32(8), CodeClosed)
	assert.Equal(t, int32(9), CodeInternalTransientError)
	assert.Equal(t, int32(10), CodeTooManyRedirects)
	assert.Equal(t, int32(11), CodeMalformedReply)
	assert.Equal(t, int32(12), CodeConnectionError)
	assert.Equal(t, int32(13), CodePayloadTooLarge)
}

func TestGetErrorCodeInfo(t *testing.T) {
	tests := []struct {
		name          string
		code          int32
		wantLabel     string
		wantTransient bool
		wantCategory  pkgerrors.ErrorCategory
	}{
		{
			name:         "ok is a defensive row",
			code:         CodeOK,
			wantLabel:    "Module Return OK",
			wantCategory: pkgerrors.CategoryInternal,
		},
		{
			name:         "invalid url",
			code:         CodeInvalidURL,
			wantLabel:    "Invalid Url",
			wantCategory: pkgerrors.CategoryInvalidRequest,
		},
		{
			name:         "fetch error",
			code:         CodeFetchError,
			wantLabel:    "Fetch Error",
			wantCategory: pkgerrors.CategoryNetwork,
		},
		{
			name:         "response too large",
			code:         CodeResponseTooLarge,
			wantLabel:    "Response Too Large",
			wantCategory: pkgerrors.CategorySizeLimit,
		},
		{
			name:          "deadline exceeded is transient",
			code:          CodeDeadlineExceeded,
			wantLabel:     "Deadline Exceeded",
			wantTransient: true,
			wantCategory:  pkgerrors.CategoryTransient,
		},
		{
			name:         "dns error",
			code:         CodeDNSError,
			wantLabel:    "Dns Error",
			wantCategory: pkgerrors.CategoryNetwork,
		},
		{
			name:          "internal transient error",
			code:          CodeInternalTransientError,
			wantLabel:     "Internal Transient Error",
			wantTransient: true,
			wantCategory:  pkgerrors.CategoryTransient,
		},
		{
			name:         "too many redirects",
			code:         CodeTooManyRedirects,
			wantLabel:    "Too Many Redirects",
			wantCategory: pkgerrors.CategoryNetwork,
		},
		{
			name:         "payload too large",
			code:         CodePayloadTooLarge,
			wantLabel:    "Payload Too Large",
			wantCategory: pkgerrors.CategorySizeLimit,
		},
		{
			name:         "unknown code renders raw value",
			code:         99,
			wantLabel:    "error 99",
			wantCategory: pkgerrors.CategoryInternal,
		},
		{
			name:         "negative unknown code",
			code:         -1,
			wantLabel:    "error -1",
			wantCategory: pkgerrors.CategoryInternal,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			info := GetErrorCodeInfo(tt.code)

			assert.Equal(t, tt.code, info.Code)
			assert.Equal(t, tt.wantLabel, info.Label)
			assert.Equal(t, tt.wantTransient, info.IsTransient)
			assert.Equal(t, tt.wantCategory, info.Category)
			assert.NotEmpty(t, info.Description)
		})
	}
}

func TestToFetchError(t *testing.T) {
	info := GetErrorCodeInfo(CodeDNSError)
	err := info.ToFetchError("lookup example.invalid: no such host")

	assert.Equal(t, CodeDNSError, err.Code)
	assert.Equal(t, "Dns Error", err.Label)
	assert.Equal(t, "Dns Error: lookup example.invalid: no such host", err.Error())
	assert.False(t, err.IsTransient)

	// A missing service message renders the label alone
	bare := info.ToFetchError("")
	assert.Equal(t, "Dns Error", bare.Error())
}
