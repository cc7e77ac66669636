package urlfetch

import (
	"fmt"

	pkgerrors "github.com/kevin07696/fetch-gateway/pkg/errors"
)

// Numeric error codes of the fetch service's error enumeration
const (
	CodeOK                     int32 = 0
	CodeInvalidURL             int32 = 1
	CodeFetchError             int32 = 2
	CodeUnspecifiedError       int32 = 3
	CodeResponseTooLarge       int32 = 4
	CodeDeadlineExceeded       int32 = 5
	CodeSSLCertificateError    int32 = 6
	CodeDNSError               int32 = 7
	CodeClosed                 int32 = 8
	CodeInternalTransientError int32 = 9
	CodeTooManyRedirects       int32 = 10
	CodeMalformedReply         int32 = 11
	CodeConnectionError        int32 = 12
	CodePayloadTooLarge        int32 = 13
)

// ErrorCodeInfo contains detailed information about a fetch service error code
type ErrorCodeInfo struct {
	Code        int32
	Label       string
	Description string
	IsTransient bool
	Category    pkgerrors.ErrorCategory
}

// Error code map for the fetch service
var fetchErrorCodes = map[int32]ErrorCodeInfo{
	// The service never pairs OK with a raised error; kept as a defensive row
	CodeOK: {
		Code:        CodeOK,
		Label:       "Module Return OK",
		Description: "No error reported",
		Category:    pkgerrors.CategoryInternal,
	},
	CodeInvalidURL: {
		Code:        CodeInvalidURL,
		Label:       "Invalid Url",
		Description: "The URL was malformed or could not be parsed",
		Category:    pkgerrors.CategoryInvalidRequest,
	},
	CodeFetchError: {
		Code:        CodeFetchError,
		Label:       "Fetch Error",
		Description: "The fetch could not be completed",
		Category:    pkgerrors.CategoryNetwork,
	},
	CodeUnspecifiedError: {
		Code:        CodeUnspecifiedError,
		Label:       "Unspecified Error",
		Description: "The fetch failed for an unspecified reason",
		Category:    pkgerrors.CategoryInternal,
	},
	CodeResponseTooLarge: {
		Code:        CodeResponseTooLarge,
		Label:       "Response Too Large",
		Description: "The response exceeded the service's size limit",
		Category:    pkgerrors.CategorySizeLimit,
	},
	CodeDeadlineExceeded: {
		Code:        CodeDeadlineExceeded,
		Label:       "Deadline Exceeded",
		Description: "The fetch deadline elapsed before a response arrived",
		IsTransient: true,
		Category:    pkgerrors.CategoryTransient,
	},
	CodeSSLCertificateError: {
		Code:        CodeSSLCertificateError,
		Label:       "Ssl Certificate Error",
		Description: "The remote certificate failed validation",
		Category:    pkgerrors.CategorySecurity,
	},
	CodeDNSError: {
		Code:        CodeDNSError,
		Label:       "Dns Error",
		Description: "The host name could not be resolved",
		Category:    pkgerrors.CategoryNetwork,
	},
	CodeClosed: {
		Code:        CodeClosed,
		Label:       "Closed",
		Description: "The connection closed before the response completed",
		Category:    pkgerrors.CategoryNetwork,
	},
	CodeInternalTransientError: {
		Code:        CodeInternalTransientError,
		Label:       "Internal Transient Error",
		Description: "A transient error occurred inside the fetch service",
		IsTransient: true,
		Category:    pkgerrors.CategoryTransient,
	},
	CodeTooManyRedirects: {
		Code:        CodeTooManyRedirects,
		Label:       "Too Many Redirects",
		Description: "The redirect limit was exceeded",
		Category:    pkgerrors.CategoryNetwork,
	},
	CodeMalformedReply: {
		Code:        CodeMalformedReply,
		Label:       "Malformed Reply",
		Description: "The remote server returned an unparseable reply",
		Category:    pkgerrors.CategoryNetwork,
	},
	CodeConnectionError: {
		Code:        CodeConnectionError,
		Label:       "Connection Error",
		Description: "A connection to the remote host could not be established",
		Category:    pkgerrors.CategoryNetwork,
	},
	CodePayloadTooLarge: {
		Code:        CodePayloadTooLarge,
		Label:       "Payload Too Large",
		Description: "The request payload exceeded the service's size limit",
		Category:    pkgerrors.CategorySizeLimit,
	},
}

// GetErrorCodeInfo retrieves information for a fetch service error code.
// Codes outside the table are rendered with their raw numeric value.
func GetErrorCodeInfo(code int32) ErrorCodeInfo {
	if info, exists := fetchErrorCodes[code]; exists {
		return info
	}
	// Default for unknown codes
	return ErrorCodeInfo{
		Code:        code,
		Label:       fmt.Sprintf("error %d", code),
		Description: "Unknown fetch service error code",
		Category:    pkgerrors.CategoryInternal,
	}
}

// ToFetchError converts an error code to a FetchError carrying the
// service's original message
func (i ErrorCodeInfo) ToFetchError(serviceMessage string) *pkgerrors.FetchError {
	return &pkgerrors.FetchError{
		Code:           i.Code,
		Label:          i.Label,
		ServiceMessage: serviceMessage,
		IsTransient:    i.IsTransient,
		Category:       i.Category,
	}
}
