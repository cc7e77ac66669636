package domain

import (
	"fmt"
	"time"
)

// Method identifies the HTTP method of an outgoing fetch request.
// The numeric values match the fetch service's method enumeration.
type Method int32

const (
	MethodGet Method = iota + 1
	MethodPost
	MethodHead
	MethodPut
	MethodDelete
	MethodPatch
)

// String returns the HTTP method name
func (m Method) String() string {
	switch m {
	case MethodGet:
		return "GET"
	case MethodPost:
		return "POST"
	case MethodHead:
		return "HEAD"
	case MethodPut:
		return "PUT"
	case MethodDelete:
		return "DELETE"
	case MethodPatch:
		return "PATCH"
	default:
		return fmt.Sprintf("METHOD(%d)", int32(m))
	}
}

// AllowsPayload reports whether a request payload may accompany the method
func (m Method) AllowsPayload() bool {
	return m == MethodPost || m == MethodPut || m == MethodPatch
}

// ParseMethod maps a method string to its enumeration value.
// Matching is exact and case-sensitive.
func ParseMethod(s string) (Method, bool) {
	switch s {
	case "GET":
		return MethodGet, true
	case "POST":
		return MethodPost, true
	case "HEAD":
		return MethodHead, true
	case "PUT":
		return MethodPut, true
	case "DELETE":
		return MethodDelete, true
	case "PATCH":
		return MethodPatch, true
	}
	return 0, false
}

// Header is a single key/value pair of an outgoing or incoming header list.
// Headers travel as a slice so insertion order survives the round trip.
type Header struct {
	Key   string
	Value string
}

// FetchRequest is the structured request handed to the external fetch
// service. It is built fresh for every call and never reused.
type FetchRequest struct {
	URL                 string
	Method              Method
	Headers             []Header
	Payload             []byte        // nil when omitted
	Deadline            time.Duration // zero when omitted
	FollowRedirects     bool
	ValidateCertificate bool
}

// FetchResponse is the structured response returned by the external fetch
// service. Ownership passes to the caller on return.
type FetchResponse struct {
	StatusCode int
	Body       []byte
	Headers    []Header
	Truncated  bool
}

// FetchParams carries the caller-supplied parameters for one fetch.
type FetchParams struct {
	URL                 string
	Method              string
	Headers             []Header
	Payload             []byte
	AllowTruncated      bool
	FollowRedirects     bool
	Deadline            time.Duration
	ValidateCertificate bool
}

// DefaultFetchParams returns the parameters for a plain GET of url:
// no headers, no payload, no deadline, truncated responses accepted,
// redirects followed, certificate validation off.
func DefaultFetchParams(url string) FetchParams {
	return FetchParams{
		URL:             url,
		Method:          "GET",
		AllowTruncated:  true,
		FollowRedirects: true,
	}
}
