package api

import (
	"io"
)

// set of supported api header keys
const (
	HeaderContentType = "Content-Type"
)

// set of supported api media types
const (
	MediaTypeJSON           = "application/json"
	MediaTypeFormURLEncoded = "application/x-www-form-urlencoded"
)

// RequestOptions are options to configure an *http.Request
type RequestOptions struct {
	Body        io.Reader
	ContentType string

	// UseAuth attaches the session headers to the request
	UseAuth bool

	// PreventRenewal stops an invalid session response from triggering
	// a renewal followed by a retry
	PreventRenewal bool
}
