package tweetfall

import "errors"

// Construction-time failures. These surface synchronously, before any
// network I/O, and must be handled at the call site. Everything that
// happens after a request begins executing follows the log-and-absent
// policy instead: the callback receives no value and no error.
var (
	// ErrInvalidCredentials means the consumer key or secret could not be
	// encoded into a Basic authorization header.
	ErrInvalidCredentials = errors.New("tweetfall: invalid consumer credentials")

	// ErrInvalidEndpoint means the final request URL could not be assembled.
	ErrInvalidEndpoint = errors.New("tweetfall: invalid endpoint")

	// ErrInvalidParams means the request parameters could not be encoded.
	ErrInvalidParams = errors.New("tweetfall: invalid request parameters")
)
