package tweetfall

import (
	"encoding/base64"
	"fmt"
	"net/url"
	"unicode/utf8"
)

// formContentType is the body content type for POST parameters.
const formContentType = "application/x-www-form-urlencoded;charset=UTF-8"

// basicAuthHeader builds the Authorization value for the token exchange:
// each credential is percent-encoded, the pair is joined with a colon and
// base64-encoded (RFC 6749 section 2.3.1). The plaintext pair is not kept
// around after encoding.
func basicAuthHeader(consumerKey, consumerSecret string) (string, error) {
	if consumerKey == "" || consumerSecret == "" {
		return "", fmt.Errorf("%w: empty consumer key or secret", ErrInvalidCredentials)
	}
	if !utf8.ValidString(consumerKey) || !utf8.ValidString(consumerSecret) {
		return "", fmt.Errorf("%w: credentials are not valid UTF-8", ErrInvalidCredentials)
	}
	pair := url.QueryEscape(consumerKey) + ":" + url.QueryEscape(consumerSecret)
	return "Basic " + base64.StdEncoding.EncodeToString([]byte(pair)), nil
}

// bearerHeader builds the Authorization value for authenticated calls.
func bearerHeader(token string) string {
	return "Bearer " + token
}
