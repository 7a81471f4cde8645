package tweetfall

import (
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"unicode/utf8"

	"github.com/tweetfall/tweetfall/jsonv"
	"github.com/tweetfall/tweetfall/task"
)

// Request describes a single call against the API host.
type Request struct {
	// Method is http.MethodGet or http.MethodPost.
	Method string

	// Endpoint is the path on the API host, without a leading slash.
	Endpoint string

	// Params become URL query parameters for GET and a urlencoded body
	// for POST.
	Params map[string]string

	// Headers are extra header overrides applied to the request.
	Headers map[string]string

	// SkipAuth issues the request without waiting for, or attaching, the
	// bearer token. The zero value is an authenticated request.
	SkipAuth bool
}

// Callback receives the parsed response value. On any runtime failure —
// transport error, unreadable body, non-JSON payload, missing bearer
// token — it receives the absent Value instead. It is invoked exactly
// once per issued request.
type Callback func(v jsonv.Value)

// Do validates and builds the request synchronously, then enqueues it and
// returns the already-scheduled task. Authenticated requests depend on the
// credential-exchange task, so they never execute before exactly one
// exchange attempt has finished, regardless of enqueue order. The bearer
// token is read when the request begins executing, not when it is built.
func (c *Client) Do(req Request, cb Callback) (*task.Task, error) {
	hreq, err := c.buildRequest(req)
	if err != nil {
		return nil, err
	}

	t := task.New(req.Endpoint, func(finish func()) {
		defer finish()

		if !req.SkipAuth {
			token := c.bearer()
			if token == "" {
				slog.Warn("no bearer token, aborting call", slog.String("endpoint", req.Endpoint))
				cb(jsonv.Value{})
				return
			}
			hreq.Header.Set("Authorization", bearerHeader(token))
		}

		resp, err := c.httpClient.Do(hreq)
		if err != nil {
			slog.Warn("request failed", slog.String("endpoint", req.Endpoint), slog.Any("error", err))
			cb(jsonv.Value{})
			return
		}
		defer resp.Body.Close()

		body, err := io.ReadAll(resp.Body)
		if err != nil {
			slog.Warn("reading response failed", slog.String("endpoint", req.Endpoint), slog.Any("error", err))
			cb(jsonv.Value{})
			return
		}

		v, err := jsonv.Parse(body)
		if err != nil {
			slog.Warn("bad response payload",
				slog.String("endpoint", req.Endpoint),
				slog.Int("status", resp.StatusCode),
				slog.String("body", truncate(body, 200)))
			cb(jsonv.Value{})
			return
		}
		cb(v)
	})

	if !req.SkipAuth && c.authTask != nil {
		t.AddDependency(c.authTask)
	}
	c.queue.Add(t)
	return t, nil
}

// buildRequest assembles the HTTP request. GET params become the query
// string; POST params become a urlencoded body and the query is cleared.
func (c *Client) buildRequest(r Request) (*http.Request, error) {
	if r.Method != http.MethodGet && r.Method != http.MethodPost {
		return nil, fmt.Errorf("%w: unsupported method %q", ErrInvalidParams, r.Method)
	}

	base, err := url.Parse(c.cfg.BaseURL + "/")
	if err != nil {
		return nil, fmt.Errorf("%w: base %q: %v", ErrInvalidEndpoint, c.cfg.BaseURL, err)
	}
	u, err := base.Parse(r.Endpoint)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %v", ErrInvalidEndpoint, r.Endpoint, err)
	}

	var body io.Reader
	switch r.Method {
	case http.MethodGet:
		q := u.Query()
		for k, v := range r.Params {
			q.Set(k, v)
		}
		u.RawQuery = q.Encode()

	case http.MethodPost:
		form := url.Values{}
		for k, v := range r.Params {
			if !utf8.ValidString(k) || !utf8.ValidString(v) {
				return nil, fmt.Errorf("%w: parameter %q is not valid UTF-8", ErrInvalidParams, k)
			}
			form.Set(k, v)
		}
		body = strings.NewReader(form.Encode())
		u.RawQuery = ""
	}

	hreq, err := http.NewRequest(r.Method, u.String(), body)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %v", ErrInvalidEndpoint, r.Endpoint, err)
	}
	if r.Method == http.MethodPost {
		hreq.Header.Set("Content-Type", formContentType)
	}
	for k, v := range r.Headers {
		hreq.Header.Set(k, v)
	}
	return hreq, nil
}

// Call issues req and decodes the response into a T before invoking cb.
// On any runtime or decode failure cb receives nil; it fires exactly once.
func Call[T any, P interface {
	*T
	jsonv.Unmarshaler
}](c *Client, req Request, cb func(*T)) (*task.Task, error) {
	return c.Do(req, func(v jsonv.Value) {
		if !v.Exists() {
			cb(nil)
			return
		}
		out, err := jsonv.Decode[T, P](v)
		if err != nil {
			slog.Warn("decode failed", slog.String("endpoint", req.Endpoint), slog.Any("error", err))
			cb(nil)
			return
		}
		cb(out)
	})
}

// CallSlice issues req and decodes the response array into a []*T before
// invoking cb. One failing element fails the whole decode and cb receives
// nil (no partial slice).
func CallSlice[T any, P interface {
	*T
	jsonv.Unmarshaler
}](c *Client, req Request, cb func([]*T)) (*task.Task, error) {
	return c.Do(req, func(v jsonv.Value) {
		if !v.Exists() {
			cb(nil)
			return
		}
		out, err := jsonv.DecodeSlice[T, P](v)
		if err != nil {
			slog.Warn("decode failed", slog.String("endpoint", req.Endpoint), slog.Any("error", err))
			cb(nil)
			return
		}
		cb(out)
	})
}

func truncate(b []byte, n int) string {
	if len(b) <= n {
		return string(b)
	}
	return string(b[:n]) + "..."
}
