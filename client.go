// Package tweetfall is a demonstration client for a social-media REST API:
// it authenticates with application-only OAuth2, fetches recent posts,
// extracts photo URLs and captions, and downloads the attached images so a
// host program can animate them in a slideshow.
package tweetfall

import (
	"fmt"
	"log/slog"
	"net/http"
	"sync"

	"github.com/tweetfall/tweetfall/jsonv"
	"github.com/tweetfall/tweetfall/task"
)

// Client mediates all outgoing calls to the API host and owns the one-time
// credential-exchange task that produces the bearer token.
type Client struct {
	cfg        ClientConfig
	httpClient *http.Client
	queue      *task.Queue
	authTask   *task.Task

	// bearerToken is written once by the exchange task's completion handler
	// and read by every authenticated request at execution time. Ordering
	// is enforced by the dependency edge on authTask; the mutex only makes
	// the write visible across goroutines.
	mu          sync.Mutex
	bearerToken string
}

// bearerGrant is the decoded response of the token exchange.
type bearerGrant struct {
	TokenType   string
	AccessToken string
}

// UnmarshalValue implements jsonv.Unmarshaler.
func (g *bearerGrant) UnmarshalValue(v jsonv.Value) error {
	tokenType, ok := v.Get("token_type").AsString().Get()
	if !ok {
		return fmt.Errorf("token_type: %w", jsonv.ErrTypeMismatch)
	}
	accessToken, ok := v.Get("access_token").AsString().Get()
	if !ok {
		return fmt.Errorf("access_token: %w", jsonv.ErrTypeMismatch)
	}
	g.TokenType = tokenType
	g.AccessToken = accessToken
	return nil
}

// NewClient creates a client and immediately enqueues the credential
// exchange. It fails with ErrInvalidCredentials when the consumer key or
// secret cannot be encoded; in that case no network call is made. The
// exchange itself runs asynchronously: callers issue requests right away
// and authenticated ones wait on the exchange via a task dependency.
func NewClient(cfg ClientConfig) (*Client, error) {
	cfg.defaults()

	basic, err := basicAuthHeader(cfg.ConsumerKey, cfg.ConsumerSecret)
	if err != nil {
		return nil, err
	}
	cfg.ConsumerKey, cfg.ConsumerSecret = "", ""

	c := &Client{
		cfg:        cfg,
		httpClient: cfg.HTTPClient,
		queue:      task.NewQueue(),
	}

	authTask, err := c.Do(Request{
		Method:   http.MethodPost,
		Endpoint: tokenEndpoint,
		Params:   map[string]string{"grant_type": "client_credentials"},
		Headers:  map[string]string{"Authorization": basic},
		SkipAuth: true,
	}, func(v jsonv.Value) {
		if !v.Exists() {
			return
		}
		grant, err := jsonv.Decode[bearerGrant](v)
		if err != nil {
			slog.Warn("token exchange: unexpected payload", slog.Any("error", err))
			return
		}
		if grant.TokenType != "bearer" {
			slog.Warn("token exchange: unexpected token type", slog.String("token_type", grant.TokenType))
			return
		}
		c.setBearerToken(grant.AccessToken)
		slog.Info("bearer token acquired")
	})
	if err != nil {
		return nil, err
	}
	c.authTask = authTask

	return c, nil
}

// Wait blocks until every task issued through the client has finished.
func (c *Client) Wait() {
	c.queue.Wait()
}

// setBearerToken stores the token produced by the credential exchange.
func (c *Client) setBearerToken(token string) {
	c.mu.Lock()
	c.bearerToken = token
	c.mu.Unlock()
}

// bearer returns the current bearer token, "" when the exchange has not
// completed successfully.
func (c *Client) bearer() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.bearerToken
}
