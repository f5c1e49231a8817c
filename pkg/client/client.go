// Package client talks to the folio API. It keeps the signed-in session and
// per-entity collections that reconcile local state with server responses.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"
)

const defaultTimeout = 15 * time.Second

// ErrUnauthenticated is returned by calls that need a session when there is none.
var ErrUnauthenticated = errors.New("client: not signed in")

// APIError is a non-2xx response. Message is the server's message when it sent one.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("folio api: %d %s", e.Status, e.Message)
}

// IsNotFound reports whether err is an APIError with status 404.
func IsNotFound(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.Status == http.StatusNotFound
}

type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

type Client struct {
	baseURL string
	http    *http.Client

	mu    sync.RWMutex
	token string
	user  *User
}

type Option func(*Client)

func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.http = hc }
}

func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.http.Timeout = d }
}

// WithToken starts the client with an existing session token.
func WithToken(token string) Option {
	return func(c *Client) { c.token = token }
}

func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: defaultTimeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Client) sessionToken() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.token
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	var r io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return err
		}
		r = bytes.NewReader(raw)
	}

	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, method, u, r)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")
	if tok := c.sessionToken(); tok != "" {
		req.Header.Set("Authorization", "Bearer "+tok)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 10<<20))
	if err != nil {
		return err
	}

	var env envelope
	decodeErr := json.Unmarshal(raw, &env)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		msg := env.Message
		if decodeErr != nil || msg == "" {
			msg = http.StatusText(resp.StatusCode)
		}
		return &APIError{Status: resp.StatusCode, Message: msg}
	}
	if decodeErr != nil {
		return fmt.Errorf("decode response: %w", decodeErr)
	}
	if out != nil && len(env.Data) > 0 {
		if err := json.Unmarshal(env.Data, out); err != nil {
			return fmt.Errorf("decode data: %w", err)
		}
	}
	return nil
}

// Portfolio fetches the public portfolio of username.
func (c *Client) Portfolio(ctx context.Context, username string) (*Portfolio, error) {
	var p Portfolio
	if err := c.do(ctx, http.MethodGet, "/api/portfolio/"+url.PathEscape(username), nil, nil, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

// Resume fetches the Markdown resume of username.
func (c *Client) Resume(ctx context.Context, username string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/portfolio/"+url.PathEscape(username)+"/resume", nil)
	if err != nil {
		return "", err
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 10<<20))
	if err != nil {
		return "", err
	}
	if resp.StatusCode != http.StatusOK {
		var env envelope
		msg := http.StatusText(resp.StatusCode)
		if json.Unmarshal(raw, &env) == nil && env.Message != "" {
			msg = env.Message
		}
		return "", &APIError{Status: resp.StatusCode, Message: msg}
	}
	return string(raw), nil
}

// Users lists registered users, newest first.
func (c *Client) Users(ctx context.Context) ([]UserCard, error) {
	var cards []UserCard
	if err := c.do(ctx, http.MethodGet, "/api/portfolio/users", nil, nil, &cards); err != nil {
		return nil, err
	}
	return cards, nil
}

func (c *Client) Profile(ctx context.Context) (*Profile, error) {
	if c.sessionToken() == "" {
		return nil, ErrUnauthenticated
	}
	var p Profile
	if err := c.do(ctx, http.MethodGet, "/api/portfolio/profile", nil, nil, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

// UpdateProfile sends only the fields set in patch.
func (c *Client) UpdateProfile(ctx context.Context, patch ProfilePatch) (*Profile, error) {
	if c.sessionToken() == "" {
		return nil, ErrUnauthenticated
	}
	var p Profile
	if err := c.do(ctx, http.MethodPatch, "/api/portfolio/profile", nil, patch, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

func (c *Client) Completeness(ctx context.Context) (*Completeness, error) {
	if c.sessionToken() == "" {
		return nil, ErrUnauthenticated
	}
	var out Completeness
	if err := c.do(ctx, http.MethodGet, "/api/portfolio/profile/completeness", nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
