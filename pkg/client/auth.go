package client

import (
	"context"
	"errors"
	"net/http"
)

type Status int

const (
	StatusUnauthenticated Status = iota
	StatusAuthenticated
)

func (s Status) String() string {
	if s == StatusAuthenticated {
		return "authenticated"
	}
	return "unauthenticated"
}

type SignupRequest struct {
	Username string `json:"username"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Signup registers an account. It does not sign in.
func (c *Client) Signup(ctx context.Context, req SignupRequest) (*User, error) {
	var u User
	if err := c.do(ctx, http.MethodPost, "/api/auth/create", nil, req, &u); err != nil {
		return nil, err
	}
	return &u, nil
}

// Login signs in with an email or username and keeps the session token.
func (c *Client) Login(ctx context.Context, login, password string) (*User, error) {
	var out struct {
		User  User   `json:"user"`
		Token string `json:"token"`
	}
	body := map[string]string{"username": login, "password": password}
	if err := c.do(ctx, http.MethodPost, "/api/auth/login", nil, body, &out); err != nil {
		return nil, err
	}

	c.mu.Lock()
	c.token = out.Token
	c.user = &out.User
	c.mu.Unlock()
	return &out.User, nil
}

// Logout forgets the local session even when the server call fails.
func (c *Client) Logout(ctx context.Context) error {
	err := c.do(ctx, http.MethodPost, "/api/auth/logout", nil, nil, nil)
	c.clearSession()
	return err
}

// Session refreshes the signed-in user from the server.
func (c *Client) Session(ctx context.Context) (*User, error) {
	if c.sessionToken() == "" {
		return nil, ErrUnauthenticated
	}

	var out struct {
		User User `json:"user"`
	}
	err := c.do(ctx, http.MethodGet, "/api/auth/session", nil, nil, &out)
	var apiErr *APIError
	if errors.As(err, &apiErr) && apiErr.Status == http.StatusUnauthorized {
		c.clearSession()
		return nil, ErrUnauthenticated
	}
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	c.user = &out.User
	c.mu.Unlock()
	return &out.User, nil
}

// User returns the signed-in user as last seen by Login or Session.
func (c *Client) User() (User, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.user == nil {
		return User{}, false
	}
	return *c.user, true
}

func (c *Client) Status() Status {
	if c.sessionToken() == "" {
		return StatusUnauthenticated
	}
	return StatusAuthenticated
}

// Token returns the session token so callers can persist it.
func (c *Client) Token() string { return c.sessionToken() }

func (c *Client) clearSession() {
	c.mu.Lock()
	c.token = ""
	c.user = nil
	c.mu.Unlock()
}
