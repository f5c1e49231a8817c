package client

import (
	"context"
	"net/http"
	"net/url"
	"slices"
	"sync"
)

// Collection mirrors one of the signed-in user's entity lists.
// Creates append the server's record, updates replace by id, and deletes are
// optimistic: the item disappears at once and comes back at its old position
// if the server refuses.
type Collection[T Entity] struct {
	client *Client
	path   string

	mu    sync.Mutex
	items Store[T]
}

func NewCollection[T Entity](c *Client, path string) *Collection[T] {
	return &Collection[T]{client: c, path: path}
}

func (c *Client) Experiences() *Collection[Experience] {
	return NewCollection[Experience](c, "/api/portfolio/experience")
}

func (c *Client) Education() *Collection[Education] {
	return NewCollection[Education](c, "/api/portfolio/education")
}

func (c *Client) Projects() *Collection[Project] {
	return NewCollection[Project](c, "/api/portfolio/projects")
}

func (c *Client) Links() *Collection[Link] {
	return NewCollection[Link](c, "/api/portfolio/links")
}

func (c *Client) Socials() *Collection[Social] {
	return NewCollection[Social](c, "/api/portfolio/socials")
}

func (c *Client) Skills() *Collection[Skill] {
	return NewCollection[Skill](c, "/api/portfolio/skill")
}

// Items returns a snapshot of the current list.
func (col *Collection[T]) Items() []T {
	col.mu.Lock()
	defer col.mu.Unlock()
	return slices.Clone(col.items)
}

// Load replaces the local list with the server's. It makes no request without a session.
func (col *Collection[T]) Load(ctx context.Context) error {
	if col.client.sessionToken() == "" {
		return ErrUnauthenticated
	}

	var items []T
	if err := col.client.do(ctx, http.MethodGet, col.path, nil, nil, &items); err != nil {
		return err
	}

	col.mu.Lock()
	col.items = Store[T](items)
	col.mu.Unlock()
	return nil
}

// Create posts in and appends the stored record.
func (col *Collection[T]) Create(ctx context.Context, in any) (T, error) {
	var created T
	if col.client.sessionToken() == "" {
		return created, ErrUnauthenticated
	}
	if err := col.client.do(ctx, http.MethodPost, col.path, nil, in, &created); err != nil {
		return created, err
	}

	col.mu.Lock()
	col.items = col.items.Append(created)
	col.mu.Unlock()
	return created, nil
}

// Update patches the record with id and replaces the local copy with the server's.
func (col *Collection[T]) Update(ctx context.Context, id string, patch any) (T, error) {
	var updated T
	if col.client.sessionToken() == "" {
		return updated, ErrUnauthenticated
	}
	q := url.Values{"id": {id}}
	if err := col.client.do(ctx, http.MethodPatch, col.path, q, patch, &updated); err != nil {
		return updated, err
	}

	col.mu.Lock()
	col.items = col.items.Replace(updated)
	col.mu.Unlock()
	return updated, nil
}

// Delete removes id locally before asking the server, and restores it on failure.
func (col *Collection[T]) Delete(ctx context.Context, id string) error {
	if col.client.sessionToken() == "" {
		return ErrUnauthenticated
	}

	col.mu.Lock()
	var (
		removed T
		at      int
	)
	col.items, removed, at = col.items.Remove(id)
	col.mu.Unlock()

	err := col.client.do(ctx, http.MethodDelete, col.path, url.Values{"id": {id}}, nil, nil)
	if err != nil && at >= 0 {
		col.mu.Lock()
		// A Load during the request may already have brought it back.
		if col.items.Index(id) < 0 {
			col.items = col.items.Insert(at, removed)
		}
		col.mu.Unlock()
	}
	return err
}
