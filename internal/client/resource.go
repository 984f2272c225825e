package client

import (
	"context"
	"net/http"
	"slices"

	"github.com/google/uuid"
)

// Resource is one user-owned collection such as "skills" or "goals".
type Resource[T any] struct {
	c          *Client
	collection string
}

func newResource[T any](c *Client, collection string) *Resource[T] {
	return &Resource[T]{c: c, collection: collection}
}

func (r *Resource[T]) key(userID uuid.UUID) string {
	return "/api/users/" + userID.String() + "/" + r.collection
}

// List returns the current user's records, newest first. Before a user is
// known it returns an empty slice without calling the server. Concurrent
// calls for the same user share one request. Each caller gets its own copy
// of the slice.
func (r *Resource[T]) List(ctx context.Context) ([]T, error) {
	user := r.c.Auth.CurrentUser()
	if user == nil {
		return []T{}, nil
	}
	key := r.key(user.ID)
	if v, ok := r.c.cache.get(key); ok {
		return slices.Clone(v.([]T)), nil
	}

	v, err, _ := r.c.cache.group.Do(key, func() (any, error) {
		if v, ok := r.c.cache.get(key); ok {
			return v, nil
		}
		gen := r.c.cache.generation(key)
		var items []T
		if err := r.c.do(ctx, http.MethodGet, key, nil, &items); err != nil {
			return nil, err
		}
		if items == nil {
			items = []T{}
		}
		r.c.cache.setIfCurrent(key, items, gen)
		return items, nil
	})
	if err != nil {
		return []T{}, err
	}
	return slices.Clone(v.([]T)), nil
}

func (r *Resource[T]) Get(ctx context.Context, id uuid.UUID) (*T, error) {
	var out T
	if err := r.c.do(ctx, http.MethodGet, r.path(id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *Resource[T]) Create(ctx context.Context, body any) (*T, error) {
	var out T
	if err := r.c.do(ctx, http.MethodPost, "/api/"+r.collection, body, &out); err != nil {
		return nil, err
	}
	r.Invalidate()
	return &out, nil
}

func (r *Resource[T]) Update(ctx context.Context, id uuid.UUID, body any) (*T, error) {
	var out T
	if err := r.c.do(ctx, http.MethodPatch, r.path(id), body, &out); err != nil {
		return nil, err
	}
	r.Invalidate()
	return &out, nil
}

// Delete is served for resumes, skills and goals only.
func (r *Resource[T]) Delete(ctx context.Context, id uuid.UUID) error {
	if err := r.c.do(ctx, http.MethodDelete, r.path(id), nil, nil); err != nil {
		return err
	}
	r.Invalidate()
	return nil
}

// Action posts to /api/<collection>/<id>/<action>, e.g. "analyze" or
// "evaluate", and returns the refreshed record.
func (r *Resource[T]) Action(ctx context.Context, id uuid.UUID, action string, body any) (*T, error) {
	var out T
	if err := r.c.do(ctx, http.MethodPost, r.path(id)+"/"+action, body, &out); err != nil {
		return nil, err
	}
	r.Invalidate()
	return &out, nil
}

// Invalidate drops the cached list for the current user.
func (r *Resource[T]) Invalidate() {
	if user := r.c.Auth.CurrentUser(); user != nil {
		r.c.cache.invalidate(r.key(user.ID))
	}
}

func (r *Resource[T]) path(id uuid.UUID) string {
	return "/api/" + r.collection + "/" + id.String()
}
