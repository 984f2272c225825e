package client

import (
	"context"
	"net/http"
	"sync"

	"github.com/fadilmartias/career-coach/internal/dto"
	"github.com/fadilmartias/career-coach/internal/model"
)

// Auth tracks who the client's session belongs to. It starts out loading
// until the first Me, Login or Signup settles.
type Auth struct {
	c *Client

	mu      sync.RWMutex
	user    *model.User
	loading bool
	pending int
}

func (a *Auth) CurrentUser() *model.User {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.user
}

func (a *Auth) IsLoading() bool {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.loading || a.pending > 0
}

func (a *Auth) IsAuthenticated() bool {
	return a.CurrentUser() != nil
}

func (a *Auth) setUser(u *model.User) {
	a.mu.Lock()
	a.user = u
	a.mu.Unlock()
}

func (a *Auth) begin() {
	a.mu.Lock()
	a.pending++
	a.mu.Unlock()
}

func (a *Auth) finish(user *model.User, setUser bool) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.pending--
	if setUser {
		a.user = user
		a.loading = false
	}
}

func (a *Auth) Signup(ctx context.Context, req dto.SignupRequest) (*model.User, error) {
	return a.establish(ctx, "/api/auth/signup", req)
}

func (a *Auth) Login(ctx context.Context, email, password string) (*model.User, error) {
	return a.establish(ctx, "/api/auth/login", dto.LoginRequest{Email: email, Password: password})
}

func (a *Auth) establish(ctx context.Context, path string, body any) (*model.User, error) {
	a.begin()
	var user model.User
	if err := a.c.do(ctx, http.MethodPost, path, body, &user); err != nil {
		a.finish(nil, false)
		return nil, err
	}
	a.c.cache.clear()
	a.finish(&user, true)
	return &user, nil
}

// Me refreshes the current user from the session. An expired or missing
// session is not an error: the client simply becomes unauthenticated.
func (a *Auth) Me(ctx context.Context) (*model.User, error) {
	a.begin()
	var user model.User
	err := a.c.do(ctx, http.MethodGet, "/api/auth/me", nil, &user)
	switch {
	case err == nil:
		a.finish(&user, true)
		return &user, nil
	case IsStatus(err, http.StatusUnauthorized):
		a.finish(nil, true)
		return nil, nil
	default:
		a.finish(nil, false)
		return nil, err
	}
}

// Logout ends the session and drops every cached read.
func (a *Auth) Logout(ctx context.Context) error {
	a.begin()
	if err := a.c.do(ctx, http.MethodPost, "/api/auth/logout", nil, nil); err != nil && !IsStatus(err, http.StatusUnauthorized) {
		a.finish(nil, false)
		return err
	}
	a.c.cache.clear()
	a.finish(nil, true)
	return nil
}
