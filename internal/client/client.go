package client

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/cookiejar"
	"strings"
	"sync"
	"time"

	"github.com/fadilmartias/career-coach/internal/model"
	"github.com/go-resty/resty/v2"
	"golang.org/x/sync/singleflight"
)

// APIError is a non-2xx answer from the server.
type APIError struct {
	Status  int
	Message string
	Details map[string]string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%d: %s", e.Status, e.Message)
}

// IsStatus reports whether err is an *APIError with the given status.
func IsStatus(err error, status int) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.Status == status
}

type errorBody struct {
	Message string            `json:"message"`
	Details map[string]string `json:"details"`
}

// Client talks to the career-coach API with a cookie-carrying session. Reads
// of user collections are cached per user and shared between concurrent
// callers until a write through the same client invalidates them.
type Client struct {
	http  *resty.Client
	cache *queryCache

	Auth            *Auth
	Assessments     *Resource[model.Assessment]
	Resumes         *Resource[model.Resume]
	Interviews      *Resource[model.Interview]
	CareerPaths     *Resource[model.CareerPath]
	Skills          *Resource[model.Skill]
	Goals           *Resource[model.Goal]
	Recommendations *Resource[model.Recommendation]
}

type Option func(*resty.Client)

func WithTimeout(d time.Duration) Option {
	return func(r *resty.Client) { r.SetTimeout(d) }
}

func WithTransport(rt http.RoundTripper) Option {
	return func(r *resty.Client) { r.SetTransport(rt) }
}

func New(baseURL string, opts ...Option) (*Client, error) {
	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, fmt.Errorf("cookie jar: %w", err)
	}
	r := resty.New().
		SetBaseURL(strings.TrimRight(baseURL, "/")).
		SetCookieJar(jar).
		SetHeader("Accept", "application/json").
		SetTimeout(2 * time.Minute)
	for _, opt := range opts {
		opt(r)
	}

	c := &Client{http: r, cache: newQueryCache()}
	c.Auth = &Auth{c: c, loading: true}
	c.Assessments = newResource[model.Assessment](c, "assessments")
	c.Resumes = newResource[model.Resume](c, "resumes")
	c.Interviews = newResource[model.Interview](c, "interviews")
	c.CareerPaths = newResource[model.CareerPath](c, "career-paths")
	c.Skills = newResource[model.Skill](c, "skills")
	c.Goals = newResource[model.Goal](c, "goals")
	c.Recommendations = newResource[model.Recommendation](c, "recommendations")
	return c, nil
}

// do sends one request and decodes a 2xx body into out when out is non-nil.
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	req := c.http.R().SetContext(ctx).SetError(&errorBody{})
	if body != nil {
		req.SetBody(body)
	}
	if out != nil {
		req.SetResult(out)
	}
	return c.send(req, method, path)
}

func (c *Client) send(req *resty.Request, method, path string) error {
	resp, err := req.Execute(method, path)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	if resp.IsError() {
		apiErr := &APIError{Status: resp.StatusCode(), Message: http.StatusText(resp.StatusCode())}
		if eb, ok := resp.Error().(*errorBody); ok && eb.Message != "" {
			apiErr.Message = eb.Message
			apiErr.Details = eb.Details
		}
		return apiErr
	}
	return nil
}

// queryCache holds collection reads keyed by "/api/users/<userId>/<collection>".
// Every key carries a generation that invalidation bumps, so a fetch that
// started before a write cannot store its result afterwards.
type queryCache struct {
	mu      sync.Mutex
	entries map[string]any
	gens    map[string]uint64
	group   singleflight.Group
}

func newQueryCache() *queryCache {
	return &queryCache{entries: map[string]any{}, gens: map[string]uint64{}}
}

func (q *queryCache) get(key string) (any, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()
	v, ok := q.entries[key]
	return v, ok
}

// generation returns the current generation of key and starts tracking it.
func (q *queryCache) generation(key string) uint64 {
	q.mu.Lock()
	defer q.mu.Unlock()
	gen := q.gens[key]
	q.gens[key] = gen
	return gen
}

// setIfCurrent stores v unless key was invalidated since gen was read.
func (q *queryCache) setIfCurrent(key string, v any, gen uint64) bool {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.gens[key] != gen {
		return false
	}
	q.entries[key] = v
	return true
}

func (q *queryCache) invalidate(key string) {
	q.mu.Lock()
	delete(q.entries, key)
	q.gens[key]++
	q.mu.Unlock()
	q.group.Forget(key)
}

func (q *queryCache) clear() {
	q.mu.Lock()
	keys := make([]string, 0, len(q.gens))
	for k := range q.gens {
		q.gens[k]++
		keys = append(keys, k)
	}
	q.entries = map[string]any{}
	q.mu.Unlock()
	for _, k := range keys {
		q.group.Forget(k)
	}
}
