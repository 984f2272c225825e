package apptest

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/fadilmartias/career-coach/internal/app"
	"github.com/fadilmartias/career-coach/internal/config"
	"github.com/fadilmartias/career-coach/internal/logger"
	"github.com/fadilmartias/career-coach/internal/repository"
	"github.com/fadilmartias/career-coach/internal/service"
	"github.com/fadilmartias/career-coach/internal/testutil"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

const SessionCookie = "career_coach_sid"

// NewApp builds the full HTTP application over a fresh sqlite database with
// database-backed sessions and rate limiting switched off.
func NewApp(t *testing.T, advisor service.Advisor) (*fiber.App, *gorm.DB) {
	t.Helper()
	db := testutil.OpenDB(t)
	a := app.New(app.Deps{
		DB:       db,
		Advisor:  advisor,
		Sessions: repository.NewSessionStorage(db),
		Log:      logger.Nop(),
		App: &config.AppConfig{
			Name:        "career-coach-test",
			Env:         "test",
			CORSOrigins: "http://localhost:5173",
		},
		Session: &config.SessionConfig{
			CookieName: SessionCookie,
			TTL:        time.Hour,
		},
	})
	return a, db
}

// Browser drives a Fiber app through app.Test and carries cookies between
// requests the way a browser would.
type Browser struct {
	t       *testing.T
	app     *fiber.App
	cookies map[string]*http.Cookie
}

func NewBrowser(t *testing.T, a *fiber.App) *Browser {
	return &Browser{t: t, app: a, cookies: map[string]*http.Cookie{}}
}

// Do sends body as JSON (nil sends no body) and returns the status and raw
// response body.
func (b *Browser) Do(method, path string, body any) (int, []byte) {
	b.t.Helper()
	var reader io.Reader
	if body != nil {
		raw, ok := body.([]byte)
		if !ok {
			var err error
			raw, err = json.Marshal(body)
			if err != nil {
				b.t.Fatalf("marshal body: %v", err)
			}
		}
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return b.Send(req)
}

// JSON is Do followed by decoding the response into out when out is non-nil.
func (b *Browser) JSON(method, path string, body, out any) int {
	b.t.Helper()
	status, raw := b.Do(method, path, body)
	if out != nil && len(raw) > 0 {
		if err := json.Unmarshal(raw, out); err != nil {
			b.t.Fatalf("%s %s: decode %q: %v", method, path, raw, err)
		}
	}
	return status
}

// Send issues a prepared request with the jar's cookies attached.
func (b *Browser) Send(req *http.Request) (int, []byte) {
	b.t.Helper()
	for _, c := range b.cookies {
		req.AddCookie(&http.Cookie{Name: c.Name, Value: c.Value})
	}
	resp, err := b.app.Test(req, -1)
	if err != nil {
		b.t.Fatalf("%s %s: %v", req.Method, req.URL.Path, err)
	}
	defer resp.Body.Close()
	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		b.t.Fatalf("%s %s: read body: %v", req.Method, req.URL.Path, err)
	}
	now := time.Now()
	for _, c := range resp.Cookies() {
		if c.Value == "" || c.MaxAge < 0 || (!c.Expires.IsZero() && c.Expires.Before(now)) {
			delete(b.cookies, c.Name)
			continue
		}
		b.cookies[c.Name] = c
	}
	return resp.StatusCode, raw
}

// Cookie returns the stored cookie value for name, or "".
func (b *Browser) Cookie(name string) string {
	if c, ok := b.cookies[name]; ok {
		return c.Value
	}
	return ""
}
