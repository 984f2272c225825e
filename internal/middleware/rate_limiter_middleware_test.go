package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
)

func TestRateLimiter(t *testing.T) {
	cases := []struct {
		name string
		max  int
		want []int
	}{
		{"limited", 2, []int{200, 200, 429}},
		{"disabled", 0, []int{200, 200, 200}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			app := fiber.New()
			app.Use(RateLimiter(tc.max, time.Minute))
			app.Get("/", func(c *fiber.Ctx) error { return c.SendString("ok") })

			for i, want := range tc.want {
				resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/", nil), -1)
				if err != nil {
					t.Fatalf("request %d: %v", i, err)
				}
				if resp.StatusCode != want {
					t.Fatalf("request %d: got=%d want=%d", i, resp.StatusCode, want)
				}
			}
		})
	}
}
