package middleware

import (
	"context"
	"errors"

	"github.com/fadilmartias/career-coach/internal/apperr"
	"github.com/fadilmartias/career-coach/internal/config"
	"github.com/fadilmartias/career-coach/internal/logger"
	"github.com/fadilmartias/career-coach/internal/model"
	"github.com/fadilmartias/career-coach/internal/util"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	sessionUserKey = "user_id"
	localsUserKey  = "currentUser"
)

// UserLookup resolves the user id held by a session.
type UserLookup interface {
	FindByID(ctx context.Context, id uuid.UUID) (*model.User, error)
}

// SessionGate maps the session cookie to a user and guards routes that need
// one.
type SessionGate struct {
	store *session.Store
	users UserLookup
	log   *logger.Logger
}

func NewSessionGate(cfg *config.SessionConfig, storage fiber.Storage, users UserLookup, log *logger.Logger) *SessionGate {
	store := session.New(session.Config{
		Expiration:     cfg.TTL,
		Storage:        storage,
		KeyLookup:      "cookie:" + cfg.CookieName,
		CookieDomain:   cfg.CookieDomain,
		CookiePath:     "/",
		CookieSecure:   cfg.CookieSecure,
		CookieHTTPOnly: true,
		CookieSameSite: fiber.CookieSameSiteLaxMode,
	})
	return &SessionGate{store: store, users: users, log: log}
}

// Resolve attaches the session's user to the request when there is one. A
// session pointing at a deleted user is destroyed and the request continues
// unauthenticated.
func (g *SessionGate) Resolve() fiber.Handler {
	return func(c *fiber.Ctx) error {
		sess, err := g.store.Get(c)
		if err != nil {
			g.log.Warn("session lookup failed", "path", c.Path(), "error", err)
			return c.Next()
		}
		raw, _ := sess.Get(sessionUserKey).(string)
		if raw == "" {
			return c.Next()
		}

		id, err := uuid.Parse(raw)
		if err == nil {
			var user *model.User
			user, err = g.users.FindByID(c.UserContext(), id)
			switch {
			case err == nil:
				c.Locals(localsUserKey, user)
				return c.Next()
			case !errors.Is(err, gorm.ErrRecordNotFound):
				return util.HandleError(c, apperr.Internal("Authentication error", err))
			}
		}

		g.log.Info("dropping session for unknown user", "user_id", raw)
		if err := sess.Destroy(); err != nil {
			g.log.Warn("destroy stale session failed", "error", err)
		}
		return c.Next()
	}
}

// RequireAuth rejects requests without a resolved user.
func (g *SessionGate) RequireAuth() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if CurrentUser(c) == nil {
			return util.HandleError(c, apperr.Unauthorized("Authentication required"))
		}
		return c.Next()
	}
}

// RequireOwner rejects requests whose path user id is not the session user.
func (g *SessionGate) RequireOwner(param string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		user := CurrentUser(c)
		if user == nil {
			return util.HandleError(c, apperr.Unauthorized("Authentication required"))
		}
		id, err := uuid.Parse(c.Params(param))
		if err != nil || id != user.ID {
			return util.HandleError(c, apperr.Forbidden("Access denied"))
		}
		return c.Next()
	}
}

// Login starts a fresh session for userID.
func (g *SessionGate) Login(c *fiber.Ctx, userID uuid.UUID) error {
	sess, err := g.store.Get(c)
	if err != nil {
		return apperr.Internal("Failed to start session", err)
	}
	if err := sess.Regenerate(); err != nil {
		return apperr.Internal("Failed to start session", err)
	}
	sess.Set(sessionUserKey, userID.String())
	if err := sess.Save(); err != nil {
		return apperr.Internal("Failed to start session", err)
	}
	return nil
}

// Logout destroys the session and expires its cookie.
func (g *SessionGate) Logout(c *fiber.Ctx) error {
	sess, err := g.store.Get(c)
	if err != nil {
		return apperr.Internal("Logout failed", err)
	}
	if err := sess.Destroy(); err != nil {
		return apperr.Internal("Logout failed", err)
	}
	return nil
}

// CurrentUser returns the user resolved for this request, or nil.
func CurrentUser(c *fiber.Ctx) *model.User {
	user, _ := c.Locals(localsUserKey).(*model.User)
	return user
}
