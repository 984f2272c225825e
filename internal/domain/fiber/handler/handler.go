package handler

import (
	"github.com/fadilmartias/career-coach/internal/apperr"
	"github.com/fadilmartias/career-coach/internal/middleware"
	"github.com/fadilmartias/career-coach/internal/util"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// paramID parses a record id from the path. An id that is not a UUID cannot
// name a stored record, so it is reported as not found.
func paramID(c *fiber.Ctx, name, entity string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Params(name))
	if err != nil {
		return uuid.Nil, apperr.NotFound(entity + " not found")
	}
	return id, nil
}

// sessionUserID is only valid behind SessionGate.RequireAuth.
func sessionUserID(c *fiber.Ctx) uuid.UUID {
	if u := middleware.CurrentUser(c); u != nil {
		return u.ID
	}
	return uuid.Nil
}

// bindOptionalJSON binds the body when one was sent. Action endpoints accept
// an empty body.
func bindOptionalJSON(c *fiber.Ctx, v any) error {
	if len(c.Body()) == 0 {
		return util.Validate(v)
	}
	return util.BindJSON(c, v)
}
