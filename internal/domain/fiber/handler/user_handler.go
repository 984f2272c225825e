package handler

import (
	"github.com/fadilmartias/career-coach/internal/dto"
	"github.com/fadilmartias/career-coach/internal/middleware"
	"github.com/fadilmartias/career-coach/internal/usecase"
	"github.com/fadilmartias/career-coach/internal/util"
	"github.com/gofiber/fiber/v2"
)

type UserHandler struct {
	auth *usecase.AuthUsecase
	uc   *usecase.UserUsecase
	gate *middleware.SessionGate
}

func NewUserHandler(auth *usecase.AuthUsecase, uc *usecase.UserUsecase, gate *middleware.SessionGate) *UserHandler {
	return &UserHandler{auth: auth, uc: uc, gate: gate}
}

func (h *UserHandler) RegisterRoutes(r fiber.Router) {
	auth := h.gate.RequireAuth()
	owner := h.gate.RequireOwner("id")
	r.Post("/users", auth, h.Create)
	r.Get("/users/:id", auth, owner, h.Get)
	r.Patch("/users/:id", auth, owner, h.Update)
}

// Create registers another account without switching the caller's session.
func (h *UserHandler) Create(c *fiber.Ctx) error {
	var req dto.SignupRequest
	if err := util.BindJSON(c, &req); err != nil {
		return util.HandleError(c, err)
	}
	user, err := h.auth.Register(c.UserContext(), req)
	if err != nil {
		return util.HandleError(c, err)
	}
	return c.JSON(user)
}

func (h *UserHandler) Get(c *fiber.Ctx) error {
	id, err := paramID(c, "id", "User")
	if err != nil {
		return util.HandleError(c, err)
	}
	user, err := h.uc.Get(c.UserContext(), id)
	if err != nil {
		return util.HandleError(c, err)
	}
	return c.JSON(user)
}

func (h *UserHandler) Update(c *fiber.Ctx) error {
	id, err := paramID(c, "id", "User")
	if err != nil {
		return util.HandleError(c, err)
	}
	var req dto.UpdateUserRequest
	if err := util.BindJSON(c, &req); err != nil {
		return util.HandleError(c, err)
	}
	user, err := h.uc.Update(c.UserContext(), id, req)
	if err != nil {
		return util.HandleError(c, err)
	}
	return c.JSON(user)
}
