package handler

import (
	"github.com/fadilmartias/career-coach/internal/dto"
	"github.com/fadilmartias/career-coach/internal/middleware"
	"github.com/fadilmartias/career-coach/internal/usecase"
	"github.com/fadilmartias/career-coach/internal/util"
	"github.com/gofiber/fiber/v2"
)

type AuthHandler struct {
	uc   *usecase.AuthUsecase
	gate *middleware.SessionGate
}

func NewAuthHandler(uc *usecase.AuthUsecase, gate *middleware.SessionGate) *AuthHandler {
	return &AuthHandler{uc: uc, gate: gate}
}

func (h *AuthHandler) RegisterRoutes(r fiber.Router, limit fiber.Handler) {
	auth := r.Group("/auth")
	auth.Post("/signup", limit, h.Signup)
	auth.Post("/login", limit, h.Login)
	auth.Get("/me", h.gate.RequireAuth(), h.Me)
	auth.Post("/logout", h.gate.RequireAuth(), h.Logout)
}

func (h *AuthHandler) Signup(c *fiber.Ctx) error {
	var req dto.SignupRequest
	if err := util.BindJSON(c, &req); err != nil {
		return util.HandleError(c, err)
	}
	user, err := h.uc.Register(c.UserContext(), req)
	if err != nil {
		return util.HandleError(c, err)
	}
	if err := h.gate.Login(c, user.ID); err != nil {
		return util.HandleError(c, err)
	}
	return c.JSON(user)
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := util.BindJSON(c, &req); err != nil {
		return util.HandleError(c, err)
	}
	user, err := h.uc.Login(c.UserContext(), req)
	if err != nil {
		return util.HandleError(c, err)
	}
	if err := h.gate.Login(c, user.ID); err != nil {
		return util.HandleError(c, err)
	}
	return c.JSON(user)
}

func (h *AuthHandler) Me(c *fiber.Ctx) error {
	return c.JSON(middleware.CurrentUser(c))
}

func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	if err := h.gate.Logout(c); err != nil {
		return util.HandleError(c, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Logged out successfully",
	})
}
