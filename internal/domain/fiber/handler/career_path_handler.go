package handler

import (
	"github.com/fadilmartias/career-coach/internal/dto"
	"github.com/fadilmartias/career-coach/internal/middleware"
	"github.com/fadilmartias/career-coach/internal/usecase"
	"github.com/fadilmartias/career-coach/internal/util"
	"github.com/gofiber/fiber/v2"
)

type CareerPathHandler struct {
	uc   *usecase.CareerPathUsecase
	gate *middleware.SessionGate
}

func NewCareerPathHandler(uc *usecase.CareerPathUsecase, gate *middleware.SessionGate) *CareerPathHandler {
	return &CareerPathHandler{uc: uc, gate: gate}
}

func (h *CareerPathHandler) RegisterRoutes(r fiber.Router) {
	auth := h.gate.RequireAuth()
	r.Post("/career-paths", auth, h.Create)
	r.Get("/users/:userId/career-paths", auth, h.gate.RequireOwner("userId"), h.ListByOwner)
	r.Get("/career-paths/:id", auth, h.Get)
	r.Patch("/career-paths/:id", auth, h.Update)
	r.Post("/career-paths/:id/regenerate", auth, h.Regenerate)
}

func (h *CareerPathHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateCareerPathRequest
	if err := util.BindJSON(c, &req); err != nil {
		return util.HandleError(c, err)
	}
	p, err := h.uc.Create(c.UserContext(), sessionUserID(c), req)
	if err != nil {
		return util.HandleError(c, err)
	}
	return c.JSON(p)
}

func (h *CareerPathHandler) ListByOwner(c *fiber.Ctx) error {
	list, err := h.uc.ListByOwner(c.UserContext(), sessionUserID(c))
	if err != nil {
		return util.HandleError(c, err)
	}
	return c.JSON(list)
}

func (h *CareerPathHandler) Get(c *fiber.Ctx) error {
	id, err := paramID(c, "id", "Career path")
	if err != nil {
		return util.HandleError(c, err)
	}
	p, err := h.uc.Get(c.UserContext(), sessionUserID(c), id)
	if err != nil {
		return util.HandleError(c, err)
	}
	return c.JSON(p)
}

func (h *CareerPathHandler) Update(c *fiber.Ctx) error {
	id, err := paramID(c, "id", "Career path")
	if err != nil {
		return util.HandleError(c, err)
	}
	var req dto.UpdateCareerPathRequest
	if err := util.BindJSON(c, &req); err != nil {
		return util.HandleError(c, err)
	}
	p, err := h.uc.Update(c.UserContext(), sessionUserID(c), id, req)
	if err != nil {
		return util.HandleError(c, err)
	}
	return c.JSON(p)
}

func (h *CareerPathHandler) Regenerate(c *fiber.Ctx) error {
	id, err := paramID(c, "id", "Career path")
	if err != nil {
		return util.HandleError(c, err)
	}
	p, err := h.uc.Regenerate(c.UserContext(), sessionUserID(c), id)
	if err != nil {
		return util.HandleError(c, err)
	}
	return c.JSON(p)
}
