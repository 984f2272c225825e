package handler

import (
	"github.com/fadilmartias/career-coach/internal/dto"
	"github.com/fadilmartias/career-coach/internal/middleware"
	"github.com/fadilmartias/career-coach/internal/usecase"
	"github.com/fadilmartias/career-coach/internal/util"
	"github.com/gofiber/fiber/v2"
)

type GoalHandler struct {
	uc   *usecase.GoalUsecase
	gate *middleware.SessionGate
}

func NewGoalHandler(uc *usecase.GoalUsecase, gate *middleware.SessionGate) *GoalHandler {
	return &GoalHandler{uc: uc, gate: gate}
}

func (h *GoalHandler) RegisterRoutes(r fiber.Router) {
	auth := h.gate.RequireAuth()
	r.Post("/goals", auth, h.Create)
	r.Get("/users/:userId/goals", auth, h.gate.RequireOwner("userId"), h.ListByOwner)
	r.Patch("/goals/:id", auth, h.Update)
	r.Delete("/goals/:id", auth, h.Delete)
}

func (h *GoalHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateGoalRequest
	if err := util.BindJSON(c, &req); err != nil {
		return util.HandleError(c, err)
	}
	g, err := h.uc.Create(c.UserContext(), sessionUserID(c), req)
	if err != nil {
		return util.HandleError(c, err)
	}
	return c.JSON(g)
}

func (h *GoalHandler) ListByOwner(c *fiber.Ctx) error {
	list, err := h.uc.ListByOwner(c.UserContext(), sessionUserID(c))
	if err != nil {
		return util.HandleError(c, err)
	}
	return c.JSON(list)
}

func (h *GoalHandler) Update(c *fiber.Ctx) error {
	id, err := paramID(c, "id", "Goal")
	if err != nil {
		return util.HandleError(c, err)
	}
	var req dto.UpdateGoalRequest
	if err := util.BindJSON(c, &req); err != nil {
		return util.HandleError(c, err)
	}
	g, err := h.uc.Update(c.UserContext(), sessionUserID(c), id, req)
	if err != nil {
		return util.HandleError(c, err)
	}
	return c.JSON(g)
}

func (h *GoalHandler) Delete(c *fiber.Ctx) error {
	id, err := paramID(c, "id", "Goal")
	if err != nil {
		return util.HandleError(c, err)
	}
	if err := h.uc.Delete(c.UserContext(), sessionUserID(c), id); err != nil {
		return util.HandleError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
