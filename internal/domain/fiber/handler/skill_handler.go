package handler

import (
	"github.com/fadilmartias/career-coach/internal/dto"
	"github.com/fadilmartias/career-coach/internal/middleware"
	"github.com/fadilmartias/career-coach/internal/usecase"
	"github.com/fadilmartias/career-coach/internal/util"
	"github.com/gofiber/fiber/v2"
)

type SkillHandler struct {
	uc   *usecase.SkillUsecase
	gate *middleware.SessionGate
}

func NewSkillHandler(uc *usecase.SkillUsecase, gate *middleware.SessionGate) *SkillHandler {
	return &SkillHandler{uc: uc, gate: gate}
}

func (h *SkillHandler) RegisterRoutes(r fiber.Router) {
	auth := h.gate.RequireAuth()
	owner := h.gate.RequireOwner("userId")
	r.Post("/skills", auth, h.Create)
	r.Get("/users/:userId/skills", auth, owner, h.ListByOwner)
	r.Post("/users/:userId/skills/gap-analysis", auth, owner, h.GapAnalysis)
	r.Patch("/skills/:id", auth, h.Update)
	r.Delete("/skills/:id", auth, h.Delete)
}

func (h *SkillHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateSkillRequest
	if err := util.BindJSON(c, &req); err != nil {
		return util.HandleError(c, err)
	}
	s, err := h.uc.Create(c.UserContext(), sessionUserID(c), req)
	if err != nil {
		return util.HandleError(c, err)
	}
	return c.JSON(s)
}

func (h *SkillHandler) ListByOwner(c *fiber.Ctx) error {
	list, err := h.uc.ListByOwner(c.UserContext(), sessionUserID(c))
	if err != nil {
		return util.HandleError(c, err)
	}
	return c.JSON(list)
}

func (h *SkillHandler) Update(c *fiber.Ctx) error {
	id, err := paramID(c, "id", "Skill")
	if err != nil {
		return util.HandleError(c, err)
	}
	var req dto.UpdateSkillRequest
	if err := util.BindJSON(c, &req); err != nil {
		return util.HandleError(c, err)
	}
	s, err := h.uc.Update(c.UserContext(), sessionUserID(c), id, req)
	if err != nil {
		return util.HandleError(c, err)
	}
	return c.JSON(s)
}

func (h *SkillHandler) Delete(c *fiber.Ctx) error {
	id, err := paramID(c, "id", "Skill")
	if err != nil {
		return util.HandleError(c, err)
	}
	if err := h.uc.Delete(c.UserContext(), sessionUserID(c), id); err != nil {
		return util.HandleError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (h *SkillHandler) GapAnalysis(c *fiber.Ctx) error {
	var req dto.SkillGapRequest
	if err := util.BindJSON(c, &req); err != nil {
		return util.HandleError(c, err)
	}
	result, err := h.uc.GapAnalysis(c.UserContext(), sessionUserID(c), req)
	if err != nil {
		return util.HandleError(c, err)
	}
	return c.JSON(result)
}
