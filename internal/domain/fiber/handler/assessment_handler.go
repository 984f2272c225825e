package handler

import (
	"github.com/fadilmartias/career-coach/internal/dto"
	"github.com/fadilmartias/career-coach/internal/middleware"
	"github.com/fadilmartias/career-coach/internal/usecase"
	"github.com/fadilmartias/career-coach/internal/util"
	"github.com/gofiber/fiber/v2"
)

type AssessmentHandler struct {
	uc   *usecase.AssessmentUsecase
	gate *middleware.SessionGate
}

func NewAssessmentHandler(uc *usecase.AssessmentUsecase, gate *middleware.SessionGate) *AssessmentHandler {
	return &AssessmentHandler{uc: uc, gate: gate}
}

func (h *AssessmentHandler) RegisterRoutes(r fiber.Router) {
	auth := h.gate.RequireAuth()
	r.Post("/assessments", auth, h.Create)
	r.Get("/users/:userId/assessments", auth, h.gate.RequireOwner("userId"), h.ListByOwner)
	r.Get("/assessments/:id", auth, h.Get)
	r.Patch("/assessments/:id", auth, h.Update)
	r.Post("/assessments/:id/analyze", auth, h.Analyze)
}

func (h *AssessmentHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateAssessmentRequest
	if err := util.BindJSON(c, &req); err != nil {
		return util.HandleError(c, err)
	}
	a, err := h.uc.Create(c.UserContext(), sessionUserID(c), req)
	if err != nil {
		return util.HandleError(c, err)
	}
	return c.JSON(a)
}

func (h *AssessmentHandler) ListByOwner(c *fiber.Ctx) error {
	list, err := h.uc.ListByOwner(c.UserContext(), sessionUserID(c))
	if err != nil {
		return util.HandleError(c, err)
	}
	return c.JSON(list)
}

func (h *AssessmentHandler) Get(c *fiber.Ctx) error {
	id, err := paramID(c, "id", "Assessment")
	if err != nil {
		return util.HandleError(c, err)
	}
	a, err := h.uc.Get(c.UserContext(), sessionUserID(c), id)
	if err != nil {
		return util.HandleError(c, err)
	}
	return c.JSON(a)
}

func (h *AssessmentHandler) Update(c *fiber.Ctx) error {
	id, err := paramID(c, "id", "Assessment")
	if err != nil {
		return util.HandleError(c, err)
	}
	var req dto.UpdateAssessmentRequest
	if err := util.BindJSON(c, &req); err != nil {
		return util.HandleError(c, err)
	}
	a, err := h.uc.Update(c.UserContext(), sessionUserID(c), id, req)
	if err != nil {
		return util.HandleError(c, err)
	}
	return c.JSON(a)
}

func (h *AssessmentHandler) Analyze(c *fiber.Ctx) error {
	id, err := paramID(c, "id", "Assessment")
	if err != nil {
		return util.HandleError(c, err)
	}
	a, err := h.uc.Analyze(c.UserContext(), sessionUserID(c), id)
	if err != nil {
		return util.HandleError(c, err)
	}
	return c.JSON(a)
}
