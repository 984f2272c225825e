package handler

import (
	"github.com/fadilmartias/career-coach/internal/dto"
	"github.com/fadilmartias/career-coach/internal/middleware"
	"github.com/fadilmartias/career-coach/internal/usecase"
	"github.com/fadilmartias/career-coach/internal/util"
	"github.com/gofiber/fiber/v2"
)

type InterviewHandler struct {
	uc   *usecase.InterviewUsecase
	gate *middleware.SessionGate
}

func NewInterviewHandler(uc *usecase.InterviewUsecase, gate *middleware.SessionGate) *InterviewHandler {
	return &InterviewHandler{uc: uc, gate: gate}
}

func (h *InterviewHandler) RegisterRoutes(r fiber.Router) {
	auth := h.gate.RequireAuth()
	r.Post("/interviews", auth, h.Create)
	r.Get("/users/:userId/interviews", auth, h.gate.RequireOwner("userId"), h.ListByOwner)
	r.Get("/interviews/:id", auth, h.Get)
	r.Patch("/interviews/:id", auth, h.Update)
	r.Post("/interviews/:id/evaluate", auth, h.Evaluate)
}

func (h *InterviewHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateInterviewRequest
	if err := util.BindJSON(c, &req); err != nil {
		return util.HandleError(c, err)
	}
	i, err := h.uc.Create(c.UserContext(), sessionUserID(c), req)
	if err != nil {
		return util.HandleError(c, err)
	}
	return c.JSON(i)
}

func (h *InterviewHandler) ListByOwner(c *fiber.Ctx) error {
	list, err := h.uc.ListByOwner(c.UserContext(), sessionUserID(c))
	if err != nil {
		return util.HandleError(c, err)
	}
	return c.JSON(list)
}

func (h *InterviewHandler) Get(c *fiber.Ctx) error {
	id, err := paramID(c, "id", "Interview")
	if err != nil {
		return util.HandleError(c, err)
	}
	i, err := h.uc.Get(c.UserContext(), sessionUserID(c), id)
	if err != nil {
		return util.HandleError(c, err)
	}
	return c.JSON(i)
}

func (h *InterviewHandler) Update(c *fiber.Ctx) error {
	id, err := paramID(c, "id", "Interview")
	if err != nil {
		return util.HandleError(c, err)
	}
	var req dto.UpdateInterviewRequest
	if err := util.BindJSON(c, &req); err != nil {
		return util.HandleError(c, err)
	}
	i, err := h.uc.Update(c.UserContext(), sessionUserID(c), id, req)
	if err != nil {
		return util.HandleError(c, err)
	}
	return c.JSON(i)
}

func (h *InterviewHandler) Evaluate(c *fiber.Ctx) error {
	id, err := paramID(c, "id", "Interview")
	if err != nil {
		return util.HandleError(c, err)
	}
	var req dto.EvaluateInterviewRequest
	if err := bindOptionalJSON(c, &req); err != nil {
		return util.HandleError(c, err)
	}
	i, err := h.uc.Evaluate(c.UserContext(), sessionUserID(c), id, req)
	if err != nil {
		return util.HandleError(c, err)
	}
	return c.JSON(i)
}
