package handler

import (
	"github.com/fadilmartias/career-coach/internal/dto"
	"github.com/fadilmartias/career-coach/internal/middleware"
	"github.com/fadilmartias/career-coach/internal/usecase"
	"github.com/fadilmartias/career-coach/internal/util"
	"github.com/gofiber/fiber/v2"
)

type RecommendationHandler struct {
	uc   *usecase.RecommendationUsecase
	gate *middleware.SessionGate
}

func NewRecommendationHandler(uc *usecase.RecommendationUsecase, gate *middleware.SessionGate) *RecommendationHandler {
	return &RecommendationHandler{uc: uc, gate: gate}
}

func (h *RecommendationHandler) RegisterRoutes(r fiber.Router) {
	auth := h.gate.RequireAuth()
	r.Post("/recommendations", auth, h.Create)
	r.Get("/users/:userId/recommendations", auth, h.gate.RequireOwner("userId"), h.ListByOwner)
	r.Patch("/recommendations/:id", auth, h.Update)
}

func (h *RecommendationHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateRecommendationRequest
	if err := util.BindJSON(c, &req); err != nil {
		return util.HandleError(c, err)
	}
	rec, err := h.uc.Create(c.UserContext(), sessionUserID(c), req)
	if err != nil {
		return util.HandleError(c, err)
	}
	return c.JSON(rec)
}

func (h *RecommendationHandler) ListByOwner(c *fiber.Ctx) error {
	list, err := h.uc.ListByOwner(c.UserContext(), sessionUserID(c))
	if err != nil {
		return util.HandleError(c, err)
	}
	return c.JSON(list)
}

func (h *RecommendationHandler) Update(c *fiber.Ctx) error {
	id, err := paramID(c, "id", "Recommendation")
	if err != nil {
		return util.HandleError(c, err)
	}
	var req dto.UpdateRecommendationRequest
	if err := util.BindJSON(c, &req); err != nil {
		return util.HandleError(c, err)
	}
	rec, err := h.uc.Update(c.UserContext(), sessionUserID(c), id, req)
	if err != nil {
		return util.HandleError(c, err)
	}
	return c.JSON(rec)
}
