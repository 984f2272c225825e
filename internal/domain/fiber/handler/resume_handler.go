package handler

import (
	"fmt"
	"io"

	"github.com/fadilmartias/career-coach/internal/apperr"
	"github.com/fadilmartias/career-coach/internal/dto"
	"github.com/fadilmartias/career-coach/internal/middleware"
	"github.com/fadilmartias/career-coach/internal/usecase"
	"github.com/fadilmartias/career-coach/internal/util"
	"github.com/gofiber/fiber/v2"
)

const maxResumeUpload = 5 * 1024 * 1024

type ResumeHandler struct {
	uc   *usecase.ResumeUsecase
	gate *middleware.SessionGate
}

func NewResumeHandler(uc *usecase.ResumeUsecase, gate *middleware.SessionGate) *ResumeHandler {
	return &ResumeHandler{uc: uc, gate: gate}
}

func (h *ResumeHandler) RegisterRoutes(r fiber.Router) {
	auth := h.gate.RequireAuth()
	r.Post("/resumes", auth, h.Create)
	r.Post("/resumes/import", auth, h.Import)
	r.Get("/users/:userId/resumes", auth, h.gate.RequireOwner("userId"), h.ListByOwner)
	r.Get("/resumes/:id", auth, h.Get)
	r.Patch("/resumes/:id", auth, h.Update)
	r.Delete("/resumes/:id", auth, h.Delete)
	r.Post("/resumes/:id/analyze", auth, h.Analyze)
}

func (h *ResumeHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateResumeRequest
	if err := util.BindJSON(c, &req); err != nil {
		return util.HandleError(c, err)
	}
	r, err := h.uc.Create(c.UserContext(), sessionUserID(c), req)
	if err != nil {
		return util.HandleError(c, err)
	}
	return c.JSON(r)
}

// Import accepts a multipart upload with a "file" part (.pdf, .docx or
// .txt) and an optional "title".
func (h *ResumeHandler) Import(c *fiber.Ctx) error {
	file, err := c.FormFile("file")
	if err != nil {
		return util.HandleError(c, apperr.Validation("file is required", map[string]string{"file": "required"}))
	}
	if file.Size > maxResumeUpload {
		return util.HandleError(c, apperr.Validation(
			fmt.Sprintf("file is too large (max %dMB)", maxResumeUpload/1024/1024),
			map[string]string{"file": "max"},
		))
	}

	f, err := file.Open()
	if err != nil {
		return util.HandleError(c, apperr.Internal("cannot read uploaded file", err))
	}
	defer f.Close()
	data, err := io.ReadAll(f)
	if err != nil {
		return util.HandleError(c, apperr.Internal("cannot read uploaded file", err))
	}

	r, err := h.uc.Import(c.UserContext(), sessionUserID(c), c.FormValue("title"), file.Filename, data)
	if err != nil {
		return util.HandleError(c, err)
	}
	return c.JSON(r)
}

func (h *ResumeHandler) ListByOwner(c *fiber.Ctx) error {
	list, err := h.uc.ListByOwner(c.UserContext(), sessionUserID(c))
	if err != nil {
		return util.HandleError(c, err)
	}
	return c.JSON(list)
}

func (h *ResumeHandler) Get(c *fiber.Ctx) error {
	id, err := paramID(c, "id", "Resume")
	if err != nil {
		return util.HandleError(c, err)
	}
	r, err := h.uc.Get(c.UserContext(), sessionUserID(c), id)
	if err != nil {
		return util.HandleError(c, err)
	}
	return c.JSON(r)
}

func (h *ResumeHandler) Update(c *fiber.Ctx) error {
	id, err := paramID(c, "id", "Resume")
	if err != nil {
		return util.HandleError(c, err)
	}
	var req dto.UpdateResumeRequest
	if err := util.BindJSON(c, &req); err != nil {
		return util.HandleError(c, err)
	}
	r, err := h.uc.Update(c.UserContext(), sessionUserID(c), id, req)
	if err != nil {
		return util.HandleError(c, err)
	}
	return c.JSON(r)
}

func (h *ResumeHandler) Delete(c *fiber.Ctx) error {
	id, err := paramID(c, "id", "Resume")
	if err != nil {
		return util.HandleError(c, err)
	}
	if err := h.uc.Delete(c.UserContext(), sessionUserID(c), id); err != nil {
		return util.HandleError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (h *ResumeHandler) Analyze(c *fiber.Ctx) error {
	id, err := paramID(c, "id", "Resume")
	if err != nil {
		return util.HandleError(c, err)
	}
	r, err := h.uc.Analyze(c.UserContext(), sessionUserID(c), id)
	if err != nil {
		return util.HandleError(c, err)
	}
	return c.JSON(r)
}
