package handlers

import (
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/artem13815/careerpath/api/http/presenter"
	"github.com/artem13815/careerpath/pkg/analysis"
	"github.com/artem13815/careerpath/pkg/report"
)

type AnalysisHandler struct {
	uc       analysis.UseCase
	validate *validator.Validate
}

func NewAnalysisHandler(uc analysis.UseCase) *AnalysisHandler {
	return &AnalysisHandler{uc: uc, validate: validator.New()}
}

type createAnalysisRequest struct {
	ProfessionalLevel     string `json:"professionalLevel" validate:"max=4000"`
	CurrentSkills         string `json:"currentSkills" validate:"max=4000"`
	EducationalBackground string `json:"educationalBackground" validate:"max=4000"`
	CareerHistory         string `json:"careerHistory" validate:"max=4000"`
	DesiredRole           string `json:"desiredRole" validate:"required,max=4000"`
	State                 string `json:"state" validate:"max=4000"`
	Country               string `json:"country" validate:"max=4000"`
}

// Create запускает карьерный анализ анкеты и сохраняет отчёт.
// @Summary Создать карьерный анализ
// @Tags    Карьерный анализ
// @Accept  json
// @Produce json
// @Param   input body createAnalysisRequest true "Анкета пользователя"
// @Security BearerAuth
// @Success 201 {object} analysis.Analysis
// @Failure 400 {object} presenter.ErrorResponse
// @Failure 401 {object} presenter.ErrorResponse
// @Failure 422 {object} presenter.ErrorResponse
// @Failure 502 {object} presenter.ErrorResponse
// @Router  /career-analyses [post]
func (h *AnalysisHandler) Create(c *fiber.Ctx) error {
	var req createAnalysisRequest
	if err := c.BodyParser(&req); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "невалидный JSON")
	}
	if err := h.validate.Struct(req); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "невалидная анкета: "+err.Error())
	}
	actorID, ok := actorFrom(c)
	if !ok {
		return presenter.Error(c, http.StatusUnauthorized, "не удалось определить пользователя")
	}

	out, err := h.uc.Create(c.Context(), actorID, analysis.Submission{
		ProfessionalLevel:     req.ProfessionalLevel,
		CurrentSkills:         req.CurrentSkills,
		EducationalBackground: req.EducationalBackground,
		CareerHistory:         req.CareerHistory,
		DesiredRole:           req.DesiredRole,
		State:                 req.State,
		Country:               req.Country,
	})
	if err != nil {
		var sectionErr *report.SectionError
		switch {
		case errors.Is(err, analysis.ErrInvalidSubmission):
			return presenter.Error(c, http.StatusBadRequest, err.Error())
		case errors.As(err, &sectionErr):
			return presenter.Error(c, http.StatusUnprocessableEntity, err.Error())
		case errors.Is(err, analysis.ErrAnalysisFailed):
			return presenter.Error(c, http.StatusBadGateway, "модель недоступна, попробуйте позже")
		default:
			return presenter.Error(c, http.StatusInternalServerError, "не удалось выполнить анализ")
		}
	}
	return presenter.JSON(c, http.StatusCreated, out)
}

// Get возвращает анализ по id (владелец/админ).
// @Summary Получить анализ
// @Tags    Карьерный анализ
// @Produce json
// @Param   id path string true "ID анализа (UUID)"
// @Security BearerAuth
// @Success 200 {object} analysis.Analysis
// @Failure 401 {object} presenter.ErrorResponse
// @Failure 404 {object} presenter.ErrorResponse
// @Router  /career-analyses/{id} [get]
func (h *AnalysisHandler) Get(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return presenter.Error(c, http.StatusBadRequest, "невалидный id")
	}
	actorID, ok := actorFrom(c)
	if !ok {
		return presenter.Error(c, http.StatusUnauthorized, "не удалось определить пользователя")
	}
	isAdmin, _ := c.Locals("isAdmin").(bool)
	out, err := h.uc.Get(c.Context(), actorID, isAdmin, id)
	if err != nil {
		// чужая запись неотличима от несуществующей
		return presenter.Error(c, http.StatusNotFound, "анализ не найден")
	}
	return presenter.JSON(c, http.StatusOK, out)
}

// List возвращает анализы текущего пользователя (админ — все), новые первыми.
// @Summary Список анализов
// @Tags    Карьерный анализ
// @Produce json
// @Param   limit  query int false "размер страницы (<=200)"
// @Param   offset query int false "смещение"
// @Security BearerAuth
// @Success 200 {array} analysis.Analysis
// @Failure 401 {object} presenter.ErrorResponse
// @Router  /career-analyses [get]
func (h *AnalysisHandler) List(c *fiber.Ctx) error {
	actorID, ok := actorFrom(c)
	if !ok {
		return presenter.Error(c, http.StatusUnauthorized, "не удалось определить пользователя")
	}
	isAdmin, _ := c.Locals("isAdmin").(bool)
	limit, offset := parseLimitOffset(c, 50)
	items, err := h.uc.List(c.Context(), actorID, isAdmin, limit, offset)
	if err != nil {
		return presenter.Error(c, http.StatusInternalServerError, "не удалось получить список")
	}
	return presenter.JSON(c, http.StatusOK, items)
}

// Delete удаляет анализ (владелец/админ).
// @Summary Удалить анализ
// @Tags    Карьерный анализ
// @Param   id path string true "ID анализа (UUID)"
// @Security BearerAuth
// @Success 204 {object} nil
// @Failure 401 {object} presenter.ErrorResponse
// @Failure 404 {object} presenter.ErrorResponse
// @Router  /career-analyses/{id} [delete]
func (h *AnalysisHandler) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return presenter.Error(c, http.StatusBadRequest, "невалидный id")
	}
	actorID, ok := actorFrom(c)
	if !ok {
		return presenter.Error(c, http.StatusUnauthorized, "не удалось определить пользователя")
	}
	isAdmin, _ := c.Locals("isAdmin").(bool)
	if err := h.uc.Delete(c.Context(), actorID, isAdmin, id); err != nil {
		return presenter.Error(c, http.StatusNotFound, "анализ не найден")
	}
	return c.SendStatus(http.StatusNoContent)
}

func actorFrom(c *fiber.Ctx) (uuid.UUID, bool) {
	userIDStr, _ := c.Locals("userId").(string)
	id, err := uuid.Parse(userIDStr)
	if err != nil {
		return uuid.Nil, false
	}
	return id, true
}
