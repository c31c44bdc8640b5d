package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/artem13815/careerpath/api/http/presenter"
	"github.com/artem13815/careerpath/pkg/analysis"
	"github.com/artem13815/careerpath/pkg/charts"
)

// ChartsHandler отдаёт данные отчёта, уже подготовленные для отрисовки.
// Вся агрегация выполняется на сервере, клиент только рисует.
type ChartsHandler struct {
	uc    analysis.UseCase
	trend charts.SeriesProvider
}

func NewChartsHandler(uc analysis.UseCase, trend charts.SeriesProvider) *ChartsHandler {
	return &ChartsHandler{uc: uc, trend: trend}
}

type radarResponse struct {
	Axes []charts.RadarAxis `json:"axes"`
}

type gapsResponse struct {
	Importance  []charts.DataPoint `json:"importance"`
	Percentages []charts.DataPoint `json:"percentages"`
	SkillLevels []charts.DataPoint `json:"skillLevels"`
}

type trendResponse struct {
	Synthetic bool                `json:"synthetic"`
	Points    []charts.TrendPoint `json:"points"`
}

// Radar возвращает оси радар-диаграммы ключевых пробелов (до шести навыков).
// @Summary Радар навыков
// @Tags    Графики
// @Produce json
// @Param   id path string true "ID анализа (UUID)"
// @Security BearerAuth
// @Success 200 {object} radarResponse
// @Failure 401 {object} presenter.ErrorResponse
// @Failure 404 {object} presenter.ErrorResponse
// @Router  /career-analyses/{id}/charts/radar [get]
func (h *ChartsHandler) Radar(c *fiber.Ctx) error {
	a, ok, respErr := h.loadOwned(c)
	if !ok {
		return respErr
	}
	return presenter.JSON(c, http.StatusOK, radarResponse{Axes: charts.TopSkillGaps(a.Result)})
}

// Gaps возвращает распределение пробелов по важности и уровни навыков.
// @Summary Диаграммы пробелов
// @Tags    Графики
// @Produce json
// @Param   id path string true "ID анализа (UUID)"
// @Security BearerAuth
// @Success 200 {object} gapsResponse
// @Failure 401 {object} presenter.ErrorResponse
// @Failure 404 {object} presenter.ErrorResponse
// @Router  /career-analyses/{id}/charts/gaps [get]
func (h *ChartsHandler) Gaps(c *fiber.Ctx) error {
	a, ok, respErr := h.loadOwned(c)
	if !ok {
		return respErr
	}
	importance := charts.GapImportancePie(a.Result)
	return presenter.JSON(c, http.StatusOK, gapsResponse{
		Importance:  importance,
		Percentages: charts.PercentagePie(importance),
		SkillLevels: charts.SkillLevelBars(a.Result),
	})
}

// Trend возвращает синтетический ряд динамики отрасли. Ряд иллюстративный,
// ответ всегда помечен synthetic=true.
// @Summary График динамики отрасли
// @Tags    Графики
// @Produce json
// @Param   id path string true "ID анализа (UUID)"
// @Param   growthRate query string false "качественная оценка темпа ('rapid growth', '8% annually')"
// @Param   trendDirection query string false "направление ('growing', 'declining')"
// @Param   years query int false "горизонт в годах (по умолчанию 6)"
// @Security BearerAuth
// @Success 200 {object} trendResponse
// @Failure 401 {object} presenter.ErrorResponse
// @Failure 404 {object} presenter.ErrorResponse
// @Router  /career-analyses/{id}/charts/trend [get]
func (h *ChartsHandler) Trend(c *fiber.Ctx) error {
	_, ok, respErr := h.loadOwned(c)
	if !ok {
		return respErr
	}
	years := 0
	if v := strings.TrimSpace(c.Query("years")); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 && n <= 20 {
			years = n
		}
	}
	series := h.trend.Series(c.Query("growthRate"), c.Query("trendDirection"), years)
	return presenter.JSON(c, http.StatusOK, trendResponse{
		Synthetic: series.Synthetic,
		Points:    series.Points,
	})
}

// loadOwned достаёт анализ с проверкой владельца. При неудаче сам пишет
// ответ об ошибке и возвращает ok=false вместе с результатом отправки.
func (h *ChartsHandler) loadOwned(c *fiber.Ctx) (a analysis.Analysis, ok bool, respErr error) {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return analysis.Analysis{}, false, presenter.Error(c, http.StatusBadRequest, "невалидный id")
	}
	actorID, okActor := actorFrom(c)
	if !okActor {
		return analysis.Analysis{}, false, presenter.Error(c, http.StatusUnauthorized, "не удалось определить пользователя")
	}
	isAdmin, _ := c.Locals("isAdmin").(bool)
	a, err = h.uc.Get(c.Context(), actorID, isAdmin, id)
	if err != nil {
		return analysis.Analysis{}, false, presenter.Error(c, http.StatusNotFound, "анализ не найден")
	}
	return a, true, nil
}
