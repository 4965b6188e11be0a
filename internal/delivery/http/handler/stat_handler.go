package handler

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/census-microservice/internal/pkg/utils"
	"github.com/census-microservice/internal/usecase"
)

// StatHandler - обработчик агрегатных запросов по выгрузке
type StatHandler struct {
	statUC *usecase.StatUseCase
	logger *zap.Logger
}

// NewStatHandler - создание нового StatHandler
func NewStatHandler(statUC *usecase.StatUseCase, logger *zap.Logger) *StatHandler {
	return &StatHandler{
		statUC: statUC,
		logger: logger,
	}
}

// TownAgeStats godoc
// @Summary Age percentiles by town
// @Description Возвращает 50/75/99 перцентили возраста жителей по городам выгрузки.
// @Description Возраст считается от даты регистрации до текущего момента UTC,
// @Description значения округляются до двух знаков.
// @Tags Statistics
// @Produce json
// @Param importId path int true "Import ID"
// @Success 200 {object} utils.SuccessResponse
// @Failure 404 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /imports/{importId}/towns/stat/percentile/age [get]
func (h *StatHandler) TownAgeStats(c *fiber.Ctx) error {
	importID, err := pathID(c, "importId")
	if err != nil {
		return utils.SendError(c, err)
	}

	stats, err := h.statUC.TownAgeStats(c.Context(), importID)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, stats, &utils.Meta{
		Total: len(stats),
	})
}
