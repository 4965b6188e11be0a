package handler

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/census-microservice/internal/pkg/utils"
	"github.com/census-microservice/internal/pkg/validator"
	"github.com/census-microservice/internal/usecase"
	"github.com/census-microservice/internal/usecase/dto"
)

// CitizenHandler - обработчик запросов по жителям выгрузки
type CitizenHandler struct {
	citizenUC *usecase.CitizenUseCase
	logger    *zap.Logger
}

// NewCitizenHandler - создание нового CitizenHandler
func NewCitizenHandler(citizenUC *usecase.CitizenUseCase, logger *zap.Logger) *CitizenHandler {
	return &CitizenHandler{
		citizenUC: citizenUC,
		logger:    logger,
	}
}

// Patch godoc
// @Summary Patch citizen
// @Description Частично обновляет жителя выгрузки и согласует его связи с родственниками.
// @Description Обновление атомарно: скаляры и симметричные рёбра графа меняются в одной транзакции
// @Description под эксклюзивной секцией выгрузки.
// @Tags Citizens
// @Accept json
// @Produce json
// @Param importId path int true "Import ID"
// @Param citizenId path int true "Citizen ID"
// @Param input body dto.PatchCitizenRequest true "Partial citizen fields"
// @Success 200 {object} utils.SuccessResponse "Актуальное состояние жителя"
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /imports/{importId}/citizens/{citizenId} [patch]
func (h *CitizenHandler) Patch(c *fiber.Ctx) error {
	importID, err := pathID(c, "importId")
	if err != nil {
		return utils.SendError(c, err)
	}
	citizenID, err := pathID(c, "citizenId")
	if err != nil {
		return utils.SendError(c, err)
	}

	var req dto.PatchCitizenRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	citizen, err := h.citizenUC.Patch(c.Context(), importID, citizenID, req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, citizen, nil)
}

// List godoc
// @Summary List citizens of an import
// @Description Возвращает всех жителей выгрузки вместе с их множествами родственников
// @Tags Citizens
// @Produce json
// @Param importId path int true "Import ID"
// @Success 200 {object} utils.SuccessResponse
// @Failure 404 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /imports/{importId}/citizens [get]
func (h *CitizenHandler) List(c *fiber.Ctx) error {
	importID, err := pathID(c, "importId")
	if err != nil {
		return utils.SendError(c, err)
	}

	citizens, err := h.citizenUC.List(c.Context(), importID)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, citizens, &utils.Meta{
		Total: len(citizens),
	})
}
