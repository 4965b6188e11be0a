package handler

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/census-microservice/internal/pkg/utils"
	"github.com/census-microservice/internal/pkg/validator"
	"github.com/census-microservice/internal/usecase"
	"github.com/census-microservice/internal/usecase/dto"
)

// ImportHandler - обработчик создания выгрузок
type ImportHandler struct {
	importUC *usecase.ImportUseCase
	logger   *zap.Logger
}

// NewImportHandler - создание нового ImportHandler
func NewImportHandler(importUC *usecase.ImportUseCase, logger *zap.Logger) *ImportHandler {
	return &ImportHandler{
		importUC: importUC,
		logger:   logger,
	}
}

// Create godoc
// @Summary Create import
// @Description Загружает партию жителей одной транзакцией и возвращает идентификатор выгрузки.
// @Description Партия валидируется целиком: уникальные unit_id, симметричные родственные связи,
// @Description даты регистрации не в будущем.
// @Tags Imports
// @Accept json
// @Produce json
// @Param input body dto.CreateImportRequest true "Citizens batch"
// @Success 201 {object} utils.SuccessResponse
// @Failure 400 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /imports [post]
func (h *ImportHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateImportRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	importID, err := h.importUC.Create(c.Context(), req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendCreated(c, dto.CreateImportResponse{ImportID: importID})
}
