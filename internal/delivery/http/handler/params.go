package handler

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	apperrors "github.com/census-microservice/internal/pkg/errors"
)

// pathID извлекает целочисленный идентификатор из пути запроса
func pathID(c *fiber.Ctx, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Params(name), 10, 64)
	if err != nil || id < 0 {
		return 0, apperrors.Validation(map[string]interface{}{
			name: "must be a non-negative integer",
		})
	}
	return id, nil
}
