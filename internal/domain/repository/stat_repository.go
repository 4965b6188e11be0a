package repository

import (
	"context"

	"github.com/census-microservice/internal/domain"
)

// StatRepository интерфейс для агрегатных запросов по выгрузке.
// Агрегаты только читают и не нуждаются в эксклюзивной секции.
type StatRepository interface {
	// TownAgePercentiles возвращает перцентили возраста жителей по городам
	TownAgePercentiles(ctx context.Context, importID int64) ([]domain.TownAgeStat, error)
}
