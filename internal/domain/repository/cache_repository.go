package repository

import (
	"context"
	"time"

	"github.com/census-microservice/internal/domain"
)

// CacheRepository определяет методы для работы с кешем агрегатов
type CacheRepository interface {
	// Get получает значение из кеша по ключу (nil при промахе)
	Get(ctx context.Context, key string) ([]byte, error)

	// Set сохраняет значение в кеше с TTL
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error

	// Delete удаляет значение из кеша
	Delete(ctx context.Context, key string) error

	// GetTownAgeStats получает перцентили возраста по городам из кеша
	GetTownAgeStats(ctx context.Context, importID int64) ([]domain.TownAgeStat, error)

	// SetTownAgeStats сохраняет перцентили возраста в кеше
	SetTownAgeStats(ctx context.Context, importID int64, stats []domain.TownAgeStat, ttl time.Duration) error

	// InvalidateTownAgeStats сбрасывает кеш агрегатов после записи в выгрузку
	InvalidateTownAgeStats(ctx context.Context, importID int64) error
}
