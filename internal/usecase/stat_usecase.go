package usecase

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/census-microservice/internal/domain"
	"github.com/census-microservice/internal/domain/repository"
	apperrors "github.com/census-microservice/internal/pkg/errors"
)

// StatUseCase обрабатывает бизнес-логику для агрегатов по выгрузке.
// Агрегаты только читают: эксклюзивная секция им не нужна, допустима
// небольшая рассинхронизация с незакоммиченными записями.
type StatUseCase struct {
	statRepo   repository.StatRepository
	importRepo repository.ImportRepository
	cacheRepo  repository.CacheRepository
	logger     *zap.Logger
	cacheTTL   time.Duration
}

// NewStatUseCase создает новый экземпляр StatUseCase
func NewStatUseCase(
	statRepo repository.StatRepository,
	importRepo repository.ImportRepository,
	cacheRepo repository.CacheRepository,
	logger *zap.Logger,
	cacheTTL time.Duration,
) *StatUseCase {
	return &StatUseCase{
		statRepo:   statRepo,
		importRepo: importRepo,
		cacheRepo:  cacheRepo,
		logger:     logger,
		cacheTTL:   cacheTTL,
	}
}

// TownAgeStats возвращает перцентили возраста по городам выгрузки,
// используя кеш когда возможно
func (uc *StatUseCase) TownAgeStats(ctx context.Context, importID int64) ([]domain.TownAgeStat, error) {
	exists, err := uc.importRepo.Exists(ctx, importID)
	if err != nil {
		return nil, mapStoreError(err)
	}
	if !exists {
		return nil, apperrors.ErrImportNotFound
	}

	// 1. Проверяем кеш
	cached, err := uc.cacheRepo.GetTownAgeStats(ctx, importID)
	if err != nil {
		uc.logger.Warn("Failed to get stats from cache", zap.Int64("import_id", importID), zap.Error(err))
	}
	if cached != nil {
		uc.logger.Debug("Town age stats fetched from cache", zap.Int64("import_id", importID))
		return cached, nil
	}

	// 2. Считаем в БД
	stats, err := uc.statRepo.TownAgePercentiles(ctx, importID)
	if err != nil {
		return nil, mapStoreError(err)
	}

	// 3. Кешируем; сбой кеша не ломает ответ
	if err := uc.cacheRepo.SetTownAgeStats(ctx, importID, stats, uc.cacheTTL); err != nil {
		uc.logger.Warn("Failed to cache stats", zap.Int64("import_id", importID), zap.Error(err))
	}

	return stats, nil
}
