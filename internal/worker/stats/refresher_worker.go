package stats

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/census-microservice/internal/domain/repository"
	"github.com/census-microservice/internal/worker"
)

// RefresherWorker периодически пересчитывает перцентили возраста для
// последних выгрузок и кладет их в кеш. Запросы статистики по активным
// выгрузкам почти всегда попадают в прогретый кеш, а не в тяжелый
// агрегатный запрос.
type RefresherWorker struct {
	*worker.BaseWorker

	statRepo   repository.StatRepository
	importRepo repository.ImportRepository
	cacheRepo  repository.CacheRepository

	interval time.Duration
	imports  int
	cacheTTL time.Duration
}

// NewRefresherWorker создает воркер прогрева кеша агрегатов
func NewRefresherWorker(
	statRepo repository.StatRepository,
	importRepo repository.ImportRepository,
	cacheRepo repository.CacheRepository,
	interval time.Duration,
	imports int,
	cacheTTL time.Duration,
	logger *zap.Logger,
) *RefresherWorker {
	return &RefresherWorker{
		BaseWorker: worker.NewBaseWorker("stats-refresher", logger),
		statRepo:   statRepo,
		importRepo: importRepo,
		cacheRepo:  cacheRepo,
		interval:   interval,
		imports:    imports,
		cacheTTL:   cacheTTL,
	}
}

// Start запускает цикл прогрева до остановки воркера или отмены контекста
func (w *RefresherWorker) Start(ctx context.Context) error {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	w.Logger().Info("Stats refresher started",
		zap.Duration("interval", w.interval),
		zap.Int("imports", w.imports),
	)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-w.StopChan():
			return nil
		case <-ticker.C:
			w.refresh(ctx)
		}
	}
}

// refresh пересчитывает и кеширует статистику последних выгрузок.
// Ошибка одной выгрузки не прерывает прогрев остальных.
func (w *RefresherWorker) refresh(ctx context.Context) {
	ids, err := w.importRepo.ListRecent(ctx, w.imports)
	if err != nil {
		w.Logger().Warn("Failed to list recent imports", zap.Error(err))
		return
	}

	refreshed := 0
	for _, importID := range ids {
		stats, err := w.statRepo.TownAgePercentiles(ctx, importID)
		if err != nil {
			w.Logger().Warn("Failed to compute stats",
				zap.Int64("import_id", importID), zap.Error(err))
			continue
		}
		if err := w.cacheRepo.SetTownAgeStats(ctx, importID, stats, w.cacheTTL); err != nil {
			w.Logger().Warn("Failed to cache stats",
				zap.Int64("import_id", importID), zap.Error(err))
			continue
		}
		refreshed++
	}

	w.Logger().Debug("Stats cache refreshed",
		zap.Int("imports", len(ids)),
		zap.Int("refreshed", refreshed),
	)
}
