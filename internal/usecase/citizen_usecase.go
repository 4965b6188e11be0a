package usecase

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/census-microservice/internal/domain"
	"github.com/census-microservice/internal/domain/repository"
	apperrors "github.com/census-microservice/internal/pkg/errors"
	"github.com/census-microservice/internal/pkg/metrics"
	"github.com/census-microservice/internal/usecase/dto"
)

// CitizenUseCase обрабатывает бизнес-логику для жителей выгрузки.
// Patch - единственная операция, которая меняет граф родственников.
type CitizenUseCase struct {
	txManager   repository.TxManager
	citizenRepo repository.CitizenRepository
	importRepo  repository.ImportRepository
	cacheRepo   repository.CacheRepository
	metrics     *metrics.Metrics
	logger      *zap.Logger
}

// NewCitizenUseCase создает новый экземпляр CitizenUseCase
func NewCitizenUseCase(
	txManager repository.TxManager,
	citizenRepo repository.CitizenRepository,
	importRepo repository.ImportRepository,
	cacheRepo repository.CacheRepository,
	m *metrics.Metrics,
	logger *zap.Logger,
) *CitizenUseCase {
	return &CitizenUseCase{
		txManager:   txManager,
		citizenRepo: citizenRepo,
		importRepo:  importRepo,
		cacheRepo:   cacheRepo,
		metrics:     m,
		logger:      logger,
	}
}

// Patch атомарно применяет частичное обновление жителя и согласует граф
// родственников. Последовательность внутри одной транзакции:
//
//	секция по importID -> чтение жителя -> обновление скаляров ->
//	удаление/добавление симметричных рёбер -> повторное чтение -> commit.
//
// Эксклюзивная секция сериализует конкурентные изменения графа внутри
// одной выгрузки: два одновременных patch не могут разъехаться и оставить
// ребро только в одну сторону. Любая ошибка откатывает всё целиком.
// Дешёвые проверки (будущая дата, родство с самим собой) выполняются до
// взятия секции.
func (uc *CitizenUseCase) Patch(ctx context.Context, importID, citizenID int64, req dto.PatchCitizenRequest) (*domain.Citizen, error) {
	if req.Date != nil && req.Date.InFuture(time.Now()) {
		return nil, apperrors.Validation(map[string]interface{}{
			"date": "registration date cannot be in the future",
		})
	}
	if req.Relatives != nil {
		for _, id := range *req.Relatives {
			if id == citizenID {
				return nil, apperrors.ErrSelfRelative
			}
		}
	}

	var result *domain.Citizen
	err := uc.txManager.WithinImport(ctx, importID, func(s repository.Stores) error {
		// Снимок множества родственников берётся здесь, под секцией:
		// предыдущий конкурентный писатель уже закоммитился, следующий ждёт
		citizen, err := s.Citizens().Get(ctx, importID, citizenID)
		if err != nil {
			return err
		}

		if err := s.Citizens().Update(ctx, importID, citizenID, req.ToUpdate()); err != nil {
			return err
		}

		if req.Relatives != nil {
			toAdd, toRemove := domain.RelativeDelta(citizen.Relatives, *req.Relatives)
			if err := s.Relatives().Remove(ctx, importID, citizenID, toRemove); err != nil {
				return err
			}
			if err := s.Relatives().Add(ctx, importID, citizenID, toAdd); err != nil {
				return err
			}
		}

		// Снимок из начала транзакции устарел после обновлений - ответ
		// собирается повторным чтением внутри той же транзакции
		updated, err := s.Citizens().Get(ctx, importID, citizenID)
		if err != nil {
			return err
		}
		result = updated
		return nil
	})
	if err != nil {
		return nil, mapStoreError(err)
	}

	// Агрегаты по выгрузке могли измениться; сбой кеша не ломает ответ
	if err := uc.cacheRepo.InvalidateTownAgeStats(ctx, importID); err != nil {
		uc.logger.Warn("Failed to invalidate stats cache",
			zap.Int64("import_id", importID), zap.Error(err))
	}

	uc.metrics.IncrementCitizenPatches()
	uc.logger.Debug("Citizen patched",
		zap.Int64("import_id", importID),
		zap.Int64("citizen_id", citizenID),
	)
	return result, nil
}

// List возвращает всех жителей выгрузки; несуществующая выгрузка - 404
func (uc *CitizenUseCase) List(ctx context.Context, importID int64) ([]domain.Citizen, error) {
	exists, err := uc.importRepo.Exists(ctx, importID)
	if err != nil {
		return nil, mapStoreError(err)
	}
	if !exists {
		return nil, apperrors.ErrImportNotFound
	}

	citizens, err := uc.citizenRepo.ListByImport(ctx, importID)
	if err != nil {
		return nil, mapStoreError(err)
	}
	return citizens, nil
}

// mapStoreError пропускает прикладные ошибки как есть, всё остальное
// считается сбоем хранилища. Детали сбоя остаются в логах репозиториев
// и не попадают в ответ клиенту.
func mapStoreError(err error) error {
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return apperrors.ErrDatabaseError
}
