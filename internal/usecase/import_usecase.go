package usecase

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/census-microservice/internal/domain"
	"github.com/census-microservice/internal/domain/repository"
	apperrors "github.com/census-microservice/internal/pkg/errors"
	"github.com/census-microservice/internal/pkg/metrics"
	"github.com/census-microservice/internal/usecase/dto"
)

// ImportUseCase обрабатывает создание выгрузок
type ImportUseCase struct {
	txManager repository.TxManager
	metrics   *metrics.Metrics
	logger    *zap.Logger
}

// NewImportUseCase создает новый экземпляр ImportUseCase
func NewImportUseCase(txManager repository.TxManager, m *metrics.Metrics, logger *zap.Logger) *ImportUseCase {
	return &ImportUseCase{
		txManager: txManager,
		metrics:   m,
		logger:    logger,
	}
}

// Create валидирует партию жителей и загружает её одной транзакцией:
// регистрация выгрузки, вставка жителей, вставка направленных строк
// родственных связей. Эксклюзивная секция не нужна - идентификатор
// выгрузки свежий и конкурировать за него некому.
func (uc *ImportUseCase) Create(ctx context.Context, req dto.CreateImportRequest) (int64, error) {
	if err := validateBatch(req.Citizens, time.Now()); err != nil {
		return 0, err
	}

	citizens := make([]domain.Citizen, 0, len(req.Citizens))
	pairs := make([]domain.RelativePair, 0)
	for _, c := range req.Citizens {
		citizens = append(citizens, c.ToDomain())
		// Список родственников - множество: ребро хранится одной парой
		// направленных строк, повтор в запросе нарушил бы первичный ключ
		seen := make(map[int64]struct{}, len(c.Relatives))
		for _, rid := range c.Relatives {
			if _, ok := seen[rid]; ok {
				continue
			}
			seen[rid] = struct{}{}
			pairs = append(pairs, domain.RelativePair{UnitID: c.UnitID, RelativeID: rid})
		}
	}

	var importID int64
	err := uc.txManager.RunInTx(ctx, func(s repository.Stores) error {
		id, err := s.Imports().Create(ctx)
		if err != nil {
			return err
		}
		if err := s.Citizens().InsertBatch(ctx, id, citizens); err != nil {
			return err
		}
		if err := s.Relatives().InsertBatch(ctx, id, pairs); err != nil {
			return err
		}
		importID = id
		return nil
	})
	if err != nil {
		return 0, mapStoreError(err)
	}

	uc.metrics.IncrementImportsCreated()
	uc.logger.Info("Import created",
		zap.Int64("import_id", importID),
		zap.Int("citizens", len(citizens)),
	)
	return importID, nil
}

// validateBatch проверяет инварианты партии до обращения к БД:
// уникальность unit_id, отсутствие родства с самим собой, ссылки только
// на жителей этой же партии и симметричность заявленных связей.
func validateBatch(citizens []dto.ImportCitizen, now time.Time) error {
	fields := make(map[string]interface{})

	ids := make(map[int64]int, len(citizens))
	for i, c := range citizens {
		if _, ok := ids[c.UnitID]; ok {
			fields[fmt.Sprintf("citizens[%d].unit_id", i)] = fmt.Sprintf("unit_id %d is not unique", c.UnitID)
			continue
		}
		ids[c.UnitID] = i
	}

	declared := make(map[[2]int64]struct{})
	for i, c := range citizens {
		if c.Date.InFuture(now) {
			fields[fmt.Sprintf("citizens[%d].date", i)] = "registration date cannot be in the future"
		}
		for _, rid := range c.Relatives {
			key := fmt.Sprintf("citizens[%d].relatives", i)
			switch {
			case rid == c.UnitID:
				fields[key] = "citizen cannot be a relative of itself"
			default:
				if _, ok := ids[rid]; !ok {
					fields[key] = fmt.Sprintf("relative %d is not present in this import", rid)
				}
				declared[[2]int64{c.UnitID, rid}] = struct{}{}
			}
		}
	}

	// Симметричность: если i указал j, то и j должен указать i
	for pair := range declared {
		if _, ok := declared[[2]int64{pair[1], pair[0]}]; !ok {
			if i, known := ids[pair[1]]; known {
				fields[fmt.Sprintf("citizens[%d].relatives", i)] =
					fmt.Sprintf("relation %d <-> %d is not symmetric", pair[1], pair[0])
			}
		}
	}

	if len(fields) > 0 {
		return apperrors.Validation(fields)
	}
	return nil
}
