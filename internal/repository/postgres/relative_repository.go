package postgres

import (
	"context"
	"fmt"

	"github.com/lib/pq"
	"go.uber.org/zap"

	"github.com/census-microservice/internal/domain"
	"github.com/census-microservice/internal/domain/repository"
	apperrors "github.com/census-microservice/internal/pkg/errors"
)

type relativeRepository struct {
	q      Querier
	logger *zap.Logger
}

// NewRelativeRepository создает репозиторий рёбер графа родственников
func NewRelativeRepository(db *DB, logger *zap.Logger) repository.RelativeRepository {
	return &relativeRepository{q: db.DB, logger: logger}
}

// Add вставляет обе направленные строки каждого ребра одним запросом.
// Нарушение внешнего ключа означает, что запрошенный родственник не
// существует в этой выгрузке - это ошибка клиента, а не сервера.
func (r *relativeRepository) Add(ctx context.Context, importID, citizenID int64, relatives []int64) error {
	if len(relatives) == 0 {
		return nil
	}

	query := `
		INSERT INTO relations (import_id, unit_id, relative_id)
		SELECT $1, $2, rid FROM unnest($3::bigint[]) AS rid
		UNION ALL
		SELECT $1, rid, $2 FROM unnest($3::bigint[]) AS rid`

	if _, err := r.q.ExecContext(ctx, query, importID, citizenID, pq.Int64Array(relatives)); err != nil {
		switch {
		case isForeignKeyViolation(err):
			return apperrors.ErrUnknownRelative
		case isCheckViolation(err):
			return apperrors.ErrSelfRelative
		}
		r.logger.Error("failed to add relatives",
			zap.Int64("import_id", importID),
			zap.Int64("citizen_id", citizenID),
			zap.Int64s("relatives", relatives),
			zap.Error(err),
		)
		return fmt.Errorf("add relatives: %w", err)
	}
	return nil
}

// Remove удаляет обе направленные строки каждого ребра одним запросом
func (r *relativeRepository) Remove(ctx context.Context, importID, citizenID int64, relatives []int64) error {
	if len(relatives) == 0 {
		return nil
	}

	query := `
		DELETE FROM relations
		WHERE import_id = $1
		  AND ((unit_id = $2 AND relative_id = ANY($3))
		    OR (relative_id = $2 AND unit_id = ANY($3)))`

	if _, err := r.q.ExecContext(ctx, query, importID, citizenID, pq.Int64Array(relatives)); err != nil {
		r.logger.Error("failed to remove relatives",
			zap.Int64("import_id", importID),
			zap.Int64("citizen_id", citizenID),
			zap.Int64s("relatives", relatives),
			zap.Error(err),
		)
		return fmt.Errorf("remove relatives: %w", err)
	}
	return nil
}

// relationInsertRow - направленная строка для массовой загрузки выгрузки
type relationInsertRow struct {
	ImportID   int64 `db:"import_id"`
	UnitID     int64 `db:"unit_id"`
	RelativeID int64 `db:"relative_id"`
}

func (r *relativeRepository) InsertBatch(ctx context.Context, importID int64, pairs []domain.RelativePair) error {
	if len(pairs) == 0 {
		return nil
	}

	rows := make([]relationInsertRow, 0, len(pairs))
	for _, p := range pairs {
		rows = append(rows, relationInsertRow{
			ImportID:   importID,
			UnitID:     p.UnitID,
			RelativeID: p.RelativeID,
		})
	}

	query := `
		INSERT INTO relations (import_id, unit_id, relative_id)
		VALUES (:import_id, :unit_id, :relative_id)`

	if _, err := r.q.NamedExecContext(ctx, query, rows); err != nil {
		switch {
		case isForeignKeyViolation(err):
			return apperrors.ErrUnknownRelative
		case isUniqueViolation(err):
			return apperrors.ErrImportConflict
		case isCheckViolation(err):
			return apperrors.ErrSelfRelative
		}
		r.logger.Error("failed to insert relations",
			zap.Int64("import_id", importID),
			zap.Int("count", len(pairs)),
			zap.Error(err),
		)
		return fmt.Errorf("insert relations: %w", err)
	}
	return nil
}
