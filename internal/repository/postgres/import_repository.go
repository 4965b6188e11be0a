package postgres

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/census-microservice/internal/domain/repository"
)

type importRepository struct {
	q      Querier
	logger *zap.Logger
}

// NewImportRepository создает репозиторий выгрузок
func NewImportRepository(db *DB, logger *zap.Logger) repository.ImportRepository {
	return &importRepository{q: db.DB, logger: logger}
}

func (r *importRepository) Create(ctx context.Context) (int64, error) {
	var importID int64
	query := `INSERT INTO imports DEFAULT VALUES RETURNING import_id`

	if err := r.q.GetContext(ctx, &importID, query); err != nil {
		r.logger.Error("failed to create import", zap.Error(err))
		return 0, fmt.Errorf("create import: %w", err)
	}
	return importID, nil
}

func (r *importRepository) ListRecent(ctx context.Context, limit int) ([]int64, error) {
	var ids []int64
	query := `SELECT import_id FROM imports ORDER BY import_id DESC LIMIT $1`

	if err := r.q.SelectContext(ctx, &ids, query, limit); err != nil {
		r.logger.Error("failed to list recent imports", zap.Int("limit", limit), zap.Error(err))
		return nil, fmt.Errorf("list recent imports: %w", err)
	}
	return ids, nil
}

func (r *importRepository) Exists(ctx context.Context, importID int64) (bool, error) {
	var exists bool
	query := `SELECT EXISTS (SELECT 1 FROM imports WHERE import_id = $1)`

	if err := r.q.GetContext(ctx, &exists, query, importID); err != nil {
		r.logger.Error("failed to check import", zap.Int64("import_id", importID), zap.Error(err))
		return false, fmt.Errorf("check import: %w", err)
	}
	return exists, nil
}
