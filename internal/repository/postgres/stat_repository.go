package postgres

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/census-microservice/internal/domain"
	"github.com/census-microservice/internal/domain/repository"
)

type statRepository struct {
	q      Querier
	logger *zap.Logger
}

// NewStatRepository создает репозиторий агрегатных запросов
func NewStatRepository(db *DB, logger *zap.Logger) repository.StatRepository {
	return &statRepository{q: db.DB, logger: logger}
}

// TownAgePercentiles считает p50/p75/p99 возраста жителей по городам.
// Возраст - полные годы между датой регистрации и текущим моментом UTC,
// перцентили интерполируются и округляются до двух знаков.
func (r *statRepository) TownAgePercentiles(ctx context.Context, importID int64) ([]domain.TownAgeStat, error) {
	query := `
		SELECT town,
		       ROUND((percentile_cont(0.5)  WITHIN GROUP (ORDER BY age))::numeric, 2)::float8 AS p50,
		       ROUND((percentile_cont(0.75) WITHIN GROUP (ORDER BY age))::numeric, 2)::float8 AS p75,
		       ROUND((percentile_cont(0.99) WITHIN GROUP (ORDER BY age))::numeric, 2)::float8 AS p99
		FROM (
		    SELECT town,
		           date_part('year', age(TIMEZONE('utc', CURRENT_TIMESTAMP), date)) AS age
		    FROM units
		    WHERE import_id = $1
		) AS unit_ages
		GROUP BY town
		ORDER BY town`

	var stats []domain.TownAgeStat
	if err := r.q.SelectContext(ctx, &stats, query, importID); err != nil {
		r.logger.Error("failed to query age percentiles",
			zap.Int64("import_id", importID),
			zap.Error(err),
		)
		return nil, fmt.Errorf("town age percentiles: %w", err)
	}
	return stats, nil
}
