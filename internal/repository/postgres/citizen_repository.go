package postgres

import (
	"context"
	"fmt"
	"strings"

	"github.com/lib/pq"
	"go.uber.org/zap"

	"github.com/census-microservice/internal/domain"
	"github.com/census-microservice/internal/domain/repository"
	apperrors "github.com/census-microservice/internal/pkg/errors"
)

type citizenRepository struct {
	q      Querier
	logger *zap.Logger
}

// NewCitizenRepository создает репозиторий жителей поверх пула соединений
func NewCitizenRepository(db *DB, logger *zap.Logger) repository.CitizenRepository {
	return &citizenRepository{q: db.DB, logger: logger}
}

// citizenQuery собирает жителя вместе с его множеством родственников.
// relative_id агрегируется в массив, пустое множество - пустой массив.
const citizenQuery = `
	SELECT u.unit_id, u.name, u.date, u.type, u.town, u.street, u.building, u.apartment,
	       COALESCE(
	           array_agg(r.relative_id ORDER BY r.relative_id)
	               FILTER (WHERE r.relative_id IS NOT NULL),
	           '{}'
	       ) AS relatives
	FROM units u
	LEFT JOIN relations r
	       ON r.import_id = u.import_id AND r.unit_id = u.unit_id
	WHERE u.import_id = $1%s
	GROUP BY u.import_id, u.unit_id
	ORDER BY u.unit_id`

// citizenRow - строка выборки, relatives сканируется из Postgres-массива
type citizenRow struct {
	domain.Citizen
	RelativeIDs pq.Int64Array `db:"relatives"`
}

func (row citizenRow) toDomain() domain.Citizen {
	c := row.Citizen
	c.Relatives = make([]int64, len(row.RelativeIDs))
	copy(c.Relatives, row.RelativeIDs)
	return c
}

func (r *citizenRepository) Get(ctx context.Context, importID, citizenID int64) (*domain.Citizen, error) {
	query := fmt.Sprintf(citizenQuery, " AND u.unit_id = $2")

	var row citizenRow
	if err := r.q.GetContext(ctx, &row, query, importID, citizenID); err != nil {
		if isNoRows(err) {
			return nil, apperrors.ErrCitizenNotFound
		}
		r.logger.Error("failed to get citizen",
			zap.Int64("import_id", importID),
			zap.Int64("citizen_id", citizenID),
			zap.Error(err),
		)
		return nil, fmt.Errorf("get citizen: %w", err)
	}

	citizen := row.toDomain()
	return &citizen, nil
}

func (r *citizenRepository) ListByImport(ctx context.Context, importID int64) ([]domain.Citizen, error) {
	query := fmt.Sprintf(citizenQuery, "")

	var rows []citizenRow
	if err := r.q.SelectContext(ctx, &rows, query, importID); err != nil {
		r.logger.Error("failed to list citizens", zap.Int64("import_id", importID), zap.Error(err))
		return nil, fmt.Errorf("list citizens: %w", err)
	}

	citizens := make([]domain.Citizen, 0, len(rows))
	for _, row := range rows {
		citizens = append(citizens, row.toDomain())
	}
	return citizens, nil
}

func (r *citizenRepository) Update(ctx context.Context, importID, citizenID int64, upd domain.CitizenUpdate) error {
	if upd.IsEmpty() {
		return nil
	}

	set := make([]string, 0, 7)
	args := make([]interface{}, 0, 9)

	add := func(column string, value interface{}) {
		args = append(args, value)
		set = append(set, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if upd.Name != nil {
		add("name", *upd.Name)
	}
	if upd.Date != nil {
		add("date", *upd.Date)
	}
	if upd.Type != nil {
		add("type", *upd.Type)
	}
	if upd.Town != nil {
		add("town", *upd.Town)
	}
	if upd.Street != nil {
		add("street", *upd.Street)
	}
	if upd.Building != nil {
		add("building", *upd.Building)
	}
	if upd.Apartment != nil {
		add("apartment", *upd.Apartment)
	}

	args = append(args, importID, citizenID)
	query := fmt.Sprintf(
		"UPDATE units SET %s WHERE import_id = $%d AND unit_id = $%d",
		strings.Join(set, ", "), len(args)-1, len(args),
	)

	if _, err := r.q.ExecContext(ctx, query, args...); err != nil {
		r.logger.Error("failed to update citizen",
			zap.Int64("import_id", importID),
			zap.Int64("citizen_id", citizenID),
			zap.Error(err),
		)
		return fmt.Errorf("update citizen: %w", err)
	}
	return nil
}

// unitInsertRow - строка для массовой вставки жителей
type unitInsertRow struct {
	ImportID  int64           `db:"import_id"`
	UnitID    int64           `db:"unit_id"`
	Name      string          `db:"name"`
	Date      domain.Date     `db:"date"`
	Type      domain.UnitType `db:"type"`
	Town      string          `db:"town"`
	Street    string          `db:"street"`
	Building  string          `db:"building"`
	Apartment int64           `db:"apartment"`
}

func (r *citizenRepository) InsertBatch(ctx context.Context, importID int64, citizens []domain.Citizen) error {
	if len(citizens) == 0 {
		return nil
	}

	rows := make([]unitInsertRow, 0, len(citizens))
	for _, c := range citizens {
		rows = append(rows, unitInsertRow{
			ImportID:  importID,
			UnitID:    c.UnitID,
			Name:      c.Name,
			Date:      c.Date,
			Type:      c.Type,
			Town:      c.Town,
			Street:    c.Street,
			Building:  c.Building,
			Apartment: c.Apartment,
		})
	}

	query := `
		INSERT INTO units (import_id, unit_id, name, date, type, town, street, building, apartment)
		VALUES (:import_id, :unit_id, :name, :date, :type, :town, :street, :building, :apartment)`

	if _, err := r.q.NamedExecContext(ctx, query, rows); err != nil {
		if isUniqueViolation(err) {
			return apperrors.ErrImportConflict
		}
		r.logger.Error("failed to insert citizens",
			zap.Int64("import_id", importID),
			zap.Int("count", len(citizens)),
			zap.Error(err),
		)
		return fmt.Errorf("insert citizens: %w", err)
	}
	return nil
}
