package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"github.com/census-microservice/internal/domain/repository"
)

type txManager struct {
	db     *DB
	logger *zap.Logger
}

// NewTxManager создает транзакционную границу поверх пула соединений
func NewTxManager(db *DB, logger *zap.Logger) repository.TxManager {
	return &txManager{db: db, logger: logger}
}

// txStores отдает репозитории, привязанные к одной открытой транзакции
type txStores struct {
	tx     *sqlx.Tx
	logger *zap.Logger
}

func (s *txStores) Citizens() repository.CitizenRepository {
	return &citizenRepository{q: s.tx, logger: s.logger}
}

func (s *txStores) Relatives() repository.RelativeRepository {
	return &relativeRepository{q: s.tx, logger: s.logger}
}

func (s *txStores) Imports() repository.ImportRepository {
	return &importRepository{q: s.tx, logger: s.logger}
}

func (m *txManager) RunInTx(ctx context.Context, fn func(s repository.Stores) error) error {
	return m.run(ctx, 0, false, fn)
}

// WithinImport сериализует конкурентные изменения одной выгрузки:
// транзакция сперва блокируется на pg_advisory_xact_lock(importID) и
// держит секцию до commit/rollback. Отмена контекста снимает и
// транзакцию, и секцию - незавершённые изменения графа не видны никому.
func (m *txManager) WithinImport(ctx context.Context, importID int64, fn func(s repository.Stores) error) error {
	return m.run(ctx, importID, true, fn)
}

func (m *txManager) run(ctx context.Context, importID int64, lock bool, fn func(s repository.Stores) error) error {
	tx, err := m.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer func() {
		// no-op после успешного commit
		_ = tx.Rollback()
	}()

	if lock {
		if _, err := tx.ExecContext(ctx, "SELECT pg_advisory_xact_lock($1)", importID); err != nil {
			return fmt.Errorf("acquire import lock: %w", err)
		}
		m.logger.Debug("import lock acquired", zap.Int64("import_id", importID))
	}

	if err := fn(&txStores{tx: tx, logger: m.logger}); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}
	return nil
}
