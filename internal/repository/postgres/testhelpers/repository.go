package testhelpers

import (
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"github.com/census-microservice/internal/domain/repository"
	"github.com/census-microservice/internal/repository/postgres"
)

// NewDBForTest creates a postgres.DB with test database and logger
func NewDBForTest(db *sqlx.DB, logger *zap.Logger) *postgres.DB {
	return postgres.NewDBForTest(db, logger)
}

// NewCitizenRepositoryForTest creates a citizen repository with test database and logger
func NewCitizenRepositoryForTest(db *sqlx.DB, logger *zap.Logger) repository.CitizenRepository {
	pgDB := NewDBForTest(db, logger)
	return postgres.NewCitizenRepository(pgDB, logger)
}

// NewRelativeRepositoryForTest creates a relative repository with test database and logger
func NewRelativeRepositoryForTest(db *sqlx.DB, logger *zap.Logger) repository.RelativeRepository {
	pgDB := NewDBForTest(db, logger)
	return postgres.NewRelativeRepository(pgDB, logger)
}

// NewImportRepositoryForTest creates an import repository with test database and logger
func NewImportRepositoryForTest(db *sqlx.DB, logger *zap.Logger) repository.ImportRepository {
	pgDB := NewDBForTest(db, logger)
	return postgres.NewImportRepository(pgDB, logger)
}

// NewStatRepositoryForTest creates a stat repository with test database and logger
func NewStatRepositoryForTest(db *sqlx.DB, logger *zap.Logger) repository.StatRepository {
	pgDB := NewDBForTest(db, logger)
	return postgres.NewStatRepository(pgDB, logger)
}

// NewTxManagerForTest creates a transaction manager with test database and logger
func NewTxManagerForTest(db *sqlx.DB, logger *zap.Logger) repository.TxManager {
	pgDB := NewDBForTest(db, logger)
	return postgres.NewTxManager(pgDB, logger)
}
