package postgres_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/census-microservice/internal/domain"
	"github.com/census-microservice/internal/domain/repository"
	apperrors "github.com/census-microservice/internal/pkg/errors"
	"github.com/census-microservice/internal/repository/postgres/testhelpers"
)

type RelativeRepositoryTestSuite struct {
	suite.Suite
	tdb  *testhelpers.TestDB
	repo repository.RelativeRepository
	ctx  context.Context
}

func (s *RelativeRepositoryTestSuite) SetupSuite() {
	s.tdb = testhelpers.SetupTestDB(s.T())
	s.Require().NoError(testhelpers.ApplyMigrations(s.tdb.DB.DB))
	s.repo = testhelpers.NewRelativeRepositoryForTest(s.tdb.DB, s.tdb.Logger)
	s.ctx = context.Background()
}

func (s *RelativeRepositoryTestSuite) TearDownSuite() {
	s.tdb.Close()
}

func (s *RelativeRepositoryTestSuite) SetupTest() {
	s.Require().NoError(s.tdb.Cleanup(s.ctx))
	s.Require().NoError(testhelpers.SeedImport(s.tdb.DB.DB, 100, []testhelpers.SeedCitizen{
		testhelpers.DefaultCitizen(1),
		testhelpers.DefaultCitizen(2),
		testhelpers.DefaultCitizen(3),
	}))
}

// edgeExists проверяет наличие одной направленной строки ребра
func (s *RelativeRepositoryTestSuite) edgeExists(importID, unitID, relativeID int64) bool {
	var exists bool
	err := s.tdb.DB.GetContext(s.ctx, &exists, `
		SELECT EXISTS (
			SELECT 1 FROM relations
			WHERE import_id = $1 AND unit_id = $2 AND relative_id = $3
		)`, importID, unitID, relativeID)
	s.Require().NoError(err)
	return exists
}

func (s *RelativeRepositoryTestSuite) edgeCount(importID int64) int {
	var count int
	err := s.tdb.DB.GetContext(s.ctx, &count,
		"SELECT COUNT(*) FROM relations WHERE import_id = $1", importID)
	s.Require().NoError(err)
	return count
}

func (s *RelativeRepositoryTestSuite) TestAdd_SymmetricRows() {
	s.Require().NoError(s.repo.Add(s.ctx, 100, 1, []int64{2, 3}))

	// Каждое ребро хранится парой направленных строк
	s.True(s.edgeExists(100, 1, 2))
	s.True(s.edgeExists(100, 2, 1))
	s.True(s.edgeExists(100, 1, 3))
	s.True(s.edgeExists(100, 3, 1))
	s.Equal(4, s.edgeCount(100))
}

func (s *RelativeRepositoryTestSuite) TestAdd_UnknownRelative() {
	err := s.repo.Add(s.ctx, 100, 1, []int64{42})
	s.ErrorIs(err, apperrors.ErrUnknownRelative)

	// Один запрос - одна атомарная вставка: половинки ребра не остаются
	s.Equal(0, s.edgeCount(100))
}

func (s *RelativeRepositoryTestSuite) TestAdd_SelfEdge() {
	err := s.repo.Add(s.ctx, 100, 1, []int64{1})
	s.ErrorIs(err, apperrors.ErrSelfRelative)
	s.Equal(0, s.edgeCount(100))
}

func (s *RelativeRepositoryTestSuite) TestAdd_Empty() {
	s.NoError(s.repo.Add(s.ctx, 100, 1, nil))
	s.Equal(0, s.edgeCount(100))
}

func (s *RelativeRepositoryTestSuite) TestRemove_BothDirections() {
	s.Require().NoError(testhelpers.SeedRelation(s.tdb.DB.DB, 100, 1, 2))
	s.Require().NoError(testhelpers.SeedRelation(s.tdb.DB.DB, 100, 2, 3))

	s.Require().NoError(s.repo.Remove(s.ctx, 100, 1, []int64{2}))

	s.False(s.edgeExists(100, 1, 2))
	s.False(s.edgeExists(100, 2, 1))

	// Чужие рёбра не затронуты
	s.True(s.edgeExists(100, 2, 3))
	s.True(s.edgeExists(100, 3, 2))
}

func (s *RelativeRepositoryTestSuite) TestRemove_Empty() {
	s.Require().NoError(testhelpers.SeedRelation(s.tdb.DB.DB, 100, 1, 2))
	s.NoError(s.repo.Remove(s.ctx, 100, 1, nil))
	s.Equal(2, s.edgeCount(100))
}

func (s *RelativeRepositoryTestSuite) TestInsertBatch_DuplicateRow() {
	pairs := []domain.RelativePair{
		{UnitID: 1, RelativeID: 2},
		{UnitID: 1, RelativeID: 2},
		{UnitID: 2, RelativeID: 1},
	}
	err := s.repo.InsertBatch(s.ctx, 100, pairs)
	s.ErrorIs(err, apperrors.ErrImportConflict)
}

func (s *RelativeRepositoryTestSuite) TestRemove_MissingEdgeIsNoop() {
	s.NoError(s.repo.Remove(s.ctx, 100, 1, []int64{3}))
	s.Equal(0, s.edgeCount(100))
}

func TestRelativeRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(RelativeRepositoryTestSuite))
}
