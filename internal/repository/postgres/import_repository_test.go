package postgres_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/census-microservice/internal/domain/repository"
	"github.com/census-microservice/internal/repository/postgres/testhelpers"
)

type ImportRepositoryTestSuite struct {
	suite.Suite
	tdb  *testhelpers.TestDB
	repo repository.ImportRepository
	ctx  context.Context
}

func (s *ImportRepositoryTestSuite) SetupSuite() {
	s.tdb = testhelpers.SetupTestDB(s.T())
	s.Require().NoError(testhelpers.ApplyMigrations(s.tdb.DB.DB))
	s.repo = testhelpers.NewImportRepositoryForTest(s.tdb.DB, s.tdb.Logger)
	s.ctx = context.Background()
}

func (s *ImportRepositoryTestSuite) TearDownSuite() {
	s.tdb.Close()
}

func (s *ImportRepositoryTestSuite) SetupTest() {
	s.Require().NoError(s.tdb.Cleanup(s.ctx))
}

func (s *ImportRepositoryTestSuite) TestCreate() {
	first, err := s.repo.Create(s.ctx)
	s.Require().NoError(err)
	s.Positive(first)

	second, err := s.repo.Create(s.ctx)
	s.Require().NoError(err)
	s.Greater(second, first)
}

func (s *ImportRepositoryTestSuite) TestExists() {
	id, err := s.repo.Create(s.ctx)
	s.Require().NoError(err)

	exists, err := s.repo.Exists(s.ctx, id)
	s.Require().NoError(err)
	s.True(exists)

	exists, err = s.repo.Exists(s.ctx, id+100500)
	s.Require().NoError(err)
	s.False(exists)
}

func (s *ImportRepositoryTestSuite) TestListRecent() {
	var ids []int64
	for i := 0; i < 3; i++ {
		id, err := s.repo.Create(s.ctx)
		s.Require().NoError(err)
		ids = append(ids, id)
	}

	recent, err := s.repo.ListRecent(s.ctx, 2)
	s.Require().NoError(err)
	s.Equal([]int64{ids[2], ids[1]}, recent)
}

func TestImportRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(ImportRepositoryTestSuite))
}
