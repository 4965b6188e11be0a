package postgres_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/census-microservice/internal/domain"
	"github.com/census-microservice/internal/domain/repository"
	"github.com/census-microservice/internal/repository/postgres/testhelpers"
)

type StatRepositoryTestSuite struct {
	suite.Suite
	tdb  *testhelpers.TestDB
	repo repository.StatRepository
	ctx  context.Context
}

func (s *StatRepositoryTestSuite) SetupSuite() {
	s.tdb = testhelpers.SetupTestDB(s.T())
	s.Require().NoError(testhelpers.ApplyMigrations(s.tdb.DB.DB))
	s.repo = testhelpers.NewStatRepositoryForTest(s.tdb.DB, s.tdb.Logger)
	s.ctx = context.Background()
}

func (s *StatRepositoryTestSuite) TearDownSuite() {
	s.tdb.Close()
}

func (s *StatRepositoryTestSuite) SetupTest() {
	s.Require().NoError(s.tdb.Cleanup(s.ctx))
}

// aged возвращает дату регистрации, дающую ровно years полных лет на сегодня
func aged(years int) string {
	return time.Now().UTC().AddDate(-years, 0, 0).Format(domain.DateLayout)
}

func (s *StatRepositoryTestSuite) seedAges(importID int64, town string, startID int64, years ...int) {
	citizens := make([]testhelpers.SeedCitizen, 0, len(years))
	for i, y := range years {
		c := testhelpers.DefaultCitizen(startID + int64(i))
		c.Town = town
		c.Date = aged(y)
		citizens = append(citizens, c)
	}
	s.Require().NoError(testhelpers.SeedImport(s.tdb.DB.DB, importID, citizens))
}

func (s *StatRepositoryTestSuite) TestTownAgePercentiles() {
	s.seedAges(100, "Moscow", 1, 10, 20, 30)

	stats, err := s.repo.TownAgePercentiles(s.ctx, 100)
	s.Require().NoError(err)
	s.Require().Len(stats, 1)

	// percentile_cont интерполирует между соседними значениями
	s.Equal("Moscow", stats[0].Town)
	s.InDelta(20.0, stats[0].P50, 0.001)
	s.InDelta(25.0, stats[0].P75, 0.001)
	s.InDelta(29.8, stats[0].P99, 0.001)
}

func (s *StatRepositoryTestSuite) TestTownAgePercentiles_SingleCitizen() {
	s.seedAges(100, "Kazan", 1, 40)

	stats, err := s.repo.TownAgePercentiles(s.ctx, 100)
	s.Require().NoError(err)
	s.Require().Len(stats, 1)
	s.InDelta(40.0, stats[0].P50, 0.001)
	s.InDelta(40.0, stats[0].P75, 0.001)
	s.InDelta(40.0, stats[0].P99, 0.001)
}

func (s *StatRepositoryTestSuite) TestTownAgePercentiles_OrderedByTown() {
	moscow := testhelpers.DefaultCitizen(1)
	moscow.Town = "Moscow"
	moscow.Date = aged(30)
	kazan := testhelpers.DefaultCitizen(2)
	kazan.Town = "Kazan"
	kazan.Date = aged(20)
	s.Require().NoError(testhelpers.SeedImport(s.tdb.DB.DB, 100,
		[]testhelpers.SeedCitizen{moscow, kazan}))

	stats, err := s.repo.TownAgePercentiles(s.ctx, 100)
	s.Require().NoError(err)
	s.Require().Len(stats, 2)
	s.Equal("Kazan", stats[0].Town)
	s.Equal("Moscow", stats[1].Town)
}

func (s *StatRepositoryTestSuite) TestTownAgePercentiles_Empty() {
	s.Require().NoError(testhelpers.SeedImport(s.tdb.DB.DB, 100, nil))

	stats, err := s.repo.TownAgePercentiles(s.ctx, 100)
	s.Require().NoError(err)
	s.Empty(stats)
}

func (s *StatRepositoryTestSuite) TestTownAgePercentiles_ScopedToImport() {
	s.seedAges(100, "Moscow", 1, 30)
	s.seedAges(101, "Moscow", 1, 50)

	stats, err := s.repo.TownAgePercentiles(s.ctx, 100)
	s.Require().NoError(err)
	s.Require().Len(stats, 1)
	s.InDelta(30.0, stats[0].P50, 0.001)
}

func TestStatRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(StatRepositoryTestSuite))
}
