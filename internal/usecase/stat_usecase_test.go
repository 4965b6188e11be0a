package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/census-microservice/internal/domain"
	apperrors "github.com/census-microservice/internal/pkg/errors"
)

const statTTL = 5 * time.Minute

func newStatUseCase(stats *mockStatRepo, imports *mockImportRepo, cache *mockCacheRepo) *StatUseCase {
	return NewStatUseCase(stats, imports, cache, zap.NewNop(), statTTL)
}

func townStats() []domain.TownAgeStat {
	return []domain.TownAgeStat{
		{Town: "Казань", P50: 25, P75: 32.5, P99: 41.99},
		{Town: "Москва", P50: 33, P75: 40, P99: 66.01},
	}
}

func TestStatUseCase_TownAgeStats(t *testing.T) {
	t.Run("import not found", func(t *testing.T) {
		imports := new(mockImportRepo)
		imports.On("Exists", mock.Anything, int64(404)).Return(false, nil)
		uc := newStatUseCase(new(mockStatRepo), imports, new(mockCacheRepo))

		_, err := uc.TownAgeStats(context.Background(), 404)
		assert.ErrorIs(t, err, apperrors.ErrImportNotFound)
	})

	t.Run("cache hit skips database", func(t *testing.T) {
		imports := new(mockImportRepo)
		stats := new(mockStatRepo)
		cache := new(mockCacheRepo)
		uc := newStatUseCase(stats, imports, cache)

		imports.On("Exists", mock.Anything, int64(1)).Return(true, nil)
		cache.On("GetTownAgeStats", mock.Anything, int64(1)).Return(townStats(), nil)

		got, err := uc.TownAgeStats(context.Background(), 1)
		require.NoError(t, err)
		assert.Equal(t, townStats(), got)
		stats.AssertNotCalled(t, "TownAgePercentiles", mock.Anything, mock.Anything)
	})

	t.Run("cache miss queries and caches", func(t *testing.T) {
		imports := new(mockImportRepo)
		stats := new(mockStatRepo)
		cache := new(mockCacheRepo)
		uc := newStatUseCase(stats, imports, cache)

		imports.On("Exists", mock.Anything, int64(1)).Return(true, nil)
		cache.On("GetTownAgeStats", mock.Anything, int64(1)).Return(nil, nil)
		stats.On("TownAgePercentiles", mock.Anything, int64(1)).Return(townStats(), nil)
		cache.On("SetTownAgeStats", mock.Anything, int64(1), townStats(), statTTL).Return(nil)

		got, err := uc.TownAgeStats(context.Background(), 1)
		require.NoError(t, err)
		assert.Equal(t, townStats(), got)
		cache.AssertExpectations(t)
	})

	t.Run("cache errors fall through to database", func(t *testing.T) {
		imports := new(mockImportRepo)
		stats := new(mockStatRepo)
		cache := new(mockCacheRepo)
		uc := newStatUseCase(stats, imports, cache)

		imports.On("Exists", mock.Anything, int64(1)).Return(true, nil)
		cache.On("GetTownAgeStats", mock.Anything, int64(1)).Return(nil, errors.New("redis down"))
		stats.On("TownAgePercentiles", mock.Anything, int64(1)).Return(townStats(), nil)
		cache.On("SetTownAgeStats", mock.Anything, int64(1), townStats(), statTTL).
			Return(errors.New("redis down"))

		got, err := uc.TownAgeStats(context.Background(), 1)
		require.NoError(t, err)
		assert.Len(t, got, 2)
	})

	t.Run("database failure", func(t *testing.T) {
		imports := new(mockImportRepo)
		stats := new(mockStatRepo)
		cache := new(mockCacheRepo)
		uc := newStatUseCase(stats, imports, cache)

		imports.On("Exists", mock.Anything, int64(1)).Return(true, nil)
		cache.On("GetTownAgeStats", mock.Anything, int64(1)).Return(nil, nil)
		stats.On("TownAgePercentiles", mock.Anything, int64(1)).Return(nil, errors.New("timeout"))

		_, err := uc.TownAgeStats(context.Background(), 1)
		assert.ErrorIs(t, err, apperrors.ErrDatabaseError)
	})
}
