package usecase

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/census-microservice/internal/domain"
	"github.com/census-microservice/internal/domain/repository"
	"github.com/census-microservice/internal/pkg/metrics"
)

// testMetrics регистрируется в глобальном реестре prometheus один раз
// на весь пакет, повторный metrics.New() в каждом тесте вызвал бы панику
var testMetrics = metrics.New()

type mockCitizenRepo struct {
	mock.Mock
}

func (m *mockCitizenRepo) Get(ctx context.Context, importID, citizenID int64) (*domain.Citizen, error) {
	args := m.Called(ctx, importID, citizenID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Citizen), args.Error(1)
}

func (m *mockCitizenRepo) ListByImport(ctx context.Context, importID int64) ([]domain.Citizen, error) {
	args := m.Called(ctx, importID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Citizen), args.Error(1)
}

func (m *mockCitizenRepo) Update(ctx context.Context, importID, citizenID int64, upd domain.CitizenUpdate) error {
	args := m.Called(ctx, importID, citizenID, upd)
	return args.Error(0)
}

func (m *mockCitizenRepo) InsertBatch(ctx context.Context, importID int64, citizens []domain.Citizen) error {
	args := m.Called(ctx, importID, citizens)
	return args.Error(0)
}

type mockRelativeRepo struct {
	mock.Mock
}

func (m *mockRelativeRepo) Add(ctx context.Context, importID, citizenID int64, relatives []int64) error {
	args := m.Called(ctx, importID, citizenID, relatives)
	return args.Error(0)
}

func (m *mockRelativeRepo) Remove(ctx context.Context, importID, citizenID int64, relatives []int64) error {
	args := m.Called(ctx, importID, citizenID, relatives)
	return args.Error(0)
}

func (m *mockRelativeRepo) InsertBatch(ctx context.Context, importID int64, pairs []domain.RelativePair) error {
	args := m.Called(ctx, importID, pairs)
	return args.Error(0)
}

type mockImportRepo struct {
	mock.Mock
}

func (m *mockImportRepo) Create(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockImportRepo) Exists(ctx context.Context, importID int64) (bool, error) {
	args := m.Called(ctx, importID)
	return args.Bool(0), args.Error(1)
}

func (m *mockImportRepo) ListRecent(ctx context.Context, limit int) ([]int64, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]int64), args.Error(1)
}

type mockStatRepo struct {
	mock.Mock
}

func (m *mockStatRepo) TownAgePercentiles(ctx context.Context, importID int64) ([]domain.TownAgeStat, error) {
	args := m.Called(ctx, importID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.TownAgeStat), args.Error(1)
}

type mockCacheRepo struct {
	mock.Mock
}

func (m *mockCacheRepo) Get(ctx context.Context, key string) ([]byte, error) {
	args := m.Called(ctx, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

func (m *mockCacheRepo) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	args := m.Called(ctx, key, value, ttl)
	return args.Error(0)
}

func (m *mockCacheRepo) Delete(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

func (m *mockCacheRepo) GetTownAgeStats(ctx context.Context, importID int64) ([]domain.TownAgeStat, error) {
	args := m.Called(ctx, importID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.TownAgeStat), args.Error(1)
}

func (m *mockCacheRepo) SetTownAgeStats(ctx context.Context, importID int64, stats []domain.TownAgeStat, ttl time.Duration) error {
	args := m.Called(ctx, importID, stats, ttl)
	return args.Error(0)
}

func (m *mockCacheRepo) InvalidateTownAgeStats(ctx context.Context, importID int64) error {
	args := m.Called(ctx, importID)
	return args.Error(0)
}

// stubStores отдает мок-репозитории как единицу работы одной транзакции
type stubStores struct {
	citizens  *mockCitizenRepo
	relatives *mockRelativeRepo
	imports   *mockImportRepo
}

func (s *stubStores) Citizens() repository.CitizenRepository   { return s.citizens }
func (s *stubStores) Relatives() repository.RelativeRepository { return s.relatives }
func (s *stubStores) Imports() repository.ImportRepository     { return s.imports }

// stubTxManager выполняет fn синхронно без реальной транзакции и
// запоминает ключи взятых эксклюзивных секций
type stubTxManager struct {
	stores   *stubStores
	beginErr error

	lockedImports []int64
	txCount       int
}

func (m *stubTxManager) WithinImport(_ context.Context, importID int64, fn func(s repository.Stores) error) error {
	if m.beginErr != nil {
		return m.beginErr
	}
	m.lockedImports = append(m.lockedImports, importID)
	return fn(m.stores)
}

func (m *stubTxManager) RunInTx(_ context.Context, fn func(s repository.Stores) error) error {
	if m.beginErr != nil {
		return m.beginErr
	}
	m.txCount++
	return fn(m.stores)
}

func newStubTx() *stubTxManager {
	return &stubTxManager{stores: &stubStores{
		citizens:  new(mockCitizenRepo),
		relatives: new(mockRelativeRepo),
		imports:   new(mockImportRepo),
	}}
}
