package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/census-microservice/internal/domain"
	"github.com/census-microservice/internal/domain/repository"
)

type cacheRepository struct {
	client *redis.Client
	logger *zap.Logger
}

func NewCacheRepository(redis *Redis) repository.CacheRepository {
	return &cacheRepository{
		client: redis.Client(),
		logger: redis.logger,
	}
}

func (r *cacheRepository) Get(ctx context.Context, key string) ([]byte, error) {
	val, err := r.client.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return nil, nil // Cache miss
	}
	if err != nil {
		r.logger.Error("Failed to get from cache", zap.String("key", key), zap.Error(err))
		return nil, fmt.Errorf("cache get error: %w", err)
	}

	r.logger.Debug("Cache hit", zap.String("key", key))
	return val, nil
}

func (r *cacheRepository) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	err := r.client.Set(ctx, key, value, ttl).Err()
	if err != nil {
		r.logger.Error("Failed to set cache", zap.String("key", key), zap.Error(err))
		return fmt.Errorf("cache set error: %w", err)
	}

	r.logger.Debug("Cache set", zap.String("key", key), zap.Duration("ttl", ttl))
	return nil
}

func (r *cacheRepository) Delete(ctx context.Context, key string) error {
	err := r.client.Del(ctx, key).Err()
	if err != nil {
		r.logger.Error("Failed to delete from cache", zap.String("key", key), zap.Error(err))
		return fmt.Errorf("cache delete error: %w", err)
	}

	r.logger.Debug("Cache deleted", zap.String("key", key))
	return nil
}

func townAgeStatsKey(importID int64) string {
	return fmt.Sprintf("stat:age:%d", importID)
}

// GetTownAgeStats получает перцентили возраста из кеша (nil при промахе)
func (r *cacheRepository) GetTownAgeStats(ctx context.Context, importID int64) ([]domain.TownAgeStat, error) {
	data, err := r.Get(ctx, townAgeStatsKey(importID))
	if err != nil {
		return nil, err
	}
	if data == nil {
		return nil, nil
	}

	var stats []domain.TownAgeStat
	if err := json.Unmarshal(data, &stats); err != nil {
		r.logger.Warn("Failed to unmarshal cached stats", zap.Int64("import_id", importID), zap.Error(err))
		return nil, nil
	}
	return stats, nil
}

// SetTownAgeStats сохраняет перцентили возраста в кеше
func (r *cacheRepository) SetTownAgeStats(ctx context.Context, importID int64, stats []domain.TownAgeStat, ttl time.Duration) error {
	data, err := json.Marshal(stats)
	if err != nil {
		return fmt.Errorf("marshal stats: %w", err)
	}
	return r.Set(ctx, townAgeStatsKey(importID), data, ttl)
}

// InvalidateTownAgeStats сбрасывает кеш после записи в выгрузку
func (r *cacheRepository) InvalidateTownAgeStats(ctx context.Context, importID int64) error {
	return r.Delete(ctx, townAgeStatsKey(importID))
}
