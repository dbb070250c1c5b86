package services

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"immowaechter-http-service/internal/infrastructure/config"

	"github.com/go-redis/redis/v8"
)

// RedisService handles Redis operations
type RedisService struct {
	Client *redis.Client
	Ctx    context.Context
}

// NewRedisService creates a new Redis service
func NewRedisService(cfg *config.Config) *RedisService {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.GetRedisAddr(),
		Password: "",
		DB:       cfg.RedisDB,
	})

	return &RedisService{
		Client: client,
		Ctx:    context.Background(),
	}
}

// Set sets a key-value pair with expiration
func (s *RedisService) Set(key string, value interface{}, expiration time.Duration) error {
	jsonValue, err := json.Marshal(value)
	if err != nil {
		return err
	}

	return s.Client.Set(s.Ctx, key, jsonValue, expiration).Err()
}

// Get gets a value by key into dest
func (s *RedisService) Get(key string, dest interface{}) error {
	val, err := s.Client.Get(s.Ctx, key).Result()
	if err != nil {
		return err
	}

	return json.Unmarshal([]byte(val), dest)
}

// Delete deletes a key
func (s *RedisService) Delete(key string) error {
	return s.Client.Del(s.Ctx, key).Err()
}

// CacheRiskSummary caches an owner's dashboard summary
func (s *RedisService) CacheRiskSummary(ownerID uint, summary interface{}, expiration time.Duration) error {
	return s.Set(fmt.Sprintf("risk_summary:%d", ownerID), summary, expiration)
}

// GetRiskSummary reads an owner's cached dashboard summary
func (s *RedisService) GetRiskSummary(ownerID uint, dest interface{}) error {
	return s.Get(fmt.Sprintf("risk_summary:%d", ownerID), dest)
}

// InvalidateRiskSummary drops an owner's cached dashboard summary
func (s *RedisService) InvalidateRiskSummary(ownerID uint) error {
	return s.Delete(fmt.Sprintf("risk_summary:%d", ownerID))
}

// CacheRiskTrend caches a trend series for an owner/property/timeframe triple
func (s *RedisService) CacheRiskTrend(ownerID uint, propertyID uint, timeframe string, series interface{}, expiration time.Duration) error {
	return s.Set(fmt.Sprintf("risk_trend:%d:%d:%s", ownerID, propertyID, timeframe), series, expiration)
}

// GetRiskTrend reads a cached trend series
func (s *RedisService) GetRiskTrend(ownerID uint, propertyID uint, timeframe string, dest interface{}) error {
	return s.Get(fmt.Sprintf("risk_trend:%d:%d:%s", ownerID, propertyID, timeframe), dest)
}
