package discovery

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"time"

	"pawmi/config"
	walkerRepo "pawmi/database/repository/walker"
	"pawmi/models"
	"pawmi/utils"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// DefaultMaxHourlyRate is the price ceiling applied when a request leaves it
// unset, mirroring the client's default filter state (COP).
const DefaultMaxHourlyRate = 50000

// DiscoveryService runs walker searches over the active pool.
type DiscoveryService interface {
	SearchWalkers(filters models.SearchFilters, location *models.Coordinate) ([]models.WalkerResult, error)
}

// DefaultDiscoveryService implements DiscoveryService with a Redis cache in
// front of the repository. Search itself stays pure; only the pool fetch and
// result caching touch I/O.
type DefaultDiscoveryService struct {
	WalkerRepo walkerRepo.WalkerRepository
	Cache      *redis.Client
}

// SearchWalkers loads the active walker pool, applies the filter pipeline and
// caches the ordered result keyed by the request.
func (s *DefaultDiscoveryService) SearchWalkers(filters models.SearchFilters, location *models.Coordinate) ([]models.WalkerResult, error) {
	if filters.MaxHourlyRate <= 0 {
		filters.MaxHourlyRate = DefaultMaxHourlyRate
	}

	key, keyErr := cacheKey(filters, location)
	useCache := keyErr == nil && s.Cache != nil
	if useCache {
		if cached, found := s.cachedResults(key); found {
			return cached, nil
		}
	}

	walkers, err := s.WalkerRepo.ListActive()
	if err != nil {
		return nil, err
	}

	results := Search(walkers, filters, location)

	if useCache {
		s.storeResults(key, results)
	}
	return results, nil
}

func cacheKey(filters models.SearchFilters, location *models.Coordinate) (string, error) {
	payload, err := json.Marshal(struct {
		Filters  models.SearchFilters `json:"filters"`
		Location *models.Coordinate   `json:"location"`
	}{filters, location})
	if err != nil {
		return "", err
	}
	sum := sha256.Sum256(payload)
	return "walker_search:" + hex.EncodeToString(sum[:]), nil
}

func (s *DefaultDiscoveryService) cachedResults(key string) ([]models.WalkerResult, bool) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	data, err := s.Cache.Get(ctx, key).Result()
	if err != nil {
		return nil, false
	}
	var results []models.WalkerResult
	if err := json.Unmarshal([]byte(data), &results); err != nil {
		utils.GetLogger().Warn("failed to decode cached search results", zap.Error(err))
		return nil, false
	}
	return results, true
}

func (s *DefaultDiscoveryService) storeResults(key string, results []models.WalkerResult) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	data, err := json.Marshal(results)
	if err != nil {
		return
	}
	ttl := time.Duration(config.AppConfig.SearchCacheTTL) * time.Second
	if err := s.Cache.Set(ctx, key, data, ttl).Err(); err != nil {
		utils.GetLogger().Warn("failed to cache search results", zap.Error(err))
	}
}
