// File: services/availability/cache.go
package availability

import (
	"context"
	"encoding/json"
	"time"

	"lipo/models"
	"lipo/utils"

	"go.uber.org/zap"
)

// templateCacheTTL bounds staleness for cached weekly templates. Overrides
// and bookings are never cached; only the slow-changing template is.
const templateCacheTTL = 5 * time.Minute

func templateCacheKey(providerID string) string {
	return "availability:template:" + providerID
}

// fetchTemplate reads the provider's weekly template through the cache when
// one is configured, falling back to the repository on a miss.
func (s *DefaultAvailabilityService) fetchTemplate(ctx context.Context, providerID string) ([]models.ProviderAvailability, error) {
	if s.Cache == nil {
		return s.Repo.GetWeeklyTemplate(ctx, providerID)
	}

	key := templateCacheKey(providerID)
	if raw, err := s.Cache.Get(ctx, key).Bytes(); err == nil {
		var rows []models.ProviderAvailability
		if err := json.Unmarshal(raw, &rows); err == nil {
			return rows, nil
		}
	}

	rows, err := s.Repo.GetWeeklyTemplate(ctx, providerID)
	if err != nil {
		return nil, err
	}
	if b, err := json.Marshal(rows); err == nil {
		if err := s.Cache.Set(ctx, key, b, templateCacheTTL).Err(); err != nil {
			utils.GetLogger().Warn("template cache write failed",
				zap.String("providerID", providerID), zap.Error(err))
		}
	}
	return rows, nil
}

// invalidateTemplate drops the cached template after a replace so the next
// read sees the new rows immediately.
func (s *DefaultAvailabilityService) invalidateTemplate(ctx context.Context, providerID string) {
	if s.Cache == nil {
		return
	}
	if err := s.Cache.Del(ctx, templateCacheKey(providerID)).Err(); err != nil {
		utils.GetLogger().Warn("template cache invalidation failed",
			zap.String("providerID", providerID), zap.Error(err))
	}
}
