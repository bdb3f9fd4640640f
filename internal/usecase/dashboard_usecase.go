package usecase

import (
	"context"
	"encoding/json"
	"time"
)

const (
	statsCacheKey = "dashboard:stats"
	statsCacheTTL = 30 * time.Second
)

// DashboardUseCase serves the dashboard read model.
type DashboardUseCase struct {
	accountRepo AccountRepository
	cache       Cache
}

// NewDashboardUseCase creates a new DashboardUseCase. cache may be nil.
func NewDashboardUseCase(accountRepo AccountRepository, cache Cache) *DashboardUseCase {
	return &DashboardUseCase{
		accountRepo: accountRepo,
		cache:       cache,
	}
}

// DashboardStats holds account counts for the dashboard.
type DashboardStats struct {
	TotalAccounts  int64 `json:"total_accounts"`
	ActiveAccounts int64 `json:"active_accounts"`
}

// GetStats returns total and active account counts, cached briefly.
// Cache failures fall through to the database.
func (uc *DashboardUseCase) GetStats(ctx context.Context) (*DashboardStats, error) {
	if uc.cache != nil {
		if raw, err := uc.cache.Get(ctx, statsCacheKey); err == nil && len(raw) > 0 {
			var stats DashboardStats
			if err := json.Unmarshal(raw, &stats); err == nil {
				return &stats, nil
			}
		}
	}

	total, active, err := uc.accountRepo.GetCounts(ctx)
	if err != nil {
		return nil, err
	}

	stats := &DashboardStats{TotalAccounts: total, ActiveAccounts: active}

	if uc.cache != nil {
		if raw, err := json.Marshal(stats); err == nil {
			_ = uc.cache.Set(ctx, statsCacheKey, raw, statsCacheTTL)
		}
	}

	return stats, nil
}
