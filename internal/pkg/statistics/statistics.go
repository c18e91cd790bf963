package statistics

import (
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/smartfixwerk/SmartfixWerk/app/models"
	"github.com/smartfixwerk/SmartfixWerk/app/repository"
	"github.com/smartfixwerk/SmartfixWerk/internal/pkg/cache"
)

const (
	CacheKeyVoucherStats = "statistics:vouchers"
	CacheKeyPageViews    = "statistics:pageviews:%s" // Format with page name
	CacheExpiration      = 5 * time.Minute
)

// GetVoucherStats returns the aggregate voucher numbers for the admin
// dashboard. The fold over the voucher table is authoritative; the cache
// only shortens repeated dashboard loads and expires quickly.
func GetVoucherStats() (*models.VoucherStats, error) {
	if cached, err := cache.Get(CacheKeyVoucherStats); err == nil && cached != "" {
		var stats models.VoucherStats
		if err := json.Unmarshal([]byte(cached), &stats); err == nil {
			return &stats, nil
		}
	}

	stats, err := repository.GetGlobalFactory().GetVoucherRepository().Stats()
	if err != nil {
		return nil, err
	}

	if data, err := json.Marshal(stats); err == nil {
		if err := cache.Set(CacheKeyVoucherStats, string(data), CacheExpiration); err != nil {
			log.Printf("statistics: failed to cache voucher stats: %v", err)
		}
	}

	return stats, nil
}

// InvalidateVoucherStats drops the cached voucher numbers after a
// lifecycle mutation
func InvalidateVoucherStats() {
	if err := cache.Delete(CacheKeyVoucherStats); err != nil {
		log.Printf("statistics: failed to invalidate voucher stats: %v", err)
	}
}

// RecordPageView fires the page-view notification: a non-blocking counter
// increment nothing in this application consumes
func RecordPageView(page string) {
	go func() {
		if _, err := cache.Incr(fmt.Sprintf(CacheKeyPageViews, page)); err != nil {
			log.Printf("statistics: failed to record page view for %s: %v", page, err)
		}
	}()
}
