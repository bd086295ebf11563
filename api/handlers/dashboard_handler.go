package handlers

import (
	"net/http"
	"sync"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"go.uber.org/zap"

	"github.com/complyware/vendorback/models"
	"github.com/complyware/vendorback/reporting"
)

// DashboardPayload is everything the admin landing page renders in one
// request. All count figures come from the same aggregated rows.
type DashboardPayload struct {
	VendorCount        int                              `json:"vendor_count"`
	ConsultantCount    int                              `json:"consultant_count"`
	VendorAging        []models.VendorAgingRow          `json:"vendor_aging"`
	StatusDistribution []models.StatusDistributionEntry `json:"status_distribution"`
	MonthlyTrend       []models.MonthlySubmissionEntry  `json:"monthly_trend"`
	RecentActivity     []*models.ActivityLog            `json:"recent_activity"`
}

// NewDashboardCache builds the in-process payload cache. One entry per
// key; entries expire rather than being invalidated.
func NewDashboardCache(ttl time.Duration) *expirable.LRU[string, DashboardPayload] {
	return expirable.NewLRU[string, DashboardPayload](16, nil, ttl)
}

// Dashboard assembles the admin overview. The independent source reads
// run concurrently and a failing side-source degrades to an empty
// contribution instead of failing the page.
func Dashboard(d *Deps, cache *expirable.LRU[string, DashboardPayload], lg *zap.SugaredLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const cacheKey = "admin"
		if payload, ok := cache.Get(cacheKey); ok {
			respondJSON(w, payload)
			return
		}

		ctx := r.Context()
		var (
			wg          sync.WaitGroup
			vendorData  []reporting.VendorData
			vendorErr   error
			consultants []*models.User
			activity    []*models.ActivityLog
		)

		wg.Add(3)
		go func() {
			defer wg.Done()
			vendorData, vendorErr = d.Fetcher.FetchVendorData(ctx)
		}()
		go func() {
			defer wg.Done()
			var err error
			consultants, err = d.Users.ListUsersByRole(ctx, models.UserRoleConsultant)
			if err != nil {
				lg.Warnw("consultant count unavailable", "error", err)
			}
		}()
		go func() {
			defer wg.Done()
			var err error
			activity, err = d.Activity.ListActivity(ctx, 10, 0)
			if err != nil {
				lg.Warnw("recent activity unavailable", "error", err)
			}
		}()
		wg.Wait()

		if vendorErr != nil {
			lg.Errorw("dashboard vendor data failed", "error", vendorErr)
			respondError(w, http.StatusInternalServerError, "dashboard unavailable")
			return
		}

		now := time.Now()
		rows, summaries := reporting.AggregateAll(vendorData, now)

		payload := DashboardPayload{
			VendorCount:        len(vendorData),
			ConsultantCount:    len(consultants),
			VendorAging:        reporting.AssembleAging(summaries, now, d.thresholds()),
			StatusDistribution: reporting.AssembleStatusDistribution(rows),
			MonthlyTrend:       reporting.AssembleMonthlyTrend(rows),
			RecentActivity:     activity,
		}
		if payload.RecentActivity == nil {
			payload.RecentActivity = []*models.ActivityLog{}
		}

		cache.Add(cacheKey, payload)
		respondJSON(w, payload)
	}
}
