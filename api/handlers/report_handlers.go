package handlers

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/complyware/vendorback/models"
	"github.com/complyware/vendorback/reporting"
	"github.com/complyware/vendorback/services/redis"
)

// reportFilter is the shared year/month/status narrowing for the report
// views, parsed from query parameters.
type reportFilter struct {
	year   int
	month  string
	status string
}

func parseReportFilter(r *http.Request) reportFilter {
	f := reportFilter{
		month:  strings.TrimSpace(r.URL.Query().Get("month")),
		status: strings.TrimSpace(r.URL.Query().Get("status")),
	}
	if y := r.URL.Query().Get("year"); y != "" {
		if year, err := strconv.Atoi(y); err == nil {
			f.year = year
		}
	}
	return f
}

func (f reportFilter) key() string {
	parts := []string{"all", "all", "all"}
	if f.year != 0 {
		parts[0] = strconv.Itoa(f.year)
	}
	if f.month != "" {
		parts[1] = strings.ToLower(f.month)
	}
	if f.status != "" {
		parts[2] = strings.ToLower(f.status)
	}
	return strings.Join(parts, ":")
}

// apply narrows aggregated rows; every filtered view cuts the same row
// set the unfiltered views are built from.
func (f reportFilter) apply(rows []reporting.PeriodRow) []reporting.PeriodRow {
	if f.year == 0 && f.month == "" && f.status == "" {
		return rows
	}
	out := make([]reporting.PeriodRow, 0, len(rows))
	for _, row := range rows {
		if f.year != 0 && row.Year != f.year {
			continue
		}
		if f.month != "" && !strings.EqualFold(row.Month, f.month) {
			continue
		}
		if f.status != "" && reporting.NormalizeStatus(f.status) != row.Status {
			continue
		}
		out = append(out, row)
	}
	return out
}

// aggregated runs one full fetch+rollup for a report request.
func aggregated(d *Deps, r *http.Request) ([]reporting.PeriodRow, []reporting.VendorSummary, error) {
	data, err := d.Fetcher.FetchVendorData(r.Context())
	if err != nil {
		return nil, nil, err
	}
	rows, summaries := reporting.AggregateAll(data, time.Now())
	return rows, summaries, nil
}

// VendorAgingReport serves the admin aging table.
func VendorAgingReport(d *Deps, lg *zap.SugaredLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		key := redis.ReportKey("vendor-aging", "all")

		var cached []models.VendorAgingRow
		if err := d.Cache.GetCachedReport(r.Context(), key, &cached); err == nil {
			respondJSON(w, cached)
			return
		}

		_, summaries, err := aggregated(d, r)
		if err != nil {
			lg.Errorw("vendor aging report failed", "error", err)
			respondError(w, http.StatusInternalServerError, "report unavailable")
			return
		}

		rows := reporting.AssembleAging(summaries, time.Now(), d.thresholds())
		_ = d.Cache.CacheReport(r.Context(), key, rows, d.Cfg.ReportCacheTTL)
		respondJSON(w, rows)
	}
}

// StatusDistributionReport serves the chart-ready status buckets.
func StatusDistributionReport(d *Deps, lg *zap.SugaredLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		filter := parseReportFilter(r)
		key := redis.ReportKey("status-distribution", filter.key())

		var cached []models.StatusDistributionEntry
		if err := d.Cache.GetCachedReport(r.Context(), key, &cached); err == nil {
			respondJSON(w, cached)
			return
		}

		rows, _, err := aggregated(d, r)
		if err != nil {
			lg.Errorw("status distribution report failed", "error", err)
			respondError(w, http.StatusInternalServerError, "report unavailable")
			return
		}

		entries := reporting.AssembleStatusDistribution(filter.apply(rows))
		_ = d.Cache.CacheReport(r.Context(), key, entries, d.Cfg.ReportCacheTTL)
		respondJSON(w, entries)
	}
}

// MonthlyTrendReport serves the submission trend series.
func MonthlyTrendReport(d *Deps, lg *zap.SugaredLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		filter := parseReportFilter(r)
		key := redis.ReportKey("monthly-trend", filter.key())

		var cached []models.MonthlySubmissionEntry
		if err := d.Cache.GetCachedReport(r.Context(), key, &cached); err == nil {
			respondJSON(w, cached)
			return
		}

		rows, _, err := aggregated(d, r)
		if err != nil {
			lg.Errorw("monthly trend report failed", "error", err)
			respondError(w, http.StatusInternalServerError, "report unavailable")
			return
		}

		entries := reporting.AssembleMonthlyTrend(filter.apply(rows))
		_ = d.Cache.CacheReport(r.Context(), key, entries, d.Cfg.ReportCacheTTL)
		respondJSON(w, entries)
	}
}

// VendorSubmissionsReport serves the per-vendor-per-period status table.
func VendorSubmissionsReport(d *Deps, lg *zap.SugaredLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		filter := parseReportFilter(r)
		key := redis.ReportKey("vendor-submissions", filter.key())

		var cached []models.VendorSubmissionStatusRow
		if err := d.Cache.GetCachedReport(r.Context(), key, &cached); err == nil {
			respondJSON(w, cached)
			return
		}

		rows, _, err := aggregated(d, r)
		if err != nil {
			lg.Errorw("vendor submissions report failed", "error", err)
			respondError(w, http.StatusInternalServerError, "report unavailable")
			return
		}

		table := reporting.AssembleSubmissionRows(filter.apply(rows))
		_ = d.Cache.CacheReport(r.Context(), key, table, d.Cfg.ReportCacheTTL)
		respondJSON(w, table)
	}
}
