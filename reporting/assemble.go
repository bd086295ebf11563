package reporting

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/complyware/vendorback/models"
)

// Thresholds are the configured compliance cutoffs shared by every view.
type Thresholds struct {
	NonCompliantAfterDays int
	StaleWarningAfterDays int
	ExpiryWarningDays     int
}

// Aging classification labels.
const (
	AgingCompliant    = "Compliant"
	AgingAtRisk       = "At Risk"
	AgingNonCompliant = "Non-Compliant"
)

// AssembleAging builds the vendor aging table. A vendor with no upload
// history is non-compliant outright.
func AssembleAging(summaries []VendorSummary, now time.Time, th Thresholds) []models.VendorAgingRow {
	rows := make([]models.VendorAgingRow, 0, len(summaries))
	for _, s := range summaries {
		agreement := ParseAgreement(s.AgreementPeriod, s.CreatedAt)
		agreementStatus := AgreementStatusAt(agreement, now, th.ExpiryWarningDays)

		row := models.VendorAgingRow{
			VendorID:            s.VendorID,
			VendorName:          s.VendorName,
			Company:             s.Company,
			AssignedConsultant:  s.Consultant,
			LastUploadDate:      s.LastUpload,
			DaysSinceLastUpload: DaysSinceLastUpload(s.LastUpload, now),
			LastDocumentType:    s.LastDocumentType,
			AgreementStatus:     agreementStatus.Label,
			IsExpiring:          agreementStatus.IsExpiring,
		}

		switch {
		case s.LastUpload == nil:
			row.Status = AgingNonCompliant
		case DaysSince(*s.LastUpload, now) > th.NonCompliantAfterDays:
			row.Status = AgingNonCompliant
		case DaysSince(*s.LastUpload, now) > th.StaleWarningAfterDays:
			row.Status = AgingAtRisk
		default:
			row.Status = AgingCompliant
		}

		rows = append(rows, row)
	}
	return rows
}

// AssembleStatusDistribution buckets the document counts of the given
// rows for the status pie chart. Zero-count buckets are omitted; emitted
// values sum to the total document count of the row set.
func AssembleStatusDistribution(rows []PeriodRow) []models.StatusDistributionEntry {
	var approved, rejected, pending int
	for _, row := range rows {
		approved += row.Counts.Approved
		rejected += row.Counts.Rejected
		pending += row.Counts.Pending
	}

	entries := make([]models.StatusDistributionEntry, 0, 3)
	for _, e := range []models.StatusDistributionEntry{
		{Name: StatusLabel(string(StatusApproved)), Value: approved},
		{Name: StatusLabel(string(StatusRejected)), Value: rejected},
		{Name: StatusLabel(string(StatusPending)), Value: pending},
	} {
		if e.Value > 0 {
			entries = append(entries, e)
		}
	}
	return entries
}

// AssembleMonthlyTrend counts submissions per calendar month for the
// trend chart, oldest month first. Rows whose period could not be parsed
// group under the N/A label at the end.
func AssembleMonthlyTrend(rows []PeriodRow) []models.MonthlySubmissionEntry {
	type monthKey struct {
		year  int
		month int
	}
	counts := make(map[monthKey]int)
	labels := make(map[monthKey]string)
	unknown := 0

	for _, row := range rows {
		idx := calendarIndex(row.Month)
		if idx == 0 {
			unknown++
			continue
		}
		key := monthKey{year: row.Year, month: idx}
		counts[key]++
		labels[key] = fmt.Sprintf("%s %d", time.Month(idx).String()[:3], row.Year)
	}

	keys := make([]monthKey, 0, len(counts))
	for k := range counts {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].year != keys[j].year {
			return keys[i].year < keys[j].year
		}
		return keys[i].month < keys[j].month
	})

	entries := make([]models.MonthlySubmissionEntry, 0, len(keys)+1)
	for _, k := range keys {
		entries = append(entries, models.MonthlySubmissionEntry{Name: labels[k], Count: counts[k]})
	}
	if unknown > 0 {
		entries = append(entries, models.MonthlySubmissionEntry{Name: unknownMonth, Count: unknown})
	}
	return entries
}

// AssembleSubmissionRows shapes period rows for the submissions report
// table, preserving aggregator order.
func AssembleSubmissionRows(rows []PeriodRow) []models.VendorSubmissionStatusRow {
	out := make([]models.VendorSubmissionStatusRow, 0, len(rows))
	for _, row := range rows {
		out = append(out, models.VendorSubmissionStatusRow{
			VendorID:          row.VendorID,
			VendorName:        row.VendorName,
			Consultant:        row.Consultant,
			Month:             row.Month,
			Year:              row.Year,
			Status:            string(row.Status),
			StatusLabel:       StatusLabel(string(row.Status)),
			TotalDocuments:    row.Counts.Total,
			ApprovedDocuments: row.Counts.Approved,
			RejectedDocuments: row.Counts.Rejected,
			PendingDocuments:  row.Counts.Pending,
			ComplianceRate:    ComplianceRate(row.Counts.Approved, row.Counts.Total),
			SubmittedDate:     row.SubmittedDate,
			ApprovedDate:      row.ApprovedDate,
		})
	}
	return out
}

// calendarIndex resolves an English month name to 1..12, or 0 when it is
// not a month.
func calendarIndex(month string) int {
	name := strings.ToLower(strings.TrimSpace(month))
	for m := time.January; m <= time.December; m++ {
		if strings.ToLower(m.String()) == name {
			return int(m)
		}
	}
	return 0
}
