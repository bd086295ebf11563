package reporting

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/complyware/vendorback/models"
)

var testThresholds = Thresholds{
	NonCompliantAfterDays: 30,
	StaleWarningAfterDays: 14,
	ExpiryWarningDays:     30,
}

func TestAgingVendorWithNoUploads(t *testing.T) {
	summary := VendorSummary{
		VendorID:        "v1",
		VendorName:      "Acme",
		AgreementPeriod: "Annual Contract",
		CreatedAt:       testNow.AddDate(0, -2, 0),
	}

	rows := AssembleAging([]VendorSummary{summary}, testNow, testThresholds)
	require.Len(t, rows, 1)
	assert.Equal(t, "N/A", rows[0].DaysSinceLastUpload)
	assert.Equal(t, AgingNonCompliant, rows[0].Status)
	assert.Equal(t, "Active", rows[0].AgreementStatus)
}

func TestAgingClassificationThresholds(t *testing.T) {
	upload := func(daysAgo int) *time.Time {
		d := testNow.AddDate(0, 0, -daysAgo)
		return &d
	}
	base := VendorSummary{VendorName: "Acme", AgreementPeriod: "Permanent", CreatedAt: testNow}

	fresh := base
	fresh.LastUpload = upload(5)
	stale := base
	stale.LastUpload = upload(20)
	old := base
	old.LastUpload = upload(45)

	rows := AssembleAging([]VendorSummary{fresh, stale, old}, testNow, testThresholds)
	require.Len(t, rows, 3)
	assert.Equal(t, AgingCompliant, rows[0].Status)
	assert.Equal(t, AgingAtRisk, rows[1].Status)
	assert.Equal(t, AgingNonCompliant, rows[2].Status)
}

func TestStatusDistributionOmitsZeroBucketsAndSums(t *testing.T) {
	rows := []PeriodRow{
		{Counts: Counts{Total: 3, Approved: 2, Pending: 1}},
		{Counts: Counts{Total: 2, Approved: 2}},
	}

	entries := AssembleStatusDistribution(rows)
	require.Len(t, entries, 2)

	sum := 0
	for _, e := range entries {
		assert.Greater(t, e.Value, 0)
		assert.NotEqual(t, "Rejected", e.Name)
		sum += e.Value
	}
	assert.Equal(t, 5, sum)
}

func TestStatusDistributionEmptyInput(t *testing.T) {
	assert.Empty(t, AssembleStatusDistribution(nil))
}

func TestMonthlyTrendOrderingAndUnknownBucket(t *testing.T) {
	rows := []PeriodRow{
		{Month: "July", Year: 2025},
		{Month: "July", Year: 2025},
		{Month: "January", Year: 2025},
		{Month: "December", Year: 2024},
		{Month: "N/A", Year: 2025},
	}

	entries := AssembleMonthlyTrend(rows)
	require.Len(t, entries, 4)
	assert.Equal(t, models.MonthlySubmissionEntry{Name: "Dec 2024", Count: 1}, entries[0])
	assert.Equal(t, models.MonthlySubmissionEntry{Name: "Jan 2025", Count: 1}, entries[1])
	assert.Equal(t, models.MonthlySubmissionEntry{Name: "Jul 2025", Count: 2}, entries[2])
	assert.Equal(t, models.MonthlySubmissionEntry{Name: "N/A", Count: 1}, entries[3])
}

func TestAssembleSubmissionRows(t *testing.T) {
	submitted := testNow.AddDate(0, 0, -20)
	rows := []PeriodRow{
		{
			VendorID:      "v1",
			VendorName:    "Acme",
			Consultant:    "Jordan Reviewer",
			Month:         "July",
			Year:          2025,
			Status:        StatusRequiresResubmission,
			Counts:        Counts{Total: 5, Approved: 3, Rejected: 1, Pending: 1},
			SubmittedDate: &submitted,
		},
	}

	out := AssembleSubmissionRows(rows)
	require.Len(t, out, 1)
	assert.Equal(t, "requires_resubmission", out[0].Status)
	assert.Equal(t, "Requires Resubmission", out[0].StatusLabel)
	assert.Equal(t, 5, out[0].TotalDocuments)
	assert.Equal(t, 60, out[0].ComplianceRate)
	assert.Equal(t, &submitted, out[0].SubmittedDate)
}

func TestAllViewsDeriveFromSameRows(t *testing.T) {
	vendor := makeVendor("Acme")
	sub := makeSubmission(vendor, "July", 2025,
		models.DocumentStatusApproved,
		models.DocumentStatusRejected,
		models.DocumentStatusPending,
	)

	rows, summaries := AggregateAll([]VendorData{{Vendor: vendor, Submissions: []*models.DocumentSubmission{sub}}}, testNow)

	distribution := AssembleStatusDistribution(rows)
	total := 0
	for _, e := range distribution {
		total += e.Value
	}
	table := AssembleSubmissionRows(rows)
	require.Len(t, table, 1)
	assert.Equal(t, table[0].TotalDocuments, total)
	assert.Equal(t, table[0].TotalDocuments, summaries[0].Totals.Total)
}
