package reporting

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/complyware/vendorback/models"
)

var testNow = time.Date(2025, time.September, 1, 12, 0, 0, 0, time.UTC)

func makeVendor(name string) *models.User {
	return &models.User{
		ID:        primitive.NewObjectID(),
		FullName:  name,
		Company:   name + " Ltd",
		Role:      models.UserRoleVendor,
		Status:    models.UserStatusActive,
		CreatedAt: testNow.AddDate(-1, 0, 0),
	}
}

func makeSubmission(vendor *models.User, month string, year int, statuses ...models.DocumentStatus) *models.DocumentSubmission {
	docs := make([]models.SubmittedDocument, 0, len(statuses))
	for i, s := range statuses {
		docs = append(docs, models.SubmittedDocument{
			DocumentType: "policy",
			DocumentName: "doc",
			Status:       s,
			UploadDate:   testNow.AddDate(0, 0, -10+i),
		})
	}
	return &models.DocumentSubmission{
		ID:             primitive.NewObjectID(),
		VendorID:       vendor.ID,
		UploadPeriod:   models.UploadPeriod{Month: month, Year: year},
		SubmissionDate: testNow.AddDate(0, 0, -10),
		Documents:      docs,
	}
}

func TestRejectionDominatesApproval(t *testing.T) {
	vendor := makeVendor("Acme")
	sub := makeSubmission(vendor, "July", 2025,
		models.DocumentStatusApproved,
		models.DocumentStatusApproved,
		models.DocumentStatusApproved,
		models.DocumentStatusRejected,
	)

	rows, _ := AggregateVendor(VendorData{Vendor: vendor, Submissions: []*models.DocumentSubmission{sub}}, testNow)
	require.Len(t, rows, 1)
	assert.Equal(t, StatusRequiresResubmission, rows[0].Status)
}

func TestMixedCountsScenario(t *testing.T) {
	vendor := makeVendor("Acme")
	sub := makeSubmission(vendor, "July", 2025,
		models.DocumentStatusApproved,
		models.DocumentStatusConsultantApproved,
		models.DocumentStatusFinalApproved,
		models.DocumentStatusRejected,
		models.DocumentStatusPending,
	)

	rows, _ := AggregateVendor(VendorData{Vendor: vendor, Submissions: []*models.DocumentSubmission{sub}}, testNow)
	require.Len(t, rows, 1)
	assert.Equal(t, 5, rows[0].Counts.Total)
	assert.Equal(t, 3, rows[0].Counts.Approved)
	assert.Equal(t, 1, rows[0].Counts.Rejected)
	assert.Equal(t, 1, rows[0].Counts.Pending)
	assert.Equal(t, StatusRequiresResubmission, rows[0].Status)
}

func TestAllApprovedIsFullyApproved(t *testing.T) {
	vendor := makeVendor("Acme")
	sub := makeSubmission(vendor, "June", 2025,
		models.DocumentStatusApproved,
		models.DocumentStatusFinalApproved,
	)

	rows, _ := AggregateVendor(VendorData{Vendor: vendor, Submissions: []*models.DocumentSubmission{sub}}, testNow)
	require.Len(t, rows, 1)
	assert.Equal(t, StatusFullyApproved, rows[0].Status)
}

func TestSomeApprovedIsPartiallyApproved(t *testing.T) {
	vendor := makeVendor("Acme")
	sub := makeSubmission(vendor, "June", 2025,
		models.DocumentStatusApproved,
		models.DocumentStatusPending,
	)

	rows, _ := AggregateVendor(VendorData{Vendor: vendor, Submissions: []*models.DocumentSubmission{sub}}, testNow)
	require.Len(t, rows, 1)
	assert.Equal(t, StatusPartiallyApproved, rows[0].Status)
}

func TestZeroDocumentsKeepsStoredStatus(t *testing.T) {
	vendor := makeVendor("Acme")
	sub := makeSubmission(vendor, "May", 2025)
	sub.Documents = nil

	rows, summary := AggregateVendor(VendorData{Vendor: vendor, Submissions: []*models.DocumentSubmission{sub}}, testNow)
	require.Len(t, rows, 1)
	assert.Equal(t, StatusDraft, rows[0].Status)
	assert.Equal(t, Counts{}, rows[0].Counts)
	assert.Equal(t, Counts{}, summary.Totals)

	sub.SubmissionStatus = models.SubmissionStatusSubmitted
	rows, _ = AggregateVendor(VendorData{Vendor: vendor, Submissions: []*models.DocumentSubmission{sub}}, testNow)
	assert.Equal(t, StatusSubmitted, rows[0].Status)
}

func TestMalformedPeriodGetsDefaults(t *testing.T) {
	vendor := makeVendor("Acme")
	sub := makeSubmission(vendor, "", 0, models.DocumentStatusPending)

	rows, _ := AggregateVendor(VendorData{Vendor: vendor, Submissions: []*models.DocumentSubmission{sub}}, testNow)
	require.Len(t, rows, 1)
	assert.Equal(t, "N/A", rows[0].Month)
	assert.Equal(t, testNow.Year(), rows[0].Year)
}

func TestLatestRevisionWinsPerPeriod(t *testing.T) {
	vendor := makeVendor("Acme")
	first := makeSubmission(vendor, "July", 2025, models.DocumentStatusRejected)
	second := makeSubmission(vendor, "July", 2025,
		models.DocumentStatusApproved, models.DocumentStatusApproved)
	second.SubmissionDate = first.SubmissionDate.AddDate(0, 0, 3)

	rows, summary := AggregateVendor(VendorData{
		Vendor:      vendor,
		Submissions: []*models.DocumentSubmission{first, second},
	}, testNow)
	require.Len(t, rows, 1)
	assert.Equal(t, StatusFullyApproved, rows[0].Status)
	assert.Equal(t, 2, rows[0].Counts.Total)
	// Totals come only from the winning revision.
	assert.Equal(t, 2, summary.Totals.Total)
	assert.Equal(t, 0, summary.Totals.Rejected)
}

func TestLegacyDocumentsOnlyFillUncoveredPeriods(t *testing.T) {
	vendor := makeVendor("Acme")
	sub := makeSubmission(vendor, "July", 2025, models.DocumentStatusApproved)

	julyLegacy := &models.Document{
		ID:        primitive.NewObjectID(),
		VendorID:  vendor.ID,
		Status:    models.DocumentStatusApproved,
		CreatedAt: time.Date(2025, time.July, 5, 0, 0, 0, 0, time.UTC),
	}
	marchLegacy := &models.Document{
		ID:           primitive.NewObjectID(),
		VendorID:     vendor.ID,
		DocumentType: "insurance",
		Status:       models.DocumentStatusRejected,
		CreatedAt:    time.Date(2025, time.March, 5, 0, 0, 0, 0, time.UTC),
	}

	rows, summary := AggregateVendor(VendorData{
		Vendor:          vendor,
		Submissions:     []*models.DocumentSubmission{sub},
		LegacyDocuments: []*models.Document{julyLegacy, marchLegacy},
	}, testNow)

	// July is covered by the submission; only March gets a legacy row.
	require.Len(t, rows, 2)
	assert.Equal(t, 2, summary.Totals.Total)

	var march *PeriodRow
	for i := range rows {
		if rows[i].Month == "March" {
			march = &rows[i]
		}
	}
	require.NotNil(t, march)
	assert.Equal(t, StatusRequiresResubmission, march.Status)
	assert.Equal(t, 1, march.Counts.Rejected)
}

func TestSortOrderFiscalMostRecentFirst(t *testing.T) {
	alpha := makeVendor("Alpha")
	beta := makeVendor("Beta")

	rows, _ := AggregateAll([]VendorData{
		{Vendor: beta, Submissions: []*models.DocumentSubmission{
			makeSubmission(beta, "April", 2025, models.DocumentStatusPending),
		}},
		{Vendor: alpha, Submissions: []*models.DocumentSubmission{
			makeSubmission(alpha, "May", 2024, models.DocumentStatusPending),
			makeSubmission(alpha, "February", 2025, models.DocumentStatusPending),
			makeSubmission(alpha, "December", 2024, models.DocumentStatusPending),
		}},
	}, testNow)

	require.Len(t, rows, 4)
	assert.Equal(t, "Alpha", rows[0].VendorName)
	// Fiscal cycle Apr→Mar: within 2024-25 reporting, February 2025 is
	// most recent, then December 2024, then May 2024.
	assert.Equal(t, "February", rows[0].Month)
	assert.Equal(t, "December", rows[1].Month)
	assert.Equal(t, "May", rows[2].Month)
	assert.Equal(t, "Beta", rows[3].VendorName)
}

func TestAggregateIsIdempotent(t *testing.T) {
	vendor := makeVendor("Acme")
	input := VendorData{
		Vendor: vendor,
		Submissions: []*models.DocumentSubmission{
			makeSubmission(vendor, "July", 2025,
				models.DocumentStatusApproved, models.DocumentStatusRejected),
			makeSubmission(vendor, "June", 2025, models.DocumentStatusPending),
		},
	}

	rows1, summary1 := AggregateVendor(input, testNow)
	rows2, summary2 := AggregateVendor(input, testNow)
	assert.Equal(t, rows1, rows2)
	assert.Equal(t, summary1, summary2)
}

func TestNilVendorDataDoesNotPanic(t *testing.T) {
	rows, summary := AggregateVendor(VendorData{}, testNow)
	assert.Empty(t, rows)
	assert.Equal(t, Counts{}, summary.Totals)

	rows, summary = AggregateVendor(VendorData{
		Vendor:          makeVendor("Acme"),
		Submissions:     []*models.DocumentSubmission{nil},
		LegacyDocuments: []*models.Document{nil},
	}, testNow)
	assert.Empty(t, rows)
	assert.Nil(t, summary.LastUpload)
}
