package reporting

import (
	"sort"
	"strings"
	"time"

	"github.com/complyware/vendorback/models"
)

const unknownMonth = "N/A"

// fiscalOrder is the Apr→Mar reporting cycle used to sort periods within
// a year, most recent first.
var fiscalOrder = []string{
	"April", "May", "June", "July", "August", "September",
	"October", "November", "December", "January", "February", "March",
}

var fiscalIndex = func() map[string]int {
	m := make(map[string]int, len(fiscalOrder))
	for i, name := range fiscalOrder {
		m[strings.ToLower(name)] = i
	}
	return m
}()

// Counts is the per-period document tally.
type Counts struct {
	Total    int
	Approved int
	Rejected int
	Pending  int
}

// PeriodRow is one vendor-period rollup, the single row type every report
// view is derived from.
type PeriodRow struct {
	VendorID         string
	VendorName       string
	Company          string
	Consultant       string
	Month            string
	Year             int
	Status           Status
	Counts           Counts
	SubmittedDate    *time.Time
	ApprovedDate     *time.Time
	LastDocumentType string
}

// VendorSummary carries the per-vendor facts the aging report needs.
// Totals are summed from the same rows the other views consume, so no
// view recomputes counts on its own.
type VendorSummary struct {
	VendorID         string
	VendorName       string
	Company          string
	Consultant       string
	AgreementPeriod  string
	CreatedAt        time.Time
	LastUpload       *time.Time
	LastDocumentType string
	Totals           Counts
}

// VendorData is one vendor's raw input to the aggregator.
type VendorData struct {
	Vendor          *models.User
	ConsultantName  string
	Submissions     []*models.DocumentSubmission
	LegacyDocuments []*models.Document
}

// TallyDocuments counts a submission's nested documents by review bucket.
// A nil or empty slice tallies to all zeros.
func TallyDocuments(docs []models.SubmittedDocument) Counts {
	var c Counts
	for _, d := range docs {
		c.Total++
		switch classifyDocument(d.Status) {
		case bucketApproved:
			c.Approved++
		case bucketRejected:
			c.Rejected++
		default:
			c.Pending++
		}
	}
	return c
}

// DeriveStatus rolls a document tally up to the period status. Rejection
// dominates: one bad document marks the whole period for resubmission.
// A period with no documents keeps whatever status was stored, defaulting
// to draft.
func DeriveStatus(c Counts, stored models.SubmissionStatus) Status {
	if c.Total == 0 {
		if stored == "" {
			return StatusDraft
		}
		return NormalizeStatus(string(stored))
	}
	switch {
	case c.Rejected > 0:
		return StatusRequiresResubmission
	case c.Approved == c.Total:
		return StatusFullyApproved
	case c.Approved > 0:
		return StatusPartiallyApproved
	default:
		return StatusUnderReview
	}
}

// normalizePeriod substitutes safe defaults for a malformed upload period
// so the submission still shows up in reports.
func normalizePeriod(p models.UploadPeriod, now time.Time) (string, int) {
	month := strings.TrimSpace(p.Month)
	if month == "" {
		month = unknownMonth
	}
	year := p.Year
	if year == 0 {
		year = now.Year()
	}
	return month, year
}

type periodKey struct {
	month string
	year  int
}

// AggregateVendor rolls one vendor's submissions (and legacy documents,
// for periods the submission model does not cover) into period rows and a
// vendor summary. DocumentSubmission is the source of truth wherever both
// models describe the same period; legacy rows are never added on top of
// it, which is what used to double-count.
func AggregateVendor(vd VendorData, now time.Time) ([]PeriodRow, VendorSummary) {
	summary := VendorSummary{
		Consultant: vd.ConsultantName,
	}
	if vd.Vendor != nil {
		summary.VendorID = vd.Vendor.ID.Hex()
		summary.VendorName = vd.Vendor.FullName
		summary.Company = vd.Vendor.Company
		summary.AgreementPeriod = vd.Vendor.AgreementPeriod
		summary.CreatedAt = vd.Vendor.CreatedAt
	}

	// Latest submission wins per period; earlier revisions of the same
	// month stay in the store for audit but do not produce rows.
	winners := make(map[periodKey]*models.DocumentSubmission)
	for _, sub := range vd.Submissions {
		if sub == nil {
			continue
		}
		month, year := normalizePeriod(sub.UploadPeriod, now)
		key := periodKey{month: strings.ToLower(month), year: year}
		if cur, ok := winners[key]; !ok || sub.SubmissionDate.After(cur.SubmissionDate) {
			winners[key] = sub
		}
	}

	rows := make([]PeriodRow, 0, len(winners))
	for _, sub := range winners {
		rows = append(rows, rollupSubmission(vd, sub, &summary, now))
	}

	// Legacy documents fill only periods with no submission coverage.
	legacyByPeriod := make(map[periodKey][]*models.Document)
	for _, doc := range vd.LegacyDocuments {
		if doc == nil {
			continue
		}
		key := periodKey{
			month: strings.ToLower(doc.CreatedAt.Month().String()),
			year:  doc.CreatedAt.Year(),
		}
		if _, covered := winners[key]; covered {
			continue
		}
		legacyByPeriod[key] = append(legacyByPeriod[key], doc)
	}
	for _, docs := range legacyByPeriod {
		rows = append(rows, rollupLegacy(vd, docs, &summary))
	}

	for _, row := range rows {
		summary.Totals.Total += row.Counts.Total
		summary.Totals.Approved += row.Counts.Approved
		summary.Totals.Rejected += row.Counts.Rejected
		summary.Totals.Pending += row.Counts.Pending
	}

	sortRows(rows)
	return rows, summary
}

func rollupSubmission(vd VendorData, sub *models.DocumentSubmission, summary *VendorSummary, now time.Time) PeriodRow {
	month, year := normalizePeriod(sub.UploadPeriod, now)
	counts := TallyDocuments(sub.Documents)

	consultant := sub.ConsultantName
	if consultant == "" {
		consultant = vd.ConsultantName
	}

	row := PeriodRow{
		VendorID:   summary.VendorID,
		VendorName: summary.VendorName,
		Company:    summary.Company,
		Consultant: consultant,
		Month:      month,
		Year:       year,
		Status:     DeriveStatus(counts, sub.SubmissionStatus),
		Counts:     counts,
	}
	if !sub.SubmissionDate.IsZero() {
		d := sub.SubmissionDate
		row.SubmittedDate = &d
	}
	if sub.ConsultantApproval != nil && sub.ConsultantApproval.ApprovalDate != nil {
		d := *sub.ConsultantApproval.ApprovalDate
		row.ApprovedDate = &d
	}

	var latest time.Time
	for _, doc := range sub.Documents {
		if doc.UploadDate.IsZero() {
			continue
		}
		if doc.UploadDate.After(latest) {
			latest = doc.UploadDate
			row.LastDocumentType = doc.DocumentType
		}
	}
	if !latest.IsZero() {
		if summary.LastUpload == nil || latest.After(*summary.LastUpload) {
			d := latest
			summary.LastUpload = &d
			summary.LastDocumentType = row.LastDocumentType
		}
	}
	return row
}

func rollupLegacy(vd VendorData, docs []*models.Document, summary *VendorSummary) PeriodRow {
	var counts Counts
	var latest time.Time
	var latestType string
	for _, doc := range docs {
		counts.Total++
		switch classifyDocument(doc.Status) {
		case bucketApproved:
			counts.Approved++
		case bucketRejected:
			counts.Rejected++
		default:
			counts.Pending++
		}
		if doc.CreatedAt.After(latest) {
			latest = doc.CreatedAt
			latestType = doc.DocumentType
		}
	}

	if summary.LastUpload == nil || latest.After(*summary.LastUpload) {
		d := latest
		summary.LastUpload = &d
		summary.LastDocumentType = latestType
	}

	row := PeriodRow{
		VendorID:         summary.VendorID,
		VendorName:       summary.VendorName,
		Company:          summary.Company,
		Consultant:       vd.ConsultantName,
		Month:            latest.Month().String(),
		Year:             latest.Year(),
		Status:           DeriveStatus(counts, models.SubmissionStatusUnderReview),
		Counts:           counts,
		LastDocumentType: latestType,
	}
	if !latest.IsZero() {
		d := latest
		row.SubmittedDate = &d
	}
	return row
}

// AggregateAll rolls up a set of vendors and sorts the combined rows:
// vendor name ascending, year descending, fiscal month most recent first.
func AggregateAll(vendors []VendorData, now time.Time) ([]PeriodRow, []VendorSummary) {
	var rows []PeriodRow
	summaries := make([]VendorSummary, 0, len(vendors))
	for _, vd := range vendors {
		vendorRows, summary := AggregateVendor(vd, now)
		rows = append(rows, vendorRows...)
		summaries = append(summaries, summary)
	}
	sortRows(rows)
	sort.Slice(summaries, func(i, j int) bool {
		return strings.ToLower(summaries[i].VendorName) < strings.ToLower(summaries[j].VendorName)
	})
	return rows, summaries
}

func sortRows(rows []PeriodRow) {
	sort.SliceStable(rows, func(i, j int) bool {
		a, b := rows[i], rows[j]
		an, bn := strings.ToLower(a.VendorName), strings.ToLower(b.VendorName)
		if an != bn {
			return an < bn
		}
		if a.Year != b.Year {
			return a.Year > b.Year
		}
		return fiscalRank(a.Month) > fiscalRank(b.Month)
	})
}

// fiscalRank orders months along the Apr→Mar cycle; unparseable months
// sort after every real month within their year.
func fiscalRank(month string) int {
	if idx, ok := fiscalIndex[strings.ToLower(strings.TrimSpace(month))]; ok {
		return idx
	}
	return -1
}
