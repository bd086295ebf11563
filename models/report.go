package models

import "time"

// Derived report shapes. None of these are persisted; they are rebuilt on
// every report request from users, documents and document_submissions.

// VendorAgingRow is one line of the admin vendor aging table.
type VendorAgingRow struct {
	VendorID            string     `json:"vendor_id"`
	VendorName          string     `json:"vendor_name"`
	Company             string     `json:"company,omitempty"`
	AssignedConsultant  string     `json:"assigned_consultant,omitempty"`
	LastUploadDate      *time.Time `json:"last_upload_date,omitempty"`
	DaysSinceLastUpload string     `json:"days_since_last_upload"`
	Status              string     `json:"status"`
	LastDocumentType    string     `json:"last_document_type,omitempty"`
	AgreementStatus     string     `json:"agreement_status"`
	IsExpiring          bool       `json:"is_expiring"`
}

// StatusDistributionEntry feeds the status pie chart. Zero-count buckets
// are never emitted.
type StatusDistributionEntry struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
}

// MonthlySubmissionEntry feeds the submission trend chart.
type MonthlySubmissionEntry struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// VendorSubmissionStatusRow is one vendor-period line of the submissions
// report table.
type VendorSubmissionStatusRow struct {
	VendorID          string     `json:"vendor_id"`
	VendorName        string     `json:"vendor_name"`
	Consultant        string     `json:"consultant,omitempty"`
	Month             string     `json:"month"`
	Year              int        `json:"year"`
	Status            string     `json:"status"`
	StatusLabel       string     `json:"status_label"`
	TotalDocuments    int        `json:"total_documents"`
	ApprovedDocuments int        `json:"approved_documents"`
	RejectedDocuments int        `json:"rejected_documents"`
	PendingDocuments  int        `json:"pending_documents"`
	ComplianceRate    int        `json:"compliance_rate"`
	SubmittedDate     *time.Time `json:"submitted_date,omitempty"`
	ApprovedDate      *time.Time `json:"approved_date,omitempty"`
}
