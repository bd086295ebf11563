package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type SubmissionStatus string

const (
	SubmissionStatusDraft                SubmissionStatus = "draft"
	SubmissionStatusSubmitted            SubmissionStatus = "submitted"
	SubmissionStatusUnderReview          SubmissionStatus = "under_review"
	SubmissionStatusPartiallyApproved    SubmissionStatus = "partially_approved"
	SubmissionStatusFullyApproved        SubmissionStatus = "fully_approved"
	SubmissionStatusRequiresResubmission SubmissionStatus = "requires_resubmission"
)

// UploadPeriod identifies the monthly cadence slot a submission belongs to.
// Month is the English month name as entered by the upload form.
type UploadPeriod struct {
	Month string `bson:"month" json:"month"`
	Year  int    `bson:"year" json:"year"`
}

type SubmittedDocument struct {
	DocumentType string         `bson:"document_type" json:"document_type"`
	DocumentName string         `bson:"document_name" json:"document_name"`
	Status       DocumentStatus `bson:"status" json:"status"`
	UploadDate   time.Time      `bson:"upload_date" json:"upload_date"`
	ReviewDate   *time.Time     `bson:"review_date,omitempty" json:"review_date,omitempty"`
	Remarks      string         `bson:"remarks,omitempty" json:"remarks,omitempty"`
	FileKey      string         `bson:"file_key,omitempty" json:"file_key,omitempty"`
	FileSize     int64          `bson:"file_size,omitempty" json:"file_size,omitempty"`
}

type ConsultantApproval struct {
	ApprovalDate *time.Time `bson:"approval_date,omitempty" json:"approval_date,omitempty"`
	Remarks      string     `bson:"remarks,omitempty" json:"remarks,omitempty"`
}

// DocumentSubmission is the current one-row-per-vendor-per-period model.
// The rollup of nested document statuses determines SubmissionStatus.
type DocumentSubmission struct {
	ID                 primitive.ObjectID  `bson:"_id,omitempty" json:"id"`
	VendorID           primitive.ObjectID  `bson:"vendor_id" json:"vendor_id"`
	ConsultantID       *primitive.ObjectID `bson:"consultant_id,omitempty" json:"consultant_id,omitempty"`
	ConsultantName     string              `bson:"consultant_name,omitempty" json:"consultant_name,omitempty"`
	UploadPeriod       UploadPeriod        `bson:"upload_period" json:"upload_period"`
	SubmissionDate     time.Time           `bson:"submission_date" json:"submission_date"`
	Documents          []SubmittedDocument `bson:"documents" json:"documents"`
	SubmissionStatus   SubmissionStatus    `bson:"submission_status" json:"submission_status"`
	ConsultantApproval *ConsultantApproval `bson:"consultant_approval,omitempty" json:"consultant_approval,omitempty"`
	CreatedAt          time.Time           `bson:"created_at" json:"created_at"`
	UpdatedAt          time.Time           `bson:"updated_at" json:"updated_at"`
}
