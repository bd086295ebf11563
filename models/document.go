package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// DocumentStatus covers both the legacy per-document workflow states and
// the consultant/final split that predates DocumentSubmission.
type DocumentStatus string

const (
	DocumentStatusPending            DocumentStatus = "pending"
	DocumentStatusUnderReview        DocumentStatus = "under_review"
	DocumentStatusApproved           DocumentStatus = "approved"
	DocumentStatusConsultantApproved DocumentStatus = "consultant_approved"
	DocumentStatusFinalApproved      DocumentStatus = "final_approved"
	DocumentStatusRejected           DocumentStatus = "rejected"
	DocumentStatusConsultantRejected DocumentStatus = "consultant_rejected"
	DocumentStatusFinalRejected      DocumentStatus = "final_rejected"
)

// Document is the legacy one-row-per-upload model. New uploads go through
// DocumentSubmission; these rows are kept readable for back-compat reports.
type Document struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	VendorID     primitive.ObjectID `bson:"vendor_id" json:"vendor_id"`
	Title        string             `bson:"title" json:"title"`
	DocumentType string             `bson:"document_type,omitempty" json:"document_type,omitempty"`
	Status       DocumentStatus     `bson:"status" json:"status"`
	FileKey      string             `bson:"file_key,omitempty" json:"file_key,omitempty"`
	FileSize     int64              `bson:"file_size,omitempty" json:"file_size,omitempty"`
	CreatedAt    time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt    time.Time          `bson:"updated_at" json:"updated_at"`
}
