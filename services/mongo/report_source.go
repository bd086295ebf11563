package mongo

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/complyware/vendorback/models"
	"github.com/complyware/vendorback/reporting"
)

// ReportSource satisfies reporting.Source over the mongo services.
type ReportSource struct {
	users       *UserService
	documents   *DocumentService
	submissions *SubmissionService
}

func NewReportSource(users *UserService, documents *DocumentService, submissions *SubmissionService) *ReportSource {
	return &ReportSource{users: users, documents: documents, submissions: submissions}
}

var _ reporting.Source = (*ReportSource)(nil)

func (r *ReportSource) ListUsersByRole(ctx context.Context, role models.UserRole) ([]*models.User, error) {
	return r.users.ListUsersByRole(ctx, role)
}

func (r *ReportSource) GetUserByID(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	return r.users.GetUserByID(ctx, id)
}

func (r *ReportSource) ListSubmissionsForVendor(ctx context.Context, vendorID primitive.ObjectID) ([]*models.DocumentSubmission, error) {
	return r.submissions.ListSubmissionsForVendor(ctx, vendorID)
}

func (r *ReportSource) ListLegacyDocumentsForVendor(ctx context.Context, vendorID primitive.ObjectID) ([]*models.Document, error) {
	return r.documents.ListDocumentsForVendor(ctx, vendorID)
}

func (r *ReportSource) ListAllSubmissions(ctx context.Context, filter reporting.SubmissionFilter) ([]*models.DocumentSubmission, error) {
	return r.submissions.ListAllSubmissions(ctx, filter)
}
