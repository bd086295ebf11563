package mongo

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/complyware/vendorback/models"
	"github.com/complyware/vendorback/reporting"
	"github.com/complyware/vendorback/services/mongo/command"
	"github.com/complyware/vendorback/services/mongo/query"
)

type SubmissionService struct {
	*MongoService
}

func NewSubmissionService(mongoService *MongoService) *SubmissionService {
	return &SubmissionService{MongoService: mongoService}
}

func (s *SubmissionService) GetCollection() *mongo.Collection {
	return s.MongoService.GetCollection("document_submissions")
}

func (s *SubmissionService) CreateSubmission(ctx context.Context, sub *models.DocumentSubmission) (*models.DocumentSubmission, error) {
	collection := s.GetCollection()

	now := time.Now()
	sub.CreatedAt = now
	sub.UpdatedAt = now
	if sub.SubmissionDate.IsZero() {
		sub.SubmissionDate = now
	}
	if sub.SubmissionStatus == "" {
		sub.SubmissionStatus = models.SubmissionStatusDraft
	}

	res, err := collection.InsertOne(ctx, sub)
	if err != nil {
		return nil, fmt.Errorf("failed to create submission: %w", err)
	}

	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		sub.ID = oid
		s.lg.Infow("submission created",
			"submission_id", sub.ID.Hex(),
			"vendor_id", sub.VendorID.Hex(),
			"period", fmt.Sprintf("%s %d", sub.UploadPeriod.Month, sub.UploadPeriod.Year))
	} else {
		return nil, fmt.Errorf("failed to get inserted submission ID, expected ObjectID, got %T", res.InsertedID)
	}

	return sub, nil
}

func (s *SubmissionService) GetSubmissionByID(ctx context.Context, id primitive.ObjectID) (*models.DocumentSubmission, error) {
	collection := s.GetCollection()

	var sub models.DocumentSubmission

	err := query.FindByID(ctx, collection, id, &sub)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, fmt.Errorf("submission %s: %w", id.Hex(), ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get submission: %w", err)
	}

	return &sub, nil
}

func (s *SubmissionService) ListSubmissionsForVendor(ctx context.Context, vendorID primitive.ObjectID) ([]*models.DocumentSubmission, error) {
	collection := s.GetCollection()

	var subs []*models.DocumentSubmission

	err := query.FindMany(ctx, collection, bson.M{"vendor_id": vendorID}, &subs)
	if err != nil {
		return nil, fmt.Errorf("failed to list submissions: %w", err)
	}

	return subs, nil
}

func (s *SubmissionService) ListAllSubmissions(ctx context.Context, filter reporting.SubmissionFilter) ([]*models.DocumentSubmission, error) {
	collection := s.GetCollection()

	b := query.NewBuilder()
	if filter.Year != nil {
		b.Where("upload_period.year", *filter.Year)
	}
	if filter.Month != nil {
		b.WhereRegex("upload_period.month", "^"+strings.TrimSpace(*filter.Month)+"$")
	}
	if filter.Status != nil {
		b.Where("submission_status", *filter.Status)
	}

	var subs []*models.DocumentSubmission

	err := query.FindMany(ctx, collection, b.Build(), &subs)
	if err != nil {
		return nil, fmt.Errorf("failed to list submissions: %w", err)
	}

	return subs, nil
}

// AppendDocument adds a document entry to a submission and refreshes the
// rollup status.
func (s *SubmissionService) AppendDocument(ctx context.Context, id primitive.ObjectID, doc models.SubmittedDocument) (*models.DocumentSubmission, error) {
	if doc.UploadDate.IsZero() {
		doc.UploadDate = time.Now()
	}
	if doc.Status == "" {
		doc.Status = models.DocumentStatusPending
	}

	update := command.NewUpdateBuilder().
		Push("documents", doc).
		Set("updated_at", time.Now()).
		Build()
	if _, err := command.UpdateByID(ctx, s.GetCollection(), id, update); err != nil {
		return nil, fmt.Errorf("failed to append document: %w", err)
	}

	return s.refreshStatus(ctx, id)
}

// ReviewDocument records a consultant's verdict on one nested document
// and recomputes the submission status from the new tally. On full
// approval the consultant approval block is stamped.
func (s *SubmissionService) ReviewDocument(ctx context.Context, id primitive.ObjectID, docIndex int, status models.DocumentStatus, remarks string) (*models.DocumentSubmission, error) {
	sub, err := s.GetSubmissionByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if docIndex < 0 || docIndex >= len(sub.Documents) {
		return nil, fmt.Errorf("document index %d out of range", docIndex)
	}

	now := time.Now()
	update := command.NewUpdateBuilder().
		Set(fmt.Sprintf("documents.%d.status", docIndex), status).
		Set(fmt.Sprintf("documents.%d.review_date", docIndex), now).
		Set(fmt.Sprintf("documents.%d.remarks", docIndex), remarks).
		Set("updated_at", now).
		Build()
	if _, err := command.UpdateByID(ctx, s.GetCollection(), id, update); err != nil {
		return nil, fmt.Errorf("failed to review document: %w", err)
	}

	return s.refreshStatus(ctx, id)
}

// refreshStatus re-derives SubmissionStatus from the stored documents
// using the same rollup rule the reports use.
func (s *SubmissionService) refreshStatus(ctx context.Context, id primitive.ObjectID) (*models.DocumentSubmission, error) {
	sub, err := s.GetSubmissionByID(ctx, id)
	if err != nil {
		return nil, err
	}

	counts := reporting.TallyDocuments(sub.Documents)
	derived := models.SubmissionStatus(reporting.DeriveStatus(counts, sub.SubmissionStatus))
	if derived == sub.SubmissionStatus && counts.Total == 0 {
		return sub, nil
	}

	now := time.Now()
	update := command.NewUpdateBuilder().
		Set("submission_status", derived).
		Set("updated_at", now)

	if derived == models.SubmissionStatusFullyApproved {
		update.Set("consultant_approval", models.ConsultantApproval{ApprovalDate: &now})
	}

	if _, err := command.UpdateByID(ctx, s.GetCollection(), id, update.Build()); err != nil {
		return nil, fmt.Errorf("failed to update submission status: %w", err)
	}

	sub.SubmissionStatus = derived
	sub.UpdatedAt = now
	if derived == models.SubmissionStatusFullyApproved {
		sub.ConsultantApproval = &models.ConsultantApproval{ApprovalDate: &now}
	}

	s.lg.Infow("submission status refreshed",
		"submission_id", id.Hex(), "status", derived,
		"total", counts.Total, "approved", counts.Approved, "rejected", counts.Rejected)
	return sub, nil
}
