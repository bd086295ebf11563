package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/complyware/vendorback/models"
	"github.com/complyware/vendorback/services/mongo/query"
)

// DocumentService reads the legacy one-row-per-upload collection. New
// writes go through SubmissionService; this collection only feeds
// back-compat reporting and artifact downloads of old documents.
type DocumentService struct {
	*MongoService
}

func NewDocumentService(mongoService *MongoService) *DocumentService {
	return &DocumentService{MongoService: mongoService}
}

func (s *DocumentService) GetCollection() *mongo.Collection {
	return s.MongoService.GetCollection("documents")
}

func (s *DocumentService) GetDocumentByID(ctx context.Context, id primitive.ObjectID) (*models.Document, error) {
	collection := s.GetCollection()

	var doc models.Document

	err := query.FindByID(ctx, collection, id, &doc)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, fmt.Errorf("document %s: %w", id.Hex(), ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get document: %w", err)
	}

	return &doc, nil
}

func (s *DocumentService) ListDocumentsForVendor(ctx context.Context, vendorID primitive.ObjectID) ([]*models.Document, error) {
	collection := s.GetCollection()

	var docs []*models.Document

	err := query.FindMany(ctx, collection, bson.M{"vendor_id": vendorID}, &docs)
	if err != nil {
		return nil, fmt.Errorf("failed to list legacy documents: %w", err)
	}

	return docs, nil
}

func (s *DocumentService) CountByStatus(ctx context.Context, status models.DocumentStatus) (int64, error) {
	return query.Count(ctx, s.GetCollection(), bson.M{"status": status})
}
