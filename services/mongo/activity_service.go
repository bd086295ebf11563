package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/complyware/vendorback/models"
	"github.com/complyware/vendorback/services/mongo/query"
)

type ActivityService struct {
	*MongoService
}

func NewActivityService(mongoService *MongoService) *ActivityService {
	return &ActivityService{MongoService: mongoService}
}

func (s *ActivityService) GetCollection() *mongo.Collection {
	return s.MongoService.GetCollection("activity_logs")
}

// Record writes one audit entry. Failures are logged but never propagate;
// audit writes must not fail the operation being audited.
func (s *ActivityService) Record(ctx context.Context, actorID primitive.ObjectID, actorName string, action models.ActivityAction, entityID *primitive.ObjectID, detail string) {
	entry := models.ActivityLog{
		ActorID:   actorID,
		ActorName: actorName,
		Action:    action,
		EntityID:  entityID,
		Detail:    detail,
		CreatedAt: time.Now(),
	}

	if _, err := s.GetCollection().InsertOne(ctx, entry); err != nil {
		s.lg.Errorw("activity log write failed", "action", action, "error", err)
	}
}

func (s *ActivityService) ListActivity(ctx context.Context, limit, skip int64) ([]*models.ActivityLog, error) {
	var entries []*models.ActivityLog

	err := query.FindWithPagination(ctx, s.GetCollection(), bson.M{}, &entries, limit, skip)
	if err != nil {
		return nil, fmt.Errorf("failed to list activity: %w", err)
	}

	return entries, nil
}

func (s *ActivityService) ListActivityForActor(ctx context.Context, actorID primitive.ObjectID, limit, skip int64) ([]*models.ActivityLog, error) {
	var entries []*models.ActivityLog

	err := query.FindWithPagination(ctx, s.GetCollection(), bson.M{"actor_id": actorID}, &entries, limit, skip)
	if err != nil {
		return nil, fmt.Errorf("failed to list activity: %w", err)
	}

	return entries, nil
}
