package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/complyware/vendorback/models"
	"github.com/complyware/vendorback/services/mongo/query"
)

// NotificationService stores review and assignment notifications and the
// per-user read state. Delivery (email, websocket) is someone else's job.
type NotificationService struct {
	*MongoService
}

func NewNotificationService(mongoService *MongoService) *NotificationService {
	return &NotificationService{MongoService: mongoService}
}

func (s *NotificationService) CreateNotification(ctx context.Context, notif *models.Notification) error {
	collection := s.GetCollection("notifications")
	notif.CreatedAt = time.Now()

	res, err := collection.InsertOne(ctx, notif)
	if err != nil {
		return fmt.Errorf("failed to create notification: %w", err)
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		notif.ID = oid
	}

	s.lg.Infow("notification created", "notification_id", notif.ID.Hex(), "title", notif.Title)
	return nil
}

// CreateUserNotifications fans a notification out to its recipients,
// skipping the sender.
func (s *NotificationService) CreateUserNotifications(ctx context.Context, notificationID primitive.ObjectID, recipientIDs []primitive.ObjectID, senderID primitive.ObjectID) error {
	if len(recipientIDs) == 0 {
		return nil
	}

	filteredRecipients := make([]primitive.ObjectID, 0, len(recipientIDs))
	for _, id := range recipientIDs {
		if id != senderID {
			filteredRecipients = append(filteredRecipients, id)
		}
	}
	if len(filteredRecipients) == 0 {
		return nil
	}

	collection := s.GetCollection("user_notifications")
	createdAt := time.Now()

	var docs []interface{}
	for _, userID := range filteredRecipients {
		docs = append(docs, models.UserNotification{
			UserID:         userID,
			NotificationID: notificationID,
			Status:         models.NotificationStatusUnread,
			CreatedAt:      createdAt,
		})
	}

	_, err := collection.InsertMany(ctx, docs)
	if err != nil {
		return fmt.Errorf("failed to create user notifications: %w", err)
	}

	s.lg.Infow("user notifications created",
		"notification_id", notificationID.Hex(), "recipients", len(docs))
	return nil
}

// NotifyReviewOutcome records a review-result notification for a vendor.
func (s *NotificationService) NotifyReviewOutcome(ctx context.Context, reviewerID, vendorID primitive.ObjectID, documentName string, outcome string) error {
	notif := &models.Notification{
		Type:         models.NotificationTypeReview,
		Title:        fmt.Sprintf("Document %s", outcome),
		Message:      fmt.Sprintf("Your document %q was %s by the consultant", documentName, outcome),
		SenderID:     reviewerID,
		RecipientIDs: []primitive.ObjectID{vendorID},
	}
	if err := s.CreateNotification(ctx, notif); err != nil {
		return err
	}
	return s.CreateUserNotifications(ctx, notif.ID, notif.RecipientIDs, reviewerID)
}

func (s *NotificationService) GetUserNotifications(ctx context.Context, userID primitive.ObjectID, statuses []models.NotificationStatus, limit, offset int) ([]*models.UserNotification, error) {
	collection := s.GetCollection("user_notifications")

	filter := bson.M{"userId": userID}
	if len(statuses) > 0 {
		filter["status"] = bson.M{"$in": statuses}
	}

	opts := options.Find()
	opts.SetSort(bson.D{{Key: "createdAt", Value: -1}})
	if limit > 0 {
		opts.SetLimit(int64(limit))
	}
	if offset > 0 {
		opts.SetSkip(int64(offset))
	}

	var userNotifs []*models.UserNotification
	err := query.FindManyWithOptions(ctx, collection, filter, &userNotifs, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to get user notifications: %w", err)
	}

	return userNotifs, nil
}

func (s *NotificationService) MarkAsRead(ctx context.Context, userNotifID primitive.ObjectID) error {
	collection := s.GetCollection("user_notifications")
	now := time.Now()

	result, err := collection.UpdateOne(
		ctx,
		bson.M{"_id": userNotifID},
		bson.M{
			"$set": bson.M{
				"status": models.NotificationStatusRead,
				"readAt": now,
			},
		},
	)
	if err != nil {
		return fmt.Errorf("failed to mark notification as read: %w", err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("user notification %s: %w", userNotifID.Hex(), ErrNotFound)
	}

	return nil
}

func (s *NotificationService) GetUnreadCount(ctx context.Context, userID primitive.ObjectID) (int, error) {
	collection := s.GetCollection("user_notifications")

	count, err := collection.CountDocuments(ctx, bson.M{
		"userId": userID,
		"status": models.NotificationStatusUnread,
	})
	if err != nil {
		return 0, fmt.Errorf("failed to count unread notifications: %w", err)
	}

	return int(count), nil
}
