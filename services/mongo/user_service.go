package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/crypto/bcrypt"

	"github.com/complyware/vendorback/models"
	"github.com/complyware/vendorback/services/mongo/query"
)

var ErrNotFound = errors.New("not found")

type UserService struct {
	*MongoService
}

func NewUserService(mongoService *MongoService) *UserService {
	return &UserService{MongoService: mongoService}
}

func (s *UserService) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	collection := s.GetCollection("users")

	var user models.User
	filter := bson.M{"email": email}

	err := query.FindOne(ctx, collection, filter, &user)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, fmt.Errorf("user %s: %w", email, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return &user, nil
}

func (s *UserService) GetUserByID(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	collection := s.GetCollection("users")

	var user models.User

	err := query.FindByID(ctx, collection, id, &user)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, fmt.Errorf("user %s: %w", id.Hex(), ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return &user, nil
}

func (s *UserService) ListUsersByRole(ctx context.Context, role models.UserRole) ([]*models.User, error) {
	collection := s.GetCollection("users")

	var users []*models.User

	err := query.FindMany(ctx, collection, bson.M{"role": role}, &users)
	if err != nil {
		return nil, fmt.Errorf("failed to list users by role: %w", err)
	}

	return users, nil
}

func (s *UserService) FindUsers(ctx context.Context, filter bson.M) ([]*models.User, error) {
	collection := s.GetCollection("users")

	var users []*models.User

	err := query.FindMany(ctx, collection, filter, &users)
	if err != nil {
		return nil, fmt.Errorf("failed to find users: %w", err)
	}

	return users, nil
}

func (s *UserService) CreateUser(ctx context.Context, user *models.User) error {
	collection := s.GetCollection("users")

	if !user.Role.IsValid() {
		return fmt.Errorf("invalid role %q", user.Role)
	}
	if user.Status == "" {
		user.Status = models.UserStatusPending
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(user.Password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}
	user.Password = string(hashedPassword)

	now := time.Now()
	user.CreatedAt = now
	user.UpdatedAt = now

	res, err := collection.InsertOne(ctx, user)
	if err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}

	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		user.ID = oid
		s.lg.Infow("user created", "user_id", user.ID.Hex(), "role", user.Role)
	} else {
		return fmt.Errorf("failed to get inserted user ID, expected ObjectID, got %T", res.InsertedID)
	}

	return nil
}

func (s *UserService) UpdateUser(ctx context.Context, id primitive.ObjectID, updateData bson.M) error {
	collection := s.GetCollection("users")

	updateQuery := bson.M{
		"$set":         updateData,
		"$currentDate": bson.M{"updated_at": true},
	}

	_, err := collection.UpdateOne(ctx, bson.M{"_id": id}, updateQuery)
	if err != nil {
		return fmt.Errorf("failed to update user: %w", err)
	}

	return nil
}

// AssignConsultant points a vendor at its reviewing consultant. A vendor
// has at most one; reassignment overwrites.
func (s *UserService) AssignConsultant(ctx context.Context, vendorID, consultantID primitive.ObjectID) error {
	consultant, err := s.GetUserByID(ctx, consultantID)
	if err != nil {
		return err
	}
	if consultant.Role != models.UserRoleConsultant {
		return fmt.Errorf("user %s is not a consultant", consultantID.Hex())
	}

	vendor, err := s.GetUserByID(ctx, vendorID)
	if err != nil {
		return err
	}
	if vendor.Role != models.UserRoleVendor {
		return fmt.Errorf("user %s is not a vendor", vendorID.Hex())
	}

	if err := s.UpdateUser(ctx, vendorID, bson.M{"assigned_consultant": consultantID}); err != nil {
		return err
	}
	s.lg.Infow("consultant assigned",
		"vendor_id", vendorID.Hex(), "consultant_id", consultantID.Hex())
	return nil
}

// SetStatus soft-classifies an account; accounts are never hard-deleted
// by anything in the reporting path.
func (s *UserService) SetStatus(ctx context.Context, id primitive.ObjectID, status models.UserStatus) error {
	if !status.IsValid() {
		return fmt.Errorf("invalid user status %q", status)
	}
	return s.UpdateUser(ctx, id, bson.M{"status": status})
}

func (s *UserService) CheckPassword(hashedPassword, password string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password))
	return err == nil
}

func (s *UserService) ChangePassword(ctx context.Context, id primitive.ObjectID, newPassword string) error {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	return s.UpdateUser(ctx, id, bson.M{"password": string(hashedPassword)})
}
