package service

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"

	"github.com/complyware/vendorback/models"
	mongosvc "github.com/complyware/vendorback/services/mongo"
	"github.com/complyware/vendorback/services/mongo/command"
	red "github.com/complyware/vendorback/services/redis"
	s3svc "github.com/complyware/vendorback/services/s3"
)

// These tests hit live backing services and are skipped unless the
// corresponding connection strings are exported.

func testMongoDB(t *testing.T) *mongo.Database {
	t.Helper()
	uri := os.Getenv("MONGO_URI")
	if uri == "" {
		t.Skip("MONGO_URI not set")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Disconnect(context.Background()) })

	return client.Database("vendorback-test")
}

func TestMongoUserRoundTrip(t *testing.T) {
	db := testMongoDB(t)
	ctx := context.Background()
	collection := db.Collection("users")

	user := models.User{
		ID:        primitive.NewObjectID(),
		Email:     "vendor@example.com",
		Password:  "hashed",
		Role:      models.UserRoleVendor,
		FullName:  "Test Vendor",
		Company:   "Acme Supplies",
		Status:    models.UserStatusActive,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	insertResult, err := command.InsertOne(ctx, collection, user)
	assert.NoError(t, err)
	assert.NotNil(t, insertResult.InsertedID)

	var inserted models.User
	err = collection.FindOne(ctx, primitive.M{"_id": user.ID}).Decode(&inserted)
	assert.NoError(t, err)
	assert.Equal(t, user.Email, inserted.Email)
	assert.Equal(t, user.Role, inserted.Role)

	deleteResult, err := command.DeleteByID(ctx, collection, user.ID)
	assert.NoError(t, err)
	assert.Equal(t, int64(1), deleteResult.DeletedCount)
}

func TestSubmissionStatusRefresh(t *testing.T) {
	db := testMongoDB(t)
	ctx := context.Background()

	base := mongosvc.New(db, zap.NewNop().Sugar())
	submissions := mongosvc.NewSubmissionService(base)

	sub := &models.DocumentSubmission{
		VendorID:       primitive.NewObjectID(),
		UploadPeriod:   models.UploadPeriod{Month: "January", Year: 2025},
		SubmissionDate: time.Now(),
	}
	created, err := submissions.CreateSubmission(ctx, sub)
	require.NoError(t, err)
	t.Cleanup(func() {
		_, _ = command.DeleteByID(ctx, submissions.GetCollection(), created.ID)
	})
	assert.Equal(t, models.SubmissionStatusDraft, created.SubmissionStatus)

	doc := models.SubmittedDocument{
		DocumentType: "insurance",
		DocumentName: "policy.pdf",
		Status:       models.DocumentStatusUnderReview,
		UploadDate:   time.Now(),
	}
	updated, err := submissions.AppendDocument(ctx, created.ID, doc)
	require.NoError(t, err)
	assert.Equal(t, models.SubmissionStatusUnderReview, updated.SubmissionStatus)

	reviewed, err := submissions.ReviewDocument(ctx, created.ID, 0, models.DocumentStatusConsultantApproved, "ok")
	require.NoError(t, err)
	assert.Equal(t, models.SubmissionStatusFullyApproved, reviewed.SubmissionStatus)
	require.NotNil(t, reviewed.ConsultantApproval)
	assert.NotNil(t, reviewed.ConsultantApproval.ApprovalDate)
}

func TestS3ArtifactRoundTrip(t *testing.T) {
	bucket := os.Getenv("S3_BUCKET")
	if bucket == "" {
		t.Skip("S3_BUCKET not set")
	}

	ctx := context.Background()
	svc, err := s3svc.NewS3Service(&s3svc.S3ClientConfig{
		Bucket:    bucket,
		Endpoint:  os.Getenv("AWS_ENDPOINT"),
		Region:    os.Getenv("AWS_REGION"),
		AccessKey: os.Getenv("AWS_ACCESS_KEY_ID"),
		SecretKey: os.Getenv("AWS_SECRET_ACCESS_KEY"),
	}, zap.NewNop().Sugar())
	require.NoError(t, err)

	key := s3svc.NewObjectKey(primitive.NewObjectID().Hex(), "policy.pdf")
	content := []byte("%PDF-1.4 test artifact")

	require.NoError(t, svc.UploadFile(ctx, key, content, "application/pdf"))
	t.Cleanup(func() { _ = svc.DeleteFile(ctx, key) })

	exists, err := svc.FileExists(ctx, key)
	require.NoError(t, err)
	assert.True(t, exists)

	got, err := svc.DownloadFile(ctx, key)
	require.NoError(t, err)
	assert.Equal(t, content, got)
}

func TestRedisReportCache(t *testing.T) {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		t.Skip("REDIS_ADDR not set")
	}

	ctx := context.Background()
	svc := red.NewRedisService(red.NewRedisClient(addr, "", 0), zap.NewNop().Sugar())

	key := red.ReportKey("vendor-aging", "test")
	rows := []models.VendorAgingRow{{VendorName: "Acme Supplies", Status: "Compliant", DaysSinceLastUpload: "3"}}

	require.NoError(t, svc.CacheReport(ctx, key, rows, 10*time.Second))
	t.Cleanup(func() { _ = svc.DeleteValue(ctx, key) })

	var got []models.VendorAgingRow
	require.NoError(t, svc.GetCachedReport(ctx, key, &got))
	assert.Equal(t, rows, got)

	var missing []models.VendorAgingRow
	err := svc.GetCachedReport(ctx, red.ReportKey("vendor-aging", "absent"), &missing)
	assert.ErrorIs(t, err, red.ErrCacheMiss)
}
