package reporting

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"github.com/complyware/vendorback/models"
)

type fakeSource struct {
	vendors     []*models.User
	users       map[primitive.ObjectID]*models.User
	submissions map[primitive.ObjectID][]*models.DocumentSubmission
	legacy      map[primitive.ObjectID][]*models.Document

	failSubmissionsFor map[primitive.ObjectID]bool
	failLegacy         bool
	failVendorList     bool
}

func (f *fakeSource) ListUsersByRole(_ context.Context, role models.UserRole) ([]*models.User, error) {
	if f.failVendorList {
		return nil, errors.New("store offline")
	}
	var out []*models.User
	for _, u := range f.vendors {
		if u.Role == role {
			out = append(out, u)
		}
	}
	return out, nil
}

func (f *fakeSource) GetUserByID(_ context.Context, id primitive.ObjectID) (*models.User, error) {
	if u, ok := f.users[id]; ok {
		return u, nil
	}
	return nil, errors.New("user not found")
}

func (f *fakeSource) ListSubmissionsForVendor(_ context.Context, vendorID primitive.ObjectID) ([]*models.DocumentSubmission, error) {
	if f.failSubmissionsFor[vendorID] {
		return nil, errors.New("query timeout")
	}
	return f.submissions[vendorID], nil
}

func (f *fakeSource) ListLegacyDocumentsForVendor(_ context.Context, vendorID primitive.ObjectID) ([]*models.Document, error) {
	if f.failLegacy {
		return nil, errors.New("collection unavailable")
	}
	return f.legacy[vendorID], nil
}

func (f *fakeSource) ListAllSubmissions(_ context.Context, _ SubmissionFilter) ([]*models.DocumentSubmission, error) {
	var out []*models.DocumentSubmission
	for _, subs := range f.submissions {
		out = append(out, subs...)
	}
	return out, nil
}

func TestFetchVendorDataPartialFailure(t *testing.T) {
	healthy := makeVendor("Healthy")
	broken := makeVendor("Broken")
	src := &fakeSource{
		vendors: []*models.User{healthy, broken},
		users:   map[primitive.ObjectID]*models.User{},
		submissions: map[primitive.ObjectID][]*models.DocumentSubmission{
			healthy.ID: {makeSubmission(healthy, "July", 2025, models.DocumentStatusApproved)},
			broken.ID:  {makeSubmission(broken, "July", 2025, models.DocumentStatusApproved)},
		},
		failSubmissionsFor: map[primitive.ObjectID]bool{broken.ID: true},
		failLegacy:         true,
	}

	fetcher := NewFetcher(src, zap.NewNop().Sugar())
	data, err := fetcher.FetchVendorData(context.Background())
	require.NoError(t, err)
	require.Len(t, data, 2)

	byName := map[string]VendorData{}
	for _, vd := range data {
		byName[vd.Vendor.FullName] = vd
	}
	// The healthy vendor's submissions arrive; the broken vendor still
	// appears, just with an empty contribution.
	assert.Len(t, byName["Healthy"].Submissions, 1)
	assert.Empty(t, byName["Broken"].Submissions)
	assert.Empty(t, byName["Healthy"].LegacyDocuments)
}

func TestFetchVendorDataVendorListFailureIsFatal(t *testing.T) {
	fetcher := NewFetcher(&fakeSource{failVendorList: true}, zap.NewNop().Sugar())
	_, err := fetcher.FetchVendorData(context.Background())
	assert.Error(t, err)
}

func TestFetchVendorResolvesConsultantName(t *testing.T) {
	consultant := &models.User{
		ID:       primitive.NewObjectID(),
		FullName: "Jordan Reviewer",
		Role:     models.UserRoleConsultant,
	}
	vendor := makeVendor("Acme")
	vendor.AssignedConsultant = &consultant.ID

	src := &fakeSource{
		vendors: []*models.User{vendor},
		users: map[primitive.ObjectID]*models.User{
			vendor.ID:     vendor,
			consultant.ID: consultant,
		},
	}

	fetcher := NewFetcher(src, zap.NewNop().Sugar())
	vd, err := fetcher.FetchVendor(context.Background(), vendor.ID)
	require.NoError(t, err)
	assert.Equal(t, "Jordan Reviewer", vd.ConsultantName)
}
