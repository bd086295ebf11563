package reporting

import (
	"context"
	"fmt"
	"sync"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"github.com/complyware/vendorback/models"
)

// SubmissionFilter narrows ListAllSubmissions. Nil fields match all.
type SubmissionFilter struct {
	Year   *int
	Month  *string
	Status *models.SubmissionStatus
}

// Source is the read capability the reports run over. The mongo service
// layer implements it; tests use in-memory fakes.
type Source interface {
	ListUsersByRole(ctx context.Context, role models.UserRole) ([]*models.User, error)
	GetUserByID(ctx context.Context, id primitive.ObjectID) (*models.User, error)
	ListSubmissionsForVendor(ctx context.Context, vendorID primitive.ObjectID) ([]*models.DocumentSubmission, error)
	ListLegacyDocumentsForVendor(ctx context.Context, vendorID primitive.ObjectID) ([]*models.Document, error)
	ListAllSubmissions(ctx context.Context, filter SubmissionFilter) ([]*models.DocumentSubmission, error)
}

// Fetcher gathers the raw inputs for one report request. Source fetches
// for different vendors are independent, so they run concurrently; a
// failed fetch logs and contributes an empty slice rather than aborting
// the report.
type Fetcher struct {
	src Source
	lg  *zap.SugaredLogger
}

func NewFetcher(src Source, lg *zap.SugaredLogger) *Fetcher {
	return &Fetcher{src: src, lg: lg}
}

// fetchConcurrency bounds the per-vendor fan-out.
const fetchConcurrency = 8

// FetchVendorData loads every vendor plus its submissions and legacy
// documents. Only the vendor listing itself is fatal; without it there is
// nothing to report over.
func (f *Fetcher) FetchVendorData(ctx context.Context) ([]VendorData, error) {
	vendors, err := f.src.ListUsersByRole(ctx, models.UserRoleVendor)
	if err != nil {
		return nil, fmt.Errorf("failed to list vendors: %w", err)
	}

	data := make([]VendorData, len(vendors))
	sem := make(chan struct{}, fetchConcurrency)
	var wg sync.WaitGroup

	for i, vendor := range vendors {
		wg.Add(1)
		sem <- struct{}{}
		go func(i int, vendor *models.User) {
			defer wg.Done()
			defer func() { <-sem }()
			data[i] = f.fetchOne(ctx, vendor)
		}(i, vendor)
	}
	wg.Wait()

	return data, nil
}

// FetchVendor loads a single vendor's report inputs.
func (f *Fetcher) FetchVendor(ctx context.Context, vendorID primitive.ObjectID) (VendorData, error) {
	vendor, err := f.src.GetUserByID(ctx, vendorID)
	if err != nil {
		return VendorData{}, fmt.Errorf("failed to load vendor: %w", err)
	}
	return f.fetchOne(ctx, vendor), nil
}

func (f *Fetcher) fetchOne(ctx context.Context, vendor *models.User) VendorData {
	vd := VendorData{Vendor: vendor}

	subs, err := f.src.ListSubmissionsForVendor(ctx, vendor.ID)
	if err != nil {
		f.lg.Warnw("submission fetch failed, reporting without it",
			"vendor_id", vendor.ID.Hex(), "error", err)
	} else {
		vd.Submissions = subs
	}

	legacy, err := f.src.ListLegacyDocumentsForVendor(ctx, vendor.ID)
	if err != nil {
		f.lg.Warnw("legacy document fetch failed, reporting without it",
			"vendor_id", vendor.ID.Hex(), "error", err)
	} else {
		vd.LegacyDocuments = legacy
	}

	if vendor.AssignedConsultant != nil {
		consultant, err := f.src.GetUserByID(ctx, *vendor.AssignedConsultant)
		if err != nil {
			f.lg.Warnw("consultant lookup failed",
				"vendor_id", vendor.ID.Hex(), "error", err)
		} else {
			vd.ConsultantName = consultant.FullName
		}
	}

	return vd
}
