package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/complyware/vendorback/middleware"
	"github.com/complyware/vendorback/models"
	"github.com/complyware/vendorback/reporting"
	"github.com/complyware/vendorback/services/mongo"
	"github.com/complyware/vendorback/services/redis"
)

// CreateSubmission opens a vendor's submission slot for one upload period.
func CreateSubmission(d *Deps, lg *zap.SugaredLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.ClaimsFromContext(r.Context())
		if !ok {
			respondError(w, http.StatusUnauthorized, "authentication required")
			return
		}
		vendorID, err := mongo.ObjectIDFromString(claims.UserID)
		if err != nil {
			respondError(w, http.StatusUnauthorized, "invalid token subject")
			return
		}

		var req struct {
			Month string `json:"month"`
			Year  int    `json:"year"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondError(w, http.StatusBadRequest, err.Error())
			return
		}
		if req.Month == "" || req.Year == 0 {
			respondError(w, http.StatusBadRequest, "month and year required")
			return
		}

		vendor, err := d.Users.GetUserByID(r.Context(), vendorID)
		if err != nil {
			respondError(w, http.StatusUnauthorized, "unknown vendor")
			return
		}

		sub := &models.DocumentSubmission{
			VendorID:       vendorID,
			UploadPeriod:   models.UploadPeriod{Month: req.Month, Year: req.Year},
			SubmissionDate: time.Now(),
		}
		if vendor.AssignedConsultant != nil {
			sub.ConsultantID = vendor.AssignedConsultant
		}

		created, err := d.Submissions.CreateSubmission(r.Context(), sub)
		if err != nil {
			lg.Errorw("create submission failed", "vendor_id", vendorID.Hex(), "error", err)
			respondError(w, http.StatusInternalServerError, "create submission failed")
			return
		}

		recordActivity(d, r, models.ActivitySubmissionStarted, &created.ID, req.Month+" "+strconv.Itoa(req.Year))
		respondJSON(w, created)
	}
}

// AddDocument appends a document entry to a submission. The file itself
// is already in object storage; this records its metadata and, when a
// file key is supplied, verifies the object actually exists.
func AddDocument(d *Deps, lg *zap.SugaredLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		subID, err := mongo.ObjectIDFromString(chi.URLParam(r, "id"))
		if err != nil {
			respondError(w, http.StatusBadRequest, "invalid submission id")
			return
		}

		sub, err := d.Submissions.GetSubmissionByID(r.Context(), subID)
		if err != nil {
			if errors.Is(err, mongo.ErrNotFound) {
				respondError(w, http.StatusNotFound, "submission not found")
				return
			}
			respondError(w, http.StatusInternalServerError, "lookup failed")
			return
		}

		claims, ok := middleware.ClaimsFromContext(r.Context())
		if !ok {
			respondError(w, http.StatusUnauthorized, "authentication required")
			return
		}
		if claims.Role == models.UserRoleVendor && claims.UserID != sub.VendorID.Hex() {
			respondError(w, http.StatusForbidden, "not your submission")
			return
		}

		var req struct {
			DocumentType string `json:"document_type"`
			DocumentName string `json:"document_name"`
			FileKey      string `json:"file_key"`
			FileSize     int64  `json:"file_size"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondError(w, http.StatusBadRequest, err.Error())
			return
		}
		req.DocumentType = strings.TrimSpace(req.DocumentType)
		req.DocumentName = strings.TrimSpace(req.DocumentName)
		if req.DocumentType == "" || req.DocumentName == "" {
			respondError(w, http.StatusBadRequest, "document_type and document_name required")
			return
		}

		if req.FileKey != "" {
			exists, err := d.Artifacts.FileExists(r.Context(), req.FileKey)
			if err != nil {
				lg.Errorw("artifact existence check failed", "key", req.FileKey, "error", err)
				respondError(w, http.StatusInternalServerError, "artifact check failed")
				return
			}
			if !exists {
				respondError(w, http.StatusBadRequest, "file_key does not reference a stored object")
				return
			}
		}

		doc := models.SubmittedDocument{
			DocumentType: req.DocumentType,
			DocumentName: req.DocumentName,
			Status:       models.DocumentStatusUnderReview,
			UploadDate:   time.Now(),
			FileKey:      req.FileKey,
			FileSize:     req.FileSize,
		}
		updated, err := d.Submissions.AppendDocument(r.Context(), subID, doc)
		if err != nil {
			lg.Errorw("append document failed", "submission_id", subID.Hex(), "error", err)
			respondError(w, http.StatusInternalServerError, "append document failed")
			return
		}

		recordActivity(d, r, models.ActivityDocumentUploaded, &subID, req.DocumentName)
		respondJSON(w, updated)
	}
}

// GetSubmission returns one submission with its nested documents.
func GetSubmission(d *Deps, lg *zap.SugaredLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		subID, err := mongo.ObjectIDFromString(chi.URLParam(r, "id"))
		if err != nil {
			respondError(w, http.StatusBadRequest, "invalid submission id")
			return
		}
		sub, err := d.Submissions.GetSubmissionByID(r.Context(), subID)
		if err != nil {
			if errors.Is(err, mongo.ErrNotFound) {
				respondError(w, http.StatusNotFound, "submission not found")
				return
			}
			respondError(w, http.StatusInternalServerError, "lookup failed")
			return
		}
		respondJSON(w, sub)
	}
}

// ListVendorSubmissions returns the calling vendor's own submissions.
func ListVendorSubmissions(d *Deps, lg *zap.SugaredLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.ClaimsFromContext(r.Context())
		if !ok {
			respondError(w, http.StatusUnauthorized, "authentication required")
			return
		}
		vendorID, err := mongo.ObjectIDFromString(claims.UserID)
		if err != nil {
			respondError(w, http.StatusUnauthorized, "invalid token subject")
			return
		}
		subs, err := d.Submissions.ListSubmissionsForVendor(r.Context(), vendorID)
		if err != nil {
			lg.Errorw("list vendor submissions failed", "vendor_id", vendorID.Hex(), "error", err)
			respondError(w, http.StatusInternalServerError, "list submissions failed")
			return
		}
		respondJSON(w, subs)
	}
}

// ListSubmissions is the consultant/admin review queue, filterable by
// period and status.
func ListSubmissions(d *Deps, lg *zap.SugaredLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var filter reporting.SubmissionFilter
		q := r.URL.Query()
		if y := q.Get("year"); y != "" {
			if year, err := strconv.Atoi(y); err == nil {
				filter.Year = &year
			}
		}
		if m := q.Get("month"); m != "" {
			filter.Month = &m
		}
		if st := q.Get("status"); st != "" {
			status := models.SubmissionStatus(st)
			filter.Status = &status
		}

		subs, err := d.Submissions.ListAllSubmissions(r.Context(), filter)
		if err != nil {
			lg.Errorw("list submissions failed", "error", err)
			respondError(w, http.StatusInternalServerError, "list submissions failed")
			return
		}
		respondJSON(w, subs)
	}
}

// ReviewDocument records a consultant verdict on one document and
// republishes the submission's derived status.
func ReviewDocument(d *Deps, lg *zap.SugaredLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		subID, err := mongo.ObjectIDFromString(chi.URLParam(r, "id"))
		if err != nil {
			respondError(w, http.StatusBadRequest, "invalid submission id")
			return
		}
		docIndex, err := strconv.Atoi(chi.URLParam(r, "docIndex"))
		if err != nil || docIndex < 0 {
			respondError(w, http.StatusBadRequest, "invalid document index")
			return
		}

		var req struct {
			Status  models.DocumentStatus `json:"status"`
			Remarks string                `json:"remarks"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondError(w, http.StatusBadRequest, err.Error())
			return
		}
		if req.Status != models.DocumentStatusConsultantApproved && req.Status != models.DocumentStatusConsultantRejected {
			respondError(w, http.StatusBadRequest, "status must be consultant_approved or consultant_rejected")
			return
		}

		updated, err := d.Submissions.ReviewDocument(r.Context(), subID, docIndex, req.Status, req.Remarks)
		if err != nil {
			if errors.Is(err, mongo.ErrNotFound) {
				respondError(w, http.StatusNotFound, "submission or document not found")
				return
			}
			lg.Errorw("review failed", "submission_id", subID.Hex(), "doc_index", docIndex, "error", err)
			respondError(w, http.StatusInternalServerError, "review failed")
			return
		}

		docName := ""
		if docIndex < len(updated.Documents) {
			docName = updated.Documents[docIndex].DocumentName
		}
		outcome := "approved"
		if req.Status == models.DocumentStatusConsultantRejected {
			outcome = "rejected"
		}

		// Side effects are best effort; a lost notification or event never
		// rolls back the review itself.
		if claims, ok := middleware.ClaimsFromContext(r.Context()); ok {
			if reviewerID, err := mongo.ObjectIDFromString(claims.UserID); err == nil {
				if err := d.Notifications.NotifyReviewOutcome(r.Context(), reviewerID, updated.VendorID, docName, outcome); err != nil {
					lg.Warnw("review notification failed", "submission_id", subID.Hex(), "error", err)
				}
			}
		}
		if err := d.Cache.PublishReviewEvent(r.Context(), redis.ReviewEvent{
			SubmissionID: updated.ID.Hex(),
			VendorID:     updated.VendorID.Hex(),
			DocumentName: docName,
			Outcome:      outcome,
		}); err != nil {
			lg.Warnw("review event publish failed", "submission_id", subID.Hex(), "error", err)
		}

		recordActivity(d, r, models.ActivityDocumentReviewed, &subID, docName+" "+outcome)
		respondJSON(w, updated)
	}
}
