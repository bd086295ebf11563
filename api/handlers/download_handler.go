package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/complyware/vendorback/models"
	"github.com/complyware/vendorback/services/mongo"
)

// approvedForDownload reports whether a document has cleared review.
func approvedForDownload(status models.DocumentStatus) bool {
	switch status {
	case models.DocumentStatusApproved,
		models.DocumentStatusConsultantApproved,
		models.DocumentStatusFinalApproved:
		return true
	}
	return false
}

// DownloadArtifact streams one approved document from object storage.
// Unreviewed and rejected files stay locked.
func DownloadArtifact(d *Deps, lg *zap.SugaredLogger) http.HandlerFunc {
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

		sub, err := d.Submissions.GetSubmissionByID(r.Context(), subID)
		if err != nil {
			if errors.Is(err, mongo.ErrNotFound) {
				respondError(w, http.StatusNotFound, "submission not found")
				return
			}
			respondError(w, http.StatusInternalServerError, "lookup failed")
			return
		}
		if docIndex >= len(sub.Documents) {
			respondError(w, http.StatusNotFound, "document not found")
			return
		}

		doc := sub.Documents[docIndex]
		if !approvedForDownload(doc.Status) {
			respondError(w, http.StatusForbidden, "document is not approved")
			return
		}
		if doc.FileKey == "" {
			respondError(w, http.StatusNotFound, "no stored file for document")
			return
		}

		content, err := d.Artifacts.DownloadFile(r.Context(), doc.FileKey)
		if err != nil {
			lg.Errorw("artifact download failed", "key", doc.FileKey, "error", err)
			respondError(w, http.StatusInternalServerError, "download failed")
			return
		}

		recordActivity(d, r, models.ActivityArtifactDownloaded, &subID, doc.DocumentName)

		w.Header().Set("Content-Type", "application/octet-stream")
		w.Header().Set("Content-Disposition", `attachment; filename="`+doc.DocumentName+`"`)
		w.Header().Set("Content-Length", strconv.Itoa(len(content)))
		_, _ = w.Write(content)
	}
}
