package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/complyware/vendorback/services/mongo"
)

// ListLegacyDocuments returns a vendor's pre-submission-model documents.
// These only matter for back-compat reporting on old vendors.
func ListLegacyDocuments(d *Deps, lg *zap.SugaredLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		vendorID, err := mongo.ObjectIDFromString(chi.URLParam(r, "id"))
		if err != nil {
			respondError(w, http.StatusBadRequest, "invalid vendor id")
			return
		}

		docs, err := d.Documents.ListDocumentsForVendor(r.Context(), vendorID)
		if err != nil {
			lg.Errorw("list legacy documents failed", "vendor_id", vendorID.Hex(), "error", err)
			respondError(w, http.StatusInternalServerError, "list documents failed")
			return
		}
		respondJSON(w, docs)
	}
}
