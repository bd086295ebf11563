package handlers

import (
	"net/http"
	"strconv"

	"go.uber.org/zap"
)

// ListActivity pages through the audit trail, newest first.
func ListActivity(d *Deps, lg *zap.SugaredLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		limit := int64(50)
		skip := int64(0)
		if v := r.URL.Query().Get("limit"); v != "" {
			if n, err := strconv.ParseInt(v, 10, 64); err == nil && n > 0 && n <= 200 {
				limit = n
			}
		}
		if v := r.URL.Query().Get("skip"); v != "" {
			if n, err := strconv.ParseInt(v, 10, 64); err == nil && n >= 0 {
				skip = n
			}
		}

		entries, err := d.Activity.ListActivity(r.Context(), limit, skip)
		if err != nil {
			lg.Errorw("list activity failed", "error", err)
			respondError(w, http.StatusInternalServerError, "list activity failed")
			return
		}
		respondJSON(w, entries)
	}
}
