package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/complyware/vendorback/middleware"
	"github.com/complyware/vendorback/models"
	"github.com/complyware/vendorback/services/mongo"
)

// ListNotifications returns the caller's notifications, unread first.
func ListNotifications(d *Deps, lg *zap.SugaredLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.ClaimsFromContext(r.Context())
		if !ok {
			respondError(w, http.StatusUnauthorized, "authentication required")
			return
		}
		userID, err := mongo.ObjectIDFromString(claims.UserID)
		if err != nil {
			respondError(w, http.StatusUnauthorized, "invalid token subject")
			return
		}

		statuses := []models.NotificationStatus{models.NotificationStatusUnread, models.NotificationStatusRead}
		if r.URL.Query().Get("unread") == "true" {
			statuses = []models.NotificationStatus{models.NotificationStatusUnread}
		}
		limit := 50
		if v := r.URL.Query().Get("limit"); v != "" {
			if n, err := strconv.Atoi(v); err == nil && n > 0 && n <= 200 {
				limit = n
			}
		}

		notifs, err := d.Notifications.GetUserNotifications(r.Context(), userID, statuses, limit, 0)
		if err != nil {
			lg.Errorw("list notifications failed", "user_id", userID.Hex(), "error", err)
			respondError(w, http.StatusInternalServerError, "list notifications failed")
			return
		}
		respondJSON(w, notifs)
	}
}

// UnreadCount returns how many unread notifications the caller has.
func UnreadCount(d *Deps, lg *zap.SugaredLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.ClaimsFromContext(r.Context())
		if !ok {
			respondError(w, http.StatusUnauthorized, "authentication required")
			return
		}
		userID, err := mongo.ObjectIDFromString(claims.UserID)
		if err != nil {
			respondError(w, http.StatusUnauthorized, "invalid token subject")
			return
		}

		count, err := d.Notifications.GetUnreadCount(r.Context(), userID)
		if err != nil {
			lg.Errorw("unread count failed", "user_id", userID.Hex(), "error", err)
			respondError(w, http.StatusInternalServerError, "unread count failed")
			return
		}
		respondJSON(w, map[string]int{"unread": count})
	}
}

// MarkNotificationRead flips one recipient-side notification to read.
func MarkNotificationRead(d *Deps, lg *zap.SugaredLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := mongo.ObjectIDFromString(chi.URLParam(r, "id"))
		if err != nil {
			respondError(w, http.StatusBadRequest, "invalid notification id")
			return
		}
		if err := d.Notifications.MarkAsRead(r.Context(), id); err != nil {
			if errors.Is(err, mongo.ErrNotFound) {
				respondError(w, http.StatusNotFound, "notification not found")
				return
			}
			lg.Errorw("mark read failed", "id", id.Hex(), "error", err)
			respondError(w, http.StatusInternalServerError, "mark read failed")
			return
		}
		respondJSON(w, map[string]any{"read": true})
	}
}
