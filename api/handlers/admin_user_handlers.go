package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"github.com/complyware/vendorback/middleware"
	"github.com/complyware/vendorback/models"
	"github.com/complyware/vendorback/services/mongo"
)

// ListUsers serves accounts, optionally narrowed by ?role=.
func ListUsers(d *Deps, lg *zap.SugaredLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		role := models.UserRole(r.URL.Query().Get("role"))
		if role != "" {
			if !role.IsValid() {
				respondError(w, http.StatusBadRequest, "invalid role")
				return
			}
			users, err := d.Users.ListUsersByRole(r.Context(), role)
			if err != nil {
				lg.Errorw("list users failed", "role", role, "error", err)
				respondError(w, http.StatusInternalServerError, "list users failed")
				return
			}
			respondJSON(w, users)
			return
		}

		users, err := d.Users.FindUsers(r.Context(), bson.M{})
		if err != nil {
			lg.Errorw("list users failed", "error", err)
			respondError(w, http.StatusInternalServerError, "list users failed")
			return
		}
		respondJSON(w, users)
	}
}

func CreateUser(d *Deps, lg *zap.SugaredLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Email           string          `json:"email"`
			Password        string          `json:"password"`
			Role            models.UserRole `json:"role"`
			FullName        string          `json:"full_name"`
			Company         string          `json:"company"`
			AgreementPeriod string          `json:"agreement_period"`
			PhoneNumber     string          `json:"phone_number"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondError(w, http.StatusBadRequest, err.Error())
			return
		}
		if req.Email == "" || req.Password == "" {
			respondError(w, http.StatusBadRequest, "email/password required")
			return
		}

		user := &models.User{
			Email:           req.Email,
			Password:        req.Password,
			Role:            req.Role,
			FullName:        req.FullName,
			Company:         req.Company,
			AgreementPeriod: req.AgreementPeriod,
			PhoneNumber:     req.PhoneNumber,
			Status:          models.UserStatusActive,
		}
		if err := d.Users.CreateUser(r.Context(), user); err != nil {
			respondError(w, http.StatusBadRequest, err.Error())
			return
		}

		recordActivity(d, r, models.ActivityUserCreated, &user.ID, "created "+string(user.Role)+" "+user.Email)
		respondJSON(w, map[string]any{"id": user.ID.Hex()})
	}
}

func UpdateUser(d *Deps, lg *zap.SugaredLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := mongo.ObjectIDFromString(chi.URLParam(r, "id"))
		if err != nil {
			respondError(w, http.StatusBadRequest, "invalid user id")
			return
		}

		var req struct {
			FullName        *string            `json:"full_name"`
			Company         *string            `json:"company"`
			Status          *models.UserStatus `json:"status"`
			AgreementPeriod *string            `json:"agreement_period"`
			PhoneNumber     *string            `json:"phone_number"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondError(w, http.StatusBadRequest, err.Error())
			return
		}

		update := bson.M{}
		if req.FullName != nil {
			update["full_name"] = *req.FullName
		}
		if req.Company != nil {
			update["company"] = *req.Company
		}
		if req.Status != nil {
			if !req.Status.IsValid() {
				respondError(w, http.StatusBadRequest, "invalid status")
				return
			}
			update["status"] = *req.Status
		}
		if req.AgreementPeriod != nil {
			update["agreement_period"] = *req.AgreementPeriod
		}
		if req.PhoneNumber != nil {
			update["phone_number"] = *req.PhoneNumber
		}
		if len(update) == 0 {
			respondError(w, http.StatusBadRequest, "nothing to update")
			return
		}

		if err := d.Users.UpdateUser(r.Context(), id, update); err != nil {
			lg.Errorw("update user failed", "user_id", id.Hex(), "error", err)
			respondError(w, http.StatusInternalServerError, "update failed")
			return
		}

		recordActivity(d, r, models.ActivityUserUpdated, &id, "")
		respondJSON(w, map[string]any{"updated": true})
	}
}

// AssignConsultant links a vendor to its reviewing consultant.
func AssignConsultant(d *Deps, lg *zap.SugaredLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		vendorID, err := mongo.ObjectIDFromString(chi.URLParam(r, "id"))
		if err != nil {
			respondError(w, http.StatusBadRequest, "invalid vendor id")
			return
		}

		var req struct {
			ConsultantID string `json:"consultant_id"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondError(w, http.StatusBadRequest, err.Error())
			return
		}
		consultantID, err := mongo.ObjectIDFromString(req.ConsultantID)
		if err != nil {
			respondError(w, http.StatusBadRequest, "invalid consultant id")
			return
		}

		if err := d.Users.AssignConsultant(r.Context(), vendorID, consultantID); err != nil {
			if errors.Is(err, mongo.ErrNotFound) {
				respondError(w, http.StatusNotFound, err.Error())
				return
			}
			respondError(w, http.StatusBadRequest, err.Error())
			return
		}

		recordActivity(d, r, models.ActivityConsultantAssigned, &vendorID, "")
		respondJSON(w, map[string]any{"assigned": true})
	}
}

// recordActivity writes the audit entry for a mutating request using the
// authenticated actor from context.
func recordActivity(d *Deps, r *http.Request, action models.ActivityAction, entityID *primitive.ObjectID, detail string) {
	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		return
	}
	actorID, err := mongo.ObjectIDFromString(claims.UserID)
	if err != nil {
		return
	}
	d.Activity.Record(r.Context(), actorID, claims.FullName, action, entityID, detail)
}
