package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/ShaydeNofziger/skynav-api/internal/db"
	"github.com/ShaydeNofziger/skynav-api/internal/dto"
	"github.com/ShaydeNofziger/skynav-api/internal/middleware"
	"github.com/ShaydeNofziger/skynav-api/internal/models"
	"github.com/ShaydeNofziger/skynav-api/internal/telemetry"
	"github.com/ShaydeNofziger/skynav-api/internal/validation"
)

// GetProfile handles GET /api/profile. The profile id is the caller's
// subject, so no id appears in the path. A caller who has never written a
// profile gets a 404.
func (s *Server) GetProfile(w http.ResponseWriter, r *http.Request) {
	tel := telemetry.FromContext(r.Context())
	claims, ok := middleware.GetClaims(r.Context())
	if !ok {
		writeUnauthorized(w)
		return
	}

	profile, err := s.Profiles.FindByID(r.Context(), claims.Subject)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			writeNotFound(w, "profile not found")
			return
		}
		tel.Error("profile read failed", err)
		writeServerError(w)
		return
	}
	writeJSON(w, http.StatusOK, dto.ToProfileDetail(*profile))
}

// UpdateProfile handles PUT /api/profile as an upsert: the first write
// creates the profile, later writes merge onto it. Sending homeDropzoneId
// as an empty string clears the stored reference.
func (s *Server) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	tel := telemetry.FromContext(r.Context())
	claims, ok := middleware.GetClaims(r.Context())
	if !ok {
		writeUnauthorized(w)
		return
	}

	var input dto.ProfileInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeBadRequest(w, "invalid JSON body")
		return
	}
	if result := validation.ValidateProfileInput(&input); !result.Valid {
		writeValidationError(w, result)
		return
	}

	now := s.Now().UTC()
	profile, err := s.Profiles.FindByID(r.Context(), claims.Subject)
	if err != nil {
		if !errors.Is(err, db.ErrNotFound) {
			tel.Error("profile read failed", err)
			writeServerError(w)
			return
		}
		profile = &models.UserProfile{
			ID:          claims.Subject,
			DisplayName: claims.Name,
			Email:       claims.Email,
			CreatedAt:   now,
		}
	}

	input.ApplyTo(profile)
	profile.UpdatedAt = now

	if err := s.Profiles.Upsert(r.Context(), *profile); err != nil {
		tel.Error("profile update failed", err)
		writeServerError(w)
		return
	}
	writeJSON(w, http.StatusOK, dto.ToProfileDetail(*profile))
}
