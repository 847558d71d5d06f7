package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ShaydeNofziger/skynav-api/internal/db"
	"github.com/ShaydeNofziger/skynav-api/internal/dto"
	"github.com/ShaydeNofziger/skynav-api/internal/middleware"
	"github.com/ShaydeNofziger/skynav-api/internal/models"
	"github.com/ShaydeNofziger/skynav-api/internal/pagination"
	"github.com/ShaydeNofziger/skynav-api/internal/telemetry"
	"github.com/ShaydeNofziger/skynav-api/internal/validation"
)

// loadOwnedTrip loads a trip and verifies the caller owns it. A trip owned
// by someone else reads as not found so resource existence is not revealed.
// Returns nil after writing the response when the caller should stop.
func (s *Server) loadOwnedTrip(w http.ResponseWriter, r *http.Request, tel *telemetry.Logger, tripID, callerID string) *models.Trip {
	trip, err := s.Trips.FindByID(r.Context(), tripID)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			writeNotFound(w, "trip not found")
			return nil
		}
		tel.Error("trip read failed", err)
		writeServerError(w)
		return nil
	}
	if trip.OwnerID != callerID {
		writeNotFound(w, "trip not found")
		return nil
	}
	return trip
}

// ListTrips handles GET /api/trips and returns the caller's trips.
func (s *Server) ListTrips(w http.ResponseWriter, r *http.Request) {
	tel := telemetry.FromContext(r.Context())
	claims, ok := middleware.GetClaims(r.Context())
	if !ok {
		writeUnauthorized(w)
		return
	}

	page := pagination.FromQuery(r.URL.Query())
	trips, total, err := s.Trips.FindByOwner(r.Context(), claims.Subject, page)
	if err != nil {
		tel.Error("trip list query failed", err)
		writeServerError(w)
		return
	}

	items := make([]dto.TripSummary, 0, len(trips))
	for _, t := range trips {
		items = append(items, dto.ToTripSummary(t))
	}
	writeJSON(w, http.StatusOK, pagination.NewPage(items, total, page))
}

// CreateTrip handles POST /api/trips.
func (s *Server) CreateTrip(w http.ResponseWriter, r *http.Request) {
	tel := telemetry.FromContext(r.Context())
	claims, ok := middleware.GetClaims(r.Context())
	if !ok {
		writeUnauthorized(w)
		return
	}

	var input dto.TripInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeBadRequest(w, "invalid JSON body")
		return
	}
	if result := validation.ValidateTripCreate(&input); !result.Valid {
		writeValidationError(w, result)
		return
	}

	now := s.Now().UTC()
	trip := models.Trip{
		ID:        models.NewTripID(),
		OwnerID:   claims.Subject,
		Status:    models.TripStatusPlanned,
		CreatedAt: now,
		UpdatedAt: now,
	}
	input.ApplyTo(&trip)

	if err := s.Trips.Insert(r.Context(), trip); err != nil {
		tel.Error("trip create failed", err)
		writeServerError(w)
		return
	}
	tel.Event("trip.created", map[string]interface{}{"trip_id": trip.ID})
	writeJSON(w, http.StatusCreated, dto.ToTripDetail(trip))
}

// GetTrip handles GET /api/trips/{id}.
func (s *Server) GetTrip(w http.ResponseWriter, r *http.Request) {
	tel := telemetry.FromContext(r.Context())
	claims, ok := middleware.GetClaims(r.Context())
	if !ok {
		writeUnauthorized(w)
		return
	}

	trip := s.loadOwnedTrip(w, r, tel, chi.URLParam(r, "id"), claims.Subject)
	if trip == nil {
		return
	}
	writeJSON(w, http.StatusOK, dto.ToTripDetail(*trip))
}

// UpdateTrip handles PUT /api/trips/{id}. Absent fields stay unchanged; the
// merged date range must remain valid.
func (s *Server) UpdateTrip(w http.ResponseWriter, r *http.Request) {
	tel := telemetry.FromContext(r.Context())
	claims, ok := middleware.GetClaims(r.Context())
	if !ok {
		writeUnauthorized(w)
		return
	}

	var input dto.TripInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeBadRequest(w, "invalid JSON body")
		return
	}
	if result := validation.ValidateTripInput(&input); !result.Valid {
		writeValidationError(w, result)
		return
	}

	trip := s.loadOwnedTrip(w, r, tel, chi.URLParam(r, "id"), claims.Subject)
	if trip == nil {
		return
	}

	input.ApplyTo(trip)
	if !validation.IsValidDateRange(trip.StartDate, trip.EndDate) {
		result := validation.Result{Errors: map[string]string{
			"endDate": "end date must not be before start date",
		}}
		writeValidationError(w, result)
		return
	}
	trip.UpdatedAt = s.Now().UTC()

	if err := s.Trips.Update(r.Context(), *trip); err != nil {
		tel.Error("trip update failed", err)
		writeServerError(w)
		return
	}
	writeJSON(w, http.StatusOK, dto.ToTripDetail(*trip))
}

// DeleteTrip handles DELETE /api/trips/{id}. Segments are removed in one
// batched store call before the trip document itself.
func (s *Server) DeleteTrip(w http.ResponseWriter, r *http.Request) {
	tel := telemetry.FromContext(r.Context())
	claims, ok := middleware.GetClaims(r.Context())
	if !ok {
		writeUnauthorized(w)
		return
	}

	trip := s.loadOwnedTrip(w, r, tel, chi.URLParam(r, "id"), claims.Subject)
	if trip == nil {
		return
	}

	removed, err := s.Segments.DeleteByTrip(r.Context(), trip.ID)
	if err != nil {
		tel.Error("trip segment cleanup failed", err)
		writeServerError(w)
		return
	}
	if err := s.Trips.Delete(r.Context(), trip.ID); err != nil {
		tel.Error("trip delete failed", err)
		writeServerError(w)
		return
	}
	tel.Event("trip.deleted", map[string]interface{}{
		"trip_id":          trip.ID,
		"segments_removed": removed,
	})
	w.WriteHeader(http.StatusNoContent)
}
