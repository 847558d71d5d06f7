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

// loadOwnedSegment loads a segment and checks it belongs to the given trip.
// Returns nil after writing the response when the caller should stop.
func (s *Server) loadOwnedSegment(w http.ResponseWriter, r *http.Request, tel *telemetry.Logger, tripID, segmentID string) *models.TravelSegment {
	segment, err := s.Segments.FindByID(r.Context(), segmentID)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			writeNotFound(w, "segment not found")
			return nil
		}
		tel.Error("segment read failed", err)
		writeServerError(w)
		return nil
	}
	if segment.TripID != tripID {
		writeNotFound(w, "segment not found")
		return nil
	}
	return segment
}

// ListSegments handles GET /api/trips/{id}/segments, ordered by start date
// ascending for display.
func (s *Server) ListSegments(w http.ResponseWriter, r *http.Request) {
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

	page := pagination.FromQuery(r.URL.Query())
	segments, total, err := s.Segments.FindByTrip(r.Context(), trip.ID, page)
	if err != nil {
		tel.Error("segment list query failed", err)
		writeServerError(w)
		return
	}

	items := make([]dto.SegmentDetail, 0, len(segments))
	for _, seg := range segments {
		items = append(items, dto.ToSegmentDetail(seg))
	}
	writeJSON(w, http.StatusOK, pagination.NewPage(items, total, page))
}

// CreateSegment handles POST /api/trips/{id}/segments.
func (s *Server) CreateSegment(w http.ResponseWriter, r *http.Request) {
	tel := telemetry.FromContext(r.Context())
	claims, ok := middleware.GetClaims(r.Context())
	if !ok {
		writeUnauthorized(w)
		return
	}

	var input dto.SegmentInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeBadRequest(w, "invalid JSON body")
		return
	}
	if result := validation.ValidateSegmentCreate(&input); !result.Valid {
		writeValidationError(w, result)
		return
	}

	trip := s.loadOwnedTrip(w, r, tel, chi.URLParam(r, "id"), claims.Subject)
	if trip == nil {
		return
	}

	now := s.Now().UTC()
	segment := models.TravelSegment{
		ID:        models.NewSegmentID(),
		TripID:    trip.ID,
		CreatedAt: now,
		UpdatedAt: now,
	}
	input.ApplyTo(&segment)

	if err := s.Segments.Insert(r.Context(), segment); err != nil {
		tel.Error("segment create failed", err)
		writeServerError(w)
		return
	}
	tel.Event("segment.created", map[string]interface{}{
		"trip_id":    trip.ID,
		"segment_id": segment.ID,
		"type":       string(segment.Type),
	})
	writeJSON(w, http.StatusCreated, dto.ToSegmentDetail(segment))
}

// GetSegment handles GET /api/trips/{id}/segments/{segmentID}.
func (s *Server) GetSegment(w http.ResponseWriter, r *http.Request) {
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
	segment := s.loadOwnedSegment(w, r, tel, trip.ID, chi.URLParam(r, "segmentID"))
	if segment == nil {
		return
	}
	writeJSON(w, http.StatusOK, dto.ToSegmentDetail(*segment))
}

// UpdateSegment handles PUT /api/trips/{id}/segments/{segmentID}.
func (s *Server) UpdateSegment(w http.ResponseWriter, r *http.Request) {
	tel := telemetry.FromContext(r.Context())
	claims, ok := middleware.GetClaims(r.Context())
	if !ok {
		writeUnauthorized(w)
		return
	}

	var input dto.SegmentInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeBadRequest(w, "invalid JSON body")
		return
	}
	if result := validation.ValidateSegmentInput(&input); !result.Valid {
		writeValidationError(w, result)
		return
	}

	trip := s.loadOwnedTrip(w, r, tel, chi.URLParam(r, "id"), claims.Subject)
	if trip == nil {
		return
	}
	segment := s.loadOwnedSegment(w, r, tel, trip.ID, chi.URLParam(r, "segmentID"))
	if segment == nil {
		return
	}

	input.ApplyTo(segment)
	segment.UpdatedAt = s.Now().UTC()

	if err := s.Segments.Update(r.Context(), *segment); err != nil {
		tel.Error("segment update failed", err)
		writeServerError(w)
		return
	}
	writeJSON(w, http.StatusOK, dto.ToSegmentDetail(*segment))
}

// DeleteSegment handles DELETE /api/trips/{id}/segments/{segmentID}.
func (s *Server) DeleteSegment(w http.ResponseWriter, r *http.Request) {
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
	segment := s.loadOwnedSegment(w, r, tel, trip.ID, chi.URLParam(r, "segmentID"))
	if segment == nil {
		return
	}

	if err := s.Segments.Delete(r.Context(), segment.ID); err != nil {
		if errors.Is(err, db.ErrNotFound) {
			writeNotFound(w, "segment not found")
			return
		}
		tel.Error("segment delete failed", err)
		writeServerError(w)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
