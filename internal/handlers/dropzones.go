package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/ShaydeNofziger/skynav-api/internal/db"
	"github.com/ShaydeNofziger/skynav-api/internal/dto"
	"github.com/ShaydeNofziger/skynav-api/internal/middleware"
	"github.com/ShaydeNofziger/skynav-api/internal/models"
	"github.com/ShaydeNofziger/skynav-api/internal/pagination"
	"github.com/ShaydeNofziger/skynav-api/internal/telemetry"
	"github.com/ShaydeNofziger/skynav-api/internal/validation"
)

// defaultMaxDistanceMeters bounds proximity queries that omit maxDistance.
const defaultMaxDistanceMeters = 100_000

// ListDropZones handles GET /api/dropzones. Inactive dropzones are excluded
// unless includeInactive=true. A near=longitude,latitude parameter switches
// to a proximity query and attaches distances to the summaries.
func (s *Server) ListDropZones(w http.ResponseWriter, r *http.Request) {
	tel := telemetry.FromContext(r.Context())
	q := r.URL.Query()

	query := db.DropZoneQuery{
		IncludeInactive: q.Get("includeInactive") == "true",
		Page:            pagination.FromQuery(q),
	}

	if near := q.Get("near"); near != "" {
		geo, err := parseNear(near, q.Get("maxDistance"))
		if err != nil {
			writeBadRequest(w, err.Error())
			return
		}
		query.Near = geo
	}

	hits, total, err := s.DropZones.Find(r.Context(), query)
	if err != nil {
		tel.Error("dropzone list query failed", err)
		writeServerError(w)
		return
	}

	items := make([]dto.DropZoneSummary, 0, len(hits))
	for _, hit := range hits {
		items = append(items, dto.ToDropZoneSummary(hit.DropZone, hit.DistanceMeters))
	}
	writeJSON(w, http.StatusOK, pagination.NewPage(items, total, query.Page))
}

// parseNear parses "longitude,latitude" plus an optional max distance in
// meters.
func parseNear(near, maxDistance string) (*db.GeoQuery, error) {
	parts := strings.Split(near, ",")
	if len(parts) != 2 {
		return nil, errors.New("near must be longitude,latitude")
	}
	lon, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil || !validation.IsValidLongitude(lon) {
		return nil, errors.New("near longitude must be within [-180, 180]")
	}
	lat, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil || !validation.IsValidLatitude(lat) {
		return nil, errors.New("near latitude must be within [-90, 90]")
	}
	geo := &db.GeoQuery{Longitude: lon, Latitude: lat, MaxDistanceMeters: defaultMaxDistanceMeters}
	if maxDistance != "" {
		meters, err := strconv.ParseFloat(maxDistance, 64)
		if err != nil || !validation.IsPositiveNumber(meters) {
			return nil, errors.New("maxDistance must be a positive number of meters")
		}
		geo.MaxDistanceMeters = meters
	}
	return geo, nil
}

// GetDropZone handles GET /api/dropzones/{id}. Point reads bypass the
// active filter used by the list.
func (s *Server) GetDropZone(w http.ResponseWriter, r *http.Request) {
	tel := telemetry.FromContext(r.Context())
	id := chi.URLParam(r, "id")

	dz, err := s.DropZones.FindByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			writeNotFound(w, "dropzone not found")
			return
		}
		tel.Error("dropzone read failed", err)
		writeServerError(w)
		return
	}
	writeJSON(w, http.StatusOK, dto.ToDropZoneDetail(*dz))
}

// CreateDropZone handles POST /api/dropzones.
func (s *Server) CreateDropZone(w http.ResponseWriter, r *http.Request) {
	tel := telemetry.FromContext(r.Context())
	claims, ok := middleware.GetClaims(r.Context())
	if !ok {
		writeUnauthorized(w)
		return
	}

	var input dto.DropZoneInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeBadRequest(w, "invalid JSON body")
		return
	}
	if result := validation.ValidateDropZoneCreate(&input); !result.Valid {
		writeValidationError(w, result)
		return
	}

	now := s.Now().UTC()
	dz := models.DropZone{
		ID:        models.NewDropZoneID(),
		IsActive:  true,
		CreatedBy: claims.Subject,
		CreatedAt: now,
		UpdatedAt: now,
	}
	input.ApplyTo(&dz)

	if err := s.DropZones.Upsert(r.Context(), dz); err != nil {
		tel.Error("dropzone create failed", err)
		writeServerError(w)
		return
	}
	tel.Event("dropzone.created", map[string]interface{}{"dropzone_id": dz.ID})
	writeJSON(w, http.StatusCreated, dto.ToDropZoneDetail(dz))
}

// UpdateDropZone handles PUT /api/dropzones/{id}. Absent fields are left
// untouched; id, createdAt, and createdBy never change.
func (s *Server) UpdateDropZone(w http.ResponseWriter, r *http.Request) {
	tel := telemetry.FromContext(r.Context())
	id := chi.URLParam(r, "id")

	var input dto.DropZoneInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeBadRequest(w, "invalid JSON body")
		return
	}
	if result := validation.ValidateDropZoneInput(&input); !result.Valid {
		writeValidationError(w, result)
		return
	}

	dz, err := s.DropZones.FindByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			writeNotFound(w, "dropzone not found")
			return
		}
		tel.Error("dropzone read failed", err)
		writeServerError(w)
		return
	}

	input.ApplyTo(dz)
	dz.UpdatedAt = s.Now().UTC()

	if err := s.DropZones.Upsert(r.Context(), *dz); err != nil {
		tel.Error("dropzone update failed", err)
		writeServerError(w)
		return
	}
	writeJSON(w, http.StatusOK, dto.ToDropZoneDetail(*dz))
}

// DeleteDropZone handles DELETE /api/dropzones/{id}.
func (s *Server) DeleteDropZone(w http.ResponseWriter, r *http.Request) {
	tel := telemetry.FromContext(r.Context())
	id := chi.URLParam(r, "id")

	if err := s.DropZones.Delete(r.Context(), id); err != nil {
		if errors.Is(err, db.ErrNotFound) {
			writeNotFound(w, "dropzone not found")
			return
		}
		tel.Error("dropzone delete failed", err)
		writeServerError(w)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
