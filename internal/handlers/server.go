// Package handlers contains the HTTP request handlers, one per
// resource-action pair. Every handler follows the same template: resolve the
// caller, validate the body, apply domain invariants, perform one store
// call, map through a DTO, respond. One telemetry request-track event is
// emitted per invocation.
package handlers

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/ShaydeNofziger/skynav-api/internal/db"
	"github.com/ShaydeNofziger/skynav-api/internal/middleware"
	"github.com/ShaydeNofziger/skynav-api/internal/telemetry"
)

// Server bundles the store collections and the telemetry client the
// handlers need. The telemetry client is injected here once at startup.
type Server struct {
	DropZones db.DropZoneCollection
	Trips     db.TripCollection
	Segments  db.SegmentCollection
	Profiles  db.ProfileCollection
	Telemetry *telemetry.Client

	// Now is the clock used for server-set timestamps; tests override it.
	Now func() time.Time
}

// NewServer creates a handler server over the given collections.
func NewServer(dropzones db.DropZoneCollection, trips db.TripCollection, segments db.SegmentCollection, profiles db.ProfileCollection, tel *telemetry.Client) *Server {
	return &Server{
		DropZones: dropzones,
		Trips:     trips,
		Segments:  segments,
		Profiles:  profiles,
		Telemetry: tel,
		Now:       time.Now,
	}
}

// Routes mounts every resource route. Dropzone reads are public; everything
// else requires authentication.
func (s *Server) Routes(authn *middleware.AuthMiddleware) chi.Router {
	r := chi.NewRouter()

	r.Get("/health", s.Health)

	r.Route("/api", func(r chi.Router) {
		r.Get("/dropzones", s.instrument("dropzones.list", s.ListDropZones))
		r.Get("/dropzones/{id}", s.instrument("dropzones.get", s.GetDropZone))

		r.Group(func(r chi.Router) {
			r.Use(authn.Authenticate)

			r.Post("/dropzones", s.instrument("dropzones.create", s.CreateDropZone))
			r.Put("/dropzones/{id}", s.instrument("dropzones.update", s.UpdateDropZone))
			r.Delete("/dropzones/{id}", s.instrument("dropzones.delete", s.DeleteDropZone))

			r.Get("/trips", s.instrument("trips.list", s.ListTrips))
			r.Post("/trips", s.instrument("trips.create", s.CreateTrip))
			r.Get("/trips/{id}", s.instrument("trips.get", s.GetTrip))
			r.Put("/trips/{id}", s.instrument("trips.update", s.UpdateTrip))
			r.Delete("/trips/{id}", s.instrument("trips.delete", s.DeleteTrip))

			r.Get("/trips/{id}/segments", s.instrument("segments.list", s.ListSegments))
			r.Post("/trips/{id}/segments", s.instrument("segments.create", s.CreateSegment))
			r.Get("/trips/{id}/segments/{segmentID}", s.instrument("segments.get", s.GetSegment))
			r.Put("/trips/{id}/segments/{segmentID}", s.instrument("segments.update", s.UpdateSegment))
			r.Delete("/trips/{id}/segments/{segmentID}", s.instrument("segments.delete", s.DeleteSegment))

			r.Get("/profile", s.instrument("profile.get", s.GetProfile))
			r.Put("/profile", s.instrument("profile.update", s.UpdateProfile))
		})
	})

	return r
}

// statusRecorder captures the response status for request tracking.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (w *statusRecorder) WriteHeader(status int) {
	w.status = status
	w.ResponseWriter.WriteHeader(status)
}

// instrument wraps a handler with an invocation-scoped telemetry logger and
// emits exactly one request-track event when it returns.
func (s *Server) instrument(name string, fn http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		tel := s.Telemetry.For(name)
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		start := time.Now()

		fn(rec, r.WithContext(telemetry.WithLogger(r.Context(), tel)))

		outcome := "success"
		if rec.status >= 400 {
			outcome = "failure"
		}
		tel.TrackRequest(outcome, rec.status, time.Since(start))
	}
}

// Health reports process liveness.
func (s *Server) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
