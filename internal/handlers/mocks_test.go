package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	log "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/mock"

	"github.com/ShaydeNofziger/skynav-api/internal/db"
	"github.com/ShaydeNofziger/skynav-api/internal/middleware"
	"github.com/ShaydeNofziger/skynav-api/internal/models"
	"github.com/ShaydeNofziger/skynav-api/internal/pagination"
	"github.com/ShaydeNofziger/skynav-api/internal/telemetry"
)

// MockDropZoneCollection is a mock implementation of db.DropZoneCollection.
type MockDropZoneCollection struct {
	mock.Mock
}

func (m *MockDropZoneCollection) Upsert(ctx context.Context, dz models.DropZone) error {
	args := m.Called(ctx, dz)
	return args.Error(0)
}

func (m *MockDropZoneCollection) FindByID(ctx context.Context, id string) (*models.DropZone, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.DropZone), args.Error(1)
}

func (m *MockDropZoneCollection) Find(ctx context.Context, q db.DropZoneQuery) ([]db.DropZoneHit, int64, error) {
	args := m.Called(ctx, q)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]db.DropZoneHit), args.Get(1).(int64), args.Error(2)
}

func (m *MockDropZoneCollection) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockTripCollection is a mock implementation of db.TripCollection.
type MockTripCollection struct {
	mock.Mock
}

func (m *MockTripCollection) Insert(ctx context.Context, trip models.Trip) error {
	args := m.Called(ctx, trip)
	return args.Error(0)
}

func (m *MockTripCollection) FindByID(ctx context.Context, id string) (*models.Trip, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Trip), args.Error(1)
}

func (m *MockTripCollection) FindByOwner(ctx context.Context, ownerID string, p pagination.Params) ([]models.Trip, int64, error) {
	args := m.Called(ctx, ownerID, p)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]models.Trip), args.Get(1).(int64), args.Error(2)
}

func (m *MockTripCollection) Update(ctx context.Context, trip models.Trip) error {
	args := m.Called(ctx, trip)
	return args.Error(0)
}

func (m *MockTripCollection) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockSegmentCollection is a mock implementation of db.SegmentCollection.
type MockSegmentCollection struct {
	mock.Mock
}

func (m *MockSegmentCollection) Insert(ctx context.Context, segment models.TravelSegment) error {
	args := m.Called(ctx, segment)
	return args.Error(0)
}

func (m *MockSegmentCollection) FindByID(ctx context.Context, id string) (*models.TravelSegment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.TravelSegment), args.Error(1)
}

func (m *MockSegmentCollection) FindByTrip(ctx context.Context, tripID string, p pagination.Params) ([]models.TravelSegment, int64, error) {
	args := m.Called(ctx, tripID, p)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]models.TravelSegment), args.Get(1).(int64), args.Error(2)
}

func (m *MockSegmentCollection) Update(ctx context.Context, segment models.TravelSegment) error {
	args := m.Called(ctx, segment)
	return args.Error(0)
}

func (m *MockSegmentCollection) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockSegmentCollection) DeleteByTrip(ctx context.Context, tripID string) (int64, error) {
	args := m.Called(ctx, tripID)
	return args.Get(0).(int64), args.Error(1)
}

// MockProfileCollection is a mock implementation of db.ProfileCollection.
type MockProfileCollection struct {
	mock.Mock
}

func (m *MockProfileCollection) Upsert(ctx context.Context, profile models.UserProfile) error {
	args := m.Called(ctx, profile)
	return args.Error(0)
}

func (m *MockProfileCollection) FindByID(ctx context.Context, id string) (*models.UserProfile, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.UserProfile), args.Error(1)
}

// testEnv bundles a handler server with its mocks.
type testEnv struct {
	server    *Server
	dropzones *MockDropZoneCollection
	trips     *MockTripCollection
	segments  *MockSegmentCollection
	profiles  *MockProfileCollection
	now       time.Time
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	logger := log.New()
	logger.SetLevel(log.ErrorLevel)

	env := &testEnv{
		dropzones: new(MockDropZoneCollection),
		trips:     new(MockTripCollection),
		segments:  new(MockSegmentCollection),
		profiles:  new(MockProfileCollection),
		now:       time.Date(2026, 7, 1, 12, 0, 0, 0, time.UTC),
	}
	env.server = NewServer(env.dropzones, env.trips, env.segments, env.profiles, telemetry.NewLocalClient(logger))
	env.server.Now = func() time.Time { return env.now }
	return env
}

func testClaims() *models.Claims {
	return &models.Claims{Subject: "user-1", Name: "Shayde", Email: "shayde@example.com"}
}

// newRequest builds a request carrying claims and chi route params.
func newRequest(method, target, body string, claims *models.Claims, params map[string]string) *http.Request {
	var r *http.Request
	if body == "" {
		r = httptest.NewRequest(method, target, nil)
	} else {
		r = httptest.NewRequest(method, target, strings.NewReader(body))
	}

	ctx := r.Context()
	if claims != nil {
		ctx = middleware.WithClaims(ctx, claims)
	}
	rctx := chi.NewRouteContext()
	for k, v := range params {
		rctx.URLParams.Add(k, v)
	}
	ctx = context.WithValue(ctx, chi.RouteCtxKey, rctx)
	return r.WithContext(ctx)
}
