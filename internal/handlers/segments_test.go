package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/ShaydeNofziger/skynav-api/internal/db"
	"github.com/ShaydeNofziger/skynav-api/internal/models"
)

func ownedSegment() *models.TravelSegment {
	return &models.TravelSegment{
		ID:        "seg_owned",
		TripID:    "trip_owned",
		Type:      models.SegmentTypeFlight,
		StartDate: "2026-07-10",
		Flight:    &models.FlightDetails{DepartureAirport: "ITH", ArrivalAirport: "PHX"},
	}
}

func segmentParams() map[string]string {
	return map[string]string{"id": "trip_owned", "segmentID": "seg_owned"}
}

func TestListSegments(t *testing.T) {
	env := newTestEnv(t)
	env.trips.On("FindByID", mock.Anything, "trip_owned").Return(ownedTrip(), nil)
	env.segments.On("FindByTrip", mock.Anything, "trip_owned", mock.AnythingOfType("pagination.Params")).
		Return([]models.TravelSegment{*ownedSegment()}, int64(1), nil)

	w := httptest.NewRecorder()
	env.server.ListSegments(w, newRequest(http.MethodGet, "/api/trips/trip_owned/segments", "", testClaims(), map[string]string{"id": "trip_owned"}))

	require.Equal(t, http.StatusOK, w.Code)
	var page struct {
		Items []struct {
			ID   string `json:"id"`
			Type string `json:"type"`
		} `json:"items"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &page))
	require.Len(t, page.Items, 1)
	assert.Equal(t, "seg_owned", page.Items[0].ID)
	assert.Equal(t, "flight", page.Items[0].Type)
}

func TestListSegments_OtherOwnersTrip(t *testing.T) {
	env := newTestEnv(t)
	other := ownedTrip()
	other.OwnerID = "user-2"
	env.trips.On("FindByID", mock.Anything, "trip_owned").Return(other, nil)

	w := httptest.NewRecorder()
	env.server.ListSegments(w, newRequest(http.MethodGet, "/api/trips/trip_owned/segments", "", testClaims(), map[string]string{"id": "trip_owned"}))

	assert.Equal(t, http.StatusNotFound, w.Code)
	env.segments.AssertNotCalled(t, "FindByTrip", mock.Anything, mock.Anything, mock.Anything)
}

func TestCreateSegment(t *testing.T) {
	env := newTestEnv(t)
	env.trips.On("FindByID", mock.Anything, "trip_owned").Return(ownedTrip(), nil)

	var stored models.TravelSegment
	env.segments.On("Insert", mock.Anything, mock.AnythingOfType("models.TravelSegment")).
		Run(func(args mock.Arguments) { stored = args.Get(1).(models.TravelSegment) }).
		Return(nil)

	body := `{
		"type": "flight",
		"startDate": "2026-07-10",
		"flight": {"departureAirport": "ITH", "arrivalAirport": "PHX", "airline": "Delta"}
	}`
	w := httptest.NewRecorder()
	env.server.CreateSegment(w, newRequest(http.MethodPost, "/api/trips/trip_owned/segments", body, testClaims(), map[string]string{"id": "trip_owned"}))

	require.Equal(t, http.StatusCreated, w.Code)
	assert.True(t, strings.HasPrefix(stored.ID, models.SegmentIDPrefix))
	assert.Equal(t, "trip_owned", stored.TripID, "segment bound to the path trip")
	assert.Equal(t, models.SegmentTypeFlight, stored.Type)
	require.NotNil(t, stored.Flight)
	assert.Equal(t, "ITH", stored.Flight.DepartureAirport)
	assert.Equal(t, env.now, stored.CreatedAt)
}

func TestCreateSegment_NestedValidationError(t *testing.T) {
	env := newTestEnv(t)

	body := `{"type": "flight", "startDate": "2026-07-10", "flight": {"departureAirport": ""}}`
	w := httptest.NewRecorder()
	env.server.CreateSegment(w, newRequest(http.MethodPost, "/api/trips/trip_owned/segments", body, testClaims(), map[string]string{"id": "trip_owned"}))

	require.Equal(t, http.StatusBadRequest, w.Code)
	env.trips.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)
	env.segments.AssertNotCalled(t, "Insert", mock.Anything, mock.Anything)

	var resp struct {
		Error struct {
			Fields map[string]string `json:"fields"`
		} `json:"error"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Contains(t, resp.Error.Fields, "flight.departureAirport")
}

func TestGetSegment(t *testing.T) {
	env := newTestEnv(t)
	env.trips.On("FindByID", mock.Anything, "trip_owned").Return(ownedTrip(), nil)
	env.segments.On("FindByID", mock.Anything, "seg_owned").Return(ownedSegment(), nil)

	w := httptest.NewRecorder()
	env.server.GetSegment(w, newRequest(http.MethodGet, "/api/trips/trip_owned/segments/seg_owned", "", testClaims(), segmentParams()))

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestGetSegment_WrongTripReadsAsNotFound(t *testing.T) {
	env := newTestEnv(t)
	env.trips.On("FindByID", mock.Anything, "trip_owned").Return(ownedTrip(), nil)
	foreign := ownedSegment()
	foreign.TripID = "trip_other"
	env.segments.On("FindByID", mock.Anything, "seg_owned").Return(foreign, nil)

	w := httptest.NewRecorder()
	env.server.GetSegment(w, newRequest(http.MethodGet, "/api/trips/trip_owned/segments/seg_owned", "", testClaims(), segmentParams()))

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestUpdateSegment_MergesDetails(t *testing.T) {
	env := newTestEnv(t)
	env.trips.On("FindByID", mock.Anything, "trip_owned").Return(ownedTrip(), nil)
	env.segments.On("FindByID", mock.Anything, "seg_owned").Return(ownedSegment(), nil)

	var stored models.TravelSegment
	env.segments.On("Update", mock.Anything, mock.AnythingOfType("models.TravelSegment")).
		Run(func(args mock.Arguments) { stored = args.Get(1).(models.TravelSegment) }).
		Return(nil)

	w := httptest.NewRecorder()
	env.server.UpdateSegment(w, newRequest(http.MethodPut, "/api/trips/trip_owned/segments/seg_owned",
		`{"flight": {"airline": "Delta"}, "actualJumpCount": 14}`, testClaims(), segmentParams()))

	require.Equal(t, http.StatusOK, w.Code)
	require.NotNil(t, stored.Flight)
	assert.Equal(t, "Delta", stored.Flight.Airline)
	assert.Equal(t, "ITH", stored.Flight.DepartureAirport, "absent detail fields unchanged")
	require.NotNil(t, stored.ActualJumpCount)
	assert.Equal(t, 14, *stored.ActualJumpCount)
}

func TestDeleteSegment(t *testing.T) {
	env := newTestEnv(t)
	env.trips.On("FindByID", mock.Anything, "trip_owned").Return(ownedTrip(), nil)
	env.segments.On("FindByID", mock.Anything, "seg_owned").Return(ownedSegment(), nil)
	env.segments.On("Delete", mock.Anything, "seg_owned").Return(nil)

	w := httptest.NewRecorder()
	env.server.DeleteSegment(w, newRequest(http.MethodDelete, "/api/trips/trip_owned/segments/seg_owned", "", testClaims(), segmentParams()))

	assert.Equal(t, http.StatusNoContent, w.Code)
	env.segments.AssertExpectations(t)
}

func TestDeleteSegment_MissingSegment(t *testing.T) {
	env := newTestEnv(t)
	env.trips.On("FindByID", mock.Anything, "trip_owned").Return(ownedTrip(), nil)
	env.segments.On("FindByID", mock.Anything, "seg_owned").Return(nil, db.ErrNotFound)

	w := httptest.NewRecorder()
	env.server.DeleteSegment(w, newRequest(http.MethodDelete, "/api/trips/trip_owned/segments/seg_owned", "", testClaims(), segmentParams()))

	assert.Equal(t, http.StatusNotFound, w.Code)
	env.segments.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}
