package dto

import (
	"time"

	"github.com/ShaydeNofziger/skynav-api/internal/models"
)

func formatTimestamp(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}

// TripSummary is the list-view projection of a trip.
type TripSummary struct {
	ID        string            `json:"id"`
	Name      string            `json:"name"`
	StartDate string            `json:"startDate"`
	EndDate   string            `json:"endDate"`
	Status    models.TripStatus `json:"status"`
}

// ToTripSummary projects t for list views.
func ToTripSummary(t models.Trip) TripSummary {
	return TripSummary{
		ID:        t.ID,
		Name:      t.Name,
		StartDate: t.StartDate,
		EndDate:   t.EndDate,
		Status:    t.Status,
	}
}

// TripDetail is the full projection of a trip.
type TripDetail struct {
	ID          string                 `json:"id"`
	OwnerID     string                 `json:"ownerId"`
	Name        string                 `json:"name"`
	Description string                 `json:"description,omitempty"`
	StartDate   string                 `json:"startDate"`
	EndDate     string                 `json:"endDate"`
	Status      models.TripStatus      `json:"status"`
	Checklist   []models.ChecklistItem `json:"checklist,omitempty"`
	Notes       string                 `json:"notes,omitempty"`
	CreatedAt   string                 `json:"createdAt"`
	UpdatedAt   string                 `json:"updatedAt"`
}

// ToTripDetail projects the full field set of t.
func ToTripDetail(t models.Trip) TripDetail {
	return TripDetail{
		ID:          t.ID,
		OwnerID:     t.OwnerID,
		Name:        t.Name,
		Description: t.Description,
		StartDate:   t.StartDate,
		EndDate:     t.EndDate,
		Status:      t.Status,
		Checklist:   t.Checklist,
		Notes:       t.Notes,
		CreatedAt:   formatTimestamp(t.CreatedAt),
		UpdatedAt:   formatTimestamp(t.UpdatedAt),
	}
}

// SegmentDetail is the full projection of a travel segment.
type SegmentDetail struct {
	ID               string                 `json:"id"`
	TripID           string                 `json:"tripId"`
	Type             models.SegmentType     `json:"type"`
	Flight           *models.FlightDetails  `json:"flight,omitempty"`
	Drive            *models.DriveDetails   `json:"drive,omitempty"`
	Lodging          *models.LodgingDetails `json:"lodging,omitempty"`
	PlannedJumpCount *int                   `json:"plannedJumpCount,omitempty"`
	ActualJumpCount  *int                   `json:"actualJumpCount,omitempty"`
	StartDate        string                 `json:"startDate"`
	EndDate          string                 `json:"endDate,omitempty"`
	CreatedAt        string                 `json:"createdAt"`
	UpdatedAt        string                 `json:"updatedAt"`
}

// ToSegmentDetail projects the full field set of s.
func ToSegmentDetail(s models.TravelSegment) SegmentDetail {
	return SegmentDetail{
		ID:               s.ID,
		TripID:           s.TripID,
		Type:             s.Type,
		Flight:           s.Flight,
		Drive:            s.Drive,
		Lodging:          s.Lodging,
		PlannedJumpCount: s.PlannedJumpCount,
		ActualJumpCount:  s.ActualJumpCount,
		StartDate:        s.StartDate,
		EndDate:          s.EndDate,
		CreatedAt:        formatTimestamp(s.CreatedAt),
		UpdatedAt:        formatTimestamp(s.UpdatedAt),
	}
}

// ProfileDetail is the full projection of a user profile.
type ProfileDetail struct {
	ID             string   `json:"id"`
	DisplayName    string   `json:"displayName,omitempty"`
	FirstName      string   `json:"firstName,omitempty"`
	LastName       string   `json:"lastName,omitempty"`
	Email          string   `json:"email,omitempty"`
	USPANumber     string   `json:"uspaNumber,omitempty"`
	JumpCount      int      `json:"jumpCount"`
	Licenses       []string `json:"licenses,omitempty"`
	Ratings        []string `json:"ratings,omitempty"`
	HomeDropzoneID string   `json:"homeDropzoneId,omitempty"`
	CreatedAt      string   `json:"createdAt"`
	UpdatedAt      string   `json:"updatedAt"`
}

// ToProfileDetail projects the full field set of p.
func ToProfileDetail(p models.UserProfile) ProfileDetail {
	return ProfileDetail{
		ID:             p.ID,
		DisplayName:    p.DisplayName,
		FirstName:      p.FirstName,
		LastName:       p.LastName,
		Email:          p.Email,
		USPANumber:     p.USPANumber,
		JumpCount:      p.JumpCount,
		Licenses:       p.Licenses,
		Ratings:        p.Ratings,
		HomeDropzoneID: p.HomeDropzoneID,
		CreatedAt:      formatTimestamp(p.CreatedAt),
		UpdatedAt:      formatTimestamp(p.UpdatedAt),
	}
}
