package models

import "time"

// TripStatus enumerates the lifecycle states of a trip. There are no
// transition rules; status is overwritten directly by updates.
type TripStatus string

const (
	TripStatusPlanned    TripStatus = "PLANNED"
	TripStatusInProgress TripStatus = "IN_PROGRESS"
	TripStatusCompleted  TripStatus = "COMPLETED"
	TripStatusCancelled  TripStatus = "CANCELLED"
)

// IsValidTripStatus checks if a status is one of the known enum values.
func IsValidTripStatus(status TripStatus) bool {
	switch status {
	case TripStatusPlanned, TripStatusInProgress, TripStatusCompleted, TripStatusCancelled:
		return true
	default:
		return false
	}
}

// ChecklistItem is one entry on a trip's packing/preparation checklist.
type ChecklistItem struct {
	ID        string `bson:"id" json:"id"`
	Text      string `bson:"text" json:"text"`
	Completed bool   `bson:"completed" json:"completed"`
}

// Trip is a user-owned travel plan. Segments live in their own collection
// keyed by trip id; deleting a trip deletes its segments.
type Trip struct {
	ID          string          `bson:"_id" json:"id"`
	OwnerID     string          `bson:"owner_id" json:"ownerId"`
	Name        string          `bson:"name" json:"name"`
	Description string          `bson:"description,omitempty" json:"description,omitempty"`
	StartDate   string          `bson:"start_date" json:"startDate"` // YYYY-MM-DD
	EndDate     string          `bson:"end_date" json:"endDate"`     // YYYY-MM-DD
	Status      TripStatus      `bson:"status" json:"status"`
	Checklist   []ChecklistItem `bson:"checklist,omitempty" json:"checklist,omitempty"`
	Notes       string          `bson:"notes,omitempty" json:"notes,omitempty"`
	CreatedAt   time.Time       `bson:"created_at" json:"createdAt"`
	UpdatedAt   time.Time       `bson:"updated_at" json:"updatedAt"`
}
