package models

import "github.com/google/uuid"

// Entity ids are a fixed prefix plus a generated unique suffix. The prefix
// makes ids self-describing in logs and seed files.
const (
	DropZoneIDPrefix = "dz_"
	TripIDPrefix     = "trip_"
	SegmentIDPrefix  = "seg_"
)

// NewDropZoneID returns a fresh dropzone id.
func NewDropZoneID() string {
	return DropZoneIDPrefix + uuid.NewString()
}

// NewTripID returns a fresh trip id.
func NewTripID() string {
	return TripIDPrefix + uuid.NewString()
}

// NewSegmentID returns a fresh travel segment id.
func NewSegmentID() string {
	return SegmentIDPrefix + uuid.NewString()
}

// NewChecklistItemID returns an id for a checklist entry.
func NewChecklistItemID() string {
	return uuid.NewString()
}
