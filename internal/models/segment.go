package models

import "time"

// SegmentType discriminates the details payload of a travel segment.
type SegmentType string

const (
	SegmentTypeFlight  SegmentType = "flight"
	SegmentTypeDrive   SegmentType = "drive"
	SegmentTypeLodging SegmentType = "lodging"
)

// IsValidSegmentType checks if a type is one of the known enum values.
func IsValidSegmentType(t SegmentType) bool {
	switch t {
	case SegmentTypeFlight, SegmentTypeDrive, SegmentTypeLodging:
		return true
	default:
		return false
	}
}

// FlightDetails are the optional particulars of a flight segment. Every
// field is independently optional; fields are validated only when present.
type FlightDetails struct {
	DepartureAirport string `bson:"departure_airport,omitempty" json:"departureAirport,omitempty"`
	ArrivalAirport   string `bson:"arrival_airport,omitempty" json:"arrivalAirport,omitempty"`
	Airline          string `bson:"airline,omitempty" json:"airline,omitempty"`
	FlightNumber     string `bson:"flight_number,omitempty" json:"flightNumber,omitempty"`
	ConfirmationCode string `bson:"confirmation_code,omitempty" json:"confirmationCode,omitempty"`
}

// DriveDetails are the optional particulars of a drive segment.
type DriveDetails struct {
	StartLocation string  `bson:"start_location,omitempty" json:"startLocation,omitempty"`
	EndLocation   string  `bson:"end_location,omitempty" json:"endLocation,omitempty"`
	DistanceMiles float64 `bson:"distance_miles,omitempty" json:"distanceMiles,omitempty"`
	DurationHours float64 `bson:"duration_hours,omitempty" json:"durationHours,omitempty"`
}

// LodgingDetails are the optional particulars of a lodging segment.
// No cross-field rule relates check-in and check-out.
type LodgingDetails struct {
	Name             string `bson:"name,omitempty" json:"name,omitempty"`
	Address          string `bson:"address,omitempty" json:"address,omitempty"`
	CheckInDate      string `bson:"check_in_date,omitempty" json:"checkInDate,omitempty"`
	CheckOutDate     string `bson:"check_out_date,omitempty" json:"checkOutDate,omitempty"`
	ConfirmationCode string `bson:"confirmation_code,omitempty" json:"confirmationCode,omitempty"`
}

// TravelSegment is one leg of a trip. Exactly one of the details pointers is
// expected to match Type; a nil details object is valid.
type TravelSegment struct {
	ID               string          `bson:"_id" json:"id"`
	TripID           string          `bson:"trip_id" json:"tripId"`
	Type             SegmentType     `bson:"type" json:"type"`
	Flight           *FlightDetails  `bson:"flight,omitempty" json:"flight,omitempty"`
	Drive            *DriveDetails   `bson:"drive,omitempty" json:"drive,omitempty"`
	Lodging          *LodgingDetails `bson:"lodging,omitempty" json:"lodging,omitempty"`
	PlannedJumpCount *int            `bson:"planned_jump_count,omitempty" json:"plannedJumpCount,omitempty"`
	ActualJumpCount  *int            `bson:"actual_jump_count,omitempty" json:"actualJumpCount,omitempty"`
	StartDate        string          `bson:"start_date" json:"startDate"` // YYYY-MM-DD
	EndDate          string          `bson:"end_date,omitempty" json:"endDate,omitempty"`
	CreatedAt        time.Time       `bson:"created_at" json:"createdAt"`
	UpdatedAt        time.Time       `bson:"updated_at" json:"updatedAt"`
}
