package validation

import (
	"github.com/ShaydeNofziger/skynav-api/internal/dto"
	"github.com/ShaydeNofziger/skynav-api/internal/models"
)

// Composite validators check request inputs field by field. Presence is the
// only gate: a nil details object is valid, and a field is checked only when
// it was sent. There are no cross-field rules inside a details object.

// ValidateFlightDetails validates a flight details payload.
func ValidateFlightDetails(in *dto.FlightDetailsInput) Result {
	r := valid()
	if in == nil {
		return r
	}
	if in.DepartureAirport != nil && !IsNonEmptyString(*in.DepartureAirport) {
		r.fail("departureAirport", "departure airport must not be empty")
	}
	if in.ArrivalAirport != nil && !IsNonEmptyString(*in.ArrivalAirport) {
		r.fail("arrivalAirport", "arrival airport must not be empty")
	}
	if in.Airline != nil && !IsNonEmptyString(*in.Airline) {
		r.fail("airline", "airline must not be empty")
	}
	if in.FlightNumber != nil && !IsNonEmptyString(*in.FlightNumber) {
		r.fail("flightNumber", "flight number must not be empty")
	}
	if in.ConfirmationCode != nil && !IsNonEmptyString(*in.ConfirmationCode) {
		r.fail("confirmationCode", "confirmation code must not be empty")
	}
	return r
}

// ValidateDriveDetails validates a drive details payload.
func ValidateDriveDetails(in *dto.DriveDetailsInput) Result {
	r := valid()
	if in == nil {
		return r
	}
	if in.StartLocation != nil && !IsNonEmptyString(*in.StartLocation) {
		r.fail("startLocation", "start location must not be empty")
	}
	if in.EndLocation != nil && !IsNonEmptyString(*in.EndLocation) {
		r.fail("endLocation", "end location must not be empty")
	}
	if in.DistanceMiles != nil && !IsPositiveNumber(*in.DistanceMiles) {
		r.fail("distanceMiles", "distance must be a positive number")
	}
	if in.DurationHours != nil && !IsPositiveNumber(*in.DurationHours) {
		r.fail("durationHours", "duration must be a positive number")
	}
	return r
}

// ValidateLodgingDetails validates a lodging details payload. Check-in and
// check-out dates are validated individually; no ordering rule relates them.
func ValidateLodgingDetails(in *dto.LodgingDetailsInput) Result {
	r := valid()
	if in == nil {
		return r
	}
	if in.Name != nil && !IsNonEmptyString(*in.Name) {
		r.fail("name", "name must not be empty")
	}
	if in.Address != nil && !IsNonEmptyString(*in.Address) {
		r.fail("address", "address must not be empty")
	}
	if in.CheckInDate != nil && !IsValidDateFormat(*in.CheckInDate) {
		r.fail("checkInDate", "check-in date must be a valid YYYY-MM-DD date")
	}
	if in.CheckOutDate != nil && !IsValidDateFormat(*in.CheckOutDate) {
		r.fail("checkOutDate", "check-out date must be a valid YYYY-MM-DD date")
	}
	if in.ConfirmationCode != nil && !IsNonEmptyString(*in.ConfirmationCode) {
		r.fail("confirmationCode", "confirmation code must not be empty")
	}
	return r
}

// ValidateSegmentInput validates the present fields of a segment request.
func ValidateSegmentInput(in *dto.SegmentInput) Result {
	r := valid()
	if in == nil {
		return r
	}
	if in.Type != nil && !models.IsValidSegmentType(models.SegmentType(*in.Type)) {
		r.fail("type", "type must be one of flight, drive, lodging")
	}
	if in.StartDate != nil && !IsValidDateFormat(*in.StartDate) {
		r.fail("startDate", "start date must be a valid YYYY-MM-DD date")
	}
	if in.EndDate != nil && !IsValidDateFormat(*in.EndDate) {
		r.fail("endDate", "end date must be a valid YYYY-MM-DD date")
	}
	if in.PlannedJumpCount != nil && !IsNonNegativeInt(*in.PlannedJumpCount) {
		r.fail("plannedJumpCount", "planned jump count must not be negative")
	}
	if in.ActualJumpCount != nil && !IsNonNegativeInt(*in.ActualJumpCount) {
		r.fail("actualJumpCount", "actual jump count must not be negative")
	}
	r.merge("flight", ValidateFlightDetails(in.Flight))
	r.merge("drive", ValidateDriveDetails(in.Drive))
	r.merge("lodging", ValidateLodgingDetails(in.Lodging))
	return r
}

// ValidateSegmentCreate validates a segment create request, which must name
// a type and a start date on top of the per-field checks.
func ValidateSegmentCreate(in *dto.SegmentInput) Result {
	r := ValidateSegmentInput(in)
	if in == nil {
		r.fail("body", "request body is required")
		return r
	}
	if in.Type == nil {
		r.fail("type", "type is required")
	}
	if in.StartDate == nil {
		r.fail("startDate", "start date is required")
	}
	return r
}

// ValidateTripInput validates the present fields of a trip request.
func ValidateTripInput(in *dto.TripInput) Result {
	r := valid()
	if in == nil {
		return r
	}
	if in.Name != nil && !IsNonEmptyString(*in.Name) {
		r.fail("name", "name must not be empty")
	}
	if in.StartDate != nil && !IsValidDateFormat(*in.StartDate) {
		r.fail("startDate", "start date must be a valid YYYY-MM-DD date")
	}
	if in.EndDate != nil && !IsValidDateFormat(*in.EndDate) {
		r.fail("endDate", "end date must be a valid YYYY-MM-DD date")
	}
	if in.Status != nil && !models.IsValidTripStatus(models.TripStatus(*in.Status)) {
		r.fail("status", "status must be one of PLANNED, IN_PROGRESS, COMPLETED, CANCELLED")
	}
	if in.Checklist != nil {
		for _, item := range *in.Checklist {
			if !IsNonEmptyString(item.Text) {
				r.fail("checklist", "checklist item text must not be empty")
				break
			}
		}
	}
	return r
}

// ValidateTripCreate validates a trip create request: name and both dates
// are required, and the range must be valid (same-day trips allowed).
func ValidateTripCreate(in *dto.TripInput) Result {
	r := ValidateTripInput(in)
	if in == nil {
		r.fail("body", "request body is required")
		return r
	}
	if in.Name == nil {
		r.fail("name", "name is required")
	}
	if in.StartDate == nil {
		r.fail("startDate", "start date is required")
	}
	if in.EndDate == nil {
		r.fail("endDate", "end date is required")
	}
	if r.Valid && !IsValidDateRange(*in.StartDate, *in.EndDate) {
		r.fail("endDate", "end date must not be before start date")
	}
	return r
}

// ValidateDropZoneInput validates the present fields of a dropzone request.
func ValidateDropZoneInput(in *dto.DropZoneInput) Result {
	r := valid()
	if in == nil {
		return r
	}
	if in.Name != nil && !IsNonEmptyString(*in.Name) {
		r.fail("name", "name must not be empty")
	}
	if in.Location != nil {
		if in.Location.Longitude == nil || in.Location.Latitude == nil {
			r.fail("location", "location requires both longitude and latitude")
		} else {
			if !IsValidLongitude(*in.Location.Longitude) {
				r.fail("location.longitude", "longitude must be within [-180, 180]")
			}
			if !IsValidLatitude(*in.Location.Latitude) {
				r.fail("location.latitude", "latitude must be within [-90, 90]")
			}
		}
	}
	if in.Contact != nil && in.Contact.Email != nil && !IsValidEmail(*in.Contact.Email) {
		r.fail("contact.email", "email must be a valid address")
	}
	if in.Facilities != nil && in.Facilities.MaxAltitudeFt != nil && !IsPositiveNumber(float64(*in.Facilities.MaxAltitudeFt)) {
		r.fail("facilities.maxAltitudeFt", "max altitude must be a positive number")
	}
	return r
}

// ValidateDropZoneCreate validates a dropzone create request: name and
// location are required.
func ValidateDropZoneCreate(in *dto.DropZoneInput) Result {
	r := ValidateDropZoneInput(in)
	if in == nil {
		r.fail("body", "request body is required")
		return r
	}
	if in.Name == nil {
		r.fail("name", "name is required")
	}
	if in.Location == nil {
		r.fail("location", "location is required")
	}
	return r
}

// ValidateProfileInput validates the present fields of a profile request.
func ValidateProfileInput(in *dto.ProfileInput) Result {
	r := valid()
	if in == nil {
		return r
	}
	if in.DisplayName != nil && !IsNonEmptyString(*in.DisplayName) {
		r.fail("displayName", "display name must not be empty")
	}
	if in.FirstName != nil && !IsNonEmptyString(*in.FirstName) {
		r.fail("firstName", "first name must not be empty")
	}
	if in.LastName != nil && !IsNonEmptyString(*in.LastName) {
		r.fail("lastName", "last name must not be empty")
	}
	if in.Email != nil && !IsValidEmail(*in.Email) {
		r.fail("email", "email must be a valid address")
	}
	if in.USPANumber != nil && !IsNonEmptyString(*in.USPANumber) {
		r.fail("uspaNumber", "USPA number must not be empty")
	}
	if in.JumpCount != nil && !IsNonNegativeInt(*in.JumpCount) {
		r.fail("jumpCount", "jump count must not be negative")
	}
	return r
}
