package dto

import "github.com/ShaydeNofziger/skynav-api/internal/models"

// Request inputs use pointer fields so handlers can tell an absent field from
// a zero value. Merge semantics: absent and JSON null both mean "leave the
// stored value unchanged". The one clearable field is UserProfile's
// homeDropzoneId, cleared by sending an empty string.

// LocationInput names the coordinates explicitly at the boundary; the stored
// representation is GeoJSON [longitude, latitude] order.
type LocationInput struct {
	Longitude *float64 `json:"longitude"`
	Latitude  *float64 `json:"latitude"`
}

// AddressInput is a partial postal address.
type AddressInput struct {
	Street  *string `json:"street"`
	City    *string `json:"city"`
	State   *string `json:"state"`
	Zip     *string `json:"zip"`
	Country *string `json:"country"`
}

// FacilitiesInput is a partial facilities description.
type FacilitiesInput struct {
	MaxAltitudeFt *int      `json:"maxAltitudeFt"`
	Aircraft      *[]string `json:"aircraft"`
	Amenities     *[]string `json:"amenities"`
}

// ContactInput is a partial contact block.
type ContactInput struct {
	Phone   *string `json:"phone"`
	Email   *string `json:"email"`
	Website *string `json:"website"`
}

// DropZoneInput is the create/update request body for a dropzone.
type DropZoneInput struct {
	Name          *string          `json:"name"`
	DisplayName   *string          `json:"displayName"`
	Description   *string          `json:"description"`
	Location      *LocationInput   `json:"location"`
	Address       *AddressInput    `json:"address"`
	Facilities    *FacilitiesInput `json:"facilities"`
	Contact       *ContactInput    `json:"contact"`
	IsActive      *bool            `json:"isActive"`
	LandingAreaID *string          `json:"landingAreaId"`
}

// ApplyTo merges the present fields of the input onto dz.
func (in *DropZoneInput) ApplyTo(dz *models.DropZone) {
	if in.Name != nil {
		dz.Name = *in.Name
	}
	if in.DisplayName != nil {
		dz.DisplayName = *in.DisplayName
	}
	if in.Description != nil {
		dz.Description = *in.Description
	}
	if in.Location != nil && in.Location.Longitude != nil && in.Location.Latitude != nil {
		dz.Location = models.NewLocation(*in.Location.Longitude, *in.Location.Latitude)
	}
	if in.Address != nil {
		applyAddress(in.Address, &dz.Address)
	}
	if in.Facilities != nil {
		applyFacilities(in.Facilities, &dz.Facilities)
	}
	if in.Contact != nil {
		applyContact(in.Contact, &dz.Contact)
	}
	if in.IsActive != nil {
		dz.IsActive = *in.IsActive
	}
	if in.LandingAreaID != nil {
		dz.LandingAreaID = *in.LandingAreaID
	}
}

func applyAddress(in *AddressInput, a *models.Address) {
	if in.Street != nil {
		a.Street = *in.Street
	}
	if in.City != nil {
		a.City = *in.City
	}
	if in.State != nil {
		a.State = *in.State
	}
	if in.Zip != nil {
		a.Zip = *in.Zip
	}
	if in.Country != nil {
		a.Country = *in.Country
	}
}

func applyFacilities(in *FacilitiesInput, f *models.Facilities) {
	if in.MaxAltitudeFt != nil {
		f.MaxAltitudeFt = *in.MaxAltitudeFt
	}
	if in.Aircraft != nil {
		f.Aircraft = *in.Aircraft
	}
	if in.Amenities != nil {
		f.Amenities = *in.Amenities
	}
}

func applyContact(in *ContactInput, c *models.Contact) {
	if in.Phone != nil {
		c.Phone = *in.Phone
	}
	if in.Email != nil {
		c.Email = *in.Email
	}
	if in.Website != nil {
		c.Website = *in.Website
	}
}

// ChecklistItemInput is one checklist entry in a trip request. A checklist
// present in a request replaces the stored list wholesale; entries without
// an id receive one.
type ChecklistItemInput struct {
	ID        *string `json:"id"`
	Text      string  `json:"text"`
	Completed bool    `json:"completed"`
}

// TripInput is the create/update request body for a trip.
type TripInput struct {
	Name        *string               `json:"name"`
	Description *string               `json:"description"`
	StartDate   *string               `json:"startDate"`
	EndDate     *string               `json:"endDate"`
	Status      *string               `json:"status"`
	Checklist   *[]ChecklistItemInput `json:"checklist"`
	Notes       *string               `json:"notes"`
}

// ApplyTo merges the present fields of the input onto t.
func (in *TripInput) ApplyTo(t *models.Trip) {
	if in.Name != nil {
		t.Name = *in.Name
	}
	if in.Description != nil {
		t.Description = *in.Description
	}
	if in.StartDate != nil {
		t.StartDate = *in.StartDate
	}
	if in.EndDate != nil {
		t.EndDate = *in.EndDate
	}
	if in.Status != nil {
		t.Status = models.TripStatus(*in.Status)
	}
	if in.Checklist != nil {
		items := make([]models.ChecklistItem, 0, len(*in.Checklist))
		for _, ci := range *in.Checklist {
			item := models.ChecklistItem{Text: ci.Text, Completed: ci.Completed}
			if ci.ID != nil && *ci.ID != "" {
				item.ID = *ci.ID
			} else {
				item.ID = models.NewChecklistItemID()
			}
			items = append(items, item)
		}
		t.Checklist = items
	}
	if in.Notes != nil {
		t.Notes = *in.Notes
	}
}

// FlightDetailsInput is a partial flight details payload.
type FlightDetailsInput struct {
	DepartureAirport *string `json:"departureAirport"`
	ArrivalAirport   *string `json:"arrivalAirport"`
	Airline          *string `json:"airline"`
	FlightNumber     *string `json:"flightNumber"`
	ConfirmationCode *string `json:"confirmationCode"`
}

// DriveDetailsInput is a partial drive details payload.
type DriveDetailsInput struct {
	StartLocation *string  `json:"startLocation"`
	EndLocation   *string  `json:"endLocation"`
	DistanceMiles *float64 `json:"distanceMiles"`
	DurationHours *float64 `json:"durationHours"`
}

// LodgingDetailsInput is a partial lodging details payload.
type LodgingDetailsInput struct {
	Name             *string `json:"name"`
	Address          *string `json:"address"`
	CheckInDate      *string `json:"checkInDate"`
	CheckOutDate     *string `json:"checkOutDate"`
	ConfirmationCode *string `json:"confirmationCode"`
}

// SegmentInput is the create/update request body for a travel segment.
type SegmentInput struct {
	Type             *string              `json:"type"`
	Flight           *FlightDetailsInput  `json:"flight"`
	Drive            *DriveDetailsInput   `json:"drive"`
	Lodging          *LodgingDetailsInput `json:"lodging"`
	PlannedJumpCount *int                 `json:"plannedJumpCount"`
	ActualJumpCount  *int                 `json:"actualJumpCount"`
	StartDate        *string              `json:"startDate"`
	EndDate          *string              `json:"endDate"`
}

// ApplyTo merges the present fields of the input onto s. A present details
// object is merged field by field into the matching details block.
func (in *SegmentInput) ApplyTo(s *models.TravelSegment) {
	if in.Type != nil {
		s.Type = models.SegmentType(*in.Type)
	}
	if in.Flight != nil {
		if s.Flight == nil {
			s.Flight = &models.FlightDetails{}
		}
		applyFlight(in.Flight, s.Flight)
	}
	if in.Drive != nil {
		if s.Drive == nil {
			s.Drive = &models.DriveDetails{}
		}
		applyDrive(in.Drive, s.Drive)
	}
	if in.Lodging != nil {
		if s.Lodging == nil {
			s.Lodging = &models.LodgingDetails{}
		}
		applyLodging(in.Lodging, s.Lodging)
	}
	if in.PlannedJumpCount != nil {
		v := *in.PlannedJumpCount
		s.PlannedJumpCount = &v
	}
	if in.ActualJumpCount != nil {
		v := *in.ActualJumpCount
		s.ActualJumpCount = &v
	}
	if in.StartDate != nil {
		s.StartDate = *in.StartDate
	}
	if in.EndDate != nil {
		s.EndDate = *in.EndDate
	}
}

func applyFlight(in *FlightDetailsInput, f *models.FlightDetails) {
	if in.DepartureAirport != nil {
		f.DepartureAirport = *in.DepartureAirport
	}
	if in.ArrivalAirport != nil {
		f.ArrivalAirport = *in.ArrivalAirport
	}
	if in.Airline != nil {
		f.Airline = *in.Airline
	}
	if in.FlightNumber != nil {
		f.FlightNumber = *in.FlightNumber
	}
	if in.ConfirmationCode != nil {
		f.ConfirmationCode = *in.ConfirmationCode
	}
}

func applyDrive(in *DriveDetailsInput, d *models.DriveDetails) {
	if in.StartLocation != nil {
		d.StartLocation = *in.StartLocation
	}
	if in.EndLocation != nil {
		d.EndLocation = *in.EndLocation
	}
	if in.DistanceMiles != nil {
		d.DistanceMiles = *in.DistanceMiles
	}
	if in.DurationHours != nil {
		d.DurationHours = *in.DurationHours
	}
}

func applyLodging(in *LodgingDetailsInput, l *models.LodgingDetails) {
	if in.Name != nil {
		l.Name = *in.Name
	}
	if in.Address != nil {
		l.Address = *in.Address
	}
	if in.CheckInDate != nil {
		l.CheckInDate = *in.CheckInDate
	}
	if in.CheckOutDate != nil {
		l.CheckOutDate = *in.CheckOutDate
	}
	if in.ConfirmationCode != nil {
		l.ConfirmationCode = *in.ConfirmationCode
	}
}

// ProfileInput is the update request body for the caller's profile.
type ProfileInput struct {
	DisplayName    *string   `json:"displayName"`
	FirstName      *string   `json:"firstName"`
	LastName       *string   `json:"lastName"`
	Email          *string   `json:"email"`
	USPANumber     *string   `json:"uspaNumber"`
	JumpCount      *int      `json:"jumpCount"`
	Licenses       *[]string `json:"licenses"`
	Ratings        *[]string `json:"ratings"`
	HomeDropzoneID *string   `json:"homeDropzoneId"`
}

// ApplyTo merges the present fields of the input onto p. HomeDropzoneID set
// to the empty string clears the stored reference.
func (in *ProfileInput) ApplyTo(p *models.UserProfile) {
	if in.DisplayName != nil {
		p.DisplayName = *in.DisplayName
	}
	if in.FirstName != nil {
		p.FirstName = *in.FirstName
	}
	if in.LastName != nil {
		p.LastName = *in.LastName
	}
	if in.Email != nil {
		p.Email = *in.Email
	}
	if in.USPANumber != nil {
		p.USPANumber = *in.USPANumber
	}
	if in.JumpCount != nil {
		p.JumpCount = *in.JumpCount
	}
	if in.Licenses != nil {
		p.Licenses = *in.Licenses
	}
	if in.Ratings != nil {
		p.Ratings = *in.Ratings
	}
	if in.HomeDropzoneID != nil {
		p.HomeDropzoneID = *in.HomeDropzoneID
	}
}
