// Package dto maps between persisted domain records and request/response
// shapes. Mapping functions are pure and total: no validation, no side
// effects. Detail DTOs round-trip — feeding one back through the update path
// unchanged leaves the persisted entity identical except updatedAt.
package dto

import "github.com/ShaydeNofziger/skynav-api/internal/models"

// LocationDTO exposes coordinates by name so callers never have to remember
// the stored [longitude, latitude] order.
type LocationDTO struct {
	Longitude float64 `json:"longitude"`
	Latitude  float64 `json:"latitude"`
}

func toLocationDTO(l models.Location) LocationDTO {
	return LocationDTO{Longitude: l.Longitude(), Latitude: l.Latitude()}
}

// DropZoneSummary is the list-view projection of a dropzone. DistanceMeters
// is caller-supplied from a proximity query; it is carried through, never
// computed here.
type DropZoneSummary struct {
	ID             string      `json:"id"`
	Name           string      `json:"name"`
	DisplayName    string      `json:"displayName,omitempty"`
	City           string      `json:"city,omitempty"`
	State          string      `json:"state,omitempty"`
	Country        string      `json:"country,omitempty"`
	Location       LocationDTO `json:"location"`
	IsActive       bool        `json:"isActive"`
	DistanceMeters *float64    `json:"distanceMeters,omitempty"`
}

// ToDropZoneSummary projects dz for list views.
func ToDropZoneSummary(dz models.DropZone, distanceMeters *float64) DropZoneSummary {
	return DropZoneSummary{
		ID:             dz.ID,
		Name:           dz.Name,
		DisplayName:    dz.DisplayName,
		City:           dz.Address.City,
		State:          dz.Address.State,
		Country:        dz.Address.Country,
		Location:       toLocationDTO(dz.Location),
		IsActive:       dz.IsActive,
		DistanceMeters: distanceMeters,
	}
}

// DropZoneDetail is the full projection of a dropzone.
type DropZoneDetail struct {
	ID            string            `json:"id"`
	Name          string            `json:"name"`
	DisplayName   string            `json:"displayName,omitempty"`
	Description   string            `json:"description,omitempty"`
	Location      LocationDTO       `json:"location"`
	Address       models.Address    `json:"address"`
	Facilities    models.Facilities `json:"facilities"`
	Contact       models.Contact    `json:"contact"`
	IsActive      bool              `json:"isActive"`
	LandingAreaID string            `json:"landingAreaId,omitempty"`
	CreatedBy     string            `json:"createdBy"`
	CreatedAt     string            `json:"createdAt"`
	UpdatedAt     string            `json:"updatedAt"`
}

// ToDropZoneDetail projects the full field set of dz.
func ToDropZoneDetail(dz models.DropZone) DropZoneDetail {
	return DropZoneDetail{
		ID:            dz.ID,
		Name:          dz.Name,
		DisplayName:   dz.DisplayName,
		Description:   dz.Description,
		Location:      toLocationDTO(dz.Location),
		Address:       dz.Address,
		Facilities:    dz.Facilities,
		Contact:       dz.Contact,
		IsActive:      dz.IsActive,
		LandingAreaID: dz.LandingAreaID,
		CreatedBy:     dz.CreatedBy,
		CreatedAt:     formatTimestamp(dz.CreatedAt),
		UpdatedAt:     formatTimestamp(dz.UpdatedAt),
	}
}
