package models

import "time"

// Location is a GeoJSON point. Coordinates are stored [longitude, latitude];
// reversing the order corrupts every proximity query without a type error.
type Location struct {
	Type        string    `bson:"type" json:"type"`
	Coordinates []float64 `bson:"coordinates" json:"coordinates"`
}

// NewLocation builds a GeoJSON point from a longitude/latitude pair.
func NewLocation(longitude, latitude float64) Location {
	return Location{Type: "Point", Coordinates: []float64{longitude, latitude}}
}

// Longitude returns the first coordinate, or 0 if the point is malformed.
func (l Location) Longitude() float64 {
	if len(l.Coordinates) < 2 {
		return 0
	}
	return l.Coordinates[0]
}

// Latitude returns the second coordinate, or 0 if the point is malformed.
func (l Location) Latitude() float64 {
	if len(l.Coordinates) < 2 {
		return 0
	}
	return l.Coordinates[1]
}

// Address is a postal address for a dropzone.
type Address struct {
	Street  string `bson:"street,omitempty" json:"street,omitempty"`
	City    string `bson:"city,omitempty" json:"city,omitempty"`
	State   string `bson:"state,omitempty" json:"state,omitempty"`
	Zip     string `bson:"zip,omitempty" json:"zip,omitempty"`
	Country string `bson:"country,omitempty" json:"country,omitempty"`
}

// Facilities describes what a dropzone operates.
type Facilities struct {
	MaxAltitudeFt int      `bson:"max_altitude_ft,omitempty" json:"maxAltitudeFt,omitempty"`
	Aircraft      []string `bson:"aircraft,omitempty" json:"aircraft,omitempty"`
	Amenities     []string `bson:"amenities,omitempty" json:"amenities,omitempty"`
}

// Contact holds public contact details for a dropzone.
type Contact struct {
	Phone   string `bson:"phone,omitempty" json:"phone,omitempty"`
	Email   string `bson:"email,omitempty" json:"email,omitempty"`
	Website string `bson:"website,omitempty" json:"website,omitempty"`
}

// DropZone is a skydiving operating location, the central directory entity.
type DropZone struct {
	ID            string     `bson:"_id" json:"id"`
	Name          string     `bson:"name" json:"name"`
	DisplayName   string     `bson:"display_name,omitempty" json:"displayName,omitempty"`
	Description   string     `bson:"description,omitempty" json:"description,omitempty"`
	Location      Location   `bson:"location" json:"location"`
	Address       Address    `bson:"address" json:"address"`
	Facilities    Facilities `bson:"facilities" json:"facilities"`
	Contact       Contact    `bson:"contact" json:"contact"`
	IsActive      bool       `bson:"is_active" json:"isActive"`
	LandingAreaID string     `bson:"landing_area_id,omitempty" json:"landingAreaId,omitempty"`
	CreatedBy     string     `bson:"created_by" json:"createdBy"`
	CreatedAt     time.Time  `bson:"created_at" json:"createdAt"`
	UpdatedAt     time.Time  `bson:"updated_at" json:"updatedAt"`
}
