package models

import "time"

// UserProfile is the skydiver profile for an authenticated user. The id is
// the identity provider's subject claim, so profiles are upserted rather
// than created with a generated id.
type UserProfile struct {
	ID             string    `bson:"_id" json:"id"`
	DisplayName    string    `bson:"display_name,omitempty" json:"displayName,omitempty"`
	FirstName      string    `bson:"first_name,omitempty" json:"firstName,omitempty"`
	LastName       string    `bson:"last_name,omitempty" json:"lastName,omitempty"`
	Email          string    `bson:"email,omitempty" json:"email,omitempty"`
	USPANumber     string    `bson:"uspa_number,omitempty" json:"uspaNumber,omitempty"`
	JumpCount      int       `bson:"jump_count" json:"jumpCount"`
	Licenses       []string  `bson:"licenses,omitempty" json:"licenses,omitempty"`
	Ratings        []string  `bson:"ratings,omitempty" json:"ratings,omitempty"`
	HomeDropzoneID string    `bson:"home_dropzone_id,omitempty" json:"homeDropzoneId,omitempty"`
	CreatedAt      time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt      time.Time `bson:"updated_at" json:"updatedAt"`
}

// Claims are the verified identity claims attached to a request.
type Claims struct {
	Subject string `json:"sub"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Exp     int64  `json:"exp"`
}
