package models

import (
	"time"

	"github.com/google/uuid"
)

// User is an externally authenticated account that may own gyms.
type User struct {
	ID            uuid.UUID
	CognitoUserID string
	FirstName     string
	LastName      string
	Document      string
	Email         string
	Phone         string
	IsActive      bool
	CreatedAt     time.Time
	UpdatedAt     time.Time

	// Relationships
	Gyms []Gym
}

// NewUser holds the normalized fields required to register a user.
type NewUser struct {
	CognitoUserID string
	FirstName     string
	LastName      string
	Document      string
	Email         string
	Phone         string
}

// UserChanges is a partial update. A nil field keeps the stored value.
type UserChanges struct {
	FirstName *string
	LastName  *string
	Document  *string
	Email     *string
	Phone     *string
}

// Apply merges the supplied fields into u.
func (c UserChanges) Apply(u *User) {
	u.FirstName = coalesce(c.FirstName, u.FirstName)
	u.LastName = coalesce(c.LastName, u.LastName)
	u.Document = coalesce(c.Document, u.Document)
	u.Email = coalesce(c.Email, u.Email)
	u.Phone = coalesce(c.Phone, u.Phone)
}

// UserResponse is the public projection of a user.
type UserResponse struct {
	ID            uuid.UUID `json:"id"`
	CognitoUserID string    `json:"cognitoUserId"`
	FirstName     string    `json:"firstName"`
	LastName      string    `json:"lastName"`
	Document      string    `json:"document"`
	Email         string    `json:"email"`
	Phone         string    `json:"phone"`
	IsActive      bool      `json:"isActive"`
}

// Response projects the user for callers outside the system boundary.
func (u *User) Response() UserResponse {
	return UserResponse{
		ID:            u.ID,
		CognitoUserID: u.CognitoUserID,
		FirstName:     u.FirstName,
		LastName:      u.LastName,
		Document:      u.Document,
		Email:         u.Email,
		Phone:         u.Phone,
		IsActive:      u.IsActive,
	}
}
