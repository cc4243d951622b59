package models

import (
	"time"

	"github.com/google/uuid"
)

// Gym is a fitness facility owned by exactly one User. Removal flips IsActive
// instead of deleting the row.
type Gym struct {
	ID        uuid.UUID
	Name      string
	Address   string
	Email     string
	Phone     string
	Website   string
	IsActive  bool
	UserID    uuid.UUID
	User      *User
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewGym holds the normalized fields required to create a gym.
type NewGym struct {
	Name    string
	Address string
	Email   string
	Phone   string
	Website string
	UserID  uuid.UUID
}

// GymChanges is a partial update. A nil field keeps the stored value.
type GymChanges struct {
	Name    *string
	Address *string
	Email   *string
	Phone   *string
	Website *string
}

// Apply merges the supplied fields into g.
func (c GymChanges) Apply(g *Gym) {
	g.Name = coalesce(c.Name, g.Name)
	g.Address = coalesce(c.Address, g.Address)
	g.Email = coalesce(c.Email, g.Email)
	g.Phone = coalesce(c.Phone, g.Phone)
	g.Website = coalesce(c.Website, g.Website)
}

// GymResponse is the public projection of a gym.
type GymResponse struct {
	ID       uuid.UUID `json:"id"`
	Name     string    `json:"name"`
	Address  string    `json:"address"`
	Email    string    `json:"email"`
	Phone    string    `json:"phone"`
	Website  string    `json:"website"`
	IsActive bool      `json:"isActive"`
}

// Response projects the gym for callers outside the system boundary.
func (g *Gym) Response() GymResponse {
	return GymResponse{
		ID:       g.ID,
		Name:     g.Name,
		Address:  g.Address,
		Email:    g.Email,
		Phone:    g.Phone,
		Website:  g.Website,
		IsActive: g.IsActive,
	}
}

func coalesce(value *string, fallback string) string {
	if value != nil {
		return *value
	}
	return fallback
}
