package model

import "time"

// DefaultOrganizationName is the name of the auto-provisioned organization
// used when a caller creates a listing without naming one.
const DefaultOrganizationName = "Default Organization"

type Organization struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     *string   `json:"phone,omitempty"`
	Address   *string   `json:"address,omitempty"`
	UserID    *string   `json:"-"` // owning identity, nil when ownership scoping is disabled
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
