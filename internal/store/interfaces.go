package store

import (
	"context"
	"errors"
	"time"

	"adlot.app/inventory/internal/model"
)

// ErrNotFound is returned when a requested entity does not exist, or exists
// but is not visible inside the caller's scope. The two cases are deliberately
// indistinguishable so existence never leaks across tenants.
var ErrNotFound = errors.New("not found")

// Scope restricts queries to rows owned by a single user identity.
// A zero Scope applies no ownership filter.
type Scope struct {
	UserID *string
}

// Scoped reports whether an ownership filter applies.
func (s Scope) Scoped() bool {
	return s.UserID != nil
}

// ScopeFor builds a scope owning rows for the given user.
func ScopeFor(userID string) Scope {
	return Scope{UserID: &userID}
}

// ListingFilter is a conjunctive filter over inventory listings.
// Nil fields are ignored; Location matches as a case-insensitive substring.
type ListingFilter struct {
	Scope          Scope
	OrganizationID *int64
	Type           *model.SpaceType
	Status         *model.ListingStatus
	Location       *string
	Limit          int
	Offset         int
}

// ListingUpdate carries the fields of a partial update. Only non-nil fields
// are written; everything else retains its prior value.
type ListingUpdate struct {
	Title            *string
	Description      *string
	Type             *model.SpaceType
	Size             *model.SpaceSize
	Location         *string
	Address          *string
	City             *string
	State            *string
	Country          *string
	PostalCode       *string
	Latitude         *float64
	Longitude        *float64
	DailyPrice       *float64
	WeeklyPrice      *float64
	MonthlyPrice     *float64
	DimensionsWidth  *float64
	DimensionsHeight *float64
	Illuminated      *bool
	Digital          *bool
	TrafficCount     *int64
	Demographics     *string
	VisibilityScore  *int32
	Status           *model.ListingStatus
	ImageURL         *string
	FacingDirection  *model.FacingDirection
	AvailableFrom    *time.Time
	AvailableUntil   *time.Time
}

// Empty reports whether the update would write no fields.
func (u ListingUpdate) Empty() bool {
	b := &updateBuilder{}
	u.apply(b)
	return len(b.assignments) == 0
}

// OrganizationStore defines the contract for organization data access
type OrganizationStore interface {
	Create(ctx context.Context, org *model.Organization) error
	GetByID(ctx context.Context, id int64, scope Scope) (*model.Organization, error)
	// GetDefault fetches the scope's "Default Organization" row.
	GetDefault(ctx context.Context, scope Scope) (*model.Organization, error)
	// CreateDefault inserts the default organization, tolerating a concurrent
	// winner. It reports whether this call inserted the row.
	CreateDefault(ctx context.Context, org *model.Organization) (bool, error)
	List(ctx context.Context, scope Scope) ([]model.Organization, error)
}

// ListingStore defines the contract for inventory listing data access
type ListingStore interface {
	Create(ctx context.Context, listing *model.Listing) error
	GetByID(ctx context.Context, id int64, scope Scope) (*model.Listing, error)
	// List returns a page of listings plus the unpaginated total matching the
	// same filter.
	List(ctx context.Context, filter ListingFilter) ([]model.Listing, int64, error)
	Update(ctx context.Context, id int64, update ListingUpdate, scope Scope) (*model.Listing, error)
	Delete(ctx context.Context, id int64, scope Scope) error
}
