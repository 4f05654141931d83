package model

import "time"

// SpaceType classifies the physical advertising medium.
type SpaceType string

const (
	SpaceTypeBillboard       SpaceType = "billboard"
	SpaceTypeDigitalDisplay  SpaceType = "digital_display"
	SpaceTypeTransitAd       SpaceType = "transit_ad"
	SpaceTypeStreetFurniture SpaceType = "street_furniture"
	SpaceTypeAirport         SpaceType = "airport"
	SpaceTypeMall            SpaceType = "mall"
	SpaceTypeOther           SpaceType = "other"
)

type SpaceSize string

const (
	SpaceSizeSmall      SpaceSize = "small"
	SpaceSizeMedium     SpaceSize = "medium"
	SpaceSizeLarge      SpaceSize = "large"
	SpaceSizeExtraLarge SpaceSize = "extra_large"
)

// ListingStatus is a free-form enumerated field. Any status may be set to
// any other via update; no transition graph is enforced.
type ListingStatus string

const (
	ListingStatusAvailable   ListingStatus = "available"
	ListingStatusBooked      ListingStatus = "booked"
	ListingStatusMaintenance ListingStatus = "maintenance"
	ListingStatusInactive    ListingStatus = "inactive"
)

type FacingDirection string

const (
	FacingNorth    FacingDirection = "north"
	FacingSouth    FacingDirection = "south"
	FacingEast     FacingDirection = "east"
	FacingWest     FacingDirection = "west"
	FacingMultiple FacingDirection = "multiple"
)

// Listing is a single advertising-space offering owned by exactly one
// organization.
type Listing struct {
	ID               int64            `json:"id"`
	OrganizationID   int64            `json:"organization_id"`
	Title            string           `json:"title"`
	Description      *string          `json:"description,omitempty"`
	Type             SpaceType        `json:"type"`
	Size             SpaceSize        `json:"size"`
	Location         string           `json:"location"`
	Address          *string          `json:"address,omitempty"`
	City             *string          `json:"city,omitempty"`
	State            *string          `json:"state,omitempty"`
	Country          *string          `json:"country,omitempty"`
	PostalCode       *string          `json:"postal_code,omitempty"`
	Latitude         *float64         `json:"latitude,omitempty"`
	Longitude        *float64         `json:"longitude,omitempty"`
	DailyPrice       float64          `json:"daily_price"`
	WeeklyPrice      *float64         `json:"weekly_price,omitempty"`
	MonthlyPrice     *float64         `json:"monthly_price,omitempty"`
	DimensionsWidth  *float64         `json:"dimensions_width,omitempty"`
	DimensionsHeight *float64         `json:"dimensions_height,omitempty"`
	Illuminated      bool             `json:"illuminated"`
	Digital          bool             `json:"digital"`
	TrafficCount     *int64           `json:"traffic_count,omitempty"`
	Demographics     *string          `json:"demographics,omitempty"`
	VisibilityScore  *int32           `json:"visibility_score,omitempty"`
	Status           ListingStatus    `json:"status"`
	ImageURL         *string          `json:"image_url,omitempty"`
	FacingDirection  *FacingDirection `json:"facing_direction,omitempty"`
	AvailableFrom    *time.Time       `json:"available_from,omitempty"`
	AvailableUntil   *time.Time       `json:"available_until,omitempty"`
	CreatedAt        time.Time        `json:"created_at"`
	UpdatedAt        time.Time        `json:"updated_at"`
}
