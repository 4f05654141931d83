package dto

import (
	"time"

	"adlot.app/inventory/internal/model"
	"adlot.app/inventory/internal/service"
	"adlot.app/inventory/internal/store"
)

type CreateListingRequest struct {
	OrganizationID   *int64                 `json:"organization_id,omitempty,string"`
	Title            string                 `json:"title" binding:"required,min=1,max=255"`
	Description      *string                `json:"description,omitempty"`
	Type             model.SpaceType        `json:"type" binding:"required,oneof=billboard digital_display transit_ad street_furniture airport mall other"`
	Size             model.SpaceSize        `json:"size" binding:"required,oneof=small medium large extra_large"`
	Location         string                 `json:"location" binding:"required,min=1,max=255"`
	Address          *string                `json:"address,omitempty"`
	City             *string                `json:"city,omitempty"`
	State            *string                `json:"state,omitempty"`
	Country          *string                `json:"country,omitempty"`
	PostalCode       *string                `json:"postal_code,omitempty"`
	Latitude         *float64               `json:"latitude,omitempty" binding:"omitempty,gte=-90,lte=90"`
	Longitude        *float64               `json:"longitude,omitempty" binding:"omitempty,gte=-180,lte=180"`
	DailyPrice       float64                `json:"daily_price" binding:"required,gt=0"`
	WeeklyPrice      *float64               `json:"weekly_price,omitempty" binding:"omitempty,gt=0"`
	MonthlyPrice     *float64               `json:"monthly_price,omitempty" binding:"omitempty,gt=0"`
	DimensionsWidth  *float64               `json:"dimensions_width,omitempty" binding:"omitempty,gt=0"`
	DimensionsHeight *float64               `json:"dimensions_height,omitempty" binding:"omitempty,gt=0"`
	Illuminated      bool                   `json:"illuminated"`
	Digital          bool                   `json:"digital"`
	TrafficCount     *int64                 `json:"traffic_count,omitempty" binding:"omitempty,gte=0"`
	Demographics     *string                `json:"demographics,omitempty"`
	VisibilityScore  *int32                 `json:"visibility_score,omitempty"`
	Status           *model.ListingStatus   `json:"status,omitempty" binding:"omitempty,oneof=available booked maintenance inactive"`
	ImageURL         *string                `json:"image_url,omitempty" binding:"omitempty,url"`
	FacingDirection  *model.FacingDirection `json:"facing_direction,omitempty" binding:"omitempty,oneof=north south east west multiple"`
	AvailableFrom    *time.Time             `json:"available_from,omitempty"`
	AvailableUntil   *time.Time             `json:"available_until,omitempty"`
}

func (r *CreateListingRequest) ToInput() service.CreateListingInput {
	return service.CreateListingInput{
		OrganizationID:   r.OrganizationID,
		Title:            r.Title,
		Description:      r.Description,
		Type:             r.Type,
		Size:             r.Size,
		Location:         r.Location,
		Address:          r.Address,
		City:             r.City,
		State:            r.State,
		Country:          r.Country,
		PostalCode:       r.PostalCode,
		Latitude:         r.Latitude,
		Longitude:        r.Longitude,
		DailyPrice:       r.DailyPrice,
		WeeklyPrice:      r.WeeklyPrice,
		MonthlyPrice:     r.MonthlyPrice,
		DimensionsWidth:  r.DimensionsWidth,
		DimensionsHeight: r.DimensionsHeight,
		Illuminated:      r.Illuminated,
		Digital:          r.Digital,
		TrafficCount:     r.TrafficCount,
		Demographics:     r.Demographics,
		VisibilityScore:  r.VisibilityScore,
		Status:           r.Status,
		ImageURL:         r.ImageURL,
		FacingDirection:  r.FacingDirection,
		AvailableFrom:    r.AvailableFrom,
		AvailableUntil:   r.AvailableUntil,
	}
}

// UpdateListingRequest mirrors the create request with every field optional.
// Absent fields are left untouched by the update.
type UpdateListingRequest struct {
	Title            *string                `json:"title,omitempty" binding:"omitempty,min=1,max=255"`
	Description      *string                `json:"description,omitempty"`
	Type             *model.SpaceType       `json:"type,omitempty" binding:"omitempty,oneof=billboard digital_display transit_ad street_furniture airport mall other"`
	Size             *model.SpaceSize       `json:"size,omitempty" binding:"omitempty,oneof=small medium large extra_large"`
	Location         *string                `json:"location,omitempty" binding:"omitempty,min=1,max=255"`
	Address          *string                `json:"address,omitempty"`
	City             *string                `json:"city,omitempty"`
	State            *string                `json:"state,omitempty"`
	Country          *string                `json:"country,omitempty"`
	PostalCode       *string                `json:"postal_code,omitempty"`
	Latitude         *float64               `json:"latitude,omitempty" binding:"omitempty,gte=-90,lte=90"`
	Longitude        *float64               `json:"longitude,omitempty" binding:"omitempty,gte=-180,lte=180"`
	DailyPrice       *float64               `json:"daily_price,omitempty" binding:"omitempty,gt=0"`
	WeeklyPrice      *float64               `json:"weekly_price,omitempty" binding:"omitempty,gt=0"`
	MonthlyPrice     *float64               `json:"monthly_price,omitempty" binding:"omitempty,gt=0"`
	DimensionsWidth  *float64               `json:"dimensions_width,omitempty" binding:"omitempty,gt=0"`
	DimensionsHeight *float64               `json:"dimensions_height,omitempty" binding:"omitempty,gt=0"`
	Illuminated      *bool                  `json:"illuminated,omitempty"`
	Digital          *bool                  `json:"digital,omitempty"`
	TrafficCount     *int64                 `json:"traffic_count,omitempty" binding:"omitempty,gte=0"`
	Demographics     *string                `json:"demographics,omitempty"`
	VisibilityScore  *int32                 `json:"visibility_score,omitempty"`
	Status           *model.ListingStatus   `json:"status,omitempty" binding:"omitempty,oneof=available booked maintenance inactive"`
	ImageURL         *string                `json:"image_url,omitempty" binding:"omitempty,url"`
	FacingDirection  *model.FacingDirection `json:"facing_direction,omitempty" binding:"omitempty,oneof=north south east west multiple"`
	AvailableFrom    *time.Time             `json:"available_from,omitempty"`
	AvailableUntil   *time.Time             `json:"available_until,omitempty"`
}

func (r *UpdateListingRequest) ToUpdate() store.ListingUpdate {
	return store.ListingUpdate{
		Title:            r.Title,
		Description:      r.Description,
		Type:             r.Type,
		Size:             r.Size,
		Location:         r.Location,
		Address:          r.Address,
		City:             r.City,
		State:            r.State,
		Country:          r.Country,
		PostalCode:       r.PostalCode,
		Latitude:         r.Latitude,
		Longitude:        r.Longitude,
		DailyPrice:       r.DailyPrice,
		WeeklyPrice:      r.WeeklyPrice,
		MonthlyPrice:     r.MonthlyPrice,
		DimensionsWidth:  r.DimensionsWidth,
		DimensionsHeight: r.DimensionsHeight,
		Illuminated:      r.Illuminated,
		Digital:          r.Digital,
		TrafficCount:     r.TrafficCount,
		Demographics:     r.Demographics,
		VisibilityScore:  r.VisibilityScore,
		Status:           r.Status,
		ImageURL:         r.ImageURL,
		FacingDirection:  r.FacingDirection,
		AvailableFrom:    r.AvailableFrom,
		AvailableUntil:   r.AvailableUntil,
	}
}

type ListListingsRequest struct {
	OrganizationID *int64               `form:"organization_id"`
	Type           *model.SpaceType     `form:"type" binding:"omitempty,oneof=billboard digital_display transit_ad street_furniture airport mall other"`
	Status         *model.ListingStatus `form:"status" binding:"omitempty,oneof=available booked maintenance inactive"`
	Location       *string              `form:"location"`
	Limit          int                  `form:"limit" binding:"omitempty,gte=0"`
	Offset         int                  `form:"offset" binding:"omitempty,gte=0"`
}

func (r *ListListingsRequest) ToInput() service.ListListingsInput {
	return service.ListListingsInput{
		OrganizationID: r.OrganizationID,
		Type:           r.Type,
		Status:         r.Status,
		Location:       r.Location,
		Limit:          r.Limit,
		Offset:         r.Offset,
	}
}

type ListingResponse struct {
	ID               int64                  `json:"id,string"`
	OrganizationID   int64                  `json:"organization_id,string"`
	Title            string                 `json:"title"`
	Description      *string                `json:"description,omitempty"`
	Type             model.SpaceType        `json:"type"`
	Size             model.SpaceSize        `json:"size"`
	Location         string                 `json:"location"`
	Address          *string                `json:"address,omitempty"`
	City             *string                `json:"city,omitempty"`
	State            *string                `json:"state,omitempty"`
	Country          *string                `json:"country,omitempty"`
	PostalCode       *string                `json:"postal_code,omitempty"`
	Latitude         *float64               `json:"latitude,omitempty"`
	Longitude        *float64               `json:"longitude,omitempty"`
	DailyPrice       float64                `json:"daily_price"`
	WeeklyPrice      *float64               `json:"weekly_price,omitempty"`
	MonthlyPrice     *float64               `json:"monthly_price,omitempty"`
	DimensionsWidth  *float64               `json:"dimensions_width,omitempty"`
	DimensionsHeight *float64               `json:"dimensions_height,omitempty"`
	Illuminated      bool                   `json:"illuminated"`
	Digital          bool                   `json:"digital"`
	TrafficCount     *int64                 `json:"traffic_count,omitempty"`
	Demographics     *string                `json:"demographics,omitempty"`
	VisibilityScore  *int32                 `json:"visibility_score,omitempty"`
	Status           model.ListingStatus    `json:"status"`
	ImageURL         *string                `json:"image_url,omitempty"`
	FacingDirection  *model.FacingDirection `json:"facing_direction,omitempty"`
	AvailableFrom    *time.Time             `json:"available_from,omitempty"`
	AvailableUntil   *time.Time             `json:"available_until,omitempty"`
	CreatedAt        time.Time              `json:"created_at"`
	UpdatedAt        time.Time              `json:"updated_at"`
}

func ToListingResponse(l *model.Listing) *ListingResponse {
	return &ListingResponse{
		ID:               l.ID,
		OrganizationID:   l.OrganizationID,
		Title:            l.Title,
		Description:      l.Description,
		Type:             l.Type,
		Size:             l.Size,
		Location:         l.Location,
		Address:          l.Address,
		City:             l.City,
		State:            l.State,
		Country:          l.Country,
		PostalCode:       l.PostalCode,
		Latitude:         l.Latitude,
		Longitude:        l.Longitude,
		DailyPrice:       l.DailyPrice,
		WeeklyPrice:      l.WeeklyPrice,
		MonthlyPrice:     l.MonthlyPrice,
		DimensionsWidth:  l.DimensionsWidth,
		DimensionsHeight: l.DimensionsHeight,
		Illuminated:      l.Illuminated,
		Digital:          l.Digital,
		TrafficCount:     l.TrafficCount,
		Demographics:     l.Demographics,
		VisibilityScore:  l.VisibilityScore,
		Status:           l.Status,
		ImageURL:         l.ImageURL,
		FacingDirection:  l.FacingDirection,
		AvailableFrom:    l.AvailableFrom,
		AvailableUntil:   l.AvailableUntil,
		CreatedAt:        l.CreatedAt,
		UpdatedAt:        l.UpdatedAt,
	}
}

type ListListingsResponse struct {
	Listings []ListingResponse `json:"listings"`
	Total    int64             `json:"total"`
}

func ToListListingsResponse(listings []model.Listing, total int64) *ListListingsResponse {
	resp := &ListListingsResponse{
		Listings: make([]ListingResponse, len(listings)),
		Total:    total,
	}
	for i := range listings {
		resp.Listings[i] = *ToListingResponse(&listings[i])
	}
	return resp
}
