package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"adlot.app/inventory/common/id"
	"adlot.app/inventory/internal/model"
	"adlot.app/inventory/internal/store"
)

const (
	defaultPageSize = 50
	maxPageSize     = 100
)

type CreateListingInput struct {
	// OrganizationID nil or zero selects the caller's default organization.
	OrganizationID   *int64
	Title            string
	Description      *string
	Type             model.SpaceType
	Size             model.SpaceSize
	Location         string
	Address          *string
	City             *string
	State            *string
	Country          *string
	PostalCode       *string
	Latitude         *float64
	Longitude        *float64
	DailyPrice       float64
	WeeklyPrice      *float64
	MonthlyPrice     *float64
	DimensionsWidth  *float64
	DimensionsHeight *float64
	Illuminated      bool
	Digital          bool
	TrafficCount     *int64
	Demographics     *string
	VisibilityScore  *int32
	Status           *model.ListingStatus
	ImageURL         *string
	FacingDirection  *model.FacingDirection
	AvailableFrom    *time.Time
	AvailableUntil   *time.Time
}

type ListListingsInput struct {
	OrganizationID *int64
	Type           *model.SpaceType
	Status         *model.ListingStatus
	Location       *string
	Limit          int
	Offset         int
}

type ListingService interface {
	Create(ctx context.Context, scope store.Scope, in CreateListingInput) (*model.Listing, error)
	Get(ctx context.Context, scope store.Scope, listingID int64) (*model.Listing, error)
	List(ctx context.Context, scope store.Scope, in ListListingsInput) ([]model.Listing, int64, error)
	Update(ctx context.Context, scope store.Scope, listingID int64, update store.ListingUpdate) (*model.Listing, error)
	Delete(ctx context.Context, scope store.Scope, listingID int64) error
}

type listingService struct {
	listingStore store.ListingStore
	orgService   OrganizationService
}

func NewListingService(listingStore store.ListingStore, orgService OrganizationService) ListingService {
	return &listingService{
		listingStore: listingStore,
		orgService:   orgService,
	}
}

func (s *listingService) Create(ctx context.Context, scope store.Scope, in CreateListingInput) (*model.Listing, error) {
	if err := validateVisibilityScore(in.VisibilityScore); err != nil {
		return nil, err
	}
	if in.DailyPrice <= 0 {
		return nil, validationErrorf("daily price must be positive")
	}

	org, err := s.resolveOrganization(ctx, scope, in.OrganizationID)
	if err != nil {
		return nil, err
	}

	status := model.ListingStatusAvailable
	if in.Status != nil {
		status = *in.Status
	}

	listing := &model.Listing{
		ID:               id.New(),
		OrganizationID:   org.ID,
		Title:            in.Title,
		Description:      in.Description,
		Type:             in.Type,
		Size:             in.Size,
		Location:         in.Location,
		Address:          in.Address,
		City:             in.City,
		State:            in.State,
		Country:          in.Country,
		PostalCode:       in.PostalCode,
		Latitude:         in.Latitude,
		Longitude:        in.Longitude,
		DailyPrice:       in.DailyPrice,
		WeeklyPrice:      in.WeeklyPrice,
		MonthlyPrice:     in.MonthlyPrice,
		DimensionsWidth:  in.DimensionsWidth,
		DimensionsHeight: in.DimensionsHeight,
		Illuminated:      in.Illuminated,
		Digital:          in.Digital,
		TrafficCount:     in.TrafficCount,
		Demographics:     in.Demographics,
		VisibilityScore:  in.VisibilityScore,
		Status:           status,
		ImageURL:         in.ImageURL,
		FacingDirection:  in.FacingDirection,
		AvailableFrom:    in.AvailableFrom,
		AvailableUntil:   in.AvailableUntil,
	}

	if err := s.listingStore.Create(ctx, listing); err != nil {
		return nil, fmt.Errorf("creating listing: %w", err)
	}

	slog.InfoContext(ctx, "listing created",
		"listing_id", listing.ID,
		"organization_id", listing.OrganizationID,
		"type", listing.Type,
	)
	return listing, nil
}

// resolveOrganization picks the listing's owner. An absent or zero ID selects
// the default organization; any other ID must exist inside the scope.
func (s *listingService) resolveOrganization(ctx context.Context, scope store.Scope, orgID *int64) (*model.Organization, error) {
	if orgID == nil || *orgID == 0 {
		return s.orgService.GetOrCreateDefault(ctx, scope)
	}
	return s.orgService.Get(ctx, scope, *orgID)
}

func (s *listingService) Get(ctx context.Context, scope store.Scope, listingID int64) (*model.Listing, error) {
	return s.listingStore.GetByID(ctx, listingID, scope)
}

func (s *listingService) List(ctx context.Context, scope store.Scope, in ListListingsInput) ([]model.Listing, int64, error) {
	limit := in.Limit
	if limit <= 0 {
		limit = defaultPageSize
	}
	if limit > maxPageSize {
		limit = maxPageSize
	}
	offset := in.Offset
	if offset < 0 {
		offset = 0
	}

	return s.listingStore.List(ctx, store.ListingFilter{
		Scope:          scope,
		OrganizationID: in.OrganizationID,
		Type:           in.Type,
		Status:         in.Status,
		Location:       in.Location,
		Limit:          limit,
		Offset:         offset,
	})
}

func (s *listingService) Update(ctx context.Context, scope store.Scope, listingID int64, update store.ListingUpdate) (*model.Listing, error) {
	if update.Empty() {
		return nil, validationErrorf("no fields to update")
	}
	if err := validateVisibilityScore(update.VisibilityScore); err != nil {
		return nil, err
	}

	// Existence (and ownership) is checked before the write so a missing row
	// reports NotFound rather than a write failure.
	if _, err := s.listingStore.GetByID(ctx, listingID, scope); err != nil {
		return nil, err
	}

	listing, err := s.listingStore.Update(ctx, listingID, update, scope)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			// The row passed the existence check but vanished before the
			// write; surface as an internal failure, not NotFound.
			return nil, fmt.Errorf("listing %d was deleted concurrently", listingID)
		}
		return nil, fmt.Errorf("updating listing: %w", err)
	}

	slog.InfoContext(ctx, "listing updated", "listing_id", listing.ID)
	return listing, nil
}

func (s *listingService) Delete(ctx context.Context, scope store.Scope, listingID int64) error {
	if err := s.listingStore.Delete(ctx, listingID, scope); err != nil {
		return err
	}
	slog.InfoContext(ctx, "listing deleted", "listing_id", listingID)
	return nil
}

func validateVisibilityScore(score *int32) error {
	if score != nil && (*score < 1 || *score > 10) {
		return validationErrorf("visibility score must be between 1 and 10")
	}
	return nil
}
