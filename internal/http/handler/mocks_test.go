package handler_test

import (
	"context"

	"adlot.app/inventory/internal/model"
	"adlot.app/inventory/internal/service"
	"adlot.app/inventory/internal/store"
)

type mockOrganizationService struct {
	createFn             func(ctx context.Context, scope store.Scope, in service.CreateOrganizationInput) (*model.Organization, error)
	getFn                func(ctx context.Context, scope store.Scope, orgID int64) (*model.Organization, error)
	listFn               func(ctx context.Context, scope store.Scope) ([]model.Organization, error)
	getOrCreateDefaultFn func(ctx context.Context, scope store.Scope) (*model.Organization, error)
}

func (m *mockOrganizationService) Create(ctx context.Context, scope store.Scope, in service.CreateOrganizationInput) (*model.Organization, error) {
	if m.createFn != nil {
		return m.createFn(ctx, scope, in)
	}
	return nil, nil
}

func (m *mockOrganizationService) Get(ctx context.Context, scope store.Scope, orgID int64) (*model.Organization, error) {
	if m.getFn != nil {
		return m.getFn(ctx, scope, orgID)
	}
	return nil, store.ErrNotFound
}

func (m *mockOrganizationService) List(ctx context.Context, scope store.Scope) ([]model.Organization, error) {
	if m.listFn != nil {
		return m.listFn(ctx, scope)
	}
	return nil, nil
}

func (m *mockOrganizationService) GetOrCreateDefault(ctx context.Context, scope store.Scope) (*model.Organization, error) {
	if m.getOrCreateDefaultFn != nil {
		return m.getOrCreateDefaultFn(ctx, scope)
	}
	return nil, store.ErrNotFound
}

type mockListingService struct {
	createFn func(ctx context.Context, scope store.Scope, in service.CreateListingInput) (*model.Listing, error)
	getFn    func(ctx context.Context, scope store.Scope, listingID int64) (*model.Listing, error)
	listFn   func(ctx context.Context, scope store.Scope, in service.ListListingsInput) ([]model.Listing, int64, error)
	updateFn func(ctx context.Context, scope store.Scope, listingID int64, update store.ListingUpdate) (*model.Listing, error)
	deleteFn func(ctx context.Context, scope store.Scope, listingID int64) error
}

func (m *mockListingService) Create(ctx context.Context, scope store.Scope, in service.CreateListingInput) (*model.Listing, error) {
	if m.createFn != nil {
		return m.createFn(ctx, scope, in)
	}
	return nil, nil
}

func (m *mockListingService) Get(ctx context.Context, scope store.Scope, listingID int64) (*model.Listing, error) {
	if m.getFn != nil {
		return m.getFn(ctx, scope, listingID)
	}
	return nil, store.ErrNotFound
}

func (m *mockListingService) List(ctx context.Context, scope store.Scope, in service.ListListingsInput) ([]model.Listing, int64, error) {
	if m.listFn != nil {
		return m.listFn(ctx, scope, in)
	}
	return nil, 0, nil
}

func (m *mockListingService) Update(ctx context.Context, scope store.Scope, listingID int64, update store.ListingUpdate) (*model.Listing, error) {
	if m.updateFn != nil {
		return m.updateFn(ctx, scope, listingID, update)
	}
	return nil, store.ErrNotFound
}

func (m *mockListingService) Delete(ctx context.Context, scope store.Scope, listingID int64) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, scope, listingID)
	}
	return nil
}
