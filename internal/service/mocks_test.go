package service_test

import (
	"context"

	"adlot.app/inventory/internal/model"
	"adlot.app/inventory/internal/service"
	"adlot.app/inventory/internal/store"
)

type mockOrganizationStore struct {
	createFn        func(ctx context.Context, org *model.Organization) error
	getByIDFn       func(ctx context.Context, id int64, scope store.Scope) (*model.Organization, error)
	getDefaultFn    func(ctx context.Context, scope store.Scope) (*model.Organization, error)
	createDefaultFn func(ctx context.Context, org *model.Organization) (bool, error)
	listFn          func(ctx context.Context, scope store.Scope) ([]model.Organization, error)
}

func (m *mockOrganizationStore) Create(ctx context.Context, org *model.Organization) error {
	if m.createFn != nil {
		return m.createFn(ctx, org)
	}
	return nil
}

func (m *mockOrganizationStore) GetByID(ctx context.Context, id int64, scope store.Scope) (*model.Organization, error) {
	if m.getByIDFn != nil {
		return m.getByIDFn(ctx, id, scope)
	}
	return nil, store.ErrNotFound
}

func (m *mockOrganizationStore) GetDefault(ctx context.Context, scope store.Scope) (*model.Organization, error) {
	if m.getDefaultFn != nil {
		return m.getDefaultFn(ctx, scope)
	}
	return nil, store.ErrNotFound
}

func (m *mockOrganizationStore) CreateDefault(ctx context.Context, org *model.Organization) (bool, error) {
	if m.createDefaultFn != nil {
		return m.createDefaultFn(ctx, org)
	}
	return true, nil
}

func (m *mockOrganizationStore) List(ctx context.Context, scope store.Scope) ([]model.Organization, error) {
	if m.listFn != nil {
		return m.listFn(ctx, scope)
	}
	return nil, nil
}

type mockListingStore struct {
	createFn  func(ctx context.Context, listing *model.Listing) error
	getByIDFn func(ctx context.Context, id int64, scope store.Scope) (*model.Listing, error)
	listFn    func(ctx context.Context, filter store.ListingFilter) ([]model.Listing, int64, error)
	updateFn  func(ctx context.Context, id int64, update store.ListingUpdate, scope store.Scope) (*model.Listing, error)
	deleteFn  func(ctx context.Context, id int64, scope store.Scope) error
}

func (m *mockListingStore) Create(ctx context.Context, listing *model.Listing) error {
	if m.createFn != nil {
		return m.createFn(ctx, listing)
	}
	return nil
}

func (m *mockListingStore) GetByID(ctx context.Context, id int64, scope store.Scope) (*model.Listing, error) {
	if m.getByIDFn != nil {
		return m.getByIDFn(ctx, id, scope)
	}
	return nil, store.ErrNotFound
}

func (m *mockListingStore) List(ctx context.Context, filter store.ListingFilter) ([]model.Listing, int64, error) {
	if m.listFn != nil {
		return m.listFn(ctx, filter)
	}
	return nil, 0, nil
}

func (m *mockListingStore) Update(ctx context.Context, id int64, update store.ListingUpdate, scope store.Scope) (*model.Listing, error) {
	if m.updateFn != nil {
		return m.updateFn(ctx, id, update, scope)
	}
	return nil, store.ErrNotFound
}

func (m *mockListingStore) Delete(ctx context.Context, id int64, scope store.Scope) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, id, scope)
	}
	return nil
}

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
