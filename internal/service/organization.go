package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"adlot.app/inventory/common/id"
	"adlot.app/inventory/internal/model"
	"adlot.app/inventory/internal/store"
)

// Defaults stamped on auto-provisioned organizations.
const (
	defaultOrgPhone   = "+1-555-0123"
	defaultOrgAddress = "123 Main Street, City, State 12345"
)

type CreateOrganizationInput struct {
	Name    string
	Email   string
	Phone   *string
	Address *string
}

type OrganizationService interface {
	Create(ctx context.Context, scope store.Scope, in CreateOrganizationInput) (*model.Organization, error)
	Get(ctx context.Context, scope store.Scope, orgID int64) (*model.Organization, error)
	List(ctx context.Context, scope store.Scope) ([]model.Organization, error)
	// GetOrCreateDefault resolves the scope's "Default Organization",
	// provisioning it idempotently on first use.
	GetOrCreateDefault(ctx context.Context, scope store.Scope) (*model.Organization, error)
}

type organizationService struct {
	orgStore store.OrganizationStore
}

func NewOrganizationService(orgStore store.OrganizationStore) OrganizationService {
	return &organizationService{orgStore: orgStore}
}

func (s *organizationService) Create(ctx context.Context, scope store.Scope, in CreateOrganizationInput) (*model.Organization, error) {
	org := &model.Organization{
		ID:      id.New(),
		Name:    in.Name,
		Email:   in.Email,
		Phone:   in.Phone,
		Address: in.Address,
		UserID:  scope.UserID,
	}

	if err := s.orgStore.Create(ctx, org); err != nil {
		return nil, fmt.Errorf("creating organization: %w", err)
	}

	slog.InfoContext(ctx, "organization created", "organization_id", org.ID, "name", org.Name)
	return org, nil
}

func (s *organizationService) Get(ctx context.Context, scope store.Scope, orgID int64) (*model.Organization, error) {
	return s.orgStore.GetByID(ctx, orgID, scope)
}

func (s *organizationService) List(ctx context.Context, scope store.Scope) ([]model.Organization, error) {
	orgs, err := s.orgStore.List(ctx, scope)
	if err != nil {
		return nil, fmt.Errorf("listing organizations: %w", err)
	}
	return orgs, nil
}

func (s *organizationService) GetOrCreateDefault(ctx context.Context, scope store.Scope) (*model.Organization, error) {
	org, err := s.orgStore.GetDefault(ctx, scope)
	if err == nil {
		return org, nil
	}
	if !errors.Is(err, store.ErrNotFound) {
		return nil, fmt.Errorf("looking up default organization: %w", err)
	}

	phone := defaultOrgPhone
	address := defaultOrgAddress
	org = &model.Organization{
		ID:      id.New(),
		Name:    model.DefaultOrganizationName,
		Email:   defaultOrgEmail(scope),
		Phone:   &phone,
		Address: &address,
		UserID:  scope.UserID,
	}

	inserted, err := s.orgStore.CreateDefault(ctx, org)
	if err != nil {
		return nil, fmt.Errorf("creating default organization: %w", err)
	}
	if inserted {
		slog.InfoContext(ctx, "default organization provisioned", "organization_id", org.ID)
		return org, nil
	}

	// Lost the insert race; the winner's row must be visible now.
	org, err = s.orgStore.GetDefault(ctx, scope)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, errors.New("failed to resolve default organization")
		}
		return nil, fmt.Errorf("re-reading default organization: %w", err)
	}
	return org, nil
}

// defaultOrgEmail derives a per-identity unique address so the email
// constraint guards the one-default-organization-per-user invariant.
func defaultOrgEmail(scope store.Scope) string {
	if scope.Scoped() {
		return fmt.Sprintf("contact+%s@defaultorg.local", *scope.UserID)
	}
	return "contact@defaultorg.local"
}
