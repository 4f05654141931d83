package service

import (
	"adlot.app/inventory/core/config"
	"adlot.app/inventory/internal/store"
)

type Services struct {
	stores  *store.Stores
	authCfg config.AuthConfig
}

func NewServices(stores *store.Stores, authCfg config.AuthConfig) *Services {
	return &Services{
		stores:  stores,
		authCfg: authCfg,
	}
}

func (s *Services) Organizations() OrganizationService {
	return NewOrganizationService(s.stores.Organizations())
}

func (s *Services) Listings() ListingService {
	return NewListingService(s.stores.Listings(), s.Organizations())
}

func (s *Services) TokenVerifier() TokenVerifier {
	return NewJWTVerifier(s.authCfg)
}
