package store

import "database/sql"

type Stores struct {
	db *sql.DB
}

func NewStores(db *sql.DB) *Stores {
	return &Stores{db: db}
}

func (s *Stores) Organizations() OrganizationStore {
	return newOrganizationStore(s.db)
}

func (s *Stores) Listings() ListingStore {
	return newListingStore(s.db)
}
