package store

import (
	"context"
	"database/sql"
	"errors"

	"adlot.app/inventory/internal/model"
)

type organizationStore struct {
	db *sql.DB
}

func newOrganizationStore(db *sql.DB) OrganizationStore {
	return &organizationStore{db: db}
}

const organizationColumns = `id, name, email, phone, address, user_id, created_at, updated_at`

func (s *organizationStore) Create(ctx context.Context, org *model.Organization) error {
	// Email uniqueness is enforced by the table constraint; violations
	// surface as pgconn errors for the caller to classify.
	return s.db.QueryRowContext(ctx, `
		INSERT INTO organizations (id, name, email, phone, address, user_id)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING created_at, updated_at
	`, org.ID, org.Name, org.Email, org.Phone, org.Address, org.UserID).
		Scan(&org.CreatedAt, &org.UpdatedAt)
}

func (s *organizationStore) GetByID(ctx context.Context, id int64, scope Scope) (*model.Organization, error) {
	var (
		row *sql.Row
	)
	if scope.Scoped() {
		row = s.db.QueryRowContext(ctx, `
			SELECT `+organizationColumns+`
			FROM organizations
			WHERE id = $1 AND user_id = $2
		`, id, *scope.UserID)
	} else {
		row = s.db.QueryRowContext(ctx, `
			SELECT `+organizationColumns+`
			FROM organizations
			WHERE id = $1
		`, id)
	}

	org, err := scanOrganization(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return org, nil
}

func (s *organizationStore) GetDefault(ctx context.Context, scope Scope) (*model.Organization, error) {
	var row *sql.Row
	if scope.Scoped() {
		row = s.db.QueryRowContext(ctx, `
			SELECT `+organizationColumns+`
			FROM organizations
			WHERE name = $1 AND user_id = $2
		`, model.DefaultOrganizationName, *scope.UserID)
	} else {
		row = s.db.QueryRowContext(ctx, `
			SELECT `+organizationColumns+`
			FROM organizations
			WHERE name = $1 AND user_id IS NULL
		`, model.DefaultOrganizationName)
	}

	org, err := scanOrganization(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return org, nil
}

func (s *organizationStore) CreateDefault(ctx context.Context, org *model.Organization) (bool, error) {
	// A concurrent creator may win the unique email constraint; DO NOTHING
	// turns that into an empty result instead of an error.
	err := s.db.QueryRowContext(ctx, `
		INSERT INTO organizations (id, name, email, phone, address, user_id)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (email) DO NOTHING
		RETURNING created_at, updated_at
	`, org.ID, org.Name, org.Email, org.Phone, org.Address, org.UserID).
		Scan(&org.CreatedAt, &org.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func (s *organizationStore) List(ctx context.Context, scope Scope) ([]model.Organization, error) {
	var (
		rows *sql.Rows
		err  error
	)
	if scope.Scoped() {
		rows, err = s.db.QueryContext(ctx, `
			SELECT `+organizationColumns+`
			FROM organizations
			WHERE user_id = $1
			ORDER BY name ASC
		`, *scope.UserID)
	} else {
		rows, err = s.db.QueryContext(ctx, `
			SELECT `+organizationColumns+`
			FROM organizations
			ORDER BY name ASC
		`)
	}
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orgs := []model.Organization{}
	for rows.Next() {
		org, err := scanOrganization(rows)
		if err != nil {
			return nil, err
		}
		orgs = append(orgs, *org)
	}
	return orgs, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanOrganization(row rowScanner) (*model.Organization, error) {
	var org model.Organization
	err := row.Scan(
		&org.ID,
		&org.Name,
		&org.Email,
		&org.Phone,
		&org.Address,
		&org.UserID,
		&org.CreatedAt,
		&org.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &org, nil
}
