package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"adlot.app/inventory/internal/model"
)

type listingStore struct {
	db *sql.DB
}

func newListingStore(db *sql.DB) ListingStore {
	return &listingStore{db: db}
}

var listingColumnNames = []string{
	"id", "organization_id", "title", "description", "type", "size",
	"location", "address", "city", "state", "country", "postal_code",
	"latitude", "longitude", "daily_price", "weekly_price", "monthly_price",
	"dimensions_width", "dimensions_height", "illuminated", "digital",
	"traffic_count", "demographics", "visibility_score", "status",
	"image_url", "facing_direction", "available_from", "available_until",
	"created_at", "updated_at",
}

func listingColumns(alias string) string {
	if alias == "" {
		return strings.Join(listingColumnNames, ", ")
	}
	cols := make([]string, len(listingColumnNames))
	for i, c := range listingColumnNames {
		cols[i] = alias + "." + c
	}
	return strings.Join(cols, ", ")
}

func (s *listingStore) Create(ctx context.Context, l *model.Listing) error {
	return s.db.QueryRowContext(ctx, `
		INSERT INTO inventory_listings (
			id, organization_id, title, description, type, size,
			location, address, city, state, country, postal_code,
			latitude, longitude, daily_price, weekly_price, monthly_price,
			dimensions_width, dimensions_height, illuminated, digital,
			traffic_count, demographics, visibility_score, status,
			image_url, facing_direction, available_from, available_until
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10,
			$11, $12, $13, $14, $15, $16, $17, $18, $19, $20,
			$21, $22, $23, $24, $25, $26, $27, $28, $29
		)
		RETURNING created_at, updated_at
	`,
		l.ID, l.OrganizationID, l.Title, l.Description, l.Type, l.Size,
		l.Location, l.Address, l.City, l.State, l.Country, l.PostalCode,
		l.Latitude, l.Longitude, l.DailyPrice, l.WeeklyPrice, l.MonthlyPrice,
		l.DimensionsWidth, l.DimensionsHeight, l.Illuminated, l.Digital,
		l.TrafficCount, l.Demographics, l.VisibilityScore, l.Status,
		l.ImageURL, l.FacingDirection, l.AvailableFrom, l.AvailableUntil,
	).Scan(&l.CreatedAt, &l.UpdatedAt)
}

func (s *listingStore) GetByID(ctx context.Context, id int64, scope Scope) (*model.Listing, error) {
	var row *sql.Row
	if scope.Scoped() {
		row = s.db.QueryRowContext(ctx, `
			SELECT `+listingColumns("il")+`
			FROM inventory_listings il
			JOIN organizations o ON o.id = il.organization_id
			WHERE il.id = $1 AND o.user_id = $2
		`, id, *scope.UserID)
	} else {
		row = s.db.QueryRowContext(ctx, `
			SELECT `+listingColumns("")+`
			FROM inventory_listings
			WHERE id = $1
		`, id)
	}

	listing, err := scanListing(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return listing, nil
}

func (s *listingStore) List(ctx context.Context, filter ListingFilter) ([]model.Listing, int64, error) {
	where, args := filter.whereClause()

	from := `FROM inventory_listings il`
	if filter.Scope.Scoped() {
		from += ` JOIN organizations o ON o.id = il.organization_id`
	}

	var total int64
	countQuery := `SELECT COUNT(*) ` + from + where
	if err := s.db.QueryRowContext(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("counting listings: %w", err)
	}

	pageQuery := fmt.Sprintf(
		`SELECT %s %s%s ORDER BY il.created_at DESC LIMIT $%d OFFSET $%d`,
		listingColumns("il"), from, where, len(args)+1, len(args)+2,
	)
	args = append(args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, pageQuery, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("querying listings: %w", err)
	}
	defer rows.Close()

	listings := []model.Listing{}
	for rows.Next() {
		listing, err := scanListing(rows)
		if err != nil {
			return nil, 0, err
		}
		listings = append(listings, *listing)
	}
	return listings, total, rows.Err()
}

// whereClause builds the conjunctive filter shared by the count and page
// queries. Placeholders are numbered from $1.
func (f ListingFilter) whereClause() (string, []any) {
	var conds []string
	var args []any

	add := func(cond string, value any) {
		args = append(args, value)
		conds = append(conds, fmt.Sprintf(cond, len(args)))
	}

	if f.Scope.Scoped() {
		add("o.user_id = $%d", *f.Scope.UserID)
	}
	if f.OrganizationID != nil {
		add("il.organization_id = $%d", *f.OrganizationID)
	}
	if f.Type != nil {
		add("il.type = $%d", *f.Type)
	}
	if f.Status != nil {
		add("il.status = $%d", *f.Status)
	}
	if f.Location != nil {
		add("il.location ILIKE $%d", "%"+*f.Location+"%")
	}

	if len(conds) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}

func (s *listingStore) Update(ctx context.Context, id int64, update ListingUpdate, scope Scope) (*model.Listing, error) {
	b := &updateBuilder{}
	update.apply(b)
	if len(b.assignments) == 0 {
		return nil, errors.New("no fields to update")
	}

	set := strings.Join(b.assignments, ", ") + ", updated_at = now()"
	args := b.args

	var query string
	if scope.Scoped() {
		args = append(args, id, *scope.UserID)
		query = fmt.Sprintf(`
			UPDATE inventory_listings AS il
			SET %s
			FROM organizations o
			WHERE il.organization_id = o.id AND il.id = $%d AND o.user_id = $%d
			RETURNING %s
		`, set, len(args)-1, len(args), listingColumns("il"))
	} else {
		args = append(args, id)
		query = fmt.Sprintf(`
			UPDATE inventory_listings AS il
			SET %s
			WHERE il.id = $%d
			RETURNING %s
		`, set, len(args), listingColumns("il"))
	}

	listing, err := scanListing(s.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return listing, nil
}

func (s *listingStore) Delete(ctx context.Context, id int64, scope Scope) error {
	var (
		result sql.Result
		err    error
	)
	if scope.Scoped() {
		result, err = s.db.ExecContext(ctx, `
			DELETE FROM inventory_listings il
			USING organizations o
			WHERE il.organization_id = o.id AND il.id = $1 AND o.user_id = $2
		`, id, *scope.UserID)
	} else {
		result, err = s.db.ExecContext(ctx, `
			DELETE FROM inventory_listings
			WHERE id = $1
		`, id)
	}
	if err != nil {
		return err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

// updateBuilder collects "column = $n" assignments for the fields a partial
// update actually supplies.
type updateBuilder struct {
	assignments []string
	args        []any
}

func (b *updateBuilder) set(column string, value any) {
	b.args = append(b.args, value)
	b.assignments = append(b.assignments, fmt.Sprintf("%s = $%d", column, len(b.args)))
}

// apply maps each present field to its column. The mapping is explicit so a
// new column cannot be written without being named here.
func (u ListingUpdate) apply(b *updateBuilder) {
	if u.Title != nil {
		b.set("title", *u.Title)
	}
	if u.Description != nil {
		b.set("description", *u.Description)
	}
	if u.Type != nil {
		b.set("type", *u.Type)
	}
	if u.Size != nil {
		b.set("size", *u.Size)
	}
	if u.Location != nil {
		b.set("location", *u.Location)
	}
	if u.Address != nil {
		b.set("address", *u.Address)
	}
	if u.City != nil {
		b.set("city", *u.City)
	}
	if u.State != nil {
		b.set("state", *u.State)
	}
	if u.Country != nil {
		b.set("country", *u.Country)
	}
	if u.PostalCode != nil {
		b.set("postal_code", *u.PostalCode)
	}
	if u.Latitude != nil {
		b.set("latitude", *u.Latitude)
	}
	if u.Longitude != nil {
		b.set("longitude", *u.Longitude)
	}
	if u.DailyPrice != nil {
		b.set("daily_price", *u.DailyPrice)
	}
	if u.WeeklyPrice != nil {
		b.set("weekly_price", *u.WeeklyPrice)
	}
	if u.MonthlyPrice != nil {
		b.set("monthly_price", *u.MonthlyPrice)
	}
	if u.DimensionsWidth != nil {
		b.set("dimensions_width", *u.DimensionsWidth)
	}
	if u.DimensionsHeight != nil {
		b.set("dimensions_height", *u.DimensionsHeight)
	}
	if u.Illuminated != nil {
		b.set("illuminated", *u.Illuminated)
	}
	if u.Digital != nil {
		b.set("digital", *u.Digital)
	}
	if u.TrafficCount != nil {
		b.set("traffic_count", *u.TrafficCount)
	}
	if u.Demographics != nil {
		b.set("demographics", *u.Demographics)
	}
	if u.VisibilityScore != nil {
		b.set("visibility_score", *u.VisibilityScore)
	}
	if u.Status != nil {
		b.set("status", *u.Status)
	}
	if u.ImageURL != nil {
		b.set("image_url", *u.ImageURL)
	}
	if u.FacingDirection != nil {
		b.set("facing_direction", *u.FacingDirection)
	}
	if u.AvailableFrom != nil {
		b.set("available_from", *u.AvailableFrom)
	}
	if u.AvailableUntil != nil {
		b.set("available_until", *u.AvailableUntil)
	}
}

func scanListing(row rowScanner) (*model.Listing, error) {
	var (
		l      model.Listing
		facing sql.NullString
	)
	err := row.Scan(
		&l.ID,
		&l.OrganizationID,
		&l.Title,
		&l.Description,
		&l.Type,
		&l.Size,
		&l.Location,
		&l.Address,
		&l.City,
		&l.State,
		&l.Country,
		&l.PostalCode,
		&l.Latitude,
		&l.Longitude,
		&l.DailyPrice,
		&l.WeeklyPrice,
		&l.MonthlyPrice,
		&l.DimensionsWidth,
		&l.DimensionsHeight,
		&l.Illuminated,
		&l.Digital,
		&l.TrafficCount,
		&l.Demographics,
		&l.VisibilityScore,
		&l.Status,
		&l.ImageURL,
		&facing,
		&l.AvailableFrom,
		&l.AvailableUntil,
		&l.CreatedAt,
		&l.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if facing.Valid {
		direction := model.FacingDirection(facing.String)
		l.FacingDirection = &direction
	}
	return &l, nil
}
