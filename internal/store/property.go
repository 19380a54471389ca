package store

import (
	"context"
	"fmt"

	"lightbnb/internal/database"
	"lightbnb/internal/model"
	"lightbnb/internal/query"

	"github.com/jackc/pgx/v5"
)

// SearchProperties runs a statement built by query.BuildPropertySearch.
func SearchProperties(ctx context.Context, db database.DB, st query.Statement) ([]model.PropertyListing, error) {
	rows, err := db.Query(ctx, st.SQL, st.Args...)
	if err != nil {
		return nil, fmt.Errorf("SearchProperties: %w", err)
	}
	defer rows.Close()

	list := []model.PropertyListing{}
	for rows.Next() {
		var l model.PropertyListing
		dest := append(propertyDest(&l.Property), &l.AverageRating)
		if err := rows.Scan(dest...); err != nil {
			return nil, fmt.Errorf("SearchProperties: %w", err)
		}
		list = append(list, l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("SearchProperties: %w", err)
	}
	return list, nil
}

// AddProperty fills unset draft fields with model.DefaultPropertyDraft and
// inserts an active listing.
func AddProperty(ctx context.Context, db database.DB, draft model.PropertyDraft) (*model.Property, error) {
	d := draft.WithDefaults()
	row := db.QueryRow(ctx,
		`INSERT INTO properties (owner_id, title, description, thumbnail_photo_url, cover_photo_url,
		     cost_per_night, parking_spaces, number_of_bathrooms, number_of_bedrooms,
		     country, street, city, province, post_code, active)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, true)
		 RETURNING `+query.PropertyColumns,
		d.OwnerID,
		d.Title,
		d.Description,
		d.ThumbnailPhotoURL,
		d.CoverPhotoURL,
		d.CostPerNight,
		d.ParkingSpaces,
		d.NumberOfBathrooms,
		d.NumberOfBedrooms,
		d.Country,
		d.Street,
		d.City,
		d.Province,
		d.PostCode,
	)
	p := &model.Property{}
	if err := scanProperty(row, p); err != nil {
		return nil, fmt.Errorf("AddProperty: %w", err)
	}
	return p, nil
}

// propertyDest lists scan targets in query.PropertyColumns order.
func propertyDest(p *model.Property) []any {
	return []any{
		&p.ID,
		&p.OwnerID,
		&p.Title,
		&p.Description,
		&p.ThumbnailPhotoURL,
		&p.CoverPhotoURL,
		&p.CostPerNight,
		&p.ParkingSpaces,
		&p.NumberOfBathrooms,
		&p.NumberOfBedrooms,
		&p.Country,
		&p.Street,
		&p.City,
		&p.Province,
		&p.PostCode,
		&p.Active,
	}
}

func scanProperty(row pgx.Row, p *model.Property) error {
	return row.Scan(propertyDest(p)...)
}
