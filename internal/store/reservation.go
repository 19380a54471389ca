package store

import (
	"context"
	"fmt"

	"lightbnb/internal/database"
	"lightbnb/internal/model"
	"lightbnb/internal/query"
)

// Properties without any review drop out of the inner join.
const guestReservationsSQL = `SELECT reservations.id, reservations.start_date, ` + query.PropertyColumns + `,
       avg(property_reviews.rating) AS average_rating
FROM reservations
JOIN properties ON reservations.property_id = properties.id
JOIN property_reviews ON properties.id = property_reviews.property_id
WHERE reservations.guest_id = $1
GROUP BY properties.id, reservations.id
ORDER BY reservations.start_date
LIMIT $2`

// GetReservationsForGuest returns up to limit reservations of guestID,
// earliest start date first.
func GetReservationsForGuest(ctx context.Context, db database.DB, guestID, limit int) ([]model.GuestReservation, error) {
	rows, err := db.Query(ctx, guestReservationsSQL, guestID, limit)
	if err != nil {
		return nil, fmt.Errorf("GetReservationsForGuest: %w", err)
	}
	defer rows.Close()

	list := []model.GuestReservation{}
	for rows.Next() {
		var r model.GuestReservation
		dest := []any{&r.ReservationID, &r.StartDate}
		dest = append(dest, propertyDest(&r.Property)...)
		dest = append(dest, &r.AverageRating)
		if err := rows.Scan(dest...); err != nil {
			return nil, fmt.Errorf("GetReservationsForGuest: %w", err)
		}
		list = append(list, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("GetReservationsForGuest: %w", err)
	}
	return list, nil
}
