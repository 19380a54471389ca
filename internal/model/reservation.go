// File: internal/model/reservation.go
package model

import "time"

type Reservation struct {
	ID         int       `db:"id" json:"id"`
	GuestID    int       `db:"guest_id" json:"guest_id"`
	PropertyID int       `db:"property_id" json:"property_id"`
	StartDate  time.Time `db:"start_date" json:"start_date"`
}

// GuestReservation is one line of a guest's reservation history: the booked
// property with its average rating, plus the reservation id and start date.
type GuestReservation struct {
	ReservationID int       `db:"reservation_id" json:"reservation_id"`
	StartDate     time.Time `db:"start_date" json:"start_date"`
	PropertyListing
}
