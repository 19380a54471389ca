// Package repository is the data-access surface used by the HTTP layer.
//
// Every function resolves to a value or to nil. Database errors, including
// "no rows", are logged and swallowed, so callers treat nil as both "not
// found" and "failed".
package repository

import (
	"context"

	"lightbnb/internal/database"
	"lightbnb/internal/logging"
	"lightbnb/internal/metrics"
	"lightbnb/internal/model"
	"lightbnb/internal/query"
	"lightbnb/internal/store"
)

// DefaultReservationsLimit applies when GetAllReservations gets limit <= 0.
const DefaultReservationsLimit = 10

func report(op string, err error) {
	metrics.RepositoryErrors.WithLabelValues(op).Inc()
	logging.Error().Err(err).Str("op", op).Msg("query failed")
}

func GetUserWithEmail(ctx context.Context, db database.DB, email string) *model.User {
	u, err := store.GetUserWithEmail(ctx, db, email)
	if err != nil {
		report("GetUserWithEmail", err)
		return nil
	}
	return u
}

func GetUserWithID(ctx context.Context, db database.DB, id int) *model.User {
	u, err := store.GetUserWithID(ctx, db, id)
	if err != nil {
		report("GetUserWithID", err)
		return nil
	}
	return u
}

// AddUser expects u.Password to be hashed already.
func AddUser(ctx context.Context, db database.DB, u *model.User) *model.User {
	created, err := store.AddUser(ctx, db, u)
	if err != nil {
		report("AddUser", err)
		return nil
	}
	return created
}

// GetAllReservations lists the guest's reservations, earliest first.
func GetAllReservations(ctx context.Context, db database.DB, guestID, limit int) []model.GuestReservation {
	if limit <= 0 {
		limit = DefaultReservationsLimit
	}
	list, err := store.GetReservationsForGuest(ctx, db, guestID, limit)
	if err != nil {
		report("GetAllReservations", err)
		return nil
	}
	return list
}

// GetAllProperties searches properties, cheapest first. limit is required.
func GetAllProperties(ctx context.Context, db database.DB, opts query.PropertySearch, limit int) []model.PropertyListing {
	st := query.BuildPropertySearch(opts, limit)
	logging.Debug().Str("sql", st.SQL).Interface("args", st.Args).Msg("property search")

	list, err := store.SearchProperties(ctx, db, st)
	if err != nil {
		report("GetAllProperties", err)
		return nil
	}
	return list
}

// AddProperty inserts an active listing; unset draft fields get defaults.
func AddProperty(ctx context.Context, db database.DB, draft model.PropertyDraft) *model.Property {
	p, err := store.AddProperty(ctx, db, draft)
	if err != nil {
		report("AddProperty", err)
		return nil
	}
	return p
}
