package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"lightbnb/internal/database"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/require"
)

func TestGetReservationsForGuest(t *testing.T) {
	start := time.Date(2018, 9, 11, 0, 0, 0, 0, time.UTC)

	t.Run("rows scanned", func(t *testing.T) {
		row := []any{3, start}
		row = append(row, propertyValues(8, 7000, "Calgary")...)
		row = append(row, ptr(3.0))
		db := &database.FakeDB{
			QueryFn: func(_ context.Context, sql string, args ...any) (pgx.Rows, error) {
				require.Contains(t, sql, "WHERE reservations.guest_id = $1")
				require.Contains(t, sql, "GROUP BY properties.id, reservations.id")
				require.Contains(t, sql, "ORDER BY reservations.start_date")
				require.Equal(t, []any{1, 10}, args)
				return &fakeRows{data: [][]any{row}}, nil
			},
		}
		list, err := GetReservationsForGuest(context.Background(), db, 1, 10)
		require.NoError(t, err)
		require.Len(t, list, 1)
		require.Equal(t, 3, list[0].ReservationID)
		require.Equal(t, start, list[0].StartDate)
		require.Equal(t, 8, list[0].ID)
		require.Equal(t, "Calgary", list[0].City)
		require.InDelta(t, 3.0, *list[0].AverageRating, 1e-9)
	})

	t.Run("query error", func(t *testing.T) {
		db := &database.FakeDB{
			QueryFn: func(context.Context, string, ...any) (pgx.Rows, error) { return nil, errors.New("down") },
		}
		_, err := GetReservationsForGuest(context.Background(), db, 1, 10)
		require.ErrorContains(t, err, "GetReservationsForGuest")
	})

	t.Run("scan error", func(t *testing.T) {
		db := &database.FakeDB{
			QueryFn: func(context.Context, string, ...any) (pgx.Rows, error) {
				return &fakeRows{data: [][]any{{}}, scanErr: errors.New("scan")}, nil
			},
		}
		_, err := GetReservationsForGuest(context.Background(), db, 1, 10)
		require.Error(t, err)
	})
}
