package store

import (
	"context"
	"errors"
	"testing"

	"lightbnb/internal/database"
	"lightbnb/internal/model"
	"lightbnb/internal/query"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/require"
)

func propertyValues(id, cost int, city string) []any {
	return []any{id, 1, "title", "description", "thumb", "cover", cost, 1, 1, 2,
		"Canada", "Main St", city, "BC", "V5K0A1", true}
}

func ptr[T any](v T) *T { return &v }

func TestSearchProperties(t *testing.T) {
	st := query.BuildPropertySearch(query.PropertySearch{City: "vancouver"}, 5)

	t.Run("rows scanned", func(t *testing.T) {
		rows := &fakeRows{data: [][]any{
			append(propertyValues(1, 5000, "Vancouver"), ptr(4.5)),
			append(propertyValues(2, 9000, "North Vancouver"), (*float64)(nil)),
		}}
		db := &database.FakeDB{
			QueryFn: func(_ context.Context, sql string, args ...any) (pgx.Rows, error) {
				require.Equal(t, st.SQL, sql)
				require.Equal(t, st.Args, args)
				return rows, nil
			},
		}
		list, err := SearchProperties(context.Background(), db, st)
		require.NoError(t, err)
		require.Len(t, list, 2)
		require.Equal(t, 5000, list[0].CostPerNight)
		require.InDelta(t, 4.5, *list[0].AverageRating, 1e-9)
		require.Equal(t, "North Vancouver", list[1].City)
		require.Nil(t, list[1].AverageRating)
		require.True(t, rows.closed)
	})

	t.Run("empty result is not nil", func(t *testing.T) {
		db := &database.FakeDB{
			QueryFn: func(context.Context, string, ...any) (pgx.Rows, error) { return &fakeRows{}, nil },
		}
		list, err := SearchProperties(context.Background(), db, st)
		require.NoError(t, err)
		require.NotNil(t, list)
		require.Empty(t, list)
	})

	t.Run("query error", func(t *testing.T) {
		db := &database.FakeDB{
			QueryFn: func(context.Context, string, ...any) (pgx.Rows, error) { return nil, errors.New("syntax") },
		}
		_, err := SearchProperties(context.Background(), db, st)
		require.ErrorContains(t, err, "SearchProperties")
	})

	t.Run("scan error", func(t *testing.T) {
		rows := &fakeRows{data: [][]any{{}}, scanErr: errors.New("scan")}
		db := &database.FakeDB{
			QueryFn: func(context.Context, string, ...any) (pgx.Rows, error) { return rows, nil },
		}
		_, err := SearchProperties(context.Background(), db, st)
		require.Error(t, err)
		require.True(t, rows.closed)
	})

	t.Run("rows error", func(t *testing.T) {
		db := &database.FakeDB{
			QueryFn: func(context.Context, string, ...any) (pgx.Rows, error) {
				return &fakeRows{err: errors.New("broken pipe")}, nil
			},
		}
		_, err := SearchProperties(context.Background(), db, st)
		require.ErrorContains(t, err, "broken pipe")
	})
}

func TestAddProperty(t *testing.T) {
	t.Run("defaults bound", func(t *testing.T) {
		var gotSQL string
		var gotArgs []any
		db := &database.FakeDB{
			QueryRowFn: func(_ context.Context, sql string, args ...any) pgx.Row {
				gotSQL, gotArgs = sql, args
				return &fakeRow{values: propertyValues(11, 1000, "London")}
			},
		}
		p, err := AddProperty(context.Background(), db, model.PropertyDraft{OwnerID: 3})
		require.NoError(t, err)
		require.Equal(t, 11, p.ID)
		require.True(t, p.Active)

		def := model.DefaultPropertyDraft
		require.Equal(t, []any{
			3, "title", "description", def.ThumbnailPhotoURL, def.CoverPhotoURL,
			1000, 1, 1, 1, "Canada", "Homeview Court", "London", "Ontario", "N6C6C1",
		}, gotArgs)
		require.Contains(t, gotSQL, "$14, true)")
	})

	t.Run("supplied values bound", func(t *testing.T) {
		db := &database.FakeDB{
			QueryRowFn: func(_ context.Context, _ string, args ...any) pgx.Row {
				require.Equal(t, "Loft", args[1])
				require.Equal(t, 15000, args[5])
				require.Equal(t, "Toronto", args[11])
				return &fakeRow{values: propertyValues(12, 15000, "Toronto")}
			},
		}
		_, err := AddProperty(context.Background(), db, model.PropertyDraft{
			OwnerID: 5, Title: "Loft", CostPerNight: 15000, City: "Toronto",
		})
		require.NoError(t, err)
	})

	t.Run("insert error", func(t *testing.T) {
		db := &database.FakeDB{
			QueryRowFn: func(context.Context, string, ...any) pgx.Row {
				return &fakeRow{scanErr: errors.New("fk violation")}
			},
		}
		p, err := AddProperty(context.Background(), db, model.PropertyDraft{OwnerID: 999})
		require.ErrorContains(t, err, "AddProperty")
		require.Nil(t, p)
	})
}
