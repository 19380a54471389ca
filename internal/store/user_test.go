package store

import (
	"context"
	"errors"
	"strings"
	"testing"

	"lightbnb/internal/database"
	"lightbnb/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/require"
)

func TestUserStore(t *testing.T) {
	alice := []any{7, "Alice", "alice@example.com", "$2a$10$hash"}

	t.Run("GetUserWithEmail success", func(t *testing.T) {
		var gotSQL string
		var gotArgs []any
		db := &database.FakeDB{
			QueryRowFn: func(_ context.Context, sql string, args ...any) pgx.Row {
				gotSQL, gotArgs = sql, args
				return &fakeRow{values: alice}
			},
		}
		u, err := GetUserWithEmail(context.Background(), db, "alice@example.com")
		require.NoError(t, err)
		require.Equal(t, 7, u.ID)
		require.Equal(t, "$2a$10$hash", u.Password)
		require.Contains(t, gotSQL, "WHERE email = $1")
		require.Equal(t, []any{"alice@example.com"}, gotArgs)
	})

	t.Run("GetUserWithEmail not found", func(t *testing.T) {
		db := &database.FakeDB{
			QueryRowFn: func(context.Context, string, ...any) pgx.Row {
				return &fakeRow{scanErr: pgx.ErrNoRows}
			},
		}
		u, err := GetUserWithEmail(context.Background(), db, "nobody@example.com")
		require.ErrorIs(t, err, pgx.ErrNoRows)
		require.Nil(t, u)
	})

	t.Run("GetUserWithID success", func(t *testing.T) {
		db := &database.FakeDB{
			QueryRowFn: func(_ context.Context, sql string, args ...any) pgx.Row {
				require.Contains(t, sql, "WHERE id = $1")
				require.Equal(t, []any{7}, args)
				return &fakeRow{values: alice}
			},
		}
		u, err := GetUserWithID(context.Background(), db, 7)
		require.NoError(t, err)
		require.Equal(t, "Alice", u.Name)
	})

	t.Run("GetUserWithID error", func(t *testing.T) {
		db := &database.FakeDB{
			QueryRowFn: func(context.Context, string, ...any) pgx.Row {
				return &fakeRow{scanErr: errors.New("conn lost")}
			},
		}
		_, err := GetUserWithID(context.Background(), db, 7)
		require.ErrorContains(t, err, "GetUserWithID")
	})

	t.Run("AddUser success", func(t *testing.T) {
		in := &model.User{Name: "Bob", Email: "bob@example.com", Password: "h"}
		db := &database.FakeDB{
			QueryRowFn: func(_ context.Context, sql string, args ...any) pgx.Row {
				require.True(t, strings.Contains(sql, "INSERT INTO users (name, email, password)"))
				require.Equal(t, []any{"Bob", "bob@example.com", "h"}, args)
				return &fakeRow{values: []any{42, "Bob", "bob@example.com", "h"}}
			},
		}
		created, err := AddUser(context.Background(), db, in)
		require.NoError(t, err)
		require.Equal(t, 42, created.ID)
		require.Zero(t, in.ID)
	})

	t.Run("AddUser duplicate email", func(t *testing.T) {
		db := &database.FakeDB{
			QueryRowFn: func(context.Context, string, ...any) pgx.Row {
				return &fakeRow{scanErr: errors.New("duplicate key")}
			},
		}
		_, err := AddUser(context.Background(), db, &model.User{})
		require.ErrorContains(t, err, "AddUser")
	})
}
