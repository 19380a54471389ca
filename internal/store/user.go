// Package store runs the SQL for each record type. Every function returns
// the underlying error wrapped with its own name.
package store

import (
	"context"
	"fmt"

	"lightbnb/internal/database"
	"lightbnb/internal/model"
)

const userColumns = `id, name, email, password`

func GetUserWithEmail(ctx context.Context, db database.DB, email string) (*model.User, error) {
	row := db.QueryRow(ctx,
		`SELECT `+userColumns+`
		 FROM users WHERE email = $1`,
		email,
	)
	u := &model.User{}
	if err := row.Scan(&u.ID, &u.Name, &u.Email, &u.Password); err != nil {
		return nil, fmt.Errorf("GetUserWithEmail: %w", err)
	}
	return u, nil
}

func GetUserWithID(ctx context.Context, db database.DB, userID int) (*model.User, error) {
	row := db.QueryRow(ctx,
		`SELECT `+userColumns+`
		 FROM users WHERE id = $1`,
		userID,
	)
	u := &model.User{}
	if err := row.Scan(&u.ID, &u.Name, &u.Email, &u.Password); err != nil {
		return nil, fmt.Errorf("GetUserWithID: %w", err)
	}
	return u, nil
}

// AddUser inserts u and returns the stored row. u is not modified.
func AddUser(ctx context.Context, db database.DB, u *model.User) (*model.User, error) {
	row := db.QueryRow(ctx,
		`INSERT INTO users (name, email, password)
		 VALUES ($1, $2, $3)
		 RETURNING `+userColumns,
		u.Name,
		u.Email,
		u.Password,
	)
	created := &model.User{}
	if err := row.Scan(&created.ID, &created.Name, &created.Email, &created.Password); err != nil {
		return nil, fmt.Errorf("AddUser: %w", err)
	}
	return created, nil
}
