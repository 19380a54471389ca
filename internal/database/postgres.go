package database

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

// pgxpoolNew is swapped out in tests.
var pgxpoolNew = pgxpool.New

// NewPgxPool opens the shared connection pool. Pool sizing and lifetimes are
// left to the pgxpool defaults or to parameters embedded in url.
func NewPgxPool(ctx context.Context, url string) (DB, error) {
	pool, err := pgxpoolNew(ctx, url)
	if err != nil {
		return nil, err
	}
	return pool, nil
}
