package database

import (
	"database/sql"
	"errors"

	"github.com/lib/pq"

	"github.com/anvaya-crm/leaddesk/internal/entity"
)

// mapLookupError turns "no such row" conditions into entity.ErrNotFound.
// 22P02 covers a non-UUID id in the URL: Postgres rejects the literal, but to
// the caller that id simply does not exist.
func mapLookupError(err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return entity.ErrNotFound
	}
	var pgErr *pq.Error
	if errors.As(err, &pgErr) && pgErr.Code == "22P02" {
		return entity.ErrNotFound
	}
	return err
}
