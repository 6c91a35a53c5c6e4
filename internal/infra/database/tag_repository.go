package database

import (
	"context"
	"database/sql"
	"errors"

	"github.com/lib/pq"

	"github.com/anvaya-crm/leaddesk/internal/entity"
)

type TagRepository struct {
	DB *sql.DB
}

func NewTagRepository(db *sql.DB) *TagRepository {
	return &TagRepository{DB: db}
}

func (r *TagRepository) Create(ctx context.Context, tag *entity.Tag) error {
	query := `INSERT INTO tags (id, name, created_at) VALUES ($1, $2, $3)`

	_, err := r.DB.ExecContext(ctx, query, tag.ID, tag.Name, tag.CreatedAt)
	if err != nil {
		var pgErr *pq.Error
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return entity.ErrTagAlreadyExists
		}
		return err
	}

	return nil
}

func (r *TagRepository) List(ctx context.Context) ([]entity.Tag, error) {
	query := `SELECT id, name, created_at FROM tags ORDER BY name`

	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	tags := make([]entity.Tag, 0)
	for rows.Next() {
		var tag entity.Tag
		if err := rows.Scan(&tag.ID, &tag.Name, &tag.CreatedAt); err != nil {
			return nil, err
		}
		tags = append(tags, tag)
	}

	return tags, rows.Err()
}
