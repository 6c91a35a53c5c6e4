package database

import (
	"context"
	"database/sql"

	"github.com/anvaya-crm/leaddesk/internal/entity"
)

type CommentRepository struct {
	DB *sql.DB
}

func NewCommentRepository(db *sql.DB) *CommentRepository {
	return &CommentRepository{DB: db}
}

func (r *CommentRepository) Create(ctx context.Context, comment *entity.Comment) error {
	query := `
		INSERT INTO comments (id, lead_id, author_id, comment_text, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`

	_, err := r.DB.ExecContext(ctx, query,
		comment.ID,
		comment.LeadID,
		comment.AuthorID,
		comment.CommentText,
		comment.CreatedAt,
	)
	return err
}

// ListByLead returns comments newest first with the author name joined in.
func (r *CommentRepository) ListByLead(ctx context.Context, leadID string) ([]entity.Comment, error) {
	query := `
		SELECT c.id, c.lead_id, c.author_id, COALESCE(a.name, ''), c.comment_text, c.created_at
		FROM comments c
		LEFT JOIN sales_agents a ON a.id = c.author_id
		WHERE c.lead_id = $1
		ORDER BY c.created_at DESC
	`

	rows, err := r.DB.QueryContext(ctx, query, leadID)
	if err != nil {
		return nil, mapLookupError(err)
	}
	defer rows.Close()

	comments := make([]entity.Comment, 0)
	for rows.Next() {
		var comment entity.Comment
		err := rows.Scan(
			&comment.ID,
			&comment.LeadID,
			&comment.AuthorID,
			&comment.AuthorName,
			&comment.CommentText,
			&comment.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		comments = append(comments, comment)
	}

	return comments, rows.Err()
}
