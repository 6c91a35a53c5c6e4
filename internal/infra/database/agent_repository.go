package database

import (
	"context"
	"database/sql"
	"errors"

	"github.com/lib/pq"

	"github.com/anvaya-crm/leaddesk/internal/entity"
)

type AgentRepository struct {
	DB *sql.DB
}

func NewAgentRepository(db *sql.DB) *AgentRepository {
	return &AgentRepository{DB: db}
}

func (r *AgentRepository) Create(ctx context.Context, agent *entity.SalesAgent) error {
	query := `
		INSERT INTO sales_agents (id, name, email, created_at)
		VALUES ($1, $2, $3, $4)
	`

	_, err := r.DB.ExecContext(ctx, query, agent.ID, agent.Name, agent.Email, agent.CreatedAt)
	if err != nil {
		var pgErr *pq.Error
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return entity.ErrEmailAlreadyExists
		}
		return err
	}

	return nil
}

func (r *AgentRepository) FindByID(ctx context.Context, id string) (*entity.SalesAgent, error) {
	query := `SELECT id, name, email, created_at FROM sales_agents WHERE id = $1`

	var agent entity.SalesAgent
	err := r.DB.QueryRowContext(ctx, query, id).Scan(
		&agent.ID,
		&agent.Name,
		&agent.Email,
		&agent.CreatedAt,
	)
	if err != nil {
		return nil, mapLookupError(err)
	}

	return &agent, nil
}

func (r *AgentRepository) List(ctx context.Context) ([]entity.SalesAgent, error) {
	query := `SELECT id, name, email, created_at FROM sales_agents ORDER BY created_at`

	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	agents := make([]entity.SalesAgent, 0)
	for rows.Next() {
		var agent entity.SalesAgent
		if err := rows.Scan(&agent.ID, &agent.Name, &agent.Email, &agent.CreatedAt); err != nil {
			return nil, err
		}
		agents = append(agents, agent)
	}

	return agents, rows.Err()
}
