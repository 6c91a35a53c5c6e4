package database

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/lib/pq"

	"github.com/anvaya-crm/leaddesk/internal/entity"
	"github.com/anvaya-crm/leaddesk/internal/usecase"
)

type LeadRepository struct {
	DB *sql.DB
}

func NewLeadRepository(db *sql.DB) *LeadRepository {
	return &LeadRepository{DB: db}
}

func (r *LeadRepository) Create(ctx context.Context, lead *entity.Lead) error {
	query := `
		INSERT INTO leads (id, name, source, sales_agent_id, status, tags,
			time_to_close, priority, closed_at, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`

	_, err := r.DB.ExecContext(ctx, query,
		lead.ID,
		lead.Name,
		lead.Source,
		lead.SalesAgentID,
		lead.Status,
		pq.Array(lead.Tags),
		lead.TimeToClose,
		lead.Priority,
		lead.ClosedAt,
		lead.CreatedAt,
		lead.UpdatedAt,
	)
	return err
}

const leadColumns = `
	l.id, l.name, l.source, l.sales_agent_id, COALESCE(a.name, ''),
	l.status, l.tags, l.time_to_close, l.priority, l.closed_at,
	l.created_at, l.updated_at
`

func (r *LeadRepository) FindByID(ctx context.Context, id string) (*entity.Lead, error) {
	query := `
		SELECT ` + leadColumns + `
		FROM leads l
		LEFT JOIN sales_agents a ON a.id = l.sales_agent_id
		WHERE l.id = $1
	`

	lead, err := scanLead(r.DB.QueryRowContext(ctx, query, id))
	if err != nil {
		return nil, mapLookupError(err)
	}
	return lead, nil
}

func (r *LeadRepository) List(ctx context.Context, filter usecase.LeadFilter) ([]entity.Lead, error) {
	query := `
		SELECT ` + leadColumns + `
		FROM leads l
		LEFT JOIN sales_agents a ON a.id = l.sales_agent_id
	`

	var (
		conditions []string
		args       []interface{}
	)
	add := func(column, value string) {
		args = append(args, value)
		conditions = append(conditions, fmt.Sprintf("%s = $%d", column, len(args)))
	}
	if filter.Status != "" {
		add("l.status", filter.Status)
	}
	if filter.SalesAgentID != "" {
		add("l.sales_agent_id::text", filter.SalesAgentID)
	}
	if filter.Priority != "" {
		add("l.priority", filter.Priority)
	}
	if filter.Source != "" {
		add("l.source", filter.Source)
	}
	for i, cond := range conditions {
		if i == 0 {
			query += " WHERE " + cond
		} else {
			query += " AND " + cond
		}
	}
	query += " ORDER BY l.created_at"

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	leads := make([]entity.Lead, 0)
	for rows.Next() {
		lead, err := scanLead(rows)
		if err != nil {
			return nil, err
		}
		leads = append(leads, *lead)
	}

	return leads, rows.Err()
}

func (r *LeadRepository) Update(ctx context.Context, lead *entity.Lead) error {
	query := `
		UPDATE leads
		SET name = $2, source = $3, sales_agent_id = $4, status = $5,
			tags = $6, time_to_close = $7, priority = $8, closed_at = $9,
			updated_at = $10
		WHERE id = $1
	`

	res, err := r.DB.ExecContext(ctx, query,
		lead.ID,
		lead.Name,
		lead.Source,
		lead.SalesAgentID,
		lead.Status,
		pq.Array(lead.Tags),
		lead.TimeToClose,
		lead.Priority,
		lead.ClosedAt,
		lead.UpdatedAt,
	)
	if err != nil {
		return mapLookupError(err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return entity.ErrNotFound
	}
	return nil
}

func (r *LeadRepository) Delete(ctx context.Context, id string) error {
	res, err := r.DB.ExecContext(ctx, `DELETE FROM leads WHERE id = $1`, id)
	if err != nil {
		return mapLookupError(err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return entity.ErrNotFound
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanLead(row rowScanner) (*entity.Lead, error) {
	var (
		lead     entity.Lead
		tags     pq.StringArray
		closedAt sql.NullTime
	)

	err := row.Scan(
		&lead.ID,
		&lead.Name,
		&lead.Source,
		&lead.SalesAgentID,
		&lead.SalesAgentName,
		&lead.Status,
		&tags,
		&lead.TimeToClose,
		&lead.Priority,
		&closedAt,
		&lead.CreatedAt,
		&lead.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	lead.Tags = []string(tags)
	if lead.Tags == nil {
		lead.Tags = []string{}
	}
	if closedAt.Valid {
		t := closedAt.Time
		lead.ClosedAt = &t
	}

	return &lead, nil
}
