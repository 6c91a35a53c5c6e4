package usecase

import (
	"context"
	"time"

	"github.com/anvaya-crm/leaddesk/internal/entity"
)

type AgentRepository interface {
	Create(ctx context.Context, agent *entity.SalesAgent) error
	FindByID(ctx context.Context, id string) (*entity.SalesAgent, error)
	List(ctx context.Context) ([]entity.SalesAgent, error)
}

// LeadFilter narrows List by exact match; zero-value fields are ignored.
type LeadFilter struct {
	Status       string
	SalesAgentID string
	Priority     string
	Source       string
}

type LeadRepository interface {
	Create(ctx context.Context, lead *entity.Lead) error
	FindByID(ctx context.Context, id string) (*entity.Lead, error)
	List(ctx context.Context, filter LeadFilter) ([]entity.Lead, error)
	Update(ctx context.Context, lead *entity.Lead) error
	Delete(ctx context.Context, id string) error
}

type CommentRepository interface {
	Create(ctx context.Context, comment *entity.Comment) error
	ListByLead(ctx context.Context, leadID string) ([]entity.Comment, error)
}

type TagRepository interface {
	Create(ctx context.Context, tag *entity.Tag) error
	List(ctx context.Context) ([]entity.Tag, error)
}

// LeadClosedEvent is published whenever a lead first transitions into Closed.
type LeadClosedEvent struct {
	LeadID     string    `json:"lead_id"`
	LeadName   string    `json:"lead_name"`
	AgentID    string    `json:"agent_id"`
	AgentName  string    `json:"agent_name"`
	AgentEmail string    `json:"agent_email"`
	ClosedAt   time.Time `json:"closed_at"`
}

// EventProducer publishing is best-effort: a broker fault must never fail the
// write that triggered it.
type EventProducer interface {
	PublishLeadClosed(ctx context.Context, event LeadClosedEvent) error
}
