package usecase

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/anvaya-crm/leaddesk/internal/entity"
	"github.com/anvaya-crm/leaddesk/internal/metrics"
)

type CreateLeadInput struct {
	Name        string   `json:"name"`
	Source      string   `json:"source"`
	SalesAgent  string   `json:"salesAgent"`
	Status      string   `json:"status"`
	Tags        []string `json:"tags"`
	TimeToClose int      `json:"timeToClose"`
	Priority    string   `json:"priority"`
}

// CreateLeadUseCase applies the lifecycle rule on creation: a lead born in
// status Closed gets closedAt stamped with the creation time.
type CreateLeadUseCase struct {
	Leads  LeadRepository
	Agents AgentRepository
	Events EventProducer

	now func() time.Time
}

func NewCreateLeadUseCase(leads LeadRepository, agents AgentRepository, events EventProducer) *CreateLeadUseCase {
	return &CreateLeadUseCase{
		Leads:  leads,
		Agents: agents,
		Events: events,
		now:    time.Now,
	}
}

func (uc *CreateLeadUseCase) Execute(ctx context.Context, input CreateLeadInput) (*entity.Lead, error) {
	if errs := ValidateCreateLeadInput(input); len(errs) > 0 {
		return nil, ValidationErrors(errs)
	}

	agent, err := uc.Agents.FindByID(ctx, input.SalesAgent)
	if err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			return nil, &NotFoundError{Entity: "sales agent", ID: input.SalesAgent}
		}
		return nil, &PersistenceError{Op: "find sales agent", Err: err}
	}

	lead, err := entity.NewLead(input.Name, input.Source, agent.ID, input.Status,
		input.Tags, input.TimeToClose, input.Priority)
	if err != nil {
		return nil, ValidationErrors{{Field: "lead", Message: err.Error()}}
	}

	if lead.Status == entity.StatusClosed {
		closedAt := uc.now()
		lead.ClosedAt = &closedAt
	}

	if err := uc.Leads.Create(ctx, lead); err != nil {
		return nil, &PersistenceError{Op: "create lead", Err: err}
	}

	lead.SalesAgentName = agent.Name
	metrics.RecordLeadCreated(lead.Source)

	if lead.ClosedAt != nil {
		notifyLeadClosed(ctx, uc.Events, lead, agent)
	}

	return lead, nil
}

// notifyLeadClosed publishes the closed event without ever failing the write
// that produced it.
func notifyLeadClosed(ctx context.Context, events EventProducer, lead *entity.Lead, agent *entity.SalesAgent) {
	metrics.RecordLeadClosed()

	if events == nil {
		return
	}

	event := LeadClosedEvent{
		LeadID:     lead.ID,
		LeadName:   lead.Name,
		AgentID:    agent.ID,
		AgentName:  agent.Name,
		AgentEmail: agent.Email,
		ClosedAt:   *lead.ClosedAt,
	}
	if err := events.PublishLeadClosed(ctx, event); err != nil {
		log.Printf("publish lead closed event for %s: %v", lead.ID, err)
	}
}
