package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/anvaya-crm/leaddesk/internal/entity"
)

// LeadPatch enumerates the mutable lead fields. Absent fields keep their
// stored value. ClosedAt is decoded so a caller can send it, but the lifecycle
// rule owns that column: the value is never applied.
type LeadPatch struct {
	Name        *string    `json:"name"`
	Source      *string    `json:"source"`
	SalesAgent  *string    `json:"salesAgent"`
	Status      *string    `json:"status"`
	Tags        *[]string  `json:"tags"`
	TimeToClose *int       `json:"timeToClose"`
	Priority    *string    `json:"priority"`
	ClosedAt    *time.Time `json:"closedAt"`
}

// UpdateLeadUseCase applies the lifecycle rule on update:
//
//   - first transition into Closed stamps closedAt with the update time,
//   - a lead already Closed keeps its stored closedAt untouched no matter
//     what the patch carries,
//   - moving away from Closed does not clear closedAt (matches upstream
//     behavior; flagged as a product decision in DESIGN.md).
type UpdateLeadUseCase struct {
	Leads  LeadRepository
	Agents AgentRepository
	Events EventProducer

	now func() time.Time
}

func NewUpdateLeadUseCase(leads LeadRepository, agents AgentRepository, events EventProducer) *UpdateLeadUseCase {
	return &UpdateLeadUseCase{
		Leads:  leads,
		Agents: agents,
		Events: events,
		now:    time.Now,
	}
}

func (uc *UpdateLeadUseCase) Execute(ctx context.Context, id string, patch LeadPatch) (*entity.Lead, error) {
	if errs := ValidateLeadPatch(patch); len(errs) > 0 {
		return nil, ValidationErrors(errs)
	}

	lead, err := uc.Leads.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			return nil, &NotFoundError{Entity: "lead", ID: id}
		}
		return nil, &PersistenceError{Op: "find lead", Err: err}
	}

	agent, err := uc.resolveAgent(ctx, lead, patch)
	if err != nil {
		return nil, err
	}

	wasClosed := lead.Status == entity.StatusClosed

	if patch.Name != nil {
		lead.Name = strings.TrimSpace(*patch.Name)
	}
	if patch.Source != nil {
		lead.Source = *patch.Source
	}
	if patch.SalesAgent != nil {
		lead.SalesAgentID = agent.ID
		lead.SalesAgentName = agent.Name
	}
	if patch.Status != nil {
		lead.Status = *patch.Status
	}
	if patch.Tags != nil {
		lead.Tags = *patch.Tags
	}
	if patch.TimeToClose != nil {
		lead.TimeToClose = *patch.TimeToClose
	}
	if patch.Priority != nil {
		lead.Priority = *patch.Priority
	}

	transitioned := !wasClosed && lead.Status == entity.StatusClosed
	if transitioned {
		closedAt := uc.now()
		lead.ClosedAt = &closedAt
	}

	lead.UpdatedAt = uc.now()

	if err := uc.Leads.Update(ctx, lead); err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			return nil, &NotFoundError{Entity: "lead", ID: id}
		}
		return nil, &PersistenceError{Op: "update lead", Err: err}
	}

	if transitioned {
		notifyLeadClosed(ctx, uc.Events, lead, agent)
	}

	return lead, nil
}

// resolveAgent returns the lead's owning agent after the patch is applied:
// the newly referenced agent when the patch reassigns the lead, otherwise the
// current one.
func (uc *UpdateLeadUseCase) resolveAgent(ctx context.Context, lead *entity.Lead, patch LeadPatch) (*entity.SalesAgent, error) {
	agentID := lead.SalesAgentID
	if patch.SalesAgent != nil {
		agentID = *patch.SalesAgent
	}

	agent, err := uc.Agents.FindByID(ctx, agentID)
	if err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			return nil, &NotFoundError{Entity: "sales agent", ID: agentID}
		}
		return nil, &PersistenceError{Op: "find sales agent", Err: err}
	}
	return agent, nil
}
