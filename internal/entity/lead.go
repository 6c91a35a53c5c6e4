package entity

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// Lead sources.
const (
	SourceWebsite  = "Website"
	SourceReferral = "Referral"
	SourceColdCall = "Cold Call"
	SourceOther    = "Other"
)

// Lead pipeline statuses. Closed is terminal for reporting purposes, but the
// schema does not forbid moving a lead back out of it.
const (
	StatusNew          = "New"
	StatusContacted    = "Contacted"
	StatusQualified    = "Qualified"
	StatusProposalSent = "Proposal Sent"
	StatusClosed       = "Closed"
)

// Lead priorities.
const (
	PriorityHigh   = "High"
	PriorityMedium = "Medium"
	PriorityLow    = "Low"
)

func ValidSource(s string) bool {
	switch s {
	case SourceWebsite, SourceReferral, SourceColdCall, SourceOther:
		return true
	}
	return false
}

func ValidStatus(s string) bool {
	switch s {
	case StatusNew, StatusContacted, StatusQualified, StatusProposalSent, StatusClosed:
		return true
	}
	return false
}

func ValidPriority(p string) bool {
	switch p {
	case PriorityHigh, PriorityMedium, PriorityLow:
		return true
	}
	return false
}

// Lead is a prospective sale tracked through the status pipeline.
// SalesAgentName is populated on reads by joining the agent record; it is
// never persisted on the lead itself.
type Lead struct {
	ID             string     `json:"id"`
	Name           string     `json:"name"`
	Source         string     `json:"source"`
	SalesAgentID   string     `json:"salesAgent"`
	SalesAgentName string     `json:"salesAgentName,omitempty"`
	Status         string     `json:"status"`
	Tags           []string   `json:"tags"`
	TimeToClose    int        `json:"timeToClose"`
	Priority       string     `json:"priority"`
	ClosedAt       *time.Time `json:"closedAt,omitempty"`
	CreatedAt      time.Time  `json:"createdAt"`
	UpdatedAt      time.Time  `json:"updatedAt"`
}

// NewLead applies the schema defaults (status New, priority Medium, empty tag
// set) before validating. ClosedAt stamping is the lifecycle rule's job, not
// the constructor's.
func NewLead(name, source, salesAgentID, status string, tags []string, timeToClose int, priority string) (*Lead, error) {
	if status == "" {
		status = StatusNew
	}
	if priority == "" {
		priority = PriorityMedium
	}
	if tags == nil {
		tags = []string{}
	}

	now := time.Now()
	lead := &Lead{
		ID:           uuid.New().String(),
		Name:         name,
		Source:       source,
		SalesAgentID: salesAgentID,
		Status:       status,
		Tags:         tags,
		TimeToClose:  timeToClose,
		Priority:     priority,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := lead.Validate(); err != nil {
		return nil, err
	}

	return lead, nil
}

func (l *Lead) Validate() error {
	if l.Name == "" {
		return errors.New("name is required")
	}
	if !ValidSource(l.Source) {
		return errors.New("source is invalid")
	}
	if l.SalesAgentID == "" {
		return errors.New("salesAgent is required")
	}
	if !ValidStatus(l.Status) {
		return errors.New("status is invalid")
	}
	if l.TimeToClose < 1 {
		return errors.New("timeToClose must be at least 1")
	}
	if !ValidPriority(l.Priority) {
		return errors.New("priority is invalid")
	}
	return nil
}
