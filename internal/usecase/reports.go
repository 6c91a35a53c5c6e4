package usecase

import (
	"context"
	"time"

	"github.com/anvaya-crm/leaddesk/internal/entity"
)

const lastWeekWindow = 7 * 24 * time.Hour

type PipelineReport struct {
	TotalCloseLeads      int `json:"totalCloseLeads"`
	TotalLeadsInPipeline int `json:"totalLeadsInPipeline"`
}

type AgentClosedCount struct {
	SalesAgent  string `json:"salesAgent"`
	ClosedLeads int    `json:"closedLeads"`
}

type StatusCount struct {
	Label string `json:"label"`
	Value int    `json:"value"`
}

// ReportUseCase computes the three read-only aggregations over the lead
// collection. All of them tolerate an empty collection; only a store fault
// can make them fail.
type ReportUseCase struct {
	Leads LeadRepository

	now func() time.Time
}

func NewReportUseCase(leads LeadRepository) *ReportUseCase {
	return &ReportUseCase{Leads: leads, now: time.Now}
}

func (uc *ReportUseCase) Pipeline(ctx context.Context) (*PipelineReport, error) {
	leads, err := uc.Leads.List(ctx, LeadFilter{})
	if err != nil {
		return nil, &PersistenceError{Op: "pipeline report", Err: err}
	}
	report := pipelineOf(leads)
	return &report, nil
}

func (uc *ReportUseCase) LastWeek(ctx context.Context) ([]AgentClosedCount, error) {
	leads, err := uc.Leads.List(ctx, LeadFilter{Status: entity.StatusClosed})
	if err != nil {
		return nil, &PersistenceError{Op: "last-week report", Err: err}
	}
	now := uc.now()
	return closedByAgentBetween(leads, now.Add(-lastWeekWindow), now), nil
}

func (uc *ReportUseCase) StatusDistribution(ctx context.Context) ([]StatusCount, error) {
	leads, err := uc.Leads.List(ctx, LeadFilter{})
	if err != nil {
		return nil, &PersistenceError{Op: "status-distribution report", Err: err}
	}
	return statusDistributionOf(leads), nil
}

// pipelineOf partitions leads into closed vs. still in the pipeline.
func pipelineOf(leads []entity.Lead) PipelineReport {
	var report PipelineReport
	for _, lead := range leads {
		if lead.Status == entity.StatusClosed {
			report.TotalCloseLeads++
		} else {
			report.TotalLeadsInPipeline++
		}
	}
	return report
}

// closedByAgentBetween counts closed leads whose closedAt falls inside the
// inclusive [from, to] window, grouped by agent name in first-seen order.
// Leads without a closedAt are excluded — updatedAt is not a substitute — and
// so are leads whose agent no longer resolves.
func closedByAgentBetween(leads []entity.Lead, from, to time.Time) []AgentClosedCount {
	counts := make(map[string]int)
	order := make([]string, 0)

	for _, lead := range leads {
		if lead.Status != entity.StatusClosed || lead.ClosedAt == nil {
			continue
		}
		if lead.ClosedAt.Before(from) || lead.ClosedAt.After(to) {
			continue
		}
		if lead.SalesAgentName == "" {
			continue
		}
		if _, seen := counts[lead.SalesAgentName]; !seen {
			order = append(order, lead.SalesAgentName)
		}
		counts[lead.SalesAgentName]++
	}

	result := make([]AgentClosedCount, 0, len(order))
	for _, name := range order {
		result = append(result, AgentClosedCount{SalesAgent: name, ClosedLeads: counts[name]})
	}
	return result
}

// statusDistributionOf counts leads per status in first-seen order. Statuses
// with no leads are omitted, not reported as zero.
func statusDistributionOf(leads []entity.Lead) []StatusCount {
	counts := make(map[string]int)
	order := make([]string, 0)

	for _, lead := range leads {
		if _, seen := counts[lead.Status]; !seen {
			order = append(order, lead.Status)
		}
		counts[lead.Status]++
	}

	result := make([]StatusCount, 0, len(order))
	for _, status := range order {
		result = append(result, StatusCount{Label: status, Value: counts[status]})
	}
	return result
}
