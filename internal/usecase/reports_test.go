package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/anvaya-crm/leaddesk/internal/entity"
)

func leadWithStatus(status string) entity.Lead {
	return entity.Lead{Status: status}
}

func closedLead(agentName string, closedAt time.Time) entity.Lead {
	return entity.Lead{
		Status:         entity.StatusClosed,
		SalesAgentName: agentName,
		ClosedAt:       &closedAt,
	}
}

func TestPipelinePartitionsClosedVsOpen(t *testing.T) {
	leads := []entity.Lead{
		leadWithStatus(entity.StatusNew),
		leadWithStatus(entity.StatusNew),
		leadWithStatus(entity.StatusClosed),
	}

	report := pipelineOf(leads)

	assert.Equal(t, 1, report.TotalCloseLeads)
	assert.Equal(t, 2, report.TotalLeadsInPipeline)
}

func TestPipelineEmptyCollection(t *testing.T) {
	report := pipelineOf(nil)

	assert.Equal(t, 0, report.TotalCloseLeads)
	assert.Equal(t, 0, report.TotalLeadsInPipeline)
}

func TestStatusDistributionCountsPresentStatusesOnly(t *testing.T) {
	leads := []entity.Lead{
		leadWithStatus(entity.StatusNew),
		leadWithStatus(entity.StatusNew),
		leadWithStatus(entity.StatusClosed),
	}

	dist := statusDistributionOf(leads)

	assert.ElementsMatch(t, dist, []StatusCount{
		{Label: entity.StatusNew, Value: 2},
		{Label: entity.StatusClosed, Value: 1},
	})
}

func TestStatusDistributionEmptyCollection(t *testing.T) {
	assert.Empty(t, statusDistributionOf(nil))
}

func TestLastWeekWindowBoundaries(t *testing.T) {
	now := time.Date(2024, 6, 10, 12, 0, 0, 0, time.UTC)
	from := now.Add(-lastWeekWindow)

	leads := []entity.Lead{
		closedLead("Asha", now.Add(-2*24*time.Hour)),  // inside
		closedLead("Asha", now.Add(-10*24*time.Hour)), // too old
		closedLead("Ravi", from),                      // boundary: inclusive
		closedLead("Ravi", now),                       // boundary: inclusive
	}

	counts := closedByAgentBetween(leads, from, now)

	assert.ElementsMatch(t, counts, []AgentClosedCount{
		{SalesAgent: "Asha", ClosedLeads: 1},
		{SalesAgent: "Ravi", ClosedLeads: 2},
	})
}

func TestLastWeekExcludesLeadsWithoutClosedAt(t *testing.T) {
	now := time.Date(2024, 6, 10, 12, 0, 0, 0, time.UTC)

	// Closed status but no closedAt: never counted, updatedAt is not a
	// substitute.
	missing := entity.Lead{
		Status:         entity.StatusClosed,
		SalesAgentName: "Asha",
		UpdatedAt:      now.Add(-time.Hour),
	}

	counts := closedByAgentBetween([]entity.Lead{missing}, now.Add(-lastWeekWindow), now)

	assert.Empty(t, counts)
}

func TestLastWeekExcludesUnresolvableAgents(t *testing.T) {
	now := time.Date(2024, 6, 10, 12, 0, 0, 0, time.UTC)

	leads := []entity.Lead{
		closedLead("", now.Add(-time.Hour)), // agent no longer resolves
		closedLead("Asha", now.Add(-2*24*time.Hour)),
	}

	counts := closedByAgentBetween(leads, now.Add(-lastWeekWindow), now)

	require.Len(t, counts, 1)
	assert.Equal(t, AgentClosedCount{SalesAgent: "Asha", ClosedLeads: 1}, counts[0])
}

func TestReportsSurfaceStoreFaults(t *testing.T) {
	leads := new(MockLeadRepository)
	leads.On("List", mock.Anything, mock.Anything).Return(nil, errors.New("connection refused"))

	uc := NewReportUseCase(leads)

	_, err := uc.Pipeline(context.Background())
	assert.True(t, IsPersistence(err))

	_, err = uc.LastWeek(context.Background())
	assert.True(t, IsPersistence(err))

	_, err = uc.StatusDistribution(context.Background())
	assert.True(t, IsPersistence(err))
}

func TestLastWeekQueriesClosedLeadsOnly(t *testing.T) {
	leads := new(MockLeadRepository)
	leads.On("List", mock.Anything, LeadFilter{Status: entity.StatusClosed}).
		Return([]entity.Lead{closedLead("Asha", time.Now().Add(-2*24*time.Hour))}, nil)

	uc := NewReportUseCase(leads)

	counts, err := uc.LastWeek(context.Background())

	require.NoError(t, err)
	require.Len(t, counts, 1)
	assert.Equal(t, "Asha", counts[0].SalesAgent)
	assert.Equal(t, 1, counts[0].ClosedLeads)
	leads.AssertExpectations(t)
}
