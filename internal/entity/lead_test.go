package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLeadAppliesDefaults(t *testing.T) {
	lead, err := NewLead("Acme Corp", SourceWebsite, "agent-1", "", nil, 14, "")

	require.NoError(t, err)
	assert.Equal(t, StatusNew, lead.Status)
	assert.Equal(t, PriorityMedium, lead.Priority)
	assert.NotNil(t, lead.Tags)
	assert.Empty(t, lead.Tags)
	assert.NotEmpty(t, lead.ID)
	assert.Nil(t, lead.ClosedAt)
}

func TestNewLeadRejectsBadValues(t *testing.T) {
	cases := []struct {
		name string
		fn   func() (*Lead, error)
	}{
		{"empty name", func() (*Lead, error) {
			return NewLead("", SourceWebsite, "agent-1", StatusNew, nil, 14, PriorityLow)
		}},
		{"bad source", func() (*Lead, error) {
			return NewLead("Acme", "Billboard", "agent-1", StatusNew, nil, 14, PriorityLow)
		}},
		{"missing agent", func() (*Lead, error) {
			return NewLead("Acme", SourceWebsite, "", StatusNew, nil, 14, PriorityLow)
		}},
		{"bad status", func() (*Lead, error) {
			return NewLead("Acme", SourceWebsite, "agent-1", "Won", nil, 14, PriorityLow)
		}},
		{"zero timeToClose", func() (*Lead, error) {
			return NewLead("Acme", SourceWebsite, "agent-1", StatusNew, nil, 0, PriorityLow)
		}},
		{"bad priority", func() (*Lead, error) {
			return NewLead("Acme", SourceWebsite, "agent-1", StatusNew, nil, 14, "Critical")
		}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			lead, err := tc.fn()
			assert.Nil(t, lead)
			assert.Error(t, err)
		})
	}
}

func TestNewSalesAgentNormalizesEmail(t *testing.T) {
	agent, err := NewSalesAgent("  Asha  ", "  Asha@Anvaya.APP ")

	require.NoError(t, err)
	assert.Equal(t, "Asha", agent.Name)
	assert.Equal(t, "asha@anvaya.app", agent.Email)
}

func TestNewSalesAgentRejectsBadEmail(t *testing.T) {
	_, err := NewSalesAgent("Asha", "not-an-email")
	assert.Error(t, err)

	_, err = NewSalesAgent("Asha", "")
	assert.Error(t, err)
}

func TestNewCommentTrimsText(t *testing.T) {
	comment, err := NewComment("lead-1", "agent-1", "  looks promising  ")

	require.NoError(t, err)
	assert.Equal(t, "looks promising", comment.CommentText)
}

func TestNewCommentRejectsBlankText(t *testing.T) {
	_, err := NewComment("lead-1", "agent-1", "   ")
	assert.Error(t, err)
}
