package usecase

import (
	"net/mail"
	"strings"

	"github.com/anvaya-crm/leaddesk/internal/entity"
)

type CreateAgentInput struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

func ValidateCreateAgentInput(input CreateAgentInput) []ValidationError {
	var errs []ValidationError

	if strings.TrimSpace(input.Name) == "" {
		errs = append(errs, ValidationError{"name", "is required"})
	}

	email := strings.TrimSpace(input.Email)
	if email == "" {
		errs = append(errs, ValidationError{"email", "is required"})
	} else if _, err := mail.ParseAddress(email); err != nil {
		errs = append(errs, ValidationError{"email", "is invalid"})
	}

	return errs
}

// ValidateCreateLeadInput mirrors the API contract: every body field is
// required on creation, including the tag set (an empty array is fine, an
// absent one is not).
func ValidateCreateLeadInput(input CreateLeadInput) []ValidationError {
	var errs []ValidationError

	if strings.TrimSpace(input.Name) == "" {
		errs = append(errs, ValidationError{"name", "is required"})
	}

	if input.Source == "" {
		errs = append(errs, ValidationError{"source", "is required"})
	} else if !entity.ValidSource(input.Source) {
		errs = append(errs, ValidationError{"source", "must be one of Website, Referral, Cold Call, Other"})
	}

	if strings.TrimSpace(input.SalesAgent) == "" {
		errs = append(errs, ValidationError{"salesAgent", "is required"})
	}

	if input.Status == "" {
		errs = append(errs, ValidationError{"status", "is required"})
	} else if !entity.ValidStatus(input.Status) {
		errs = append(errs, ValidationError{"status", "must be one of New, Contacted, Qualified, Proposal Sent, Closed"})
	}

	if input.Tags == nil {
		errs = append(errs, ValidationError{"tags", "is required"})
	}

	if input.TimeToClose < 1 {
		errs = append(errs, ValidationError{"timeToClose", "must be at least 1"})
	}

	if input.Priority == "" {
		errs = append(errs, ValidationError{"priority", "is required"})
	} else if !entity.ValidPriority(input.Priority) {
		errs = append(errs, ValidationError{"priority", "must be one of High, Medium, Low"})
	}

	return errs
}

// ValidateLeadPatch checks only the fields the patch carries.
func ValidateLeadPatch(patch LeadPatch) []ValidationError {
	var errs []ValidationError

	if patch.Name != nil && strings.TrimSpace(*patch.Name) == "" {
		errs = append(errs, ValidationError{"name", "must not be empty"})
	}
	if patch.Source != nil && !entity.ValidSource(*patch.Source) {
		errs = append(errs, ValidationError{"source", "must be one of Website, Referral, Cold Call, Other"})
	}
	if patch.SalesAgent != nil && strings.TrimSpace(*patch.SalesAgent) == "" {
		errs = append(errs, ValidationError{"salesAgent", "must not be empty"})
	}
	if patch.Status != nil && !entity.ValidStatus(*patch.Status) {
		errs = append(errs, ValidationError{"status", "must be one of New, Contacted, Qualified, Proposal Sent, Closed"})
	}
	if patch.TimeToClose != nil && *patch.TimeToClose < 1 {
		errs = append(errs, ValidationError{"timeToClose", "must be at least 1"})
	}
	if patch.Priority != nil && !entity.ValidPriority(*patch.Priority) {
		errs = append(errs, ValidationError{"priority", "must be one of High, Medium, Low"})
	}

	return errs
}

type CreateCommentInput struct {
	CommentText string `json:"commentText"`
	Author      string `json:"author"`
}

func ValidateCreateCommentInput(input CreateCommentInput) []ValidationError {
	var errs []ValidationError

	if strings.TrimSpace(input.CommentText) == "" {
		errs = append(errs, ValidationError{"commentText", "is required"})
	}

	return errs
}
