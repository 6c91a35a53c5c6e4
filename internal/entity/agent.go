package entity

import (
	"errors"
	"net/mail"
	"strings"
	"time"

	"github.com/google/uuid"
)

// SalesAgent owns leads. Referenced by Lead and Comment via ID, never embedded.
type SalesAgent struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
}

// NewSalesAgent normalizes the email (trimmed, lower-cased) before validating.
func NewSalesAgent(name, email string) (*SalesAgent, error) {
	agent := &SalesAgent{
		ID:        uuid.New().String(),
		Name:      strings.TrimSpace(name),
		Email:     strings.ToLower(strings.TrimSpace(email)),
		CreatedAt: time.Now(),
	}

	if err := agent.Validate(); err != nil {
		return nil, err
	}

	return agent, nil
}

func (a *SalesAgent) Validate() error {
	if a.Name == "" {
		return errors.New("name is required")
	}
	if a.Email == "" {
		return errors.New("email is required")
	}
	if _, err := mail.ParseAddress(a.Email); err != nil {
		return errors.New("email is invalid")
	}
	return nil
}
