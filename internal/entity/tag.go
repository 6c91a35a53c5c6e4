package entity

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Tag is a shared label leads can carry in their tag set. Names are unique.
type Tag struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
}

func NewTag(name string) (*Tag, error) {
	tag := &Tag{
		ID:        uuid.New().String(),
		Name:      strings.TrimSpace(name),
		CreatedAt: time.Now(),
	}

	if tag.Name == "" {
		return nil, errors.New("name is required")
	}

	return tag, nil
}
