package entity

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Comment is an append-only note on a lead. The author is a sales agent
// reference; AuthorName is populated on reads.
type Comment struct {
	ID          string    `json:"id"`
	LeadID      string    `json:"lead"`
	AuthorID    string    `json:"author"`
	AuthorName  string    `json:"authorName,omitempty"`
	CommentText string    `json:"commentText"`
	CreatedAt   time.Time `json:"createdAt"`
}

func NewComment(leadID, authorID, commentText string) (*Comment, error) {
	comment := &Comment{
		ID:          uuid.New().String(),
		LeadID:      leadID,
		AuthorID:    authorID,
		CommentText: strings.TrimSpace(commentText),
		CreatedAt:   time.Now(),
	}

	if err := comment.Validate(); err != nil {
		return nil, err
	}

	return comment, nil
}

func (c *Comment) Validate() error {
	if c.LeadID == "" {
		return errors.New("lead is required")
	}
	if c.AuthorID == "" {
		return errors.New("author is required")
	}
	if c.CommentText == "" {
		return errors.New("commentText is required")
	}
	return nil
}
