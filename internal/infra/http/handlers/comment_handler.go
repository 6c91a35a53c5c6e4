package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/anvaya-crm/leaddesk/internal/entity"
	"github.com/anvaya-crm/leaddesk/internal/usecase"
)

type CommentHandler struct {
	Comments usecase.CommentRepository
	Leads    usecase.LeadRepository
	Agents   usecase.AgentRepository
}

func NewCommentHandler(comments usecase.CommentRepository, leads usecase.LeadRepository, agents usecase.AgentRepository) *CommentHandler {
	return &CommentHandler{
		Comments: comments,
		Leads:    leads,
		Agents:   agents,
	}
}

// HandleCreate attaches a comment to a lead. The author is a sales-agent
// reference; when the body omits it, the lead's assigned agent is used.
func (h *CommentHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	leadID := chi.URLParam(r, "id")

	var input usecase.CreateCommentInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, usecase.ValidationErrors{{Field: "body", Message: "invalid JSON"}})
		return
	}

	if errs := usecase.ValidateCreateCommentInput(input); len(errs) > 0 {
		writeError(w, usecase.ValidationErrors(errs))
		return
	}

	lead, err := h.Leads.FindByID(r.Context(), leadID)
	if err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			writeError(w, &usecase.NotFoundError{Entity: "lead", ID: leadID})
			return
		}
		writeError(w, err)
		return
	}

	authorID := input.Author
	if authorID == "" {
		authorID = lead.SalesAgentID
	}

	author, err := h.Agents.FindByID(r.Context(), authorID)
	if err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			writeError(w, &usecase.NotFoundError{Entity: "sales agent", ID: authorID})
			return
		}
		writeError(w, err)
		return
	}

	comment, err := entity.NewComment(lead.ID, author.ID, input.CommentText)
	if err != nil {
		writeError(w, usecase.ValidationErrors{{Field: "comment", Message: err.Error()}})
		return
	}

	if err := h.Comments.Create(r.Context(), comment); err != nil {
		writeError(w, err)
		return
	}

	comment.AuthorName = author.Name
	writeJSON(w, http.StatusCreated, comment)
}

func (h *CommentHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	leadID := chi.URLParam(r, "id")

	comments, err := h.Comments.ListByLead(r.Context(), leadID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, comments)
}
