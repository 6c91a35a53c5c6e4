package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/anvaya-crm/leaddesk/internal/entity"
	"github.com/anvaya-crm/leaddesk/internal/usecase"
)

type LeadHandler struct {
	CreateLead *usecase.CreateLeadUseCase
	UpdateLead *usecase.UpdateLeadUseCase
	Leads      usecase.LeadRepository
}

func NewLeadHandler(createLead *usecase.CreateLeadUseCase, updateLead *usecase.UpdateLeadUseCase, leads usecase.LeadRepository) *LeadHandler {
	return &LeadHandler{
		CreateLead: createLead,
		UpdateLead: updateLead,
		Leads:      leads,
	}
}

func (h *LeadHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var input usecase.CreateLeadInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, usecase.ValidationErrors{{Field: "body", Message: "invalid JSON"}})
		return
	}

	lead, err := h.CreateLead.Execute(r.Context(), input)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, lead)
}

func (h *LeadHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := usecase.LeadFilter{
		Status:       q.Get("status"),
		SalesAgentID: q.Get("salesAgent"),
		Priority:     q.Get("priority"),
		Source:       q.Get("source"),
	}

	leads, err := h.Leads.List(r.Context(), filter)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, leads)
}

func (h *LeadHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var patch usecase.LeadPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		writeError(w, usecase.ValidationErrors{{Field: "body", Message: "invalid JSON"}})
		return
	}

	lead, err := h.UpdateLead.Execute(r.Context(), id, patch)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, lead)
}

func (h *LeadHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.Leads.Delete(r.Context(), id); err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			writeError(w, &usecase.NotFoundError{Entity: "lead", ID: id})
			return
		}
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": "Lead deleted successfully."})
}
