package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/anvaya-crm/leaddesk/internal/entity"
	"github.com/anvaya-crm/leaddesk/internal/usecase"
)

type AgentHandler struct {
	Agents usecase.AgentRepository
}

func NewAgentHandler(agents usecase.AgentRepository) *AgentHandler {
	return &AgentHandler{Agents: agents}
}

func (h *AgentHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var input usecase.CreateAgentInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, usecase.ValidationErrors{{Field: "body", Message: "invalid JSON"}})
		return
	}

	if errs := usecase.ValidateCreateAgentInput(input); len(errs) > 0 {
		writeError(w, usecase.ValidationErrors(errs))
		return
	}

	agent, err := entity.NewSalesAgent(input.Name, input.Email)
	if err != nil {
		writeError(w, usecase.ValidationErrors{{Field: "agent", Message: err.Error()}})
		return
	}

	if err := h.Agents.Create(r.Context(), agent); err != nil {
		if errors.Is(err, entity.ErrEmailAlreadyExists) {
			writeError(w, usecase.ValidationErrors{{Field: "email", Message: "already exists"}})
			return
		}
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]interface{}{
		"message": "Agent added successfully",
		"agent":   agent,
	})
}

func (h *AgentHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	agents, err := h.Agents.List(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, agents)
}
