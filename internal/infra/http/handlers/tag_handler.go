package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/anvaya-crm/leaddesk/internal/entity"
	"github.com/anvaya-crm/leaddesk/internal/usecase"
)

type TagHandler struct {
	Tags usecase.TagRepository
}

func NewTagHandler(tags usecase.TagRepository) *TagHandler {
	return &TagHandler{Tags: tags}
}

type createTagRequest struct {
	Name string `json:"name"`
}

func (h *TagHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req createTagRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, usecase.ValidationErrors{{Field: "body", Message: "invalid JSON"}})
		return
	}

	tag, err := entity.NewTag(req.Name)
	if err != nil {
		writeError(w, usecase.ValidationErrors{{Field: "name", Message: "is required"}})
		return
	}

	if err := h.Tags.Create(r.Context(), tag); err != nil {
		if errors.Is(err, entity.ErrTagAlreadyExists) {
			writeError(w, usecase.ValidationErrors{{Field: "name", Message: "already exists"}})
			return
		}
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, tag)
}

func (h *TagHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	tags, err := h.Tags.List(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, tags)
}
