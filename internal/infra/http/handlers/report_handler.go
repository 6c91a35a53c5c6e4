package handlers

import (
	"net/http"

	"github.com/anvaya-crm/leaddesk/internal/usecase"
)

type ReportHandler struct {
	Reports *usecase.ReportUseCase
}

func NewReportHandler(reports *usecase.ReportUseCase) *ReportHandler {
	return &ReportHandler{Reports: reports}
}

func (h *ReportHandler) HandlePipeline(w http.ResponseWriter, r *http.Request) {
	report, err := h.Reports.Pipeline(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, report)
}

func (h *ReportHandler) HandleLastWeek(w http.ResponseWriter, r *http.Request) {
	report, err := h.Reports.LastWeek(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, report)
}

func (h *ReportHandler) HandleStatusDistribution(w http.ResponseWriter, r *http.Request) {
	report, err := h.Reports.StatusDistribution(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, report)
}
