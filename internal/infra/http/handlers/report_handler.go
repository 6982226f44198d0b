package handlers

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/mvalerio/crm-backend/internal/usecase"
)

type ReportHandler struct {
	Reports *usecase.ReportQueries
	Log     *zap.SugaredLogger
}

func NewReportHandler(reports *usecase.ReportQueries, log *zap.SugaredLogger) *ReportHandler {
	return &ReportHandler{Reports: reports, Log: log}
}

func (h *ReportHandler) HandleLastWeek(w http.ResponseWriter, r *http.Request) {
	leads, err := h.Reports.ClosedLastWeek(r.Context())
	if err != nil {
		h.Log.Errorw("last week report", "error", err)
		respondError(w, http.StatusInternalServerError, internalErrorMessage)
		return
	}

	if len(leads) == 0 {
		respondError(w, http.StatusNotFound, "No leads closed in the last week.")
		return
	}

	respond(w, http.StatusOK, leads)
}

func (h *ReportHandler) HandlePipeline(w http.ResponseWriter, r *http.Request) {
	count, err := h.Reports.Pipeline(r.Context())
	if err != nil {
		h.Log.Errorw("pipeline report", "error", err)
		respondError(w, http.StatusInternalServerError, internalErrorMessage)
		return
	}

	respond(w, http.StatusOK, map[string]int64{"totalLeadsInPipeline": count})
}

func (h *ReportHandler) HandleClosedByAgent(w http.ResponseWriter, r *http.Request) {
	rows, err := h.Reports.ClosedByAgent(r.Context())
	if err != nil {
		h.Log.Errorw("closed by agent report", "error", err)
		respondError(w, http.StatusInternalServerError, internalErrorMessage)
		return
	}

	if len(rows) == 0 {
		respondError(w, http.StatusNotFound, "No closed leads found.")
		return
	}

	respond(w, http.StatusOK, rows)
}
