package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/mvalerio/crm-backend/internal/entity"
	"github.com/mvalerio/crm-backend/internal/infra/http/middleware"
	"github.com/mvalerio/crm-backend/internal/usecase"
)

type LeadHandler struct {
	CreateUC *usecase.CreateLeadUseCase
	UpdateUC *usecase.UpdateLeadUseCase
	Queries  *usecase.LeadQueries
	Leads    usecase.LeadRepository
	Log      *zap.SugaredLogger
}

func NewLeadHandler(createUC *usecase.CreateLeadUseCase, updateUC *usecase.UpdateLeadUseCase, queries *usecase.LeadQueries, leads usecase.LeadRepository, log *zap.SugaredLogger) *LeadHandler {
	return &LeadHandler{
		CreateUC: createUC,
		UpdateUC: updateUC,
		Queries:  queries,
		Leads:    leads,
		Log:      log,
	}
}

func (h *LeadHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var input usecase.LeadInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		h.Log.Errorw("create lead", "error", err)
		respondError(w, http.StatusBadRequest, "Invalid JSON body.")
		return
	}

	lead, err := h.CreateUC.Execute(r.Context(), input)
	if err != nil {
		h.Log.Errorw("create lead", "error", err)
		if usecase.IsClientError(err) {
			respondError(w, http.StatusBadRequest, err.Error())
			return
		}
		respondError(w, http.StatusInternalServerError, internalErrorMessage)
		return
	}

	middleware.RecordLeadCreated(lead.Status)
	respond(w, http.StatusCreated, lead)
}

func (h *LeadHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	filter := usecase.LeadFilter{
		SalesAgent: r.URL.Query().Get("salesAgent"),
		Status:     r.URL.Query().Get("status"),
		Source:     r.URL.Query().Get("source"),
	}

	leads, err := h.Queries.List(r.Context(), filter)
	if err != nil {
		h.Log.Errorw("list leads", "error", err)
		respondError(w, http.StatusInternalServerError, internalErrorMessage)
		return
	}

	if len(leads) == 0 {
		respondError(w, http.StatusNotFound, "No leads found.")
		return
	}

	respond(w, http.StatusOK, leads)
}

func (h *LeadHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	lead, err := h.Queries.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, entity.ErrLeadNotFound) {
			respondError(w, http.StatusNotFound, "Lead not found.")
			return
		}
		h.Log.Errorw("get lead", "id", id, "error", err)
		respondError(w, http.StatusInternalServerError, internalErrorMessage)
		return
	}

	respond(w, http.StatusOK, lead)
}

// HandleReplace fully replaces a lead. An unknown id is not surfaced as 404:
// the response is 200 with a null body, matching the update contract.
func (h *LeadHandler) HandleReplace(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var input usecase.LeadInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		h.Log.Errorw("replace lead", "id", id, "error", err)
		respondError(w, http.StatusBadRequest, "Invalid JSON body.")
		return
	}

	lead, err := h.UpdateUC.Execute(r.Context(), id, input)
	if err != nil {
		h.Log.Errorw("replace lead", "id", id, "error", err)
		if usecase.IsClientError(err) {
			respondError(w, http.StatusBadRequest, err.Error())
			return
		}
		respondError(w, http.StatusInternalServerError, internalErrorMessage)
		return
	}

	respond(w, http.StatusOK, lead)
}

func (h *LeadHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.Leads.Delete(r.Context(), id); err != nil {
		if errors.Is(err, entity.ErrLeadNotFound) {
			respondError(w, http.StatusNotFound, "Lead not found.")
			return
		}
		h.Log.Errorw("delete lead", "id", id, "error", err)
		respondError(w, http.StatusInternalServerError, internalErrorMessage)
		return
	}

	respondMessage(w, http.StatusOK, "Lead deleted successfully.")
}
