package handlers

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"github.com/mvalerio/crm-backend/internal/infra/http/middleware"
	"github.com/mvalerio/crm-backend/internal/usecase"
)

type AgentHandler struct {
	CreateUC *usecase.CreateAgentUseCase
	Agents   usecase.AgentRepository
	Log      *zap.SugaredLogger
}

func NewAgentHandler(createUC *usecase.CreateAgentUseCase, agents usecase.AgentRepository, log *zap.SugaredLogger) *AgentHandler {
	return &AgentHandler{
		CreateUC: createUC,
		Agents:   agents,
		Log:      log,
	}
}

func (h *AgentHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var input usecase.AgentInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		h.Log.Errorw("create agent", "error", err)
		respondError(w, http.StatusBadRequest, "Invalid JSON body.")
		return
	}

	agent, err := h.CreateUC.Execute(r.Context(), input)
	if err != nil {
		h.Log.Errorw("create agent", "error", err)
		if usecase.IsClientError(err) {
			respondError(w, http.StatusBadRequest, err.Error())
			return
		}
		respondError(w, http.StatusInternalServerError, internalErrorMessage)
		return
	}

	middleware.RecordAgentCreated()
	respond(w, http.StatusCreated, agent)
}

func (h *AgentHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	agents, err := h.Agents.FindAll(r.Context())
	if err != nil {
		h.Log.Errorw("list agents", "error", err)
		respondError(w, http.StatusInternalServerError, internalErrorMessage)
		return
	}

	if len(agents) == 0 {
		respondError(w, http.StatusNotFound, "No sales agents found.")
		return
	}

	respond(w, http.StatusOK, agents)
}
