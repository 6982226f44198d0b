package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/mvalerio/crm-backend/internal/usecase"
)

type CommentHandler struct {
	CreateUC *usecase.CreateCommentUseCase
	Queries  *usecase.CommentQueries
	Log      *zap.SugaredLogger
}

func NewCommentHandler(createUC *usecase.CreateCommentUseCase, queries *usecase.CommentQueries, log *zap.SugaredLogger) *CommentHandler {
	return &CommentHandler{
		CreateUC: createUC,
		Queries:  queries,
		Log:      log,
	}
}

func (h *CommentHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	leadID := chi.URLParam(r, "id")

	var input usecase.CommentInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		h.Log.Errorw("create comment", "lead", leadID, "error", err)
		respondError(w, http.StatusBadRequest, "Invalid JSON body.")
		return
	}

	comment, err := h.CreateUC.Execute(r.Context(), leadID, input)
	if err != nil {
		h.Log.Errorw("create comment", "lead", leadID, "error", err)
		if usecase.IsClientError(err) {
			respondError(w, http.StatusBadRequest, err.Error())
			return
		}
		respondError(w, http.StatusInternalServerError, internalErrorMessage)
		return
	}

	respond(w, http.StatusCreated, comment)
}

// HandleListByLead lists every comment under a lead. The lead itself is not
// verified: an unknown id is an empty set and maps to the same 404 as any
// other empty listing.
func (h *CommentHandler) HandleListByLead(w http.ResponseWriter, r *http.Request) {
	leadID := chi.URLParam(r, "id")

	comments, err := h.Queries.ListByLead(r.Context(), leadID)
	if err != nil {
		h.Log.Errorw("list comments", "lead", leadID, "error", err)
		respondError(w, http.StatusInternalServerError, internalErrorMessage)
		return
	}

	if len(comments) == 0 {
		respondError(w, http.StatusNotFound, "No comments found.")
		return
	}

	respond(w, http.StatusOK, comments)
}
