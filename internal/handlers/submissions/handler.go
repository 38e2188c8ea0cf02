package submissions

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/gorilla/mux"

	"gitlab.com/bhajan-roster.net/internal/core/ports/primary"
	"gitlab.com/bhajan-roster.net/internal/core/services/session"
	"gitlab.com/bhajan-roster.net/internal/domain"
	"gitlab.com/bhajan-roster.net/internal/handlers"
	"gitlab.com/bhajan-roster.net/internal/handlers/response"
)

const (
	statusAccepted = "accepted"
	statusRejected = "rejected"
)

// SubmissionHandler handles session roster API requests
type SubmissionHandler struct {
	sessionService session.ISessionService
	logger         primary.Logger
}

var _ session.ISessionService = &session.SessionService{}

// NewSubmissionHandler creates a new submission handler
func NewSubmissionHandler(sessionService session.ISessionService, logger primary.Logger) *SubmissionHandler {
	return &SubmissionHandler{
		sessionService: sessionService,
		logger:         logger,
	}
}

// RegisterRoutes registers the API routes for SubmissionHandler
func (h *SubmissionHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/api/sessions/{date}/submissions", h.Submit).Methods("POST")
	router.HandleFunc("/api/sessions/{date}/submissions/batch", h.SubmitBatch).Methods("POST")
	router.HandleFunc("/api/sessions/{date}/submissions", h.List).Methods("GET")
	router.HandleFunc("/api/sessions/{date}/summary", h.Summary).Methods("GET")
	router.HandleFunc("/api/sessions/{date}/export", h.Export).Methods("GET")
}

// Submit handles single slot claims
func (h *SubmissionHandler) Submit(w http.ResponseWriter, r *http.Request) {
	date, err := handlers.SessionDateFromPath(r)
	if err != nil {
		handlers.WriteServiceError(w, h.logger, err)
		return
	}

	var req SubmitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Error("Failed to decode request", "error", err)
		http.Error(w, "Invalid request", http.StatusBadRequest)
		return
	}

	outcome, err := h.sessionService.Submit(r.Context(), date, req.Deity, req.data())
	if err != nil {
		handlers.WriteServiceError(w, h.logger, err)
		return
	}

	if !outcome.Accepted {
		existing := outcome.Submission
		response.WriteJSON(w, http.StatusConflict, SubmitResponse{
			Status:     statusRejected,
			Submission: existing,
			Message: fmt.Sprintf("%s is already taken by %s (%s), submitted %s",
				existing.Deity, existing.SingerName, existing.Title,
				existing.CreatedAt.Format("02 Jan 15:04")),
		})
		return
	}

	response.WriteJSON(w, http.StatusCreated, SubmitResponse{
		Status:     statusAccepted,
		Submission: outcome.Submission,
	})
}

// SubmitBatch handles multi-slot claims; each item is reported separately
func (h *SubmissionHandler) SubmitBatch(w http.ResponseWriter, r *http.Request) {
	date, err := handlers.SessionDateFromPath(r)
	if err != nil {
		handlers.WriteServiceError(w, h.logger, err)
		return
	}

	var req BatchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Error("Failed to decode request", "error", err)
		http.Error(w, "Invalid request", http.StatusBadRequest)
		return
	}
	if len(req.Items) == 0 {
		response.WriteError(w, response.ErrorMessage{
			Message:    "batch has no items",
			StatusCode: http.StatusBadRequest,
			Kind:       "MissingField",
		})
		return
	}

	singer := domain.SubmissionData{
		SingerName:  req.SingerName,
		Gender:      req.Gender,
		PartnerName: req.PartnerName,
	}
	result, err := h.sessionService.SubmitBatch(r.Context(), date, singer, req.Items)
	if err != nil {
		handlers.WriteServiceError(w, h.logger, err)
		return
	}

	response.WriteSuccess(w, result)
}

// List handles ordered roster requests
func (h *SubmissionHandler) List(w http.ResponseWriter, r *http.Request) {
	date, err := handlers.SessionDateFromPath(r)
	if err != nil {
		handlers.WriteServiceError(w, h.logger, err)
		return
	}

	ordered, err := h.sessionService.ListForSession(r.Context(), date)
	if err != nil {
		handlers.WriteServiceError(w, h.logger, err)
		return
	}

	response.WriteSuccess(w, ListResponse{SessionDate: date, Submissions: ordered})
}

// Summary handles slot fill-state requests
func (h *SubmissionHandler) Summary(w http.ResponseWriter, r *http.Request) {
	date, err := handlers.SessionDateFromPath(r)
	if err != nil {
		handlers.WriteServiceError(w, h.logger, err)
		return
	}

	summary, err := h.sessionService.Summary(r.Context(), date)
	if err != nil {
		handlers.WriteServiceError(w, h.logger, err)
		return
	}

	response.WriteSuccess(w, summary)
}

// Export handles plain-text roster requests
func (h *SubmissionHandler) Export(w http.ResponseWriter, r *http.Request) {
	date, err := handlers.SessionDateFromPath(r)
	if err != nil {
		handlers.WriteServiceError(w, h.logger, err)
		return
	}

	text, err := h.sessionService.Export(r.Context(), date)
	if err != nil {
		handlers.WriteServiceError(w, h.logger, err)
		return
	}

	response.WriteText(w, http.StatusOK, text)
}
