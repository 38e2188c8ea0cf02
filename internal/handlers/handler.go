package handlers

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"gitlab.com/bhajan-roster.net/internal/core/ports/primary"
	"gitlab.com/bhajan-roster.net/internal/core/services/session"
	"gitlab.com/bhajan-roster.net/internal/domain"
	"gitlab.com/bhajan-roster.net/internal/handlers/response"
	"gitlab.com/bhajan-roster.net/internal/static/errs"
)

// MetaHandler serves the catalog, health and history endpoints
type MetaHandler struct {
	sessionService session.ISessionService
	logger         primary.Logger
}

// NewMetaHandler creates a new meta handler
func NewMetaHandler(sessionService session.ISessionService, logger primary.Logger) *MetaHandler {
	return &MetaHandler{
		sessionService: sessionService,
		logger:         logger,
	}
}

// RegisterRoutes registers the API routes for MetaHandler
func (h *MetaHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/healthz", h.Health).Methods("GET")
	router.HandleFunc("/api/deities", h.GetDeities).Methods("GET")
	router.HandleFunc("/api/history", h.History).Methods("GET")
}

func (h *MetaHandler) Health(w http.ResponseWriter, r *http.Request) {
	response.WriteSuccess(w, map[string]string{"status": "ok"})
}

// GetDeities handles catalog retrieval requests
func (h *MetaHandler) GetDeities(w http.ResponseWriter, r *http.Request) {
	response.WriteSuccess(w, map[string][]domain.DeityInfo{"deities": h.sessionService.Catalog()})
}

// History is a placeholder; past sessions are not browsable yet.
func (h *MetaHandler) History(w http.ResponseWriter, r *http.Request) {
	response.WriteError(w, response.ErrorMessage{
		Message:    "session history is not available",
		StatusCode: http.StatusNotImplemented,
	})
}

// SessionDateFromPath parses the {date} route variable.
func SessionDateFromPath(r *http.Request) (domain.SessionDate, error) {
	date, err := domain.ParseSessionDate(mux.Vars(r)["date"])
	if err != nil {
		return "", errs.ErrInvalidDate
	}
	return date, nil
}

// WriteServiceError maps service errors onto HTTP status codes.
func WriteServiceError(w http.ResponseWriter, logger primary.Logger, err error) {
	if ve, ok := errs.IsValidation(err); ok {
		response.WriteError(w, response.ErrorMessage{
			Message:    ve.Error(),
			StatusCode: http.StatusBadRequest,
			Kind:       ve.KindName(),
		})
		return
	}
	switch {
	case errors.Is(err, errs.ErrInvalidDate):
		response.WriteError(w, response.ErrorMessage{
			Message:    "session date must be YYYY-MM-DD",
			StatusCode: http.StatusBadRequest,
			Kind:       "InvalidDate",
		})
	case errors.Is(err, errs.ErrInvalidShareToken):
		response.WriteError(w, response.ErrorMessage{
			Message:    errs.ErrInvalidShareToken.Error(),
			StatusCode: http.StatusUnauthorized,
		})
	case errors.Is(err, errs.ErrStorageUnavailable):
		logger.Error("Storage unavailable", "error", err)
		response.WriteError(w, response.ErrorMessage{
			Message:    "storage unavailable, try again later",
			StatusCode: http.StatusServiceUnavailable,
			Kind:       "StorageUnavailable",
		})
	default:
		logger.Error("Request failed", "error", err)
		response.WriteError(w, response.ErrorMessage{
			Message:    "internal error",
			StatusCode: http.StatusInternalServerError,
		})
	}
}
