package share

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"gitlab.com/bhajan-roster.net/internal/core/ports/primary"
	"gitlab.com/bhajan-roster.net/internal/core/services/session"
	"gitlab.com/bhajan-roster.net/internal/handlers"
	"gitlab.com/bhajan-roster.net/internal/handlers/response"
)

// ShareResponse is returned when a planner share link is created
type ShareResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
	Path      string    `json:"path"`
}

type Handler struct {
	sessionService session.ISessionService
	tokens         primary.ShareTokenService
	middleware     *handlers.MiddlewareProvider
	logger         primary.Logger
}

func NewHandler(
	sessionService session.ISessionService,
	tokens primary.ShareTokenService,
	middleware *handlers.MiddlewareProvider,
	logger primary.Logger,
) *Handler {
	return &Handler{
		sessionService: sessionService,
		tokens:         tokens,
		middleware:     middleware,
		logger:         logger,
	}
}

func (h *Handler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/api/sessions/{date}/share", h.CreateShareLink).Methods("POST")

	shared := router.PathPrefix("/api/shared").Subrouter()
	shared.Use(h.middleware.ShareTokenMiddleware)
	shared.HandleFunc("/export", h.SharedExport).Methods("GET")
}

// CreateShareLink signs a read-only export link for one session
func (h *Handler) CreateShareLink(w http.ResponseWriter, r *http.Request) {
	date, err := handlers.SessionDateFromPath(r)
	if err != nil {
		handlers.WriteServiceError(w, h.logger, err)
		return
	}

	token, expiresAt, err := h.tokens.GenerateShareToken(r.Context(), date)
	if err != nil {
		h.logger.Error("Failed to generate share token", "date", date, "error", err)
		response.WriteError(w, response.ErrorMessage{
			Message:    err.Error(),
			StatusCode: http.StatusInternalServerError,
		})
		return
	}

	response.WriteJSON(w, http.StatusCreated, ShareResponse{
		Token:     token,
		ExpiresAt: expiresAt,
		Path:      "/api/shared/export?token=" + token,
	})
}

// SharedExport renders the export of the session named in the share token
func (h *Handler) SharedExport(w http.ResponseWriter, r *http.Request) {
	claims, ok := handlers.ShareClaimsFrom(r.Context())
	if !ok {
		response.WriteError(w, response.ErrorMessage{
			Message:    "share token missing",
			StatusCode: http.StatusUnauthorized,
		})
		return
	}

	text, err := h.sessionService.Export(r.Context(), claims.SessionDate)
	if err != nil {
		handlers.WriteServiceError(w, h.logger, err)
		return
	}

	response.WriteText(w, http.StatusOK, text)
}
