package handler

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"regform/internal/registration/models"
	"regform/internal/registration/rules"
	"regform/pkg/document"
	dErrors "regform/pkg/domain-errors"
	"regform/pkg/platform/httputil"
	"regform/pkg/requestcontext"
)

// Service defines the interface for registration operations.
type Service interface {
	Register(ctx context.Context, reg models.Registration) error
	CheckPassword(ctx context.Context, password string) rules.PasswordReport
}

// Handler wires registration endpoints to the registration service.
type Handler struct {
	service Service
	logger  *slog.Logger
}

// New constructs a registration handler with its dependencies.
func New(service Service, logger *slog.Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Register mounts registration endpoints on the router.
func (h *Handler) Register(r chi.Router) {
	r.Post("/registration", h.HandleRegister)
	r.Post("/registration/password-check", h.HandlePasswordCheck)
}

// HandleRegister handles POST /registration requests.
func (h *Handler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)
	start := time.Now()

	req, ok := httputil.DecodeAndPrepare[RegisterRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}
	reg := req.ToRegistration()
	kind := reg.Kind()

	if err := h.service.Register(ctx, reg); err != nil {
		if dErrors.Is(err, dErrors.CodeValidation) {
			field := ""
			if de, ok := dErrors.As(err); ok {
				field = de.Field
			}
			h.logger.InfoContext(ctx, "registration rejected",
				"request_id", requestID,
				"kind", kind.String(),
				"field", field,
			)
		} else {
			h.logger.ErrorContext(ctx, "registration failed",
				"request_id", requestID,
				"kind", kind.String(),
				"error", err,
			)
		}
		httputil.WriteError(w, err)
		return
	}

	h.logger.InfoContext(ctx, "registration accepted",
		"request_id", requestID,
		"kind", kind.String(),
		"document", document.Mask(reg.Document),
		"duration_ms", time.Since(start).Milliseconds(),
	)

	httputil.WriteJSON(w, http.StatusOK, httputil.Response{
		Status:  httputil.StatusSuccess,
		Message: models.MessageRegistered,
	})
}

// HandlePasswordCheck handles POST /registration/password-check requests.
func (h *Handler) HandlePasswordCheck(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	req, ok := httputil.DecodeAndPrepare[PasswordCheckRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	report := h.service.CheckPassword(ctx, req.Password)
	httputil.WriteJSON(w, http.StatusOK, FromPasswordReport(report))
}
