// Package handler provides HTTP request handlers for the application.
package handler

import (
	"errors"
	"io"
	"math"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/render"
	"go.uber.org/zap"

	"github.com/popeskul/crm-comms/internal/api"
	"github.com/popeskul/crm-comms/internal/apperrors"
	"github.com/popeskul/crm-comms/internal/middleware"
	"github.com/popeskul/crm-comms/internal/service"
)

const (
	errorCodeInvalidRequest = "INVALID_REQUEST"
	errorCodeValidation     = "VALIDATION_ERROR"
	errorCodeNotFound       = "NOT_FOUND"
	errorCodeConflict       = "STATUS_CONFLICT"
	errorCodeCooldownActive = "COOLDOWN_ACTIVE"
	errorCodeOptOut         = "CONTACT_OPTED_OUT"
	errorCodeEmptyTemplate  = "EMPTY_TEMPLATE"
	errorCodeGatewaySend    = "GATEWAY_SEND_FAILED"
)

const errorMessageInvalidBody = "Request body is not valid JSON"

const (
	defaultPageLimit = 50
	maxPageLimit     = 100
)

type Handler struct {
	service *service.Service
	logger  *zap.Logger
}

// NewHandler creates a new handler instance that implements api.ServerInterface.
func NewHandler(service *service.Service, logger *zap.Logger) api.ServerInterface {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// decode reads a JSON body into v. An empty body leaves v untouched
// when allowEmpty is set.
func (h *Handler) decode(w http.ResponseWriter, r *http.Request, v any, allowEmpty bool) bool {
	err := render.DecodeJSON(r.Body, v)
	if err == nil || (allowEmpty && errors.Is(err, io.EOF)) {
		return true
	}
	h.sendError(w, r, http.StatusBadRequest, errorCodeInvalidRequest, errorMessageInvalidBody)
	return false
}

// handleServiceError maps the service error taxonomy onto HTTP statuses.
// action names the failed operation in the 500 message.
func (h *Handler) handleServiceError(w http.ResponseWriter, r *http.Request, err error, action string) {
	var cooldownErr *apperrors.CooldownActiveError

	switch {
	case errors.As(err, &cooldownErr):
		retryAfter := int(math.Ceil(cooldownErr.RetryAfter.Seconds()))
		w.Header().Set("Retry-After", strconv.Itoa(retryAfter))
		h.sendError(w, r, http.StatusTooManyRequests, errorCodeCooldownActive, err.Error())
	case errors.Is(err, apperrors.ErrValidation):
		h.sendError(w, r, http.StatusBadRequest, errorCodeValidation, err.Error())
	case errors.Is(err, apperrors.ErrNotFound):
		h.sendError(w, r, http.StatusNotFound, errorCodeNotFound, err.Error())
	case errors.Is(err, apperrors.ErrConflict):
		h.sendError(w, r, http.StatusConflict, errorCodeConflict, err.Error())
	case errors.Is(err, apperrors.ErrOptOut):
		h.sendError(w, r, http.StatusUnprocessableEntity, errorCodeOptOut, err.Error())
	case errors.Is(err, apperrors.ErrEmptyTemplate):
		h.sendError(w, r, http.StatusUnprocessableEntity, errorCodeEmptyTemplate, err.Error())
	case errors.Is(err, apperrors.ErrGatewaySend):
		h.logger.Warn("Gateway send failed",
			middleware.RequestIDField(r.Context()),
			zap.Error(err))
		h.sendError(w, r, http.StatusBadGateway, errorCodeGatewaySend, err.Error())
	default:
		h.logger.Error("Failed to "+action,
			middleware.RequestIDField(r.Context()),
			zap.Error(err))
		h.sendError(w, r, http.StatusInternalServerError, middleware.ErrorCodeInternal, "Failed to "+action)
	}
}

func (h *Handler) sendError(w http.ResponseWriter, r *http.Request, statusCode int, errorCode, message string) {
	render.Status(r, statusCode)
	render.JSON(w, r, api.ErrorResponse{
		Error:   errorCode,
		Message: message,
		Timestamp: func() *time.Time {
			t := time.Now()
			return &t
		}(),
	})
}

func pageLimit(limit *int) int {
	if limit == nil || *limit < 1 {
		return defaultPageLimit
	}
	if *limit > maxPageLimit {
		return maxPageLimit
	}
	return *limit
}

func pageOffset(offset *int) int {
	if offset == nil || *offset < 0 {
		return 0
	}
	return *offset
}

func valueOr[T any](p *T, def T) T {
	if p == nil {
		return def
	}
	return *p
}

func nonEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
