package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/render"
	"go.uber.org/zap"

	"github.com/popeskul/crm-comms/internal/api"
	"github.com/popeskul/crm-comms/internal/middleware"
	"github.com/popeskul/crm-comms/internal/scheduler"
)

const (
	errorCodeWorkerAlreadyRunning = "WORKER_ALREADY_RUNNING"
	errorCodeWorkerNotRunning     = "WORKER_NOT_RUNNING"
)

const (
	errorMessageWorkerAlreadyRunning = "Worker is already running"
	errorMessageWorkerNotRunning     = "Worker is not running"
	errorMessageFailedToStartWorker  = "Failed to start worker"
	errorMessageFailedToStopWorker   = "Failed to stop worker"
)

const (
	workerMessageStarted = "Worker started successfully"
	workerMessageStopped = "Worker stopped successfully"
)

// StartWorker implements api.ServerInterface.
func (h *Handler) StartWorker(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	err := h.service.Worker.Start()
	if err != nil {
		if errors.Is(err, scheduler.ErrSchedulerAlreadyRunning) {
			h.sendError(w, r, http.StatusConflict, errorCodeWorkerAlreadyRunning, errorMessageWorkerAlreadyRunning)
			return
		}

		h.logger.Error("Failed to start worker",
			zap.String("request_id", requestID),
			zap.Error(err))
		h.sendError(w, r, http.StatusInternalServerError, middleware.ErrorCodeInternal, errorMessageFailedToStartWorker)
		return
	}

	render.JSON(w, r, api.WorkerResponse{
		Status:  api.WorkerResponseStatusStarted,
		Message: workerMessageStarted,
	})
}

// StopWorker implements api.ServerInterface.
func (h *Handler) StopWorker(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	err := h.service.Worker.Stop()
	if err != nil {
		if errors.Is(err, scheduler.ErrSchedulerNotRunning) {
			h.sendError(w, r, http.StatusConflict, errorCodeWorkerNotRunning, errorMessageWorkerNotRunning)
			return
		}

		h.logger.Error("Failed to stop worker",
			zap.String("request_id", requestID),
			zap.Error(err))
		h.sendError(w, r, http.StatusInternalServerError, middleware.ErrorCodeInternal, errorMessageFailedToStopWorker)
		return
	}

	render.JSON(w, r, api.WorkerResponse{
		Status:  api.WorkerResponseStatusStopped,
		Message: workerMessageStopped,
	})
}

// HealthCheck implements api.ServerInterface.
func (h *Handler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	health := h.service.Health.GetHealth(r.Context())

	response := api.HealthResponse{
		Status:    health.Status,
		Timestamp: time.Now(),
		Gateways:  health.Gateways,
	}

	if health.WorkerStatus != "" {
		status := health.WorkerStatus
		response.WorkerStatus = &status
	}

	if health.DatabaseStatus != "" {
		status := health.DatabaseStatus
		response.DatabaseStatus = &status
	}

	if health.RedisStatus != "" {
		status := health.RedisStatus
		response.RedisStatus = &status
	}

	// Degraded answers 200
	if health.Status == api.Unhealthy {
		render.Status(r, http.StatusServiceUnavailable)
	}

	render.JSON(w, r, response)
}
