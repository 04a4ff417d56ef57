package server

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"
	"github.com/jshim/cinesync/pkg/logger"
	"github.com/jshim/cinesync/pkg/manager"
	"github.com/jshim/cinesync/pkg/storage"
	"go.uber.org/zap"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

type jobListEnvelope struct {
	manager.JobListResponse
	Meta any `json:"meta"`
}

// ListJobs lists the job history, newest first
func (s Server) ListJobs() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromCtx(r.Context())

		params, err := ParsePaginationParams(r)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		jobs, meta, err := s.manager.ListJobs(r.Context(), params)
		if err != nil {
			log.Error("failed to list jobs", zap.Error(err))
			writeErrorResponse(w, http.StatusInternalServerError, err)
			return
		}

		writeResponse(w, http.StatusOK, GenericResponse{Response: jobListEnvelope{
			JobListResponse: *jobs,
			Meta:            meta,
		}})
	}
}

// GetJob returns one job by id
func (s Server) GetJob() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromCtx(r.Context())

		id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
		if err != nil {
			http.Error(w, "invalid job id", http.StatusBadRequest)
			return
		}

		job, err := s.manager.GetJob(r.Context(), id)
		if err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				http.Error(w, "job not found", http.StatusNotFound)
				return
			}
			log.Error("failed to get job", zap.Error(err), zap.Int64("id", id))
			writeErrorResponse(w, http.StatusInternalServerError, err)
			return
		}

		writeResponse(w, http.StatusOK, GenericResponse{Response: job})
	}
}

// TriggerJob manually schedules a job
func (s Server) TriggerJob() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromCtx(r.Context())

		b, err := io.ReadAll(r.Body)
		if err != nil {
			http.Error(w, "invalid request body", http.StatusBadRequest)
			return
		}

		var request manager.TriggerJobRequest
		if err := json.Unmarshal(b, &request); err != nil {
			log.Debug("invalid request body", zap.ByteString("body", b))
			http.Error(w, "invalid request body", http.StatusBadRequest)
			return
		}

		if err := validate.Struct(request); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		id, err := s.scheduler.TriggerJob(r.Context(), request)
		if err != nil {
			if errors.Is(err, storage.ErrJobAlreadyPending) {
				http.Error(w, "job already pending or running", http.StatusConflict)
				return
			}
			log.Error("failed to trigger job", zap.Error(err), zap.String("type", request.Type))
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		job, err := s.manager.GetJob(r.Context(), id)
		if err != nil {
			log.Error("failed to load triggered job", zap.Error(err), zap.Int64("id", id))
			writeErrorResponse(w, http.StatusInternalServerError, err)
			return
		}

		writeResponse(w, http.StatusCreated, GenericResponse{Response: job})
	}
}

// CancelJob cancels a pending or running job
func (s Server) CancelJob() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromCtx(r.Context())

		id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
		if err != nil {
			http.Error(w, "invalid job id", http.StatusBadRequest)
			return
		}

		if err := s.scheduler.CancelJob(r.Context(), id); err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				http.Error(w, "job not found", http.StatusNotFound)
				return
			}
			log.Error("failed to cancel job", zap.Error(err), zap.Int64("id", id))
			writeErrorResponse(w, http.StatusInternalServerError, err)
			return
		}

		writeResponse(w, http.StatusOK, GenericResponse{Response: "cancelled"})
	}
}
