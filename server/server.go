package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"time"

	"github.com/jshim/cinesync/pkg/logger"
	"github.com/jshim/cinesync/pkg/manager"
	"github.com/jshim/cinesync/pkg/storage"
	"go.uber.org/zap"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
)

type GenericResponse struct {
	Error    *error `json:"error,omitempty"`
	Response any    `json:"response"`
}

// Server houses all dependencies for the pipeline's operator surface
type Server struct {
	baseLogger *zap.SugaredLogger
	manager    manager.MediaManager
	scheduler  *manager.Scheduler
}

// New creates a new server
func New(logger *zap.SugaredLogger, manager manager.MediaManager, scheduler *manager.Scheduler) Server {
	return Server{
		baseLogger: logger,
		manager:    manager,
		scheduler:  scheduler,
	}
}

func writeErrorResponse(w http.ResponseWriter, status int, err error) error {
	return writeResponse(w, status, GenericResponse{
		Error: &err,
	})
}

func writeResponse(w http.ResponseWriter, status int, body any) error {
	b, err := json.Marshal(body)
	if err != nil {
		return err
	}

	w.Header().Set("content-type", "application/json")
	if status != http.StatusOK {
		w.WriteHeader(status)
	}

	w.Write(b)
	return nil
}

// Serve starts the http server and is a blocking call
func (s Server) Serve(port int) error {
	rtr := mux.NewRouter()
	rtr.Use(s.LogMiddleware())
	rtr.HandleFunc("/healthz", s.Healthz()).Methods(http.MethodGet)

	api := rtr.PathPrefix("/api").Subrouter()

	v1 := api.PathPrefix("/v1").Subrouter()

	v1.HandleFunc("/movies", s.ListMovies()).Methods(http.MethodGet)
	v1.HandleFunc("/movies/{id}", s.DeleteMovie()).Methods(http.MethodDelete)
	v1.HandleFunc("/boxoffice", s.ListBoxOffice()).Methods(http.MethodGet)
	v1.HandleFunc("/search", s.SearchMovie()).Methods(http.MethodGet)

	v1.HandleFunc("/jobs", s.ListJobs()).Methods(http.MethodGet)
	v1.HandleFunc("/jobs", s.TriggerJob()).Methods(http.MethodPost)
	v1.HandleFunc("/jobs/{id}", s.GetJob()).Methods(http.MethodGet)
	v1.HandleFunc("/jobs/{id}/cancel", s.CancelJob()).Methods(http.MethodPost)

	corsHandler := handlers.CORS(
		handlers.AllowedOrigins([]string{"*"}),
	)(rtr)

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", port),
		Handler: corsHandler,
	}

	go func() {
		s.baseLogger.Info("serving...", zap.Int("port", port))
		if err := srv.ListenAndServe(); err != nil {
			s.baseLogger.Error(err.Error())
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt)
	<-c

	ctx, cancel := context.WithTimeout(context.Background(), time.Second*3)
	defer cancel()

	return srv.Shutdown(ctx)
}

// Healthz is an endpoint that can be used for probes
func (s Server) Healthz() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		response := GenericResponse{
			Response: "ok",
		}
		writeResponse(w, http.StatusOK, response)
	}
}

// ListMovies lists the stored catalog
func (s Server) ListMovies() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromCtx(r.Context())
		movies, err := s.manager.ListMovieMetadata(r.Context())
		if err != nil {
			log.Error("failed to list movies", zap.Error(err))
			http.Error(w, "failed to list movies", http.StatusInternalServerError)
			return
		}

		writeResponse(w, http.StatusOK, GenericResponse{Response: movies})
	}
}

// DeleteMovie retires a stored catalog record
func (s Server) DeleteMovie() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromCtx(r.Context())

		id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 32)
		if err != nil {
			http.Error(w, "invalid movie id", http.StatusBadRequest)
			return
		}

		if err := s.manager.DeleteMovie(r.Context(), int32(id)); err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				http.Error(w, "movie not found", http.StatusNotFound)
				return
			}
			log.Error("failed to delete movie", zap.Error(err), zap.Int64("id", id))
			writeErrorResponse(w, http.StatusInternalServerError, err)
			return
		}

		writeResponse(w, http.StatusOK, GenericResponse{Response: "deleted"})
	}
}

// ListBoxOffice lists one day's stored box office snapshot
func (s Server) ListBoxOffice() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromCtx(r.Context())

		date := r.URL.Query().Get("date")
		if date == "" {
			http.Error(w, "date query parameter is required", http.StatusBadRequest)
			return
		}

		entries, err := s.manager.ListBoxOfficeEntries(r.Context(), date)
		if err != nil {
			log.Error("failed to list box office entries", zap.Error(err), zap.String("date", date))
			http.Error(w, "failed to list box office entries", http.StatusInternalServerError)
			return
		}

		writeResponse(w, http.StatusOK, GenericResponse{Response: entries})
	}
}

// SearchMovie searches the catalog provider
func (s Server) SearchMovie() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromCtx(r.Context())
		query := r.URL.Query().Get("query")

		result, err := s.manager.SearchMovie(r.Context(), query)
		if err != nil {
			writeErrorResponse(w, http.StatusOK, err)
			return
		}

		err = writeResponse(w, http.StatusOK, GenericResponse{Response: result})
		if err != nil {
			log.Error("failed to write response", zap.Error(err))
			return
		}
	}
}
