package api

import (
	"encoding/json"
	stderrors "errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"todo-api/internal/errors"
	"todo-api/internal/services"
)

// maxBodyBytes bounds request bodies; a task is two short fields.
const maxBodyBytes = 4 << 10

// taskRequest is the body of POST /tasks and PUT /tasks/{id}. A missing
// isComplete decodes as false.
type taskRequest struct {
	Name       string `json:"name"`
	IsComplete bool   `json:"isComplete"`
}

// Handler serves the task routes
type Handler struct {
	tasks  services.TaskService
	logger *slog.Logger
}

// NewHandler creates a handler over the task service
func NewHandler(tasks services.TaskService, logger *slog.Logger) *Handler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Handler{tasks: tasks, logger: logger}
}

// Routes builds the router with the full middleware chain
func (h *Handler) Routes() http.Handler {
	r := chi.NewRouter()
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"*"},
		ExposedHeaders: []string{"Location", RequestIDHeader},
	}))
	r.Use(middleware.RealIP)
	r.Use(requestID)
	r.Use(accessLog(h.logger))
	r.Use(middleware.Recoverer)

	r.Get("/", h.handleRoot)
	r.Route("/tasks", func(r chi.Router) {
		r.Get("/", h.handleListTasks)
		r.Post("/", h.handleCreateTask)
		r.Get("/{id}", h.handleGetTask)
		r.Put("/{id}", h.handleUpdateTask)
		r.Delete("/{id}", h.handleDeleteTask)
	})

	return r
}

func (h *Handler) handleRoot(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Write([]byte("API is running"))
}

func (h *Handler) handleListTasks(w http.ResponseWriter, r *http.Request) {
	tasks, err := h.tasks.ListTasks(r.Context())
	if err != nil {
		h.writeError(w, r, "list tasks", err)
		return
	}
	writeJSON(w, http.StatusOK, tasks)
}

func (h *Handler) handleGetTask(w http.ResponseWriter, r *http.Request) {
	id, err := taskID(r)
	if err != nil {
		h.writeError(w, r, "get task", err)
		return
	}

	task, err := h.tasks.GetTask(r.Context(), id)
	if err != nil {
		h.writeError(w, r, "get task", err, "id", id)
		return
	}
	writeJSON(w, http.StatusOK, task)
}

func (h *Handler) handleCreateTask(w http.ResponseWriter, r *http.Request) {
	req, err := decodeTask(w, r)
	if err != nil {
		h.writeError(w, r, "create task", err)
		return
	}

	task, err := h.tasks.CreateTask(r.Context(), req.Name, req.IsComplete)
	if err != nil {
		h.writeError(w, r, "create task", err)
		return
	}

	w.Header().Set("Location", fmt.Sprintf("/tasks/%d", task.ID))
	writeJSON(w, http.StatusCreated, task)
}

func (h *Handler) handleUpdateTask(w http.ResponseWriter, r *http.Request) {
	id, err := taskID(r)
	if err != nil {
		h.writeError(w, r, "update task", err)
		return
	}
	req, err := decodeTask(w, r)
	if err != nil {
		h.writeError(w, r, "update task", err, "id", id)
		return
	}

	if err := h.tasks.UpdateTask(r.Context(), id, req.Name, req.IsComplete); err != nil {
		h.writeError(w, r, "update task", err, "id", id)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) handleDeleteTask(w http.ResponseWriter, r *http.Request) {
	id, err := taskID(r)
	if err != nil {
		h.writeError(w, r, "delete task", err)
		return
	}

	if err := h.tasks.DeleteTask(r.Context(), id); err != nil {
		h.writeError(w, r, "delete task", err, "id", id)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func taskID(r *http.Request) (int64, error) {
	raw := chi.URLParam(r, "id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, errors.NewInvalidInputError("id", raw, "must be an integer")
	}
	return id, nil
}

func decodeTask(w http.ResponseWriter, r *http.Request) (taskRequest, error) {
	var req taskRequest
	body := http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(body).Decode(&req); err != nil {
		var tooLarge *http.MaxBytesError
		if stderrors.As(err, &tooLarge) {
			return req, errors.NewInvalidInputError("body", nil, fmt.Sprintf("must not exceed %d bytes", maxBodyBytes))
		}
		return req, errors.NewInvalidInputError("body", nil, "malformed JSON")
	}
	return req, nil
}
