package httpapi

import (
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"

	"todolist/internal/model"
	"todolist/internal/observability/jsonlog"
	"todolist/internal/task"
)

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status": "ok",
		"time":   time.Now().UTC().Format(time.RFC3339),
	})
}

func (s *Server) handleListTasks(w http.ResponseWriter, r *http.Request) {
	filter, err := parseListFilter(r.URL.Query())
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	var tasks []model.Task
	if filter.Completed == nil || !*filter.Completed {
		tasks, err = s.service.ListIncomplete(r.Context())
	} else {
		tasks, err = s.service.List(r.Context(), filter)
	}
	if err != nil {
		s.internalError(w, r, err)
		return
	}
	if tasks == nil {
		tasks = []model.Task{}
	}

	writeJSON(w, http.StatusOK, tasks)
}

func (s *Server) handleGetTask(w http.ResponseWriter, r *http.Request) {
	id, ok := pathTaskID(w, r)
	if !ok {
		return
	}

	found, err := s.service.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			writeError(w, http.StatusNotFound, "task not found")
			return
		}
		s.internalError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, found)
}

// createTaskRequest accepts a full task body; any client-sent id is ignored.
type createTaskRequest struct {
	ID          string `json:"id,omitempty"`
	Description string `json:"description"`
	IsCompleted bool   `json:"isCompleted"`
}

func (s *Server) handleCreateTask(w http.ResponseWriter, r *http.Request) {
	var req createTaskRequest
	if err := decodeJSON(r, &req); err != nil {
		writeDecodeError(w, err)
		return
	}

	if err := task.ValidateDescription(req.Description); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	exists, err := s.service.DescriptionExists(r.Context(), req.Description)
	if err != nil {
		s.internalError(w, r, err)
		return
	}
	if exists {
		writeError(w, http.StatusBadRequest, task.ErrDescriptionExists.Error())
		return
	}

	created := model.Task{Description: req.Description, IsCompleted: req.IsCompleted}
	if err := s.service.Create(r.Context(), &created); err != nil {
		s.internalError(w, r, err)
		return
	}

	w.Header().Set("Location", tasksPath+"/"+created.ID.String())
	writeJSON(w, http.StatusCreated, created)
}

func (s *Server) handleUpdateTask(w http.ResponseWriter, r *http.Request) {
	id, ok := pathTaskID(w, r)
	if !ok {
		return
	}

	var body model.Task
	if err := decodeJSON(r, &body); err != nil {
		writeDecodeError(w, err)
		return
	}
	if err := task.ValidateReplacement(id, body); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	// Full replace: the body carries no version, so only a missing row conflicts.
	body.Version = 0
	err := s.service.Update(r.Context(), &body)
	if err == nil {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	if !errors.Is(err, model.ErrConflict) {
		s.internalError(w, r, err)
		return
	}

	exists, exErr := s.service.IDExists(r.Context(), id)
	if exErr != nil {
		s.internalError(w, r, exErr)
		return
	}
	if !exists {
		writeError(w, http.StatusNotFound, "task not found")
		return
	}
	s.internalError(w, r, err)
}

func (s *Server) handleMarkComplete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathTaskID(w, r)
	if !ok {
		return
	}

	completed, err := s.service.MarkComplete(r.Context(), id)
	if err != nil {
		s.internalError(w, r, err)
		return
	}
	if !completed {
		writeError(w, http.StatusNotFound, "task not found or already complete")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func pathTaskID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid task id")
		return uuid.Nil, false
	}
	return id, true
}

func (s *Server) internalError(w http.ResponseWriter, r *http.Request, err error) {
	s.logger.Error("request failed", jsonlog.Fields{
		"rid":    RequestIDFromContext(r.Context()),
		"method": r.Method,
		"path":   r.URL.Path,
		"err":    err,
	})
	writeError(w, http.StatusInternalServerError, "internal error")
}
