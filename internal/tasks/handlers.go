package tasks

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"taskflow-backend/internal/analytics"
)

// -------------------------------
// HANDLERS
// -------------------------------

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError maps the error taxonomy onto the route table:
// not found -> 404, conflict and validation -> 400, storage -> 500.
func writeError(w http.ResponseWriter, err error) {
	var verr *ValidationError
	switch {
	case errors.Is(err, ErrNotFound):
		http.Error(w, "task not found", http.StatusNotFound)
	case errors.Is(err, ErrConflict):
		http.Error(w, "task with this id already exists", http.StatusBadRequest)
	case errors.As(err, &verr):
		http.Error(w, verr.Error(), http.StatusBadRequest)
	default:
		log.Printf("[WARN] storage failure: %v", err)
		http.Error(w, "storage error", http.StatusInternalServerError)
	}
}

func decodeBody(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		var verr *ValidationError
		if errors.As(err, &verr) {
			http.Error(w, verr.Error(), http.StatusBadRequest)
		} else {
			http.Error(w, "invalid json", http.StatusBadRequest)
		}
		return false
	}
	return true
}

// GET /tasks — the full stored mapping, unchanged.
func ListHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		data, err := svc.List()
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, data)
	}
}

// GET /task/{id}
func GetHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		t, err := svc.Get(r.PathValue("id"))
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, t.View())
	}
}

// GET /sort?sort_by=&order=
func SortHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		views, err := svc.Sorted(r.URL.Query().Get("sort_by"), r.URL.Query().Get("order"))
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, views)
	}
}

// POST /create
func CreateHandler(svc *Service, journal *analytics.Journal) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var t Task
		if !decodeBody(w, r, &t) {
			return
		}

		if err := svc.Create(t); err != nil {
			writeError(w, err)
			return
		}

		env := analytics.FromRequest(r)
		_ = journal.Log("task_created", env, map[string]any{
			"task_id":         t.ID,
			"priority":        t.Fields.Priority,
			"estimated_hours": t.EstimatedHours,
		}, analytics.SourceEventKeyFromRequest(r))

		writeJSON(w, http.StatusCreated, t.View())
	}
}

// PUT /edit/{id}
func UpdateHandler(svc *Service, journal *analytics.Journal) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := r.PathValue("id")

		var patch TaskUpdate
		if !decodeBody(w, r, &patch) {
			return
		}

		merged, err := svc.Update(id, patch)
		if err != nil {
			writeError(w, err)
			return
		}

		env := analytics.FromRequest(r)
		_ = journal.Log("task_updated", env, map[string]any{
			"task_id":  id,
			"status":   merged.Fields.Status,
			"progress": merged.Fields.Progress(),
		}, analytics.SourceEventKeyFromRequest(r))

		writeJSON(w, http.StatusOK, merged.View())
	}
}

// DELETE /delete/{id}
func DeleteHandler(svc *Service, journal *analytics.Journal) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := r.PathValue("id")

		if err := svc.Delete(id); err != nil {
			writeError(w, err)
			return
		}

		env := analytics.FromRequest(r)
		_ = journal.Log("task_deleted", env, map[string]any{
			"task_id": id,
		}, analytics.SourceEventKeyFromRequest(r))

		writeJSON(w, http.StatusOK, map[string]any{"ok": true})
	}
}
