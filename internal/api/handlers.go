// Package api exposes HTTP handlers for the registration service.
package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"example.com/registration/internal/domain"
	"example.com/registration/internal/observability"
)

// Handler coordinates HTTP requests with the domain service.
type Handler struct {
	service *domain.Service
}

// NewHandler builds a Handler.
func NewHandler(service *domain.Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes wires endpoints to the mux.
func (h *Handler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("/activities", h.activities)
	mux.HandleFunc("/activities/", h.activityAction)
	mux.HandleFunc("/healthz", healthz)
}

// healthz reports a simple OK status for container health checks.
func healthz(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

func (h *Handler) activities(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method_not_allowed", "unsupported method")
		return
	}
	h.listActivities(w, r)
}

// activityAction routes /activities/{name}/signup and
// /activities/{name}/unregister. The name segment is taken literally after
// URL decoding, spaces included, and must exact-match a catalog key.
func (h *Handler) activityAction(w http.ResponseWriter, r *http.Request) {
	rest := strings.TrimPrefix(r.URL.Path, "/activities/")

	if name, ok := strings.CutSuffix(rest, "/signup"); ok {
		if r.Method != http.MethodPost {
			writeError(w, http.StatusMethodNotAllowed, "method_not_allowed", "unsupported method")
			return
		}
		h.signUp(w, r, name)
		return
	}

	if name, ok := strings.CutSuffix(rest, "/unregister"); ok {
		if r.Method != http.MethodDelete {
			writeError(w, http.StatusMethodNotAllowed, "method_not_allowed", "unsupported method")
			return
		}
		h.unregister(w, r, name)
		return
	}

	writeError(w, http.StatusNotFound, "not_found", "unknown route")
}

func (h *Handler) listActivities(w http.ResponseWriter, r *http.Request) {
	catalog, err := h.service.ListActivities(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "server_error", err.Error())
		return
	}

	resp := make(map[string]ActivityView, len(catalog))
	for name, activity := range catalog {
		resp[name] = toActivityView(activity)
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) signUp(w http.ResponseWriter, r *http.Request, name string) {
	email := r.URL.Query().Get("email")
	if email == "" {
		observability.RecordSignup("invalid_request")
		writeError(w, http.StatusBadRequest, "validation_failed", "missing email parameter")
		return
	}

	message, err := h.service.SignUp(r.Context(), name, email)
	switch {
	case errors.Is(err, domain.ErrActivityNotFound):
		observability.RecordSignup("not_found")
		writeError(w, http.StatusNotFound, "not_found", "Activity not found")
		return
	case errors.Is(err, domain.ErrAlreadyRegistered):
		observability.RecordSignup("already_registered")
		writeError(w, http.StatusBadRequest, "already_registered", "Student already signed up for this activity")
		return
	case err != nil:
		observability.RecordSignup("error")
		writeError(w, http.StatusInternalServerError, "server_error", err.Error())
		return
	}

	observability.RecordSignup("ok")
	observability.ParticipantJoined()
	writeJSON(w, http.StatusOK, MessageResponse{Message: message})
}

func (h *Handler) unregister(w http.ResponseWriter, r *http.Request, name string) {
	email := r.URL.Query().Get("email")
	if email == "" {
		observability.RecordUnregistration("invalid_request")
		writeError(w, http.StatusBadRequest, "validation_failed", "missing email parameter")
		return
	}

	message, err := h.service.Unregister(r.Context(), name, email)
	switch {
	case errors.Is(err, domain.ErrActivityNotFound):
		observability.RecordUnregistration("not_found")
		writeError(w, http.StatusNotFound, "not_found", "Activity not found")
		return
	case errors.Is(err, domain.ErrNotRegistered):
		observability.RecordUnregistration("not_registered")
		writeError(w, http.StatusBadRequest, "not_registered", "Student not registered for this activity")
		return
	case err != nil:
		observability.RecordUnregistration("error")
		writeError(w, http.StatusInternalServerError, "server_error", err.Error())
		return
	}

	observability.RecordUnregistration("ok")
	observability.ParticipantLeft()
	writeJSON(w, http.StatusOK, MessageResponse{Message: message})
}

// ActivityView exposes one activity in the list response.
type ActivityView struct {
	Description     string   `json:"description"`
	Schedule        string   `json:"schedule"`
	MaxParticipants int      `json:"max_participants"`
	Participants    []string `json:"participants"`
}

// MessageResponse carries the confirmation for a successful mutation.
type MessageResponse struct {
	Message string `json:"message"`
}

func toActivityView(activity domain.Activity) ActivityView {
	participants := activity.Participants
	if participants == nil {
		participants = []string{}
	}
	return ActivityView{
		Description:     activity.Description,
		Schedule:        activity.Schedule,
		MaxParticipants: activity.MaxParticipants,
		Participants:    participants,
	}
}

func writeError(w http.ResponseWriter, status int, code, detail string) {
	payload := map[string]string{
		"type":   code,
		"detail": detail,
	}
	writeJSON(w, status, payload)
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
