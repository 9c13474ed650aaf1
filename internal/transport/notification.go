package transport

import (
	"errors"
	"net/http"
	"time"

	"candyshop-be/internal/notification"
	"candyshop-be/internal/utils"
)

type NotificationHandler struct {
	svc notification.Service
}

func NewNotificationHandler(svc notification.Service) *NotificationHandler {
	return &NotificationHandler{svc: svc}
}

func (h *NotificationHandler) Send(w http.ResponseWriter, r *http.Request) {
	var input notification.SendInput
	if !decodeBody(w, r, &input) {
		return
	}

	n, err := h.svc.Send(r.Context(), input)
	if err != nil {
		h.writeError(w, err)
		return
	}
	utils.WriteJSON(w, http.StatusCreated, n)
}

func (h *NotificationHandler) List(w http.ResponseWriter, r *http.Request) {
	notifications, err := h.svc.List(r.Context())
	if err != nil {
		utils.WriteJSONError(w, "internal server error", http.StatusInternalServerError)
		return
	}
	utils.WriteJSON(w, http.StatusOK, notifications)
}

// New is the poll endpoint: everything created after `since` (RFC 3339)
// addressed to everyone or to the caller's phone.
func (h *NotificationHandler) New(w http.ResponseWriter, r *http.Request) {
	since := time.Now().Add(-time.Minute)
	if raw := r.URL.Query().Get("since"); raw != "" {
		parsed, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			utils.WriteJSONError(w, "since must be RFC 3339", http.StatusBadRequest)
			return
		}
		since = parsed
	}

	recipient := r.URL.Query().Get("phone")
	if recipient == "" {
		recipient = ownerFrom(r)
	}

	notifications, err := h.svc.NewSince(r.Context(), since, recipient)
	if err != nil {
		utils.WriteJSONError(w, "internal server error", http.StatusInternalServerError)
		return
	}
	utils.WriteJSON(w, http.StatusOK, notifications)
}

func (h *NotificationHandler) writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, notification.ErrMissingTitle),
		errors.Is(err, notification.ErrMissingMessage),
		errors.Is(err, notification.ErrInvalidTarget),
		errors.Is(err, notification.ErrMissingTargets):
		utils.WriteJSONError(w, err.Error(), http.StatusBadRequest)
	default:
		utils.WriteJSONError(w, "internal server error", http.StatusInternalServerError)
	}
}
