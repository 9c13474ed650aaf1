package transport

import (
	"context"
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"candyshop-be/internal/review"
	"candyshop-be/internal/utils"
)

type ReviewHandler struct {
	svc review.Service
}

func NewReviewHandler(svc review.Service) *ReviewHandler {
	return &ReviewHandler{svc: svc}
}

// ListByProduct defaults to approved reviews only; admins pass all=true
// to see the moderation queue.
func (h *ReviewHandler) ListByProduct(w http.ResponseWriter, r *http.Request) {
	productID, err := utils.ToUint(r.URL.Query().Get("productId"))
	if err != nil || productID == 0 {
		utils.WriteJSONError(w, "productId is required", http.StatusBadRequest)
		return
	}
	approvedOnly := r.URL.Query().Get("all") != "true"

	reviews, err := h.svc.ListByProduct(r.Context(), productID, approvedOnly)
	if err != nil {
		h.writeError(w, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, reviews)
}

func (h *ReviewHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input review.CreateInput
	if !decodeBody(w, r, &input) {
		return
	}

	rev, err := h.svc.Create(r.Context(), input)
	if err != nil {
		h.writeError(w, err)
		return
	}
	utils.WriteJSON(w, http.StatusCreated, rev)
}

func (h *ReviewHandler) Approve(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, mux.Vars(r))
	if !ok {
		utils.WriteJSONError(w, "invalid review id", http.StatusBadRequest)
		return
	}

	if err := h.svc.Approve(r.Context(), id); err != nil {
		h.writeError(w, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, map[string]string{"message": "review approved"})
}

func (h *ReviewHandler) Reject(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, mux.Vars(r))
	if !ok {
		utils.WriteJSONError(w, "invalid review id", http.StatusBadRequest)
		return
	}

	if err := h.svc.Reject(r.Context(), id); err != nil {
		h.writeError(w, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, map[string]string{"message": "review rejected"})
}

func (h *ReviewHandler) MarkHelpful(w http.ResponseWriter, r *http.Request) {
	h.vote(w, r, h.svc.MarkHelpful)
}

func (h *ReviewHandler) MarkUnhelpful(w http.ResponseWriter, r *http.Request) {
	h.vote(w, r, h.svc.MarkUnhelpful)
}

func (h *ReviewHandler) vote(w http.ResponseWriter, r *http.Request, mark func(ctx context.Context, id uint) error) {
	id, ok := pathID(r, mux.Vars(r))
	if !ok {
		utils.WriteJSONError(w, "invalid review id", http.StatusBadRequest)
		return
	}

	if err := mark(r.Context(), id); err != nil {
		h.writeError(w, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, map[string]string{"message": "vote recorded"})
}

func (h *ReviewHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, mux.Vars(r))
	if !ok {
		utils.WriteJSONError(w, "invalid review id", http.StatusBadRequest)
		return
	}

	if err := h.svc.Delete(r.Context(), id); err != nil {
		h.writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *ReviewHandler) writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, review.ErrNotFound):
		utils.WriteJSONError(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, review.ErrInvalidRating),
		errors.Is(err, review.ErrMissingProductID):
		utils.WriteJSONError(w, err.Error(), http.StatusBadRequest)
	default:
		utils.WriteJSONError(w, "internal server error", http.StatusInternalServerError)
	}
}
