package transport

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"candyshop-be/internal/promotion"
	"candyshop-be/internal/utils"
)

type PromotionHandler struct {
	svc promotion.Service
}

func NewPromotionHandler(svc promotion.Service) *PromotionHandler {
	return &PromotionHandler{svc: svc}
}

func (h *PromotionHandler) List(w http.ResponseWriter, r *http.Request) {
	var (
		promotions []promotion.Promotion
		err        error
	)
	if r.URL.Query().Get("active") == "true" {
		promotions, err = h.svc.ListRunning(r.Context())
	} else {
		promotions, err = h.svc.List(r.Context())
	}
	if err != nil {
		utils.WriteJSONError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	if page := pageParam(r); page > 0 {
		start, end := utils.PageBounds(len(promotions), page, adminPageSize)
		utils.WriteJSON(w, http.StatusOK, pagedPayload(promotions[start:end], page, len(promotions)))
		return
	}
	utils.WriteJSON(w, http.StatusOK, promotions)
}

func (h *PromotionHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, mux.Vars(r))
	if !ok {
		utils.WriteJSONError(w, "invalid promotion id", http.StatusBadRequest)
		return
	}

	p, err := h.svc.GetByID(r.Context(), id)
	if err != nil {
		h.writeError(w, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, p)
}

func (h *PromotionHandler) Create(w http.ResponseWriter, r *http.Request) {
	var p promotion.Promotion
	if !decodeBody(w, r, &p) {
		return
	}

	created, err := h.svc.Create(r.Context(), &p)
	if err != nil {
		h.writeError(w, err)
		return
	}
	utils.WriteJSON(w, http.StatusCreated, created)
}

func (h *PromotionHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, mux.Vars(r))
	if !ok {
		utils.WriteJSONError(w, "invalid promotion id", http.StatusBadRequest)
		return
	}

	var p promotion.Promotion
	if !decodeBody(w, r, &p) {
		return
	}
	p.ID = id

	updated, err := h.svc.Update(r.Context(), &p)
	if err != nil {
		h.writeError(w, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, updated)
}

// Use records one redemption of the promotion.
func (h *PromotionHandler) Use(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, mux.Vars(r))
	if !ok {
		utils.WriteJSONError(w, "invalid promotion id", http.StatusBadRequest)
		return
	}

	p, err := h.svc.Use(r.Context(), id)
	if err != nil {
		h.writeError(w, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, p)
}

func (h *PromotionHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, mux.Vars(r))
	if !ok {
		utils.WriteJSONError(w, "invalid promotion id", http.StatusBadRequest)
		return
	}

	if err := h.svc.Delete(r.Context(), id); err != nil {
		h.writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *PromotionHandler) writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, promotion.ErrNotFound):
		utils.WriteJSONError(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, promotion.ErrMissingTitle),
		errors.Is(err, promotion.ErrInvalidWindow),
		errors.Is(err, promotion.ErrLimitReached):
		utils.WriteJSONError(w, err.Error(), http.StatusBadRequest)
	default:
		utils.WriteJSONError(w, "internal server error", http.StatusInternalServerError)
	}
}
