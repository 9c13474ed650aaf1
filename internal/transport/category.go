package transport

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"candyshop-be/internal/category"
	"candyshop-be/internal/utils"
)

type CategoryHandler struct {
	svc category.Service
}

func NewCategoryHandler(svc category.Service) *CategoryHandler {
	return &CategoryHandler{svc: svc}
}

func (h *CategoryHandler) List(w http.ResponseWriter, r *http.Request) {
	var filter *string
	if search := r.URL.Query().Get("search"); search != "" {
		filter = &search
	}

	categories, err := h.svc.List(r.Context(), filter)
	if err != nil {
		utils.WriteJSONError(w, "failed to list categories", http.StatusInternalServerError)
		return
	}

	if page := pageParam(r); page > 0 {
		start, end := utils.PageBounds(len(categories), page, adminPageSize)
		utils.WriteJSON(w, http.StatusOK, pagedPayload(categories[start:end], page, len(categories)))
		return
	}
	utils.WriteJSON(w, http.StatusOK, categories)
}

func (h *CategoryHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, mux.Vars(r))
	if !ok {
		utils.WriteJSONError(w, "invalid category id", http.StatusBadRequest)
		return
	}

	c, err := h.svc.GetByID(r.Context(), id)
	if err != nil {
		h.writeError(w, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, c)
}

func (h *CategoryHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input category.Input
	if !decodeBody(w, r, &input) {
		return
	}

	c, err := h.svc.Create(r.Context(), input)
	if err != nil {
		h.writeError(w, err)
		return
	}
	utils.WriteJSON(w, http.StatusCreated, c)
}

func (h *CategoryHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, mux.Vars(r))
	if !ok {
		utils.WriteJSONError(w, "invalid category id", http.StatusBadRequest)
		return
	}

	var input category.Input
	if !decodeBody(w, r, &input) {
		return
	}

	c, err := h.svc.Update(r.Context(), id, input)
	if err != nil {
		h.writeError(w, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, c)
}

func (h *CategoryHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, mux.Vars(r))
	if !ok {
		utils.WriteJSONError(w, "invalid category id", http.StatusBadRequest)
		return
	}

	if err := h.svc.Delete(r.Context(), id); err != nil {
		h.writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *CategoryHandler) writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, category.ErrNotFound):
		utils.WriteJSONError(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, category.ErrInvalidName):
		utils.WriteJSONError(w, err.Error(), http.StatusBadRequest)
	default:
		utils.WriteJSONError(w, "internal server error", http.StatusInternalServerError)
	}
}
