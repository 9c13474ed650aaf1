package transport

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"candyshop-be/internal/product"
	"candyshop-be/internal/utils"
)

type ProductHandler struct {
	svc product.Service
}

func NewProductHandler(svc product.Service) *ProductHandler {
	return &ProductHandler{svc: svc}
}

func (h *ProductHandler) List(w http.ResponseWriter, r *http.Request) {
	filter := product.ListFilter{Search: r.URL.Query().Get("search")}
	if raw := r.URL.Query().Get("categoryId"); raw != "" {
		id, err := utils.ToUint(raw)
		if err != nil {
			utils.WriteJSONError(w, "invalid category id", http.StatusBadRequest)
			return
		}
		filter.CategoryID = &id
	}

	products, err := h.svc.List(r.Context(), filter)
	if err != nil {
		utils.WriteJSONError(w, "failed to list products", http.StatusInternalServerError)
		return
	}

	if page := pageParam(r); page > 0 {
		start, end := utils.PageBounds(len(products), page, adminPageSize)
		utils.WriteJSON(w, http.StatusOK, pagedPayload(products[start:end], page, len(products)))
		return
	}
	utils.WriteJSON(w, http.StatusOK, products)
}

func (h *ProductHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, mux.Vars(r))
	if !ok {
		utils.WriteJSONError(w, "invalid product id", http.StatusBadRequest)
		return
	}

	p, err := h.svc.GetByID(r.Context(), id)
	if err != nil {
		h.writeError(w, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, p)
}

func (h *ProductHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input product.CreateInput
	if !decodeBody(w, r, &input) {
		return
	}

	p, err := h.svc.Create(r.Context(), input)
	if err != nil {
		h.writeError(w, err)
		return
	}
	utils.WriteJSON(w, http.StatusCreated, p)
}

func (h *ProductHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, mux.Vars(r))
	if !ok {
		utils.WriteJSONError(w, "invalid product id", http.StatusBadRequest)
		return
	}

	var input product.UpdateInput
	if !decodeBody(w, r, &input) {
		return
	}

	p, err := h.svc.Update(r.Context(), id, input)
	if err != nil {
		h.writeError(w, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, p)
}

func (h *ProductHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, mux.Vars(r))
	if !ok {
		utils.WriteJSONError(w, "invalid product id", http.StatusBadRequest)
		return
	}

	if err := h.svc.Delete(r.Context(), id); err != nil {
		h.writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *ProductHandler) writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, product.ErrNotFound):
		utils.WriteJSONError(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, product.ErrInvalidName), errors.Is(err, product.ErrInvalidPrice):
		utils.WriteJSONError(w, err.Error(), http.StatusBadRequest)
	default:
		utils.WriteJSONError(w, "internal server error", http.StatusInternalServerError)
	}
}
