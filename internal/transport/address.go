package transport

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"candyshop-be/internal/address"
	"candyshop-be/internal/utils"
)

type AddressHandler struct {
	store *address.Store
}

func NewAddressHandler(store *address.Store) *AddressHandler {
	return &AddressHandler{store: store}
}

func (h *AddressHandler) List(w http.ResponseWriter, r *http.Request) {
	book, err := h.store.List(r.Context(), ownerFrom(r))
	if err != nil {
		h.writeError(w, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, book)
}

func (h *AddressHandler) Add(w http.ResponseWriter, r *http.Request) {
	var addr address.Address
	if !decodeBody(w, r, &addr) {
		return
	}

	added, err := h.store.Add(r.Context(), ownerFrom(r), addr)
	if err != nil {
		h.writeError(w, err)
		return
	}
	utils.WriteJSON(w, http.StatusCreated, added)
}

func (h *AddressHandler) Update(w http.ResponseWriter, r *http.Request) {
	var addr address.Address
	if !decodeBody(w, r, &addr) {
		return
	}
	addr.ID = mux.Vars(r)["id"]

	updated, err := h.store.Update(r.Context(), ownerFrom(r), addr)
	if err != nil {
		h.writeError(w, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, updated)
}

func (h *AddressHandler) SetDefault(w http.ResponseWriter, r *http.Request) {
	err := h.store.SetDefault(r.Context(), ownerFrom(r), mux.Vars(r)["id"])
	if err != nil {
		h.writeError(w, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, map[string]string{"message": "default updated"})
}

func (h *AddressHandler) Delete(w http.ResponseWriter, r *http.Request) {
	err := h.store.Delete(r.Context(), ownerFrom(r), mux.Vars(r)["id"])
	if err != nil {
		h.writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *AddressHandler) writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, address.ErrNotFound):
		utils.WriteJSONError(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, address.ErrMissingOwner),
		errors.Is(err, address.ErrMissingStreet):
		utils.WriteJSONError(w, err.Error(), http.StatusBadRequest)
	default:
		utils.WriteJSONError(w, "internal server error", http.StatusInternalServerError)
	}
}
