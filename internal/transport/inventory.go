package transport

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"candyshop-be/internal/inventory"
	"candyshop-be/internal/utils"
)

type InventoryHandler struct {
	svc inventory.Service
}

func NewInventoryHandler(svc inventory.Service) *InventoryHandler {
	return &InventoryHandler{svc: svc}
}

func (h *InventoryHandler) List(w http.ResponseWriter, r *http.Request) {
	records, err := h.svc.List(r.Context())
	if err != nil {
		utils.WriteJSONError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	if page := pageParam(r); page > 0 {
		start, end := utils.PageBounds(len(records), page, adminPageSize)
		utils.WriteJSON(w, http.StatusOK, pagedPayload(records[start:end], page, len(records)))
		return
	}
	utils.WriteJSON(w, http.StatusOK, records)
}

func (h *InventoryHandler) Get(w http.ResponseWriter, r *http.Request) {
	productID, err := utils.ToUint(mux.Vars(r)["productId"])
	if err != nil {
		utils.WriteJSONError(w, "invalid product id", http.StatusBadRequest)
		return
	}

	rec, err := h.svc.GetByProductID(r.Context(), productID)
	if err != nil {
		h.writeError(w, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, rec)
}

func (h *InventoryHandler) Track(w http.ResponseWriter, r *http.Request) {
	var rec inventory.Record
	if !decodeBody(w, r, &rec) {
		return
	}

	created, err := h.svc.Track(r.Context(), &rec)
	if err != nil {
		h.writeError(w, err)
		return
	}
	utils.WriteJSON(w, http.StatusCreated, created)
}

func (h *InventoryHandler) Adjust(w http.ResponseWriter, r *http.Request) {
	productID, err := utils.ToUint(mux.Vars(r)["productId"])
	if err != nil {
		utils.WriteJSONError(w, "invalid product id", http.StatusBadRequest)
		return
	}

	var input inventory.AdjustInput
	if !decodeBody(w, r, &input) {
		return
	}

	rec, err := h.svc.Adjust(r.Context(), productID, input)
	if err != nil {
		h.writeError(w, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, rec)
}

func (h *InventoryHandler) Restock(w http.ResponseWriter, r *http.Request) {
	productID, err := utils.ToUint(mux.Vars(r)["productId"])
	if err != nil {
		utils.WriteJSONError(w, "invalid product id", http.StatusBadRequest)
		return
	}

	var body struct {
		Amount int     `json:"amount"`
		Reason *string `json:"reason"`
	}
	if !decodeBody(w, r, &body) {
		return
	}

	rec, err := h.svc.Restock(r.Context(), productID, body.Amount, body.Reason)
	if err != nil {
		h.writeError(w, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, rec)
}

func (h *InventoryHandler) writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, inventory.ErrNotFound):
		utils.WriteJSONError(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, inventory.ErrInvalidQuantity),
		errors.Is(err, inventory.ErrInvalidRestock):
		utils.WriteJSONError(w, err.Error(), http.StatusBadRequest)
	default:
		utils.WriteJSONError(w, "internal server error", http.StatusInternalServerError)
	}
}
