package transport

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"candyshop-be/internal/order"
	"candyshop-be/internal/utils"
)

type OrderHandler struct {
	svc order.Service
}

func NewOrderHandler(svc order.Service) *OrderHandler {
	return &OrderHandler{svc: svc}
}

func (h *OrderHandler) Quote(w http.ResponseWriter, r *http.Request) {
	owner := ownerFrom(r)
	if owner == "" {
		utils.WriteJSONError(w, "owner is required", http.StatusBadRequest)
		return
	}

	quote, err := h.svc.Quote(r.Context(), owner)
	if err != nil {
		h.writeError(w, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, quote)
}

func (h *OrderHandler) Place(w http.ResponseWriter, r *http.Request) {
	var input order.PlaceOrderInput
	if !decodeBody(w, r, &input) {
		return
	}
	input.Owner = ownerFrom(r)

	o, err := h.svc.PlaceOrder(r.Context(), input)
	if err != nil {
		h.writeError(w, err)
		return
	}
	utils.WriteJSON(w, http.StatusCreated, o)
}

func (h *OrderHandler) List(w http.ResponseWriter, r *http.Request) {
	filter := order.ListFilter{Phone: r.URL.Query().Get("phone")}
	if raw := r.URL.Query().Get("status"); raw != "" {
		status := order.Status(raw)
		if !order.ValidStatus(status) {
			utils.WriteJSONError(w, order.ErrInvalidStatus.Error(), http.StatusBadRequest)
			return
		}
		filter.Status = &status
	}

	orders, err := h.svc.List(r.Context(), filter)
	if err != nil {
		h.writeError(w, err)
		return
	}

	if page := pageParam(r); page > 0 {
		start, end := utils.PageBounds(len(orders), page, adminPageSize)
		utils.WriteJSON(w, http.StatusOK, pagedPayload(orders[start:end], page, len(orders)))
		return
	}
	utils.WriteJSON(w, http.StatusOK, orders)
}

func (h *OrderHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, mux.Vars(r))
	if !ok {
		utils.WriteJSONError(w, "invalid order id", http.StatusBadRequest)
		return
	}

	o, err := h.svc.GetByID(r.Context(), id)
	if err != nil {
		h.writeError(w, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, o)
}

func (h *OrderHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, mux.Vars(r))
	if !ok {
		utils.WriteJSONError(w, "invalid order id", http.StatusBadRequest)
		return
	}

	var body struct {
		Status order.Status `json:"status"`
	}
	if !decodeBody(w, r, &body) {
		return
	}

	o, err := h.svc.UpdateStatus(r.Context(), id, body.Status)
	if err != nil {
		h.writeError(w, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, o)
}

func (h *OrderHandler) ConfirmPayment(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, mux.Vars(r))
	if !ok {
		utils.WriteJSONError(w, "invalid order id", http.StatusBadRequest)
		return
	}

	o, err := h.svc.ConfirmPayment(r.Context(), id)
	if err != nil {
		h.writeError(w, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, o)
}

func (h *OrderHandler) writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, order.ErrNotFound):
		utils.WriteJSONError(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, order.ErrMissingOwner),
		errors.Is(err, order.ErrMissingName),
		errors.Is(err, order.ErrMissingPhone),
		errors.Is(err, order.ErrMissingAddress),
		errors.Is(err, order.ErrInvalidPhone),
		errors.Is(err, order.ErrInvalidMethod),
		errors.Is(err, order.ErrEmptyCart),
		errors.Is(err, order.ErrInvalidStatus),
		errors.Is(err, order.ErrInvalidTransition),
		errors.Is(err, order.ErrNotPending):
		utils.WriteJSONError(w, err.Error(), http.StatusBadRequest)
	default:
		utils.WriteJSONError(w, "internal server error", http.StatusInternalServerError)
	}
}
