package transport

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"candyshop-be/internal/utils"
	"candyshop-be/internal/voucher"
)

type VoucherHandler struct {
	svc     voucher.Service
	applied *voucher.AppliedStore
}

func NewVoucherHandler(svc voucher.Service, applied *voucher.AppliedStore) *VoucherHandler {
	return &VoucherHandler{svc: svc, applied: applied}
}

func (h *VoucherHandler) List(w http.ResponseWriter, r *http.Request) {
	vouchers, err := h.svc.List(r.Context())
	if err != nil {
		utils.WriteJSONError(w, "failed to list vouchers", http.StatusInternalServerError)
		return
	}

	if page := pageParam(r); page > 0 {
		start, end := utils.PageBounds(len(vouchers), page, adminPageSize)
		utils.WriteJSON(w, http.StatusOK, pagedPayload(vouchers[start:end], page, len(vouchers)))
		return
	}
	utils.WriteJSON(w, http.StatusOK, vouchers)
}

func (h *VoucherHandler) ListActive(w http.ResponseWriter, r *http.Request) {
	vouchers, err := h.svc.Available(r.Context(), timeNow())
	if err != nil {
		utils.WriteJSONError(w, "failed to list vouchers", http.StatusInternalServerError)
		return
	}
	utils.WriteJSON(w, http.StatusOK, vouchers)
}

func (h *VoucherHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, mux.Vars(r))
	if !ok {
		utils.WriteJSONError(w, "invalid voucher id", http.StatusBadRequest)
		return
	}

	v, err := h.svc.GetByID(r.Context(), id)
	if err != nil {
		h.writeError(w, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, v)
}

func (h *VoucherHandler) GetByCode(w http.ResponseWriter, r *http.Request) {
	v, err := h.svc.GetByCode(r.Context(), mux.Vars(r)["code"])
	if err != nil {
		h.writeError(w, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, v)
}

func (h *VoucherHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input voucher.Input
	if !decodeBody(w, r, &input) {
		return
	}

	v, err := h.svc.Create(r.Context(), input)
	if err != nil {
		h.writeError(w, err)
		return
	}
	utils.WriteJSON(w, http.StatusCreated, v)
}

func (h *VoucherHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, mux.Vars(r))
	if !ok {
		utils.WriteJSONError(w, "invalid voucher id", http.StatusBadRequest)
		return
	}

	var input voucher.Input
	if !decodeBody(w, r, &input) {
		return
	}

	v, err := h.svc.Update(r.Context(), id, input)
	if err != nil {
		h.writeError(w, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, v)
}

func (h *VoucherHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, mux.Vars(r))
	if !ok {
		utils.WriteJSONError(w, "invalid voucher id", http.StatusBadRequest)
		return
	}

	if err := h.svc.Delete(r.Context(), id); err != nil {
		h.writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *VoucherHandler) Toggle(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, mux.Vars(r))
	if !ok {
		utils.WriteJSONError(w, "invalid voucher id", http.StatusBadRequest)
		return
	}

	v, err := h.svc.Toggle(r.Context(), id)
	if err != nil {
		h.writeError(w, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, v)
}

// Validate is public: checkout calls it before applying a code. An
// unusable voucher is a 200 with valid=false, not an error. The mobile
// client sends GET with a totalAmount query param; POST with a JSON
// body is accepted too.
func (h *VoucherHandler) Validate(w http.ResponseWriter, r *http.Request) {
	var total float64
	if r.Method == http.MethodGet {
		parsed, err := strconv.ParseFloat(r.URL.Query().Get("totalAmount"), 64)
		if err != nil {
			utils.WriteJSONError(w, "totalAmount is required", http.StatusBadRequest)
			return
		}
		total = parsed
	} else {
		var body struct {
			TotalAmount float64 `json:"totalAmount"`
		}
		if !decodeBody(w, r, &body) {
			return
		}
		total = body.TotalAmount
	}

	result, err := h.svc.Validate(r.Context(), mux.Vars(r)["code"], total)
	if err != nil {
		utils.WriteJSONError(w, "internal server error", http.StatusInternalServerError)
		return
	}
	utils.WriteJSON(w, http.StatusOK, result)
}

func (h *VoucherHandler) Applied(w http.ResponseWriter, r *http.Request) {
	owner := ownerFrom(r)
	if owner == "" {
		utils.WriteJSONError(w, "owner is required", http.StatusBadRequest)
		return
	}

	v, err := h.applied.Applied(r.Context(), owner)
	if err != nil {
		utils.WriteJSONError(w, "internal server error", http.StatusInternalServerError)
		return
	}
	utils.WriteJSON(w, http.StatusOK, v)
}

func (h *VoucherHandler) Apply(w http.ResponseWriter, r *http.Request) {
	owner := ownerFrom(r)
	if owner == "" {
		utils.WriteJSONError(w, "owner is required", http.StatusBadRequest)
		return
	}

	var body struct {
		Code string `json:"code"`
	}
	if !decodeBody(w, r, &body) {
		return
	}

	v, err := h.svc.GetByCode(r.Context(), body.Code)
	if err != nil {
		h.writeError(w, err)
		return
	}

	if err := h.applied.Apply(r.Context(), owner, v); err != nil {
		h.writeError(w, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, v)
}

func (h *VoucherHandler) RemoveApplied(w http.ResponseWriter, r *http.Request) {
	owner := ownerFrom(r)
	if owner == "" {
		utils.WriteJSONError(w, "owner is required", http.StatusBadRequest)
		return
	}

	if err := h.applied.Remove(r.Context(), owner); err != nil {
		h.writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *VoucherHandler) writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, voucher.ErrNotFound):
		utils.WriteJSONError(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, voucher.ErrInvalidCode),
		errors.Is(err, voucher.ErrInvalidKind),
		errors.Is(err, voucher.ErrAlreadyApplied),
		errors.Is(err, voucher.ErrNotApplied):
		utils.WriteJSONError(w, err.Error(), http.StatusBadRequest)
	default:
		utils.WriteJSONError(w, "internal server error", http.StatusInternalServerError)
	}
}
