package transport

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"candyshop-be/internal/cart"
	"candyshop-be/internal/utils"
)

type CartHandler struct {
	carts     *cart.Store
	favorites *cart.FavoritesStore
}

func NewCartHandler(carts *cart.Store, favorites *cart.FavoritesStore) *CartHandler {
	return &CartHandler{carts: carts, favorites: favorites}
}

type cartResponse struct {
	Lines []cart.Line `json:"lines"`
	Total float64     `json:"total"`
	Count int         `json:"count"`
	Units int         `json:"units"`
}

func newCartResponse(c *cart.Cart) cartResponse {
	return cartResponse{
		Lines: c.Lines,
		Total: c.Total(),
		Count: c.Count(),
		Units: c.Units(),
	}
}

func (h *CartHandler) Get(w http.ResponseWriter, r *http.Request) {
	c, err := h.carts.Get(r.Context(), ownerFrom(r))
	if err != nil {
		h.writeError(w, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, newCartResponse(c))
}

func (h *CartHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	var line cart.Line
	if !decodeBody(w, r, &line) {
		return
	}

	c, err := h.carts.AddItem(r.Context(), ownerFrom(r), line)
	if err != nil {
		h.writeError(w, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, newCartResponse(c))
}

func (h *CartHandler) UpdateQuantity(w http.ResponseWriter, r *http.Request) {
	productID, err := utils.ToUint(mux.Vars(r)["productId"])
	if err != nil {
		utils.WriteJSONError(w, "invalid product id", http.StatusBadRequest)
		return
	}

	var body struct {
		Quantity int `json:"quantity"`
	}
	if !decodeBody(w, r, &body) {
		return
	}

	c, err := h.carts.UpdateQuantity(r.Context(), ownerFrom(r), productID, body.Quantity)
	if err != nil {
		h.writeError(w, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, newCartResponse(c))
}

func (h *CartHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	productID, err := utils.ToUint(mux.Vars(r)["productId"])
	if err != nil {
		utils.WriteJSONError(w, "invalid product id", http.StatusBadRequest)
		return
	}

	c, err := h.carts.RemoveItem(r.Context(), ownerFrom(r), productID)
	if err != nil {
		h.writeError(w, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, newCartResponse(c))
}

func (h *CartHandler) Clear(w http.ResponseWriter, r *http.Request) {
	if err := h.carts.Clear(r.Context(), ownerFrom(r)); err != nil {
		h.writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *CartHandler) ListFavorites(w http.ResponseWriter, r *http.Request) {
	favorites, err := h.favorites.List(r.Context(), ownerFrom(r))
	if err != nil {
		h.writeError(w, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, favorites)
}

func (h *CartHandler) AddFavorite(w http.ResponseWriter, r *http.Request) {
	var fav cart.Favorite
	if !decodeBody(w, r, &fav) {
		return
	}

	if err := h.favorites.Add(r.Context(), ownerFrom(r), fav); err != nil {
		h.writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *CartHandler) RemoveFavorite(w http.ResponseWriter, r *http.Request) {
	productID, err := utils.ToUint(mux.Vars(r)["productId"])
	if err != nil {
		utils.WriteJSONError(w, "invalid product id", http.StatusBadRequest)
		return
	}

	if err := h.favorites.Remove(r.Context(), ownerFrom(r), productID); err != nil {
		h.writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *CartHandler) writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, cart.ErrLineNotFound):
		utils.WriteJSONError(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, cart.ErrMissingOwner),
		errors.Is(err, cart.ErrMissingProductID),
		errors.Is(err, cart.ErrInvalidQuantity),
		errors.Is(err, cart.ErrLimitExceeded):
		utils.WriteJSONError(w, err.Error(), http.StatusBadRequest)
	default:
		utils.WriteJSONError(w, "internal server error", http.StatusInternalServerError)
	}
}
