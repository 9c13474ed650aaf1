package transport

import (
	"net/http"

	"github.com/gorilla/mux"

	"candyshop-be/internal/middleware"
	"candyshop-be/internal/user"
	"candyshop-be/internal/utils"
)

type Handlers struct {
	Products      *ProductHandler
	Categories    *CategoryHandler
	Vouchers      *VoucherHandler
	Carts         *CartHandler
	Orders        *OrderHandler
	Users         *UserHandler
	Notifications *NotificationHandler
	Inventory     *InventoryHandler
	Reviews       *ReviewHandler
	Promotions    *PromotionHandler
	Addresses     *AddressHandler
}

// NewRouter wires the API surface. Admin-only mutations sit behind the
// role check; everything else is open to the storefront client.
func NewRouter(h Handlers) *mux.Router {
	r := mux.NewRouter()
	api := r.PathPrefix("/api").Subrouter()

	admin := func(next http.HandlerFunc) http.HandlerFunc {
		return middleware.RequireRole(user.RoleAdmin, next)
	}

	api.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		utils.WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}).Methods(http.MethodGet)

	// products
	api.HandleFunc("/products", h.Products.List).Methods(http.MethodGet)
	api.HandleFunc("/products", admin(h.Products.Create)).Methods(http.MethodPost)
	api.HandleFunc("/products/{id}", h.Products.Get).Methods(http.MethodGet)
	api.HandleFunc("/products/{id}", admin(h.Products.Update)).Methods(http.MethodPut)
	api.HandleFunc("/products/{id}", admin(h.Products.Delete)).Methods(http.MethodDelete)

	// categories
	api.HandleFunc("/categories", h.Categories.List).Methods(http.MethodGet)
	api.HandleFunc("/categories", admin(h.Categories.Create)).Methods(http.MethodPost)
	api.HandleFunc("/categories/{id}", h.Categories.Get).Methods(http.MethodGet)
	api.HandleFunc("/categories/{id}", admin(h.Categories.Update)).Methods(http.MethodPut)
	api.HandleFunc("/categories/{id}", admin(h.Categories.Delete)).Methods(http.MethodDelete)

	// vouchers; static segments must register before the {id} routes
	api.HandleFunc("/vouchers", h.Vouchers.List).Methods(http.MethodGet)
	api.HandleFunc("/vouchers", admin(h.Vouchers.Create)).Methods(http.MethodPost)
	api.HandleFunc("/vouchers/active", h.Vouchers.ListActive).Methods(http.MethodGet)
	api.HandleFunc("/vouchers/applied", h.Vouchers.Applied).Methods(http.MethodGet)
	api.HandleFunc("/vouchers/applied", h.Vouchers.Apply).Methods(http.MethodPost)
	api.HandleFunc("/vouchers/applied", h.Vouchers.RemoveApplied).Methods(http.MethodDelete)
	api.HandleFunc("/vouchers/code/{code}", h.Vouchers.GetByCode).Methods(http.MethodGet)
	api.HandleFunc("/vouchers/{code}/validate", h.Vouchers.Validate).Methods(http.MethodGet, http.MethodPost)
	api.HandleFunc("/vouchers/{id:[0-9]+}", h.Vouchers.Get).Methods(http.MethodGet)
	api.HandleFunc("/vouchers/{id:[0-9]+}", admin(h.Vouchers.Update)).Methods(http.MethodPut)
	api.HandleFunc("/vouchers/{id:[0-9]+}", admin(h.Vouchers.Delete)).Methods(http.MethodDelete)
	api.HandleFunc("/vouchers/{id:[0-9]+}/toggle", admin(h.Vouchers.Toggle)).Methods(http.MethodPatch)

	// cart and favorites
	api.HandleFunc("/cart", h.Carts.Get).Methods(http.MethodGet)
	api.HandleFunc("/cart", h.Carts.Clear).Methods(http.MethodDelete)
	api.HandleFunc("/cart/items", h.Carts.AddItem).Methods(http.MethodPost)
	api.HandleFunc("/cart/items/{productId}", h.Carts.UpdateQuantity).Methods(http.MethodPut)
	api.HandleFunc("/cart/items/{productId}", h.Carts.RemoveItem).Methods(http.MethodDelete)
	api.HandleFunc("/favorites", h.Carts.ListFavorites).Methods(http.MethodGet)
	api.HandleFunc("/favorites", h.Carts.AddFavorite).Methods(http.MethodPost)
	api.HandleFunc("/favorites/{productId}", h.Carts.RemoveFavorite).Methods(http.MethodDelete)

	// checkout and orders
	api.HandleFunc("/checkout/quote", h.Orders.Quote).Methods(http.MethodGet)
	api.HandleFunc("/orders", h.Orders.List).Methods(http.MethodGet)
	api.HandleFunc("/orders", h.Orders.Place).Methods(http.MethodPost)
	api.HandleFunc("/orders/{id}", h.Orders.Get).Methods(http.MethodGet)
	api.HandleFunc("/orders/{id}/confirm-payment", h.Orders.ConfirmPayment).Methods(http.MethodPost)
	api.HandleFunc("/orders/{id}/status", admin(h.Orders.UpdateStatus)).Methods(http.MethodPut)

	// auth and users
	api.HandleFunc("/auth/register", h.Users.Register).Methods(http.MethodPost)
	api.HandleFunc("/auth/login", h.Users.Login).Methods(http.MethodPost)
	api.HandleFunc("/auth/forgot-password", h.Users.ForgotPassword).Methods(http.MethodPost)
	api.HandleFunc("/auth/reset-password", h.Users.ResetPassword).Methods(http.MethodPost)
	api.HandleFunc("/users", admin(h.Users.List)).Methods(http.MethodGet)
	api.HandleFunc("/users/{id}", h.Users.Get).Methods(http.MethodGet)
	api.HandleFunc("/users/{id}", admin(h.Users.Update)).Methods(http.MethodPut)
	api.HandleFunc("/users/{id}", admin(h.Users.Delete)).Methods(http.MethodDelete)

	// notifications
	api.HandleFunc("/admin/notifications/send", admin(h.Notifications.Send)).Methods(http.MethodPost)
	api.HandleFunc("/admin/notifications", admin(h.Notifications.List)).Methods(http.MethodGet)
	api.HandleFunc("/notifications/new", h.Notifications.New).Methods(http.MethodGet)

	// inventory
	api.HandleFunc("/inventory", admin(h.Inventory.List)).Methods(http.MethodGet)
	api.HandleFunc("/inventory", admin(h.Inventory.Track)).Methods(http.MethodPost)
	api.HandleFunc("/inventory/{productId}", admin(h.Inventory.Get)).Methods(http.MethodGet)
	api.HandleFunc("/inventory/{productId}/adjust", admin(h.Inventory.Adjust)).Methods(http.MethodPut)
	api.HandleFunc("/inventory/{productId}/restock", admin(h.Inventory.Restock)).Methods(http.MethodPost)

	// reviews
	api.HandleFunc("/reviews", h.Reviews.ListByProduct).Methods(http.MethodGet)
	api.HandleFunc("/reviews", h.Reviews.Create).Methods(http.MethodPost)
	api.HandleFunc("/reviews/{id}/approve", admin(h.Reviews.Approve)).Methods(http.MethodPatch)
	api.HandleFunc("/reviews/{id}/reject", admin(h.Reviews.Reject)).Methods(http.MethodPatch)
	api.HandleFunc("/reviews/{id}/helpful", h.Reviews.MarkHelpful).Methods(http.MethodPut)
	api.HandleFunc("/reviews/{id}/unhelpful", h.Reviews.MarkUnhelpful).Methods(http.MethodPut)
	api.HandleFunc("/reviews/{id}", admin(h.Reviews.Delete)).Methods(http.MethodDelete)

	// promotions
	api.HandleFunc("/promotions", h.Promotions.List).Methods(http.MethodGet)
	api.HandleFunc("/promotions", admin(h.Promotions.Create)).Methods(http.MethodPost)
	api.HandleFunc("/promotions/{id}", h.Promotions.Get).Methods(http.MethodGet)
	api.HandleFunc("/promotions/{id}/use", h.Promotions.Use).Methods(http.MethodPut)
	api.HandleFunc("/promotions/{id}", admin(h.Promotions.Update)).Methods(http.MethodPut)
	api.HandleFunc("/promotions/{id}", admin(h.Promotions.Delete)).Methods(http.MethodDelete)

	// addresses
	api.HandleFunc("/addresses", h.Addresses.List).Methods(http.MethodGet)
	api.HandleFunc("/addresses", h.Addresses.Add).Methods(http.MethodPost)
	api.HandleFunc("/addresses/{id}", h.Addresses.Update).Methods(http.MethodPut)
	api.HandleFunc("/addresses/{id}", h.Addresses.Delete).Methods(http.MethodDelete)
	api.HandleFunc("/addresses/{id}/default", h.Addresses.SetDefault).Methods(http.MethodPatch)

	return r
}
