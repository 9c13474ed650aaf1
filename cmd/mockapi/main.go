// mockapi serves a static slice of the storefront catalog so the
// mobile client can be developed without postgres or redis running.
package main

import (
	"encoding/json"
	"flag"
	"log"
	"net/http"
)

type product struct {
	ID          uint    `json:"id"`
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	Image       string  `json:"image"`
	Description string  `json:"description"`
	Stock       int     `json:"stock"`
	CategoryID  uint    `json:"categoryId"`
}

type category struct {
	ID          uint   `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

type voucher struct {
	ID         uint    `json:"id"`
	Code       string  `json:"code"`
	Type       string  `json:"type"`
	Discount   float64 `json:"discount"`
	MinOrder   float64 `json:"minOrder"`
	ExpiryDate string  `json:"expiryDate"`
	IsActive   bool    `json:"isActive"`
}

var products = []product{
	{ID: 1, Name: "Gummy Bears", Price: 15000, Image: "/images/gummy-bears.png", Description: "Chewy fruit gummies", Stock: 120, CategoryID: 1},
	{ID: 2, Name: "Strawberry Lollipop", Price: 5000, Image: "/images/lollipop.png", Description: "Classic swirl pop", Stock: 200, CategoryID: 1},
	{ID: 3, Name: "Dark Chocolate Bar", Price: 45000, Image: "/images/choco-bar.png", Description: "70% cacao", Stock: 60, CategoryID: 2},
	{ID: 4, Name: "Milk Chocolate Truffles", Price: 85000, Image: "/images/truffles.png", Description: "Box of 12", Stock: 35, CategoryID: 2},
	{ID: 5, Name: "Sour Worms", Price: 18000, Image: "/images/sour-worms.png", Description: "Tangy and sweet", Stock: 90, CategoryID: 1},
	{ID: 6, Name: "Caramel Toffee", Price: 25000, Image: "/images/toffee.png", Description: "Buttery soft toffee", Stock: 75, CategoryID: 3},
}

var categories = []category{
	{ID: 1, Name: "Gummies", Description: "Soft and chewy"},
	{ID: 2, Name: "Chocolate", Description: "Bars and boxes"},
	{ID: 3, Name: "Toffee & Caramel", Description: "Slow-cooked classics"},
}

var vouchers = []voucher{
	{ID: 1, Code: "SWEET10", Type: "percent", Discount: 10, MinOrder: 50000, ExpiryDate: "2026-12-31T23:59:59Z", IsActive: true},
	{ID: 2, Code: "FREESHIP", Type: "fixed", Discount: 30000, MinOrder: 100000, ExpiryDate: "2026-12-31T23:59:59Z", IsActive: true},
}

func main() {
	port := flag.String("port", "8090", "listen port")
	flag.Parse()

	mux := http.NewServeMux()
	mux.HandleFunc("/api/health", serveJSON(map[string]string{"status": "ok"}))
	mux.HandleFunc("/api/products", serveJSON(products))
	mux.HandleFunc("/api/categories", serveJSON(categories))
	mux.HandleFunc("/api/vouchers", serveJSON(vouchers))

	log.Printf("mock API listening on :%s", *port)
	log.Fatal(http.ListenAndServe(":"+*port, cors(mux)))
}

func serveJSON(payload any) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(payload)
	}
}

func cors(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization, X-Device-ID")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}
