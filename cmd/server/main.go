package main

import (
	"context"
	"log"
	"net/http"

	"go.uber.org/zap"

	"candyshop-be/internal/address"
	"candyshop-be/internal/cart"
	"candyshop-be/internal/category"
	"candyshop-be/internal/config"
	"candyshop-be/internal/db"
	"candyshop-be/internal/inventory"
	"candyshop-be/internal/kvstore"
	"candyshop-be/internal/logger"
	"candyshop-be/internal/middleware"
	"candyshop-be/internal/notification"
	"candyshop-be/internal/order"
	"candyshop-be/internal/product"
	"candyshop-be/internal/promotion"
	"candyshop-be/internal/review"
	"candyshop-be/internal/transport"
	"candyshop-be/internal/user"
	"candyshop-be/internal/voucher"
)

func main() {
	cfg := config.LoadConfig()
	logger.Init(cfg.AppEnv)
	defer logger.Sync()

	database := db.InitDB(cfg)
	defer database.Close()

	kv := openKV(cfg)

	carts := cart.NewStore(kv)
	favorites := cart.NewFavoritesStore(kv)
	applied := voucher.NewAppliedStore(kv)
	phones := order.NewPhoneCache(kv)
	addresses := address.NewStore(kv)

	productSvc := product.NewService(product.NewRepository(database))
	categorySvc := category.NewService(category.NewRepository(database))
	voucherSvc := voucher.NewService(voucher.NewRepository(database))
	orderSvc := order.NewService(order.NewRepository(database), carts, phones, voucher.NewRedeemer(voucherSvc, applied))
	userSvc := user.NewService(user.NewRepository(database))
	notifySvc := notification.NewService(notification.NewRepository(database))
	inventorySvc := inventory.NewService(inventory.NewRepository(database))
	reviewSvc := review.NewService(review.NewRepository(database))
	promotionSvc := promotion.NewService(promotion.NewRepository(database))

	router := transport.NewRouter(transport.Handlers{
		Products:      transport.NewProductHandler(productSvc),
		Categories:    transport.NewCategoryHandler(categorySvc),
		Vouchers:      transport.NewVoucherHandler(voucherSvc, applied),
		Carts:         transport.NewCartHandler(carts, favorites),
		Orders:        transport.NewOrderHandler(orderSvc),
		Users:         transport.NewUserHandler(userSvc),
		Notifications: transport.NewNotificationHandler(notifySvc),
		Inventory:     transport.NewInventoryHandler(inventorySvc),
		Reviews:       transport.NewReviewHandler(reviewSvc),
		Promotions:    transport.NewPromotionHandler(promotionSvc),
		Addresses:     transport.NewAddressHandler(addresses),
	})

	logger.L().Info("candy shop API listening", zap.String("port", cfg.AppPort))
	log.Fatal(http.ListenAndServe(":"+cfg.AppPort, middleware.Stack(router)))
}

// openKV prefers redis and falls back to the in-process store so the
// API stays usable in local development without a redis instance.
func openKV(cfg *config.Config) kvstore.Store {
	if cfg.RedisAddr == "" {
		return kvstore.NewMemory()
	}

	kv, err := kvstore.NewRedis(context.Background(), cfg.RedisAddr, cfg.RedisPassword)
	if err != nil {
		logger.L().Warn("redis unavailable, using in-memory store", zap.Error(err))
		return kvstore.NewMemory()
	}
	return kv
}
