package container

import (
	"context"
	"fmt"
	"time"

	"smartshop-backend/internal/config"
	infraCatalog "smartshop-backend/internal/infrastructure/catalog"
	infraStorage "smartshop-backend/internal/infrastructure/storage"
	"smartshop-backend/pkg/logger"
	"smartshop-backend/pkg/storage"

	cartHandler "smartshop-backend/internal/domains/cart/handler"
	cartService "smartshop-backend/internal/domains/cart/service"
	cartStore "smartshop-backend/internal/domains/cart/store"
	catalogHandler "smartshop-backend/internal/domains/catalog/handler"
	catalogService "smartshop-backend/internal/domains/catalog/service"
	contactHandler "smartshop-backend/internal/domains/contact/handler"
	"smartshop-backend/internal/domains/coupon"
	reviewHandler "smartshop-backend/internal/domains/review/handler"
	reviewService "smartshop-backend/internal/domains/review/service"
	"smartshop-backend/internal/domains/wallet"
	walletHandler "smartshop-backend/internal/domains/wallet/handler"
)

// ========================================
// CONTAINER STRUCT
// ========================================

// Container holds every dependency of the application and is the root
// of the dependency graph. Everything in it is a singleton for the
// process lifetime.
type Container struct {
	// Infrastructure
	Config  *config.Config
	Storage storage.Store // key-value persistence (Redis or in-memory fallback)

	// State owners
	CartStore *cartStore.Store
	Ledger    *wallet.Ledger
	Coupons   *coupon.Validator

	// Services
	CatalogService catalogService.ServiceInterface
	ReviewService  *reviewService.ReviewService
	CartService    cartService.ServiceInterface

	// Handlers
	CatalogHandler *catalogHandler.Handler
	ReviewHandler  *reviewHandler.Handler
	CartHandler    *cartHandler.Handler
	WalletHandler  *walletHandler.Handler
	ContactHandler *contactHandler.Handler
}

// ========================================
// CONSTRUCTOR: BUILD CONTAINER
// ========================================

// NewContainer initializes the whole dependency graph, in order:
//
//  1. Config (depends on nothing)
//  2. Storage (Redis; degrades to in-memory when unreachable)
//  3. External retrievals (catalog, reviews) with graceful fallbacks
//  4. State owners (cart store, ledger, coupon validator)
//  5. Services
//  6. Handlers
func NewContainer() (*Container, error) {
	c := &Container{}

	// ========================================
	// STEP 1: LOAD CONFIGURATION
	// ========================================
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	c.Config = cfg

	// ========================================
	// STEP 2: CONNECT KEY-VALUE STORAGE
	// ========================================
	// Redis is the durable layer for the two persisted keys. If it is
	// unreachable the shop still opens, on a process-local store: the
	// persisted state is best-effort by design.
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	redisStore := infraStorage.NewRedisStore(cfg.Redis.Host, cfg.Redis.Password, cfg.Redis.DB)
	if err := redisStore.Connect(ctx); err != nil {
		logger.Warn("Redis unavailable, falling back to in-memory storage", err)
		c.Storage = infraStorage.NewMemoryStore()
	} else {
		c.Storage = redisStore
	}

	// ========================================
	// STEP 3: FETCH CATALOG & REVIEWS
	// ========================================
	// Both are fetched once and held immutable for the session.
	// Failure is non-fatal: empty catalog, placeholder review.
	catalogClient := infraCatalog.NewClient(cfg.Catalog.ProductsURL)
	products, err := catalogClient.FetchProducts(ctx)
	if err != nil {
		logger.Error("Products load failed, starting with empty catalog", err)
		products = nil
	}
	c.CatalogService = catalogService.NewCatalogService(products)
	logger.Info("Catalog loaded", map[string]interface{}{"products": c.CatalogService.Size()})

	c.ReviewService = reviewService.NewReviewService(cfg.Catalog.ReviewsPath)

	// ========================================
	// STEP 4: RESTORE PERSISTED STATE
	// ========================================
	c.CartStore = cartStore.NewStore(ctx, c.Storage)
	c.Ledger = wallet.NewLedger(ctx, c.Storage, cfg.Store.StartingBalance, cfg.Store.AddFundsIncrement)
	c.Coupons = coupon.NewValidator(cfg.Store.CouponCode, cfg.Store.CouponRate)

	// ========================================
	// STEP 5: SERVICES
	// ========================================
	quoter := cartService.NewQuoter(cfg.Store.DeliveryFee, cfg.Store.ShippingFee)
	c.CartService = cartService.NewCartService(c.CartStore, c.CatalogService, c.Ledger, c.Coupons, quoter)

	// ========================================
	// STEP 6: HANDLERS
	// ========================================
	c.CatalogHandler = catalogHandler.NewHandler(c.CatalogService)
	c.ReviewHandler = reviewHandler.NewHandler(c.ReviewService)
	c.CartHandler = cartHandler.NewHandler(c.CartService)
	c.WalletHandler = walletHandler.NewHandler(c.Ledger)
	c.ContactHandler = contactHandler.NewHandler()

	return c, nil
}

// Cleanup releases infrastructure connections on shutdown.
func (c *Container) Cleanup() {
	if c.Storage != nil {
		if err := c.Storage.Close(); err != nil {
			logger.Warn("Failed to close storage", err)
		}
	}
}
