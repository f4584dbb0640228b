package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/gorravana/boutique-backend/api/controllers"
	"github.com/gorravana/boutique-backend/api/middleware"
	authsvc "github.com/gorravana/boutique-backend/internal/auth"
	cartsvc "github.com/gorravana/boutique-backend/internal/cart"
	"github.com/gorravana/boutique-backend/internal/catalog"
	checkoutsvc "github.com/gorravana/boutique-backend/internal/checkout"
	"github.com/gorravana/boutique-backend/internal/notifications"
	"github.com/gorravana/boutique-backend/internal/orders"
	"github.com/gorravana/boutique-backend/internal/shipping"
	wishlistsvc "github.com/gorravana/boutique-backend/internal/wishlist"
	"github.com/gorravana/boutique-backend/pkg/config"
	"github.com/gorravana/boutique-backend/pkg/db"
	"github.com/gorravana/boutique-backend/pkg/logger"
	"github.com/gorravana/boutique-backend/pkg/redis"
)

type Services struct {
	Catalog       catalog.Service
	Cart          *cartsvc.Service
	Wishlist      *wishlistsvc.Service
	Checkout      checkoutsvc.Service
	Orders        orders.Service
	Notifications notifications.Service
	Auth          authsvc.Service
	Shipping      *shipping.Calculator
}

func NewRouter(
	cfg *config.Config,
	logg *logger.Logger,
	dbP db.Pinger,
	redisClient *redis.Client,
	svcs Services,
	promRegistry *prometheus.Registry,
) http.Handler {
	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.CORS(),
	)

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, logg, dbP, redisClient))
	})

	if promRegistry != nil {
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(promRegistry, promhttp.HandlerOpts{}))
	}

	// Public storefront surface. Everything here keys off the anonymous
	// session id, not an account.
	r.Route("/api/v1", func(r chi.Router) {
		r.Use(middleware.Session(logg))

		r.Route("/catalog", func(r chi.Router) {
			r.Get("/products", controllers.ListProducts(svcs.Catalog, logg))
			r.Get("/products/{productId}", controllers.GetProduct(svcs.Catalog, logg))
			r.Get("/brands", controllers.ListBrands(svcs.Catalog, logg))
			r.Get("/brands/{slug}", controllers.GetBrandBySlug(svcs.Catalog, logg))
			r.Get("/pins", controllers.ListPins(svcs.Catalog, logg))
			r.Get("/cases", controllers.ListCases(svcs.Catalog, logg))
			r.Get("/menu-categories", controllers.ListMenuCategories(svcs.Catalog, logg))
		})

		r.Route("/cart", func(r chi.Router) {
			r.Get("/", controllers.CartFetch(svcs.Cart, logg))
			r.Post("/items", controllers.CartAdd(svcs.Cart, svcs.Catalog, logg))
			r.Patch("/items/{ref}", controllers.CartUpdateQuantity(svcs.Cart, logg))
			r.Delete("/items/{ref}", controllers.CartRemove(svcs.Cart, logg))
			r.Delete("/", controllers.CartClear(svcs.Cart, logg))
		})

		r.Route("/wishlist", func(r chi.Router) {
			r.Get("/", controllers.WishlistFetch(svcs.Wishlist, logg))
			r.Post("/toggle", controllers.WishlistToggle(svcs.Wishlist, svcs.Catalog, logg))
		})

		r.Route("/checkout", func(r chi.Router) {
			r.Get("/regions", controllers.ShippingRegions(svcs.Shipping))
			r.Post("/quote", controllers.CheckoutQuote(svcs.Checkout, logg))
			r.Post("/", controllers.CheckoutSubmit(svcs.Checkout, logg))
		})
	})

	r.Route("/api/admin/v1", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.Post("/login", controllers.AdminLogin(svcs.Auth, logg))
			r.Post("/verify", controllers.AdminVerifyCode(svcs.Auth, logg))
		})

		r.Group(func(r chi.Router) {
			r.Use(middleware.AdminAuth(cfg.JWT, logg))

			r.Route("/catalog", func(r chi.Router) {
				r.Route("/products", func(r chi.Router) {
					r.Get("/", controllers.AdminListProducts(svcs.Catalog, logg))
					r.Post("/", controllers.AdminCreateProduct(svcs.Catalog, logg))
					r.Patch("/{productId}", controllers.AdminUpdateProduct(svcs.Catalog, logg))
					r.Delete("/{productId}", controllers.AdminDeleteProduct(svcs.Catalog, logg))
				})
				r.Route("/brands", func(r chi.Router) {
					r.Get("/", controllers.AdminListBrands(svcs.Catalog, logg))
					r.Post("/", controllers.AdminCreateBrand(svcs.Catalog, logg))
					r.Patch("/{brandId}", controllers.AdminUpdateBrand(svcs.Catalog, logg))
					r.Delete("/{brandId}", controllers.AdminDeleteBrand(svcs.Catalog, logg))
					r.Post("/items", controllers.AdminCreateBrandItem(svcs.Catalog, logg))
					r.Patch("/items/{itemId}", controllers.AdminUpdateBrandItem(svcs.Catalog, logg))
					r.Delete("/items/{itemId}", controllers.AdminDeleteBrandItem(svcs.Catalog, logg))
				})
				r.Route("/pins", func(r chi.Router) {
					r.Get("/", controllers.AdminListPins(svcs.Catalog, logg))
					r.Post("/", controllers.AdminCreatePin(svcs.Catalog, logg))
					r.Patch("/{pinId}", controllers.AdminUpdatePin(svcs.Catalog, logg))
					r.Delete("/{pinId}", controllers.AdminDeletePin(svcs.Catalog, logg))
				})
				r.Route("/cases", func(r chi.Router) {
					r.Get("/", controllers.AdminListCases(svcs.Catalog, logg))
					r.Post("/", controllers.AdminCreateCase(svcs.Catalog, logg))
					r.Patch("/{caseId}", controllers.AdminUpdateCase(svcs.Catalog, logg))
					r.Delete("/{caseId}", controllers.AdminDeleteCase(svcs.Catalog, logg))
				})
				r.Route("/menu-categories", func(r chi.Router) {
					r.Get("/", controllers.AdminListMenuCategories(svcs.Catalog, logg))
					r.Post("/", controllers.AdminCreateMenuCategory(svcs.Catalog, logg))
					r.Patch("/{categoryId}", controllers.AdminUpdateMenuCategory(svcs.Catalog, logg))
					r.Delete("/{categoryId}", controllers.AdminDeleteMenuCategory(svcs.Catalog, logg))
				})
			})

			r.Route("/orders", func(r chi.Router) {
				r.Get("/", controllers.AdminListOrders(svcs.Orders, logg))
				r.Get("/counts", controllers.AdminOrderCounts(svcs.Orders, logg))
				r.Get("/{orderId}", controllers.AdminOrderDetail(svcs.Orders, logg))
				r.Post("/{orderId}/status", controllers.AdminUpdateOrderStatus(svcs.Orders, logg))
			})

			r.Route("/notifications", func(r chi.Router) {
				r.Get("/", controllers.AdminListNotifications(svcs.Notifications, logg))
				r.Post("/{notificationId}/read", controllers.AdminMarkNotificationRead(svcs.Notifications, logg))
				r.Post("/read-all", controllers.AdminMarkAllNotificationsRead(svcs.Notifications, logg))
			})
		})
	})

	return r
}
