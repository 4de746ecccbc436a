package routes

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/angelmondragon/sellerdash/api/controllers"
	"github.com/angelmondragon/sellerdash/api/middleware"
	"github.com/angelmondragon/sellerdash/internal/auth"
	"github.com/angelmondragon/sellerdash/internal/billing"
	"github.com/angelmondragon/sellerdash/internal/catalog"
	"github.com/angelmondragon/sellerdash/internal/chat"
	"github.com/angelmondragon/sellerdash/internal/claims"
	"github.com/angelmondragon/sellerdash/internal/listings"
	"github.com/angelmondragon/sellerdash/internal/orders"
	"github.com/angelmondragon/sellerdash/internal/overview"
	"github.com/angelmondragon/sellerdash/internal/products"
	"github.com/angelmondragon/sellerdash/internal/questions"
	"github.com/angelmondragon/sellerdash/internal/stock"
	"github.com/angelmondragon/sellerdash/internal/subscriptions"
	"github.com/angelmondragon/sellerdash/internal/taxes"
	"github.com/angelmondragon/sellerdash/pkg/apiclient"
	"github.com/angelmondragon/sellerdash/pkg/config"
	"github.com/angelmondragon/sellerdash/pkg/logger"
)

// Services are the feature services the gateway exposes. A nil service makes
// its routes answer 503.
type Services struct {
	Auth          auth.Service
	Subscriptions subscriptions.Service
	Products      products.Service
	Orders        orders.Service
	Claims        claims.Service
	Questions     questions.Service
	Chat          chat.Service
	Catalog       catalog.Service
	Listings      listings.Service
	Stock         stock.Service
	Taxes         taxes.Service
	Billing       billing.Service
	Overview      overview.Service
}

func NewRouter(cfg *config.Config, logg *logger.Logger, gatherer prometheus.Gatherer, svc Services) http.Handler {
	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.CORS(cfg.Gateway.AllowedOrigins),
	)

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg))
	})

	if gatherer != nil {
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))
	}

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.Post("/login", controllers.AuthLogin(svc.Auth, logg))
			r.Post("/logout", controllers.AuthLogout(svc.Auth, logg))
			r.Get("/me", controllers.AuthMe(svc.Auth, logg))
		})

		r.Route("/subscriptions", func(r chi.Router) {
			r.Get("/current", controllers.SubscriptionCurrent(svc.Subscriptions, logg))
			r.Get("/plans", controllers.SubscriptionPlans(svc.Subscriptions, logg))
			r.Post("/{id}/cancel", controllers.SubscriptionCancel(svc.Subscriptions, logg))
		})

		r.Route("/products", func(r chi.Router) {
			r.Get("/", controllers.ProductsList(svc.Products, logg))
			r.Post("/", controllers.ProductsCreate(svc.Products, logg))
			r.Get("/{id}", controllers.ProductsGet(svc.Products, logg))
			r.Put("/{id}", controllers.ProductsUpdate(svc.Products, logg))
			r.Delete("/{id}", controllers.ProductsDelete(svc.Products, logg))
			r.Post("/{id}/recalculate-average-cost", controllers.ProductsRecalculateAverageCost(svc.Products, logg))
		})

		r.Route("/orders", func(r chi.Router) {
			r.Get("/", controllers.OrdersList(svc.Orders, logg))
			r.Get("/{id}", controllers.OrdersGet(svc.Orders, logg))
			r.Patch("/{id}/status", controllers.OrdersUpdateStatus(svc.Orders, logg))
		})

		r.Route("/claims", func(r chi.Router) {
			r.Get("/", controllers.ClaimsList(svc.Claims, logg))
			r.Get("/{id}", controllers.ClaimsGet(svc.Claims, logg))
			r.Post("/{id}/responses", controllers.ClaimsRespond(svc.Claims, logg))
		})

		r.Route("/questions", func(r chi.Router) {
			r.Get("/", controllers.QuestionsList(svc.Questions, logg))
			r.Post("/{id}/answer", controllers.QuestionsAnswer(svc.Questions, logg))
			r.Delete("/{id}", controllers.QuestionsDelete(svc.Questions, logg))
		})

		r.Route("/chat/packs/{packID}", func(r chi.Router) {
			r.Get("/messages", controllers.ChatMessages(svc.Chat, logg))
			r.Post("/messages", controllers.ChatSend(svc.Chat, logg))
			r.Post("/attachments", controllers.ChatUploadAttachment(svc.Chat, logg))
		})

		r.Route("/catalog", func(r chi.Router) {
			r.Get("/categories", controllers.CatalogCategories(svc.Catalog, logg))
			r.Get("/categories/{categoryID}/attributes", controllers.CatalogAttributes(svc.Catalog, logg))
			r.Get("/category-predictor", controllers.CatalogPredictCategory(svc.Catalog, logg))
		})

		r.Route("/listings", func(r chi.Router) {
			r.Get("/", controllers.ListingsList(svc.Listings, logg))
			r.Get("/{listingID}", controllers.ListingsGet(svc.Listings, logg))
			r.Put("/{listingID}/price", controllers.ListingsUpdatePrice(svc.Listings, logg))
			r.Post("/{listingID}/pause", controllers.ListingsPause(svc.Listings, logg))
			r.Post("/{listingID}/activate", controllers.ListingsActivate(svc.Listings, logg))
		})

		r.Route("/stock", func(r chi.Router) {
			r.Get("/", controllers.StockList(svc.Stock, logg))
			r.Post("/{id}/adjustments", controllers.StockAdjust(svc.Stock, logg))
			r.Get("/{id}/movements", controllers.StockMovements(svc.Stock, logg))
		})

		r.Route("/taxes", func(r chi.Router) {
			r.Get("/", controllers.TaxesList(svc.Taxes, logg))
			r.Post("/", controllers.TaxesCreate(svc.Taxes, logg))
			r.Put("/{id}", controllers.TaxesUpdate(svc.Taxes, logg))
			r.Delete("/{id}", controllers.TaxesDelete(svc.Taxes, logg))
		})

		r.Route("/billing", func(r chi.Router) {
			r.Get("/invoices", controllers.BillingInvoices(svc.Billing, logg))
			r.Get("/invoices/{id}", controllers.BillingInvoice(svc.Billing, logg))
			r.Get("/summary", controllers.BillingSummary(svc.Billing, logg))
		})

		r.Get("/overview", controllers.OverviewSummary(svc.Overview, logg))
	})

	return r
}

// NewServices builds every feature service on one api client.
func NewServices(api *apiclient.Client, overviewTimeout time.Duration) Services {
	subs := subscriptions.NewService(api)
	ordersSvc := orders.NewService(api)
	questionsSvc := questions.NewService(api)
	claimsSvc := claims.NewService(api)
	return Services{
		Auth:          auth.NewService(api, subs),
		Subscriptions: subs,
		Products:      products.NewService(api),
		Orders:        ordersSvc,
		Claims:        claimsSvc,
		Questions:     questionsSvc,
		Chat:          chat.NewService(api),
		Catalog:       catalog.NewService(api),
		Listings:      listings.NewService(api),
		Stock:         stock.NewService(api),
		Taxes:         taxes.NewService(api),
		Billing:       billing.NewService(api),
		Overview:      overview.NewService(api, ordersSvc, questionsSvc, claimsSvc, overview.WithTimeout(overviewTimeout)),
	}
}
