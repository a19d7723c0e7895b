package server

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	alertsctrl "github.com/vinhnt21/smartmart/internal/alerts/controller"
	checkoutctrl "github.com/vinhnt21/smartmart/internal/checkout/controller"
	inventoryctrl "github.com/vinhnt21/smartmart/internal/inventory/controller"
	pricingctrl "github.com/vinhnt21/smartmart/internal/pricing/controller"
	"github.com/vinhnt21/smartmart/internal/product"
	salectrl "github.com/vinhnt21/smartmart/internal/sale/controller"
	statsctrl "github.com/vinhnt21/smartmart/internal/stats/controller"
	transferctrl "github.com/vinhnt21/smartmart/internal/transfer/controller"
)

type Controllers struct {
	Inventory *inventoryctrl.InventoryController
	Transfer  *transferctrl.TransferController
	Sale      *salectrl.SaleController
	Checkout  *checkoutctrl.CheckoutController
	Pricing   *pricingctrl.PricingController
	Alerts    *alertsctrl.AlertsController
	Product   *product.Controller
	Stats     *statsctrl.StatsController
}

func NewRouter(c Controllers, logger *zap.Logger) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(30 * time.Second))
	r.Use(requestLogger(logger))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/products", func(r chi.Router) {
			r.Get("/", c.Product.HandleSearch)
			r.Post("/", c.Product.HandleCreate)
			r.Get("/{productId}", c.Product.HandleGet)
			r.Put("/{productId}", c.Product.HandleUpdate)
			r.Get("/{productId}/stock", c.Inventory.HandleStockTotals)
			r.Get("/{productId}/displays", c.Inventory.HandleListDisplays)
		})

		r.Route("/lots", func(r chi.Router) {
			r.Get("/", c.Inventory.HandleListLots)
			r.Post("/", c.Inventory.HandleReceiveLot)
		})

		r.Get("/counters", c.Inventory.HandleListCounters)
		r.Get("/stock/overview", c.Inventory.HandleStockOverview)

		r.Post("/transfers", c.Transfer.HandleTransfer)
		r.Post("/sales/deductions", c.Sale.HandleRecordDeduction)
		r.Post("/checkout", c.Checkout.HandleCheckout)

		r.Route("/discounts", func(r chi.Router) {
			r.Get("/eligible", c.Pricing.HandleListEligible)
			r.Post("/{productId}", c.Pricing.HandleApplyDiscount)
		})

		r.Route("/expiry", func(r chi.Router) {
			r.Get("/near", c.Pricing.HandleListNearExpiry)
			r.Get("/expired", c.Pricing.HandleListExpired)
		})

		r.Route("/alerts", func(r chi.Router) {
			r.Get("/low-stock", c.Alerts.HandleLowStock)
			r.Get("/refill", c.Alerts.HandleNeedsRefill)
			r.Get("/warehouse-exhausted", c.Alerts.HandleWarehouseExhausted)
		})

		r.Get("/stats/entities", c.Stats.HandleEntityCounts)
	})

	return r
}

func requestLogger(logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

			next.ServeHTTP(ww, r)

			logger.Info("request completed",
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.Int("status", ww.Status()),
				zap.Duration("duration", time.Since(start)))
		})
	}
}
