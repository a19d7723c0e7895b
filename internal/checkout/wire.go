package checkout

import (
	"database/sql"

	"go.uber.org/zap"

	"github.com/vinhnt21/smartmart/internal/checkout/controller"
	"github.com/vinhnt21/smartmart/internal/checkout/repository"
	"github.com/vinhnt21/smartmart/internal/checkout/service"
	"github.com/vinhnt21/smartmart/internal/config"
	invrepo "github.com/vinhnt21/smartmart/internal/inventory/repository"
	productrepo "github.com/vinhnt21/smartmart/internal/product/repository"
	salesvc "github.com/vinhnt21/smartmart/internal/sale/service"
)

func NewModule(db *sql.DB, cfg *config.Config, logger *zap.Logger) *controller.CheckoutController {
	invoiceRepo := repository.NewMySQLInvoiceRepository(db)
	productRepo := productrepo.NewMySQLProductsRepository(db)
	displayRepo := invrepo.NewMySQLDisplayRepository(db)

	mirror := salesvc.NewDeductionService(db, displayRepo, logger, cfg.Engine.TxTimeout)
	checkoutSvc := service.NewCheckoutService(invoiceRepo, productRepo, mirror, logger)

	return controller.NewCheckoutController(checkoutSvc, logger)
}
