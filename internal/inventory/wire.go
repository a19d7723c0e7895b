package inventory

import (
	"database/sql"

	"go.uber.org/zap"

	"github.com/vinhnt21/smartmart/internal/config"
	"github.com/vinhnt21/smartmart/internal/inventory/controller"
	"github.com/vinhnt21/smartmart/internal/inventory/repository"
	"github.com/vinhnt21/smartmart/internal/inventory/service"
	productrepo "github.com/vinhnt21/smartmart/internal/product/repository"
)

func NewModule(db *sql.DB, cfg *config.Config, logger *zap.Logger) *controller.InventoryController {
	lotRepo := repository.NewMySQLLotRepository(db)
	displayRepo := repository.NewMySQLDisplayRepository(db)
	counterRepo := repository.NewMySQLCounterRepository(db)
	overviewRepo := repository.NewMySQLStockOverviewRepository(db)
	productRepo := productrepo.NewMySQLProductsRepository(db)

	ledger := service.NewLedgerService(
		db,
		lotRepo,
		displayRepo,
		counterRepo,
		productRepo,
		logger,
		cfg.Engine.TxTimeout,
	)

	return controller.NewInventoryController(ledger, overviewRepo, logger)
}
