package sale

import (
	"database/sql"

	"go.uber.org/zap"

	"github.com/vinhnt21/smartmart/internal/config"
	invrepo "github.com/vinhnt21/smartmart/internal/inventory/repository"
	"github.com/vinhnt21/smartmart/internal/sale/controller"
	"github.com/vinhnt21/smartmart/internal/sale/service"
)

func NewModule(db *sql.DB, cfg *config.Config, logger *zap.Logger) *controller.SaleController {
	displayRepo := invrepo.NewMySQLDisplayRepository(db)

	deductionSvc := service.NewDeductionService(db, displayRepo, logger, cfg.Engine.TxTimeout)

	return controller.NewSaleController(deductionSvc, logger)
}
