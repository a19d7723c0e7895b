package transfer

import (
	"database/sql"

	"go.uber.org/zap"

	"github.com/vinhnt21/smartmart/internal/config"
	invrepo "github.com/vinhnt21/smartmart/internal/inventory/repository"
	"github.com/vinhnt21/smartmart/internal/transfer/controller"
	"github.com/vinhnt21/smartmart/internal/transfer/service"
)

func NewModule(db *sql.DB, cfg *config.Config, logger *zap.Logger) *controller.TransferController {
	lotRepo := invrepo.NewMySQLLotRepository(db)
	displayRepo := invrepo.NewMySQLDisplayRepository(db)
	counterRepo := invrepo.NewMySQLCounterRepository(db)

	transferSvc := service.NewTransferService(
		db,
		lotRepo,
		displayRepo,
		counterRepo,
		logger,
		cfg.Engine.TxTimeout,
		cfg.Engine.DisplayMaxQuantity,
	)

	return controller.NewTransferController(transferSvc, logger)
}
