package alerts

import (
	"database/sql"

	"go.uber.org/zap"

	"github.com/vinhnt21/smartmart/internal/alerts/controller"
	"github.com/vinhnt21/smartmart/internal/alerts/repository"
	"github.com/vinhnt21/smartmart/internal/config"
)

func NewModule(db *sql.DB, cfg *config.Config, logger *zap.Logger) *controller.AlertsController {
	repo := repository.NewMySQLAlertsRepository(db)
	return controller.NewAlertsController(
		repo,
		cfg.Engine.LowStockThreshold,
		cfg.Engine.RefillThreshold,
		logger,
	)
}
