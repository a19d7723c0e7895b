package pricing

import (
	"database/sql"

	"go.uber.org/zap"

	"github.com/vinhnt21/smartmart/internal/config"
	"github.com/vinhnt21/smartmart/internal/pricing/controller"
	"github.com/vinhnt21/smartmart/internal/pricing/repository"
	"github.com/vinhnt21/smartmart/internal/pricing/service"
)

func NewModule(db *sql.DB, cfg *config.Config, logger *zap.Logger) *controller.PricingController {
	repo := repository.NewMySQLPricingRepository(db)
	svc := service.NewDiscountService(repo, logger)
	return controller.NewPricingController(svc, cfg.Engine.NearExpiryDays, logger)
}
