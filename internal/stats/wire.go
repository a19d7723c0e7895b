package stats

import (
	"database/sql"

	"go.uber.org/zap"

	"github.com/vinhnt21/smartmart/internal/stats/controller"
	"github.com/vinhnt21/smartmart/internal/stats/repository"
)

func NewModule(db *sql.DB, logger *zap.Logger) *controller.StatsController {
	repo := repository.NewMySQLStatsRepository(db)
	return controller.NewStatsController(repo, logger)
}
