package controller

import (
	"context"
	"net/http"

	"go.uber.org/zap"

	"github.com/vinhnt21/smartmart/internal/dto"
	"github.com/vinhnt21/smartmart/internal/server/respond"
)

type CountsReader interface {
	CountAll(ctx context.Context) ([]dto.EntityCountRow, error)
}

type StatsController struct {
	counts CountsReader
	logger *zap.Logger
}

func NewStatsController(counts CountsReader, logger *zap.Logger) *StatsController {
	return &StatsController{
		counts: counts,
		logger: logger,
	}
}

func (c *StatsController) HandleEntityCounts(w http.ResponseWriter, r *http.Request) {
	counts, err := c.counts.CountAll(r.Context())
	if err != nil {
		c.logger.Error("entity counts failed", zap.Error(err))
		respond.InternalError(w, c.logger)
		return
	}

	respond.JSON(w, c.logger, http.StatusOK, counts)
}
