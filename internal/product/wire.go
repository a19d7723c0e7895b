package product

import (
	"database/sql"

	"go.uber.org/zap"

	"github.com/vinhnt21/smartmart/internal/product/repository"
)

func NewModule(db *sql.DB, logger *zap.Logger) *Controller {
	repo := repository.NewMySQLProductsRepository(db)
	svc := NewService(repo, logger)
	return NewController(svc, logger)
}
