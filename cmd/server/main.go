package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/vinhnt21/smartmart/internal/alerts"
	"github.com/vinhnt21/smartmart/internal/checkout"
	"github.com/vinhnt21/smartmart/internal/commons"
	"github.com/vinhnt21/smartmart/internal/config"
	"github.com/vinhnt21/smartmart/internal/infrastructure/logger"
	"github.com/vinhnt21/smartmart/internal/infrastructure/mysql"
	"github.com/vinhnt21/smartmart/internal/inventory"
	"github.com/vinhnt21/smartmart/internal/pricing"
	"github.com/vinhnt21/smartmart/internal/product"
	"github.com/vinhnt21/smartmart/internal/sale"
	"github.com/vinhnt21/smartmart/internal/server"
	"github.com/vinhnt21/smartmart/internal/stats"
	"github.com/vinhnt21/smartmart/internal/transfer"
)

func main() {
	_ = godotenv.Load()

	cfg, err := loadConfig()
	if err != nil {
		log.Fatalf("loading config: %v", err)
	}

	zapLogger, err := logger.New(cfg.Log.Level)
	if err != nil {
		log.Fatalf("creating logger: %v", err)
	}
	defer zapLogger.Sync()

	db, err := mysql.NewConnection(cfg.Database)
	if err != nil {
		zapLogger.Fatal("connecting to database", zap.Error(err))
	}
	defer db.Close()
	zapLogger.Info("database connected")

	router := server.NewRouter(server.Controllers{
		Inventory: inventory.NewModule(db, cfg, zapLogger),
		Transfer:  transfer.NewModule(db, cfg, zapLogger),
		Sale:      sale.NewModule(db, cfg, zapLogger),
		Checkout:  checkout.NewModule(db, cfg, zapLogger),
		Pricing:   pricing.NewModule(db, cfg, zapLogger),
		Alerts:    alerts.NewModule(db, cfg, zapLogger),
		Product:   product.NewModule(db, zapLogger),
		Stats:     stats.NewModule(db, zapLogger),
	}, zapLogger)

	srv := server.New(cfg.Server.Port, router, zapLogger)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := srv.Start(); err != nil {
			zapLogger.Fatal("server error", zap.Error(err))
		}
	}()

	<-quit
	zapLogger.Info("received shutdown signal")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		zapLogger.Fatal("server shutdown failed", zap.Error(err))
	}

	zapLogger.Info("server stopped gracefully")
}

// loadConfig prefers a YAML file when CONFIG_FILE is set, otherwise reads
// everything from environment variables.
func loadConfig() (*config.Config, error) {
	if path := os.Getenv("CONFIG_FILE"); path != "" {
		return commons.LoadConfig(path)
	}
	return config.Load()
}
