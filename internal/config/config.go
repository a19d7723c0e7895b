package config

import (
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Database DatabaseConfig `yaml:"database"`
	Log      LogConfig      `yaml:"log"`
	Engine   EngineConfig   `yaml:"engine"`
}

type ServerConfig struct {
	Port int `yaml:"port"`
}

type DatabaseConfig struct {
	Host            string        `yaml:"host"`
	Port            int           `yaml:"port"`
	User            string        `yaml:"user"`
	Password        string        `yaml:"password"`
	Name            string        `yaml:"name"`
	MaxOpenConns    int           `yaml:"maxOpenConns"`
	MaxIdleConns    int           `yaml:"maxIdleConns"`
	ConnMaxLifetime time.Duration `yaml:"connMaxLifetime"`
}

type LogConfig struct {
	Level string `yaml:"level"`
}

// EngineConfig carries the stock engine's tunables: the capacity given to
// newly created displays, default thresholds for the alerting views, and
// the timeout applied to every mutating transaction.
type EngineConfig struct {
	DisplayMaxQuantity int           `yaml:"displayMaxQuantity"`
	LowStockThreshold  int           `yaml:"lowStockThreshold"`
	RefillThreshold    int           `yaml:"refillThreshold"`
	NearExpiryDays     int           `yaml:"nearExpiryDays"`
	TxTimeout          time.Duration `yaml:"txTimeout"`
}

func Load() (*Config, error) {
	viper.AutomaticEnv()

	viper.SetDefault("SERVER_PORT", 8080)
	viper.SetDefault("DB_HOST", "localhost")
	viper.SetDefault("DB_PORT", 3306)
	viper.SetDefault("DB_USER", "smartmart")
	viper.SetDefault("DB_PASSWORD", "secret")
	viper.SetDefault("DB_NAME", "smartmart")
	viper.SetDefault("DB_MAX_OPEN_CONNS", 25)
	viper.SetDefault("DB_MAX_IDLE_CONNS", 5)
	viper.SetDefault("DB_CONN_MAX_LIFETIME", "5m")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("ENGINE_DISPLAY_MAX_QUANTITY", 100)
	viper.SetDefault("ENGINE_LOW_STOCK_THRESHOLD", 5)
	viper.SetDefault("ENGINE_REFILL_THRESHOLD", 10)
	viper.SetDefault("ENGINE_NEAR_EXPIRY_DAYS", 10)
	viper.SetDefault("ENGINE_TX_TIMEOUT", "5s")

	connMaxLifetime, err := time.ParseDuration(viper.GetString("DB_CONN_MAX_LIFETIME"))
	if err != nil {
		return nil, err
	}

	txTimeout, err := time.ParseDuration(viper.GetString("ENGINE_TX_TIMEOUT"))
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		Server: ServerConfig{
			Port: viper.GetInt("SERVER_PORT"),
		},
		Database: DatabaseConfig{
			Host:            viper.GetString("DB_HOST"),
			Port:            viper.GetInt("DB_PORT"),
			User:            viper.GetString("DB_USER"),
			Password:        viper.GetString("DB_PASSWORD"),
			Name:            viper.GetString("DB_NAME"),
			MaxOpenConns:    viper.GetInt("DB_MAX_OPEN_CONNS"),
			MaxIdleConns:    viper.GetInt("DB_MAX_IDLE_CONNS"),
			ConnMaxLifetime: connMaxLifetime,
		},
		Log: LogConfig{
			Level: viper.GetString("LOG_LEVEL"),
		},
		Engine: EngineConfig{
			DisplayMaxQuantity: viper.GetInt("ENGINE_DISPLAY_MAX_QUANTITY"),
			LowStockThreshold:  viper.GetInt("ENGINE_LOW_STOCK_THRESHOLD"),
			RefillThreshold:    viper.GetInt("ENGINE_REFILL_THRESHOLD"),
			NearExpiryDays:     viper.GetInt("ENGINE_NEAR_EXPIRY_DAYS"),
			TxTimeout:          txTimeout,
		},
	}

	return cfg, nil
}
