package app

import (
	server "github.com/admin/lucky-shop/divination-api/internal/adapters/primary/http"
	kafkaAdapter "github.com/admin/lucky-shop/divination-api/internal/adapters/secondary/kafka"
	"github.com/admin/lucky-shop/divination-api/internal/adapters/secondary/storage/pg"
	redisAdapter "github.com/admin/lucky-shop/divination-api/internal/adapters/secondary/storage/redis"
	"github.com/admin/lucky-shop/divination-api/internal/pkg/logger"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	Postgres *pg.Config           `envconfig:"POSTGRES"`
	Redis    *redisAdapter.Config `envconfig:"REDIS"`
	Kafka    *kafkaAdapter.Config `envconfig:"KAFKA"`
	Log      *logger.Config       `envconfig:"LOG"`
	Server   *server.Config       `envconfig:"APISERVER"`

	// HistoryLimit сколько последних раскладов хранить на устройство
	HistoryLimit int `envconfig:"HISTORY_LIMIT" default:"10"`
}

func NewEnvConfig(envPrefix string) (*Config, error) {
	cfg := &Config{}

	_ = godotenv.Load("deployments/local/.env")

	if err := envconfig.Process(envPrefix, cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}
