package stream

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/answersheet/gradebot/internal/executor"
	red "github.com/answersheet/gradebot/internal/redis"
	"github.com/answersheet/gradebot/internal/stream/redis"
)

type Config struct {
	Provider    string // redis for now; kafka and sqs are plausible later providers
	RedisConfig *redis.StreamConfig
}

func NewConsumer(
	ctx context.Context,
	cfg *Config,
	pipeline *executor.Pipeline,
	logger *zerolog.Logger,
) (Consumer, error) {

	// If provider is empty, fall back to the default configuration.
	provider := cfg.Provider
	if provider == "" {
		provider = "redis"
	}

	switch provider {
	case "redis":
		if cfg.RedisConfig == nil {
			return nil, fmt.Errorf("redis config required")
		}

		client, err := red.ConnectRedis(
			ctx,
			cfg.RedisConfig.RedisAddr,
			cfg.RedisConfig.RedisPassword,
			5,
		)
		if err != nil {
			return nil, err
		}

		return redis.NewConsumer(
			client,
			cfg.RedisConfig,
			pipeline,
			logger,
		), nil

	default:
		return nil, fmt.Errorf("unsupported stream provider: %s", cfg.Provider)
	}
}
