package di

import (
	goRedis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"

	"meetslot/config"
	"meetslot/helper"
	"meetslot/infras/graph"
	"meetslot/infras/meeting"
	"meetslot/infras/otel"
	"meetslot/infras/postgres"
	"meetslot/internal/domains/schedule/repository"
	"meetslot/shared/cache"
)

// ProvideSlotStore picks the durable store by driver and wraps it with the in-memory
// fallback. An unreachable postgres at startup degrades to memory instead of failing.
func ProvideSlotStore(cfg *config.Config, redisClient *goRedis.Client, otel otel.Otel) repository.SlotStore {
	memory := repository.NewMemory()

	switch cfg.Schedule.SlotStoreDriver {
	case config.SlotStoreDriverMemory:
		log.Warn().Msg("Using in-memory slot store, bookings will not survive a restart")

		return memory
	case config.SlotStoreDriverRedis:
		return repository.NewFallback(repository.NewRedis(redisClient, otel), memory)
	}

	db := postgres.New(cfg)
	if !db.Ready() {
		log.Warn().Msg("Postgres unavailable at startup, serving from memory until it reconnects")

		return repository.NewFallback(repository.NewPostgres(db, otel), memory)
	}

	if cfg.DB.Postgres.AutoMigrate {
		if err := helper.Runner(cfg, helper.ActionUp); err != nil {
			log.Error().Err(err).Msg("failed to apply migrations")
		}
	}

	return repository.NewFallback(repository.NewPostgres(db, otel), memory)
}

func ProvideMeetingProvider(cfg *config.Config, cache cache.RedisCache, otel otel.Otel) meeting.Provider {
	if cfg.Schedule.MeetingProvider == config.MeetingProviderGraph {
		return graph.New(cfg, cache, otel)
	}

	log.Warn().Str("provider", cfg.Schedule.MeetingProvider).Msg("No online meeting provider, issuing local meeting ids")

	return meeting.NewLocal()
}
