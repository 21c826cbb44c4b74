package store

import (
	"hotel/config"

	"github.com/rs/zerolog/log"
)

// Provide builds the process-wide store from configuration and seeds the
// room catalogue unless APP_SEED_ENABLE=false.
func Provide(cfg *config.Config) *Store {
	policy := CapacityPolicy
	if cfg.App.Availability.CheckOverlap {
		policy = OverlapPolicy
	}

	s := New(WithAvailabilityPolicy(policy))

	if cfg.App.Seed.Enable {
		Seed(s)
		log.Info().Int("rooms", len(s.GetRooms())).Msg("Room catalogue seeded")
	}

	log.Info().Bool("checkOverlap", cfg.App.Availability.CheckOverlap).Msg("In-memory store initialized")

	return s
}
