package services

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/abelxmendoza/Lore-Book-sub011/internal/domain/entities"
	"github.com/abelxmendoza/Lore-Book-sub011/internal/domain/ports"
	"github.com/abelxmendoza/Lore-Book-sub011/internal/domain/seeds"
)

// LibraryService serves the read-only list surfaces (recent memories,
// location book). These fetches degrade silently: a failed request is
// logged and falls through the seed registry, so the screen stays
// populated instead of surfacing a blocking error.
type LibraryService struct {
	memories  ports.MemoryAPI
	locations ports.LocationAPI
	seeds     *seeds.Registry
	log       zerolog.Logger
}

// NewLibraryService creates a new library service.
func NewLibraryService(memories ports.MemoryAPI, locations ports.LocationAPI, reg *seeds.Registry, log zerolog.Logger) *LibraryService {
	return &LibraryService{
		memories:  memories,
		locations: locations,
		seeds:     reg,
		log:       log.With().Str("component", "library").Logger(),
	}
}

// Recent lists the newest memories as cards, falling back to seed data
// per the registry's decision table.
func (s *LibraryService) Recent(ctx context.Context, limit int) []entities.Card {
	if limit <= 0 {
		limit = DefaultSearchLimit
	}

	live, err := s.memories.Recent(ctx, limit)
	if err != nil {
		s.log.Warn().Err(err).Msg("recent entries fetch failed, consulting seeds")
		live = nil
	}

	entries := seeds.Resolve(s.seeds, seeds.DomainMemories, live)
	return entities.CardsFromEntries(entries)
}

// Locations lists place records, falling back to seed data per the
// registry's decision table.
func (s *LibraryService) Locations(ctx context.Context) []entities.Location {
	live, err := s.locations.Locations(ctx)
	if err != nil {
		s.log.Warn().Err(err).Msg("locations fetch failed, consulting seeds")
		live = nil
	}

	return seeds.Resolve(s.seeds, seeds.DomainLocations, live)
}
