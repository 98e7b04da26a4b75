// Package services contains the client-side orchestration layer: search
// fan-out, the review queue, entity-resolution workflows and the skill
// tracker.
package services

import (
	"context"
	"fmt"
	"sync"

	"github.com/rs/zerolog"

	"github.com/abelxmendoza/Lore-Book-sub011/internal/domain/entities"
	"github.com/abelxmendoza/Lore-Book-sub011/internal/domain/ports"
)

// DefaultSearchLimit is the default number of results per bucket.
const DefaultSearchLimit = 10

// hydrateCount is how many top semantic hits get full-entry hydration and
// feed the cluster lookup.
const hydrateCount = 3

// SearchService turns a free-text query into an ordered set of result
// buckets. Sub-queries degrade independently: a failed semantic search
// never aborts the keyword search and vice versa.
type SearchService struct {
	api ports.MemoryAPI
	log zerolog.Logger
}

// NewSearchService creates a new search service.
func NewSearchService(api ports.MemoryAPI, log zerolog.Logger) *SearchService {
	return &SearchService{
		api: api,
		log: log.With().Str("component", "search").Logger(),
	}
}

// Search runs the full orchestration for one query. It fails closed: any
// unexpected failure during aggregation is logged and surfaces as an
// empty result set, never as a crash.
func (s *SearchService) Search(ctx context.Context, query string, limit int) (results []entities.SearchResult) {
	defer func() {
		if r := recover(); r != nil {
			s.log.Error().Interface("panic", r).Str("query", query).Msg("search aggregation failed")
			results = []entities.SearchResult{}
		}
	}()
	return s.search(ctx, query, limit)
}

func (s *SearchService) search(ctx context.Context, query string, limit int) []entities.SearchResult {
	if limit <= 0 {
		limit = DefaultSearchLimit
	}

	var (
		hits    []entities.SemanticHit
		hitsErr error
		kwHits  []entities.Entry
		kwErr   error
	)

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		hits, hitsErr = s.api.SemanticSearch(ctx, query, limit)
	}()
	go func() {
		defer wg.Done()
		kwHits, kwErr = s.api.KeywordSearch(ctx, query, limit)
	}()
	wg.Wait()

	if hitsErr != nil {
		s.log.Warn().Err(hitsErr).Str("query", query).Msg("semantic search degraded to empty bucket")
		hits = nil
	}
	if kwErr != nil {
		s.log.Warn().Err(kwErr).Str("query", query).Msg("keyword search degraded to empty bucket")
		kwHits = nil
	}

	semantic, hydratedIDs := s.hydrateTopHits(ctx, hits)

	results := make([]entities.SearchResult, 0, 2)
	if len(semantic) > 0 {
		results = append(results, entities.SearchResult{
			Type:     entities.ResultTypeSemantic,
			Memories: semantic,
		})
	}
	if len(kwHits) > 0 {
		results = append(results, entities.SearchResult{
			Type:     entities.ResultTypeKeyword,
			Memories: entities.CardsFromEntries(kwHits),
		})
	}
	results = append(results, s.clusterBuckets(ctx, hydratedIDs)...)

	return results
}

// hydrateTopHits fetches full entries for the top semantic hits, one at a
// time. A failed hydration drops that hit only.
func (s *SearchService) hydrateTopHits(ctx context.Context, hits []entities.SemanticHit) ([]entities.Card, []string) {
	top := hits
	if len(top) > hydrateCount {
		top = top[:hydrateCount]
	}

	cards := make([]entities.Card, 0, len(top))
	ids := make([]string, 0, len(top))
	for _, hit := range top {
		entry, err := s.api.Entry(ctx, hit.EntryID)
		if err != nil {
			s.log.Warn().Err(err).Str("entry_id", hit.EntryID).Msg("skipping hit that failed to hydrate")
			continue
		}
		cards = append(cards, entities.CardFromEntry(*entry))
		ids = append(ids, entry.ID)
	}
	return cards, ids
}

// clusterBuckets runs the batched cluster lookup keyed by the hydrated
// entry ids and converts each non-empty cluster into a result bucket.
func (s *SearchService) clusterBuckets(ctx context.Context, entryIDs []string) []entities.SearchResult {
	if len(entryIDs) == 0 {
		return nil
	}

	clusters, err := s.api.Clusters(ctx, entryIDs)
	if err != nil {
		s.log.Warn().Err(err).Msg("cluster lookup degraded to empty bucket")
		return nil
	}

	buckets := make([]entities.SearchResult, 0, len(clusters))
	for _, cluster := range clusters {
		if len(cluster.Entries) == 0 {
			continue
		}
		buckets = append(buckets, entities.SearchResult{
			Type:          entities.ResultTypeCluster,
			Memories:      entities.CardsFromEntries(cluster.Entries),
			ClusterLabel:  cluster.Label,
			ClusterReason: cluster.Reason,
		})
	}
	return buckets
}

// TotalMemories counts cards across all buckets.
func TotalMemories(results []entities.SearchResult) int {
	total := 0
	for _, r := range results {
		total += len(r.Memories)
	}
	return total
}

// Recent fetches the newest entries as cards. Exposed here so the search
// surface can show a default list before any query is typed.
func (s *SearchService) Recent(ctx context.Context, limit int) ([]entities.Card, error) {
	if limit <= 0 {
		limit = DefaultSearchLimit
	}
	entries, err := s.api.Recent(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("fetching recent entries: %w", err)
	}
	return entities.CardsFromEntries(entries), nil
}
