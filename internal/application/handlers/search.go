// Package handlers contains thin command-facing wrappers around the
// domain services.
package handlers

import (
	"context"

	"github.com/abelxmendoza/Lore-Book-sub011/internal/domain/entities"
	"github.com/abelxmendoza/Lore-Book-sub011/internal/domain/services"
)

// SearchHandler handles memory searches.
type SearchHandler struct {
	searchService *services.SearchService
}

// NewSearchHandler creates a new search handler.
func NewSearchHandler(searchService *services.SearchService) *SearchHandler {
	return &SearchHandler{
		searchService: searchService,
	}
}

// SearchOutcome contains the result of one search.
type SearchOutcome struct {
	Query   string
	Results []entities.SearchResult
	Total   int
}

// Handle runs a search and packages the outcome. An empty Total with no
// error distinguishes "no results" from a failed view.
func (h *SearchHandler) Handle(ctx context.Context, query string, limit int) *SearchOutcome {
	results := h.searchService.Search(ctx, query, limit)
	return &SearchOutcome{
		Query:   query,
		Results: results,
		Total:   services.TotalMemories(results),
	}
}
