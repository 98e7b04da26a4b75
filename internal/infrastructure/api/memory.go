package api

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/abelxmendoza/Lore-Book-sub011/internal/domain/entities"
)

// SemanticSearch runs a semantic query through the HQI endpoint.
func (c *Client) SemanticSearch(ctx context.Context, query string, limit int) ([]entities.SemanticHit, error) {
	body := map[string]any{"query": query, "limit": limit}
	var out struct {
		Results []entities.SemanticHit `json:"results"`
	}
	if err := c.post(ctx, "/api/hqi/search", body, &out); err != nil {
		return nil, fmt.Errorf("semantic search: %w", err)
	}
	return out.Results, nil
}

// KeywordSearch runs a keyword query over entry text.
func (c *Client) KeywordSearch(ctx context.Context, query string, limit int) ([]entities.Entry, error) {
	q := url.Values{}
	q.Set("query", query)
	q.Set("limit", strconv.Itoa(limit))

	var out struct {
		Entries []entities.Entry `json:"entries"`
	}
	if err := c.get(ctx, "/api/entries/search/keyword", q, &out); err != nil {
		return nil, fmt.Errorf("keyword search: %w", err)
	}
	return out.Entries, nil
}

// Entry fetches one full entry record.
func (c *Client) Entry(ctx context.Context, id string) (*entities.Entry, error) {
	var out struct {
		Entry entities.Entry `json:"entry"`
	}
	if err := c.get(ctx, "/api/entries/"+id, nil, &out); err != nil {
		return nil, fmt.Errorf("fetching entry %s: %w", id, err)
	}
	return &out.Entry, nil
}

// Clusters finds related groups for the given entry ids.
func (c *Client) Clusters(ctx context.Context, entryIDs []string) ([]entities.Cluster, error) {
	body := map[string]any{"entry_ids": entryIDs}
	var out struct {
		Clusters []entities.Cluster `json:"clusters"`
	}
	if err := c.post(ctx, "/api/entries/clusters", body, &out); err != nil {
		return nil, fmt.Errorf("fetching clusters: %w", err)
	}
	return out.Clusters, nil
}

// Recent lists the most recent entries.
func (c *Client) Recent(ctx context.Context, limit int) ([]entities.Entry, error) {
	q := url.Values{}
	q.Set("limit", strconv.Itoa(limit))

	var out struct {
		Entries []entities.Entry `json:"entries"`
	}
	if err := c.get(ctx, "/api/entries/recent", q, &out); err != nil {
		return nil, fmt.Errorf("fetching recent entries: %w", err)
	}
	return out.Entries, nil
}

// Locations lists place records.
func (c *Client) Locations(ctx context.Context) ([]entities.Location, error) {
	var out struct {
		Locations []entities.Location `json:"locations"`
	}
	if err := c.get(ctx, "/api/locations", nil, &out); err != nil {
		return nil, fmt.Errorf("fetching locations: %w", err)
	}
	return out.Locations, nil
}

// PopulateDummyData asks the backend to seed itself with sample data.
// Development only.
func (c *Client) PopulateDummyData(ctx context.Context) error {
	if err := c.post(ctx, "/api/dev/populate-dummy-data", nil, nil); err != nil {
		return fmt.Errorf("populating dummy data: %w", err)
	}
	return nil
}
