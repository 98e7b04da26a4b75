package api

import (
	"context"
	"fmt"

	"github.com/abelxmendoza/Lore-Book-sub011/internal/domain/entities"
)

// Dashboard fetches the combined entity-resolution snapshot.
func (c *Client) Dashboard(ctx context.Context) (*entities.DashboardSnapshot, error) {
	var out struct {
		Dashboard entities.DashboardSnapshot `json:"dashboard"`
	}
	if err := c.get(ctx, "/api/entity-resolution/dashboard", nil, &out); err != nil {
		return nil, fmt.Errorf("fetching dashboard: %w", err)
	}
	return &out.Dashboard, nil
}

// MergeEntities merges the source entity into the target.
func (c *Client) MergeEntities(ctx context.Context, req entities.MergeRequest) error {
	if err := c.post(ctx, "/api/entity-resolution/merge", req, nil); err != nil {
		return fmt.Errorf("merging entities: %w", err)
	}
	return nil
}

// DismissConflict resolves a conflict without merging.
func (c *Client) DismissConflict(ctx context.Context, conflictID string) error {
	if err := c.post(ctx, "/api/entity-resolution/conflicts/"+conflictID+"/dismiss", nil, nil); err != nil {
		return fmt.Errorf("dismissing conflict %s: %w", conflictID, err)
	}
	return nil
}

// RevertMerge undoes a previous merge.
func (c *Client) RevertMerge(ctx context.Context, mergeID string) error {
	if err := c.post(ctx, "/api/entity-resolution/revert-merge/"+mergeID, nil, nil); err != nil {
		return fmt.Errorf("reverting merge %s: %w", mergeID, err)
	}
	return nil
}
