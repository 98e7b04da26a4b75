package handlers

import (
	"context"
	"fmt"

	"github.com/abelxmendoza/Lore-Book-sub011/internal/domain/entities"
	"github.com/abelxmendoza/Lore-Book-sub011/internal/domain/services"
)

// ResolutionHandler handles entity-resolution dashboard operations.
type ResolutionHandler struct {
	resolutionService *services.ResolutionService
}

// NewResolutionHandler creates a new resolution handler.
func NewResolutionHandler(resolutionService *services.ResolutionService) *ResolutionHandler {
	return &ResolutionHandler{
		resolutionService: resolutionService,
	}
}

// Dashboard fetches the current snapshot.
func (h *ResolutionHandler) Dashboard(ctx context.Context) (*entities.DashboardSnapshot, error) {
	return h.resolutionService.Snapshot(ctx)
}

// Merge combines source into target and returns the refreshed snapshot.
func (h *ResolutionHandler) Merge(ctx context.Context, sourceID, targetID, reason string) (*entities.DashboardSnapshot, error) {
	return h.resolutionService.Merge(ctx, sourceID, targetID, reason)
}

// Dismiss resolves a conflict without merging.
func (h *ResolutionHandler) Dismiss(ctx context.Context, conflictID string) (*entities.DashboardSnapshot, error) {
	return h.resolutionService.Dismiss(ctx, conflictID)
}

// Revert undoes a merge by id. The record is looked up in the current
// snapshot so the reversibility guard can run before any request.
func (h *ResolutionHandler) Revert(ctx context.Context, mergeID string) (*entities.DashboardSnapshot, error) {
	snap, err := h.resolutionService.Snapshot(ctx)
	if err != nil {
		return nil, err
	}

	for _, record := range snap.MergeHistory {
		if record.ID == mergeID {
			return h.resolutionService.RevertMerge(ctx, record)
		}
	}
	return nil, fmt.Errorf("merge %s not found in history", mergeID)
}
