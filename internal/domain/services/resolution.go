package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
	"golang.org/x/sync/singleflight"

	"github.com/abelxmendoza/Lore-Book-sub011/internal/domain/entities"
	"github.com/abelxmendoza/Lore-Book-sub011/internal/domain/ports"
)

// ErrNotReversible is returned when a merge record may not be undone,
// either because it was created irreversible or already reverted.
var ErrNotReversible = errors.New("merge is not reversible")

// dashboardKey collapses concurrent snapshot refetches into one request.
const dashboardKey = "dashboard"

// ResolutionService drives the entity-resolution workflows: fetch the
// combined snapshot, mutate, refetch. Failed mutations leave server state
// untouched and the previous snapshot remains valid.
type ResolutionService struct {
	api      ports.ResolutionAPI
	log      zerolog.Logger
	validate *validator.Validate
	group    singleflight.Group
}

// NewResolutionService creates a new resolution service.
func NewResolutionService(api ports.ResolutionAPI, log zerolog.Logger) *ResolutionService {
	return &ResolutionService{
		api:      api,
		log:      log.With().Str("component", "resolution").Logger(),
		validate: newValidator(),
	}
}

// Snapshot fetches the dashboard state. Concurrent callers share one
// request.
func (s *ResolutionService) Snapshot(ctx context.Context) (*entities.DashboardSnapshot, error) {
	v, err, _ := s.group.Do(dashboardKey, func() (any, error) {
		return s.api.Dashboard(ctx)
	})
	if err != nil {
		return nil, fmt.Errorf("fetching resolution dashboard: %w", err)
	}
	return v.(*entities.DashboardSnapshot), nil
}

// Merge combines two entity records. The reason is validated client-side;
// a blank reason never reaches the wire. On success the refreshed
// snapshot is returned.
func (s *ResolutionService) Merge(ctx context.Context, sourceID, targetID, reason string) (*entities.DashboardSnapshot, error) {
	req := entities.MergeRequest{
		SourceID: sourceID,
		TargetID: targetID,
		Reason:   reason,
	}
	if err := s.validate.Struct(req); err != nil {
		return nil, fmt.Errorf("invalid merge request: %w", formatValidationError(err))
	}

	if err := s.api.MergeEntities(ctx, req); err != nil {
		return nil, fmt.Errorf("merging %s into %s: %w", sourceID, targetID, err)
	}

	s.log.Info().Str("source_id", sourceID).Str("target_id", targetID).Msg("entities merged")
	return s.Snapshot(ctx)
}

// Dismiss resolves a conflict without merging. The conflict will not
// resurface, so callers are expected to confirm with the user first.
func (s *ResolutionService) Dismiss(ctx context.Context, conflictID string) (*entities.DashboardSnapshot, error) {
	if err := s.api.DismissConflict(ctx, conflictID); err != nil {
		return nil, fmt.Errorf("dismissing conflict %s: %w", conflictID, err)
	}

	s.log.Info().Str("conflict_id", conflictID).Msg("conflict dismissed")
	return s.Snapshot(ctx)
}

// RevertMerge undoes a merge. The guard runs before any request: records
// that are irreversible or already reverted yield ErrNotReversible.
func (s *ResolutionService) RevertMerge(ctx context.Context, record entities.EntityMergeRecord) (*entities.DashboardSnapshot, error) {
	if !record.CanRevert() {
		return nil, fmt.Errorf("reverting merge %s: %w", record.ID, ErrNotReversible)
	}

	if err := s.api.RevertMerge(ctx, record.ID); err != nil {
		return nil, fmt.Errorf("reverting merge %s: %w", record.ID, err)
	}

	s.log.Info().Str("merge_id", record.ID).Msg("merge reverted")
	return s.Snapshot(ctx)
}
