package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abelxmendoza/Lore-Book-sub011/internal/domain/entities"
	"github.com/abelxmendoza/Lore-Book-sub011/internal/domain/mocks"
)

func resolutionFixture() *mocks.ResolutionAPI {
	return &mocks.ResolutionAPI{
		Snapshot: &entities.DashboardSnapshot{
			Entities: []entities.EntityCandidate{
				{ID: "A", Name: "Sam", Kind: "person"},
				{ID: "B", Name: "Samuel", Kind: "person"},
			},
			Conflicts: []entities.EntityConflict{
				{ID: "c1", EntityAID: "A", EntityBID: "B", Similarity: 0.94},
			},
		},
	}
}

func TestMerge_BlankReasonNeverReachesWire(t *testing.T) {
	api := resolutionFixture()
	svc := NewResolutionService(api, zerolog.Nop())

	for _, reason := range []string{"", "   ", "\t\n"} {
		_, err := svc.Merge(context.Background(), "A", "B", reason)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "reason must not be blank")
	}

	assert.Empty(t, api.MergeCalls)
	assert.Zero(t, api.FetchCount)
}

func TestMerge_MissingIDsRejected(t *testing.T) {
	api := resolutionFixture()
	svc := NewResolutionService(api, zerolog.Nop())

	_, err := svc.Merge(context.Background(), "", "B", "duplicate person")
	require.Error(t, err)
	assert.Empty(t, api.MergeCalls)
}

func TestMerge_SuccessRefetchesSnapshot(t *testing.T) {
	api := resolutionFixture()
	svc := NewResolutionService(api, zerolog.Nop())

	snap, err := svc.Merge(context.Background(), "A", "B", "duplicate person")
	require.NoError(t, err)
	require.NotNil(t, snap)

	require.Len(t, api.MergeCalls, 1)
	assert.Equal(t, entities.MergeRequest{
		SourceID: "A",
		TargetID: "B",
		Reason:   "duplicate person",
	}, api.MergeCalls[0])
	assert.Equal(t, 1, api.FetchCount)
}

func TestMerge_BackendFailureReturnsError(t *testing.T) {
	api := resolutionFixture()
	api.MergeErr = errors.New("merge rejected")
	svc := NewResolutionService(api, zerolog.Nop())

	_, err := svc.Merge(context.Background(), "A", "B", "duplicate person")
	require.Error(t, err)
	assert.Zero(t, api.FetchCount)
}

func TestDismiss_RefetchesSnapshot(t *testing.T) {
	api := resolutionFixture()
	svc := NewResolutionService(api, zerolog.Nop())

	snap, err := svc.Dismiss(context.Background(), "c1")
	require.NoError(t, err)
	require.NotNil(t, snap)

	assert.Equal(t, []string{"c1"}, api.Dismissed)
	assert.Equal(t, 1, api.FetchCount)
}

func TestRevertMerge_GuardsIrreversibleRecords(t *testing.T) {
	api := resolutionFixture()
	svc := NewResolutionService(api, zerolog.Nop())
	reverted := time.Now()

	tests := []struct {
		name   string
		record entities.EntityMergeRecord
	}{
		{name: "irreversible", record: entities.EntityMergeRecord{ID: "m1", Reversible: false}},
		{name: "already reverted", record: entities.EntityMergeRecord{ID: "m2", Reversible: true, RevertedAt: &reverted}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.RevertMerge(context.Background(), tt.record)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrNotReversible)
		})
	}

	assert.Empty(t, api.Reverted)
}

func TestRevertMerge_Success(t *testing.T) {
	api := resolutionFixture()
	svc := NewResolutionService(api, zerolog.Nop())

	snap, err := svc.RevertMerge(context.Background(), entities.EntityMergeRecord{ID: "m1", Reversible: true})
	require.NoError(t, err)
	require.NotNil(t, snap)

	assert.Equal(t, []string{"m1"}, api.Reverted)
}

func TestSnapshot_Error(t *testing.T) {
	api := resolutionFixture()
	api.DashboardErr = errors.New("unavailable")
	svc := NewResolutionService(api, zerolog.Nop())

	_, err := svc.Snapshot(context.Background())
	require.Error(t, err)
}
