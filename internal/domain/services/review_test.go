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

func reviewFixture() *mocks.ProposalAPI {
	base := time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC)
	return &mocks.ProposalAPI{
		Pending: []entities.Proposal{
			{ID: "p-low", RiskLevel: entities.RiskLow, Status: entities.ProposalPending, CreatedAt: base.Add(3 * time.Hour)},
			{ID: "p-high", RiskLevel: entities.RiskHigh, Status: entities.ProposalPending, CreatedAt: base},
			{ID: "p-med-old", RiskLevel: entities.RiskMedium, Status: entities.ProposalPending, CreatedAt: base.Add(time.Hour)},
			{ID: "p-med-new", RiskLevel: entities.RiskMedium, Status: entities.ProposalPending, CreatedAt: base.Add(2 * time.Hour)},
		},
	}
}

func TestReviewPending_RiskOrdering(t *testing.T) {
	svc := NewReviewService(reviewFixture(), zerolog.Nop())

	proposals, err := svc.Pending(context.Background())
	require.NoError(t, err)
	require.Len(t, proposals, 4)

	assert.Equal(t, "p-high", proposals[0].ID)
	assert.Equal(t, "p-med-new", proposals[1].ID)
	assert.Equal(t, "p-med-old", proposals[2].ID)
	assert.Equal(t, "p-low", proposals[3].ID)
}

func TestReviewApprove_RemovesFromPending(t *testing.T) {
	api := reviewFixture()
	svc := NewReviewService(api, zerolog.Nop())

	remaining, err := svc.Approve(context.Background(), "p-high")
	require.NoError(t, err)

	assert.Equal(t, []string{"p-high"}, api.Approved)
	for _, p := range remaining {
		assert.NotEqual(t, "p-high", p.ID)
	}
	assert.Len(t, remaining, 3)
}

func TestReviewApprove_FailureLeavesPending(t *testing.T) {
	api := reviewFixture()
	api.ApproveErr = errors.New("backend down")
	svc := NewReviewService(api, zerolog.Nop())

	_, err := svc.Approve(context.Background(), "p-high")
	require.Error(t, err)

	pending, err := svc.Pending(context.Background())
	require.NoError(t, err)
	assert.Len(t, pending, 4)
}

func TestReviewReject_WithAndWithoutReason(t *testing.T) {
	api := reviewFixture()
	svc := NewReviewService(api, zerolog.Nop())

	remaining, err := svc.Reject(context.Background(), "p-low", "not relevant")
	require.NoError(t, err)
	assert.Equal(t, "not relevant", api.Rejected["p-low"])
	assert.Len(t, remaining, 3)

	// An empty reason is allowed.
	remaining, err = svc.Reject(context.Background(), "p-med-old", "")
	require.NoError(t, err)
	assert.Equal(t, "", api.Rejected["p-med-old"])
	assert.Len(t, remaining, 2)
}

func TestReviewReject_FailureLeavesPending(t *testing.T) {
	api := reviewFixture()
	api.RejectErr = errors.New("backend down")
	svc := NewReviewService(api, zerolog.Nop())

	_, err := svc.Reject(context.Background(), "p-low", "reason")
	require.Error(t, err)

	pending, err := svc.Pending(context.Background())
	require.NoError(t, err)
	assert.Len(t, pending, 4)
}
