package handlers

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abelxmendoza/Lore-Book-sub011/internal/domain/entities"
	"github.com/abelxmendoza/Lore-Book-sub011/internal/domain/mocks"
	"github.com/abelxmendoza/Lore-Book-sub011/internal/domain/services"
)

func TestReviewHandler_PendingGroups(t *testing.T) {
	api := &mocks.ProposalAPI{
		Pending: []entities.Proposal{
			{ID: "p1", RiskLevel: entities.RiskLow},
			{ID: "p2", RiskLevel: entities.RiskHigh},
			{ID: "p3", RiskLevel: entities.RiskLow},
			{ID: "p4", RiskLevel: entities.RiskMedium},
		},
	}
	h := NewReviewHandler(services.NewReviewService(api, zerolog.Nop()))

	queue, err := h.Pending(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 4, queue.Total)
	require.Len(t, queue.Groups, 3)
	assert.Equal(t, entities.RiskHigh, queue.Groups[0].Level)
	assert.Equal(t, entities.RiskMedium, queue.Groups[1].Level)
	assert.Equal(t, entities.RiskLow, queue.Groups[2].Level)
	assert.Len(t, queue.Groups[2].Proposals, 2)
}

func TestReviewHandler_ApproveShrinksQueue(t *testing.T) {
	api := &mocks.ProposalAPI{
		Pending: []entities.Proposal{
			{ID: "p1", RiskLevel: entities.RiskHigh},
			{ID: "p2", RiskLevel: entities.RiskLow},
		},
	}
	h := NewReviewHandler(services.NewReviewService(api, zerolog.Nop()))

	queue, err := h.Approve(context.Background(), "p1")
	require.NoError(t, err)

	assert.Equal(t, 1, queue.Total)
	require.Len(t, queue.Groups, 1)
	assert.Equal(t, entities.RiskLow, queue.Groups[0].Level)
}
