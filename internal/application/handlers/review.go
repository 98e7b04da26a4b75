package handlers

import (
	"context"
	"fmt"

	"github.com/abelxmendoza/Lore-Book-sub011/internal/domain/entities"
	"github.com/abelxmendoza/Lore-Book-sub011/internal/domain/services"
)

// ReviewHandler handles the proposal review queue.
type ReviewHandler struct {
	reviewService *services.ReviewService
}

// NewReviewHandler creates a new review handler.
func NewReviewHandler(reviewService *services.ReviewService) *ReviewHandler {
	return &ReviewHandler{
		reviewService: reviewService,
	}
}

// RiskGroup is one display group of pending proposals.
type RiskGroup struct {
	Level     entities.RiskLevel
	Proposals []entities.Proposal
}

// Queue contains the pending proposals grouped for display.
type Queue struct {
	Groups []RiskGroup
	Total  int
}

// Pending fetches and groups the pending queue, HIGH first.
func (h *ReviewHandler) Pending(ctx context.Context) (*Queue, error) {
	proposals, err := h.reviewService.Pending(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading review queue: %w", err)
	}
	return groupByRisk(proposals), nil
}

// Approve accepts a proposal and returns the refreshed queue.
func (h *ReviewHandler) Approve(ctx context.Context, id string) (*Queue, error) {
	remaining, err := h.reviewService.Approve(ctx, id)
	if err != nil {
		return nil, err
	}
	return groupByRisk(remaining), nil
}

// Reject declines a proposal and returns the refreshed queue.
func (h *ReviewHandler) Reject(ctx context.Context, id, reason string) (*Queue, error) {
	remaining, err := h.reviewService.Reject(ctx, id, reason)
	if err != nil {
		return nil, err
	}
	return groupByRisk(remaining), nil
}

// groupByRisk splits an already risk-sorted list into display groups.
func groupByRisk(proposals []entities.Proposal) *Queue {
	queue := &Queue{Total: len(proposals)}
	for _, p := range proposals {
		n := len(queue.Groups)
		if n == 0 || queue.Groups[n-1].Level != p.RiskLevel {
			queue.Groups = append(queue.Groups, RiskGroup{Level: p.RiskLevel})
			n++
		}
		queue.Groups[n-1].Proposals = append(queue.Groups[n-1].Proposals, p)
	}
	return queue
}
