package services

import (
	"context"
	"fmt"
	"sort"

	"github.com/rs/zerolog"

	"github.com/abelxmendoza/Lore-Book-sub011/internal/domain/entities"
	"github.com/abelxmendoza/Lore-Book-sub011/internal/domain/ports"
)

// ReviewService drives the proposal review queue. Approve and reject are
// terminal: a successful mutation is followed by a full refetch, and a
// failed one leaves the proposal pending so the user can retry.
type ReviewService struct {
	api ports.ProposalAPI
	log zerolog.Logger
}

// NewReviewService creates a new review service.
func NewReviewService(api ports.ProposalAPI, log zerolog.Logger) *ReviewService {
	return &ReviewService{
		api: api,
		log: log.With().Str("component", "review").Logger(),
	}
}

// Pending lists unresolved proposals ordered for display: HIGH risk
// first, then MEDIUM, then LOW, newest first within a level.
func (s *ReviewService) Pending(ctx context.Context) ([]entities.Proposal, error) {
	proposals, err := s.api.PendingProposals(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetching pending proposals: %w", err)
	}

	sort.SliceStable(proposals, func(i, j int) bool {
		ri, rj := proposals[i].RiskLevel.Rank(), proposals[j].RiskLevel.Rank()
		if ri != rj {
			return ri < rj
		}
		return proposals[i].CreatedAt.After(proposals[j].CreatedAt)
	})

	return proposals, nil
}

// Approve accepts a proposal and returns the refreshed pending list.
func (s *ReviewService) Approve(ctx context.Context, id string) ([]entities.Proposal, error) {
	if err := s.api.ApproveProposal(ctx, id); err != nil {
		s.log.Warn().Err(err).Str("proposal_id", id).Msg("approve failed, proposal stays pending")
		return nil, fmt.Errorf("approving proposal %s: %w", id, err)
	}
	return s.Pending(ctx)
}

// Reject declines a proposal with an optional free-text reason and
// returns the refreshed pending list.
func (s *ReviewService) Reject(ctx context.Context, id, reason string) ([]entities.Proposal, error) {
	if err := s.api.RejectProposal(ctx, id, reason); err != nil {
		s.log.Warn().Err(err).Str("proposal_id", id).Msg("reject failed, proposal stays pending")
		return nil, fmt.Errorf("rejecting proposal %s: %w", id, err)
	}
	return s.Pending(ctx)
}
