package api

import (
	"context"
	"fmt"

	"github.com/abelxmendoza/Lore-Book-sub011/internal/domain/entities"
)

// PendingProposals lists unresolved extraction proposals.
func (c *Client) PendingProposals(ctx context.Context) ([]entities.Proposal, error) {
	var out struct {
		Proposals []entities.Proposal `json:"proposals"`
	}
	if err := c.get(ctx, "/api/proposals/pending", nil, &out); err != nil {
		return nil, fmt.Errorf("fetching pending proposals: %w", err)
	}
	return out.Proposals, nil
}

// ApproveProposal accepts a proposal. Terminal.
func (c *Client) ApproveProposal(ctx context.Context, id string) error {
	if err := c.post(ctx, "/api/proposals/"+id+"/approve", nil, nil); err != nil {
		return fmt.Errorf("approving proposal %s: %w", id, err)
	}
	return nil
}

// RejectProposal declines a proposal with an optional reason. Terminal.
func (c *Client) RejectProposal(ctx context.Context, id, reason string) error {
	body := map[string]any{"reason": reason}
	if err := c.post(ctx, "/api/proposals/"+id+"/reject", body, nil); err != nil {
		return fmt.Errorf("rejecting proposal %s: %w", id, err)
	}
	return nil
}
