package entities

import "time"

// RiskLevel scores how disruptive accepting a proposal would be.
type RiskLevel string

// Risk levels as reported by the backend.
const (
	RiskHigh   RiskLevel = "HIGH"
	RiskMedium RiskLevel = "MEDIUM"
	RiskLow    RiskLevel = "LOW"
)

// Rank returns the display priority of the risk level. Lower ranks are
// surfaced first; unknown levels sort last.
func (r RiskLevel) Rank() int {
	switch r {
	case RiskHigh:
		return 0
	case RiskMedium:
		return 1
	case RiskLow:
		return 2
	default:
		return 3
	}
}

// ProposalStatus is the lifecycle state of a proposal. Approved and
// rejected are terminal; resolved proposals drop out of the pending list.
type ProposalStatus string

// Proposal lifecycle states.
const (
	ProposalPending  ProposalStatus = "PENDING"
	ProposalApproved ProposalStatus = "APPROVED"
	ProposalRejected ProposalStatus = "REJECTED"
)

// Proposal is a pending extraction suggestion generated by the backend.
// It requires explicit approval or rejection before taking effect.
type Proposal struct {
	ID               string         `json:"id"`
	ClaimText        string         `json:"claim_text"`
	RiskLevel        RiskLevel      `json:"risk_level"`
	Confidence       float64        `json:"confidence"`
	Reasoning        string         `json:"reasoning,omitempty"`
	SourceExcerpt    string         `json:"source_excerpt,omitempty"`
	AffectedClaimIDs []string       `json:"affected_claim_ids,omitempty"`
	Status           ProposalStatus `json:"status"`
	CreatedAt        time.Time      `json:"created_at"`
}
