// Package ports defines the interfaces through which the domain layer
// reaches the Lore-Book backend API.
package ports

import (
	"context"

	"github.com/abelxmendoza/Lore-Book-sub011/internal/domain/entities"
)

// SkillListOptions filters skill listings.
type SkillListOptions struct {
	ActiveOnly bool
	Category   string
}

// MemoryAPI covers journal-entry reads: search, hydration, clustering and
// recency listings.
type MemoryAPI interface {
	// SemanticSearch runs a semantic query and returns thin hits ordered
	// by relevance.
	SemanticSearch(ctx context.Context, query string, limit int) ([]entities.SemanticHit, error)

	// KeywordSearch runs a plain keyword query over entry text.
	KeywordSearch(ctx context.Context, query string, limit int) ([]entities.Entry, error)

	// Entry fetches one full entry record by id.
	Entry(ctx context.Context, id string) (*entities.Entry, error)

	// Clusters finds related groups for the given entry ids.
	Clusters(ctx context.Context, entryIDs []string) ([]entities.Cluster, error)

	// Recent lists the most recent entries.
	Recent(ctx context.Context, limit int) ([]entities.Entry, error)
}

// LocationAPI lists place records for the location book.
type LocationAPI interface {
	Locations(ctx context.Context) ([]entities.Location, error)
}

// ProposalAPI drives the review queue. Approve and reject are terminal;
// a resolved proposal no longer appears in the pending list.
type ProposalAPI interface {
	PendingProposals(ctx context.Context) ([]entities.Proposal, error)
	ApproveProposal(ctx context.Context, id string) error
	RejectProposal(ctx context.Context, id, reason string) error
}

// ResolutionAPI drives the entity-resolution dashboard. The server is the
// source of truth; the client mutates and refetches, never reconciles
// locally.
type ResolutionAPI interface {
	Dashboard(ctx context.Context) (*entities.DashboardSnapshot, error)
	MergeEntities(ctx context.Context, req entities.MergeRequest) error
	DismissConflict(ctx context.Context, conflictID string) error
	RevertMerge(ctx context.Context, mergeID string) error
}

// SkillAPI covers the skill tracker endpoints.
type SkillAPI interface {
	Skills(ctx context.Context, opts SkillListOptions) ([]entities.Skill, error)
	Skill(ctx context.Context, id string) (*entities.Skill, error)
	CreateSkill(ctx context.Context, skill entities.Skill) (*entities.Skill, error)
	UpdateSkill(ctx context.Context, id string, skill entities.Skill) (*entities.Skill, error)
	DeleteSkill(ctx context.Context, id string) error

	// AddXP posts an XP gain and returns the updated skill.
	AddXP(ctx context.Context, id string, amount float64, reason string) (*entities.Skill, error)

	// SkillProgress returns the progress history log, newest first.
	SkillProgress(ctx context.Context, id string, limit int) ([]entities.SkillProgress, error)

	// ExtractSkills asks the backend to extract skill mentions from free
	// text. Extraction runs server-side.
	ExtractSkills(ctx context.Context, text string) ([]entities.Skill, error)
}

// DevAPI exposes development-only helpers.
type DevAPI interface {
	// PopulateDummyData asks the backend to seed itself with sample data.
	PopulateDummyData(ctx context.Context) error
}
