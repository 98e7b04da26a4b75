// Package mocks provides hand-written port implementations for tests.
package mocks

import (
	"context"
	"fmt"

	"github.com/abelxmendoza/Lore-Book-sub011/internal/domain/entities"
	"github.com/abelxmendoza/Lore-Book-sub011/internal/domain/ports"
)

// MemoryAPI is a configurable in-memory ports.MemoryAPI.
type MemoryAPI struct {
	SemanticHits []entities.SemanticHit
	SemanticErr  error

	KeywordEntries []entities.Entry
	KeywordErr     error

	Entries  map[string]entities.Entry
	EntryErr error

	ClusterGroups []entities.Cluster
	ClustersErr   error

	RecentEntries []entities.Entry
	RecentErr     error

	// ClusterCalls records the entry-id sets passed to Clusters.
	ClusterCalls [][]string

	// SemanticGate, when set, parks SemanticSearch until a value is
	// received, letting tests hold a search in flight.
	SemanticGate chan struct{}
}

func (m *MemoryAPI) SemanticSearch(ctx context.Context, query string, limit int) ([]entities.SemanticHit, error) {
	if m.SemanticGate != nil {
		<-m.SemanticGate
	}
	if m.SemanticErr != nil {
		return nil, m.SemanticErr
	}
	if limit > 0 && limit < len(m.SemanticHits) {
		return m.SemanticHits[:limit], nil
	}
	return m.SemanticHits, nil
}

func (m *MemoryAPI) KeywordSearch(ctx context.Context, query string, limit int) ([]entities.Entry, error) {
	if m.KeywordErr != nil {
		return nil, m.KeywordErr
	}
	if limit > 0 && limit < len(m.KeywordEntries) {
		return m.KeywordEntries[:limit], nil
	}
	return m.KeywordEntries, nil
}

func (m *MemoryAPI) Entry(ctx context.Context, id string) (*entities.Entry, error) {
	if m.EntryErr != nil {
		return nil, m.EntryErr
	}
	entry, ok := m.Entries[id]
	if !ok {
		return nil, fmt.Errorf("entry %s not found", id)
	}
	return &entry, nil
}

func (m *MemoryAPI) Clusters(ctx context.Context, entryIDs []string) ([]entities.Cluster, error) {
	ids := make([]string, len(entryIDs))
	copy(ids, entryIDs)
	m.ClusterCalls = append(m.ClusterCalls, ids)
	if m.ClustersErr != nil {
		return nil, m.ClustersErr
	}
	return m.ClusterGroups, nil
}

func (m *MemoryAPI) Recent(ctx context.Context, limit int) ([]entities.Entry, error) {
	if m.RecentErr != nil {
		return nil, m.RecentErr
	}
	return m.RecentEntries, nil
}

// LocationAPI is a configurable in-memory ports.LocationAPI.
type LocationAPI struct {
	LocationList []entities.Location
	Err          error
}

func (m *LocationAPI) Locations(ctx context.Context) ([]entities.Location, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	return m.LocationList, nil
}

// ProposalAPI is a configurable in-memory ports.ProposalAPI. Approvals and
// rejections mutate the pending list the way the real backend would.
type ProposalAPI struct {
	Pending    []entities.Proposal
	ListErr    error
	ApproveErr error
	RejectErr  error

	Approved []string
	Rejected map[string]string
}

func (m *ProposalAPI) PendingProposals(ctx context.Context) ([]entities.Proposal, error) {
	if m.ListErr != nil {
		return nil, m.ListErr
	}
	out := make([]entities.Proposal, len(m.Pending))
	copy(out, m.Pending)
	return out, nil
}

func (m *ProposalAPI) ApproveProposal(ctx context.Context, id string) error {
	if m.ApproveErr != nil {
		return m.ApproveErr
	}
	m.Approved = append(m.Approved, id)
	m.removePending(id)
	return nil
}

func (m *ProposalAPI) RejectProposal(ctx context.Context, id, reason string) error {
	if m.RejectErr != nil {
		return m.RejectErr
	}
	if m.Rejected == nil {
		m.Rejected = make(map[string]string)
	}
	m.Rejected[id] = reason
	m.removePending(id)
	return nil
}

func (m *ProposalAPI) removePending(id string) {
	kept := m.Pending[:0]
	for _, p := range m.Pending {
		if p.ID != id {
			kept = append(kept, p)
		}
	}
	m.Pending = kept
}

// ResolutionAPI is a configurable in-memory ports.ResolutionAPI.
type ResolutionAPI struct {
	Snapshot     *entities.DashboardSnapshot
	DashboardErr error
	MergeErr     error
	DismissErr   error
	RevertErr    error

	MergeCalls   []entities.MergeRequest
	Dismissed    []string
	Reverted     []string
	FetchCount   int
}

func (m *ResolutionAPI) Dashboard(ctx context.Context) (*entities.DashboardSnapshot, error) {
	m.FetchCount++
	if m.DashboardErr != nil {
		return nil, m.DashboardErr
	}
	if m.Snapshot == nil {
		return &entities.DashboardSnapshot{}, nil
	}
	snap := *m.Snapshot
	return &snap, nil
}

func (m *ResolutionAPI) MergeEntities(ctx context.Context, req entities.MergeRequest) error {
	if m.MergeErr != nil {
		return m.MergeErr
	}
	m.MergeCalls = append(m.MergeCalls, req)
	return nil
}

func (m *ResolutionAPI) DismissConflict(ctx context.Context, conflictID string) error {
	if m.DismissErr != nil {
		return m.DismissErr
	}
	m.Dismissed = append(m.Dismissed, conflictID)
	return nil
}

func (m *ResolutionAPI) RevertMerge(ctx context.Context, mergeID string) error {
	if m.RevertErr != nil {
		return m.RevertErr
	}
	m.Reverted = append(m.Reverted, mergeID)
	return nil
}

// SkillAPI is a configurable in-memory ports.SkillAPI.
type SkillAPI struct {
	SkillList   []entities.Skill
	ListErr     error
	GetErr      error
	MutateErr   error
	ProgressLog []entities.SkillProgress
	Extracted   []entities.Skill

	XPCalls []XPCall
}

// XPCall records one AddXP invocation.
type XPCall struct {
	ID     string
	Amount float64
	Reason string
}

func (m *SkillAPI) Skills(ctx context.Context, opts ports.SkillListOptions) ([]entities.Skill, error) {
	if m.ListErr != nil {
		return nil, m.ListErr
	}
	var out []entities.Skill
	for _, s := range m.SkillList {
		if opts.ActiveOnly && !s.Active {
			continue
		}
		if opts.Category != "" && s.Category != opts.Category {
			continue
		}
		out = append(out, s)
	}
	return out, nil
}

func (m *SkillAPI) Skill(ctx context.Context, id string) (*entities.Skill, error) {
	if m.GetErr != nil {
		return nil, m.GetErr
	}
	for _, s := range m.SkillList {
		if s.ID == id {
			skill := s
			return &skill, nil
		}
	}
	return nil, fmt.Errorf("skill %s not found", id)
}

func (m *SkillAPI) CreateSkill(ctx context.Context, skill entities.Skill) (*entities.Skill, error) {
	if m.MutateErr != nil {
		return nil, m.MutateErr
	}
	m.SkillList = append(m.SkillList, skill)
	return &skill, nil
}

func (m *SkillAPI) UpdateSkill(ctx context.Context, id string, skill entities.Skill) (*entities.Skill, error) {
	if m.MutateErr != nil {
		return nil, m.MutateErr
	}
	for i, s := range m.SkillList {
		if s.ID == id {
			skill.ID = id
			m.SkillList[i] = skill
			return &skill, nil
		}
	}
	return nil, fmt.Errorf("skill %s not found", id)
}

func (m *SkillAPI) DeleteSkill(ctx context.Context, id string) error {
	if m.MutateErr != nil {
		return m.MutateErr
	}
	kept := m.SkillList[:0]
	for _, s := range m.SkillList {
		if s.ID != id {
			kept = append(kept, s)
		}
	}
	m.SkillList = kept
	return nil
}

func (m *SkillAPI) AddXP(ctx context.Context, id string, amount float64, reason string) (*entities.Skill, error) {
	if m.MutateErr != nil {
		return nil, m.MutateErr
	}
	m.XPCalls = append(m.XPCalls, XPCall{ID: id, Amount: amount, Reason: reason})
	return m.Skill(ctx, id)
}

func (m *SkillAPI) SkillProgress(ctx context.Context, id string, limit int) ([]entities.SkillProgress, error) {
	if m.GetErr != nil {
		return nil, m.GetErr
	}
	if limit > 0 && limit < len(m.ProgressLog) {
		return m.ProgressLog[:limit], nil
	}
	return m.ProgressLog, nil
}

func (m *SkillAPI) ExtractSkills(ctx context.Context, text string) ([]entities.Skill, error) {
	if m.MutateErr != nil {
		return nil, m.MutateErr
	}
	return m.Extracted, nil
}
