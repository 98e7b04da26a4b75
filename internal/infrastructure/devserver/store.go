package devserver

import (
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/abelxmendoza/Lore-Book-sub011/internal/domain/entities"
	"github.com/abelxmendoza/Lore-Book-sub011/internal/domain/ports"
)

// ErrNotFound is returned by store lookups for unknown ids.
var ErrNotFound = fmt.Errorf("record not found")

// ErrConflictState is returned for mutations on records that are already
// in a terminal state.
var ErrConflictState = fmt.Errorf("record already resolved")

// Store is the in-memory backend state. All methods are safe for
// concurrent use; every mutation happens under one mutex so the dashboard
// always reads as a consistent snapshot.
type Store struct {
	mu sync.Mutex

	entries   []entities.Entry
	locations []entities.Location
	proposals []entities.Proposal
	skills    []entities.Skill
	progress  map[string][]entities.SkillProgress

	candidates []entities.EntityCandidate
	conflicts  []entities.EntityConflict
	merges     []entities.EntityMergeRecord
	absorbed   map[string]entities.EntityCandidate
}

// NewStore returns an empty store. Call Populate to load sample data.
func NewStore() *Store {
	return &Store{
		progress: make(map[string][]entities.SkillProgress),
		absorbed: make(map[string]entities.EntityCandidate),
	}
}

// Populate resets the store to the sample data set, discarding any state
// accumulated since the last reset.
func (s *Store) Populate(
	entries []entities.Entry,
	locations []entities.Location,
	proposals []entities.Proposal,
	skills []entities.Skill,
) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries = append([]entities.Entry(nil), entries...)
	s.locations = append([]entities.Location(nil), locations...)
	s.proposals = append([]entities.Proposal(nil), proposals...)
	s.skills = append([]entities.Skill(nil), skills...)
	s.progress = make(map[string][]entities.SkillProgress)
	s.absorbed = make(map[string]entities.EntityCandidate)
	s.merges = nil
	s.seedResolutionLocked()
}

// seedResolutionLocked derives entity candidates from the character names
// mentioned in entries and plants one near-duplicate pair so the
// resolution dashboard has a conflict to work with.
func (s *Store) seedResolutionLocked() {
	seen := map[string]int{}
	for _, e := range s.entries {
		for _, name := range e.Characters {
			seen[name]++
		}
	}

	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	sort.Strings(names)

	s.candidates = s.candidates[:0]
	for _, name := range names {
		s.candidates = append(s.candidates, entities.EntityCandidate{
			ID:           candidateID(name),
			Name:         name,
			Kind:         "person",
			MentionCount: seen[name],
			LastSeen:     time.Date(2025, 5, 20, 0, 0, 0, 0, time.UTC),
		})
	}

	// The duplicate nobody asked for.
	dup := entities.EntityCandidate{
		ID:           candidateID("Sam T."),
		Name:         "Sam T.",
		Kind:         "person",
		MentionCount: 1,
		LastSeen:     time.Date(2025, 5, 22, 0, 0, 0, 0, time.UTC),
	}
	s.candidates = append(s.candidates, dup)

	s.conflicts = []entities.EntityConflict{{
		ID:         candidateID("conflict/sam"),
		EntityAID:  candidateID("Sam"),
		EntityBID:  dup.ID,
		Similarity: 0.87,
		DetectedAt: time.Date(2025, 5, 23, 0, 0, 0, 0, time.UTC),
	}}
}

var candidateNamespace = uuid.NewSHA1(uuid.NameSpaceOID, []byte("lorebook/devserver"))

func candidateID(name string) string {
	return uuid.NewSHA1(candidateNamespace, []byte(name)).String()
}

// SemanticSearch ranks entries by token overlap with the query. It is a
// stand-in for the real semantic index, good enough to exercise clients.
func (s *Store) SemanticSearch(query string, limit int) []entities.SemanticHit {
	s.mu.Lock()
	defer s.mu.Unlock()

	terms := tokenize(query)
	if len(terms) == 0 {
		return []entities.SemanticHit{}
	}

	hits := make([]entities.SemanticHit, 0)
	for _, e := range s.entries {
		text := tokenize(e.Title + " " + e.Content + " " + strings.Join(e.Tags, " "))
		matched := 0
		for t := range terms {
			if _, ok := text[t]; ok {
				matched++
			}
		}
		if matched == 0 {
			continue
		}
		hits = append(hits, entities.SemanticHit{
			EntryID: e.ID,
			Score:   float64(matched) / float64(len(terms)),
			Snippet: snippet(e.Content),
		})
	}

	sort.SliceStable(hits, func(i, j int) bool { return hits[i].Score > hits[j].Score })
	if limit > 0 && len(hits) > limit {
		hits = hits[:limit]
	}
	return hits
}

// KeywordSearch matches entries whose title or content contains the query
// as a case-insensitive substring.
func (s *Store) KeywordSearch(query string, limit int) []entities.Entry {
	s.mu.Lock()
	defer s.mu.Unlock()

	needle := strings.ToLower(strings.TrimSpace(query))
	matches := make([]entities.Entry, 0)
	if needle == "" {
		return matches
	}
	for _, e := range s.entries {
		if strings.Contains(strings.ToLower(e.Title), needle) ||
			strings.Contains(strings.ToLower(e.Content), needle) {
			matches = append(matches, e)
		}
	}
	if limit > 0 && len(matches) > limit {
		matches = matches[:limit]
	}
	return matches
}

// Entry returns one entry by id.
func (s *Store) Entry(id string) (*entities.Entry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, e := range s.entries {
		if e.ID == id {
			out := e
			return &out, nil
		}
	}
	return nil, fmt.Errorf("entry %s: %w", id, ErrNotFound)
}

// Recent returns entries ordered newest first.
func (s *Store) Recent(limit int) []entities.Entry {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := append([]entities.Entry(nil), s.entries...)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Date.After(out[j].Date) })
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}

// Clusters groups entries by tags shared with the given entry ids. A tag
// forms a cluster only when at least two entries carry it.
func (s *Store) Clusters(entryIDs []string) []entities.Cluster {
	s.mu.Lock()
	defer s.mu.Unlock()

	wanted := map[string]bool{}
	for _, e := range s.entries {
		for _, id := range entryIDs {
			if e.ID == id {
				for _, tag := range e.Tags {
					wanted[tag] = true
				}
			}
		}
	}

	tags := make([]string, 0, len(wanted))
	for tag := range wanted {
		tags = append(tags, tag)
	}
	sort.Strings(tags)

	clusters := make([]entities.Cluster, 0)
	for _, tag := range tags {
		var members []entities.Entry
		for _, e := range s.entries {
			for _, t := range e.Tags {
				if t == tag {
					members = append(members, e)
					break
				}
			}
		}
		if len(members) < 2 {
			continue
		}
		clusters = append(clusters, entities.Cluster{
			Label:   tag,
			Reason:  fmt.Sprintf("%d entries share the tag %q", len(members), tag),
			Entries: members,
		})
	}
	return clusters
}

// Locations lists place records.
func (s *Store) Locations() []entities.Location {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]entities.Location(nil), s.locations...)
}

// PendingProposals lists proposals still awaiting a decision.
func (s *Store) PendingProposals() []entities.Proposal {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]entities.Proposal, 0)
	for _, p := range s.proposals {
		if p.Status == entities.ProposalPending {
			out = append(out, p)
		}
	}
	return out
}

// ResolveProposal moves a pending proposal to a terminal status.
func (s *Store) ResolveProposal(id string, status entities.ProposalStatus, reason string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, p := range s.proposals {
		if p.ID != id {
			continue
		}
		if p.Status != entities.ProposalPending {
			return fmt.Errorf("proposal %s: %w", id, ErrConflictState)
		}
		s.proposals[i].Status = status
		if reason != "" {
			s.proposals[i].Reasoning = reason
		}
		return nil
	}
	return fmt.Errorf("proposal %s: %w", id, ErrNotFound)
}

// Dashboard returns the entity-resolution snapshot.
func (s *Store) Dashboard() entities.DashboardSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	return entities.DashboardSnapshot{
		Entities:     append([]entities.EntityCandidate(nil), s.candidates...),
		Conflicts:    append([]entities.EntityConflict(nil), s.conflicts...),
		MergeHistory: append([]entities.EntityMergeRecord(nil), s.merges...),
	}
}

// Merge absorbs the source entity into the target, records the merge and
// drops every conflict that referenced the source.
func (s *Store) Merge(req entities.MergeRequest) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	source, ok := s.findCandidateLocked(req.SourceID)
	if !ok {
		return fmt.Errorf("source entity %s: %w", req.SourceID, ErrNotFound)
	}
	target, ok := s.findCandidateLocked(req.TargetID)
	if !ok {
		return fmt.Errorf("target entity %s: %w", req.TargetID, ErrNotFound)
	}

	s.absorbed[source.ID] = *source
	s.removeCandidateLocked(source.ID)
	target.Aliases = append(target.Aliases, source.Name)
	target.MentionCount += source.MentionCount

	kept := s.conflicts[:0]
	for _, c := range s.conflicts {
		if c.EntityAID == req.SourceID || c.EntityBID == req.SourceID {
			continue
		}
		kept = append(kept, c)
	}
	s.conflicts = kept

	s.merges = append(s.merges, entities.EntityMergeRecord{
		ID:         uuid.NewString(),
		SourceID:   req.SourceID,
		TargetID:   req.TargetID,
		Reason:     req.Reason,
		Reversible: true,
		MergedAt:   time.Now().UTC(),
	})
	return nil
}

// DismissConflict resolves a conflict without merging.
func (s *Store) DismissConflict(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, c := range s.conflicts {
		if c.ID == id {
			s.conflicts = append(s.conflicts[:i], s.conflicts[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("conflict %s: %w", id, ErrNotFound)
}

// RevertMerge undoes a merge, restoring the absorbed source entity.
func (s *Store) RevertMerge(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, m := range s.merges {
		if m.ID != id {
			continue
		}
		if !m.CanRevert() {
			return fmt.Errorf("merge %s: %w", id, ErrConflictState)
		}
		now := time.Now().UTC()
		s.merges[i].RevertedAt = &now

		if source, ok := s.absorbed[m.SourceID]; ok {
			s.candidates = append(s.candidates, source)
			delete(s.absorbed, m.SourceID)
		}
		if target, ok := s.findCandidateLocked(m.TargetID); ok {
			target.Aliases = removeString(target.Aliases, s.candidateNameLocked(m.SourceID))
		}
		return nil
	}
	return fmt.Errorf("merge %s: %w", id, ErrNotFound)
}

func (s *Store) findCandidateLocked(id string) (*entities.EntityCandidate, bool) {
	for i := range s.candidates {
		if s.candidates[i].ID == id {
			return &s.candidates[i], true
		}
	}
	return nil, false
}

func (s *Store) removeCandidateLocked(id string) {
	for i := range s.candidates {
		if s.candidates[i].ID == id {
			s.candidates = append(s.candidates[:i], s.candidates[i+1:]...)
			return
		}
	}
}

func (s *Store) candidateNameLocked(id string) string {
	if c, ok := s.findCandidateLocked(id); ok {
		return c.Name
	}
	for _, c := range s.absorbed {
		if c.ID == id {
			return c.Name
		}
	}
	return ""
}

// Skills lists skills matching the options.
func (s *Store) Skills(opts ports.SkillListOptions) []entities.Skill {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]entities.Skill, 0)
	for _, sk := range s.skills {
		if opts.ActiveOnly && !sk.Active {
			continue
		}
		if opts.Category != "" && sk.Category != opts.Category {
			continue
		}
		out = append(out, sk)
	}
	return out
}

// Skill returns one skill by id.
func (s *Store) Skill(id string) (*entities.Skill, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, sk := range s.skills {
		if sk.ID == id {
			out := sk
			return &out, nil
		}
	}
	return nil, fmt.Errorf("skill %s: %w", id, ErrNotFound)
}

// CreateSkill registers a new skill, assigning it an id and level 1 if
// the caller did not set one.
func (s *Store) CreateSkill(skill entities.Skill) entities.Skill {
	s.mu.Lock()
	defer s.mu.Unlock()

	if skill.ID == "" {
		skill.ID = uuid.NewString()
	}
	if skill.Level < 1 {
		skill.Level = 1
	}
	skill.CreatedAt = time.Now().UTC()
	skill.UpdatedAt = skill.CreatedAt
	s.skills = append(s.skills, skill)
	return skill
}

// UpdateSkill overwrites the mutable fields of a skill.
func (s *Store) UpdateSkill(id string, in entities.Skill) (*entities.Skill, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.skills {
		if s.skills[i].ID != id {
			continue
		}
		if in.Name != "" {
			s.skills[i].Name = in.Name
		}
		if in.Category != "" {
			s.skills[i].Category = in.Category
		}
		s.skills[i].Active = in.Active
		s.skills[i].Metadata = in.Metadata
		s.skills[i].UpdatedAt = time.Now().UTC()
		out := s.skills[i]
		return &out, nil
	}
	return nil, fmt.Errorf("skill %s: %w", id, ErrNotFound)
}

// DeleteSkill removes a skill and its progress log.
func (s *Store) DeleteSkill(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.skills {
		if s.skills[i].ID == id {
			s.skills = append(s.skills[:i], s.skills[i+1:]...)
			delete(s.progress, id)
			return nil
		}
	}
	return fmt.Errorf("skill %s: %w", id, ErrNotFound)
}

// AddXP credits XP to a skill, rolling the level over whenever the
// current level's requirement is met, and appends a progress record.
func (s *Store) AddXP(id string, amount float64, reason string) (*entities.Skill, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.skills {
		if s.skills[i].ID != id {
			continue
		}
		sk := &s.skills[i]
		sk.XP += amount
		for sk.XP >= entities.XPForLevel(sk.Level) {
			sk.XP -= entities.XPForLevel(sk.Level)
			sk.Level++
		}
		sk.UpdatedAt = time.Now().UTC()

		s.progress[id] = append(s.progress[id], entities.SkillProgress{
			SkillID:    id,
			XPDelta:    amount,
			Level:      sk.Level,
			Reason:     reason,
			RecordedAt: sk.UpdatedAt,
		})
		out := *sk
		return &out, nil
	}
	return nil, fmt.Errorf("skill %s: %w", id, ErrNotFound)
}

// Progress returns a skill's progress log, newest first.
func (s *Store) Progress(id string, limit int) []entities.SkillProgress {
	s.mu.Lock()
	defer s.mu.Unlock()

	log := append([]entities.SkillProgress(nil), s.progress[id]...)
	sort.SliceStable(log, func(i, j int) bool { return log[i].RecordedAt.After(log[j].RecordedAt) })
	if limit > 0 && len(log) > limit {
		log = log[:limit]
	}
	return log
}

// ExtractSkills returns the known skills whose names appear in the text.
func (s *Store) ExtractSkills(text string) []entities.Skill {
	s.mu.Lock()
	defer s.mu.Unlock()

	lower := strings.ToLower(text)
	out := make([]entities.Skill, 0)
	for _, sk := range s.skills {
		if strings.Contains(lower, strings.ToLower(sk.Name)) {
			out = append(out, sk)
		}
	}
	return out
}

func tokenize(text string) map[string]struct{} {
	tokens := make(map[string]struct{})
	for _, f := range strings.Fields(strings.ToLower(text)) {
		f = strings.Trim(f, ".,!?:;\"'()")
		if len(f) > 2 {
			tokens[f] = struct{}{}
		}
	}
	return tokens
}

func snippet(content string) string {
	const max = 80
	if len(content) <= max {
		return content
	}
	return content[:max] + "..."
}

func removeString(list []string, v string) []string {
	out := list[:0]
	for _, s := range list {
		if s != v {
			out = append(out, s)
		}
	}
	return out
}
