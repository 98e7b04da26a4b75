package entities

import "time"

// EntityCandidate is a person, place or organization record tracked by the
// backend's deduplication pipeline. The client only reads these; all
// business rules live server-side.
type EntityCandidate struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Kind         string    `json:"kind"`
	Aliases      []string  `json:"aliases,omitempty"`
	MentionCount int       `json:"mention_count"`
	LastSeen     time.Time `json:"last_seen,omitempty"`
}

// EntityConflict is a suspected duplicate pair awaiting a merge or dismiss
// decision.
type EntityConflict struct {
	ID         string    `json:"id"`
	EntityAID  string    `json:"entity_a_id"`
	EntityBID  string    `json:"entity_b_id"`
	Similarity float64   `json:"similarity"`
	DetectedAt time.Time `json:"detected_at,omitempty"`
}

// EntityMergeRecord is one completed merge in the dashboard history.
type EntityMergeRecord struct {
	ID         string     `json:"id"`
	SourceID   string     `json:"source_id"`
	TargetID   string     `json:"target_id"`
	Reason     string     `json:"reason"`
	Reversible bool       `json:"reversible"`
	MergedAt   time.Time  `json:"merged_at"`
	RevertedAt *time.Time `json:"reverted_at,omitempty"`
}

// CanRevert reports whether the merge may still be undone.
func (r EntityMergeRecord) CanRevert() bool {
	return r.Reversible && r.RevertedAt == nil
}

// DashboardSnapshot is the combined entity-resolution state fetched in a
// single request and refetched wholesale after every mutation.
type DashboardSnapshot struct {
	Entities     []EntityCandidate   `json:"entities"`
	Conflicts    []EntityConflict    `json:"conflicts"`
	MergeHistory []EntityMergeRecord `json:"merge_history"`
}

// MergeRequest is the payload for merging two entity records. The reason
// is mandatory and must not be blank; validation happens client-side
// before any request is issued.
type MergeRequest struct {
	SourceID string `json:"source_id" validate:"required"`
	TargetID string `json:"target_id" validate:"required"`
	Reason   string `json:"reason" validate:"required,notblank"`
}
