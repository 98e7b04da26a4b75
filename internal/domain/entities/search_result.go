package entities

// ResultType identifies which search strategy produced a result bucket.
type ResultType string

// Result buckets are always aggregated in this order: semantic results
// first, then keyword matches, then clusters.
const (
	ResultTypeSemantic ResultType = "semantic"
	ResultTypeKeyword  ResultType = "keyword"
	ResultTypeCluster  ResultType = "cluster"
)

// SearchResult is a tagged bucket of cards produced for a single search
// request. Results are transient and never persisted.
type SearchResult struct {
	Type          ResultType `json:"type"`
	Memories      []Card     `json:"memories"`
	ClusterLabel  string     `json:"cluster_label,omitempty"`
	ClusterReason string     `json:"cluster_reason,omitempty"`
}
