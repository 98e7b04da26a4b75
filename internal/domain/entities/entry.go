// Package entities contains core domain data structures.
package entities

import "time"

// Entry represents a raw journal entry record as returned by the backend.
// Every field except ID is optional; the backend omits fields it has no
// value for, so consumers must go through CardFromEntry rather than read
// an Entry directly.
type Entry struct {
	ID         string    `json:"id"`
	Title      string    `json:"title,omitempty"`
	Content    string    `json:"content,omitempty"`
	Summary    string    `json:"summary,omitempty"`
	Date       time.Time `json:"date,omitempty"`
	Tags       []string  `json:"tags,omitempty"`
	Mood       string    `json:"mood,omitempty"`
	Source     string    `json:"source,omitempty"`
	ChapterID  string    `json:"chapter_id,omitempty"`
	ArcID      string    `json:"arc_id,omitempty"`
	SagaID     string    `json:"saga_id,omitempty"`
	Characters []string  `json:"characters,omitempty"`
	Favorite   bool      `json:"favorite,omitempty"`
}

// SemanticHit is a thin semantic-search match. The backend returns only the
// entry id and score; full entry data is hydrated separately.
type SemanticHit struct {
	EntryID string  `json:"entry_id"`
	Score   float64 `json:"score"`
	Snippet string  `json:"snippet,omitempty"`
}

// Cluster is a group of related entries discovered by the backend, labeled
// with the shared theme and the reason the entries were grouped.
type Cluster struct {
	Label   string  `json:"label"`
	Reason  string  `json:"reason,omitempty"`
	Entries []Entry `json:"entries"`
}
