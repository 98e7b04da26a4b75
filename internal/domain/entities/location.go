package entities

import "time"

// Location is a place record for the location book.
type Location struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Region      string    `json:"region,omitempty"`
	Tags        []string  `json:"tags,omitempty"`
	VisitCount  int       `json:"visit_count"`
	LastVisited time.Time `json:"last_visited,omitempty"`
}
