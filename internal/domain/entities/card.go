package entities

import (
	"strings"
	"time"
)

// untitledFallback is used when an entry has neither a title nor content
// to derive one from.
const untitledFallback = "Untitled entry"

// headlineLimit caps titles derived from entry content.
const headlineLimit = 60

// Card is the normalized, display-ready projection of an Entry. All list
// and grid surfaces consume Cards, never raw Entries, so the required
// fields are always populated.
type Card struct {
	ID         string    `json:"id"`
	Title      string    `json:"title"`
	Content    string    `json:"content"`
	Summary    string    `json:"summary,omitempty"`
	Date       time.Time `json:"date"`
	Tags       []string  `json:"tags"`
	Mood       string    `json:"mood,omitempty"`
	Source     string    `json:"source"`
	ChapterID  string    `json:"chapter_id,omitempty"`
	ArcID      string    `json:"arc_id,omitempty"`
	SagaID     string    `json:"saga_id,omitempty"`
	Characters []string  `json:"characters"`
	Favorite   bool      `json:"favorite"`
}

// CardFromEntry maps a backend entry record into a Card. It is pure and
// total: missing optional fields are defaulted, never rejected, and the
// same entry always yields the same card.
func CardFromEntry(e Entry) Card {
	title := strings.TrimSpace(e.Title)
	if title == "" {
		title = headline(e.Content)
	}

	source := e.Source
	if source == "" {
		source = "journal"
	}

	tags := make([]string, 0, len(e.Tags))
	tags = append(tags, e.Tags...)

	characters := make([]string, 0, len(e.Characters))
	characters = append(characters, e.Characters...)

	return Card{
		ID:         e.ID,
		Title:      title,
		Content:    e.Content,
		Summary:    e.Summary,
		Date:       e.Date,
		Tags:       tags,
		Mood:       e.Mood,
		Source:     source,
		ChapterID:  e.ChapterID,
		ArcID:      e.ArcID,
		SagaID:     e.SagaID,
		Characters: characters,
		Favorite:   e.Favorite,
	}
}

// CardsFromEntries maps a slice of entries, preserving order.
func CardsFromEntries(entries []Entry) []Card {
	cards := make([]Card, 0, len(entries))
	for _, e := range entries {
		cards = append(cards, CardFromEntry(e))
	}
	return cards
}

// headline derives a title from the first line of content.
func headline(content string) string {
	line := strings.TrimSpace(content)
	if idx := strings.IndexByte(line, '\n'); idx >= 0 {
		line = strings.TrimSpace(line[:idx])
	}
	if line == "" {
		return untitledFallback
	}
	if len(line) > headlineLimit {
		line = strings.TrimSpace(line[:headlineLimit]) + "..."
	}
	return line
}
