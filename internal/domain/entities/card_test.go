package entities

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCardFromEntry_Full(t *testing.T) {
	date := time.Date(2024, 3, 9, 0, 0, 0, 0, time.UTC)
	entry := Entry{
		ID:         "e1",
		Title:      "Moving day",
		Content:    "We packed up the apartment.",
		Summary:    "Left the old place.",
		Date:       date,
		Tags:       []string{"home", "change"},
		Mood:       "bittersweet",
		Source:     "import",
		ChapterID:  "ch-2",
		ArcID:      "arc-1",
		SagaID:     "saga-1",
		Characters: []string{"Maya"},
		Favorite:   true,
	}

	card := CardFromEntry(entry)

	assert.Equal(t, "e1", card.ID)
	assert.Equal(t, "Moving day", card.Title)
	assert.Equal(t, "We packed up the apartment.", card.Content)
	assert.Equal(t, "Left the old place.", card.Summary)
	assert.Equal(t, date, card.Date)
	assert.Equal(t, []string{"home", "change"}, card.Tags)
	assert.Equal(t, "bittersweet", card.Mood)
	assert.Equal(t, "import", card.Source)
	assert.Equal(t, "ch-2", card.ChapterID)
	assert.Equal(t, []string{"Maya"}, card.Characters)
	assert.True(t, card.Favorite)
}

func TestCardFromEntry_PartialRecords(t *testing.T) {
	tests := []struct {
		name      string
		entry     Entry
		wantTitle string
	}{
		{
			name:      "completely empty",
			entry:     Entry{},
			wantTitle: "Untitled entry",
		},
		{
			name:      "only id",
			entry:     Entry{ID: "e2"},
			wantTitle: "Untitled entry",
		},
		{
			name:      "title from first content line",
			entry:     Entry{ID: "e3", Content: "Coffee with Sam\nWe talked for hours."},
			wantTitle: "Coffee with Sam",
		},
		{
			name:      "whitespace title falls back to content",
			entry:     Entry{ID: "e4", Title: "   ", Content: "Rainy afternoon"},
			wantTitle: "Rainy afternoon",
		},
		{
			name: "long content is truncated",
			entry: Entry{
				ID:      "e5",
				Content: "This is a very long first line that keeps going well past any reasonable headline length for a card",
			},
			wantTitle: "This is a very long first line that keeps going well past an...",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			card := CardFromEntry(tt.entry)

			assert.Equal(t, tt.wantTitle, card.Title)
			assert.Equal(t, "journal", card.Source)
			assert.NotNil(t, card.Tags)
			assert.NotNil(t, card.Characters)
			assert.Empty(t, card.Tags)
			assert.Empty(t, card.Characters)
		})
	}
}

func TestCardFromEntry_Idempotent(t *testing.T) {
	entry := Entry{ID: "e1", Content: "same input\nsame output", Tags: []string{"a"}}

	first := CardFromEntry(entry)
	second := CardFromEntry(entry)

	assert.Equal(t, first, second)
}

func TestCardsFromEntries_PreservesOrder(t *testing.T) {
	cards := CardsFromEntries([]Entry{{ID: "a"}, {ID: "b"}, {ID: "c"}})

	assert.Len(t, cards, 3)
	assert.Equal(t, "a", cards[0].ID)
	assert.Equal(t, "c", cards[2].ID)
}
