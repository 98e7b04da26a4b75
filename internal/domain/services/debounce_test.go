package services

import (
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abelxmendoza/Lore-Book-sub011/internal/domain/entities"
	"github.com/abelxmendoza/Lore-Book-sub011/internal/domain/mocks"
)

func newTestSession(t *testing.T, delay time.Duration) (*SearchSession, *mocks.MemoryAPI) {
	t.Helper()
	api := &mocks.MemoryAPI{
		KeywordEntries: []entities.Entry{{ID: "k1", Title: "match"}},
	}
	session := NewSearchSession(NewSearchService(api, zerolog.Nop()), delay, 10)
	t.Cleanup(session.Close)
	return session, api
}

func waitForResult(t *testing.T, session *SearchSession) SessionResult {
	t.Helper()
	select {
	case res := <-session.Results():
		return res
	case <-time.After(2 * time.Second):
		t.Fatal("no search result delivered")
		return SessionResult{}
	}
}

func TestSearchSession_DeliversDebouncedResult(t *testing.T) {
	session, _ := newTestSession(t, 10*time.Millisecond)

	session.Submit("espresso")

	res := waitForResult(t, session)
	assert.Equal(t, "espresso", res.Query)
	require.Len(t, res.Results, 1)
	assert.Equal(t, entities.ResultTypeKeyword, res.Results[0].Type)
}

func TestSearchSession_RapidRetypingKeepsLastQueryOnly(t *testing.T) {
	session, _ := newTestSession(t, 30*time.Millisecond)

	session.Submit("e")
	session.Submit("es")
	session.Submit("espresso")

	res := waitForResult(t, session)
	assert.Equal(t, "espresso", res.Query)

	// The superseded submissions never fire.
	select {
	case extra := <-session.Results():
		t.Fatalf("unexpected extra delivery for query %q", extra.Query)
	case <-time.After(100 * time.Millisecond):
	}
}

func TestSearchSession_GenerationsIncrease(t *testing.T) {
	session, _ := newTestSession(t, 5*time.Millisecond)

	session.Submit("first")
	first := waitForResult(t, session)

	session.Submit("second")
	second := waitForResult(t, session)

	assert.Greater(t, second.Generation, first.Generation)
}

func TestSearchSession_SupersededInFlightResultNotDelivered(t *testing.T) {
	api := &mocks.MemoryAPI{
		KeywordEntries: []entities.Entry{{ID: "k1", Title: "match"}},
		SemanticGate:   make(chan struct{}),
	}
	session := NewSearchSession(NewSearchService(api, zerolog.Nop()), time.Millisecond, 10)
	t.Cleanup(session.Close)

	session.Submit("old")
	// Let the first search start and park on the gate.
	time.Sleep(50 * time.Millisecond)

	// Supersede it while it is still in flight, then release both
	// searches. Only the newer query's result may come out.
	session.Submit("new")
	api.SemanticGate <- struct{}{}
	api.SemanticGate <- struct{}{}

	res := waitForResult(t, session)
	assert.Equal(t, "new", res.Query)

	select {
	case extra := <-session.Results():
		t.Fatalf("unexpected extra delivery for query %q", extra.Query)
	case <-time.After(100 * time.Millisecond):
	}
}

func TestSearchSession_CloseStopsDelivery(t *testing.T) {
	session, _ := newTestSession(t, 20*time.Millisecond)

	session.Submit("espresso")
	session.Close()

	select {
	case res := <-session.Results():
		t.Fatalf("result delivered after close: %q", res.Query)
	case <-time.After(150 * time.Millisecond):
	}
}
