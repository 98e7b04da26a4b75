package services

import (
	"context"
	"sync"
	"time"

	"github.com/abelxmendoza/Lore-Book-sub011/internal/domain/entities"
)

// DebounceDelay is how long a query must sit unchanged before a request
// goes out.
const DebounceDelay = 300 * time.Millisecond

// SessionResult is one delivered search outcome, tagged with the
// generation of the submission that produced it.
type SessionResult struct {
	Query      string
	Generation int64
	Results    []entities.SearchResult
}

// SearchSession layers debouncing and last-write-wins ordering on top of
// SearchService for interactive callers. Every submission gets a
// monotonically increasing generation; a submission supersedes the
// previous one by cancelling its in-flight request, and responses whose
// generation is no longer current are discarded instead of applied.
type SearchSession struct {
	svc   *SearchService
	delay time.Duration
	limit int

	ctx     context.Context
	cancel  context.CancelFunc
	results chan SessionResult

	mu       sync.Mutex
	gen      int64
	timer    *time.Timer
	inflight context.CancelFunc
}

// NewSearchSession creates a session. A non-positive delay falls back to
// DebounceDelay.
func NewSearchSession(svc *SearchService, delay time.Duration, limit int) *SearchSession {
	if delay <= 0 {
		delay = DebounceDelay
	}
	ctx, cancel := context.WithCancel(context.Background())
	return &SearchSession{
		svc:     svc,
		delay:   delay,
		limit:   limit,
		ctx:     ctx,
		cancel:  cancel,
		results: make(chan SessionResult, 1),
	}
}

// Submit records a new query, resetting the debounce window. Only the
// most recent submission ever produces a delivered result.
func (s *SearchSession) Submit(query string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.gen++
	gen := s.gen

	if s.timer != nil {
		s.timer.Stop()
	}
	s.timer = time.AfterFunc(s.delay, func() {
		s.run(gen, query)
	})
}

// run executes the search for one debounced submission.
func (s *SearchSession) run(gen int64, query string) {
	s.mu.Lock()
	if gen != s.gen {
		// Superseded while debouncing.
		s.mu.Unlock()
		return
	}
	if s.inflight != nil {
		s.inflight()
	}
	ctx, cancel := context.WithCancel(s.ctx)
	s.inflight = cancel
	s.mu.Unlock()

	results := s.svc.Search(ctx, query, s.limit)
	cancel()

	// The staleness check and the delivery happen under one lock, so a
	// Submit racing this completion cannot slip in between them. The
	// buffer holds only the newest undelivered result; an unread stale
	// one is replaced rather than queued behind.
	s.mu.Lock()
	defer s.mu.Unlock()
	if gen != s.gen {
		return
	}

	res := SessionResult{Query: query, Generation: gen, Results: results}
	select {
	case s.results <- res:
	default:
		select {
		case <-s.results:
		default:
		}
		select {
		case s.results <- res:
		default:
		}
	}
}

// Results delivers outcomes of current-generation searches.
func (s *SearchSession) Results() <-chan SessionResult {
	return s.results
}

// Close tears the session down. Pending timers are stopped, the in-flight
// request is cancelled and nothing is delivered afterwards.
func (s *SearchSession) Close() {
	s.mu.Lock()
	if s.timer != nil {
		s.timer.Stop()
	}
	// Invalidate every outstanding generation.
	s.gen++
	if s.inflight != nil {
		s.inflight()
	}
	s.mu.Unlock()

	s.cancel()
}
