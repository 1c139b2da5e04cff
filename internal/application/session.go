package application

import (
	"sync"
	"sync/atomic"

	"github.com/dartlens/dartlens/internal/domain"
)

// Session owns the state of one logical analysis surface: its root, its
// latest issue collection, and the in-flight guard. Nothing is shared
// between sessions.
type Session struct {
	root string
	mode domain.ToolMode

	inFlight atomic.Bool

	mu     sync.Mutex
	result *domain.Result
}

func NewSession(root string, mode domain.ToolMode) *Session {
	if mode == "" {
		mode = domain.ToolDart
	}
	return &Session{root: root, mode: mode}
}

func (s *Session) Root() string          { return s.root }
func (s *Session) Mode() domain.ToolMode { return s.mode }

// Result returns the latest completed run's result, or nil before the
// first run.
func (s *Session) Result() *domain.Result {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.result
}

// begin claims the in-flight flag; a false return means a run is already
// active and the caller must drop its request.
func (s *Session) begin() bool {
	return s.inFlight.CompareAndSwap(false, true)
}

func (s *Session) end() {
	s.inFlight.Store(false)
}

// replace installs a run's result as the session's collection. The previous
// collection is discarded wholesale; there is no merging.
func (s *Session) replace(result *domain.Result) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.result = result
}
