package agent

import (
	"fmt"
	"sync"
	"time"
)

// #region sessions

// SessionSource hands out unique session IDs. The clock is injected so IDs
// are deterministic under test.
type SessionSource struct {
	mu      sync.Mutex
	counter int
	now     func() time.Time
}

func NewSessionSource(now func() time.Time) *SessionSource {
	if now == nil {
		now = time.Now
	}
	return &SessionSource{now: now}
}

// Next returns the next session ID, e.g. "math_session_3_20260901_142500".
func (s *SessionSource) Next() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.counter++
	return fmt.Sprintf("math_session_%d_%s", s.counter, s.now().Format("20060102_150405"))
}

// #endregion sessions
