package feedback

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// #region types

// Record is one user rating for a delivered response. Append-only.
type Record struct {
	Question  string    `json:"question"`
	Response  string    `json:"response"`
	Rating    int       `json:"user_rating"`
	Comments  string    `json:"user_comments"`
	Timestamp time.Time `json:"timestamp"`
	SessionID string    `json:"session_id"`
}

// Summary aggregates the full feedback history.
type Summary struct {
	Count         int            `json:"total_feedback"`
	AverageRating float64        `json:"average_rating"`
	Distribution  map[string]int `json:"rating_distribution"`
	Recent        []Record       `json:"recent_feedback"`
}

// #endregion types

// #region store

// Store keeps the feedback history in memory, mirrored to a JSON log on
// every mutation. Serializes concurrent writers with a single lock.
type Store struct {
	mu      sync.Mutex
	path    string
	history []Record
}

// NewStore loads the feedback log at path. A missing, empty, or malformed
// log is reset to an empty valid one instead of failing.
func NewStore(path string) (*Store, error) {
	s := &Store{path: path}

	raw, err := os.ReadFile(path)
	switch {
	case os.IsNotExist(err):
		if err := s.save(); err != nil {
			return nil, fmt.Errorf("init feedback log: %w", err)
		}
	case err != nil:
		return nil, fmt.Errorf("read feedback log: %w", err)
	default:
		if len(raw) == 0 || json.Unmarshal(raw, &s.history) != nil {
			log.Printf("[FEEDBACK] log at %s empty or malformed, resetting", path)
			s.history = nil
			if err := s.save(); err != nil {
				return nil, fmt.Errorf("reset feedback log: %w", err)
			}
		}
	}

	return s, nil
}

// #endregion store

// #region record

// Record validates and appends one rating. Ratings outside 1..5 are a
// caller contract violation.
func (s *Store) Record(question, response string, rating int, comments, sessionID string) (Record, error) {
	if rating < 1 || rating > 5 {
		return Record{}, fmt.Errorf("rating %d out of range 1..5", rating)
	}

	rec := Record{
		Question:  question,
		Response:  response,
		Rating:    rating,
		Comments:  comments,
		Timestamp: time.Now().UTC(),
		SessionID: sessionID,
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.history = append(s.history, rec)
	if err := s.save(); err != nil {
		// Persistence failures stay internal; the in-memory history is intact.
		log.Printf("[FEEDBACK] save failed: %v", err)
	}
	return rec, nil
}

// #endregion record

// #region summary

// Summary computes aggregate statistics over the full history.
func (s *Store) Summary() Summary {
	s.mu.Lock()
	defer s.mu.Unlock()

	sum := Summary{
		Count:        len(s.history),
		Distribution: map[string]int{"1": 0, "2": 0, "3": 0, "4": 0, "5": 0},
		Recent:       []Record{},
	}
	if sum.Count == 0 {
		return sum
	}

	total := 0
	for _, r := range s.history {
		total += r.Rating
		sum.Distribution[fmt.Sprintf("%d", r.Rating)]++
	}
	sum.AverageRating = float64(total) / float64(sum.Count)

	start := len(s.history) - 5
	if start < 0 {
		start = 0
	}
	sum.Recent = append(sum.Recent, s.history[start:]...)
	return sum
}

// #endregion summary

// #region persistence

// save rewrites the full log via temp file + rename so the log is valid
// JSON at all times.
func (s *Store) save() error {
	data, err := json.MarshalIndent(s.historyOrEmpty(), "", "  ")
	if err != nil {
		return fmt.Errorf("marshal feedback: %w", err)
	}

	tmp := s.path + ".tmp"
	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("mkdir feedback dir: %w", err)
		}
	}
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("write feedback log: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("replace feedback log: %w", err)
	}
	return nil
}

// historyOrEmpty keeps the on-disk representation a JSON array even with no
// records.
func (s *Store) historyOrEmpty() []Record {
	if s.history == nil {
		return []Record{}
	}
	return s.history
}

// #endregion persistence
