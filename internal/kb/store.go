package kb

import (
	"context"
	"database/sql"
	"encoding/binary"
	"encoding/json"
	"fmt"
	"math"
	"sort"

	_ "modernc.org/sqlite"
)

// #region schema

const schema = `
CREATE TABLE IF NOT EXISTS problems (
	id                TEXT PRIMARY KEY,
	question          TEXT NOT NULL,
	topic             TEXT NOT NULL,
	difficulty        TEXT NOT NULL,
	solution_steps    TEXT NOT NULL,
	final_answer      TEXT NOT NULL,
	explanation       TEXT NOT NULL,
	related_concepts  TEXT NOT NULL,
	embedding         BLOB NOT NULL
);

CREATE TABLE IF NOT EXISTS decision_log (
	id          INTEGER PRIMARY KEY AUTOINCREMENT,
	session_id  TEXT NOT NULL,
	user_id     TEXT NOT NULL DEFAULT 'anonymous',
	question    TEXT NOT NULL,
	decision    TEXT NOT NULL,
	confidence  REAL NOT NULL,
	reasoning   TEXT,
	created_at  TEXT NOT NULL
);
`

// #endregion schema

// #region store-struct

// Store is the sqlite-backed vector store for the math knowledge base.
type Store struct {
	db       *sql.DB
	embedder Embedder
}

// #endregion store-struct

// #region constructor

// NewStore opens the sqlite database at path, runs migrations, and wires the
// given embedder for queries and upserts.
func NewStore(path string, embedder Embedder) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open kb: %w", err)
	}
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		return nil, fmt.Errorf("pragma: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		return nil, fmt.Errorf("migrate kb: %w", err)
	}
	return &Store{db: db, embedder: embedder}, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

// DB exposes the handle for the provenance log.
func (s *Store) DB() *sql.DB {
	return s.db
}

// #endregion constructor

// #region upsert

// Upsert embeds the problem's content and writes or replaces its row.
func (s *Store) Upsert(ctx context.Context, p Problem) error {
	vec, err := s.embedder.Embed(ctx, p.Content())
	if err != nil {
		return fmt.Errorf("embed problem %s: %w", p.ID, err)
	}

	steps, err := json.Marshal(p.SolutionSteps)
	if err != nil {
		return fmt.Errorf("marshal steps: %w", err)
	}
	concepts, err := json.Marshal(p.RelatedConcepts)
	if err != nil {
		return fmt.Errorf("marshal concepts: %w", err)
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO problems
		(id, question, topic, difficulty, solution_steps, final_answer, explanation, related_concepts, embedding)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			question = excluded.question,
			topic = excluded.topic,
			difficulty = excluded.difficulty,
			solution_steps = excluded.solution_steps,
			final_answer = excluded.final_answer,
			explanation = excluded.explanation,
			related_concepts = excluded.related_concepts,
			embedding = excluded.embedding`,
		p.ID, p.Question, p.Topic, p.Difficulty,
		string(steps), p.FinalAnswer, p.Explanation, string(concepts),
		encodeVector(vec),
	)
	if err != nil {
		return fmt.Errorf("upsert problem %s: %w", p.ID, err)
	}
	return nil
}

// Seed upserts the full problem set. Called once at startup.
func (s *Store) Seed(ctx context.Context, problems []Problem) error {
	for _, p := range problems {
		if err := s.Upsert(ctx, p); err != nil {
			return err
		}
	}
	return nil
}

// #endregion upsert

// #region search

// Search embeds the query and returns up to limit problems whose cosine
// similarity clears threshold, ordered by descending score.
func (s *Store) Search(ctx context.Context, query string, limit int, threshold float64) ([]Match, error) {
	queryVec, err := s.embedder.Embed(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("embed query: %w", err)
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, question, topic, difficulty, solution_steps, final_answer,
		       explanation, related_concepts, embedding
		FROM problems`)
	if err != nil {
		return nil, fmt.Errorf("search kb: %w", err)
	}
	defer rows.Close()

	var matches []Match
	for rows.Next() {
		var p Problem
		var stepsJSON, conceptsJSON string
		var blob []byte
		if err := rows.Scan(&p.ID, &p.Question, &p.Topic, &p.Difficulty,
			&stepsJSON, &p.FinalAnswer, &p.Explanation, &conceptsJSON, &blob); err != nil {
			return nil, fmt.Errorf("scan problem: %w", err)
		}
		if err := json.Unmarshal([]byte(stepsJSON), &p.SolutionSteps); err != nil {
			return nil, fmt.Errorf("decode steps for %s: %w", p.ID, err)
		}
		if err := json.Unmarshal([]byte(conceptsJSON), &p.RelatedConcepts); err != nil {
			return nil, fmt.Errorf("decode concepts for %s: %w", p.ID, err)
		}

		score := cosineSimilarity(queryVec, decodeVector(blob))
		if score >= threshold {
			matches = append(matches, Match{ID: p.ID, Score: score, Problem: p})
		}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("search kb: %w", err)
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Score > matches[j].Score
	})
	if len(matches) > limit {
		matches = matches[:limit]
	}
	return matches, nil
}

// Count returns the number of stored problems.
func (s *Store) Count(ctx context.Context) (int, error) {
	var n int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM problems`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count problems: %w", err)
	}
	return n, nil
}

// #endregion search

// #region vector-encoding

func encodeVector(v []float32) []byte {
	buf := make([]byte, len(v)*4)
	for i, f := range v {
		binary.LittleEndian.PutUint32(buf[i*4:], math.Float32bits(f))
	}
	return buf
}

func decodeVector(b []byte) []float32 {
	v := make([]float32, len(b)/4)
	for i := range v {
		v[i] = math.Float32frombits(binary.LittleEndian.Uint32(b[i*4:]))
	}
	return v
}

// cosineSimilarity is 0 for mismatched or zero-norm vectors.
func cosineSimilarity(a, b []float32) float64 {
	if len(a) != len(b) || len(a) == 0 {
		return 0
	}
	var dot, normA, normB float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
		normA += float64(a[i]) * float64(a[i])
		normB += float64(b[i]) * float64(b[i])
	}
	if normA == 0 || normB == 0 {
		return 0
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}

// #endregion vector-encoding
