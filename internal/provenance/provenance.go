package provenance

import (
	"database/sql"
	"fmt"
	"time"
)

// #region log-decision

// LogDecision writes one routing decision to the decision_log table.
func LogDecision(db *sql.DB, entry Entry) error {
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now().UTC()
	}
	if entry.UserID == "" {
		entry.UserID = "anonymous"
	}

	_, err := db.Exec(
		`INSERT INTO decision_log (session_id, user_id, question, decision, confidence, reasoning, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		entry.SessionID,
		entry.UserID,
		entry.Question,
		entry.Decision,
		entry.Confidence,
		nullIfEmpty(entry.Reasoning),
		entry.CreatedAt.Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("log decision: %w", err)
	}
	return nil
}

// #endregion log-decision

// #region recent

// Recent returns the newest limit decisions, newest first.
func Recent(db *sql.DB, limit int) ([]Entry, error) {
	rows, err := db.Query(
		`SELECT session_id, user_id, question, decision, confidence, reasoning, created_at
		 FROM decision_log ORDER BY id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("query decisions: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		var reasoning sql.NullString
		var createdAt string
		if err := rows.Scan(&e.SessionID, &e.UserID, &e.Question, &e.Decision, &e.Confidence, &reasoning, &createdAt); err != nil {
			return nil, fmt.Errorf("scan decision: %w", err)
		}
		e.Reasoning = reasoning.String
		if ts, err := time.Parse(time.RFC3339Nano, createdAt); err == nil {
			e.CreatedAt = ts
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// #endregion recent

// #region helpers
func nullIfEmpty(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}

// #endregion helpers
