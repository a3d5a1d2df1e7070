package learning

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"mathagent/internal/feedback"
)

// #region types

// Interaction is one rated exchange with its machine evaluation and the
// improvement tags derived from both.
type Interaction struct {
	Question   string     `json:"question"`
	Response   string     `json:"response"`
	UserRating int        `json:"user_rating"`
	Comments   string     `json:"user_comments"`
	Evaluation Evaluation `json:"evaluation"`
	Tags       []string   `json:"improvements"`
	Timestamp  time.Time  `json:"timestamp"`
	SessionID  string     `json:"session_id"`
}

// TagCount pairs an improvement tag with how often it was assigned.
type TagCount struct {
	Tag   string `json:"tag"`
	Count int    `json:"count"`
}

// Trend compares the last five interactions against everything before them.
type Trend struct {
	Direction   string  `json:"trend"`
	RecentAvg   float64 `json:"recent_avg_rating,omitempty"`
	PreviousAvg float64 `json:"previous_avg_rating,omitempty"`
	Change      float64 `json:"change,omitempty"`
}

// Insights summarizes everything the aggregator has seen.
type Insights struct {
	TotalInteractions   int        `json:"total_interactions"`
	AverageUserRating   float64    `json:"average_user_rating"`
	AverageAccuracy     float64    `json:"average_accuracy"`
	AverageClarity      float64    `json:"average_clarity"`
	AverageCompleteness float64    `json:"average_completeness"`
	CommonImprovements  []TagCount `json:"common_improvements"`
	RecentTrends        Trend      `json:"recent_trends"`
}

// ProcessResult acknowledges one recorded interaction.
type ProcessResult struct {
	Feedback   feedback.Record `json:"feedback_collected"`
	Evaluation Evaluation      `json:"evaluation"`
	Tags       []string        `json:"improvements"`
}

// #endregion types

// #region aggregator

// Aggregator accumulates rated interactions in memory alongside the durable
// feedback log, and derives improvement tags and trends from them.
type Aggregator struct {
	mu        sync.Mutex
	store     *feedback.Store
	evaluator *Evaluator
	data      []Interaction
}

func NewAggregator(store *feedback.Store, evaluator *Evaluator) *Aggregator {
	return &Aggregator{store: store, evaluator: evaluator}
}

// RecordInteraction persists the feedback, evaluates the response, and
// files the tagged interaction for later insights.
func (a *Aggregator) RecordInteraction(ctx context.Context, question, response string, rating int, comments, sessionID string) (ProcessResult, error) {
	rec, err := a.store.Record(question, response, rating, comments, sessionID)
	if err != nil {
		return ProcessResult{}, fmt.Errorf("record feedback: %w", err)
	}

	eval := a.evaluator.Evaluate(ctx, question, response)
	tags := deriveTags(rating, eval, comments)

	a.mu.Lock()
	a.data = append(a.data, Interaction{
		Question:   question,
		Response:   response,
		UserRating: rating,
		Comments:   comments,
		Evaluation: eval,
		Tags:       tags,
		Timestamp:  rec.Timestamp,
		SessionID:  sessionID,
	})
	a.mu.Unlock()

	return ProcessResult{Feedback: rec, Evaluation: eval, Tags: tags}, nil
}

// Insights reports running averages, the most common improvement tags, and
// the recent rating trend. Read-only: repeated calls return the same result
// until the next RecordInteraction.
func (a *Aggregator) Insights() Insights {
	a.mu.Lock()
	defer a.mu.Unlock()

	out := Insights{
		TotalInteractions:  len(a.data),
		CommonImprovements: []TagCount{},
		RecentTrends:       Trend{Direction: "insufficient_data"},
	}
	if len(a.data) == 0 {
		return out
	}

	var rating, accuracy, clarity, completeness float64
	counts := map[string]int{}
	var order []string
	for _, e := range a.data {
		rating += float64(e.UserRating)
		accuracy += e.Evaluation.Accuracy
		clarity += e.Evaluation.Clarity
		completeness += e.Evaluation.Completeness
		for _, tag := range e.Tags {
			if counts[tag] == 0 {
				order = append(order, tag)
			}
			counts[tag]++
		}
	}
	n := float64(len(a.data))
	out.AverageUserRating = rating / n
	out.AverageAccuracy = accuracy / n
	out.AverageClarity = clarity / n
	out.AverageCompleteness = completeness / n
	out.CommonImprovements = topTags(counts, order, 5)
	out.RecentTrends = analyzeTrend(a.data)
	return out
}

// #endregion aggregator

// #region derivation

// deriveTags maps one interaction onto improvement tags, deduplicated in
// first-seen order.
func deriveTags(rating int, eval Evaluation, comments string) []string {
	var tags []string
	seen := map[string]bool{}
	add := func(tag string) {
		if !seen[tag] {
			seen[tag] = true
			tags = append(tags, tag)
		}
	}

	if rating <= 2 {
		add("improve_accuracy")
		add("add_more_explanations")
	}
	if eval.Accuracy < 0.7 {
		add("verify_mathematical_correctness")
	}
	if eval.Clarity < 0.7 {
		add("simplify_explanations")
	}
	if eval.Completeness < 0.7 {
		add("add_more_steps")
	}

	lower := strings.ToLower(comments)
	if strings.Contains(lower, "confusing") {
		add("improve_clarity")
	}
	if strings.Contains(lower, "incomplete") {
		add("add_more_details")
	}
	if strings.Contains(lower, "wrong") {
		add("verify_solution")
	}
	return tags
}

// topTags ranks tags by count descending, breaking ties by first
// appearance.
func topTags(counts map[string]int, order []string, limit int) []TagCount {
	ranked := make([]TagCount, 0, len(order))
	for _, tag := range order {
		ranked = append(ranked, TagCount{Tag: tag, Count: counts[tag]})
	}
	sort.SliceStable(ranked, func(i, j int) bool { return ranked[i].Count > ranked[j].Count })
	if len(ranked) > limit {
		ranked = ranked[:limit]
	}
	return ranked
}

// analyzeTrend compares the mean rating of the last five interactions with
// the mean of everything before them. Fewer than six interactions is not
// enough signal.
func analyzeTrend(data []Interaction) Trend {
	if len(data) <= 5 {
		return Trend{Direction: "insufficient_data"}
	}

	recent := data[len(data)-5:]
	older := data[:len(data)-5]

	var recentSum, olderSum float64
	for _, e := range recent {
		recentSum += float64(e.UserRating)
	}
	for _, e := range older {
		olderSum += float64(e.UserRating)
	}
	recentAvg := recentSum / float64(len(recent))
	olderAvg := olderSum / float64(len(older))

	direction := "declining"
	if recentAvg > olderAvg {
		direction = "improving"
	}
	return Trend{
		Direction:   direction,
		RecentAvg:   recentAvg,
		PreviousAvg: olderAvg,
		Change:      recentAvg - olderAvg,
	}
}

// #endregion derivation
