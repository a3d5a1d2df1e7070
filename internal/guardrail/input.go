package guardrail

import (
	"fmt"
	"regexp"
	"strings"
)

// #region math-patterns

// mathCategories are the weighted pattern categories behind the
// math-likelihood score. Each category's match count is normalized to [0,1]
// before the categories are averaged.
var mathCategories = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\b(solve|calculate|find|compute|evaluate|integrate|differentiate|derive)\b`),
	regexp.MustCompile(`(?i)\b(equation|formula|function|matrix|vector|limit|derivative|integral)\b`),
	regexp.MustCompile(`(?i)\b(algebra|calculus|geometry|trigonometry|statistics|probability)\b`),
	regexp.MustCompile(`[+\-*/=<>(){}\[\]^]`),
	regexp.MustCompile(`\d+`),
	regexp.MustCompile(`(?i)\b[a-z]\b`),
}

// #endregion math-patterns

// #region topic-table

// topicEntry pairs a topic name with its voting keywords. Slice order is the
// tie-break: the first topic reaching the maximum hit count wins.
type topicEntry struct {
	name     string
	keywords []string
}

var topicTable = []topicEntry{
	{"algebra", []string{"equation", "variable", "solve", "factor", "polynomial"}},
	{"calculus", []string{"derivative", "integral", "limit", "differentiate", "integrate"}},
	{"geometry", []string{"triangle", "circle", "angle", "area", "perimeter", "volume"}},
	{"trigonometry", []string{"sin", "cos", "tan", "angle", "trigonometric"}},
	{"statistics", []string{"mean", "median", "mode", "probability", "distribution"}},
	{"linear_algebra", []string{"matrix", "vector", "determinant", "eigenvalue"}},
}

// #endregion topic-table

// #region input-guardrail

// InputGuardrail validates and sanitizes raw user questions before any
// backend is consulted.
type InputGuardrail struct {
	maxLength     int
	allowedTopics []string
}

// NewInputGuardrail creates an input guardrail with the given length limit
// and topic allow-list.
func NewInputGuardrail(maxLength int, allowedTopics []string) *InputGuardrail {
	return &InputGuardrail{maxLength: maxLength, allowedTopics: allowedTopics}
}

// Validate checks a raw question. Length overflow and deny-list matches are
// hard rejects; everything else only attaches warnings.
func (g *InputGuardrail) Validate(question string) InputResult {
	if len(question) > g.maxLength {
		return InputResult{
			IsValid:  false,
			Warnings: []string{fmt.Sprintf("Input too long. Maximum %d characters allowed.", g.maxLength)},
		}
	}

	if matchesUnsafe(question) {
		return InputResult{
			IsValid:  false,
			Warnings: []string{"Potentially harmful content detected."},
		}
	}

	sanitized := sanitize(question)

	var warnings []string
	confidence := 0.1
	topic := "general"

	mathScore := MathScore(sanitized)
	if mathScore > 0.3 {
		confidence = mathScore
		topic = DetectTopic(sanitized)
	} else {
		warnings = append(warnings, "Input may not be mathematical in nature.")
	}

	if topic != "general" && !g.topicAllowed(topic) {
		warnings = append(warnings, fmt.Sprintf("Topic %q may not be supported.", topic))
	}

	return InputResult{
		IsValid:    true,
		Sanitized:  sanitized,
		Confidence: clamp(confidence),
		Topic:      topic,
		Warnings:   warnings,
	}
}

func (g *InputGuardrail) topicAllowed(topic string) bool {
	for _, t := range g.allowedTopics {
		if t == topic {
			return true
		}
	}
	return false
}

// #endregion input-guardrail

// #region math-score

// MathScore estimates how likely text is to be a mathematical question.
// Pure function of the text, always in [0,1].
func MathScore(text string) float64 {
	var score float64
	for _, re := range mathCategories {
		n := len(re.FindAllStringIndex(text, -1))
		if n > 0 {
			contribution := float64(n) / 10
			if contribution > 1 {
				contribution = 1
			}
			score += contribution
		}
	}
	return clamp(score / float64(len(mathCategories)))
}

// #endregion math-score

// #region topic-detection

// DetectTopic classifies text by keyword-overlap voting over the topic
// table. Returns "general" when no keyword hits at all.
func DetectTopic(text string) string {
	lower := strings.ToLower(text)

	best := "general"
	bestHits := 0
	for _, entry := range topicTable {
		hits := 0
		for _, kw := range entry.keywords {
			if strings.Contains(lower, kw) {
				hits++
			}
		}
		if hits > bestHits {
			best = entry.name
			bestHits = hits
		}
	}
	return best
}

// #endregion topic-detection
