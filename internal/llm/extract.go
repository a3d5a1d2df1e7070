package llm

import (
	"context"
	"regexp"
	"strings"
)

// #region generate

// GenerateMathResponse asks the model to solve a question, optionally with
// web-search context.
func GenerateMathResponse(ctx context.Context, m Model, question, searchContext string) (Completion, error) {
	return m.Complete(ctx, mathPrompt(question, searchContext))
}

// GenerateSearchQuery asks the model for an optimized web query. Falls back
// to simple keyword enhancement when the call fails.
func GenerateSearchQuery(ctx context.Context, m Model, question string) string {
	c, err := m.Complete(ctx, searchQueryPrompt(question))
	if err != nil || strings.TrimSpace(c.Text) == "" {
		return question + " mathematics step by step solution"
	}
	return strings.TrimSpace(c.Text)
}

// #endregion generate

// #region step-extraction

var (
	numberPrefixRe = regexp.MustCompile(`^\d+\.?\s*`)
	stepPrefixRe   = regexp.MustCompile(`(?i)^step\s+\d+[:\-]?\s*`)
	dashPrefixRe   = regexp.MustCompile(`^-\s*`)
)

// ExtractSolutionSteps asks the model to pull an ordered step list out of
// its own completion, then parses the numbered lines.
func ExtractSolutionSteps(ctx context.Context, m Model, response string) []string {
	c, err := m.Complete(ctx, stepsPrompt(response))
	if err != nil {
		return []string{"Solution steps not clearly identified"}
	}

	var steps []string
	for _, line := range strings.Split(c.Text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if line[0] >= '0' && line[0] <= '9' ||
			strings.HasPrefix(line, "Step") ||
			strings.HasPrefix(line, "-") {
			step := numberPrefixRe.ReplaceAllString(line, "")
			step = stepPrefixRe.ReplaceAllString(step, "")
			step = dashPrefixRe.ReplaceAllString(step, "")
			if step != "" {
				steps = append(steps, step)
			}
		}
	}

	if len(steps) == 0 {
		return []string{"Solution steps not clearly identified"}
	}
	return steps
}

// ExtractFinalAnswer asks the model for the final answer of its completion.
func ExtractFinalAnswer(ctx context.Context, m Model, response string) string {
	c, err := m.Complete(ctx, answerPrompt(response))
	if err != nil || strings.TrimSpace(c.Text) == "" {
		return "Final answer not clearly identified"
	}
	return strings.TrimSpace(c.Text)
}

// #endregion step-extraction
