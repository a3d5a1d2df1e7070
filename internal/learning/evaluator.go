package learning

import (
	"context"
	"fmt"
	"log"
	"regexp"
	"strconv"
	"strings"

	"mathagent/internal/llm"
)

// #region types

// Evaluation scores one delivered response on three quality axes, each in
// [0,1].
type Evaluation struct {
	Accuracy     float64  `json:"accuracy"`
	Clarity      float64  `json:"clarity"`
	Completeness float64  `json:"completeness"`
	OverallScore float64  `json:"overall_score"`
	Text         string   `json:"evaluation_text"`
	Improvements []string `json:"needs_improvement"`
}

// #endregion types

// #region evaluator

// Evaluator grades responses by asking the model for a structured critique
// and extracting per-metric scores from the critique text.
type Evaluator struct {
	model llm.Model
}

func NewEvaluator(model llm.Model) *Evaluator {
	return &Evaluator{model: model}
}

// neutralEvaluation is the degraded result when no critique can be obtained.
func neutralEvaluation() Evaluation {
	return Evaluation{
		Accuracy:     0.5,
		Clarity:      0.5,
		Completeness: 0.5,
		OverallScore: 0.5,
		Text:         "Evaluation failed",
		Improvements: []string{"evaluation_error"},
	}
}

// Evaluate grades a response against its question. Model failures degrade
// to a neutral evaluation rather than an error.
func (e *Evaluator) Evaluate(ctx context.Context, question, response string) Evaluation {
	if e.model == nil {
		return neutralEvaluation()
	}

	out, err := e.model.Complete(ctx, llm.EvaluationPrompt(question, response))
	if err != nil {
		log.Printf("[LEARNING] evaluation failed: %v", err)
		return neutralEvaluation()
	}

	accuracy := extractScore(out.Text, "accuracy")
	clarity := extractScore(out.Text, "clarity")
	completeness := extractScore(out.Text, "completeness")

	return Evaluation{
		Accuracy:     accuracy,
		Clarity:      clarity,
		Completeness: completeness,
		OverallScore: (accuracy + clarity + completeness) / 3,
		Text:         out.Text,
		Improvements: identifyImprovements(out.Text),
	}
}

// #endregion evaluator

// #region scoring

// extractScore pulls the numeric score for one metric out of critique text.
// Accepts "accuracy: 0.8", "accuracy score: 8" and "accuracy = 8/10" style
// values; anything above 1 is read as an out-of-ten score. Missing metrics
// default to 0.5.
func extractScore(text, metric string) float64 {
	patterns := []string{
		fmt.Sprintf(`(?i)%s:\s*(\d+\.?\d*)`, metric),
		fmt.Sprintf(`(?i)%s\s*score:\s*(\d+\.?\d*)`, metric),
		fmt.Sprintf(`(?i)%s\s*=\s*(\d+\.?\d*)`, metric),
	}
	for _, p := range patterns {
		m := regexp.MustCompile(p).FindStringSubmatch(text)
		if m == nil {
			continue
		}
		score, err := strconv.ParseFloat(m[1], 64)
		if err != nil {
			continue
		}
		if score > 1 {
			score /= 10
		}
		if score < 0 {
			score = 0
		}
		if score > 1 {
			score = 1
		}
		return score
	}
	return 0.5
}

// identifyImprovements maps critique phrasing onto fixed improvement tags.
func identifyImprovements(text string) []string {
	lower := strings.ToLower(text)
	var tags []string
	if strings.Contains(lower, "step") && strings.Contains(lower, "missing") {
		tags = append(tags, "add_more_steps")
	}
	if strings.Contains(lower, "explanation") && strings.Contains(lower, "unclear") {
		tags = append(tags, "improve_explanation")
	}
	if strings.Contains(lower, "answer") && strings.Contains(lower, "incorrect") {
		tags = append(tags, "fix_answer")
	}
	if strings.Contains(lower, "format") && strings.Contains(lower, "poor") {
		tags = append(tags, "improve_formatting")
	}
	return tags
}

// #endregion scoring
