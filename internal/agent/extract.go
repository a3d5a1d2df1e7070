package agent

import (
	"regexp"
	"strings"
)

// Local extraction over raw web content, used when the model cannot
// structure the answer itself.

// #region patterns

var stepPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)step \d+[:\-]\s*([^.]*\.)`),
	regexp.MustCompile(`(?i)\d+[.)]\s*([^.]*\.)`),
	regexp.MustCompile(`(?i)first[:\-]\s*([^.]*\.)`),
	regexp.MustCompile(`(?i)second[:\-]\s*([^.]*\.)`),
	regexp.MustCompile(`(?i)third[:\-]\s*([^.]*\.)`),
	regexp.MustCompile(`(?i)next[:\-]\s*([^.]*\.)`),
	regexp.MustCompile(`(?i)finally[:\-]\s*([^.]*\.)`),
}

var answerPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)answer[:\-]\s*([^.]*\.)`),
	regexp.MustCompile(`(?i)result[:\-]\s*([^.]*\.)`),
	regexp.MustCompile(`(?i)solution[:\-]\s*([^.]*\.)`),
	regexp.MustCompile(`(?i)therefore[,\s]+([^.]*\.)`),
	regexp.MustCompile(`(?i)thus[,\s]+([^.]*\.)`),
}

var explanationPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)[^.]*because[^.]*\.`),
	regexp.MustCompile(`(?i)[^.]*since[^.]*\.`),
	regexp.MustCompile(`(?i)[^.]*therefore[^.]*\.`),
	regexp.MustCompile(`(?i)[^.]*thus[^.]*\.`),
	regexp.MustCompile(`(?i)[^.]*we have[^.]*\.`),
	regexp.MustCompile(`(?i)[^.]*we get[^.]*\.`),
	regexp.MustCompile(`(?i)[^.]*we obtain[^.]*\.`),
}

// #endregion patterns

// #region extraction

const maxExtractedSteps = 10

// extractStepsFromContent pulls ordered step sentences out of raw web text,
// falling back to a generic solving outline.
func extractStepsFromContent(content string) []string {
	var steps []string
	for _, re := range stepPatterns {
		for _, m := range re.FindAllStringSubmatch(content, -1) {
			steps = append(steps, m[1])
		}
	}

	if len(steps) == 0 {
		return []string{
			"Analyze the given problem",
			"Apply appropriate mathematical concepts",
			"Solve step by step",
			"Verify the solution",
		}
	}
	if len(steps) > maxExtractedSteps {
		steps = steps[:maxExtractedSteps]
	}
	return steps
}

// extractAnswerFromContent finds the first explicit answer statement.
func extractAnswerFromContent(content string) string {
	for _, re := range answerPatterns {
		if m := re.FindStringSubmatch(content); m != nil {
			return strings.TrimSpace(m[1])
		}
	}
	return "Answer not explicitly stated in the sources"
}

// extractExplanationFromContent collects up to three causal sentences.
func extractExplanationFromContent(content string) string {
	var sentences []string
	for _, re := range explanationPatterns {
		sentences = append(sentences, re.FindAllString(content, -1)...)
	}
	if len(sentences) == 0 {
		return "This solution is based on mathematical principles and step-by-step reasoning."
	}
	if len(sentences) > 3 {
		sentences = sentences[:3]
	}
	return strings.Join(sentences, " ")
}

// #endregion extraction
