package guardrail

import (
	"fmt"
	"regexp"
	"strings"
)

// #region rule-tables

// qualityIndicators feed the output confidence score. Contribution per
// table entry is min(matches*0.1, 0.3).
var qualityIndicators = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\b(step \d+:|first|second|third|next|finally)\b`),
	regexp.MustCompile(`(?i)\b(therefore|thus|hence|so|because|since)\b`),
	regexp.MustCompile(`(?i)\b(we have|we get|we obtain|we find)\b`),
	regexp.MustCompile(`[=+\-*/]`),
	regexp.MustCompile(`\$\$.*?\$\$`),
}

// mathDensity counts raw mathematical tokens; shared cap of 0.4 at 0.05 per
// match. Variable tokens are matched case-sensitively.
var mathDensity = []*regexp.Regexp{
	regexp.MustCompile(`[=+\-*/]`),
	regexp.MustCompile(`\d+`),
	regexp.MustCompile(`\b(x|y|z|a|b|c)\b`),
}

// stepMarkers count ordinal step structure; shared cap of 0.3 at 0.1 per match.
var stepMarkers = []*regexp.Regexp{
	regexp.MustCompile(`(?i)step \d+`),
	regexp.MustCompile(`(?i)first`),
	regexp.MustCompile(`(?i)second`),
	regexp.MustCompile(`(?i)third`),
	regexp.MustCompile(`(?i)next`),
	regexp.MustCompile(`(?i)finally`),
}

// explanationConnectives feed the educational-value score.
var explanationConnectives = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\b(because|since|therefore|thus|hence|so)\b`),
	regexp.MustCompile(`(?i)\b(we have|we get|we obtain|we find|we can see)\b`),
	regexp.MustCompile(`(?i)\b(let's|let us|first|second|third)\b`),
}

// notationDensity counts mathematical notation for educational value.
var notationDensity = []*regexp.Regexp{
	regexp.MustCompile(`\$\$.*?\$\$`),
	regexp.MustCompile(`[=+\-*/]`),
	regexp.MustCompile(`\^`),
	regexp.MustCompile(`_\w+`),
}

var (
	stepNumberRe  = regexp.MustCompile(`(?i)step \d+`)
	reasoningRe   = regexp.MustCompile(`(?i)\b(because|since|therefore|thus|hence)\b`)
	finalAnswerRe = regexp.MustCompile(`(?i)\b(answer|result|solution|final)\b`)
	operatorRe    = regexp.MustCompile(`[=+\-*/]`)
	numberOrVarRe = regexp.MustCompile(`\d+|\b(x|y|z|a|b|c)\b`)
)

// #endregion rule-tables

// #region output-guardrail

// OutputGuardrail validates and sanitizes generated answers before they are
// returned to the caller.
type OutputGuardrail struct {
	maxLength     int
	minConfidence float64
	minEducation  float64
}

// NewOutputGuardrail creates an output guardrail. The validity floors are
// deliberately permissive: a warned answer beats a silent failure.
func NewOutputGuardrail(maxLength int) *OutputGuardrail {
	return &OutputGuardrail{
		maxLength:     maxLength,
		minConfidence: 0.1,
		minEducation:  0.1,
	}
}

// Validate checks a generated answer against the original question. Length
// overflow and deny-list matches are hard rejects; structural gaps become
// warnings.
func (g *OutputGuardrail) Validate(answer, originalQuestion string) OutputResult {
	if len(answer) > g.maxLength {
		return OutputResult{
			IsValid:  false,
			Warnings: []string{fmt.Sprintf("Response too long. Maximum %d characters allowed.", g.maxLength)},
		}
	}

	if matchesUnsafe(answer) {
		return OutputResult{
			IsValid:  false,
			Warnings: []string{"Inappropriate content detected in response."},
		}
	}

	sanitized := sanitize(answer)

	confidence := ConfidenceScore(sanitized)
	educational := EducationalValue(sanitized)

	var warnings []string
	warnings = append(warnings, missingElements(sanitized)...)
	warnings = append(warnings, mathContentWarnings(sanitized)...)

	return OutputResult{
		IsValid:          confidence > g.minConfidence && educational > g.minEducation,
		Sanitized:        sanitized,
		Confidence:       confidence,
		EducationalValue: educational,
		Warnings:         warnings,
	}
}

// #endregion output-guardrail

// #region confidence

// ConfidenceScore rates an answer from three capped contributions: quality
// indicator phrases, mathematical token density, and step-marker density.
func ConfidenceScore(answer string) float64 {
	score := cappedRuleScore(answer, qualityIndicators, 0.1, 0.3)
	score += totalMatchScore(answer, mathDensity, 0.05, 0.4)
	score += totalMatchScore(answer, stepMarkers, 0.1, 0.3)
	return clamp(score)
}

// #endregion confidence

// #region educational-value

// EducationalValue rates how instructive an answer is: explanatory
// connectives, notation density, and a fixed bonus for explicit "step N"
// structure.
func EducationalValue(answer string) float64 {
	value := cappedRuleScore(answer, explanationConnectives, 0.1, 0.3)
	value += totalMatchScore(answer, notationDensity, 0.05, 0.4)
	if stepNumberRe.MatchString(answer) {
		value += 0.3
	}
	return clamp(value)
}

// #endregion educational-value

// #region structure-checks

// missingElements reports which required structural elements are absent.
func missingElements(answer string) []string {
	var missing []string
	if !stepNumberRe.MatchString(answer) {
		missing = append(missing, "Missing: step-by-step solution")
	}
	if !reasoningRe.MatchString(answer) {
		missing = append(missing, "Missing: mathematical reasoning")
	}
	if !finalAnswerRe.MatchString(answer) {
		missing = append(missing, "Missing: final answer")
	}
	return missing
}

// mathContentWarnings runs structural sanity checks on the mathematical
// content. All advisory.
func mathContentWarnings(answer string) []string {
	var warnings []string
	if !operatorRe.MatchString(answer) {
		warnings = append(warnings, "No mathematical operations found")
	}
	if !numberOrVarRe.MatchString(answer) {
		warnings = append(warnings, "No mathematical variables or numbers found")
	}
	if strings.Count(answer, "(") != strings.Count(answer, ")") {
		warnings = append(warnings, "Unbalanced parentheses in mathematical expressions")
	}
	return warnings
}

// #endregion structure-checks
