package guardrail

import (
	"regexp"
	"strings"
)

// #region unsafe-patterns

// unsafePatterns is the shared deny-list applied to both questions and
// answers. A single match is a hard reject.
var unsafePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\b(hack|exploit|bypass|cheat|illegal|harmful|dangerous)\b`),
	regexp.MustCompile(`(?i)<script.*?>.*?</script>`),
	regexp.MustCompile(`(?i)javascript:`),
	regexp.MustCompile(`(?i)data:text/html`),
}

// matchesUnsafe reports whether text hits any deny-list entry.
func matchesUnsafe(text string) bool {
	for _, re := range unsafePatterns {
		if re.MatchString(text) {
			return true
		}
	}
	return false
}

// #endregion unsafe-patterns

// #region sanitize

var (
	dangerousChars = regexp.MustCompile(`[<>"']`)
	whitespaceRun  = regexp.MustCompile(`\s+`)
)

// sanitize strips markup-unsafe characters and collapses whitespace runs
// into single spaces. Applied identically to input and output text.
func sanitize(text string) string {
	s := dangerousChars.ReplaceAllString(text, "")
	s = whitespaceRun.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}

// #endregion sanitize

// #region helpers

// clamp bounds a score to [0, 1].
func clamp(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// cappedRuleScore sums perMatch * count(rule) for each rule, capping every
// rule's contribution at perRuleCap. Rule tables stay data, control flow
// stays generic.
func cappedRuleScore(text string, rules []*regexp.Regexp, perMatch, perRuleCap float64) float64 {
	var score float64
	for _, re := range rules {
		n := len(re.FindAllStringIndex(text, -1))
		contribution := float64(n) * perMatch
		if contribution > perRuleCap {
			contribution = perRuleCap
		}
		score += contribution
	}
	return score
}

// totalMatchScore counts matches across all rules and applies a single
// shared cap to perMatch * total.
func totalMatchScore(text string, rules []*regexp.Regexp, perMatch, totalCap float64) float64 {
	total := 0
	for _, re := range rules {
		total += len(re.FindAllStringIndex(text, -1))
	}
	score := float64(total) * perMatch
	if score > totalCap {
		score = totalCap
	}
	return score
}

// #endregion helpers
