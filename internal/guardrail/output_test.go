package guardrail

import (
	"strings"
	"testing"
)

const goodAnswer = "Step 1: Subtract 5 from both sides. Therefore x = 4. Final answer: x = 4."

func TestOutputValidate_LengthOverflow(t *testing.T) {
	g := NewOutputGuardrail(40)
	res := g.Validate(strings.Repeat("a", 41), "question")
	if res.IsValid {
		t.Fatal("overlong answer should be rejected")
	}
	if res.Sanitized != "" {
		t.Error("rejected answer should have empty sanitized text")
	}
}

func TestOutputValidate_UnsafePatterns(t *testing.T) {
	g := NewOutputGuardrail(2000)

	tests := []struct {
		name   string
		answer string
	}{
		{"script-tag", "x = 4 <script>steal()</script>"},
		{"harmful-keyword", "just cheat on the exam, x = 4"},
		{"javascript-uri", "javascript:alert(1)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := g.Validate(tt.answer, "solve 2x + 5 = 13")
			if res.IsValid {
				t.Errorf("unsafe answer %q should be rejected", tt.answer)
			}
		})
	}
}

func TestOutputValidate_GoodAnswer(t *testing.T) {
	g := NewOutputGuardrail(2000)
	res := g.Validate(goodAnswer, "solve 2x + 5 = 13")
	if !res.IsValid {
		t.Fatalf("well-formed answer rejected: conf=%.3f edu=%.3f warnings=%v",
			res.Confidence, res.EducationalValue, res.Warnings)
	}
	for _, w := range res.Warnings {
		if strings.HasPrefix(w, "Missing:") {
			t.Errorf("unexpected missing-element warning: %q", w)
		}
	}
	if res.Confidence < 0 || res.Confidence > 1 {
		t.Errorf("confidence out of range: %.3f", res.Confidence)
	}
	if res.EducationalValue < 0 || res.EducationalValue > 1 {
		t.Errorf("educational value out of range: %.3f", res.EducationalValue)
	}
}

func TestOutputValidate_MissingElementWarnings(t *testing.T) {
	g := NewOutputGuardrail(2000)
	res := g.Validate("x equals 4 + 0", "solve 2x + 5 = 13")
	if !res.IsValid {
		// Missing structure is advisory, not fatal, as long as the floors clear.
		t.Logf("answer below validity floors: conf=%.3f edu=%.3f", res.Confidence, res.EducationalValue)
	}

	wantMissing := []string{
		"Missing: step-by-step solution",
		"Missing: mathematical reasoning",
		"Missing: final answer",
	}
	for _, want := range wantMissing {
		found := false
		for _, w := range res.Warnings {
			if w == want {
				found = true
			}
		}
		if !found {
			t.Errorf("expected warning %q, got %v", want, res.Warnings)
		}
	}
}

func TestOutputValidate_UnbalancedParens(t *testing.T) {
	g := NewOutputGuardrail(2000)
	res := g.Validate("Step 1: expand (2x + 5 = 13 therefore the answer is x = 4", "solve")
	found := false
	for _, w := range res.Warnings {
		if strings.Contains(w, "Unbalanced parentheses") {
			found = true
		}
	}
	if !found {
		t.Errorf("expected unbalanced-parentheses warning, got %v", res.Warnings)
	}
	if !res.IsValid {
		t.Error("unbalanced parentheses must stay advisory")
	}
}

func TestConfidenceScore_Deterministic(t *testing.T) {
	a := ConfidenceScore(goodAnswer)
	b := ConfidenceScore(goodAnswer)
	if a != b {
		t.Errorf("confidence not deterministic: %.6f vs %.6f", a, b)
	}
}

func TestEducationalValue_StepBonus(t *testing.T) {
	withSteps := EducationalValue("Step 1: add. Step 2: divide. Because of this we get x = 4.")
	without := EducationalValue("Because of this we get x = 4.")
	if withSteps <= without {
		t.Errorf("step markers should raise educational value: %.3f vs %.3f", withSteps, without)
	}
}

func TestScores_AlwaysClamped(t *testing.T) {
	dense := strings.Repeat("Step 1: therefore we get x = 1 + 2 * 3 first second third next finally. ", 20)
	if c := ConfidenceScore(dense); c != 1.0 {
		t.Errorf("saturated confidence should clamp to 1.0, got %.3f", c)
	}
	if e := EducationalValue(dense); e > 1.0 {
		t.Errorf("educational value above 1.0: %.3f", e)
	}
}
