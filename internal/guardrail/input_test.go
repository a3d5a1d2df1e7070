package guardrail

import (
	"strings"
	"testing"
)

var allowedTopics = []string{
	"mathematics", "algebra", "calculus", "geometry", "statistics", "trigonometry",
}

func TestInputValidate_LengthOverflow(t *testing.T) {
	g := NewInputGuardrail(50, allowedTopics)
	res := g.Validate(strings.Repeat("x", 51))
	if res.IsValid {
		t.Fatal("overlong input should be rejected")
	}
	if res.Sanitized != "" {
		t.Errorf("rejected input should have empty sanitized text, got %q", res.Sanitized)
	}
	if len(res.Warnings) == 0 {
		t.Error("rejection should carry a warning")
	}
}

func TestInputValidate_UnsafePatterns(t *testing.T) {
	g := NewInputGuardrail(1000, allowedTopics)

	tests := []struct {
		name  string
		input string
	}{
		{"script-tag", "solve <script>alert(1)</script> for x"},
		{"javascript-uri", "javascript:void(0) solve 2x=4"},
		{"harmful-keyword", "how to hack the grading system"},
		{"data-uri", "data:text/html,<h1>hi</h1>"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := g.Validate(tt.input)
			if res.IsValid {
				t.Errorf("unsafe input %q should be rejected", tt.input)
			}
			if res.Sanitized != "" {
				t.Error("rejected input should have empty sanitized text")
			}
		})
	}
}

func TestInputValidate_Sanitizes(t *testing.T) {
	g := NewInputGuardrail(1000, allowedTopics)
	res := g.Validate(`  Solve   the "equation":  2x + 5 = 13  `)
	if !res.IsValid {
		t.Fatalf("valid math question rejected: %v", res.Warnings)
	}
	if res.Sanitized != "Solve the equation: 2x + 5 = 13" {
		t.Errorf("unexpected sanitized text: %q", res.Sanitized)
	}
}

func TestInputValidate_DenseMathQuestion(t *testing.T) {
	g := NewInputGuardrail(1000, allowedTopics)
	res := g.Validate("Solve the equation and factor the polynomial: x^2 - 5x + 6 = 0, then solve for the variable x and evaluate 2x + 5 = 13")
	if !res.IsValid {
		t.Fatalf("valid math question rejected: %v", res.Warnings)
	}
	if res.Confidence <= 0.3 {
		t.Errorf("dense math question should clear the advisory floor, got %.3f", res.Confidence)
	}
	if res.Topic != "algebra" {
		t.Errorf("expected topic algebra, got %q", res.Topic)
	}
}

func TestInputValidate_NonMathWarning(t *testing.T) {
	g := NewInputGuardrail(1000, allowedTopics)
	res := g.Validate("tell me your favorite color please")
	if !res.IsValid {
		t.Fatal("non-math input is a warning, not a rejection")
	}
	if res.Confidence != 0.1 {
		t.Errorf("expected low-confidence fallback 0.1, got %.3f", res.Confidence)
	}
	if res.Topic != "general" {
		t.Errorf("expected topic general, got %q", res.Topic)
	}
	found := false
	for _, w := range res.Warnings {
		if strings.Contains(w, "may not be mathematical") {
			found = true
		}
	}
	if !found {
		t.Errorf("missing advisory warning, got %v", res.Warnings)
	}
}

func TestInputValidate_DisallowedTopicWarning(t *testing.T) {
	g := NewInputGuardrail(1000, allowedTopics)
	res := g.Validate("Find the determinant and eigenvalue of the matrix: solve the vector equation 2x + 3y = 5 and 4x - y = 1, then calculate, evaluate and compute the determinant values 1 2 3 4")
	if !res.IsValid {
		t.Fatal("off-allow-list topic must not reject")
	}
	if res.Topic != "linear_algebra" {
		t.Fatalf("expected linear_algebra, got %q", res.Topic)
	}
	found := false
	for _, w := range res.Warnings {
		if strings.Contains(w, "linear_algebra") {
			found = true
		}
	}
	if !found {
		t.Errorf("expected unsupported-topic warning, got %v", res.Warnings)
	}
}

func TestMathScore_Deterministic(t *testing.T) {
	text := "find the derivative of f(x) = x^2 + 3x + 2"
	a := MathScore(text)
	b := MathScore(text)
	if a != b {
		t.Errorf("score not deterministic: %.6f vs %.6f", a, b)
	}
	if a < 0 || a > 1 {
		t.Errorf("score out of range: %.6f", a)
	}
}

func TestMathScore_Range(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{"empty", ""},
		{"prose", "the quick brown fox jumps over the lazy dog"},
		{"dense-math", "solve integrate differentiate x y z 1 2 3 4 5 6 7 8 9 10 11 12 + - * / = equation formula"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := MathScore(tt.text)
			if s < 0 || s > 1 {
				t.Errorf("score out of [0,1]: %.6f", s)
			}
		})
	}
}

func TestMathScore_CountsAllVariableLetters(t *testing.T) {
	base := MathScore("solve for")
	for _, v := range []string{"x", "y", "z", "a", "m", "w"} {
		if got := MathScore("solve for " + v); got <= base {
			t.Errorf("variable %q did not raise the score: %.4f vs base %.4f", v, got, base)
		}
	}
	if x, w := MathScore("solve for x"), MathScore("solve for w"); x != w {
		t.Errorf("x scores %.4f but w scores %.4f; all letters weigh equally", x, w)
	}
}

func TestDetectTopic(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{"calculus", "find the derivative using the limit definition", "calculus"},
		{"geometry", "find the area of the triangle with this angle", "geometry"},
		{"statistics", "what is the mean and median of this distribution", "statistics"},
		{"no-hits", "hello there", "general"},
		{"tie-first-wins", "solve sin", "algebra"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DetectTopic(tt.text); got != tt.want {
				t.Errorf("DetectTopic(%q) = %q, want %q", tt.text, got, tt.want)
			}
		})
	}
}
