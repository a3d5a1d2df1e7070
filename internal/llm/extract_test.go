package llm

import (
	"context"
	"errors"
	"strings"
	"testing"
)

// stubModel returns a canned completion or error.
type stubModel struct {
	text string
	err  error
}

func (s stubModel) Complete(_ context.Context, _ string) (Completion, error) {
	if s.err != nil {
		return Completion{}, s.err
	}
	return Completion{Text: s.text, Confidence: 0.8}, nil
}

func TestExtractSolutionSteps(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{
			"numbered-list",
			"1. Subtract 5 from both sides\n2. Divide by 2\n3. x = 4",
			[]string{"Subtract 5 from both sides", "Divide by 2", "x = 4"},
		},
		{
			"step-prefixes",
			"Step 1: Add the terms\nStep 2: Simplify",
			[]string{"Add the terms", "Simplify"},
		},
		{
			"dashes",
			"- isolate x\n- verify the result",
			[]string{"isolate x", "verify the result"},
		},
		{
			"no-structure",
			"the answer is four",
			[]string{"Solution steps not clearly identified"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ExtractSolutionSteps(context.Background(), stubModel{text: tt.text}, "ignored")
			if len(got) != len(tt.want) {
				t.Fatalf("got %d steps %v, want %d", len(got), got, len(tt.want))
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("step %d: got %q, want %q", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestExtractSolutionSteps_ModelFailure(t *testing.T) {
	got := ExtractSolutionSteps(context.Background(), stubModel{err: errors.New("down")}, "response")
	if len(got) != 1 || !strings.Contains(got[0], "not clearly identified") {
		t.Errorf("expected fallback step, got %v", got)
	}
}

func TestExtractFinalAnswer(t *testing.T) {
	got := ExtractFinalAnswer(context.Background(), stubModel{text: "  x = 4\n"}, "response")
	if got != "x = 4" {
		t.Errorf("got %q", got)
	}

	got = ExtractFinalAnswer(context.Background(), stubModel{err: errors.New("down")}, "response")
	if got != "Final answer not clearly identified" {
		t.Errorf("got %q", got)
	}
}

func TestGenerateSearchQuery_Fallback(t *testing.T) {
	got := GenerateSearchQuery(context.Background(), stubModel{err: errors.New("down")}, "solve 2x+5=13")
	if got != "solve 2x+5=13 mathematics step by step solution" {
		t.Errorf("got %q", got)
	}

	got = GenerateSearchQuery(context.Background(), stubModel{text: " quadratic equation tutorial \n"}, "q")
	if got != "quadratic equation tutorial" {
		t.Errorf("got %q", got)
	}
}
