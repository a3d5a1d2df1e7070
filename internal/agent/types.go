package agent

import "mathagent/internal/kb"

// #region routing

// RouteDecision names the path chosen for a question.
type RouteDecision string

const (
	DecisionKnowledgeBase RouteDecision = "knowledge_base"
	DecisionWebSearch     RouteDecision = "web_search"
	DecisionReject        RouteDecision = "reject"
)

// RoutingResult is the outcome of the routing policy, including the
// knowledge-base matches that informed it.
type RoutingResult struct {
	Decision   RouteDecision
	Confidence float64
	Reasoning  string
	Source     string
	Matches    []kb.Match
}

// #endregion routing

// #region response

// MathResponse is one answered question.
type MathResponse struct {
	Question      string   `json:"question"`
	Answer        string   `json:"answer"`
	SolutionSteps []string `json:"solution_steps"`
	Explanation   string   `json:"explanation"`
	Source        string   `json:"source"`
	Confidence    float64  `json:"confidence"`
	SessionID     string   `json:"session_id"`
	Timestamp     string   `json:"timestamp"`
}

// RoutingInfo surfaces the routing decision alongside the response.
type RoutingInfo struct {
	Decision   string  `json:"decision"`
	Confidence float64 `json:"confidence"`
	Reasoning  string  `json:"reasoning"`
}

// ValidationInfo surfaces the advisory guardrail findings.
type ValidationInfo struct {
	InputWarnings    []string `json:"input_warnings"`
	OutputWarnings   []string `json:"output_warnings"`
	EducationalValue float64  `json:"educational_value"`
}

// ProcessResult is the full outcome of one question, success or failure.
type ProcessResult struct {
	Success        bool            `json:"success"`
	Error          string          `json:"error,omitempty"`
	Reasoning      string          `json:"reasoning,omitempty"`
	Warnings       []string        `json:"warnings,omitempty"`
	Response       *MathResponse   `json:"response,omitempty"`
	SessionID      string          `json:"session_id"`
	RoutingInfo    *RoutingInfo    `json:"routing_info,omitempty"`
	ValidationInfo *ValidationInfo `json:"validation_info,omitempty"`
}

// #endregion response
