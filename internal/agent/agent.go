package agent

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"time"

	"mathagent/internal/guardrail"
	"mathagent/internal/learning"
	"mathagent/internal/llm"
	"mathagent/internal/provenance"
	"mathagent/internal/websearch"
)

// #region construction

// Options wires an Agent. KB, Input, Output and Sessions are required; the
// rest degrade gracefully when absent.
type Options struct {
	Input    *guardrail.InputGuardrail
	Output   *guardrail.OutputGuardrail
	KB       KnowledgeBase
	Web      websearch.Searcher
	Model    llm.Model
	Learning *learning.Aggregator
	Sessions *SessionSource

	// DecisionDB receives a provenance row per routed question when set.
	DecisionDB *sql.DB

	MaxWebResults int
	Now           func() time.Time
}

// Agent routes math questions between the knowledge base and web search,
// generates answers, and runs both guardrails around them.
type Agent struct {
	input    *guardrail.InputGuardrail
	output   *guardrail.OutputGuardrail
	kb       KnowledgeBase
	web      websearch.Searcher
	model    llm.Model
	learning *learning.Aggregator
	sessions *SessionSource

	decisionDB    *sql.DB
	maxWebResults int
	now           func() time.Time
}

func New(opts Options) *Agent {
	if opts.MaxWebResults <= 0 {
		opts.MaxWebResults = 3
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.Sessions == nil {
		opts.Sessions = NewSessionSource(opts.Now)
	}
	return &Agent{
		input:         opts.Input,
		output:        opts.Output,
		kb:            opts.KB,
		web:           opts.Web,
		model:         opts.Model,
		learning:      opts.Learning,
		sessions:      opts.Sessions,
		decisionDB:    opts.DecisionDB,
		maxWebResults: opts.MaxWebResults,
		now:           opts.Now,
	}
}

// #endregion construction

// #region process

// ProcessQuestion runs the full pipeline for one question. It never
// propagates a panic; any failure comes back as an unsuccessful result.
func (a *Agent) ProcessQuestion(ctx context.Context, question, userID string) (result ProcessResult) {
	if userID == "" {
		userID = "anonymous"
	}
	sessionID := a.sessions.Next()
	result.SessionID = sessionID

	defer func() {
		if r := recover(); r != nil {
			log.Printf("[AGENT] panic processing question: %v", r)
			result = ProcessResult{
				Success:   false,
				Error:     fmt.Sprintf("Processing failed: %v", r),
				SessionID: sessionID,
			}
		}
	}()

	inputResult := a.input.Validate(question)
	if !inputResult.IsValid {
		return ProcessResult{
			Success:   false,
			Error:     "Input validation failed",
			Warnings:  inputResult.Warnings,
			SessionID: sessionID,
		}
	}

	routing, err := route(ctx, a.kb, question)
	if err != nil {
		return ProcessResult{
			Success:   false,
			Error:     fmt.Sprintf("Processing failed: %v", err),
			SessionID: sessionID,
		}
	}

	if routing.Decision == DecisionReject {
		return ProcessResult{
			Success:   false,
			Error:     "Question rejected",
			Reasoning: routing.Reasoning,
			SessionID: sessionID,
		}
	}

	response := a.generateResponse(ctx, question, routing, sessionID)

	// Output validation is advisory; the sanitized form replaces the answer.
	outputResult := a.output.Validate(response.Answer, question)
	if outputResult.Sanitized != "" {
		response.Answer = outputResult.Sanitized
	}

	a.logDecision(sessionID, userID, question, routing)

	return ProcessResult{
		Success:   true,
		Response:  &response,
		SessionID: sessionID,
		RoutingInfo: &RoutingInfo{
			Decision:   string(routing.Decision),
			Confidence: routing.Confidence,
			Reasoning:  routing.Reasoning,
		},
		ValidationInfo: &ValidationInfo{
			InputWarnings:    inputResult.Warnings,
			OutputWarnings:   outputResult.Warnings,
			EducationalValue: outputResult.EducationalValue,
		},
	}
}

// #endregion process

// #region generation

func (a *Agent) generateResponse(ctx context.Context, question string, routing RoutingResult, sessionID string) MathResponse {
	if routing.Decision == DecisionKnowledgeBase {
		return a.knowledgeBaseResponse(question, routing, sessionID)
	}
	return a.webResponse(ctx, question, sessionID)
}

func (a *Agent) knowledgeBaseResponse(question string, routing RoutingResult, sessionID string) MathResponse {
	p := routing.Matches[0].Problem
	return MathResponse{
		Question:      question,
		Answer:        p.FinalAnswer,
		SolutionSteps: p.SolutionSteps,
		Explanation:   p.Explanation,
		Source:        "knowledge_base",
		Confidence:    routing.Confidence,
		SessionID:     sessionID,
		Timestamp:     a.now().Format(time.RFC3339),
	}
}

func (a *Agent) webResponse(ctx context.Context, question, sessionID string) MathResponse {
	query := question
	if a.model != nil {
		query = llm.GenerateSearchQuery(ctx, a.model, question)
	}

	results, err := a.web.Search(ctx, query, a.maxWebResults)
	if err != nil {
		log.Printf("[AGENT] web search failed: %v", err)
		results = nil
	}

	if len(results) == 0 {
		return MathResponse{
			Question:      question,
			Answer:        "I apologize, but I couldn't find a suitable solution for your question. Please try rephrasing or providing more specific details.",
			SolutionSteps: []string{"Unable to find solution"},
			Explanation:   "No relevant mathematical content found in web search",
			Source:        "web_search",
			Confidence:    0.0,
			SessionID:     sessionID,
			Timestamp:     a.now().Format(time.RFC3339),
		}
	}

	combined := websearch.CombineContent(results)

	var completion llm.Completion
	if a.model != nil {
		completion, err = llm.GenerateMathResponse(ctx, a.model, question, combined)
	} else {
		err = fmt.Errorf("no model configured")
	}
	if err != nil {
		log.Printf("[AGENT] model generation failed, extracting locally: %v", err)
		confidence := 0.2 * float64(len(results))
		if confidence > 0.8 {
			confidence = 0.8
		}
		return MathResponse{
			Question:      question,
			Answer:        extractAnswerFromContent(combined),
			SolutionSteps: extractStepsFromContent(combined),
			Explanation:   extractExplanationFromContent(combined),
			Source:        "web_search",
			Confidence:    confidence,
			SessionID:     sessionID,
			Timestamp:     a.now().Format(time.RFC3339),
		}
	}

	return MathResponse{
		Question:      question,
		Answer:        llm.ExtractFinalAnswer(ctx, a.model, completion.Text),
		SolutionSteps: llm.ExtractSolutionSteps(ctx, a.model, completion.Text),
		Explanation:   completion.Text,
		Source:        "web_search",
		Confidence:    completion.Confidence,
		SessionID:     sessionID,
		Timestamp:     a.now().Format(time.RFC3339),
	}
}

// #endregion generation

// #region feedback

// RecordFeedback files one rating against a delivered response.
func (a *Agent) RecordFeedback(ctx context.Context, question, response string, rating int, comments, sessionID string) (learning.ProcessResult, error) {
	if a.learning == nil {
		return learning.ProcessResult{}, fmt.Errorf("learning system not configured")
	}
	return a.learning.RecordInteraction(ctx, question, response, rating, comments, sessionID)
}

// Insights reports what the learning system has accumulated.
func (a *Agent) Insights() (learning.Insights, error) {
	if a.learning == nil {
		return learning.Insights{}, fmt.Errorf("learning system not configured")
	}
	return a.learning.Insights(), nil
}

// #endregion feedback

// #region provenance

func (a *Agent) logDecision(sessionID, userID, question string, routing RoutingResult) {
	if a.decisionDB == nil {
		return
	}
	err := provenance.LogDecision(a.decisionDB, provenance.Entry{
		SessionID:  sessionID,
		UserID:     userID,
		Question:   question,
		Decision:   string(routing.Decision),
		Confidence: routing.Confidence,
		Reasoning:  routing.Reasoning,
		CreatedAt:  a.now().UTC(),
	})
	if err != nil {
		log.Printf("[AGENT] decision log write failed: %v", err)
	}
}

// #endregion provenance
