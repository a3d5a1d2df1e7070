package httpapi

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"mathagent/internal/agent"
	"mathagent/internal/feedback"
	"mathagent/internal/kb"
	"mathagent/internal/learning"
)

// #region interfaces

// QuestionProcessor is the agent surface the API exposes.
type QuestionProcessor interface {
	ProcessQuestion(ctx context.Context, question, userID string) agent.ProcessResult
	RecordFeedback(ctx context.Context, question, response string, rating int, comments, sessionID string) (learning.ProcessResult, error)
	Insights() (learning.Insights, error)
}

// KnowledgeBase is the store surface behind the /knowledge-base routes.
type KnowledgeBase interface {
	Search(ctx context.Context, query string, limit int, threshold float64) ([]kb.Match, error)
	Count(ctx context.Context) (int, error)
}

// FeedbackSummarizer reports aggregate feedback statistics.
type FeedbackSummarizer interface {
	Summary() feedback.Summary
}

// #endregion interfaces

// #region requests

type askRequest struct {
	Question string `json:"question" binding:"required"`
	UserID   string `json:"user_id"`
}

type feedbackRequest struct {
	SessionID string `json:"session_id" binding:"required"`
	Rating    int    `json:"rating" binding:"required"`
	Comments  string `json:"comments"`
	Question  string `json:"question"`
	Response  string `json:"response"`
}

type kbSearchRequest struct {
	Query string `json:"query" binding:"required"`
	Limit int    `json:"limit"`
}

// #endregion requests

// #region handlers

// Handlers holds the HTTP handlers and their backing components.
type Handlers struct {
	agent    QuestionProcessor
	kb       KnowledgeBase
	feedback FeedbackSummarizer
	version  string
}

func NewHandlers(processor QuestionProcessor, store KnowledgeBase, summarizer FeedbackSummarizer, version string) *Handlers {
	return &Handlers{agent: processor, kb: store, feedback: summarizer, version: version}
}

func (h *Handlers) root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "Math Routing Agent API",
		"version": h.version,
		"status":  "running",
	})
}

func (h *Handlers) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "healthy",
		"components": gin.H{
			"routing_agent":   h.agent != nil,
			"knowledge_base":  h.kb != nil,
			"learning_system": h.feedback != nil,
		},
	})
}

// ask runs the full question pipeline. Pipeline failures (rejected input,
// backend errors) come back as success=false payloads, not HTTP errors.
func (h *Handlers) ask(c *gin.Context) {
	var req askRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "question is required"})
		return
	}

	result := h.agent.ProcessQuestion(c.Request.Context(), req.Question, req.UserID)
	c.JSON(http.StatusOK, result)
}

func (h *Handlers) submitFeedback(c *gin.Context) {
	var req feedbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "session_id and rating are required"})
		return
	}

	_, err := h.agent.RecordFeedback(c.Request.Context(), req.Question, req.Response, req.Rating, req.Comments, req.SessionID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":    true,
		"message":    "Feedback collected successfully",
		"session_id": req.SessionID,
	})
}

func (h *Handlers) insights(c *gin.Context) {
	insights, err := h.agent.Insights()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"insights": insights})
}

func (h *Handlers) feedbackSummary(c *gin.Context) {
	c.JSON(http.StatusOK, h.feedback.Summary())
}

func (h *Handlers) searchKnowledgeBase(c *gin.Context) {
	var req kbSearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "query is required"})
		return
	}
	if req.Limit <= 0 {
		req.Limit = 5
	}

	matches, err := h.kb.Search(c.Request.Context(), req.Query, req.Limit, 0)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
		return
	}
	if matches == nil {
		matches = []kb.Match{}
	}

	c.JSON(http.StatusOK, gin.H{
		"query":   req.Query,
		"results": matches,
		"count":   len(matches),
	})
}

func (h *Handlers) knowledgeBaseInfo(c *gin.Context) {
	count, err := h.kb.Count(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"collection":    "math_problems",
		"problem_count": count,
		"status":        "ready",
	})
}

// #endregion handlers
