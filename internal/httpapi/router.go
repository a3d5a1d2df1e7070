package httpapi

import (
	"log"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// #region middleware

const requestIDHeader = "X-Request-ID"

// requestID assigns every request a UUID unless the caller supplied one.
func requestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(requestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		c.Set("request_id", id)
		c.Writer.Header().Set(requestIDHeader, id)
		c.Next()
	}
}

// requestLog writes one line per request after it completes.
func requestLog() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		log.Printf("[HTTP] %s %s -> %d (%s) id=%s",
			c.Request.Method, c.Request.URL.Path, c.Writer.Status(),
			time.Since(start).Round(time.Millisecond), c.GetString("request_id"))
	}
}

// cors mirrors the permissive policy of the original deployment.
func cors(allowedOrigin string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", allowedOrigin)
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, "+requestIDHeader)
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}
		c.Next()
	}
}

// #endregion middleware

// #region router

// NewRouter assembles the gin engine with all routes and middleware.
func NewRouter(h *Handlers, allowedOrigin string) *gin.Engine {
	if allowedOrigin == "" {
		allowedOrigin = "*"
	}

	r := gin.New()
	r.Use(gin.Recovery(), requestID(), requestLog(), cors(allowedOrigin))

	r.GET("/", h.root)
	r.GET("/health", h.health)
	r.POST("/ask", h.ask)
	r.POST("/feedback", h.submitFeedback)
	r.GET("/insights", h.insights)
	r.GET("/feedback/summary", h.feedbackSummary)
	r.POST("/knowledge-base/search", h.searchKnowledgeBase)
	r.GET("/knowledge-base/info", h.knowledgeBaseInfo)

	return r
}

// #endregion router
