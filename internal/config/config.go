package config

import (
	"os"
	"strconv"
)

// #region config

// Config holds process-wide settings for the math agent.
type Config struct {
	// HTTP
	Port string

	// Backends
	GeminiAPIKey   string
	GeminiModel    string
	EmbeddingModel string
	TavilyAPIKey   string
	MCPServerURL   string

	// Storage
	KBPath       string
	FeedbackPath string

	// Guardrails
	MaxInputLength  int
	MaxOutputLength int
	AllowedTopics   []string
}

// #endregion config

// #region defaults

// DefaultConfig returns settings populated from environment variables,
// falling back to built-in defaults. Reads: PORT, GEMINI_API_KEY,
// GEMINI_MODEL, EMBEDDING_MODEL, TAVILY_API_KEY, MCP_SERVER_URL, KB_PATH,
// FEEDBACK_PATH, MAX_INPUT_LENGTH, MAX_OUTPUT_LENGTH.
func DefaultConfig() Config {
	cfg := Config{
		Port:            "8000",
		GeminiModel:     "gemini-2.5-flash",
		EmbeddingModel:  "gemini-embedding-001",
		MCPServerURL:    "http://localhost:3000",
		KBPath:          "math_knowledge.db",
		FeedbackPath:    "feedback_history.json",
		MaxInputLength:  1000,
		MaxOutputLength: 2000,
		AllowedTopics: []string{
			"mathematics", "algebra", "calculus", "geometry",
			"statistics", "trigonometry",
		},
	}

	cfg.Port = envOr("PORT", cfg.Port)
	cfg.GeminiAPIKey = os.Getenv("GEMINI_API_KEY")
	cfg.GeminiModel = envOr("GEMINI_MODEL", cfg.GeminiModel)
	cfg.EmbeddingModel = envOr("EMBEDDING_MODEL", cfg.EmbeddingModel)
	cfg.TavilyAPIKey = os.Getenv("TAVILY_API_KEY")
	cfg.MCPServerURL = envOr("MCP_SERVER_URL", cfg.MCPServerURL)
	cfg.KBPath = envOr("KB_PATH", cfg.KBPath)
	cfg.FeedbackPath = envOr("FEEDBACK_PATH", cfg.FeedbackPath)

	if v := os.Getenv("MAX_INPUT_LENGTH"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.MaxInputLength = n
		}
	}
	if v := os.Getenv("MAX_OUTPUT_LENGTH"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.MaxOutputLength = n
		}
	}

	return cfg
}

// #endregion defaults

// #region helpers

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// #endregion helpers
