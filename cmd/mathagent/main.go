package main

import (
	"context"
	"fmt"
	"log"

	"mathagent/internal/agent"
	"mathagent/internal/config"
	"mathagent/internal/feedback"
	"mathagent/internal/guardrail"
	"mathagent/internal/httpapi"
	"mathagent/internal/kb"
	"mathagent/internal/learning"
	"mathagent/internal/llm"
	"mathagent/internal/websearch"
)

const version = "1.0.0"

// #region main
func main() {
	cfg := config.DefaultConfig()
	if cfg.GeminiAPIKey == "" {
		log.Fatal("GEMINI_API_KEY is required")
	}

	ctx := context.Background()

	embedder, err := kb.NewGenAIEmbedder(ctx, cfg.GeminiAPIKey, cfg.EmbeddingModel)
	if err != nil {
		log.Fatalf("failed to create embedder: %v", err)
	}

	store, err := kb.NewStore(cfg.KBPath, embedder)
	if err != nil {
		log.Fatalf("failed to open knowledge base: %v", err)
	}
	defer store.Close()

	// Seed the curated problem set on first run
	count, err := store.Count(ctx)
	if err != nil {
		log.Fatalf("failed to inspect knowledge base: %v", err)
	}
	if count == 0 {
		log.Println("Knowledge base empty, seeding curated problems...")
		if err := store.Seed(ctx, kb.SeedProblems()); err != nil {
			log.Fatalf("failed to seed knowledge base: %v", err)
		}
	}

	model, err := llm.NewGeminiClient(ctx, cfg.GeminiAPIKey, cfg.GeminiModel)
	if err != nil {
		log.Fatalf("failed to create model client: %v", err)
	}

	wcfg := websearch.DefaultConfig()
	var primary websearch.Searcher
	if cfg.TavilyAPIKey != "" {
		primary = websearch.NewTavilyClient(cfg.TavilyAPIKey, wcfg.Timeout)
	}
	web := websearch.NewChain(primary, websearch.NewMCPClient(cfg.MCPServerURL, wcfg.Timeout))

	feedbackStore, err := feedback.NewStore(cfg.FeedbackPath)
	if err != nil {
		log.Fatalf("failed to open feedback store: %v", err)
	}

	aggregator := learning.NewAggregator(feedbackStore, learning.NewEvaluator(model))

	mathAgent := agent.New(agent.Options{
		Input:         guardrail.NewInputGuardrail(cfg.MaxInputLength, cfg.AllowedTopics),
		Output:        guardrail.NewOutputGuardrail(cfg.MaxOutputLength),
		KB:            store,
		Web:           web,
		Model:         model,
		Learning:      aggregator,
		Sessions:      agent.NewSessionSource(nil),
		DecisionDB:    store.DB(),
		MaxWebResults: wcfg.MaxResults,
	})

	handlers := httpapi.NewHandlers(mathAgent, store, feedbackStore, version)
	router := httpapi.NewRouter(handlers, "*")

	fmt.Printf("Math Routing Agent listening on :%s (kb=%s, model=%s)\n",
		cfg.Port, cfg.KBPath, cfg.GeminiModel)
	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}

// #endregion main
