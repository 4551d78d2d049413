package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/autoparts-agent/server/internal/agent/engine"
	"github.com/autoparts-agent/server/internal/agent/intent"
	"github.com/autoparts-agent/server/internal/agent/model"
	"github.com/autoparts-agent/server/internal/agent/repo"
	"github.com/autoparts-agent/server/internal/core"
	"github.com/autoparts-agent/server/internal/faq"
	"github.com/autoparts-agent/server/internal/genai"
	"github.com/autoparts-agent/server/internal/install"
	"github.com/autoparts-agent/server/internal/inventory"
	"github.com/autoparts-agent/server/internal/leadstore"
	"github.com/autoparts-agent/server/internal/synonyms"
	logx "github.com/autoparts-agent/server/pkg/logger"
	pkgredis "github.com/autoparts-agent/server/pkg/redis"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// AppConfig defines all configurable parameters for the agent example,
// sourced from environment variables (loaded from .env for local runs).
type AppConfig struct {
	Environment string `envconfig:"APP_ENV" default:"development"`

	// Infrastructure. Redis is optional: without REDIS_URL the demo keeps
	// sessions in memory.
	RedisURL string `envconfig:"REDIS_URL"`

	// LLM provider. Optional: without a key every generated reply uses its
	// deterministic fallback.
	APIKey  string `envconfig:"GEMINI_API_KEY"`
	BaseURL string `envconfig:"GEMINI_BASE_URL"`

	// Agent configs
	Engine    model.EngineConfig
	Generator model.GeneratorModelConfig
	Session   model.SessionConfig

	// Data sources
	ProductsCSV string `envconfig:"PRODUCTS_CSV"`
	SynonymsCSV string `envconfig:"SYNONYMS_CSV"`
	LeadsDB     string `envconfig:"LEADS_DB" default:"leads.db"`
}

func main() {
	fmt.Println("Auto parts agent demo...")
	ctx := context.Background()

	if err := godotenv.Load(".env"); err != nil {
		log.Printf("Warning: Could not load .env file: %v", err)
	}

	var envCfg AppConfig
	if err := envconfig.Process("", &envCfg); err != nil {
		log.Fatalf("Failed to process environment config: %v", err)
	}
	logx.Init(logx.LoggerOpts{Environment: core.ParseEnvironment(envCfg.Environment)})

	// ====================================================
	// Collaborators, each with its local fallback.

	var sessions model.SessionRepository = repo.NewMemorySessionRepository()
	if envCfg.RedisURL != "" {
		var redisCfg pkgredis.Config
		if err := envconfig.Process("REDIS", &redisCfg); err != nil {
			log.Fatalf("Failed to process Redis config: %v", err)
		}
		ttl, err := time.ParseDuration(envCfg.Session.TTL)
		if err != nil {
			log.Fatalf("Invalid SESSION_TTL '%s': %v", envCfg.Session.TTL, err)
		}
		rdb, err := redisCfg.New()
		if err != nil {
			log.Fatalf("Failed to initialise Redis client: %v", err)
		}
		defer rdb.Close()
		sessions = repo.NewRedisSessionRepository(rdb, ttl)
		fmt.Println("Connected to Redis successfully")
	}

	records := inventory.SeedRecords
	if envCfg.ProductsCSV != "" {
		loaded, err := inventory.LoadCSV(envCfg.ProductsCSV)
		if err != nil {
			log.Fatalf("Failed to load products from %s: %v", envCfg.ProductsCSV, err)
		}
		records = loaded
	}

	syn := synonyms.NewBuiltin()
	if envCfg.SynonymsCSV != "" {
		extra, err := synonyms.LoadCategoryCSV(envCfg.SynonymsCSV)
		if err != nil {
			log.Fatalf("Failed to load synonyms from %s: %v", envCfg.SynonymsCSV, err)
		}
		syn = syn.WithCategories(extra)
	}

	leads, err := leadstore.OpenSQLite(envCfg.LeadsDB)
	if err != nil {
		log.Fatalf("Failed to open lead store %s: %v", envCfg.LeadsDB, err)
	}
	defer leads.Close()

	var generator genai.Generator
	var classifier intent.ExternalClassifier
	if envCfg.APIKey != "" {
		gem, err := genai.NewGeminiGenerator(ctx, genai.GeminiConfig{
			APIKey:  envCfg.APIKey,
			BaseURL: envCfg.BaseURL,
			Model:   envCfg.Generator,
		})
		if err != nil {
			log.Fatalf("Failed to build Gemini generator: %v", err)
		}
		generator = gem
		classifier = genai.NewClassifier(gem)
	}

	eng := engine.New(envCfg.Engine, engine.Deps{
		Inventory: inventory.NewTable(records),
		Synonyms:  syn,
		Install:   install.DefaultTimes(),
		FAQ:       faq.NewKeyword(faq.DefaultEntries()),
		Leads:     leads,
		Detector:  intent.NewDetector(syn, classifier),
		Generator: generator,
		Sessions:  sessions,
	})

	// ====================================================
	// Scripted conversation exercising search, stock-out and lead capture.

	turns := []struct {
		description string
		message     string
	}{
		{"Greeting", "hi"},
		{"Search with make and part", "I need brakes for my Honda"},
		{"Installation follow-up", "can you install them for me?"},
		{"Consent", "yes please"},
		{"Name", "John Smith"},
		{"Contact", "0410 123 456"},
		{"Thanks", "thanks!"},
	}

	conversationID := "demo-conversation-1"

	for i, turn := range turns {
		fmt.Printf("\n🚀 Turn %d: %s\n", i+1, turn.description)
		fmt.Printf("Customer: %q\n", turn.message)

		reply, err := eng.Respond(ctx, conversationID, turn.message)
		if err != nil {
			log.Fatalf("Turn %d failed: %v", i+1, err)
		}

		fmt.Printf("Agent: %s\n", reply)
		fmt.Println("─────────────────────────────────────────────")

		time.Sleep(200 * time.Millisecond)
	}

	fmt.Println("🎉 Demo conversation completed!")
}
