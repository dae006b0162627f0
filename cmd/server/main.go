package main

import (
	"context"
	"fmt"
	"math/rand"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/pitchside/fantasy-cricket-ai/internal/advisor"
	"github.com/pitchside/fantasy-cricket-ai/internal/ai"
	"github.com/pitchside/fantasy-cricket-ai/internal/api/handlers"
	"github.com/pitchside/fantasy-cricket-ai/internal/config"
	"github.com/pitchside/fantasy-cricket-ai/internal/livedata"
	"github.com/pitchside/fantasy-cricket-ai/internal/logger"
	"github.com/pitchside/fantasy-cricket-ai/internal/players"
	"github.com/pitchside/fantasy-cricket-ai/internal/scoring"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		logrus.Fatalf("Failed to load config: %v", err)
	}

	log := logger.InitLogger(cfg.LogLevel, cfg.IsDevelopment())
	logger.WithService("fantasy-cricket-ai").WithFields(logrus.Fields{
		"version":     "1.0.0",
		"environment": cfg.Env,
		"port":        cfg.Port,
	}).Info("Starting Fantasy Cricket AI backend")

	if cfg.IsDevelopment() {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	// Core components
	catalog := players.NewCatalog()
	liveCache := livedata.NewCache(cfg.LiveCacheTTL, time.Now, log)
	formEngine := scoring.NewEngine(catalog, log)

	// AI provider chain in priority order; a missing credential just means
	// that tier is absent.
	var providers []ai.Provider
	var providerHealth []handlers.ProviderHealth
	aiStatus := map[string]bool{"anthropic": false, "openai": false}

	if anthropic := ai.NewAnthropicClient(cfg.AnthropicAPIKey, cfg.AIRequestTimeout, cfg.AIMaxTokens, log); anthropic != nil {
		providers = append(providers, anthropic)
		providerHealth = append(providerHealth, anthropic)
		aiStatus["anthropic"] = true
		log.Info("Anthropic client initialized")
	}
	if openai := ai.NewOpenAIClient(cfg.OpenAIAPIKey, cfg.AIRequestTimeout, cfg.AIMaxTokens, log); openai != nil {
		providers = append(providers, openai)
		providerHealth = append(providerHealth, openai)
		aiStatus["openai"] = true
		log.Info("OpenAI client initialized")
	}
	if len(providers) == 0 {
		log.Warn("No AI providers configured, serving rule-based responses only")
	}

	ruleEngine := advisor.NewRuleEngine(catalog)
	adv := advisor.NewAdvisor(providers, ruleEngine, catalog, log)

	// Router
	router := gin.New()
	router.Use(gin.Logger(), gin.Recovery())
	router.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CorsOrigins,
		AllowMethods:     []string{"GET", "POST", "HEAD", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Handlers
	chatHandler := handlers.NewChatHandler(adv, log)
	quickActionHandler := handlers.NewQuickActionHandler(log)
	matchHandler := handlers.NewMatchHandler(liveCache, log)
	formHandler := handlers.NewFormHandler(formEngine, log)
	statsHandler := handlers.NewStatsHandler(rand.New(rand.NewSource(time.Now().UnixNano())), log)
	healthHandler := handlers.NewHealthHandler(aiStatus, providerHealth, log)

	api := router.Group("/api")
	{
		api.POST("/chat", chatHandler.Chat)
		api.GET("/quick-actions/:action", quickActionHandler.GetQuickAction)
		api.GET("/matches", matchHandler.GetMatches)
		api.POST("/player-form", formHandler.GetPlayerForm)
		api.GET("/live-stats", statsHandler.GetLiveStats)
		api.GET("/match-analysis", statsHandler.GetMatchAnalysis)
		api.GET("/health", healthHandler.GetHealth)
	}

	router.GET("/ready", healthHandler.GetReady)
	router.HEAD("/ready", healthHandler.GetReady)

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.Port),
		Handler: router,
	}

	go func() {
		logger.WithService("fantasy-cricket-ai").WithField("port", cfg.Port).Info("Fantasy cricket AI backend started")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.WithService("fantasy-cricket-ai").Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.WithService("fantasy-cricket-ai").Info("Shutting down fantasy cricket AI backend...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.WithService("fantasy-cricket-ai").Fatalf("Server forced to shutdown: %v", err)
	}

	logger.WithService("fantasy-cricket-ai").Info("Fantasy cricket AI backend exited")
}
