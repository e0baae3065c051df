package main

import (
	"log"
	"net/http"
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/larapitasantfrancesc-beep/giuseppe2.0/internal/chat"
	"github.com/larapitasantfrancesc-beep/giuseppe2.0/internal/config"
	"github.com/larapitasantfrancesc-beep/giuseppe2.0/internal/customer"
	"github.com/larapitasantfrancesc-beep/giuseppe2.0/internal/db"
	"github.com/larapitasantfrancesc-beep/giuseppe2.0/internal/llm"
	"github.com/larapitasantfrancesc-beep/giuseppe2.0/internal/notify"
	"github.com/larapitasantfrancesc-beep/giuseppe2.0/internal/order"
)

func main() {

	// ───────────────────────── ENV ─────────────────────────
	if os.Getenv("APP_ENV") != "production" {
		_ = godotenv.Load()
	}

	cfg := config.Load()

	if cfg.AnthropicAPIKey == "" {
		// Not fatal: the handler answers 500 until the key appears, same
		// as the serverless original.
		log.Println("⚠️ ANTHROPIC_API_KEY not set, chat will answer 500")
	}

	// ───────────────────────── GIN ─────────────────────────
	r := gin.Default()
	r.HandleMethodNotAllowed = true
	r.NoMethod(func(c *gin.Context) {
		c.JSON(http.StatusMethodNotAllowed, gin.H{"error": "Method not allowed"})
	})

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://localhost:5173"},
		AllowMethods:     []string{"GET", "POST"},
		AllowHeaders:     []string{"Origin", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// ───────────────────────── COLLABORATORS ─────────────────────────
	completions := llm.NewAnthropicClient(cfg.AnthropicAPIKey, cfg.Model, cfg.MaxTokens)

	var (
		lookup    *customer.Lookup
		persister *order.Persister
	)
	if cfg.DatabaseURL != "" {
		pgDB := db.ConnectPostgres(cfg.DatabaseURL)
		defer pgDB.Close()

		customerRepo := customer.NewPostgresRepository(pgDB)
		orderRepo := order.NewPostgresRepository(pgDB)
		lookup = customer.NewLookup(customerRepo)
		persister = order.NewPersister(customerRepo, orderRepo)
	} else {
		log.Println("DATABASE_URL not set, running without customer history")
	}

	var notifier notify.Notifier
	if cfg.TelegramBotToken != "" && cfg.TelegramChatID != "" {
		notifier = notify.NewTelegramNotifier(cfg.TelegramBotToken, cfg.TelegramChatID)
	} else {
		log.Println("Telegram not configured, order notifications disabled")
	}

	// ───────────────────────── CHAT ─────────────────────────
	chatService := chat.NewService(completions, lookup, notifier, persister)
	chatHandler := chat.NewHandler(chatService, cfg.AnthropicAPIKey)

	r.POST("/chat", chatHandler.Chat)

	// Health Check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// ───────────────────────── SERVE ─────────────────────────
	log.Printf("Server running on http://localhost%s", cfg.ListenAddr)
	if err := r.Run(cfg.ListenAddr); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
