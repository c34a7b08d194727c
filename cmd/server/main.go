package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/kemetlearn/kemet_service/internal/client"
	"github.com/kemetlearn/kemet_service/internal/config"
	"github.com/kemetlearn/kemet_service/internal/handler/http"
	"github.com/kemetlearn/kemet_service/internal/handler/ws"
	"github.com/kemetlearn/kemet_service/internal/logger"
	"github.com/kemetlearn/kemet_service/internal/server"
	"github.com/kemetlearn/kemet_service/internal/service"
	"github.com/kemetlearn/kemet_service/internal/store"
	"github.com/kemetlearn/kemet_service/internal/words"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	// Initialize logger
	log := logger.New(cfg.LogLevel, cfg.LogFormat)
	log.Info().Str("env", cfg.Environment).Msg("Starting kemet_service")

	// Create context for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize clients
	var geminiClient *client.GeminiClient
	var geminiAudioClient *client.GeminiAudioClient
	if cfg.GeminiAPIKey != "" {
		geminiClient, err = client.NewGeminiClient(ctx, cfg.GeminiAPIKey, cfg.GeminiModel)
		if err != nil {
			log.Error().Err(err).Msg("Failed to initialize Gemini client")
		} else {
			log.Info().Str("model", cfg.GeminiModel).Msg("Gemini client initialized")
		}

		geminiAudioClient, err = client.NewGeminiAudioClient(ctx, cfg.GeminiAPIKey)
		if err != nil {
			log.Error().Err(err).Msg("Failed to initialize Gemini audio client")
		}
	} else {
		log.Warn().Msg("GEMINI_API_KEY not set, skipping Gemini initialization")
	}

	var openaiClient *client.OpenAIClient
	if cfg.OpenAIAPIKey != "" {
		openaiClient = client.NewOpenAIClient(cfg.OpenAIAPIKey)
		log.Info().Msg("OpenAI client initialized")
	} else {
		log.Warn().Msg("OPENAI_API_KEY not set, skipping OpenAI initialization")
	}

	var huggingFaceClient *client.HuggingFaceClient
	if cfg.HuggingFaceToken != "" {
		huggingFaceClient = client.NewHuggingFaceClient(cfg.HuggingFaceToken)
	}

	dictionaryClient := client.NewDictionaryClient(cfg.DictionaryBaseURL)
	googleTTSClient := client.NewGoogleTTSClient(cfg.GoogleTTSBaseURL)

	// Initialize Redis client
	var redisClient *client.RedisClient
	if cfg.RedisURL != "" {
		redisClient, err = client.NewRedisClient(cfg.RedisURL)
		if err != nil {
			log.Error().Err(err).Msg("Failed to initialize Redis client")
		} else {
			log.Info().Msg("Redis client initialized")
		}
	}

	// Initialize Postgres client
	var postgresClient *client.PostgresClient
	if cfg.DatabaseURL != "" {
		postgresClient, err = client.NewPostgresClient(ctx, cfg.DatabaseURL)
		if err != nil {
			log.Error().Err(err).Msg("Failed to initialize Postgres client")
		} else {
			log.Info().Msg("Postgres client initialized")
		}
	}

	// Initialize Cloudflare R2 client (using S3 protocol)
	var cloudflareClient *client.CloudflareClient
	if cfg.CloudflareAccessKeyID != "" && cfg.CloudflareSecretKey != "" && cfg.CloudflareR2Endpoint != "" && cfg.CloudflareBucketName != "" {
		cloudflareClient, err = client.NewCloudflareClient(ctx,
			cfg.CloudflareAccessKeyID,
			cfg.CloudflareSecretKey,
			cfg.CloudflareR2Endpoint,
			cfg.CloudflareBucketName,
			cfg.CloudflarePublicURL,
		)
		if err != nil {
			log.Error().Err(err).Msg("Failed to initialize Cloudflare client")
		} else {
			log.Info().Msg("Cloudflare R2 client initialized")
		}
	} else {
		log.Warn().Msg("Cloudflare configuration missing, skipping R2 initialization")
	}

	// Select the key-value store: Postgres, then Redis, then in-memory.
	var kv store.KV
	switch {
	case postgresClient != nil:
		kv = store.NewPostgresStore(postgresClient)
		log.Info().Msg("Using Postgres key-value store")
	case redisClient != nil:
		kv = store.NewRedisStore(redisClient, "kemet")
		log.Info().Msg("Using Redis key-value store")
	default:
		kv = store.NewMemoryStore()
		log.Warn().Msg("No persistent store configured, progress and sessions are in-memory only")
	}

	// Select the TTS backend. Both need somewhere to host the audio.
	var audioHost service.AudioHost
	if cloudflareClient != nil {
		audioHost = cloudflareClient
	}

	var ttsBackend service.TTSBackend
	switch cfg.TTSBackend {
	case "google":
		ttsBackend = service.NewGoogleTTSBackend(googleTTSClient, audioHost)
	case "gemini":
		ttsBackend = service.NewGeminiTTSBackend(geminiClient, audioHost)
	default:
		log.Warn().Str("backend", cfg.TTSBackend).Msg("TTS backend disabled")
	}

	// Select the conversation provider
	var provider service.ConversationProvider
	switch cfg.ChatProvider {
	case "openai":
		if openaiClient != nil {
			provider = service.NewOpenAIConversationProvider(openaiClient)
		}
	default:
		if geminiClient != nil {
			provider = service.NewGeminiConversationProvider(geminiClient)
		}
	}
	if provider == nil {
		log.Warn().Str("provider", cfg.ChatProvider).Msg("No conversation provider available")
	}

	// Select the transcriber
	var transcriber service.Transcriber
	switch cfg.STTProvider {
	case "huggingface":
		if huggingFaceClient != nil {
			transcriber = huggingFaceClient
		}
	default:
		if openaiClient != nil {
			transcriber = openaiClient
		}
	}

	// Select the pronunciation assessor
	var assessor service.Assessor
	if cfg.AssessStrategy == "cloud" && geminiAudioClient != nil {
		assessor = service.NewCloudAssessor(log, geminiAudioClient)
	} else {
		assessor = service.NewHeuristicAssessor(log, transcriber)
	}

	// Initialize services
	wordStore := words.NewStore()
	authService := service.NewAuthService(kv)
	progressService := service.NewProgressService(kv)
	conversationService := service.NewConversationService(log, provider)
	speechService := service.NewSpeechService(log, dictionaryClient, ttsBackend, kv)

	// Initialize handlers
	healthHandler := http.NewHealthHandler()
	authHandler := http.NewAuthHandler(log, authService)
	wordsHandler := http.NewWordsHandler(log, wordStore)
	progressHandler := http.NewProgressHandler(log, progressService, wordStore)
	chatHandler := http.NewChatHandler(log, conversationService)
	speechHandler := http.NewSpeechHandler(log, speechService)
	pronunciationHandler := http.NewPronunciationHandler(log, assessor)
	ttsHandler := http.NewTTSHandler(log, googleTTSClient)
	speechSession := ws.NewHandler(log, speechService)

	// Initialize WebSocket hub
	hub := server.NewWebSocketHub(log, speechService)
	go hub.Run(ctx)

	// Initialize HTTP server
	httpServer := server.NewHTTPServer(
		cfg, log,
		healthHandler, authHandler, wordsHandler, progressHandler,
		chatHandler, speechHandler, pronunciationHandler, ttsHandler,
		authService, hub, speechSession,
	)

	// Start server
	go func() {
		if err := httpServer.Start(); err != nil {
			log.Error().Err(err).Msg("HTTP server error")
			cancel()
		}
	}()

	log.Info().
		Str("http_addr", cfg.HTTPAddress()).
		Msg("Server started")

	// Wait for shutdown signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case <-quit:
		log.Info().Msg("Shutdown signal received")
	case <-ctx.Done():
		log.Info().Msg("Context cancelled")
	}

	// Graceful shutdown
	log.Info().Msg("Shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer shutdownCancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("HTTP server shutdown error")
	}

	// Close clients
	if geminiClient != nil {
		geminiClient.Close()
	}
	if geminiAudioClient != nil {
		geminiAudioClient.Close()
	}
	if redisClient != nil {
		redisClient.Close()
	}
	if postgresClient != nil {
		postgresClient.Close()
	}

	log.Info().Msg("Server stopped")
}
