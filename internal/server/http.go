package server

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/rs/zerolog"

	"github.com/kemetlearn/kemet_service/internal/config"
	httphandler "github.com/kemetlearn/kemet_service/internal/handler/http"
	wshandler "github.com/kemetlearn/kemet_service/internal/handler/ws"
	"github.com/kemetlearn/kemet_service/internal/middleware"
	"github.com/kemetlearn/kemet_service/internal/service"
)

// HTTPServer represents the HTTP server.
type HTTPServer struct {
	server *http.Server
	log    zerolog.Logger
}

// NewHTTPServer creates a new HTTP server.
func NewHTTPServer(
	cfg *config.Config,
	log zerolog.Logger,
	healthHandler *httphandler.HealthHandler,
	authHandler *httphandler.AuthHandler,
	wordsHandler *httphandler.WordsHandler,
	progressHandler *httphandler.ProgressHandler,
	chatHandler *httphandler.ChatHandler,
	speechHandler *httphandler.SpeechHandler,
	pronunciationHandler *httphandler.PronunciationHandler,
	ttsHandler *httphandler.TTSHandler,
	authService *service.AuthService,
	hub *WebSocketHub,
	speechSession *wshandler.Handler,
) *HTTPServer {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.Logger(log))
	r.Use(middleware.Recovery(log))
	r.Use(chimiddleware.Compress(5))

	// CORS
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.CORSAllowedOrigins,
		AllowedMethods:   cfg.CORSAllowedMethods,
		AllowedHeaders:   cfg.CORSAllowedHeaders,
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// Health endpoints (public)
	r.Get("/health", healthHandler.Health)
	r.Get("/ready", healthHandler.Ready)
	r.Get("/live", healthHandler.Live)

	// API routes
	r.Route("/api/v1", func(r chi.Router) {
		// Mock auth endpoints
		r.Post("/auth/login", authHandler.Login)
		r.Post("/auth/logout", authHandler.Logout)

		// TTS proxy (public, raw audio)
		r.Get("/tts", ttsHandler.Proxy)

		// Everything else runs behind identity resolution; unauthenticated
		// requests proceed as the guest identity.
		r.Group(func(r chi.Router) {
			r.Use(middleware.Identity(authService))

			// Vocabulary endpoints
			r.Get("/words", wordsHandler.List)
			r.Get("/words/{day}", wordsHandler.Day)

			// Progress endpoints
			r.Get("/progress", progressHandler.Get)
			r.Post("/progress", progressHandler.Mark)
			r.Delete("/progress/{day}", progressHandler.Unmark)

			// Conversation practice endpoint
			r.Post("/chat", chatHandler.Exchange)

			// Speech endpoints
			r.Post("/speech/resolve", speechHandler.Resolve)
			r.Get("/speech/prefs", speechHandler.GetPrefs)
			r.Put("/speech/prefs", speechHandler.PutPrefs)

			// Pronunciation assessment endpoint
			r.Post("/pronunciation/assess", pronunciationHandler.Assess)
		})
	})

	// Speech playback session
	r.Get("/ws/speech", func(w http.ResponseWriter, req *http.Request) {
		hub.HandleWebSocket(w, req, speechSession)
	})

	server := &http.Server{
		Addr:         cfg.HTTPAddress(),
		Handler:      r,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}

	return &HTTPServer{
		server: server,
		log:    log,
	}
}

// Start starts the HTTP server.
func (s *HTTPServer) Start() error {
	s.log.Info().Str("addr", s.server.Addr).Msg("Starting HTTP server")
	if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Shutdown gracefully shuts down the HTTP server.
func (s *HTTPServer) Shutdown(ctx context.Context) error {
	s.log.Info().Msg("Shutting down HTTP server")
	return s.server.Shutdown(ctx)
}
