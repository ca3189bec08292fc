// cmd/server/main.go
package main

import (
	"context"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	airepository "campaigniq/internal/ai/repository"
	aiservice "campaigniq/internal/ai/service"
	aihttp "campaigniq/internal/ai/transport/http"
	analyticsservice "campaigniq/internal/analytics/service"
	analyticshttp "campaigniq/internal/analytics/transport/http"
	campaignrepository "campaigniq/internal/campaign/repository"
	campaignservice "campaigniq/internal/campaign/service"
	campaignhttp "campaigniq/internal/campaign/transport/http"
	commentrepository "campaigniq/internal/comment/repository"
	commentservice "campaigniq/internal/comment/service"
	commenthttp "campaigniq/internal/comment/transport/http"
	"campaigniq/internal/config"
	"campaigniq/internal/metrics"
	paymentrepository "campaigniq/internal/payment/repository"
	paymentservice "campaigniq/internal/payment/service"
	paymenthttp "campaigniq/internal/payment/transport/http"
	"campaigniq/internal/store"
	userrepository "campaigniq/internal/user/repository"
	userservice "campaigniq/internal/user/service"
	userhttp "campaigniq/internal/user/transport/http"
	"campaigniq/pkg/middleware"
)

var server *http.Server

func main() {
	cfg := config.Load()
	metrics.InitMetrics()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)
	logger.Info("CampaignIQ API starting")

	storeClient := store.NewClient(cfg.StoreURL, cfg.StoreKey, logger)

	// --- users and sessions ---
	userRepo := userrepository.NewStoreUserRepository(storeClient)
	sessionRepo := userrepository.NewStoreSessionRepository(storeClient)
	userService := userservice.NewUserService(userRepo, sessionRepo, logger)
	oauthVerifier := userservice.NewOAuthVerifier(cfg.OAuthJWTSecret, cfg.StoreURL)
	userHandler := userhttp.NewHandler(userService, oauthVerifier, cfg.BackendURL+"/api/auth/google/callback", logger)

	// --- AI ---
	gemini := aiservice.NewGeminiClient(cfg.GeminiAPIKey, cfg.GeminiModel)
	analysisRepo := airepository.NewStoreAnalysisRepository(storeClient)
	chatRepo := airepository.NewStoreChatRepository(storeClient)
	aiService := aiservice.NewService(gemini, analysisRepo, chatRepo, logger)
	aiHandler := aihttp.NewHandler(aiService)

	// --- campaigns ---
	campaignRepo := campaignrepository.NewStoreCampaignRepository(storeClient)
	campaignService := campaignservice.NewService(campaignRepo, aiService, userRepo, logger)
	campaignHandler := campaignhttp.NewHandler(campaignService)

	// --- comments ---
	commentRepo := commentrepository.NewStoreCommentRepository(storeClient)
	commentService := commentservice.NewService(commentRepo)
	commentHandler := commenthttp.NewHandler(commentService)

	// --- payments ---
	stripe := paymentservice.NewStripeClient(cfg.StripeAPIKey)
	txRepo := paymentrepository.NewStoreTransactionRepository(storeClient)
	pledgeRepo := paymentrepository.NewStorePledgeRepository(storeClient)
	paymentService := paymentservice.NewService(stripe, txRepo, pledgeRepo, campaignRepo, logger)
	paymentHandler := paymenthttp.NewHandler(paymentService, cfg.StripeWebhookSecret, logger)

	// --- analytics ---
	analyticsService := analyticsservice.NewService(campaignRepo, gemini, logger)
	analyticsHandler := analyticshttp.NewHandler(analyticsService)

	r := chi.NewRouter()

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"https://localhost:3000", "http://localhost:3000", "http://localhost:5173"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300,
	}))
	r.Use(middleware.Metrics)
	r.Use(middleware.SessionAuth(userService, logger))

	r.Route("/api", func(api chi.Router) {
		// auth
		api.Post("/auth/register", userHandler.Register)
		api.Post("/auth/login", userHandler.Login)
		api.Get("/auth/google-login", userHandler.GoogleLogin)
		api.Post("/auth/google/callback", userHandler.GoogleCallback)
		api.Get("/auth/me", userHandler.Me)
		api.Post("/auth/logout", userHandler.Logout)

		// campaigns, public reads
		api.Get("/campaigns", campaignHandler.List)
		api.Get("/campaigns/{id}", campaignHandler.Get)
		api.Get("/campaigns/{id}/analysis", aiHandler.CampaignAnalysis)
		api.Get("/campaigns/{id}/comments", commentHandler.List)

		// chat works for anonymous visitors too
		api.Post("/ai/chat", aiHandler.Chat)

		api.Post("/webhook/stripe", paymentHandler.Webhook)

		// authenticated
		api.Group(func(pr chi.Router) {
			pr.Use(middleware.RequireUser)
			pr.Use(middleware.ValidateRequest)

			pr.Post("/campaigns", campaignHandler.Create)
			pr.Post("/campaigns/extended", campaignHandler.CreateExtended)
			pr.Put("/campaigns/{id}", campaignHandler.Update)
			pr.Delete("/campaigns/{id}", campaignHandler.Delete)
			pr.Post("/campaigns/{id}/comments", commentHandler.Create)
			pr.Get("/my-campaigns", campaignHandler.ListMine)

			pr.Post("/ai/optimize-title", aiHandler.OptimizeTitle)
			pr.Post("/ai/enhance-description", aiHandler.EnhanceDescription)
			pr.Post("/ai/success-prediction", aiHandler.PredictSuccess)
			pr.Post("/ai/marketing-strategy", aiHandler.MarketingStrategy)

			pr.Post("/payments/create-checkout", paymentHandler.CreateCheckout)
			pr.Get("/payments/status/{session_id}", paymentHandler.Status)

			pr.Get("/analytics/overview", analyticsHandler.Overview)
			pr.Get("/analytics/monte-carlo/{id}", analyticsHandler.MonteCarlo)
			pr.Get("/analytics/competitor-analysis/{id}", analyticsHandler.CompetitorAnalysis)
			pr.Get("/analytics/strategic-recommendations/{id}", analyticsHandler.Recommendations)
		})

		// admin
		api.Group(func(ar chi.Router) {
			ar.Use(middleware.RequireAdmin)

			ar.Get("/admin/campaigns", campaignHandler.AdminList)
			ar.Get("/admin/stats", campaignHandler.AdminStats)
		})
	})

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("OK"))
	})

	r.Group(func(mr chi.Router) {
		mr.Use(middleware.BasicAuth(cfg.MetricsUser, cfg.MetricsPass))
		mr.Handle("/metrics", promhttp.Handler())
	})

	server = &http.Server{
		Addr:    cfg.Addr,
		Handler: r,
	}

	logger.Info("server running", "addr", cfg.Addr)

	go func() {
		sig := make(chan os.Signal, 1)
		signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
		<-sig

		logger.Info("shutdown signal received")
		shutdownServer(logger)
	}()

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal(err)
	}
}

func shutdownServer(logger *slog.Logger) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		logger.Error("server shutdown failed", "err", err)
	}

	logger.Info("server stopped")
}
