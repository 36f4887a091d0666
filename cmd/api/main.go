package main

import (
	"context"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"car-shop-relay/internal/config"
	apihttp "car-shop-relay/internal/http"
	"car-shop-relay/internal/llm"
	"car-shop-relay/internal/persona"
	"car-shop-relay/internal/service"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("warning: loading .env: %v", err)
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		panic(err)
	}

	logger, _ := zap.NewProduction()
	defer logger.Sync()

	assistant, err := persona.Resolve(cfg.Persona, cfg.PersonaFile, cfg.OpenAIModel)
	if err != nil {
		logger.Fatal("resolve persona", zap.Error(err))
	}
	if cfg.OpenAIAPIKey == "" {
		logger.Warn("openai api key not configured, /chat and /webhook will fail")
	}

	llmClient := llm.NewHTTPClient(cfg.OpenAIBaseURL, cfg.OpenAIAPIKey, logger)
	relaySvc := service.NewRelayService(llmClient, cfg.OpenAIAPIKey, assistant, cfg.UpstreamTimeout, logger)
	relayHandler := apihttp.NewRelayHandler(logger, relaySvc)
	router := apihttp.NewRouter(logger, relayHandler)

	server := &http.Server{
		Addr:              ":" + cfg.HTTPPort,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	ln, err := net.Listen("tcp", server.Addr)
	if err != nil {
		logger.Fatal("listen", zap.Error(err))
	}

	active := relaySvc.Persona()
	logger.Info("starting server",
		zap.String("port", cfg.HTTPPort),
		zap.String("persona", active.Name),
		zap.String("model", active.Model),
	)

	if err := apihttp.Run(ctx, server, ln, cfg.UpstreamTimeout+5*time.Second, logger); err != nil {
		logger.Fatal("server error", zap.Error(err))
	}
	logger.Info("server stopped")
}
