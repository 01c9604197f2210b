package main

import (
	"net/http"
	"os"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"
)

func main() {
	godotenv.Load()
	cfg := loadConfig()
	log := newLogger(cfg)

	analytics := newAnalytics(cfg.KafkaEndpoint, log)
	defer analytics.Close()
	if cfg.KafkaEndpoint == "" {
		log.Info("analytics disabled (no KAFKA_ENDPOINT)")
	}

	srv := NewServer(log, analytics, cfg.CORSOrigin)

	mux := http.NewServeMux()
	mux.HandleFunc("/ws", srv.handleConnections)
	mux.HandleFunc("/health", srv.handleHealth)
	mux.HandleFunc("/leaderboard", srv.handleLeaderboard)
	mux.Handle("/metrics", promhttp.Handler())

	handler := cors.New(cors.Options{
		AllowedOrigins: []string{cfg.CORSOrigin},
		AllowedMethods: []string{http.MethodGet, http.MethodPost},
	}).Handler(mux)

	server := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: handler,
	}

	log.Info("server listening", "port", cfg.Port)
	if err := server.ListenAndServe(); err != nil {
		log.Error("server stopped", "err", err)
		os.Exit(1)
	}
}
