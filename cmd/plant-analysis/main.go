package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/rs/zerolog/log"

	"github.com/Akshayaa139/PlantAnalysisTool/internal/config"
	"github.com/Akshayaa139/PlantAnalysisTool/internal/handle"
	"github.com/Akshayaa139/PlantAnalysisTool/internal/observability"
	"github.com/Akshayaa139/PlantAnalysisTool/internal/report"
	"github.com/Akshayaa139/PlantAnalysisTool/internal/vision/gemini"
)

func main() {
	cfg := config.Load()
	observability.InitLogger("plant-analysis", cfg.Env)
	ctx := context.Background()

	eng, err := gemini.New(ctx, cfg.GeminiAPIKey, cfg.GeminiModel)
	if err != nil {
		log.Fatal().Err(err).Msg("gemini client")
	}
	defer eng.Close()

	reports, err := report.NewGenerator(cfg.ReportDir)
	if err != nil {
		log.Fatal().Err(err).Msg("report dir")
	}

	h := handle.New(eng, reports, cfg.UploadDir)

	r := chi.NewRouter()
	r.Use(chimw.Logger)
	r.Use(chimw.Recoverer)
	r.Use(chimw.RealIP)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Content-Type"},
		MaxAge:         300,
	}))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status":"ok"}`))
	})
	r.Post("/analyze", h.Analyze)
	r.Post("/download", h.Download)

	// Frontend assets, when present.
	if _, err := os.Stat(cfg.StaticDir); err == nil {
		r.Handle("/*", http.FileServer(http.Dir(cfg.StaticDir)))
	}

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  5 * time.Minute,
		WriteTimeout: 5 * time.Minute,
	}

	go func() {
		log.Info().Str("addr", srv.Addr).Str("model", eng.Model()).Msg("plant-analysis listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down")
	shutCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	_ = srv.Shutdown(shutCtx)
}
