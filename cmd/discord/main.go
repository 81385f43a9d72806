package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/keshon/abg-tutor/internal/ai"
	"github.com/keshon/abg-tutor/internal/config"
	"github.com/keshon/abg-tutor/internal/discord"
	"github.com/keshon/abg-tutor/internal/health"
	"github.com/keshon/abg-tutor/internal/mathsolver"
	"github.com/keshon/abg-tutor/internal/mind"
	"github.com/keshon/abg-tutor/internal/sentiment"
)

func main() {
	cfg := config.New()
	if cfg.DiscordToken == "" {
		log.Fatal("[ERR] DISCORD_TOKEN is not set")
	}

	store := mind.NewStore()
	responder := mind.NewResponder(ai.DefaultProvider(cfg))
	router := mind.NewRouter(store, responder, sentiment.NewLexiconScorer(), mathsolver.NewEvaluator())

	bot, err := discord.New(cfg.DiscordToken, router)
	if err != nil {
		log.Fatalf("[ERR] discord init: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 2)
	go func() { errCh <- health.New(cfg.HealthAddr).Start(ctx) }()
	go func() { errCh <- bot.Start(ctx) }()

	select {
	case <-ctx.Done():
		log.Println("[INFO] shutting down")
	case err := <-errCh:
		if err != nil {
			log.Fatalf("[ERR] %v", err)
		}
	}
}
