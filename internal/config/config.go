package config

import (
	"log"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config is parsed from the environment at startup. A local .env file is
// loaded first when present.
type Config struct {
	DiscordToken string `env:"DISCORD_TOKEN"`
	AIProvider   string `env:"AI_PROVIDER" envDefault:"huggingface"`
	HFAPIKey     string `env:"HF_API_KEY"`
	HFModel      string `env:"HF_MODEL" envDefault:"meta-llama/Llama-3.2-3B-Instruct"`
	HealthAddr   string `env:"HEALTH_ADDR" envDefault:":8080"`
}

func New() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("[INFO] No .env file found, falling back to system environment variables")
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		log.Fatalf("[ERR] Config parse failed: %v", err)
	}
	return cfg
}
