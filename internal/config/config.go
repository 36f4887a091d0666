package config

import (
	"time"

	"github.com/caarlos0/env/v10"
)

// Config centraliza la configuración del servicio.
type Config struct {
	HTTPPort        string        `env:"PORT" envDefault:"8000"`
	OpenAIAPIKey    string        `env:"OPENAI_API_KEY"`
	OpenAIBaseURL   string        `env:"OPENAI_BASE_URL" envDefault:"https://api.openai.com/v1"`
	OpenAIModel     string        `env:"OPENAI_MODEL"`
	Persona         string        `env:"ASSISTANT_PERSONA" envDefault:"sk"`
	PersonaFile     string        `env:"PERSONA_FILE"`
	UpstreamTimeout time.Duration `env:"UPSTREAM_TIMEOUT" envDefault:"30s"`
}

// LoadConfig carga la configuración desde variables de entorno.
// La API key no es obligatoria al arrancar: su ausencia se reporta en cada request.
func LoadConfig() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
