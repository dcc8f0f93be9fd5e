package config

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

type AppConfig struct {
	Port        string
	Timezone    string
	DBPath      string
	LLMEndpoint string
	LLMAPIKey   string
	LLMModel    string
	// Capability seeds: grants the user already gave outside the API.
	CalendarAccess bool
	ReminderAccess bool
	CameraAccess   bool
}

func Load() AppConfig {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Debug().Err(err).Msg("no .env file loaded")
	}

	get := func(k, def string) string {
		if v := os.Getenv(k); v != "" {
			return v
		}
		return def
	}
	cfg := AppConfig{
		Port:           get("PORT", "8080"),
		Timezone:       get("TZ", "UTC"),
		DBPath:         get("DB_PATH", "ada.db"),
		LLMEndpoint:    get("LLM_ENDPOINT", ""),
		LLMAPIKey:      get("LLM_API_KEY", ""),
		LLMModel:       get("LLM_MODEL", "gpt-4o-mini"),
		CalendarAccess: get("CAL_ACCESS", "false") == "true",
		ReminderAccess: get("REM_ACCESS", "false") == "true",
		CameraAccess:   get("CAM_ACCESS", "false") == "true",
	}
	log.Info().Str("port", cfg.Port).Str("db", cfg.DBPath).
		Bool("llm", cfg.LLMEndpoint != "").Msg("config loaded")
	return cfg
}
