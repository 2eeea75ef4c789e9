package config

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/alandalus/library-site/internal/whatsapp"
)

// Config carries everything the service reads from the environment.
// CMSURL and BaseURL are required for correct metadata and sitemap
// output; when absent the service still starts and degrades: fetches
// fail soft and generated URLs lose their host prefix.
type Config struct {
	ListenAddr    string
	CMSURL        string
	BaseURL       string
	RedisAddr     string
	WhatsAppPhone string
}

// Load reads a .env file when present, then the process environment.
func Load() Config {
	if err := godotenv.Load(); err == nil {
		log.Println("Loaded .env")
	}

	v := viper.New()
	v.AutomaticEnv()
	v.SetDefault("LISTEN_ADDR", ":8080")
	v.SetDefault("WHATSAPP_PHONE", whatsapp.DefaultPhone)

	cfg := Config{
		ListenAddr:    v.GetString("LISTEN_ADDR"),
		CMSURL:        v.GetString("CMS_URL"),
		BaseURL:       v.GetString("BASE_URL"),
		RedisAddr:     v.GetString("REDIS_ADDR"),
		WhatsAppPhone: v.GetString("WHATSAPP_PHONE"),
	}

	if cfg.CMSURL == "" {
		log.Println("⚠️ CMS_URL not set; catalog fetches will fail and pages will render empty")
	}
	if cfg.BaseURL == "" {
		log.Println("⚠️ BASE_URL not set; sitemap and robots URLs will be relative")
	}
	return cfg
}
