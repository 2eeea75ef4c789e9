package main

import (
	"log"
	"net/http"

	_ "github.com/alandalus/library-site/docs"
	"github.com/alandalus/library-site/internal/cms"
	"github.com/alandalus/library-site/internal/config"
	api "github.com/alandalus/library-site/internal/http"
	"github.com/alandalus/library-site/internal/http/ban"
	"github.com/alandalus/library-site/internal/http/handlers"
	rl "github.com/alandalus/library-site/internal/http/rate_limiter"
	"github.com/alandalus/library-site/internal/redissvc"
)

// @title Al-Andalus Library Catalog API
// @version 1.0
// @description Read-only catalog API behind the bilingual storefront.
// @host localhost:8080
// @BasePath /
func main() {
	cfg := config.Load()

	go rl.StartVisitorCleanupLoop()

	if cfg.RedisAddr != "" {
		rs, err := redissvc.New(cfg.RedisAddr)
		if err != nil {
			log.Fatalf("❌ Could not connect to Redis: %v", err)
		}
		defer rs.Close()
		ban.SetRedisService(rs)
		go ban.StartDailySummaryLoop()
	} else {
		log.Println("REDIS_ADDR not set; ban ledger disabled")
	}

	handlers.SetProductSource(cms.NewClient(cfg.CMSURL))
	handlers.SetBaseURL(cfg.BaseURL)
	handlers.SetWhatsAppPhone(cfg.WhatsAppPhone)

	r := api.NewRouter()
	log.Printf("✅ Server running on %s", cfg.ListenAddr)
	if err := http.ListenAndServe(cfg.ListenAddr, r); err != nil {
		log.Fatal(err)
	}
}
