package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

var (
	// Server settings
	ListenAddr = ":8080"

	// Article store paths
	DataPath = "data/articles.json"
	SeedPath = "content/articles.json"

	// Site config directory (site.yaml / site.toml)
	SiteDir = "."

	// Media settings
	MediaDir = "static/uploads"
	MediaURL = "/uploads"

	// Listing defaults
	FeedPageSize  = 12
	FeaturedLimit = 5
	TrendingLimit = 5
)

// Admin credentials; the write surface rejects every login while these are unset.
var (
	AdminUsername = ""
	AdminPassword = ""
)

func Init() {
	if err := godotenv.Load(); err != nil {
		fmt.Println("No .env file found or error loading it.")
	}

	// Helper to get env with default
	getEnv := func(key, fallback string) string {
		if v := os.Getenv(key); v != "" {
			return v
		}
		return fallback
	}

	ListenAddr = getEnv("LISTEN_ADDR", ":8080")

	DataPath = getEnv("DATA_PATH", "data/articles.json")
	SeedPath = getEnv("SEED_PATH", "content/articles.json")
	SiteDir = getEnv("SITE_DIR", ".")

	MediaDir = getEnv("MEDIA_DIR", "static/uploads")
	MediaURL = getEnv("MEDIA_URL", "/uploads")

	AdminUsername = os.Getenv("ADMIN_USERNAME")
	AdminPassword = os.Getenv("ADMIN_PASSWORD")

	if ps := os.Getenv("FEED_PAGE_SIZE"); ps != "" {
		if val, err := strconv.Atoi(ps); err == nil && val > 0 {
			FeedPageSize = val
		}
	}
}

func SessionSecret() string {
	secret := os.Getenv("SESSION_SECRET")
	if secret == "" {
		secret = "dev-only-session-secret"
	}
	return secret
}
