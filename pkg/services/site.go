package services

import (
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"mwaniki-news/pkg/models"
)

func DefaultSiteConfig() models.SiteConfig {
	return models.SiteConfig{
		Title:                 "Jonathan Mwaniki Reports",
		Tagline:               "Your Source for Breaking News and Gossip in Kenya",
		TickerIntervalSeconds: 5,
	}
}

// LoadSiteConfig reads site.yaml or site.toml from dir, whichever exists
// (yaml wins when both do). Missing files fall back to defaults; a file
// that exists but does not parse is an error, not a silent default.
func LoadSiteConfig(dir string) (models.SiteConfig, error) {
	cfg := DefaultSiteConfig()

	if content, err := os.ReadFile(filepath.Join(dir, "site.yaml")); err == nil {
		if err := yaml.Unmarshal(content, &cfg); err != nil {
			return models.SiteConfig{}, err
		}
		return cfg, nil
	}

	if content, err := os.ReadFile(filepath.Join(dir, "site.toml")); err == nil {
		if err := toml.Unmarshal(content, &cfg); err != nil {
			return models.SiteConfig{}, err
		}
		return cfg, nil
	}

	return cfg, nil
}
