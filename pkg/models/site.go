package models

type SiteConfig struct {
	Title                 string `json:"title" yaml:"title" toml:"title"`
	Tagline               string `json:"tagline" yaml:"tagline" toml:"tagline"`
	BaseURL               string `json:"base_url" yaml:"base_url" toml:"base_url"`
	TickerIntervalSeconds int    `json:"ticker_interval_seconds" yaml:"ticker_interval_seconds" toml:"ticker_interval_seconds"`
}
