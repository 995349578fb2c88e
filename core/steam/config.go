package steam

// Config holds configuration for the Steam Web API client.
type Config struct {
	// APIKey is the Steam Web API key.
	APIKey string `mapstructure:"api_key" default:""`
	// BaseURL is the Web API root.
	BaseURL string `mapstructure:"base_url" default:"https://api.steampowered.com"`
	// StoreURL is the store front root used for name scraping.
	StoreURL string `mapstructure:"store_url" default:"https://store.steampowered.com"`
	// TimeoutSeconds bounds every individual request.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"30"`
	// RequestsPerSecond is the sustained request rate across all workers.
	RequestsPerSecond float64 `mapstructure:"requests_per_second" default:"10"`
	// Burst is the limiter burst size.
	Burst int `mapstructure:"burst" default:"20"`
	// Workers is the number of concurrent lookups per batch.
	Workers int `mapstructure:"workers" default:"6"`
}
