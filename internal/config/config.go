package config

// AppConfig holds application-level settings.
type AppConfig struct {
	LogLevel string `mapstructure:"log_level" yaml:"log_level"`
	LogFile  string `mapstructure:"log_file" yaml:"log_file"` // interactive view logs here; empty discards
}

// APIConfig points at the news feed endpoint.
type APIConfig struct {
	URL string `mapstructure:"url" yaml:"url"`
}

// IconsConfig controls where publisher icons are looked up.
type IconsConfig struct {
	BaseURL  string `mapstructure:"base_url" yaml:"base_url"`
	Fallback string `mapstructure:"fallback" yaml:"fallback"`
}

// RedisConfig holds redis connection settings. Notifications are published
// to Channel when it is non-empty.
type RedisConfig struct {
	Addr     string `mapstructure:"addr" yaml:"addr"`
	Username string `mapstructure:"username" yaml:"username"`
	Password string `mapstructure:"password" yaml:"password"`
	DB       int    `mapstructure:"db" yaml:"db"`
	Channel  string `mapstructure:"channel" yaml:"channel"`
}

// Config is the top-level configuration structure.
type Config struct {
	App   AppConfig   `mapstructure:"app" yaml:"app"`
	API   APIConfig   `mapstructure:"api" yaml:"api"`
	Icons IconsConfig `mapstructure:"icons" yaml:"icons"`
	Redis RedisConfig `mapstructure:"redis" yaml:"redis"`
}

const (
	DefaultAPIURL       = "https://marko.tech/api/news"
	DefaultIconsBaseURL = "https://startyparty.nyc3.cdn.digitaloceanspaces.com/publishers"
	DefaultIconFallback = "icon.png"
)

// FillDefaults applies default values if not provided.
func (c *Config) FillDefaults() {
	if c.App.LogLevel == "" {
		c.App.LogLevel = "info"
	}
	if c.API.URL == "" {
		c.API.URL = DefaultAPIURL
	}
	if c.Icons.BaseURL == "" {
		c.Icons.BaseURL = DefaultIconsBaseURL
	}
	if c.Icons.Fallback == "" {
		c.Icons.Fallback = DefaultIconFallback
	}
	if c.Redis.Addr == "" {
		c.Redis.Addr = "127.0.0.1:6379"
	}
}
