package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFillDefaults(t *testing.T) {
	var c Config
	c.FillDefaults()

	assert.Equal(t, "info", c.App.LogLevel)
	assert.Equal(t, "https://marko.tech/api/news", c.API.URL)
	assert.Equal(t, "https://startyparty.nyc3.cdn.digitaloceanspaces.com/publishers", c.Icons.BaseURL)
	assert.Equal(t, "icon.png", c.Icons.Fallback)
	assert.Equal(t, "127.0.0.1:6379", c.Redis.Addr)
	assert.Empty(t, c.Redis.Channel)
}

func TestFillDefaultsKeepsExplicitValues(t *testing.T) {
	c := Config{
		App: AppConfig{LogLevel: "debug"},
		API: APIConfig{URL: "http://localhost:8080/news"},
	}
	c.FillDefaults()

	assert.Equal(t, "debug", c.App.LogLevel)
	assert.Equal(t, "http://localhost:8080/news", c.API.URL)
}
