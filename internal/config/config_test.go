package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseDuration(t *testing.T) {
	assert.Equal(t, 30*time.Second, parseDuration("30s", 15*time.Second))
	assert.Equal(t, 15*time.Second, parseDuration("not-a-duration", 15*time.Second))
	assert.Equal(t, 15*time.Second, parseDuration("", 15*time.Second))
}

func TestLoadConfigServerTimeouts(t *testing.T) {
	t.Setenv("SERVER_READ_TIMEOUT", "5s")
	t.Setenv("SERVER_WRITE_TIMEOUT", "bogus")

	cfg := LoadConfig()

	assert.Equal(t, 5*time.Second, cfg.ReadTimeout)
	assert.Equal(t, 30*time.Second, cfg.WriteTimeout)
}
