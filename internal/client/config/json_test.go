package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseJson_OverlaysNamedFields(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "config.json")
	data := `{
		"api_base_url": "https://blog.example.com/api/v1",
		"secret_key": "from-json",
		"request_timeout_seconds": 25
	}`
	require.NoError(t, os.WriteFile(file, []byte(data), 0o600))

	origArgs := os.Args
	os.Args = []string{"blogctl", "-config=" + file}
	t.Cleanup(func() { os.Args = origArgs })

	var c Config
	c.LoadDefaults()
	parseJson(&c)

	assert.Equal(t, "https://blog.example.com/api/v1", c.APIBaseURL)
	assert.Equal(t, "from-json", c.SecretKey)
	assert.Equal(t, 25*time.Second, c.RequestTimeout)
	assert.Equal(t, "auth_token", c.TokenKey, "fields absent from the file keep defaults")
}

func TestParseJson_NoFlagIsNoop(t *testing.T) {
	origArgs := os.Args
	os.Args = []string{"blogctl"}
	t.Cleanup(func() { os.Args = origArgs })

	var c Config
	c.LoadDefaults()
	parseJson(&c)

	assert.Equal(t, "http://localhost:8080/api/v1", c.APIBaseURL)
}

func TestParseJson_PanicsOnMissingFile(t *testing.T) {
	origArgs := os.Args
	os.Args = []string{"blogctl", "-config=/nonexistent/config.json"}
	t.Cleanup(func() { os.Args = origArgs })

	var c Config
	c.LoadDefaults()
	assert.Panics(t, func() { parseJson(&c) })
}
