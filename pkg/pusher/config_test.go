package pusher

import (
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/require"
)

func TestNewConfig(t *testing.T) {

	src := viper.New()
	for k, v := range map[string]interface{}{
		"project-id": "project-id-123",
		"key":        "server-key",
		"timeout":    "2s",
		"nop-mode":   "true",
		"dry-run":    "true",
		"proxies": map[string]string{
			"https": "http://localhost:3128",
		},
	} {
		src.Set(k, v)
	}

	c, err := NewConfig(src)
	require.NoError(t, err)

	require.Equal(t,
		&Config{
			ProjectID: "project-id-123",
			Key:       "server-key",
			Timeout:   2 * time.Second,
			NopMode:   true,
			DryRun:    true,
			Proxies: map[string]string{
				"https": "http://localhost:3128",
			},
		},
		c)
}

func TestNewConfigRequiresProjectID(t *testing.T) {

	src := viper.New()
	src.Set("key", "server-key")

	_, err := NewConfig(src)
	require.EqualError(t, err, "invalid `project-id`")

	src.Set("project-id", "  ")
	_, err = NewConfig(src)
	require.EqualError(t, err, "invalid `project-id`")
}

func TestNewConfigEmptyKeyIsAllowed(t *testing.T) {

	// the key may come from the environment at client construction time
	src := viper.New()
	src.Set("project-id", "project-id-123")

	c, err := NewConfig(src)
	require.NoError(t, err)
	require.Empty(t, c.Key)
}
