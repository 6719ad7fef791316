package pusher

import (
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

type Config struct {
	// ProjectID labels logs and metrics for one credential set
	ProjectID string `mapstructure:"project-id"`

	// Key is the FCM server key:
	// https://console.firebase.google.com/project/_/settings/cloudmessaging/
	// An empty key falls back to the FCM_API_KEY environment variable.
	Key string `mapstructure:"key"`

	// Proxies maps a target scheme ('http' or 'https') to a proxy url.
	// Entries for other schemes are ignored.
	Proxies map[string]string `mapstructure:"proxies"`

	Endpoint string        `mapstructure:"endpoint"`
	Timeout  time.Duration `mapstructure:"timeout"`

	// NopMode logs sends instead of performing them
	NopMode bool `mapstructure:"nop-mode"`

	// DryRun asks FCM to validate every message without delivering it
	DryRun bool `mapstructure:"dry-run"`
}

func NewConfig(src *viper.Viper) (*Config, error) {

	c := &Config{}
	if err := src.Unmarshal(c); err != nil {
		return nil, err
	}

	if strings.TrimSpace(c.ProjectID) == "" {
		return nil, errors.New("invalid `project-id`")
	}

	return c, nil
}
