package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const envPrefix = "SHELTER"

// BackendConfig locates the REST backend the pages are rendered from.
type BackendConfig struct {
	URL     string
	Timeout time.Duration
}

// KafkaConfig configures the activity publisher. No brokers disables it.
type KafkaConfig struct {
	Brokers []string
	Topic   string
}

// ServiceConfig holds all configuration for the shelter web service.
type ServiceConfig struct {
	Port        string
	AppEnv      string
	Backend     BackendConfig
	KafkaConfig KafkaConfig
	NoticeTTL   time.Duration
}

// NewViper returns a viper instance reading SHELTER_* environment variables,
// with defaults applied. Command-line flags are bound on top of it.
func NewViper() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	v.SetDefault("port", "8080")
	v.SetDefault("app_env", "development")
	v.SetDefault("backend_url", "http://127.0.0.1:5000/api")
	v.SetDefault("backend_timeout", "0s")
	v.SetDefault("kafka_brokers", "")
	v.SetDefault("kafka_topic", "shelter.web.events")
	v.SetDefault("notice_ttl", "5s")
	return v
}

// Load reads configuration from environment variables.
func Load() (*ServiceConfig, error) {
	return FromViper(NewViper())
}

// FromViper builds a ServiceConfig from an already populated viper instance.
func FromViper(v *viper.Viper) (*ServiceConfig, error) {
	backendURL := strings.TrimSpace(v.GetString("backend_url"))
	if backendURL == "" {
		return nil, fmt.Errorf("backend_url is required")
	}

	timeout, err := time.ParseDuration(v.GetString("backend_timeout"))
	if err != nil {
		return nil, fmt.Errorf("invalid backend_timeout: %w", err)
	}
	if timeout < 0 {
		return nil, fmt.Errorf("backend_timeout must not be negative")
	}

	ttl, err := time.ParseDuration(v.GetString("notice_ttl"))
	if err != nil {
		return nil, fmt.Errorf("invalid notice_ttl: %w", err)
	}
	if ttl <= 0 {
		return nil, fmt.Errorf("notice_ttl must be positive")
	}

	return &ServiceConfig{
		Port:   servicePort(v.GetString("port")),
		AppEnv: v.GetString("app_env"),
		Backend: BackendConfig{
			URL:     backendURL,
			Timeout: timeout,
		},
		KafkaConfig: KafkaConfig{
			Brokers: splitList(v.GetString("kafka_brokers")),
			Topic:   v.GetString("kafka_topic"),
		},
		NoticeTTL: ttl,
	}, nil
}

func servicePort(port string) string {
	port = strings.TrimSpace(port)
	if strings.HasPrefix(port, ":") {
		return port
	}
	return ":" + port
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
