package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Port)
	assert.Equal(t, "http://127.0.0.1:5000/api", cfg.Backend.URL)
	assert.Equal(t, time.Duration(0), cfg.Backend.Timeout)
	assert.Empty(t, cfg.KafkaConfig.Brokers)
	assert.Equal(t, "shelter.web.events", cfg.KafkaConfig.Topic)
	assert.Equal(t, 5*time.Second, cfg.NoticeTTL)
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("SHELTER_PORT", ":9090")
	t.Setenv("SHELTER_BACKEND_URL", "http://backend:5000/api")
	t.Setenv("SHELTER_BACKEND_TIMEOUT", "3s")
	t.Setenv("SHELTER_KAFKA_BROKERS", "kafka-1:9092, kafka-2:9092,")
	t.Setenv("SHELTER_NOTICE_TTL", "2s")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.Port)
	assert.Equal(t, "http://backend:5000/api", cfg.Backend.URL)
	assert.Equal(t, 3*time.Second, cfg.Backend.Timeout)
	assert.Equal(t, []string{"kafka-1:9092", "kafka-2:9092"}, cfg.KafkaConfig.Brokers)
	assert.Equal(t, 2*time.Second, cfg.NoticeTTL)
}

func TestLoad_RejectsInvalidValues(t *testing.T) {
	cases := map[string]string{
		"SHELTER_BACKEND_TIMEOUT": "soon",
		"SHELTER_NOTICE_TTL":      "0s",
		"SHELTER_BACKEND_URL":     " ",
	}
	for key, value := range cases {
		t.Run(key, func(t *testing.T) {
			t.Setenv(key, value)
			_, err := Load()
			assert.Error(t, err)
		})
	}
}
