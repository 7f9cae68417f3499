package server

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shelter-admin/service-shelter-web/internal/config"
)

func TestNew_RequiresConfig(t *testing.T) {
	_, err := New(Options{})
	assert.Error(t, err)
}

func TestNew_RejectsBadBackendURL(t *testing.T) {
	_, err := New(Options{Config: &config.ServiceConfig{Backend: config.BackendConfig{URL: "::"}}})
	assert.Error(t, err)
}

func TestNew_RegistersEveryPage(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r, err := New(Options{Config: &config.ServiceConfig{
		Backend:   config.BackendConfig{URL: "http://127.0.0.1:5000/api"},
		NoticeTTL: 5e9,
	}})
	require.NoError(t, err)

	got := map[string]bool{}
	for _, rt := range r.Routes() {
		got[rt.Method+" "+rt.Path] = true
	}
	for _, want := range []string{
		"GET /", "POST /adopt",
		"GET /animals", "POST /animals", "POST /animals/actions",
		"GET /adopters", "POST /adopters",
		"GET /donors", "POST /donors",
		"GET /employees", "POST /employees", "POST /employees/actions",
		"GET /shelters", "POST /shelters", "POST /shelters/actions",
		"GET /reports",
		"GET /health", "GET /health/ready",
		"GET /static/*filepath",
	} {
		assert.True(t, got[want], "missing route %s", want)
	}
}

func TestNewHTTPServer_Timeouts(t *testing.T) {
	srv := NewHTTPServer(":8080", http.NotFoundHandler())
	assert.Equal(t, ":8080", srv.Addr)
	assert.NotZero(t, srv.ReadTimeout)
	assert.NotZero(t, srv.WriteTimeout)
	assert.NotZero(t, srv.IdleTimeout)
}
