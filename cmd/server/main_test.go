package main

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPing_ReachableBackend(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/shelters", r.URL.Path)
		_, _ = w.Write([]byte(`[]`))
	}))
	defer ts.Close()

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"ping", "--backend-url", ts.URL + "/api"})
	require.NoError(t, rootCmd.Execute())
	assert.Contains(t, out.String(), "OK")
}

func TestPing_RejectingBackend(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer ts.Close()

	rootCmd.SetOut(&bytes.Buffer{})
	rootCmd.SetErr(&bytes.Buffer{})
	rootCmd.SetArgs([]string{"ping", "--backend-url", ts.URL})
	err := rootCmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "HTTP error! Status: 503")
}

func TestEventsTail_RequiresBrokers(t *testing.T) {
	rootCmd.SetOut(&bytes.Buffer{})
	rootCmd.SetErr(&bytes.Buffer{})
	rootCmd.SetArgs([]string{"events", "tail", "--kafka-brokers", ""})
	err := rootCmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no kafka brokers configured")
}
