package httpclient_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shelter-admin/service-shelter-web/internal/platform/httpclient"
)

func newClient(t *testing.T, h http.HandlerFunc) *httpclient.Client {
	t.Helper()
	ts := httptest.NewServer(h)
	t.Cleanup(ts.Close)
	c, err := httpclient.New(ts.URL+"/api/", 0)
	require.NoError(t, err)
	return c
}

func TestGet_DecodesBodyAndQuery(t *testing.T) {
	c := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/animals", r.URL.Path)
		assert.Equal(t, "Available", r.URL.Query().Get("status"))
		_, _ = w.Write([]byte(`[{"name":"Charlie"}]`))
	})

	var out []map[string]any
	err := c.Get(context.Background(), "/animals", url.Values{"status": {"Available"}}, &out)
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "Charlie", out[0]["name"])
}

func TestDoJSON_RejectionUsesErrorField(t *testing.T) {
	c := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error":"Shelter is full"}`))
	})

	err := c.Post(context.Background(), "/animals", map[string]any{"name": "x"}, nil)
	require.Error(t, err)

	var apiErr *httpclient.APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusBadRequest, apiErr.StatusCode)
	assert.Equal(t, "Shelter is full", httpclient.Message(err))
	assert.True(t, httpclient.IsRejection(err))
}

func TestDoJSON_RejectionWithoutPayloadFallsBackToStatus(t *testing.T) {
	c := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte(`<html>bad gateway</html>`))
	})

	err := c.Delete(context.Background(), "/shelters/1", nil)
	require.Error(t, err)
	assert.Equal(t, "HTTP error! Status: 502", httpclient.Message(err))
}

func TestDoJSON_NonJSONSuccessIsTransportError(t *testing.T) {
	c := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`not json`))
	})

	var out []map[string]any
	err := c.Get(context.Background(), "/employees", nil, &out)
	require.Error(t, err)

	var trErr *httpclient.TransportError
	assert.True(t, errors.As(err, &trErr))
	assert.False(t, httpclient.IsRejection(err))
}

func TestDoJSON_UnreachableBackend(t *testing.T) {
	ts := httptest.NewServer(http.NotFoundHandler())
	base := ts.URL
	ts.Close()

	c, err := httpclient.New(base, 0)
	require.NoError(t, err)

	err = c.Get(context.Background(), "/animals", nil, nil)
	require.Error(t, err)
	assert.NotEmpty(t, httpclient.Message(err))
	assert.False(t, httpclient.IsRejection(err))
}

func TestNew_RejectsBadBaseURL(t *testing.T) {
	_, err := httpclient.New("", 0)
	assert.Error(t, err)

	_, err = httpclient.New("not a url", 0)
	assert.Error(t, err)
}
