package repository

import (
	"context"

	"github.com/shelter-admin/service-shelter-web/internal/platform/httpclient"
)

// probePath is a cheap list endpoint every backend deployment serves.
const probePath = "/shelters"

// BackendProbe checks that the REST backend answers.
type BackendProbe struct {
	client *httpclient.Client
}

func NewBackendProbe(client *httpclient.Client) *BackendProbe {
	return &BackendProbe{client: client}
}

func (p *BackendProbe) Ping(ctx context.Context) error {
	return p.client.Ping(ctx, probePath)
}
