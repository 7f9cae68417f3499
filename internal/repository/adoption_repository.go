package repository

import (
	"context"
	"fmt"

	adoptionDomain "github.com/shelter-admin/service-shelter-web/internal/domain/adoption"
	reportDomain "github.com/shelter-admin/service-shelter-web/internal/domain/report"
	"github.com/shelter-admin/service-shelter-web/internal/platform/httpclient"
)

// APIAdoptionRepository implements adoption.Repository.
type APIAdoptionRepository struct {
	client *httpclient.Client
}

func NewAPIAdoptionRepository(client *httpclient.Client) *APIAdoptionRepository {
	return &APIAdoptionRepository{client: client}
}

func (r *APIAdoptionRepository) Adopt(ctx context.Context, req adoptionDomain.Request) (adoptionDomain.Details, error) {
	var resp struct {
		Message         string                 `json:"message"`
		AdoptionDetails adoptionDomain.Details `json:"adoption_details"`
	}
	if err := r.client.Post(ctx, "/adopt", req, &resp); err != nil {
		return adoptionDomain.Details{}, fmt.Errorf("adopt animal %d: %w", req.AnimalID, err)
	}
	return resp.AdoptionDetails, nil
}

// APIReportRepository implements report.Repository.
type APIReportRepository struct {
	client *httpclient.Client
}

func NewAPIReportRepository(client *httpclient.Client) *APIReportRepository {
	return &APIReportRepository{client: client}
}

func (r *APIReportRepository) Fetch(ctx context.Context, path string) ([]reportDomain.Row, error) {
	var rows []reportDomain.Row
	if err := r.client.Get(ctx, path, nil, &rows); err != nil {
		return nil, fmt.Errorf("fetch report %s: %w", path, err)
	}
	return rows, nil
}
