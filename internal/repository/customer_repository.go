package repository

import (
	"context"
	"fmt"

	adopterDomain "github.com/shelter-admin/service-shelter-web/internal/domain/adopter"
	donorDomain "github.com/shelter-admin/service-shelter-web/internal/domain/donor"
	"github.com/shelter-admin/service-shelter-web/internal/platform/httpclient"
)

// APIAdopterRepository implements adopter.Repository. Creation goes through
// the backend procedure that inserts the customer and adopter together.
type APIAdopterRepository struct {
	client *httpclient.Client
}

func NewAPIAdopterRepository(client *httpclient.Client) *APIAdopterRepository {
	return &APIAdopterRepository{client: client}
}

func (r *APIAdopterRepository) List(ctx context.Context) ([]adopterDomain.Adopter, error) {
	var adopters []adopterDomain.Adopter
	if err := r.client.Get(ctx, "/adopters/details", nil, &adopters); err != nil {
		return nil, fmt.Errorf("list adopters: %w", err)
	}
	return adopters, nil
}

func (r *APIAdopterRepository) Create(ctx context.Context, a adopterDomain.NewAdopter) (adopterDomain.Created, error) {
	var created adopterDomain.Created
	if err := r.client.Post(ctx, "/adopters", a, &created); err != nil {
		return adopterDomain.Created{}, fmt.Errorf("create adopter: %w", err)
	}
	return created, nil
}

// APIDonorRepository implements donor.Repository.
type APIDonorRepository struct {
	client *httpclient.Client
}

func NewAPIDonorRepository(client *httpclient.Client) *APIDonorRepository {
	return &APIDonorRepository{client: client}
}

func (r *APIDonorRepository) List(ctx context.Context) ([]donorDomain.Donor, error) {
	var donors []donorDomain.Donor
	if err := r.client.Get(ctx, "/donors/details", nil, &donors); err != nil {
		return nil, fmt.Errorf("list donors: %w", err)
	}
	return donors, nil
}

func (r *APIDonorRepository) Create(ctx context.Context, d donorDomain.NewDonor) (donorDomain.Created, error) {
	var created donorDomain.Created
	if err := r.client.Post(ctx, "/donors", d, &created); err != nil {
		return donorDomain.Created{}, fmt.Errorf("create donor: %w", err)
	}
	return created, nil
}
