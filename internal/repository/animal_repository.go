package repository

import (
	"context"
	"fmt"
	"net/url"

	animalDomain "github.com/shelter-admin/service-shelter-web/internal/domain/animal"
	"github.com/shelter-admin/service-shelter-web/internal/platform/httpclient"
)

// APIAnimalRepository implements animal.Repository against the REST backend.
type APIAnimalRepository struct {
	client *httpclient.Client
}

func NewAPIAnimalRepository(client *httpclient.Client) *APIAnimalRepository {
	return &APIAnimalRepository{client: client}
}

func (r *APIAnimalRepository) List(ctx context.Context, status animalDomain.Status) ([]animalDomain.Animal, error) {
	var query url.Values
	if status != "" {
		query = url.Values{"status": {string(status)}}
	}
	var animals []animalDomain.Animal
	if err := r.client.Get(ctx, "/animals", query, &animals); err != nil {
		return nil, fmt.Errorf("list animals: %w", err)
	}
	return animals, nil
}

func (r *APIAnimalRepository) Create(ctx context.Context, a animalDomain.NewAnimal) (int, error) {
	var resp struct {
		NewAnimalID int `json:"new_animal_id"`
	}
	if err := r.client.Post(ctx, "/animals", a, &resp); err != nil {
		return 0, fmt.Errorf("create animal: %w", err)
	}
	return resp.NewAnimalID, nil
}

func (r *APIAnimalRepository) Update(ctx context.Context, id int, patch animalDomain.Patch) error {
	if err := r.client.Put(ctx, fmt.Sprintf("/animals/%d", id), patch, nil); err != nil {
		return fmt.Errorf("update animal %d: %w", id, err)
	}
	return nil
}

func (r *APIAnimalRepository) Delete(ctx context.Context, id int) error {
	if err := r.client.Delete(ctx, fmt.Sprintf("/animals/%d", id), nil); err != nil {
		return fmt.Errorf("delete animal %d: %w", id, err)
	}
	return nil
}
