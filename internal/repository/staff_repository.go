package repository

import (
	"context"
	"fmt"

	employeeDomain "github.com/shelter-admin/service-shelter-web/internal/domain/employee"
	shelterDomain "github.com/shelter-admin/service-shelter-web/internal/domain/shelter"
	"github.com/shelter-admin/service-shelter-web/internal/platform/httpclient"
)

// APIEmployeeRepository implements employee.Repository.
type APIEmployeeRepository struct {
	client *httpclient.Client
}

func NewAPIEmployeeRepository(client *httpclient.Client) *APIEmployeeRepository {
	return &APIEmployeeRepository{client: client}
}

func (r *APIEmployeeRepository) List(ctx context.Context) ([]employeeDomain.Employee, error) {
	var employees []employeeDomain.Employee
	if err := r.client.Get(ctx, "/employees", nil, &employees); err != nil {
		return nil, fmt.Errorf("list employees: %w", err)
	}
	return employees, nil
}

func (r *APIEmployeeRepository) Create(ctx context.Context, e employeeDomain.NewEmployee) (int, error) {
	var resp struct {
		NewEmployeeID int `json:"new_employee_id"`
	}
	if err := r.client.Post(ctx, "/employees", e, &resp); err != nil {
		return 0, fmt.Errorf("create employee: %w", err)
	}
	return resp.NewEmployeeID, nil
}

func (r *APIEmployeeRepository) UpdateSalary(ctx context.Context, id int, salary float64) error {
	body := map[string]float64{"salary": salary}
	if err := r.client.Put(ctx, fmt.Sprintf("/employees/%d/salary", id), body, nil); err != nil {
		return fmt.Errorf("update salary of employee %d: %w", id, err)
	}
	return nil
}

// APIShelterRepository implements shelter.Repository.
type APIShelterRepository struct {
	client *httpclient.Client
}

func NewAPIShelterRepository(client *httpclient.Client) *APIShelterRepository {
	return &APIShelterRepository{client: client}
}

func (r *APIShelterRepository) List(ctx context.Context) ([]shelterDomain.Shelter, error) {
	var shelters []shelterDomain.Shelter
	if err := r.client.Get(ctx, "/shelters", nil, &shelters); err != nil {
		return nil, fmt.Errorf("list shelters: %w", err)
	}
	return shelters, nil
}

func (r *APIShelterRepository) Create(ctx context.Context, s shelterDomain.NewShelter) (int, error) {
	var resp struct {
		NewShelterID int `json:"new_shelter_id"`
	}
	if err := r.client.Post(ctx, "/shelters", s, &resp); err != nil {
		return 0, fmt.Errorf("create shelter: %w", err)
	}
	return resp.NewShelterID, nil
}

func (r *APIShelterRepository) Delete(ctx context.Context, id int) error {
	if err := r.client.Delete(ctx, fmt.Sprintf("/shelters/%d", id), nil); err != nil {
		return fmt.Errorf("delete shelter %d: %w", id, err)
	}
	return nil
}
