package employee

import (
	"context"

	"github.com/shelter-admin/service-shelter-web/internal/domain/money"
)

// Employee is a row of GET /employees.
type Employee struct {
	ID        int           `json:"employee_id"`
	Name      string        `json:"name"`
	Role      string        `json:"role"`
	Salary    money.Decimal `json:"salary"`
	ShelterID *int          `json:"shelter_id"`
}

// NewEmployee is the body of POST /employees.
type NewEmployee struct {
	Name      string  `json:"name"`
	Role      string  `json:"role"`
	Salary    float64 `json:"salary"`
	ShelterID int     `json:"shelter_id"`
}

// Repository defines the backend operations on employees.
type Repository interface {
	List(ctx context.Context) ([]Employee, error)
	Create(ctx context.Context, e NewEmployee) (int, error)
	// UpdateSalary changes the salary; the backend appends the change to its log.
	UpdateSalary(ctx context.Context, id int, salary float64) error
}
