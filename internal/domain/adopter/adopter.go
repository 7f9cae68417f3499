package adopter

import "context"

// Adopter is a row of GET /adopters/details: an adopter joined with its customer.
type Adopter struct {
	ID         int    `json:"adopter_id"`
	CustomerID int    `json:"customer_id"`
	FirstName  string `json:"first_name"`
	LastName   string `json:"last_name"`
	Phone      string `json:"phone"`
}

// NewAdopter is the body of POST /adopters.
type NewAdopter struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Phone     string `json:"phone"`
}

// Created identifies the customer and adopter rows the backend created.
type Created struct {
	CustomerID int `json:"customer_id"`
	AdopterID  int `json:"adopter_id"`
}

// Repository defines the backend operations on adopters.
type Repository interface {
	List(ctx context.Context) ([]Adopter, error)
	Create(ctx context.Context, a NewAdopter) (Created, error)
}
