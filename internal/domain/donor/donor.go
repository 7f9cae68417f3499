package donor

import (
	"context"

	"github.com/shelter-admin/service-shelter-web/internal/domain/money"
)

// Donor is a row of GET /donors/details.
type Donor struct {
	ID         int           `json:"donor_id"`
	CustomerID int           `json:"customer_id"`
	FirstName  string        `json:"first_name"`
	LastName   string        `json:"last_name"`
	Phone      string        `json:"phone"`
	Amount     money.Decimal `json:"amount"`
}

// NewDonor is the body of POST /donors. Amount is forwarded as typed.
type NewDonor struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Phone     string `json:"phone"`
	Amount    string `json:"amount"`
}

// Created identifies the customer and donor rows the backend created.
type Created struct {
	CustomerID int `json:"customer_id"`
	DonorID    int `json:"donor_id"`
}

// Repository defines the backend operations on donors.
type Repository interface {
	List(ctx context.Context) ([]Donor, error)
	Create(ctx context.Context, d NewDonor) (Created, error)
}
