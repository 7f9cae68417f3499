package adoption

import "context"

// Request is the body of POST /adopt.
type Request struct {
	AnimalID   int `json:"animal_id"`
	AdopterID  int `json:"adopter_id"`
	EmployeeID int `json:"employee_id"`
}

// Details is what the backend's adoption procedure returns.
type Details struct {
	AdoptionID int `json:"adoption_id"`
}

// Repository runs the backend adoption procedure. The backend rejects an
// animal that is already adopted.
type Repository interface {
	Adopt(ctx context.Context, req Request) (Details, error)
}
