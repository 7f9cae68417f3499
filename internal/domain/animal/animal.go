package animal

import "strings"

// Status is the adoption state reported by the backend.
type Status string

const (
	StatusAvailable Status = "Available"
	StatusAdopted   Status = "Adopted"
)

// Animal is a shelter animal as returned by GET /animals.
type Animal struct {
	ID        int    `json:"animal_id"`
	Name      string `json:"name"`
	Species   string `json:"species"`
	Breed     string `json:"breed"`
	Age       int    `json:"age"`
	Gender    string `json:"gender"`
	Status    Status `json:"status"`
	ShelterID *int   `json:"shelter_id"`
}

// IsAdopted reports whether the status mentions adoption, whatever its case.
func (a Animal) IsAdopted() bool {
	return strings.Contains(strings.ToLower(string(a.Status)), "adopted")
}

// NewAnimal is the body of POST /animals.
type NewAnimal struct {
	Name      string `json:"name"`
	Species   string `json:"species"`
	Breed     string `json:"breed"`
	Age       int    `json:"age"`
	Gender    string `json:"gender"`
	ShelterID int    `json:"shelter_id"`
	Status    Status `json:"status"`
}

// Patch is a partial update for PUT /animals/{id}.
type Patch struct {
	Name string `json:"name,omitempty"`
}
