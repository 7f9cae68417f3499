package shelter

import "context"

// warnRatio is the occupancy/capacity ratio above which a shelter is flagged.
const warnRatio = 0.8

// Shelter is a row of GET /shelters.
type Shelter struct {
	ID               int    `json:"shelter_id"`
	Name             string `json:"name"`
	Location         string `json:"location"`
	Address          string `json:"address,omitempty"`
	Capacity         int    `json:"capacity"`
	CurrentOccupancy int    `json:"current_occupancy"`
}

// DisplayLocation prefers location and falls back to the older address column.
func (s Shelter) DisplayLocation() string {
	if s.Location != "" {
		return s.Location
	}
	return s.Address
}

// NearCapacity reports whether occupancy exceeds 80% of capacity. A shelter
// without capacity is flagged as soon as it houses anything.
func (s Shelter) NearCapacity() bool {
	if s.Capacity <= 0 {
		return s.CurrentOccupancy > 0
	}
	return float64(s.CurrentOccupancy)/float64(s.Capacity) > warnRatio
}

// NewShelter is the body of POST /shelters.
type NewShelter struct {
	Name     string `json:"name"`
	Location string `json:"location"`
	Capacity int    `json:"capacity"`
}

// Repository defines the backend operations on shelters.
type Repository interface {
	List(ctx context.Context) ([]Shelter, error)
	Create(ctx context.Context, s NewShelter) (int, error)
	// Delete fails with the backend's message when employees or animals still reference the shelter.
	Delete(ctx context.Context, id int) error
}
