package animal

import "context"

// Repository defines the backend operations on animals.
type Repository interface {
	// List returns every animal, or only those with the given status when it is non-empty.
	List(ctx context.Context, status Status) ([]Animal, error)
	Create(ctx context.Context, a NewAnimal) (int, error)
	Update(ctx context.Context, id int, patch Patch) error
	Delete(ctx context.Context, id int) error
}
