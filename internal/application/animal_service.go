package application

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/shelter-admin/service-shelter-web/internal/domain/animal"
	"github.com/shelter-admin/service-shelter-web/internal/events"
)

// CreateAnimalRequest is the add-animal form.
type CreateAnimalRequest struct {
	Name      string `form:"name" binding:"required"`
	Species   string `form:"species" binding:"required"`
	Breed     string `form:"breed"`
	Age       int    `form:"age"`
	Gender    string `form:"gender"`
	ShelterID int    `form:"shelter_id"`
}

// AnimalService implements the animal pages' use cases.
type AnimalService struct {
	repo   animal.Repository
	pub    events.Publisher
	logger *zap.Logger
}

// NewAnimalService creates a new AnimalService.
func NewAnimalService(repo animal.Repository, pub events.Publisher, logger *zap.Logger) *AnimalService {
	return &AnimalService{repo: repo, pub: pub, logger: logger}
}

// ListAnimals returns every animal in backend order.
func (s *AnimalService) ListAnimals(ctx context.Context) ([]animal.Animal, error) {
	animals, err := s.repo.List(ctx, "")
	if err != nil {
		s.logger.Error("failed to list animals", zap.Error(err))
		return nil, fmt.Errorf("failed to list animals: %w", err)
	}
	return animals, nil
}

// ListAvailable returns the animals that can still be adopted.
func (s *AnimalService) ListAvailable(ctx context.Context) ([]animal.Animal, error) {
	animals, err := s.repo.List(ctx, animal.StatusAvailable)
	if err != nil {
		s.logger.Error("failed to list available animals", zap.Error(err))
		return nil, fmt.Errorf("failed to list available animals: %w", err)
	}
	return animals, nil
}

// CreateAnimal registers a new animal as Available and returns its id.
func (s *AnimalService) CreateAnimal(ctx context.Context, req CreateAnimalRequest) (int, error) {
	id, err := s.repo.Create(ctx, animal.NewAnimal{
		Name:      req.Name,
		Species:   req.Species,
		Breed:     req.Breed,
		Age:       req.Age,
		Gender:    req.Gender,
		ShelterID: req.ShelterID,
		Status:    animal.StatusAvailable,
	})
	if err != nil {
		s.logger.Error("failed to create animal", zap.String("name", req.Name), zap.Error(err))
		return 0, fmt.Errorf("failed to create animal: %w", err)
	}

	s.logger.Info("animal created", zap.Int("animal_id", id), zap.Int("shelter_id", req.ShelterID))
	activity(ctx, s.pub, s.logger, events.AnimalCreated, events.EntityEvent{
		ID:      id,
		Changes: map[string]any{"name": req.Name, "shelter_id": req.ShelterID},
	})
	return id, nil
}

// RenameAnimal sends the new name unless it is blank or equal to current.
// It reports whether a request was sent.
func (s *AnimalService) RenameAnimal(ctx context.Context, id int, current, name string) (bool, error) {
	if strings.TrimSpace(name) == "" || name == current {
		return false, nil
	}
	if err := s.repo.Update(ctx, id, animal.Patch{Name: name}); err != nil {
		s.logger.Error("failed to rename animal", zap.Int("animal_id", id), zap.Error(err))
		return true, fmt.Errorf("failed to rename animal: %w", err)
	}

	s.logger.Info("animal renamed", zap.Int("animal_id", id))
	activity(ctx, s.pub, s.logger, events.AnimalUpdated, events.EntityEvent{
		ID:      id,
		Changes: map[string]any{"name": name},
	})
	return true, nil
}

// DeleteAnimal removes an animal.
func (s *AnimalService) DeleteAnimal(ctx context.Context, id int) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		s.logger.Error("failed to delete animal", zap.Int("animal_id", id), zap.Error(err))
		return fmt.Errorf("failed to delete animal: %w", err)
	}

	s.logger.Info("animal deleted", zap.Int("animal_id", id))
	activity(ctx, s.pub, s.logger, events.AnimalDeleted, events.EntityEvent{ID: id})
	return nil
}
