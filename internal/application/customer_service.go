package application

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/shelter-admin/service-shelter-web/internal/domain/adopter"
	"github.com/shelter-admin/service-shelter-web/internal/domain/donor"
	"github.com/shelter-admin/service-shelter-web/internal/events"
)

// CreateAdopterRequest is the add-adopter form.
type CreateAdopterRequest struct {
	FirstName string `form:"first_name" binding:"required"`
	LastName  string `form:"last_name" binding:"required"`
	Phone     string `form:"phone" binding:"required"`
}

// CreateDonorRequest is the add-donor form. Amount is passed on as typed.
type CreateDonorRequest struct {
	FirstName string `form:"first_name" binding:"required"`
	LastName  string `form:"last_name" binding:"required"`
	Phone     string `form:"phone" binding:"required"`
	Amount    string `form:"amount" binding:"required"`
}

// AdopterService lists and registers adopters.
type AdopterService struct {
	repo   adopter.Repository
	pub    events.Publisher
	logger *zap.Logger
}

// NewAdopterService creates a new AdopterService.
func NewAdopterService(repo adopter.Repository, pub events.Publisher, logger *zap.Logger) *AdopterService {
	return &AdopterService{repo: repo, pub: pub, logger: logger}
}

// ListAdopters returns every adopter.
func (s *AdopterService) ListAdopters(ctx context.Context) ([]adopter.Adopter, error) {
	adopters, err := s.repo.List(ctx)
	if err != nil {
		s.logger.Error("failed to list adopters", zap.Error(err))
		return nil, fmt.Errorf("failed to list adopters: %w", err)
	}
	return adopters, nil
}

// CreateAdopter registers an adopter and its customer record.
func (s *AdopterService) CreateAdopter(ctx context.Context, req CreateAdopterRequest) (adopter.Created, error) {
	created, err := s.repo.Create(ctx, adopter.NewAdopter{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Phone:     req.Phone,
	})
	if err != nil {
		s.logger.Error("failed to create adopter", zap.Error(err))
		return adopter.Created{}, fmt.Errorf("failed to create adopter: %w", err)
	}

	s.logger.Info("adopter created",
		zap.Int("adopter_id", created.AdopterID),
		zap.Int("customer_id", created.CustomerID),
	)
	activity(ctx, s.pub, s.logger, events.AdopterCreated, events.EntityEvent{
		ID:      created.AdopterID,
		Changes: map[string]any{"customer_id": created.CustomerID},
	})
	return created, nil
}

// DonorService lists and registers donors.
type DonorService struct {
	repo   donor.Repository
	pub    events.Publisher
	logger *zap.Logger
}

// NewDonorService creates a new DonorService.
func NewDonorService(repo donor.Repository, pub events.Publisher, logger *zap.Logger) *DonorService {
	return &DonorService{repo: repo, pub: pub, logger: logger}
}

// ListDonors returns every donor.
func (s *DonorService) ListDonors(ctx context.Context) ([]donor.Donor, error) {
	donors, err := s.repo.List(ctx)
	if err != nil {
		s.logger.Error("failed to list donors", zap.Error(err))
		return nil, fmt.Errorf("failed to list donors: %w", err)
	}
	return donors, nil
}

// CreateDonor registers a donor and its customer record.
func (s *DonorService) CreateDonor(ctx context.Context, req CreateDonorRequest) (donor.Created, error) {
	created, err := s.repo.Create(ctx, donor.NewDonor{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Phone:     req.Phone,
		Amount:    req.Amount,
	})
	if err != nil {
		s.logger.Error("failed to create donor", zap.Error(err))
		return donor.Created{}, fmt.Errorf("failed to create donor: %w", err)
	}

	s.logger.Info("donor created",
		zap.Int("donor_id", created.DonorID),
		zap.Int("customer_id", created.CustomerID),
	)
	activity(ctx, s.pub, s.logger, events.DonorCreated, events.EntityEvent{
		ID:      created.DonorID,
		Changes: map[string]any{"customer_id": created.CustomerID, "amount": req.Amount},
	})
	return created, nil
}
