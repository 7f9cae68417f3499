package application

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/shelter-admin/service-shelter-web/internal/domain/adoption"
	"github.com/shelter-admin/service-shelter-web/internal/domain/report"
	"github.com/shelter-admin/service-shelter-web/internal/events"
)

// AdoptRequest is the dashboard's adoption form.
type AdoptRequest struct {
	AnimalID   int `form:"animal_id" binding:"required"`
	AdopterID  int `form:"adopter_id" binding:"required"`
	EmployeeID int `form:"employee_id" binding:"required"`
}

// AdoptionService records adoptions.
type AdoptionService struct {
	repo   adoption.Repository
	pub    events.Publisher
	logger *zap.Logger
}

// NewAdoptionService creates a new AdoptionService.
func NewAdoptionService(repo adoption.Repository, pub events.Publisher, logger *zap.Logger) *AdoptionService {
	return &AdoptionService{repo: repo, pub: pub, logger: logger}
}

// Adopt asks the backend to hand the animal to the adopter.
func (s *AdoptionService) Adopt(ctx context.Context, req AdoptRequest) (adoption.Details, error) {
	details, err := s.repo.Adopt(ctx, adoption.Request{
		AnimalID:   req.AnimalID,
		AdopterID:  req.AdopterID,
		EmployeeID: req.EmployeeID,
	})
	if err != nil {
		s.logger.Error("adoption failed",
			zap.Int("animal_id", req.AnimalID),
			zap.Int("adopter_id", req.AdopterID),
			zap.Error(err),
		)
		return adoption.Details{}, fmt.Errorf("adoption failed: %w", err)
	}

	s.logger.Info("adoption recorded",
		zap.Int("adoption_id", details.AdoptionID),
		zap.Int("animal_id", req.AnimalID),
	)
	activity(ctx, s.pub, s.logger, events.AdoptionCreated, events.AdoptionEvent{
		AdoptionID: details.AdoptionID,
		AnimalID:   req.AnimalID,
		AdopterID:  req.AdopterID,
		EmployeeID: req.EmployeeID,
	})
	return details, nil
}

// ReportResult is one report's rows or its own error.
type ReportResult struct {
	Definition report.Definition
	Rows       []report.Row
	Err        error
}

// ReportService loads the analytic reports.
type ReportService struct {
	repo   report.Repository
	logger *zap.Logger
}

// NewReportService creates a new ReportService.
func NewReportService(repo report.Repository, logger *zap.Logger) *ReportService {
	return &ReportService{repo: repo, logger: logger}
}

// LoadAll fetches defs concurrently. Results keep the order of defs and a
// failing report does not cancel the others.
func (s *ReportService) LoadAll(ctx context.Context, defs []report.Definition) []ReportResult {
	results := make([]ReportResult, len(defs))
	var g errgroup.Group
	for i, def := range defs {
		g.Go(func() error {
			rows, err := s.repo.Fetch(ctx, def.Path)
			if err != nil {
				s.logger.Error("failed to load report", zap.String("report", def.ID), zap.Error(err))
			}
			results[i] = ReportResult{Definition: def, Rows: rows, Err: err}
			return nil
		})
	}
	_ = g.Wait()
	return results
}
