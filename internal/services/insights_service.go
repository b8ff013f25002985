package services

import (
	"fleetops/internal/domain/models"
	"fleetops/internal/finance"
	"fleetops/internal/repositories"
)

// InsightsService resolves the route and vehicle documents a subtrip needs
// and runs the deviation generator. Loader is injectable for tests.
type InsightsService struct {
	SubtripRepo repositories.SubtripRepository
	Loader      func(id int64) (models.Subtrip, error)
}

func (s InsightsService) ForSubtrip(id int64) ([]finance.Insight, error) {
	load := s.Loader
	if load == nil {
		load = s.SubtripRepo.GetByID
	}
	subtrip, err := load(id)
	if err != nil {
		return nil, err
	}
	return finance.GenerateInsights(subtrip), nil
}
