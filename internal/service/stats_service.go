package service

import "spotlight/internal/repository"

type StatsService interface {
	GetCountTablesDB() (int, error)
}

type statsService struct {
	statsRepo repository.StatsRepository
}

func NewStatsService(statsRepo repository.StatsRepository) StatsService {
	return &statsService{statsRepo: statsRepo}
}

func (s *statsService) GetCountTablesDB() (int, error) {
	countTables, err := s.statsRepo.CountTablesDB()
	if err != nil {
		return 0, err
	}

	return countTables, nil
}
