package service

import (
	"context"
	"fmt"

	"billun/internal/model"
	"billun/internal/repository"
)

// Overview holds the dashboard totals.
type Overview struct {
	MaterielsTotal int64 `json:"materiels_total"`
	AnomaliesTotal int64 `json:"anomalies_total"`
	UsersTotal     int64 `json:"users_total"`
}

// UserBreakdown splits accounts by role. Users counts every non-admin role.
type UserBreakdown struct {
	Total  int64 `json:"total"`
	Admins int64 `json:"admins"`
	Users  int64 `json:"users"`
}

// StatsService computes read-only aggregates.
type StatsService interface {
	Overview(ctx context.Context) (*Overview, error)
	UserBreakdown(ctx context.Context) (*UserBreakdown, error)
}

type statsService struct {
	userRepo     repository.UserRepository
	materielRepo repository.MaterielRepository
	anomalieRepo repository.AnomalieRepository
}

// NewStatsService creates a new stats service.
func NewStatsService(userRepo repository.UserRepository, materielRepo repository.MaterielRepository, anomalieRepo repository.AnomalieRepository) StatsService {
	return &statsService{
		userRepo:     userRepo,
		materielRepo: materielRepo,
		anomalieRepo: anomalieRepo,
	}
}

func (s *statsService) Overview(ctx context.Context) (*Overview, error) {
	materiels, err := s.materielRepo.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count materiels: %w", err)
	}
	anomalies, err := s.anomalieRepo.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count anomalies: %w", err)
	}
	users, err := s.userRepo.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count users: %w", err)
	}
	return &Overview{
		MaterielsTotal: materiels,
		AnomaliesTotal: anomalies,
		UsersTotal:     users,
	}, nil
}

func (s *statsService) UserBreakdown(ctx context.Context) (*UserBreakdown, error) {
	total, err := s.userRepo.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count users: %w", err)
	}
	admins, err := s.userRepo.CountByRole(ctx, model.RoleAdmin)
	if err != nil {
		return nil, fmt.Errorf("count admins: %w", err)
	}
	return &UserBreakdown{
		Total:  total,
		Admins: admins,
		Users:  total - admins,
	}, nil
}
