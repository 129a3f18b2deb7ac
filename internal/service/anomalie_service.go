package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	apperrors "billun/internal/errors"
	"billun/internal/model"
	"billun/internal/optional"
	"billun/internal/repository"
)

// AnomalieInput carries the anomalie fields of a request. Nil fields were not supplied.
// An explicit null PhotoURL clears the stored link on update.
type AnomalieInput struct {
	MaterielID      *uint
	Description     *string
	PhotoURL        optional.Value[string]
	DateSignalement *time.Time
}

// AnomalieService handles anomaly reports.
type AnomalieService interface {
	ListAnomalies(ctx context.Context) ([]model.Anomalie, error)
	GetAnomalie(ctx context.Context, id uint) (*model.Anomalie, error)
	CreateAnomalie(ctx context.Context, in AnomalieInput) (*model.Anomalie, error)
	UpdateAnomalie(ctx context.Context, id uint, in AnomalieInput) (*model.Anomalie, error)
	DeleteAnomalie(ctx context.Context, id uint) error
}

type anomalieService struct {
	repo         repository.AnomalieRepository
	materielRepo repository.MaterielRepository
	tracker      *ChangeTracker
}

// NewAnomalieService creates a new anomalie service.
func NewAnomalieService(repo repository.AnomalieRepository, materielRepo repository.MaterielRepository, tracker *ChangeTracker) AnomalieService {
	return &anomalieService{
		repo:         repo,
		materielRepo: materielRepo,
		tracker:      tracker,
	}
}

func (s *anomalieService) ListAnomalies(ctx context.Context) ([]model.Anomalie, error) {
	return s.repo.List(ctx)
}

func (s *anomalieService) GetAnomalie(ctx context.Context, id uint) (*model.Anomalie, error) {
	anomalie, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrAnomalieNotFound
		}
		return nil, fmt.Errorf("find anomalie: %w", err)
	}
	return anomalie, nil
}

// CreateAnomalie stores a report after checking its materiel exists.
func (s *anomalieService) CreateAnomalie(ctx context.Context, in AnomalieInput) (*model.Anomalie, error) {
	verr := &apperrors.ValidationError{}
	description := requireText(verr, "description", in.Description)
	if in.MaterielID == nil {
		verr.Add("materiel_id", "is required")
	}
	if !verr.Empty() {
		return nil, verr
	}

	if err := s.checkMateriel(ctx, *in.MaterielID); err != nil {
		return nil, err
	}

	anomalie := &model.Anomalie{
		MaterielID:  *in.MaterielID,
		Description: description,
		PhotoURL:    in.PhotoURL.Ptr(),
	}
	if in.DateSignalement != nil {
		anomalie.DateSignalement = in.DateSignalement.UTC()
	}
	if err := s.repo.Create(ctx, anomalie); err != nil {
		return nil, fmt.Errorf("create anomalie: %w", err)
	}

	s.tracker.Touch(ctx)
	return anomalie, nil
}

func (s *anomalieService) UpdateAnomalie(ctx context.Context, id uint, in AnomalieInput) (*model.Anomalie, error) {
	verr := &apperrors.ValidationError{}
	rejectBlank(verr, "description", in.Description)
	if !verr.Empty() {
		return nil, verr
	}

	anomalie, err := s.GetAnomalie(ctx, id)
	if err != nil {
		return nil, err
	}

	if in.MaterielID != nil && *in.MaterielID != anomalie.MaterielID {
		if err := s.checkMateriel(ctx, *in.MaterielID); err != nil {
			return nil, err
		}
		anomalie.MaterielID = *in.MaterielID
	}
	if in.Description != nil {
		anomalie.Description = *in.Description
	}
	in.PhotoURL.Apply(&anomalie.PhotoURL)
	if in.DateSignalement != nil {
		anomalie.DateSignalement = in.DateSignalement.UTC()
	}

	if err := s.repo.Update(ctx, anomalie); err != nil {
		return nil, fmt.Errorf("update anomalie: %w", err)
	}

	s.tracker.Touch(ctx)
	return anomalie, nil
}

func (s *anomalieService) DeleteAnomalie(ctx context.Context, id uint) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrAnomalieNotFound
		}
		return fmt.Errorf("delete anomalie: %w", err)
	}
	s.tracker.Touch(ctx)
	return nil
}

func (s *anomalieService) checkMateriel(ctx context.Context, id uint) error {
	exists, err := s.materielRepo.Exists(ctx, id)
	if err != nil {
		return fmt.Errorf("check materiel: %w", err)
	}
	if !exists {
		return apperrors.ErrUnknownMateriel
	}
	return nil
}
