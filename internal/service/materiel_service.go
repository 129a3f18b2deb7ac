package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"

	apperrors "billun/internal/errors"
	"billun/internal/logger"
	"billun/internal/model"
	"billun/internal/optional"
	"billun/internal/repository"
)

// MaterielInput carries the materiel fields of a request. Nil fields were not supplied.
// Nullable columns use optional.Value so an explicit null clears them on update.
type MaterielInput struct {
	Identifiant           *string
	Plaque                *string
	TypeMateriel          *string
	Statut                *string
	Kilometrage           *int
	DateControleTechnique optional.Value[time.Time]
	Options               optional.Value[string]
	ResponsableID         optional.Value[uint]
}

// MaterielService handles equipment records.
type MaterielService interface {
	ListMateriels(ctx context.Context) ([]model.Materiel, error)
	GetMateriel(ctx context.Context, id uint) (*model.Materiel, error)
	CountMateriels(ctx context.Context) (int64, error)
	LastUpdate(ctx context.Context) time.Time
	CreateMateriel(ctx context.Context, in MaterielInput) (*model.Materiel, error)
	UpdateMateriel(ctx context.Context, id uint, in MaterielInput) (*model.Materiel, error)
	DeleteMateriel(ctx context.Context, id uint) error
}

type materielService struct {
	repo     repository.MaterielRepository
	userRepo repository.UserRepository
	tracker  *ChangeTracker
}

// NewMaterielService creates a new materiel service.
func NewMaterielService(repo repository.MaterielRepository, userRepo repository.UserRepository, tracker *ChangeTracker) MaterielService {
	return &materielService{
		repo:     repo,
		userRepo: userRepo,
		tracker:  tracker,
	}
}

func (s *materielService) ListMateriels(ctx context.Context) ([]model.Materiel, error) {
	return s.repo.List(ctx)
}

func (s *materielService) GetMateriel(ctx context.Context, id uint) (*model.Materiel, error) {
	materiel, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrMaterielNotFound
		}
		return nil, fmt.Errorf("find materiel: %w", err)
	}
	return materiel, nil
}

func (s *materielService) CountMateriels(ctx context.Context) (int64, error) {
	return s.repo.Count(ctx)
}

func (s *materielService) LastUpdate(ctx context.Context) time.Time {
	return s.tracker.LastUpdate(ctx)
}

// CreateMateriel validates required text fields and stores a new record.
// The identifiant check and the insert share one transaction.
func (s *materielService) CreateMateriel(ctx context.Context, in MaterielInput) (*model.Materiel, error) {
	verr := &apperrors.ValidationError{}
	materiel := &model.Materiel{
		Identifiant:           requireText(verr, "identifiant", in.Identifiant),
		Plaque:                requireText(verr, "plaque", in.Plaque),
		TypeMateriel:          requireText(verr, "type_materiel", in.TypeMateriel),
		Statut:                model.StatutDisponible,
		DateControleTechnique: in.DateControleTechnique.Ptr(),
		Options:               in.Options.Ptr(),
		ResponsableID:         in.ResponsableID.Ptr(),
	}
	if !verr.Empty() {
		return nil, verr
	}
	if in.Statut != nil && strings.TrimSpace(*in.Statut) != "" {
		materiel.Statut = *in.Statut
	}
	if in.Kilometrage != nil {
		materiel.Kilometrage = *in.Kilometrage
	}
	if err := s.checkResponsable(ctx, in.ResponsableID.Ptr()); err != nil {
		return nil, err
	}

	err := s.repo.WithTransaction(ctx, func(ctx context.Context, tx repository.MaterielRepository) error {
		if err := checkIdentifiantFree(ctx, tx, materiel.Identifiant, 0); err != nil {
			return err
		}
		return tx.Create(ctx, materiel)
	})
	if err != nil {
		if errors.Is(err, apperrors.ErrIdentifiantTaken) || errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.ErrIdentifiantTaken
		}
		logger.FromContext(ctx).WithError(err).Error("materiel creation rolled back")
		return nil, fmt.Errorf("create materiel: %w", err)
	}

	s.tracker.Touch(ctx)
	return materiel, nil
}

// UpdateMateriel applies the supplied fields only.
func (s *materielService) UpdateMateriel(ctx context.Context, id uint, in MaterielInput) (*model.Materiel, error) {
	verr := &apperrors.ValidationError{}
	rejectBlank(verr, "identifiant", in.Identifiant)
	rejectBlank(verr, "plaque", in.Plaque)
	rejectBlank(verr, "type_materiel", in.TypeMateriel)
	if !verr.Empty() {
		return nil, verr
	}

	materiel, err := s.GetMateriel(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.checkResponsable(ctx, in.ResponsableID.Ptr()); err != nil {
		return nil, err
	}

	err = s.repo.WithTransaction(ctx, func(ctx context.Context, tx repository.MaterielRepository) error {
		if in.Identifiant != nil && *in.Identifiant != materiel.Identifiant {
			if err := checkIdentifiantFree(ctx, tx, *in.Identifiant, materiel.ID); err != nil {
				return err
			}
			materiel.Identifiant = *in.Identifiant
		}
		if in.Plaque != nil {
			materiel.Plaque = *in.Plaque
		}
		if in.TypeMateriel != nil {
			materiel.TypeMateriel = *in.TypeMateriel
		}
		if in.Statut != nil {
			materiel.Statut = *in.Statut
		}
		if in.Kilometrage != nil {
			materiel.Kilometrage = *in.Kilometrage
		}
		in.DateControleTechnique.Apply(&materiel.DateControleTechnique)
		in.Options.Apply(&materiel.Options)
		in.ResponsableID.Apply(&materiel.ResponsableID)
		return tx.Update(ctx, materiel)
	})
	if err != nil {
		if errors.Is(err, apperrors.ErrIdentifiantTaken) || errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.ErrIdentifiantTaken
		}
		return nil, fmt.Errorf("update materiel: %w", err)
	}

	s.tracker.Touch(ctx)
	return materiel, nil
}

// DeleteMateriel removes the record. Anomalies referencing it are kept.
func (s *materielService) DeleteMateriel(ctx context.Context, id uint) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrMaterielNotFound
		}
		return fmt.Errorf("delete materiel: %w", err)
	}
	s.tracker.Touch(ctx)
	return nil
}

func (s *materielService) checkResponsable(ctx context.Context, id *uint) error {
	if id == nil {
		return nil
	}
	if _, err := s.userRepo.FindByID(ctx, *id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrUnknownResponsable
		}
		return fmt.Errorf("find responsable: %w", err)
	}
	return nil
}

// checkIdentifiantFree fails with ErrIdentifiantTaken when identifiant belongs to a
// record other than selfID.
func checkIdentifiantFree(ctx context.Context, repo repository.MaterielRepository, identifiant string, selfID uint) error {
	existing, err := repo.FindByIdentifiant(ctx, identifiant)
	if err == nil {
		if existing.ID != selfID {
			return apperrors.ErrIdentifiantTaken
		}
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil
	}
	return fmt.Errorf("check identifiant: %w", err)
}
