package repository

import (
	"context"

	"gorm.io/gorm"

	"billun/internal/model"
)

// MaterielRepository defines materiel persistence operations.
type MaterielRepository interface {
	Create(ctx context.Context, materiel *model.Materiel) error
	Update(ctx context.Context, materiel *model.Materiel) error
	Delete(ctx context.Context, id uint) error
	FindByID(ctx context.Context, id uint) (*model.Materiel, error)
	FindByIdentifiant(ctx context.Context, identifiant string) (*model.Materiel, error)
	Exists(ctx context.Context, id uint) (bool, error)
	List(ctx context.Context) ([]model.Materiel, error)
	Count(ctx context.Context) (int64, error)
	// Transaction methods
	WithTransaction(ctx context.Context, fn func(ctx context.Context, repo MaterielRepository) error) error
}

type materielRepository struct {
	db *gorm.DB
}

// NewMaterielRepository creates a new materiel repository.
func NewMaterielRepository(db *gorm.DB) MaterielRepository {
	return &materielRepository{db: db}
}

// Create creates a new materiel.
func (r *materielRepository) Create(ctx context.Context, materiel *model.Materiel) error {
	return r.db.WithContext(ctx).Create(materiel).Error
}

// Update saves every column of an existing materiel.
func (r *materielRepository) Update(ctx context.Context, materiel *model.Materiel) error {
	return r.db.WithContext(ctx).Save(materiel).Error
}

// Delete removes a materiel by ID. Anomalies pointing at it are left untouched.
func (r *materielRepository) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&model.Materiel{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// FindByID finds a materiel by ID.
func (r *materielRepository) FindByID(ctx context.Context, id uint) (*model.Materiel, error) {
	var materiel model.Materiel
	if err := r.db.WithContext(ctx).First(&materiel, id).Error; err != nil {
		return nil, err
	}
	return &materiel, nil
}

// FindByIdentifiant finds a materiel by its external identifiant.
func (r *materielRepository) FindByIdentifiant(ctx context.Context, identifiant string) (*model.Materiel, error) {
	var materiel model.Materiel
	if err := r.db.WithContext(ctx).Where("identifiant = ?", identifiant).First(&materiel).Error; err != nil {
		return nil, err
	}
	return &materiel, nil
}

// Exists reports whether a materiel with the given ID is stored.
func (r *materielRepository) Exists(ctx context.Context, id uint) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&model.Materiel{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// List lists all materiels ordered by ID.
func (r *materielRepository) List(ctx context.Context) ([]model.Materiel, error) {
	materiels := []model.Materiel{}
	if err := r.db.WithContext(ctx).Order("id").Find(&materiels).Error; err != nil {
		return nil, err
	}
	return materiels, nil
}

// Count returns the number of stored materiels.
func (r *materielRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Materiel{}).Count(&count).Error
	return count, err
}

// WithTransaction executes a function within a database transaction.
func (r *materielRepository) WithTransaction(ctx context.Context, fn func(ctx context.Context, repo MaterielRepository) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		txRepo := &materielRepository{db: tx}
		return fn(ctx, txRepo)
	})
}
