package repository

import (
	"context"

	"gorm.io/gorm"

	"billun/internal/model"
)

// AnomalieRepository defines anomalie persistence operations.
type AnomalieRepository interface {
	Create(ctx context.Context, anomalie *model.Anomalie) error
	Update(ctx context.Context, anomalie *model.Anomalie) error
	Delete(ctx context.Context, id uint) error
	FindByID(ctx context.Context, id uint) (*model.Anomalie, error)
	List(ctx context.Context) ([]model.Anomalie, error)
	Count(ctx context.Context) (int64, error)
}

type anomalieRepository struct {
	db *gorm.DB
}

// NewAnomalieRepository creates a new anomalie repository.
func NewAnomalieRepository(db *gorm.DB) AnomalieRepository {
	return &anomalieRepository{db: db}
}

func (r *anomalieRepository) Create(ctx context.Context, anomalie *model.Anomalie) error {
	return r.db.WithContext(ctx).Create(anomalie).Error
}

func (r *anomalieRepository) Update(ctx context.Context, anomalie *model.Anomalie) error {
	return r.db.WithContext(ctx).Save(anomalie).Error
}

func (r *anomalieRepository) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&model.Anomalie{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *anomalieRepository) FindByID(ctx context.Context, id uint) (*model.Anomalie, error) {
	var anomalie model.Anomalie
	if err := r.db.WithContext(ctx).First(&anomalie, id).Error; err != nil {
		return nil, err
	}
	return &anomalie, nil
}

// List returns the most recent reports first.
func (r *anomalieRepository) List(ctx context.Context) ([]model.Anomalie, error) {
	anomalies := []model.Anomalie{}
	if err := r.db.WithContext(ctx).Order("date_signalement desc, id desc").Find(&anomalies).Error; err != nil {
		return nil, err
	}
	return anomalies, nil
}

func (r *anomalieRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Anomalie{}).Count(&count).Error
	return count, err
}
