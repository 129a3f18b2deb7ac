package model

import (
	"time"

	"gorm.io/gorm"
)

// Anomalie represents a problem reported on a materiel.
// MaterielID is checked by the service before insert; no storage constraint is
// declared so deleting a materiel leaves its reports in place.
type Anomalie struct {
	ID              uint      `json:"id" gorm:"primaryKey"`
	MaterielID      uint      `json:"materiel_id" gorm:"not null;index"`
	Description     string    `json:"description" gorm:"type:text"`
	PhotoURL        *string   `json:"photo_url" gorm:"size:1024"`
	DateSignalement time.Time `json:"date_signalement" gorm:"not null;index"`
}

// TableName pins the table name regardless of the naming strategy.
func (Anomalie) TableName() string {
	return "anomalies"
}

// BeforeCreate stamps the report time when the caller did not provide one.
func (a *Anomalie) BeforeCreate(tx *gorm.DB) error {
	if a.DateSignalement.IsZero() {
		a.DateSignalement = time.Now().UTC()
	}
	return nil
}
