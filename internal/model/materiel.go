package model

import "time"

// StatutDisponible is the status assigned to new equipment when none is given.
const StatutDisponible = "disponible"

// Materiel represents a piece of equipment of the fleet.
type Materiel struct {
	ID                    uint       `json:"id" gorm:"primaryKey"`
	Identifiant           string     `json:"identifiant" gorm:"uniqueIndex;size:100;not null"`
	Plaque                string     `json:"plaque" gorm:"size:50;index"`
	TypeMateriel          string     `json:"type_materiel" gorm:"size:100"`
	Statut                string     `json:"statut" gorm:"size:50;not null;default:'disponible';index"`
	Kilometrage           int        `json:"kilometrage" gorm:"not null;default:0"`
	DateControleTechnique *time.Time `json:"date_controle_technique"`
	Options               *string    `json:"options" gorm:"type:text"`
	ResponsableID         *uint      `json:"responsable_id" gorm:"index"`
	CreatedAt             time.Time  `json:"created_at"`
	UpdatedAt             time.Time  `json:"updated_at"`
}

// TableName pins the table name regardless of the naming strategy.
func (Materiel) TableName() string {
	return "materiels"
}
