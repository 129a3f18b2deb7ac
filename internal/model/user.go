package model

import "time"

// Roles conventionally stored in User.Role. The column itself is free text.
const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// User represents an account allowed to sign in to the backend.
type User struct {
	ID             uint      `json:"id" gorm:"primaryKey"`
	Email          string    `json:"email" gorm:"uniqueIndex;size:255;not null"`
	HashedPassword string    `json:"-" gorm:"size:255;not null"` // Never expose in JSON
	Role           string    `json:"role" gorm:"size:50;not null;default:'user';index"`
	Societe        *string   `json:"societe" gorm:"size:255"`
	Prenom         *string   `json:"prenom" gorm:"size:255"`
	Nom            *string   `json:"nom" gorm:"size:255"`
	Telephone      *string   `json:"telephone" gorm:"size:50"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`

	// Relations
	Materiels []Materiel `json:"-" gorm:"foreignKey:ResponsableID;constraint:OnDelete:SET NULL"`
}

// IsAdmin reports whether the user holds the admin role.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
