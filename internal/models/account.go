package models

import "gorm.io/gorm"

type Role string

const (
	RoleAdmin Role = "admin"
	RoleUser  Role = "user"
)

// Valid reports whether r is one of the known roles. Guard sites switch on
// the role exhaustively; anything else is treated as no access.
func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleUser:
		return true
	}
	return false
}

type Account struct {
	gorm.Model

	Email        string `gorm:"uniqueIndex;not null"`
	PasswordHash string `gorm:"not null"`
	Name         string `gorm:"not null"`
	Department   string `gorm:"not null"`
	Role         Role   `gorm:"type:varchar(20);not null;default:'user'"`

	// Relationships
	Tasks []Task `gorm:"foreignKey:SubmitterID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
}
