package entity

import (
	"gorm.io/gorm"
)

// Admin dono do restaurante; único usuário autenticado do sistema.
type Admin struct {
	gorm.Model
	Email    string `gorm:"uniqueIndex;size:120" json:"email"`
	Password string `json:"-"` // bcrypt hash
}
