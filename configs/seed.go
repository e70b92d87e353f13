package configs

import (
	"log"

	"github.com/AV-automacoes/restaurante-bom-prato/entity"
	"golang.org/x/crypto/bcrypt"
)

// SeedAdmin cria o dono do restaurante na primeira subida.
func SeedAdmin(cfg *Config) error {
	db := DB()
	if cfg.AdminEmail == "" || cfg.AdminPassword == "" {
		log.Println("⚠️ skip seeding admin: missing ADMIN_EMAIL/ADMIN_PASSWORD")
		return nil
	}

	var count int64
	db.Model(&entity.Admin{}).Where("email = ?", cfg.AdminEmail).Count(&count)
	if count > 0 {
		log.Println("ℹ️ admin already exists:", cfg.AdminEmail)
		return nil
	}

	hash, _ := bcrypt.GenerateFromPassword([]byte(cfg.AdminPassword), bcrypt.DefaultCost)
	admin := entity.Admin{
		Email:    cfg.AdminEmail,
		Password: string(hash),
	}
	return db.Create(&admin).Error
}
