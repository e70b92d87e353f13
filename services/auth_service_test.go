package services_test

import (
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/AV-automacoes/restaurante-bom-prato/entity"
	"github.com/AV-automacoes/restaurante-bom-prato/services"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newAuthService(t *testing.T) *services.AuthService {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "auth.db")), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	if err := db.AutoMigrate(&entity.Admin{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	hash, err := bcrypt.GenerateFromPassword([]byte("segredo123"), bcrypt.DefaultCost)
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	if err := db.Create(&entity.Admin{Email: "dono@bomprato.com", Password: string(hash)}).Error; err != nil {
		t.Fatalf("seed admin: %v", err)
	}
	return services.NewAuthService(db, "test-secret", time.Hour)
}

func parseClaims(t *testing.T, token string) jwt.MapClaims {
	t.Helper()
	parsed, err := jwt.Parse(token, func(tk *jwt.Token) (interface{}, error) {
		return []byte("test-secret"), nil
	})
	if err != nil || !parsed.Valid {
		t.Fatalf("parse token: %v", err)
	}
	return parsed.Claims.(jwt.MapClaims)
}

func TestNewDeviceSession(t *testing.T) {
	auth := newAuthService(t)

	token, sessionID, err := auth.NewDeviceSession()
	if err != nil {
		t.Fatalf("new session: %v", err)
	}
	if sessionID == "" {
		t.Fatal("empty session id")
	}

	claims := parseClaims(t, token)
	if claims["sessionId"] != sessionID {
		t.Fatalf("token sessionId = %v, want %s", claims["sessionId"], sessionID)
	}
	if claims["role"] != "customer" {
		t.Fatalf("token role = %v, want customer", claims["role"])
	}

	_, other, _ := auth.NewDeviceSession()
	if other == sessionID {
		t.Fatal("sessions must be unique per call")
	}
}

func TestAdminLogin(t *testing.T) {
	auth := newAuthService(t)

	token, err := auth.AdminLogin("dono@bomprato.com", "segredo123")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	claims := parseClaims(t, token)
	if claims["role"] != "admin" {
		t.Fatalf("token role = %v, want admin", claims["role"])
	}

	if _, err := auth.AdminLogin("dono@bomprato.com", "errada"); !errors.Is(err, services.ErrInvalidCredentials) {
		t.Fatalf("wrong password: expected ErrInvalidCredentials, got %v", err)
	}
	if _, err := auth.AdminLogin("outro@bomprato.com", "segredo123"); !errors.Is(err, services.ErrInvalidCredentials) {
		t.Fatalf("unknown email: expected ErrInvalidCredentials, got %v", err)
	}
}
