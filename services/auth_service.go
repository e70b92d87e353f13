package services

import (
	"errors"
	"time"

	"github.com/AV-automacoes/restaurante-bom-prato/entity"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var ErrInvalidCredentials = errors.New("invalid credentials")

// Sessões de dispositivo duram bem mais que o token do admin: o carrinho e o
// histórico são por aparelho.
const deviceSessionTTL = 30 * 24 * time.Hour

// AuthService emite tokens de sessão de dispositivo (cliente) e autentica o
// dono do restaurante.
type AuthService struct {
	DB     *gorm.DB
	Secret string
	TTL    time.Duration
}

func NewAuthService(db *gorm.DB, secret string, ttl time.Duration) *AuthService {
	return &AuthService{DB: db, Secret: secret, TTL: ttl}
}

// NewDeviceSession cria uma sessão anônima para um aparelho e devolve o token
// com o sessionId embutido.
func (s *AuthService) NewDeviceSession() (token, sessionID string, err error) {
	sessionID = uuid.NewString()
	claims := jwt.MapClaims{
		"sessionId": sessionID,
		"role":      "customer",
		"exp":       time.Now().Add(deviceSessionTTL).Unix(),
	}
	token, err = jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(s.Secret))
	return token, sessionID, err
}

// AdminLogin valida email/senha contra o admin semeado e emite token de admin.
func (s *AuthService) AdminLogin(email, password string) (string, error) {
	var admin entity.Admin
	if err := s.DB.Where("email = ?", email).First(&admin).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", ErrInvalidCredentials
		}
		return "", err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(admin.Password), []byte(password)); err != nil {
		return "", ErrInvalidCredentials
	}

	claims := jwt.MapClaims{
		"adminId": admin.ID,
		"role":    "admin",
		"exp":     time.Now().Add(s.TTL).Unix(),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(s.Secret))
}
