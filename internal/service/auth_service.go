package service

import (
	"context"
	"errors"
	"time"

	"salondesk/internal/config"
	"salondesk/internal/dto"
	"salondesk/internal/repository"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

// SettingAdminPIN stores the bcrypt hash of the admin PIN.
const SettingAdminPIN = "admin_pin"

var (
	ErrInvalidPIN = errors.New("invalid PIN")
	ErrPINNotSet  = errors.New("PIN not set")
)

type AuthService interface {
	Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error)
	SetPin(ctx context.Context, req dto.SetPinRequest) error
	Status(ctx context.Context) (*dto.AuthStatusResponse, error)
}

type authService struct {
	settingsRepo repository.SettingsRepository
	cfg          *config.Config
}

func NewAuthService(settingsRepo repository.SettingsRepository, cfg *config.Config) AuthService {
	return &authService{settingsRepo: settingsRepo, cfg: cfg}
}

func (s *authService) Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error) {
	hash, err := s.settingsRepo.Get(ctx, SettingAdminPIN)
	if err != nil {
		return nil, ErrPINNotSet
	}
	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(req.PIN)); err != nil {
		return nil, ErrInvalidPIN
	}

	token, err := s.generateToken()
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		AccessToken: token,
		TokenType:   "bearer",
		ExpiresIn:   s.cfg.JWTExpirationHours * 3600,
	}, nil
}

// SetPin sets or rotates the admin PIN. The current PIN is verified first
// unless no PIN exists yet (fresh install).
func (s *authService) SetPin(ctx context.Context, req dto.SetPinRequest) error {
	existing, err := s.settingsRepo.Get(ctx, SettingAdminPIN)
	if err == nil && existing != "" {
		if bcrypt.CompareHashAndPassword([]byte(existing), []byte(req.CurrentPIN)) != nil {
			return ErrInvalidPIN
		}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.NewPIN), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	return s.settingsRepo.Set(ctx, SettingAdminPIN, string(hash))
}

func (s *authService) Status(ctx context.Context) (*dto.AuthStatusResponse, error) {
	hash, err := s.settingsRepo.Get(ctx, SettingAdminPIN)
	return &dto.AuthStatusResponse{PinSet: err == nil && hash != ""}, nil
}

func (s *authService) generateToken() (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub": "admin",
		"iat": now.Unix(),
		"exp": now.Add(time.Duration(s.cfg.JWTExpirationHours) * time.Hour).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.cfg.JWTSecret))
}
