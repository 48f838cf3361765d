package authenticating

import (
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/order-booker-api/internal/config"
	"github.com/vfg2006/order-booker-api/internal/domain"
	"github.com/vfg2006/order-booker-api/pkg/apiErrors"
	"golang.org/x/crypto/bcrypt"
)

const defaultTokenTTL = 12 * time.Hour

type Authenticator interface {
	Login(password string) (*domain.LoginResponse, error)
	ValidateToken(tokenString string) (*domain.Claims, error)
}

type Service struct {
	secretKey    string
	passwordHash string
	tokenTTL     time.Duration
	now          func() time.Time
}

func NewService(cfg *config.Config) Authenticator {
	ttl := cfg.Auth.TokenTTL
	if ttl <= 0 {
		ttl = defaultTokenTTL
	}

	return &Service{
		secretKey:    cfg.Auth.SecretKey,
		passwordHash: cfg.Auth.AdminPasswordHash,
		tokenTTL:     ttl,
		now:          time.Now,
	}
}

// Login troca a senha administrativa por um token JWT de administrador
func (s *Service) Login(password string) (*domain.LoginResponse, error) {
	if strings.TrimSpace(password) == "" {
		return nil, NewAuthError(ErrMissingRequiredData, apiErrors.ErrMissingRequiredData, "Senha é obrigatória")
	}

	if s.passwordHash == "" || s.secretKey == "" {
		logrus.Error("Login administrativo sem ADMIN_PASSWORD_HASH ou SECRET_KEY configurados")
		return nil, NewAuthError(ErrNotConfigured, apiErrors.ErrInternalServer, "Autenticação administrativa indisponível")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(s.passwordHash), []byte(password)); err != nil {
		logrus.Warn("Tentativa de login administrativo com senha incorreta")
		return nil, NewAuthError(ErrInvalidCredentials, apiErrors.ErrInvalidCredentials, "Senha incorreta")
	}

	token, err := s.generateJWT()
	if err != nil {
		return nil, NewAuthError(err, apiErrors.ErrInternalServer, "Erro ao gerar token de autenticação")
	}

	return &domain.LoginResponse{
		Token:     token,
		ExpiresIn: int64(s.tokenTTL.Seconds()),
	}, nil
}

func (s *Service) generateJWT() (string, error) {
	now := s.now()
	claims := domain.Claims{
		UserName:   domain.AdminUserName,
		UserRoleID: domain.RoleAdmin,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.tokenTTL)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.secretKey))
}

func (s *Service) ValidateToken(tokenString string) (*domain.Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &domain.Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.secretKey), nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, NewAuthError(ErrExpiredToken, apiErrors.ErrExpiredToken, "Token expirado")
		}
		return nil, NewAuthError(ErrInvalidToken, apiErrors.ErrInvalidToken, err.Error())
	}

	if claims, ok := token.Claims.(*domain.Claims); ok && token.Valid {
		return claims, nil
	}

	return nil, NewAuthError(ErrInvalidToken, apiErrors.ErrInvalidToken, "Token inválido")
}

// HashPassword valida a força da senha e devolve o hash bcrypt para ADMIN_PASSWORD_HASH
func HashPassword(password string) (string, error) {
	if err := ValidatePasswordStrength(password); err != nil {
		return "", err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}

	return string(hashed), nil
}

// GenerateStrongPassword gera uma senha com letras maiúsculas, minúsculas, números e caracteres especiais
func GenerateStrongPassword(length int) (string, error) {
	if length < 8 {
		length = 8
	}

	const (
		lowerChars   = "abcdefghijklmnopqrstuvwxyz"
		upperChars   = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
		numberChars  = "0123456789"
		specialChars = "!@#$%^&*()-_=+[]{}|;:,.<>?"
		allChars     = lowerChars + upperChars + numberChars + specialChars
	)

	password := make([]byte, length)

	// um caractere de cada tipo nas primeiras posições
	for i, charset := range []string{lowerChars, upperChars, numberChars, specialChars} {
		randomChar, err := getRandomChar(charset)
		if err != nil {
			return "", err
		}
		password[i] = randomChar
	}

	for i := 4; i < length; i++ {
		randomChar, err := getRandomChar(allChars)
		if err != nil {
			return "", err
		}
		password[i] = randomChar
	}

	for i := range password {
		j, err := randomInt(int64(len(password)))
		if err != nil {
			return "", err
		}
		password[i], password[j] = password[j], password[i]
	}

	return string(password), nil
}

func getRandomChar(charset string) (byte, error) {
	n, err := randomInt(int64(len(charset)))
	if err != nil {
		return 0, err
	}
	return charset[n], nil
}

// randomInt gera um número aleatório seguro entre 0 e max-1
func randomInt(max int64) (int, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(max))
	if err != nil {
		return 0, err
	}
	return int(n.Int64()), nil
}

// ValidatePasswordStrength exige ao menos 8 caracteres com maiúsculas, minúsculas, números e especiais
func ValidatePasswordStrength(password string) error {
	if len(password) < 8 {
		return NewAuthError(ErrWeakPassword, apiErrors.ErrInvalidFormat, "a senha deve conter pelo menos 8 caracteres")
	}

	var (
		hasUpper   bool
		hasLower   bool
		hasNumber  bool
		hasSpecial bool
	)

	const (
		lowerChars   = "abcdefghijklmnopqrstuvwxyz"
		upperChars   = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
		numberChars  = "0123456789"
		specialChars = "!@#$%^&*()-_=+[]{}|;:,.<>?"
	)

	for _, char := range password {
		switch {
		case strings.ContainsRune(lowerChars, char):
			hasLower = true
		case strings.ContainsRune(upperChars, char):
			hasUpper = true
		case strings.ContainsRune(numberChars, char):
			hasNumber = true
		case strings.ContainsRune(specialChars, char):
			hasSpecial = true
		}
	}

	switch {
	case !hasUpper:
		return NewAuthError(ErrWeakPassword, apiErrors.ErrInvalidFormat, "a senha deve conter pelo menos uma letra maiúscula")
	case !hasLower:
		return NewAuthError(ErrWeakPassword, apiErrors.ErrInvalidFormat, "a senha deve conter pelo menos uma letra minúscula")
	case !hasNumber:
		return NewAuthError(ErrWeakPassword, apiErrors.ErrInvalidFormat, "a senha deve conter pelo menos um número")
	case !hasSpecial:
		return NewAuthError(ErrWeakPassword, apiErrors.ErrInvalidFormat, "a senha deve conter pelo menos um caractere especial")
	}

	return nil
}
