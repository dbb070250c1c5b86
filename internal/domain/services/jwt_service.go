package services

import (
	"errors"
	"fmt"
	"time"

	"immowaechter-http-service/internal/domain/models"
	"immowaechter-http-service/internal/infrastructure/config"
	"immowaechter-http-service/utils"

	"github.com/golang-jwt/jwt/v4"
	"gorm.io/gorm"
)

// InterfaceJWTService defines the JWT service interface
type InterfaceJWTService interface {
	GenerateToken(ownerID uint, role string) (string, error)
	ValidateToken(tokenString string) (*jwt.Token, error)
	ExtractClaims(tokenString string) (*JWTClaims, error)
	Login(email, password string) (*LoginResult, error)
}

// LoginResult represents a successful login
type LoginResult struct {
	Token   string `json:"token"`
	OwnerID uint   `json:"owner_id"`
	Role    string `json:"role"`
	Email   string `json:"email"`
	Name    string `json:"name"`
}

// JWTService provides JWT related services
type JWTService struct {
	secretKey string
	issuer    string
	DB        *gorm.DB
}

// JWTClaims defines the claims carried by a token
type JWTClaims struct {
	OwnerID uint   `json:"owner_id"`
	Role    string `json:"role"`
	jwt.RegisteredClaims
}

// NewJWTService creates a new JWT service
func NewJWTService(cfg *config.Config, db *gorm.DB) InterfaceJWTService {
	return &JWTService{
		secretKey: cfg.JWTSecretKey,
		issuer:    "immowaechter-http-service",
		DB:        db,
	}
}

// 1. GenerateToken generates a signed JWT token
func (s *JWTService) GenerateToken(ownerID uint, role string) (string, error) {
	// Tokens are valid for 24 hours
	expirationTime := time.Now().Add(24 * time.Hour)

	claims := &JWTClaims{
		OwnerID: ownerID,
		Role:    role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expirationTime),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			NotBefore: jwt.NewNumericDate(time.Now()),
			Issuer:    s.issuer,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.secretKey))
}

// 2. ValidateToken validates a JWT token
func (s *JWTService) ValidateToken(tokenString string) (*jwt.Token, error) {
	return jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.secretKey), nil
	})
}

// 3. ExtractClaims extracts the claims from a token
func (s *JWTService) ExtractClaims(tokenString string) (*JWTClaims, error) {
	token, err := s.ValidateToken(tokenString)
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token claims")
	}

	jwtClaims := &JWTClaims{}
	if ownerID, ok := claims["owner_id"].(float64); ok {
		jwtClaims.OwnerID = uint(ownerID)
	}
	if role, ok := claims["role"].(string); ok {
		jwtClaims.Role = role
	}
	if issuer, ok := claims["iss"].(string); ok {
		jwtClaims.Issuer = issuer
	}
	return jwtClaims, nil
}

// 4. Login authenticates an owner by email and password
func (s *JWTService) Login(email, password string) (*LoginResult, error) {
	var owner models.Owner
	if err := s.DB.Where("email = ?", email).First(&owner).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("owner not found")
		}
		return nil, err
	}

	if !utils.CheckPasswordHash(password, owner.PasswordHash) {
		return nil, errors.New("incorrect password")
	}

	token, err := s.GenerateToken(owner.ID, owner.Role)
	if err != nil {
		return nil, err
	}

	return &LoginResult{
		Token:   token,
		OwnerID: owner.ID,
		Role:    owner.Role,
		Email:   owner.Email,
		Name:    owner.Name,
	}, nil
}
