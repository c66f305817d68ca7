package security

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/fintrack/fintrack-api/internal/domain/entity"
	errs "github.com/fintrack/fintrack-api/internal/domain/error"
	coreport "github.com/fintrack/fintrack-api/internal/domain/port/core"
	secport "github.com/fintrack/fintrack-api/internal/domain/port/security"
)

const issuer = "fintrack"

// Claims is the session token payload
type Claims struct {
	UserID uint64 `json:"id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	jwt.RegisteredClaims
}

// JWTService issues HS256 session tokens
type JWTService struct {
	secret       []byte
	ttl          time.Duration
	timeProvider coreport.TimeProvider
}

var _ secport.TokenService = (*JWTService)(nil)

// NewJWTService creates a token service. The secret must not be empty.
func NewJWTService(secret string, ttl time.Duration, timeProvider coreport.TimeProvider) (*JWTService, error) {
	if secret == "" {
		return nil, errors.New("jwt secret is required")
	}
	if ttl <= 0 {
		return nil, fmt.Errorf("token ttl must be positive, got %s", ttl)
	}
	return &JWTService{secret: []byte(secret), ttl: ttl, timeProvider: timeProvider}, nil
}

// Issue signs a token for identity that expires after the configured ttl
func (s *JWTService) Issue(identity entity.Identity) (string, error) {
	now := s.timeProvider.Now()
	claims := Claims{
		UserID: identity.UserID,
		Name:   identity.Name,
		Email:  identity.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   strconv.FormatUint(identity.UserID, 10),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}

// Parse verifies the signature and expiry of token
func (s *JWTService) Parse(token string) (*entity.Identity, error) {
	claims := &Claims{}
	parsed, err := jwt.ParseWithClaims(token, claims,
		func(*jwt.Token) (any, error) { return s.secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithIssuer(issuer),
		jwt.WithTimeFunc(s.timeProvider.Now),
	)
	if err != nil || !parsed.Valid || claims.UserID == 0 {
		return nil, errs.ErrInvalidToken
	}
	return &entity.Identity{UserID: claims.UserID, Name: claims.Name, Email: claims.Email}, nil
}
