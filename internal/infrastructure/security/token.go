package security

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/rafabene/kitanda-backend/internal/domain/entities"
	"github.com/rafabene/kitanda-backend/internal/domain/ports"
)

// DefaultTokenTTL é a validade dos tokens emitidos no login
const DefaultTokenTTL = 7 * 24 * time.Hour

// tokenClaims é o payload assinado
type tokenClaims struct {
	UserID string `json:"userId"`
	Email  string `json:"email"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

// JWTService implementa ports.TokenService com HS256
type JWTService struct {
	secret []byte
	ttl    time.Duration
	clock  ports.Clock
}

// NewJWTService cria o serviço de tokens. ttl zero usa DefaultTokenTTL.
func NewJWTService(secret string, ttl time.Duration, clock ports.Clock) (*JWTService, error) {
	if secret == "" {
		return nil, errors.New("jwt secret must not be empty")
	}
	if ttl <= 0 {
		ttl = DefaultTokenTTL
	}
	if clock == nil {
		clock = ports.SystemClock
	}
	return &JWTService{secret: []byte(secret), ttl: ttl, clock: clock}, nil
}

// TTL retorna a validade configurada
func (s *JWTService) TTL() time.Duration {
	return s.ttl
}

func (s *JWTService) Issue(claims ports.Claims) (string, error) {
	now := s.clock.Now()
	tc := tokenClaims{
		UserID: claims.UserID,
		Email:  claims.Email,
		Role:   string(claims.Role),
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, tc).SignedString(s.secret)
}

// Verify valida assinatura e expiração. Qualquer falha resulta em (Claims{}, false).
func (s *JWTService) Verify(token string) (ports.Claims, bool) {
	if token == "" {
		return ports.Claims{}, false
	}

	parsed, err := jwt.ParseWithClaims(token, &tokenClaims{}, func(*jwt.Token) (interface{}, error) {
		return s.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.clock.Now),
	)
	if err != nil {
		return ports.Claims{}, false
	}

	tc, ok := parsed.Claims.(*tokenClaims)
	if !ok || !parsed.Valid || tc.UserID == "" {
		return ports.Claims{}, false
	}

	return ports.Claims{
		UserID: tc.UserID,
		Email:  tc.Email,
		Role:   entities.Role(tc.Role),
	}, true
}
