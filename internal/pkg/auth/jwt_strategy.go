package auth

import (
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const (
	defaultTokenTTL = 72 * time.Hour
	defaultIssuer   = "habitquest"
	clockLeeway     = 5 * time.Second
)

// JWTStrategy issues HS256 signed JWTs carrying the user id as subject.
type JWTStrategy struct {
	secret []byte
	ttl    time.Duration
	issuer string
	now    func() time.Time
}

// NewJWTStrategy builds JWTStrategy with provided secret and options.
func NewJWTStrategy(secret string, opts Options) *JWTStrategy {
	ttl := opts.TTL
	if ttl <= 0 {
		ttl = defaultTokenTTL
	}
	issuer := opts.Issuer
	if issuer == "" {
		issuer = defaultIssuer
	}
	return &JWTStrategy{secret: []byte(secret), ttl: ttl, issuer: issuer, now: time.Now}
}

// IssueToken generates signed auth token for the user.
func (s *JWTStrategy) IssueToken(userID int64) (string, error) {
	now := s.now()
	claims := jwt.RegisteredClaims{
		Subject:   strconv.FormatInt(userID, 10),
		Issuer:    s.issuer,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// ParseToken validates token and returns encoded user ID.
func (s *JWTStrategy) ParseToken(token string) (int64, error) {
	var claims jwt.RegisteredClaims
	_, err := jwt.ParseWithClaims(token, &claims, func(*jwt.Token) (any, error) {
		return s.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(s.issuer),
		jwt.WithExpirationRequired(),
		jwt.WithLeeway(clockLeeway),
	)
	if err != nil {
		return 0, ErrInvalidToken
	}

	userID, err := strconv.ParseInt(claims.Subject, 10, 64)
	if err != nil || userID <= 0 {
		return 0, ErrInvalidToken
	}
	return userID, nil
}

func (s *JWTStrategy) Name() string {
	return "jwt"
}
