package service

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/chris7683/fit-and-fix/internal/domain"
)

// tokenTTL is how long an issued token stays valid. Tokens are stateless, so
// expiry is the only way one dies.
const tokenTTL = 7 * 24 * time.Hour

// Verification failures are distinguished internally but collapse to
// domain.ErrUnauthorized at the public boundary so callers cannot probe why
// a token was rejected.
var (
	errTokenExpired = errors.New("token expired")
	errTokenInvalid = errors.New("token invalid")
)

// TokenService issues and verifies signed, time-bound identity tokens.
type TokenService struct {
	secret []byte
}

// NewTokenService creates a TokenService. Construction fails closed on an
// empty secret; there is no default key.
func NewTokenService(secret string) (*TokenService, error) {
	if secret == "" {
		return nil, errors.New("token signing secret is required")
	}
	return &TokenService{secret: []byte(secret)}, nil
}

// Issue signs a token asserting the given identity, valid for seven days
// from now.
func (s *TokenService) Issue(identity domain.Identity) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":   strconv.FormatInt(identity.UserID, 10),
		"email": identity.Email,
		"iat":   now.Unix(),
		"exp":   now.Add(tokenTTL).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// Verify checks signature and expiry and returns the identity the token
// asserts. Every failure mode, expired included, returns
// domain.ErrUnauthorized.
func (s *TokenService) Verify(tokenString string) (domain.Identity, error) {
	identity, err := s.verify(tokenString)
	if err != nil {
		return domain.Identity{}, domain.ErrUnauthorized
	}
	return identity, nil
}

func (s *TokenService) verify(tokenString string) (domain.Identity, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return domain.Identity{}, errTokenExpired
		}
		return domain.Identity{}, errTokenInvalid
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return domain.Identity{}, errTokenInvalid
	}

	sub, err := claims.GetSubject()
	if err != nil || sub == "" {
		return domain.Identity{}, errTokenInvalid
	}
	userID, err := strconv.ParseInt(sub, 10, 64)
	if err != nil {
		return domain.Identity{}, errTokenInvalid
	}

	email, _ := claims["email"].(string)
	return domain.Identity{UserID: userID, Email: email}, nil
}
