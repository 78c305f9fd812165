package service_test

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/chris7683/fit-and-fix/internal/domain"
	"github.com/chris7683/fit-and-fix/internal/service"
)

const testJWTSecret = "test-secret-key-0123456789abcdef"

func newTestTokenService(t *testing.T) *service.TokenService {
	t.Helper()
	tokens, err := service.NewTokenService(testJWTSecret)
	if err != nil {
		t.Fatalf("NewTokenService: %v", err)
	}
	return tokens
}

func TestNewTokenService_EmptySecret(t *testing.T) {
	_, err := service.NewTokenService("")
	if err == nil {
		t.Fatal("expected error for empty signing secret")
	}
}

func TestTokenService_IssueAndVerify(t *testing.T) {
	tokens := newTestTokenService(t)
	identity := domain.Identity{UserID: 42, Email: "user@example.com"}

	token, err := tokens.Issue(identity)
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}
	if token == "" {
		t.Fatal("expected non-empty token")
	}

	got, err := tokens.Verify(token)
	if err != nil {
		t.Fatalf("Verify: %v", err)
	}
	if got != identity {
		t.Fatalf("expected identity %+v, got %+v", identity, got)
	}
}

func TestTokenService_MalformedToken(t *testing.T) {
	tokens := newTestTokenService(t)

	tests := []string{"", "garbage", "not.a.jwt", "a.b"}
	for _, tc := range tests {
		_, err := tokens.Verify(tc)
		if !errors.Is(err, domain.ErrUnauthorized) {
			t.Fatalf("Verify(%q): expected ErrUnauthorized, got %v", tc, err)
		}
	}
}

func TestTokenService_TamperedToken(t *testing.T) {
	tokens := newTestTokenService(t)

	token, err := tokens.Issue(domain.Identity{UserID: 1, Email: "a@b.com"})
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}

	tampered := token[:len(token)-5] + "XXXXX"
	_, err = tokens.Verify(tampered)
	if !errors.Is(err, domain.ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized for tampered token, got %v", err)
	}
}

func TestTokenService_WrongSecret(t *testing.T) {
	tokens := newTestTokenService(t)

	other, err := service.NewTokenService("a-completely-different-signing-key")
	if err != nil {
		t.Fatalf("NewTokenService: %v", err)
	}

	token, err := other.Issue(domain.Identity{UserID: 1, Email: "a@b.com"})
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}

	_, err = tokens.Verify(token)
	if !errors.Is(err, domain.ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized for wrong secret, got %v", err)
	}
}

func TestTokenService_ExpiredToken(t *testing.T) {
	tokens := newTestTokenService(t)

	// Sign a token whose seven-day window has already elapsed.
	claims := jwt.MapClaims{
		"sub":   "42",
		"email": "user@example.com",
		"iat":   time.Now().Add(-8 * 24 * time.Hour).Unix(),
		"exp":   time.Now().Add(-24 * time.Hour).Unix(),
	}
	expired, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testJWTSecret))
	if err != nil {
		t.Fatalf("sign expired token: %v", err)
	}

	_, err = tokens.Verify(expired)
	if !errors.Is(err, domain.ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized for expired token, got %v", err)
	}
}

func TestTokenService_MissingSubject(t *testing.T) {
	tokens := newTestTokenService(t)

	claims := jwt.MapClaims{
		"email": "user@example.com",
		"iat":   time.Now().Unix(),
		"exp":   time.Now().Add(time.Hour).Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testJWTSecret))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}

	_, err = tokens.Verify(token)
	if !errors.Is(err, domain.ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized for token without subject, got %v", err)
	}
}

func TestTokenService_SevenDayExpiry(t *testing.T) {
	tokens := newTestTokenService(t)

	token, err := tokens.Issue(domain.Identity{UserID: 7, Email: "ttl@example.com"})
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}

	parsed, err := jwt.Parse(token, func(token *jwt.Token) (any, error) {
		return []byte(testJWTSecret), nil
	})
	if err != nil {
		t.Fatalf("parse issued token: %v", err)
	}

	claims := parsed.Claims.(jwt.MapClaims)
	exp, err := claims.GetExpirationTime()
	if err != nil {
		t.Fatalf("get exp: %v", err)
	}
	iat, err := claims.GetIssuedAt()
	if err != nil {
		t.Fatalf("get iat: %v", err)
	}

	if got := exp.Sub(iat.Time); got != 7*24*time.Hour {
		t.Fatalf("expected 7 day expiry, got %v", got)
	}
}
