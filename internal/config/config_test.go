package config_test

import (
	"strings"
	"testing"

	"github.com/chris7683/fit-and-fix/internal/config"
)

const testSecret = "test-secret-key-0123456789abcdef"

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("JWT_SECRET", testSecret)
	t.Setenv("PORT", "")
	t.Setenv("DATABASE_PATH", "")
	t.Setenv("BCRYPT_COST", "")

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Port != "8080" {
		t.Fatalf("expected default port 8080, got %s", cfg.Port)
	}
	if cfg.DatabasePath != "fit-and-fix.db" {
		t.Fatalf("expected default database path, got %s", cfg.DatabasePath)
	}
	if cfg.BcryptCost != 10 {
		t.Fatalf("expected default bcrypt cost 10, got %d", cfg.BcryptCost)
	}
}

func TestLoad_MissingSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")

	_, err := config.Load()
	if err == nil {
		t.Fatal("expected error for missing JWT_SECRET")
	}
	if !strings.Contains(err.Error(), "JWT_SECRET") {
		t.Fatalf("expected JWT_SECRET error, got %v", err)
	}
}

func TestLoad_ShortSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "too-short")

	_, err := config.Load()
	if err == nil {
		t.Fatal("expected error for short JWT_SECRET")
	}
}

func TestLoad_BcryptCostBounds(t *testing.T) {
	tests := []struct {
		name    string
		cost    string
		wantErr bool
	}{
		{"below minimum", "3", true},
		{"above maximum", "15", true},
		{"minimum", "4", false},
		{"maximum", "14", false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Setenv("JWT_SECRET", testSecret)
			t.Setenv("BCRYPT_COST", tc.cost)

			_, err := config.Load()
			if tc.wantErr && err == nil {
				t.Fatalf("expected error for BCRYPT_COST=%s", tc.cost)
			}
			if !tc.wantErr && err != nil {
				t.Fatalf("unexpected error for BCRYPT_COST=%s: %v", tc.cost, err)
			}
		})
	}
}
