package auth

import (
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/gorravana/boutique-backend/pkg/config"
)

func testJWTConfig() config.JWTConfig {
	return config.JWTConfig{
		Secret:            "test-secret",
		Issuer:            "boutique-test",
		ExpirationMinutes: 60,
	}
}

func TestMintAndParseAdminToken(t *testing.T) {
	cfg := testJWTConfig()
	adminID := uuid.New()

	signed, err := MintAdminToken(cfg, time.Now(), adminID, "ana@gorravana.mx")
	if err != nil {
		t.Fatalf("mint failed: %v", err)
	}

	claims, err := ParseAdminToken(cfg, signed)
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if claims.AdminID != adminID {
		t.Fatalf("admin id mismatch: %s", claims.AdminID)
	}
	if claims.Email != "ana@gorravana.mx" {
		t.Fatalf("email mismatch: %s", claims.Email)
	}
	if claims.Issuer != cfg.Issuer {
		t.Fatalf("issuer mismatch: %s", claims.Issuer)
	}
}

func TestParseAdminTokenRejectsExpired(t *testing.T) {
	cfg := testJWTConfig()
	signed, err := MintAdminToken(cfg, time.Now().Add(-2*time.Hour), uuid.New(), "ana@gorravana.mx")
	if err != nil {
		t.Fatalf("mint failed: %v", err)
	}
	if _, err := ParseAdminToken(cfg, signed); err == nil {
		t.Fatal("expected expired token to be rejected")
	}
}

func TestParseAdminTokenRejectsWrongIssuer(t *testing.T) {
	signed, err := MintAdminToken(config.JWTConfig{Secret: "test-secret", Issuer: "other", ExpirationMinutes: 60}, time.Now(), uuid.New(), "ana@gorravana.mx")
	if err != nil {
		t.Fatalf("mint failed: %v", err)
	}
	if _, err := ParseAdminToken(testJWTConfig(), signed); err == nil {
		t.Fatal("expected issuer mismatch to be rejected")
	}
}

func TestMintAdminTokenValidation(t *testing.T) {
	cfg := testJWTConfig()
	if _, err := MintAdminToken(cfg, time.Now(), uuid.Nil, "a@b.c"); err == nil {
		t.Fatal("expected error for nil admin id")
	}
	if _, err := MintAdminToken(cfg, time.Now(), uuid.New(), "  "); err == nil {
		t.Fatal("expected error for blank email")
	}
	cfg.Secret = ""
	if _, err := MintAdminToken(cfg, time.Now(), uuid.New(), "a@b.c"); err == nil {
		t.Fatal("expected error for missing secret")
	}
}
