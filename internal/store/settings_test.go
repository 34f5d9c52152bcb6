package store

import (
	"context"
	"testing"
	"time"
)

func TestJWTSecretIsStable(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	first, err := s.JWTSecret(ctx)
	if err != nil {
		t.Fatalf("JWTSecret: %v", err)
	}
	if len(first) != 64 {
		t.Errorf("expected 64 hex chars, got %d", len(first))
	}

	second, err := s.JWTSecret(ctx)
	if err != nil {
		t.Fatalf("JWTSecret (second call): %v", err)
	}
	if first != second {
		t.Error("secret changed between calls")
	}
}

func TestAdminCredentials(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	username, hash, err := s.AdminCredentials(ctx)
	if err != nil {
		t.Fatalf("AdminCredentials: %v", err)
	}
	if username != "" || hash != "" {
		t.Errorf("expected empty credentials before init, got %q %q", username, hash)
	}

	if err := s.SetAdminCredentials(ctx, "Admin", "hash1"); err != nil {
		t.Fatalf("SetAdminCredentials: %v", err)
	}
	username, hash, _ = s.AdminCredentials(ctx)
	if username != "Admin" || hash != "hash1" {
		t.Errorf("got %q %q", username, hash)
	}

	if err := s.SetAdminPassword(ctx, "hash2"); err != nil {
		t.Fatalf("SetAdminPassword: %v", err)
	}
	username, hash, _ = s.AdminCredentials(ctx)
	if username != "Admin" || hash != "hash2" {
		t.Errorf("after password change: got %q %q", username, hash)
	}
}

func TestTokenRevocation(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	revoked, err := s.IsTokenRevoked(ctx, "jti-1")
	if err != nil {
		t.Fatalf("IsTokenRevoked: %v", err)
	}
	if revoked {
		t.Error("fresh jti should not be revoked")
	}

	if err := s.RevokeToken(ctx, "jti-1", time.Now().Add(time.Hour)); err != nil {
		t.Fatalf("RevokeToken: %v", err)
	}

	revoked, _ = s.IsTokenRevoked(ctx, "jti-1")
	if !revoked {
		t.Error("expected jti-1 to be revoked")
	}
}
