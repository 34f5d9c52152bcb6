package store

import (
	"context"
	"crypto/rand"
	"database/sql"
	"encoding/hex"
	"fmt"
	"time"
)

// Setting keys.
const (
	settingJWTSecret    = "jwt_secret"
	settingAdminUser    = "admin_username"
	settingAdminPassKey = "admin_password_hash"
)

// JWTSecret retrieves the JWT signing secret, generating and storing
// one on first use. Insert-or-ignore plus a re-read avoids a TOCTOU
// race if two processes ever start against the same file.
func (s *Store) JWTSecret(ctx context.Context) (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("generating jwt secret: %w", err)
	}
	candidate := hex.EncodeToString(buf)

	_, err := s.db.ExecContext(ctx,
		`INSERT OR IGNORE INTO settings (key, value) VALUES (?, ?)`,
		settingJWTSecret, candidate,
	)
	if err != nil {
		return "", fmt.Errorf("storing jwt secret: %w", err)
	}

	var secret string
	err = s.db.QueryRowContext(ctx,
		`SELECT value FROM settings WHERE key = ?`, settingJWTSecret,
	).Scan(&secret)
	if err != nil {
		return "", fmt.Errorf("querying jwt secret: %w", err)
	}

	return secret, nil
}

// AdminCredentials returns the operator username and bcrypt password
// hash, or empty strings if the dashboard has not been initialized.
func (s *Store) AdminCredentials(ctx context.Context) (username, passwordHash string, err error) {
	err = s.db.QueryRowContext(ctx,
		`SELECT value FROM settings WHERE key = ?`, settingAdminUser,
	).Scan(&username)
	if err == sql.ErrNoRows {
		return "", "", nil
	}
	if err != nil {
		return "", "", fmt.Errorf("querying admin username: %w", err)
	}

	err = s.db.QueryRowContext(ctx,
		`SELECT value FROM settings WHERE key = ?`, settingAdminPassKey,
	).Scan(&passwordHash)
	if err == sql.ErrNoRows {
		return username, "", nil
	}
	if err != nil {
		return "", "", fmt.Errorf("querying admin password hash: %w", err)
	}

	return username, passwordHash, nil
}

// SetAdminCredentials stores the operator username and bcrypt hash,
// replacing any existing values.
func (s *Store) SetAdminCredentials(ctx context.Context, username, passwordHash string) error {
	for key, value := range map[string]string{
		settingAdminUser:    username,
		settingAdminPassKey: passwordHash,
	} {
		_, err := s.db.ExecContext(ctx,
			`INSERT INTO settings (key, value) VALUES (?, ?)
			 ON CONFLICT (key) DO UPDATE SET value = excluded.value`,
			key, value,
		)
		if err != nil {
			return fmt.Errorf("storing %s: %w", key, err)
		}
	}
	return nil
}

// SetAdminPassword replaces only the stored password hash.
func (s *Store) SetAdminPassword(ctx context.Context, passwordHash string) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO settings (key, value) VALUES (?, ?)
		 ON CONFLICT (key) DO UPDATE SET value = excluded.value`,
		settingAdminPassKey, passwordHash,
	)
	if err != nil {
		return fmt.Errorf("storing admin password hash: %w", err)
	}
	return nil
}

// RevokeToken adds a token's JTI to the revocation list.
func (s *Store) RevokeToken(ctx context.Context, jti string, expiresAt time.Time) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT OR IGNORE INTO revoked_tokens (jti, expires_at) VALUES (?, ?)`,
		jti, expiresAt,
	)
	if err != nil {
		return fmt.Errorf("revoking token: %w", err)
	}

	// Opportunistically clean up expired revocations.
	_, _ = s.db.ExecContext(ctx,
		`DELETE FROM revoked_tokens WHERE expires_at < ?`, time.Now(),
	)

	return nil
}

// IsTokenRevoked checks if a token's JTI has been revoked.
func (s *Store) IsTokenRevoked(ctx context.Context, jti string) (bool, error) {
	var count int
	err := s.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM revoked_tokens WHERE jti = ?`, jti,
	).Scan(&count)
	if err != nil {
		return false, fmt.Errorf("checking token revocation: %w", err)
	}
	return count > 0, nil
}
