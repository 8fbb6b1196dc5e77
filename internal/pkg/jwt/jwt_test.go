package jwt

import (
	"errors"
	"testing"
	"time"
)

func TestGenerateAndValidateAccessToken(t *testing.T) {
	token, expiresAt, err := GenerateAccessToken(42, "admin", "secret", ExpiryDays(7))
	if err != nil {
		t.Fatalf("GenerateAccessToken() error = %v", err)
	}
	if token == "" {
		t.Fatal("GenerateAccessToken() returned empty token")
	}

	wantExpiry := time.Now().Add(7 * 24 * time.Hour)
	if diff := wantExpiry.Sub(expiresAt); diff > time.Minute || diff < -time.Minute {
		t.Errorf("expiresAt = %v, want about %v", expiresAt, wantExpiry)
	}

	claims, err := ValidateAccessToken(token, "secret")
	if err != nil {
		t.Fatalf("ValidateAccessToken() error = %v", err)
	}
	if claims.UserID != 42 {
		t.Errorf("UserID = %d, want 42", claims.UserID)
	}
	if claims.Role != "admin" {
		t.Errorf("Role = %q, want admin", claims.Role)
	}
	if claims.ID == "" {
		t.Error("token ID (jti) is empty")
	}
}

func TestValidateAccessTokenErrors(t *testing.T) {
	valid, _, err := GenerateAccessToken(1, "employee", "secret", time.Hour)
	if err != nil {
		t.Fatalf("GenerateAccessToken() error = %v", err)
	}
	expired, _, err := GenerateAccessToken(1, "employee", "secret", -time.Hour)
	if err != nil {
		t.Fatalf("GenerateAccessToken() error = %v", err)
	}

	tests := []struct {
		name    string
		token   string
		secret  string
		wantErr error
	}{
		{name: "wrong secret", token: valid, secret: "other", wantErr: ErrTokenInvalid},
		{name: "garbage", token: "not-a-token", secret: "secret", wantErr: ErrTokenInvalid},
		{name: "empty", token: "", secret: "secret", wantErr: ErrTokenInvalid},
		{name: "expired", token: expired, secret: "secret", wantErr: ErrTokenExpired},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ValidateAccessToken(tt.token, tt.secret)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("ValidateAccessToken() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}
