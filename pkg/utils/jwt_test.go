package utils

import (
	"testing"
	"time"

	"github.com/google/uuid"
)

func TestAccessTokenRoundTrip(t *testing.T) {
	m := NewJWTManager("secret", time.Hour, time.Hour)
	userID := uuid.New()

	token, err := m.GenerateAccessToken(userID, "user@example.com")
	if err != nil {
		t.Fatalf("GenerateAccessToken: %v", err)
	}

	claims, err := m.ValidateAccessToken(token)
	if err != nil {
		t.Fatalf("ValidateAccessToken: %v", err)
	}
	if claims.UserID != userID {
		t.Errorf("UserID = %v, want %v", claims.UserID, userID)
	}
	if claims.Email != "user@example.com" {
		t.Errorf("Email = %q", claims.Email)
	}
}

func TestValidateAccessTokenRejectsWrongSecret(t *testing.T) {
	m := NewJWTManager("secret", time.Hour, time.Hour)
	other := NewJWTManager("different-secret", time.Hour, time.Hour)

	token, err := m.GenerateAccessToken(uuid.New(), "user@example.com")
	if err != nil {
		t.Fatalf("GenerateAccessToken: %v", err)
	}

	if _, err := other.ValidateAccessToken(token); err == nil {
		t.Error("token signed with another secret validated")
	}
}

func TestRefreshAndStateTokensAreNotInterchangeable(t *testing.T) {
	m := NewJWTManager("secret", time.Hour, time.Hour)
	userID := uuid.New()

	refresh, err := m.GenerateRefreshToken(userID)
	if err != nil {
		t.Fatalf("GenerateRefreshToken: %v", err)
	}
	state, err := m.GenerateStateToken(userID)
	if err != nil {
		t.Fatalf("GenerateStateToken: %v", err)
	}

	if got, err := m.ValidateRefreshToken(refresh); err != nil || got != userID {
		t.Errorf("ValidateRefreshToken = %v, %v", got, err)
	}
	if got, err := m.ValidateStateToken(state); err != nil || got != userID {
		t.Errorf("ValidateStateToken = %v, %v", got, err)
	}

	if _, err := m.ValidateStateToken(refresh); err == nil {
		t.Error("refresh token accepted as OAuth state")
	}
	if _, err := m.ValidateRefreshToken(state); err == nil {
		t.Error("state token accepted as refresh token")
	}
	if _, err := m.ValidateAccessToken(refresh); err == nil {
		t.Error("refresh token accepted as access token")
	}
	if _, err := m.ValidateAccessToken(state); err == nil {
		t.Error("state token accepted as access token")
	}

	access, err := m.GenerateAccessToken(userID, "user@example.com")
	if err != nil {
		t.Fatalf("GenerateAccessToken: %v", err)
	}
	if _, err := m.ValidateRefreshToken(access); err == nil {
		t.Error("access token accepted as refresh token")
	}
}
