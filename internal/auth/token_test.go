package auth

import (
	"testing"
	"time"

	"jirao/internal/db"
)

func TestTokenRoundtrip(t *testing.T) {
	u := &db.User{ID: 7, Role: db.RoleHost}
	token, err := GenerateToken("secret", u, time.Hour)
	if err != nil {
		t.Fatalf("generating token: %v", err)
	}

	userID, role, err := ParseToken("secret", token)
	if err != nil {
		t.Fatalf("parsing token: %v", err)
	}
	if userID != 7 {
		t.Errorf("expected user_id 7, got %d", userID)
	}
	if role != db.RoleHost {
		t.Errorf("expected host role, got %s", role)
	}
}

func TestParseToken_WrongSecret(t *testing.T) {
	u := &db.User{ID: 7, Role: db.RoleGuest}
	token, err := GenerateToken("secret", u, time.Hour)
	if err != nil {
		t.Fatalf("generating token: %v", err)
	}

	if _, _, err := ParseToken("other-secret", token); err == nil {
		t.Error("expected an error for a token signed with another secret")
	}
}

func TestParseToken_Expired(t *testing.T) {
	u := &db.User{ID: 7, Role: db.RoleGuest}
	token, err := GenerateToken("secret", u, -time.Minute)
	if err != nil {
		t.Fatalf("generating token: %v", err)
	}

	if _, _, err := ParseToken("secret", token); err == nil {
		t.Error("expected an error for an expired token")
	}
}

func TestParseToken_Garbage(t *testing.T) {
	if _, _, err := ParseToken("secret", "not-a-token"); err == nil {
		t.Error("expected an error for a malformed token")
	}
}
