package service

import (
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"

	"jirao/internal/db"
	"jirao/internal/memstore"
)

const testPassword = "secret123"

func seedUser(t *testing.T, store *memstore.Store, username string, role db.Role) *db.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(testPassword), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hashing password: %v", err)
	}
	u := &db.User{
		Username:     username,
		Email:        username + "@example.com",
		PasswordHash: string(hash),
		Role:         role,
		Status:       db.UserActive,
		DateJoined:   time.Now().UTC(),
	}
	if err := store.Auth().CreateUser(u); err != nil {
		t.Fatalf("seeding user %s: %v", username, err)
	}
	return u
}

func seedSpace(t *testing.T, store *memstore.Store, ownerID int, title string) *db.Space {
	t.Helper()
	sp := &db.Space{
		OwnerID:      ownerID,
		Kind:         db.KindRoom,
		Title:        title,
		Location:     "Downtown",
		RatePerHour:  12,
		Description:  "a room",
		Availability: db.Available,
	}
	if _, err := store.Spaces().Create(sp); err != nil {
		t.Fatalf("seeding space %s: %v", title, err)
	}
	return sp
}
