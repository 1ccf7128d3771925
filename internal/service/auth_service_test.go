package service

import (
	"errors"
	"testing"
	"time"

	"jirao/internal/apperr"
	"jirao/internal/db"
	"jirao/internal/entities"
	"jirao/internal/memstore"
)

func newAuthService(store *memstore.Store) *AuthService {
	return NewAuthService(store.Auth(), "test-secret", time.Hour)
}

func TestRegister_GuestGetsTokenImmediately(t *testing.T) {
	store := memstore.New()
	svc := newAuthService(store)

	resp, err := svc.Register(entities.RegisterRequest{
		Username: "alice",
		Email:    "alice@example.com",
		Password: "secret123",
		Role:     "guest",
	})
	if err != nil {
		t.Fatalf("registering guest: %v", err)
	}
	if resp.Token == "" {
		t.Error("expected a token for a guest registration")
	}
	if resp.User == nil || resp.User.Role != db.RoleGuest || resp.User.Status != db.UserActive {
		t.Errorf("expected an active guest in the response, got %+v", resp.User)
	}
	if resp.PendingApproval {
		t.Error("guest registration must not be pending")
	}
}

func TestRegister_HostFilesApplicationOnly(t *testing.T) {
	store := memstore.New()
	svc := newAuthService(store)

	resp, err := svc.Register(entities.RegisterRequest{
		Username: "bob",
		Email:    "bob@example.com",
		Password: "secret123",
		Role:     "host",
		NIDImage: "data:image/png;base64,xxxx",
	})
	if err != nil {
		t.Fatalf("registering host: %v", err)
	}
	if !resp.PendingApproval {
		t.Error("host registration must be pending approval")
	}
	if resp.Token != "" || resp.User != nil {
		t.Error("no user or token may exist before admin approval")
	}

	// The applicant cannot log in yet.
	_, err = svc.Login(entities.LoginRequest{Email: "bob@example.com", Password: "secret123"})
	if !errors.Is(err, apperr.ErrInvalidCredentials) {
		t.Errorf("expected ErrInvalidCredentials before approval, got %v", err)
	}

	hosts, err := store.Admin().ListPendingHosts()
	if err != nil {
		t.Fatalf("listing pending hosts: %v", err)
	}
	if len(hosts) != 1 || hosts[0].Username != "bob" {
		t.Fatalf("expected one pending application for bob, got %+v", hosts)
	}
}

func TestRegister_ValidatesInput(t *testing.T) {
	store := memstore.New()
	svc := newAuthService(store)

	cases := []struct {
		name  string
		req   entities.RegisterRequest
		field string
	}{
		{"missing username", entities.RegisterRequest{Email: "a@b.c", Password: "x", Role: "guest"}, "username"},
		{"missing email", entities.RegisterRequest{Username: "a", Password: "x", Role: "guest"}, "email"},
		{"missing password", entities.RegisterRequest{Username: "a", Email: "a@b.c", Role: "guest"}, "password"},
		{"admin role", entities.RegisterRequest{Username: "a", Email: "a@b.c", Password: "x", Role: "admin"}, "role"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Register(tc.req)
			var ve *apperr.ValidationError
			if !errors.As(err, &ve) {
				t.Fatalf("expected ValidationError, got %v", err)
			}
			if ve.Field != tc.field {
				t.Errorf("expected field %q, got %q", tc.field, ve.Field)
			}
		})
	}
}

func TestRegister_DuplicateIdentity(t *testing.T) {
	store := memstore.New()
	svc := newAuthService(store)
	seedUser(t, store, "alice", db.RoleGuest)

	_, err := svc.Register(entities.RegisterRequest{
		Username: "alice",
		Email:    "different@example.com",
		Password: "secret123",
		Role:     "guest",
	})
	if !errors.Is(err, apperr.ErrDuplicateIdentity) {
		t.Errorf("expected ErrDuplicateIdentity, got %v", err)
	}
}

func TestLogin_Succeeds(t *testing.T) {
	store := memstore.New()
	svc := newAuthService(store)
	u := seedUser(t, store, "alice", db.RoleGuest)

	resp, err := svc.Login(entities.LoginRequest{Email: u.Email, Password: testPassword})
	if err != nil {
		t.Fatalf("logging in: %v", err)
	}
	if resp.Token == "" || resp.User == nil || resp.User.ID != u.ID {
		t.Errorf("unexpected login response: %+v", resp)
	}
}

func TestLogin_WrongPasswordAndUnknownEmailLookTheSame(t *testing.T) {
	store := memstore.New()
	svc := newAuthService(store)
	u := seedUser(t, store, "alice", db.RoleGuest)

	_, err := svc.Login(entities.LoginRequest{Email: u.Email, Password: "wrong"})
	if !errors.Is(err, apperr.ErrInvalidCredentials) {
		t.Errorf("expected ErrInvalidCredentials for wrong password, got %v", err)
	}
	_, err = svc.Login(entities.LoginRequest{Email: "nobody@example.com", Password: testPassword})
	if !errors.Is(err, apperr.ErrInvalidCredentials) {
		t.Errorf("expected ErrInvalidCredentials for unknown email, got %v", err)
	}
}

func TestLogin_BannedAccount(t *testing.T) {
	store := memstore.New()
	svc := newAuthService(store)
	u := seedUser(t, store, "alice", db.RoleGuest)
	if err := store.Admin().SetUserStatus(u.ID, db.UserBanned); err != nil {
		t.Fatalf("banning: %v", err)
	}

	_, err := svc.Login(entities.LoginRequest{Email: u.Email, Password: testPassword})
	if !errors.Is(err, apperr.ErrAccountBanned) {
		t.Errorf("expected ErrAccountBanned, got %v", err)
	}
}

func TestAdminLogin_RejectsNonAdmins(t *testing.T) {
	store := memstore.New()
	svc := newAuthService(store)
	guest := seedUser(t, store, "alice", db.RoleGuest)
	admin := seedUser(t, store, "root", db.RoleAdmin)

	_, err := svc.AdminLogin(entities.LoginRequest{Email: guest.Email, Password: testPassword})
	if !errors.Is(err, apperr.ErrInvalidCredentials) {
		t.Errorf("expected ErrInvalidCredentials for a guest on the admin endpoint, got %v", err)
	}

	resp, err := svc.AdminLogin(entities.LoginRequest{Email: admin.Email, Password: testPassword})
	if err != nil {
		t.Fatalf("admin login: %v", err)
	}
	if resp.User.Role != db.RoleAdmin {
		t.Errorf("expected admin role, got %s", resp.User.Role)
	}
}
