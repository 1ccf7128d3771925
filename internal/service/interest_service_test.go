package service

import (
	"errors"
	"testing"

	"jirao/internal/apperr"
	"jirao/internal/db"
	"jirao/internal/entities"
	"jirao/internal/memstore"
)

func newInterestService(store *memstore.Store) *InterestService {
	return NewInterestService(store.Interests(), store.Spaces(), store.Auth(), NopNotifier{})
}

func TestExpress_RecordsPendingInterest(t *testing.T) {
	store := memstore.New()
	svc := newInterestService(store)
	guest := seedUser(t, store, "guest", db.RoleGuest)
	host := seedUser(t, store, "host", db.RoleHost)
	space := seedSpace(t, store, host.ID, "Room A")

	hours := 3
	view, err := svc.Express(guest.ID, entities.InterestRequest{SpaceID: space.ID, HoursRequested: &hours})
	if err != nil {
		t.Fatalf("expressing interest: %v", err)
	}
	if view.Status != db.InterestPending {
		t.Errorf("expected pending status, got %s", view.Status)
	}
	if view.HoursRequested == nil || *view.HoursRequested != 3 {
		t.Errorf("expected 3 hours requested, got %v", view.HoursRequested)
	}
	if view.SpaceTitle != "Room A" || view.UserName != "guest" {
		t.Errorf("expected joined view fields, got %+v", view)
	}
}

func TestExpress_Validation(t *testing.T) {
	store := memstore.New()
	svc := newInterestService(store)
	guest := seedUser(t, store, "guest", db.RoleGuest)
	host := seedUser(t, store, "host", db.RoleHost)
	space := seedSpace(t, store, host.ID, "Room A")

	zero := 0
	_, err := svc.Express(guest.ID, entities.InterestRequest{SpaceID: space.ID, HoursRequested: &zero})
	var ve *apperr.ValidationError
	if !errors.As(err, &ve) || ve.Field != "hours_requested" {
		t.Errorf("expected hours_requested ValidationError, got %v", err)
	}

	_, err = svc.Express(guest.ID, entities.InterestRequest{SpaceID: 999})
	var nf *apperr.NotFoundError
	if !errors.As(err, &nf) {
		t.Errorf("expected NotFoundError for unknown space, got %v", err)
	}
}

func TestExpress_SucceedsWhenOwnerLookupFails(t *testing.T) {
	store := memstore.New()
	svc := newInterestService(store)
	guest := seedUser(t, store, "guest", db.RoleGuest)

	// A listing whose owner record is gone: the interest is still recorded,
	// only the owner notification is skipped.
	orphan := &db.Space{
		OwnerID:      999,
		Kind:         db.KindRoom,
		Title:        "Orphaned room",
		Location:     "Downtown",
		RatePerHour:  10,
		Description:  "a room",
		Availability: db.Available,
	}
	if _, err := store.Spaces().Create(orphan); err != nil {
		t.Fatalf("seeding space: %v", err)
	}

	view, err := svc.Express(guest.ID, entities.InterestRequest{SpaceID: orphan.ID})
	if err != nil {
		t.Fatalf("expressing interest: %v", err)
	}
	if view.Status != db.InterestPending {
		t.Errorf("expected pending status, got %s", view.Status)
	}
}

func TestExpress_DuplicatePair(t *testing.T) {
	store := memstore.New()
	svc := newInterestService(store)
	guest := seedUser(t, store, "guest", db.RoleGuest)
	host := seedUser(t, store, "host", db.RoleHost)
	space := seedSpace(t, store, host.ID, "Room A")

	if _, err := svc.Express(guest.ID, entities.InterestRequest{SpaceID: space.ID}); err != nil {
		t.Fatalf("first express: %v", err)
	}
	_, err := svc.Express(guest.ID, entities.InterestRequest{SpaceID: space.ID})
	if !errors.Is(err, apperr.ErrDuplicateInterest) {
		t.Errorf("expected ErrDuplicateInterest, got %v", err)
	}

	exists, err := svc.Check(space.ID, guest.ID)
	if err != nil {
		t.Fatalf("checking: %v", err)
	}
	if !exists {
		t.Error("expected check to report the existing interest")
	}
}

func TestRespond_OwnerOnlyAndSingleShot(t *testing.T) {
	store := memstore.New()
	svc := newInterestService(store)
	guest := seedUser(t, store, "guest", db.RoleGuest)
	host := seedUser(t, store, "host", db.RoleHost)
	intruder := seedUser(t, store, "intruder", db.RoleHost)
	space := seedSpace(t, store, host.ID, "Room A")

	view, err := svc.Express(guest.ID, entities.InterestRequest{SpaceID: space.ID})
	if err != nil {
		t.Fatalf("expressing: %v", err)
	}

	if _, err := svc.Respond(view.ID, host.ID, "maybe"); err == nil {
		t.Error("expected error for unknown decision")
	}
	if _, err := svc.Respond(view.ID, intruder.ID, "accepted"); !errors.Is(err, apperr.ErrForbidden) {
		t.Errorf("expected ErrForbidden for non-owner, got %v", err)
	}

	responded, err := svc.Respond(view.ID, host.ID, "accepted")
	if err != nil {
		t.Fatalf("responding: %v", err)
	}
	if responded.Status != db.InterestAccepted || responded.RespondedAt == nil {
		t.Errorf("expected accepted with response date, got %+v", responded)
	}

	_, err = svc.Respond(view.ID, host.ID, "rejected")
	var it *apperr.InvalidTransitionError
	if !errors.As(err, &it) {
		t.Errorf("expected InvalidTransitionError on second response, got %v", err)
	}
}

func TestCancel_RequesterOnlyWhilePending(t *testing.T) {
	store := memstore.New()
	svc := newInterestService(store)
	guest := seedUser(t, store, "guest", db.RoleGuest)
	other := seedUser(t, store, "other", db.RoleGuest)
	host := seedUser(t, store, "host", db.RoleHost)
	space := seedSpace(t, store, host.ID, "Room A")

	view, err := svc.Express(guest.ID, entities.InterestRequest{SpaceID: space.ID})
	if err != nil {
		t.Fatalf("expressing: %v", err)
	}

	if err := svc.Cancel(view.ID, other.ID); !errors.Is(err, apperr.ErrForbidden) {
		t.Errorf("expected ErrForbidden, got %v", err)
	}
	if err := svc.Cancel(view.ID, guest.ID); err != nil {
		t.Fatalf("cancelling: %v", err)
	}
	if err := svc.Cancel(view.ID, guest.ID); err == nil {
		t.Error("expected NotFound for already-cancelled interest")
	}
}

func TestListForUser_SelfOrAdmin(t *testing.T) {
	store := memstore.New()
	svc := newInterestService(store)
	guest := seedUser(t, store, "guest", db.RoleGuest)
	other := seedUser(t, store, "other", db.RoleGuest)
	host := seedUser(t, store, "host", db.RoleHost)
	admin := seedUser(t, store, "root", db.RoleAdmin)
	space := seedSpace(t, store, host.ID, "Room A")

	if _, err := svc.Express(guest.ID, entities.InterestRequest{SpaceID: space.ID}); err != nil {
		t.Fatalf("expressing: %v", err)
	}

	if _, err := svc.ListForUser(guest.ID, other.ID, db.RoleGuest); !errors.Is(err, apperr.ErrForbidden) {
		t.Errorf("expected ErrForbidden for another guest, got %v", err)
	}
	views, err := svc.ListForUser(guest.ID, admin.ID, db.RoleAdmin)
	if err != nil {
		t.Fatalf("admin listing: %v", err)
	}
	if len(views) != 1 {
		t.Errorf("expected 1 interest, got %d", len(views))
	}
	if views, _ := svc.ListForUser(guest.ID, guest.ID, db.RoleGuest); len(views) != 1 {
		t.Error("expected the guest to see their own ledger")
	}
}

func TestListForSpace_OwnerOrAdmin(t *testing.T) {
	store := memstore.New()
	svc := newInterestService(store)
	guest := seedUser(t, store, "guest", db.RoleGuest)
	host := seedUser(t, store, "host", db.RoleHost)
	other := seedUser(t, store, "other", db.RoleHost)
	space := seedSpace(t, store, host.ID, "Room A")

	if _, err := svc.Express(guest.ID, entities.InterestRequest{SpaceID: space.ID}); err != nil {
		t.Fatalf("expressing: %v", err)
	}

	if _, err := svc.ListForSpace(space.ID, other.ID, db.RoleHost); !errors.Is(err, apperr.ErrForbidden) {
		t.Errorf("expected ErrForbidden for non-owner, got %v", err)
	}
	views, err := svc.ListForSpace(space.ID, host.ID, db.RoleHost)
	if err != nil {
		t.Fatalf("owner listing: %v", err)
	}
	if len(views) != 1 {
		t.Errorf("expected 1 interest, got %d", len(views))
	}
}
