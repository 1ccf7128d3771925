package service

import (
	"errors"
	"strings"
	"testing"

	"jirao/internal/apperr"
	"jirao/internal/db"
	"jirao/internal/entities"
	"jirao/internal/memstore"
)

func newReportService(store *memstore.Store) *ReportService {
	return NewReportService(store.Reports(), store.Auth(), store.Spaces())
}

func TestReportCreate_SnapshotsBothParties(t *testing.T) {
	store := memstore.New()
	svc := newReportService(store)
	guest := seedUser(t, store, "guest", db.RoleGuest)
	host := seedUser(t, store, "host", db.RoleHost)

	view, err := svc.Create(guest.ID, entities.ReportRequest{ReportedID: host.ID, Reason: "no-show"})
	if err != nil {
		t.Fatalf("creating report: %v", err)
	}
	if view.ReporterName != "guest" || view.ReportedName != "host" {
		t.Errorf("expected snapshotted names, got %q / %q", view.ReporterName, view.ReportedName)
	}
	if view.ReporterRole != db.RoleGuest || view.ReportedRole != db.RoleHost {
		t.Errorf("expected snapshotted roles, got %s / %s", view.ReporterRole, view.ReportedRole)
	}
	if view.ReportedEmail != host.Email {
		t.Errorf("expected snapshotted email, got %q", view.ReportedEmail)
	}
}

func TestReportCreate_AppendsListingTitleToReason(t *testing.T) {
	store := memstore.New()
	svc := newReportService(store)
	guest := seedUser(t, store, "guest", db.RoleGuest)
	host := seedUser(t, store, "host", db.RoleHost)
	space := seedSpace(t, store, host.ID, "Sunny Loft")

	view, err := svc.Create(guest.ID, entities.ReportRequest{
		ReportedID: host.ID,
		Reason:     "misleading photos",
		SpaceID:    &space.ID,
	})
	if err != nil {
		t.Fatalf("creating report: %v", err)
	}
	if view.Reason != "misleading photos (Listing: Sunny Loft)" {
		t.Errorf("expected listing title folded into reason, got %q", view.Reason)
	}
}

func TestReportCreate_Rejections(t *testing.T) {
	store := memstore.New()
	svc := newReportService(store)
	guest := seedUser(t, store, "guest", db.RoleGuest)
	host := seedUser(t, store, "host", db.RoleHost)

	_, err := svc.Create(guest.ID, entities.ReportRequest{ReportedID: host.ID})
	var ve *apperr.ValidationError
	if !errors.As(err, &ve) || ve.Field != "reason" {
		t.Errorf("expected reason ValidationError, got %v", err)
	}

	_, err = svc.Create(guest.ID, entities.ReportRequest{ReportedID: guest.ID, Reason: "self"})
	if !errors.As(err, &ve) || ve.Field != "reported_id" {
		t.Errorf("expected self-report ValidationError, got %v", err)
	}

	_, err = svc.Create(guest.ID, entities.ReportRequest{ReportedID: 999, Reason: "ghost"})
	var nf *apperr.NotFoundError
	if !errors.As(err, &nf) {
		t.Errorf("expected NotFoundError for unknown target, got %v", err)
	}
}

func TestReportSurvivesUserDeletion(t *testing.T) {
	store := memstore.New()
	svc := newReportService(store)
	guest := seedUser(t, store, "guest", db.RoleGuest)
	hostA := seedUser(t, store, "hostA", db.RoleHost)
	hostB := seedUser(t, store, "hostB", db.RoleHost)

	if _, err := svc.Create(guest.ID, entities.ReportRequest{ReportedID: hostA.ID, Reason: "spam"}); err != nil {
		t.Fatalf("creating report: %v", err)
	}
	if _, err := svc.Create(hostB.ID, entities.ReportRequest{ReportedID: hostA.ID, Reason: "spam"}); err != nil {
		t.Fatalf("creating report: %v", err)
	}

	// Deleting hostB removes their report but keeps the guest's, and the kept
	// record still carries the snapshot even with hostB gone.
	if err := store.Admin().DeleteUser(hostB.ID); err != nil {
		t.Fatalf("deleting user: %v", err)
	}
	views, err := svc.List()
	if err != nil {
		t.Fatalf("listing reports: %v", err)
	}
	if len(views) != 1 {
		t.Fatalf("expected 1 surviving report, got %d", len(views))
	}
	if views[0].ReporterName != "guest" || !strings.Contains(views[0].Reason, "spam") {
		t.Errorf("unexpected surviving report: %+v", views[0])
	}
}

func TestUsersForReporting(t *testing.T) {
	store := memstore.New()
	svc := newReportService(store)
	guest := seedUser(t, store, "guest", db.RoleGuest)
	seedUser(t, store, "otherGuest", db.RoleGuest)
	host := seedUser(t, store, "host", db.RoleHost)
	banned := seedUser(t, store, "bannedHost", db.RoleHost)
	seedUser(t, store, "root", db.RoleAdmin)
	if err := store.Admin().SetUserStatus(banned.ID, db.UserBanned); err != nil {
		t.Fatalf("banning: %v", err)
	}

	if _, err := svc.UsersForReporting(guest.ID, "admin"); err == nil {
		t.Error("expected error for admin target role")
	}

	hosts, err := svc.UsersForReporting(guest.ID, "host")
	if err != nil {
		t.Fatalf("listing hosts: %v", err)
	}
	if len(hosts) != 1 || hosts[0].ID != host.ID {
		t.Errorf("expected only the active host, got %+v", hosts)
	}

	// The caller is excluded from their own role's list.
	guests, err := svc.UsersForReporting(guest.ID, "guest")
	if err != nil {
		t.Fatalf("listing guests: %v", err)
	}
	if len(guests) != 1 || guests[0].Username != "otherGuest" {
		t.Errorf("expected the caller to be excluded, got %+v", guests)
	}
}
