package service

import (
	"testing"
	"time"

	"jirao/internal/db"
	"jirao/internal/memstore"
)

func TestPurgeStalePendingHosts(t *testing.T) {
	store := memstore.New()
	stale := &db.PendingHost{Username: "stale", Email: "stale@example.com", AppliedAt: time.Now().UTC().Add(-40 * 24 * time.Hour)}
	fresh := &db.PendingHost{Username: "fresh", Email: "fresh@example.com", AppliedAt: time.Now().UTC()}
	if err := store.Auth().CreatePendingHost(stale); err != nil {
		t.Fatalf("creating application: %v", err)
	}
	if err := store.Auth().CreatePendingHost(fresh); err != nil {
		t.Fatalf("creating application: %v", err)
	}

	janitor := NewJanitorService(store.Admin(), 30*24*time.Hour)
	if err := janitor.PurgeStalePendingHosts(); err != nil {
		t.Fatalf("purging: %v", err)
	}

	hosts, err := store.Admin().ListPendingHosts()
	if err != nil {
		t.Fatalf("listing: %v", err)
	}
	if len(hosts) != 1 || hosts[0].Username != "fresh" {
		t.Errorf("expected only the fresh application to survive, got %+v", hosts)
	}
}
