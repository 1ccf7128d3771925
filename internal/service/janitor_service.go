package service

import (
	"fmt"
	"log"
	"time"

	"jirao/internal/repository"
)

// JanitorService holds the scheduled maintenance run over the moderation
// queue.
type JanitorService struct {
	Repo   repository.AdminRepository
	maxAge time.Duration
}

func NewJanitorService(repo repository.AdminRepository, maxAge time.Duration) *JanitorService {
	return &JanitorService{Repo: repo, maxAge: maxAge}
}

// PurgeStalePendingHosts drops host applications nobody resolved within the
// configured window.
func (s *JanitorService) PurgeStalePendingHosts() error {
	log.Println("Cron Job: checking for stale pending host applications...")

	cutoff := time.Now().UTC().Add(-s.maxAge)
	purged, err := s.Repo.PurgePendingHostsBefore(cutoff)
	if err != nil {
		return fmt.Errorf("cron job: failed to purge pending host applications: %w", err)
	}
	if purged == 0 {
		log.Println("Cron Job: no stale pending host applications found.")
		return nil
	}
	log.Printf("Cron Job: purged %d pending host applications older than %s.", purged, s.maxAge)
	return nil
}
