// Package memstore implements every repository interface over in-process
// slices guarded by a single mutex. One lock covers all collections, so
// compound operations such as the user-delete cascade and the approve-host
// swap are atomic without coordination between stores. It backs the server
// when no DATABASE_URL is configured and the whole test suite.
package memstore

import (
	"sync"

	"jirao/internal/db"
	"jirao/internal/repository"
)

type Store struct {
	mu sync.Mutex

	users        []db.User
	spaces       []db.Space
	interests    []db.Interest
	reports      []db.Report
	pendingHosts []db.PendingHost

	nextUserID        int
	nextSpaceID       int
	nextInterestID    int
	nextReportID      int
	nextPendingHostID int
}

func New() *Store {
	return &Store{
		nextUserID:        1,
		nextSpaceID:       1,
		nextInterestID:    1,
		nextReportID:      1,
		nextPendingHostID: 1,
	}
}

// Per-area facades. All share the store's mutex.

func (s *Store) Auth() repository.AuthRepository          { return authStore{s} }
func (s *Store) Spaces() repository.SpaceRepository       { return spaceStore{s} }
func (s *Store) Interests() repository.InterestRepository { return interestStore{s} }
func (s *Store) Reports() repository.ReportRepository     { return reportStore{s} }
func (s *Store) Admin() repository.AdminRepository        { return adminStore{s} }

// The lookup helpers below assume the caller holds s.mu.

func (s *Store) findUser(id int) *db.User {
	for idx := range s.users {
		if s.users[idx].ID == id {
			return &s.users[idx]
		}
	}
	return nil
}

func (s *Store) findSpace(id int) *db.Space {
	for idx := range s.spaces {
		if s.spaces[idx].ID == id {
			return &s.spaces[idx]
		}
	}
	return nil
}

func (s *Store) findInterest(id int) *db.Interest {
	for idx := range s.interests {
		if s.interests[idx].ID == id {
			return &s.interests[idx]
		}
	}
	return nil
}

func (s *Store) identityTaken(username, email string) bool {
	for idx := range s.users {
		if s.users[idx].Username == username || s.users[idx].Email == email {
			return true
		}
	}
	for idx := range s.pendingHosts {
		if s.pendingHosts[idx].Username == username || s.pendingHosts[idx].Email == email {
			return true
		}
	}
	return false
}

func cloneUser(u *db.User) *db.User {
	copied := *u
	return &copied
}

func cloneSpace(sp *db.Space) *db.Space {
	copied := *sp
	if sp.Dimensions != nil {
		dims := *sp.Dimensions
		copied.Dimensions = &dims
	}
	return &copied
}

func cloneInterest(i *db.Interest) *db.Interest {
	copied := *i
	if i.HoursRequested != nil {
		hours := *i.HoursRequested
		copied.HoursRequested = &hours
	}
	if i.RespondedAt != nil {
		responded := *i.RespondedAt
		copied.RespondedAt = &responded
	}
	return &copied
}

func cloneReport(r *db.Report) db.Report {
	copied := *r
	if r.SpaceID != nil {
		spaceID := *r.SpaceID
		copied.SpaceID = &spaceID
	}
	return copied
}
