package memstore

import (
	"time"

	"jirao/internal/apperr"
	"jirao/internal/db"
)

type adminStore struct {
	s *Store
}

func (a adminStore) ListUsers(roleFilter db.Role) ([]db.User, error) {
	a.s.mu.Lock()
	defer a.s.mu.Unlock()

	users := []db.User{}
	for idx := range a.s.users {
		u := &a.s.users[idx]
		if u.Role == db.RoleAdmin {
			continue
		}
		if roleFilter != "" && u.Role != roleFilter {
			continue
		}
		users = append(users, *cloneUser(u))
	}
	return users, nil
}

func (a adminStore) SetUserStatus(id int, status db.UserStatus) error {
	a.s.mu.Lock()
	defer a.s.mu.Unlock()

	u := a.s.findUser(id)
	if u == nil {
		return apperr.NotFound("user", id)
	}
	u.Status = status
	return nil
}

// DeleteUser performs the full cascade under the store lock: the user, every
// space they own, every interest referencing the user directly or through an
// owned space, and every report naming them go in one step.
func (a adminStore) DeleteUser(id int) error {
	a.s.mu.Lock()
	defer a.s.mu.Unlock()

	if a.s.findUser(id) == nil {
		return apperr.NotFound("user", id)
	}

	ownedSpaces := map[int]bool{}
	for idx := range a.s.spaces {
		if a.s.spaces[idx].OwnerID == id {
			ownedSpaces[a.s.spaces[idx].ID] = true
		}
	}

	users := a.s.users[:0]
	for idx := range a.s.users {
		if a.s.users[idx].ID != id {
			users = append(users, a.s.users[idx])
		}
	}
	a.s.users = users

	spaces := a.s.spaces[:0]
	for idx := range a.s.spaces {
		if a.s.spaces[idx].OwnerID != id {
			spaces = append(spaces, a.s.spaces[idx])
		}
	}
	a.s.spaces = spaces

	interests := a.s.interests[:0]
	for idx := range a.s.interests {
		i := &a.s.interests[idx]
		if i.UserID != id && !ownedSpaces[i.SpaceID] {
			interests = append(interests, *i)
		}
	}
	a.s.interests = interests

	reports := a.s.reports[:0]
	for idx := range a.s.reports {
		r := &a.s.reports[idx]
		if r.ReporterID != id && r.ReportedID != id {
			reports = append(reports, *r)
		}
	}
	a.s.reports = reports

	return nil
}

func (a adminStore) ListPendingHosts() ([]db.PendingHost, error) {
	a.s.mu.Lock()
	defer a.s.mu.Unlock()

	hosts := make([]db.PendingHost, len(a.s.pendingHosts))
	copy(hosts, a.s.pendingHosts)
	return hosts, nil
}

func (a adminStore) ApproveHost(id int) (*db.User, error) {
	a.s.mu.Lock()
	defer a.s.mu.Unlock()

	for idx := range a.s.pendingHosts {
		if a.s.pendingHosts[idx].ID != id {
			continue
		}
		p := a.s.pendingHosts[idx]
		// The application may have been filed before a user took the same
		// identity through another path.
		for uidx := range a.s.users {
			if a.s.users[uidx].Username == p.Username || a.s.users[uidx].Email == p.Email {
				return nil, apperr.ErrDuplicateIdentity
			}
		}
		u := db.User{
			ID:           a.s.nextUserID,
			Username:     p.Username,
			Email:        p.Email,
			PasswordHash: p.PasswordHash,
			Phone:        p.Phone,
			Role:         db.RoleHost,
			Status:       db.UserActive,
			NIDImage:     p.NIDImage,
			DateJoined:   time.Now().UTC(),
		}
		a.s.nextUserID++
		a.s.users = append(a.s.users, u)
		a.s.pendingHosts = append(a.s.pendingHosts[:idx], a.s.pendingHosts[idx+1:]...)
		return cloneUser(&u), nil
	}
	return nil, apperr.NotFound("pending host", id)
}

func (a adminStore) RejectHost(id int) (*db.PendingHost, error) {
	a.s.mu.Lock()
	defer a.s.mu.Unlock()

	for idx := range a.s.pendingHosts {
		if a.s.pendingHosts[idx].ID == id {
			p := a.s.pendingHosts[idx]
			a.s.pendingHosts = append(a.s.pendingHosts[:idx], a.s.pendingHosts[idx+1:]...)
			return &p, nil
		}
	}
	return nil, apperr.NotFound("pending host", id)
}

func (a adminStore) PurgePendingHostsBefore(cutoff time.Time) (int64, error) {
	a.s.mu.Lock()
	defer a.s.mu.Unlock()

	var purged int64
	kept := a.s.pendingHosts[:0]
	for idx := range a.s.pendingHosts {
		if a.s.pendingHosts[idx].AppliedAt.Before(cutoff) {
			purged++
			continue
		}
		kept = append(kept, a.s.pendingHosts[idx])
	}
	a.s.pendingHosts = kept
	return purged, nil
}
