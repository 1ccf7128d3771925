package memstore

import (
	"jirao/internal/apperr"
	"jirao/internal/db"
)

type authStore struct {
	s *Store
}

func (a authStore) CreateUser(u *db.User) error {
	a.s.mu.Lock()
	defer a.s.mu.Unlock()

	if a.s.identityTaken(u.Username, u.Email) {
		return apperr.ErrDuplicateIdentity
	}
	u.ID = a.s.nextUserID
	a.s.nextUserID++
	a.s.users = append(a.s.users, *u)
	return nil
}

func (a authStore) GetUserByID(id int) (*db.User, error) {
	a.s.mu.Lock()
	defer a.s.mu.Unlock()

	u := a.s.findUser(id)
	if u == nil {
		return nil, apperr.NotFound("user", id)
	}
	return cloneUser(u), nil
}

func (a authStore) GetUserByEmail(email string) (*db.User, error) {
	a.s.mu.Lock()
	defer a.s.mu.Unlock()

	for idx := range a.s.users {
		if a.s.users[idx].Email == email {
			return cloneUser(&a.s.users[idx]), nil
		}
	}
	return nil, apperr.NotFound("user", 0)
}

func (a authStore) CreatePendingHost(p *db.PendingHost) error {
	a.s.mu.Lock()
	defer a.s.mu.Unlock()

	if a.s.identityTaken(p.Username, p.Email) {
		return apperr.ErrDuplicateIdentity
	}
	p.ID = a.s.nextPendingHostID
	a.s.nextPendingHostID++
	a.s.pendingHosts = append(a.s.pendingHosts, *p)
	return nil
}
