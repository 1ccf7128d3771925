package memstore

import (
	"jirao/internal/db"
)

type reportStore struct {
	s *Store
}

func (r reportStore) Create(rep *db.Report) (*db.Report, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	rep.ID = r.s.nextReportID
	r.s.nextReportID++
	r.s.reports = append(r.s.reports, cloneReport(rep))
	return rep, nil
}

func (r reportStore) List() ([]db.Report, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	reports := make([]db.Report, 0, len(r.s.reports))
	for idx := range r.s.reports {
		reports = append(reports, cloneReport(&r.s.reports[idx]))
	}
	return reports, nil
}

func (r reportStore) ListUsersForReporting(currentUserID int, targetRole db.Role) ([]db.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	users := []db.User{}
	for idx := range r.s.users {
		u := &r.s.users[idx]
		if u.Role == targetRole && u.Status == db.UserActive && u.ID != currentUserID {
			users = append(users, *cloneUser(u))
		}
	}
	return users, nil
}
