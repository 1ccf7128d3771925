package service

import (
	"jirao/internal/db"
	"jirao/internal/entities"
	"jirao/internal/observability/metrics"
	"jirao/internal/repository"
)

type AdminService struct {
	Repo     repository.AdminRepository
	notifier Notifier
}

func NewAdminService(repo repository.AdminRepository, notifier Notifier) *AdminService {
	return &AdminService{Repo: repo, notifier: notifier}
}

func (s *AdminService) ListUsers(roleFilter string) ([]entities.UserView, error) {
	users, err := s.Repo.ListUsers(db.Role(roleFilter))
	if err != nil {
		return nil, err
	}
	views := make([]entities.UserView, 0, len(users))
	for idx := range users {
		views = append(views, entities.NewUserView(&users[idx]))
	}
	return views, nil
}

// BanUser keeps the record readable for report display; it only blocks the
// next login.
func (s *AdminService) BanUser(id int) error {
	if err := s.Repo.SetUserStatus(id, db.UserBanned); err != nil {
		return err
	}
	metrics.ObserveModerationAction("ban")
	return nil
}

func (s *AdminService) UnbanUser(id int) error {
	if err := s.Repo.SetUserStatus(id, db.UserActive); err != nil {
		return err
	}
	metrics.ObserveModerationAction("unban")
	return nil
}

// DeleteUser runs the atomic cascade: user, owned spaces, interests touching
// either, and reports naming them.
func (s *AdminService) DeleteUser(id int) error {
	if err := s.Repo.DeleteUser(id); err != nil {
		return err
	}
	metrics.ObserveModerationAction("delete")
	return nil
}

func (s *AdminService) ListPendingHosts() ([]entities.PendingHostView, error) {
	hosts, err := s.Repo.ListPendingHosts()
	if err != nil {
		return nil, err
	}
	views := make([]entities.PendingHostView, 0, len(hosts))
	for idx := range hosts {
		views = append(views, entities.NewPendingHostView(&hosts[idx]))
	}
	return views, nil
}

func (s *AdminService) ApproveHost(id int) (*entities.UserView, error) {
	u, err := s.Repo.ApproveHost(id)
	if err != nil {
		return nil, err
	}
	metrics.ObserveModerationAction("approve_host")
	go s.notifier.HostApplicationResolved(u.Email, u.Username, true)
	view := entities.NewUserView(u)
	return &view, nil
}

func (s *AdminService) RejectHost(id int) error {
	p, err := s.Repo.RejectHost(id)
	if err != nil {
		return err
	}
	metrics.ObserveModerationAction("reject_host")
	go s.notifier.HostApplicationResolved(p.Email, p.Username, false)
	return nil
}
