package service

import (
	"fmt"
	"time"

	"jirao/internal/apperr"
	"jirao/internal/db"
	"jirao/internal/entities"
	"jirao/internal/observability/metrics"
	"jirao/internal/repository"
)

type ReportService struct {
	Reports repository.ReportRepository
	Users   repository.AuthRepository
	Spaces  repository.SpaceRepository
}

func NewReportService(reports repository.ReportRepository, users repository.AuthRepository, spaces repository.SpaceRepository) *ReportService {
	return &ReportService{Reports: reports, Users: users, Spaces: spaces}
}

// Create files an immutable report. Both parties' role, username and email are
// snapshotted now; later identity changes do not rewrite the audit record.
// When a listing is referenced its title is folded into the reason text.
func (s *ReportService) Create(reporterID int, req entities.ReportRequest) (*entities.ReportView, error) {
	if req.Reason == "" {
		return nil, apperr.Validation("reason", "must not be empty")
	}
	reporter, err := s.Users.GetUserByID(reporterID)
	if err != nil {
		return nil, err
	}
	reported, err := s.Users.GetUserByID(req.ReportedID)
	if err != nil {
		return nil, err
	}
	if reporter.ID == reported.ID {
		return nil, apperr.Validation("reported_id", "cannot report yourself")
	}

	reason := req.Reason
	if req.SpaceID != nil {
		if space, err := s.Spaces.GetByID(*req.SpaceID); err == nil {
			reason = fmt.Sprintf("%s (Listing: %s)", reason, space.Title)
		}
	}

	report := &db.Report{
		ReporterID:    reporter.ID,
		ReportedID:    reported.ID,
		ReporterRole:  reporter.Role,
		ReportedRole:  reported.Role,
		ReporterName:  reporter.Username,
		ReportedName:  reported.Username,
		ReporterEmail: reporter.Email,
		ReportedEmail: reported.Email,
		Reason:        reason,
		SpaceID:       req.SpaceID,
		CreatedAt:     time.Now().UTC(),
	}
	created, err := s.Reports.Create(report)
	if err != nil {
		return nil, err
	}
	metrics.ObserveReportCreated()
	view := entities.NewReportView(created)
	return &view, nil
}

func (s *ReportService) List() ([]entities.ReportView, error) {
	reports, err := s.Reports.List()
	if err != nil {
		return nil, err
	}
	views := make([]entities.ReportView, 0, len(reports))
	for idx := range reports {
		views = append(views, entities.NewReportView(&reports[idx]))
	}
	return views, nil
}

// UsersForReporting lists the active users the caller may report: the target
// role, excluding the caller themselves.
func (s *ReportService) UsersForReporting(currentUserID int, targetRole string) ([]entities.UserView, error) {
	role := db.Role(targetRole)
	if role != db.RoleGuest && role != db.RoleHost {
		return nil, apperr.Validation("target_role", "must be guest or host")
	}
	users, err := s.Reports.ListUsersForReporting(currentUserID, role)
	if err != nil {
		return nil, err
	}
	views := make([]entities.UserView, 0, len(users))
	for idx := range users {
		views = append(views, entities.NewUserView(&users[idx]))
	}
	return views, nil
}
