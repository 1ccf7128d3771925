package repository

import (
	"database/sql"
	"fmt"

	"jirao/internal/db"
)

type ReportRepo struct {
	DB *sql.DB
}

func NewReportRepo(database *sql.DB) *ReportRepo {
	return &ReportRepo{DB: database}
}

func (r *ReportRepo) Create(rep *db.Report) (*db.Report, error) {
	query := `
		INSERT INTO reports
		(reporter_id, reported_id, reporter_role, reported_role, reporter_name, reported_name,
		 reporter_email, reported_email, reason, space_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id`
	var spaceID sql.NullInt64
	if rep.SpaceID != nil {
		spaceID = sql.NullInt64{Int64: int64(*rep.SpaceID), Valid: true}
	}
	err := r.DB.QueryRow(query,
		rep.ReporterID, rep.ReportedID, rep.ReporterRole, rep.ReportedRole,
		rep.ReporterName, rep.ReportedName, rep.ReporterEmail, rep.ReportedEmail,
		rep.Reason, spaceID, rep.CreatedAt,
	).Scan(&rep.ID)
	if err != nil {
		return nil, fmt.Errorf("error inserting report: %w", err)
	}
	return rep, nil
}

func (r *ReportRepo) List() ([]db.Report, error) {
	query := `
		SELECT id, reporter_id, reported_id, reporter_role, reported_role, reporter_name,
		       reported_name, reporter_email, reported_email, reason, space_id, created_at
		FROM reports ORDER BY id`
	rows, err := r.DB.Query(query)
	if err != nil {
		return nil, fmt.Errorf("error querying reports: %w", err)
	}
	defer rows.Close()

	reports := []db.Report{}
	for rows.Next() {
		var rep db.Report
		var spaceID sql.NullInt64
		err := rows.Scan(
			&rep.ID, &rep.ReporterID, &rep.ReportedID, &rep.ReporterRole, &rep.ReportedRole,
			&rep.ReporterName, &rep.ReportedName, &rep.ReporterEmail, &rep.ReportedEmail,
			&rep.Reason, &spaceID, &rep.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("error scanning report row: %w", err)
		}
		if spaceID.Valid {
			id := int(spaceID.Int64)
			rep.SpaceID = &id
		}
		reports = append(reports, rep)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error after iterating report rows: %w", err)
	}
	return reports, nil
}

func (r *ReportRepo) ListUsersForReporting(currentUserID int, targetRole db.Role) ([]db.User, error) {
	query := selectUser + ` WHERE role = $1 AND status = $2 AND id != $3 ORDER BY id`
	rows, err := r.DB.Query(query, targetRole, db.UserActive, currentUserID)
	if err != nil {
		return nil, fmt.Errorf("error querying reportable users: %w", err)
	}
	defer rows.Close()

	users := []db.User{}
	for rows.Next() {
		var u db.User
		err := rows.Scan(&u.ID, &u.Username, &u.Email, &u.PasswordHash, &u.Phone, &u.Role, &u.Status, &u.NIDImage, &u.DateJoined)
		if err != nil {
			return nil, fmt.Errorf("error scanning user row: %w", err)
		}
		users = append(users, u)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error after iterating user rows: %w", err)
	}
	return users, nil
}
