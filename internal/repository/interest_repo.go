package repository

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"jirao/internal/apperr"
	"jirao/internal/db"
	"jirao/internal/entities"
)

type InterestRepo struct {
	DB *sql.DB
}

func NewInterestRepo(database *sql.DB) *InterestRepo {
	return &InterestRepo{DB: database}
}

const selectInterestView = `
	SELECT i.id, i.user_id, i.space_id, i.hours_requested, i.status, i.created_at, i.responded_at,
	       u.username, u.email, s.title, s.location, s.rate_per_hour
	FROM interests i
	JOIN users u ON u.id = i.user_id
	JOIN spaces s ON s.id = i.space_id`

func (r *InterestRepo) Create(i *db.Interest) (*entities.InterestView, error) {
	query := `
		INSERT INTO interests (user_id, space_id, hours_requested, status, created_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`
	err := r.DB.QueryRow(query,
		i.UserID, i.SpaceID, hoursColumn(i.HoursRequested), i.Status, i.CreatedAt,
	).Scan(&i.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, apperr.ErrDuplicateInterest
		}
		return nil, fmt.Errorf("error inserting interest: %w", err)
	}
	return r.getView(i.ID)
}

func (r *InterestRepo) GetByID(id int) (*db.Interest, error) {
	var i db.Interest
	var hours sql.NullInt64
	var responded sql.NullTime
	query := `
		SELECT id, user_id, space_id, hours_requested, status, created_at, responded_at
		FROM interests WHERE id = $1`
	err := r.DB.QueryRow(query, id).Scan(
		&i.ID, &i.UserID, &i.SpaceID, &hours, &i.Status, &i.CreatedAt, &responded,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperr.NotFound("interest", id)
		}
		return nil, fmt.Errorf("error querying interest: %w", err)
	}
	if hours.Valid {
		h := int(hours.Int64)
		i.HoursRequested = &h
	}
	if responded.Valid {
		t := responded.Time
		i.RespondedAt = &t
	}
	return &i, nil
}

func (r *InterestRepo) Respond(id int, status db.InterestStatus) (*entities.InterestView, error) {
	query := `
		UPDATE interests SET status = $2, responded_at = $3
		WHERE id = $1 AND status = $4`
	result, err := r.DB.Exec(query, id, status, time.Now().UTC(), db.InterestPending)
	if err != nil {
		return nil, fmt.Errorf("error responding to interest: %w", err)
	}
	if affected, _ := result.RowsAffected(); affected == 0 {
		// Distinguish a missing record from an already-answered one.
		current, err := r.GetByID(id)
		if err != nil {
			return nil, err
		}
		return nil, apperr.InvalidTransition(string(current.Status), string(status))
	}
	return r.getView(id)
}

func (r *InterestRepo) Cancel(id, byUserID int) error {
	query := `DELETE FROM interests WHERE id = $1 AND user_id = $2 AND status = $3`
	result, err := r.DB.Exec(query, id, byUserID, db.InterestPending)
	if err != nil {
		return fmt.Errorf("error cancelling interest: %w", err)
	}
	if affected, _ := result.RowsAffected(); affected == 0 {
		current, err := r.GetByID(id)
		if err != nil {
			return err
		}
		if current.UserID != byUserID {
			return apperr.ErrForbidden
		}
		return apperr.InvalidTransition(string(current.Status), "cancelled")
	}
	return nil
}

func (r *InterestRepo) Exists(spaceID, userID int) (bool, error) {
	var exists bool
	query := `SELECT EXISTS (SELECT 1 FROM interests WHERE space_id = $1 AND user_id = $2)`
	if err := r.DB.QueryRow(query, spaceID, userID).Scan(&exists); err != nil {
		return false, fmt.Errorf("error checking interest existence: %w", err)
	}
	return exists, nil
}

func (r *InterestRepo) ListForUser(userID int) ([]entities.InterestView, error) {
	return r.listViews(selectInterestView+` WHERE i.user_id = $1 ORDER BY i.id`, userID)
}

func (r *InterestRepo) ListForSpace(spaceID int) ([]entities.InterestView, error) {
	return r.listViews(selectInterestView+` WHERE i.space_id = $1 ORDER BY i.id`, spaceID)
}

func (r *InterestRepo) getView(id int) (*entities.InterestView, error) {
	row := r.DB.QueryRow(selectInterestView+` WHERE i.id = $1`, id)
	view, err := scanInterestView(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperr.NotFound("interest", id)
		}
		return nil, fmt.Errorf("error scanning interest view: %w", err)
	}
	return view, nil
}

func (r *InterestRepo) listViews(query string, args ...interface{}) ([]entities.InterestView, error) {
	rows, err := r.DB.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("error querying interests: %w", err)
	}
	defer rows.Close()

	views := []entities.InterestView{}
	for rows.Next() {
		view, err := scanInterestView(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("error scanning interest row: %w", err)
		}
		views = append(views, *view)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error after iterating interest rows: %w", err)
	}
	return views, nil
}

func scanInterestView(scan func(...interface{}) error) (*entities.InterestView, error) {
	var v entities.InterestView
	var hours sql.NullInt64
	var responded sql.NullTime
	err := scan(
		&v.ID, &v.UserID, &v.SpaceID, &hours, &v.Status, &v.CreatedAt, &responded,
		&v.UserName, &v.UserEmail, &v.SpaceTitle, &v.SpaceLocation, &v.SpaceRate,
	)
	if err != nil {
		return nil, err
	}
	if hours.Valid {
		h := int(hours.Int64)
		v.HoursRequested = &h
	}
	if responded.Valid {
		t := responded.Time
		v.RespondedAt = &t
	}
	return &v, nil
}

func hoursColumn(hours *int) sql.NullInt64 {
	if hours == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: int64(*hours), Valid: true}
}
