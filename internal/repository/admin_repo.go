package repository

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"

	"jirao/internal/apperr"
	"jirao/internal/db"
)

type AdminRepo struct {
	DB *sql.DB
}

func NewAdminRepo(database *sql.DB) *AdminRepo {
	return &AdminRepo{DB: database}
}

func (r *AdminRepo) ListUsers(roleFilter db.Role) ([]db.User, error) {
	query := selectUser + ` WHERE role != $1`
	args := []interface{}{db.RoleAdmin}
	if roleFilter != "" {
		query += ` AND role = $2`
		args = append(args, roleFilter)
	}
	query += ` ORDER BY id`

	rows, err := r.DB.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("error querying users: %w", err)
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

func (r *AdminRepo) SetUserStatus(id int, status db.UserStatus) error {
	result, err := r.DB.Exec(`UPDATE users SET status = $2 WHERE id = $1`, id, status)
	if err != nil {
		return fmt.Errorf("error updating user status: %w", err)
	}
	if affected, _ := result.RowsAffected(); affected == 0 {
		return apperr.NotFound("user", id)
	}
	return nil
}

// DeleteUser runs the whole cascade inside one transaction so a partially
// deleted user is never observable.
func (r *AdminRepo) DeleteUser(id int) error {
	tx, err := r.DB.Begin()
	if err != nil {
		return fmt.Errorf("error starting transaction: %w", err)
	}
	defer tx.Rollback()

	rows, err := tx.Query(`SELECT id FROM spaces WHERE owner_id = $1`, id)
	if err != nil {
		return fmt.Errorf("error querying owned spaces: %w", err)
	}
	var spaceIDs []int
	for rows.Next() {
		var spaceID int
		if err := rows.Scan(&spaceID); err != nil {
			rows.Close()
			return fmt.Errorf("error scanning space ID: %w", err)
		}
		spaceIDs = append(spaceIDs, spaceID)
	}
	rows.Close()
	if err = rows.Err(); err != nil {
		return fmt.Errorf("error after iterating space rows: %w", err)
	}

	if _, err = tx.Exec(`DELETE FROM interests WHERE user_id = $1 OR space_id = ANY($2)`, id, pq.Array(spaceIDs)); err != nil {
		return fmt.Errorf("error deleting interests: %w", err)
	}
	if _, err = tx.Exec(`DELETE FROM spaces WHERE owner_id = $1`, id); err != nil {
		return fmt.Errorf("error deleting spaces: %w", err)
	}
	if _, err = tx.Exec(`DELETE FROM reports WHERE reporter_id = $1 OR reported_id = $1`, id); err != nil {
		return fmt.Errorf("error deleting reports: %w", err)
	}
	result, err := tx.Exec(`DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting user: %w", err)
	}
	if affected, _ := result.RowsAffected(); affected == 0 {
		return apperr.NotFound("user", id)
	}
	return tx.Commit()
}

func (r *AdminRepo) ListPendingHosts() ([]db.PendingHost, error) {
	query := `
		SELECT id, username, email, password_hash, phone, nid_image, applied_at
		FROM pending_hosts ORDER BY id`
	rows, err := r.DB.Query(query)
	if err != nil {
		return nil, fmt.Errorf("error querying pending hosts: %w", err)
	}
	defer rows.Close()

	hosts := []db.PendingHost{}
	for rows.Next() {
		var p db.PendingHost
		if err := rows.Scan(&p.ID, &p.Username, &p.Email, &p.PasswordHash, &p.Phone, &p.NIDImage, &p.AppliedAt); err != nil {
			return nil, fmt.Errorf("error scanning pending host row: %w", err)
		}
		hosts = append(hosts, p)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error after iterating pending host rows: %w", err)
	}
	return hosts, nil
}

func (r *AdminRepo) ApproveHost(id int) (*db.User, error) {
	tx, err := r.DB.Begin()
	if err != nil {
		return nil, fmt.Errorf("error starting transaction: %w", err)
	}
	defer tx.Rollback()

	var p db.PendingHost
	query := `
		SELECT id, username, email, password_hash, phone, nid_image, applied_at
		FROM pending_hosts WHERE id = $1 FOR UPDATE`
	err = tx.QueryRow(query, id).Scan(&p.ID, &p.Username, &p.Email, &p.PasswordHash, &p.Phone, &p.NIDImage, &p.AppliedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperr.NotFound("pending host", id)
		}
		return nil, fmt.Errorf("error querying pending host: %w", err)
	}

	u := db.User{
		Username:     p.Username,
		Email:        p.Email,
		PasswordHash: p.PasswordHash,
		Phone:        p.Phone,
		Role:         db.RoleHost,
		Status:       db.UserActive,
		NIDImage:     p.NIDImage,
		DateJoined:   time.Now().UTC(),
	}
	insert := `
		INSERT INTO users (username, email, password_hash, phone, role, status, nid_image, date_joined)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id`
	err = tx.QueryRow(insert, u.Username, u.Email, u.PasswordHash, u.Phone, u.Role, u.Status, u.NIDImage, u.DateJoined).Scan(&u.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, apperr.ErrDuplicateIdentity
		}
		return nil, fmt.Errorf("error inserting approved host: %w", err)
	}

	if _, err = tx.Exec(`DELETE FROM pending_hosts WHERE id = $1`, id); err != nil {
		return nil, fmt.Errorf("error deleting pending host: %w", err)
	}
	if err = tx.Commit(); err != nil {
		return nil, fmt.Errorf("error committing host approval: %w", err)
	}
	return &u, nil
}

func (r *AdminRepo) RejectHost(id int) (*db.PendingHost, error) {
	var p db.PendingHost
	query := `
		DELETE FROM pending_hosts WHERE id = $1
		RETURNING id, username, email, password_hash, phone, nid_image, applied_at`
	err := r.DB.QueryRow(query, id).Scan(&p.ID, &p.Username, &p.Email, &p.PasswordHash, &p.Phone, &p.NIDImage, &p.AppliedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperr.NotFound("pending host", id)
		}
		return nil, fmt.Errorf("error rejecting pending host: %w", err)
	}
	return &p, nil
}

func (r *AdminRepo) PurgePendingHostsBefore(cutoff time.Time) (int64, error) {
	result, err := r.DB.Exec(`DELETE FROM pending_hosts WHERE applied_at < $1`, cutoff)
	if err != nil {
		return 0, fmt.Errorf("error purging pending hosts: %w", err)
	}
	purged, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("error counting purged pending hosts: %w", err)
	}
	return purged, nil
}
