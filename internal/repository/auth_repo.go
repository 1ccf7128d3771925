package repository

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"jirao/internal/apperr"
	"jirao/internal/db"
)

const uniqueViolation = "23505"

type AuthRepo struct {
	DB *sql.DB
}

func NewAuthRepo(database *sql.DB) *AuthRepo {
	return &AuthRepo{DB: database}
}

func (r *AuthRepo) CreateUser(u *db.User) error {
	tx, err := r.DB.Begin()
	if err != nil {
		return fmt.Errorf("error starting transaction: %w", err)
	}
	defer tx.Rollback()

	taken, err := identityTaken(tx, u.Username, u.Email)
	if err != nil {
		return err
	}
	if taken {
		return apperr.ErrDuplicateIdentity
	}

	query := `
		INSERT INTO users (username, email, password_hash, phone, role, status, nid_image, date_joined)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id`
	err = tx.QueryRow(query,
		u.Username, u.Email, u.PasswordHash, u.Phone, u.Role, u.Status, u.NIDImage, u.DateJoined,
	).Scan(&u.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return apperr.ErrDuplicateIdentity
		}
		return fmt.Errorf("error inserting user: %w", err)
	}
	return tx.Commit()
}

func (r *AuthRepo) GetUserByID(id int) (*db.User, error) {
	return scanUser(r.DB.QueryRow(selectUser+` WHERE id = $1`, id), "user", id)
}

func (r *AuthRepo) GetUserByEmail(email string) (*db.User, error) {
	return scanUser(r.DB.QueryRow(selectUser+` WHERE email = $1`, email), "user", 0)
}

func (r *AuthRepo) CreatePendingHost(p *db.PendingHost) error {
	tx, err := r.DB.Begin()
	if err != nil {
		return fmt.Errorf("error starting transaction: %w", err)
	}
	defer tx.Rollback()

	taken, err := identityTaken(tx, p.Username, p.Email)
	if err != nil {
		return err
	}
	if taken {
		return apperr.ErrDuplicateIdentity
	}

	query := `
		INSERT INTO pending_hosts (username, email, password_hash, phone, nid_image, applied_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`
	err = tx.QueryRow(query,
		p.Username, p.Email, p.PasswordHash, p.Phone, p.NIDImage, p.AppliedAt,
	).Scan(&p.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return apperr.ErrDuplicateIdentity
		}
		return fmt.Errorf("error inserting pending host: %w", err)
	}
	return tx.Commit()
}

const selectUser = `
	SELECT id, username, email, password_hash, phone, role, status, nid_image, date_joined
	FROM users`

func scanUser(row *sql.Row, entity string, id int) (*db.User, error) {
	var u db.User
	err := row.Scan(&u.ID, &u.Username, &u.Email, &u.PasswordHash, &u.Phone, &u.Role, &u.Status, &u.NIDImage, &u.DateJoined)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperr.NotFound(entity, id)
		}
		return nil, fmt.Errorf("error scanning %s: %w", entity, err)
	}
	return &u, nil
}

// identityTaken checks usernames and emails across both live users and
// still-pending host applications.
func identityTaken(tx *sql.Tx, username, email string) (bool, error) {
	var taken bool
	query := `
		SELECT EXISTS (SELECT 1 FROM users WHERE username = $1 OR email = $2)
		    OR EXISTS (SELECT 1 FROM pending_hosts WHERE username = $1 OR email = $2)`
	if err := tx.QueryRow(query, username, email).Scan(&taken); err != nil {
		return false, fmt.Errorf("error checking identity uniqueness: %w", err)
	}
	return taken, nil
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && string(pqErr.Code) == uniqueViolation
}
