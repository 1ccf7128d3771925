package repository

import (
	"database/sql"
	"errors"
	"fmt"

	"jirao/internal/apperr"
	"jirao/internal/db"
	"jirao/internal/entities"
)

type SpaceRepo struct {
	DB *sql.DB
}

func NewSpaceRepo(database *sql.DB) *SpaceRepo {
	return &SpaceRepo{DB: database}
}

const selectSpaceView = `
	SELECT s.id, s.owner_id, u.username AS owner_name, s.kind, s.title, s.location,
	       s.rate_per_hour, s.description, s.availability, s.length, s.width, s.height
	FROM spaces s
	JOIN users u ON u.id = s.owner_id`

func (r *SpaceRepo) Create(s *db.Space) (*entities.SpaceView, error) {
	query := `
		INSERT INTO spaces (owner_id, kind, title, location, rate_per_hour, description, availability, length, width, height)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id`
	length, width, height := dimensionColumns(s.Dimensions)
	err := r.DB.QueryRow(query,
		s.OwnerID, s.Kind, s.Title, s.Location, s.RatePerHour, s.Description, s.Availability,
		length, width, height,
	).Scan(&s.ID)
	if err != nil {
		return nil, fmt.Errorf("error inserting space: %w", err)
	}
	return r.GetView(s.ID)
}

func (r *SpaceRepo) Update(s *db.Space) (*entities.SpaceView, error) {
	query := `
		UPDATE spaces
		SET kind = $2, title = $3, location = $4, rate_per_hour = $5, description = $6,
		    availability = $7, length = $8, width = $9, height = $10
		WHERE id = $1`
	length, width, height := dimensionColumns(s.Dimensions)
	result, err := r.DB.Exec(query,
		s.ID, s.Kind, s.Title, s.Location, s.RatePerHour, s.Description, s.Availability,
		length, width, height,
	)
	if err != nil {
		return nil, fmt.Errorf("error updating space: %w", err)
	}
	if affected, _ := result.RowsAffected(); affected == 0 {
		return nil, apperr.NotFound("space", s.ID)
	}
	return r.GetView(s.ID)
}

func (r *SpaceRepo) SetAvailability(id int, availability db.Availability) (*entities.SpaceView, error) {
	result, err := r.DB.Exec(`UPDATE spaces SET availability = $2 WHERE id = $1`, id, availability)
	if err != nil {
		return nil, fmt.Errorf("error updating space availability: %w", err)
	}
	if affected, _ := result.RowsAffected(); affected == 0 {
		return nil, apperr.NotFound("space", id)
	}
	return r.GetView(id)
}

func (r *SpaceRepo) GetByID(id int) (*db.Space, error) {
	var s db.Space
	var length, width, height sql.NullFloat64
	query := `
		SELECT id, owner_id, kind, title, location, rate_per_hour, description, availability, length, width, height
		FROM spaces WHERE id = $1`
	err := r.DB.QueryRow(query, id).Scan(
		&s.ID, &s.OwnerID, &s.Kind, &s.Title, &s.Location, &s.RatePerHour, &s.Description, &s.Availability,
		&length, &width, &height,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperr.NotFound("space", id)
		}
		return nil, fmt.Errorf("error querying space: %w", err)
	}
	s.Dimensions = dimensionsFromColumns(length, width, height)
	return &s, nil
}

func (r *SpaceRepo) GetView(id int) (*entities.SpaceView, error) {
	row := r.DB.QueryRow(selectSpaceView+` WHERE s.id = $1`, id)
	view, err := scanSpaceView(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperr.NotFound("space", id)
		}
		return nil, fmt.Errorf("error scanning space view: %w", err)
	}
	return view, nil
}

func (r *SpaceRepo) ListAvailable(location string) ([]entities.SpaceView, error) {
	query := selectSpaceView + ` WHERE s.availability = $1`
	args := []interface{}{db.Available}
	if location != "" {
		query += ` AND s.location ILIKE '%' || $2 || '%'`
		args = append(args, location)
	}
	query += ` ORDER BY s.id`
	return r.listViews(query, args...)
}

func (r *SpaceRepo) ListByOwner(ownerID int) ([]entities.SpaceView, error) {
	return r.listViews(selectSpaceView+` WHERE s.owner_id = $1 ORDER BY s.id`, ownerID)
}

func (r *SpaceRepo) listViews(query string, args ...interface{}) ([]entities.SpaceView, error) {
	rows, err := r.DB.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("error querying spaces: %w", err)
	}
	defer rows.Close()

	views := []entities.SpaceView{}
	for rows.Next() {
		view, err := scanSpaceView(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("error scanning space row: %w", err)
		}
		views = append(views, *view)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error after iterating space rows: %w", err)
	}
	return views, nil
}

func scanSpaceView(scan func(...interface{}) error) (*entities.SpaceView, error) {
	var v entities.SpaceView
	var length, width, height sql.NullFloat64
	err := scan(
		&v.ID, &v.OwnerID, &v.OwnerName, &v.Kind, &v.Title, &v.Location,
		&v.RatePerHour, &v.Description, &v.Availability, &length, &width, &height,
	)
	if err != nil {
		return nil, err
	}
	v.Dimensions = dimensionsFromColumns(length, width, height)
	return &v, nil
}

func dimensionColumns(d *db.Dimensions) (length, width, height sql.NullFloat64) {
	if d == nil {
		return
	}
	length = sql.NullFloat64{Float64: d.Length, Valid: true}
	width = sql.NullFloat64{Float64: d.Width, Valid: true}
	height = sql.NullFloat64{Float64: d.Height, Valid: true}
	return
}

func dimensionsFromColumns(length, width, height sql.NullFloat64) *db.Dimensions {
	if !length.Valid || !width.Valid || !height.Valid {
		return nil
	}
	return &db.Dimensions{Length: length.Float64, Width: width.Float64, Height: height.Float64}
}
