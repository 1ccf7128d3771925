package service

import (
	"jirao/internal/apperr"
	"jirao/internal/db"
	"jirao/internal/entities"
	"jirao/internal/repository"
)

type SpaceService struct {
	Repo repository.SpaceRepository
}

func NewSpaceService(repo repository.SpaceRepository) *SpaceService {
	return &SpaceService{Repo: repo}
}

func (s *SpaceService) Create(ownerID int, req entities.SpaceRequest) (*entities.SpaceView, error) {
	space, err := spaceFromRequest(req)
	if err != nil {
		return nil, err
	}
	space.OwnerID = ownerID
	return s.Repo.Create(space)
}

// Update replaces the listing's mutable fields. Only the owner may update;
// ownership never changes, the kind is fixed at creation, and availability
// moves only through SetAvailability.
func (s *SpaceService) Update(spaceID, callerID int, req entities.SpaceRequest) (*entities.SpaceView, error) {
	existing, err := s.Repo.GetByID(spaceID)
	if err != nil {
		return nil, err
	}
	if existing.OwnerID != callerID {
		return nil, apperr.ErrForbidden
	}
	req.Kind = string(existing.Kind)
	req.Availability = string(existing.Availability)
	space, err := spaceFromRequest(req)
	if err != nil {
		return nil, err
	}
	space.ID = spaceID
	space.OwnerID = existing.OwnerID
	return s.Repo.Update(space)
}

// SetAvailability is deliberately permissive: the owner is the sole authority
// and every transition between the three states is legal.
func (s *SpaceService) SetAvailability(spaceID, callerID int, availability string) (*entities.SpaceView, error) {
	value := db.Availability(availability)
	if value != db.Available && value != db.OnHold && value != db.NotAvailable {
		return nil, apperr.Validation("availability", "must be available, on_hold or not_available")
	}
	existing, err := s.Repo.GetByID(spaceID)
	if err != nil {
		return nil, err
	}
	if existing.OwnerID != callerID {
		return nil, apperr.ErrForbidden
	}
	return s.Repo.SetAvailability(spaceID, value)
}

func (s *SpaceService) Get(spaceID int) (*entities.SpaceView, error) {
	return s.Repo.GetView(spaceID)
}

func (s *SpaceService) ListAvailable(location string) ([]entities.SpaceView, error) {
	return s.Repo.ListAvailable(location)
}

func (s *SpaceService) ListByOwner(ownerID int) ([]entities.SpaceView, error) {
	return s.Repo.ListByOwner(ownerID)
}

// spaceFromRequest validates the request and builds the record. Dimensions are
// mandatory with all sides positive for parking, and dropped for rooms.
func spaceFromRequest(req entities.SpaceRequest) (*db.Space, error) {
	kind := db.SpaceKind(req.Kind)
	if kind != db.KindRoom && kind != db.KindParking {
		return nil, apperr.Validation("type", "must be room or parking")
	}
	if req.Title == "" {
		return nil, apperr.Validation("title", "must not be empty")
	}
	if req.Location == "" {
		return nil, apperr.Validation("location", "must not be empty")
	}
	if req.Description == "" {
		return nil, apperr.Validation("description", "must not be empty")
	}
	if req.RatePerHour <= 0 {
		return nil, apperr.Validation("rate_per_hour", "must be greater than zero")
	}

	availability := db.Available
	if req.Availability != "" {
		availability = db.Availability(req.Availability)
		if availability != db.Available && availability != db.OnHold && availability != db.NotAvailable {
			return nil, apperr.Validation("availability", "must be available, on_hold or not_available")
		}
	}

	space := &db.Space{
		Kind:         kind,
		Title:        req.Title,
		Location:     req.Location,
		RatePerHour:  req.RatePerHour,
		Description:  req.Description,
		Availability: availability,
	}

	if kind == db.KindParking {
		d := req.Dimensions
		if d == nil || d.Length <= 0 || d.Width <= 0 || d.Height <= 0 {
			return nil, apperr.Validation("dimensions", "parking spots need positive length, width and height")
		}
		dims := *d
		space.Dimensions = &dims
	}
	return space, nil
}
