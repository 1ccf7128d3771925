package memstore

import (
	"strings"

	"jirao/internal/apperr"
	"jirao/internal/db"
	"jirao/internal/entities"
)

type spaceStore struct {
	s *Store
}

func (r spaceStore) Create(sp *db.Space) (*entities.SpaceView, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	sp.ID = r.s.nextSpaceID
	r.s.nextSpaceID++
	r.s.spaces = append(r.s.spaces, *cloneSpace(sp))
	return r.s.spaceView(sp), nil
}

func (r spaceStore) Update(sp *db.Space) (*entities.SpaceView, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	existing := r.s.findSpace(sp.ID)
	if existing == nil {
		return nil, apperr.NotFound("space", sp.ID)
	}
	sp.OwnerID = existing.OwnerID
	*existing = *cloneSpace(sp)
	return r.s.spaceView(existing), nil
}

func (r spaceStore) SetAvailability(id int, availability db.Availability) (*entities.SpaceView, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	sp := r.s.findSpace(id)
	if sp == nil {
		return nil, apperr.NotFound("space", id)
	}
	sp.Availability = availability
	return r.s.spaceView(sp), nil
}

func (r spaceStore) GetByID(id int) (*db.Space, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	sp := r.s.findSpace(id)
	if sp == nil {
		return nil, apperr.NotFound("space", id)
	}
	return cloneSpace(sp), nil
}

func (r spaceStore) GetView(id int) (*entities.SpaceView, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	sp := r.s.findSpace(id)
	if sp == nil {
		return nil, apperr.NotFound("space", id)
	}
	return r.s.spaceView(sp), nil
}

func (r spaceStore) ListAvailable(location string) ([]entities.SpaceView, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	needle := strings.ToLower(strings.TrimSpace(location))
	views := []entities.SpaceView{}
	for idx := range r.s.spaces {
		sp := &r.s.spaces[idx]
		if sp.Availability != db.Available {
			continue
		}
		if needle != "" && !strings.Contains(strings.ToLower(sp.Location), needle) {
			continue
		}
		views = append(views, *r.s.spaceView(sp))
	}
	return views, nil
}

func (r spaceStore) ListByOwner(ownerID int) ([]entities.SpaceView, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	views := []entities.SpaceView{}
	for idx := range r.s.spaces {
		if r.s.spaces[idx].OwnerID == ownerID {
			views = append(views, *r.s.spaceView(&r.s.spaces[idx]))
		}
	}
	return views, nil
}

func (s *Store) spaceView(sp *db.Space) *entities.SpaceView {
	ownerName := ""
	if owner := s.findUser(sp.OwnerID); owner != nil {
		ownerName = owner.Username
	}
	view := entities.NewSpaceView(cloneSpace(sp), ownerName)
	return &view
}
