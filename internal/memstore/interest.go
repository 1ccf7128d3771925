package memstore

import (
	"time"

	"jirao/internal/apperr"
	"jirao/internal/db"
	"jirao/internal/entities"
)

type interestStore struct {
	s *Store
}

func (r interestStore) Create(i *db.Interest) (*entities.InterestView, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	// Any existing pair blocks a new interest, whatever its status.
	for idx := range r.s.interests {
		if r.s.interests[idx].UserID == i.UserID && r.s.interests[idx].SpaceID == i.SpaceID {
			return nil, apperr.ErrDuplicateInterest
		}
	}
	i.ID = r.s.nextInterestID
	r.s.nextInterestID++
	r.s.interests = append(r.s.interests, *cloneInterest(i))
	return r.s.interestView(i), nil
}

func (r interestStore) GetByID(id int) (*db.Interest, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	i := r.s.findInterest(id)
	if i == nil {
		return nil, apperr.NotFound("interest", id)
	}
	return cloneInterest(i), nil
}

func (r interestStore) Respond(id int, status db.InterestStatus) (*entities.InterestView, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	i := r.s.findInterest(id)
	if i == nil {
		return nil, apperr.NotFound("interest", id)
	}
	if i.Status != db.InterestPending {
		return nil, apperr.InvalidTransition(string(i.Status), string(status))
	}
	now := time.Now().UTC()
	i.Status = status
	i.RespondedAt = &now
	return r.s.interestView(i), nil
}

func (r interestStore) Cancel(id, byUserID int) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for idx := range r.s.interests {
		if r.s.interests[idx].ID != id {
			continue
		}
		if r.s.interests[idx].UserID != byUserID {
			return apperr.ErrForbidden
		}
		if r.s.interests[idx].Status != db.InterestPending {
			return apperr.InvalidTransition(string(r.s.interests[idx].Status), "cancelled")
		}
		r.s.interests = append(r.s.interests[:idx], r.s.interests[idx+1:]...)
		return nil
	}
	return apperr.NotFound("interest", id)
}

func (r interestStore) Exists(spaceID, userID int) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for idx := range r.s.interests {
		if r.s.interests[idx].SpaceID == spaceID && r.s.interests[idx].UserID == userID {
			return true, nil
		}
	}
	return false, nil
}

func (r interestStore) ListForUser(userID int) ([]entities.InterestView, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	views := []entities.InterestView{}
	for idx := range r.s.interests {
		if r.s.interests[idx].UserID == userID {
			views = append(views, *r.s.interestView(&r.s.interests[idx]))
		}
	}
	return views, nil
}

func (r interestStore) ListForSpace(spaceID int) ([]entities.InterestView, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	views := []entities.InterestView{}
	for idx := range r.s.interests {
		if r.s.interests[idx].SpaceID == spaceID {
			views = append(views, *r.s.interestView(&r.s.interests[idx]))
		}
	}
	return views, nil
}

// interestView joins the current user and space records at read time, so a
// renamed listing shows its new title in historical views.
func (s *Store) interestView(i *db.Interest) *entities.InterestView {
	copied := cloneInterest(i)
	view := entities.InterestView{
		ID:             copied.ID,
		UserID:         copied.UserID,
		SpaceID:        copied.SpaceID,
		HoursRequested: copied.HoursRequested,
		Status:         copied.Status,
		CreatedAt:      copied.CreatedAt,
		RespondedAt:    copied.RespondedAt,
	}
	if u := s.findUser(i.UserID); u != nil {
		view.UserName = u.Username
		view.UserEmail = u.Email
	}
	if sp := s.findSpace(i.SpaceID); sp != nil {
		view.SpaceTitle = sp.Title
		view.SpaceLocation = sp.Location
		view.SpaceRate = sp.RatePerHour
	}
	return &view
}
