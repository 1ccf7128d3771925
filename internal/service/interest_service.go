package service

import (
	"log"
	"time"

	"jirao/internal/apperr"
	"jirao/internal/db"
	"jirao/internal/entities"
	"jirao/internal/observability/metrics"
	"jirao/internal/repository"
)

type InterestService struct {
	Interests repository.InterestRepository
	Spaces    repository.SpaceRepository
	Users     repository.AuthRepository
	notifier  Notifier
}

func NewInterestService(interests repository.InterestRepository, spaces repository.SpaceRepository, users repository.AuthRepository, notifier Notifier) *InterestService {
	return &InterestService{Interests: interests, Spaces: spaces, Users: users, notifier: notifier}
}

// Express records a pending interest. The duplicate check lives inside the
// ledger so it cannot race with a concurrent express for the same pair.
func (s *InterestService) Express(userID int, req entities.InterestRequest) (*entities.InterestView, error) {
	if req.HoursRequested != nil && *req.HoursRequested <= 0 {
		return nil, apperr.Validation("hours_requested", "must be greater than zero")
	}
	if _, err := s.Users.GetUserByID(userID); err != nil {
		return nil, err
	}
	space, err := s.Spaces.GetByID(req.SpaceID)
	if err != nil {
		return nil, err
	}

	interest := &db.Interest{
		UserID:         userID,
		SpaceID:        req.SpaceID,
		HoursRequested: req.HoursRequested,
		Status:         db.InterestPending,
		CreatedAt:      time.Now().UTC(),
	}
	view, err := s.Interests.Create(interest)
	if err != nil {
		return nil, err
	}
	metrics.ObserveInterestEvent("expressed")

	// Notify the owner outside the store boundary.
	if owner, err := s.Users.GetUserByID(space.OwnerID); err == nil {
		go s.notifier.InterestReceived(view, owner.Email, owner.Username)
	} else {
		log.Printf("Error looking up owner %d for interest notification: %v", space.OwnerID, err)
	}
	return view, nil
}

// Respond is host-only: the caller must own the listing the interest points
// at. The pending check itself is atomic inside the ledger.
func (s *InterestService) Respond(interestID, callerID int, decision string) (*entities.InterestView, error) {
	status := db.InterestStatus(decision)
	if status != db.InterestAccepted && status != db.InterestRejected {
		return nil, apperr.Validation("status", "must be accepted or rejected")
	}
	interest, err := s.Interests.GetByID(interestID)
	if err != nil {
		return nil, err
	}
	space, err := s.Spaces.GetByID(interest.SpaceID)
	if err != nil {
		return nil, err
	}
	if space.OwnerID != callerID {
		return nil, apperr.ErrForbidden
	}

	view, err := s.Interests.Respond(interestID, status)
	if err != nil {
		return nil, err
	}
	metrics.ObserveInterestEvent(string(status))

	guestPhone := ""
	if guest, err := s.Users.GetUserByID(view.UserID); err == nil {
		guestPhone = guest.Phone
	}
	go s.notifier.InterestAnswered(view, guestPhone)
	return view, nil
}

// Cancel removes a pending interest on behalf of the guest who expressed it.
func (s *InterestService) Cancel(interestID, callerID int) error {
	if err := s.Interests.Cancel(interestID, callerID); err != nil {
		return err
	}
	metrics.ObserveInterestEvent("cancelled")
	return nil
}

// ListForUser shows a guest their own ledger; admins may inspect anyone's.
func (s *InterestService) ListForUser(userID, callerID int, callerRole db.Role) ([]entities.InterestView, error) {
	if userID != callerID && callerRole != db.RoleAdmin {
		return nil, apperr.ErrForbidden
	}
	return s.Interests.ListForUser(userID)
}

// ListForSpace shows a host the interests on their own listing; admins may
// inspect any listing.
func (s *InterestService) ListForSpace(spaceID, callerID int, callerRole db.Role) ([]entities.InterestView, error) {
	space, err := s.Spaces.GetByID(spaceID)
	if err != nil {
		return nil, err
	}
	if space.OwnerID != callerID && callerRole != db.RoleAdmin {
		return nil, apperr.ErrForbidden
	}
	return s.Interests.ListForSpace(spaceID)
}

func (s *InterestService) Check(spaceID, userID int) (bool, error) {
	return s.Interests.Exists(spaceID, userID)
}
