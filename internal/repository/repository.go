// Package repository defines the store contracts and their Postgres
// implementations. Every mutating method is an atomic unit: read-check-write
// sequences (duplicate interest, identity uniqueness, cascade deletes) never
// interleave with conflicting writes. The in-memory implementation lives in
// internal/memstore.
package repository

import (
	"time"

	"jirao/internal/db"
	"jirao/internal/entities"
)

type AuthRepository interface {
	// CreateUser inserts a new user. Fails with apperr.ErrDuplicateIdentity
	// when the username or email is already taken by a user or by a pending
	// host application.
	CreateUser(u *db.User) error
	GetUserByID(id int) (*db.User, error)
	GetUserByEmail(email string) (*db.User, error)
	// CreatePendingHost files a host application, under the same uniqueness
	// rules as CreateUser.
	CreatePendingHost(p *db.PendingHost) error
}

type SpaceRepository interface {
	Create(s *db.Space) (*entities.SpaceView, error)
	Update(s *db.Space) (*entities.SpaceView, error)
	SetAvailability(id int, availability db.Availability) (*entities.SpaceView, error)
	GetByID(id int) (*db.Space, error)
	GetView(id int) (*entities.SpaceView, error)
	// ListAvailable returns available spaces in insertion order, optionally
	// filtered by a case-insensitive location substring.
	ListAvailable(location string) ([]entities.SpaceView, error)
	ListByOwner(ownerID int) ([]entities.SpaceView, error)
}

type InterestRepository interface {
	// Create inserts a pending interest. Fails with apperr.ErrDuplicateInterest
	// when any interest for the same (user, space) pair exists, whatever its
	// status.
	Create(i *db.Interest) (*entities.InterestView, error)
	GetByID(id int) (*db.Interest, error)
	// Respond moves a pending interest to accepted or rejected and stamps
	// RespondedAt. Any other starting status fails with InvalidTransition.
	Respond(id int, status db.InterestStatus) (*entities.InterestView, error)
	// Cancel removes a pending interest on behalf of the guest who expressed
	// it. Non-pending status fails with InvalidTransition, a different caller
	// with ErrForbidden; the record is left untouched on failure.
	Cancel(id, byUserID int) error
	Exists(spaceID, userID int) (bool, error)
	ListForUser(userID int) ([]entities.InterestView, error)
	ListForSpace(spaceID int) ([]entities.InterestView, error)
}

type ReportRepository interface {
	Create(r *db.Report) (*db.Report, error)
	List() ([]db.Report, error)
	// ListUsersForReporting returns active users of the target role, excluding
	// the caller.
	ListUsersForReporting(currentUserID int, targetRole db.Role) ([]db.User, error)
}

type AdminRepository interface {
	// ListUsers returns non-admin users, optionally restricted to one role.
	ListUsers(roleFilter db.Role) ([]db.User, error)
	SetUserStatus(id int, status db.UserStatus) error
	// DeleteUser removes the user together with every space they own, every
	// interest referencing the user directly or through an owned space, and
	// every report naming them. The cascade is all-or-nothing.
	DeleteUser(id int) error
	ListPendingHosts() ([]db.PendingHost, error)
	// ApproveHost atomically turns the application into an active host user
	// and removes the application. Fails with NotFound when the application
	// was already resolved and ErrDuplicateIdentity when the username or email
	// has been taken since the application was filed.
	ApproveHost(id int) (*db.User, error)
	RejectHost(id int) (*db.PendingHost, error)
	// PurgePendingHostsBefore drops applications filed before the cutoff and
	// reports how many were removed.
	PurgePendingHostsBefore(cutoff time.Time) (int64, error)
}
