package db

import "time"

type Role string

const (
	RoleGuest Role = "guest"
	RoleHost  Role = "host"
	RoleAdmin Role = "admin"
)

type UserStatus string

const (
	UserActive  UserStatus = "active"
	UserBanned  UserStatus = "banned"
	UserPending UserStatus = "pending"
)

type SpaceKind string

const (
	KindRoom    SpaceKind = "room"
	KindParking SpaceKind = "parking"
)

type Availability string

const (
	Available    Availability = "available"
	OnHold       Availability = "on_hold"
	NotAvailable Availability = "not_available"
)

type InterestStatus string

const (
	InterestPending  InterestStatus = "pending"
	InterestAccepted InterestStatus = "accepted"
	InterestRejected InterestStatus = "rejected"
)

type User struct {
	ID           int
	Username     string
	Email        string
	PasswordHash string
	Phone        string
	Role         Role
	Status       UserStatus
	NIDImage     string
	DateJoined   time.Time
}

// Dimensions of a parking spot. Mandatory when the space kind is parking,
// absent otherwise.
type Dimensions struct {
	Length float64 `json:"length"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

type Space struct {
	ID           int
	OwnerID      int
	Kind         SpaceKind
	Title        string
	Location     string
	RatePerHour  float64
	Description  string
	Availability Availability
	Dimensions   *Dimensions
}

type Interest struct {
	ID             int
	UserID         int
	SpaceID        int
	HoursRequested *int
	Status         InterestStatus
	CreatedAt      time.Time
	RespondedAt    *time.Time
}

// Report is an immutable audit record. Names, emails and roles of both parties
// are snapshotted at creation time and never re-joined against live users.
type Report struct {
	ID            int
	ReporterID    int
	ReportedID    int
	ReporterRole  Role
	ReportedRole  Role
	ReporterName  string
	ReportedName  string
	ReporterEmail string
	ReportedEmail string
	Reason        string
	SpaceID       *int
	CreatedAt     time.Time
}

// PendingHost is a host application awaiting admin review. Approval turns it
// into a User with RoleHost; rejection removes it without creating a user.
type PendingHost struct {
	ID           int
	Username     string
	Email        string
	PasswordHash string
	Phone        string
	NIDImage     string
	AppliedAt    time.Time
}
