package entities

import (
	"time"

	"jirao/internal/db"
)

type UserView struct {
	ID         int           `json:"id"`
	Username   string        `json:"username"`
	Email      string        `json:"email"`
	Phone      string        `json:"phone,omitempty"`
	Role       db.Role       `json:"role"`
	Status     db.UserStatus `json:"status"`
	NIDImage   string        `json:"nid_image,omitempty"`
	DateJoined time.Time     `json:"date_joined"`
}

func NewUserView(u *db.User) UserView {
	return UserView{
		ID:         u.ID,
		Username:   u.Username,
		Email:      u.Email,
		Phone:      u.Phone,
		Role:       u.Role,
		Status:     u.Status,
		NIDImage:   u.NIDImage,
		DateJoined: u.DateJoined,
	}
}

type PendingHostView struct {
	ID        int       `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	NIDImage  string    `json:"nid_image"`
	AppliedAt time.Time `json:"date_applied"`
}

func NewPendingHostView(p *db.PendingHost) PendingHostView {
	return PendingHostView{
		ID:        p.ID,
		Username:  p.Username,
		Email:     p.Email,
		NIDImage:  p.NIDImage,
		AppliedAt: p.AppliedAt,
	}
}
