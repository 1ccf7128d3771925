package entities

import (
	"time"

	"jirao/internal/db"
)

type InterestRequest struct {
	SpaceID        int  `json:"space_id"`
	HoursRequested *int `json:"hours_requested,omitempty"`
}

// InterestView joins the ledger record with the current guest identity and the
// current listing title/location/rate. The join happens at read time, so a
// listing renamed after the interest was expressed shows its new title here.
type InterestView struct {
	ID             int               `json:"id"`
	UserID         int               `json:"user_id"`
	SpaceID        int               `json:"space_id"`
	HoursRequested *int              `json:"hours_requested,omitempty"`
	Status         db.InterestStatus `json:"status"`
	CreatedAt      time.Time         `json:"timestamp"`
	RespondedAt    *time.Time        `json:"host_response_date,omitempty"`
	UserName       string            `json:"user_name"`
	UserEmail      string            `json:"user_email"`
	SpaceTitle     string            `json:"space_title"`
	SpaceLocation  string            `json:"space_location"`
	SpaceRate      float64           `json:"space_rate"`
}
