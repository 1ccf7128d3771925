package entities

import "jirao/internal/db"

type SpaceRequest struct {
	Kind         string         `json:"type"`
	Title        string         `json:"title"`
	Location     string         `json:"location"`
	RatePerHour  float64        `json:"rate_per_hour"`
	Description  string         `json:"description"`
	Availability string         `json:"availability,omitempty"`
	Dimensions   *db.Dimensions `json:"dimensions,omitempty"`
}

// SpaceView is a space joined with its owner's current username at read time.
type SpaceView struct {
	ID           int             `json:"id"`
	OwnerID      int             `json:"owner_id"`
	OwnerName    string          `json:"owner_name"`
	Kind         db.SpaceKind    `json:"type"`
	Title        string          `json:"title"`
	Location     string          `json:"location"`
	RatePerHour  float64         `json:"rate_per_hour"`
	Description  string          `json:"description"`
	Availability db.Availability `json:"availability"`
	Dimensions   *db.Dimensions  `json:"dimensions,omitempty"`
}

func NewSpaceView(s *db.Space, ownerName string) SpaceView {
	return SpaceView{
		ID:           s.ID,
		OwnerID:      s.OwnerID,
		OwnerName:    ownerName,
		Kind:         s.Kind,
		Title:        s.Title,
		Location:     s.Location,
		RatePerHour:  s.RatePerHour,
		Description:  s.Description,
		Availability: s.Availability,
		Dimensions:   s.Dimensions,
	}
}
