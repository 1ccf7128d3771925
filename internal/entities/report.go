package entities

import (
	"time"

	"jirao/internal/db"
)

type ReportRequest struct {
	ReportedID int    `json:"reported_id"`
	Reason     string `json:"reason"`
	SpaceID    *int   `json:"space_id,omitempty"`
}

type ReportView struct {
	ID            int       `json:"id"`
	ReporterID    int       `json:"reporter_id"`
	ReportedID    int       `json:"reported_id"`
	ReporterRole  db.Role   `json:"reporter_role"`
	ReportedRole  db.Role   `json:"reported_role"`
	ReporterName  string    `json:"reporter_name"`
	ReportedName  string    `json:"reported_name"`
	ReporterEmail string    `json:"reporter_email"`
	ReportedEmail string    `json:"reported_email"`
	Reason        string    `json:"reason"`
	CreatedAt     time.Time `json:"timestamp"`
}

func NewReportView(r *db.Report) ReportView {
	return ReportView{
		ID:            r.ID,
		ReporterID:    r.ReporterID,
		ReportedID:    r.ReportedID,
		ReporterRole:  r.ReporterRole,
		ReportedRole:  r.ReportedRole,
		ReporterName:  r.ReporterName,
		ReportedName:  r.ReportedName,
		ReporterEmail: r.ReporterEmail,
		ReportedEmail: r.ReportedEmail,
		Reason:        r.Reason,
		CreatedAt:     r.CreatedAt,
	}
}
