package domain

import "time"

// Project is a single portfolio project.
type Project struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title" validate:"required,max=200"`
	Description string    `json:"description" validate:"required"`
	Link        *string   `json:"link" validate:"omitempty,max=200,web_url"`
	CreatedAt   time.Time `json:"created_at"`
}

// Experience is a work experience entry. A nil EndDate means the position is ongoing.
type Experience struct {
	ID        int64  `json:"id"`
	Position  string `json:"position" validate:"required,max=200"`
	Company   string `json:"company" validate:"required,max=200"`
	StartDate Date   `json:"start_date"`
	EndDate   *Date  `json:"end_date"`
}

// Ongoing reports whether the experience has no end date.
func (e *Experience) Ongoing() bool {
	return e.EndDate == nil
}
