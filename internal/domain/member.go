package domain

import "time"

// Submission is a membership application waiting for board review.
// Rows are created by the public intake endpoint and are never mutated in
// place; review either promotes them into members or deletes them.
type Submission struct {
	ID          int64     `gorm:"column:id;primaryKey" json:"id"`
	FirstName   string    `gorm:"column:first_name;not null" json:"firstName"`
	LastName    string    `gorm:"column:last_name;not null" json:"lastName"`
	City        string    `gorm:"column:city;not null" json:"city"`
	Email       string    `gorm:"column:email;not null;uniqueIndex" json:"email"`
	WCAID       *string   `gorm:"column:wca_id" json:"wcaId,omitempty"`
	BirthDate   string    `gorm:"column:birth_date;not null" json:"birthDate"`
	SubmittedAt time.Time `gorm:"column:submitted_at;autoCreateTime" json:"submittedAt"`
}

func (Submission) TableName() string { return "pending_members" }

// Member is an approved applicant. Created only by the review service's
// approve transition, never directly from public input.
type Member struct {
	ID        int64   `gorm:"column:id;primaryKey" json:"id"`
	FirstName string  `gorm:"column:first_name;not null" json:"firstName"`
	LastName  string  `gorm:"column:last_name;not null" json:"lastName"`
	City      string  `gorm:"column:city;not null" json:"city"`
	Email     string  `gorm:"column:email;not null;uniqueIndex" json:"email"`
	WCAID     *string `gorm:"column:wca_id" json:"wcaId,omitempty"`
	BirthDate string  `gorm:"column:birth_date;not null" json:"birthDate"`
}

func (Member) TableName() string { return "members" }
