package intake

import (
	"strings"
	"time"
)

type SubmitRequest struct {
	FirstName string `json:"firstName" binding:"required"`
	LastName  string `json:"lastName" binding:"required"`
	City      string `json:"city" binding:"required"`
	Email     string `json:"email" binding:"required,email"`
	WCAID     string `json:"wcaId"`
	BirthDate string `json:"birthDate" binding:"required"`
}

func (r *SubmitRequest) normalize() {
	r.FirstName = strings.TrimSpace(r.FirstName)
	r.LastName = strings.TrimSpace(r.LastName)
	r.City = strings.TrimSpace(r.City)
	r.Email = strings.ToLower(strings.TrimSpace(r.Email))
	r.WCAID = strings.TrimSpace(r.WCAID)
	r.BirthDate = strings.TrimSpace(r.BirthDate)
}

// validate re-checks required fields after trimming (binding tags let
// whitespace-only values through) and the birth date format.
func (r *SubmitRequest) validate() error {
	if r.FirstName == "" || r.LastName == "" || r.City == "" || r.Email == "" || r.BirthDate == "" {
		return ErrInvalidSubmission
	}
	if _, err := time.Parse("2006-01-02", r.BirthDate); err != nil {
		return ErrInvalidSubmission
	}
	return nil
}
