package repository

import (
	"context"
	"strings"

	"memberdesk/internal/domain"

	"gorm.io/gorm"
)

type MemberRepository struct {
	db *gorm.DB
}

func NewMemberRepository(db *gorm.DB) *MemberRepository {
	return &MemberRepository{db: db}
}

func (r *MemberRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&domain.Member{}).
		Where("LOWER(email) = ?", strings.ToLower(strings.TrimSpace(email))).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *MemberRepository) List(ctx context.Context) ([]domain.Member, error) {
	members := make([]domain.Member, 0)
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&members).Error; err != nil {
		return nil, err
	}
	return members, nil
}

// PromoteSubmission moves an approved application into the members table and
// removes it from the pending queue in a single transaction. Either both
// writes land or the pending row stays put.
func (r *MemberRepository) PromoteSubmission(ctx context.Context, sub *domain.Submission) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		member := domain.Member{
			FirstName: sub.FirstName,
			LastName:  sub.LastName,
			City:      sub.City,
			Email:     sub.Email,
			WCAID:     sub.WCAID,
			BirthDate: sub.BirthDate,
		}
		if err := tx.Create(&member).Error; err != nil {
			return err
		}

		res := tx.Delete(&domain.Submission{}, sub.ID)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			// Someone decided this submission concurrently; roll back the
			// member insert rather than duplicating the applicant.
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}
