package repository

import (
	"context"
	"strings"

	"memberdesk/internal/domain"

	"gorm.io/gorm"
)

type SubmissionRepository struct {
	db *gorm.DB
}

func NewSubmissionRepository(db *gorm.DB) *SubmissionRepository {
	return &SubmissionRepository{db: db}
}

func (r *SubmissionRepository) Create(ctx context.Context, sub *domain.Submission) error {
	return r.db.WithContext(ctx).Create(sub).Error
}

func (r *SubmissionRepository) GetByID(ctx context.Context, id int64) (*domain.Submission, error) {
	var sub domain.Submission
	if err := r.db.WithContext(ctx).First(&sub, id).Error; err != nil {
		return nil, err
	}
	return &sub, nil
}

// ListOldestFirst returns the whole pending queue in submission order, so the
// board reviews applications first come, first served.
func (r *SubmissionRepository) ListOldestFirst(ctx context.Context) ([]domain.Submission, error) {
	subs := make([]domain.Submission, 0)
	if err := r.db.WithContext(ctx).Order("submitted_at ASC").Find(&subs).Error; err != nil {
		return nil, err
	}
	return subs, nil
}

// Delete removes a pending row. Returns gorm.ErrRecordNotFound when no row
// with that id exists.
func (r *SubmissionRepository) Delete(ctx context.Context, id int64) error {
	res := r.db.WithContext(ctx).Delete(&domain.Submission{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *SubmissionRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&domain.Submission{}).
		Where("LOWER(email) = ?", strings.ToLower(strings.TrimSpace(email))).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
