package review

import (
	"context"

	"memberdesk/internal/domain"
)

type SubmissionRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Submission, error)
	ListOldestFirst(ctx context.Context) ([]domain.Submission, error)
	Delete(ctx context.Context, id int64) error
}

type MemberRepository interface {
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	List(ctx context.Context) ([]domain.Member, error)
	PromoteSubmission(ctx context.Context, sub *domain.Submission) error
}

type NotificationSender interface {
	NotifyApproved(m *domain.Member)
}
