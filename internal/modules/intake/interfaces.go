package intake

import (
	"context"

	"memberdesk/internal/domain"
)

type SubmissionRepository interface {
	Create(ctx context.Context, sub *domain.Submission) error
	ExistsByEmail(ctx context.Context, email string) (bool, error)
}

type MemberReader interface {
	ExistsByEmail(ctx context.Context, email string) (bool, error)
}

type NotificationSender interface {
	NotifyPending(sub *domain.Submission)
}
