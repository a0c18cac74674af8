package intake

import (
	"context"
	"errors"

	"memberdesk/internal/domain"

	"gorm.io/gorm"
)

type Service struct {
	submissions SubmissionRepository
	members     MemberReader
	notifs      NotificationSender
}

func NewService(submissions SubmissionRepository, members MemberReader, notifs NotificationSender) *Service {
	return &Service{
		submissions: submissions,
		members:     members,
		notifs:      notifs,
	}
}

// Submit validates the application, guards against duplicate emails in both
// the pending queue and the members table, and stores it for board review.
// The confirmation mail is dispatched after the write and never blocks or
// fails the submission.
func (s *Service) Submit(ctx context.Context, req SubmitRequest) (*domain.Submission, error) {
	req.normalize()
	if err := req.validate(); err != nil {
		return nil, err
	}

	pendingExists, err := s.submissions.ExistsByEmail(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if pendingExists {
		return nil, ErrDuplicatePending
	}

	memberExists, err := s.members.ExistsByEmail(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if memberExists {
		return nil, ErrDuplicateMember
	}

	sub := &domain.Submission{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		City:      req.City,
		Email:     req.Email,
		WCAID:     nullableWCAID(req.WCAID),
		BirthDate: req.BirthDate,
	}

	if err := s.submissions.Create(ctx, sub); err != nil {
		// Unique index catches the writer that lost a same-email race.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrDuplicatePending
		}
		return nil, err
	}

	if s.notifs != nil {
		s.notifs.NotifyPending(sub)
	}

	return sub, nil
}

func nullableWCAID(v string) *string {
	if v == "" {
		return nil
	}
	return &v
}
