package review

import (
	"context"
	"errors"

	"memberdesk/internal/domain"

	"gorm.io/gorm"
)

type Service struct {
	submissions SubmissionRepository
	members     MemberRepository
	notifs      NotificationSender
}

func NewService(submissions SubmissionRepository, members MemberRepository, notifs NotificationSender) *Service {
	return &Service{
		submissions: submissions,
		members:     members,
		notifs:      notifs,
	}
}

// ListSubmissions returns the pending queue oldest first.
func (s *Service) ListSubmissions(ctx context.Context) ([]domain.Submission, error) {
	return s.submissions.ListOldestFirst(ctx)
}

// Approve moves a pending application into the members table. The member
// insert and the pending-row delete run in one transaction; when the insert
// conflicts with an existing member, the pending row stays untouched for the
// admin to reject or retry.
func (s *Service) Approve(ctx context.Context, id int64) (*domain.Member, error) {
	sub, err := s.submissions.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	exists, err := s.members.ExistsByEmail(ctx, sub.Email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrDuplicateMember
	}

	if err := s.members.PromoteSubmission(ctx, sub); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrDuplicateMember
		}
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	member := &domain.Member{
		FirstName: sub.FirstName,
		LastName:  sub.LastName,
		City:      sub.City,
		Email:     sub.Email,
		WCAID:     sub.WCAID,
		BirthDate: sub.BirthDate,
	}

	if s.notifs != nil {
		s.notifs.NotifyApproved(member)
	}

	return member, nil
}

// Reject deletes the pending application permanently. No notification goes
// out on rejection.
func (s *Service) Reject(ctx context.Context, id int64) error {
	if err := s.submissions.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	return nil
}

func (s *Service) ListMembers(ctx context.Context) ([]MemberSummary, error) {
	members, err := s.members.List(ctx)
	if err != nil {
		return nil, err
	}

	summaries := make([]MemberSummary, 0, len(members))
	for _, m := range members {
		summaries = append(summaries, MemberSummary{
			WCAID:     m.WCAID,
			Email:     m.Email,
			FirstName: m.FirstName,
			LastName:  m.LastName,
		})
	}
	return summaries, nil
}
