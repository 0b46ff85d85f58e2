package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/hamyar-edu/advising_bot/internal/catalog"
	"github.com/hamyar-edu/advising_bot/internal/clock"
	"github.com/hamyar-edu/advising_bot/internal/dates"
	"github.com/hamyar-edu/advising_bot/internal/model"
	"github.com/hamyar-edu/advising_bot/internal/notify"
)

// Recorder identifies who is saving the session data. Both the student and
// their assigned advisor share the same save path; only the outbound notice
// differs by role.
type Recorder struct {
	Role notify.Role
	ID   string
	Name string
}

// SessionService maintains per-student session histories and enforces
// referral completeness before a save commits.
type SessionService struct {
	students StudentStore
	catalog  *catalog.Catalog
	clock    clock.Clock
	logger   *zap.Logger
}

func NewSessionService(students StudentStore, cat *catalog.Catalog, clk clock.Clock, logger *zap.Logger) *SessionService {
	return &SessionService{
		students: students,
		catalog:  cat,
		clock:    clk,
		logger:   logger,
	}
}

// ValidateForSave runs the referral completeness check against a candidate
// session list without touching stored state.
func (s *SessionService) ValidateForSave(totalSessions int, sessions []model.Session) []model.SaveViolation {
	candidate := model.Student{TotalSessions: totalSessions, Sessions: sessions}
	return candidate.ValidateForSave(s.catalog.ReferralTopic)
}

// CommitSave overwrites the student's session data in one write. A non-empty
// violation list means nothing was committed — the caller must surface every
// violation, not just the first. On success the drafts carry one notice per
// recorded referral plus the role-dependent recorded notice.
func (s *SessionService) CommitSave(
	ctx context.Context,
	recorder Recorder,
	studentID string,
	totalSessions int,
	sessions []model.Session,
) ([]notify.Draft, []model.SaveViolation, error) {
	student, err := s.students.GetByID(ctx, studentID)
	if err != nil {
		return nil, nil, err
	}

	switch recorder.Role {
	case notify.RoleStudent:
		if recorder.ID != student.ID {
			return nil, nil, fmt.Errorf("%w: student %s cannot record for %s", model.ErrForbidden, recorder.ID, studentID)
		}
	case notify.RoleAdvisor:
		if recorder.ID != student.AdvisorID {
			return nil, nil, fmt.Errorf("%w: advisor %s is not assigned to %s", model.ErrForbidden, recorder.ID, studentID)
		}
	default:
		return nil, nil, fmt.Errorf("%w: role %q cannot record sessions", model.ErrForbidden, recorder.Role)
	}

	// Trailing entries beyond the declared count are dropped, exactly like a
	// shrink via SetSessionCount.
	if len(sessions) > totalSessions {
		sessions = sessions[:totalSessions]
	}
	candidate := *student
	candidate.TotalSessions = totalSessions
	candidate.Sessions = sessions

	if violations := candidate.ValidateForSave(s.catalog.ReferralTopic); len(violations) > 0 {
		return nil, violations, nil
	}

	if err := s.students.UpdateSessions(ctx, studentID, totalSessions, sessions); err != nil {
		return nil, nil, err
	}

	s.logger.Info("Session data recorded",
		zap.String("student_id", studentID),
		zap.String("recorder_role", string(recorder.Role)),
		zap.Int("total_sessions", totalSessions),
	)

	var drafts []notify.Draft
	for _, sess := range sessions {
		for _, ref := range sess.Referrals {
			drafts = append(drafts, notify.ReferralRecorded(&candidate, sess, ref))
		}
	}
	drafts = append(drafts, notify.SessionDataRecorded(&candidate, recorder.Role, recorder.Name))
	return drafts, nil, nil
}

// NewReferralDate formats the creation date stamped on a referral the
// moment it is toggled on.
func (s *SessionService) NewReferralDate() string {
	return dates.PersianDate(s.clock.Now())
}
