package model

import (
	"fmt"
	"strings"
)

// Referral is a recorded hand-off of the student to a specialist unit,
// always tied to a session.
type Referral struct {
	Type        string `json:"type"`
	Description string `json:"description"`
	Date        string `json:"date"`
}

// Session is one counseling meeting, numbered sequentially per student.
type Session struct {
	SessionNumber int        `json:"session_number"`
	Date          string     `json:"date"`
	Topics        []string   `json:"topics"`
	Referrals     []Referral `json:"referrals"`
}

func (s *Session) hasTopic(topic string) bool {
	for _, t := range s.Topics {
		if t == topic {
			return true
		}
	}
	return false
}

// SetSessionCount resizes the session sequence to exactly n entries.
// Entries below n keep their data; new entries are created empty and
// numbered; entries beyond n are dropped. Shrinking then growing does NOT
// restore the dropped data.
func (s *Student) SetSessionCount(n int) {
	if n < 0 {
		n = 0
	}
	sessions := make([]Session, n)
	for i := 0; i < n; i++ {
		if i < len(s.Sessions) {
			sessions[i] = s.Sessions[i]
			continue
		}
		sessions[i] = Session{SessionNumber: i + 1}
	}
	s.TotalSessions = n
	s.Sessions = sessions
}

func (s *Student) sessionAt(index int) (*Session, error) {
	if index < 0 || index >= len(s.Sessions) {
		return nil, fmt.Errorf("session index %d out of range [0,%d)", index, len(s.Sessions))
	}
	return &s.Sessions[index], nil
}

func (s *Student) SetSessionDate(index int, date string) error {
	sess, err := s.sessionAt(index)
	if err != nil {
		return err
	}
	sess.Date = date
	return nil
}

// ToggleTopic adds the topic to the session if absent, removes it if
// present. Toggling the reserved referral topic off clears the session's
// referrals: a referral cannot outlive its enabling topic.
func (s *Student) ToggleTopic(index int, topic, referralTopic string) error {
	sess, err := s.sessionAt(index)
	if err != nil {
		return err
	}
	for i, t := range sess.Topics {
		if t == topic {
			sess.Topics = append(sess.Topics[:i], sess.Topics[i+1:]...)
			if topic == referralTopic {
				sess.Referrals = nil
			}
			return nil
		}
	}
	sess.Topics = append(sess.Topics, topic)
	return nil
}

// ToggleReferral removes the referral of the given type if present,
// otherwise appends one with an empty description. Types are deduplicated
// per session, so toggling twice restores the original set.
func (s *Student) ToggleReferral(index int, referralType, date string) error {
	sess, err := s.sessionAt(index)
	if err != nil {
		return err
	}
	for i, r := range sess.Referrals {
		if r.Type == referralType {
			sess.Referrals = append(sess.Referrals[:i], sess.Referrals[i+1:]...)
			return nil
		}
	}
	sess.Referrals = append(sess.Referrals, Referral{Type: referralType, Date: date})
	return nil
}

// SetReferralDescription updates the description of the referral matching
// the given type; no-op if no such referral exists.
func (s *Student) SetReferralDescription(index int, referralType, text string) error {
	sess, err := s.sessionAt(index)
	if err != nil {
		return err
	}
	for i, r := range sess.Referrals {
		if r.Type == referralType {
			sess.Referrals[i].Description = text
			return nil
		}
	}
	return nil
}

type ViolationKind string

const (
	ViolationReferralTypeMissing   ViolationKind = "referral_type_missing"
	ViolationReferralReasonMissing ViolationKind = "referral_reason_missing"
)

// SaveViolation is one reason a session save cannot commit.
type SaveViolation struct {
	Kind          ViolationKind
	SessionNumber int
	ReferralType  string // set for ViolationReferralReasonMissing
}

func (v SaveViolation) Message() string {
	switch v.Kind {
	case ViolationReferralTypeMissing:
		return fmt.Sprintf("در جلسه %d گزینه ارجاع انتخاب شده، اما نوع ارجاع مشخص نشده است.", v.SessionNumber)
	case ViolationReferralReasonMissing:
		return fmt.Sprintf("در جلسه %d، لطفاً دلیل ارجاع به «%s» را وارد کنید.", v.SessionNumber, v.ReferralType)
	}
	return ""
}

// ValidateForSave checks every session in [0, TotalSessions): a session
// carrying the referral topic must have at least one referral, and every
// referral needs a non-empty trimmed description. The full violation list is
// returned so the caller can surface everything at once.
func (s *Student) ValidateForSave(referralTopic string) []SaveViolation {
	var violations []SaveViolation
	for i := 0; i < s.TotalSessions && i < len(s.Sessions); i++ {
		sess := &s.Sessions[i]
		if !sess.hasTopic(referralTopic) {
			continue
		}
		if len(sess.Referrals) == 0 {
			violations = append(violations, SaveViolation{
				Kind:          ViolationReferralTypeMissing,
				SessionNumber: i + 1,
			})
			continue
		}
		for _, r := range sess.Referrals {
			if strings.TrimSpace(r.Description) == "" {
				violations = append(violations, SaveViolation{
					Kind:          ViolationReferralReasonMissing,
					SessionNumber: i + 1,
					ReferralType:  r.Type,
				})
			}
		}
	}
	return violations
}
