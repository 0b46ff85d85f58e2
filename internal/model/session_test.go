package model

import "testing"

const referralTopic = "ارجاع"

func studentWithSessions(sessions ...Session) *Student {
	return &Student{
		ID:            "std1",
		TotalSessions: len(sessions),
		Sessions:      sessions,
	}
}

func TestSetSessionCount_GrowCreatesEmptyNumbered(t *testing.T) {
	s := studentWithSessions()
	s.SetSessionCount(3)

	if s.TotalSessions != 3 {
		t.Fatalf("expected 3 total sessions, got %d", s.TotalSessions)
	}
	if len(s.Sessions) != 3 {
		t.Fatalf("expected 3 sessions, got %d", len(s.Sessions))
	}
	for i, sess := range s.Sessions {
		if sess.SessionNumber != i+1 {
			t.Fatalf("session %d numbered %d", i, sess.SessionNumber)
		}
		if sess.Date != "" || len(sess.Topics) != 0 || len(sess.Referrals) != 0 {
			t.Fatalf("session %d not empty: %+v", i, sess)
		}
	}
}

func TestSetSessionCount_TruncateThenGrow(t *testing.T) {
	s := studentWithSessions(
		Session{SessionNumber: 1, Date: "1404/10/15", Topics: []string{"جلسه مشورت آموزشی"}},
		Session{SessionNumber: 2, Date: "1404/10/22", Topics: []string{referralTopic}, Referrals: []Referral{{Type: "مشاوره", Description: "استرس امتحانات"}}},
		Session{SessionNumber: 3, Date: "1404/10/28"},
	)

	s.SetSessionCount(1)
	if len(s.Sessions) != 1 {
		t.Fatalf("expected 1 session after shrink, got %d", len(s.Sessions))
	}
	if s.Sessions[0].Date != "1404/10/15" {
		t.Fatalf("session 1 not preserved: %+v", s.Sessions[0])
	}

	// Growing back does not restore the dropped sessions.
	s.SetSessionCount(3)
	if len(s.Sessions) != 3 {
		t.Fatalf("expected 3 sessions after grow, got %d", len(s.Sessions))
	}
	if s.Sessions[1].Date != "" || len(s.Sessions[1].Referrals) != 0 {
		t.Fatalf("expected session 2 recreated empty, got %+v", s.Sessions[1])
	}
	if s.Sessions[2].SessionNumber != 3 {
		t.Fatalf("expected session 3 renumbered, got %d", s.Sessions[2].SessionNumber)
	}
}

func TestToggleTopic_AddRemove(t *testing.T) {
	s := studentWithSessions(Session{SessionNumber: 1})

	if err := s.ToggleTopic(0, "جلسه مشورت شغلی", referralTopic); err != nil {
		t.Fatalf("toggle on: %v", err)
	}
	if len(s.Sessions[0].Topics) != 1 {
		t.Fatalf("expected 1 topic, got %v", s.Sessions[0].Topics)
	}

	if err := s.ToggleTopic(0, "جلسه مشورت شغلی", referralTopic); err != nil {
		t.Fatalf("toggle off: %v", err)
	}
	if len(s.Sessions[0].Topics) != 0 {
		t.Fatalf("expected no topics, got %v", s.Sessions[0].Topics)
	}
}

func TestToggleTopic_ReferralOffClearsReferrals(t *testing.T) {
	s := studentWithSessions(Session{
		SessionNumber: 1,
		Topics:        []string{referralTopic},
		Referrals:     []Referral{{Type: "مشاوره", Description: "دلیل"}, {Type: "آموزش", Description: "دلیل"}},
	})

	if err := s.ToggleTopic(0, referralTopic, referralTopic); err != nil {
		t.Fatalf("toggle: %v", err)
	}
	if len(s.Sessions[0].Topics) != 0 {
		t.Fatalf("expected referral topic removed, got %v", s.Sessions[0].Topics)
	}
	if len(s.Sessions[0].Referrals) != 0 {
		t.Fatalf("expected referrals cascade-cleared, got %v", s.Sessions[0].Referrals)
	}
}

func TestToggleReferral_IdempotentPerType(t *testing.T) {
	s := studentWithSessions(Session{SessionNumber: 1, Topics: []string{referralTopic}})

	if err := s.ToggleReferral(0, "مشاوره", "1404/10/22"); err != nil {
		t.Fatalf("toggle on: %v", err)
	}
	if len(s.Sessions[0].Referrals) != 1 {
		t.Fatalf("expected 1 referral, got %d", len(s.Sessions[0].Referrals))
	}
	ref := s.Sessions[0].Referrals[0]
	if ref.Type != "مشاوره" || ref.Description != "" || ref.Date != "1404/10/22" {
		t.Fatalf("unexpected referral: %+v", ref)
	}

	if err := s.ToggleReferral(0, "مشاوره", "1404/10/23"); err != nil {
		t.Fatalf("toggle off: %v", err)
	}
	if len(s.Sessions[0].Referrals) != 0 {
		t.Fatalf("expected toggle off to restore original set, got %v", s.Sessions[0].Referrals)
	}
}

func TestSetReferralDescription_NoOpWhenAbsent(t *testing.T) {
	s := studentWithSessions(Session{
		SessionNumber: 1,
		Referrals:     []Referral{{Type: "مشاوره"}},
	})

	if err := s.SetReferralDescription(0, "مشاوره", "نیاز به مشاوره روانشناسی"); err != nil {
		t.Fatalf("set description: %v", err)
	}
	if s.Sessions[0].Referrals[0].Description != "نیاز به مشاوره روانشناسی" {
		t.Fatalf("description not set: %+v", s.Sessions[0].Referrals[0])
	}

	// Unknown type changes nothing and is not an error.
	if err := s.SetReferralDescription(0, "مدیر گروه", "متن"); err != nil {
		t.Fatalf("set description for absent type: %v", err)
	}
	if len(s.Sessions[0].Referrals) != 1 {
		t.Fatalf("expected referral set untouched, got %v", s.Sessions[0].Referrals)
	}
}

func TestSessionIndexOutOfRange(t *testing.T) {
	s := studentWithSessions(Session{SessionNumber: 1})

	if err := s.SetSessionDate(1, "1404/10/15"); err == nil {
		t.Fatalf("expected error for out-of-range index")
	}
	if err := s.ToggleReferral(-1, "مشاوره", "1404/10/15"); err == nil {
		t.Fatalf("expected error for negative index")
	}
}

func TestValidateForSave_ReferralTypeMissing(t *testing.T) {
	s := studentWithSessions(Session{SessionNumber: 1, Topics: []string{referralTopic}})

	violations := s.ValidateForSave(referralTopic)
	if len(violations) != 1 {
		t.Fatalf("expected 1 violation, got %d", len(violations))
	}
	v := violations[0]
	if v.Kind != ViolationReferralTypeMissing || v.SessionNumber != 1 {
		t.Fatalf("unexpected violation: %+v", v)
	}
}

func TestValidateForSave_ReferralReasonMissing(t *testing.T) {
	s := studentWithSessions(Session{
		SessionNumber: 1,
		Topics:        []string{referralTopic},
		Referrals:     []Referral{{Type: "مشاوره", Description: "   "}},
	})

	violations := s.ValidateForSave(referralTopic)
	if len(violations) != 1 {
		t.Fatalf("expected 1 violation, got %d", len(violations))
	}
	v := violations[0]
	if v.Kind != ViolationReferralReasonMissing || v.SessionNumber != 1 || v.ReferralType != "مشاوره" {
		t.Fatalf("unexpected violation: %+v", v)
	}

	// Filling the description clears the violation.
	s.Sessions[0].Referrals[0].Description = "نیاز به مشاوره روانشناسی"
	if violations := s.ValidateForSave(referralTopic); len(violations) != 0 {
		t.Fatalf("expected no violations, got %v", violations)
	}
}

func TestValidateForSave_ReportsEveryViolation(t *testing.T) {
	s := studentWithSessions(
		Session{SessionNumber: 1, Topics: []string{referralTopic}},
		Session{SessionNumber: 2, Topics: []string{"جلسه مشورت شغلی"}},
		Session{
			SessionNumber: 3,
			Topics:        []string{referralTopic},
			Referrals:     []Referral{{Type: "مشاوره"}, {Type: "آموزش", Description: "دلیل"}},
		},
	)

	violations := s.ValidateForSave(referralTopic)
	if len(violations) != 2 {
		t.Fatalf("expected 2 violations, got %v", violations)
	}
	if violations[0].SessionNumber != 1 || violations[0].Kind != ViolationReferralTypeMissing {
		t.Fatalf("unexpected first violation: %+v", violations[0])
	}
	if violations[1].SessionNumber != 3 || violations[1].ReferralType != "مشاوره" {
		t.Fatalf("unexpected second violation: %+v", violations[1])
	}
}

func TestValidateForSave_NoReferralTopicNeedsNothing(t *testing.T) {
	s := studentWithSessions(Session{SessionNumber: 1, Topics: []string{"جلسه مشورت آموزشی"}})

	if violations := s.ValidateForSave(referralTopic); len(violations) != 0 {
		t.Fatalf("expected no violations, got %v", violations)
	}
}
