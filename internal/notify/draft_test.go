package notify

import (
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/hamyar-edu/advising_bot/internal/model"
)

func sampleRequest() *model.AppointmentRequest {
	created := time.Date(2025, 1, 1, 10, 0, 0, 0, time.UTC)
	return &model.AppointmentRequest{
		ID:          "req1",
		StudentID:   "std1",
		AdvisorID:   "adv1",
		StudentName: "علی رضایی",
		AdvisorName: "محمد احمدی",
		Day:         "شنبه",
		Date:        "1404/01/04",
		Time:        "08:00",
		Type:        model.AppointmentTypeIndividualInPerson,
		Topic:       "جلسه مشورت آموزشی",
		Description: "جلسه مشاوره",
		Status:      model.AppointmentStatusPending,
		CreatedAt:   created,
		UpdatedAt:   created,
	}
}

func TestRequestCreated_TwoRecipients(t *testing.T) {
	drafts := RequestCreated(sampleRequest(), "فردی - حضوری")

	if len(drafts) != 2 {
		t.Fatalf("expected 2 drafts, got %d", len(drafts))
	}
	student, advisor := drafts[0], drafts[1]
	if student.Recipient != RoleStudent || student.RecipientID != "std1" {
		t.Fatalf("unexpected student draft recipient: %+v", student)
	}
	if advisor.Recipient != RoleAdvisor || advisor.RecipientID != "adv1" {
		t.Fatalf("unexpected advisor draft recipient: %+v", advisor)
	}
	if !strings.Contains(student.Body, "فردی - حضوری") {
		t.Fatalf("student draft missing type label:\n%s", student.Body)
	}
	if !strings.Contains(student.Body, "1404/01/04") || !strings.Contains(student.Body, "08:00") {
		t.Fatalf("student draft missing schedule:\n%s", student.Body)
	}
	if !strings.Contains(advisor.Body, "علی رضایی") {
		t.Fatalf("advisor draft missing student name:\n%s", advisor.Body)
	}
}

func TestRequestRejected_CarriesReason(t *testing.T) {
	req := sampleRequest()
	if err := req.Reject("وقت ندارم", req.CreatedAt.Add(time.Hour)); err != nil {
		t.Fatalf("reject: %v", err)
	}

	draft := RequestRejected(req)
	if draft.Recipient != RoleStudent {
		t.Fatalf("rejection must go to the student, got %s", draft.Recipient)
	}
	if !strings.Contains(draft.Body, "وقت ندارم") {
		t.Fatalf("rejection draft missing reason:\n%s", draft.Body)
	}
}

func TestScheduleChanged_EnumeratesOnlyChangedFields(t *testing.T) {
	req := sampleRequest()
	now := req.CreatedAt.Add(time.Hour)
	if err := req.Approve(now); err != nil {
		t.Fatalf("approve: %v", err)
	}
	changes, err := req.EditSchedule("شنبه", "1404/01/04", "08:30", now.Add(time.Hour))
	if err != nil {
		t.Fatalf("edit: %v", err)
	}

	draft := ScheduleChanged(req, changes)
	if !strings.Contains(draft.Body, "ساعت:") {
		t.Fatalf("changed time missing from body:\n%s", draft.Body)
	}
	if strings.Contains(draft.Body, "روز:") || strings.Contains(draft.Body, "تاریخ:") {
		t.Fatalf("unchanged fields must not be enumerated:\n%s", draft.Body)
	}
	if !strings.Contains(draft.Body, "08:00") || !strings.Contains(draft.Body, "08:30") {
		t.Fatalf("before/after values missing:\n%s", draft.Body)
	}
}

func TestReferralRecorded(t *testing.T) {
	student := &model.Student{
		ID:            "std1",
		FirstName:     "علی",
		LastName:      "رضایی",
		StudentNumber: "9912345",
		AdvisorID:     "adv1",
	}
	session := model.Session{SessionNumber: 2, Date: "1404/10/22"}
	ref := model.Referral{Type: "مشاوره", Description: "استرس شدید امتحانات", Date: "1404/10/22"}

	draft := ReferralRecorded(student, session, ref)
	if draft.Recipient != RoleUnit || draft.RecipientID != "مشاوره" {
		t.Fatalf("referral notice must target the unit: %+v", draft)
	}
	if !strings.Contains(draft.Body, "استرس شدید امتحانات") {
		t.Fatalf("referral reason missing:\n%s", draft.Body)
	}
	if !strings.Contains(draft.Body, "9912345") {
		t.Fatalf("student number missing:\n%s", draft.Body)
	}
}

func TestSessionDataRecorded_ByRole(t *testing.T) {
	student := &model.Student{
		ID:            "std1",
		FirstName:     "علی",
		LastName:      "رضایی",
		StudentNumber: "9912345",
		AdvisorID:     "adv1",
		TotalSessions: 3,
	}

	byStudent := SessionDataRecorded(student, RoleStudent, "علی رضایی")
	if byStudent.Recipient != RoleAdvisor || byStudent.RecipientID != "adv1" {
		t.Fatalf("student-recorded save must notify the advisor: %+v", byStudent)
	}
	if !strings.Contains(byStudent.Body, "منتظر تایید استاد مشاور") {
		t.Fatalf("expected awaiting-confirmation closing:\n%s", byStudent.Body)
	}

	byAdvisor := SessionDataRecorded(student, RoleAdvisor, "محمد احمدی")
	if byAdvisor.Recipient != RoleStudent || byAdvisor.RecipientID != "std1" {
		t.Fatalf("advisor-recorded save must confirm to the student: %+v", byAdvisor)
	}
	if !strings.Contains(byAdvisor.Body, "ثبت شد") {
		t.Fatalf("expected recorded confirmation:\n%s", byAdvisor.Body)
	}
}

func TestStaleEscalation(t *testing.T) {
	a := sampleRequest()
	b := sampleRequest()
	b.ID = "req2"
	b.Date = "1404/01/11"

	draft := StaleEscalation([]*model.AppointmentRequest{a, b})
	if draft.Recipient != RoleSupervisor {
		t.Fatalf("escalation must go to the supervisor, got %s", draft.Recipient)
	}
	if !strings.Contains(draft.Body, "2") {
		t.Fatalf("stale count missing:\n%s", draft.Body)
	}
	if !strings.Contains(draft.Body, "1. شنبه 1404/01/04 - ساعت 08:00") {
		t.Fatalf("request list missing:\n%s", draft.Body)
	}
	if !strings.Contains(draft.Body, "2. شنبه 1404/01/11 - ساعت 08:00") {
		t.Fatalf("second request missing:\n%s", draft.Body)
	}

	if empty := StaleEscalation(nil); empty.Body != "" {
		t.Fatalf("no requests must draft nothing, got %+v", empty)
	}
}

func TestDrafting_Deterministic(t *testing.T) {
	req := sampleRequest()
	a := RequestCreated(req, "فردی - حضوری")
	b := RequestCreated(req, "فردی - حضوری")
	if !reflect.DeepEqual(a, b) {
		t.Fatalf("drafting must be deterministic")
	}
}
