// Package notify composes the outbound messages of the advising workflow
// and hands them to a delivery channel. Drafting is pure: given the same
// event data the same message comes out, timestamps included only when
// passed in explicitly.
package notify

import (
	"fmt"
	"strings"

	"github.com/hamyar-edu/advising_bot/internal/model"
)

type Role string

const (
	RoleStudent    Role = "student"
	RoleAdvisor    Role = "advisor"
	RoleUnit       Role = "unit"       // specialist unit receiving a referral
	RoleSupervisor Role = "supervisor" // advising supervisor, stale-request reports
)

// Draft is a composed message, ready for a delivery collaborator. Delivery
// itself (Bale, SMS, anything Bot API-shaped) is not this package's concern.
type Draft struct {
	Recipient   Role
	RecipientID string // domain id of the recipient (or unit name for RoleUnit)
	Subject     string
	Body        string
}

// RequestCreated drafts the booking confirmation for the student and the
// new-request notice for the advisor.
func RequestCreated(req *model.AppointmentRequest, typeLabel string) []Draft {
	student := Draft{
		Recipient:   RoleStudent,
		RecipientID: req.StudentID,
		Subject:     "ثبت نوبت مشاوره",
		Body: fmt.Sprintf(
			"✅ نوبت شما با موفقیت ثبت شد!\n\n"+
				"📅 روز: %s\n"+
				"📆 تاریخ: %s\n"+
				"⏰ ساعت: %s\n"+
				"👨‍🏫 استاد: %s\n"+
				"📋 نوع نوبت: %s\n"+
				"📝 موضوع: %s\n\n"+
				"⏳ لطفاً منتظر تایید استاد باشید.",
			req.Day, req.Date, req.Time, req.AdvisorName, typeLabel, req.Topic,
		),
	}
	advisor := Draft{
		Recipient:   RoleAdvisor,
		RecipientID: req.AdvisorID,
		Subject:     "درخواست نوبت جدید",
		Body: fmt.Sprintf(
			"📥 درخواست نوبت جدید\n\n"+
				"👨‍🎓 دانشجو: %s\n"+
				"📅 زمان: %s %s - ساعت %s\n"+
				"📋 نوع نوبت: %s\n"+
				"📝 موضوع: %s\n"+
				"💬 توضیحات: %s",
			req.StudentName, req.Day, req.Date, req.Time, typeLabel, req.Topic, req.Description,
		),
	}
	return []Draft{student, advisor}
}

// RequestApproved drafts the approval notice for the student.
func RequestApproved(req *model.AppointmentRequest) Draft {
	return Draft{
		Recipient:   RoleStudent,
		RecipientID: req.StudentID,
		Subject:     "تایید نوبت مشاوره",
		Body: fmt.Sprintf(
			"✅ نوبت شما تایید شد\n\n"+
				"📅 زمان: %s %s - ساعت %s\n"+
				"👨‍🏫 استاد: %s",
			req.Day, req.Date, req.Time, req.AdvisorName,
		),
	}
}

// RequestRejected drafts the rejection notice, reason included.
func RequestRejected(req *model.AppointmentRequest) Draft {
	return Draft{
		Recipient:   RoleStudent,
		RecipientID: req.StudentID,
		Subject:     "رد نوبت مشاوره",
		Body: fmt.Sprintf(
			"❌ نوبت شما رد شد\n\n"+
				"📅 زمان: %s %s - ساعت %s\n"+
				"👨‍🏫 استاد: %s\n"+
				"📝 دلیل: %s",
			req.Day, req.Date, req.Time, req.AdvisorName, req.RejectionReason,
		),
	}
}

// ScheduleChanged drafts the change notice enumerating exactly the fields
// that differ, with before/after values.
func ScheduleChanged(req *model.AppointmentRequest, changes []model.ScheduleChange) Draft {
	lines := make([]string, 0, len(changes))
	for _, c := range changes {
		lines = append(lines, fmt.Sprintf("%s: %s ← %s", c.Label, c.To, c.From))
	}
	return Draft{
		Recipient:   RoleStudent,
		RecipientID: req.StudentID,
		Subject:     "تغییر زمان نوبت مشاوره",
		Body: fmt.Sprintf(
			"📝 تغییرات نوبت\n\n"+
				"👨‍🎓 دانشجو: %s\n"+
				"👨‍🏫 استاد: %s\n\n"+
				"تغییرات:\n%s",
			req.StudentName, req.AdvisorName, strings.Join(lines, "\n"),
		),
	}
}

// ReferralRecorded drafts the notice to the specialist unit named by the
// referral type.
func ReferralRecorded(student *model.Student, session model.Session, ref model.Referral) Draft {
	return Draft{
		Recipient:   RoleUnit,
		RecipientID: ref.Type,
		Subject:     "ارجاع دانشجو",
		Body: fmt.Sprintf(
			"📋 جلسه %d - %s\n"+
				"🎯 ارجاع به: %s\n"+
				"📝 دلیل: %s\n"+
				"👨‍🎓 دانشجو: %s (%s)",
			session.SessionNumber, session.Date, ref.Type, ref.Description,
			student.FullName(), student.StudentNumber,
		),
	}
}

// SessionDataRecorded drafts the general notice after a session save. A
// student-recorded save notifies the advisor and awaits their confirmation;
// an advisor-recorded save confirms back to the student.
func SessionDataRecorded(student *model.Student, recorder Role, recorderName string) Draft {
	var recorderLabel, closing string
	var recipient Role
	var recipientID string
	switch recorder {
	case RoleStudent:
		recorderLabel = "دانشجو"
		closing = "⏳ منتظر تایید استاد مشاور"
		recipient = RoleAdvisor
		recipientID = student.AdvisorID
	default:
		recorderLabel = "استاد"
		closing = "✅ ثبت شد"
		recipient = RoleStudent
		recipientID = student.ID
	}
	return Draft{
		Recipient:   recipient,
		RecipientID: recipientID,
		Subject:     "ثبت اطلاعات جلسه",
		Body: fmt.Sprintf(
			"📝 ثبت اطلاعات جلسه توسط %s\n\n"+
				"✍️ ثبت‌کننده: %s\n"+
				"👨‍🎓 دانشجو: %s\n"+
				"📚 شماره دانشجویی: %s\n"+
				"📊 تعداد جلسات: %d\n\n"+
				"%s",
			recorderLabel, recorderName, student.FullName(), student.StudentNumber,
			student.TotalSessions, closing,
		),
	}
}

// AvailabilitySaved drafts the confirmation shown to the advisor after a
// successful availability update.
func AvailabilitySaved(advisorID string) Draft {
	return Draft{
		Recipient:   RoleAdvisor,
		RecipientID: advisorID,
		Subject:     "ذخیره ساعات حضور",
		Body:        "✅ ساعات حضور شما با موفقیت ذخیره شد",
	}
}

// StaleEscalation drafts the supervisor report for one student's pending
// requests that have exceeded the confirmation threshold. All requests must
// belong to the same student.
func StaleEscalation(requests []*model.AppointmentRequest) Draft {
	if len(requests) == 0 {
		return Draft{}
	}
	first := requests[0]
	lines := make([]string, 0, len(requests))
	for i, req := range requests {
		lines = append(lines, fmt.Sprintf("%d. %s %s - ساعت %s", i+1, req.Day, req.Date, req.Time))
	}
	return Draft{
		Recipient:   RoleSupervisor,
		RecipientID: first.StudentID,
		Subject:     "گزارش نوبت تایید نشده",
		Body: fmt.Sprintf(
			"⚠️ گزارش نوبت تایید نشده\n\n"+
				"👨‍🎓 دانشجو: %s\n"+
				"👨‍🏫 استاد مشاور: %s\n\n"+
				"📋 تعداد نوبت‌های تایید نشده (بیش از 24 ساعت): %d\n\n"+
				"لیست نوبت‌ها:\n%s\n\n"+
				"⏰ این نوبت‌ها بیش از 24 ساعت است که تایید نشده‌اند.",
			first.StudentName, first.AdvisorName, len(requests), strings.Join(lines, "\n"),
		),
	}
}
