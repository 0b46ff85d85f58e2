package model

import "time"

type Student struct {
	ID            string    `json:"id"`
	FirstName     string    `json:"first_name"`
	LastName      string    `json:"last_name"`
	StudentNumber string    `json:"student_number"`
	GPA           float64   `json:"gpa"`
	PhoneNumber   string    `json:"phone_number"`
	AdvisorID     string    `json:"advisor_id"`
	AdvisorName   string    `json:"advisor_name"`
	Semester      string    `json:"semester"`
	TotalSessions int       `json:"total_sessions"`
	Sessions      []Session `json:"sessions"`
	CreatedAt     time.Time `json:"created_at"`
}

func (s *Student) FullName() string {
	return s.FirstName + " " + s.LastName
}
