package service

import (
	"context"
	"sort"

	"github.com/hamyar-edu/advising_bot/internal/model"
)

// In-memory stores backing the service tests. They hold values and hand out
// copies, mimicking the read-after-write behavior of the real repositories.

type fakeAdvisorStore struct {
	advisors map[string]model.Advisor
}

func newFakeAdvisorStore(advisors ...model.Advisor) *fakeAdvisorStore {
	s := &fakeAdvisorStore{advisors: make(map[string]model.Advisor)}
	for _, a := range advisors {
		s.advisors[a.ID] = a
	}
	return s
}

func (s *fakeAdvisorStore) GetByID(_ context.Context, id string) (*model.Advisor, error) {
	a, ok := s.advisors[id]
	if !ok {
		return nil, model.ErrAdvisorNotFound
	}
	copy := a
	return &copy, nil
}

func (s *fakeAdvisorStore) SetAvailability(_ context.Context, id string, availability model.Availability) error {
	a, ok := s.advisors[id]
	if !ok {
		return model.ErrAdvisorNotFound
	}
	a.Availability = availability
	s.advisors[id] = a
	return nil
}

type fakeStudentStore struct {
	students map[string]model.Student
}

func newFakeStudentStore(students ...model.Student) *fakeStudentStore {
	s := &fakeStudentStore{students: make(map[string]model.Student)}
	for _, st := range students {
		s.students[st.ID] = st
	}
	return s
}

func (s *fakeStudentStore) GetByID(_ context.Context, id string) (*model.Student, error) {
	st, ok := s.students[id]
	if !ok {
		return nil, model.ErrStudentNotFound
	}
	copy := st
	return &copy, nil
}

func (s *fakeStudentStore) UpdateSessions(_ context.Context, id string, totalSessions int, sessions []model.Session) error {
	st, ok := s.students[id]
	if !ok {
		return model.ErrStudentNotFound
	}
	st.TotalSessions = totalSessions
	st.Sessions = sessions
	s.students[id] = st
	return nil
}

type fakeAppointmentStore struct {
	requests map[string]model.AppointmentRequest
}

func newFakeAppointmentStore() *fakeAppointmentStore {
	return &fakeAppointmentStore{requests: make(map[string]model.AppointmentRequest)}
}

func (s *fakeAppointmentStore) Create(_ context.Context, req *model.AppointmentRequest) error {
	s.requests[req.ID] = *req
	return nil
}

func (s *fakeAppointmentStore) GetByID(_ context.Context, id string) (*model.AppointmentRequest, error) {
	req, ok := s.requests[id]
	if !ok {
		return nil, model.ErrAppointmentNotFound
	}
	copy := req
	return &copy, nil
}

func (s *fakeAppointmentStore) Update(_ context.Context, req *model.AppointmentRequest) error {
	if _, ok := s.requests[req.ID]; !ok {
		return model.ErrAppointmentNotFound
	}
	s.requests[req.ID] = *req
	return nil
}

func (s *fakeAppointmentStore) ListByAdvisor(_ context.Context, advisorID string) ([]*model.AppointmentRequest, error) {
	return s.list(func(r model.AppointmentRequest) bool { return r.AdvisorID == advisorID }), nil
}

func (s *fakeAppointmentStore) ListByStudent(_ context.Context, studentID string) ([]*model.AppointmentRequest, error) {
	return s.list(func(r model.AppointmentRequest) bool { return r.StudentID == studentID }), nil
}

func (s *fakeAppointmentStore) ListPending(_ context.Context) ([]*model.AppointmentRequest, error) {
	return s.list(func(r model.AppointmentRequest) bool { return r.IsPending() }), nil
}

func (s *fakeAppointmentStore) list(keep func(model.AppointmentRequest) bool) []*model.AppointmentRequest {
	var out []*model.AppointmentRequest
	for _, req := range s.requests {
		if keep(req) {
			copy := req
			out = append(out, &copy)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out
}
