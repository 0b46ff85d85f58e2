package app

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/hamyar-edu/advising_bot/internal/model"
	"github.com/hamyar-edu/advising_bot/internal/notify"
	"github.com/hamyar-edu/advising_bot/internal/service"
)

// EscalationTask periodically flags appointment requests that have sat
// pending past the confirmation threshold and reports them, grouped per
// student, to the advising supervisor.
type EscalationTask struct {
	appointments *service.AppointmentService
	sender       notify.Sender
	logger       *zap.Logger
	interval     time.Duration
	threshold    time.Duration
	stopChan     chan struct{}
}

func NewEscalationTask(
	appointments *service.AppointmentService,
	sender notify.Sender,
	logger *zap.Logger,
	interval, threshold time.Duration,
) *EscalationTask {
	return &EscalationTask{
		appointments: appointments,
		sender:       sender,
		logger:       logger,
		interval:     interval,
		threshold:    threshold,
		stopChan:     make(chan struct{}),
	}
}

// Start launches the background loop.
func (t *EscalationTask) Start(ctx context.Context) {
	t.logger.Info("Starting escalation task",
		zap.Duration("interval", t.interval),
		zap.Duration("threshold", t.threshold),
	)
	go t.run(ctx)
}

// Stop halts the background loop.
func (t *EscalationTask) Stop() {
	t.logger.Info("Stopping escalation task")
	close(t.stopChan)
}

func (t *EscalationTask) run(ctx context.Context) {
	// First pass right at startup.
	t.escalate(ctx)

	ticker := time.NewTicker(t.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			t.escalate(ctx)
		case <-t.stopChan:
			t.logger.Info("Escalation task stopped")
			return
		case <-ctx.Done():
			t.logger.Info("Escalation task cancelled")
			return
		}
	}
}

func (t *EscalationTask) escalate(ctx context.Context) {
	stale, err := t.appointments.StaleUnconfirmed(ctx, t.threshold)
	if err != nil {
		t.logger.Error("Failed to query stale requests", zap.Error(err))
		return
	}
	if len(stale) == 0 {
		return
	}

	// One report per student, order of first appearance preserved.
	byStudent := make(map[string][]*model.AppointmentRequest)
	var order []string
	for _, req := range stale {
		if _, ok := byStudent[req.StudentID]; !ok {
			order = append(order, req.StudentID)
		}
		byStudent[req.StudentID] = append(byStudent[req.StudentID], req)
	}

	for _, studentID := range order {
		draft := notify.StaleEscalation(byStudent[studentID])
		if err := t.sender.Send(ctx, draft); err != nil {
			t.logger.Warn("Failed to deliver escalation report",
				zap.String("student_id", studentID),
				zap.Error(err),
			)
			continue
		}
		t.logger.Info("Escalation report delivered",
			zap.String("student_id", studentID),
			zap.Int("stale_requests", len(byStudent[studentID])),
		)
	}
}
