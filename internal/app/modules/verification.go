package modules

import (
	"context"

	"github.com/riverqueue/river"

	"agriplot.io/agriplot/internal/jobs"
	"agriplot.io/agriplot/internal/verification"
)

// VerificationModule wires the verification pipeline services and workers.
type VerificationModule struct {
	infra        *Infrastructure
	Records      *verification.Records
	Tasks        *verification.TaskRegistry
	Completion   *verification.Completion
	Orchestrator *verification.Orchestrator
}

// NewVerificationModule creates the verification module with explicit
// constructor wiring.
func NewVerificationModule(infra *Infrastructure) *VerificationModule {
	records := verification.NewRecords(infra.EntClient, infra.AuditLogger)
	completion := verification.NewCompletion(infra.EntClient, records, infra.AuditLogger)
	tasks := verification.NewTaskRegistry(infra.EntClient, infra.AuditLogger, completion)
	orchestrator := verification.NewOrchestrator(
		infra.EntClient, records, infra.Registry, infra.AuditLogger,
		infra.Config.Registry.CallTimeout,
	)

	completion.SetNotifier(infra.Notifier)
	tasks.SetNotifier(infra.Notifier)
	orchestrator.SetNotifier(infra.Notifier)

	return &VerificationModule{
		infra:        infra,
		Records:      records,
		Tasks:        tasks,
		Completion:   completion,
		Orchestrator: orchestrator,
	}
}

func (m *VerificationModule) Name() string { return "verification" }

func (m *VerificationModule) RegisterWorkers(workers *river.Workers) {
	if workers == nil || m == nil || m.infra == nil {
		return
	}
	river.AddWorker(workers, jobs.NewProfileVerifyWorker(m.Orchestrator))
	river.AddWorker(workers, jobs.NewNotificationCleanupWorker(
		m.infra.EntClient, m.infra.Config.Notification.Retention,
	))
}

func (m *VerificationModule) Shutdown(context.Context) error { return nil }
