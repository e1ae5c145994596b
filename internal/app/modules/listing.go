package modules

import (
	"context"

	"github.com/riverqueue/river"

	"agriplot.io/agriplot/internal/service"
)

// ListingModule wires the marketplace-facing services: plot submission
// and editing, plus landowner/agent profile creation.
type ListingModule struct {
	infra    *Infrastructure
	Plots    *service.PlotService
	Profiles *service.ProfileService
}

// NewListingModule creates the listing module on top of the verification
// module's services.
func NewListingModule(infra *Infrastructure, vm *VerificationModule) *ListingModule {
	plots := service.NewPlotService(infra.EntClient, vm.Records, vm.Tasks, infra.AuditLogger)
	plots.SetNotifier(infra.Notifier)

	profiles := service.NewProfileService(infra.EntClient, vm.Records, infra.AuditLogger)

	return &ListingModule{
		infra:    infra,
		Plots:    plots,
		Profiles: profiles,
	}
}

// SetEnqueuer hands the profile service its background scheduler. Called
// after River is initialized; the enqueuer cannot exist before that.
func (m *ListingModule) SetEnqueuer(enqueuer service.VerificationEnqueuer) {
	if m == nil || m.Profiles == nil {
		return
	}
	m.Profiles.SetEnqueuer(enqueuer)
}

func (m *ListingModule) Name() string { return "listing" }

func (m *ListingModule) RegisterWorkers(_ *river.Workers) {}

func (m *ListingModule) Shutdown(context.Context) error { return nil }
