package cmd

import (
	"log/slog"
	"os"

	"agencysim/internal/adapters/out/memory/parcelrepo"
	"agencysim/internal/adapters/out/webhook"
	"agencysim/internal/core/application/usecases/commands"
	"agencysim/internal/core/application/usecases/queries"
	"agencysim/internal/jobs"
)

// CompositionRoot owns the long-lived infrastructure of the simulator: the
// in-memory store, the webhook notifier and the simulation scheduler, plus
// the single shared update handler every transition flows through.
type CompositionRoot struct {
	logger    *slog.Logger
	parcels   *parcelrepo.Repository
	notifier  *webhook.Notifier
	scheduler *jobs.SimulationScheduler

	updateStatusHandler *commands.UpdateParcelStatusCommandHandler
}

// NewCompositionRoot wires all adapters together. The update handler is
// created once and shared so that manual updates and simulation ticks
// serialize on the same mutex.
func NewCompositionRoot(config Config) *CompositionRoot {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	parcels := parcelrepo.NewRepository()
	notifier := webhook.NewNotifier(
		logger,
		config.WebhookTimeout,
		config.NotifierWorkers,
		config.NotifierQueueSize,
	)
	updateStatusHandler := commands.NewUpdateParcelStatusCommandHandler(parcels, notifier)

	return &CompositionRoot{
		logger:              logger,
		parcels:             parcels,
		notifier:            notifier,
		scheduler:           jobs.NewSimulationScheduler(updateStatusHandler, parcels, logger),
		updateStatusHandler: updateStatusHandler,
	}
}

// Close stops background work in dependency order: first the scheduler so no
// new transitions fire, then the notifier so queued deliveries drain.
func (c *CompositionRoot) Close() {
	c.scheduler.StopAll()
	c.notifier.Close()
}

func (c *CompositionRoot) CreateCreateParcelCommandHandler() commands.CreateParcelCommandHandler {
	return commands.NewCreateParcelCommandHandler(c.parcels)
}

func (c *CompositionRoot) CreateUpdateParcelStatusCommandHandler() *commands.UpdateParcelStatusCommandHandler {
	return c.updateStatusHandler
}

func (c *CompositionRoot) CreateStartSimulationCommandHandler() commands.StartSimulationCommandHandler {
	return commands.NewStartSimulationCommandHandler(c.scheduler)
}

func (c *CompositionRoot) CreateGetParcelQueryHandler() queries.GetParcelQueryHandler {
	return queries.NewGetParcelQueryHandler(c.parcels)
}

func (c *CompositionRoot) CreateListParcelsQueryHandler() queries.ListParcelsQueryHandler {
	return queries.NewListParcelsQueryHandler(c.parcels)
}
