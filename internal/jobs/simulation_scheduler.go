package jobs

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"agencysim/internal/core/application/usecases/commands"
	"agencysim/internal/core/domain/model/kernel"
	"agencysim/internal/core/domain/model/parcel"
	"agencysim/internal/core/domain/model/simulation"
	"agencysim/internal/core/ports"
	"agencysim/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/robfig/cron/v3"
)

// simulationRun tracks one in-flight run: the parcel it drives, the statuses
// left to apply and the cron entry that fires its ticks.
type simulationRun struct {
	runID          uuid.UUID
	trackingNumber kernel.TrackingNumber
	sequence       []parcel.Status
	next           int
	entryID        cron.EntryID
}

// SimulationScheduler drives parcels through scripted status sequences using
// a cron entry per run. Each tick applies one transition through the shared
// update handler, so simulated transitions fire the same webhooks and obey
// the same serialization as manual ones.
type SimulationScheduler struct {
	handler *commands.UpdateParcelStatusCommandHandler
	parcels ports.ParcelRepository
	cron    *cron.Cron
	logger  *slog.Logger

	mu   sync.Mutex
	runs map[uuid.UUID]*simulationRun
}

// NewSimulationScheduler creates the scheduler and starts its cron loop.
// Callers must Stop runs or call StopAll before discarding the scheduler.
func NewSimulationScheduler(
	handler *commands.UpdateParcelStatusCommandHandler,
	parcels ports.ParcelRepository,
	logger *slog.Logger,
) *SimulationScheduler {
	s := &SimulationScheduler{
		handler: handler,
		parcels: parcels,
		cron:    cron.New(),
		logger:  logger.With("component", "simulation_scheduler"),
		runs:    make(map[uuid.UUID]*simulationRun),
	}
	s.cron.Start()
	return s
}

// Start registers a run for the parcel. The parcel must exist; beyond that no
// dedup happens and concurrent runs on one parcel interleave their histories.
func (s *SimulationScheduler) Start(
	ctx context.Context,
	trackingNumber kernel.TrackingNumber,
	plan simulation.Plan,
) (ports.RunHandle, error) {
	if _, err := s.parcels.Get(ctx, trackingNumber); err != nil {
		return ports.RunHandle{}, err
	}

	run := &simulationRun{
		runID:          uuid.New(),
		trackingNumber: trackingNumber,
		sequence:       plan.Sequence(),
	}

	s.mu.Lock()
	s.runs[run.runID] = run
	s.mu.Unlock()

	entryID, err := s.cron.AddFunc(fmt.Sprintf("@every %s", plan.Interval()), func() {
		s.tick(run.runID)
	})
	if err != nil {
		s.mu.Lock()
		delete(s.runs, run.runID)
		s.mu.Unlock()
		return ports.RunHandle{}, err
	}

	s.mu.Lock()
	run.entryID = entryID
	s.mu.Unlock()

	s.logger.InfoContext(ctx, "Simulation run started",
		"run_id", run.runID,
		"tracking_number", trackingNumber.String(),
		"scenario", plan.Scenario().String(),
		"speed", plan.Speed().String(),
	)

	return ports.RunHandle{RunID: run.runID, Plan: plan}, nil
}

// Stop cancels a run before it finishes. Stopping an unknown or already
// finished run is an errs.ObjectNotFoundError.
func (s *SimulationScheduler) Stop(runID uuid.UUID) error {
	s.mu.Lock()
	run, ok := s.runs[runID]
	if ok {
		delete(s.runs, runID)
	}
	s.mu.Unlock()

	if !ok {
		return errs.NewObjectNotFoundError("runID", runID)
	}

	s.cron.Remove(run.entryID)
	s.logger.Info("Simulation run stopped",
		"run_id", runID,
		"tracking_number", run.trackingNumber.String(),
	)
	return nil
}

// StopAll cancels every active run and stops the cron loop. Used at shutdown.
func (s *SimulationScheduler) StopAll() {
	s.mu.Lock()
	runs := s.runs
	s.runs = make(map[uuid.UUID]*simulationRun)
	s.mu.Unlock()

	for _, run := range runs {
		s.cron.Remove(run.entryID)
	}
	<-s.cron.Stop().Done()
	s.logger.Info("Simulation scheduler stopped", "cancelled_runs", len(runs))
}

// tick applies the run's next transition. The final transition removes the
// cron entry and unregisters the run.
func (s *SimulationScheduler) tick(runID uuid.UUID) {
	s.mu.Lock()
	run, ok := s.runs[runID]
	if !ok {
		// Stopped between firing and locking.
		s.mu.Unlock()
		return
	}

	status := run.sequence[run.next]
	run.next++
	finished := run.next == len(run.sequence)
	if finished {
		delete(s.runs, runID)
	}
	s.mu.Unlock()

	if finished {
		s.cron.Remove(run.entryID)
	}

	ctx := context.Background()
	cmd, err := commands.NewUpdateParcelStatusCommand(run.trackingNumber, status, "")
	if err != nil {
		s.logger.ErrorContext(ctx, "Simulation tick failed to build command",
			"run_id", runID, "error", err)
		return
	}

	if _, err = s.handler.Handle(ctx, cmd); err != nil {
		s.logger.ErrorContext(ctx, "Simulation tick failed",
			"run_id", runID,
			"tracking_number", run.trackingNumber.String(),
			"status", status.String(),
			"error", err,
		)
		return
	}

	if finished {
		s.logger.Info("Simulation run completed",
			"run_id", runID,
			"tracking_number", run.trackingNumber.String(),
			"final_status", status.String(),
		)
	}
}
