package commands_test

import (
	"testing"

	"agencysim/internal/core/application/usecases/commands"
	"agencysim/internal/core/domain/model/kernel"
	"agencysim/internal/core/domain/model/simulation"
	"agencysim/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewStartSimulationCommand_ValidInput(t *testing.T) {
	tn := kernel.NewTrackingNumber(1)
	plan := simulation.NewPlan("fast", "failed")

	cmd, err := commands.NewStartSimulationCommand(tn, plan)

	require.NoError(t, err)
	assert.True(t, cmd.TrackingNumber().IsEqual(tn))
	assert.Equal(t, simulation.SpeedFast, cmd.Plan().Speed())
	assert.Equal(t, simulation.ScenarioFailed, cmd.Plan().Scenario())
}

func TestNewStartSimulationCommand_ZeroTrackingNumber(t *testing.T) {
	_, err := commands.NewStartSimulationCommand(
		kernel.TrackingNumber{}, simulation.NewPlan("", ""),
	)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestStartSimulationCommand_Validate_ZeroValue(t *testing.T) {
	var cmd commands.StartSimulationCommand
	assert.Equal(t, commands.ErrStartSimulationCommandIsNotConstructed, cmd.Validate())
}
